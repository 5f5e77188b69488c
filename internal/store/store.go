package store

import (
	"database/sql"
	"embed"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"
)

//go:embed schema.sql
var schemaFS embed.FS

// Store camada de persistência SQLite do histórico de processamentos
type Store struct {
	db *sql.DB
}

// New cria o Store e inicializa o esquema
func New(dbPath string) (*Store, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("falha ao criar diretório de dados: %w", err)
	}

	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("falha ao abrir o banco: %w", err)
	}
	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("falha ao conectar no banco: %w", err)
	}

	// SQLite com conexão única
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	store := &Store{db: db}
	if err := store.initSchema(); err != nil {
		return nil, fmt.Errorf("falha ao inicializar o esquema: %w", err)
	}
	return store, nil
}

func (s *Store) initSchema() error {
	schemaSQL, err := schemaFS.ReadFile("schema.sql")
	if err != nil {
		return fmt.Errorf("falha ao ler schema.sql: %w", err)
	}
	if _, err := s.db.Exec(string(schemaSQL)); err != nil {
		return fmt.Errorf("falha ao executar o esquema: %w", err)
	}
	return nil
}

// Close fecha a conexão
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// DB conexão crua, para transações e testes
func (s *Store) DB() *sql.DB {
	return s.db
}
