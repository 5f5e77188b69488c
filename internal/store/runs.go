package store

import (
	"fmt"
	"strings"
)

// ImportRun registro histórico de um processamento de cartão de ponto
type ImportRun struct {
	ID            string   `json:"id"`
	Filename      string   `json:"arquivo"`
	StoreCode     string   `json:"loja"`
	MonthName     string   `json:"mes"`
	TabName       string   `json:"aba"`
	Employees     int      `json:"funcionarios"`
	Couriers      int      `json:"motoboys"`
	NotFound      int      `json:"naoEncontrados"`
	NotFoundNames []string `json:"nomesNaoEncontrados"`
	Status        string   `json:"status"`
	CreatedAt     string   `json:"criadoEm"`
}

// InsertRun grava um processamento concluído
func (s *Store) InsertRun(run *ImportRun) error {
	_, err := s.db.Exec(`
		INSERT INTO import_runs (
			id, filename, store_code, month_name, tab_name,
			employees, couriers, not_found, not_found_names, status
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`,
		run.ID, run.Filename, run.StoreCode, run.MonthName, run.TabName,
		run.Employees, run.Couriers, run.NotFound,
		strings.Join(run.NotFoundNames, ";"), run.Status,
	)
	if err != nil {
		return fmt.Errorf("falha ao gravar o processamento: %w", err)
	}
	return nil
}

// ListRuns lista os processamentos mais recentes primeiro
func (s *Store) ListRuns(limit int) ([]*ImportRun, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := s.db.Query(`
		SELECT id, filename, store_code, month_name, tab_name,
		       employees, couriers, not_found, not_found_names, status, created_at
		FROM import_runs
		ORDER BY created_at DESC, id
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("falha ao listar processamentos: %w", err)
	}
	defer rows.Close()

	var runs []*ImportRun
	for rows.Next() {
		var run ImportRun
		var names string
		if err := rows.Scan(
			&run.ID, &run.Filename, &run.StoreCode, &run.MonthName, &run.TabName,
			&run.Employees, &run.Couriers, &run.NotFound, &names, &run.Status, &run.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("falha ao ler processamento: %w", err)
		}
		if names != "" {
			run.NotFoundNames = strings.Split(names, ";")
		}
		runs = append(runs, &run)
	}
	return runs, rows.Err()
}
