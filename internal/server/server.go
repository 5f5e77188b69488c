package server

import (
	"log"
	"net/http"
	"path/filepath"

	"github.com/gin-gonic/gin"

	"github.com/raianjesus3-tech/calculadora-de-horas/internal/config"
	"github.com/raianjesus3-tech/calculadora-de-horas/internal/server/handlers"
	"github.com/raianjesus3-tech/calculadora-de-horas/internal/sheets"
	"github.com/raianjesus3-tech/calculadora-de-horas/internal/store"
)

// Server servidor HTTP
type Server struct {
	router   *gin.Engine
	store    *store.Store
	handlers *handlers.Handlers
}

// NewServer cria o servidor com o store SQLite e a planilha local
func NewServer(cfg *config.AppConfig) *Server {
	if !cfg.Server.DevMode {
		gin.SetMode(gin.ReleaseMode)
	}

	dataDir, err := config.EnsureDataDir(cfg)
	if err != nil {
		dataDir = cfg.Data.DataDir
	}

	sqliteStore, err := store.New(filepath.Join(dataDir, "calculadora.db"))
	if err != nil {
		log.Fatalf("falha ao inicializar o banco: %v", err)
	}

	sheetStore := sheets.NewWorkbookStore(config.SheetsDir(cfg, dataDir))

	s := &Server{
		router:   gin.Default(),
		store:    sqliteStore,
		handlers: handlers.NewHandlers(cfg, dataDir, sqliteStore, sheetStore),
	}
	s.setupRoutes()
	return s
}

// setupRoutes registra middleware e rotas
func (s *Server) setupRoutes() {
	// CORS
	s.router.Use(func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, PATCH, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Content-Type, Authorization")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}
		c.Next()
	})

	api := s.router.Group("/api")
	{
		s.handlers.RegisterRoutes(api)
	}

	s.router.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"service": "calculadora-de-horas"})
	})
}

// Run inicia o servidor
func (s *Server) Run(addr string) error {
	return s.router.Run(addr)
}

// Close libera os recursos do servidor
func (s *Server) Close() error {
	return s.store.Close()
}

// GetStore acesso ao store (usado em testes)
func (s *Server) GetStore() *store.Store {
	return s.store
}
