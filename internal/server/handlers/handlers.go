package handlers

import (
	"fmt"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/raianjesus3-tech/calculadora-de-horas/internal/config"
	"github.com/raianjesus3-tech/calculadora-de-horas/internal/exporter"
	"github.com/raianjesus3-tech/calculadora-de-horas/internal/extract"
	"github.com/raianjesus3-tech/calculadora-de-horas/internal/model"
	"github.com/raianjesus3-tech/calculadora-de-horas/internal/parser"
	"github.com/raianjesus3-tech/calculadora-de-horas/internal/reconciler"
	"github.com/raianjesus3-tech/calculadora-de-horas/internal/report"
	"github.com/raianjesus3-tech/calculadora-de-horas/internal/sheets"
	"github.com/raianjesus3-tech/calculadora-de-horas/internal/store"
)

// Handlers processadores da API
type Handlers struct {
	cfg     *config.AppConfig
	dataDir string
	store   *store.Store
	sheets  sheets.Store
	export  *exporter.Exporter
	engine  *reconciler.Engine

	// documentos processados nesta sessão
	uploads   map[string]*uploadedDoc
	uploadsMu sync.RWMutex

	// arquivos exportados, token -> caminho
	exports   map[string]string
	exportsMu sync.RWMutex
}

type uploadedDoc struct {
	FileName string
	Key      model.StoreMonthKey
	Records  []model.EmployeeRecord
}

// NewHandlers cria os processadores
func NewHandlers(cfg *config.AppConfig, dataDir string, st *store.Store, sh sheets.Store) *Handlers {
	return &Handlers{
		cfg:     cfg,
		dataDir: dataDir,
		store:   st,
		sheets:  sh,
		export:  exporter.NewExporter(),
		engine:  reconciler.New(),
		uploads: make(map[string]*uploadedDoc),
		exports: make(map[string]string),
	}
}

// Response resposta padrão da API
type Response struct {
	Code    int         `json:"code"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

func success(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, Response{Code: 0, Message: "success", Data: data})
}

func errorResponse(c *gin.Context, code int, message string) {
	c.JSON(http.StatusOK, Response{Code: code, Message: message})
}

// RegisterRoutes registra as rotas da API
func (h *Handlers) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/status", h.GetStatus)
	router.GET("/config", h.GetConfig)

	// processamento de cartão de ponto
	router.POST("/upload", h.Upload)
	router.GET("/uploads/:id", h.GetUpload)

	// exportação local
	router.POST("/export", h.Export)
	router.GET("/export/download/:token", h.DownloadExport)

	// conciliação com a planilha
	router.POST("/reconcile", h.Reconcile)
	router.GET("/runs", h.ListRuns)
}

// GetStatus estado do serviço
func (h *Handlers) GetStatus(c *gin.Context) {
	h.uploadsMu.RLock()
	pending := len(h.uploads)
	h.uploadsMu.RUnlock()

	success(c, gin.H{
		"service":   "calculadora-de-horas",
		"documents": pending,
	})
}

// GetConfig configuração vigente
func (h *Handlers) GetConfig(c *gin.Context) {
	success(c, gin.H{
		"storeCodes":    h.cfg.Business.StoreCodes,
		"defaultTab":    h.cfg.Business.DefaultTab,
		"spreadsheetId": h.cfg.Sheets.SpreadsheetID,
	})
}

// Upload recebe o PDF (ou texto) do cartão de ponto, extrai e classifica os
// funcionários e identifica a chave (loja, mês) do documento
func (h *Handlers) Upload(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		errorResponse(c, 1001, "arquivo não enviado")
		return
	}

	id := uuid.New().String()
	savedPath := filepath.Join(h.dataDir, "uploads", id+filepath.Ext(fileHeader.Filename))
	if err := c.SaveUploadedFile(fileHeader, savedPath); err != nil {
		errorResponse(c, 5001, fmt.Sprintf("falha ao salvar o arquivo: %v", err))
		return
	}

	text, err := h.documentText(savedPath)
	if err != nil {
		errorResponse(c, 5002, err.Error())
		return
	}

	records := parser.ParseDocument(text)
	key := parser.Identify(text, h.cfg.Business.StoreCodes)

	doc := &uploadedDoc{
		FileName: fileHeader.Filename,
		Key:      key,
		Records:  records,
	}
	h.uploadsMu.Lock()
	h.uploads[id] = doc
	h.uploadsMu.Unlock()

	success(c, h.uploadPayload(id, doc))
}

// documentText texto do documento: PDF extraído página a página, demais
// extensões lidas como texto puro
func (h *Handlers) documentText(path string) (string, error) {
	if strings.EqualFold(filepath.Ext(path), ".pdf") {
		text, err := extract.TextFromPDF(path)
		if err != nil {
			return "", fmt.Errorf("falha ao extrair texto do PDF: %v", err)
		}
		return text, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("falha ao ler o arquivo: %v", err)
	}
	return string(data), nil
}

// GetUpload devolve o resultado de um processamento anterior
func (h *Handlers) GetUpload(c *gin.Context) {
	id := c.Param("id")
	h.uploadsMu.RLock()
	doc, ok := h.uploads[id]
	h.uploadsMu.RUnlock()
	if !ok {
		errorResponse(c, 4004, "documento não encontrado")
		return
	}
	success(c, h.uploadPayload(id, doc))
}

func (h *Handlers) uploadPayload(id string, doc *uploadedDoc) gin.H {
	couriers := 0
	for _, r := range doc.Records {
		if r.Role == model.RoleCourier {
			couriers++
		}
	}
	return gin.H{
		"uploadId":     id,
		"arquivo":      doc.FileName,
		"loja":         doc.Key.Store,
		"mes":          doc.Key.Month,
		"aba":          doc.Key.TabName(),
		"funcionarios": doc.Records,
		"mensalistas":  len(doc.Records) - couriers,
		"motoboys":     couriers,
	}
}

// Export gera a planilha estilizada com as duas tabelas e devolve um token de download
func (h *Handlers) Export(c *gin.Context) {
	var req struct {
		UploadID string `json:"uploadId"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		errorResponse(c, 1001, "parâmetros inválidos")
		return
	}

	h.uploadsMu.RLock()
	doc, ok := h.uploads[req.UploadID]
	h.uploadsMu.RUnlock()
	if !ok {
		errorResponse(c, 4004, "documento não encontrado")
		return
	}

	sheetName := doc.Key.TabName()
	if sheetName == "" {
		sheetName = "FECHAMENTO"
	}

	f, err := h.export.Export(report.BuildStandard(doc.Records), report.BuildCourier(doc.Records), sheetName)
	if err != nil {
		errorResponse(c, 5003, fmt.Sprintf("falha ao gerar a planilha: %v", err))
		return
	}

	token := uuid.New().String()
	path := filepath.Join(h.dataDir, "exports", token+".xlsx")
	if err := f.SaveAs(path); err != nil {
		errorResponse(c, 5003, fmt.Sprintf("falha ao salvar a planilha: %v", err))
		return
	}

	h.exportsMu.Lock()
	h.exports[token] = path
	h.exportsMu.Unlock()

	success(c, gin.H{
		"token":   token,
		"arquivo": sheetName + ".xlsx",
	})
}

// DownloadExport baixa uma planilha exportada
func (h *Handlers) DownloadExport(c *gin.Context) {
	token := c.Param("token")
	h.exportsMu.RLock()
	path, ok := h.exports[token]
	h.exportsMu.RUnlock()
	if !ok {
		errorResponse(c, 4004, "exportação não encontrada")
		return
	}
	c.FileAttachment(path, filepath.Base(path))
}

// Reconcile grava os registros de um documento processado na aba da planilha
// Falha de identificação da loja, de abertura da planilha ou da aba aborta a
// execução antes de qualquer escrita; nome não localizado só entra no relatório
func (h *Handlers) Reconcile(c *gin.Context) {
	var req struct {
		UploadID      string `json:"uploadId"`
		SpreadsheetID string `json:"spreadsheetId"`
		Tab           string `json:"aba"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		errorResponse(c, 1001, "parâmetros inválidos")
		return
	}

	h.uploadsMu.RLock()
	doc, ok := h.uploads[req.UploadID]
	h.uploadsMu.RUnlock()
	if !ok {
		errorResponse(c, 4004, "documento não encontrado")
		return
	}

	tabName := req.Tab
	if tabName == "" {
		tabName = doc.Key.TabName()
	}
	if tabName == "" {
		tabName = h.cfg.Business.DefaultTab
	}
	if tabName == "" {
		errorResponse(c, 4001, "loja não identificada no documento e nenhuma aba padrão configurada")
		return
	}

	spreadsheetID := req.SpreadsheetID
	if spreadsheetID == "" {
		spreadsheetID = h.cfg.Sheets.SpreadsheetID
	}

	spreadsheet, err := h.sheets.Open(spreadsheetID)
	if err != nil {
		errorResponse(c, 5004, fmt.Sprintf("falha ao abrir a planilha: %v", err))
		return
	}
	tab, err := spreadsheet.Tab(tabName)
	if err != nil {
		errorResponse(c, 5004, fmt.Sprintf("falha ao abrir a aba %s: %v", tabName, err))
		return
	}

	notFound, err := h.engine.Reconcile(doc.Records, tab)
	status := "ok"
	if err != nil {
		status = "erro"
	}

	couriers := 0
	for _, r := range doc.Records {
		if r.Role == model.RoleCourier {
			couriers++
		}
	}
	run := &store.ImportRun{
		ID:            uuid.New().String(),
		Filename:      doc.FileName,
		StoreCode:     doc.Key.Store,
		MonthName:     doc.Key.Month,
		TabName:       tabName,
		Employees:     len(doc.Records),
		Couriers:      couriers,
		NotFound:      len(notFound),
		NotFoundNames: notFound,
		Status:        status,
	}
	if dbErr := h.store.InsertRun(run); dbErr != nil {
		log.Printf("falha ao gravar o histórico: %v", dbErr)
	}

	if err != nil {
		errorResponse(c, 5005, fmt.Sprintf("conciliação interrompida: %v", err))
		return
	}
	success(c, gin.H{
		"runId":          run.ID,
		"aba":            tabName,
		"naoEncontrados": notFound,
		"gravados":       len(doc.Records) - len(notFound),
	})
}

// ListRuns histórico de conciliações
func (h *Handlers) ListRuns(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	runs, err := h.store.ListRuns(limit)
	if err != nil {
		errorResponse(c, 5006, err.Error())
		return
	}
	success(c, runs)
}
