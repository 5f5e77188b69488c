package sheets

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/xuri/excelize/v2"
)

// WorkbookStore implementação local da capacidade de planilha: cada planilha é
// um arquivo .xlsx dentro do diretório configurado
type WorkbookStore struct {
	dir string
}

// NewWorkbookStore cria o store local
func NewWorkbookStore(dir string) *WorkbookStore {
	return &WorkbookStore{dir: dir}
}

// Open abre a planilha identificada por id, criando o arquivo quando não existe
func (s *WorkbookStore) Open(id string) (Spreadsheet, error) {
	if strings.TrimSpace(id) == "" {
		return nil, fmt.Errorf("identificador de planilha vazio")
	}
	if err := os.MkdirAll(s.dir, 0755); err != nil {
		return nil, fmt.Errorf("falha ao criar diretório de planilhas: %w", err)
	}

	path := filepath.Join(s.dir, id+".xlsx")
	if _, err := os.Stat(path); err == nil {
		f, err := excelize.OpenFile(path)
		if err != nil {
			return nil, fmt.Errorf("falha ao abrir planilha %s: %w", id, err)
		}
		return &workbook{file: f, path: path}, nil
	}
	return &workbook{file: excelize.NewFile(), path: path}, nil
}

// workbook planilha aberta; cada escrita salva o arquivo, espelhando o
// comportamento de uma chamada remota por célula
type workbook struct {
	mu   sync.Mutex
	file *excelize.File
	path string
}

// Tab abre a aba, criando-a quando não existe
func (w *workbook) Tab(name string) (Tab, error) {
	if strings.TrimSpace(name) == "" {
		return nil, fmt.Errorf("nome de aba vazio")
	}
	w.mu.Lock()
	defer w.mu.Unlock()

	idx, err := w.file.GetSheetIndex(name)
	if err != nil || idx < 0 {
		if _, err := w.file.NewSheet(name); err != nil {
			return nil, fmt.Errorf("falha ao criar aba %s: %w", name, err)
		}
		if err := w.save(); err != nil {
			return nil, err
		}
	}
	return &workbookTab{wb: w, name: name}, nil
}

func (w *workbook) save() error {
	if err := w.file.SaveAs(w.path); err != nil {
		return fmt.Errorf("falha ao salvar planilha: %w", err)
	}
	return nil
}

type workbookTab struct {
	wb   *workbook
	name string
}

// ReadColumn lê a coluna inteira na ordem das linhas
func (t *workbookTab) ReadColumn(col string) ([]string, error) {
	t.wb.mu.Lock()
	defer t.wb.mu.Unlock()

	idx, err := excelize.ColumnNameToNumber(col)
	if err != nil {
		return nil, fmt.Errorf("coluna inválida %q: %w", col, err)
	}
	cols, err := t.wb.file.GetCols(t.name)
	if err != nil {
		return nil, fmt.Errorf("falha ao ler coluna %s da aba %s: %w", col, t.name, err)
	}
	if idx > len(cols) {
		return nil, nil
	}
	return cols[idx-1], nil
}

// WriteCell escreve e persiste uma célula
func (t *workbookTab) WriteCell(cell, value string) error {
	t.wb.mu.Lock()
	defer t.wb.mu.Unlock()

	if err := t.wb.file.SetCellValue(t.name, cell, value); err != nil {
		return fmt.Errorf("falha ao escrever %s!%s: %w", t.name, cell, err)
	}
	return t.wb.save()
}

// WriteRange escreve um retângulo de valores a partir da célula inicial
func (t *workbookTab) WriteRange(startCell string, rows [][]string) error {
	t.wb.mu.Lock()
	defer t.wb.mu.Unlock()

	col, row, err := excelize.CellNameToCoordinates(startCell)
	if err != nil {
		return fmt.Errorf("célula inicial inválida %q: %w", startCell, err)
	}
	for i, r := range rows {
		for j, value := range r {
			cell, err := excelize.CoordinatesToCellName(col+j, row+i)
			if err != nil {
				return err
			}
			if err := t.wb.file.SetCellValue(t.name, cell, value); err != nil {
				return fmt.Errorf("falha ao escrever %s!%s: %w", t.name, cell, err)
			}
		}
	}
	return t.wb.save()
}

// Clear remove todo o conteúdo da aba, preservando a aba em si
func (t *workbookTab) Clear() error {
	t.wb.mu.Lock()
	defer t.wb.mu.Unlock()

	rows, err := t.wb.file.GetRows(t.name)
	if err != nil {
		return fmt.Errorf("falha ao ler aba %s: %w", t.name, err)
	}
	for i, r := range rows {
		for j := range r {
			cell, err := excelize.CoordinatesToCellName(j+1, i+1)
			if err != nil {
				return err
			}
			if err := t.wb.file.SetCellValue(t.name, cell, nil); err != nil {
				return fmt.Errorf("falha ao limpar %s!%s: %w", t.name, cell, err)
			}
		}
	}
	return t.wb.save()
}
