package sheets

import (
	"path/filepath"
	"testing"

	"github.com/xuri/excelize/v2"
)

func TestWorkbookStore_OpenCreatesFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	store := NewWorkbookStore(dir)

	spreadsheet, err := store.Open("controle-de-horas")
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	tab, err := spreadsheet.Tab("JULHO_MATRIZ")
	if err != nil {
		t.Fatalf("tab: %v", err)
	}
	if err := tab.WriteCell("A1", "NOME"); err != nil {
		t.Fatalf("write: %v", err)
	}

	// o arquivo persiste e pode ser reaberto
	f, err := excelize.OpenFile(filepath.Join(dir, "controle-de-horas.xlsx"))
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	t.Cleanup(func() { _ = f.Close() })

	value, err := f.GetCellValue("JULHO_MATRIZ", "A1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if value != "NOME" {
		t.Fatalf("got %q", value)
	}
}

func TestWorkbookStore_EmptyIDRejected(t *testing.T) {
	t.Parallel()

	store := NewWorkbookStore(t.TempDir())
	if _, err := store.Open("  "); err == nil {
		t.Fatalf("identificador vazio deveria falhar")
	}
}

func TestWorkbookTab_ReadColumnOrder(t *testing.T) {
	t.Parallel()

	store := NewWorkbookStore(t.TempDir())
	spreadsheet, err := store.Open("teste")
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	tab, err := spreadsheet.Tab("ABA")
	if err != nil {
		t.Fatalf("tab: %v", err)
	}

	rows := [][]string{{"NOME"}, {"Ana Silva"}, {"João Souza"}}
	if err := tab.WriteRange("A1", rows); err != nil {
		t.Fatalf("write range: %v", err)
	}

	colA, err := tab.ReadColumn("A")
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if len(colA) != 3 || colA[0] != "NOME" || colA[2] != "João Souza" {
		t.Fatalf("coluna fora de ordem: %v", colA)
	}
}

func TestWorkbookTab_Clear(t *testing.T) {
	t.Parallel()

	store := NewWorkbookStore(t.TempDir())
	spreadsheet, _ := store.Open("teste")
	tab, err := spreadsheet.Tab("ABA")
	if err != nil {
		t.Fatalf("tab: %v", err)
	}
	if err := tab.WriteCell("B2", "01:00"); err != nil {
		t.Fatalf("write: %v", err)
	}
	if err := tab.Clear(); err != nil {
		t.Fatalf("clear: %v", err)
	}
	colB, err := tab.ReadColumn("B")
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	for _, cell := range colB {
		if cell != "" {
			t.Fatalf("aba deveria estar limpa: %v", colB)
		}
	}
}
