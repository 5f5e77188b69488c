package store

import (
	"path/filepath"
	"testing"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := New(filepath.Join(t.TempDir(), "calculadora-test.db"))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestInsertAndListRuns(t *testing.T) {
	s := newTestStore(t)

	run := &ImportRun{
		ID:            "run-1",
		Filename:      "cartao_julho.pdf",
		StoreCode:     "MATRIZ",
		MonthName:     "JULHO",
		TabName:       "JULHO_MATRIZ",
		Employees:     12,
		Couriers:      3,
		NotFound:      1,
		NotFoundNames: []string{"CARLOS MOTA"},
		Status:        "ok",
	}
	if err := s.InsertRun(run); err != nil {
		t.Fatalf("InsertRun: %v", err)
	}

	runs, err := s.ListRuns(10)
	if err != nil {
		t.Fatalf("ListRuns: %v", err)
	}
	if len(runs) != 1 {
		t.Fatalf("esperava 1 processamento, got %d", len(runs))
	}
	got := runs[0]
	if got.TabName != "JULHO_MATRIZ" || got.Employees != 12 || got.Couriers != 3 {
		t.Fatalf("campos: %+v", got)
	}
	if len(got.NotFoundNames) != 1 || got.NotFoundNames[0] != "CARLOS MOTA" {
		t.Fatalf("nomes não encontrados: %v", got.NotFoundNames)
	}
	if got.CreatedAt == "" {
		t.Fatalf("created_at deveria ser preenchido")
	}
}

func TestListRuns_EmptyNotFoundNames(t *testing.T) {
	s := newTestStore(t)

	if err := s.InsertRun(&ImportRun{ID: "run-2", Filename: "x.pdf", Status: "ok"}); err != nil {
		t.Fatalf("InsertRun: %v", err)
	}
	runs, err := s.ListRuns(0)
	if err != nil {
		t.Fatalf("ListRuns: %v", err)
	}
	if len(runs[0].NotFoundNames) != 0 {
		t.Fatalf("lista vazia esperada, got %v", runs[0].NotFoundNames)
	}
}
