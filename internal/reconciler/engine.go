// Package reconciler localiza cada funcionário na planilha externa pelo nome
// normalizado e grava os campos no conjunto de colunas da região da linha.
package reconciler

import (
	"fmt"
	"log"
	"strings"

	"github.com/raianjesus3-tech/calculadora-de-horas/internal/model"
	"github.com/raianjesus3-tech/calculadora-de-horas/internal/parser"
	"github.com/raianjesus3-tech/calculadora-de-horas/internal/report"
	"github.com/raianjesus3-tech/calculadora-de-horas/internal/sheets"
)

// RowIndex índice nome-normalizado -> linha (1-based) da coluna A
// Reconstruído do zero a cada execução: a planilha externa pode mudar entre elas
type RowIndex struct {
	rows        []string
	byName      map[string]int
	sentinelRow int
}

// BuildRowIndex varre a coluna A uma única vez; em nomes duplicados a primeira
// ocorrência vence, e a linha do marcador "MOTOBOYS HORISTAS" é anotada à parte
func BuildRowIndex(colA []string) *RowIndex {
	sentinel := parser.NormalizeName(report.CourierSectionTitle)
	idx := &RowIndex{byName: make(map[string]int, len(colA))}
	for i, cell := range colA {
		name := parser.NormalizeName(cell)
		idx.rows = append(idx.rows, name)
		if name == sentinel {
			if idx.sentinelRow == 0 {
				idx.sentinelRow = i + 1
			}
			continue
		}
		if name == "" {
			continue
		}
		if _, ok := idx.byName[name]; !ok {
			idx.byName[name] = i + 1
		}
	}
	return idx
}

// SentinelRow linha do marcador de seção, zero quando ausente
func (idx *RowIndex) SentinelRow() int {
	return idx.sentinelRow
}

// Resolve localiza a linha do funcionário: igualdade exata primeiro e, só na
// falta dela, contenção de substring nos dois sentidos (primeiro candidato na
// ordem das linhas, para documentos com nome parcial)
func (idx *RowIndex) Resolve(name string) (int, bool) {
	n := parser.NormalizeName(name)
	if n == "" {
		return 0, false
	}
	if row, ok := idx.byName[n]; ok {
		return row, true
	}
	for i, cell := range idx.rows {
		if cell == "" || i+1 == idx.sentinelRow {
			continue
		}
		if strings.Contains(cell, n) || strings.Contains(n, cell) {
			return i + 1, true
		}
	}
	return 0, false
}

// Engine motor de conciliação contra uma aba da planilha externa
type Engine struct{}

// New cria o motor
func New() *Engine {
	return &Engine{}
}

// Reconcile grava cada registro na linha resolvida pelo nome e devolve os nomes
// não localizados. Nome não encontrado não interrompe a execução; erro de
// escrita interrompe, e as células já gravadas permanecem (sem rollback).
func (e *Engine) Reconcile(records []model.EmployeeRecord, tab sheets.Tab) ([]string, error) {
	colA, err := tab.ReadColumn("A")
	if err != nil {
		return nil, fmt.Errorf("falha ao ler os nomes da aba: %w", err)
	}
	idx := BuildRowIndex(colA)

	notFound := []string{}
	for _, rec := range records {
		row, ok := idx.Resolve(rec.Name)
		if !ok {
			notFound = append(notFound, rec.Name)
			continue
		}
		if err := writeRecord(tab, row, rec, courierRegion(idx, row, rec)); err != nil {
			return notFound, err
		}
	}
	return notFound, nil
}

// courierRegion decide o layout pela posição da linha em relação ao marcador,
// porque é o layout físico da aba que determina quais colunas existem ali;
// sem marcador na aba, vale o vínculo classificado no documento
func courierRegion(idx *RowIndex, row int, rec model.EmployeeRecord) bool {
	if idx.sentinelRow == 0 {
		return rec.Role == model.RoleCourier
	}
	courier := row > idx.sentinelRow
	if courier != (rec.Role == model.RoleCourier) {
		log.Printf("aviso: vínculo %q de %q diverge da região da linha %d; o layout segue a posição", rec.Role, rec.Name, row)
	}
	return courier
}

// writeRecord até quatro escritas de célula por funcionário, não atômicas
func writeRecord(tab sheets.Tab, row int, rec model.EmployeeRecord, courier bool) error {
	type write struct {
		col   string
		value string
	}
	var writes []write
	if courier {
		writes = []write{
			{"B", rec.RegularHours.String()},
			{"C", rec.NightHours.String()},
			{"D", rec.Overtime.String()},
		}
	} else {
		writes = []write{
			{"B", rec.Absence.String()},
			{"C", rec.Overtime.String()},
			{"D", rec.Balance.String()},
			{"E", rec.NightHours.String()},
		}
	}
	for _, w := range writes {
		cell := fmt.Sprintf("%s%d", w.col, row)
		if err := tab.WriteCell(cell, w.value); err != nil {
			log.Printf("escrita parcial de %q interrompida em %s: %v", rec.Name, cell, err)
			return fmt.Errorf("falha ao escrever %s: %w", cell, err)
		}
	}
	return nil
}
