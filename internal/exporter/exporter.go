// Package exporter gera o artefato de planilha do fechamento: as duas tabelas
// com cabeçalho em destaque e a linha de seção dos motoboys mesclada.
package exporter

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/raianjesus3-tech/calculadora-de-horas/internal/report"
)

// Exporter exportador da planilha de fechamento
type Exporter struct{}

// NewExporter cria o exportador
func NewExporter() *Exporter {
	return &Exporter{}
}

// Export monta o arquivo: tabela de mensalistas, linha de seção destacada
// "MOTOBOYS HORISTAS" e tabela de motoboys logo abaixo
func (e *Exporter) Export(standard, courier report.Table, sheetName string) (*excelize.File, error) {
	f := excelize.NewFile()
	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		return nil, fmt.Errorf("falha ao nomear a aba: %w", err)
	}

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#E2E8F0"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center"},
	})
	sectionStyle, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Color: "#FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#2B6CB0"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center"},
	})

	row := writeTable(f, sheetName, 1, standard, headerStyle)

	// linha de seção dos motoboys, mesclada sobre as colunas da tabela
	start, _ := excelize.CoordinatesToCellName(1, row)
	end, _ := excelize.CoordinatesToCellName(len(courier.Columns), row)
	f.SetCellValue(sheetName, start, courier.Title)
	if err := f.MergeCell(sheetName, start, end); err != nil {
		return nil, fmt.Errorf("falha ao mesclar a linha de seção: %w", err)
	}
	f.SetCellStyle(sheetName, start, end, sectionStyle)
	row++

	writeTable(f, sheetName, row, courier, headerStyle)

	f.SetColWidth(sheetName, "A", "A", 35)
	f.SetColWidth(sheetName, "B", "E", 14)
	f.SetActiveSheet(0)
	return f, nil
}

// writeTable escreve cabeçalho e linhas a partir de row, devolve a próxima linha livre
func writeTable(f *excelize.File, sheet string, row int, t report.Table, headerStyle int) int {
	for j, h := range t.Columns {
		cell, _ := excelize.CoordinatesToCellName(j+1, row)
		f.SetCellValue(sheet, cell, h)
	}
	f.SetRowStyle(sheet, row, row, headerStyle)
	row++

	for _, r := range t.Rows {
		for j, value := range r {
			cell, _ := excelize.CoordinatesToCellName(j+1, row)
			f.SetCellValue(sheet, cell, value)
		}
		row++
	}
	return row
}
