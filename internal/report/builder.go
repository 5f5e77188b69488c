// Package report monta as tabelas de fechamento a partir dos registros extraídos.
package report

import (
	"github.com/raianjesus3-tech/calculadora-de-horas/internal/model"
)

// CourierSectionTitle título da seção que separa o bloco de motoboys
const CourierSectionTitle = "MOTOBOYS HORISTAS"

// Table tabela pronta para exibição e exportação
type Table struct {
	Title   string     `json:"titulo"`
	Columns []string   `json:"colunas"`
	Rows    [][]string `json:"linhas"`
}

// As colunas seguem a ordem das colunas B.. das abas de conciliação, para os
// dois caminhos (exportação local e planilha externa) ficarem consistentes
var (
	standardColumns = []string{"NOME", "FALTA", "EXTRA 70%", "SALDO", "TOTAL NOTURNO"}
	courierColumns  = []string{"NOME", "TOTAL NORMAIS", "TOTAL NOTURNO", "EXTRA 70%"}
)

// BuildStandard tabela dos mensalistas
func BuildStandard(records []model.EmployeeRecord) Table {
	t := Table{Title: "FUNCIONÁRIOS", Columns: standardColumns}
	for _, r := range records {
		if r.Role != model.RoleStandard {
			continue
		}
		t.Rows = append(t.Rows, []string{
			r.Name,
			r.Absence.String(),
			r.Overtime.String(),
			r.Balance.String(),
			r.NightHours.String(),
		})
	}
	return t
}

// BuildCourier tabela dos motoboys horistas
func BuildCourier(records []model.EmployeeRecord) Table {
	t := Table{Title: CourierSectionTitle, Columns: courierColumns}
	for _, r := range records {
		if r.Role != model.RoleCourier {
			continue
		}
		t.Rows = append(t.Rows, []string{
			r.Name,
			r.RegularHours.String(),
			r.NightHours.String(),
			r.Overtime.String(),
		})
	}
	return t
}
