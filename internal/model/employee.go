package model

// Role vínculo do funcionário
type Role string

const (
	RoleStandard Role = "mensalista"
	RoleCourier  Role = "motoboy"
)

// EmployeeRecord registro consolidado de um funcionário do "Extrato por Período"
// Imutável depois de montado; o saldo é sempre derivado de extra e falta
type EmployeeRecord struct {
	Name         string   `json:"nome"`
	JobTitle     string   `json:"cargo"`
	Role         Role     `json:"vinculo"`
	RegularHours Duration `json:"totalNormais"`
	NightHours   Duration `json:"totalNoturno"`
	Absence      Duration `json:"falta"`
	Overtime     Duration `json:"extra70"`
	Balance      Duration `json:"saldo"`
}

// NewEmployeeRecord monta o registro recalculando o saldo (extra - falta)
func NewEmployeeRecord(name, jobTitle string, role Role, regular, night, absence, overtime Duration) EmployeeRecord {
	return EmployeeRecord{
		Name:         name,
		JobTitle:     jobTitle,
		Role:         role,
		RegularHours: regular,
		NightHours:   night,
		Absence:      absence,
		Overtime:     overtime,
		Balance:      Delta(overtime, absence),
	}
}

// StoreMonthKey par (loja, mês) que identifica a aba de destino na planilha
type StoreMonthKey struct {
	Store string `json:"loja"`
	Month string `json:"mes"`
}

// TabName nome da aba: MES_LOJA, ou SEM_MES_LOJA quando o mês não foi identificado
// Vazio quando a loja não foi identificada
func (k StoreMonthKey) TabName() string {
	if k.Store == "" {
		return ""
	}
	if k.Month == "" {
		return "SEM_MES_" + k.Store
	}
	return k.Month + "_" + k.Store
}
