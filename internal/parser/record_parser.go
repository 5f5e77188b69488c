package parser

import (
	"regexp"
	"strings"

	"github.com/raianjesus3-tech/calculadora-de-horas/internal/model"
)

var (
	nameRe     = regexp.MustCompile(`(?is)NOME\s+DO\s+FUNCION[AÁ]RIO\s*:\s*(.+?)\s+PIS`)
	jobTitleRe = regexp.MustCompile(`(?i)NOME\s+DO\s+CARGO\s*:\s*(.+)`)
	totalsRe   = regexp.MustCompile(`(?i)TOTAIS\s+([0-9:\s]+)`)
	tokenRe    = regexp.MustCompile(`\d{1,3}:\d{2}(?::\d{2})?`)
	courierRe  = regexp.MustCompile(`\bMOTOBOY\b`)
)

// field papel posicional de um token da linha TOTAIS
type field int

const (
	fieldDiscard field = iota // noturnas trabalhadas como normais; fora do relatório
	fieldRegular
	fieldNight
	fieldAbsence
	fieldOvertime
)

// Layouts observados nos extratos por loja. O significado de cada token depende
// da quantidade presente e do vínculo: a variante com a coluna de
// noturnas-normais à esquerda só existe para mensalistas, e tokens além dos
// mapeados são descartados de propósito (segunda faixa de extra não entra aqui).
var standardLayouts = map[int][]field{
	1: {fieldRegular},
	2: {fieldRegular, fieldOvertime},
	3: {fieldRegular, fieldNight, fieldOvertime},
	4: {fieldRegular, fieldNight, fieldAbsence, fieldOvertime},
	5: {fieldDiscard, fieldRegular, fieldNight, fieldAbsence, fieldOvertime},
}

var courierLayouts = map[int][]field{
	1: {fieldRegular},
	2: {fieldRegular, fieldOvertime},
	3: {fieldRegular, fieldNight, fieldOvertime},
	4: {fieldRegular, fieldNight, fieldAbsence, fieldOvertime},
}

// layoutFor escolhe a ordem dos campos pelo vínculo e quantidade de tokens
func layoutFor(role model.Role, count int) []field {
	table, max := standardLayouts, 5
	if role == model.RoleCourier {
		table, max = courierLayouts, 4
	}
	if count > max {
		count = max
	}
	return table[count]
}

// ParseBlock extrai o registro de um bloco de funcionário
// Bloco sem o padrão de nome ou sem a linha TOTAIS é pulado (ok=false), sem erro
func ParseBlock(block string) (model.EmployeeRecord, bool) {
	nameMatch := nameRe.FindStringSubmatch(block)
	if nameMatch == nil {
		return model.EmployeeRecord{}, false
	}
	name := strings.Join(strings.Fields(nameMatch[1]), " ")

	jobTitle := ""
	if m := jobTitleRe.FindStringSubmatch(block); m != nil {
		jobTitle = strings.ToUpper(strings.TrimSpace(m[1]))
	}

	role := model.RoleStandard
	if courierRe.MatchString(jobTitle) {
		role = model.RoleCourier
	}

	totalsMatch := totalsRe.FindStringSubmatch(block)
	if totalsMatch == nil {
		return model.EmployeeRecord{}, false
	}
	tokens := tokenRe.FindAllString(totalsMatch[1], -1)

	var regular, night, absence, overtime model.Duration
	for i, f := range layoutFor(role, len(tokens)) {
		value := model.ParseDuration(tokens[i])
		switch f {
		case fieldRegular:
			regular = value
		case fieldNight:
			night = value
		case fieldAbsence:
			absence = value
		case fieldOvertime:
			overtime = value
		}
	}

	return model.NewEmployeeRecord(name, jobTitle, role, regular, night, absence, overtime), true
}

// ParseDocument segmenta o texto e extrai os registros na ordem do documento
func ParseDocument(text string) []model.EmployeeRecord {
	var records []model.EmployeeRecord
	for _, block := range SegmentDocument(text) {
		if record, ok := ParseBlock(block); ok {
			records = append(records, record)
		}
	}
	return records
}
