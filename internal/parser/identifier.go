package parser

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/raianjesus3-tech/calculadora-de-horas/internal/model"
)

// periodRe início do período do extrato: "DE DD/MM/AAAA ... ATÉ DD/MM/AAAA"
// O mês da primeira data (início do período) define o mês do documento
var periodRe = regexp.MustCompile(`(?i)DE\s+(\d{2})/(\d{2})/(\d{4})`)

// monthNames nomes canônicos dos meses, índice 1-12
var monthNames = [...]string{
	"",
	"JANEIRO", "FEVEREIRO", "MARÇO", "ABRIL", "MAIO", "JUNHO",
	"JULHO", "AGOSTO", "SETEMBRO", "OUTUBRO", "NOVEMBRO", "DEZEMBRO",
}

// IdentifyStore retorna o primeiro código de loja da lista configurada presente
// no texto, vazio quando nenhum aparece
func IdentifyStore(text string, storeCodes []string) string {
	upper := strings.ToUpper(text)
	for _, code := range storeCodes {
		code = strings.ToUpper(strings.TrimSpace(code))
		if code != "" && strings.Contains(upper, code) {
			return code
		}
	}
	return ""
}

// IdentifyMonth extrai o nome do mês do início do período, vazio quando o
// padrão de datas não aparece
func IdentifyMonth(text string) string {
	m := periodRe.FindStringSubmatch(text)
	if m == nil {
		return ""
	}
	month, _ := strconv.Atoi(m[2])
	if month < 1 || month > 12 {
		return ""
	}
	return monthNames[month]
}

// Identify monta a chave (loja, mês) do documento
// Componentes não identificados ficam vazios; a chave degrada para o balde
// SEM_MES_LOJA em vez de abortar o processamento
func Identify(text string, storeCodes []string) model.StoreMonthKey {
	return model.StoreMonthKey{
		Store: IdentifyStore(text, storeCodes),
		Month: IdentifyMonth(text),
	}
}
