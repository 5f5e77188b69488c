package model

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Duration carga horária em minutos, com sinal
// Renderiza como [-]HH:MM; segundos presentes no documento são descartados
type Duration int

var durationRe = regexp.MustCompile(`^(-?)(\d{1,3}):(\d{2})(?::\d{2})?$`)

// ParseDuration converte um token HH:MM ou HH:MM:SS em minutos
// Token vazio ou malformado vira zero: o cartão de ponto nem sempre traz todas
// as colunas e o relatório não pode falhar por isso
func ParseDuration(text string) Duration {
	m := durationRe.FindStringSubmatch(strings.TrimSpace(text))
	if m == nil {
		return 0
	}
	hours, _ := strconv.Atoi(m[2])
	minutes, _ := strconv.Atoi(m[3])
	total := hours*60 + minutes
	if m[1] == "-" {
		total = -total
	}
	return Duration(total)
}

// Delta diferença a-b, usada para o saldo (extra menos falta)
func Delta(a, b Duration) Duration {
	return a - b
}

// Minutes valor em minutos
func (d Duration) Minutes() int {
	return int(d)
}

// String renderiza como [-]HH:MM com zero à esquerda
func (d Duration) String() string {
	minutes := int(d)
	sign := ""
	if minutes < 0 {
		sign = "-"
		minutes = -minutes
	}
	return fmt.Sprintf("%s%02d:%02d", sign, minutes/60, minutes%60)
}

// MarshalJSON serializa no formato textual HH:MM
func (d Duration) MarshalJSON() ([]byte, error) {
	return []byte(strconv.Quote(d.String())), nil
}

// UnmarshalJSON aceita o mesmo formato textual
func (d *Duration) UnmarshalJSON(data []byte) error {
	text, err := strconv.Unquote(string(data))
	if err != nil {
		return fmt.Errorf("duração inválida: %s", data)
	}
	*d = ParseDuration(text)
	return nil
}
