package parser

import (
	"regexp"
	"strings"
)

var (
	titleRe     = regexp.MustCompile(`(?i)\bcart[aã]o\s+de\s+ponto\b`)
	nameLabelRe = regexp.MustCompile(`(?i)nome\s+do\s+funcion[aá]rio\s*:`)
)

// SegmentDocument divide o texto bruto do relatório em um bloco por funcionário
// Divide no título recorrente "Cartão de Ponto"; quando o título não aparece,
// cada rótulo "NOME DO FUNCIONÁRIO:" inicia um bloco
func SegmentDocument(text string) []string {
	if titleRe.MatchString(text) {
		return acceptBlocks(titleRe.Split(text, -1))
	}
	return acceptBlocks(splitAtNameLabels(text))
}

// splitAtNameLabels fatia o texto em cada ocorrência do rótulo de nome
func splitAtNameLabels(text string) []string {
	locs := nameLabelRe.FindAllStringIndex(text, -1)
	if len(locs) == 0 {
		return nil
	}
	parts := make([]string, 0, len(locs))
	for i, loc := range locs {
		end := len(text)
		if i+1 < len(locs) {
			end = locs[i+1][0]
		}
		parts = append(parts, text[loc[0]:end])
	}
	return parts
}

func acceptBlocks(parts []string) []string {
	var out []string
	for _, p := range parts {
		if AcceptBlock(p) {
			out = append(out, p)
		}
	}
	return out
}

// AcceptBlock filtro que separa páginas reais de funcionário de cabeçalhos,
// rodapés e páginas de continuação: exige o rótulo de nome e a linha TOTAIS
func AcceptBlock(block string) bool {
	upper := strings.ToUpper(block)
	return strings.Contains(upper, "NOME DO FUNCION") && strings.Contains(upper, "TOTAIS")
}
