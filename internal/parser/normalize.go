package parser

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// NormalizeName canonicaliza nomes para comparação: maiúsculas, sem acento,
// pontuação vira espaço, espaços consecutivos colapsados
// Toda igualdade de nomes no sistema é NormalizeName(a) == NormalizeName(b)
func NormalizeName(text string) string {
	text = strings.ToUpper(text)
	text = stripDiacritics(text)

	var b strings.Builder
	b.Grow(len(text))
	for _, r := range text {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
		} else {
			b.WriteRune(' ')
		}
	}
	return strings.Join(strings.Fields(b.String()), " ")
}

// stripDiacritics decompõe em NFKD e remove os marcadores combinantes
func stripDiacritics(text string) string {
	t := transform.Chain(norm.NFKD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, text)
	if err != nil {
		return text
	}
	return out
}
