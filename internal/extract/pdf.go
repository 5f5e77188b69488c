// Package extract obtém o texto dos PDFs de cartão de ponto, página a página.
package extract

import (
	"fmt"
	"strings"

	"github.com/dslipak/pdf"
)

// TextFromPDF concatena o texto extraível de todas as páginas do PDF
// Páginas sem texto (digitalizadas como imagem) contribuem com vazio; não há OCR
func TextFromPDF(path string) (string, error) {
	reader, err := pdf.Open(path)
	if err != nil {
		return "", fmt.Errorf("falha ao abrir PDF: %w", err)
	}

	var sb strings.Builder
	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			// página sem texto extraível
			continue
		}
		sb.WriteString(text)
		sb.WriteString("\n")
	}
	return sb.String(), nil
}
