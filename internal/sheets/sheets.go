// Package sheets define a capacidade de planilha tabular usada pela conciliação.
// Autenticação e transporte ficam fora do núcleo: a implementação concreta é
// injetada na borda da conciliação.
package sheets

// Store abre planilhas por identificador
type Store interface {
	Open(id string) (Spreadsheet, error)
}

// Spreadsheet planilha com abas nomeadas
type Spreadsheet interface {
	// Tab abre a aba pelo nome, criando-a quando não existe
	Tab(name string) (Tab, error)
}

// Tab aba endereçada por células no formato A1
type Tab interface {
	// ReadColumn lê a coluna inteira como lista ordenada de células
	ReadColumn(col string) ([]string, error)
	// WriteCell escreve uma única célula
	WriteCell(cell, value string) error
	// WriteRange escreve um retângulo de valores a partir da célula inicial
	WriteRange(startCell string, rows [][]string) error
	// Clear remove todo o conteúdo da aba
	Clear() error
}
