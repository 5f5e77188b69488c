package config

import (
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

// AppConfig configuração da aplicação
type AppConfig struct {
	Server   ServerConfig   `toml:"server"`
	Data     DataConfig     `toml:"data"`
	Business BusinessConfig `toml:"business"`
	Sheets   SheetsConfig   `toml:"sheets"`
}

// ServerConfig configuração do servidor
type ServerConfig struct {
	Port    int  `toml:"port"`
	DevMode bool `toml:"dev_mode"`
}

// DataConfig configuração de diretórios de dados
type DataConfig struct {
	DataDir string `toml:"data_dir"`
}

// BusinessConfig regras do negócio
type BusinessConfig struct {
	// Códigos de loja procurados no texto do extrato, na ordem da lista
	StoreCodes []string `toml:"store_codes"`
	// Aba usada quando a loja não é identificada; vazio aborta a conciliação
	DefaultTab string `toml:"default_tab"`
}

// SheetsConfig planilha de conciliação
type SheetsConfig struct {
	// Diretório dos arquivos .xlsx que fazem o papel da planilha externa
	Dir string `toml:"dir"`
	// Planilha padrão quando a requisição não informa uma
	SpreadsheetID string `toml:"spreadsheet_id"`
}

// DefaultConfig configuração padrão
func DefaultConfig() *AppConfig {
	return &AppConfig{
		Server: ServerConfig{
			Port:    20333,
			DevMode: false,
		},
		Data: DataConfig{
			DataDir: "data",
		},
		Business: BusinessConfig{
			StoreCodes: []string{"MATRIZ", "CENTRO", "SAVASSI", "BARREIRO"},
			DefaultTab: "",
		},
		Sheets: SheetsConfig{
			Dir:           "",
			SpreadsheetID: "controle-de-horas",
		},
	}
}

// GetExeDir diretório do executável
func GetExeDir() (string, error) {
	exe, err := os.Executable()
	if err != nil {
		return "", err
	}
	return filepath.Dir(exe), nil
}

// LoadConfig carrega config.toml do diretório do executável
// Arquivo ausente não é erro: valem os padrões
func LoadConfig() (*AppConfig, error) {
	config := DefaultConfig()

	exeDir, err := GetExeDir()
	if err != nil {
		exeDir = "."
	}
	configPath := filepath.Join(exeDir, "config.toml")

	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			return config, nil
		}
		return nil, err
	}
	if err := toml.Unmarshal(data, config); err != nil {
		return nil, err
	}

	// overrides por ambiente (E2E / execução local)
	if v := os.Getenv("CALCULADORA_SHEETS_DIR"); v != "" {
		config.Sheets.Dir = v
	}
	if v := os.Getenv("CALCULADORA_SPREADSHEET_ID"); v != "" {
		config.Sheets.SpreadsheetID = v
	}

	return config, nil
}

// SaveConfig grava config.toml no diretório do executável
func SaveConfig(config *AppConfig) error {
	exeDir, err := GetExeDir()
	if err != nil {
		exeDir = "."
	}
	data, err := toml.Marshal(config)
	if err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(exeDir, "config.toml"), data, 0644)
}

// EnsureDataDir garante o diretório de dados e seus subdiretórios
func EnsureDataDir(config *AppConfig) (string, error) {
	exeDir, err := GetExeDir()
	if err != nil {
		exeDir = "."
	}
	dataDir := filepath.Join(exeDir, config.Data.DataDir)
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return "", err
	}

	for _, subdir := range []string{"uploads", "exports", "planilhas"} {
		if err := os.MkdirAll(filepath.Join(dataDir, subdir), 0755); err != nil {
			return "", err
		}
	}
	return dataDir, nil
}

// SheetsDir diretório das planilhas de conciliação
func SheetsDir(config *AppConfig, dataDir string) string {
	if config.Sheets.Dir != "" {
		return config.Sheets.Dir
	}
	return filepath.Join(dataDir, "planilhas")
}
