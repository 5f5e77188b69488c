package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/raianjesus3-tech/calculadora-de-horas/internal/config"
	"github.com/raianjesus3-tech/calculadora-de-horas/internal/server"
)

var (
	port    = flag.Int("port", 0, "porta do serviço (config.toml tem prioridade)")
	devMode = flag.Bool("dev", false, "modo de desenvolvimento")
	dataDir = flag.String("dataDir", "", "diretório de dados (sobrepõe o config)")
)

func main() {
	flag.Parse()

	fmt.Println("==========================================")
	fmt.Println("  Calculadora de Horas - Cartão de Ponto")
	fmt.Println("==========================================")

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Printf("falha ao carregar a configuração, usando padrões: %v", err)
		cfg = config.DefaultConfig()
	}

	if *port > 0 {
		cfg.Server.Port = *port
	}
	if *devMode {
		cfg.Server.DevMode = true
	}
	if *dataDir != "" {
		cfg.Data.DataDir = *dataDir
	}

	dir, err := config.EnsureDataDir(cfg)
	if err != nil {
		log.Printf("falha ao criar o diretório de dados: %v", err)
	} else {
		fmt.Printf("diretório de dados: %s\n", dir)
	}

	srv := server.NewServer(cfg)

	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	fmt.Printf("serviço em http://localhost%s\n", addr)

	go func() {
		if err := srv.Run(addr); err != nil {
			log.Fatalf("falha ao iniciar o servidor: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	fmt.Println("encerrando...")
	if err := srv.Close(); err != nil {
		log.Printf("falha ao encerrar: %v", err)
	}
}
