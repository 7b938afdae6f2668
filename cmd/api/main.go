package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	_ "payu_bridge/docs"
	"payu_bridge/internal/adapter/http/routes"
	"payu_bridge/internal/infrastructure/config"
	"payu_bridge/internal/infrastructure/logging"

	_ "github.com/joho/godotenv/autoload"
	"go.uber.org/zap"
)

// @title           PayU Bridge API
// @version         1.0
// @description     Bridges Ecwid checkout to PayU and reports payments back to the store.

// @host localhost:3000

// @BasePath  /

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}

	log, err := logging.New(cfg.LogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = log.Sync() }()

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := routes.Run(ctx, cfg, log); err != nil {
		log.Error("server stopped", zap.Error(err))
		cancel()
		_ = log.Sync()
		os.Exit(1)
	}
}
