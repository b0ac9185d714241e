// ====================================
// File: cmd/api/main.go
// ====================================
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/rovshanmuradov/solana-api/internal/config"
	"github.com/rovshanmuradov/solana-api/internal/logger"
	"github.com/rovshanmuradov/solana-api/internal/server"
)

func main() {
	configPath := flag.String("config", "", "optional path to config file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.Init(cfg.DebugLogging, cfg.LogFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	log.Info("starting solana instruction service",
		zap.String("address", cfg.ListenAddr()))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	srv := server.New(cfg, log)
	if err := srv.Start(ctx); err != nil {
		log.Fatal("server exited with error", zap.Error(err))
	}

	log.Info("server stopped")
}
