package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/DuminduEdirisinghe/ganitha-sawiya-tracker/internal/config"
	"github.com/DuminduEdirisinghe/ganitha-sawiya-tracker/internal/logger"
	"github.com/DuminduEdirisinghe/ganitha-sawiya-tracker/internal/server"
	"github.com/DuminduEdirisinghe/ganitha-sawiya-tracker/internal/storage/object"
	"github.com/DuminduEdirisinghe/ganitha-sawiya-tracker/internal/storage/postgres"
)

func main() {
	cfg := config.Load()

	logLevel := "info"
	if cfg.Server.GinMode == "debug" {
		logLevel = "debug"
	}
	logger.Initialize(logLevel)
	log := logger.Get()

	db, err := postgres.Connect(cfg)
	if err != nil {
		log.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}

	if err := postgres.AutoMigrate(db); err != nil {
		log.Error("Failed to run migrations", "error", err)
		os.Exit(1)
	}

	images, err := object.NewImageStore(cfg)
	if err != nil {
		log.Error("Failed to initialize object storage", "error", err)
		os.Exit(1)
	}

	srv := server.New(cfg, db, images)

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start()
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		if err != nil {
			log.Error("Server error", "error", err)
		}
	case sig := <-quit:
		log.Info("Received shutdown signal", "signal", sig)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Stop(ctx); err != nil {
		log.Error("Failed to stop server gracefully", "error", err)
	}

	if err := postgres.Close(); err != nil {
		log.Error("Failed to close database", "error", err)
	}

	log.Info("Shutdown complete")
}
