package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/DuminduEdirisinghe/ganitha-sawiya-tracker/internal/config"
	"github.com/DuminduEdirisinghe/ganitha-sawiya-tracker/internal/logger"
	"github.com/DuminduEdirisinghe/ganitha-sawiya-tracker/internal/storage/migrations"
	"github.com/DuminduEdirisinghe/ganitha-sawiya-tracker/internal/storage/postgres"
)

func main() {
	cfg := config.Load()

	logger.Initialize("info")
	log := logger.Migration()

	rollback := flag.Bool("rollback", false, "Rollback the last migration")
	flag.Parse()

	log.Info("Starting migration process", "rollback", *rollback)

	db, err := postgres.Connect(cfg)
	if err != nil {
		log.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}

	if *rollback {
		if err := migrations.RollbackMigration(db); err != nil {
			log.Error("Migration rollback failed", "error", err)
			os.Exit(1)
		}
		log.Info("Migration rollback completed successfully")
	} else {
		if err := migrations.RunMigrations(db); err != nil {
			log.Error("Migration failed", "error", err)
			os.Exit(1)
		}
		log.Info("Migrations completed successfully")
	}

	fmt.Println("Migration process completed!")
}
