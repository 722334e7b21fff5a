package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dtroode/contacts-server/internal/config"
	"github.com/dtroode/contacts-server/internal/database"
	"github.com/dtroode/contacts-server/internal/logger"
)

func runMigrate(cmd *cobra.Command, _ []string) error {
	cfg, err := config.NewConfig()
	if err != nil {
		return err
	}
	lg := logger.New(cfg.LogLevel)

	if cfg.StoreBackend != config.BackendPostgres {
		return fmt.Errorf("migrate requires STORE_BACKEND=%s, got %q", config.BackendPostgres, cfg.StoreBackend)
	}

	if err := database.Migrate(cmd.Context(), cfg.Database.DSN); err != nil {
		return err
	}

	lg.Info("migrations applied")
	return nil
}
