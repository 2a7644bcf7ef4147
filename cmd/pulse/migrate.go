package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/Jpcostan/pulse/internal/common"
	"github.com/Jpcostan/pulse/internal/config"
	"github.com/Jpcostan/pulse/internal/storage"
)

func migrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Run database migrations",
		Long: `Initialize or update the database schema to the latest version.

This command ensures your local database has all the required
tables and indexes for the application to function properly.`,
		RunE: runMigrate,
	}
}

func runMigrate(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	dbPath := config.DatabasePath(viper.GetString("database.path"))

	common.LogInfo("Starting database migration", common.Fields{"database": dbPath})

	store, err := storage.NewSQLiteStorage(dbPath)
	if err != nil {
		return common.NewUserError("Could not open the database", err)
	}
	defer func() {
		if closeErr := store.Close(); closeErr != nil {
			common.LogError(closeErr, "Failed to close database", nil)
		}
	}()

	if err := store.Migrate(ctx); err != nil {
		return fmt.Errorf("migration failed: %w", err)
	}

	common.LogInfo("Database schema is up to date", common.Fields{"version": storage.ExpectedSchemaVersion})
	return nil
}
