// Package main contains the pulse CLI commands.
package main

import (
	"context"
	"fmt"

	"github.com/spf13/viper"

	"github.com/Jpcostan/pulse/internal/config"
	"github.com/Jpcostan/pulse/internal/service"
	"github.com/Jpcostan/pulse/internal/storage"
)

// initStorage initializes the storage service with proper path expansion.
func initStorage(ctx context.Context) (service.Storage, error) {
	dbPath := config.DatabasePath(viper.GetString("database.path"))

	store, err := storage.NewSQLiteStorage(dbPath)
	if err != nil {
		return nil, err
	}

	if err := store.Migrate(ctx); err != nil {
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return store, nil
}
