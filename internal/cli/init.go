// Package cli holds the initialization steps shared by cmd/fincheck
// and cmd/fincheck-worker.
package cli

import (
	"log/slog"
	"os"

	"github.com/joho/godotenv"

	"fincheck/internal/config"
	"fincheck/internal/storage"
)

// SetupLogger initializes structured logging and installs the logger
// as the process default.
func SetupLogger() *slog.Logger {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)
	return logger
}

// LoadEnvFile loads .env for local development. A missing file is not
// an error; production deployments set real environment variables.
func LoadEnvFile() {
	_ = godotenv.Load()
}

// LoadAndValidateConfig loads configuration and exits the process on
// validation failure.
func LoadAndValidateConfig(logger *slog.Logger) *config.Config {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		logger.Error("Configuration validation failed", "error", err)
		os.Exit(1)
	}
	return cfg
}

// InitStorage opens the SQLite repository (running migrations) and
// exits the process on failure.
func InitStorage(logger *slog.Logger, dbPath string) *storage.SQLiteRepository {
	repo, err := storage.NewSQLiteRepository(dbPath)
	if err != nil {
		logger.Error("Failed to initialize SQLite repository", "error", err, "path", dbPath)
		os.Exit(1)
	}
	return repo
}
