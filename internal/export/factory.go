package export

import (
	"context"
	"fmt"
	"log/slog"

	"fincheck/internal/config"
	"fincheck/internal/export/google"
	"fincheck/internal/export/memory"
)

// NewWriter builds the ReportWriter named by the configuration.
// A nil writer (with nil error) means export is disabled.
func NewWriter(ctx context.Context, cfg *config.Config, logger *slog.Logger) (ReportWriter, error) {
	if logger == nil {
		logger = slog.Default()
	}

	switch cfg.ExportBackend {
	case config.ExportBackendSheets:
		cli, err := google.NewFromEnv(ctx)
		if err != nil {
			return nil, fmt.Errorf("initialize Google Sheets writer: %w", err)
		}
		logger.Info("Initialized Google Sheets export backend",
			"spreadsheet_id", cfg.GoogleSpreadsheetID,
			"sheet", cfg.GoogleSheetName)
		return cli, nil
	case config.ExportBackendMemory:
		logger.Info("Initialized in-memory export backend")
		return memory.New(), nil
	case config.ExportBackendNone:
		logger.Info("Ledger export disabled")
		return nil, nil
	default:
		return nil, fmt.Errorf("unsupported export backend: %s", cfg.ExportBackend)
	}
}
