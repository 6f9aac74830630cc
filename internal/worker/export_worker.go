// Package worker moves accepted transactions from the SQLite export
// queue to the configured report ledger.
package worker

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"fincheck/internal/amqp"
	"fincheck/internal/core"
	"fincheck/internal/export"
	"fincheck/internal/storage"
)

type ExportWorker struct {
	storage   *storage.SQLiteRepository
	writer    export.ReportWriter
	batchSize int
}

func NewExportWorker(storage *storage.SQLiteRepository, writer export.ReportWriter, batchSize int) *ExportWorker {
	return &ExportWorker{
		storage:   storage,
		writer:    writer,
		batchSize: batchSize,
	}
}

// HandleEvent processes one AMQP transaction event. Returning an
// error requeues the delivery.
func (w *ExportWorker) HandleEvent(ctx context.Context, event *amqp.TransactionEvent) error {
	switch event.Kind {
	case amqp.KindExport:
		return w.exportTransaction(ctx, event.ID)
	case amqp.KindDelete:
		// The hard delete already happened in storage. Removing
		// spreadsheet rows is out of scope, so the tombstone is
		// only recorded in the log.
		slog.InfoContext(ctx, "Transaction deleted upstream", "id", event.ID)
		return nil
	default:
		slog.WarnContext(ctx, "Unknown event kind, dropping", "kind", event.Kind, "id", event.ID)
		return nil
	}
}

func (w *ExportWorker) exportTransaction(ctx context.Context, id int64) error {
	row, err := w.storage.ExportRow(ctx, id)
	if errors.Is(err, core.ErrNotFound) {
		// Deleted between publish and consume; nothing to export.
		slog.InfoContext(ctx, "Transaction gone before export", "id", id)
		return nil
	}
	if err != nil {
		return fmt.Errorf("load export row: %w", err)
	}

	ref, err := w.writer.Append(ctx, row)
	if err != nil {
		if markErr := w.storage.MarkExportError(ctx, id); markErr != nil {
			slog.ErrorContext(ctx, "Failed to mark export error", "id", id, "error", markErr)
		}
		return fmt.Errorf("append to ledger: %w", err)
	}

	if err := w.storage.MarkExported(ctx, id); err != nil {
		return fmt.Errorf("mark exported: %w", err)
	}

	slog.InfoContext(ctx, "Transaction exported",
		"id", id,
		"version", row.Version,
		"ledger_ref", ref)
	return nil
}

// ProcessPending sweeps transactions stuck in the pending state. It is
// the backup path for lost or never-published events.
func (w *ExportWorker) ProcessPending(ctx context.Context) error {
	pending, err := w.storage.PendingExports(ctx, w.batchSize)
	if err != nil {
		return fmt.Errorf("get pending exports: %w", err)
	}
	if len(pending) == 0 {
		return nil
	}

	slog.InfoContext(ctx, "Processing pending exports", "count", len(pending))

	var failed int
	for _, p := range pending {
		if err := w.exportTransaction(ctx, p.ID); err != nil {
			slog.ErrorContext(ctx, "Pending export failed", "id", p.ID, "error", err)
			failed++
		}
	}
	if failed > 0 {
		return fmt.Errorf("pending sweep: %d of %d exports failed", failed, len(pending))
	}
	return nil
}
