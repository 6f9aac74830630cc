package worker

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"fincheck/internal/amqp"
	"fincheck/internal/core"
	"fincheck/internal/export/memory"
	"fincheck/internal/storage"
)

func newTestRepo(t *testing.T) *storage.SQLiteRepository {
	t.Helper()
	repo, err := storage.NewSQLiteRepository(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("open repository: %v", err)
	}
	t.Cleanup(func() { repo.Close() })
	return repo
}

func seedTransaction(t *testing.T, repo *storage.SQLiteRepository) core.Transaction {
	t.Helper()
	ctx := context.Background()
	user, err := repo.CreateUser(ctx, core.User{Name: "Ada", Role: core.RoleFounder})
	if err != nil {
		t.Fatalf("create user: %v", err)
	}
	cat, err := repo.CreateCategory(ctx, core.Category{Name: "Ops"})
	if err != nil {
		t.Fatalf("create category: %v", err)
	}
	tx, err := repo.CreateTransaction(ctx, core.Transaction{
		Type:        core.Debit,
		Amount:      core.Money{Cents: 4200},
		CategoryID:  cat.ID,
		CreatedByID: user.ID,
		Note:        "hosting",
	})
	if err != nil {
		t.Fatalf("create transaction: %v", err)
	}
	return tx
}

func TestHandleExportEvent(t *testing.T) {
	repo := newTestRepo(t)
	writer := memory.New()
	w := NewExportWorker(repo, writer, 25)
	ctx := context.Background()

	tx := seedTransaction(t, repo)

	if err := w.HandleEvent(ctx, amqp.NewExportEvent(tx.ID, 1)); err != nil {
		t.Fatalf("handle: %v", err)
	}

	rows := writer.Rows()
	if len(rows) != 1 {
		t.Fatalf("expected 1 exported row, got %d", len(rows))
	}
	if rows[0].TransactionID != tx.ID || rows[0].Category != "Ops" || rows[0].CreatedBy != "Ada" {
		t.Fatalf("unexpected row %+v", rows[0])
	}

	pending, err := repo.PendingExports(ctx, 10)
	if err != nil {
		t.Fatalf("pending: %v", err)
	}
	if len(pending) != 0 {
		t.Fatalf("row should be marked exported, still pending: %+v", pending)
	}
}

func TestHandleEventForMissingTransaction(t *testing.T) {
	repo := newTestRepo(t)
	w := NewExportWorker(repo, memory.New(), 25)

	// Deleted between publish and consume; the delivery must be acked,
	// not requeued.
	if err := w.HandleEvent(context.Background(), amqp.NewExportEvent(99999, 1)); err != nil {
		t.Fatalf("missing transaction should not error: %v", err)
	}
}

func TestHandleDeleteAndUnknownEvents(t *testing.T) {
	repo := newTestRepo(t)
	writer := memory.New()
	w := NewExportWorker(repo, writer, 25)
	ctx := context.Background()

	if err := w.HandleEvent(ctx, amqp.NewDeleteEvent(1)); err != nil {
		t.Fatalf("delete event: %v", err)
	}
	if err := w.HandleEvent(ctx, &amqp.TransactionEvent{Kind: "mystery", ID: 1}); err != nil {
		t.Fatalf("unknown kind should be dropped without error: %v", err)
	}
	if len(writer.Rows()) != 0 {
		t.Fatal("neither event should write to the ledger")
	}
}

type failingWriter struct{}

func (failingWriter) Append(context.Context, core.ExportRow) (string, error) {
	return "", errors.New("ledger unavailable")
}

func TestWriterFailureMarksError(t *testing.T) {
	repo := newTestRepo(t)
	w := NewExportWorker(repo, failingWriter{}, 25)
	ctx := context.Background()

	tx := seedTransaction(t, repo)

	if err := w.HandleEvent(ctx, amqp.NewExportEvent(tx.ID, 1)); err == nil {
		t.Fatal("writer failure must surface an error")
	}

	// The row moves to the error state and leaves the pending queue.
	pending, err := repo.PendingExports(ctx, 10)
	if err != nil {
		t.Fatalf("pending: %v", err)
	}
	if len(pending) != 0 {
		t.Fatalf("errored row must not stay pending: %+v", pending)
	}
}

func TestProcessPending(t *testing.T) {
	repo := newTestRepo(t)
	writer := memory.New()
	w := NewExportWorker(repo, writer, 25)
	ctx := context.Background()

	tx := seedTransaction(t, repo)

	if err := w.ProcessPending(ctx); err != nil {
		t.Fatalf("sweep: %v", err)
	}
	if len(writer.Rows()) != 1 || writer.Rows()[0].TransactionID != tx.ID {
		t.Fatalf("sweep did not export the pending row: %+v", writer.Rows())
	}

	// A second sweep finds nothing.
	if err := w.ProcessPending(ctx); err != nil {
		t.Fatalf("empty sweep: %v", err)
	}
	if len(writer.Rows()) != 1 {
		t.Fatal("empty sweep must not re-export")
	}
}

func TestProcessPendingReportsFailures(t *testing.T) {
	repo := newTestRepo(t)
	w := NewExportWorker(repo, failingWriter{}, 25)
	ctx := context.Background()

	seedTransaction(t, repo)

	if err := w.ProcessPending(ctx); err == nil {
		t.Fatal("sweep with failing writer must report an error")
	}
}
