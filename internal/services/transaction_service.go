// Package services orchestrates writes that span more than one
// backend: the SQLite store first, then the AMQP export pipeline.
package services

import (
	"context"
	"fmt"
	"log/slog"

	"fincheck/internal/amqp"
	"fincheck/internal/core"
	"fincheck/internal/storage"
)

// TransactionService persists transaction mutations and announces them
// to the export queue. The store is the source of truth: a failed
// publish is logged and retried later by the worker's pending sweep,
// never surfaced to the API caller.
type TransactionService struct {
	storage    *storage.SQLiteRepository
	amqpClient *amqp.Client
}

func NewTransactionService(storage *storage.SQLiteRepository, amqpClient *amqp.Client) *TransactionService {
	return &TransactionService{
		storage:    storage,
		amqpClient: amqpClient,
	}
}

func (s *TransactionService) Create(ctx context.Context, t core.Transaction) (core.Transaction, error) {
	created, err := s.storage.CreateTransaction(ctx, t)
	if err != nil {
		return core.Transaction{}, fmt.Errorf("save transaction: %w", err)
	}

	if err := s.publishExport(ctx, created.ID, 1); err != nil {
		slog.ErrorContext(ctx, "Failed to publish export event", "id", created.ID, "error", err)
	}
	return created, nil
}

func (s *TransactionService) Update(ctx context.Context, t core.Transaction) (core.Transaction, error) {
	updated, err := s.storage.UpdateTransaction(ctx, t)
	if err != nil {
		return core.Transaction{}, err
	}

	if err := s.publishExport(ctx, updated.ID, 0); err != nil {
		slog.ErrorContext(ctx, "Failed to publish export event", "id", updated.ID, "error", err)
	}
	return updated, nil
}

func (s *TransactionService) Delete(ctx context.Context, id int64) error {
	if err := s.storage.DeleteTransaction(ctx, id); err != nil {
		return err
	}

	if s.amqpClient != nil {
		if err := s.amqpClient.PublishDelete(ctx, id); err != nil {
			slog.ErrorContext(ctx, "Failed to publish delete event", "id", id, "error", err)
		}
	}
	return nil
}

func (s *TransactionService) publishExport(ctx context.Context, id, version int64) error {
	if s.amqpClient == nil {
		slog.DebugContext(ctx, "AMQP client not configured, export left to pending sweep", "id", id)
		return nil
	}
	return s.amqpClient.PublishExport(ctx, id, version)
}

// Close releases the AMQP connection. The storage handle is owned by
// the caller and closed separately.
func (s *TransactionService) Close() error {
	if s.amqpClient != nil {
		if err := s.amqpClient.Close(); err != nil {
			return fmt.Errorf("close amqp client: %w", err)
		}
	}
	return nil
}
