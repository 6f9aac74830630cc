package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"fincheck/internal/amqp"
	"fincheck/internal/cli"
	"fincheck/internal/export"
	"fincheck/internal/worker"
)

func main() {
	logger := cli.SetupLogger()
	cli.LoadEnvFile()
	cfg := cli.LoadAndValidateConfig(logger)

	logger.Info("Starting fincheck-worker")

	store := cli.InitStorage(logger, cfg.SQLiteDBPath)
	defer store.Close()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	writer, err := export.NewWriter(ctx, cfg, logger)
	if err != nil {
		logger.Error("Failed to initialize export writer", "error", err)
		os.Exit(1)
	}
	if writer == nil {
		logger.Info("Export backend disabled, nothing to do", "backend", cfg.ExportBackend)
		return
	}

	exportWorker := worker.NewExportWorker(store, writer, cfg.ExportBatchSize)

	// Catch anything recorded while the worker was down.
	if err := exportWorker.ProcessPending(ctx); err != nil {
		logger.Error("Startup pending sweep failed", "error", err)
	}

	var amqpClient *amqp.Client
	if cfg.AMQPURL != "" {
		amqpClient, err = amqp.NewClient(cfg.AMQPURL, cfg.AMQPExchange, cfg.AMQPQueue)
		if err != nil {
			logger.Error("Failed to initialize AMQP client", "error", err)
			os.Exit(1)
		}
		defer amqpClient.Close()
	} else {
		logger.Info("AMQP disabled - relying on periodic pending sweep only")
	}

	g, gctx := errgroup.WithContext(ctx)

	if amqpClient != nil {
		g.Go(func() error {
			err := amqpClient.Consume(gctx, func(event *amqp.TransactionEvent) error {
				return exportWorker.HandleEvent(gctx, event)
			})
			if errors.Is(err, context.Canceled) {
				return nil
			}
			return err
		})
	}

	// Periodic sweep backs up the queue: publish failures and missed
	// messages still get exported eventually.
	g.Go(func() error {
		ticker := time.NewTicker(cfg.ExportInterval)
		defer ticker.Stop()
		for {
			select {
			case <-gctx.Done():
				return nil
			case <-ticker.C:
				if err := exportWorker.ProcessPending(gctx); err != nil {
					logger.Error("Periodic pending sweep failed", "error", err)
				}
			}
		}
	})

	if err := g.Wait(); err != nil {
		logger.Error("Worker stopped with error", "error", err)
		os.Exit(1)
	}
	logger.Info("Worker shutdown complete")
}
