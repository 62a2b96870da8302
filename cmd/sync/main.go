package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/riskibarqy/match-predictor/external/footballdata"
	"github.com/riskibarqy/match-predictor/internal/app"
	"github.com/riskibarqy/match-predictor/internal/config"
	"github.com/riskibarqy/match-predictor/internal/domain/match"
	"github.com/riskibarqy/match-predictor/internal/infrastructure/repository/csvfile"
	"github.com/riskibarqy/match-predictor/internal/infrastructure/repository/postgres"
	"github.com/riskibarqy/match-predictor/internal/platform/logging"
	"github.com/riskibarqy/match-predictor/internal/usecase"
)

func main() {
	config.LoadDotEnv()

	cfg, err := config.LoadSync()
	if err != nil {
		fmt.Fprintf(os.Stderr, "load sync config: %v\n", err)
		os.Exit(1)
	}

	logger := logging.New(logging.Options{Level: cfg.LogLevel}).Named("sync")
	logging.SetDefault(logger)
	defer func() { _ = logger.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, logger); err != nil {
		logger.Error("sync failed", "error", err)
		_ = logger.Sync()
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg config.SyncConfig, logger *logging.Logger) error {
	client := footballdata.NewClient(footballdata.ClientConfig{
		BaseURL:    cfg.BaseURL,
		Token:      cfg.Token,
		Timeout:    cfg.Timeout,
		MaxRetries: cfg.MaxRetries,
		Breaker:    cfg.Breaker,
		Logger:     logger.Named("footballdata"),
	})

	writers := []match.Writer{csvfile.NewWriter(cfg.DatasetPath)}
	if cfg.WritePostgres {
		db, err := app.OpenDB(ctx, cfg.DBURL, cfg.DBDisablePreparedBinary)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer db.Close()
		writers = append(writers, postgres.NewMatchHistoryRepository(db))
	}

	service := usecase.NewSyncService(client, usecase.SyncConfig{
		Competitions: cfg.Competitions,
		Workers:      cfg.Workers,
		MatchLimit:   cfg.MatchLimit,
	}, logger, writers...)

	result, err := service.Run(ctx)
	if err != nil {
		return err
	}
	logger.Info("sync complete",
		"dataset_path", cfg.DatasetPath,
		"postgres", cfg.WritePostgres,
		"teams", result.Teams,
		"records", result.Records,
	)
	return nil
}
