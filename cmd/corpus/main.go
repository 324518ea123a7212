package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/mfarouk/trend-corpus/internal/config"
	"github.com/mfarouk/trend-corpus/internal/corpus"
	"github.com/mfarouk/trend-corpus/internal/ingest"
	"github.com/mfarouk/trend-corpus/internal/storage"
	"github.com/mfarouk/trend-corpus/pkg/logger"
)

func main() {
	isTrend := flag.Bool("t", false, "label the incoming series as a trend")
	filePath := flag.String("f", "", "corpus file path (overrides STORAGE_FILE_PATH)")
	flag.Parse()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}
	if *filePath != "" {
		cfg.Storage.Backend = "file"
		cfg.Storage.FilePath = *filePath
	}

	// Initialize logger
	if err := logger.Init(cfg.LogLevel, cfg.Environment); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("Starting corpus builder",
		logger.Bool("is_trend", *isTrend),
		logger.String("backend", cfg.Storage.Backend),
		logger.String("file_path", cfg.Storage.FilePath),
	)

	if err := run(context.Background(), cfg, *isTrend); err != nil {
		logger.Fatal("Corpus build failed", logger.ErrorField(err))
	}
}

func run(ctx context.Context, cfg *config.Config, isTrend bool) error {
	points, err := ingest.ReadPoints(os.Stdin)
	if err != nil {
		return fmt.Errorf("failed to read series from stdin: %w", err)
	}

	lib, err := corpus.NewLibrary(cfg.Corpus)
	if err != nil {
		return err
	}
	if err := lib.AddSeries(points, isTrend); err != nil {
		return err
	}

	store, err := storage.New(cfg.Storage, cfg.Corpus)
	if err != nil {
		return fmt.Errorf("failed to open corpus store: %w", err)
	}
	defer store.Close()

	if err := storage.MergeFrom(ctx, store, lib); err != nil {
		return err
	}
	if err := store.Save(ctx, lib); err != nil {
		return fmt.Errorf("failed to save corpus: %w", err)
	}

	logger.Info("Corpus saved",
		logger.Int("raw_points", len(points)),
		logger.Int("trends", len(lib.Trends())),
		logger.Int("non_trends", len(lib.NonTrends())),
	)
	return nil
}
