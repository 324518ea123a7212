package storage

import (
	"context"
	"fmt"

	"github.com/mfarouk/trend-corpus/internal/config"
	"github.com/mfarouk/trend-corpus/internal/corpus"
)

// LibraryStore defines the interface for corpus persistence operations.
// A store is bound to one corpus location (file path, database row or Redis
// key) at construction.
type LibraryStore interface {
	// Save serializes the library's full state to durable storage
	Save(ctx context.Context, lib *corpus.Library) error

	// Load deserializes a library; a missing, empty or corrupt corpus
	// yields a fresh empty library, never an error
	Load(ctx context.Context) (*corpus.Library, error)

	// Close closes the storage connection
	Close() error
}

// New creates the store selected by the storage configuration
func New(cfg config.StorageConfig, corpusCfg config.CorpusConfig) (LibraryStore, error) {
	switch cfg.Backend {
	case "file":
		return NewFileStore(cfg.FilePath, corpusCfg), nil
	case "postgres":
		return NewPostgresStore(cfg.Database, cfg.CorpusName, corpusCfg)
	case "redis":
		return NewRedisStore(cfg.Redis, cfg.CorpusName, corpusCfg)
	default:
		return nil, fmt.Errorf("unknown storage backend: %s", cfg.Backend)
	}
}

// MergeFrom loads any previously persisted corpus and combines it into lib.
// An absent or empty corpus leaves lib unchanged; a label collision from
// Combine propagates to the caller.
func MergeFrom(ctx context.Context, store LibraryStore, lib *corpus.Library) error {
	existing, err := store.Load(ctx)
	if err != nil {
		return fmt.Errorf("failed to load existing corpus: %w", err)
	}
	if err := lib.Combine(existing); err != nil {
		return fmt.Errorf("failed to combine with existing corpus: %w", err)
	}
	return nil
}
