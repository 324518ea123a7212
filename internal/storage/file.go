package storage

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/mfarouk/trend-corpus/internal/config"
	"github.com/mfarouk/trend-corpus/internal/corpus"
)

// FileStore implements LibraryStore on a single JSON file. It is the default
// backend.
type FileStore struct {
	path string
	cfg  config.CorpusConfig
}

// NewFileStore creates a file-backed store at the given path
func NewFileStore(path string, cfg config.CorpusConfig) *FileStore {
	return &FileStore{
		path: path,
		cfg:  cfg,
	}
}

// Save writes the library snapshot to the file, replacing any previous
// contents
func (s *FileStore) Save(ctx context.Context, lib *corpus.Library) (err error) {
	start := time.Now()
	defer func() { observeOp("file", "save", start, err) }()

	data, err := encodeLibrary(lib)
	if err != nil {
		return fmt.Errorf("failed to encode library: %w", err)
	}

	if err = os.WriteFile(s.path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write corpus file %s: %w", s.path, err)
	}

	return nil
}

// Load reads the library snapshot from the file. A missing, empty or corrupt
// file yields a fresh empty library.
func (s *FileStore) Load(ctx context.Context) (lib *corpus.Library, err error) {
	start := time.Now()
	defer func() { observeOp("file", "load", start, err) }()

	data, readErr := os.ReadFile(s.path)
	if readErr != nil {
		if os.IsNotExist(readErr) {
			return corpus.NewLibrary(s.cfg)
		}
		err = fmt.Errorf("failed to read corpus file %s: %w", s.path, readErr)
		return nil, err
	}

	return decodeLibrary(data, s.cfg, s.path)
}

// Close is a no-op for the file backend
func (s *FileStore) Close() error {
	return nil
}
