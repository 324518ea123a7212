package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	_ "github.com/lib/pq" // PostgreSQL driver
	"github.com/mfarouk/trend-corpus/internal/config"
	"github.com/mfarouk/trend-corpus/internal/corpus"
	"github.com/mfarouk/trend-corpus/pkg/logger"
)

const createSnapshotsTable = `
CREATE TABLE IF NOT EXISTS corpus_snapshots (
	name       TEXT PRIMARY KEY,
	snapshot   JSONB NOT NULL,
	updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
)`

// PostgresStore implements LibraryStore on a PostgreSQL table, one snapshot
// row per corpus name.
type PostgresStore struct {
	db         *sql.DB
	corpusName string
	cfg        config.CorpusConfig
}

// NewPostgresStore creates a Postgres-backed store for the named corpus
func NewPostgresStore(dbConfig config.DatabaseConfig, corpusName string, cfg config.CorpusConfig) (*PostgresStore, error) {
	if corpusName == "" {
		return nil, fmt.Errorf("corpus name cannot be empty")
	}

	// Build connection string
	connStr := fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		dbConfig.Host,
		dbConfig.Port,
		dbConfig.User,
		dbConfig.Password,
		dbConfig.Database,
		dbConfig.SSLMode,
	)

	db, err := sql.Open("postgres", connStr)
	if err != nil {
		return nil, fmt.Errorf("failed to open database connection: %w", err)
	}

	// Configure connection pool
	db.SetMaxOpenConns(dbConfig.MaxConnections)
	db.SetMaxIdleConns(dbConfig.MaxIdleConns)
	db.SetConnMaxLifetime(dbConfig.ConnMaxLifetime)

	// Test connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	if _, err := db.ExecContext(ctx, createSnapshotsTable); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ensure corpus_snapshots table: %w", err)
	}

	logger.Info("Connected to PostgreSQL",
		logger.String("host", dbConfig.Host),
		logger.Int("port", dbConfig.Port),
		logger.String("database", dbConfig.Database),
		logger.String("corpus", corpusName),
	)

	return &PostgresStore{
		db:         db,
		corpusName: corpusName,
		cfg:        cfg,
	}, nil
}

// Save upserts the library snapshot into the corpus row
func (s *PostgresStore) Save(ctx context.Context, lib *corpus.Library) (err error) {
	start := time.Now()
	defer func() { observeOp("postgres", "save", start, err) }()

	data, err := encodeLibrary(lib)
	if err != nil {
		return fmt.Errorf("failed to encode library: %w", err)
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO corpus_snapshots (name, snapshot, updated_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (name) DO UPDATE
		SET snapshot = EXCLUDED.snapshot, updated_at = NOW()`,
		s.corpusName, data,
	)
	if err != nil {
		return fmt.Errorf("failed to upsert corpus snapshot: %w", err)
	}

	return nil
}

// Load reads the corpus row; a missing row yields a fresh empty library
func (s *PostgresStore) Load(ctx context.Context) (lib *corpus.Library, err error) {
	start := time.Now()
	defer func() { observeOp("postgres", "load", start, err) }()

	var data []byte
	row := s.db.QueryRowContext(ctx,
		`SELECT snapshot FROM corpus_snapshots WHERE name = $1`, s.corpusName)
	if scanErr := row.Scan(&data); scanErr != nil {
		if errors.Is(scanErr, sql.ErrNoRows) {
			return corpus.NewLibrary(s.cfg)
		}
		err = fmt.Errorf("failed to read corpus snapshot: %w", scanErr)
		return nil, err
	}

	return decodeLibrary(data, s.cfg, "postgres:"+s.corpusName)
}

// Close closes the database connection
func (s *PostgresStore) Close() error {
	return s.db.Close()
}
