package storage

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/mfarouk/trend-corpus/internal/config"
	"github.com/mfarouk/trend-corpus/internal/corpus"
	"github.com/mfarouk/trend-corpus/pkg/logger"
	"github.com/redis/go-redis/v9"
)

const (
	// DefaultRedisCorpusKeyPrefix is the prefix for corpus snapshot keys
	DefaultRedisCorpusKeyPrefix = "corpus:"
)

// RedisStore implements LibraryStore on a Redis string key holding the
// corpus snapshot as JSON. Snapshots are durable corpus state, so no TTL is
// set.
type RedisStore struct {
	client *redis.Client
	key    string
	cfg    config.CorpusConfig
}

// NewRedisStore creates a Redis-backed store for the named corpus
func NewRedisStore(redisConfig config.RedisConfig, corpusName string, cfg config.CorpusConfig) (*RedisStore, error) {
	if corpusName == "" {
		return nil, fmt.Errorf("corpus name cannot be empty")
	}

	client := redis.NewClient(&redis.Options{
		Addr:         fmt.Sprintf("%s:%d", redisConfig.Host, redisConfig.Port),
		Password:     redisConfig.Password,
		DB:           redisConfig.DB,
		PoolSize:     redisConfig.PoolSize,
		MinIdleConns: redisConfig.MinIdleConns,
	})

	// Test connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("failed to ping Redis: %w", err)
	}

	logger.Info("Connected to Redis",
		logger.String("host", redisConfig.Host),
		logger.Int("port", redisConfig.Port),
		logger.String("corpus", corpusName),
	)

	return &RedisStore{
		client: client,
		key:    DefaultRedisCorpusKeyPrefix + corpusName,
		cfg:    cfg,
	}, nil
}

// Save writes the library snapshot to the corpus key
func (s *RedisStore) Save(ctx context.Context, lib *corpus.Library) (err error) {
	start := time.Now()
	defer func() { observeOp("redis", "save", start, err) }()

	data, err := encodeLibrary(lib)
	if err != nil {
		return fmt.Errorf("failed to encode library: %w", err)
	}

	if err = s.client.Set(ctx, s.key, data, 0).Err(); err != nil {
		return fmt.Errorf("failed to write corpus key %s: %w", s.key, err)
	}

	return nil
}

// Load reads the corpus key; a missing key yields a fresh empty library
func (s *RedisStore) Load(ctx context.Context) (lib *corpus.Library, err error) {
	start := time.Now()
	defer func() { observeOp("redis", "load", start, err) }()

	data, getErr := s.client.Get(ctx, s.key).Bytes()
	if getErr != nil {
		if errors.Is(getErr, redis.Nil) {
			return corpus.NewLibrary(s.cfg)
		}
		err = fmt.Errorf("failed to read corpus key %s: %w", s.key, getErr)
		return nil, err
	}

	return decodeLibrary(data, s.cfg, "redis:"+s.key)
}

// Close closes the Redis connection
func (s *RedisStore) Close() error {
	return s.client.Close()
}
