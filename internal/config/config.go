package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	// Common
	Environment string
	LogLevel    string

	// Corpus transformation parameters
	Corpus CorpusConfig

	// Persistence backend
	Storage StorageConfig
}

// CorpusConfig holds the numeric parameters consumed by the transformation
// pipeline and reference sizing. Values are fixed once a library is built
// with them; no transformation mutates them. The parameters are persisted
// alongside the corpus they built, so the fields carry JSON tags.
type CorpusConfig struct {
	// ReferenceLength is the target window length extracted by sizing
	ReferenceLength int `json:"reference_length"`
	// NSmooth is the width of the moving-sum smoothing window
	NSmooth int `json:"n_smooth"`
	// Alpha is the exponent applied during spike normalization
	Alpha float64 `json:"alpha"`
}

// StorageConfig holds corpus persistence configuration
type StorageConfig struct {
	// Backend selects the persistence implementation: "file", "postgres" or "redis"
	Backend string
	// FilePath is the corpus file location for the file backend
	FilePath string
	// CorpusName keys the corpus row/entry for the postgres and redis backends
	CorpusName string

	Database DatabaseConfig
	Redis    RedisConfig
}

// DatabaseConfig holds PostgreSQL configuration
type DatabaseConfig struct {
	Host            string
	Port            int
	User            string
	Password        string
	Database        string
	SSLMode         string
	MaxConnections  int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

// RedisConfig holds Redis configuration
type RedisConfig struct {
	Host         string
	Port         int
	Password     string
	DB           int
	PoolSize     int
	MinIdleConns int
}

// DefaultCorpusConfig returns the corpus parameter defaults
func DefaultCorpusConfig() CorpusConfig {
	return CorpusConfig{
		ReferenceLength: 210,
		NSmooth:         80,
		Alpha:           1.2,
	}
}

// Load loads configuration from environment variables
// It automatically loads .env file if it exists in the current directory or parent directories
func Load() (*Config, error) {
	// Try to load .env file (ignore error if it doesn't exist)
	_ = godotenv.Load()

	defaults := DefaultCorpusConfig()

	cfg := &Config{
		Environment: getEnv("ENVIRONMENT", "development"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		Corpus: CorpusConfig{
			ReferenceLength: getEnvAsInt("CORPUS_REFERENCE_LENGTH", defaults.ReferenceLength),
			NSmooth:         getEnvAsInt("CORPUS_N_SMOOTH", defaults.NSmooth),
			Alpha:           getEnvAsFloat("CORPUS_ALPHA", defaults.Alpha),
		},
		Storage: StorageConfig{
			Backend:    getEnv("STORAGE_BACKEND", "file"),
			FilePath:   getEnv("STORAGE_FILE_PATH", "library.json"),
			CorpusName: getEnv("STORAGE_CORPUS_NAME", "default"),
			Database: DatabaseConfig{
				Host:            getEnv("DB_HOST", "localhost"),
				Port:            getEnvAsInt("DB_PORT", 5432),
				User:            getEnv("DB_USER", "postgres"),
				Password:        getEnv("DB_PASSWORD", "postgres"),
				Database:        getEnv("DB_NAME", "trend_corpus"),
				SSLMode:         getEnv("DB_SSL_MODE", "disable"),
				MaxConnections:  getEnvAsInt("DB_MAX_CONNECTIONS", 25),
				MaxIdleConns:    getEnvAsInt("DB_MAX_IDLE_CONNS", 5),
				ConnMaxLifetime: getEnvAsDuration("DB_CONN_MAX_LIFETIME", 5*time.Minute),
			},
			Redis: RedisConfig{
				Host:         getEnv("REDIS_HOST", "localhost"),
				Port:         getEnvAsInt("REDIS_PORT", 6379),
				Password:     getEnv("REDIS_PASSWORD", ""),
				DB:           getEnvAsInt("REDIS_DB", 0),
				PoolSize:     getEnvAsInt("REDIS_POOL_SIZE", 10),
				MinIdleConns: getEnvAsInt("REDIS_MIN_IDLE_CONNS", 5),
			},
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if err := c.Corpus.Validate(); err != nil {
		return err
	}
	switch c.Storage.Backend {
	case "file":
		if c.Storage.FilePath == "" {
			return fmt.Errorf("STORAGE_FILE_PATH is required for the file backend")
		}
	case "postgres":
		if c.Storage.Database.Host == "" {
			return fmt.Errorf("DB_HOST is required for the postgres backend")
		}
	case "redis":
		if c.Storage.Redis.Host == "" {
			return fmt.Errorf("REDIS_HOST is required for the redis backend")
		}
	default:
		return fmt.Errorf("unknown storage backend: %s", c.Storage.Backend)
	}
	return nil
}

// Validate validates the corpus parameters
func (c *CorpusConfig) Validate() error {
	if c.ReferenceLength < 1 {
		return fmt.Errorf("CORPUS_REFERENCE_LENGTH must be at least 1, got %d", c.ReferenceLength)
	}
	if c.NSmooth < 1 {
		return fmt.Errorf("CORPUS_N_SMOOTH must be at least 1, got %d", c.NSmooth)
	}
	if c.Alpha <= 0 {
		return fmt.Errorf("CORPUS_ALPHA must be positive, got %f", c.Alpha)
	}
	return nil
}

// Helper functions

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	intValue, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}
	return intValue
}

func getEnvAsFloat(key string, defaultValue float64) float64 {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	floatValue, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return defaultValue
	}
	return floatValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	duration, err := time.ParseDuration(value)
	if err != nil {
		return defaultValue
	}
	return duration
}
