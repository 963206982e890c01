// Package config loads and validates application configuration from YAML
// files with environment-variable overrides. It provides typed structs for
// every subsystem (Postgres, Redis, Kafka, Matching, Indexing, etc.).
package config

import (
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/tradeverifyd/entity-resolution/pkg/errors"
)

// Scoring strategy names accepted by Matching.ScoringStrategy.
const (
	StrategyWeighted = "weighted"
	StrategyJaccard  = "jaccard"
)

// Config is the top-level application configuration.
type Config struct {
	Postgres PostgresConfig `yaml:"postgres"`
	Redis    RedisConfig    `yaml:"redis"`
	Kafka    KafkaConfig    `yaml:"kafka"`
	Matching MatchingConfig `yaml:"matching"`
	Indexing IndexingConfig `yaml:"indexing"`
	Logging  LoggingConfig  `yaml:"logging"`
	Metrics  MetricsConfig  `yaml:"metrics"`
}

// PostgresConfig holds PostgreSQL connection parameters.
type PostgresConfig struct {
	Host            string        `yaml:"host"`
	Port            int           `yaml:"port"`
	Database        string        `yaml:"database"`
	User            string        `yaml:"user"`
	Password        string        `yaml:"password"`
	SSLMode         string        `yaml:"sslMode"`
	MaxOpenConns    int           `yaml:"maxOpenConns"`
	MaxIdleConns    int           `yaml:"maxIdleConns"`
	ConnMaxLifetime time.Duration `yaml:"connMaxLifetime"`
}

// DSN returns a lib/pq-compatible data source name.
func (p PostgresConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		p.Host, p.Port, p.User, p.Password, p.Database, p.SSLMode,
	)
}

// RedisConfig holds connection parameters for the checkpoint store.
type RedisConfig struct {
	Addr      string `yaml:"addr"`
	Password  string `yaml:"password"`
	DB        int    `yaml:"db"`
	PoolSize  int    `yaml:"poolSize"`
	KeyPrefix string `yaml:"keyPrefix"`
}

// KafkaConfig holds broker settings for resolution event publishing.
// Events are optional: with Enabled false no producer is created.
type KafkaConfig struct {
	Enabled bool     `yaml:"enabled"`
	Brokers []string `yaml:"brokers"`
	Topic   string   `yaml:"topic"`
}

// MatchingConfig controls tokenization, retrieval, and scoring.
type MatchingConfig struct {
	MinTokenLength               int      `yaml:"minTokenLength"`
	Stopwords                    []string `yaml:"stopwords"`
	NameSimilarityWeight         float64  `yaml:"nameSimilarityWeight"`
	JurisdictionWeight           float64  `yaml:"jurisdictionWeight"`
	ExactJurisdictionScore       float64  `yaml:"exactJurisdictionScore"`
	NeighboringJurisdictionScore float64  `yaml:"neighboringJurisdictionScore"`
	NonMatchingJurisdictionScore float64  `yaml:"nonMatchingJurisdictionScore"`
	MinScoreThreshold            float64  `yaml:"minScoreThreshold"`
	MaxSearchResults             int      `yaml:"maxSearchResults"`
	BatchSize                    int      `yaml:"batchSize"`
	// DropTrailingToken drops the last whitespace-delimited word of a
	// shipper name before retrieval tokenization. Upstream feeds append the
	// shipping country as a trailing word; this strips it.
	DropTrailingToken bool          `yaml:"dropTrailingToken"`
	ScoringStrategy   string        `yaml:"scoringStrategy"`
	MaxRetries        int           `yaml:"maxRetries"`
	RetryDelay        time.Duration `yaml:"retryDelay"`
	StoreTimeout      time.Duration `yaml:"storeTimeout"`
}

// IndexingConfig controls the build/prune/merge index passes.
type IndexingConfig struct {
	BatchSize               int           `yaml:"batchSize"`
	ChunkSize               int           `yaml:"chunkSize"`
	TokenCardinalityCeiling int           `yaml:"tokenCardinalityCeiling"`
	MaxRetries              int           `yaml:"maxRetries"`
	RetryDelay              time.Duration `yaml:"retryDelay"`
	StoreTimeout            time.Duration `yaml:"storeTimeout"`
}

// LoggingConfig controls structured logging level and output format.
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// MetricsConfig controls the Prometheus metrics server.
type MetricsConfig struct {
	Enabled bool `yaml:"enabled"`
	Port    int  `yaml:"port"`
}

// Load reads a YAML config file (if provided), applies environment-variable
// overrides, and validates the result. A validation failure is fatal for the
// caller: no partial run may begin on a broken configuration.
func Load(path string) (*Config, error) {
	cfg := defaultConfig()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("parsing config file %s: %w", path, err)
		}
	}
	applyEnvOverrides(cfg)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the configuration invariants the pipelines depend on.
func (c *Config) Validate() error {
	m := c.Matching
	if m.MinTokenLength < 1 {
		return errors.Configf("matching.minTokenLength must be >= 1, got %d", m.MinTokenLength)
	}
	if sum := m.NameSimilarityWeight + m.JurisdictionWeight; math.Abs(sum-1.0) > 1e-9 {
		return errors.Configf("scoring weights must sum to 1.0, got %.4f", sum)
	}
	if m.MinScoreThreshold < 0 || m.MinScoreThreshold >= 1 {
		return errors.Configf("matching.minScoreThreshold must be in [0, 1), got %.4f", m.MinScoreThreshold)
	}
	if m.MaxSearchResults <= 0 {
		return errors.Configf("matching.maxSearchResults must be positive, got %d", m.MaxSearchResults)
	}
	if m.BatchSize <= 0 {
		return errors.Configf("matching.batchSize must be positive, got %d", m.BatchSize)
	}
	if m.MaxRetries < 1 {
		return errors.Configf("matching.maxRetries must be >= 1, got %d", m.MaxRetries)
	}
	switch m.ScoringStrategy {
	case StrategyWeighted, StrategyJaccard:
	default:
		return errors.Configf("unknown scoring strategy %q", m.ScoringStrategy)
	}
	i := c.Indexing
	if i.BatchSize <= 0 {
		return errors.Configf("indexing.batchSize must be positive, got %d", i.BatchSize)
	}
	if i.ChunkSize <= 0 {
		return errors.Configf("indexing.chunkSize must be positive, got %d", i.ChunkSize)
	}
	if i.TokenCardinalityCeiling <= 0 {
		return errors.Configf("indexing.tokenCardinalityCeiling must be positive, got %d", i.TokenCardinalityCeiling)
	}
	if i.MaxRetries < 1 {
		return errors.Configf("indexing.maxRetries must be >= 1, got %d", i.MaxRetries)
	}
	if c.Kafka.Enabled && len(c.Kafka.Brokers) == 0 {
		return errors.Configf("kafka.enabled is set but no brokers configured")
	}
	return nil
}

// defaultConfig returns a Config with the defaults the matching pipeline was
// tuned with in production.
func defaultConfig() *Config {
	return &Config{
		Postgres: PostgresConfig{
			Host:            "localhost",
			Port:            5432,
			Database:        "tradeverifyd",
			User:            "tradeverifyd",
			Password:        "localdev",
			SSLMode:         "disable",
			MaxOpenConns:    25,
			MaxIdleConns:    5,
			ConnMaxLifetime: 5 * time.Minute,
		},
		Redis: RedisConfig{
			Addr:      "localhost:6379",
			Password:  "",
			DB:        0,
			PoolSize:  10,
			KeyPrefix: "entity-resolution",
		},
		Kafka: KafkaConfig{
			Enabled: false,
			Brokers: []string{"localhost:9092"},
			Topic:   "resolution-events",
		},
		Matching: MatchingConfig{
			MinTokenLength: 2,
			Stopwords: []string{
				"VARIABLE", "SOCIEDAD", "CAPITAL", "ANONIMA", "LIMITED",
				"LIABILITY", "COMPANY", "GESELLSCHAFT", "BESCHRÄNKTER",
				"HAFTUNG", "INTERNATIONAL", "INDIA", "CHINA", "ENTERPRISES",
				"EXPORTS", "IMPORTS", "IMPORT", "EXPORT", "TRADING",
				"CÔNG", "CONG", "VIET", "NAM", "TNHH", "PRIVATE",
				"ENGINEERS", "HANDICRAFTS", "FABRICS",
			},
			NameSimilarityWeight:         0.7,
			JurisdictionWeight:           0.3,
			ExactJurisdictionScore:       1.0,
			NeighboringJurisdictionScore: 0.5,
			NonMatchingJurisdictionScore: 0.0,
			MinScoreThreshold:            0.55,
			MaxSearchResults:             20,
			BatchSize:                    5000,
			DropTrailingToken:            true,
			ScoringStrategy:              StrategyWeighted,
			MaxRetries:                   3,
			RetryDelay:                   5 * time.Second,
			StoreTimeout:                 30 * time.Second,
		},
		Indexing: IndexingConfig{
			BatchSize:               50000,
			ChunkSize:               1000,
			TokenCardinalityCeiling: 200,
			MaxRetries:              3,
			RetryDelay:              5 * time.Second,
			StoreTimeout:            2 * time.Minute,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
		},
		Metrics: MetricsConfig{
			Enabled: true,
			Port:    9090,
		},
	}
}

// applyEnvOverrides reads ER_* environment variables and overrides the
// corresponding config fields.
func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("ER_POSTGRES_HOST"); v != "" {
		cfg.Postgres.Host = v
	}
	if v := os.Getenv("ER_POSTGRES_PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			cfg.Postgres.Port = port
		}
	}
	if v := os.Getenv("ER_POSTGRES_DATABASE"); v != "" {
		cfg.Postgres.Database = v
	}
	if v := os.Getenv("ER_POSTGRES_USER"); v != "" {
		cfg.Postgres.User = v
	}
	if v := os.Getenv("ER_POSTGRES_PASSWORD"); v != "" {
		cfg.Postgres.Password = v
	}
	if v := os.Getenv("ER_POSTGRES_SSLMODE"); v != "" {
		cfg.Postgres.SSLMode = v
	}
	if v := os.Getenv("ER_REDIS_ADDR"); v != "" {
		cfg.Redis.Addr = v
	}
	if v := os.Getenv("ER_REDIS_PASSWORD"); v != "" {
		cfg.Redis.Password = v
	}
	if v := os.Getenv("ER_KAFKA_BROKERS"); v != "" {
		cfg.Kafka.Brokers = strings.Split(v, ",")
		cfg.Kafka.Enabled = true
	}
	if v := os.Getenv("ER_LOGGING_LEVEL"); v != "" {
		cfg.Logging.Level = v
	}
	if v := os.Getenv("ER_LOGGING_FORMAT"); v != "" {
		cfg.Logging.Format = v
	}
	if v := os.Getenv("ER_METRICS_PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			cfg.Metrics.Port = port
		}
	}
}
