package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/tradeverifyd/entity-resolution/pkg/errors"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Matching.MinScoreThreshold != 0.55 {
		t.Errorf("threshold = %v, want 0.55", cfg.Matching.MinScoreThreshold)
	}
	if cfg.Matching.NameSimilarityWeight+cfg.Matching.JurisdictionWeight != 1.0 {
		t.Error("default weights must sum to 1.0")
	}
	if !cfg.Matching.DropTrailingToken {
		t.Error("trailing-token drop must default on")
	}
	if cfg.Indexing.ChunkSize != 1000 || cfg.Indexing.TokenCardinalityCeiling != 200 {
		t.Errorf("indexing defaults = %+v", cfg.Indexing)
	}
	if len(cfg.Matching.Stopwords) == 0 {
		t.Error("default stopword list must not be empty")
	}
}

func TestLoadFileOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := []byte(`
matching:
  minScoreThreshold: 0.8
  dropTrailingToken: false
indexing:
  chunkSize: 50
`)
	if err := os.WriteFile(path, content, 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Matching.MinScoreThreshold != 0.8 {
		t.Errorf("threshold = %v, want 0.8", cfg.Matching.MinScoreThreshold)
	}
	if cfg.Matching.DropTrailingToken {
		t.Error("explicit false must override the default")
	}
	if cfg.Indexing.ChunkSize != 50 {
		t.Errorf("chunkSize = %d, want 50", cfg.Indexing.ChunkSize)
	}
	// Untouched fields keep their defaults.
	if cfg.Indexing.TokenCardinalityCeiling != 200 {
		t.Errorf("ceiling = %d, want default 200", cfg.Indexing.TokenCardinalityCeiling)
	}
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("ER_POSTGRES_HOST", "db.internal")
	t.Setenv("ER_KAFKA_BROKERS", "broker1:9092,broker2:9092")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Postgres.Host != "db.internal" {
		t.Errorf("host = %q", cfg.Postgres.Host)
	}
	if !cfg.Kafka.Enabled || len(cfg.Kafka.Brokers) != 2 {
		t.Errorf("kafka = %+v, want enabled with 2 brokers", cfg.Kafka)
	}
}

func TestValidateRejectsBadConfigs(t *testing.T) {
	mutations := []struct {
		name   string
		mutate func(*Config)
	}{
		{"weights not summing to one", func(c *Config) { c.Matching.JurisdictionWeight = 0.5 }},
		{"threshold of one", func(c *Config) { c.Matching.MinScoreThreshold = 1.0 }},
		{"negative threshold", func(c *Config) { c.Matching.MinScoreThreshold = -0.1 }},
		{"zero batch size", func(c *Config) { c.Matching.BatchSize = 0 }},
		{"zero chunk size", func(c *Config) { c.Indexing.ChunkSize = 0 }},
		{"unknown strategy", func(c *Config) { c.Matching.ScoringStrategy = "levenshtein" }},
		{"kafka without brokers", func(c *Config) { c.Kafka.Enabled = true; c.Kafka.Brokers = nil }},
		{"zero retries", func(c *Config) { c.Indexing.MaxRetries = 0 }},
	}
	for _, tt := range mutations {
		t.Run(tt.name, func(t *testing.T) {
			cfg := defaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if !errors.IsConfiguration(err) {
				t.Errorf("Validate() = %v, want configuration error", err)
			}
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load("/does/not/exist.yaml"); err == nil {
		t.Error("expected an error for a missing config file")
	}
}
