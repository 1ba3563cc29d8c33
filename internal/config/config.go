package config

import (
	"fmt"
	"log"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	Port  string `envconfig:"PORT" default:"8080"`
	Debug bool   `envconfig:"DEBUG" default:"false"`

	Environment string `envconfig:"ENVIRONMENT" default:"development"`

	SentryDSN        string  `envconfig:"SENTRY_DSN"`
	TracesSampleRate float64 `envconfig:"TRACES_SAMPLE_RATE"`

	// KnowledgeFile optionally merges a JSON answer table over the
	// built-in entries at startup.
	KnowledgeFile string `envconfig:"KNOWLEDGE_FILE"`

	// FallbackText overrides the default fallback copy.
	FallbackText string `envconfig:"FALLBACK_TEXT"`
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := envconfig.Process("LOANFAQ", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process config: %w", err)
	}

	return &cfg, nil
}

func MustLoad() *Config {
	cfg, err := Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	return cfg
}

func (c *Config) HasSentry() bool {
	return c.SentryDSN != ""
}

func (c *Config) HasKnowledgeFile() bool {
	return c.KnowledgeFile != ""
}
