package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_WithEnvVars(t *testing.T) {
	os.Setenv("LOANFAQ_PORT", "9090")
	os.Setenv("LOANFAQ_DEBUG", "true")
	os.Setenv("LOANFAQ_ENVIRONMENT", "production")
	os.Setenv("LOANFAQ_SENTRY_DSN", "https://key@sentry.example/1")
	os.Setenv("LOANFAQ_TRACES_SAMPLE_RATE", "0.25")
	os.Setenv("LOANFAQ_KNOWLEDGE_FILE", "/etc/loanfaq/kb.json")
	os.Setenv("LOANFAQ_FALLBACK_TEXT", "Sorry, try again.")
	defer func() {
		os.Unsetenv("LOANFAQ_PORT")
		os.Unsetenv("LOANFAQ_DEBUG")
		os.Unsetenv("LOANFAQ_ENVIRONMENT")
		os.Unsetenv("LOANFAQ_SENTRY_DSN")
		os.Unsetenv("LOANFAQ_TRACES_SAMPLE_RATE")
		os.Unsetenv("LOANFAQ_KNOWLEDGE_FILE")
		os.Unsetenv("LOANFAQ_FALLBACK_TEXT")
	}()

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Port)
	assert.True(t, cfg.Debug)
	assert.Equal(t, "production", cfg.Environment)
	assert.Equal(t, "https://key@sentry.example/1", cfg.SentryDSN)
	assert.Equal(t, 0.25, cfg.TracesSampleRate)
	assert.Equal(t, "/etc/loanfaq/kb.json", cfg.KnowledgeFile)
	assert.Equal(t, "Sorry, try again.", cfg.FallbackText)
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.False(t, cfg.Debug)
	assert.Equal(t, "development", cfg.Environment)
	assert.Empty(t, cfg.KnowledgeFile)
}

func TestHasSentry(t *testing.T) {
	cfg := &Config{SentryDSN: "https://key@sentry.example/1"}
	assert.True(t, cfg.HasSentry())

	cfg.SentryDSN = ""
	assert.False(t, cfg.HasSentry())
}

func TestHasKnowledgeFile(t *testing.T) {
	cfg := &Config{KnowledgeFile: "/etc/loanfaq/kb.json"}
	assert.True(t, cfg.HasKnowledgeFile())

	cfg.KnowledgeFile = ""
	assert.False(t, cfg.HasKnowledgeFile())
}
