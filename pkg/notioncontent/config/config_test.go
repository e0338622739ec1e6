package config_test

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tendant/notion-content/pkg/notioncontent/config"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "3000", cfg.Port)
	assert.Equal(t, "development", cfg.Environment)
	assert.Empty(t, cfg.NotionToken)
	assert.Empty(t, cfg.DatabaseID)
	assert.False(t, cfg.Frontmatter)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("PORT", "8080")
	t.Setenv("ENVIRONMENT", "production")
	t.Setenv("NOTION_TOKEN", "secret-token")
	t.Setenv("NOTION_BASE_URL", "http://localhost:9999")
	t.Setenv("NOTION_DATABASE_ID", "db-1")
	t.Setenv("NOTION_FRONTMATTER", "true")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "production", cfg.Environment)
	assert.Equal(t, "secret-token", cfg.NotionToken)
	assert.Equal(t, "http://localhost:9999", cfg.NotionBaseURL)
	assert.Equal(t, "db-1", cfg.DatabaseID)
	assert.True(t, cfg.Frontmatter)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestLoadRejectsInvalidEnvironment(t *testing.T) {
	t.Setenv("ENVIRONMENT", "staging")

	_, err := config.Load()
	assert.Error(t, err)
}

func TestLoadRejectsInvalidLogLevel(t *testing.T) {
	t.Setenv("LOG_LEVEL", "verbose")

	_, err := config.Load()
	assert.Error(t, err)
}

func TestSlogLevel(t *testing.T) {
	tests := []struct {
		level string
		want  slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"INFO", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"error", slog.LevelError},
		{"", slog.LevelInfo},
	}

	for _, tt := range tests {
		cfg := config.ServerConfig{LogLevel: tt.level}
		level, err := cfg.SlogLevel()
		require.NoError(t, err)
		assert.Equal(t, tt.want, level, tt.level)
	}
}

func TestValidateRejectsEmptyPort(t *testing.T) {
	cfg := config.ServerConfig{Port: "  ", Environment: "development", LogLevel: "info"}
	assert.Error(t, cfg.Validate())
}
