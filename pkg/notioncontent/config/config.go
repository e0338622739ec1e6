// Package config carries server configuration for the notion-content
// gateway, loaded from the process environment.
package config

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/ilyakaznacheev/cleanenv"
)

// ServerConfig configures the HTTP gateway. The Notion token is optional at
// the server level: requests may carry their own token, and the configured
// one only serves as the fallback.
type ServerConfig struct {
	Port        string `env:"PORT" env-default:"3000"`
	Environment string `env:"ENVIRONMENT" env-default:"development"`

	// Notion configuration
	NotionToken   string `env:"NOTION_TOKEN"`
	NotionBaseURL string `env:"NOTION_BASE_URL"`
	DatabaseID    string `env:"NOTION_DATABASE_ID"`
	Frontmatter   bool   `env:"NOTION_FRONTMATTER" env-default:"false"`

	LogLevel string `env:"LOG_LEVEL" env-default:"info"`
}

// Load reads the server configuration from environment variables.
func Load() (*ServerConfig, error) {
	var cfg ServerConfig
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("read environment: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks the configuration for basic consistency.
func (c *ServerConfig) Validate() error {
	if strings.TrimSpace(c.Port) == "" {
		return fmt.Errorf("port cannot be empty")
	}
	switch c.Environment {
	case "development", "testing", "production":
	default:
		return fmt.Errorf("invalid environment: %s", c.Environment)
	}
	if _, err := c.SlogLevel(); err != nil {
		return err
	}
	return nil
}

// SlogLevel parses the configured log level.
func (c *ServerConfig) SlogLevel() (slog.Level, error) {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return slog.LevelDebug, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("invalid log level: %s", c.LogLevel)
	}
}
