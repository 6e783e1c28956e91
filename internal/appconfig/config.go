// Package appconfig loads console settings from the environment and sets up
// logging.
package appconfig

import (
	"fmt"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
	"github.com/rs/zerolog"
)

// Config holds the console configuration.
// Environment variables are parsed from the HEADSUP_ prefix.
type Config struct {
	LogLevel string `envconfig:"LOG_LEVEL" default:"info"`
	Debug    bool   `envconfig:"DEBUG" default:"false"`

	// Per-command deadline. The client itself never imposes one.
	Timeout time.Duration `envconfig:"TIMEOUT" default:"15s"`

	// Override for the local state directory (theme preference).
	StateDir string `envconfig:"STATE_DIR" default:""`
}

// Load parses HEADSUP_* variables.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("HEADSUP", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process environment variables: %w", err)
	}
	if cfg.Timeout <= 0 {
		return nil, fmt.Errorf("HEADSUP_TIMEOUT must be positive, got %s", cfg.Timeout)
	}
	return &cfg, nil
}

// Level returns the zerolog level for the configuration. Debug forces
// DebugLevel; unknown names fall back to InfoLevel.
func (c *Config) Level() zerolog.Level {
	if c.Debug {
		return zerolog.DebugLevel
	}
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return zerolog.DebugLevel
	case "info":
		return zerolog.InfoLevel
	case "warn":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}
