// Package config loads CLI defaults from the environment.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
)

// Output formats.
const (
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// Config holds the CLI defaults. Flags override every field.
type Config struct {
	Format   string `env:"JSONRECOVER_FORMAT" envDefault:"json"`
	Repair   string `env:"JSONRECOVER_REPAIR"`
	MaxBytes int    `env:"JSONRECOVER_MAX_BYTES" envDefault:"1048576"`
	LogLevel string `env:"JSONRECOVER_LOG_LEVEL" envDefault:"info"`
}

// Load reads the given dotenv files, then the process environment. Missing
// files are skipped and variables already set in the environment win.
func Load(files ...string) (*Config, error) {
	for _, file := range files {
		if err := godotenv.Load(file); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("failed to load %s: %w", file, err)
		}
	}

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse environment: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks field values.
func (c *Config) Validate() error {
	switch c.Format {
	case FormatJSON, FormatYAML:
	default:
		return fmt.Errorf("unsupported format %q, expected %s or %s", c.Format, FormatJSON, FormatYAML)
	}
	if c.MaxBytes < 0 {
		return fmt.Errorf("max bytes must not be negative, got %d", c.MaxBytes)
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	return nil
}

// Level parses LogLevel.
func (c *Config) Level() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return 0, fmt.Errorf("invalid log level %q: %w", c.LogLevel, err)
	}
	return level, nil
}
