package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// unsetenv clears key for the duration of the test.
func unsetenv(t *testing.T, key string) {
	t.Helper()
	t.Setenv(key, "")
	require.NoError(t, os.Unsetenv(key))
}

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"JSONRECOVER_FORMAT",
		"JSONRECOVER_REPAIR",
		"JSONRECOVER_MAX_BYTES",
		"JSONRECOVER_LOG_LEVEL",
	} {
		unsetenv(t, key)
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)
	require.Equal(t, &Config{
		Format:   FormatJSON,
		MaxBytes: 1048576,
		LogLevel: "info",
	}, cfg)

	level, err := cfg.Level()
	require.NoError(t, err)
	require.Equal(t, slog.LevelInfo, level)
}

func TestLoad_Environment(t *testing.T) {
	clearEnv(t)
	t.Setenv("JSONRECOVER_FORMAT", "yaml")
	t.Setenv("JSONRECOVER_MAX_BYTES", "0")
	t.Setenv("JSONRECOVER_LOG_LEVEL", "debug")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, FormatYAML, cfg.Format)
	require.Equal(t, 0, cfg.MaxBytes)

	level, err := cfg.Level()
	require.NoError(t, err)
	require.Equal(t, slog.LevelDebug, level)
}

func TestLoad_DotenvFile(t *testing.T) {
	clearEnv(t)
	t.Setenv("JSONRECOVER_FORMAT", "json")

	file := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(file, []byte("JSONRECOVER_FORMAT=yaml\nJSONRECOVER_REPAIR=kaptinlin\n"), 0o600))

	cfg, err := Load(file)
	require.NoError(t, err)
	require.Equal(t, FormatJSON, cfg.Format, "environment wins over the file")
	require.Equal(t, "kaptinlin", cfg.Repair)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{"format", "JSONRECOVER_FORMAT", "xml"},
		{"max bytes not a number", "JSONRECOVER_MAX_BYTES", "lots"},
		{"negative max bytes", "JSONRECOVER_MAX_BYTES", "-1"},
		{"log level", "JSONRECOVER_LOG_LEVEL", "loud"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			t.Setenv(tt.key, tt.value)

			_, err := Load()
			require.Error(t, err)
		})
	}
}
