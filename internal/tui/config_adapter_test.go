package tui

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quantmind-br/esomanifest-go/internal/config"
)

func defaultConfig() *config.Config {
	cfg := config.Default()
	cfg.Cache.Directory = filepath.Join("tmp", "cache")
	return cfg
}

func TestFromConfig(t *testing.T) {
	cfg := &config.Config{
		Validation:  config.ValidationConfig{Full: true, Strict: true},
		Source:      config.SourceConfig{Encoding: "windows-1252", MaxLineBytes: 4096},
		Cache:       config.CacheConfig{Enabled: true, TTL: 48 * time.Hour, Directory: "/tmp/cache"},
		Concurrency: config.ConcurrencyConfig{Workers: 10},
		Output:      config.OutputConfig{Format: config.FormatYAML, Color: true},
		Logging:     config.LoggingConfig{Level: "debug", Format: "json"},
	}

	values := FromConfig(cfg)

	assert.True(t, values.FullValidation)
	assert.True(t, values.Strict)
	assert.Equal(t, "windows-1252", values.Encoding)
	assert.Equal(t, "4096", values.MaxLineBytes)
	assert.True(t, values.CacheEnabled)
	assert.Equal(t, "48h0m0s", values.CacheTTL)
	assert.Equal(t, "/tmp/cache", values.CacheDirectory)
	assert.Equal(t, "10", values.Workers)
	assert.Equal(t, config.FormatYAML, values.OutputFormat)
	assert.True(t, values.OutputColor)
	assert.Equal(t, "debug", values.LogLevel)
	assert.Equal(t, "json", values.LogFormat)
}

func TestFromConfig_ZeroValues(t *testing.T) {
	values := FromConfig(&config.Config{})

	assert.Empty(t, values.Workers)
	assert.Empty(t, values.MaxLineBytes)
	assert.Empty(t, values.CacheTTL)
}

func TestToConfig(t *testing.T) {
	values := &ConfigValues{
		FullValidation: true,
		Encoding:       "auto",
		MaxLineBytes:   "2048",
		CacheEnabled:   true,
		CacheTTL:       "24h",
		CacheDirectory: "~/.esomanifest/cache",
		Workers:        "8",
		OutputFormat:   config.FormatJSON,
		LogLevel:       "warn",
		LogFormat:      "pretty",
	}

	cfg, err := values.ToConfig()
	require.NoError(t, err)

	assert.True(t, cfg.Validation.Full)
	assert.False(t, cfg.Validation.Strict)
	assert.Equal(t, "auto", cfg.Source.Encoding)
	assert.Equal(t, 2048, cfg.Source.MaxLineBytes)
	assert.Equal(t, 24*time.Hour, cfg.Cache.TTL)
	assert.Equal(t, "~/.esomanifest/cache", cfg.Cache.Directory)
	assert.Equal(t, 8, cfg.Concurrency.Workers)
	assert.Equal(t, config.FormatJSON, cfg.Output.Format)
	assert.Equal(t, "warn", cfg.Logging.Level)
}

func TestToConfig_EmptyUsesDefaults(t *testing.T) {
	cfg, err := (&ConfigValues{}).ToConfig()
	require.NoError(t, err)

	assert.Equal(t, config.DefaultWorkers, cfg.Concurrency.Workers)
	assert.Equal(t, config.DefaultMaxLineBytes, cfg.Source.MaxLineBytes)
	assert.Equal(t, config.DefaultCacheTTL, cfg.Cache.TTL)
	assert.Equal(t, config.FormatText, cfg.Output.Format)
}

func TestToConfig_Errors(t *testing.T) {
	tests := []struct {
		name   string
		values ConfigValues
	}{
		{"workers", ConfigValues{Workers: "many"}},
		{"max line bytes", ConfigValues{MaxLineBytes: "1k"}},
		{"ttl", ConfigValues{CacheTTL: "7d"}},
		{"encoding", ConfigValues{Encoding: "klingon"}},
		{"log level", ConfigValues{LogLevel: "loud"}},
		{"log format", ConfigValues{LogFormat: "xml"}},
		{"output format", ConfigValues{OutputFormat: "xml"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.values.ToConfig()
			assert.Error(t, err)
		})
	}
}

func TestRoundTrip(t *testing.T) {
	original := defaultConfig()

	cfg, err := FromConfig(original).ToConfig()
	require.NoError(t, err)
	assert.Equal(t, original, cfg)
}
