package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/quantmind-br/esomanifest-go/internal/manifest"
)

// Default values
const (
	// Validation defaults
	DefaultFullValidation = true
	DefaultStrict         = false

	// Source defaults
	DefaultEncoding     = ""
	DefaultMaxLineBytes = manifest.DefaultMaxLineBytes
	// MinLineBytes keeps every legal directive line readable
	MinLineBytes = manifest.MaxDirectiveLineBytes + 1

	// Concurrency defaults
	DefaultWorkers = 4
	MaxWorkers     = 64

	// Cache defaults
	DefaultCacheEnabled = true
	DefaultCacheTTL     = 7 * 24 * time.Hour

	// Output defaults
	DefaultOutputFormat = FormatText
	DefaultOutputColor  = true

	// Logging defaults
	DefaultLogLevel  = "info"
	DefaultLogFormat = "pretty"
)

// ConfigDir returns the config directory path
func ConfigDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".esomanifest"
	}
	return filepath.Join(home, ".esomanifest")
}

// CacheDir returns the cache directory path
func CacheDir() string {
	return filepath.Join(ConfigDir(), "cache")
}

// ConfigFilePath returns the config file path
func ConfigFilePath() string {
	return filepath.Join(ConfigDir(), "config.yaml")
}

// Default returns the default configuration
func Default() *Config {
	return &Config{
		Validation: ValidationConfig{
			Full:   DefaultFullValidation,
			Strict: DefaultStrict,
		},
		Source: SourceConfig{
			Encoding:     DefaultEncoding,
			MaxLineBytes: DefaultMaxLineBytes,
		},
		Cache: CacheConfig{
			Enabled:   DefaultCacheEnabled,
			TTL:       DefaultCacheTTL,
			Directory: CacheDir(),
		},
		Concurrency: ConcurrencyConfig{
			Workers: DefaultWorkers,
		},
		Output: OutputConfig{
			Format: DefaultOutputFormat,
			Color:  DefaultOutputColor,
		},
		Logging: LoggingConfig{
			Level:  DefaultLogLevel,
			Format: DefaultLogFormat,
		},
	}
}
