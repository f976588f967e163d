package tui

import (
	"fmt"
	"strconv"
	"time"

	"github.com/quantmind-br/esomanifest-go/internal/config"
)

// ConfigValues holds form values that map to Config struct.
// Numeric and duration fields are stored as strings for form editing.
type ConfigValues struct {
	FullValidation bool
	Strict         bool

	Encoding     string
	MaxLineBytes string

	CacheEnabled   bool
	CacheTTL       string
	CacheDirectory string

	Workers string

	OutputFormat string
	OutputColor  bool

	LogLevel  string
	LogFormat string
}

// FromConfig converts a Config to ConfigValues for form editing
func FromConfig(cfg *config.Config) *ConfigValues {
	return &ConfigValues{
		FullValidation: cfg.Validation.Full,
		Strict:         cfg.Validation.Strict,

		Encoding:     cfg.Source.Encoding,
		MaxLineBytes: formatInt(cfg.Source.MaxLineBytes),

		CacheEnabled:   cfg.Cache.Enabled,
		CacheTTL:       formatDuration(cfg.Cache.TTL),
		CacheDirectory: cfg.Cache.Directory,

		Workers: formatInt(cfg.Concurrency.Workers),

		OutputFormat: cfg.Output.Format,
		OutputColor:  cfg.Output.Color,

		LogLevel:  cfg.Logging.Level,
		LogFormat: cfg.Logging.Format,
	}
}

// ToConfig converts ConfigValues back to a Config struct
func (v *ConfigValues) ToConfig() (*config.Config, error) {
	workers, err := parseIntOrDefault(v.Workers, config.DefaultWorkers)
	if err != nil {
		return nil, fmt.Errorf("invalid workers: %w", err)
	}

	maxLineBytes, err := parseIntOrDefault(v.MaxLineBytes, config.DefaultMaxLineBytes)
	if err != nil {
		return nil, fmt.Errorf("invalid max_line_bytes: %w", err)
	}

	cacheTTL, err := parseDurationOrDefault(v.CacheTTL, config.DefaultCacheTTL)
	if err != nil {
		return nil, fmt.Errorf("invalid cache_ttl: %w", err)
	}

	if err := ValidateEncoding(v.Encoding); err != nil {
		return nil, err
	}
	if v.LogLevel != "" {
		if err := ValidateLogLevel(v.LogLevel); err != nil {
			return nil, err
		}
	}
	if v.LogFormat != "" {
		if err := ValidateLogFormat(v.LogFormat); err != nil {
			return nil, err
		}
	}

	cfg := &config.Config{
		Validation: config.ValidationConfig{
			Full:   v.FullValidation,
			Strict: v.Strict,
		},
		Source: config.SourceConfig{
			Encoding:     v.Encoding,
			MaxLineBytes: maxLineBytes,
		},
		Cache: config.CacheConfig{
			Enabled:   v.CacheEnabled,
			TTL:       cacheTTL,
			Directory: v.CacheDirectory,
		},
		Concurrency: config.ConcurrencyConfig{
			Workers: workers,
		},
		Output: config.OutputConfig{
			Format: v.OutputFormat,
			Color:  v.OutputColor,
		},
		Logging: config.LoggingConfig{
			Level:  v.LogLevel,
			Format: v.LogFormat,
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func formatDuration(d time.Duration) string {
	if d == 0 {
		return ""
	}
	return d.String()
}

func formatInt(n int) string {
	if n == 0 {
		return ""
	}
	return strconv.Itoa(n)
}

func parseDurationOrDefault(s string, defaultVal time.Duration) (time.Duration, error) {
	if s == "" {
		return defaultVal, nil
	}
	return time.ParseDuration(s)
}

func parseIntOrDefault(s string, defaultVal int) (int, error) {
	if s == "" {
		return defaultVal, nil
	}
	return strconv.Atoi(s)
}
