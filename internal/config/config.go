package config

import (
	"fmt"
	"slices"
	"time"

	"github.com/quantmind-br/esomanifest-go/internal/domain"
)

// Output formats
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// Formats lists the supported output formats
var Formats = []string{FormatText, FormatJSON, FormatYAML}

// Config represents the application configuration
type Config struct {
	Validation  ValidationConfig  `mapstructure:"validation" yaml:"validation"`
	Source      SourceConfig      `mapstructure:"source" yaml:"source"`
	Cache       CacheConfig       `mapstructure:"cache" yaml:"cache"`
	Concurrency ConcurrencyConfig `mapstructure:"concurrency" yaml:"concurrency"`
	Output      OutputConfig      `mapstructure:"output" yaml:"output"`
	Logging     LoggingConfig     `mapstructure:"logging" yaml:"logging"`
}

// ValidationConfig controls how strictly manifests are checked
type ValidationConfig struct {
	// Full enables length limits and the required-field checks
	Full bool `mapstructure:"full" yaml:"full"`
	// Strict makes warnings fail validate as well
	Strict bool `mapstructure:"strict" yaml:"strict"`
}

// SourceConfig contains manifest reading settings
type SourceConfig struct {
	// Encoding is "", "utf-8", "auto" or a WHATWG label like "windows-1252"
	Encoding     string `mapstructure:"encoding" yaml:"encoding"`
	MaxLineBytes int    `mapstructure:"max_line_bytes" yaml:"max_line_bytes"`
}

// CacheConfig contains cache settings
type CacheConfig struct {
	Enabled   bool          `mapstructure:"enabled" yaml:"enabled"`
	TTL       time.Duration `mapstructure:"ttl" yaml:"ttl"`
	Directory string        `mapstructure:"directory" yaml:"directory"`
}

// ConcurrencyConfig contains concurrency settings
type ConcurrencyConfig struct {
	Workers int `mapstructure:"workers" yaml:"workers"`
}

// OutputConfig contains report settings
type OutputConfig struct {
	Format string `mapstructure:"format" yaml:"format"`
	Color  bool   `mapstructure:"color" yaml:"color"`
}

// LoggingConfig contains logging settings
type LoggingConfig struct {
	Level  string `mapstructure:"level" yaml:"level"`
	Format string `mapstructure:"format" yaml:"format"`
}

// ParseOptions returns the parser settings derived from the config
func (c *Config) ParseOptions() domain.ParseOptions {
	return domain.ParseOptions{
		FullValidation: c.Validation.Full,
		MaxLineBytes:   c.Source.MaxLineBytes,
	}
}

// Validate validates the configuration. Out-of-range numbers are reset to
// their defaults; an unknown output format is an error.
func (c *Config) Validate() error {
	if c.Concurrency.Workers < 1 {
		c.Concurrency.Workers = DefaultWorkers
	}
	if c.Concurrency.Workers > MaxWorkers {
		c.Concurrency.Workers = MaxWorkers
	}
	if c.Cache.TTL < time.Minute {
		c.Cache.TTL = DefaultCacheTTL
	}
	if c.Source.MaxLineBytes < MinLineBytes {
		c.Source.MaxLineBytes = DefaultMaxLineBytes
	}
	if c.Output.Format == "" {
		c.Output.Format = DefaultOutputFormat
	}
	if !slices.Contains(Formats, c.Output.Format) {
		return domain.NewValidationError("output.format", fmt.Sprintf("%q is not one of %v", c.Output.Format, Formats))
	}
	return nil
}
