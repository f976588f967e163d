package tui

import (
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/quantmind-br/esomanifest-go/internal/config"
	"github.com/quantmind-br/esomanifest-go/internal/source"
	"github.com/quantmind-br/esomanifest-go/internal/utils"
)

// Validation error messages
var (
	ErrInvalidNumber = errors.New("must be a valid number")
	ErrInvalidRange  = errors.New("value out of valid range")
)

// ValidateDuration validates that a string can be parsed as a time.Duration
func ValidateDuration(s string) error {
	if strings.TrimSpace(s) == "" {
		return nil // Empty is valid (will use default)
	}
	_, err := time.ParseDuration(s)
	if err != nil {
		return fmt.Errorf("invalid duration format (use: 30m, 24h, 168h): %w", err)
	}
	return nil
}

// ValidateIntRange validates that a string represents an integer within a range
func ValidateIntRange(min, max int) func(string) error {
	return func(s string) error {
		if strings.TrimSpace(s) == "" {
			return nil
		}
		n, err := strconv.Atoi(s)
		if err != nil {
			return ErrInvalidNumber
		}
		if n < min || n > max {
			return fmt.Errorf("%w: must be between %d and %d", ErrInvalidRange, min, max)
		}
		return nil
	}
}

// ValidateEncoding accepts "", "utf-8", "auto" and any WHATWG encoding label
func ValidateEncoding(s string) error {
	_, _, err := source.Decode(nil, s)
	return err
}

// ValidateLogLevel validates log level values
func ValidateLogLevel(s string) error {
	if !utils.IsLogLevel(s) {
		return fmt.Errorf("invalid log level: must be one of %s", strings.Join(utils.LogLevels, ", "))
	}
	return nil
}

// ValidateLogFormat validates log format values
func ValidateLogFormat(s string) error {
	validFormats := map[string]bool{
		utils.LogFormatJSON:   true,
		utils.LogFormatPretty: true,
		"text":   true,
	}
	if !validFormats[strings.ToLower(s)] {
		return fmt.Errorf("invalid log format: must be json, pretty, or text")
	}
	return nil
}

// ValidateOutputFormat validates report format values
func ValidateOutputFormat(s string) error {
	if !slices.Contains(config.Formats, s) {
		return fmt.Errorf("invalid output format: must be one of %s", strings.Join(config.Formats, ", "))
	}
	return nil
}
