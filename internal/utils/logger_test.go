package utils

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLogger(t *testing.T) {

	t.Run("pretty without color", func(t *testing.T) {
		var buf bytes.Buffer
		logger := NewLogger(LoggerOptions{
			Format:  LogFormatPretty,
			Output:  &buf,
			NoColor: true,
		})
		logger.Info().Str("file", "A.txt").Msg("plain")
		assert.Contains(t, buf.String(), "file=A.txt")
		assert.NotContains(t, buf.String(), "\x1b[")
	})

	t.Run("verbose keeps trace", func(t *testing.T) {
		logger := NewLogger(LoggerOptions{Level: "trace", Verbose: true, Output: &bytes.Buffer{}})
		assert.Equal(t, "trace", logger.GetLevel().String())
	})

	t.Run("custom output", func(t *testing.T) {
		var buf bytes.Buffer
		logger := NewLogger(LoggerOptions{
			Level:  "info",
			Format: "json",
			Output: &buf,
		})
		require.NotNil(t, logger)
		logger.Info().Msg("test")
		assert.Contains(t, buf.String(), "test")
	})

	t.Run("pretty format", func(t *testing.T) {
		var buf bytes.Buffer
		logger := NewLogger(LoggerOptions{
			Level:  "info",
			Format: "pretty",
			Output: &buf,
		})
		require.NotNil(t, logger)
		logger.Info().Msg("test")
		assert.Contains(t, buf.String(), "test")
	})

	t.Run("verbose option", func(t *testing.T) {
		var buf bytes.Buffer
		logger := NewLogger(LoggerOptions{
			Level:   "info",
			Format:  "json",
			Output:  &buf,
			Verbose: true,
		})
		require.NotNil(t, logger)
		// Verbose should enable debug level
		logger.Debug().Msg("debug test")
		assert.Contains(t, buf.String(), "debug test")
	})
}

func TestLoggerWithComponent(t *testing.T) {

	var buf bytes.Buffer
	logger := NewLogger(LoggerOptions{
		Level:  "info",
		Format: "json",
		Output: &buf,
	})

	componentLogger := logger.WithComponent("cache")
	require.NotNil(t, componentLogger)

	componentLogger.Info().Msg("test message")
	output := buf.String()
	assert.Contains(t, output, "cache")
	assert.Contains(t, output, "test message")
}

func TestLoggerWithFile(t *testing.T) {

	var buf bytes.Buffer
	logger := NewLogger(LoggerOptions{
		Level:  "info",
		Format: "json",
		Output: &buf,
	})

	fileLogger := logger.WithFile("AddOns/SkyShards/SkyShards.txt")
	require.NotNil(t, fileLogger)

	fileLogger.Info().Msg("test message")
	output := buf.String()
	assert.Contains(t, output, `"file":"AddOns/SkyShards/SkyShards.txt"`)
	assert.Contains(t, output, "test message")
}

func TestNewNopLogger(t *testing.T) {
	logger := NewNopLogger()
	require.NotNil(t, logger)

	assert.NotPanics(t, func() {
		logger.Error().Msg("discarded")
		logger.WithComponent("parser").Debug().Msg("discarded")
	})
}

func TestLoggerLevels(t *testing.T) {

	tests := []struct {
		name      string
		level     string
		logFunc   func(*Logger)
		shouldLog bool
	}{
		{
			name:      "debug level logs debug",
			level:     "debug",
			logFunc:   func(l *Logger) { l.Debug().Msg("debug") },
			shouldLog: true,
		},
		{
			name:      "info level doesn't log debug",
			level:     "info",
			logFunc:   func(l *Logger) { l.Debug().Msg("debug") },
			shouldLog: false,
		},
		{
			name:      "info level logs info",
			level:     "info",
			logFunc:   func(l *Logger) { l.Info().Msg("info") },
			shouldLog: true,
		},
		{
			name:      "warn level logs warn",
			level:     "warn",
			logFunc:   func(l *Logger) { l.Warn().Msg("warn") },
			shouldLog: true,
		},
		{
			name:      "error level logs error",
			level:     "error",
			logFunc:   func(l *Logger) { l.Error().Msg("error") },
			shouldLog: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			logger := NewLogger(LoggerOptions{
				Level:  tt.level,
				Format: "json",
				Output: &buf,
			})

			tt.logFunc(logger)
			output := buf.String()

			if tt.shouldLog {
				assert.NotEmpty(t, output)
			} else {
				assert.Empty(t, output)
			}
		})
	}
}

func TestLoggerChaining(t *testing.T) {

	var buf bytes.Buffer
	logger := NewLogger(LoggerOptions{
		Level:  "debug",
		Format: "json",
		Output: &buf,
	})

	logger.WithComponent("batch").WithFile("SkyShards.txt").Debug().Int("errors", 2).Msg("Manifest checked")
	output := buf.String()

	assert.Contains(t, output, `"component":"batch"`)
	assert.Contains(t, output, `"file":"SkyShards.txt"`)
	assert.Contains(t, output, `"errors":2`)
}

func TestParseLevel(t *testing.T) {
	tests := map[string]string{
		"trace":   "trace",
		"debug":   "debug",
		"info":    "info",
		"WARN":    "warn",
		" error ": "error",
		"panic":   "panic",
		"verbose": "info",
		"":        "info",
	}

	for input, expected := range tests {
		assert.Equal(t, expected, ParseLevel(input).String(), input)
	}
}

func TestIsLogLevel(t *testing.T) {
	for _, level := range LogLevels {
		assert.True(t, IsLogLevel(level), level)
	}
	assert.True(t, IsLogLevel("Debug"))
	assert.False(t, IsLogLevel("verbose"))
	assert.False(t, IsLogLevel(""))
}
