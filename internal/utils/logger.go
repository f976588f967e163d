package utils

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Log formats
const (
	LogFormatPretty = "pretty"
	LogFormatJSON   = "json"
)

// LogLevels lists the level names accepted by ParseLevel
var LogLevels = []string{"trace", "debug", "info", "warn", "error", "fatal", "panic"}

// Logger wraps zerolog.Logger with the fields used while checking manifests
type Logger struct {
	zerolog.Logger
}

// LoggerOptions contains options for creating a logger
type LoggerOptions struct {
	Level  string
	Format string // LogFormatPretty or LogFormatJSON
	// Output defaults to stderr so reports on stdout stay parseable
	Output io.Writer
	// Verbose forces debug level
	Verbose bool
	// NoColor disables ANSI colors in the pretty format
	NoColor bool
}

// NewLogger creates a new logger with the given options
func NewLogger(opts LoggerOptions) *Logger {
	var output io.Writer = os.Stderr
	if opts.Output != nil {
		output = opts.Output
	}

	if opts.Format == LogFormatPretty {
		output = zerolog.ConsoleWriter{
			Out:        output,
			TimeFormat: time.Kitchen,
			NoColor:    opts.NoColor,
		}
	}

	level := ParseLevel(opts.Level)
	if opts.Verbose && level > zerolog.DebugLevel {
		level = zerolog.DebugLevel
	}

	return &Logger{
		Logger: zerolog.New(output).Level(level).With().Timestamp().Logger(),
	}
}

// NewNopLogger creates a logger that discards everything
func NewNopLogger() *Logger {
	return &Logger{Logger: zerolog.Nop()}
}

// ParseLevel converts a level name, case-insensitively. Unknown or empty
// names give info.
func ParseLevel(level string) zerolog.Level {
	parsed, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(level)))
	if err != nil || parsed == zerolog.NoLevel {
		return zerolog.InfoLevel
	}
	return parsed
}

// IsLogLevel reports whether level is one of LogLevels
func IsLogLevel(level string) bool {
	level = strings.ToLower(level)
	for _, l := range LogLevels {
		if l == level {
			return true
		}
	}
	return false
}

// WithComponent returns a logger with a component field
func (l *Logger) WithComponent(component string) *Logger {
	return &Logger{
		Logger: l.Logger.With().Str("component", component).Logger(),
	}
}

// WithFile returns a logger with a file field, the manifest being checked
func (l *Logger) WithFile(path string) *Logger {
	return &Logger{
		Logger: l.Logger.With().Str("file", path).Logger(),
	}
}
