package manifest

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/quantmind-br/esomanifest-go/internal/utils"
)

// DefaultMaxLineBytes is the scanner buffer limit used by ParseReader
const DefaultMaxLineBytes = 1 << 20

// LineReader supplies manifest lines. *bufio.Scanner satisfies it.
type LineReader interface {
	Scan() bool
	Text() string
	Err() error
}

type parseConfig struct {
	full         bool
	logger       *utils.Logger
	maxLineBytes int
}

// Option configures a parse
type Option func(*parseConfig)

// WithFullValidation enables length limits and the end-of-stream checks
func WithFullValidation(full bool) Option {
	return func(c *parseConfig) {
		c.full = full
	}
}

// WithLogger sets the debug logger used while parsing
func WithLogger(logger *utils.Logger) Option {
	return func(c *parseConfig) {
		c.logger = logger
	}
}

// WithMaxLineBytes limits the length of a single line read by ParseReader.
// Values below 1 keep DefaultMaxLineBytes.
func WithMaxLineBytes(n int) Option {
	return func(c *parseConfig) {
		if n > 0 {
			c.maxLineBytes = n
		}
	}
}

func newParseConfig(opts []Option) parseConfig {
	cfg := parseConfig{maxLineBytes: DefaultMaxLineBytes}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// Parse consumes every line from r and returns the resulting manifest.
//
// The manifest is never nil. If r fails, the lines read so far are kept, a
// ReadLineError is recorded, validation still runs, and the returned error
// wraps ErrReadLine.
func Parse(r LineReader, opts ...Option) (*Manifest, error) {
	cfg := newParseConfig(opts)
	acc := NewAccumulator(New(), cfg.full, cfg.logger)

	for r.Scan() {
		acc.ProcessLine(r.Text())
	}

	var readErr error
	if err := r.Err(); err != nil {
		problem := NewReadLine(err)
		acc.addError(problem)
		readErr = fmt.Errorf("line %d: %w", acc.Lines()+1, problem)
	}

	m := acc.Finish()
	acc.logger.Debug().
		Int("lines", acc.Lines()).
		Int("errors", len(m.Errors)).
		Int("warnings", len(m.Warnings)).
		Msg("Manifest parsed")

	return m, readErr
}

// ParseReader parses the lines of rd, split the way bufio.ScanLines does
func ParseReader(rd io.Reader, opts ...Option) (*Manifest, error) {
	cfg := newParseConfig(opts)
	scanner := bufio.NewScanner(rd)
	scanner.Buffer(make([]byte, 0, min(64*1024, cfg.maxLineBytes)), cfg.maxLineBytes)
	return Parse(scanner, opts...)
}

// ParseString parses an in-memory manifest
func ParseString(s string, opts ...Option) *Manifest {
	// strings.Reader never fails, so neither does the scan
	m, _ := ParseReader(strings.NewReader(s), opts...)
	return m
}
