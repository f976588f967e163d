package domain

import (
	"context"
	"time"
)

// Cache defines the interface for parse result caching
type Cache interface {
	// Get retrieves a value from cache
	Get(ctx context.Context, key string) ([]byte, error)
	// Set stores a value in cache with TTL
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	// Has checks if a key exists in cache
	Has(ctx context.Context, key string) bool
	// Delete removes a key from cache
	Delete(ctx context.Context, key string) error
	// Close releases cache resources
	Close() error
}

// Parser turns a loaded document into a parse result. It never fails as a
// whole; a source failure is reported in Result.Err next to whatever was read.
type Parser interface {
	Parse(ctx context.Context, doc *Document, opts ParseOptions) *Result
}

// ParserFunc adapts a function to the Parser interface
type ParserFunc func(ctx context.Context, doc *Document, opts ParseOptions) *Result

// Parse calls f
func (f ParserFunc) Parse(ctx context.Context, doc *Document, opts ParseOptions) *Result {
	return f(ctx, doc, opts)
}
