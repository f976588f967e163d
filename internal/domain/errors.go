package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors
var (
	// ErrNotFound indicates a file or directory was not found
	ErrNotFound = errors.New("not found")

	// ErrCacheMiss indicates a cache miss
	ErrCacheMiss = errors.New("cache miss")

	// ErrCacheExpired indicates the cached entry has expired
	ErrCacheExpired = errors.New("cache entry expired")

	// ErrNoManifest indicates an archive or folder without a manifest file
	ErrNoManifest = errors.New("no manifest found")

	// ErrUnsupportedEncoding indicates an unknown character encoding label
	ErrUnsupportedEncoding = errors.New("unsupported encoding")

	// ErrInvalidManifest indicates a manifest that parsed with errors
	ErrInvalidManifest = errors.New("manifest has errors")

	// ErrVersionMismatch indicates a Version outside the requested constraint
	ErrVersionMismatch = errors.New("version does not satisfy constraint")
)

// SourceError represents a failure to read a manifest from disk or from an archive
type SourceError struct {
	Path  string
	Entry string
	Err   error
}

func (e *SourceError) Error() string {
	if e.Entry != "" {
		return fmt.Sprintf("read %s (%s): %v", e.Path, e.Entry, e.Err)
	}
	return fmt.Sprintf("read %s: %v", e.Path, e.Err)
}

func (e *SourceError) Unwrap() error {
	return e.Err
}

// NewSourceError creates a new SourceError
func NewSourceError(path, entry string, err error) *SourceError {
	return &SourceError{
		Path:  path,
		Entry: entry,
		Err:   err,
	}
}

// ValidationError represents an invalid configuration value
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error for %s: %s", e.Field, e.Message)
}

// NewValidationError creates a new ValidationError
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{
		Field:   field,
		Message: message,
	}
}
