package domain

import "github.com/quantmind-br/esomanifest-go/internal/manifest"

// ParseOptions controls how a document is parsed. It is part of the cache
// key, so every field must affect the result.
type ParseOptions struct {
	FullValidation bool `json:"full_validation"`
	MaxLineBytes   int  `json:"max_line_bytes"`
}

// DefaultParseOptions returns ParseOptions with default values
func DefaultParseOptions() ParseOptions {
	return ParseOptions{MaxLineBytes: manifest.DefaultMaxLineBytes}
}

// ManifestOptions converts to parser options
func (o ParseOptions) ManifestOptions() []manifest.Option {
	return []manifest.Option{
		manifest.WithFullValidation(o.FullValidation),
		manifest.WithMaxLineBytes(o.MaxLineBytes),
	}
}
