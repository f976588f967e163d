package domain

import (
	"crypto/sha256"
	"encoding/hex"
	"path/filepath"
	"time"

	"github.com/quantmind-br/esomanifest-go/internal/manifest"
)

// Document is the raw content of one manifest file
type Document struct {
	// Path is the file or archive the manifest was read from
	Path string `json:"path"`
	// Entry is the manifest path inside an archive, empty for plain files
	Entry string `json:"entry,omitempty"`
	// Content holds the UTF-8 bytes after any transcoding
	Content []byte `json:"-"`
	// Encoding is the name of the encoding Content was decoded from
	Encoding string `json:"encoding"`
}

// Name returns a display name such as "SkyShards.zip:SkyShards/SkyShards.txt"
func (d *Document) Name() string {
	if d.Entry == "" {
		return d.Path
	}
	return filepath.Base(d.Path) + ":" + d.Entry
}

// ContentHash returns the hex SHA256 of Content
func (d *Document) ContentHash() string {
	hash := sha256.Sum256(d.Content)
	return hex.EncodeToString(hash[:])
}

// Result is the outcome of parsing one document
type Result struct {
	Path     string             `json:"path" yaml:"path"`
	Entry    string             `json:"entry,omitempty" yaml:"entry,omitempty"`
	Manifest *manifest.Manifest `json:"manifest,omitempty" yaml:"manifest,omitempty"`
	CacheHit bool               `json:"cache_hit" yaml:"cache_hit"`
	Err      error              `json:"-" yaml:"-"`
}

// Valid reports whether the document was read and parsed without errors
func (r *Result) Valid() bool {
	return r.Err == nil && r.Manifest != nil && !r.Manifest.HasErrors()
}

// CacheEntry is a parse result as stored in the cache
type CacheEntry struct {
	ContentHash string             `json:"content_hash"`
	Options     ParseOptions       `json:"options"`
	Manifest    *manifest.Manifest `json:"manifest"`
	CachedAt    time.Time          `json:"cached_at"`
	ExpiresAt   time.Time          `json:"expires_at"`
}

// IsExpired returns true if the entry has expired
func (e *CacheEntry) IsExpired() bool {
	return !e.ExpiresAt.IsZero() && time.Now().After(e.ExpiresAt)
}
