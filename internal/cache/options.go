package cache

import (
	"time"

	"github.com/quantmind-br/esomanifest-go/internal/domain"
)

// Ensure BadgerCache implements domain.Cache
var _ domain.Cache = (*BadgerCache)(nil)

// Options contains cache configuration options
type Options struct {
	Directory string
	InMemory  bool
	// Logger enables badger's own logging
	Logger bool
	// GCInterval is how often the value log is compacted; 0 disables it
	GCInterval time.Duration
}

// DefaultOptions returns default cache options
func DefaultOptions() Options {
	return Options{
		GCInterval: 5 * time.Minute,
	}
}

// Stats describes the content of the cache
type Stats struct {
	Entries  int64 `json:"entries" yaml:"entries"`
	LSMSize  int64 `json:"lsm_size" yaml:"lsm_size"`
	VLogSize int64 `json:"vlog_size" yaml:"vlog_size"`
}
