package cache

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/quantmind-br/esomanifest-go/internal/domain"
	"github.com/quantmind-br/esomanifest-go/internal/manifest"
	"github.com/quantmind-br/esomanifest-go/internal/utils"
)

// Ensure Service implements domain.Parser
var _ domain.Parser = (*Service)(nil)

// ServiceOptions contains options for the cached parse service
type ServiceOptions struct {
	// Cache stores parse results; nil parses every document
	Cache domain.Cache
	TTL   time.Duration
	// Refresh ignores cached results but still stores fresh ones
	Refresh bool
	Logger  *utils.Logger
}

// Service parses documents and remembers the results by content
type Service struct {
	cache   domain.Cache
	ttl     time.Duration
	refresh bool
	logger  *utils.Logger
}

// NewService creates a parse service
func NewService(opts ServiceOptions) *Service {
	logger := opts.Logger
	if logger == nil {
		logger = utils.NewNopLogger()
	}
	return &Service{
		cache:   opts.Cache,
		ttl:     opts.TTL,
		refresh: opts.Refresh,
		logger:  logger.WithComponent("cache"),
	}
}

// Parse returns the manifest of doc, from the cache when possible.
// Cache failures are logged and never fail the parse.
func (s *Service) Parse(ctx context.Context, doc *domain.Document, opts domain.ParseOptions) *domain.Result {
	result := &domain.Result{Path: doc.Path, Entry: doc.Entry}
	log := s.logger.WithFile(doc.Name())

	var key string
	if s.cache != nil {
		key = DocumentKey(doc, opts)
		if !s.refresh {
			if m, ok := s.lookup(ctx, key, log); ok {
				result.Manifest = m
				result.CacheHit = true
				return result
			}
		}
	}

	parseOpts := append(opts.ManifestOptions(), manifest.WithLogger(log))
	result.Manifest, result.Err = manifest.ParseReader(bytes.NewReader(doc.Content), parseOpts...)

	// a read failure depends on the environment, not the content
	if s.cache != nil && result.Err == nil {
		s.store(ctx, key, doc, opts, result.Manifest, log)
	}

	return result
}

func (s *Service) lookup(ctx context.Context, key string, log *utils.Logger) (*manifest.Manifest, bool) {
	data, err := s.cache.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, domain.ErrCacheMiss) {
			log.Warn().Err(err).Msg("Cache lookup failed")
		}
		return nil, false
	}

	var entry domain.CacheEntry
	if err := json.Unmarshal(data, &entry); err != nil || entry.Manifest == nil {
		log.Warn().Err(err).Msg("Discarding unreadable cache entry")
		_ = s.cache.Delete(ctx, key)
		return nil, false
	}
	if entry.IsExpired() {
		log.Debug().Msg("Cache entry expired")
		return nil, false
	}

	log.Debug().Str("key", key).Msg("Cache hit")
	return entry.Manifest, true
}

func (s *Service) store(ctx context.Context, key string, doc *domain.Document, opts domain.ParseOptions, m *manifest.Manifest, log *utils.Logger) {
	now := time.Now()
	entry := domain.CacheEntry{
		ContentHash: doc.ContentHash(),
		Options:     opts,
		Manifest:    m,
		CachedAt:    now,
	}
	if s.ttl > 0 {
		entry.ExpiresAt = now.Add(s.ttl)
	}

	data, err := json.Marshal(entry)
	if err != nil {
		log.Warn().Err(err).Msg("Failed to encode cache entry")
		return
	}
	if err := s.cache.Set(ctx, key, data, s.ttl); err != nil {
		log.Warn().Err(err).Msg("Failed to save to cache")
	}
}
