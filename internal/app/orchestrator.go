package app

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/quantmind-br/esomanifest-go/internal/batch"
	"github.com/quantmind-br/esomanifest-go/internal/cache"
	"github.com/quantmind-br/esomanifest-go/internal/config"
	"github.com/quantmind-br/esomanifest-go/internal/domain"
	"github.com/quantmind-br/esomanifest-go/internal/report"
	"github.com/quantmind-br/esomanifest-go/internal/source"
	"github.com/quantmind-br/esomanifest-go/internal/utils"
)

// Orchestrator wires the source, cache, batch and report packages together
type Orchestrator struct {
	config *config.Config
	cache  domain.Cache
	closer io.Closer
	parser domain.Parser
	logger *utils.Logger
	out    io.Writer
	status io.Writer
	// constraint limits the accepted Version values in Validate
	constraint string
}

// OrchestratorOptions contains options for creating an orchestrator
type OrchestratorOptions struct {
	Config  *config.Config
	Verbose bool
	// NoCache disables the parse cache regardless of the config
	NoCache bool
	// Refresh reparses cached manifests and overwrites their entries
	Refresh bool
	// Cache overrides the cache opened from the config
	Cache domain.Cache
	// Logger overrides the logger built from the config
	Logger *utils.Logger
	// Out receives reports, stdout by default
	Out io.Writer
	// Status receives progress bars; nil disables them
	Status io.Writer
	// VersionConstraint fails validated manifests whose Version is outside
	// a semver range such as ">= 2.0"
	VersionConstraint string
}

// NewOrchestrator creates a new orchestrator with the given configuration
func NewOrchestrator(opts OrchestratorOptions) (*Orchestrator, error) {
	cfg := opts.Config
	if cfg == nil {
		return nil, fmt.Errorf("config is required")
	}

	logger := opts.Logger
	if logger == nil {
		logger = NewLogger(cfg, opts.Verbose)
	}

	if _, err := report.ApplyConstraint(nil, opts.VersionConstraint); err != nil {
		return nil, err
	}

	o := &Orchestrator{
		config:     cfg,
		logger:     logger,
		out:        opts.Out,
		status:     opts.Status,
		constraint: opts.VersionConstraint,
	}

	o.cache = opts.Cache
	if o.cache == nil && cfg.Cache.Enabled && !opts.NoCache {
		c, err := OpenCache(cfg)
		if err != nil {
			return nil, fmt.Errorf("failed to open cache: %w", err)
		}
		o.cache = c
		o.closer = c
	}
	if opts.NoCache {
		o.cache = nil
	}

	o.parser = cache.NewService(cache.ServiceOptions{
		Cache:   o.cache,
		TTL:     cfg.Cache.TTL,
		Refresh: opts.Refresh,
		Logger:  logger,
	})
	return o, nil
}

// NewLogger builds the logger described by cfg
func NewLogger(cfg *config.Config, verbose bool) *utils.Logger {
	level := cfg.Logging.Level
	if level == "" {
		level = config.DefaultLogLevel
	}
	format := cfg.Logging.Format
	if format == "" {
		format = config.DefaultLogFormat
	}
	return utils.NewLogger(utils.LoggerOptions{
		Level:   level,
		Format:  format,
		Verbose: verbose,
		NoColor: !cfg.Output.Color,
	})
}

// OpenCache opens the on-disk cache configured in cfg
func OpenCache(cfg *config.Config) (*cache.BadgerCache, error) {
	opts := cache.DefaultOptions()
	opts.Directory = utils.ExpandPath(cfg.Cache.Directory)
	return cache.NewBadgerCache(opts)
}

// Parse reads and parses a single manifest and writes its report
func (o *Orchestrator) Parse(ctx context.Context, path string) (*domain.Result, error) {
	doc, err := source.Load(path, o.sourceOptions())
	if err != nil {
		return nil, err
	}

	result := o.parser.Parse(ctx, doc, o.config.ParseOptions())
	if err := o.writer().Write(result); err != nil {
		return result, err
	}
	return result, nil
}

// Validate parses every manifest below paths, writes the report and returns
// the summary. Directories are searched for manifests and archives.
func (o *Orchestrator) Validate(ctx context.Context, paths []string) (report.Summary, error) {
	start := time.Now()

	inputs, err := ExpandInputs(paths)
	if err != nil {
		return report.Summary{}, err
	}
	if len(inputs) == 0 {
		return report.Summary{}, domain.ErrNoManifest
	}

	o.logger.Info().
		Int("inputs", len(inputs)).
		Int("workers", o.config.Concurrency.Workers).
		Bool("cache", o.cache != nil).
		Msg("Starting validation")

	runner := batch.NewRunner(batch.Options{
		Parser:   o.parser,
		Source:   o.sourceOptions(),
		Parse:    o.config.ParseOptions(),
		Workers:  o.config.Concurrency.Workers,
		Progress: o.status,
		Logger:   o.logger,
	})

	results, runErr := runner.Run(ctx, inputs)
	if n, _ := report.ApplyConstraint(results, o.constraint); n > 0 {
		o.logger.Info().
			Int("rejected", n).
			Str("constraint", o.constraint).
			Msg("Versions outside constraint")
	}
	summary := report.Summarize(results)

	if err := o.writer().WriteAll(results); err != nil {
		return summary, err
	}
	if runErr != nil {
		o.logger.Warn().Msg("Validation cancelled")
		return summary, runErr
	}

	o.logger.Info().
		Int("valid", summary.Valid).
		Int("invalid", summary.Invalid).
		Int("failed", summary.Failed).
		Int("cached", summary.Cached).
		Dur("duration", time.Since(start)).
		Msg("Validation completed")

	return summary, nil
}

// Close releases all resources held by the orchestrator
func (o *Orchestrator) Close() error {
	if o.closer != nil {
		return o.closer.Close()
	}
	return nil
}

func (o *Orchestrator) sourceOptions() source.Options {
	return source.Options{Encoding: o.config.Source.Encoding}
}

func (o *Orchestrator) writer() *report.Writer {
	// the format was checked by config.Validate
	w, err := report.NewWriter(report.WriterOptions{
		Out:    o.out,
		Format: o.config.Output.Format,
		Color:  o.config.Output.Color,
	})
	if err != nil {
		w, _ = report.NewWriter(report.WriterOptions{Out: o.out, Color: o.config.Output.Color})
	}
	return w
}
