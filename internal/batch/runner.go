// Package batch validates many manifests concurrently.
package batch

import (
	"context"
	"io"
	"time"

	"github.com/quantmind-br/esomanifest-go/internal/domain"
	"github.com/quantmind-br/esomanifest-go/internal/source"
	"github.com/quantmind-br/esomanifest-go/internal/utils"
)

// Loader reads one document
type Loader func(path string, opts source.Options) (*domain.Document, error)

// Options contains options for creating a runner
type Options struct {
	// Parser is required
	Parser domain.Parser
	// Load defaults to source.Load
	Load   Loader
	Source source.Options
	Parse  domain.ParseOptions
	// Workers below 1 means 1
	Workers int
	// Progress receives a progress bar; nil disables it
	Progress io.Writer
	Logger   *utils.Logger
}

// Target is one manifest to parse: a file, or an entry of an archive
type Target struct {
	Path  string
	Entry string
}

// Runner parses a list of manifests on a worker pool
type Runner struct {
	parser   domain.Parser
	load     Loader
	source   source.Options
	parse    domain.ParseOptions
	workers  int
	progress io.Writer
	logger   *utils.Logger
}

// NewRunner creates a new runner
func NewRunner(opts Options) *Runner {
	if opts.Load == nil {
		opts.Load = source.Load
	}
	if opts.Logger == nil {
		opts.Logger = utils.NewNopLogger()
	}
	return &Runner{
		parser:   opts.Parser,
		load:     opts.Load,
		source:   opts.Source,
		parse:    opts.Parse,
		workers:  opts.Workers,
		progress: opts.Progress,
		logger:   opts.Logger.WithComponent("batch"),
	}
}

// Targets expands archives into one target per manifest entry. An archive
// that cannot be listed stays a single target so that loading reports it.
func Targets(paths []string) []Target {
	targets := make([]Target, 0, len(paths))
	for _, p := range paths {
		if !utils.IsArchive(p) {
			targets = append(targets, Target{Path: p})
			continue
		}
		entries, err := source.ArchiveEntries(p)
		if err != nil || len(entries) == 0 {
			targets = append(targets, Target{Path: p})
			continue
		}
		for _, entry := range entries {
			targets = append(targets, Target{Path: p, Entry: entry})
		}
	}
	return targets
}

// Run parses every path and returns one result per target, in order.
// Read failures are reported in Result.Err. When ctx is cancelled the
// remaining targets get ctx.Err() and Run returns it as well.
func (r *Runner) Run(ctx context.Context, paths []string) ([]*domain.Result, error) {
	return r.RunTargets(ctx, Targets(paths))
}

// RunTargets is Run without archive expansion
func (r *Runner) RunTargets(ctx context.Context, targets []Target) ([]*domain.Result, error) {
	start := time.Now()

	var bar interface{ Add(int) error }
	if r.progress != nil && len(targets) > 1 {
		pb := utils.NewProgressBarTo(r.progress, len(targets), utils.DescValidating)
		defer pb.Finish()
		bar = pb
	}

	pool := utils.NewPool(r.workers, func(ctx context.Context, t Target) (*domain.Result, error) {
		result := r.parseTarget(ctx, t)
		if bar != nil {
			_ = bar.Add(1)
		}
		return result, nil
	})

	tasks, err := pool.Process(ctx, targets)

	results := make([]*domain.Result, len(tasks))
	for i, task := range tasks {
		results[i] = task.Result
		if results[i] == nil {
			results[i] = &domain.Result{Path: task.Data.Path, Entry: task.Data.Entry, Err: task.Err}
		}
	}

	r.logger.Info().
		Int("manifests", len(results)).
		Int("workers", pool.Workers()).
		Dur("duration", time.Since(start)).
		Msg("Batch finished")

	return results, err
}

func (r *Runner) parseTarget(ctx context.Context, t Target) *domain.Result {
	opts := r.source
	opts.Entry = t.Entry

	doc, err := r.load(t.Path, opts)
	if err != nil {
		r.logger.Warn().Err(err).Str("file", t.Path).Msg("Failed to read manifest")
		return &domain.Result{Path: t.Path, Entry: t.Entry, Err: err}
	}

	result := r.parser.Parse(ctx, doc, r.parse)
	if result == nil {
		return &domain.Result{Path: doc.Path, Entry: doc.Entry, Err: domain.ErrInvalidManifest}
	}
	return result
}
