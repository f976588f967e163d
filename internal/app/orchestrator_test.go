package app

import (
	"bytes"
	"context"
	"encoding/json"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/quantmind-br/esomanifest-go/internal/cache"
	"github.com/quantmind-br/esomanifest-go/internal/config"
	"github.com/quantmind-br/esomanifest-go/internal/domain"
	"github.com/quantmind-br/esomanifest-go/internal/mocks"
	"github.com/quantmind-br/esomanifest-go/internal/utils"
)

const skyShards = "## Title: SkyShards\n## Author: Garkin\n## APIVersion: 101037\n## Version: 10.30\n"

func testConfig(t *testing.T) *config.Config {
	cfg := config.Default()
	cfg.Cache.Enabled = false
	cfg.Cache.Directory = filepath.Join(t.TempDir(), "cache")
	cfg.Output.Color = false
	cfg.Concurrency.Workers = 2
	return cfg
}

func newTestOrchestrator(t *testing.T, opts OrchestratorOptions) (*Orchestrator, *bytes.Buffer) {
	t.Helper()
	var out bytes.Buffer
	if opts.Config == nil {
		opts.Config = testConfig(t)
	}
	opts.Out = &out
	opts.Logger = utils.NewNopLogger()

	o, err := NewOrchestrator(opts)
	require.NoError(t, err)
	t.Cleanup(func() { _ = o.Close() })
	return o, &out
}

func TestNewOrchestrator_RequiresConfig(t *testing.T) {
	_, err := NewOrchestrator(OrchestratorOptions{})
	assert.Error(t, err)
}

func TestNewOrchestrator_OpensCache(t *testing.T) {
	cfg := testConfig(t)
	cfg.Cache.Enabled = true

	o, _ := newTestOrchestrator(t, OrchestratorOptions{Config: cfg})
	assert.NotNil(t, o.cache)
	assert.NotNil(t, o.closer)

	t.Run("no cache flag wins", func(t *testing.T) {
		cfg := testConfig(t)
		cfg.Cache.Enabled = true
		o, _ := newTestOrchestrator(t, OrchestratorOptions{Config: cfg, NoCache: true})
		assert.Nil(t, o.cache)
	})
}

func TestOrchestrator_Parse(t *testing.T) {
	p := writeManifest(t, filepath.Join(t.TempDir(), "SkyShards", "SkyShards.txt"), skyShards)
	o, out := newTestOrchestrator(t, OrchestratorOptions{})

	result, err := o.Parse(context.Background(), p)
	require.NoError(t, err)

	assert.True(t, result.Valid())
	assert.Equal(t, "SkyShards", result.Manifest.Title)
	assert.Contains(t, out.String(), "OK "+p)
	assert.Contains(t, out.String(), "semver 10.30.0")
}

func TestOrchestrator_ParseMissing(t *testing.T) {
	o, _ := newTestOrchestrator(t, OrchestratorOptions{})

	_, err := o.Parse(context.Background(), filepath.Join(t.TempDir(), "missing.txt"))
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestOrchestrator_Validate(t *testing.T) {
	dir := t.TempDir()
	writeManifest(t, filepath.Join(dir, "SkyShards", "SkyShards.txt"), skyShards)
	writeManifest(t, filepath.Join(dir, "Broken", "Broken.txt"), "## Title: Broken\n## Passwords: none\n")

	cfg := testConfig(t)
	cfg.Output.Format = config.FormatJSON
	o, out := newTestOrchestrator(t, OrchestratorOptions{Config: cfg})

	summary, err := o.Validate(context.Background(), []string{dir})
	require.NoError(t, err)

	assert.Equal(t, 2, summary.Total)
	assert.Equal(t, 1, summary.Valid)
	assert.Equal(t, 1, summary.Invalid)
	assert.Equal(t, 1, summary.Warnings)
	assert.False(t, summary.OK(false))

	var doc map[string]any
	require.NoError(t, json.Unmarshal(out.Bytes(), &doc))
	assert.Len(t, doc["results"], 2)
}

func TestOrchestrator_ValidateVersionConstraint(t *testing.T) {
	dir := t.TempDir()
	writeManifest(t, filepath.Join(dir, "SkyShards", "SkyShards.txt"), skyShards)
	writeManifest(t, filepath.Join(dir, "Old", "Old.txt"), "## Title: Old\n## Author: A\n## APIVersion: 101037\n## Version: 9.1\n")

	o, out := newTestOrchestrator(t, OrchestratorOptions{VersionConstraint: ">= 10"})

	summary, err := o.Validate(context.Background(), []string{dir})
	require.NoError(t, err)
	assert.Equal(t, 1, summary.Valid)
	assert.Equal(t, 1, summary.Failed)
	assert.False(t, summary.OK(false))
	assert.Contains(t, out.String(), "FAIL "+filepath.Join(dir, "Old", "Old.txt"))
	assert.Contains(t, out.String(), `9.1 not in ">= 10"`)
}

func TestNewOrchestrator_InvalidVersionConstraint(t *testing.T) {
	_, err := NewOrchestrator(OrchestratorOptions{Config: testConfig(t), VersionConstraint: "not a range"})
	assert.ErrorContains(t, err, "invalid version constraint")
}

func TestOrchestrator_ValidateEmptyDirectory(t *testing.T) {
	o, _ := newTestOrchestrator(t, OrchestratorOptions{})

	_, err := o.Validate(context.Background(), []string{t.TempDir()})
	assert.ErrorIs(t, err, domain.ErrNoManifest)
}

func TestOrchestrator_ValidateUsesCache(t *testing.T) {
	dir := t.TempDir()
	writeManifest(t, filepath.Join(dir, "SkyShards", "SkyShards.txt"), skyShards)

	c, err := cache.NewBadgerCache(cache.Options{InMemory: true})
	require.NoError(t, err)
	defer c.Close()

	o, _ := newTestOrchestrator(t, OrchestratorOptions{Cache: c})

	first, err := o.Validate(context.Background(), []string{dir})
	require.NoError(t, err)
	assert.Equal(t, 0, first.Cached)

	second, err := o.Validate(context.Background(), []string{dir})
	require.NoError(t, err)
	assert.Equal(t, 1, second.Cached)
}

func TestOrchestrator_CacheFailureIsNotFatal(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	p := writeManifest(t, filepath.Join(t.TempDir(), "SkyShards", "SkyShards.txt"), skyShards)

	mockCache := mocks.NewMockCache(ctrl)
	mockCache.EXPECT().Get(gomock.Any(), gomock.Any()).Return(nil, assert.AnError)
	mockCache.EXPECT().Set(gomock.Any(), gomock.Any(), gomock.Any(), 24*time.Hour).Return(assert.AnError)

	cfg := testConfig(t)
	cfg.Cache.TTL = 24 * time.Hour
	o, _ := newTestOrchestrator(t, OrchestratorOptions{Config: cfg, Cache: mockCache})

	result, err := o.Parse(context.Background(), p)
	require.NoError(t, err)
	assert.True(t, result.Valid())
}
