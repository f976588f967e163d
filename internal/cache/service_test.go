package cache

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/quantmind-br/esomanifest-go/internal/domain"
	"github.com/quantmind-br/esomanifest-go/internal/manifest"
	"github.com/quantmind-br/esomanifest-go/internal/mocks"
)

const testManifest = "## Title: SkyShards\n## Author: Garkin\n## APIVersion: 101037\n## DependsOn: LibAddonMenu-2.0>=32\n## Credits: Ayantir\n"

func testDocument() *domain.Document {
	return &domain.Document{Path: "AddOns/SkyShards/SkyShards.txt", Content: []byte(testManifest)}
}

func fullOptions() domain.ParseOptions {
	opts := domain.DefaultParseOptions()
	opts.FullValidation = true
	return opts
}

func TestService_WithoutCache(t *testing.T) {
	svc := NewService(ServiceOptions{})

	result := svc.Parse(context.Background(), testDocument(), fullOptions())

	require.NoError(t, result.Err)
	assert.False(t, result.CacheHit)
	assert.Equal(t, "AddOns/SkyShards/SkyShards.txt", result.Path)
	assert.Equal(t, "SkyShards", result.Manifest.Title)
	assert.True(t, result.Valid())
}

func TestService_BadgerRoundTrip(t *testing.T) {
	ctx := context.Background()
	svc := NewService(ServiceOptions{Cache: newTestCache(t), TTL: time.Hour})

	first := svc.Parse(ctx, testDocument(), fullOptions())
	require.NoError(t, first.Err)
	assert.False(t, first.CacheHit)

	second := svc.Parse(ctx, testDocument(), fullOptions())
	require.NoError(t, second.Err)
	assert.True(t, second.CacheHit)
	assert.True(t, first.Manifest.Equivalent(second.Manifest))
	assert.Equal(t, first.Manifest.Warnings.Kinds(), second.Manifest.Warnings.Kinds())
	assert.Equal(t, first.Manifest.Warnings[0].Error(), second.Manifest.Warnings[0].Error())

	t.Run("different options miss", func(t *testing.T) {
		third := svc.Parse(ctx, testDocument(), domain.DefaultParseOptions())
		assert.False(t, third.CacheHit)
	})
}

func TestService_Refresh(t *testing.T) {
	ctx := context.Background()
	c := newTestCache(t)

	NewService(ServiceOptions{Cache: c}).Parse(ctx, testDocument(), fullOptions())
	result := NewService(ServiceOptions{Cache: c, Refresh: true}).Parse(ctx, testDocument(), fullOptions())

	assert.False(t, result.CacheHit)
	assert.Equal(t, int64(1), c.Size())
}

func TestService_CacheMissStores(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	doc := testDocument()
	key := DocumentKey(doc, fullOptions())

	mockCache := mocks.NewMockCache(ctrl)
	mockCache.EXPECT().Get(ctx, key).Return(nil, domain.ErrCacheMiss)
	mockCache.EXPECT().Set(ctx, key, gomock.Any(), 2*time.Hour).DoAndReturn(
		func(_ context.Context, _ string, value []byte, _ time.Duration) error {
			var entry domain.CacheEntry
			require.NoError(t, json.Unmarshal(value, &entry))
			assert.Equal(t, doc.ContentHash(), entry.ContentHash)
			assert.True(t, entry.Options.FullValidation)
			assert.Equal(t, "SkyShards", entry.Manifest.Title)
			assert.False(t, entry.ExpiresAt.IsZero())
			return nil
		})

	result := NewService(ServiceOptions{Cache: mockCache, TTL: 2 * time.Hour}).Parse(ctx, doc, fullOptions())

	assert.False(t, result.CacheHit)
	assert.Equal(t, "SkyShards", result.Manifest.Title)
}

func TestService_CacheErrorsDoNotFailParse(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	mockCache := mocks.NewMockCache(ctrl)
	mockCache.EXPECT().Get(ctx, gomock.Any()).Return(nil, errors.New("disk full"))
	mockCache.EXPECT().Set(ctx, gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("disk full"))

	result := NewService(ServiceOptions{Cache: mockCache}).Parse(ctx, testDocument(), fullOptions())

	require.NoError(t, result.Err)
	assert.Equal(t, "SkyShards", result.Manifest.Title)
}

func TestService_CorruptEntryIsDiscarded(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	mockCache := mocks.NewMockCache(ctrl)
	mockCache.EXPECT().Get(ctx, gomock.Any()).Return([]byte("{not json"), nil)
	mockCache.EXPECT().Delete(ctx, gomock.Any()).Return(nil)
	mockCache.EXPECT().Set(ctx, gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

	result := NewService(ServiceOptions{Cache: mockCache}).Parse(ctx, testDocument(), fullOptions())

	assert.False(t, result.CacheHit)
	assert.Equal(t, "SkyShards", result.Manifest.Title)
}

func TestService_ExpiredEntryIsReparsed(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	stale, err := json.Marshal(domain.CacheEntry{
		Manifest:  manifest.ParseString("## Title: Stale"),
		ExpiresAt: time.Now().Add(-time.Minute),
	})
	require.NoError(t, err)

	mockCache := mocks.NewMockCache(ctrl)
	mockCache.EXPECT().Get(ctx, gomock.Any()).Return(stale, nil)
	mockCache.EXPECT().Set(ctx, gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

	result := NewService(ServiceOptions{Cache: mockCache}).Parse(ctx, testDocument(), fullOptions())

	assert.False(t, result.CacheHit)
	assert.Equal(t, "SkyShards", result.Manifest.Title)
}

func TestService_ReadFailureIsNotCached(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	opts := fullOptions()
	opts.MaxLineBytes = 16

	mockCache := mocks.NewMockCache(ctrl)
	mockCache.EXPECT().Get(ctx, gomock.Any()).Return(nil, domain.ErrCacheMiss)
	// no Set expected

	result := NewService(ServiceOptions{Cache: mockCache}).Parse(ctx, testDocument(), opts)

	assert.ErrorIs(t, result.Err, manifest.ErrReadLine)
	require.NotNil(t, result.Manifest)
	assert.False(t, result.Valid())
}
