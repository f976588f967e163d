package cache

import (
	"context"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quantmind-br/esomanifest-go/internal/domain"
)

func newTestCache(t *testing.T) *BadgerCache {
	t.Helper()
	c, err := NewBadgerCache(Options{InMemory: true})
	require.NoError(t, err)
	t.Cleanup(func() { _ = c.Close() })
	return c
}

func TestNewBadgerCache(t *testing.T) {
	t.Run("in memory", func(t *testing.T) {
		c, err := NewBadgerCache(Options{InMemory: true})
		require.NoError(t, err)
		assert.NoError(t, c.Close())
	})

	t.Run("on disk", func(t *testing.T) {
		dir := filepath.Join(t.TempDir(), "cache")
		opts := DefaultOptions()
		opts.Directory = dir

		c, err := NewBadgerCache(opts)
		require.NoError(t, err)
		require.NoError(t, c.Set(context.Background(), "k", []byte("v"), 0))
		require.NoError(t, c.Close())

		// data survives a reopen
		c, err = NewBadgerCache(Options{Directory: dir})
		require.NoError(t, err)
		defer c.Close()

		value, err := c.Get(context.Background(), "k")
		require.NoError(t, err)
		assert.Equal(t, []byte("v"), value)
	})
}

func TestBadgerCache_GetSet(t *testing.T) {
	c := newTestCache(t)
	ctx := context.Background()

	_, err := c.Get(ctx, "missing")
	assert.ErrorIs(t, err, domain.ErrCacheMiss)

	require.NoError(t, c.Set(ctx, "key", []byte("value"), time.Hour))

	value, err := c.Get(ctx, "key")
	require.NoError(t, err)
	assert.Equal(t, []byte("value"), value)

	require.NoError(t, c.Set(ctx, "key", []byte("updated"), time.Hour))
	value, err = c.Get(ctx, "key")
	require.NoError(t, err)
	assert.Equal(t, []byte("updated"), value)
}

func TestBadgerCache_HasDelete(t *testing.T) {
	c := newTestCache(t)
	ctx := context.Background()

	assert.False(t, c.Has(ctx, "key"))
	require.NoError(t, c.Set(ctx, "key", []byte("value"), 0))
	assert.True(t, c.Has(ctx, "key"))

	require.NoError(t, c.Delete(ctx, "key"))
	assert.False(t, c.Has(ctx, "key"))

	// deleting a missing key is fine
	assert.NoError(t, c.Delete(ctx, "key"))
}

func TestBadgerCache_ClearSizeStats(t *testing.T) {
	c := newTestCache(t)
	ctx := context.Background()

	for _, key := range []string{"a", "b", "c"} {
		require.NoError(t, c.Set(ctx, key, []byte(key), 0))
	}
	assert.Equal(t, int64(3), c.Size())
	assert.Equal(t, int64(3), c.Stats().Entries)

	require.NoError(t, c.Clear())
	assert.Equal(t, int64(0), c.Size())
}

func TestBadgerCache_ContextCancellation(t *testing.T) {
	c := newTestCache(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := c.Get(ctx, "key")
	assert.ErrorIs(t, err, context.Canceled)
	assert.ErrorIs(t, c.Set(ctx, "key", nil, 0), context.Canceled)
}

func TestBadgerCache_ConcurrentAccess(t *testing.T) {
	c := newTestCache(t)
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			key := GenerateKey(string(rune('a'+i)), domain.DefaultParseOptions())
			assert.NoError(t, c.Set(ctx, key, []byte{byte(i)}, 0))
			value, err := c.Get(ctx, key)
			assert.NoError(t, err)
			assert.Equal(t, []byte{byte(i)}, value)
		}(i)
	}
	wg.Wait()

	assert.Equal(t, int64(10), c.Size())
}

func TestBadgerCache_CloseTwice(t *testing.T) {
	c, err := NewBadgerCache(Options{Directory: t.TempDir(), GCInterval: time.Millisecond})
	require.NoError(t, err)

	require.NoError(t, c.Close())
	assert.NotPanics(t, func() { _ = c.Close() })
}
