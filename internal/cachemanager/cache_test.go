package cachemanager

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestInMemoryCacheManager_SetGet(t *testing.T) {
	ctx := context.Background()
	c := NewInMemoryCacheManager[string, []string]("test", time.Minute, time.Minute)

	_, ok := c.Get(ctx, "dir")
	require.False(t, ok)

	c.Set(ctx, "dir", []string{"a", "b"}, 0)
	got, ok := c.Get(ctx, "dir")
	require.True(t, ok)
	require.Equal(t, []string{"a", "b"}, got)
	require.Equal(t, 1, c.Len())
}

func TestInMemoryCacheManager_Expiry(t *testing.T) {
	ctx := context.Background()
	c := NewInMemoryCacheManager[string, int]("test", time.Minute, time.Minute)

	c.Set(ctx, "short", 1, 10*time.Millisecond)
	require.Eventually(t, func() bool {
		_, ok := c.Get(ctx, "short")
		return !ok
	}, time.Second, 5*time.Millisecond)
}

func TestInMemoryCacheManager_DeleteAndFlush(t *testing.T) {
	ctx := context.Background()
	c := NewInMemoryCacheManager[string, int]("test", time.Minute, time.Minute)
	c.Set(ctx, "a", 1, 0)
	c.Set(ctx, "b", 2, 0)
	c.Set(ctx, "c", 3, 0)

	c.Delete(ctx, "a", "b")
	_, ok := c.Get(ctx, "a")
	require.False(t, ok)
	_, ok = c.Get(ctx, "c")
	require.True(t, ok)

	c.Flush(ctx)
	require.Equal(t, 0, c.Len())
}

func TestReadThroughCache_LoadsOnce(t *testing.T) {
	ctx := context.Background()
	calls := 0
	loader := func(_ context.Context, key string) (int, error) {
		calls++
		return len(key), nil
	}
	r := NewReadThroughCache[string, int](
		NewInMemoryCacheManager[string, int]("test", time.Minute, time.Minute), loader, time.Minute)

	v, err := r.Get(ctx, "abcd")
	require.NoError(t, err)
	require.Equal(t, 4, v)

	v, err = r.Get(ctx, "abcd")
	require.NoError(t, err)
	require.Equal(t, 4, v)
	require.Equal(t, 1, calls)

	r.Invalidate(ctx, "abcd")
	_, _ = r.Get(ctx, "abcd")
	require.Equal(t, 2, calls)
}

func TestReadThroughCache_ErrorsNotCached(t *testing.T) {
	ctx := context.Background()
	calls := 0
	loader := func(_ context.Context, _ string) (int, error) {
		calls++
		return 0, errors.New("unreadable")
	}
	r := NewReadThroughCache[string, int](
		NewInMemoryCacheManager[string, int]("test", time.Minute, time.Minute), loader, time.Minute)

	_, err := r.Get(ctx, "x")
	require.Error(t, err)
	_, err = r.Get(ctx, "x")
	require.Error(t, err)
	require.Equal(t, 2, calls)
}
