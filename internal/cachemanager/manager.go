// Package cachemanager provides TTL caches for values that are expensive to
// rebuild on every keystroke, such as directory listings for path completion.
package cachemanager

import (
	"context"
	"time"
)

// CacheManager stores values by key with a per-entry time to live.
type CacheManager[K comparable, V any] interface {
	Get(ctx context.Context, key K) (V, bool)
	Set(ctx context.Context, key K, value V, ttl time.Duration)
	Delete(ctx context.Context, keys ...K)
	Flush(ctx context.Context)
}
