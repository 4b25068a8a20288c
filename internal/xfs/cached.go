package xfs

import (
	"context"
	"time"

	gocache "github.com/patrickmn/go-cache"
)

// DefaultProbeTTL is how long Cached keeps probe results when no TTL is
// configured. Exported model trees are immutable once written, so a short
// TTL only guards against resolving against a half-written tree.
const DefaultProbeTTL = 30 * time.Second

// Cached is a read-through FS decorator that memoizes existence and listing
// probes. It is meant for remote storage backends where each probe is a
// round trip; a single path resolution may probe the same path more than
// once across fallback rules.
type Cached struct {
	inner FS
	cache *gocache.Cache
}

// NewCached wraps the given FS with a probe cache. A non-positive ttl falls
// back to DefaultProbeTTL. Errors are never cached.
func NewCached(inner FS, ttl time.Duration) *Cached {
	if ttl <= 0 {
		ttl = DefaultProbeTTL
	}

	return &Cached{
		inner: inner,
		cache: gocache.New(ttl, 2*ttl),
	}
}

// Exists reports whether the given path exists, serving repeated probes
// from the cache.
func (c *Cached) Exists(ctx context.Context, path string) (bool, error) {
	key := "exists:" + path
	if v, ok := c.cache.Get(key); ok {
		return v.(bool), nil
	}

	exists, err := c.inner.Exists(ctx, path)
	if err != nil {
		return false, err
	}

	c.cache.SetDefault(key, exists)
	return exists, nil
}

// ListDir returns the immediate children of the given directory, serving
// repeated listings from the cache.
func (c *Cached) ListDir(ctx context.Context, path string) ([]string, error) {
	key := "list:" + path
	if v, ok := c.cache.Get(key); ok {
		return v.([]string), nil
	}

	children, err := c.inner.ListDir(ctx, path)
	if err != nil {
		return nil, err
	}

	c.cache.SetDefault(key, children)
	return children, nil
}

// Flush drops all cached probe results.
func (c *Cached) Flush() {
	c.cache.Flush()
}
