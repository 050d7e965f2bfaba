// Package preview caches the sanitized HTML of public projects in Redis so
// repeated share-link hits skip the document store. The cache is a pure
// optimization: any failure degrades to a direct read.
package preview

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

const keyPrefix = "preview:"

type Cache struct {
	rdb *redis.Client
	ttl time.Duration
}

func New(rdb *redis.Client, ttl time.Duration) *Cache {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	return &Cache{rdb: rdb, ttl: ttl}
}

// Get returns the cached HTML for a project id, if present.
func (c *Cache) Get(ctx context.Context, id string) (string, bool) {
	html, err := c.rdb.Get(ctx, keyPrefix+id).Result()
	if err != nil {
		return "", false
	}
	return html, true
}

// Set stores the HTML for a project id with the configured TTL.
// Errors are deliberately dropped; a cold cache is not a failure.
func (c *Cache) Set(ctx context.Context, id, html string) {
	_ = c.rdb.Set(ctx, keyPrefix+id, html, c.ttl).Err()
}

// Invalidate drops the cached HTML after a mutation or delete.
func (c *Cache) Invalidate(ctx context.Context, id string) {
	_ = c.rdb.Del(ctx, keyPrefix+id).Err()
}
