// Package cache is an optional Redis read-through cache for list, search and
// nearby responses. A nil *ListCache disables caching entirely; Redis errors
// are treated as misses so the store always remains the source of truth.
package cache

import (
	"context"
	"crypto/sha1"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/singleflight"
)

const keyPrefix = "pathfinder:list:"

// NewRedisClient parses redisURL and verifies connectivity.
func NewRedisClient(ctx context.Context, redisURL string) (*redis.Client, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("redis.ParseURL(%q): %w", redisURL, err)
	}

	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("redis ping failed: %w", err)
	}

	return client, nil
}

// ListCache caches serialized listing responses per entity kind, invalidated
// wholesale on any write to that kind. Concurrent identical lookups are
// collapsed through singleflight.
type ListCache struct {
	rdb   *redis.Client
	ttl   time.Duration
	group singleflight.Group
}

func NewListCache(rdb *redis.Client, ttl time.Duration) *ListCache {
	if rdb == nil {
		return nil
	}
	return &ListCache{rdb: rdb, ttl: ttl}
}

func cacheKey(kind, query string) string {
	sum := sha1.Sum([]byte(query))
	return keyPrefix + kind + ":" + hex.EncodeToString(sum[:])
}

// Fetch returns the cached payload for (kind, query) or builds it with fn and
// stores the result. The bool reports a cache hit. With a nil receiver fn is
// invoked directly.
func (c *ListCache) Fetch(ctx context.Context, kind, query string, fn func() ([]byte, error)) ([]byte, bool, error) {
	if c == nil {
		b, err := fn()
		return b, false, err
	}

	key := cacheKey(kind, query)
	if b, err := c.rdb.Get(ctx, key).Bytes(); err == nil {
		return b, true, nil
	}

	v, err, _ := c.group.Do(key, func() (any, error) {
		b, err := fn()
		if err != nil {
			return nil, err
		}
		// best effort: a failed Set still serves the response
		_ = c.rdb.Set(ctx, key, b, c.ttl).Err()
		return b, nil
	})
	if err != nil {
		return nil, false, err
	}

	return v.([]byte), false, nil
}

// Invalidate drops every cached listing for the kind.
func (c *ListCache) Invalidate(ctx context.Context, kind string) error {
	if c == nil {
		return nil
	}

	iter := c.rdb.Scan(ctx, 0, keyPrefix+kind+":*", 100).Iterator()
	for iter.Next(ctx) {
		if err := c.rdb.Del(ctx, iter.Val()).Err(); err != nil {
			return err
		}
	}
	return iter.Err()
}
