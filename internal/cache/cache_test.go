package cache

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"
)

func TestNilCachePassesThrough(t *testing.T) {
	var c *ListCache

	calls := 0
	b, hit, err := c.Fetch(context.Background(), "resources", "/v1/resources", func() ([]byte, error) {
		calls++
		return []byte(`{"success":true}`), nil
	})
	if err != nil {
		t.Fatalf("Fetch() error = %v", err)
	}
	if hit {
		t.Error("nil cache reported a hit")
	}
	if calls != 1 || string(b) != `{"success":true}` {
		t.Errorf("fn calls = %d, body = %s", calls, b)
	}

	if err := c.Invalidate(context.Background(), "resources"); err != nil {
		t.Errorf("Invalidate() on nil cache error = %v", err)
	}
}

func TestNilCachePropagatesError(t *testing.T) {
	var c *ListCache

	wantErr := errors.New("store down")
	_, _, err := c.Fetch(context.Background(), "resources", "/v1/resources", func() ([]byte, error) {
		return nil, wantErr
	})
	if !errors.Is(err, wantErr) {
		t.Errorf("Fetch() error = %v, want %v", err, wantErr)
	}
}

func TestNewListCacheNilClient(t *testing.T) {
	if c := NewListCache(nil, time.Minute); c != nil {
		t.Error("NewListCache(nil) should disable caching")
	}
}

func TestCacheKeyShape(t *testing.T) {
	k1 := cacheKey("resources", "/v1/resources?type=shelter")
	k2 := cacheKey("resources", "/v1/resources?type=food")
	k3 := cacheKey("jobs", "/v1/resources?type=shelter")

	if !strings.HasPrefix(k1, "pathfinder:list:resources:") {
		t.Errorf("key %q missing kind prefix", k1)
	}
	if k1 == k2 {
		t.Error("different queries share a key")
	}
	if strings.HasPrefix(k3, "pathfinder:list:resources:") {
		t.Error("jobs key carries the resources prefix")
	}
	if k1 != cacheKey("resources", "/v1/resources?type=shelter") {
		t.Error("key derivation is not deterministic")
	}
}

func TestNewRedisClientBadURL(t *testing.T) {
	if _, err := NewRedisClient(context.Background(), "not-a-url"); err == nil {
		t.Error("NewRedisClient accepted malformed URL")
	}
}
