package cache

import (
	"context"
	"errors"
	"testing"
	"time"
)

// Services hold a nil *RedisCache when Redis is not configured; every
// operation must degrade to a no-op or a miss.
func TestNilCacheBehavesAsMiss(t *testing.T) {
	var c *RedisCache
	ctx := context.Background()

	var dest []string
	if err := c.GetJSON(ctx, "some:key", &dest); !errors.Is(err, ErrNotFound) {
		t.Fatalf("GetJSON() on nil cache = %v, want ErrNotFound", err)
	}

	if err := c.SetJSON(ctx, "some:key", []string{"a"}, time.Minute); err != nil {
		t.Fatalf("SetJSON() on nil cache = %v, want nil", err)
	}

	if err := c.Delete(ctx, "some:key"); err != nil {
		t.Fatalf("Delete() on nil cache = %v, want nil", err)
	}

	if err := c.Close(); err != nil {
		t.Fatalf("Close() on nil cache = %v, want nil", err)
	}
}

func TestNewRedisCacheRejectsBadURL(t *testing.T) {
	if _, err := NewRedisCache("not-a-url"); err == nil {
		t.Fatal("NewRedisCache() with a bad URL should fail")
	}
}
