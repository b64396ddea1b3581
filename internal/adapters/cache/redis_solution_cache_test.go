package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

func newTestCache(t *testing.T) *RedisSolutionCache {
	t.Helper()

	srv := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: srv.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	return NewRedisSolutionCache(client, time.Hour)
}

func TestRedisSolutionCachePutGet(t *testing.T) {
	c := newTestCache(t)
	ctx := context.Background()

	if err := c.Put(ctx, "abc", []byte(`{"Status":{"code":3}}`)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got, ok, err := c.Get(ctx, "abc")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !ok {
		t.Fatal("stored key reported missing")
	}
	if string(got) != `{"Status":{"code":3}}` {
		t.Fatalf("got %q", got)
	}
}

func TestRedisSolutionCacheMiss(t *testing.T) {
	c := newTestCache(t)

	_, ok, err := c.Get(context.Background(), "missing")
	if err != nil {
		t.Fatalf("miss must not be an error: %v", err)
	}
	if ok {
		t.Fatal("missing key reported present")
	}
}

func TestRedisSolutionCacheEmptyKey(t *testing.T) {
	c := newTestCache(t)
	ctx := context.Background()

	if _, _, err := c.Get(ctx, ""); err == nil {
		t.Fatal("expected error for empty key")
	}
	if err := c.Put(ctx, "", nil); err == nil {
		t.Fatal("expected error for empty key")
	}
}
