package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
)

func TestNopNeverHits(t *testing.T) {
	var c Cache = Nop{}
	ctx := context.Background()
	if err := c.Set(ctx, "products:all", []int{1, 2}); err != nil {
		t.Fatal(err)
	}
	var out []int
	hit, err := c.Get(ctx, "products:all", &out)
	if err != nil || hit {
		t.Fatalf("nop cache hit=%v err=%v", hit, err)
	}
	if err := c.Invalidate(ctx, "products:"); err != nil {
		t.Fatal(err)
	}
}

func TestConnectUnreachable(t *testing.T) {
	_, err := Connect(context.Background(), RedisConfig{Addr: "127.0.0.1:1", Timeout: 300 * time.Millisecond})
	if err == nil {
		t.Fatal("expected ping failure for unreachable redis")
	}
}

func TestRedisGetSetAndPrefixInvalidate(t *testing.T) {
	mr := miniredis.RunT(t)
	ctx := context.Background()
	c, err := Connect(ctx, RedisConfig{Addr: mr.Addr(), TTL: time.Minute})
	if err != nil {
		t.Fatalf("connect: %v", err)
	}
	t.Cleanup(func() { _ = c.Close() })

	var miss []string
	if hit, err := c.Get(ctx, "products:", &miss); err != nil || hit {
		t.Fatalf("empty cache hit=%v err=%v", hit, err)
	}

	for key, v := range map[string][]string{
		"products:":      {"a", "b"},
		"products:Foils": {"b"},
		"categories:":    {"c"},
	} {
		if err := c.Set(ctx, key, v); err != nil {
			t.Fatalf("set %s: %v", key, err)
		}
	}
	if ttl := mr.TTL(keyPrefix + "products:"); ttl != time.Minute {
		t.Fatalf("ttl = %v", ttl)
	}

	var got []string
	hit, err := c.Get(ctx, "products:", &got)
	if err != nil || !hit || len(got) != 2 || got[1] != "b" {
		t.Fatalf("get: hit=%v err=%v got=%v", hit, err, got)
	}

	if err := c.Invalidate(ctx, "products:"); err != nil {
		t.Fatal(err)
	}
	if mr.Exists(keyPrefix+"products:") || mr.Exists(keyPrefix+"products:Foils") {
		t.Fatal("product keys survived invalidation")
	}
	if !mr.Exists(keyPrefix + "categories:") {
		t.Fatal("invalidation removed keys outside the prefix")
	}
	if err := c.Invalidate(ctx, "products:"); err != nil {
		t.Fatalf("invalidating nothing: %v", err)
	}

	mr.FastForward(2 * time.Minute)
	if hit, _ := c.Get(ctx, "categories:", &got); hit {
		t.Fatal("entry outlived its ttl")
	}
}

func TestRedisCorruptEntry(t *testing.T) {
	mr := miniredis.RunT(t)
	c, err := Connect(context.Background(), RedisConfig{Addr: mr.Addr()})
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = c.Close() })

	if err := mr.Set(keyPrefix+"products:", "not json"); err != nil {
		t.Fatal(err)
	}
	var got []string
	if hit, err := c.Get(context.Background(), "products:", &got); err == nil || hit {
		t.Fatalf("corrupt entry: hit=%v err=%v", hit, err)
	}
}
