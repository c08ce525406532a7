package cache

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/fynda/backend/internal/domain"
)

func newTestBadger(t *testing.T) *BadgerCache {
	t.Helper()
	c, err := NewBadgerCache("")
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { c.Close() })
	return c
}

func TestBadgerCache_SetAndGet(t *testing.T) {
	cache := newTestBadger(t)
	ctx := context.Background()

	value := map[string]interface{}{
		"query":          "leather jacket",
		"quota_exceeded": false,
	}
	if err := cache.Set(ctx, "search:abc", value, time.Minute); err != nil {
		t.Fatal(err)
	}

	got, err := cache.Get(ctx, "search:abc")
	if err != nil {
		t.Fatal(err)
	}
	m, ok := got.(map[string]interface{})
	if !ok {
		t.Fatalf("value type = %T, want map", got)
	}
	if m["query"] != "leather jacket" {
		t.Errorf("query = %v, want leather jacket", m["query"])
	}
}

func TestBadgerCache_Miss(t *testing.T) {
	cache := newTestBadger(t)

	if _, err := cache.Get(context.Background(), "absent"); !errors.Is(err, domain.ErrCacheMiss) {
		t.Errorf("Get() on absent key = %v, want ErrCacheMiss", err)
	}
}

func TestBadgerCache_TTLExpiry(t *testing.T) {
	cache := newTestBadger(t)
	ctx := context.Background()

	if err := cache.Set(ctx, "expiring", "value", 50*time.Millisecond); err != nil {
		t.Fatal(err)
	}
	time.Sleep(150 * time.Millisecond)

	if _, err := cache.Get(ctx, "expiring"); !errors.Is(err, domain.ErrCacheMiss) {
		t.Errorf("Get() after TTL = %v, want ErrCacheMiss", err)
	}
}

func TestBadgerCache_Delete(t *testing.T) {
	cache := newTestBadger(t)
	ctx := context.Background()

	if err := cache.Set(ctx, "doomed", "value", time.Minute); err != nil {
		t.Fatal(err)
	}
	if err := cache.Delete(ctx, "doomed"); err != nil {
		t.Fatal(err)
	}
	if _, err := cache.Get(ctx, "doomed"); !errors.Is(err, domain.ErrCacheMiss) {
		t.Errorf("Get() after delete = %v, want ErrCacheMiss", err)
	}
}

func TestBadgerCache_OnDisk(t *testing.T) {
	dir := t.TempDir()
	cache, err := NewBadgerCache(dir)
	if err != nil {
		t.Fatal(err)
	}
	defer cache.Close()

	ctx := context.Background()
	if err := cache.Set(ctx, "persisted", "value", time.Minute); err != nil {
		t.Fatal(err)
	}
	if _, err := cache.Get(ctx, "persisted"); err != nil {
		t.Errorf("Get() on disk-backed cache = %v", err)
	}
}
