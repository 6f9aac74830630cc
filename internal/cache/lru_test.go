package cache

import (
	"testing"
	"time"
)

func TestLRUCacheGetSet(t *testing.T) {
	c := NewLRUCache[string](2, time.Minute)

	if _, ok := c.Get("missing"); ok {
		t.Fatal("empty cache must miss")
	}

	c.Set("a", "1")
	got, ok := c.Get("a")
	if !ok || got != "1" {
		t.Fatalf("expected hit with '1', got %q (ok=%v)", got, ok)
	}

	c.Set("a", "2")
	if got, _ := c.Get("a"); got != "2" {
		t.Fatalf("overwrite failed, got %q", got)
	}
	if c.Size() != 1 {
		t.Fatalf("overwrite must not grow the cache, size %d", c.Size())
	}
}

func TestLRUCacheEviction(t *testing.T) {
	c := NewLRUCache[int](2, time.Minute)
	c.Set("a", 1)
	c.Set("b", 2)

	// Touch "a" so "b" becomes the eviction candidate.
	c.Get("a")
	c.Set("c", 3)

	if _, ok := c.Get("b"); ok {
		t.Fatal("least recently used entry should have been evicted")
	}
	if _, ok := c.Get("a"); !ok {
		t.Fatal("recently used entry should survive")
	}
	if _, ok := c.Get("c"); !ok {
		t.Fatal("new entry should be present")
	}
}

func TestLRUCacheTTL(t *testing.T) {
	c := NewLRUCache[int](10, 10*time.Millisecond)
	c.Set("a", 1)
	time.Sleep(20 * time.Millisecond)

	if _, ok := c.Get("a"); ok {
		t.Fatal("expired entry must miss")
	}
	c.Set("b", 2)
	time.Sleep(20 * time.Millisecond)
	if n := c.CleanExpired(); n != 1 {
		t.Fatalf("expected 1 cleaned, got %d", n)
	}
	if c.Size() != 0 {
		t.Fatalf("expected empty cache, size %d", c.Size())
	}
}

func TestLRUCachePurge(t *testing.T) {
	c := NewLRUCache[int](10, time.Minute)
	c.Set("a", 1)
	c.Set("b", 2)
	c.Purge()
	if c.Size() != 0 {
		t.Fatalf("expected empty cache after purge, size %d", c.Size())
	}
	if _, ok := c.Get("a"); ok {
		t.Fatal("purged entry must miss")
	}
}

func TestLRUCacheDelete(t *testing.T) {
	c := NewLRUCache[int](10, time.Minute)
	c.Set("a", 1)
	c.Delete("a")
	if _, ok := c.Get("a"); ok {
		t.Fatal("deleted entry must miss")
	}
	c.Delete("never-existed")
}
