package cache

import (
	"fmt"
	"testing"
	"time"
)

func TestCache(t *testing.T) {
	c := New[string](60)

	if _, ok := c.Get("missing"); ok {
		t.Fatal("empty cache returned a value")
	}

	c.Set("a", "1")
	v, ok := c.Get("a")
	if !ok || v != "1" {
		t.Fatalf("want 1, got %v %v", v, ok)
	}

	c.Set("a", "2")
	v, _ = c.Get("a")
	if v != "2" {
		t.Fatalf("overwrite failed, got %v", v)
	}

	if c.Len() != 1 {
		t.Fatalf("want len 1, got %d", c.Len())
	}
}

func TestCache_Expire(t *testing.T) {
	c := New[int](1)

	c.Set("k", 42)
	if _, ok := c.Get("k"); !ok {
		t.Fatal("fresh entry missing")
	}

	time.Sleep(2100 * time.Millisecond)
	if _, ok := c.Get("k"); ok {
		t.Fatal("expired entry still returned")
	}
}

func TestCache_None(t *testing.T) {
	c := New[string](0)

	c.Set("a", "1")
	if _, ok := c.Get("a"); ok {
		t.Fatal("no-op cache returned a value")
	}
	if c.Len() != 0 {
		t.Fatal("no-op cache has entries")
	}
}

func TestCache_GC(t *testing.T) {
	c := New[int](1).(*ttlCache[int])

	for i := 0; i < Cache_TriggerGCCount; i++ {
		c.Set(fmt.Sprint(i), i)
	}
	if c.Len() != Cache_TriggerGCCount {
		t.Fatalf("want %d entries, got %d", Cache_TriggerGCCount, c.Len())
	}

	time.Sleep(2100 * time.Millisecond)
	c.Set("trigger", 1)

	if n := c.Len(); n != 1 {
		t.Fatalf("gc should leave only the fresh entry, got %d", n)
	}
}
