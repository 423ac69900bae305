package repository

import "testing"

func TestMemoryCache(t *testing.T) {
	cache := NewMemoryCache()

	if _, ok := cache.Get("missing"); ok {
		t.Error("expected a miss on an empty cache")
	}

	if err := cache.Set("key", "value"); err != nil {
		t.Fatalf("Set: %v", err)
	}
	value, ok := cache.Get("key")
	if !ok || value != "value" {
		t.Errorf("Get: want value, got %q (%v)", value, ok)
	}

	if err := cache.Flush(); err != nil {
		t.Fatalf("Flush: %v", err)
	}
	if _, ok := cache.Get("key"); ok {
		t.Error("expected a miss after flush")
	}
}
