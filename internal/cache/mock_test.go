package cache

import (
	"bytes"
	"context"
	"testing"
	"time"
)

func TestMemoryStoreSetGet(t *testing.T) {
	m := NewMemoryStore()
	ctx := context.Background()

	if _, ok, _ := m.Get(ctx, "missing"); ok {
		t.Error("expected miss for unknown key")
	}

	if err := m.Set(ctx, "home:en", []byte(`{"a":1}`), time.Minute); err != nil {
		t.Fatalf("Set: %v", err)
	}
	val, ok, err := m.Get(ctx, "home:en")
	if err != nil || !ok {
		t.Fatalf("Get: ok=%v err=%v", ok, err)
	}
	if !bytes.Equal(val, []byte(`{"a":1}`)) {
		t.Errorf("Get = %q", val)
	}
}

func TestMemoryStoreExpiry(t *testing.T) {
	m := NewMemoryStore()
	now := time.Date(2026, time.January, 15, 12, 0, 0, 0, time.UTC)
	m.clock = func() time.Time { return now }
	ctx := context.Background()

	if err := m.Set(ctx, "k", []byte("v"), time.Minute); err != nil {
		t.Fatalf("Set: %v", err)
	}

	now = now.Add(2 * time.Minute)
	if _, ok, _ := m.Get(ctx, "k"); ok {
		t.Error("expected entry to be expired")
	}
}
