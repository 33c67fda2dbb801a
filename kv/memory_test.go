package kv

import (
	"context"
	"errors"
	"testing"
)

func TestMemoryGetSetRemove(t *testing.T) {
	store := NewMemory()
	ctx := context.Background()

	if _, err := store.Get(ctx, "missing"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Get() on missing key = %v, want ErrNotFound", err)
	}

	if err := store.Set(ctx, "k", []byte(`{"a":1}`)); err != nil {
		t.Fatalf("Set() error: %v", err)
	}
	got, err := store.Get(ctx, "k")
	if err != nil {
		t.Fatalf("Get() error: %v", err)
	}
	if string(got) != `{"a":1}` {
		t.Errorf("Get() = %q", got)
	}

	if err := store.Remove(ctx, "k"); err != nil {
		t.Fatalf("Remove() error: %v", err)
	}
	if _, err := store.Get(ctx, "k"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Get() after Remove() = %v, want ErrNotFound", err)
	}
}

func TestMemoryCopiesValues(t *testing.T) {
	store := NewMemory()
	ctx := context.Background()

	value := []byte("original")
	store.Set(ctx, "k", value)
	value[0] = 'X'

	got, _ := store.Get(ctx, "k")
	if string(got) != "original" {
		t.Error("stored value aliased the caller's slice")
	}

	got[0] = 'Y'
	again, _ := store.Get(ctx, "k")
	if string(again) != "original" {
		t.Error("returned value aliased the stored slice")
	}
}
