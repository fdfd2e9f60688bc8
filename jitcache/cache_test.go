package jitcache

import (
	"bytes"
	"testing"
)

func newTestCache(t *testing.T, maxBlocks, regionSize int) *Cache {
	t.Helper()
	c, err := New(maxBlocks, regionSize, false)
	if err != nil {
		t.Fatalf("failed to create cache: %s", err)
	}
	t.Cleanup(func() { c.Close() })
	return c
}

func TestInsertLookup(t *testing.T) {
	c := newTestCache(t, 8, 4096)

	code := []byte{0xC0, 0x03, 0x5F, 0xD6}
	b, err := c.Insert(0x1000, code)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(b.Code, code) {
		t.Errorf("inserted block holds %x, want %x", b.Code, code)
	}

	got, ok := c.Lookup(0x1000)
	if !ok {
		t.Fatal("inserted block not found")
	}
	if got.Addr != 0x1000 || !bytes.Equal(got.Code, code) {
		t.Errorf("Lookup returned addr %#x code %x", got.Addr, got.Code)
	}
	if c.Len() != 1 {
		t.Errorf("Len = %d, want 1", c.Len())
	}

	if _, ok := c.Lookup(0x2000); ok {
		t.Error("Lookup found a block that was never inserted")
	}
}

func TestLRUEviction(t *testing.T) {
	c := newTestCache(t, 2, 4096)

	for i, addr := range []uint64{0x1000, 0x2000, 0x3000} {
		if _, err := c.Insert(addr, []byte{byte(i), 1, 2, 3}); err != nil {
			t.Fatal(err)
		}
	}

	if c.Len() != 2 {
		t.Fatalf("Len = %d, want 2", c.Len())
	}
	if _, ok := c.Lookup(0x1000); ok {
		t.Error("oldest block survived past the index capacity")
	}
	for _, addr := range []uint64{0x2000, 0x3000} {
		if _, ok := c.Lookup(addr); !ok {
			t.Errorf("block %#x missing", addr)
		}
	}
}

func TestRegionExhaustionFlush(t *testing.T) {
	c := newTestCache(t, 8, 4096)

	code := make([]byte, 2048)
	for i := range code {
		code[i] = byte(i)
	}
	for _, addr := range []uint64{0x1000, 0x2000} {
		if _, err := c.Insert(addr, code); err != nil {
			t.Fatal(err)
		}
	}

	// The region is full; the next insert flushes everything first.
	b, err := c.Insert(0x3000, code)
	if err != nil {
		t.Fatal(err)
	}
	if c.Len() != 1 {
		t.Errorf("Len = %d after exhaustion flush, want 1", c.Len())
	}
	for _, addr := range []uint64{0x1000, 0x2000} {
		if _, ok := c.Lookup(addr); ok {
			t.Errorf("block %#x survived the exhaustion flush", addr)
		}
	}
	if !bytes.Equal(b.Code, code) {
		t.Error("block inserted after the flush holds wrong bytes")
	}
}

func TestInsertErrors(t *testing.T) {
	c := newTestCache(t, 8, 4096)

	if _, err := c.Insert(0x1000, nil); err == nil {
		t.Error("expected error for empty block")
	}
	if _, err := c.Insert(0x1000, make([]byte, 8192)); err == nil {
		t.Error("expected error for block larger than the region")
	}
}

func TestFlush(t *testing.T) {
	c := newTestCache(t, 8, 4096)

	if _, err := c.Insert(0x1000, []byte{1, 2, 3, 4}); err != nil {
		t.Fatal(err)
	}
	c.Flush()
	if c.Len() != 0 {
		t.Errorf("Len = %d after Flush, want 0", c.Len())
	}
	if _, ok := c.Lookup(0x1000); ok {
		t.Error("block survived Flush")
	}
}

func TestInsertAfterClose(t *testing.T) {
	c, err := New(8, 4096, false)
	if err != nil {
		t.Fatal(err)
	}
	if err := c.Close(); err != nil {
		t.Fatal(err)
	}
	if _, err := c.Insert(0x1000, []byte{1}); err == nil {
		t.Error("expected error inserting into a closed cache")
	}
	if err := c.Close(); err != nil {
		t.Error("second Close should be a no-op")
	}
}
