// Package jitcache keeps translated code blocks in executable memory,
// keyed by the guest address they were translated from.
package jitcache

import (
	"fmt"
	"sync"

	lru "github.com/hashicorp/golang-lru"

	"github.com/virtland/a64front/internal/logflags"
	"github.com/virtland/a64front/xmem"
)

// codeAlign is the alignment of each block within the code region.
const codeAlign = 16

// Block is one translated unit of guest code. Code aliases the cache's
// executable region and is invalidated by Flush and Close.
type Block struct {
	Addr uint64
	Code []byte
}

// Cache owns one executable region and an LRU index of the blocks living
// in it. Space inside the region is bump-allocated; evicted blocks keep
// their bytes until the region fills up, at which point the whole cache is
// flushed, mirroring the recompiler's flush-everything discipline.
type Cache struct {
	mu     sync.Mutex
	blocks *lru.Cache
	region []byte
	used   int
	closed bool
}

// New creates a cache holding at most maxBlocks blocks inside a
// regionSize-byte executable region. low requests sub-2 GiB placement for
// the region. An allocation failure here is unrecoverable for the
// translator; the error is reported so the caller can abort.
func New(maxBlocks, regionSize int, low bool) (*Cache, error) {
	region, err := xmem.AllocateExecutable(regionSize, low)
	if err != nil {
		return nil, fmt.Errorf("failed to allocate code region: %s", err)
	}
	if err := xmem.SetProtection(region, true); err != nil {
		xmem.FreePages(region)
		return nil, fmt.Errorf("failed to seal code region: %s", err)
	}
	blocks, err := lru.New(maxBlocks)
	if err != nil {
		xmem.FreePages(region)
		return nil, fmt.Errorf("failed to create block index: %s", err)
	}
	return &Cache{blocks: blocks, region: region}, nil
}

// Lookup returns the cached block translated from addr, if any.
func (c *Cache) Lookup(addr uint64) (*Block, bool) {
	v, ok := c.blocks.Get(addr)
	if !ok {
		return nil, false
	}
	return v.(*Block), true
}

// Insert copies code into the executable region and indexes it under addr.
// The region is made writable for the copy and executable again before the
// block becomes visible. If the region cannot hold the block the whole
// cache is flushed first.
func (c *Cache) Insert(addr uint64, code []byte) (*Block, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return nil, fmt.Errorf("cache is closed")
	}
	if len(code) == 0 {
		return nil, fmt.Errorf("empty code block for %#x", addr)
	}
	if len(code) > len(c.region) {
		return nil, fmt.Errorf("code block for %#x is %d bytes; region holds %d", addr, len(code), len(c.region))
	}
	if c.used+len(code) > len(c.region) {
		c.flushLocked()
	}

	dst := c.region[c.used : c.used+len(code)]
	if err := xmem.SetProtection(c.region, false); err != nil {
		return nil, fmt.Errorf("failed to open code region for writing: %s", err)
	}
	copy(dst, code)
	if err := xmem.SetProtection(c.region, true); err != nil {
		return nil, fmt.Errorf("failed to seal code region: %s", err)
	}
	c.used = roundUp(c.used + len(code))

	b := &Block{Addr: addr, Code: dst}
	c.blocks.Add(addr, b)
	if logflags.JIT() {
		logflags.JITLogger().WithField("addr", fmt.Sprintf("%#x", addr)).WithField("bytes", len(code)).Debug("block cached")
	}
	return b, nil
}

// Flush drops every cached block and resets the region.
func (c *Cache) Flush() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.flushLocked()
}

func (c *Cache) flushLocked() {
	c.blocks.Purge()
	c.used = 0
	if logflags.JIT() {
		logflags.JITLogger().Debug("cache flushed")
	}
}

// Len returns the number of indexed blocks.
func (c *Cache) Len() int {
	return c.blocks.Len()
}

// Close flushes the cache and releases the executable region.
func (c *Cache) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return nil
	}
	c.blocks.Purge()
	c.closed = true
	region := c.region
	c.region = nil
	return xmem.FreePages(region)
}

func roundUp(n int) int {
	return (n + codeAlign - 1) &^ (codeAlign - 1)
}
