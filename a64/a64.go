// Package a64 instantiates the matching engine for the AArch64 instruction
// set: it declares the encoding table, the manual override ordering and the
// per-handler-type decode entry point.
package a64

import (
	"reflect"
	"sync"

	"github.com/virtland/a64front/decoder"
	"github.com/virtland/a64front/internal/logflags"
)

// comesFirst names the encodings that must be matched ahead of the
// specificity order. The vector modified-immediate families overlap the
// shift-immediate coding space (immh == 0000) at positions the fixed-bit
// count cannot see, so these entries take priority. The list follows the
// architecture manual and is not derived from the patterns.
var comesFirst = map[string]struct{}{
	"MOVI, MVNI, ORR, BIC (vector, immediate)": {},
	"FMOV (vector, immediate)":                 {},
}

var (
	classIndexOnce sync.Once
	classIndex     map[string]Class
)

// NewDecodeTable builds and orders a fresh decode table for visitor type V.
// Most callers want Decode, which builds one table per visitor type and
// caches it for the life of the process.
func NewDecodeTable[V Visitor]() []decoder.Matcher[V] {
	table := decoder.Order(decodeTable[V](), comesFirst)
	if logflags.Decoder() {
		logflags.DecoderLogger().WithField("entries", len(table)).Debug("decode table built")
	}
	return table
}

type tableCell[V Visitor] struct {
	once  sync.Once
	table []decoder.Matcher[V]
}

// tables holds one lazily built decode table per visitor type, keyed by
// reflect.Type. Cells are published before they are built; the per-cell
// Once closes the first-use race so concurrent callers converge on a
// single build.
var tables sync.Map

func tableFor[V Visitor]() []decoder.Matcher[V] {
	key := reflect.TypeOf((*V)(nil)).Elem()
	cell, ok := tables.Load(key)
	if !ok {
		cell, _ = tables.LoadOrStore(key, new(tableCell[V]))
	}
	c := cell.(*tableCell[V])
	c.once.Do(func() {
		c.table = NewDecodeTable[V]()
	})
	return c.table
}

// Decode returns the table record matching word for visitor type V. The
// second result is false when word is an unallocated encoding, which the
// caller decides how to treat. After the one-time table build for V,
// lookups take no locks and perform no mutation.
func Decode[V Visitor](word uint32) (*decoder.Matcher[V], bool) {
	return decoder.Match(tableFor[V](), word)
}
