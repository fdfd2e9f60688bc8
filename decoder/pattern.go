// Package decoder implements the instruction-matching engine of the
// translator front end. Textual encoding descriptions are compiled into
// mask/expected pairs, bound to handlers as matcher records, ordered by
// specificity and scanned for the first match at lookup time.
package decoder

import (
	"fmt"
	"math/bits"
)

// InstWidth is the width in bits of a decodable instruction word. Encoding
// descriptions must spell out exactly this many symbols.
const InstWidth = 32

type bits32 uint32

func (v bits32) String() string {
	return fmt.Sprintf("0b%032b", v)
}

// Pattern is a compiled encoding description. Mask marks the bit positions
// that are fixed and Expected gives the required value at those positions,
// so Expected never has a bit set outside Mask.
type Pattern struct {
	Mask     uint32
	Expected uint32
}

// CompilePattern compiles an encoding description into a Pattern. The
// description is written most significant bit first and must be exactly
// InstWidth symbols long: '1' fixes a set bit, '0' fixes a clear bit and
// '-' leaves the position unconstrained.
func CompilePattern(desc string) (Pattern, error) {
	if len(desc) != InstWidth {
		return Pattern{}, fmt.Errorf("encoding description %q has %d symbols; want %d", desc, len(desc), InstWidth)
	}

	var p Pattern
	for i := 0; i < InstWidth; i++ {
		bit := uint32(1) << (InstWidth - 1 - i)
		switch desc[i] {
		case '1':
			p.Mask |= bit
			p.Expected |= bit
		case '0':
			p.Mask |= bit
		case '-':
			// unconstrained position
		default:
			return Pattern{}, fmt.Errorf("encoding description %q has unrecognized symbol %q at position %d", desc, desc[i], i)
		}
	}

	return p, nil
}

// Matches reports whether every fixed bit of the pattern holds in word.
func (p Pattern) Matches(word uint32) bool {
	return word&p.Mask == p.Expected
}

// FixedBits returns the number of constrained bit positions. A pattern with
// more fixed bits is more specific.
func (p Pattern) FixedBits() int {
	return bits.OnesCount32(p.Mask)
}

func (p Pattern) String() string {
	return fmt.Sprintf("mask=%s expected=%s", bits32(p.Mask), bits32(p.Expected))
}
