package a64_test

import (
	"sync"
	"testing"

	"github.com/virtland/a64front/a64"
	"github.com/virtland/a64front/decoder"
)

func TestDecodeKnownWords(t *testing.T) {
	words := []struct {
		word uint32
		name string
	}{
		{0x14000000, "B"},
		{0x97FFFFF0, "BL"},
		{0x54000041, "B.cond"},
		{0xB4000041, "CBZ"},
		{0xD61F0220, "BR"},
		{0xD65F03C0, "RET"},
		{0xD69F03E0, "ERET"},
		{0xD4000001, "SVC"},
		{0xD4200000, "BRK"},
		{0xD503201F, "HINT"},
		{0xD5033F9F, "DSB"},
		{0xD5033FDF, "ISB"},
		{0xF9400420, "LDR (immediate, 64-bit)"},
		{0xB9400420, "LDR (immediate, 32-bit)"},
		{0xA9BF7BFD, "STP (pre-index, 64-bit)"},
		{0xA8C17BFD, "LDP (post-index, 64-bit)"},
		{0xC85F7C00, "LDXR (64-bit)"},
		{0xC8007C01, "STXR (64-bit)"},
		{0x91000420, "ADD (immediate)"},
		{0xD2800020, "MOVZ"},
		{0xF2800020, "MOVK"},
		{0x8B020020, "ADD (shifted register)"},
		{0x8B224020, "ADD (extended register)"},
		{0x9AC20820, "UDIV"},
		{0x9B027C20, "MADD"},
		{0x1E222820, "FADD (scalar)"},
		{0x1E604000, "FMOV (register)"},
		{0x4EA21C20, "ORR (vector, register)"},
	}
	for _, tc := range words {
		m, ok := a64.Decode[a64.NopVisitor](tc.word)
		if !ok {
			t.Errorf("Decode(%08x) missed, want %q", tc.word, tc.name)
			continue
		}
		if m.Name() != tc.name {
			t.Errorf("Decode(%08x) = %q, want %q", tc.word, m.Name(), tc.name)
		}
	}
}

func TestDecodeUnallocated(t *testing.T) {
	for _, word := range []uint32{0x00000000, 0xFFFFFFFF} {
		if m, ok := a64.Decode[a64.NopVisitor](word); ok {
			t.Errorf("Decode(%08x) = %q, want a miss", word, m.Name())
		}
	}
}

// The vector modified-immediate family shares coding space with the
// shift-by-immediate family when immh is zero. The override ordering must
// send those words to MOVI even though SSHR fixes more bits.
func TestVectorImmediateOverride(t *testing.T) {
	cases := []struct {
		word uint32
		name string
	}{
		{0x4F000420, "MOVI, MVNI, ORR, BIC (vector, immediate)"}, // MOVI V0.4S, #1
		{0x4F03F600, "FMOV (vector, immediate)"},                 // FMOV V0.4S, #1.0
		{0x4F210420, "SSHR (vector)"},                            // SSHR V0.4S, V1.4S, #31 (immh != 0)
	}
	for _, tc := range cases {
		m, ok := a64.Decode[a64.NopVisitor](tc.word)
		if !ok || m.Name() != tc.name {
			t.Errorf("Decode(%08x) = %v, want %q", tc.word, m, tc.name)
		}
	}
}

func TestOverridePrecedesSpecificity(t *testing.T) {
	table := a64.NewDecodeTable[a64.NopVisitor]()

	idx := make(map[string]int, len(table))
	for i := range table {
		idx[table[i].Name()] = i
	}

	movi := "MOVI, MVNI, ORR, BIC (vector, immediate)"
	fmov := "FMOV (vector, immediate)"
	if idx[fmov] != 0 || idx[movi] != 1 {
		t.Errorf("override entries at %d and %d, want the head of the table", idx[fmov], idx[movi])
	}

	sshr := "SSHR (vector)"
	moviBits := table[idx[movi]].Pattern().FixedBits()
	sshrBits := table[idx[sshr]].Pattern().FixedBits()
	if moviBits >= sshrBits {
		t.Fatalf("test premise broken: MOVI fixes %d bits, SSHR %d", moviBits, sshrBits)
	}
	if idx[movi] > idx[sshr] {
		t.Errorf("MOVI at %d after SSHR at %d despite the override", idx[movi], idx[sshr])
	}
}

func TestTableDeterminism(t *testing.T) {
	first := a64.NewDecodeTable[a64.NopVisitor]()
	second := a64.NewDecodeTable[a64.NopVisitor]()
	if len(first) != len(second) {
		t.Fatalf("table sizes differ: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i].Name() != second[i].Name() {
			t.Fatalf("entry %d differs: %q vs %q", i, first[i].Name(), second[i].Name())
		}
	}
}

// Every declared encoding must decode successfully when presented with its
// canonical word (expected bits, don't-cares zeroed). Overlapping families
// may legitimately resolve to an earlier record, but a miss means the
// table lost an instruction.
func TestCanonicalWordsDecode(t *testing.T) {
	table := a64.NewDecodeTable[a64.NopVisitor]()
	for i := range table {
		m := &table[i]
		p := m.Pattern()
		if p.Mask == 0 {
			continue
		}
		if p.Expected&^p.Mask != 0 {
			t.Errorf("%q: expected bits outside mask", m.Name())
		}
		if !m.Matches(p.Expected) {
			t.Errorf("%q does not match its own canonical word %08x", m.Name(), p.Expected)
		}
		if _, ok := a64.Decode[a64.NopVisitor](p.Expected); !ok {
			t.Errorf("canonical word %08x of %q decodes to nothing", p.Expected, m.Name())
		}
	}
}

type convergeVisitor struct{ a64.NopVisitor }

func TestConcurrentFirstUse(t *testing.T) {
	const goroutines = 32
	const word = 0xD65F03C0 // RET

	var wg sync.WaitGroup
	results := make(chan *decoder.Matcher[convergeVisitor], goroutines)
	start := make(chan struct{})
	for i := 0; i < goroutines; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			<-start
			m, ok := a64.Decode[convergeVisitor](word)
			if !ok {
				t.Errorf("Decode(%08x) missed", word)
				return
			}
			results <- m
		}()
	}
	close(start)
	wg.Wait()
	close(results)

	var first *decoder.Matcher[convergeVisitor]
	for m := range results {
		if first == nil {
			first = m
			continue
		}
		if m != first {
			t.Fatal("concurrent first uses observed different tables")
		}
	}
	if first == nil || first.Name() != "RET" {
		t.Fatalf("got %v, want RET", first)
	}
}

type recordingVisitor struct {
	a64.NopVisitor
	last string
}

func (v *recordingVisitor) ADDImm(inst uint32) bool {
	v.last = "ADDImm"
	return false
}

func (v *recordingVisitor) RET(inst uint32) bool {
	v.last = "RET"
	return true
}

func TestHandlerDispatch(t *testing.T) {
	v := &recordingVisitor{}

	m, ok := a64.Decode[*recordingVisitor](0x91000420)
	if !ok {
		t.Fatal("ADD immediate missed")
	}
	if cont := m.Handle(v, 0x91000420); cont || v.last != "ADDImm" {
		t.Errorf("dispatch went to %q (cont=%v), want ADDImm", v.last, cont)
	}

	m, ok = a64.Decode[*recordingVisitor](0xD65F03C0)
	if !ok {
		t.Fatal("RET missed")
	}
	if cont := m.Handle(v, 0xD65F03C0); !cont || v.last != "RET" {
		t.Errorf("dispatch went to %q (cont=%v), want RET", v.last, cont)
	}
}

func TestClassOf(t *testing.T) {
	cases := map[string]a64.Class{
		"B":               a64.ClassBranch,
		"DSB":             a64.ClassSystem,
		"LDXR (64-bit)":   a64.ClassLoadStore,
		"ADD (immediate)": a64.ClassDPImm,
		"UDIV":            a64.ClassDPReg,
		"FADD (scalar)":   a64.ClassFPScalar,
		"SHL (vector)":    a64.ClassSIMD,
	}
	for name, want := range cases {
		got, ok := a64.ClassOf(name)
		if !ok || got != want {
			t.Errorf("ClassOf(%q) = %s/%v, want %s", name, got, ok, want)
		}
	}
	if _, ok := a64.ClassOf("no such instruction"); ok {
		t.Error("ClassOf accepted an unknown name")
	}
}
