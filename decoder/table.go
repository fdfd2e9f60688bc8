package decoder

import "sort"

// Order arranges a decode table so that for any word the first matching
// record is the correct one. Records are stable-sorted by descending
// fixed-bit count (more specific first, declaration order preserved among
// ties), then every record named in comesFirst is stably moved ahead of
// the rest. comesFirst holds the manual exceptions to the specificity
// heuristic: encoding families whose disambiguating bits fall outside what
// the fixed-bit count can express. The input slice is left unmodified; the
// ordered table is always a fresh slice.
func Order[V any](table []Matcher[V], comesFirst map[string]struct{}) []Matcher[V] {
	sorted := make([]Matcher[V], len(table))
	copy(sorted, table)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].pattern.FixedBits() > sorted[j].pattern.FixedBits()
	})

	if len(comesFirst) == 0 {
		return sorted
	}

	ordered := make([]Matcher[V], 0, len(sorted))
	var rest []Matcher[V]
	for _, m := range sorted {
		if _, ok := comesFirst[m.name]; ok {
			ordered = append(ordered, m)
		} else {
			rest = append(rest, m)
		}
	}
	return append(ordered, rest...)
}

// Match scans table in order and returns the first record matching word.
// The second result is false when no record matches, which represents an
// unallocated encoding rather than an engine error.
func Match[V any](table []Matcher[V], word uint32) (*Matcher[V], bool) {
	for i := range table {
		if table[i].Matches(word) {
			return &table[i], true
		}
	}
	return nil, false
}
