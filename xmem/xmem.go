// Package xmem provides the page-level memory primitives the translator
// needs to host generated code: anonymous mappings with an optional
// low-address placement request, aligned allocations, and protection flips
// between writable and executable states. It is deliberately not a general
// mmap wrapper.
package xmem

// lowLimit is the 2 GiB boundary that low allocations must stay under so
// generated code can reach them with small displacements.
const lowLimit = 1 << 31

func roundUp(n, multiple int) int {
	return (n + multiple - 1) &^ (multiple - 1)
}
