package a64

import "strings"

// Class groups decodable instructions by the top-level encoding family
// they belong to, mirroring the chapter structure of the architecture
// manual. It exists for diagnostics and table filtering; the matching
// algorithm itself never consults it.
type Class uint8

const (
	ClassInvalid Class = iota
	ClassBranch
	ClassSystem
	ClassLoadStore
	ClassDPImm
	ClassDPReg
	ClassFPScalar
	ClassSIMD
)

func (c Class) String() string {
	switch c {
	case ClassBranch:
		return "branch"
	case ClassSystem:
		return "system"
	case ClassLoadStore:
		return "loadstore"
	case ClassDPImm:
		return "dpimm"
	case ClassDPReg:
		return "dpreg"
	case ClassFPScalar:
		return "fpscalar"
	case ClassSIMD:
		return "simd"
	default:
		return "invalid"
	}
}

// ParseClass maps a class name as used on the command line back to its
// Class value, returning ClassInvalid for anything unrecognized.
func ParseClass(s string) Class {
	switch strings.ToLower(s) {
	case "branch":
		return ClassBranch
	case "system":
		return ClassSystem
	case "loadstore":
		return ClassLoadStore
	case "dpimm":
		return ClassDPImm
	case "dpreg":
		return ClassDPReg
	case "fpscalar":
		return ClassFPScalar
	case "simd":
		return ClassSIMD
	default:
		return ClassInvalid
	}
}

// ClassOf returns the encoding family of the named table entry.
func ClassOf(name string) (Class, bool) {
	tableFor[NopVisitor]() // any instantiation populates the class index
	c, ok := classIndex[name]
	return c, ok
}
