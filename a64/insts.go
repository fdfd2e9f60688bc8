package a64

import (
	"github.com/virtland/a64front/decoder"
)

// tableBuilder accumulates the declarative instruction descriptions for
// one visitor type. Encodings come straight from the architecture manual;
// a malformed description is a build-time data error and panics before
// the table can ever be used.
type tableBuilder[V Visitor] struct {
	matchers []decoder.Matcher[V]
	classes  map[string]Class
	class    Class
}

func (b *tableBuilder[V]) section(c Class) {
	b.class = c
}

func (b *tableBuilder[V]) inst(fn func(Visitor, uint32) bool, name, bits string) {
	m, err := decoder.NewMatcher(func(v V, inst uint32) bool { return fn(v, inst) }, name, bits)
	if err != nil {
		panic(err)
	}
	b.matchers = append(b.matchers, m)
	b.classes[name] = b.class
}

// decodeTable returns the unordered instruction descriptions for V, one
// matcher per encoding, in manual order.
func decodeTable[V Visitor]() []decoder.Matcher[V] {
	b := &tableBuilder[V]{classes: make(map[string]Class)}

	b.section(ClassBranch)
	b.inst(Visitor.B, "B", "000101--------------------------")
	b.inst(Visitor.BL, "BL", "100101--------------------------")
	b.inst(Visitor.BCond, "B.cond", "01010100-------------------0----")
	b.inst(Visitor.CBZ, "CBZ", "-0110100------------------------")
	b.inst(Visitor.CBNZ, "CBNZ", "-0110101------------------------")
	b.inst(Visitor.TBZ, "TBZ", "-0110110------------------------")
	b.inst(Visitor.TBNZ, "TBNZ", "-0110111------------------------")
	b.inst(Visitor.BR, "BR", "1101011000011111000000-----00000")
	b.inst(Visitor.BLR, "BLR", "1101011000111111000000-----00000")
	b.inst(Visitor.RET, "RET", "1101011001011111000000-----00000")
	b.inst(Visitor.ERET, "ERET", "11010110100111110000001111100000")
	b.inst(Visitor.DRPS, "DRPS", "11010110101111110000001111100000")

	b.section(ClassSystem)
	b.inst(Visitor.SVC, "SVC", "11010100000----------------00001")
	b.inst(Visitor.HVC, "HVC", "11010100000----------------00010")
	b.inst(Visitor.SMC, "SMC", "11010100000----------------00011")
	b.inst(Visitor.BRK, "BRK", "11010100001----------------00000")
	b.inst(Visitor.HLT, "HLT", "11010100010----------------00000")
	b.inst(Visitor.HINT, "HINT", "11010101000000110010-------11111")
	b.inst(Visitor.CLREX, "CLREX", "11010101000000110011----01011111")
	b.inst(Visitor.DSB, "DSB", "11010101000000110011----10011111")
	b.inst(Visitor.DMB, "DMB", "11010101000000110011----10111111")
	b.inst(Visitor.ISB, "ISB", "11010101000000110011----11011111")
	b.inst(Visitor.SYS, "SYS", "1101010100001-------------------")
	b.inst(Visitor.SYSL, "SYSL", "1101010101001-------------------")
	b.inst(Visitor.MSR, "MSR (register)", "110101010001--------------------")
	b.inst(Visitor.MRS, "MRS", "110101010011--------------------")

	b.section(ClassLoadStore)
	b.inst(Visitor.LDRLitW, "LDR (literal, 32-bit)", "00011000------------------------")
	b.inst(Visitor.LDRLitX, "LDR (literal, 64-bit)", "01011000------------------------")
	b.inst(Visitor.LDRSWLit, "LDRSW (literal)", "10011000------------------------")
	b.inst(Visitor.PRFMLit, "PRFM (literal)", "11011000------------------------")
	b.inst(Visitor.STPPostX, "STP (post-index, 64-bit)", "1010100010----------------------")
	b.inst(Visitor.LDPPostX, "LDP (post-index, 64-bit)", "1010100011----------------------")
	b.inst(Visitor.STPX, "STP (signed offset, 64-bit)", "1010100100----------------------")
	b.inst(Visitor.LDPX, "LDP (signed offset, 64-bit)", "1010100101----------------------")
	b.inst(Visitor.STPPreX, "STP (pre-index, 64-bit)", "1010100110----------------------")
	b.inst(Visitor.LDPPreX, "LDP (pre-index, 64-bit)", "1010100111----------------------")
	b.inst(Visitor.STPW, "STP (signed offset, 32-bit)", "0010100100----------------------")
	b.inst(Visitor.LDPW, "LDP (signed offset, 32-bit)", "0010100101----------------------")
	b.inst(Visitor.STRBImm, "STRB (immediate)", "0011100100----------------------")
	b.inst(Visitor.LDRBImm, "LDRB (immediate)", "0011100101----------------------")
	b.inst(Visitor.LDRSBImmX, "LDRSB (immediate, 64-bit)", "0011100110----------------------")
	b.inst(Visitor.LDRSBImmW, "LDRSB (immediate, 32-bit)", "0011100111----------------------")
	b.inst(Visitor.STRHImm, "STRH (immediate)", "0111100100----------------------")
	b.inst(Visitor.LDRHImm, "LDRH (immediate)", "0111100101----------------------")
	b.inst(Visitor.LDRSHImmX, "LDRSH (immediate, 64-bit)", "0111100110----------------------")
	b.inst(Visitor.LDRSHImmW, "LDRSH (immediate, 32-bit)", "0111100111----------------------")
	b.inst(Visitor.STRWImm, "STR (immediate, 32-bit)", "1011100100----------------------")
	b.inst(Visitor.LDRWImm, "LDR (immediate, 32-bit)", "1011100101----------------------")
	b.inst(Visitor.LDRSWImm, "LDRSW (immediate)", "1011100110----------------------")
	b.inst(Visitor.STRXImm, "STR (immediate, 64-bit)", "1111100100----------------------")
	b.inst(Visitor.LDRXImm, "LDR (immediate, 64-bit)", "1111100101----------------------")
	b.inst(Visitor.PRFMImm, "PRFM (immediate)", "1111100110----------------------")
	b.inst(Visitor.STURX, "STUR (64-bit)", "11111000000---------00----------")
	b.inst(Visitor.LDURX, "LDUR (64-bit)", "11111000010---------00----------")
	b.inst(Visitor.STRXReg, "STR (register, 64-bit)", "11111000001---------10----------")
	b.inst(Visitor.LDRXReg, "LDR (register, 64-bit)", "11111000011---------10----------")
	b.inst(Visitor.STXRX, "STXR (64-bit)", "11001000000-----011111----------")
	b.inst(Visitor.LDXRX, "LDXR (64-bit)", "1100100001011111011111----------")

	b.section(ClassDPImm)
	b.inst(Visitor.ADDImm, "ADD (immediate)", "-00100010-----------------------")
	b.inst(Visitor.ADDSImm, "ADDS (immediate)", "-01100010-----------------------")
	b.inst(Visitor.SUBImm, "SUB (immediate)", "-10100010-----------------------")
	b.inst(Visitor.SUBSImm, "SUBS (immediate)", "-11100010-----------------------")
	b.inst(Visitor.ANDImm, "AND (immediate)", "-00100100-----------------------")
	b.inst(Visitor.ORRImm, "ORR (immediate)", "-01100100-----------------------")
	b.inst(Visitor.EORImm, "EOR (immediate)", "-10100100-----------------------")
	b.inst(Visitor.ANDSImm, "ANDS (immediate)", "-11100100-----------------------")
	b.inst(Visitor.MOVN, "MOVN", "-00100101-----------------------")
	b.inst(Visitor.MOVZ, "MOVZ", "-10100101-----------------------")
	b.inst(Visitor.MOVK, "MOVK", "-11100101-----------------------")
	b.inst(Visitor.SBFM, "SBFM", "-00100110-----------------------")
	b.inst(Visitor.BFM, "BFM", "-01100110-----------------------")
	b.inst(Visitor.UBFM, "UBFM", "-10100110-----------------------")
	b.inst(Visitor.EXTR, "EXTR", "-00100111-0---------------------")
	b.inst(Visitor.ADR, "ADR", "0--10000------------------------")
	b.inst(Visitor.ADRP, "ADRP", "1--10000------------------------")

	b.section(ClassDPReg)
	b.inst(Visitor.ADDShift, "ADD (shifted register)", "-0001011--0---------------------")
	b.inst(Visitor.ADDSShift, "ADDS (shifted register)", "-0101011--0---------------------")
	b.inst(Visitor.SUBShift, "SUB (shifted register)", "-1001011--0---------------------")
	b.inst(Visitor.SUBSShift, "SUBS (shifted register)", "-1101011--0---------------------")
	b.inst(Visitor.ADDExt, "ADD (extended register)", "-0001011001---------------------")
	b.inst(Visitor.ADDSExt, "ADDS (extended register)", "-0101011001---------------------")
	b.inst(Visitor.SUBExt, "SUB (extended register)", "-1001011001---------------------")
	b.inst(Visitor.SUBSExt, "SUBS (extended register)", "-1101011001---------------------")
	b.inst(Visitor.ANDShift, "AND (shifted register)", "-0001010--0---------------------")
	b.inst(Visitor.BICShift, "BIC (shifted register)", "-0001010--1---------------------")
	b.inst(Visitor.ORRShift, "ORR (shifted register)", "-0101010--0---------------------")
	b.inst(Visitor.ORNShift, "ORN (shifted register)", "-0101010--1---------------------")
	b.inst(Visitor.EORShift, "EOR (shifted register)", "-1001010--0---------------------")
	b.inst(Visitor.EONShift, "EON (shifted register)", "-1001010--1---------------------")
	b.inst(Visitor.ANDSShift, "ANDS (shifted register)", "-1101010--0---------------------")
	b.inst(Visitor.BICSShift, "BICS (shifted register)", "-1101010--1---------------------")
	b.inst(Visitor.ADC, "ADC", "-0011010000-----000000----------")
	b.inst(Visitor.ADCS, "ADCS", "-0111010000-----000000----------")
	b.inst(Visitor.SBC, "SBC", "-1011010000-----000000----------")
	b.inst(Visitor.SBCS, "SBCS", "-1111010000-----000000----------")
	b.inst(Visitor.CSEL, "CSEL", "-0011010100---------00----------")
	b.inst(Visitor.CSINC, "CSINC", "-0011010100---------01----------")
	b.inst(Visitor.CSINV, "CSINV", "-1011010100---------00----------")
	b.inst(Visitor.CSNEG, "CSNEG", "-1011010100---------01----------")
	b.inst(Visitor.CCMNReg, "CCMN (register)", "-0111010010---------00-----0----")
	b.inst(Visitor.CCMNImm, "CCMN (immediate)", "-0111010010---------10-----0----")
	b.inst(Visitor.CCMPReg, "CCMP (register)", "-1111010010---------00-----0----")
	b.inst(Visitor.CCMPImm, "CCMP (immediate)", "-1111010010---------10-----0----")
	b.inst(Visitor.RBIT, "RBIT", "-101101011000000000000----------")
	b.inst(Visitor.REV16, "REV16", "-101101011000000000001----------")
	b.inst(Visitor.CLZ, "CLZ", "-101101011000000000100----------")
	b.inst(Visitor.CLS, "CLS", "-101101011000000000101----------")
	b.inst(Visitor.UDIV, "UDIV", "-0011010110-----000010----------")
	b.inst(Visitor.SDIV, "SDIV", "-0011010110-----000011----------")
	b.inst(Visitor.LSLV, "LSLV", "-0011010110-----001000----------")
	b.inst(Visitor.LSRV, "LSRV", "-0011010110-----001001----------")
	b.inst(Visitor.ASRV, "ASRV", "-0011010110-----001010----------")
	b.inst(Visitor.RORV, "RORV", "-0011010110-----001011----------")
	b.inst(Visitor.MADD, "MADD", "-0011011000-----0---------------")
	b.inst(Visitor.MSUB, "MSUB", "-0011011000-----1---------------")
	b.inst(Visitor.SMADDL, "SMADDL", "10011011001-----0---------------")
	b.inst(Visitor.SMSUBL, "SMSUBL", "10011011001-----1---------------")
	b.inst(Visitor.SMULH, "SMULH", "10011011010-----0---------------")
	b.inst(Visitor.UMADDL, "UMADDL", "10011011101-----0---------------")
	b.inst(Visitor.UMSUBL, "UMSUBL", "10011011101-----1---------------")
	b.inst(Visitor.UMULH, "UMULH", "10011011110-----0---------------")

	b.section(ClassFPScalar)
	b.inst(Visitor.FMOVReg, "FMOV (register)", "00011110--100000010000----------")
	b.inst(Visitor.FABS, "FABS (scalar)", "00011110--100000110000----------")
	b.inst(Visitor.FNEG, "FNEG (scalar)", "00011110--100001010000----------")
	b.inst(Visitor.FSQRT, "FSQRT (scalar)", "00011110--100001110000----------")
	b.inst(Visitor.FMUL, "FMUL (scalar)", "00011110--1-----000010----------")
	b.inst(Visitor.FDIV, "FDIV (scalar)", "00011110--1-----000110----------")
	b.inst(Visitor.FADD, "FADD (scalar)", "00011110--1-----001010----------")
	b.inst(Visitor.FSUB, "FSUB (scalar)", "00011110--1-----001110----------")
	b.inst(Visitor.FMAX, "FMAX (scalar)", "00011110--1-----010010----------")
	b.inst(Visitor.FMIN, "FMIN (scalar)", "00011110--1-----010110----------")
	b.inst(Visitor.FMOVImm, "FMOV (scalar, immediate)", "00011110--1--------10000000-----")
	b.inst(Visitor.SCVTF, "SCVTF (scalar, integer)", "-0011110--100010000000----------")
	b.inst(Visitor.UCVTF, "UCVTF (scalar, integer)", "-0011110--100011000000----------")
	b.inst(Visitor.FCVTZS, "FCVTZS (scalar, integer)", "-0011110--111000000000----------")
	b.inst(Visitor.FCVTZU, "FCVTZU (scalar, integer)", "-0011110--111001000000----------")

	b.section(ClassSIMD)
	b.inst(Visitor.MOVI, "MOVI, MVNI, ORR, BIC (vector, immediate)", "0--0111100000-------01----------")
	b.inst(Visitor.FMOVVec, "FMOV (vector, immediate)", "0--0111100000---111101----------")
	b.inst(Visitor.SSHR, "SSHR (vector)", "0-0011110-------000001----------")
	b.inst(Visitor.USHR, "USHR (vector)", "0-1011110-------000001----------")
	b.inst(Visitor.SHL, "SHL (vector)", "0-0011110-------010101----------")
	b.inst(Visitor.ADDVec, "ADD (vector)", "0-001110--1-----100001----------")
	b.inst(Visitor.SUBVec, "SUB (vector)", "0-101110--1-----100001----------")
	b.inst(Visitor.ANDVec, "AND (vector)", "0-001110001-----000111----------")
	b.inst(Visitor.BICVec, "BIC (vector, register)", "0-001110011-----000111----------")
	b.inst(Visitor.ORRVec, "ORR (vector, register)", "0-001110101-----000111----------")
	b.inst(Visitor.ORNVec, "ORN (vector)", "0-001110111-----000111----------")
	b.inst(Visitor.EORVec, "EOR (vector)", "0-101110001-----000111----------")
	b.inst(Visitor.DUPElt, "DUP (element)", "0-001110000-----000001----------")
	b.inst(Visitor.UMOV, "UMOV", "0-001110000-----001111----------")

	classIndexOnce.Do(func() { classIndex = b.classes })

	return b.matchers
}
