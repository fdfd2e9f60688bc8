package a64

// Visitor is the handler set the decoder dispatches into: one method per
// decodable instruction, each receiving the raw instruction word. Field
// extraction is the handler's job; the decoder only identifies which
// method applies. The bool result reports whether translation of the
// current block may continue.
//
// Embed NopVisitor to implement only the instructions a handler set
// cares about.
type Visitor interface {
	// Branches, exception generating and system instructions
	B(inst uint32) bool
	BL(inst uint32) bool
	BCond(inst uint32) bool
	CBZ(inst uint32) bool
	CBNZ(inst uint32) bool
	TBZ(inst uint32) bool
	TBNZ(inst uint32) bool
	BR(inst uint32) bool
	BLR(inst uint32) bool
	RET(inst uint32) bool
	ERET(inst uint32) bool
	DRPS(inst uint32) bool
	SVC(inst uint32) bool
	HVC(inst uint32) bool
	SMC(inst uint32) bool
	BRK(inst uint32) bool
	HLT(inst uint32) bool
	HINT(inst uint32) bool
	CLREX(inst uint32) bool
	DSB(inst uint32) bool
	DMB(inst uint32) bool
	ISB(inst uint32) bool
	SYS(inst uint32) bool
	SYSL(inst uint32) bool
	MSR(inst uint32) bool
	MRS(inst uint32) bool

	// Loads and stores
	LDRLitW(inst uint32) bool
	LDRLitX(inst uint32) bool
	LDRSWLit(inst uint32) bool
	PRFMLit(inst uint32) bool
	STPPostX(inst uint32) bool
	LDPPostX(inst uint32) bool
	STPX(inst uint32) bool
	LDPX(inst uint32) bool
	STPPreX(inst uint32) bool
	LDPPreX(inst uint32) bool
	STPW(inst uint32) bool
	LDPW(inst uint32) bool
	STRBImm(inst uint32) bool
	LDRBImm(inst uint32) bool
	LDRSBImmX(inst uint32) bool
	LDRSBImmW(inst uint32) bool
	STRHImm(inst uint32) bool
	LDRHImm(inst uint32) bool
	LDRSHImmX(inst uint32) bool
	LDRSHImmW(inst uint32) bool
	STRWImm(inst uint32) bool
	LDRWImm(inst uint32) bool
	LDRSWImm(inst uint32) bool
	STRXImm(inst uint32) bool
	LDRXImm(inst uint32) bool
	PRFMImm(inst uint32) bool
	STURX(inst uint32) bool
	LDURX(inst uint32) bool
	STRXReg(inst uint32) bool
	LDRXReg(inst uint32) bool
	STXRX(inst uint32) bool
	LDXRX(inst uint32) bool

	// Data processing (immediate)
	ADDImm(inst uint32) bool
	ADDSImm(inst uint32) bool
	SUBImm(inst uint32) bool
	SUBSImm(inst uint32) bool
	ANDImm(inst uint32) bool
	ORRImm(inst uint32) bool
	EORImm(inst uint32) bool
	ANDSImm(inst uint32) bool
	MOVN(inst uint32) bool
	MOVZ(inst uint32) bool
	MOVK(inst uint32) bool
	SBFM(inst uint32) bool
	BFM(inst uint32) bool
	UBFM(inst uint32) bool
	EXTR(inst uint32) bool
	ADR(inst uint32) bool
	ADRP(inst uint32) bool

	// Data processing (register)
	ADDShift(inst uint32) bool
	ADDSShift(inst uint32) bool
	SUBShift(inst uint32) bool
	SUBSShift(inst uint32) bool
	ADDExt(inst uint32) bool
	ADDSExt(inst uint32) bool
	SUBExt(inst uint32) bool
	SUBSExt(inst uint32) bool
	ANDShift(inst uint32) bool
	BICShift(inst uint32) bool
	ORRShift(inst uint32) bool
	ORNShift(inst uint32) bool
	EORShift(inst uint32) bool
	EONShift(inst uint32) bool
	ANDSShift(inst uint32) bool
	BICSShift(inst uint32) bool
	ADC(inst uint32) bool
	ADCS(inst uint32) bool
	SBC(inst uint32) bool
	SBCS(inst uint32) bool
	CSEL(inst uint32) bool
	CSINC(inst uint32) bool
	CSINV(inst uint32) bool
	CSNEG(inst uint32) bool
	CCMNReg(inst uint32) bool
	CCMNImm(inst uint32) bool
	CCMPReg(inst uint32) bool
	CCMPImm(inst uint32) bool
	RBIT(inst uint32) bool
	REV16(inst uint32) bool
	CLZ(inst uint32) bool
	CLS(inst uint32) bool
	UDIV(inst uint32) bool
	SDIV(inst uint32) bool
	LSLV(inst uint32) bool
	LSRV(inst uint32) bool
	ASRV(inst uint32) bool
	RORV(inst uint32) bool
	MADD(inst uint32) bool
	MSUB(inst uint32) bool
	SMADDL(inst uint32) bool
	SMSUBL(inst uint32) bool
	SMULH(inst uint32) bool
	UMADDL(inst uint32) bool
	UMSUBL(inst uint32) bool
	UMULH(inst uint32) bool

	// Scalar floating point
	FMOVReg(inst uint32) bool
	FABS(inst uint32) bool
	FNEG(inst uint32) bool
	FSQRT(inst uint32) bool
	FMUL(inst uint32) bool
	FDIV(inst uint32) bool
	FADD(inst uint32) bool
	FSUB(inst uint32) bool
	FMAX(inst uint32) bool
	FMIN(inst uint32) bool
	FMOVImm(inst uint32) bool
	SCVTF(inst uint32) bool
	UCVTF(inst uint32) bool
	FCVTZS(inst uint32) bool
	FCVTZU(inst uint32) bool

	// SIMD
	MOVI(inst uint32) bool
	FMOVVec(inst uint32) bool
	SSHR(inst uint32) bool
	USHR(inst uint32) bool
	SHL(inst uint32) bool
	ADDVec(inst uint32) bool
	SUBVec(inst uint32) bool
	ANDVec(inst uint32) bool
	BICVec(inst uint32) bool
	ORRVec(inst uint32) bool
	ORNVec(inst uint32) bool
	EORVec(inst uint32) bool
	DUPElt(inst uint32) bool
	UMOV(inst uint32) bool
}
