package a64

// NopVisitor implements Visitor with handlers that do nothing and allow
// translation to continue. Handler sets embed it so they only have to
// spell out the instructions they implement.
type NopVisitor struct{}

func (NopVisitor) B(inst uint32) bool         { return true }
func (NopVisitor) BL(inst uint32) bool        { return true }
func (NopVisitor) BCond(inst uint32) bool     { return true }
func (NopVisitor) CBZ(inst uint32) bool       { return true }
func (NopVisitor) CBNZ(inst uint32) bool      { return true }
func (NopVisitor) TBZ(inst uint32) bool       { return true }
func (NopVisitor) TBNZ(inst uint32) bool      { return true }
func (NopVisitor) BR(inst uint32) bool        { return true }
func (NopVisitor) BLR(inst uint32) bool       { return true }
func (NopVisitor) RET(inst uint32) bool       { return true }
func (NopVisitor) ERET(inst uint32) bool      { return true }
func (NopVisitor) DRPS(inst uint32) bool      { return true }
func (NopVisitor) SVC(inst uint32) bool       { return true }
func (NopVisitor) HVC(inst uint32) bool       { return true }
func (NopVisitor) SMC(inst uint32) bool       { return true }
func (NopVisitor) BRK(inst uint32) bool       { return true }
func (NopVisitor) HLT(inst uint32) bool       { return true }
func (NopVisitor) HINT(inst uint32) bool      { return true }
func (NopVisitor) CLREX(inst uint32) bool     { return true }
func (NopVisitor) DSB(inst uint32) bool       { return true }
func (NopVisitor) DMB(inst uint32) bool       { return true }
func (NopVisitor) ISB(inst uint32) bool       { return true }
func (NopVisitor) SYS(inst uint32) bool       { return true }
func (NopVisitor) SYSL(inst uint32) bool      { return true }
func (NopVisitor) MSR(inst uint32) bool       { return true }
func (NopVisitor) MRS(inst uint32) bool       { return true }
func (NopVisitor) LDRLitW(inst uint32) bool   { return true }
func (NopVisitor) LDRLitX(inst uint32) bool   { return true }
func (NopVisitor) LDRSWLit(inst uint32) bool  { return true }
func (NopVisitor) PRFMLit(inst uint32) bool   { return true }
func (NopVisitor) STPPostX(inst uint32) bool  { return true }
func (NopVisitor) LDPPostX(inst uint32) bool  { return true }
func (NopVisitor) STPX(inst uint32) bool      { return true }
func (NopVisitor) LDPX(inst uint32) bool      { return true }
func (NopVisitor) STPPreX(inst uint32) bool   { return true }
func (NopVisitor) LDPPreX(inst uint32) bool   { return true }
func (NopVisitor) STPW(inst uint32) bool      { return true }
func (NopVisitor) LDPW(inst uint32) bool      { return true }
func (NopVisitor) STRBImm(inst uint32) bool   { return true }
func (NopVisitor) LDRBImm(inst uint32) bool   { return true }
func (NopVisitor) LDRSBImmX(inst uint32) bool { return true }
func (NopVisitor) LDRSBImmW(inst uint32) bool { return true }
func (NopVisitor) STRHImm(inst uint32) bool   { return true }
func (NopVisitor) LDRHImm(inst uint32) bool   { return true }
func (NopVisitor) LDRSHImmX(inst uint32) bool { return true }
func (NopVisitor) LDRSHImmW(inst uint32) bool { return true }
func (NopVisitor) STRWImm(inst uint32) bool   { return true }
func (NopVisitor) LDRWImm(inst uint32) bool   { return true }
func (NopVisitor) LDRSWImm(inst uint32) bool  { return true }
func (NopVisitor) STRXImm(inst uint32) bool   { return true }
func (NopVisitor) LDRXImm(inst uint32) bool   { return true }
func (NopVisitor) PRFMImm(inst uint32) bool   { return true }
func (NopVisitor) STURX(inst uint32) bool     { return true }
func (NopVisitor) LDURX(inst uint32) bool     { return true }
func (NopVisitor) STRXReg(inst uint32) bool   { return true }
func (NopVisitor) LDRXReg(inst uint32) bool   { return true }
func (NopVisitor) STXRX(inst uint32) bool     { return true }
func (NopVisitor) LDXRX(inst uint32) bool     { return true }
func (NopVisitor) ADDImm(inst uint32) bool    { return true }
func (NopVisitor) ADDSImm(inst uint32) bool   { return true }
func (NopVisitor) SUBImm(inst uint32) bool    { return true }
func (NopVisitor) SUBSImm(inst uint32) bool   { return true }
func (NopVisitor) ANDImm(inst uint32) bool    { return true }
func (NopVisitor) ORRImm(inst uint32) bool    { return true }
func (NopVisitor) EORImm(inst uint32) bool    { return true }
func (NopVisitor) ANDSImm(inst uint32) bool   { return true }
func (NopVisitor) MOVN(inst uint32) bool      { return true }
func (NopVisitor) MOVZ(inst uint32) bool      { return true }
func (NopVisitor) MOVK(inst uint32) bool      { return true }
func (NopVisitor) SBFM(inst uint32) bool      { return true }
func (NopVisitor) BFM(inst uint32) bool       { return true }
func (NopVisitor) UBFM(inst uint32) bool      { return true }
func (NopVisitor) EXTR(inst uint32) bool      { return true }
func (NopVisitor) ADR(inst uint32) bool       { return true }
func (NopVisitor) ADRP(inst uint32) bool      { return true }
func (NopVisitor) ADDShift(inst uint32) bool  { return true }
func (NopVisitor) ADDSShift(inst uint32) bool { return true }
func (NopVisitor) SUBShift(inst uint32) bool  { return true }
func (NopVisitor) SUBSShift(inst uint32) bool { return true }
func (NopVisitor) ADDExt(inst uint32) bool    { return true }
func (NopVisitor) ADDSExt(inst uint32) bool   { return true }
func (NopVisitor) SUBExt(inst uint32) bool    { return true }
func (NopVisitor) SUBSExt(inst uint32) bool   { return true }
func (NopVisitor) ANDShift(inst uint32) bool  { return true }
func (NopVisitor) BICShift(inst uint32) bool  { return true }
func (NopVisitor) ORRShift(inst uint32) bool  { return true }
func (NopVisitor) ORNShift(inst uint32) bool  { return true }
func (NopVisitor) EORShift(inst uint32) bool  { return true }
func (NopVisitor) EONShift(inst uint32) bool  { return true }
func (NopVisitor) ANDSShift(inst uint32) bool { return true }
func (NopVisitor) BICSShift(inst uint32) bool { return true }
func (NopVisitor) ADC(inst uint32) bool       { return true }
func (NopVisitor) ADCS(inst uint32) bool      { return true }
func (NopVisitor) SBC(inst uint32) bool       { return true }
func (NopVisitor) SBCS(inst uint32) bool      { return true }
func (NopVisitor) CSEL(inst uint32) bool      { return true }
func (NopVisitor) CSINC(inst uint32) bool     { return true }
func (NopVisitor) CSINV(inst uint32) bool     { return true }
func (NopVisitor) CSNEG(inst uint32) bool     { return true }
func (NopVisitor) CCMNReg(inst uint32) bool   { return true }
func (NopVisitor) CCMNImm(inst uint32) bool   { return true }
func (NopVisitor) CCMPReg(inst uint32) bool   { return true }
func (NopVisitor) CCMPImm(inst uint32) bool   { return true }
func (NopVisitor) RBIT(inst uint32) bool      { return true }
func (NopVisitor) REV16(inst uint32) bool     { return true }
func (NopVisitor) CLZ(inst uint32) bool       { return true }
func (NopVisitor) CLS(inst uint32) bool       { return true }
func (NopVisitor) UDIV(inst uint32) bool      { return true }
func (NopVisitor) SDIV(inst uint32) bool      { return true }
func (NopVisitor) LSLV(inst uint32) bool      { return true }
func (NopVisitor) LSRV(inst uint32) bool      { return true }
func (NopVisitor) ASRV(inst uint32) bool      { return true }
func (NopVisitor) RORV(inst uint32) bool      { return true }
func (NopVisitor) MADD(inst uint32) bool      { return true }
func (NopVisitor) MSUB(inst uint32) bool      { return true }
func (NopVisitor) SMADDL(inst uint32) bool    { return true }
func (NopVisitor) SMSUBL(inst uint32) bool    { return true }
func (NopVisitor) SMULH(inst uint32) bool     { return true }
func (NopVisitor) UMADDL(inst uint32) bool    { return true }
func (NopVisitor) UMSUBL(inst uint32) bool    { return true }
func (NopVisitor) UMULH(inst uint32) bool     { return true }
func (NopVisitor) FMOVReg(inst uint32) bool   { return true }
func (NopVisitor) FABS(inst uint32) bool      { return true }
func (NopVisitor) FNEG(inst uint32) bool      { return true }
func (NopVisitor) FSQRT(inst uint32) bool     { return true }
func (NopVisitor) FMUL(inst uint32) bool      { return true }
func (NopVisitor) FDIV(inst uint32) bool      { return true }
func (NopVisitor) FADD(inst uint32) bool      { return true }
func (NopVisitor) FSUB(inst uint32) bool      { return true }
func (NopVisitor) FMAX(inst uint32) bool      { return true }
func (NopVisitor) FMIN(inst uint32) bool      { return true }
func (NopVisitor) FMOVImm(inst uint32) bool   { return true }
func (NopVisitor) SCVTF(inst uint32) bool     { return true }
func (NopVisitor) UCVTF(inst uint32) bool     { return true }
func (NopVisitor) FCVTZS(inst uint32) bool    { return true }
func (NopVisitor) FCVTZU(inst uint32) bool    { return true }
func (NopVisitor) MOVI(inst uint32) bool      { return true }
func (NopVisitor) FMOVVec(inst uint32) bool   { return true }
func (NopVisitor) SSHR(inst uint32) bool      { return true }
func (NopVisitor) USHR(inst uint32) bool      { return true }
func (NopVisitor) SHL(inst uint32) bool       { return true }
func (NopVisitor) ADDVec(inst uint32) bool    { return true }
func (NopVisitor) SUBVec(inst uint32) bool    { return true }
func (NopVisitor) ANDVec(inst uint32) bool    { return true }
func (NopVisitor) BICVec(inst uint32) bool    { return true }
func (NopVisitor) ORRVec(inst uint32) bool    { return true }
func (NopVisitor) ORNVec(inst uint32) bool    { return true }
func (NopVisitor) EORVec(inst uint32) bool    { return true }
func (NopVisitor) DUPElt(inst uint32) bool    { return true }
func (NopVisitor) UMOV(inst uint32) bool      { return true }
