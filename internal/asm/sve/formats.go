package sve

import "github.com/tetratelabs/sveasm/internal/features"

// Skeleton words of the SVE encoding groups. Each group ORs its fields into the
// skeleton; the layouts are documented on the encoders below.
//
// See https://developer.arm.com/documentation/ddi0602/2022-09/Index-by-Encoding/SVE-encodings
const (
	// Data movement and permutes.
	opDupIndexed   uint32 = 0x05202000
	opDupImm       uint32 = 0x2538C000
	opFdup         uint32 = 0x2539C000
	opSel          uint32 = 0x0520C000
	opTbl          uint32 = 0x05203000
	opTbx          uint32 = 0x05202C00
	opPermute      uint32 = 0x05206000
	opPermuteUnary uint32 = 0x05203800
	opPermutePred  uint32 = 0x05204000
	opPermuteVec   uint32 = 0x05208000
	opExt          uint32 = 0x05200000

	// Integer arithmetic and logical.
	opAddSub          uint32 = 0x04200000
	opAddSubPred      uint32 = 0x04000000
	opMinMaxPred      uint32 = 0x04080000
	opMulPred         uint32 = 0x04100000
	opDivPred         uint32 = 0x04140000
	opLogicalPred     uint32 = 0x04180000
	opAddReduce       uint32 = 0x04002000
	opMinMaxReduce    uint32 = 0x04082000
	opLogicalReduce   uint32 = 0x04182000
	opMovprfxPred     uint32 = 0x04102000
	opMulAddAddend    uint32 = 0x04004000
	opMulAddMultiplic uint32 = 0x0400C000
	opIntUnaryPred    uint32 = 0x0410A000
	opBitUnaryPred    uint32 = 0x0418A000
	opLogical         uint32 = 0x04203000
	opTernary         uint32 = 0x04203800
	opIndex           uint32 = 0x04204000
	opStackFrame      uint32 = 0x04205000
	opMulVectors      uint32 = 0x04206000
	opMiscUnpred      uint32 = 0x0420B000

	// Shifts.
	opShiftImmPred  uint32 = 0x04008000
	opShiftVecPred  uint32 = 0x04108000
	opShiftWidePred uint32 = 0x04188000
	opShiftWide     uint32 = 0x04208000
	opShiftImm      uint32 = 0x04209000

	// Compares.
	opCmpVec         uint32 = 0x24000000
	opCmpImmUnsigned uint32 = 0x24200000
	opCmpImmSigned   uint32 = 0x25000000
	opCmpScalar      uint32 = 0x25200000

	// Predicates.
	opPredLogical uint32 = 0x25004000
	opBreak       uint32 = 0x25000000
	opPredMisc    uint32 = 0x2510C000
	opWriteFFR    uint32 = 0x25289000

	// Floating point.
	opFcmlaIndexed uint32 = 0x64A01000
	opFcmla        uint32 = 0x64000000
	opFcadd        uint32 = 0x64008000
	opFcvtOdd      uint32 = 0x6408A000
	opFpPairwise   uint32 = 0x64108000
	opFpArith      uint32 = 0x65000000
	opFpReduce     uint32 = 0x65002000
	opFpCmpVec     uint32 = 0x65004000
	opFpArithPred  uint32 = 0x65008000
	opFrint        uint32 = 0x6500A000
	opFpUnaryPred  uint32 = 0x650CA000
	opFpEstimate   uint32 = 0x65083000
	opFpCmpZero    uint32 = 0x65102000
	opFadda        uint32 = 0x65182000
	opIntToFp      uint32 = 0x6510A000
	opFpToInt      uint32 = 0x6518A000

	// SVE2 integer.
	opHalving         uint32 = 0x44108000
	opPairwise        uint32 = 0x4410A000
	opSaturatingPred  uint32 = 0x44188000
	opAddSubLong      uint32 = 0x45000000
	opMulLong         uint32 = 0x45006000
	opInterleavedLong uint32 = 0x45008000
	opXorInterleaved  uint32 = 0x45009000
	opMatMul          uint32 = 0x45009800
	opShiftLeftLong   uint32 = 0x4500A000
	opBitPermute      uint32 = 0x4500B000
	opAbsDiffAccLong  uint32 = 0x4500C000
	opCarry           uint32 = 0x4500D000
	opComplexAdd      uint32 = 0x4500D800
	opShiftAcc        uint32 = 0x4500E000
	opShiftInsert     uint32 = 0x4500F000
	opAbsDiffAcc      uint32 = 0x4500F800
	opShiftNarrow     uint32 = 0x45200000
	opExtractNarrow   uint32 = 0x45204000
	opAddSubNarrow    uint32 = 0x45206000
	opMatch           uint32 = 0x45208000
	opHistseg         uint32 = 0x4520A000
	opHistcnt         uint32 = 0x4520C000

	// Memory.
	opLdr     uint32 = 0x85800000
	opLdMulti uint32 = 0xA400E000
	opStMulti uint32 = 0xE410E000
	opLd1Imm  uint32 = 0xA400A000
	opLd1Reg  uint32 = 0xA4004000
	opSt1Imm  uint32 = 0xE400E000
	opSt1Reg  uint32 = 0xE4004000
)

// vectors encodes the unpredicated three-operand layout
//
//	op | size<23:22> | zm<20:16> | opc<15:10> | zn<9:5> | zd<4:0>
//
// shared by most unpredicated integer, floating-point, permute and SVE2 groups.
func (e *Emitter) vectors(inst string, op, opc uint32, size ElementSize, zd, zn, zm ZRegister) {
	if !e.check(inst, sizeNot128(size), zregs(zd, zn, zm)) {
		return
	}
	e.emit(inst, op|uint32(size)<<22|zm.Index()<<16|opc<<10|zn.Index()<<5|zd.Index())
}

// destructive encodes the predicated layout whose first source is the destination
//
//	op | size<23:22> | opc<20:16> | pg<12:10> | zm<9:5> | zdn<4:0>
func (e *Emitter) destructive(inst string, op, opc uint32, size ElementSize, zd ZRegister, pg register, zn, zm ZRegister) {
	if !e.check(inst,
		sizeNot128(size),
		zregs(zd, zn, zm),
		governing(pg),
		aliased(zd, zn, "zd", "zn"),
	) {
		return
	}
	e.emit(inst, op|uint32(size)<<22|opc<<16|pg.Index()<<10|zm.Index()<<5|zd.Index())
}

// unary encodes the predicated single-source layout
//
//	op | size<23:22> | opc<20:16> | pg<12:10> | n<9:5> | d<4:0>
//
// d and n are vector registers except for the reductions, which write a SIMD&FP
// scalar.
func (e *Emitter) unary(inst string, op, opc uint32, size ElementSize, d, pg, n register) {
	if !e.check(inst, sizeNot128(size), regs(d, n), governing(pg)) {
		return
	}
	e.emit(inst, op|uint32(size)<<22|opc<<16|pg.Index()<<10|n.Index()<<5|d.Index())
}

// ternary encodes the predicated layout with a distinct destination
//
//	op | size<23:22> | zm<20:16> | opc<15:13> | pg<12:10> | zn<9:5> | zd<4:0>
func (e *Emitter) ternary(inst string, op, opc uint32, size ElementSize, zd ZRegister, pg register, zn, zm ZRegister) {
	if !e.check(inst, sizeNot128(size), zregs(zd, zn, zm), governing(pg)) {
		return
	}
	e.emit(inst, op|uint32(size)<<22|zm.Index()<<16|opc<<13|pg.Index()<<10|zn.Index()<<5|zd.Index())
}

// compare encodes the layouts writing a predicate
//
//	op | size<23:22> | m<20:16> | opc<15:13> | pg<12:10> | zn<9:5> | ne<4> | pd<3:0>
//
// where m is the second vector, a signed immediate or an opcode extension.
func (e *Emitter) compare(inst string, op, opc, ne uint32, size ElementSize, pd PRegister, pg register, zn ZRegister, m uint32) {
	if !e.check(inst, sizeNot128(size), zregs(zn), pregs(pd), governing(pg)) {
		return
	}
	e.emit(inst, op|uint32(size)<<22|(m&0x1f)<<16|opc<<13|pg.Index()<<10|zn.Index()<<5|ne<<4|pd.Index())
}

func (e *Emitter) compareVectors(inst string, op, opc, ne uint32, size ElementSize, pd PRegister, pg register, zn, zm ZRegister) {
	if !e.check(inst, zregs(zm)) {
		return
	}
	e.compare(inst, op, opc, ne, size, pd, pg, zn, zm.Index())
}

// convert encodes the floating-point conversions, whose element sizes are
// spread over two opcode fields
//
//	op | opc<23:22> | opc2<18:16> | pg<12:10> | zn<9:5> | zd<4:0>
func (e *Emitter) convert(inst string, op, opc, opc2 uint32, zd ZRegister, pg register, zn ZRegister) {
	if !e.check(inst, zregs(zd, zn), governing(pg)) {
		return
	}
	e.emit(inst, op|opc<<22|opc2<<16|pg.Index()<<10|zn.Index()<<5|zd.Index())
}

// sel encodes SEL (vectors), whose predicate field is four bits wide.
//
// https://developer.arm.com/documentation/ddi0602/2022-09/SVE-Instructions/SEL--vectors---Conditionally-select-elements-from-two-vectors-
func (e *Emitter) sel(inst string, size ElementSize, zd ZRegister, pv register, zn, zm ZRegister) {
	if !e.check(inst, sizeNot128(size), zregs(zd, zn, zm), pregs(pv)) {
		return
	}
	e.emit(inst, opSel|uint32(size)<<22|zm.Index()<<16|pv.Index()<<10|zn.Index()<<5|zd.Index())
}

// permuteUnary encodes the unpredicated permutes with one source (DUP, INSR,
// REV, UNPK): op | size<23:22> | opc<20:16> | n<9:5> | zd<4:0>.
func (e *Emitter) permuteUnary(inst string, opc uint32, size ElementSize, zd ZRegister, n register) {
	if !e.check(inst, sizeNot128(size), regs(zd, n)) {
		return
	}
	e.emit(inst, opPermuteUnary|uint32(size)<<22|opc<<16|n.Index()<<5|zd.Index())
}

// permutePredicate encodes the predicate permutes:
// op | size<23:22> | op1<20:16> | op2<12:9> | pn<8:5> | op3<4> | pd<3:0>.
func (e *Emitter) permutePredicate(inst string, size ElementSize, op1, op2, op3 uint32, pd, pn PRegister) {
	if !e.check(inst, sizeNot128(size), pregs(pd, pn)) {
		return
	}
	e.emit(inst, opPermutePred|uint32(size)<<22|op1<<16|op2<<9|pn.Index()<<5|op3<<4|pd.Index())
}

// permuteVector encodes the predicated permutes and element extractions:
// op | size<23:22> | opc1<20:16> | opc2<13> | pg<12:10> | n<9:5> | d<4:0>.
func (e *Emitter) permuteVector(inst string, opc1, opc2 uint32, size ElementSize, d, pg, n register) {
	if !e.check(inst, sizeNot128(size), regs(d, n), governing(pg)) {
		return
	}
	e.emit(inst, opPermuteVec|uint32(size)<<22|opc1<<16|opc2<<13|pg.Index()<<10|n.Index()<<5|d.Index())
}

// extract encodes EXT: op | op0<22> | imm8h<20:16> | imm8l<12:10> | zm<9:5> | zd<4:0>.
func (e *Emitter) extract(inst string, op0 uint32, zd, zm ZRegister, imm uint32) {
	if !e.check(inst, zregs(zd, zm), inRange("index", int64(imm), 0, 255)) {
		return
	}
	e.emit(inst, opExt|op0<<22|(imm>>3)<<16|(imm&0b111)<<10|zm.Index()<<5|zd.Index())
}

// bitwise encodes the unpredicated bitwise logical operations, whose opcode
// takes the place of the size: op | opc<23:22> | zm<20:16> | zn<9:5> | zd<4:0>.
func (e *Emitter) bitwise(inst string, opc uint32, zd, zn, zm ZRegister) {
	if !e.check(inst, zregs(zd, zn, zm)) {
		return
	}
	e.emit(inst, opLogical|opc<<22|zm.Index()<<16|zn.Index()<<5|zd.Index())
}

// bitwiseTernary encodes the SVE2 bitwise ternary operations:
// op | opc<23:22> | zm<20:16> | o2<10> | zk<9:5> | zdn<4:0>.
func (e *Emitter) bitwiseTernary(inst string, opc, o2 uint32, zd, zdn, zm, zk ZRegister) {
	if !e.check(inst,
		e.require(features.SVE2),
		zregs(zd, zdn, zm, zk),
		aliased(zd, zdn, "zd", "zdn"),
	) {
		return
	}
	e.emit(inst, opTernary|opc<<22|zm.Index()<<16|o2<<10|zk.Index()<<5|zd.Index())
}

// index encodes INDEX, where a and b are five-bit fields holding either a
// signed immediate or a general register:
// op | size<23:22> | b<20:16> | op<11:10> | a<9:5> | zd<4:0>.
func (e *Emitter) index(inst string, form uint32, size ElementSize, zd ZRegister, a, b uint32) {
	if !e.check(inst, sizeNot128(size), zregs(zd)) {
		return
	}
	e.emit(inst, opIndex|uint32(size)<<22|(b&0x1f)<<16|form<<10|(a&0x1f)<<5|zd.Index())
}

// stackFrame encodes ADDVL, ADDPL and RDVL:
// op | opc<23:22> | rn<20:16> | imm6<10:5> | rd<4:0>.
func (e *Emitter) stackFrame(inst string, opc uint32, rd, rn Register, imm int32) {
	if !e.check(inst, xreg(rd), xreg(rn), inRange("immediate", int64(imm), -32, 31)) {
		return
	}
	e.emit(inst, opStackFrame|opc<<22|rn.Index()<<16|(uint32(imm)&0x3f)<<5|rd.Index())
}

// shiftImmPredicated encodes the predicated shifts by immediate:
// op | tszh<23:22> | opc<19:16> | pg<12:10> | tszl<9:8> | imm3<7:5> | zdn<4:0>.
// Bit 1 of opc selects a left shift.
func (e *Emitter) shiftImmPredicated(inst string, opc uint32, size ElementSize, zd ZRegister, pg register, zn ZRegister, shift uint32) {
	f, err := encodeShift(size, shift, opc&0b10 != 0)
	if !e.check(inst, err, zregs(zd, zn), governing(pg), aliased(zd, zn, "zd", "zdn")) {
		return
	}
	e.emit(inst, opShiftImmPred|f.tszh<<22|opc<<16|pg.Index()<<10|f.tszl<<8|f.imm3<<5|zd.Index())
}

// shiftImm encodes the unpredicated shifts by immediate:
// op | tszh<23:22> | tszl<20:19> | imm3<18:16> | opc<13:10> | zn<9:5> | zd<4:0>.
// The SVE2 accumulating, inserting and narrowing shifts share the layout.
func (e *Emitter) shiftImm(inst string, op, opc uint32, left bool, size ElementSize, zd, zn ZRegister, shift uint32) {
	f, err := encodeShift(size, shift, left)
	if !e.check(inst, err, zregs(zd, zn)) {
		return
	}
	e.emit(inst, op|f.tszh<<22|f.tszl<<19|f.imm3<<16|opc<<10|zn.Index()<<5|zd.Index())
}

// shiftLeftLong encodes SSHLLB, SSHLLT, USHLLB and USHLLT:
// op | tszh<22> | tszl<20:19> | imm3<18:16> | opc<11:10> | zn<9:5> | zd<4:0>.
func (e *Emitter) shiftLeftLong(inst string, opc uint32, size ElementSize, zd, zn ZRegister, shift uint32) {
	fields, err := encodeShiftLeftLong(size, shift)
	if !e.check(inst, e.require(features.SVE2), err, zregs(zd, zn)) {
		return
	}
	e.emit(inst, opShiftLeftLong|fields|opc<<10|zn.Index()<<5|zd.Index())
}

// predicateLogical encodes the predicate logical operations. opc packs
// op:S:o2:o3 as
//
//	op<23> | S<22> | pm<19:16> | pg<13:10> | o2<9> | pn<8:5> | o3<4> | pd<3:0>
func (e *Emitter) predicateLogical(inst string, opc uint32, pd, pg, pn, pm register) {
	if !e.check(inst, pregs(pd, pg, pn, pm)) {
		return
	}
	op, s, o2, o3 := opc>>3&1, opc>>2&1, opc>>1&1, opc&1
	e.emit(inst, opPredLogical|op<<23|s<<22|pm.Index()<<16|pg.Index()<<10|o2<<9|pn.Index()<<5|o3<<4|pd.Index())
}

// propagateBreak encodes the break instructions:
// op | opc<23:20> | pm<19:16> | op2<15:14> | pg<13:10> | pn<8:5> | op3<4> | pd<3:0>.
func (e *Emitter) propagateBreak(inst string, opc, op2, op3 uint32, pd, pg, pn, pm register) {
	if !e.check(inst, pregs(pd, pg, pn, pm)) {
		return
	}
	e.emit(inst, opBreak|opc<<20|pm.Index()<<16|op2<<14|pg.Index()<<10|pn.Index()<<5|op3<<4|pd.Index())
}

// predicateMisc encodes the predicate initialization and test group:
// op | size<23:22> | op0<19:16> | op2<13:9> | op3<8:5> | pd<3:0>.
func (e *Emitter) predicateMisc(inst string, op0, op2, op3 uint32, size ElementSize, pd PRegister) {
	if !e.check(inst, sizeNot128(size), pregs(pd)) {
		return
	}
	e.emit(inst, opPredMisc|uint32(size)<<22|op0<<16|op2<<9|op3<<5|pd.Index())
}

// compareScalar encodes WHILE* and CTERM*:
// op | size<23:22> | rm<20:16> | op1<13:10> | rn<9:5> | b4<4> | op2<3:0>.
func (e *Emitter) compareScalar(inst string, op1, b4, op2 uint32, size ElementSize, rn, rm Register) {
	if !e.check(inst, sizeNot128(size), gregs(rn, rm)) {
		return
	}
	e.emit(inst, opCmpScalar|uint32(size)<<22|rm.Index()<<16|op1<<10|rn.Index()<<5|b4<<4|op2)
}

// contiguousImm encodes the contiguous loads and stores with a scalar base and a
// signed immediate multiple of the vector length:
// op | dtype<24:21> | imm4<19:16> | pg<12:10> | rn<9:5> | zt<4:0>.
func (e *Emitter) contiguousImm(inst string, op, dtype uint32, zt ZRegister, pg register, rn Register, imm int32) {
	if !e.check(inst,
		zregs(zt),
		governing(pg),
		xreg(rn),
		inRange("offset", int64(imm), -8, 7),
	) {
		return
	}
	e.emit(inst, op|dtype<<21|(uint32(imm)&0xf)<<16|pg.Index()<<10|rn.Index()<<5|zt.Index())
}

// contiguousReg encodes the contiguous loads and stores with a scalar base and a
// scalar offset: op | dtype<24:21> | rm<20:16> | pg<12:10> | rn<9:5> | zt<4:0>.
func (e *Emitter) contiguousReg(inst string, op, dtype uint32, zt ZRegister, pg register, rn, rm Register) {
	if !e.check(inst, zregs(zt), governing(pg), xreg(rn), offsetReg(rm)) {
		return
	}
	e.emit(inst, op|dtype<<21|rm.Index()<<16|pg.Index()<<10|rn.Index()<<5|zt.Index())
}

// multipleStructures encodes LD2-4 and ST2-4 with a scalar base and immediate:
// op | msz<24:23> | opc<22:21> | imm4<19:16> | pg<12:10> | rn<9:5> | zt<4:0>.
// imm is in vector lengths and must be a multiple of the register count.
func (e *Emitter) multipleStructures(inst string, op, msz uint32, zt []ZRegister, pg register, rn Register, imm int32) {
	n := int64(len(zt))
	if !e.check(inst,
		zregs(zt...),
		sequential(zt...),
		governing(pg),
		xreg(rn),
		inRange("offset", int64(imm), -8*n, 7*n),
		multipleOf("offset", int64(imm), n),
	) {
		return
	}
	opc := uint32(n - 1)
	e.emit(inst, op|msz<<23|opc<<21|(uint32(imm/int32(n))&0xf)<<16|pg.Index()<<10|rn.Index()<<5|zt[0].Index())
}
