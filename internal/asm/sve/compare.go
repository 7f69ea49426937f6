package sve

import "github.com/tetratelabs/sveasm/internal/features"

// Integer compares with an unsigned immediate within [0, 127].
//
// https://developer.arm.com/documentation/ddi0602/2022-09/SVE-Instructions/CMP-cc---immediate---Compare-vector-to-immediate-

func (e *Emitter) CmphiImm(size ElementSize, pd PRegister, pg PRegisterZero, zn ZRegister, imm uint32) {
	e.compareUnsigned("cmphi", 0, 1, size, pd, pg, zn, imm)
}

func (e *Emitter) CmphsImm(size ElementSize, pd PRegister, pg PRegisterZero, zn ZRegister, imm uint32) {
	e.compareUnsigned("cmphs", 0, 0, size, pd, pg, zn, imm)
}

func (e *Emitter) CmploImm(size ElementSize, pd PRegister, pg PRegisterZero, zn ZRegister, imm uint32) {
	e.compareUnsigned("cmplo", 1, 0, size, pd, pg, zn, imm)
}

func (e *Emitter) CmplsImm(size ElementSize, pd PRegister, pg PRegisterZero, zn ZRegister, imm uint32) {
	e.compareUnsigned("cmpls", 1, 1, size, pd, pg, zn, imm)
}

// compareUnsigned encodes
//
//	op | size<23:22> | imm7<20:14> | lt<13> | pg<12:10> | zn<9:5> | ne<4> | pd<3:0>
func (e *Emitter) compareUnsigned(inst string, lt, ne uint32, size ElementSize, pd PRegister, pg PRegisterZero, zn ZRegister, imm uint32) {
	if !e.check(inst,
		sizeNot128(size),
		zregs(zn),
		pregs(pd),
		governing(pg),
		inRange("immediate", int64(imm), 0, 127),
	) {
		return
	}
	e.emit(inst, opCmpImmUnsigned|uint32(size)<<22|imm<<14|lt<<13|pg.Index()<<10|zn.Index()<<5|ne<<4|pd.Index())
}

// Integer compares with a signed immediate within [-16, 15].

func (e *Emitter) CmpeqImm(size ElementSize, pd PRegister, pg PRegisterZero, zn ZRegister, imm int32) {
	e.compareSigned("cmpeq", 0b100, 0, size, pd, pg, zn, imm)
}

func (e *Emitter) CmpneImm(size ElementSize, pd PRegister, pg PRegisterZero, zn ZRegister, imm int32) {
	e.compareSigned("cmpne", 0b100, 1, size, pd, pg, zn, imm)
}

func (e *Emitter) CmpgtImm(size ElementSize, pd PRegister, pg PRegisterZero, zn ZRegister, imm int32) {
	e.compareSigned("cmpgt", 0b000, 1, size, pd, pg, zn, imm)
}

func (e *Emitter) CmpgeImm(size ElementSize, pd PRegister, pg PRegisterZero, zn ZRegister, imm int32) {
	e.compareSigned("cmpge", 0b000, 0, size, pd, pg, zn, imm)
}

func (e *Emitter) CmpltImm(size ElementSize, pd PRegister, pg PRegisterZero, zn ZRegister, imm int32) {
	e.compareSigned("cmplt", 0b001, 0, size, pd, pg, zn, imm)
}

func (e *Emitter) CmpleImm(size ElementSize, pd PRegister, pg PRegisterZero, zn ZRegister, imm int32) {
	e.compareSigned("cmple", 0b001, 1, size, pd, pg, zn, imm)
}

func (e *Emitter) compareSigned(inst string, opc, ne uint32, size ElementSize, pd PRegister, pg PRegisterZero, zn ZRegister, imm int32) {
	if !e.check(inst, inRange("immediate", int64(imm), -16, 15)) {
		return
	}
	e.compare(inst, opCmpImmSigned, opc, ne, size, pd, pg, zn, uint32(imm))
}

// Integer compares of two vectors. The lt, le, lo and ls conditions are
// available as the opposite compare with swapped operands.

func (e *Emitter) Cmpeq(size ElementSize, pd PRegister, pg PRegisterZero, zn, zm ZRegister) {
	e.compareVectors("cmpeq", opCmpVec, 0b101, 0, size, pd, pg, zn, zm)
}

func (e *Emitter) Cmpne(size ElementSize, pd PRegister, pg PRegisterZero, zn, zm ZRegister) {
	e.compareVectors("cmpne", opCmpVec, 0b101, 1, size, pd, pg, zn, zm)
}

func (e *Emitter) Cmpge(size ElementSize, pd PRegister, pg PRegisterZero, zn, zm ZRegister) {
	e.compareVectors("cmpge", opCmpVec, 0b100, 0, size, pd, pg, zn, zm)
}

func (e *Emitter) Cmpgt(size ElementSize, pd PRegister, pg PRegisterZero, zn, zm ZRegister) {
	e.compareVectors("cmpgt", opCmpVec, 0b100, 1, size, pd, pg, zn, zm)
}

func (e *Emitter) Cmphi(size ElementSize, pd PRegister, pg PRegisterZero, zn, zm ZRegister) {
	e.compareVectors("cmphi", opCmpVec, 0b000, 1, size, pd, pg, zn, zm)
}

func (e *Emitter) Cmphs(size ElementSize, pd PRegister, pg PRegisterZero, zn, zm ZRegister) {
	e.compareVectors("cmphs", opCmpVec, 0b000, 0, size, pd, pg, zn, zm)
}

// Integer compares with the overlapping 64-bit elements of zm.

func (e *Emitter) CmpeqWide(size ElementSize, pd PRegister, pg PRegisterZero, zn, zm ZRegister) {
	e.compareWide("cmpeq", 0b001, 0, size, pd, pg, zn, zm)
}

func (e *Emitter) CmpneWide(size ElementSize, pd PRegister, pg PRegisterZero, zn, zm ZRegister) {
	e.compareWide("cmpne", 0b001, 1, size, pd, pg, zn, zm)
}

func (e *Emitter) CmpgtWide(size ElementSize, pd PRegister, pg PRegisterZero, zn, zm ZRegister) {
	e.compareWide("cmpgt", 0b010, 1, size, pd, pg, zn, zm)
}

func (e *Emitter) CmpgeWide(size ElementSize, pd PRegister, pg PRegisterZero, zn, zm ZRegister) {
	e.compareWide("cmpge", 0b010, 0, size, pd, pg, zn, zm)
}

func (e *Emitter) CmphiWide(size ElementSize, pd PRegister, pg PRegisterZero, zn, zm ZRegister) {
	e.compareWide("cmphi", 0b110, 1, size, pd, pg, zn, zm)
}

func (e *Emitter) CmphsWide(size ElementSize, pd PRegister, pg PRegisterZero, zn, zm ZRegister) {
	e.compareWide("cmphs", 0b110, 0, size, pd, pg, zn, zm)
}

func (e *Emitter) CmpltWide(size ElementSize, pd PRegister, pg PRegisterZero, zn, zm ZRegister) {
	e.compareWide("cmplt", 0b011, 0, size, pd, pg, zn, zm)
}

func (e *Emitter) CmpleWide(size ElementSize, pd PRegister, pg PRegisterZero, zn, zm ZRegister) {
	e.compareWide("cmple", 0b011, 1, size, pd, pg, zn, zm)
}

func (e *Emitter) CmploWide(size ElementSize, pd PRegister, pg PRegisterZero, zn, zm ZRegister) {
	e.compareWide("cmplo", 0b111, 0, size, pd, pg, zn, zm)
}

func (e *Emitter) CmplsWide(size ElementSize, pd PRegister, pg PRegisterZero, zn, zm ZRegister) {
	e.compareWide("cmpls", 0b111, 1, size, pd, pg, zn, zm)
}

func (e *Emitter) compareWide(inst string, opc, ne uint32, size ElementSize, pd PRegister, pg PRegisterZero, zn, zm ZRegister) {
	if !e.check(inst, sizeIn(size, Element8, Element16, Element32)) {
		return
	}
	e.compareVectors(inst, opCmpVec, opc, ne, size, pd, pg, zn, zm)
}

// While loops: pd is set while the incrementing rn compares with rm. rn and rm
// must both be X or both be W registers.
//
// https://developer.arm.com/documentation/ddi0602/2022-09/SVE-Instructions/WHILELT--While-incrementing-signed-scalar-less-than-scalar-

func (e *Emitter) Whilege(size ElementSize, pd PRegister, rn, rm Register) {
	e.while("whilege", true, 0b00, 0, size, pd, rn, rm)
}

func (e *Emitter) Whilegt(size ElementSize, pd PRegister, rn, rm Register) {
	e.while("whilegt", true, 0b00, 1, size, pd, rn, rm)
}

func (e *Emitter) Whilelt(size ElementSize, pd PRegister, rn, rm Register) {
	e.while("whilelt", false, 0b01, 0, size, pd, rn, rm)
}

func (e *Emitter) Whilele(size ElementSize, pd PRegister, rn, rm Register) {
	e.while("whilele", false, 0b01, 1, size, pd, rn, rm)
}

func (e *Emitter) Whilehs(size ElementSize, pd PRegister, rn, rm Register) {
	e.while("whilehs", true, 0b10, 0, size, pd, rn, rm)
}

func (e *Emitter) Whilehi(size ElementSize, pd PRegister, rn, rm Register) {
	e.while("whilehi", true, 0b10, 1, size, pd, rn, rm)
}

func (e *Emitter) Whilelo(size ElementSize, pd PRegister, rn, rm Register) {
	e.while("whilelo", false, 0b11, 0, size, pd, rn, rm)
}

func (e *Emitter) Whilels(size ElementSize, pd PRegister, rn, rm Register) {
	e.while("whilels", false, 0b11, 1, size, pd, rn, rm)
}

// while encodes the WHILE forms; cond packs the U and lt bits and eq is b4.
func (e *Emitter) while(inst string, sve2 bool, cond, eq uint32, size ElementSize, pd PRegister, rn, rm Register) {
	var featureErr error
	if sve2 {
		featureErr = e.require(features.SVE2)
	}
	if !e.check(inst, featureErr, gregs(rn, rm), sameWidth(rn, rm), pregs(pd)) {
		return
	}
	var sf uint32
	if rn.Is64() {
		sf = 1
	}
	e.compareScalar(inst, sf<<2|cond, eq, pd.Index(), size, rn, rm)
}

// Ctermeq compares rn and rm to terminate a loop, setting the condition flags.
func (e *Emitter) Ctermeq(rn, rm Register) {
	e.cterm("ctermeq", 0, rn, rm)
}

func (e *Emitter) Ctermne(rn, rm Register) {
	e.cterm("ctermne", 1, rn, rm)
}

func (e *Emitter) cterm(inst string, ne uint32, rn, rm Register) {
	if !e.check(inst, gregs(rn, rm), sameWidth(rn, rm)) {
		return
	}
	size := Element32
	if rn.Is64() {
		size = Element64
	}
	e.compareScalar(inst, 0b1000, ne, 0, size, rn, rm)
}

// Whilewr sets pd for the elements free of a write-after-read hazard between
// the addresses in rn and rm.
func (e *Emitter) Whilewr(size ElementSize, pd PRegister, rn, rm Register) {
	e.whileConflict("whilewr", 0, size, pd, rn, rm)
}

// Whilerw sets pd for the elements free of a read-after-write hazard between
// the addresses in rn and rm.
func (e *Emitter) Whilerw(size ElementSize, pd PRegister, rn, rm Register) {
	e.whileConflict("whilerw", 1, size, pd, rn, rm)
}

func (e *Emitter) whileConflict(inst string, rw uint32, size ElementSize, pd PRegister, rn, rm Register) {
	if !e.check(inst, e.require(features.SVE2), xreg(rn), xreg(rm), pregs(pd)) {
		return
	}
	e.compareScalar(inst, 0b1100, rw, pd.Index(), size, rn, rm)
}

// Match sets pd for the active elements of zn equal to any element in the
// corresponding 128-bit segment of zm.
func (e *Emitter) Match(size ElementSize, pd PRegister, pg PRegisterZero, zn, zm ZRegister) {
	e.match("match", 0, size, pd, pg, zn, zm)
}

// Nmatch is the negation of Match.
func (e *Emitter) Nmatch(size ElementSize, pd PRegister, pg PRegisterZero, zn, zm ZRegister) {
	e.match("nmatch", 1, size, pd, pg, zn, zm)
}

func (e *Emitter) match(inst string, ne uint32, size ElementSize, pd PRegister, pg PRegisterZero, zn, zm ZRegister) {
	if !e.check(inst, e.require(features.SVE2), sizeIn(size, Element8, Element16)) {
		return
	}
	e.compareVectors(inst, opMatch, 0, ne, size, pd, pg, zn, zm)
}
