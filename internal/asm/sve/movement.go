package sve

import (
	"math"

	"github.com/tetratelabs/sveasm/internal/features"
)

// DupIndexed broadcasts element index of zn to every element of zd. It is the
// only instruction accepting Element128; the index must be below 512/bits.
//
// https://developer.arm.com/documentation/ddi0602/2022-09/SVE-Instructions/DUP--indexed---Broadcast-indexed-element-to-vector--unpredicated--
func (e *Emitter) DupIndexed(size ElementSize, zd, zn ZRegister, index uint32) {
	const inst = "dup"
	if !e.check(inst,
		sizeIn(size, Element8, Element16, Element32, Element64, Element128),
		zregs(zd, zn),
		inRange("index", int64(index), 0, int64(64>>size)-1),
	) {
		return
	}
	// imm2:tsz holds the index above a one-hot size marker.
	v := index<<(size+1) | 1<<size
	e.emit(inst, opDupIndexed|(v>>5)<<22|(v&0x1f)<<16|zn.Index()<<5|zd.Index())
}

// Dup broadcasts a general register (or SP) to every element of zd.
func (e *Emitter) Dup(size ElementSize, zd ZRegister, rn Register) {
	const inst = "dup"
	if !e.check(inst, elementReg(size, rn)) {
		return
	}
	e.permuteUnary(inst, 0b00000, size, zd, rn)
}

// MovR is the preferred alias of Dup.
func (e *Emitter) MovR(size ElementSize, zd ZRegister, rn Register) {
	e.Dup(size, zd, rn)
}

// DupImm broadcasts a signed 8-bit immediate, optionally shifted left by 8, to
// every element of zd. The shifted form is not available for 8-bit elements.
func (e *Emitter) DupImm(size ElementSize, zd ZRegister, imm int32, shift bool) {
	const inst = "dup"
	var sh uint32
	var shiftErr error
	if shift {
		sh = 1
		if size == Element8 {
			shiftErr = invalidf("shifted immediate is not allowed for %s elements", size)
		}
	}
	if !e.check(inst,
		sizeNot128(size),
		zregs(zd),
		shiftErr,
		inRange("immediate", int64(imm), -128, 127),
	) {
		return
	}
	e.emit(inst, opDupImm|uint32(size)<<22|sh<<13|(uint32(imm)&0xff)<<5|zd.Index())
}

// MovImm is the preferred alias of DupImm.
func (e *Emitter) MovImm(size ElementSize, zd ZRegister, imm int32, shift bool) {
	e.DupImm(size, zd, imm, shift)
}

// Fdup broadcasts a floating-point immediate to every element of zd. value must
// be representable in the 8-bit floating-point immediate format.
func (e *Emitter) Fdup(size ElementSize, zd ZRegister, value float64) {
	const inst = "fdup"
	imm8, ok := floatImm8(value)
	var immErr error
	if !ok {
		immErr = outOfRangef("%v is not representable as an 8-bit floating-point immediate", value)
	}
	if !e.check(inst, sizeFloat(size), zregs(zd), immErr) {
		return
	}
	e.emit(inst, opFdup|uint32(size)<<22|imm8<<5|zd.Index())
}

// Fmov is the preferred alias of Fdup.
func (e *Emitter) Fmov(size ElementSize, zd ZRegister, value float64) {
	e.Fdup(size, zd, value)
}

// floatImm8 returns the abcdefgh encoding of v, whose values are
// (-1)^a * (16+efgh)/16 * 2^exp with exp = cd+1 when b is clear and cd-3 otherwise.
func floatImm8(v float64) (uint32, bool) {
	for imm8 := uint32(0); imm8 < 256; imm8++ {
		if decodeFloatImm8(imm8) == v {
			return imm8, true
		}
	}
	return 0, false
}

func decodeFloatImm8(imm8 uint32) float64 {
	cd := int(imm8>>4) & 0b11
	exp := cd + 1
	if imm8&0x40 != 0 {
		exp = cd - 3
	}
	v := math.Ldexp(float64(16+imm8&0xf)/16, exp)
	if imm8&0x80 != 0 {
		v = -v
	}
	return v
}

// Sel selects elements from zn where pv is true and from zm elsewhere.
func (e *Emitter) Sel(size ElementSize, zd ZRegister, pv PRegister, zn, zm ZRegister) {
	e.sel("sel", size, zd, pv, zn, zm)
}

// MovMerge copies the active elements of zn to zd.
func (e *Emitter) MovMerge(size ElementSize, zd ZRegister, pv PRegisterMerge, zn ZRegister) {
	e.sel("mov", size, zd, pv, zn, zd)
}

// Mov copies zn to zd.
func (e *Emitter) Mov(zd, zn ZRegister) {
	e.bitwise("mov", 0b01, zd, zn, zn)
}

// Insr shifts zdn up by one element and inserts rm into the lowest element.
func (e *Emitter) Insr(size ElementSize, zdn ZRegister, rm Register) {
	const inst = "insr"
	if !e.check(inst, elementReg(size, rm)) {
		return
	}
	e.permuteUnary(inst, 0b00100, size, zdn, rm)
}

// InsrV is Insr with a SIMD&FP scalar source.
func (e *Emitter) InsrV(size ElementSize, zdn ZRegister, vm VRegister) {
	e.permuteUnary("insr", 0b10100, size, zdn, vm)
}

// Cpy copies a general register (or SP) to the active elements of zd.
func (e *Emitter) Cpy(size ElementSize, zd ZRegister, pg PRegisterMerge, rn Register) {
	const inst = "cpy"
	if !e.check(inst, elementReg(size, rn)) {
		return
	}
	e.permuteVector(inst, 0b01000, 1, size, zd, pg, rn)
}

// CpyV copies a SIMD&FP scalar to the active elements of zd.
func (e *Emitter) CpyV(size ElementSize, zd ZRegister, pg PRegisterMerge, vn VRegister) {
	e.permuteVector("cpy", 0b00000, 0, size, zd, pg, vn)
}

// Movprfx copies zn to zd and hints that the next instruction is destructive
// on zd.
func (e *Emitter) Movprfx(zd, zn ZRegister) {
	e.vectors("movprfx", opMiscUnpred, 0b11, Element8, zd, zn, Z0)
}

// MovprfxMerge is the predicated Movprfx keeping inactive elements of zd.
func (e *Emitter) MovprfxMerge(size ElementSize, zd ZRegister, pg PRegisterMerge, zn ZRegister) {
	e.unary("movprfx", opMovprfxPred, 1, size, zd, pg, zn)
}

// MovprfxZero is the predicated Movprfx zeroing inactive elements of zd.
func (e *Emitter) MovprfxZero(size ElementSize, zd ZRegister, pg PRegisterZero, zn ZRegister) {
	e.unary("movprfx", opMovprfxPred, 0, size, zd, pg, zn)
}

// Tbl gathers elements of zn indexed by zm.
func (e *Emitter) Tbl(size ElementSize, zd, zn, zm ZRegister) {
	e.vectors("tbl", opTbl, 0, size, zd, zn, zm)
}

// Tbx is Tbl keeping the destination element for out of range indices.
func (e *Emitter) Tbx(size ElementSize, zd, zn, zm ZRegister) {
	const inst = "tbx"
	if !e.check(inst, e.require(features.SVE2)) {
		return
	}
	e.vectors(inst, opTbx, 0, size, zd, zn, zm)
}

// Permute vector elements.
func (e *Emitter) Zip1(size ElementSize, zd, zn, zm ZRegister) {
	e.vectors("zip1", opPermute, 0b000, size, zd, zn, zm)
}

func (e *Emitter) Zip2(size ElementSize, zd, zn, zm ZRegister) {
	e.vectors("zip2", opPermute, 0b001, size, zd, zn, zm)
}

func (e *Emitter) Uzp1(size ElementSize, zd, zn, zm ZRegister) {
	e.vectors("uzp1", opPermute, 0b010, size, zd, zn, zm)
}

func (e *Emitter) Uzp2(size ElementSize, zd, zn, zm ZRegister) {
	e.vectors("uzp2", opPermute, 0b011, size, zd, zn, zm)
}

func (e *Emitter) Trn1(size ElementSize, zd, zn, zm ZRegister) {
	e.vectors("trn1", opPermute, 0b100, size, zd, zn, zm)
}

func (e *Emitter) Trn2(size ElementSize, zd, zn, zm ZRegister) {
	e.vectors("trn2", opPermute, 0b101, size, zd, zn, zm)
}

// Rev reverses the order of the elements of zn.
func (e *Emitter) Rev(size ElementSize, zd, zn ZRegister) {
	e.permuteUnary("rev", 0b11000, size, zd, zn)
}

// Sunpklo sign-extends the low half of zn into elements of the given (wide) size.
func (e *Emitter) Sunpklo(size ElementSize, zd, zn ZRegister) {
	e.unpack("sunpklo", 0b10000, size, zd, zn)
}

func (e *Emitter) Sunpkhi(size ElementSize, zd, zn ZRegister) {
	e.unpack("sunpkhi", 0b10001, size, zd, zn)
}

func (e *Emitter) Uunpklo(size ElementSize, zd, zn ZRegister) {
	e.unpack("uunpklo", 0b10010, size, zd, zn)
}

func (e *Emitter) Uunpkhi(size ElementSize, zd, zn ZRegister) {
	e.unpack("uunpkhi", 0b10011, size, zd, zn)
}

func (e *Emitter) unpack(inst string, opc uint32, size ElementSize, zd, zn ZRegister) {
	if !e.check(inst, sizeWide(size)) {
		return
	}
	e.permuteUnary(inst, opc, size, zd, zn)
}

// Compact packs the active elements of zn into the lowest elements of zd.
func (e *Emitter) Compact(size ElementSize, zd ZRegister, pg PRegister, zn ZRegister) {
	const inst = "compact"
	if !e.check(inst, sizeIn(size, Element32, Element64)) {
		return
	}
	e.permuteVector(inst, 0b00001, 0, size, zd, pg, zn)
}

// SpliceConstructive splices the active segment of zn with the consecutive
// register zn2.
func (e *Emitter) SpliceConstructive(size ElementSize, zd ZRegister, pg PRegister, zn, zn2 ZRegister) {
	const inst = "splice"
	if !e.check(inst, e.require(features.SVE2), zregs(zn2), sequential(zn, zn2)) {
		return
	}
	e.permuteVector(inst, 0b01101, 0, size, zd, pg, zn)
}

// SpliceDestructive splices the active segment of zdn with zm.
func (e *Emitter) SpliceDestructive(size ElementSize, zd ZRegister, pg PRegister, zdn, zm ZRegister) {
	const inst = "splice"
	if !e.check(inst, zregs(zdn), aliased(zd, zdn, "zd", "zdn")) {
		return
	}
	e.permuteVector(inst, 0b01100, 0, size, zd, pg, zm)
}

// Lasta extracts the element after the last active one into a general register.
func (e *Emitter) Lasta(size ElementSize, rd Register, pg PRegister, zn ZRegister) {
	e.lastR("lasta", 0b00000, size, rd, pg, zn)
}

// Lastb extracts the last active element into a general register.
func (e *Emitter) Lastb(size ElementSize, rd Register, pg PRegister, zn ZRegister) {
	e.lastR("lastb", 0b00001, size, rd, pg, zn)
}

func (e *Emitter) lastR(inst string, opc uint32, size ElementSize, rd Register, pg PRegister, zn ZRegister) {
	if !e.check(inst, elementReg(size, rd)) {
		return
	}
	e.permuteVector(inst, opc, 1, size, rd, pg, zn)
}

func (e *Emitter) LastaV(size ElementSize, vd VRegister, pg PRegister, zn ZRegister) {
	e.permuteVector("lasta", 0b00010, 0, size, vd, pg, zn)
}

func (e *Emitter) LastbV(size ElementSize, vd VRegister, pg PRegister, zn ZRegister) {
	e.permuteVector("lastb", 0b00011, 0, size, vd, pg, zn)
}

// Revb reverses the bytes within each active element.
func (e *Emitter) Revb(size ElementSize, zd ZRegister, pg PRegisterMerge, zn ZRegister) {
	e.reverseWithin("revb", 0b00100, size, zd, pg, zn, Element16, Element32, Element64)
}

// Revh reverses the halfwords within each active element.
func (e *Emitter) Revh(size ElementSize, zd ZRegister, pg PRegisterMerge, zn ZRegister) {
	e.reverseWithin("revh", 0b00101, size, zd, pg, zn, Element32, Element64)
}

// Revw reverses the words within each active element.
func (e *Emitter) Revw(size ElementSize, zd ZRegister, pg PRegisterMerge, zn ZRegister) {
	e.reverseWithin("revw", 0b00110, size, zd, pg, zn, Element64)
}

// Rbit reverses the bits within each active element.
func (e *Emitter) Rbit(size ElementSize, zd ZRegister, pg PRegisterMerge, zn ZRegister) {
	e.reverseWithin("rbit", 0b00111, size, zd, pg, zn, Element8, Element16, Element32, Element64)
}

func (e *Emitter) reverseWithin(inst string, opc uint32, size ElementSize, zd ZRegister, pg PRegisterMerge, zn ZRegister, allowed ...ElementSize) {
	if !e.check(inst, sizeIn(size, allowed...)) {
		return
	}
	e.permuteVector(inst, opc, 0, size, zd, pg, zn)
}

// Clasta conditionally broadcasts the element after the last active element of
// zm to zdn.
func (e *Emitter) Clasta(size ElementSize, zd ZRegister, pg PRegister, zdn, zm ZRegister) {
	e.conditionalExtract("clasta", 0b01000, 0, size, zd, pg, zdn, zm)
}

// Clastb conditionally broadcasts the last active element of zm to zdn.
func (e *Emitter) Clastb(size ElementSize, zd ZRegister, pg PRegister, zdn, zm ZRegister) {
	e.conditionalExtract("clastb", 0b01001, 0, size, zd, pg, zdn, zm)
}

func (e *Emitter) ClastaV(size ElementSize, vd VRegister, pg PRegister, vdn VRegister, zm ZRegister) {
	e.conditionalExtract("clasta", 0b01010, 0, size, vd, pg, vdn, zm)
}

func (e *Emitter) ClastbV(size ElementSize, vd VRegister, pg PRegister, vdn VRegister, zm ZRegister) {
	e.conditionalExtract("clastb", 0b01011, 0, size, vd, pg, vdn, zm)
}

func (e *Emitter) ClastaR(size ElementSize, rd Register, pg PRegister, rdn Register, zm ZRegister) {
	const inst = "clasta"
	if !e.check(inst, elementReg(size, rd)) {
		return
	}
	e.conditionalExtract(inst, 0b10000, 1, size, rd, pg, rdn, zm)
}

func (e *Emitter) ClastbR(size ElementSize, rd Register, pg PRegister, rdn Register, zm ZRegister) {
	const inst = "clastb"
	if !e.check(inst, elementReg(size, rd)) {
		return
	}
	e.conditionalExtract(inst, 0b10001, 1, size, rd, pg, rdn, zm)
}

// conditionalExtract encodes the CLAST forms, whose first source is the
// destination.
func (e *Emitter) conditionalExtract(inst string, opc1, opc2 uint32, size ElementSize, d, pg, dn register, zm ZRegister) {
	if !e.check(inst, regs(dn), aliased(d, dn, "destination", "first source")) {
		return
	}
	e.permuteVector(inst, opc1, opc2, size, d, pg, zm)
}

// ExtConstructive extracts a vector from the pair zn:zn2 starting at byte imm.
func (e *Emitter) ExtConstructive(zd, zn, zn2 ZRegister, imm uint32) {
	const inst = "ext"
	if !e.check(inst, e.require(features.SVE2), zregs(zn, zn2), sequential(zn, zn2)) {
		return
	}
	e.extract(inst, 1, zd, zn, imm)
}

// ExtDestructive extracts a vector from the pair zdn:zm starting at byte imm.
func (e *Emitter) ExtDestructive(zd, zdn, zm ZRegister, imm uint32) {
	const inst = "ext"
	if !e.check(inst, zregs(zdn), aliased(zd, zdn, "zd", "zdn")) {
		return
	}
	e.extract(inst, 0, zd, zm, imm)
}
