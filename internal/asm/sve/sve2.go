package sve

import "github.com/tetratelabs/sveasm/internal/features"

// sve2Vectors gates an unpredicated three-vector SVE2 instruction.
func (e *Emitter) sve2Vectors(inst string, op, opc uint32, size ElementSize, zd, zn, zm ZRegister, allowed ...ElementSize) {
	if !e.check(inst, e.require(features.SVE2), sizeIn(size, allowed...)) {
		return
	}
	e.vectors(inst, op, opc, size, zd, zn, zm)
}

// sve2Destructive gates a predicated destructive SVE2 instruction.
func (e *Emitter) sve2Destructive(inst string, op, opc uint32, size ElementSize, zd ZRegister, pg PRegisterMerge, zdn, zm ZRegister) {
	if !e.check(inst, e.require(features.SVE2)) {
		return
	}
	e.destructive(inst, op, opc, size, zd, pg, zdn, zm)
}

var allSizes = []ElementSize{Element8, Element16, Element32, Element64}

// Histcnt counts, for each active element of zn, the matching active elements
// of zm up to the same position.
func (e *Emitter) Histcnt(size ElementSize, zd ZRegister, pg PRegisterZero, zn, zm ZRegister) {
	const inst = "histcnt"
	if !e.check(inst, e.require(features.SVE2), sizeIn(size, Element32, Element64)) {
		return
	}
	e.ternary(inst, opHistcnt, 0, size, zd, pg, zn, zm)
}

// Histseg counts, for each byte of zn, the matching bytes in the corresponding
// 128-bit segment of zm.
func (e *Emitter) Histseg(zd, zn, zm ZRegister) {
	e.sve2Vectors("histseg", opHistseg, 0, Element8, zd, zn, zm, Element8)
}

// Integer multiplies, unpredicated.

func (e *Emitter) Mul(size ElementSize, zd, zn, zm ZRegister) {
	e.sve2Vectors("mul", opMulVectors, 0b000, size, zd, zn, zm, allSizes...)
}

// Pmul is a polynomial multiply of 8-bit elements.
func (e *Emitter) Pmul(size ElementSize, zd, zn, zm ZRegister) {
	e.sve2Vectors("pmul", opMulVectors, 0b001, size, zd, zn, zm, Element8)
}

func (e *Emitter) Smulh(size ElementSize, zd, zn, zm ZRegister) {
	e.sve2Vectors("smulh", opMulVectors, 0b010, size, zd, zn, zm, allSizes...)
}

func (e *Emitter) Umulh(size ElementSize, zd, zn, zm ZRegister) {
	e.sve2Vectors("umulh", opMulVectors, 0b011, size, zd, zn, zm, allSizes...)
}

func (e *Emitter) Sqdmulh(size ElementSize, zd, zn, zm ZRegister) {
	e.sve2Vectors("sqdmulh", opMulVectors, 0b100, size, zd, zn, zm, allSizes...)
}

func (e *Emitter) Sqrdmulh(size ElementSize, zd, zn, zm ZRegister) {
	e.sve2Vectors("sqrdmulh", opMulVectors, 0b101, size, zd, zn, zm, allSizes...)
}

// Halving add and subtract, predicated.

func (e *Emitter) Shadd(size ElementSize, zd ZRegister, pg PRegisterMerge, zdn, zm ZRegister) {
	e.sve2Destructive("shadd", opHalving, 0b000, size, zd, pg, zdn, zm)
}

func (e *Emitter) Uhadd(size ElementSize, zd ZRegister, pg PRegisterMerge, zdn, zm ZRegister) {
	e.sve2Destructive("uhadd", opHalving, 0b001, size, zd, pg, zdn, zm)
}

func (e *Emitter) Shsub(size ElementSize, zd ZRegister, pg PRegisterMerge, zdn, zm ZRegister) {
	e.sve2Destructive("shsub", opHalving, 0b010, size, zd, pg, zdn, zm)
}

func (e *Emitter) Uhsub(size ElementSize, zd ZRegister, pg PRegisterMerge, zdn, zm ZRegister) {
	e.sve2Destructive("uhsub", opHalving, 0b011, size, zd, pg, zdn, zm)
}

func (e *Emitter) Srhadd(size ElementSize, zd ZRegister, pg PRegisterMerge, zdn, zm ZRegister) {
	e.sve2Destructive("srhadd", opHalving, 0b100, size, zd, pg, zdn, zm)
}

func (e *Emitter) Urhadd(size ElementSize, zd ZRegister, pg PRegisterMerge, zdn, zm ZRegister) {
	e.sve2Destructive("urhadd", opHalving, 0b101, size, zd, pg, zdn, zm)
}

func (e *Emitter) Shsubr(size ElementSize, zd ZRegister, pg PRegisterMerge, zdn, zm ZRegister) {
	e.sve2Destructive("shsubr", opHalving, 0b110, size, zd, pg, zdn, zm)
}

func (e *Emitter) Uhsubr(size ElementSize, zd ZRegister, pg PRegisterMerge, zdn, zm ZRegister) {
	e.sve2Destructive("uhsubr", opHalving, 0b111, size, zd, pg, zdn, zm)
}

// Pairwise operations, predicated.

func (e *Emitter) Addp(size ElementSize, zd ZRegister, pg PRegisterMerge, zdn, zm ZRegister) {
	e.sve2Destructive("addp", opPairwise, 0b001, size, zd, pg, zdn, zm)
}

func (e *Emitter) Smaxp(size ElementSize, zd ZRegister, pg PRegisterMerge, zdn, zm ZRegister) {
	e.sve2Destructive("smaxp", opPairwise, 0b100, size, zd, pg, zdn, zm)
}

func (e *Emitter) Umaxp(size ElementSize, zd ZRegister, pg PRegisterMerge, zdn, zm ZRegister) {
	e.sve2Destructive("umaxp", opPairwise, 0b101, size, zd, pg, zdn, zm)
}

func (e *Emitter) Sminp(size ElementSize, zd ZRegister, pg PRegisterMerge, zdn, zm ZRegister) {
	e.sve2Destructive("sminp", opPairwise, 0b110, size, zd, pg, zdn, zm)
}

func (e *Emitter) Uminp(size ElementSize, zd ZRegister, pg PRegisterMerge, zdn, zm ZRegister) {
	e.sve2Destructive("uminp", opPairwise, 0b111, size, zd, pg, zdn, zm)
}

// Saturating add and subtract, predicated.

func (e *Emitter) SqaddPred(size ElementSize, zd ZRegister, pg PRegisterMerge, zdn, zm ZRegister) {
	e.sve2Destructive("sqadd", opSaturatingPred, 0b000, size, zd, pg, zdn, zm)
}

func (e *Emitter) UqaddPred(size ElementSize, zd ZRegister, pg PRegisterMerge, zdn, zm ZRegister) {
	e.sve2Destructive("uqadd", opSaturatingPred, 0b001, size, zd, pg, zdn, zm)
}

func (e *Emitter) SqsubPred(size ElementSize, zd ZRegister, pg PRegisterMerge, zdn, zm ZRegister) {
	e.sve2Destructive("sqsub", opSaturatingPred, 0b010, size, zd, pg, zdn, zm)
}

func (e *Emitter) UqsubPred(size ElementSize, zd ZRegister, pg PRegisterMerge, zdn, zm ZRegister) {
	e.sve2Destructive("uqsub", opSaturatingPred, 0b011, size, zd, pg, zdn, zm)
}

// Suqadd adds unsigned zm to signed zdn with signed saturation.
func (e *Emitter) Suqadd(size ElementSize, zd ZRegister, pg PRegisterMerge, zdn, zm ZRegister) {
	e.sve2Destructive("suqadd", opSaturatingPred, 0b100, size, zd, pg, zdn, zm)
}

// Usqadd adds signed zm to unsigned zdn with unsigned saturation.
func (e *Emitter) Usqadd(size ElementSize, zd ZRegister, pg PRegisterMerge, zdn, zm ZRegister) {
	e.sve2Destructive("usqadd", opSaturatingPred, 0b101, size, zd, pg, zdn, zm)
}

func (e *Emitter) Sqsubr(size ElementSize, zd ZRegister, pg PRegisterMerge, zdn, zm ZRegister) {
	e.sve2Destructive("sqsubr", opSaturatingPred, 0b110, size, zd, pg, zdn, zm)
}

func (e *Emitter) Uqsubr(size ElementSize, zd ZRegister, pg PRegisterMerge, zdn, zm ZRegister) {
	e.sve2Destructive("uqsubr", opSaturatingPred, 0b111, size, zd, pg, zdn, zm)
}

// Widening add, subtract and absolute difference. size is the destination
// element size; the sources are the even (B) or odd (T) elements of half the
// width.
//
// https://developer.arm.com/documentation/ddi0602/2022-09/Index-by-Encoding/SVE-encodings#sve_int_bin_cons_widening_arit

func (e *Emitter) Saddlb(size ElementSize, zd, zn, zm ZRegister) {
	e.sve2Vectors("saddlb", opAddSubLong, 0b0000, size, zd, zn, zm, Element16, Element32, Element64)
}

func (e *Emitter) Saddlt(size ElementSize, zd, zn, zm ZRegister) {
	e.sve2Vectors("saddlt", opAddSubLong, 0b0001, size, zd, zn, zm, Element16, Element32, Element64)
}

func (e *Emitter) Uaddlb(size ElementSize, zd, zn, zm ZRegister) {
	e.sve2Vectors("uaddlb", opAddSubLong, 0b0010, size, zd, zn, zm, Element16, Element32, Element64)
}

func (e *Emitter) Uaddlt(size ElementSize, zd, zn, zm ZRegister) {
	e.sve2Vectors("uaddlt", opAddSubLong, 0b0011, size, zd, zn, zm, Element16, Element32, Element64)
}

func (e *Emitter) Ssublb(size ElementSize, zd, zn, zm ZRegister) {
	e.sve2Vectors("ssublb", opAddSubLong, 0b0100, size, zd, zn, zm, Element16, Element32, Element64)
}

func (e *Emitter) Ssublt(size ElementSize, zd, zn, zm ZRegister) {
	e.sve2Vectors("ssublt", opAddSubLong, 0b0101, size, zd, zn, zm, Element16, Element32, Element64)
}

func (e *Emitter) Usublb(size ElementSize, zd, zn, zm ZRegister) {
	e.sve2Vectors("usublb", opAddSubLong, 0b0110, size, zd, zn, zm, Element16, Element32, Element64)
}

func (e *Emitter) Usublt(size ElementSize, zd, zn, zm ZRegister) {
	e.sve2Vectors("usublt", opAddSubLong, 0b0111, size, zd, zn, zm, Element16, Element32, Element64)
}

func (e *Emitter) Sabdlb(size ElementSize, zd, zn, zm ZRegister) {
	e.sve2Vectors("sabdlb", opAddSubLong, 0b1100, size, zd, zn, zm, Element16, Element32, Element64)
}

func (e *Emitter) Sabdlt(size ElementSize, zd, zn, zm ZRegister) {
	e.sve2Vectors("sabdlt", opAddSubLong, 0b1101, size, zd, zn, zm, Element16, Element32, Element64)
}

func (e *Emitter) Uabdlb(size ElementSize, zd, zn, zm ZRegister) {
	e.sve2Vectors("uabdlb", opAddSubLong, 0b1110, size, zd, zn, zm, Element16, Element32, Element64)
}

func (e *Emitter) Uabdlt(size ElementSize, zd, zn, zm ZRegister) {
	e.sve2Vectors("uabdlt", opAddSubLong, 0b1111, size, zd, zn, zm, Element16, Element32, Element64)
}

// Widening multiplies. size is the destination element size.

func (e *Emitter) Sqdmullb(size ElementSize, zd, zn, zm ZRegister) {
	e.sve2Vectors("sqdmullb", opMulLong, 0b000, size, zd, zn, zm, Element16, Element32, Element64)
}

func (e *Emitter) Sqdmullt(size ElementSize, zd, zn, zm ZRegister) {
	e.sve2Vectors("sqdmullt", opMulLong, 0b001, size, zd, zn, zm, Element16, Element32, Element64)
}

// Pmullb is a polynomial multiply of the even elements. 64-bit destinations
// take 32-bit sources; the 128-bit destination form is not supported.
func (e *Emitter) Pmullb(size ElementSize, zd, zn, zm ZRegister) {
	e.sve2Vectors("pmullb", opMulLong, 0b010, size, zd, zn, zm, Element16, Element64)
}

func (e *Emitter) Pmullt(size ElementSize, zd, zn, zm ZRegister) {
	e.sve2Vectors("pmullt", opMulLong, 0b011, size, zd, zn, zm, Element16, Element64)
}

func (e *Emitter) Smullb(size ElementSize, zd, zn, zm ZRegister) {
	e.sve2Vectors("smullb", opMulLong, 0b100, size, zd, zn, zm, Element16, Element32, Element64)
}

func (e *Emitter) Smullt(size ElementSize, zd, zn, zm ZRegister) {
	e.sve2Vectors("smullt", opMulLong, 0b101, size, zd, zn, zm, Element16, Element32, Element64)
}

func (e *Emitter) Umullb(size ElementSize, zd, zn, zm ZRegister) {
	e.sve2Vectors("umullb", opMulLong, 0b110, size, zd, zn, zm, Element16, Element32, Element64)
}

func (e *Emitter) Umullt(size ElementSize, zd, zn, zm ZRegister) {
	e.sve2Vectors("umullt", opMulLong, 0b111, size, zd, zn, zm, Element16, Element32, Element64)
}

// Widening shifts left. size is the destination element size and shift must be
// below the source element width.

func (e *Emitter) Sshllb(size ElementSize, zd, zn ZRegister, shift uint32) {
	e.shiftLeftLong("sshllb", 0b00, size, zd, zn, shift)
}

func (e *Emitter) Sshllt(size ElementSize, zd, zn ZRegister, shift uint32) {
	e.shiftLeftLong("sshllt", 0b01, size, zd, zn, shift)
}

func (e *Emitter) Ushllb(size ElementSize, zd, zn ZRegister, shift uint32) {
	e.shiftLeftLong("ushllb", 0b10, size, zd, zn, shift)
}

func (e *Emitter) Ushllt(size ElementSize, zd, zn ZRegister, shift uint32) {
	e.shiftLeftLong("ushllt", 0b11, size, zd, zn, shift)
}

// Interleaving widening add and subtract.

func (e *Emitter) Saddlbt(size ElementSize, zd, zn, zm ZRegister) {
	e.sve2Vectors("saddlbt", opInterleavedLong, 0b00, size, zd, zn, zm, Element16, Element32, Element64)
}

func (e *Emitter) Ssublbt(size ElementSize, zd, zn, zm ZRegister) {
	e.sve2Vectors("ssublbt", opInterleavedLong, 0b10, size, zd, zn, zm, Element16, Element32, Element64)
}

func (e *Emitter) Ssubltb(size ElementSize, zd, zn, zm ZRegister) {
	e.sve2Vectors("ssubltb", opInterleavedLong, 0b11, size, zd, zn, zm, Element16, Element32, Element64)
}

// Eorbt writes zn ^ zm of the even elements to the even elements of zd.
func (e *Emitter) Eorbt(size ElementSize, zd, zn, zm ZRegister) {
	e.sve2Vectors("eorbt", opXorInterleaved, 0, size, zd, zn, zm, allSizes...)
}

// Eortb writes zn ^ zm of the odd elements to the odd elements of zd.
func (e *Emitter) Eortb(size ElementSize, zd, zn, zm ZRegister) {
	e.sve2Vectors("eortb", opXorInterleaved, 1, size, zd, zn, zm, allSizes...)
}

// Int8 matrix multiply-accumulate into 32-bit elements.

func (e *Emitter) Smmla(zda, zn, zm ZRegister) {
	e.matrixMultiply("smmla", 0b00, zda, zn, zm)
}

func (e *Emitter) Usmmla(zda, zn, zm ZRegister) {
	e.matrixMultiply("usmmla", 0b10, zda, zn, zm)
}

func (e *Emitter) Ummla(zda, zn, zm ZRegister) {
	e.matrixMultiply("ummla", 0b11, zda, zn, zm)
}

func (e *Emitter) matrixMultiply(inst string, opc uint32, zda, zn, zm ZRegister) {
	if !e.check(inst, e.require(features.I8MM), zregs(zda, zn, zm)) {
		return
	}
	e.emit(inst, opMatMul|opc<<22|zm.Index()<<16|zn.Index()<<5|zda.Index())
}

// Bit permutation, SVE2 BitPerm extension.

// Bext gathers the bits of zn selected by the mask zm into the low bits.
func (e *Emitter) Bext(size ElementSize, zd, zn, zm ZRegister) {
	e.bitPermute("bext", 0b00, size, zd, zn, zm)
}

// Bdep scatters the low bits of zn to the positions selected by the mask zm.
func (e *Emitter) Bdep(size ElementSize, zd, zn, zm ZRegister) {
	e.bitPermute("bdep", 0b01, size, zd, zn, zm)
}

// Bgrp groups the bits of zn selected by zm at the bottom, the others at the top.
func (e *Emitter) Bgrp(size ElementSize, zd, zn, zm ZRegister) {
	e.bitPermute("bgrp", 0b10, size, zd, zn, zm)
}

func (e *Emitter) bitPermute(inst string, opc uint32, size ElementSize, zd, zn, zm ZRegister) {
	if !e.check(inst, e.require(features.SVE2|features.BitPerm)) {
		return
	}
	e.vectors(inst, opBitPermute, opc, size, zd, zn, zm)
}

// Cadd adds the complex numbers of zm, rotated by 90 or 270 degrees, to zdn.
func (e *Emitter) Cadd(size ElementSize, zd, zdn, zm ZRegister, rot Rotation) {
	e.complexAdd("cadd", 0, size, zd, zdn, zm, rot)
}

// Sqcadd is Cadd with signed saturation.
func (e *Emitter) Sqcadd(size ElementSize, zd, zdn, zm ZRegister, rot Rotation) {
	e.complexAdd("sqcadd", 1, size, zd, zdn, zm, rot)
}

func (e *Emitter) complexAdd(inst string, op uint32, size ElementSize, zd, zdn, zm ZRegister, rot Rotation) {
	r, err := complexRotation(rot)
	if !e.check(inst,
		e.require(features.SVE2),
		err,
		sizeNot128(size),
		zregs(zd, zdn, zm),
		aliased(zd, zdn, "zd", "zdn"),
	) {
		return
	}
	e.emit(inst, opComplexAdd|uint32(size)<<22|op<<16|r<<10|zm.Index()<<5|zd.Index())
}

// Widening absolute difference and accumulate. size is the destination element
// size.

func (e *Emitter) Sabalb(size ElementSize, zda, zn, zm ZRegister) {
	e.sve2Vectors("sabalb", opAbsDiffAccLong, 0b00, size, zda, zn, zm, Element16, Element32, Element64)
}

func (e *Emitter) Sabalt(size ElementSize, zda, zn, zm ZRegister) {
	e.sve2Vectors("sabalt", opAbsDiffAccLong, 0b01, size, zda, zn, zm, Element16, Element32, Element64)
}

func (e *Emitter) Uabalb(size ElementSize, zda, zn, zm ZRegister) {
	e.sve2Vectors("uabalb", opAbsDiffAccLong, 0b10, size, zda, zn, zm, Element16, Element32, Element64)
}

func (e *Emitter) Uabalt(size ElementSize, zda, zn, zm ZRegister) {
	e.sve2Vectors("uabalt", opAbsDiffAccLong, 0b11, size, zda, zn, zm, Element16, Element32, Element64)
}

// Add and subtract with carry, long. The carry in and out is bit 0 of the odd
// element of each pair.

func (e *Emitter) Adclb(size ElementSize, zda, zn, zm ZRegister) {
	e.carry("adclb", 0, 0, size, zda, zn, zm)
}

func (e *Emitter) Adclt(size ElementSize, zda, zn, zm ZRegister) {
	e.carry("adclt", 0, 1, size, zda, zn, zm)
}

func (e *Emitter) Sbclb(size ElementSize, zda, zn, zm ZRegister) {
	e.carry("sbclb", 1, 0, size, zda, zn, zm)
}

func (e *Emitter) Sbclt(size ElementSize, zda, zn, zm ZRegister) {
	e.carry("sbclt", 1, 1, size, zda, zn, zm)
}

// carry encodes op | S<23> | sz<22> | zm<20:16> | T<10> | zn<9:5> | zda<4:0>.
func (e *Emitter) carry(inst string, s, t uint32, size ElementSize, zda, zn, zm ZRegister) {
	if !e.check(inst,
		e.require(features.SVE2),
		sizeIn(size, Element32, Element64),
		zregs(zda, zn, zm),
	) {
		return
	}
	var sz uint32
	if size == Element64 {
		sz = 1
	}
	e.emit(inst, opCarry|s<<23|sz<<22|zm.Index()<<16|t<<10|zn.Index()<<5|zda.Index())
}

// Shift right and accumulate.

func (e *Emitter) Ssra(size ElementSize, zda, zn ZRegister, shift uint32) {
	e.sve2ShiftImm("ssra", opShiftAcc, 0b00, false, size, zda, zn, shift)
}

func (e *Emitter) Usra(size ElementSize, zda, zn ZRegister, shift uint32) {
	e.sve2ShiftImm("usra", opShiftAcc, 0b01, false, size, zda, zn, shift)
}

func (e *Emitter) Srsra(size ElementSize, zda, zn ZRegister, shift uint32) {
	e.sve2ShiftImm("srsra", opShiftAcc, 0b10, false, size, zda, zn, shift)
}

func (e *Emitter) Ursra(size ElementSize, zda, zn ZRegister, shift uint32) {
	e.sve2ShiftImm("ursra", opShiftAcc, 0b11, false, size, zda, zn, shift)
}

// Sri shifts zn right and inserts it into zd, keeping the high bits of zd.
func (e *Emitter) Sri(size ElementSize, zd, zn ZRegister, shift uint32) {
	e.sve2ShiftImm("sri", opShiftInsert, 0, false, size, zd, zn, shift)
}

// Sli shifts zn left and inserts it into zd, keeping the low bits of zd.
func (e *Emitter) Sli(size ElementSize, zd, zn ZRegister, shift uint32) {
	e.sve2ShiftImm("sli", opShiftInsert, 1, true, size, zd, zn, shift)
}

func (e *Emitter) sve2ShiftImm(inst string, op, opc uint32, left bool, size ElementSize, zd, zn ZRegister, shift uint32) {
	if !e.check(inst, e.require(features.SVE2)) {
		return
	}
	e.shiftImm(inst, op, opc, left, size, zd, zn, shift)
}

// Saba adds the absolute difference of zn and zm to zda.
func (e *Emitter) Saba(size ElementSize, zda, zn, zm ZRegister) {
	e.sve2Vectors("saba", opAbsDiffAcc, 0, size, zda, zn, zm, allSizes...)
}

func (e *Emitter) Uaba(size ElementSize, zda, zn, zm ZRegister) {
	e.sve2Vectors("uaba", opAbsDiffAcc, 1, size, zda, zn, zm, allSizes...)
}

// Saturating extract narrow. size is the destination element size.

func (e *Emitter) Sqxtnb(size ElementSize, zd, zn ZRegister) {
	e.extractNarrow("sqxtnb", 0b000, size, zd, zn)
}

func (e *Emitter) Sqxtnt(size ElementSize, zd, zn ZRegister) {
	e.extractNarrow("sqxtnt", 0b001, size, zd, zn)
}

func (e *Emitter) Uqxtnb(size ElementSize, zd, zn ZRegister) {
	e.extractNarrow("uqxtnb", 0b010, size, zd, zn)
}

func (e *Emitter) Uqxtnt(size ElementSize, zd, zn ZRegister) {
	e.extractNarrow("uqxtnt", 0b011, size, zd, zn)
}

func (e *Emitter) Sqxtunb(size ElementSize, zd, zn ZRegister) {
	e.extractNarrow("sqxtunb", 0b100, size, zd, zn)
}

func (e *Emitter) Sqxtunt(size ElementSize, zd, zn ZRegister) {
	e.extractNarrow("sqxtunt", 0b101, size, zd, zn)
}

// extractNarrow reuses the right shift codec: a shift by the full destination
// width leaves only the size marker in tszh:tszl.
func (e *Emitter) extractNarrow(inst string, opc uint32, size ElementSize, zd, zn ZRegister) {
	if !e.check(inst, e.require(features.SVE2), sizeNarrow(size)) {
		return
	}
	e.shiftImm(inst, opExtractNarrow, opc, false, size, zd, zn, size.Bits())
}

// Shift right narrow. size is the destination element size, shift is within
// [1, bits of size].

func (e *Emitter) Sqshrunb(size ElementSize, zd, zn ZRegister, shift uint32) {
	e.shiftNarrow("sqshrunb", 0b0000, size, zd, zn, shift)
}

func (e *Emitter) Sqshrunt(size ElementSize, zd, zn ZRegister, shift uint32) {
	e.shiftNarrow("sqshrunt", 0b0001, size, zd, zn, shift)
}

func (e *Emitter) Sqrshrunb(size ElementSize, zd, zn ZRegister, shift uint32) {
	e.shiftNarrow("sqrshrunb", 0b0010, size, zd, zn, shift)
}

func (e *Emitter) Sqrshrunt(size ElementSize, zd, zn ZRegister, shift uint32) {
	e.shiftNarrow("sqrshrunt", 0b0011, size, zd, zn, shift)
}

func (e *Emitter) Shrnb(size ElementSize, zd, zn ZRegister, shift uint32) {
	e.shiftNarrow("shrnb", 0b0100, size, zd, zn, shift)
}

func (e *Emitter) Shrnt(size ElementSize, zd, zn ZRegister, shift uint32) {
	e.shiftNarrow("shrnt", 0b0101, size, zd, zn, shift)
}

func (e *Emitter) Rshrnb(size ElementSize, zd, zn ZRegister, shift uint32) {
	e.shiftNarrow("rshrnb", 0b0110, size, zd, zn, shift)
}

func (e *Emitter) Rshrnt(size ElementSize, zd, zn ZRegister, shift uint32) {
	e.shiftNarrow("rshrnt", 0b0111, size, zd, zn, shift)
}

func (e *Emitter) Sqshrnb(size ElementSize, zd, zn ZRegister, shift uint32) {
	e.shiftNarrow("sqshrnb", 0b1000, size, zd, zn, shift)
}

func (e *Emitter) Sqshrnt(size ElementSize, zd, zn ZRegister, shift uint32) {
	e.shiftNarrow("sqshrnt", 0b1001, size, zd, zn, shift)
}

func (e *Emitter) Sqrshrnb(size ElementSize, zd, zn ZRegister, shift uint32) {
	e.shiftNarrow("sqrshrnb", 0b1010, size, zd, zn, shift)
}

func (e *Emitter) Sqrshrnt(size ElementSize, zd, zn ZRegister, shift uint32) {
	e.shiftNarrow("sqrshrnt", 0b1011, size, zd, zn, shift)
}

func (e *Emitter) Uqshrnb(size ElementSize, zd, zn ZRegister, shift uint32) {
	e.shiftNarrow("uqshrnb", 0b1100, size, zd, zn, shift)
}

func (e *Emitter) Uqshrnt(size ElementSize, zd, zn ZRegister, shift uint32) {
	e.shiftNarrow("uqshrnt", 0b1101, size, zd, zn, shift)
}

func (e *Emitter) Uqrshrnb(size ElementSize, zd, zn ZRegister, shift uint32) {
	e.shiftNarrow("uqrshrnb", 0b1110, size, zd, zn, shift)
}

func (e *Emitter) Uqrshrnt(size ElementSize, zd, zn ZRegister, shift uint32) {
	e.shiftNarrow("uqrshrnt", 0b1111, size, zd, zn, shift)
}

func (e *Emitter) shiftNarrow(inst string, opc uint32, size ElementSize, zd, zn ZRegister, shift uint32) {
	if !e.check(inst, e.require(features.SVE2), sizeNarrow(size)) {
		return
	}
	e.shiftImm(inst, opShiftNarrow, opc, false, size, zd, zn, shift)
}

// Add and subtract narrow high part. size is the destination element size.

func (e *Emitter) Addhnb(size ElementSize, zd, zn, zm ZRegister) {
	e.addSubNarrow("addhnb", 0b000, size, zd, zn, zm)
}

func (e *Emitter) Addhnt(size ElementSize, zd, zn, zm ZRegister) {
	e.addSubNarrow("addhnt", 0b001, size, zd, zn, zm)
}

func (e *Emitter) Raddhnb(size ElementSize, zd, zn, zm ZRegister) {
	e.addSubNarrow("raddhnb", 0b010, size, zd, zn, zm)
}

func (e *Emitter) Raddhnt(size ElementSize, zd, zn, zm ZRegister) {
	e.addSubNarrow("raddhnt", 0b011, size, zd, zn, zm)
}

func (e *Emitter) Subhnb(size ElementSize, zd, zn, zm ZRegister) {
	e.addSubNarrow("subhnb", 0b100, size, zd, zn, zm)
}

func (e *Emitter) Subhnt(size ElementSize, zd, zn, zm ZRegister) {
	e.addSubNarrow("subhnt", 0b101, size, zd, zn, zm)
}

func (e *Emitter) Rsubhnb(size ElementSize, zd, zn, zm ZRegister) {
	e.addSubNarrow("rsubhnb", 0b110, size, zd, zn, zm)
}

func (e *Emitter) Rsubhnt(size ElementSize, zd, zn, zm ZRegister) {
	e.addSubNarrow("rsubhnt", 0b111, size, zd, zn, zm)
}

// addSubNarrow encodes the source element size, one step wider than size.
func (e *Emitter) addSubNarrow(inst string, opc uint32, size ElementSize, zd, zn, zm ZRegister) {
	if !e.check(inst, e.require(features.SVE2), sizeNarrow(size)) {
		return
	}
	e.vectors(inst, opAddSubNarrow, opc, size+1, zd, zn, zm)
}
