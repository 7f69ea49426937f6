package sve

import "github.com/tetratelabs/sveasm/internal/features"

// complexRotation returns the one-bit encoding of the rotations accepted by
// the complex add instructions.
func complexRotation(rot Rotation) (uint32, error) {
	switch rot {
	case Rotate90:
		return 0, nil
	case Rotate270:
		return 1, nil
	}
	return 0, invalidf("rotation %s must be #90 or #270", rot)
}

// FcmlaIndexed multiply-accumulates complex numbers of zn with the complex
// number at index of each 128-bit segment of zm. 16-bit elements take an index
// within [0, 3] and z0-z7, 32-bit elements an index within [0, 1] and z0-z15.
//
// https://developer.arm.com/documentation/ddi0602/2022-09/SVE-Instructions/FCMLA--indexed---Floating-point-complex-multiply-add-by-indexed-values-with-rotate-
func (e *Emitter) FcmlaIndexed(size ElementSize, zda, zn, zm ZRegister, index uint32, rot Rotation) {
	const inst = "fcmla"
	if !e.check(inst, sizeIn(size, Element16, Element32), zregs(zda, zn, zm)) {
		return
	}
	var sz, indexShift uint32 = 1, 20
	maxIndex, maxZm := int64(1), int64(15)
	if size == Element16 {
		sz, indexShift = 0, 19
		maxIndex, maxZm = 3, 7
	}
	if !e.check(inst,
		inRange("index", int64(index), 0, maxIndex),
		inRange("zm", int64(zm), 0, maxZm),
	) {
		return
	}
	e.emit(inst, opFcmlaIndexed|sz<<22|index<<indexShift|zm.Index()<<16|uint32(rot&0b11)<<10|zn.Index()<<5|zda.Index())
}

// Fcmla multiply-accumulates the complex numbers of zn and zm rotated by rot.
func (e *Emitter) Fcmla(size ElementSize, zda ZRegister, pg PRegisterMerge, zn, zm ZRegister, rot Rotation) {
	const inst = "fcmla"
	if !e.check(inst, sizeFloat(size)) {
		return
	}
	e.ternary(inst, opFcmla, uint32(rot&0b11), size, zda, pg, zn, zm)
}

// Fcadd adds the complex numbers of zm, rotated by 90 or 270 degrees, to zdn.
func (e *Emitter) Fcadd(size ElementSize, zd ZRegister, pg PRegisterMerge, zdn, zm ZRegister, rot Rotation) {
	const inst = "fcadd"
	r, err := complexRotation(rot)
	if !e.check(inst, sizeFloat(size), err) {
		return
	}
	e.destructive(inst, opFcadd, r, size, zd, pg, zdn, zm)
}

// Fcvtxnt narrows the 64-bit elements of zn to 32-bit with rounding to odd and
// writes them to the odd elements of zd.
func (e *Emitter) Fcvtxnt(zd ZRegister, pg PRegisterMerge, zn ZRegister) {
	const inst = "fcvtxnt"
	if !e.check(inst, e.require(features.SVE2)) {
		return
	}
	e.convert(inst, opFcvtOdd, 0b00, 0b10, zd, pg, zn)
}

// Fcvtnt narrows zn to elements of size written to the odd elements of zd.
// size is 16 (from 32-bit) or 32 (from 64-bit).
func (e *Emitter) Fcvtnt(size ElementSize, zd ZRegister, pg PRegisterMerge, zn ZRegister) {
	const inst = "fcvtnt"
	var opc, opc2 uint32
	switch size {
	case Element16:
		opc, opc2 = 0b10, 0b00
	case Element32:
		opc, opc2 = 0b11, 0b10
	}
	if !e.check(inst, e.require(features.SVE2), sizeIn(size, Element16, Element32)) {
		return
	}
	e.convert(inst, opFcvtOdd, opc, opc2, zd, pg, zn)
}

// Fcvtlt widens the odd elements of zn to elements of size. size is 32 (from
// 16-bit) or 64 (from 32-bit).
func (e *Emitter) Fcvtlt(size ElementSize, zd ZRegister, pg PRegisterMerge, zn ZRegister) {
	const inst = "fcvtlt"
	var opc, opc2 uint32
	switch size {
	case Element32:
		opc, opc2 = 0b10, 0b01
	case Element64:
		opc, opc2 = 0b11, 0b11
	}
	if !e.check(inst, e.require(features.SVE2), sizeIn(size, Element32, Element64)) {
		return
	}
	e.convert(inst, opFcvtOdd, opc, opc2, zd, pg, zn)
}

// SVE2 floating-point pairwise operations.

func (e *Emitter) Faddp(size ElementSize, zd ZRegister, pg PRegisterMerge, zdn, zm ZRegister) {
	e.floatPairwise("faddp", 0b000, size, zd, pg, zdn, zm)
}

func (e *Emitter) Fmaxnmp(size ElementSize, zd ZRegister, pg PRegisterMerge, zdn, zm ZRegister) {
	e.floatPairwise("fmaxnmp", 0b100, size, zd, pg, zdn, zm)
}

func (e *Emitter) Fminnmp(size ElementSize, zd ZRegister, pg PRegisterMerge, zdn, zm ZRegister) {
	e.floatPairwise("fminnmp", 0b101, size, zd, pg, zdn, zm)
}

func (e *Emitter) Fmaxp(size ElementSize, zd ZRegister, pg PRegisterMerge, zdn, zm ZRegister) {
	e.floatPairwise("fmaxp", 0b110, size, zd, pg, zdn, zm)
}

func (e *Emitter) Fminp(size ElementSize, zd ZRegister, pg PRegisterMerge, zdn, zm ZRegister) {
	e.floatPairwise("fminp", 0b111, size, zd, pg, zdn, zm)
}

func (e *Emitter) floatPairwise(inst string, opc uint32, size ElementSize, zd ZRegister, pg PRegisterMerge, zdn, zm ZRegister) {
	if !e.check(inst, e.require(features.SVE2), sizeFloat(size)) {
		return
	}
	e.destructive(inst, opFpPairwise, opc, size, zd, pg, zdn, zm)
}

// Floating-point compares of two vectors. The A forms compare absolute values.

func (e *Emitter) Fcmeq(size ElementSize, pd PRegister, pg PRegisterZero, zn, zm ZRegister) {
	e.floatCompare("fcmeq", 0b001, 0, size, pd, pg, zn, zm)
}

func (e *Emitter) Fcmgt(size ElementSize, pd PRegister, pg PRegisterZero, zn, zm ZRegister) {
	e.floatCompare("fcmgt", 0b000, 1, size, pd, pg, zn, zm)
}

func (e *Emitter) Fcmge(size ElementSize, pd PRegister, pg PRegisterZero, zn, zm ZRegister) {
	e.floatCompare("fcmge", 0b000, 0, size, pd, pg, zn, zm)
}

func (e *Emitter) Fcmne(size ElementSize, pd PRegister, pg PRegisterZero, zn, zm ZRegister) {
	e.floatCompare("fcmne", 0b001, 1, size, pd, pg, zn, zm)
}

// Fcmuo sets pd where either operand is NaN.
func (e *Emitter) Fcmuo(size ElementSize, pd PRegister, pg PRegisterZero, zn, zm ZRegister) {
	e.floatCompare("fcmuo", 0b100, 0, size, pd, pg, zn, zm)
}

func (e *Emitter) Facge(size ElementSize, pd PRegister, pg PRegisterZero, zn, zm ZRegister) {
	e.floatCompare("facge", 0b100, 1, size, pd, pg, zn, zm)
}

func (e *Emitter) Facgt(size ElementSize, pd PRegister, pg PRegisterZero, zn, zm ZRegister) {
	e.floatCompare("facgt", 0b101, 1, size, pd, pg, zn, zm)
}

// Facle is Facge with the operands swapped.
func (e *Emitter) Facle(size ElementSize, pd PRegister, pg PRegisterZero, zn, zm ZRegister) {
	e.floatCompare("facle", 0b100, 1, size, pd, pg, zm, zn)
}

// Faclt is Facgt with the operands swapped.
func (e *Emitter) Faclt(size ElementSize, pd PRegister, pg PRegisterZero, zn, zm ZRegister) {
	e.floatCompare("faclt", 0b101, 1, size, pd, pg, zm, zn)
}

func (e *Emitter) floatCompare(inst string, opc, ne uint32, size ElementSize, pd PRegister, pg PRegisterZero, zn, zm ZRegister) {
	if !e.check(inst, sizeFloat(size)) {
		return
	}
	e.compareVectors(inst, opFpCmpVec, opc, ne, size, pd, pg, zn, zm)
}

// Floating-point compares with zero.

func (e *Emitter) FcmgeZero(size ElementSize, pd PRegister, pg PRegisterZero, zn ZRegister) {
	e.floatCompareZero("fcmge", 0b00, 0, size, pd, pg, zn)
}

func (e *Emitter) FcmgtZero(size ElementSize, pd PRegister, pg PRegisterZero, zn ZRegister) {
	e.floatCompareZero("fcmgt", 0b00, 1, size, pd, pg, zn)
}

func (e *Emitter) FcmltZero(size ElementSize, pd PRegister, pg PRegisterZero, zn ZRegister) {
	e.floatCompareZero("fcmlt", 0b01, 0, size, pd, pg, zn)
}

func (e *Emitter) FcmleZero(size ElementSize, pd PRegister, pg PRegisterZero, zn ZRegister) {
	e.floatCompareZero("fcmle", 0b01, 1, size, pd, pg, zn)
}

func (e *Emitter) FcmeqZero(size ElementSize, pd PRegister, pg PRegisterZero, zn ZRegister) {
	e.floatCompareZero("fcmeq", 0b10, 0, size, pd, pg, zn)
}

func (e *Emitter) FcmneZero(size ElementSize, pd PRegister, pg PRegisterZero, zn ZRegister) {
	e.floatCompareZero("fcmne", 0b11, 0, size, pd, pg, zn)
}

func (e *Emitter) floatCompareZero(inst string, eqlt, ne uint32, size ElementSize, pd PRegister, pg PRegisterZero, zn ZRegister) {
	if !e.check(inst, sizeFloat(size)) {
		return
	}
	e.compare(inst, opFpCmpZero, 0, ne, size, pd, pg, zn, eqlt)
}

// Floating-point arithmetic, unpredicated.

func (e *Emitter) Fadd(size ElementSize, zd, zn, zm ZRegister) {
	e.floatVectors("fadd", 0b000, size, zd, zn, zm)
}

func (e *Emitter) Fsub(size ElementSize, zd, zn, zm ZRegister) {
	e.floatVectors("fsub", 0b001, size, zd, zn, zm)
}

func (e *Emitter) Fmul(size ElementSize, zd, zn, zm ZRegister) {
	e.floatVectors("fmul", 0b010, size, zd, zn, zm)
}

// Ftsmul is the trigonometric starting value helper used with Ftmad.
func (e *Emitter) Ftsmul(size ElementSize, zd, zn, zm ZRegister) {
	e.floatVectors("ftsmul", 0b011, size, zd, zn, zm)
}

func (e *Emitter) Frecps(size ElementSize, zd, zn, zm ZRegister) {
	e.floatVectors("frecps", 0b110, size, zd, zn, zm)
}

func (e *Emitter) Frsqrts(size ElementSize, zd, zn, zm ZRegister) {
	e.floatVectors("frsqrts", 0b111, size, zd, zn, zm)
}

func (e *Emitter) floatVectors(inst string, opc uint32, size ElementSize, zd, zn, zm ZRegister) {
	if !e.check(inst, sizeFloat(size)) {
		return
	}
	e.vectors(inst, opFpArith, opc, size, zd, zn, zm)
}

// Ftmad is the trigonometric multiply-add step with coefficient imm within [0, 7].
func (e *Emitter) Ftmad(size ElementSize, zd, zdn, zm ZRegister, imm uint32) {
	const inst = "ftmad"
	if !e.check(inst, sizeFloat(size), inRange("immediate", int64(imm), 0, 7)) {
		return
	}
	e.destructive(inst, opFpArithPred, 0b10000|imm, size, zd, P0, zdn, zm)
}

// Floating-point arithmetic, predicated.

func (e *Emitter) FaddPred(size ElementSize, zd ZRegister, pg PRegisterMerge, zdn, zm ZRegister) {
	e.floatDestructive("fadd", 0b0000, size, zd, pg, zdn, zm)
}

func (e *Emitter) FsubPred(size ElementSize, zd ZRegister, pg PRegisterMerge, zdn, zm ZRegister) {
	e.floatDestructive("fsub", 0b0001, size, zd, pg, zdn, zm)
}

func (e *Emitter) FmulPred(size ElementSize, zd ZRegister, pg PRegisterMerge, zdn, zm ZRegister) {
	e.floatDestructive("fmul", 0b0010, size, zd, pg, zdn, zm)
}

func (e *Emitter) Fsubr(size ElementSize, zd ZRegister, pg PRegisterMerge, zdn, zm ZRegister) {
	e.floatDestructive("fsubr", 0b0011, size, zd, pg, zdn, zm)
}

func (e *Emitter) Fmaxnm(size ElementSize, zd ZRegister, pg PRegisterMerge, zdn, zm ZRegister) {
	e.floatDestructive("fmaxnm", 0b0100, size, zd, pg, zdn, zm)
}

func (e *Emitter) Fminnm(size ElementSize, zd ZRegister, pg PRegisterMerge, zdn, zm ZRegister) {
	e.floatDestructive("fminnm", 0b0101, size, zd, pg, zdn, zm)
}

func (e *Emitter) Fmax(size ElementSize, zd ZRegister, pg PRegisterMerge, zdn, zm ZRegister) {
	e.floatDestructive("fmax", 0b0110, size, zd, pg, zdn, zm)
}

func (e *Emitter) Fmin(size ElementSize, zd ZRegister, pg PRegisterMerge, zdn, zm ZRegister) {
	e.floatDestructive("fmin", 0b0111, size, zd, pg, zdn, zm)
}

func (e *Emitter) Fabd(size ElementSize, zd ZRegister, pg PRegisterMerge, zdn, zm ZRegister) {
	e.floatDestructive("fabd", 0b1000, size, zd, pg, zdn, zm)
}

func (e *Emitter) Fscale(size ElementSize, zd ZRegister, pg PRegisterMerge, zdn, zm ZRegister) {
	e.floatDestructive("fscale", 0b1001, size, zd, pg, zdn, zm)
}

func (e *Emitter) Fmulx(size ElementSize, zd ZRegister, pg PRegisterMerge, zdn, zm ZRegister) {
	e.floatDestructive("fmulx", 0b1010, size, zd, pg, zdn, zm)
}

func (e *Emitter) Fdivr(size ElementSize, zd ZRegister, pg PRegisterMerge, zdn, zm ZRegister) {
	e.floatDestructive("fdivr", 0b1100, size, zd, pg, zdn, zm)
}

func (e *Emitter) Fdiv(size ElementSize, zd ZRegister, pg PRegisterMerge, zdn, zm ZRegister) {
	e.floatDestructive("fdiv", 0b1101, size, zd, pg, zdn, zm)
}

func (e *Emitter) floatDestructive(inst string, opc uint32, size ElementSize, zd ZRegister, pg PRegisterMerge, zdn, zm ZRegister) {
	if !e.check(inst, sizeFloat(size)) {
		return
	}
	e.destructive(inst, opFpArithPred, opc, size, zd, pg, zdn, zm)
}

// Rounding to integral values.

// Frintn rounds to nearest with ties to even.
func (e *Emitter) Frintn(size ElementSize, zd ZRegister, pg PRegisterMerge, zn ZRegister) {
	e.floatUnary("frintn", opFrint, 0b000, size, zd, pg, zn)
}

// Frintp rounds towards plus infinity.
func (e *Emitter) Frintp(size ElementSize, zd ZRegister, pg PRegisterMerge, zn ZRegister) {
	e.floatUnary("frintp", opFrint, 0b001, size, zd, pg, zn)
}

// Frintm rounds towards minus infinity.
func (e *Emitter) Frintm(size ElementSize, zd ZRegister, pg PRegisterMerge, zn ZRegister) {
	e.floatUnary("frintm", opFrint, 0b010, size, zd, pg, zn)
}

// Frintz rounds towards zero.
func (e *Emitter) Frintz(size ElementSize, zd ZRegister, pg PRegisterMerge, zn ZRegister) {
	e.floatUnary("frintz", opFrint, 0b011, size, zd, pg, zn)
}

// Frinta rounds to nearest with ties away from zero.
func (e *Emitter) Frinta(size ElementSize, zd ZRegister, pg PRegisterMerge, zn ZRegister) {
	e.floatUnary("frinta", opFrint, 0b100, size, zd, pg, zn)
}

// Frintx rounds with the current mode, signalling inexact results.
func (e *Emitter) Frintx(size ElementSize, zd ZRegister, pg PRegisterMerge, zn ZRegister) {
	e.floatUnary("frintx", opFrint, 0b110, size, zd, pg, zn)
}

// Frinti rounds with the current mode.
func (e *Emitter) Frinti(size ElementSize, zd ZRegister, pg PRegisterMerge, zn ZRegister) {
	e.floatUnary("frinti", opFrint, 0b111, size, zd, pg, zn)
}

func (e *Emitter) Frecpx(size ElementSize, zd ZRegister, pg PRegisterMerge, zn ZRegister) {
	e.floatUnary("frecpx", opFpUnaryPred, 0b00, size, zd, pg, zn)
}

func (e *Emitter) Fsqrt(size ElementSize, zd ZRegister, pg PRegisterMerge, zn ZRegister) {
	e.floatUnary("fsqrt", opFpUnaryPred, 0b01, size, zd, pg, zn)
}

func (e *Emitter) Fabs(size ElementSize, zd ZRegister, pg PRegisterMerge, zn ZRegister) {
	e.floatUnary("fabs", opBitUnaryPred, 0b100, size, zd, pg, zn)
}

func (e *Emitter) Fneg(size ElementSize, zd ZRegister, pg PRegisterMerge, zn ZRegister) {
	e.floatUnary("fneg", opBitUnaryPred, 0b101, size, zd, pg, zn)
}

func (e *Emitter) floatUnary(inst string, op, opc uint32, size ElementSize, zd ZRegister, pg PRegisterMerge, zn ZRegister) {
	if !e.check(inst, sizeFloat(size)) {
		return
	}
	e.unary(inst, op, opc, size, zd, pg, zn)
}

// Floating-point reductions into a SIMD&FP scalar.

func (e *Emitter) Faddv(size ElementSize, vd VRegister, pg PRegister, zn ZRegister) {
	e.floatReduce("faddv", 0b000, size, vd, pg, zn)
}

func (e *Emitter) Fmaxnmv(size ElementSize, vd VRegister, pg PRegister, zn ZRegister) {
	e.floatReduce("fmaxnmv", 0b100, size, vd, pg, zn)
}

func (e *Emitter) Fminnmv(size ElementSize, vd VRegister, pg PRegister, zn ZRegister) {
	e.floatReduce("fminnmv", 0b101, size, vd, pg, zn)
}

func (e *Emitter) Fmaxv(size ElementSize, vd VRegister, pg PRegister, zn ZRegister) {
	e.floatReduce("fmaxv", 0b110, size, vd, pg, zn)
}

func (e *Emitter) Fminv(size ElementSize, vd VRegister, pg PRegister, zn ZRegister) {
	e.floatReduce("fminv", 0b111, size, vd, pg, zn)
}

func (e *Emitter) floatReduce(inst string, opc uint32, size ElementSize, vd VRegister, pg PRegister, zn ZRegister) {
	if !e.check(inst, sizeFloat(size)) {
		return
	}
	e.unary(inst, opFpReduce, opc, size, vd, pg, zn)
}

// Fadda adds the active elements of zm to vdn strictly in order. vd must equal
// vdn.
func (e *Emitter) Fadda(size ElementSize, vd VRegister, pg PRegister, vdn VRegister, zm ZRegister) {
	const inst = "fadda"
	if !e.check(inst, sizeFloat(size), vregs(vdn), aliased(vd, vdn, "vd", "vdn")) {
		return
	}
	e.unary(inst, opFadda, 0, size, vd, pg, zm)
}

// Flogb writes the base 2 logarithm of each active element as a signed integer.
func (e *Emitter) Flogb(size ElementSize, zd ZRegister, pg PRegisterMerge, zn ZRegister) {
	const inst = "flogb"
	if !e.check(inst, e.require(features.SVE2), sizeFloat(size)) {
		return
	}
	e.convert(inst, opFpToInt, 0b00, uint32(size)<<1, zd, pg, zn)
}

// Scvtf converts signed integers of srcSize to floating-point values of size.
func (e *Emitter) Scvtf(size ElementSize, zd ZRegister, pg PRegisterMerge, zn ZRegister, srcSize ElementSize) {
	e.intToFloat("scvtf", 0, size, zd, pg, zn, srcSize)
}

// Ucvtf converts unsigned integers of srcSize to floating-point values of size.
func (e *Emitter) Ucvtf(size ElementSize, zd ZRegister, pg PRegisterMerge, zn ZRegister, srcSize ElementSize) {
	e.intToFloat("ucvtf", 1, size, zd, pg, zn, srcSize)
}

func (e *Emitter) intToFloat(inst string, u uint32, size ElementSize, zd ZRegister, pg PRegisterMerge, zn ZRegister, srcSize ElementSize) {
	var opc, opc2 uint32
	ok := true
	switch {
	case srcSize == Element16 && size == Element16:
		opc, opc2 = 0b01, 0b01
	case srcSize == Element32 && size == Element16:
		opc, opc2 = 0b01, 0b10
	case srcSize == Element32 && size == Element32:
		opc, opc2 = 0b10, 0b10
	case srcSize == Element32 && size == Element64:
		opc, opc2 = 0b11, 0b00
	case srcSize == Element64 && size == Element16:
		opc, opc2 = 0b01, 0b11
	case srcSize == Element64 && size == Element32:
		opc, opc2 = 0b11, 0b10
	case srcSize == Element64 && size == Element64:
		opc, opc2 = 0b11, 0b11
	default:
		ok = false
	}
	if !ok {
		e.check(inst, invalidf("cannot convert %s integers to %s floating-point", srcSize, size))
		return
	}
	e.convert(inst, opIntToFp, opc, opc2<<1|u, zd, pg, zn)
}

// Fcvtzs converts floating-point values of srcSize to signed integers of size,
// rounding towards zero.
func (e *Emitter) Fcvtzs(size ElementSize, zd ZRegister, pg PRegisterMerge, zn ZRegister, srcSize ElementSize) {
	e.floatToInt("fcvtzs", 0, size, zd, pg, zn, srcSize)
}

// Fcvtzu converts floating-point values of srcSize to unsigned integers of size,
// rounding towards zero.
func (e *Emitter) Fcvtzu(size ElementSize, zd ZRegister, pg PRegisterMerge, zn ZRegister, srcSize ElementSize) {
	e.floatToInt("fcvtzu", 1, size, zd, pg, zn, srcSize)
}

func (e *Emitter) floatToInt(inst string, u uint32, size ElementSize, zd ZRegister, pg PRegisterMerge, zn ZRegister, srcSize ElementSize) {
	var opc, opc2 uint32
	ok := true
	switch {
	case srcSize == Element16 && size == Element16:
		opc, opc2 = 0b01, 0b01
	case srcSize == Element16 && size == Element32:
		opc, opc2 = 0b01, 0b10
	case srcSize == Element16 && size == Element64:
		opc, opc2 = 0b01, 0b11
	case srcSize == Element32 && size == Element32:
		opc, opc2 = 0b10, 0b10
	case srcSize == Element32 && size == Element64:
		opc, opc2 = 0b11, 0b10
	case srcSize == Element64 && size == Element32:
		opc, opc2 = 0b11, 0b00
	case srcSize == Element64 && size == Element64:
		opc, opc2 = 0b11, 0b11
	default:
		ok = false
	}
	if !ok {
		e.check(inst, invalidf("cannot convert %s floating-point to %s integers", srcSize, size))
		return
	}
	e.convert(inst, opFpToInt, opc, opc2<<1|u, zd, pg, zn)
}

// Frecpe estimates the reciprocal of each element.
func (e *Emitter) Frecpe(size ElementSize, zd, zn ZRegister) {
	e.floatEstimate("frecpe", 0b110, size, zd, zn)
}

// Frsqrte estimates the reciprocal square root of each element.
func (e *Emitter) Frsqrte(size ElementSize, zd, zn ZRegister) {
	e.floatEstimate("frsqrte", 0b111, size, zd, zn)
}

func (e *Emitter) floatEstimate(inst string, opc uint32, size ElementSize, zd, zn ZRegister) {
	if !e.check(inst, sizeFloat(size), zregs(zd, zn)) {
		return
	}
	e.emit(inst, opFpEstimate|uint32(size)<<22|opc<<16|zn.Index()<<5|zd.Index())
}

// Ftssel selects the trigonometric starting value for Ftmad.
func (e *Emitter) Ftssel(size ElementSize, zd, zn, zm ZRegister) {
	const inst = "ftssel"
	if !e.check(inst, sizeFloat(size)) {
		return
	}
	e.vectors(inst, opMiscUnpred, 0b00, size, zd, zn, zm)
}

// Fexpa accelerates exponential computations using a table of 2^(i/64).
func (e *Emitter) Fexpa(size ElementSize, zd, zn ZRegister) {
	const inst = "fexpa"
	if !e.check(inst, sizeFloat(size)) {
		return
	}
	e.vectors(inst, opMiscUnpred, 0b10, size, zd, zn, Z0)
}
