package sve

import "github.com/tetratelabs/sveasm/internal/features"

// Shifts by immediate, predicated. Right shifts take a shift within
// [1, bits], left shifts within [0, bits-1].
//
// https://developer.arm.com/documentation/ddi0602/2022-09/Index-by-Encoding/SVE-encodings#sve_int_bin_pred_shift_0

func (e *Emitter) AsrImmPred(size ElementSize, zd ZRegister, pg PRegisterMerge, zdn ZRegister, shift uint32) {
	e.shiftImmPredicated("asr", 0b0000, size, zd, pg, zdn, shift)
}

func (e *Emitter) LsrImmPred(size ElementSize, zd ZRegister, pg PRegisterMerge, zdn ZRegister, shift uint32) {
	e.shiftImmPredicated("lsr", 0b0001, size, zd, pg, zdn, shift)
}

func (e *Emitter) LslImmPred(size ElementSize, zd ZRegister, pg PRegisterMerge, zdn ZRegister, shift uint32) {
	e.shiftImmPredicated("lsl", 0b0011, size, zd, pg, zdn, shift)
}

// Asrd is an arithmetic shift right rounding towards zero, i.e. a signed
// division by a power of two.
func (e *Emitter) Asrd(size ElementSize, zd ZRegister, pg PRegisterMerge, zdn ZRegister, shift uint32) {
	e.shiftImmPredicated("asrd", 0b0100, size, zd, pg, zdn, shift)
}

func (e *Emitter) Sqshl(size ElementSize, zd ZRegister, pg PRegisterMerge, zdn ZRegister, shift uint32) {
	e.shiftImmPredicatedSVE2("sqshl", 0b0110, size, zd, pg, zdn, shift)
}

func (e *Emitter) Uqshl(size ElementSize, zd ZRegister, pg PRegisterMerge, zdn ZRegister, shift uint32) {
	e.shiftImmPredicatedSVE2("uqshl", 0b0111, size, zd, pg, zdn, shift)
}

func (e *Emitter) Srshr(size ElementSize, zd ZRegister, pg PRegisterMerge, zdn ZRegister, shift uint32) {
	e.shiftImmPredicatedSVE2("srshr", 0b1100, size, zd, pg, zdn, shift)
}

func (e *Emitter) Urshr(size ElementSize, zd ZRegister, pg PRegisterMerge, zdn ZRegister, shift uint32) {
	e.shiftImmPredicatedSVE2("urshr", 0b1101, size, zd, pg, zdn, shift)
}

func (e *Emitter) Sqshlu(size ElementSize, zd ZRegister, pg PRegisterMerge, zdn ZRegister, shift uint32) {
	e.shiftImmPredicatedSVE2("sqshlu", 0b1111, size, zd, pg, zdn, shift)
}

func (e *Emitter) shiftImmPredicatedSVE2(inst string, opc uint32, size ElementSize, zd ZRegister, pg PRegisterMerge, zdn ZRegister, shift uint32) {
	if !e.check(inst, e.require(features.SVE2)) {
		return
	}
	e.shiftImmPredicated(inst, opc, size, zd, pg, zdn, shift)
}

// Shifts by vector, predicated. The R forms reverse the operands.

func (e *Emitter) AsrPred(size ElementSize, zd ZRegister, pg PRegisterMerge, zdn, zm ZRegister) {
	e.destructive("asr", opShiftVecPred, 0b000, size, zd, pg, zdn, zm)
}

func (e *Emitter) LsrPred(size ElementSize, zd ZRegister, pg PRegisterMerge, zdn, zm ZRegister) {
	e.destructive("lsr", opShiftVecPred, 0b001, size, zd, pg, zdn, zm)
}

func (e *Emitter) LslPred(size ElementSize, zd ZRegister, pg PRegisterMerge, zdn, zm ZRegister) {
	e.destructive("lsl", opShiftVecPred, 0b011, size, zd, pg, zdn, zm)
}

func (e *Emitter) Asrr(size ElementSize, zd ZRegister, pg PRegisterMerge, zdn, zm ZRegister) {
	e.destructive("asrr", opShiftVecPred, 0b100, size, zd, pg, zdn, zm)
}

func (e *Emitter) Lsrr(size ElementSize, zd ZRegister, pg PRegisterMerge, zdn, zm ZRegister) {
	e.destructive("lsrr", opShiftVecPred, 0b101, size, zd, pg, zdn, zm)
}

func (e *Emitter) Lslr(size ElementSize, zd ZRegister, pg PRegisterMerge, zdn, zm ZRegister) {
	e.destructive("lslr", opShiftVecPred, 0b111, size, zd, pg, zdn, zm)
}

// Shifts by the 64-bit elements of zm, applied to the overlapping narrower
// elements of zdn. 64-bit elements use the plain vector forms instead.

func (e *Emitter) AsrWidePred(size ElementSize, zd ZRegister, pg PRegisterMerge, zdn, zm ZRegister) {
	e.shiftWidePred("asr", 0b000, size, zd, pg, zdn, zm)
}

func (e *Emitter) LsrWidePred(size ElementSize, zd ZRegister, pg PRegisterMerge, zdn, zm ZRegister) {
	e.shiftWidePred("lsr", 0b001, size, zd, pg, zdn, zm)
}

func (e *Emitter) LslWidePred(size ElementSize, zd ZRegister, pg PRegisterMerge, zdn, zm ZRegister) {
	e.shiftWidePred("lsl", 0b011, size, zd, pg, zdn, zm)
}

func (e *Emitter) shiftWidePred(inst string, opc uint32, size ElementSize, zd ZRegister, pg PRegisterMerge, zdn, zm ZRegister) {
	if !e.check(inst, sizeIn(size, Element8, Element16, Element32)) {
		return
	}
	e.destructive(inst, opShiftWidePred, opc, size, zd, pg, zdn, zm)
}

func (e *Emitter) AsrWide(size ElementSize, zd, zn, zm ZRegister) {
	e.shiftWide("asr", 0b00, size, zd, zn, zm)
}

func (e *Emitter) LsrWide(size ElementSize, zd, zn, zm ZRegister) {
	e.shiftWide("lsr", 0b01, size, zd, zn, zm)
}

func (e *Emitter) LslWide(size ElementSize, zd, zn, zm ZRegister) {
	e.shiftWide("lsl", 0b11, size, zd, zn, zm)
}

func (e *Emitter) shiftWide(inst string, opc uint32, size ElementSize, zd, zn, zm ZRegister) {
	if !e.check(inst, sizeIn(size, Element8, Element16, Element32)) {
		return
	}
	e.vectors(inst, opShiftWide, opc, size, zd, zn, zm)
}

// Shifts by immediate, unpredicated.

func (e *Emitter) AsrImm(size ElementSize, zd, zn ZRegister, shift uint32) {
	e.shiftImm("asr", opShiftImm, 0b00, false, size, zd, zn, shift)
}

func (e *Emitter) LsrImm(size ElementSize, zd, zn ZRegister, shift uint32) {
	e.shiftImm("lsr", opShiftImm, 0b01, false, size, zd, zn, shift)
}

func (e *Emitter) LslImm(size ElementSize, zd, zn ZRegister, shift uint32) {
	e.shiftImm("lsl", opShiftImm, 0b11, true, size, zd, zn, shift)
}
