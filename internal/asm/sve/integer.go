package sve

// Integer add/subtract, unpredicated.
//
// https://developer.arm.com/documentation/ddi0602/2022-09/Index-by-Encoding/SVE-encodings#sve_int_bin_cons_arit_0

func (e *Emitter) Add(size ElementSize, zd, zn, zm ZRegister) {
	e.vectors("add", opAddSub, 0b000, size, zd, zn, zm)
}

func (e *Emitter) Sub(size ElementSize, zd, zn, zm ZRegister) {
	e.vectors("sub", opAddSub, 0b001, size, zd, zn, zm)
}

func (e *Emitter) Sqadd(size ElementSize, zd, zn, zm ZRegister) {
	e.vectors("sqadd", opAddSub, 0b100, size, zd, zn, zm)
}

func (e *Emitter) Uqadd(size ElementSize, zd, zn, zm ZRegister) {
	e.vectors("uqadd", opAddSub, 0b101, size, zd, zn, zm)
}

func (e *Emitter) Sqsub(size ElementSize, zd, zn, zm ZRegister) {
	e.vectors("sqsub", opAddSub, 0b110, size, zd, zn, zm)
}

func (e *Emitter) Uqsub(size ElementSize, zd, zn, zm ZRegister) {
	e.vectors("uqsub", opAddSub, 0b111, size, zd, zn, zm)
}

// Integer binary arithmetic, predicated. The first source is the destination.

func (e *Emitter) AddPred(size ElementSize, zd ZRegister, pg PRegisterMerge, zdn, zm ZRegister) {
	e.destructive("add", opAddSubPred, 0b000, size, zd, pg, zdn, zm)
}

func (e *Emitter) SubPred(size ElementSize, zd ZRegister, pg PRegisterMerge, zdn, zm ZRegister) {
	e.destructive("sub", opAddSubPred, 0b001, size, zd, pg, zdn, zm)
}

// Subr subtracts zdn from zm.
func (e *Emitter) Subr(size ElementSize, zd ZRegister, pg PRegisterMerge, zdn, zm ZRegister) {
	e.destructive("subr", opAddSubPred, 0b011, size, zd, pg, zdn, zm)
}

func (e *Emitter) Smax(size ElementSize, zd ZRegister, pg PRegisterMerge, zdn, zm ZRegister) {
	e.destructive("smax", opMinMaxPred, 0b000, size, zd, pg, zdn, zm)
}

func (e *Emitter) Umax(size ElementSize, zd ZRegister, pg PRegisterMerge, zdn, zm ZRegister) {
	e.destructive("umax", opMinMaxPred, 0b001, size, zd, pg, zdn, zm)
}

func (e *Emitter) Smin(size ElementSize, zd ZRegister, pg PRegisterMerge, zdn, zm ZRegister) {
	e.destructive("smin", opMinMaxPred, 0b010, size, zd, pg, zdn, zm)
}

func (e *Emitter) Umin(size ElementSize, zd ZRegister, pg PRegisterMerge, zdn, zm ZRegister) {
	e.destructive("umin", opMinMaxPred, 0b011, size, zd, pg, zdn, zm)
}

func (e *Emitter) Sabd(size ElementSize, zd ZRegister, pg PRegisterMerge, zdn, zm ZRegister) {
	e.destructive("sabd", opMinMaxPred, 0b100, size, zd, pg, zdn, zm)
}

func (e *Emitter) Uabd(size ElementSize, zd ZRegister, pg PRegisterMerge, zdn, zm ZRegister) {
	e.destructive("uabd", opMinMaxPred, 0b101, size, zd, pg, zdn, zm)
}

func (e *Emitter) MulPred(size ElementSize, zd ZRegister, pg PRegisterMerge, zdn, zm ZRegister) {
	e.destructive("mul", opMulPred, 0b000, size, zd, pg, zdn, zm)
}

func (e *Emitter) SmulhPred(size ElementSize, zd ZRegister, pg PRegisterMerge, zdn, zm ZRegister) {
	e.destructive("smulh", opMulPred, 0b010, size, zd, pg, zdn, zm)
}

func (e *Emitter) UmulhPred(size ElementSize, zd ZRegister, pg PRegisterMerge, zdn, zm ZRegister) {
	e.destructive("umulh", opMulPred, 0b011, size, zd, pg, zdn, zm)
}

// Divides exist for 32-bit and 64-bit elements only.

func (e *Emitter) Sdiv(size ElementSize, zd ZRegister, pg PRegisterMerge, zdn, zm ZRegister) {
	e.divide("sdiv", 0b000, size, zd, pg, zdn, zm)
}

func (e *Emitter) Udiv(size ElementSize, zd ZRegister, pg PRegisterMerge, zdn, zm ZRegister) {
	e.divide("udiv", 0b001, size, zd, pg, zdn, zm)
}

func (e *Emitter) Sdivr(size ElementSize, zd ZRegister, pg PRegisterMerge, zdn, zm ZRegister) {
	e.divide("sdivr", 0b010, size, zd, pg, zdn, zm)
}

func (e *Emitter) Udivr(size ElementSize, zd ZRegister, pg PRegisterMerge, zdn, zm ZRegister) {
	e.divide("udivr", 0b011, size, zd, pg, zdn, zm)
}

func (e *Emitter) divide(inst string, opc uint32, size ElementSize, zd ZRegister, pg PRegisterMerge, zdn, zm ZRegister) {
	if !e.check(inst, sizeIn(size, Element32, Element64)) {
		return
	}
	e.destructive(inst, opDivPred, opc, size, zd, pg, zdn, zm)
}

// Mla computes zda += zn * zm.
func (e *Emitter) Mla(size ElementSize, zda ZRegister, pg PRegisterMerge, zn, zm ZRegister) {
	e.ternary("mla", opMulAddAddend, 0, size, zda, pg, zn, zm)
}

// Mls computes zda -= zn * zm.
func (e *Emitter) Mls(size ElementSize, zda ZRegister, pg PRegisterMerge, zn, zm ZRegister) {
	e.ternary("mls", opMulAddAddend, 1, size, zda, pg, zn, zm)
}

// Mad computes zdn = za + zdn * zm.
func (e *Emitter) Mad(size ElementSize, zdn ZRegister, pg PRegisterMerge, zm, za ZRegister) {
	e.ternary("mad", opMulAddMultiplic, 0, size, zdn, pg, za, zm)
}

// Msb computes zdn = za - zdn * zm.
func (e *Emitter) Msb(size ElementSize, zdn ZRegister, pg PRegisterMerge, zm, za ZRegister) {
	e.ternary("msb", opMulAddMultiplic, 1, size, zdn, pg, za, zm)
}

// Integer unary operations, predicated. size is the element size of the
// destination; the extensions require it to be wider than the source.

func (e *Emitter) Sxtb(size ElementSize, zd ZRegister, pg PRegisterMerge, zn ZRegister) {
	e.intUnary("sxtb", 0b000, size, zd, pg, zn, Element16, Element32, Element64)
}

func (e *Emitter) Uxtb(size ElementSize, zd ZRegister, pg PRegisterMerge, zn ZRegister) {
	e.intUnary("uxtb", 0b001, size, zd, pg, zn, Element16, Element32, Element64)
}

func (e *Emitter) Sxth(size ElementSize, zd ZRegister, pg PRegisterMerge, zn ZRegister) {
	e.intUnary("sxth", 0b010, size, zd, pg, zn, Element32, Element64)
}

func (e *Emitter) Uxth(size ElementSize, zd ZRegister, pg PRegisterMerge, zn ZRegister) {
	e.intUnary("uxth", 0b011, size, zd, pg, zn, Element32, Element64)
}

func (e *Emitter) Sxtw(size ElementSize, zd ZRegister, pg PRegisterMerge, zn ZRegister) {
	e.intUnary("sxtw", 0b100, size, zd, pg, zn, Element64)
}

func (e *Emitter) Uxtw(size ElementSize, zd ZRegister, pg PRegisterMerge, zn ZRegister) {
	e.intUnary("uxtw", 0b101, size, zd, pg, zn, Element64)
}

func (e *Emitter) Abs(size ElementSize, zd ZRegister, pg PRegisterMerge, zn ZRegister) {
	e.intUnary("abs", 0b110, size, zd, pg, zn, Element8, Element16, Element32, Element64)
}

func (e *Emitter) Neg(size ElementSize, zd ZRegister, pg PRegisterMerge, zn ZRegister) {
	e.intUnary("neg", 0b111, size, zd, pg, zn, Element8, Element16, Element32, Element64)
}

func (e *Emitter) intUnary(inst string, opc uint32, size ElementSize, zd ZRegister, pg PRegisterMerge, zn ZRegister, allowed ...ElementSize) {
	if !e.check(inst, sizeIn(size, allowed...)) {
		return
	}
	e.unary(inst, opIntUnaryPred, opc, size, zd, pg, zn)
}

// Integer reductions into a SIMD&FP scalar.

// Saddv sums the active elements as signed 64-bit values.
func (e *Emitter) Saddv(size ElementSize, vd VRegister, pg PRegister, zn ZRegister) {
	const inst = "saddv"
	if !e.check(inst, sizeIn(size, Element8, Element16, Element32)) {
		return
	}
	e.unary(inst, opAddReduce, 0b000, size, vd, pg, zn)
}

// Uaddv sums the active elements as unsigned 64-bit values.
func (e *Emitter) Uaddv(size ElementSize, vd VRegister, pg PRegister, zn ZRegister) {
	e.unary("uaddv", opAddReduce, 0b001, size, vd, pg, zn)
}

func (e *Emitter) Smaxv(size ElementSize, vd VRegister, pg PRegister, zn ZRegister) {
	e.unary("smaxv", opMinMaxReduce, 0b000, size, vd, pg, zn)
}

func (e *Emitter) Umaxv(size ElementSize, vd VRegister, pg PRegister, zn ZRegister) {
	e.unary("umaxv", opMinMaxReduce, 0b001, size, vd, pg, zn)
}

func (e *Emitter) Sminv(size ElementSize, vd VRegister, pg PRegister, zn ZRegister) {
	e.unary("sminv", opMinMaxReduce, 0b010, size, vd, pg, zn)
}

func (e *Emitter) Uminv(size ElementSize, vd VRegister, pg PRegister, zn ZRegister) {
	e.unary("uminv", opMinMaxReduce, 0b011, size, vd, pg, zn)
}

func (e *Emitter) Orv(size ElementSize, vd VRegister, pg PRegister, zn ZRegister) {
	e.unary("orv", opLogicalReduce, 0b000, size, vd, pg, zn)
}

func (e *Emitter) Eorv(size ElementSize, vd VRegister, pg PRegister, zn ZRegister) {
	e.unary("eorv", opLogicalReduce, 0b001, size, vd, pg, zn)
}

func (e *Emitter) Andv(size ElementSize, vd VRegister, pg PRegister, zn ZRegister) {
	e.unary("andv", opLogicalReduce, 0b010, size, vd, pg, zn)
}

// Index fills zd with imm1, imm1+imm2, imm1+2*imm2 and so on. Both immediates
// are within [-16, 15].
//
// https://developer.arm.com/documentation/ddi0602/2022-09/SVE-Instructions/INDEX--immediates---Create-index-starting-from-and-incremented-by-immediate-
func (e *Emitter) Index(size ElementSize, zd ZRegister, imm1, imm2 int32) {
	const inst = "index"
	if !e.check(inst,
		inRange("start", int64(imm1), -16, 15),
		inRange("increment", int64(imm2), -16, 15),
	) {
		return
	}
	e.index(inst, 0b00, size, zd, uint32(imm1), uint32(imm2))
}

// IndexRegImm is Index with the start in a general register.
func (e *Emitter) IndexRegImm(size ElementSize, zd ZRegister, rn Register, imm int32) {
	const inst = "index"
	if !e.check(inst, elementReg(size, rn), inRange("increment", int64(imm), -16, 15)) {
		return
	}
	e.index(inst, 0b01, size, zd, rn.Index(), uint32(imm))
}

// IndexImmReg is Index with the increment in a general register.
func (e *Emitter) IndexImmReg(size ElementSize, zd ZRegister, imm int32, rm Register) {
	const inst = "index"
	if !e.check(inst, inRange("start", int64(imm), -16, 15), elementReg(size, rm)) {
		return
	}
	e.index(inst, 0b10, size, zd, uint32(imm), rm.Index())
}

// IndexRegReg is Index with both operands in general registers.
func (e *Emitter) IndexRegReg(size ElementSize, zd ZRegister, rn, rm Register) {
	const inst = "index"
	if !e.check(inst, elementReg(size, rn), elementReg(size, rm)) {
		return
	}
	e.index(inst, 0b11, size, zd, rn.Index(), rm.Index())
}

// Addvl adds imm times the vector length in bytes to rn (or SP).
func (e *Emitter) Addvl(rd, rn Register, imm int32) {
	e.stackFrame("addvl", 0b00, rd, rn, imm)
}

// Addpl adds imm times the predicate length in bytes to rn (or SP).
func (e *Emitter) Addpl(rd, rn Register, imm int32) {
	e.stackFrame("addpl", 0b01, rd, rn, imm)
}

// Rdvl writes imm times the vector length in bytes to rd.
func (e *Emitter) Rdvl(rd Register, imm int32) {
	e.stackFrame("rdvl", 0b10, rd, XZR, imm)
}
