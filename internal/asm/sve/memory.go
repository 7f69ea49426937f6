package sve

// LdrP loads a predicate register from [rn, #imm, MUL VL], imm within [-256, 255].
//
// https://developer.arm.com/documentation/ddi0602/2022-09/SVE-Instructions/LDR--predicate---Load-predicate-register-
func (e *Emitter) LdrP(pt PRegister, rn Register, imm int32) {
	e.loadRegister("ldr", 0b000, pt, rn, imm)
}

// LdrZ loads a vector register from [rn, #imm, MUL VL], imm within [-256, 255].
func (e *Emitter) LdrZ(zt ZRegister, rn Register, imm int32) {
	e.loadRegister("ldr", 0b010, zt, rn, imm)
}

// loadRegister encodes op | imm9h<21:16> | op2<15:13> | imm9l<12:10> | rn<9:5> | t<4:0>.
func (e *Emitter) loadRegister(inst string, op2 uint32, t register, rn Register, imm int32) {
	if !e.check(inst, regs(t), xreg(rn), inRange("offset", int64(imm), -256, 255)) {
		return
	}
	imm9 := uint32(imm) & 0x1ff
	e.emit(inst, opLdr|(imm9>>3)<<16|op2<<13|(imm9&0b111)<<10|rn.Index()<<5|t.Index())
}

// Structured loads and stores of two to four consecutive registers, with the
// offset in multiples of the vector length. The offset must be a multiple of
// the register count N within [-8N, 7N].

// msz of the structured memory instructions.
const (
	mszByte uint32 = iota
	mszHalf
	mszWord
	mszDouble
)

func (e *Emitter) Ld2b(zt1, zt2 ZRegister, pg PRegisterZero, rn Register, imm int32) {
	e.multipleStructures("ld2b", opLdMulti, mszByte, []ZRegister{zt1, zt2}, pg, rn, imm)
}

func (e *Emitter) Ld3b(zt1, zt2, zt3 ZRegister, pg PRegisterZero, rn Register, imm int32) {
	e.multipleStructures("ld3b", opLdMulti, mszByte, []ZRegister{zt1, zt2, zt3}, pg, rn, imm)
}

func (e *Emitter) Ld4b(zt1, zt2, zt3, zt4 ZRegister, pg PRegisterZero, rn Register, imm int32) {
	e.multipleStructures("ld4b", opLdMulti, mszByte, []ZRegister{zt1, zt2, zt3, zt4}, pg, rn, imm)
}

func (e *Emitter) Ld2h(zt1, zt2 ZRegister, pg PRegisterZero, rn Register, imm int32) {
	e.multipleStructures("ld2h", opLdMulti, mszHalf, []ZRegister{zt1, zt2}, pg, rn, imm)
}

func (e *Emitter) Ld3h(zt1, zt2, zt3 ZRegister, pg PRegisterZero, rn Register, imm int32) {
	e.multipleStructures("ld3h", opLdMulti, mszHalf, []ZRegister{zt1, zt2, zt3}, pg, rn, imm)
}

func (e *Emitter) Ld4h(zt1, zt2, zt3, zt4 ZRegister, pg PRegisterZero, rn Register, imm int32) {
	e.multipleStructures("ld4h", opLdMulti, mszHalf, []ZRegister{zt1, zt2, zt3, zt4}, pg, rn, imm)
}

func (e *Emitter) Ld2w(zt1, zt2 ZRegister, pg PRegisterZero, rn Register, imm int32) {
	e.multipleStructures("ld2w", opLdMulti, mszWord, []ZRegister{zt1, zt2}, pg, rn, imm)
}

func (e *Emitter) Ld3w(zt1, zt2, zt3 ZRegister, pg PRegisterZero, rn Register, imm int32) {
	e.multipleStructures("ld3w", opLdMulti, mszWord, []ZRegister{zt1, zt2, zt3}, pg, rn, imm)
}

func (e *Emitter) Ld4w(zt1, zt2, zt3, zt4 ZRegister, pg PRegisterZero, rn Register, imm int32) {
	e.multipleStructures("ld4w", opLdMulti, mszWord, []ZRegister{zt1, zt2, zt3, zt4}, pg, rn, imm)
}

func (e *Emitter) Ld2d(zt1, zt2 ZRegister, pg PRegisterZero, rn Register, imm int32) {
	e.multipleStructures("ld2d", opLdMulti, mszDouble, []ZRegister{zt1, zt2}, pg, rn, imm)
}

func (e *Emitter) Ld3d(zt1, zt2, zt3 ZRegister, pg PRegisterZero, rn Register, imm int32) {
	e.multipleStructures("ld3d", opLdMulti, mszDouble, []ZRegister{zt1, zt2, zt3}, pg, rn, imm)
}

func (e *Emitter) Ld4d(zt1, zt2, zt3, zt4 ZRegister, pg PRegisterZero, rn Register, imm int32) {
	e.multipleStructures("ld4d", opLdMulti, mszDouble, []ZRegister{zt1, zt2, zt3, zt4}, pg, rn, imm)
}

func (e *Emitter) St2b(zt1, zt2 ZRegister, pg PRegister, rn Register, imm int32) {
	e.multipleStructures("st2b", opStMulti, mszByte, []ZRegister{zt1, zt2}, pg, rn, imm)
}

func (e *Emitter) St3b(zt1, zt2, zt3 ZRegister, pg PRegister, rn Register, imm int32) {
	e.multipleStructures("st3b", opStMulti, mszByte, []ZRegister{zt1, zt2, zt3}, pg, rn, imm)
}

func (e *Emitter) St4b(zt1, zt2, zt3, zt4 ZRegister, pg PRegister, rn Register, imm int32) {
	e.multipleStructures("st4b", opStMulti, mszByte, []ZRegister{zt1, zt2, zt3, zt4}, pg, rn, imm)
}

func (e *Emitter) St2h(zt1, zt2 ZRegister, pg PRegister, rn Register, imm int32) {
	e.multipleStructures("st2h", opStMulti, mszHalf, []ZRegister{zt1, zt2}, pg, rn, imm)
}

func (e *Emitter) St3h(zt1, zt2, zt3 ZRegister, pg PRegister, rn Register, imm int32) {
	e.multipleStructures("st3h", opStMulti, mszHalf, []ZRegister{zt1, zt2, zt3}, pg, rn, imm)
}

func (e *Emitter) St4h(zt1, zt2, zt3, zt4 ZRegister, pg PRegister, rn Register, imm int32) {
	e.multipleStructures("st4h", opStMulti, mszHalf, []ZRegister{zt1, zt2, zt3, zt4}, pg, rn, imm)
}

func (e *Emitter) St2w(zt1, zt2 ZRegister, pg PRegister, rn Register, imm int32) {
	e.multipleStructures("st2w", opStMulti, mszWord, []ZRegister{zt1, zt2}, pg, rn, imm)
}

func (e *Emitter) St3w(zt1, zt2, zt3 ZRegister, pg PRegister, rn Register, imm int32) {
	e.multipleStructures("st3w", opStMulti, mszWord, []ZRegister{zt1, zt2, zt3}, pg, rn, imm)
}

func (e *Emitter) St4w(zt1, zt2, zt3, zt4 ZRegister, pg PRegister, rn Register, imm int32) {
	e.multipleStructures("st4w", opStMulti, mszWord, []ZRegister{zt1, zt2, zt3, zt4}, pg, rn, imm)
}

func (e *Emitter) St2d(zt1, zt2 ZRegister, pg PRegister, rn Register, imm int32) {
	e.multipleStructures("st2d", opStMulti, mszDouble, []ZRegister{zt1, zt2}, pg, rn, imm)
}

func (e *Emitter) St3d(zt1, zt2, zt3 ZRegister, pg PRegister, rn Register, imm int32) {
	e.multipleStructures("st3d", opStMulti, mszDouble, []ZRegister{zt1, zt2, zt3}, pg, rn, imm)
}

func (e *Emitter) St4d(zt1, zt2, zt3, zt4 ZRegister, pg PRegister, rn Register, imm int32) {
	e.multipleStructures("st4d", opStMulti, mszDouble, []ZRegister{zt1, zt2, zt3, zt4}, pg, rn, imm)
}

// Contiguous loads and stores. size is the element size in the register; the
// memory access size is given by the mnemonic.
//
// https://developer.arm.com/documentation/ddi0602/2022-09/SVE-Instructions/LD1B--scalar-plus-immediate---Contiguous-load-unsigned-bytes-to-vector--immediate-index--

// dtypeB is the dtype/msz:size field of LD1B and ST1B.
func dtypeB(size ElementSize) (uint32, error) {
	return uint32(size), sizeNot128(size)
}

func dtypeH(size ElementSize) (uint32, error) {
	return 0b0100 | uint32(size), sizeIn(size, Element16, Element32, Element64)
}

func dtypeW(size ElementSize) (uint32, error) {
	return 0b1000 | uint32(size), sizeIn(size, Element32, Element64)
}

func dtypeD(size ElementSize) (uint32, error) {
	return 0b1111, sizeIn(size, Element64)
}

func dtypeSB(size ElementSize) (uint32, error) {
	switch size {
	case Element16:
		return 0b1110, nil
	case Element32:
		return 0b1101, nil
	case Element64:
		return 0b1100, nil
	}
	return 0, sizeIn(size, Element16, Element32, Element64)
}

func dtypeSH(size ElementSize) (uint32, error) {
	switch size {
	case Element32:
		return 0b1001, nil
	case Element64:
		return 0b1000, nil
	}
	return 0, sizeIn(size, Element32, Element64)
}

func dtypeSW(size ElementSize) (uint32, error) {
	return 0b0100, sizeIn(size, Element64)
}

// contiguous is a contiguous load or store mnemonic.
type contiguous struct {
	inst         string
	dtype        func(ElementSize) (uint32, error)
	opImm, opReg uint32
}

var (
	ld1b  = contiguous{"ld1b", dtypeB, opLd1Imm, opLd1Reg}
	ld1sb = contiguous{"ld1sb", dtypeSB, opLd1Imm, opLd1Reg}
	ld1h  = contiguous{"ld1h", dtypeH, opLd1Imm, opLd1Reg}
	ld1sh = contiguous{"ld1sh", dtypeSH, opLd1Imm, opLd1Reg}
	ld1w  = contiguous{"ld1w", dtypeW, opLd1Imm, opLd1Reg}
	ld1sw = contiguous{"ld1sw", dtypeSW, opLd1Imm, opLd1Reg}
	ld1d  = contiguous{"ld1d", dtypeD, opLd1Imm, opLd1Reg}
	st1b  = contiguous{"st1b", dtypeB, opSt1Imm, opSt1Reg}
	st1h  = contiguous{"st1h", dtypeH, opSt1Imm, opSt1Reg}
	st1w  = contiguous{"st1w", dtypeW, opSt1Imm, opSt1Reg}
	st1d  = contiguous{"st1d", dtypeD, opSt1Imm, opSt1Reg}
)

func (e *Emitter) contiguousImmediate(c contiguous, size ElementSize, zt ZRegister, pg register, rn Register, imm int32) {
	dtype, err := c.dtype(size)
	if !e.check(c.inst, err) {
		return
	}
	e.contiguousImm(c.inst, c.opImm, dtype, zt, pg, rn, imm)
}

func (e *Emitter) contiguousRegister(c contiguous, size ElementSize, zt ZRegister, pg register, rn, rm Register) {
	dtype, err := c.dtype(size)
	if !e.check(c.inst, err) {
		return
	}
	e.contiguousReg(c.inst, c.opReg, dtype, zt, pg, rn, rm)
}

// contiguousMemory dispatches on the addressing mode of m.
func (e *Emitter) contiguousMemory(c contiguous, size ElementSize, zt ZRegister, pg register, m MemoryOperand) {
	switch m.Kind {
	case MemScalarImm:
		e.contiguousImmediate(c, size, zt, pg, m.Base, m.Imm)
	case MemScalarScalar:
		e.contiguousRegister(c, size, zt, pg, m.Base, m.Offset)
	case MemScalarVector, MemVectorImm:
		e.check(c.inst, notImplementedf("%s addressing is not supported", m.Kind))
	default:
		e.check(c.inst, invalidf("invalid memory operand kind %s", m.Kind))
	}
}

func (e *Emitter) Ld1bImm(size ElementSize, zt ZRegister, pg PRegisterZero, rn Register, imm int32) {
	e.contiguousImmediate(ld1b, size, zt, pg, rn, imm)
}

func (e *Emitter) Ld1sbImm(size ElementSize, zt ZRegister, pg PRegisterZero, rn Register, imm int32) {
	e.contiguousImmediate(ld1sb, size, zt, pg, rn, imm)
}

func (e *Emitter) Ld1hImm(size ElementSize, zt ZRegister, pg PRegisterZero, rn Register, imm int32) {
	e.contiguousImmediate(ld1h, size, zt, pg, rn, imm)
}

func (e *Emitter) Ld1shImm(size ElementSize, zt ZRegister, pg PRegisterZero, rn Register, imm int32) {
	e.contiguousImmediate(ld1sh, size, zt, pg, rn, imm)
}

func (e *Emitter) Ld1wImm(size ElementSize, zt ZRegister, pg PRegisterZero, rn Register, imm int32) {
	e.contiguousImmediate(ld1w, size, zt, pg, rn, imm)
}

func (e *Emitter) Ld1swImm(size ElementSize, zt ZRegister, pg PRegisterZero, rn Register, imm int32) {
	e.contiguousImmediate(ld1sw, size, zt, pg, rn, imm)
}

func (e *Emitter) Ld1dImm(size ElementSize, zt ZRegister, pg PRegisterZero, rn Register, imm int32) {
	e.contiguousImmediate(ld1d, size, zt, pg, rn, imm)
}

func (e *Emitter) Ld1bReg(size ElementSize, zt ZRegister, pg PRegisterZero, rn, rm Register) {
	e.contiguousRegister(ld1b, size, zt, pg, rn, rm)
}

func (e *Emitter) Ld1sbReg(size ElementSize, zt ZRegister, pg PRegisterZero, rn, rm Register) {
	e.contiguousRegister(ld1sb, size, zt, pg, rn, rm)
}

func (e *Emitter) Ld1hReg(size ElementSize, zt ZRegister, pg PRegisterZero, rn, rm Register) {
	e.contiguousRegister(ld1h, size, zt, pg, rn, rm)
}

func (e *Emitter) Ld1shReg(size ElementSize, zt ZRegister, pg PRegisterZero, rn, rm Register) {
	e.contiguousRegister(ld1sh, size, zt, pg, rn, rm)
}

func (e *Emitter) Ld1wReg(size ElementSize, zt ZRegister, pg PRegisterZero, rn, rm Register) {
	e.contiguousRegister(ld1w, size, zt, pg, rn, rm)
}

func (e *Emitter) Ld1swReg(size ElementSize, zt ZRegister, pg PRegisterZero, rn, rm Register) {
	e.contiguousRegister(ld1sw, size, zt, pg, rn, rm)
}

func (e *Emitter) Ld1dReg(size ElementSize, zt ZRegister, pg PRegisterZero, rn, rm Register) {
	e.contiguousRegister(ld1d, size, zt, pg, rn, rm)
}

func (e *Emitter) St1bImm(size ElementSize, zt ZRegister, pg PRegister, rn Register, imm int32) {
	e.contiguousImmediate(st1b, size, zt, pg, rn, imm)
}

func (e *Emitter) St1hImm(size ElementSize, zt ZRegister, pg PRegister, rn Register, imm int32) {
	e.contiguousImmediate(st1h, size, zt, pg, rn, imm)
}

func (e *Emitter) St1wImm(size ElementSize, zt ZRegister, pg PRegister, rn Register, imm int32) {
	e.contiguousImmediate(st1w, size, zt, pg, rn, imm)
}

func (e *Emitter) St1dImm(size ElementSize, zt ZRegister, pg PRegister, rn Register, imm int32) {
	e.contiguousImmediate(st1d, size, zt, pg, rn, imm)
}

func (e *Emitter) St1bReg(size ElementSize, zt ZRegister, pg PRegister, rn, rm Register) {
	e.contiguousRegister(st1b, size, zt, pg, rn, rm)
}

func (e *Emitter) St1hReg(size ElementSize, zt ZRegister, pg PRegister, rn, rm Register) {
	e.contiguousRegister(st1h, size, zt, pg, rn, rm)
}

func (e *Emitter) St1wReg(size ElementSize, zt ZRegister, pg PRegister, rn, rm Register) {
	e.contiguousRegister(st1w, size, zt, pg, rn, rm)
}

func (e *Emitter) St1dReg(size ElementSize, zt ZRegister, pg PRegister, rn, rm Register) {
	e.contiguousRegister(st1d, size, zt, pg, rn, rm)
}

// Ld1b loads bytes zero-extended to elements of size from m. Only the scalar
// plus scalar and scalar plus immediate modes are supported; the others fail
// with errdefs.ErrNotImplemented.
func (e *Emitter) Ld1b(size ElementSize, zt ZRegister, pg PRegisterZero, m MemoryOperand) {
	e.contiguousMemory(ld1b, size, zt, pg, m)
}

// Ld1sb loads bytes sign-extended to elements of size from m.
func (e *Emitter) Ld1sb(size ElementSize, zt ZRegister, pg PRegisterZero, m MemoryOperand) {
	e.contiguousMemory(ld1sb, size, zt, pg, m)
}

func (e *Emitter) Ld1h(size ElementSize, zt ZRegister, pg PRegisterZero, m MemoryOperand) {
	e.contiguousMemory(ld1h, size, zt, pg, m)
}

func (e *Emitter) Ld1sh(size ElementSize, zt ZRegister, pg PRegisterZero, m MemoryOperand) {
	e.contiguousMemory(ld1sh, size, zt, pg, m)
}

func (e *Emitter) Ld1w(size ElementSize, zt ZRegister, pg PRegisterZero, m MemoryOperand) {
	e.contiguousMemory(ld1w, size, zt, pg, m)
}

func (e *Emitter) Ld1sw(size ElementSize, zt ZRegister, pg PRegisterZero, m MemoryOperand) {
	e.contiguousMemory(ld1sw, size, zt, pg, m)
}

func (e *Emitter) Ld1d(size ElementSize, zt ZRegister, pg PRegisterZero, m MemoryOperand) {
	e.contiguousMemory(ld1d, size, zt, pg, m)
}

// St1b stores the low byte of each active element of zt to m.
func (e *Emitter) St1b(size ElementSize, zt ZRegister, pg PRegister, m MemoryOperand) {
	e.contiguousMemory(st1b, size, zt, pg, m)
}

func (e *Emitter) St1h(size ElementSize, zt ZRegister, pg PRegister, m MemoryOperand) {
	e.contiguousMemory(st1h, size, zt, pg, m)
}

func (e *Emitter) St1w(size ElementSize, zt ZRegister, pg PRegister, m MemoryOperand) {
	e.contiguousMemory(st1w, size, zt, pg, m)
}

func (e *Emitter) St1d(size ElementSize, zt ZRegister, pg PRegister, m MemoryOperand) {
	e.contiguousMemory(st1d, size, zt, pg, m)
}
