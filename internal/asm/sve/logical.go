package sve

// Bitwise logical operations, predicated.

func (e *Emitter) OrrPred(size ElementSize, zd ZRegister, pg PRegisterMerge, zdn, zm ZRegister) {
	e.destructive("orr", opLogicalPred, 0b000, size, zd, pg, zdn, zm)
}

func (e *Emitter) EorPred(size ElementSize, zd ZRegister, pg PRegisterMerge, zdn, zm ZRegister) {
	e.destructive("eor", opLogicalPred, 0b001, size, zd, pg, zdn, zm)
}

func (e *Emitter) AndPred(size ElementSize, zd ZRegister, pg PRegisterMerge, zdn, zm ZRegister) {
	e.destructive("and", opLogicalPred, 0b010, size, zd, pg, zdn, zm)
}

func (e *Emitter) BicPred(size ElementSize, zd ZRegister, pg PRegisterMerge, zdn, zm ZRegister) {
	e.destructive("bic", opLogicalPred, 0b011, size, zd, pg, zdn, zm)
}

// Bitwise logical operations, unpredicated. These act on the whole vector, so
// they take no element size.

func (e *Emitter) And(zd, zn, zm ZRegister) {
	e.bitwise("and", 0b00, zd, zn, zm)
}

func (e *Emitter) Orr(zd, zn, zm ZRegister) {
	e.bitwise("orr", 0b01, zd, zn, zm)
}

func (e *Emitter) Eor(zd, zn, zm ZRegister) {
	e.bitwise("eor", 0b10, zd, zn, zm)
}

func (e *Emitter) Bic(zd, zn, zm ZRegister) {
	e.bitwise("bic", 0b11, zd, zn, zm)
}

// Bitwise unary operations, predicated.

// Cls counts the leading sign bits of each active element.
func (e *Emitter) Cls(size ElementSize, zd ZRegister, pg PRegisterMerge, zn ZRegister) {
	e.unary("cls", opBitUnaryPred, 0b000, size, zd, pg, zn)
}

// Clz counts the leading zero bits of each active element.
func (e *Emitter) Clz(size ElementSize, zd ZRegister, pg PRegisterMerge, zn ZRegister) {
	e.unary("clz", opBitUnaryPred, 0b001, size, zd, pg, zn)
}

// Cnt counts the set bits of each active element.
func (e *Emitter) Cnt(size ElementSize, zd ZRegister, pg PRegisterMerge, zn ZRegister) {
	e.unary("cnt", opBitUnaryPred, 0b010, size, zd, pg, zn)
}

// Cnot sets each active element to 1 if it is zero and to 0 otherwise.
func (e *Emitter) Cnot(size ElementSize, zd ZRegister, pg PRegisterMerge, zn ZRegister) {
	e.unary("cnot", opBitUnaryPred, 0b011, size, zd, pg, zn)
}

func (e *Emitter) Not(size ElementSize, zd ZRegister, pg PRegisterMerge, zn ZRegister) {
	e.unary("not", opBitUnaryPred, 0b110, size, zd, pg, zn)
}

// SVE2 bitwise ternary operations. zd must equal zdn.
//
// https://developer.arm.com/documentation/ddi0602/2022-09/Index-by-Encoding/SVE-encodings#sve_int_bin_cons_log

// Eor3 computes zdn ^ zm ^ zk.
func (e *Emitter) Eor3(zd, zdn, zm, zk ZRegister) {
	e.bitwiseTernary("eor3", 0b00, 0, zd, zdn, zm, zk)
}

// Bsl selects bits of zdn where zk is set and bits of zm elsewhere.
func (e *Emitter) Bsl(zd, zdn, zm, zk ZRegister) {
	e.bitwiseTernary("bsl", 0b00, 1, zd, zdn, zm, zk)
}

// Bcax computes zdn ^ (zm &^ zk).
func (e *Emitter) Bcax(zd, zdn, zm, zk ZRegister) {
	e.bitwiseTernary("bcax", 0b01, 0, zd, zdn, zm, zk)
}

func (e *Emitter) Bsl1n(zd, zdn, zm, zk ZRegister) {
	e.bitwiseTernary("bsl1n", 0b01, 1, zd, zdn, zm, zk)
}

func (e *Emitter) Bsl2n(zd, zdn, zm, zk ZRegister) {
	e.bitwiseTernary("bsl2n", 0b10, 1, zd, zdn, zm, zk)
}

func (e *Emitter) Nbsl(zd, zdn, zm, zk ZRegister) {
	e.bitwiseTernary("nbsl", 0b11, 1, zd, zdn, zm, zk)
}
