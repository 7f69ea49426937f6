package sve

// Predicate logical operations. The S forms also set the condition flags.
//
// https://developer.arm.com/documentation/ddi0602/2022-09/Index-by-Encoding/SVE-encodings#sve_int_pred_log

func (e *Emitter) PAnd(pd PRegister, pg PRegisterZero, pn, pm PRegister) {
	e.predicateLogical("and", 0b0000, pd, pg, pn, pm)
}

func (e *Emitter) Ands(pd PRegister, pg PRegisterZero, pn, pm PRegister) {
	e.predicateLogical("ands", 0b0100, pd, pg, pn, pm)
}

func (e *Emitter) PBic(pd PRegister, pg PRegisterZero, pn, pm PRegister) {
	e.predicateLogical("bic", 0b0001, pd, pg, pn, pm)
}

func (e *Emitter) Bics(pd PRegister, pg PRegisterZero, pn, pm PRegister) {
	e.predicateLogical("bics", 0b0101, pd, pg, pn, pm)
}

func (e *Emitter) PEor(pd PRegister, pg PRegisterZero, pn, pm PRegister) {
	e.predicateLogical("eor", 0b0010, pd, pg, pn, pm)
}

func (e *Emitter) Eors(pd PRegister, pg PRegisterZero, pn, pm PRegister) {
	e.predicateLogical("eors", 0b0110, pd, pg, pn, pm)
}

// PSel selects elements of pn where pg is true and of pm elsewhere.
func (e *Emitter) PSel(pd, pg, pn, pm PRegister) {
	e.predicateLogical("sel", 0b0011, pd, pg, pn, pm)
}

func (e *Emitter) POrr(pd PRegister, pg PRegisterZero, pn, pm PRegister) {
	e.predicateLogical("orr", 0b1000, pd, pg, pn, pm)
}

func (e *Emitter) Orn(pd PRegister, pg PRegisterZero, pn, pm PRegister) {
	e.predicateLogical("orn", 0b1001, pd, pg, pn, pm)
}

func (e *Emitter) Nor(pd PRegister, pg PRegisterZero, pn, pm PRegister) {
	e.predicateLogical("nor", 0b1010, pd, pg, pn, pm)
}

func (e *Emitter) Nand(pd PRegister, pg PRegisterZero, pn, pm PRegister) {
	e.predicateLogical("nand", 0b1011, pd, pg, pn, pm)
}

func (e *Emitter) Orrs(pd PRegister, pg PRegisterZero, pn, pm PRegister) {
	e.predicateLogical("orrs", 0b1100, pd, pg, pn, pm)
}

func (e *Emitter) Orns(pd PRegister, pg PRegisterZero, pn, pm PRegister) {
	e.predicateLogical("orns", 0b1101, pd, pg, pn, pm)
}

func (e *Emitter) Nors(pd PRegister, pg PRegisterZero, pn, pm PRegister) {
	e.predicateLogical("nors", 0b1110, pd, pg, pn, pm)
}

func (e *Emitter) Nands(pd PRegister, pg PRegisterZero, pn, pm PRegister) {
	e.predicateLogical("nands", 0b1111, pd, pg, pn, pm)
}

// PNot inverts the active elements of pn. It is EOR with pg as the second source.
func (e *Emitter) PNot(pd PRegister, pg PRegisterZero, pn PRegister) {
	e.predicateLogical("not", 0b0010, pd, pg, pn, pg)
}

// PMovMerge copies the active elements of pn to pd. It is SEL with pd as the
// second source.
func (e *Emitter) PMovMerge(pd PRegister, pg PRegisterMerge, pn PRegister) {
	e.predicateLogical("mov", 0b0011, pd, pg, pn, pd)
}

// PMovZero copies the active elements of pn to pd, zeroing the others.
func (e *Emitter) PMovZero(pd PRegister, pg PRegisterZero, pn PRegister) {
	e.predicateLogical("mov", 0b0000, pd, pg, pn, pn)
}

// PMovsZero is PMovZero setting the condition flags.
func (e *Emitter) PMovsZero(pd PRegister, pg PRegisterZero, pn PRegister) {
	e.predicateLogical("movs", 0b0100, pd, pg, pn, pn)
}

// PMov copies pn to pd.
func (e *Emitter) PMov(pd, pn PRegister) {
	e.predicateLogical("mov", 0b1000, pd, pn, pn, pn)
}

// PMovs copies pn to pd and sets the condition flags.
func (e *Emitter) PMovs(pd, pn PRegister) {
	e.predicateLogical("movs", 0b1100, pd, pn, pn, pn)
}

// Predicate permutes.

func (e *Emitter) PRev(size ElementSize, pd, pn PRegister) {
	e.permutePredicate("rev", size, 0b10100, 0, 0, pd, pn)
}

// Punpklo unpacks the low half of pn into the 16-bit lanes of pd.
func (e *Emitter) Punpklo(pd, pn PRegister) {
	e.permutePredicate("punpklo", Element8, 0b10000, 0, 0, pd, pn)
}

// Punpkhi unpacks the high half of pn into the 16-bit lanes of pd.
func (e *Emitter) Punpkhi(pd, pn PRegister) {
	e.permutePredicate("punpkhi", Element8, 0b10001, 0, 0, pd, pn)
}

func (e *Emitter) PZip1(size ElementSize, pd, pn, pm PRegister) {
	e.permutePredicates("zip1", 0b000, size, pd, pn, pm)
}

func (e *Emitter) PZip2(size ElementSize, pd, pn, pm PRegister) {
	e.permutePredicates("zip2", 0b001, size, pd, pn, pm)
}

func (e *Emitter) PUzp1(size ElementSize, pd, pn, pm PRegister) {
	e.permutePredicates("uzp1", 0b010, size, pd, pn, pm)
}

func (e *Emitter) PUzp2(size ElementSize, pd, pn, pm PRegister) {
	e.permutePredicates("uzp2", 0b011, size, pd, pn, pm)
}

func (e *Emitter) PTrn1(size ElementSize, pd, pn, pm PRegister) {
	e.permutePredicates("trn1", 0b100, size, pd, pn, pm)
}

func (e *Emitter) PTrn2(size ElementSize, pd, pn, pm PRegister) {
	e.permutePredicates("trn2", 0b101, size, pd, pn, pm)
}

// permutePredicates encodes the two-source predicate permutes, where pm takes
// the place of op1 and opc:H sits above bit 9.
func (e *Emitter) permutePredicates(inst string, opc uint32, size ElementSize, pd, pn, pm PRegister) {
	if !e.check(inst, pregs(pm)) {
		return
	}
	e.permutePredicate(inst, size, pm.Index(), opc<<1, 0, pd, pn)
}

// Partition breaks.

// Brkpa breaks after the first true element of pm, if the last active element
// of pn was true.
func (e *Emitter) Brkpa(pd PRegister, pg PRegisterZero, pn, pm PRegister) {
	e.propagateBreak("brkpa", 0b0000, 0b11, 0, pd, pg, pn, pm)
}

func (e *Emitter) Brkpb(pd PRegister, pg PRegisterZero, pn, pm PRegister) {
	e.propagateBreak("brkpb", 0b0000, 0b11, 1, pd, pg, pn, pm)
}

func (e *Emitter) Brkpas(pd PRegister, pg PRegisterZero, pn, pm PRegister) {
	e.propagateBreak("brkpas", 0b0100, 0b11, 0, pd, pg, pn, pm)
}

func (e *Emitter) Brkpbs(pd PRegister, pg PRegisterZero, pn, pm PRegister) {
	e.propagateBreak("brkpbs", 0b0100, 0b11, 1, pd, pg, pn, pm)
}

// Brkn propagates the break to the next partition: pdm is cleared unless the
// last active element of pn is true. pd must equal pdm.
func (e *Emitter) Brkn(pd PRegister, pg PRegisterZero, pn, pdm PRegister) {
	e.breakNext("brkn", 0b0001, pd, pg, pn, pdm)
}

func (e *Emitter) Brkns(pd PRegister, pg PRegisterZero, pn, pdm PRegister) {
	e.breakNext("brkns", 0b0101, pd, pg, pn, pdm)
}

func (e *Emitter) breakNext(inst string, opc uint32, pd PRegister, pg PRegisterZero, pn, pdm PRegister) {
	if !e.check(inst, aliased(pd, pdm, "pd", "pdm")) {
		return
	}
	// The pm field holds the fixed 0b1000 of the encoding.
	e.propagateBreak(inst, opc, 0b01, 0, pd, pg, pn, P8)
}

func (e *Emitter) Brka(pd PRegister, pg PRegisterZero, pn PRegister) {
	e.propagateBreak("brka", 0b0001, 0b01, 0, pd, pg, pn, P0)
}

func (e *Emitter) BrkaMerge(pd PRegister, pg PRegisterMerge, pn PRegister) {
	e.propagateBreak("brka", 0b0001, 0b01, 1, pd, pg, pn, P0)
}

func (e *Emitter) Brkas(pd PRegister, pg PRegisterZero, pn PRegister) {
	e.propagateBreak("brkas", 0b0101, 0b01, 0, pd, pg, pn, P0)
}

func (e *Emitter) Brkb(pd PRegister, pg PRegisterZero, pn PRegister) {
	e.propagateBreak("brkb", 0b1001, 0b01, 0, pd, pg, pn, P0)
}

func (e *Emitter) BrkbMerge(pd PRegister, pg PRegisterMerge, pn PRegister) {
	e.propagateBreak("brkb", 0b1001, 0b01, 1, pd, pg, pn, P0)
}

func (e *Emitter) Brkbs(pd PRegister, pg PRegisterZero, pn PRegister) {
	e.propagateBreak("brkbs", 0b1101, 0b01, 0, pd, pg, pn, P0)
}

// Predicate initialization, iteration and the first-fault register.

// Pnext finds the next active element of pv after the first true element of
// pdn. pd must equal pdn.
func (e *Emitter) Pnext(size ElementSize, pd, pv, pdn PRegister) {
	const inst = "pnext"
	if !e.check(inst, pregs(pv, pdn), aliased(pd, pdn, "pd", "pdn")) {
		return
	}
	e.predicateMisc(inst, 0b1001, 0b00010, pv.Index(), size, pd)
}

// Ptest sets the condition flags from pn, governed by pg.
func (e *Emitter) Ptest(pg, pn PRegister) {
	const inst = "ptest"
	if !e.check(inst, pregs(pg, pn)) {
		return
	}
	e.predicateMisc(inst, 0b0000, pg.Index()<<1, pn.Index(), Element16, P0)
}

// Pfirst sets the first active element of pdn. pd must equal pdn.
func (e *Emitter) Pfirst(pd, pg, pdn PRegister) {
	const inst = "pfirst"
	if !e.check(inst, pregs(pg, pdn), aliased(pd, pdn, "pd", "pdn")) {
		return
	}
	e.predicateMisc(inst, 0b1000, 0b00000, pg.Index(), Element16, pd)
}

// Pfalse clears pd.
func (e *Emitter) Pfalse(pd PRegister) {
	e.predicateMisc("pfalse", 0b1000, 0b10010, 0, Element8, pd)
}

// RdffrPred reads the first-fault register under pg.
func (e *Emitter) RdffrPred(pd PRegister, pg PRegisterZero) {
	e.readFFR("rdffr", Element8, pd, pg)
}

// Rdffrs is RdffrPred setting the condition flags.
func (e *Emitter) Rdffrs(pd PRegister, pg PRegisterZero) {
	e.readFFR("rdffrs", Element16, pd, pg)
}

func (e *Emitter) readFFR(inst string, s ElementSize, pd PRegister, pg PRegisterZero) {
	if !e.check(inst, pregs(pg)) {
		return
	}
	e.predicateMisc(inst, 0b1000, 0b11000, pg.Index(), s, pd)
}

// Rdffr reads the first-fault register.
func (e *Emitter) Rdffr(pd PRegister) {
	e.predicateMisc("rdffr", 0b1001, 0b11000, 0, Element8, pd)
}

// Ptrue sets the elements of pd selected by pattern.
func (e *Emitter) Ptrue(size ElementSize, pd PRegister, pattern PredicatePattern) {
	e.predicateInit("ptrue", 0b1000, size, pd, pattern)
}

// Ptrues is Ptrue setting the condition flags.
func (e *Emitter) Ptrues(size ElementSize, pd PRegister, pattern PredicatePattern) {
	e.predicateInit("ptrues", 0b1001, size, pd, pattern)
}

func (e *Emitter) predicateInit(inst string, op0 uint32, size ElementSize, pd PRegister, pattern PredicatePattern) {
	if !e.check(inst, inRange("pattern", int64(pattern), 0, 31)) {
		return
	}
	e.predicateMisc(inst, op0, 0b10000, uint32(pattern), size, pd)
}

// Wrffr writes pn to the first-fault register.
func (e *Emitter) Wrffr(pn PRegister) {
	const inst = "wrffr"
	if !e.check(inst, pregs(pn)) {
		return
	}
	e.emit(inst, opWriteFFR|pn.Index()<<5)
}

// Setffr sets every element of the first-fault register.
func (e *Emitter) Setffr() {
	e.emit("setffr", opWriteFFR|1<<18)
}
