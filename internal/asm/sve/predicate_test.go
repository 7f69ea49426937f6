package sve

import (
	"testing"

	cerrdefs "github.com/containerd/errdefs"
)

func TestPredicate(t *testing.T) {
	z := P1.Zeroing()
	runEncodingCases(t, []encodingCase{
		{name: "and p0.b, p1/z, p2.b, p3.b", emit: func(e *Emitter) { e.PAnd(P0, z, P2, P3) }, exp: 0x25034440},
		{name: "ands p0.b, p1/z, p2.b, p3.b", emit: func(e *Emitter) { e.Ands(P0, z, P2, P3) }, exp: 0x25434440},
		{name: "sel p0.b, p1, p2.b, p3.b", emit: func(e *Emitter) { e.PSel(P0, P1, P2, P3) }, exp: 0x25034650},
		{name: "orr p0.b, p1/z, p2.b, p3.b", emit: func(e *Emitter) { e.POrr(P0, z, P2, P3) }, exp: 0x25834440},
		{name: "nand p0.b, p1/z, p2.b, p3.b", emit: func(e *Emitter) { e.Nand(P0, z, P2, P3) }, exp: 0x25834650},
		{name: "nors p0.b, p1/z, p2.b, p3.b", emit: func(e *Emitter) { e.Nors(P0, z, P2, P3) }, exp: 0x25c34640},
		{name: "not p0.b, p1/z, p2.b", emit: func(e *Emitter) { e.PNot(P0, z, P2) }, exp: 0x25014640},
		{name: "mov p0.b, p1.b", emit: func(e *Emitter) { e.PMov(P0, P1) }, exp: 0x25814420},
		{name: "rev p0.b, p1.b", emit: func(e *Emitter) { e.PRev(Element8, P0, P1) }, exp: 0x05344020},
		{name: "punpklo p0.h, p1.b", emit: func(e *Emitter) { e.Punpklo(P0, P1) }, exp: 0x05304020},
		{name: "punpkhi p0.h, p1.b", emit: func(e *Emitter) { e.Punpkhi(P0, P1) }, exp: 0x05314020},
		{name: "zip1 p0.b, p1.b, p2.b", emit: func(e *Emitter) { e.PZip1(Element8, P0, P1, P2) }, exp: 0x05224020},
		{name: "trn2 p0.d, p1.d, p2.d", emit: func(e *Emitter) { e.PTrn2(Element64, P0, P1, P2) }, exp: 0x05e25420},
		{name: "brka p0.b, p1/z, p2.b", emit: func(e *Emitter) { e.Brka(P0, z, P2) }, exp: 0x25104440},
		{name: "brka p0.b, p1/m, p2.b", emit: func(e *Emitter) { e.BrkaMerge(P0, P1.Merging(), P2) }, exp: 0x25104450},
		{name: "brkb p0.b, p1/z, p2.b", emit: func(e *Emitter) { e.Brkb(P0, z, P2) }, exp: 0x25904440},
		{name: "brkpa p0.b, p1/z, p2.b, p3.b", emit: func(e *Emitter) { e.Brkpa(P0, z, P2, P3) }, exp: 0x2503c440},
		{name: "brkpbs p0.b, p1/z, p2.b, p3.b", emit: func(e *Emitter) { e.Brkpbs(P0, z, P2, P3) }, exp: 0x2543c450},
		{name: "brkn p0.b, p1/z, p2.b, p0.b", emit: func(e *Emitter) { e.Brkn(P0, z, P2, P0) }, exp: 0x25184440},
		{name: "pnext p0.s, p1, p0.s", emit: func(e *Emitter) { e.Pnext(Element32, P0, P1, P0) }, exp: 0x2599c420},
		{name: "ptest p1, p2.b", emit: func(e *Emitter) { e.Ptest(P1, P2) }, exp: 0x2550c440},
		{name: "pfirst p0.b, p1, p0.b", emit: func(e *Emitter) { e.Pfirst(P0, P1, P0) }, exp: 0x2558c020},
		{name: "pfalse p0.b", emit: func(e *Emitter) { e.Pfalse(P0) }, exp: 0x2518e400},
		{name: "rdffr p0.b, p1/z", emit: func(e *Emitter) { e.RdffrPred(P0, z) }, exp: 0x2518f020},
		{name: "rdffrs p0.b, p1/z", emit: func(e *Emitter) { e.Rdffrs(P0, z) }, exp: 0x2558f020},
		{name: "rdffr p0.b", emit: func(e *Emitter) { e.Rdffr(P0) }, exp: 0x2519f000},
		{name: "ptrue p0.b", emit: func(e *Emitter) { e.Ptrue(Element8, P0, PatternALL) }, exp: 0x2518e3e0},
		{name: "ptrue p0.d", emit: func(e *Emitter) { e.Ptrue(Element64, P0, PatternALL) }, exp: 0x25d8e3e0},
		{name: "ptrues p0.s", emit: func(e *Emitter) { e.Ptrues(Element32, P0, PatternALL) }, exp: 0x2599e3e0},
		{name: "ptrue p1.h, vl8", emit: func(e *Emitter) { e.Ptrue(Element16, P1, PatternVL8) }, exp: 0x2558e101},
		{name: "wrffr p0.b", emit: func(e *Emitter) { e.Wrffr(P0) }, exp: 0x25289000},
		{name: "wrffr p1.b", emit: func(e *Emitter) { e.Wrffr(P1) }, exp: 0x25289020},
		{name: "setffr", emit: func(e *Emitter) { e.Setffr() }, exp: 0x252c9000},
	})
}

func TestPredicate_Rejected(t *testing.T) {
	z := P1.Zeroing()
	runRejectionCases(t, []rejectionCase{
		{
			name:   "predicate register index",
			emit:   func(e *Emitter) { e.PAnd(PRegister(16), z, P2, P3) },
			target: cerrdefs.ErrInvalidArgument,
		},
		{
			name:   "brkn not destructive",
			emit:   func(e *Emitter) { e.Brkn(P0, z, P2, P3) },
			target: cerrdefs.ErrInvalidArgument,
		},
		{
			name:   "ptrue 128-bit elements",
			emit:   func(e *Emitter) { e.Ptrue(Element128, P0, PatternALL) },
			target: cerrdefs.ErrInvalidArgument,
		},
		{
			name:   "ptrue pattern",
			emit:   func(e *Emitter) { e.Ptrue(Element8, P0, PredicatePattern(32)) },
			target: cerrdefs.ErrOutOfRange,
		},
		{
			name:   "pnext not destructive",
			emit:   func(e *Emitter) { e.Pnext(Element32, P0, P1, P2) },
			target: cerrdefs.ErrInvalidArgument,
		},
	})
}
