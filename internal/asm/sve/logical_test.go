package sve

import (
	"testing"

	cerrdefs "github.com/containerd/errdefs"

	"github.com/tetratelabs/sveasm/internal/features"
)

func TestLogical(t *testing.T) {
	m := P0.Merging()
	runEncodingCases(t, []encodingCase{
		{name: "and z0.d, z1.d, z2.d", emit: func(e *Emitter) { e.And(Z0, Z1, Z2) }, exp: 0x04223020},
		{name: "orr z0.d, z1.d, z2.d", emit: func(e *Emitter) { e.Orr(Z0, Z1, Z2) }, exp: 0x04623020},
		{name: "eor z0.d, z1.d, z2.d", emit: func(e *Emitter) { e.Eor(Z0, Z1, Z2) }, exp: 0x04a23020},
		{name: "bic z0.d, z1.d, z2.d", emit: func(e *Emitter) { e.Bic(Z0, Z1, Z2) }, exp: 0x04e23020},
		{name: "orr z0.s, p0/m, z0.s, z1.s", emit: func(e *Emitter) { e.OrrPred(Element32, Z0, m, Z0, Z1) }, exp: 0x04980020},
		{name: "bic z0.d, p0/m, z0.d, z1.d", emit: func(e *Emitter) { e.BicPred(Element64, Z0, m, Z0, Z1) }, exp: 0x04db0020},
		{name: "cls z0.s, p0/m, z1.s", emit: func(e *Emitter) { e.Cls(Element32, Z0, m, Z1) }, exp: 0x0498a020},
		{name: "clz z0.s, p0/m, z1.s", emit: func(e *Emitter) { e.Clz(Element32, Z0, m, Z1) }, exp: 0x0499a020},
		{name: "cnot z0.b, p0/m, z1.b", emit: func(e *Emitter) { e.Cnot(Element8, Z0, m, Z1) }, exp: 0x041ba020},
		{name: "cnt z0.s, p0/m, z1.s", emit: func(e *Emitter) { e.Cnt(Element32, Z0, m, Z1) }, exp: 0x049aa020},
		{name: "not z0.s, p0/m, z1.s", emit: func(e *Emitter) { e.Not(Element32, Z0, m, Z1) }, exp: 0x049ea020},
		{name: "eor3 z0.d, z0.d, z1.d, z2.d", emit: func(e *Emitter) { e.Eor3(Z0, Z0, Z1, Z2) }, exp: 0x04213840},
		{name: "bsl z0.d, z0.d, z1.d, z2.d", emit: func(e *Emitter) { e.Bsl(Z0, Z0, Z1, Z2) }, exp: 0x04213c40},
		{name: "bcax z0.d, z0.d, z1.d, z2.d", emit: func(e *Emitter) { e.Bcax(Z0, Z0, Z1, Z2) }, exp: 0x04613840},
		{name: "bsl1n z0.d, z0.d, z1.d, z2.d", emit: func(e *Emitter) { e.Bsl1n(Z0, Z0, Z1, Z2) }, exp: 0x04613c40},
		{name: "bsl2n z0.d, z0.d, z1.d, z2.d", emit: func(e *Emitter) { e.Bsl2n(Z0, Z0, Z1, Z2) }, exp: 0x04a13c40},
		{name: "nbsl z0.d, z0.d, z1.d, z2.d", emit: func(e *Emitter) { e.Nbsl(Z0, Z0, Z1, Z2) }, exp: 0x04e13c40},
	})
}

func TestLogical_Rejected(t *testing.T) {
	runRejectionCases(t, []rejectionCase{
		{
			name:   "eor3 not destructive",
			emit:   func(e *Emitter) { e.Eor3(Z0, Z1, Z2, Z3) },
			target: cerrdefs.ErrInvalidArgument,
		},
		{
			name:     "sve2 disabled",
			emit:     func(e *Emitter) { e.Eor3(Z0, Z0, Z1, Z2) },
			target:   cerrdefs.ErrInvalidArgument,
			features: featureSet(features.None),
		},
	})
}
