package sve

import (
	"fmt"
	"math"
	"testing"

	cerrdefs "github.com/containerd/errdefs"
	"github.com/stretchr/testify/require"
)

func TestMovement(t *testing.T) {
	m := P0.Merging()
	runEncodingCases(t, []encodingCase{
		{name: "dup z0.s, z1.s[0]", emit: func(e *Emitter) { e.DupIndexed(Element32, Z0, Z1, 0) }, exp: 0x05242020},
		{name: "dup z0.b, z1.b[63]", emit: func(e *Emitter) { e.DupIndexed(Element8, Z0, Z1, 63) }, exp: 0x05ff2020},
		{name: "dup z0.q, z1.q[3]", emit: func(e *Emitter) { e.DupIndexed(Element128, Z0, Z1, 3) }, exp: 0x05f02020},
		{name: "dup z0.s, w1", emit: func(e *Emitter) { e.Dup(Element32, Z0, W1) }, exp: 0x05a03820},
		{name: "mov z0.d, sp", emit: func(e *Emitter) { e.MovR(Element64, Z0, SP) }, exp: 0x05e03be0},
		{name: "dup z0.b, #1", emit: func(e *Emitter) { e.DupImm(Element8, Z0, 1, false) }, exp: 0x2538c020},
		{name: "mov z0.h, #-1, lsl #8", emit: func(e *Emitter) { e.MovImm(Element16, Z0, -1, true) }, exp: 0x2578ffe0},
		{name: "fmov z0.s, #1.0", emit: func(e *Emitter) { e.Fmov(Element32, Z0, 1.0) }, exp: 0x25b9ce00},
		{name: "fdup z0.d, #-2.0", emit: func(e *Emitter) { e.Fdup(Element64, Z0, -2.0) }, exp: 0x25f9d000},
		{name: "mov z0.d, z1.d", emit: func(e *Emitter) { e.Mov(Z0, Z1) }, exp: 0x04613020},
		{name: "sel z0.s, p0, z1.s, z2.s", emit: func(e *Emitter) { e.Sel(Element32, Z0, P0, Z1, Z2) }, exp: 0x05a2c020},
		{name: "mov z0.s, p1/m, z1.s", emit: func(e *Emitter) { e.MovMerge(Element32, Z0, P1.Merging(), Z1) }, exp: 0x05a0c420},
		{name: "cpy z0.s, p0/m, w1", emit: func(e *Emitter) { e.Cpy(Element32, Z0, m, W1) }, exp: 0x05a8a020},
		{name: "mov z0.s, p0/m, s1", emit: func(e *Emitter) { e.CpyV(Element32, Z0, m, V1) }, exp: 0x05a08020},
		{name: "insr z0.s, w1", emit: func(e *Emitter) { e.Insr(Element32, Z0, W1) }, exp: 0x05a43820},
		{name: "insr z0.d, d1", emit: func(e *Emitter) { e.InsrV(Element64, Z0, V1) }, exp: 0x05f43820},
		{name: "movprfx z0, z1", emit: func(e *Emitter) { e.Movprfx(Z0, Z1) }, exp: 0x0420bc20},
		{name: "movprfx z0.s, p0/m, z1.s", emit: func(e *Emitter) { e.MovprfxMerge(Element32, Z0, m, Z1) }, exp: 0x04912020},
		{name: "movprfx z0.s, p0/z, z1.s", emit: func(e *Emitter) { e.MovprfxZero(Element32, Z0, P0.Zeroing(), Z1) }, exp: 0x04902020},
		{name: "tbl z0.b, {z1.b}, z2.b", emit: func(e *Emitter) { e.Tbl(Element8, Z0, Z1, Z2) }, exp: 0x05223020},
		{name: "tbx z0.b, z1.b, z2.b", emit: func(e *Emitter) { e.Tbx(Element8, Z0, Z1, Z2) }, exp: 0x05222c20},
		{name: "zip1 z0.s, z1.s, z2.s", emit: func(e *Emitter) { e.Zip1(Element32, Z0, Z1, Z2) }, exp: 0x05a26020},
		{name: "uzp1 z0.s, z1.s, z2.s", emit: func(e *Emitter) { e.Uzp1(Element32, Z0, Z1, Z2) }, exp: 0x05a26820},
		{name: "trn2 z0.d, z1.d, z2.d", emit: func(e *Emitter) { e.Trn2(Element64, Z0, Z1, Z2) }, exp: 0x05e27420},
		{name: "rev z0.b, z1.b", emit: func(e *Emitter) { e.Rev(Element8, Z0, Z1) }, exp: 0x05383820},
		{name: "uunpklo z0.s, z1.h", emit: func(e *Emitter) { e.Uunpklo(Element32, Z0, Z1) }, exp: 0x05b23820},
		{name: "sunpkhi z0.d, z1.s", emit: func(e *Emitter) { e.Sunpkhi(Element64, Z0, Z1) }, exp: 0x05f13820},
		{name: "compact z0.s, p0, z1.s", emit: func(e *Emitter) { e.Compact(Element32, Z0, P0, Z1) }, exp: 0x05a18020},
		{name: "splice z0.s, p0, z0.s, z1.s", emit: func(e *Emitter) { e.SpliceDestructive(Element32, Z0, P0, Z0, Z1) }, exp: 0x05ac8020},
		{name: "splice z0.s, p0, {z1.s, z2.s}", emit: func(e *Emitter) { e.SpliceConstructive(Element32, Z0, P0, Z1, Z2) }, exp: 0x05ad8020},
		{name: "lasta w0, p0, z1.s", emit: func(e *Emitter) { e.Lasta(Element32, W0, P0, Z1) }, exp: 0x05a0a020},
		{name: "lastb x0, p0, z1.d", emit: func(e *Emitter) { e.Lastb(Element64, X0, P0, Z1) }, exp: 0x05e1a020},
		{name: "revb z0.s, p0/m, z1.s", emit: func(e *Emitter) { e.Revb(Element32, Z0, m, Z1) }, exp: 0x05a48020},
		{name: "rbit z0.b, p0/m, z1.b", emit: func(e *Emitter) { e.Rbit(Element8, Z0, m, Z1) }, exp: 0x05278020},
		{name: "clasta z0.s, p0, z0.s, z1.s", emit: func(e *Emitter) { e.Clasta(Element32, Z0, P0, Z0, Z1) }, exp: 0x05a88020},
		{name: "clastb x0, p0, x0, z1.d", emit: func(e *Emitter) { e.ClastbR(Element64, X0, P0, X0, Z1) }, exp: 0x05f1a020},
		{name: "ext z0.b, z0.b, z1.b, #1", emit: func(e *Emitter) { e.ExtDestructive(Z0, Z0, Z1, 1) }, exp: 0x05200420},
		{name: "ext z0.b, z0.b, z1.b, #255", emit: func(e *Emitter) { e.ExtDestructive(Z0, Z0, Z1, 255) }, exp: 0x053f1c20},
		{name: "ext z0.b, {z1.b, z2.b}, #1", emit: func(e *Emitter) { e.ExtConstructive(Z0, Z1, Z2, 1) }, exp: 0x05600420},
	})
}

func TestMovement_Rejected(t *testing.T) {
	m := P0.Merging()
	runRejectionCases(t, []rejectionCase{
		{
			name:   "dup index above 512 bits",
			emit:   func(e *Emitter) { e.DupIndexed(Element32, Z0, Z1, 16) },
			target: cerrdefs.ErrOutOfRange,
		},
		{
			name:   "dup 128-bit index",
			emit:   func(e *Emitter) { e.DupIndexed(Element128, Z0, Z1, 4) },
			target: cerrdefs.ErrOutOfRange,
		},
		{
			name:   "dup register width",
			emit:   func(e *Emitter) { e.Dup(Element32, Z0, X1) },
			target: cerrdefs.ErrInvalidArgument,
		},
		{
			name:   "dup shifted byte immediate",
			emit:   func(e *Emitter) { e.DupImm(Element8, Z0, 1, true) },
			target: cerrdefs.ErrInvalidArgument,
		},
		{
			name:   "dup immediate range",
			emit:   func(e *Emitter) { e.DupImm(Element32, Z0, 128, false) },
			target: cerrdefs.ErrOutOfRange,
		},
		{
			name:   "fmov not representable",
			emit:   func(e *Emitter) { e.Fmov(Element32, Z0, 0.1) },
			target: cerrdefs.ErrOutOfRange,
		},
		{
			name:   "fmov byte elements",
			emit:   func(e *Emitter) { e.Fmov(Element8, Z0, 1) },
			target: cerrdefs.ErrInvalidArgument,
		},
		{
			name:   "splice not destructive",
			emit:   func(e *Emitter) { e.SpliceDestructive(Element32, Z0, P0, Z1, Z2) },
			target: cerrdefs.ErrInvalidArgument,
		},
		{
			name:   "splice not sequential",
			emit:   func(e *Emitter) { e.SpliceConstructive(Element32, Z0, P0, Z1, Z3) },
			target: cerrdefs.ErrInvalidArgument,
		},
		{
			name:   "ext offset",
			emit:   func(e *Emitter) { e.ExtDestructive(Z0, Z0, Z1, 256) },
			target: cerrdefs.ErrOutOfRange,
		},
		{
			name:   "compact bytes",
			emit:   func(e *Emitter) { e.Compact(Element8, Z0, P0, Z1) },
			target: cerrdefs.ErrInvalidArgument,
		},
		{
			name:   "governing predicate above p7",
			emit:   func(e *Emitter) { e.Lasta(Element32, W0, P8, Z1) },
			target: cerrdefs.ErrInvalidArgument,
		},
		{
			name:   "revb bytes",
			emit:   func(e *Emitter) { e.Revb(Element8, Z0, m, Z1) },
			target: cerrdefs.ErrInvalidArgument,
		},
		{
			name:   "clasta not destructive",
			emit:   func(e *Emitter) { e.ClastaR(Element32, W0, P0, W1, Z1) },
			target: cerrdefs.ErrInvalidArgument,
		},
		{
			name:   "vector register index",
			emit:   func(e *Emitter) { e.Rev(Element8, ZRegister(32), Z1) },
			target: cerrdefs.ErrInvalidArgument,
		},
	})
}

func TestExtConstructive_Wraps(t *testing.T) {
	sink := &wordSink{}
	e := NewEmitter(sink, nil)
	e.ExtConstructive(Z0, Z31, Z0, 0)
	require.NoError(t, e.Err())
	require.Equal(t, []uint32{0x056003e0}, sink.words)
}

func TestFloatImm8(t *testing.T) {
	seen := map[float64]uint32{}
	for imm8 := uint32(0); imm8 < 256; imm8++ {
		v := decodeFloatImm8(imm8)
		prev, ok := seen[v]
		require.False(t, ok, "%#x and %#x both decode to %v", prev, imm8, v)
		seen[v] = imm8

		actual, ok := floatImm8(v)
		require.True(t, ok)
		require.Equal(t, imm8, actual)
	}

	tests := []struct {
		v   float64
		exp uint32
	}{
		{v: 2.0, exp: 0x00},
		{v: 1.0, exp: 0x70},
		{v: 0.5, exp: 0x60},
		{v: 0.125, exp: 0x40},
		{v: 31.0, exp: 0x3f},
		{v: -0.5, exp: 0xe0},
		{v: 1.9375, exp: 0x7f},
	}
	for _, tt := range tests {
		tc := tt
		t.Run(fmt.Sprint(tc.v), func(t *testing.T) {
			actual, ok := floatImm8(tc.v)
			require.True(t, ok)
			require.Equal(t, tc.exp, actual)
		})
	}

	for _, v := range []float64{0, 0.1, 32, 0.0625, math.Inf(1), math.NaN()} {
		_, ok := floatImm8(v)
		require.False(t, ok, "%v", v)
	}
}
