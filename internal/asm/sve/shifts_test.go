package sve

import (
	"testing"

	cerrdefs "github.com/containerd/errdefs"

	"github.com/tetratelabs/sveasm/internal/features"
)

func TestShifts(t *testing.T) {
	m := P0.Merging()
	runEncodingCases(t, []encodingCase{
		{name: "asr z0.s, p0/m, z0.s, #1", emit: func(e *Emitter) { e.AsrImmPred(Element32, Z0, m, Z0, 1) }, exp: 0x044083e0},
		{name: "asr z0.d, p0/m, z0.d, #64", emit: func(e *Emitter) { e.AsrImmPred(Element64, Z0, m, Z0, 64) }, exp: 0x04808000},
		{name: "lsr z0.b, p0/m, z0.b, #8", emit: func(e *Emitter) { e.LsrImmPred(Element8, Z0, m, Z0, 8) }, exp: 0x04018100},
		{name: "lsl z0.s, p0/m, z0.s, #1", emit: func(e *Emitter) { e.LslImmPred(Element32, Z0, m, Z0, 1) }, exp: 0x04438020},
		{name: "asrd z0.s, p0/m, z0.s, #1", emit: func(e *Emitter) { e.Asrd(Element32, Z0, m, Z0, 1) }, exp: 0x044483e0},
		{name: "sqshl z0.s, p0/m, z0.s, #1", emit: func(e *Emitter) { e.Sqshl(Element32, Z0, m, Z0, 1) }, exp: 0x04468020},
		{name: "asr z0.s, p0/m, z0.s, z1.s", emit: func(e *Emitter) { e.AsrPred(Element32, Z0, m, Z0, Z1) }, exp: 0x04908020},
		{name: "lsl z0.s, p0/m, z0.s, z1.s", emit: func(e *Emitter) { e.LslPred(Element32, Z0, m, Z0, Z1) }, exp: 0x04938020},
		{name: "lslr z0.s, p0/m, z0.s, z1.s", emit: func(e *Emitter) { e.Lslr(Element32, Z0, m, Z0, Z1) }, exp: 0x04978020},
		{name: "asr z0.s, p0/m, z0.s, z1.d", emit: func(e *Emitter) { e.AsrWidePred(Element32, Z0, m, Z0, Z1) }, exp: 0x04988020},
		{name: "asr z0.s, z1.s, z2.d", emit: func(e *Emitter) { e.AsrWide(Element32, Z0, Z1, Z2) }, exp: 0x04a28020},
		{name: "lsl z0.b, z1.b, z2.d", emit: func(e *Emitter) { e.LslWide(Element8, Z0, Z1, Z2) }, exp: 0x04228c20},
		{name: "lsl z0.s, z1.s, #1", emit: func(e *Emitter) { e.LslImm(Element32, Z0, Z1, 1) }, exp: 0x04619c20},
		{name: "lsr z0.s, z1.s, #1", emit: func(e *Emitter) { e.LsrImm(Element32, Z0, Z1, 1) }, exp: 0x047f9420},
		{name: "asr z0.d, z1.d, #64", emit: func(e *Emitter) { e.AsrImm(Element64, Z0, Z1, 64) }, exp: 0x04a09020},
	})
}

func TestShifts_Rejected(t *testing.T) {
	m := P0.Merging()
	runRejectionCases(t, []rejectionCase{
		{
			name:   "right shift of zero",
			emit:   func(e *Emitter) { e.AsrImmPred(Element32, Z0, m, Z0, 0) },
			target: cerrdefs.ErrOutOfRange,
		},
		{
			name:   "right shift above width",
			emit:   func(e *Emitter) { e.AsrImmPred(Element32, Z0, m, Z0, 33) },
			target: cerrdefs.ErrOutOfRange,
		},
		{
			name:   "left shift of width",
			emit:   func(e *Emitter) { e.LslImm(Element8, Z0, Z1, 8) },
			target: cerrdefs.ErrOutOfRange,
		},
		{
			name:   "128-bit elements",
			emit:   func(e *Emitter) { e.LslImm(Element128, Z0, Z1, 1) },
			target: cerrdefs.ErrInvalidArgument,
		},
		{
			name:   "not destructive",
			emit:   func(e *Emitter) { e.LslImmPred(Element32, Z0, m, Z1, 1) },
			target: cerrdefs.ErrInvalidArgument,
		},
		{
			name:   "wide shift of 64-bit elements",
			emit:   func(e *Emitter) { e.AsrWide(Element64, Z0, Z1, Z2) },
			target: cerrdefs.ErrInvalidArgument,
		},
		{
			name:     "sve2 disabled",
			emit:     func(e *Emitter) { e.Sqshl(Element32, Z0, m, Z0, 1) },
			target:   cerrdefs.ErrInvalidArgument,
			features: featureSet(features.None),
		},
	})
}
