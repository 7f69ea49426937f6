package sve

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	cerrdefs "github.com/containerd/errdefs"
	"github.com/google/go-cmp/cmp"
	"github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/require"

	"github.com/tetratelabs/sveasm/internal/asm"
	"github.com/tetratelabs/sveasm/internal/features"
)

// wordSink is an asm.Sink recording the emitted words.
type wordSink struct {
	words []uint32
}

var _ asm.Sink = (*wordSink)(nil)

func (s *wordSink) WriteUint32(u uint32) { s.words = append(s.words, u) }

func (s *wordSink) Len() int { return 4 * len(s.words) }

// encodingCase is a single instruction and the word it must encode to.
type encodingCase struct {
	name string
	emit func(e *Emitter)
	exp  uint32
}

func runEncodingCases(t *testing.T, cases []encodingCase) {
	for _, tt := range cases {
		tc := tt
		t.Run(tc.name, func(t *testing.T) {
			sink := &wordSink{}
			e := NewEmitter(sink, nil)
			tc.emit(e)
			require.NoError(t, e.Err())
			require.Equal(t, 1, len(sink.words), "an instruction must emit exactly one word")
			require.Equal(t, fmt.Sprintf("%#08x", tc.exp), fmt.Sprintf("%#08x", sink.words[0]))
		})
	}
}

// rejectionCase is an instruction that must be rejected with an error
// matching target.
type rejectionCase struct {
	name   string
	emit   func(e *Emitter)
	target error
	// features overrides the enabled extensions when non-nil.
	features *features.Set
}

func runRejectionCases(t *testing.T, cases []rejectionCase) {
	for _, tt := range cases {
		tc := tt
		t.Run(tc.name, func(t *testing.T) {
			sink := &wordSink{}
			config := NewEmitterConfig()
			if tc.features != nil {
				config = config.WithFeatures(*tc.features)
			}
			e := NewEmitter(sink, config)
			tc.emit(e)
			require.Error(t, e.Err())
			require.True(t, errors.Is(e.Err(), tc.target), "unexpected error: %v", e.Err())
			require.Zero(t, sink.Len())
		})
	}
}

func featureSet(f features.Set) *features.Set {
	return &f
}

func TestEmitter_StickyError(t *testing.T) {
	sink := &wordSink{}
	e := NewEmitter(sink, nil)

	e.Add(Element32, Z0, Z1, Z2)
	require.NoError(t, e.Err())

	e.Add(Element128, Z0, Z1, Z2)
	err := e.Err()
	require.Error(t, err)
	require.True(t, cerrdefs.IsInvalidArgument(err))
	require.True(t, strings.HasPrefix(err.Error(), "add: "), err.Error())

	// Later instructions are dropped and the first error is kept.
	e.Sub(Element32, Z0, Z1, Z2)
	e.CmphiImm(Element32, P0, P0.Zeroing(), Z1, 1000)
	require.Equal(t, err, e.Err())
	require.Equal(t, []uint32{0x04a20020}, sink.words)
	require.Equal(t, 4, e.Offset())
}

func TestEmitter_Sequence(t *testing.T) {
	sink := &wordSink{}
	e := NewEmitter(sink, nil)

	// A vector length agnostic memcpy loop body.
	e.Whilelo(Element8, P0, X2, X3)
	e.Ld1b(Element8, Z0, P0.Zeroing(), ScalarScalar(X0, X2))
	e.St1b(Element8, Z0, P0, ScalarScalar(X1, X2))
	e.Ptrue(Element8, P1, PatternALL)
	require.NoError(t, e.Err())
	require.Equal(t, 16, e.Offset())

	exp := []uint32{0x25231c40, 0xa4024000, 0xe4024020, 0x2518e3e1}
	if diff := cmp.Diff(hexWords(exp), hexWords(sink.words)); diff != "" {
		t.Errorf("unexpected words (-want +got):\n%s", diff)
	}
}

func hexWords(words []uint32) []string {
	ret := make([]string, len(words))
	for i, w := range words {
		ret[i] = fmt.Sprintf("%#08x", w)
	}
	return ret
}

func TestEmitter_Features(t *testing.T) {
	base := NewEmitterConfig().WithFeatures(features.None)
	require.Equal(t, features.None, base.Features())
	require.Equal(t, features.All, NewEmitterConfig().Features())

	sink := &wordSink{}
	e := NewEmitter(sink, base)
	e.Add(Element8, Z0, Z1, Z2)
	require.NoError(t, e.Err())

	e.Tbx(Element8, Z0, Z1, Z2)
	require.True(t, cerrdefs.IsInvalidArgument(e.Err()))
	require.Contains(t, e.Err().Error(), "sve2")
	require.Equal(t, 4, sink.Len())

	// SVE2 alone does not enable the extensions built on top of it.
	sve2 := NewEmitterConfig().WithFeatures(features.SVE2)
	for _, emit := range []func(e *Emitter){
		func(e *Emitter) { e.Smmla(Z0, Z1, Z2) },
		func(e *Emitter) { e.Bext(Element32, Z0, Z1, Z2) },
	} {
		e := NewEmitter(&wordSink{}, sve2)
		emit(e)
		require.True(t, cerrdefs.IsInvalidArgument(e.Err()))
	}

	e = NewEmitter(&wordSink{}, sve2.WithFeatures(features.SVE2|features.BitPerm))
	e.Bext(Element32, Z0, Z1, Z2)
	require.NoError(t, e.Err())
}

func TestEmitterConfig_Immutable(t *testing.T) {
	c := NewEmitterConfig()
	logger, _ := logtest.NewNullLogger()
	_ = c.WithFeatures(features.None).WithLogger(logger)
	require.Equal(t, features.All, c.Features())
	require.Nil(t, c.logger)
}

func TestEmitter_Logger(t *testing.T) {
	logger, hook := logtest.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)

	e := NewEmitter(&wordSink{}, NewEmitterConfig().WithLogger(logger))
	e.Ptrue(Element8, P0, PatternALL)
	e.Add(Element32, Z0, Z1, Z2)
	e.Sdiv(Element8, Z0, P0.Merging(), Z0, Z1)

	entries := hook.AllEntries()
	require.Equal(t, 3, len(entries))

	require.Equal(t, "emit", entries[0].Message)
	require.Equal(t, "ptrue", entries[0].Data["inst"])
	require.Equal(t, 0, entries[0].Data["offset"])

	require.Equal(t, "add", entries[1].Data["inst"])
	require.Equal(t, 4, entries[1].Data["offset"])
	require.Equal(t, fmt.Sprintf("%#08x", uint32(0x04a20020)), entries[1].Data["word"])

	require.Equal(t, "instruction rejected", entries[2].Message)
	require.Equal(t, logrus.DebugLevel, entries[2].Level)
	require.Equal(t, e.Err(), entries[2].Data[logrus.ErrorKey])
}

func TestEmitter_ErrorClassification(t *testing.T) {
	tests := []struct {
		name  string
		emit  func(e *Emitter)
		check func(error) bool
	}{
		{
			name:  "invalid size",
			emit:  func(e *Emitter) { e.Sdiv(Element8, Z0, P0.Merging(), Z0, Z1) },
			check: cerrdefs.IsInvalidArgument,
		},
		{
			name:  "immediate out of range",
			emit:  func(e *Emitter) { e.CmpeqImm(Element32, P0, P0.Zeroing(), Z1, 16) },
			check: cerrdefs.IsOutOfRange,
		},
		{
			name:  "unsupported addressing",
			emit:  func(e *Emitter) { e.Ld1d(Element64, Z0, P0.Zeroing(), ScalarVector(X0, Z1)) },
			check: cerrdefs.IsNotImplemented,
		},
	}

	for _, tt := range tests {
		tc := tt
		t.Run(tc.name, func(t *testing.T) {
			e := NewEmitter(&wordSink{}, nil)
			tc.emit(e)
			require.True(t, tc.check(e.Err()), "unexpected error: %v", e.Err())
		})
	}
}

func TestEmitter_CodeSegment(t *testing.T) {
	code := asm.NewCodeSegment(nil)
	defer func() { require.NoError(t, code.Unmap()) }()

	buf := code.Next()
	e := NewEmitter(buf, nil)
	e.Ptrue(Element64, P0, PatternALL)
	e.Ld1d(Element64, Z0, P0.Zeroing(), ScalarImm(X0, 0))
	e.St1d(Element64, Z0, P0, ScalarImm(X0, 0))
	require.NoError(t, e.Err())
	require.Equal(t, 12, buf.Len())
	require.Equal(t, []byte{
		0xe0, 0xe3, 0xd8, 0x25,
		0x00, 0xa0, 0xe0, 0xa5,
		0x00, 0xe0, 0xe0, 0xe5,
	}, buf.Bytes())
}
