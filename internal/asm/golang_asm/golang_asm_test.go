package golang_asm

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tetratelabs/sveasm/internal/asm"
	"github.com/tetratelabs/sveasm/internal/asm/sve"
)

func TestWordSink(t *testing.T) {
	words := []uint32{
		0x04a20020, // add z0.s, z1.s, z2.s
		0x2518e3e0, // ptrue p0.b
		0xa5e0a000, // ld1d {z0.d}, p0/z, [x0]
		0xe5e0e000, // st1d {z0.d}, p0, [x0]
		0xffffffff,
	}

	s, err := NewWordSink()
	require.NoError(t, err)

	expected := make([]byte, 0, 4*len(words))
	for i, w := range words {
		s.WriteUint32(w)
		require.Equal(t, 4*(i+1), s.Len())
		expected = binary.LittleEndian.AppendUint32(expected, w)
	}

	actual, err := s.Assemble()
	require.NoError(t, err)
	require.Equal(t, expected, actual)
}

func TestWordSink_Emitter(t *testing.T) {
	s, err := NewWordSink()
	require.NoError(t, err)

	e := sve.NewEmitter(s, nil)
	e.Ptrue(sve.Element64, sve.P0, sve.PatternALL)
	e.Ld1d(sve.Element64, sve.Z0, sve.P0.Zeroing(), sve.ScalarImm(sve.X0, 0))
	e.Add(sve.Element32, sve.Z0, sve.Z1, sve.Z2)
	e.St1d(sve.Element64, sve.Z0, sve.P0, sve.ScalarImm(sve.X0, 0))
	require.NoError(t, e.Err())
	require.Equal(t, 16, e.Offset())

	actual, err := s.Assemble()
	require.NoError(t, err)
	require.Equal(t, []byte{
		0xe0, 0xe3, 0xd8, 0x25,
		0x00, 0xa0, 0xe0, 0xa5,
		0x20, 0x00, 0xa2, 0x04,
		0x00, 0xe0, 0xe0, 0xe5,
	}, actual)
}

func TestWordSink_MatchesCodeSegment(t *testing.T) {
	emit := func(e *sve.Emitter) {
		e.Ptrue(sve.Element8, sve.P0, sve.PatternALL)
		e.Whilelo(sve.Element8, sve.P1, sve.X2, sve.X3)
		e.Tbx(sve.Element8, sve.Z0, sve.Z1, sve.Z2)
	}

	code := asm.NewCodeSegment(nil)
	defer func() { require.NoError(t, code.Unmap()) }()
	buf := code.Next()
	e := sve.NewEmitter(buf, nil)
	emit(e)
	require.NoError(t, e.Err())

	s, err := NewWordSink()
	require.NoError(t, err)
	require.Zero(t, s.Len())
	e = sve.NewEmitter(s, nil)
	emit(e)
	require.NoError(t, e.Err())

	actual, err := s.Assemble()
	require.NoError(t, err)
	require.Equal(t, buf.Bytes(), actual)
	require.Equal(t, []byte{0xe0, 0xe3, 0x18, 0x25}, actual[:4], "the first word must not be dropped")
}

func TestWordSink_Empty(t *testing.T) {
	s, err := NewWordSink()
	require.NoError(t, err)
	actual, err := s.Assemble()
	require.NoError(t, err)
	require.Empty(t, actual)
}
