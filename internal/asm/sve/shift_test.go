package sve

import (
	"fmt"
	"math/bits"
	"testing"

	cerrdefs "github.com/containerd/errdefs"
	"github.com/stretchr/testify/require"
)

func TestEncodeShift(t *testing.T) {
	for _, size := range []ElementSize{Element8, Element16, Element32, Element64} {
		width := size.Bits()
		t.Run(size.String(), func(t *testing.T) {
			for shift := uint32(0); shift < width; shift++ {
				f, err := encodeShift(size, shift, true)
				require.NoError(t, err)
				requireShiftField(t, size, f)
				require.Equal(t, width+shift, f.value(), "left shift %d", shift)
			}
			for shift := uint32(1); shift <= width; shift++ {
				f, err := encodeShift(size, shift, false)
				require.NoError(t, err)
				requireShiftField(t, size, f)
				require.Equal(t, 2*width-shift, f.value(), "right shift %d", shift)
			}
		})
	}
}

// requireShiftField checks the field widths and that the highest set bit of
// tszh:tszl:imm3 identifies the element size.
func requireShiftField(t *testing.T, size ElementSize, f shiftField) {
	require.Less(t, f.tszh, uint32(4))
	require.Less(t, f.tszl, uint32(4))
	require.Less(t, f.imm3, uint32(8))
	require.Equal(t, 3+int(size), bits.Len32(f.value())-1)
}

func TestEncodeShift_Errors(t *testing.T) {
	tests := []struct {
		size  ElementSize
		shift uint32
		left  bool
	}{
		{size: Element8, shift: 8, left: true},
		{size: Element8, shift: 0, left: false},
		{size: Element8, shift: 9, left: false},
		{size: Element16, shift: 16, left: true},
		{size: Element16, shift: 17, left: false},
		{size: Element32, shift: 32, left: true},
		{size: Element32, shift: 33, left: false},
		{size: Element64, shift: 64, left: true},
		{size: Element64, shift: 65, left: false},
		{size: Element64, shift: 0, left: false},
	}
	for _, tt := range tests {
		tc := tt
		t.Run(fmt.Sprintf("%s/%d/left=%v", tc.size, tc.shift, tc.left), func(t *testing.T) {
			_, err := encodeShift(tc.size, tc.shift, tc.left)
			require.True(t, cerrdefs.IsOutOfRange(err), "unexpected error: %v", err)
		})
	}

	_, err := encodeShift(Element128, 1, true)
	require.True(t, cerrdefs.IsInvalidArgument(err))
}

func TestEncodeShiftLeftLong(t *testing.T) {
	tests := []struct {
		size   ElementSize
		marker uint32
	}{
		{size: Element16, marker: 1 << 19},
		{size: Element32, marker: 1 << 20},
		{size: Element64, marker: 1 << 22},
	}
	for _, tt := range tests {
		tc := tt
		t.Run(tc.size.String(), func(t *testing.T) {
			half := tc.size.Bits() / 2
			for shift := uint32(0); shift < half; shift++ {
				v, err := encodeShiftLeftLong(tc.size, shift)
				require.NoError(t, err)
				require.Equal(t, tc.marker|shift<<16, v)
			}
			_, err := encodeShiftLeftLong(tc.size, half)
			require.True(t, cerrdefs.IsOutOfRange(err))
		})
	}

	_, err := encodeShiftLeftLong(Element8, 0)
	require.True(t, cerrdefs.IsInvalidArgument(err))
}
