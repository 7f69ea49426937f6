package sve

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestElementSize(t *testing.T) {
	tests := []struct {
		size        ElementSize
		bits, bytes uint32
		str, suffix string
	}{
		{size: Element8, bits: 8, bytes: 1, str: "8-bit", suffix: "b"},
		{size: Element16, bits: 16, bytes: 2, str: "16-bit", suffix: "h"},
		{size: Element32, bits: 32, bytes: 4, str: "32-bit", suffix: "s"},
		{size: Element64, bits: 64, bytes: 8, str: "64-bit", suffix: "d"},
		{size: Element128, bits: 128, bytes: 16, str: "128-bit", suffix: "q"},
	}
	for _, tt := range tests {
		tc := tt
		t.Run(tc.str, func(t *testing.T) {
			require.Equal(t, tc.bits, tc.size.Bits())
			require.Equal(t, tc.bytes, tc.size.Bytes())
			require.Equal(t, tc.str, tc.size.String())

			actual, ok := ElementSizeFromSuffix(tc.suffix)
			require.True(t, ok)
			require.Equal(t, tc.size, actual)
		})
	}

	require.Equal(t, "ElementSize(5)", ElementSize(5).String())
	_, ok := ElementSizeFromSuffix("x")
	require.False(t, ok)
}

func TestRegister_String(t *testing.T) {
	tests := []struct {
		r   Register
		exp string
	}{
		{r: X0, exp: "x0"},
		{r: X30, exp: "x30"},
		{r: XZR, exp: "xzr"},
		{r: SP, exp: "xzr"},
		{r: W7, exp: "w7"},
		{r: WZR, exp: "wzr"},
		{r: registerEnd, exp: "Register(64)"},
	}
	for _, tc := range tests {
		require.Equal(t, tc.exp, tc.r.String())
	}

	require.Equal(t, X3, XRegister(3))
	require.Equal(t, W3, WRegister(3))
	require.True(t, XRegister(31).Is64())
	require.False(t, WRegister(31).Is64())
	require.Equal(t, uint32(31), WSP.Index())

	require.Equal(t, "z31", Z31.String())
	require.Equal(t, "p3/m", P3.Merging().String())
	require.Equal(t, "p3/z", P3.Zeroing().String())
	require.Equal(t, "v2", V2.String())
}

func TestAreVectorsSequential(t *testing.T) {
	require.True(t, AreVectorsSequential())
	require.True(t, AreVectorsSequential(Z5))
	require.True(t, AreVectorsSequential(Z0, Z1, Z2, Z3))
	require.True(t, AreVectorsSequential(Z30, Z31, Z0))
	require.False(t, AreVectorsSequential(Z0, Z2))
	require.False(t, AreVectorsSequential(Z1, Z0))
}

func TestPredicatePattern(t *testing.T) {
	require.Equal(t, "all", PatternALL.String())
	require.Equal(t, "vl256", PatternVL256.String())
	require.Equal(t, "#14", PredicatePattern(14).String())

	for p := range patternNames {
		actual, ok := PredicatePatternFromString(p.String())
		require.True(t, ok)
		require.Equal(t, p, actual)
	}
	_, ok := PredicatePatternFromString("vl9")
	require.False(t, ok)
}

func TestRotation(t *testing.T) {
	require.Equal(t, 270, Rotate270.Degrees())
	require.Equal(t, "#90", Rotate90.String())
	require.Equal(t, "destructive", OpTypeDestructive.String())
	require.Equal(t, "constructive", OpTypeConstructive.String())
}

func TestMemoryOperand_String(t *testing.T) {
	tests := []struct {
		m   MemoryOperand
		exp string
	}{
		{m: ScalarScalar(X0, X1), exp: "[x0, x1]"},
		{m: ScalarImm(X0, 1), exp: "[x0, #1, mul vl]"},
		{m: ScalarVector(X0, Z1), exp: "[x0, z1]"},
		{m: VectorImm(Z0, 1), exp: "[z0, #1]"},
		{m: MemoryOperand{Kind: 9}, exp: "MemoryOperandKind(9)"},
	}
	for _, tc := range tests {
		require.Equal(t, tc.exp, tc.m.String())
	}
	require.Equal(t, "scalar-plus-scalar", MemScalarScalar.String())
}
