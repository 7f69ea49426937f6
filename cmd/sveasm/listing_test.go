package main

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tetratelabs/sveasm/internal/asm/sve"
)

func TestSplitOperands(t *testing.T) {
	tests := []struct {
		in  string
		exp []string
	}{
		{in: "", exp: nil},
		{in: "z0", exp: []string{"z0"}},
		{in: "s, z0 , z1,z2", exp: []string{"s", "z0", "z1", "z2"}},
		{in: "d, z0, p0/z, [x0, #1, mul vl]", exp: []string{"d", "z0", "p0/z", "[x0, #1, mul vl]"}},
		{in: "s, z0, p0, {z1, z2}", exp: []string{"s", "z0", "p0", "{z1, z2}"}},
		{in: "z0,", exp: []string{"z0", ""}},
	}
	for _, tt := range tests {
		tc := tt
		t.Run(tc.in, func(t *testing.T) {
			require.Equal(t, tc.exp, splitOperands(tc.in))
		})
	}
}

func TestParseOperand(t *testing.T) {
	tests := []struct {
		in  string
		exp interface{}
	}{
		{in: "s", exp: sve.Element32},
		{in: ".D", exp: sve.Element64},
		{in: "128", exp: sve.Element128},
		{in: "z31", exp: sve.Z31},
		{in: "z7.h", exp: sve.Z7},
		{in: "p15", exp: sve.P15},
		{in: "p3/m", exp: sve.P3.Merging()},
		{in: "P2/Z", exp: sve.P2.Zeroing()},
		{in: "x30", exp: sve.X30},
		{in: "w5", exp: sve.W5},
		{in: "sp", exp: sve.SP},
		{in: "wzr", exp: sve.WZR},
		{in: "d9", exp: sve.V9},
		{in: "v31", exp: sve.V31},
		{in: "270", exp: sve.Rotate270},
		{in: "#90", exp: sve.Rotate90},
		{in: "mul3", exp: sve.PatternMUL3},
		{in: "#13", exp: sve.PatternVL256},
		{in: "constructive", exp: sve.OpTypeConstructive},
		{in: "[x1, x2]", exp: sve.ScalarScalar(sve.X1, sve.X2)},
	}
	for _, tt := range tests {
		tc := tt
		t.Run(tc.in, func(t *testing.T) {
			v, err := parseOperand(reflect.TypeOf(tc.exp), tc.in)
			require.NoError(t, err)
			require.Equal(t, tc.exp, v.Interface())
		})
	}

	t.Run("immediates", func(t *testing.T) {
		v, err := parseOperand(reflect.TypeOf(int32(0)), "#-0x10")
		require.NoError(t, err)
		require.Equal(t, int32(-16), v.Interface())

		v, err = parseOperand(reflect.TypeOf(uint32(0)), "255")
		require.NoError(t, err)
		require.Equal(t, uint32(255), v.Interface())

		v, err = parseOperand(reflect.TypeOf(float64(0)), "#-0.5")
		require.NoError(t, err)
		require.Equal(t, -0.5, v.Interface())

		v, err = parseOperand(reflect.TypeOf(false), "true")
		require.NoError(t, err)
		require.Equal(t, true, v.Interface())
	})
}

func TestParseOperand_Errors(t *testing.T) {
	tests := []struct {
		in      string
		typ     interface{}
		message string
	}{
		{in: "e", typ: sve.Element8, message: `invalid element size "e"`},
		{in: "z32", typ: sve.Z0, message: `invalid register "z32"`},
		{in: "z1.x", typ: sve.Z0, message: `invalid arrangement "z1.x"`},
		{in: "p16", typ: sve.P0, message: `invalid register "p16"`},
		{in: "p0", typ: sve.P0.Merging(), message: `predicate "p0" must be qualified with /m`},
		{in: "x31", typ: sve.X0, message: `invalid register "x31"`},
		{in: "r1", typ: sve.V0, message: `invalid register "r1"`},
		{in: "45", typ: sve.Rotate0, message: `invalid rotation "45"`},
		{in: "vl512", typ: sve.PatternALL, message: `invalid predicate pattern "vl512"`},
		{in: "inplace", typ: sve.OpTypeDestructive, message: `invalid operation type "inplace"`},
		{in: "x1", typ: sve.MemoryOperand{}, message: `invalid memory operand "x1"`},
		{in: "[x1, x2, mul vl]", typ: sve.MemoryOperand{}, message: `invalid memory operand "[x1, x2, mul vl]"`},
		{in: "[z1, x2]", typ: sve.MemoryOperand{}, message: `invalid memory operand "[z1, x2]"`},
		{in: "[]", typ: sve.MemoryOperand{}, message: `invalid memory operand "[]"`},
		{in: "#1", typ: []int{}, message: "BUG: unsupported operand type []int"},
	}
	for _, tt := range tests {
		tc := tt
		t.Run(tc.in, func(t *testing.T) {
			_, err := parseOperand(reflect.TypeOf(tc.typ), tc.in)
			require.EqualError(t, err, tc.message)
		})
	}
}

func TestParseMemoryOperand(t *testing.T) {
	tests := []struct {
		in  string
		exp sve.MemoryOperand
	}{
		{in: "[x0]", exp: sve.ScalarImm(sve.X0, 0)},
		{in: "[sp, #-8, mul vl]", exp: sve.ScalarImm(sve.SP, -8)},
		{in: "[x1, #3]", exp: sve.ScalarImm(sve.X1, 3)},
		{in: "[X1, X2]", exp: sve.ScalarScalar(sve.X1, sve.X2)},
		{in: "[x1, z2.d]", exp: sve.ScalarVector(sve.X1, sve.Z2)},
		{in: "[z1.s, #31]", exp: sve.VectorImm(sve.Z1, 31)},
		{in: "[z1]", exp: sve.VectorImm(sve.Z1, 0)},
	}
	for _, tt := range tests {
		tc := tt
		t.Run(tc.in, func(t *testing.T) {
			m, err := parseMemoryOperand(tc.in)
			require.NoError(t, err)
			require.Equal(t, tc.exp, m)
		})
	}
}
