package sve

import "fmt"

// ElementSize is the width each vector lane is partitioned into by an instruction.
// The underlying value is the one placed in the "size" field of most encodings.
type ElementSize byte

const (
	Element8 ElementSize = iota
	Element16
	Element32
	Element64
	Element128
)

// Bits returns the element width in bits.
func (s ElementSize) Bits() uint32 {
	return 8 << s
}

// Bytes returns the element width in bytes.
func (s ElementSize) Bytes() uint32 {
	return 1 << s
}

// String implements fmt.Stringer.
func (s ElementSize) String() string {
	if s > Element128 {
		return fmt.Sprintf("ElementSize(%d)", byte(s))
	}
	return fmt.Sprintf("%d-bit", s.Bits())
}

// suffix returns the arrangement suffix used in assembly listings.
func (s ElementSize) suffix() string {
	switch s {
	case Element8:
		return "b"
	case Element16:
		return "h"
	case Element32:
		return "s"
	case Element64:
		return "d"
	case Element128:
		return "q"
	}
	return "?"
}

// ElementSizeFromSuffix returns the element size of an arrangement suffix, such
// as "s" in "z0.s".
func ElementSizeFromSuffix(s string) (ElementSize, bool) {
	for size := Element8; size <= Element128; size++ {
		if size.suffix() == s {
			return size, true
		}
	}
	return 0, false
}

// ZRegister is a scalable vector register.
type ZRegister byte

const (
	Z0 ZRegister = iota
	Z1
	Z2
	Z3
	Z4
	Z5
	Z6
	Z7
	Z8
	Z9
	Z10
	Z11
	Z12
	Z13
	Z14
	Z15
	Z16
	Z17
	Z18
	Z19
	Z20
	Z21
	Z22
	Z23
	Z24
	Z25
	Z26
	Z27
	Z28
	Z29
	Z30
	Z31
)

// Index returns the register number.
func (z ZRegister) Index() uint32 { return uint32(z) }

// String implements fmt.Stringer.
func (z ZRegister) String() string { return fmt.Sprintf("z%d", byte(z)) }

// PRegister is a scalable predicate register.
//
// Governing predicates of most instructions are limited to P0-P7, which is checked
// when the instruction is emitted.
type PRegister byte

const (
	P0 PRegister = iota
	P1
	P2
	P3
	P4
	P5
	P6
	P7
	P8
	P9
	P10
	P11
	P12
	P13
	P14
	P15
)

// Index returns the register number.
func (p PRegister) Index() uint32 { return uint32(p) }

// String implements fmt.Stringer.
func (p PRegister) String() string { return fmt.Sprintf("p%d", byte(p)) }

// Merging returns p as a merging governing predicate (p/m).
func (p PRegister) Merging() PRegisterMerge { return PRegisterMerge(p) }

// Zeroing returns p as a zeroing governing predicate (p/z).
func (p PRegister) Zeroing() PRegisterZero { return PRegisterZero(p) }

// PRegisterMerge is a predicate register used with merging predication: inactive
// lanes of the destination keep their previous value.
type PRegisterMerge byte

// Index returns the register number.
func (p PRegisterMerge) Index() uint32 { return uint32(p) }

// String implements fmt.Stringer.
func (p PRegisterMerge) String() string { return fmt.Sprintf("p%d/m", byte(p)) }

// PRegisterZero is a predicate register used with zeroing predication: inactive
// lanes of the destination are set to zero.
type PRegisterZero byte

// Index returns the register number.
func (p PRegisterZero) Index() uint32 { return uint32(p) }

// String implements fmt.Stringer.
func (p PRegisterZero) String() string { return fmt.Sprintf("p%d/z", byte(p)) }

// Register is a general purpose register. Values below 32 are the 64-bit views
// (X0-X30, XZR), values 32-63 are the 32-bit views (W0-W30, WZR).
//
// Index 31 is either the zero register or the stack pointer depending on the
// instruction operand, hence SP and WSP alias XZR and WZR.
type Register byte

const (
	X0 Register = iota
	X1
	X2
	X3
	X4
	X5
	X6
	X7
	X8
	X9
	X10
	X11
	X12
	X13
	X14
	X15
	X16
	X17
	X18
	X19
	X20
	X21
	X22
	X23
	X24
	X25
	X26
	X27
	X28
	X29
	X30
	XZR

	W0
	W1
	W2
	W3
	W4
	W5
	W6
	W7
	W8
	W9
	W10
	W11
	W12
	W13
	W14
	W15
	W16
	W17
	W18
	W19
	W20
	W21
	W22
	W23
	W24
	W25
	W26
	W27
	W28
	W29
	W30
	WZR

	// registerEnd is the first invalid Register value.
	registerEnd
)

const (
	SP  = XZR
	WSP = WZR
)

// Index returns the register number in the 0-31 encoding space.
func (r Register) Index() uint32 { return uint32(r) & 31 }

// Is64 returns true if r is a 64-bit view.
func (r Register) Is64() bool { return r < W0 }

// String implements fmt.Stringer.
func (r Register) String() string {
	switch {
	case r >= registerEnd:
		return fmt.Sprintf("Register(%d)", byte(r))
	case r == XZR:
		return "xzr"
	case r == WZR:
		return "wzr"
	case r.Is64():
		return fmt.Sprintf("x%d", r.Index())
	default:
		return fmt.Sprintf("w%d", r.Index())
	}
}

// XRegister returns the 64-bit view of general register n.
func XRegister(n uint32) Register { return Register(n & 31) }

// WRegister returns the 32-bit view of general register n.
func WRegister(n uint32) Register { return W0 + Register(n&31) }

// VRegister is a SIMD&FP register used as a scalar operand.
type VRegister byte

const (
	V0 VRegister = iota
	V1
	V2
	V3
	V4
	V5
	V6
	V7
	V8
	V9
	V10
	V11
	V12
	V13
	V14
	V15
	V16
	V17
	V18
	V19
	V20
	V21
	V22
	V23
	V24
	V25
	V26
	V27
	V28
	V29
	V30
	V31
)

// Index returns the register number.
func (v VRegister) Index() uint32 { return uint32(v) }

// String implements fmt.Stringer.
func (v VRegister) String() string { return fmt.Sprintf("v%d", byte(v)) }

// Rotation is the rotation applied to the second operand of complex arithmetic.
type Rotation byte

const (
	Rotate0 Rotation = iota
	Rotate90
	Rotate180
	Rotate270
)

// Degrees returns the rotation angle.
func (r Rotation) Degrees() int { return int(r) * 90 }

// String implements fmt.Stringer.
func (r Rotation) String() string { return fmt.Sprintf("#%d", r.Degrees()) }

// OpType selects between the two readings of an encoding whose first source
// register is also the destination.
type OpType byte

const (
	// OpTypeDestructive takes the first source from the destination register.
	OpTypeDestructive OpType = iota
	// OpTypeConstructive takes a pair of consecutive source registers.
	OpTypeConstructive
)

// String implements fmt.Stringer.
func (o OpType) String() string {
	if o == OpTypeConstructive {
		return "constructive"
	}
	return "destructive"
}

// PredicatePattern is the element count constraint used by PTRUE and PTRUES.
type PredicatePattern byte

const (
	PatternPOW2  PredicatePattern = 0
	PatternVL1   PredicatePattern = 1
	PatternVL2   PredicatePattern = 2
	PatternVL3   PredicatePattern = 3
	PatternVL4   PredicatePattern = 4
	PatternVL5   PredicatePattern = 5
	PatternVL6   PredicatePattern = 6
	PatternVL7   PredicatePattern = 7
	PatternVL8   PredicatePattern = 8
	PatternVL16  PredicatePattern = 9
	PatternVL32  PredicatePattern = 10
	PatternVL64  PredicatePattern = 11
	PatternVL128 PredicatePattern = 12
	PatternVL256 PredicatePattern = 13
	PatternMUL4  PredicatePattern = 29
	PatternMUL3  PredicatePattern = 30
	PatternALL   PredicatePattern = 31
)

var patternNames = map[PredicatePattern]string{
	PatternPOW2:  "pow2",
	PatternVL1:   "vl1",
	PatternVL2:   "vl2",
	PatternVL3:   "vl3",
	PatternVL4:   "vl4",
	PatternVL5:   "vl5",
	PatternVL6:   "vl6",
	PatternVL7:   "vl7",
	PatternVL8:   "vl8",
	PatternVL16:  "vl16",
	PatternVL32:  "vl32",
	PatternVL64:  "vl64",
	PatternVL128: "vl128",
	PatternVL256: "vl256",
	PatternMUL4:  "mul4",
	PatternMUL3:  "mul3",
	PatternALL:   "all",
}

// String implements fmt.Stringer.
func (p PredicatePattern) String() string {
	if s, ok := patternNames[p]; ok {
		return s
	}
	return fmt.Sprintf("#%d", byte(p))
}

// PredicatePatternFromString returns the pattern with the given lower-case name.
func PredicatePatternFromString(s string) (PredicatePattern, bool) {
	for p, name := range patternNames {
		if name == s {
			return p, true
		}
	}
	return 0, false
}

// AreVectorsSequential returns true if the registers have consecutive indices,
// wrapping from z31 to z0.
func AreVectorsSequential(regs ...ZRegister) bool {
	for i := 1; i < len(regs); i++ {
		if (regs[i-1]+1)&31 != regs[i] {
			return false
		}
	}
	return true
}
