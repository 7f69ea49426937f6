package sve

import "fmt"

// MemoryOperandKind is the addressing mode of a MemoryOperand.
type MemoryOperandKind byte

const (
	// MemScalarScalar is [Xn|SP, Xm].
	MemScalarScalar MemoryOperandKind = iota
	// MemScalarImm is [Xn|SP, #imm, MUL VL].
	MemScalarImm
	// MemScalarVector is [Xn|SP, Zm].
	MemScalarVector
	// MemVectorImm is [Zn, #imm].
	MemVectorImm
)

// String implements fmt.Stringer.
func (k MemoryOperandKind) String() string {
	switch k {
	case MemScalarScalar:
		return "scalar-plus-scalar"
	case MemScalarImm:
		return "scalar-plus-immediate"
	case MemScalarVector:
		return "scalar-plus-vector"
	case MemVectorImm:
		return "vector-plus-immediate"
	}
	return fmt.Sprintf("MemoryOperandKind(%d)", byte(k))
}

// MemoryOperand is the address operand of the contiguous load and store helpers.
// Only the fields relevant to Kind are meaningful.
type MemoryOperand struct {
	Kind MemoryOperandKind
	// Base is the base general register of the scalar base forms.
	Base Register
	// Offset is the offset general register of MemScalarScalar.
	Offset Register
	// VectorBase is the base vector of MemVectorImm.
	VectorBase ZRegister
	// VectorOffset is the offset vector of MemScalarVector.
	VectorOffset ZRegister
	// Imm is the immediate offset of MemScalarImm and MemVectorImm.
	Imm int32
}

// ScalarScalar returns the [base, offset] operand.
func ScalarScalar(base, offset Register) MemoryOperand {
	return MemoryOperand{Kind: MemScalarScalar, Base: base, Offset: offset}
}

// ScalarImm returns the [base, #imm, MUL VL] operand.
func ScalarImm(base Register, imm int32) MemoryOperand {
	return MemoryOperand{Kind: MemScalarImm, Base: base, Imm: imm}
}

// ScalarVector returns the [base, offset] operand with a vector offset.
func ScalarVector(base Register, offset ZRegister) MemoryOperand {
	return MemoryOperand{Kind: MemScalarVector, Base: base, VectorOffset: offset}
}

// VectorImm returns the [base, #imm] operand with a vector base.
func VectorImm(base ZRegister, imm int32) MemoryOperand {
	return MemoryOperand{Kind: MemVectorImm, VectorBase: base, Imm: imm}
}

// String implements fmt.Stringer.
func (m MemoryOperand) String() string {
	switch m.Kind {
	case MemScalarScalar:
		return fmt.Sprintf("[%s, %s]", m.Base, m.Offset)
	case MemScalarImm:
		return fmt.Sprintf("[%s, #%d, mul vl]", m.Base, m.Imm)
	case MemScalarVector:
		return fmt.Sprintf("[%s, %s]", m.Base, m.VectorOffset)
	case MemVectorImm:
		return fmt.Sprintf("[%s, #%d]", m.VectorBase, m.Imm)
	}
	return m.Kind.String()
}
