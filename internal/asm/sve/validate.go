package sve

import (
	"fmt"
	"strings"

	cerrdefs "github.com/containerd/errdefs"
)

func invalidf(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", cerrdefs.ErrInvalidArgument, fmt.Sprintf(format, args...))
}

func outOfRangef(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", cerrdefs.ErrOutOfRange, fmt.Sprintf(format, args...))
}

func notImplementedf(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", cerrdefs.ErrNotImplemented, fmt.Sprintf(format, args...))
}

// register is implemented by every register operand type.
type register interface {
	Index() uint32
	String() string
}

// regs checks every register against the size of its register file.
func regs(rs ...register) error {
	for _, r := range rs {
		var err error
		switch r := r.(type) {
		case ZRegister:
			err = zregs(r)
		case VRegister:
			err = vregs(r)
		case Register:
			err = gregs(r)
		default:
			err = pregs(r)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

// sizeIn requires size to be one of allowed.
func sizeIn(size ElementSize, allowed ...ElementSize) error {
	for _, a := range allowed {
		if size == a {
			return nil
		}
	}
	names := make([]string, len(allowed))
	for i, a := range allowed {
		names[i] = a.String()
	}
	return invalidf("element size %s must be one of %s", size, strings.Join(names, ", "))
}

func sizeNot128(size ElementSize) error {
	return sizeIn(size, Element8, Element16, Element32, Element64)
}

func sizeFloat(size ElementSize) error {
	return sizeIn(size, Element16, Element32, Element64)
}

// sizeWide is the set of destination sizes of widening instructions.
func sizeWide(size ElementSize) error {
	return sizeIn(size, Element16, Element32, Element64)
}

// sizeNarrow is the set of destination sizes of narrowing instructions.
func sizeNarrow(size ElementSize) error {
	return sizeIn(size, Element8, Element16, Element32)
}

func zregs(regs ...ZRegister) error {
	for _, z := range regs {
		if z > Z31 {
			return invalidf("vector register index %d must be within z0-z31", byte(z))
		}
	}
	return nil
}

func pregs(regs ...register) error {
	for _, p := range regs {
		if p.Index() > 15 {
			return invalidf("predicate register index %d must be within p0-p15", p.Index())
		}
	}
	return nil
}

// governing requires p to be usable as the governing predicate of a 3-bit field.
func governing(p register) error {
	if p.Index() > 7 {
		return invalidf("governing predicate %s must be within p0-p7", p)
	}
	return nil
}

func vregs(regs ...VRegister) error {
	for _, v := range regs {
		if v > V31 {
			return invalidf("SIMD&FP register index %d must be within v0-v31", byte(v))
		}
	}
	return nil
}

func gregs(regs ...Register) error {
	for _, r := range regs {
		if r >= registerEnd {
			return invalidf("invalid general register %s", r)
		}
	}
	return nil
}

// xreg requires a 64-bit view.
func xreg(r Register) error {
	if err := gregs(r); err != nil {
		return err
	}
	if !r.Is64() {
		return invalidf("%s must be a 64-bit register", r)
	}
	return nil
}

// offsetReg requires a 64-bit offset register other than XZR, whose encoding
// is reserved for the scalar plus immediate forms.
func offsetReg(r Register) error {
	if err := xreg(r); err != nil {
		return err
	}
	if r == XZR {
		return invalidf("offset register must not be xzr")
	}
	return nil
}

// sameWidth requires both registers to use the same view.
func sameWidth(a, b Register) error {
	if a.Is64() != b.Is64() {
		return invalidf("%s and %s must have the same width", a, b)
	}
	return nil
}

// elementReg requires r to match the element size: X for 64-bit elements, W otherwise.
func elementReg(size ElementSize, r Register) error {
	if err := gregs(r); err != nil {
		return err
	}
	if (size == Element64) != r.Is64() {
		return invalidf("%s does not match element size %s", r, size)
	}
	return nil
}

// aliased requires a destructive operand pair to name the same register.
func aliased(dst, src register, dstName, srcName string) error {
	if dst != src {
		return invalidf("%s (%s) and %s (%s) must be the same register", dstName, dst, srcName, src)
	}
	return nil
}

func inRange(what string, v, lo, hi int64) error {
	if v < lo || v > hi {
		return outOfRangef("%s %d must be within [%d, %d]", what, v, lo, hi)
	}
	return nil
}

func multipleOf(what string, v, n int64) error {
	if v%n != 0 {
		return outOfRangef("%s %d must be a multiple of %d", what, v, n)
	}
	return nil
}

func sequential(regs ...ZRegister) error {
	if !AreVectorsSequential(regs...) {
		names := make([]string, len(regs))
		for i, z := range regs {
			names[i] = z.String()
		}
		return invalidf("registers {%s} must be sequential", strings.Join(names, ", "))
	}
	return nil
}
