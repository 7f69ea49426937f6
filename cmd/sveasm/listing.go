package main

import (
	"bufio"
	"fmt"
	"io"
	"reflect"
	"strconv"
	"strings"

	"github.com/tetratelabs/sveasm/internal/asm/sve"
)

// listing encodes text lines of the form "Method operand, operand, ..." by
// calling the Emitter method of that name.
type listing struct {
	e *sve.Emitter
	// methods holds the instruction methods of e keyed by lower-case name.
	methods map[string]reflect.Value
}

func newListing(e *sve.Emitter) *listing {
	v := reflect.ValueOf(e)
	t := v.Type()
	methods := make(map[string]reflect.Value, t.NumMethod())
	for i := 0; i < t.NumMethod(); i++ {
		// Instructions return nothing; this skips Err and Offset.
		if t.Method(i).Type.NumOut() != 0 {
			continue
		}
		methods[strings.ToLower(t.Method(i).Name)] = v.Method(i)
	}
	return &listing{e: e, methods: methods}
}

// encode encodes every line read from r, stopping at the first error.
func (l *listing) encode(name string, r io.Reader) error {
	s := bufio.NewScanner(r)
	for line := 1; s.Scan(); line++ {
		if err := l.encodeLine(s.Text()); err != nil {
			return fmt.Errorf("%s:%d: %w", name, line, err)
		}
	}
	if err := s.Err(); err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}
	return nil
}

func (l *listing) encodeLine(text string) error {
	if i := strings.Index(text, "//"); i >= 0 {
		text = text[:i]
	}
	text = strings.TrimSpace(text)
	if text == "" {
		return nil
	}

	name, rest := text, ""
	if i := strings.IndexAny(text, " \t"); i >= 0 {
		name, rest = text[:i], text[i+1:]
	}
	m, ok := l.methods[strings.ToLower(name)]
	if !ok {
		return fmt.Errorf("unknown instruction %q", name)
	}

	operands := splitOperands(rest)
	mt := m.Type()
	if len(operands) != mt.NumIn() {
		return fmt.Errorf("%s takes %d operands, got %d", name, mt.NumIn(), len(operands))
	}
	in := make([]reflect.Value, len(operands))
	for i, op := range operands {
		v, err := parseOperand(mt.In(i), op)
		if err != nil {
			return fmt.Errorf("%s operand %d: %w", name, i+1, err)
		}
		in[i] = v
	}
	m.Call(in)
	return l.e.Err()
}

// splitOperands splits s on the commas outside of brackets.
func splitOperands(s string) []string {
	var ret []string
	depth, start := 0, 0
	for i, c := range s {
		switch c {
		case '[', '{':
			depth++
		case ']', '}':
			depth--
		case ',':
			if depth == 0 {
				ret = append(ret, strings.TrimSpace(s[start:i]))
				start = i + 1
			}
		}
	}
	if last := strings.TrimSpace(s[start:]); last != "" || len(ret) > 0 {
		ret = append(ret, last)
	}
	return ret
}

var (
	elementSizeType      = reflect.TypeOf(sve.Element8)
	zRegisterType        = reflect.TypeOf(sve.Z0)
	pRegisterType        = reflect.TypeOf(sve.P0)
	pRegisterMergeType   = reflect.TypeOf(sve.P0.Merging())
	pRegisterZeroType    = reflect.TypeOf(sve.P0.Zeroing())
	registerType         = reflect.TypeOf(sve.X0)
	vRegisterType        = reflect.TypeOf(sve.V0)
	rotationType         = reflect.TypeOf(sve.Rotate0)
	predicatePatternType = reflect.TypeOf(sve.PatternALL)
	memoryOperandType    = reflect.TypeOf(sve.MemoryOperand{})
	opTypeType           = reflect.TypeOf(sve.OpTypeDestructive)
)

// parseOperand parses s as a value of type t.
func parseOperand(t reflect.Type, s string) (reflect.Value, error) {
	var v interface{}
	var err error
	switch t {
	case elementSizeType:
		v, err = parseElementSize(s)
	case zRegisterType:
		v, err = parseZRegister(s)
	case pRegisterType:
		v, err = parsePRegister(s)
	case pRegisterMergeType:
		var p sve.PRegister
		p, err = parseQualifiedPRegister(s, "/m")
		v = p.Merging()
	case pRegisterZeroType:
		var p sve.PRegister
		p, err = parseQualifiedPRegister(s, "/z")
		v = p.Zeroing()
	case registerType:
		v, err = parseRegister(s)
	case vRegisterType:
		v, err = parseVRegister(s)
	case rotationType:
		v, err = parseRotation(s)
	case predicatePatternType:
		v, err = parsePredicatePattern(s)
	case memoryOperandType:
		v, err = parseMemoryOperand(s)
	case opTypeType:
		v, err = parseOpType(s)
	default:
		switch t.Kind() {
		case reflect.Int32, reflect.Int64:
			var i int64
			i, err = strconv.ParseInt(trimImmediate(s), 0, t.Bits())
			v = i
		case reflect.Uint32:
			var u uint64
			u, err = strconv.ParseUint(trimImmediate(s), 0, t.Bits())
			v = u
		case reflect.Float64:
			v, err = strconv.ParseFloat(trimImmediate(s), 64)
		case reflect.Bool:
			v, err = strconv.ParseBool(s)
		default:
			return reflect.Value{}, fmt.Errorf("BUG: unsupported operand type %s", t)
		}
	}
	if err != nil {
		return reflect.Value{}, err
	}
	return reflect.ValueOf(v).Convert(t), nil
}

func trimImmediate(s string) string {
	return strings.TrimPrefix(s, "#")
}

// parseElementSize accepts an arrangement suffix such as "s" or a bit width
// such as "32".
func parseElementSize(s string) (sve.ElementSize, error) {
	s = strings.ToLower(strings.TrimPrefix(s, "."))
	if size, ok := sve.ElementSizeFromSuffix(s); ok {
		return size, nil
	}
	for size := sve.Element8; size <= sve.Element128; size++ {
		if strconv.Itoa(int(size.Bits())) == s {
			return size, nil
		}
	}
	return 0, fmt.Errorf("invalid element size %q", s)
}

// registerNumber parses the number following prefix in s, such as 3 in "z3".
func registerNumber(s, prefix string, limit uint64) (uint32, error) {
	if !strings.HasPrefix(s, prefix) {
		return 0, fmt.Errorf("invalid register %q", s)
	}
	n, err := strconv.ParseUint(s[len(prefix):], 10, 8)
	if err != nil || n >= limit {
		return 0, fmt.Errorf("invalid register %q", s)
	}
	return uint32(n), nil
}

// trimArrangement removes an arrangement suffix such as ".s" from a register.
func trimArrangement(s string) (string, error) {
	reg, suffix, ok := strings.Cut(s, ".")
	if !ok {
		return s, nil
	}
	if _, ok = sve.ElementSizeFromSuffix(suffix); !ok {
		return "", fmt.Errorf("invalid arrangement %q", s)
	}
	return reg, nil
}

func parseZRegister(s string) (sve.ZRegister, error) {
	s, err := trimArrangement(strings.ToLower(s))
	if err != nil {
		return 0, err
	}
	n, err := registerNumber(s, "z", 32)
	return sve.ZRegister(n), err
}

func parsePRegister(s string) (sve.PRegister, error) {
	s, err := trimArrangement(strings.ToLower(s))
	if err != nil {
		return 0, err
	}
	n, err := registerNumber(s, "p", 16)
	return sve.PRegister(n), err
}

// parseQualifiedPRegister parses a governing predicate such as "p1/m".
func parseQualifiedPRegister(s, qualifier string) (sve.PRegister, error) {
	s = strings.ToLower(s)
	if !strings.HasSuffix(s, qualifier) {
		return 0, fmt.Errorf("predicate %q must be qualified with %s", s, qualifier)
	}
	return parsePRegister(strings.TrimSuffix(s, qualifier))
}

func parseRegister(s string) (sve.Register, error) {
	s = strings.ToLower(s)
	switch s {
	case "sp", "xzr":
		return sve.XZR, nil
	case "wsp", "wzr":
		return sve.WZR, nil
	}
	if strings.HasPrefix(s, "w") {
		n, err := registerNumber(s, "w", 31)
		return sve.WRegister(n), err
	}
	n, err := registerNumber(s, "x", 31)
	return sve.XRegister(n), err
}

// parseVRegister accepts "v7" and the scalar views "b7", "h7", "s7", "d7" and "q7".
func parseVRegister(s string) (sve.VRegister, error) {
	s = strings.ToLower(s)
	if s == "" || !strings.ContainsRune("vbhsdq", rune(s[0])) {
		return 0, fmt.Errorf("invalid register %q", s)
	}
	n, err := registerNumber(s, s[:1], 32)
	return sve.VRegister(n), err
}

func parseRotation(s string) (sve.Rotation, error) {
	deg, err := strconv.Atoi(trimImmediate(s))
	if err != nil || deg < 0 || deg > 270 || deg%90 != 0 {
		return 0, fmt.Errorf("invalid rotation %q", s)
	}
	return sve.Rotation(deg / 90), nil
}

func parsePredicatePattern(s string) (sve.PredicatePattern, error) {
	if p, ok := sve.PredicatePatternFromString(strings.ToLower(s)); ok {
		return p, nil
	}
	n, err := strconv.ParseUint(trimImmediate(s), 0, 8)
	if err != nil {
		return 0, fmt.Errorf("invalid predicate pattern %q", s)
	}
	return sve.PredicatePattern(n), nil
}

func parseOpType(s string) (sve.OpType, error) {
	switch strings.ToLower(s) {
	case sve.OpTypeDestructive.String():
		return sve.OpTypeDestructive, nil
	case sve.OpTypeConstructive.String():
		return sve.OpTypeConstructive, nil
	}
	return 0, fmt.Errorf("invalid operation type %q", s)
}

// parseMemoryOperand accepts "[x1]", "[x1, x2]", "[x1, #3]", "[x1, #3, mul vl]",
// "[x1, z2]" and "[z1, #3]".
func parseMemoryOperand(s string) (sve.MemoryOperand, error) {
	if !strings.HasPrefix(s, "[") || !strings.HasSuffix(s, "]") {
		return sve.MemoryOperand{}, fmt.Errorf("invalid memory operand %q", s)
	}
	parts := splitOperands(s[1 : len(s)-1])
	if len(parts) == 0 || len(parts) > 3 {
		return sve.MemoryOperand{}, fmt.Errorf("invalid memory operand %q", s)
	}

	var imm int64
	var offset string
	if len(parts) > 1 {
		if strings.HasPrefix(parts[1], "#") {
			var err error
			if imm, err = strconv.ParseInt(trimImmediate(parts[1]), 0, 32); err != nil {
				return sve.MemoryOperand{}, fmt.Errorf("invalid memory operand %q: %w", s, err)
			}
		} else {
			offset = strings.ToLower(parts[1])
		}
	}
	if len(parts) == 3 && (offset != "" || strings.ToLower(parts[2]) != "mul vl") {
		return sve.MemoryOperand{}, fmt.Errorf("invalid memory operand %q", s)
	}

	if base := strings.ToLower(parts[0]); strings.HasPrefix(base, "z") {
		zn, err := parseZRegister(base)
		if err != nil || offset != "" || len(parts) == 3 {
			return sve.MemoryOperand{}, fmt.Errorf("invalid memory operand %q", s)
		}
		return sve.VectorImm(zn, int32(imm)), nil
	}

	rn, err := parseRegister(parts[0])
	if err != nil {
		return sve.MemoryOperand{}, err
	}
	switch {
	case offset == "":
		return sve.ScalarImm(rn, int32(imm)), nil
	case strings.HasPrefix(offset, "z"):
		zm, err := parseZRegister(offset)
		return sve.ScalarVector(rn, zm), err
	default:
		rm, err := parseRegister(offset)
		return sve.ScalarScalar(rn, rm), err
	}
}
