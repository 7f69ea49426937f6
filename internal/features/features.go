// Package features describes the optional ISA extensions the encoder may emit
// instructions for.
//
// The base SVE instruction set is always available. Extensions are carried in a
// Set value rather than global state, so that emitters targeting different CPUs
// can coexist in one process.
package features

import (
	"fmt"
	"strings"

	"github.com/xyproto/env/v2"
)

// EnvVarName is the name of the environment variable which contains the
// comma separated list of enabled extensions.
const EnvVarName = "SVEASM_FEATURES"

// Set is a set of ISA extensions.
type Set uint64

const (
	// SVE2 is the second generation of the scalable vector extension.
	SVE2 Set = 1 << iota
	// BitPerm is the SVE2 bit permutation extension (BEXT, BDEP, BGRP).
	BitPerm
	// I8MM is the 8-bit integer matrix multiply extension (SMMLA, USMMLA, UMMLA).
	I8MM
)

// None is the empty set: base SVE only.
const None Set = 0

// All enables every extension known to the encoder.
const All = SVE2 | BitPerm | I8MM

var names = []struct {
	f    Set
	name string
}{
	{SVE2, "sve2"},
	{BitPerm, "bitperm"},
	{I8MM, "i8mm"},
}

// Has returns true if every extension of f is in s.
func (s Set) Has(f Set) bool {
	return s&f == f
}

// With returns s with f added.
func (s Set) With(f Set) Set {
	return s | f
}

// Without returns s with f removed.
func (s Set) Without(f Set) Set {
	return s &^ f
}

// String implements fmt.Stringer.
func (s Set) String() string {
	var list []string
	for _, n := range names {
		if s.Has(n.f) {
			list = append(list, n.name)
		}
	}
	if len(list) == 0 {
		return "none"
	}
	return strings.Join(list, ",")
}

// Parse returns the set named by a comma separated list such as "sve2,i8mm".
// The names "all" and "none" are also accepted.
func Parse(list string) (Set, error) {
	var s Set
	for _, name := range strings.Split(list, ",") {
		name = strings.ToLower(strings.TrimSpace(name))
		switch name {
		case "":
			continue
		case "all":
			s |= All
			continue
		case "none":
			continue
		}
		f, ok := lookup(name)
		if !ok {
			return None, fmt.Errorf("unknown feature %q", name)
		}
		s |= f
	}
	return s, nil
}

func lookup(name string) (Set, bool) {
	for _, n := range names {
		if n.name == name {
			return n.f, true
		}
	}
	return None, false
}

// FromEnvironment parses EnvVarName, defaulting to All when it is unset.
// The environment is re-read on every call.
func FromEnvironment() (Set, error) {
	env.Load()
	return Parse(env.Str(EnvVarName, "all"))
}
