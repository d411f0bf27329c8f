// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dist

import (
	"fmt"
	"math"
	"slices"
	"strings"

	"github.com/cockroachdb/errors"
)

// A Param declares one parameter of a Family.
type Param struct {
	// Name identifies the parameter.
	Name string

	// Discrete parameters take integer values.
	Discrete bool

	// Min and Max bound the parameter. They are infinite if the
	// parameter is unbounded in that direction.
	Min, Max float64

	// MinInclusive and MaxInclusive report whether Min and Max
	// are themselves valid values.
	MinInclusive, MaxInclusive bool

	// Default is a valid value for the parameter.
	Default float64
}

// Contains reports whether x is a valid value for p.
func (p Param) Contains(x float64) bool {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return false
	}
	if p.Discrete && x != math.Trunc(x) {
		return false
	}
	if x < p.Min || x == p.Min && !p.MinInclusive {
		return false
	}
	if x > p.Max || x == p.Max && !p.MaxInclusive {
		return false
	}
	return true
}

func (p Param) String() string {
	lo, hi := "(", ")"
	if p.MinInclusive {
		lo = "["
	}
	if p.MaxInclusive {
		hi = "]"
	}
	kind := ""
	if p.Discrete {
		kind = " integer"
	}
	return fmt.Sprintf("%s ∈ %s%g, %g%s%s", p.Name, lo, p.Min, p.Max, hi, kind)
}

// Params holds parameter values in declaration order.
type Params []float64

// Defaults returns the default parameters of f.
func Defaults(f Family) Params {
	decl := f.Params()
	v := make(Params, len(decl))
	for i, p := range decl {
		v[i] = p.Default
	}
	return v
}

// Validate checks that v is a valid parameter assignment for f.
// The returned error wraps ErrInvalidParams.
func Validate(f Family, v Params) error {
	decl := f.Params()
	if len(v) != len(decl) {
		return errors.Wrapf(ErrInvalidParams, "%s: got %d parameters, want %d", f.Name(), len(v), len(decl))
	}
	for i, p := range decl {
		if !p.Contains(v[i]) {
			return errors.Wrapf(ErrInvalidParams, "%s: %s = %v, want %v", f.Name(), p.Name, v[i], p)
		}
	}
	if !f.Check(v) {
		return errors.Wrapf(ErrInvalidParams, "%s: inconsistent parameters %v", f.Name(), Named(f, v))
	}
	return nil
}

// FromMap converts named parameter values to positional form and
// validates them. Parameters missing from m take their default.
func FromMap(f Family, m map[string]float64) (Params, error) {
	decl := f.Params()
	v := Defaults(f)
	seen := 0
	for i, p := range decl {
		if x, ok := m[p.Name]; ok {
			v[i] = x
			seen++
		}
	}
	if seen != len(m) {
		var unknown []string
		for name := range m {
			if paramIndex(decl, name) < 0 {
				unknown = append(unknown, name)
			}
		}
		slices.Sort(unknown)
		return nil, errors.Wrapf(ErrInvalidParams, "%s: unknown parameters %s", f.Name(), strings.Join(unknown, ", "))
	}
	if err := Validate(f, v); err != nil {
		return nil, err
	}
	return v, nil
}

// Named returns the parameters v of f keyed by parameter name.
func Named(f Family, v Params) map[string]float64 {
	decl := f.Params()
	m := make(map[string]float64, len(decl))
	for i, p := range decl {
		if i < len(v) {
			m[p.Name] = v[i]
		}
	}
	return m
}

func paramIndex(decl []Param, name string) int {
	for i, p := range decl {
		if p.Name == name {
			return i
		}
	}
	return -1
}

// Declaration helpers.

func unbounded(name string, def float64) Param {
	return Param{Name: name, Min: -inf, Max: inf, Default: def}
}

func positive(name string, def float64) Param {
	return Param{Name: name, Min: 0, Max: inf, Default: def}
}

func probability(name string, def float64) Param {
	return Param{Name: name, Min: 0, MinInclusive: true, Max: 1, MaxInclusive: true, Default: def}
}

func integer(name string, min, def float64) Param {
	return Param{Name: name, Discrete: true, Min: min, MinInclusive: true, Max: inf, Default: def}
}
