// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package mathtest provides helpers for testing numeric functions.
package mathtest

import (
	"fmt"
	"math"
	"sort"
	"strings"
	"testing"
)

// Aeq reports whether expect and got are equal up to a relative
// error of about 1e-8. NaN equals NaN and infinities equal
// themselves.
func Aeq(expect, got float64) bool {
	return Close(expect, got, 1e-8)
}

// Close reports whether got is within relative tolerance tol of
// expect. When expect is 0, tol is used as an absolute tolerance.
func Close(expect, got, tol float64) bool {
	switch {
	case math.IsNaN(expect) || math.IsNaN(got):
		return math.IsNaN(expect) && math.IsNaN(got)
	case math.IsInf(expect, 0) || math.IsInf(got, 0):
		return expect == got
	case expect == 0:
		return math.Abs(got) <= tol
	}
	return math.Abs(expect-got) <= tol*math.Abs(expect)
}

// WantFunc checks that f(x) equals vals[x] for every key of vals,
// using Aeq. name is used in error messages; if it contains "%v" it
// is formatted with x, otherwise "name(x)" is reported.
func WantFunc(t *testing.T, name string, f func(float64) float64, vals map[float64]float64) {
	t.Helper()
	WantFuncTol(t, name, f, vals, 1e-8)
}

// WantFuncTol is like WantFunc, but with relative tolerance tol.
func WantFuncTol(t *testing.T, name string, f func(float64) float64, vals map[float64]float64, tol float64) {
	t.Helper()
	xs := make([]float64, 0, len(vals))
	for x := range vals {
		xs = append(xs, x)
	}
	sort.Float64s(xs)

	for _, x := range xs {
		want, got := vals[x], f(x)
		if Close(want, got, tol) {
			continue
		}
		var label string
		if strings.Contains(name, "%v") {
			label = fmt.Sprintf(name, x)
		} else {
			label = fmt.Sprintf("%s(%v)", name, x)
		}
		t.Errorf("want %s=%v, got %v", label, want, got)
	}
}

// Linspace returns num values spaced evenly between lo and hi,
// inclusive. If num is 1, this returns an array consisting of lo.
func Linspace(lo, hi float64, num int) []float64 {
	if num <= 0 {
		return nil
	}
	res := make([]float64, num)
	if num == 1 {
		res[0] = lo
		return res
	}
	for i := 0; i < num; i++ {
		res[i] = lo + float64(i)*(hi-lo)/float64(num-1)
	}
	return res
}

// Map returns f(x) for each x in xs.
func Map(f func(float64) float64, xs []float64) []float64 {
	ys := make([]float64, len(xs))
	for i, x := range xs {
		ys[i] = f(x)
	}
	return ys
}
