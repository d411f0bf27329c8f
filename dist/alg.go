// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dist

import (
	"math"

	"gonum.org/v1/gonum/integrate/quad"

	"github.com/probviz/probdist/mathx"
)

// TailMass bounds the probability mass beyond the practical
// truncation of an unbounded discrete support.
const TailMass = 1e-10

// maxSupportWidth caps the practical support of unbounded discrete
// families.
const maxSupportWidth = 1 << 20

// fitTolerance is the tolerance on the objective function of the
// root finders used by fitters.
const fitTolerance = 1e-12

// bisect returns an x in [low, high] such that |f(x)| <= tolerance
// using the bisection method.
//
// f(low) and f(high) must have opposite signs. If they do not,
// bisect returns NaN, false.
//
// If f does not have a root in this interval (e.g., it is
// discontiguous), this returns the X of the apparent discontinuity
// and false.
func bisect(f func(float64) float64, low, high, tolerance float64) (float64, bool) {
	flow, fhigh := f(low), f(high)
	if -tolerance <= flow && flow <= tolerance {
		return low, true
	}
	if -tolerance <= fhigh && fhigh <= tolerance {
		return high, true
	}
	if mathx.Sign(flow) == mathx.Sign(fhigh) || math.IsNaN(flow) || math.IsNaN(fhigh) {
		return nan, false
	}
	for {
		mid := (high + low) / 2
		fmid := f(mid)
		if -tolerance <= fmid && fmid <= tolerance {
			return mid, true
		}
		if mid == high || mid == low {
			return mid, false
		}
		if mathx.Sign(fmid) == mathx.Sign(flow) {
			low = mid
			flow = fmid
		} else {
			high = mid
		}
	}
}

// solve finds a root of f in [low, high] for a fitter. If bisect
// stops at the resolution of float64 the midpoint is accepted.
func solve(f func(float64) float64, low, high float64) (float64, bool) {
	x, _ := bisect(f, low, high, fitTolerance)
	return x, !math.IsNaN(x)
}

// tailSupport returns the smallest k >= lo with cdf(k) >= 1-TailMass,
// or lo+maxSupportWidth if there is no such k below that.
func tailSupport(lo int, cdf func(k int) float64) int {
	const target = 1 - TailMass
	if !(cdf(lo) < target) {
		return lo
	}
	width := 1
	for cdf(lo+width) < target {
		if width >= maxSupportWidth {
			return lo + maxSupportWidth
		}
		width *= 2
	}
	a, b := lo+width/2, lo+width
	if width == 1 {
		a = lo
	}
	for b-a > 1 {
		mid := a + (b-a)/2
		if cdf(mid) < target {
			a = mid
		} else {
			b = mid
		}
	}
	return b
}

// floorInt returns floor(x) as an int, with x limited to [lo, hi].
func floorInt(x float64, lo, hi int) int {
	if x <= float64(lo) {
		return lo
	}
	if x >= float64(hi) {
		return hi
	}
	return int(math.Floor(x))
}

// cdfBySum returns the sum of pmf(k) for lo <= k <= floor(x).
func cdfBySum(x float64, lo int, pmf func(int) float64) float64 {
	if x < float64(lo) {
		return 0
	}
	hi := floorInt(x, lo, lo+maxSupportWidth)
	sum := 0.0
	for k := lo; k <= hi; k++ {
		sum += pmf(k)
	}
	return math.Min(sum, 1)
}

// walkPMF returns the smallest k in [lo, hi] such that the sum of
// pmf from lo through k is at least u, or hi if there is none.
func walkPMF(u float64, lo, hi int, pmf func(int) float64) float64 {
	sum := 0.0
	for k := lo; k < hi; k++ {
		sum += pmf(k)
		if u <= sum {
			return float64(k)
		}
	}
	return float64(hi)
}

// quadMoments returns the mean and variance of a continuous
// distribution by Gauss-Legendre quadrature over its quantile range
// [Q(ε), Q(1-ε)].
func quadMoments(f Continuous, v Params) (mean, variance float64) {
	const eps = 1e-12
	lo, hi := invert(f, v, eps, 0), invert(f, v, 1-eps, 0)
	const n = 500
	m1 := quad.Fixed(func(x float64) float64 { return x * f.PDF(v, x) }, lo, hi, n, quad.Legendre{}, 0)
	m2 := quad.Fixed(func(x float64) float64 { return (x - m1) * (x - m1) * f.PDF(v, x) }, lo, hi, n, quad.Legendre{}, 0)
	return m1, m2
}
