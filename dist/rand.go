// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dist

import (
	"math"
	"math/rand/v2"
)

// BisectPrecision is the width of the bracket at which InvertCDF
// stops bisecting.
var BisectPrecision = 1e-2

// InvertCDF returns the x at which f.CDF(v, x) reaches u by
// bisection. It is the random variate fallback for families without
// a closed-form inverse.
//
// The bracket starts at 0, limited to the support, and grows outward
// until it contains u. If u is 0 or 1, InvertCDF returns the lower or
// upper end of the support.
func InvertCDF(f Continuous, v Params, u float64) float64 {
	return invert(f, v, u, BisectPrecision)
}

// invert is InvertCDF with bracket width tolerance tol. If tol is 0,
// invert bisects to the resolution of float64.
func invert(f Continuous, v Params, u, tol float64) float64 {
	lo, hi := f.Support(v)
	switch {
	case !(u >= 0 && u <= 1):
		return nan
	case u == 0:
		return lo
	case u == 1:
		return hi
	}

	x0 := math.Max(lo, math.Min(hi, 0))
	a, b := x0, x0
	step := 1.0
	for i := 0; a > lo && f.CDF(v, a) > u && i < 2000; i++ {
		a = math.Max(a-step, lo)
		step *= 2
	}
	step = 1.0
	for i := 0; b < hi && f.CDF(v, b) < u && i < 2000; i++ {
		b = math.Min(b+step, hi)
		step *= 2
	}

	for i := 0; b-a > tol && i < 2000; i++ {
		mid := a + (b-a)/2
		if mid == a || mid == b {
			break
		}
		if f.CDF(v, mid) < u {
			a = mid
		} else {
			b = mid
		}
	}
	return a + (b-a)/2
}

// quantileDomain returns the quantiles at domainTail and
// 1-domainTail, widened if they coincide.
func quantileDomain(f Continuous, v Params) (lo, hi float64) {
	const domainTail = 1e-4
	lo, hi = invert(f, v, domainTail, 0), invert(f, v, 1-domainTail, 0)
	if lo == hi {
		lo, hi = lo-1, hi+1
	}
	return lo, hi
}

// uniformOpen returns a uniform random value in (0, 1).
func uniformOpen(r *rand.Rand) float64 {
	for {
		if u := r.Float64(); u > 0 {
			return u
		}
	}
}

// boxMuller returns a standard normal random value using the
// Box-Muller transform.
func boxMuller(r *rand.Rand) float64 {
	u1, u2 := uniformOpen(r), r.Float64()
	return math.Sqrt(-2*math.Log(u1)) * math.Cos(2*math.Pi*u2)
}

// gammaVariate returns a Gamma(alpha, 1) random value using the
// method of Marsaglia and Tsang. For alpha < 1 it boosts a
// Gamma(alpha+1, 1) value by U^(1/alpha).
func gammaVariate(r *rand.Rand, alpha float64) float64 {
	boost := 1.0
	if alpha < 1 {
		boost = math.Pow(uniformOpen(r), 1/alpha)
		alpha++
	}
	d := alpha - 1.0/3
	c := 1 / math.Sqrt(9*d)
	for {
		var x, t float64
		for {
			x = boxMuller(r)
			t = 1 + c*x
			if t > 0 {
				break
			}
		}
		t = t * t * t
		u := uniformOpen(r)
		if u < 1-0.0331*x*x*x*x || math.Log(u) < 0.5*x*x+d*(1-t+math.Log(t)) {
			return d * t * boost
		}
	}
}
