// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mathx

import "math"

// Gamma returns Γ(x) for x > 0 and NaN otherwise.
func Gamma(x float64) float64 {
	if !(x > 0) {
		return nan
	}
	return math.Gamma(x)
}

// Lgamma returns log Γ(x) for x > 0 and NaN otherwise.
func Lgamma(x float64) float64 {
	if !(x > 0) {
		return nan
	}
	y, _ := math.Lgamma(x)
	return y
}

const (
	gammaIncMaxIterations = 100000
	gammaIncEpsilon       = 1e-15
	gammaIncTiny          = 1e-300
)

// GammaInc returns the regularized lower incomplete gamma function
//
//	P(a, x) = γ(a, x) / Γ(a) = 1/Γ(a) ∫₀ˣ tᵃ⁻¹ e⁻ᵗ dt.
//
// a must be > 0 and x must be >= 0.
func GammaInc(a, x float64) float64 {
	switch {
	case !(a > 0) || !(x >= 0):
		return nan
	case x == 0:
		return 0
	case math.IsInf(x, 1):
		return 1
	}
	if x < a+1 {
		return clamp01(gammaIncSeries(a, x))
	}
	return clamp01(1 - gammaIncFrac(a, x))
}

// GammaIncComp returns the regularized upper incomplete gamma
// function Q(a, x) = 1 - P(a, x).
//
// For large x this is more accurate than 1 - GammaInc(a, x).
func GammaIncComp(a, x float64) float64 {
	switch {
	case !(a > 0) || !(x >= 0):
		return nan
	case x == 0:
		return 1
	case math.IsInf(x, 1):
		return 0
	}
	if x < a+1 {
		return clamp01(1 - gammaIncSeries(a, x))
	}
	return clamp01(gammaIncFrac(a, x))
}

// gammaIncSeries evaluates P(a, x) by its power series, which
// converges quickly for x < a+1.
func gammaIncSeries(a, x float64) float64 {
	ap := a
	sum := 1 / a
	del := sum
	for n := 0; n < gammaIncMaxIterations; n++ {
		ap++
		del *= x / ap
		sum += del
		if math.Abs(del) < math.Abs(sum)*gammaIncEpsilon {
			break
		}
	}
	return sum * math.Exp(-x+a*math.Log(x)-Lgamma(a))
}

// gammaIncFrac evaluates Q(a, x) by its continued fraction using the
// modified Lentz method. It converges quickly for x >= a+1.
func gammaIncFrac(a, x float64) float64 {
	b := x + 1 - a
	c := 1 / gammaIncTiny
	d := 1 / b
	h := d
	for i := 1; i < gammaIncMaxIterations; i++ {
		an := -float64(i) * (float64(i) - a)
		b += 2
		d = an*d + b
		if math.Abs(d) < gammaIncTiny {
			d = gammaIncTiny
		}
		c = b + an/c
		if math.Abs(c) < gammaIncTiny {
			c = gammaIncTiny
		}
		d = 1 / d
		del := d * c
		h *= del
		if math.Abs(del-1) < gammaIncEpsilon {
			break
		}
	}
	return math.Exp(-x+a*math.Log(x)-Lgamma(a)) * h
}

func clamp01(x float64) float64 {
	return math.Max(0, math.Min(1, x))
}
