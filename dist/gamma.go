// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dist

import (
	"math"
	"math/rand/v2"

	"gonum.org/v1/gonum/mathext"

	"github.com/probviz/probdist/mathx"
	"github.com/probviz/probdist/stats"
)

// gammaPDF returns the density of Gamma(k, θ) at x.
func gammaPDF(k, theta, x float64) float64 {
	switch {
	case x < 0:
		return 0
	case x == 0:
		if k < 1 {
			return inf
		} else if k == 1 {
			return 1 / theta
		}
		return 0
	}
	return math.Exp((k-1)*math.Log(x) - x/theta - mathx.Lgamma(k) - k*math.Log(theta))
}

func gammaCDF(k, theta, x float64) float64 {
	if x <= 0 {
		return 0
	}
	return mathx.GammaInc(k, x/theta)
}

// Gamma is the gamma distribution with shape k and scale θ.
type Gamma struct{ unchecked }

var gammaParams = []Param{positive("k", 2), positive("theta", 1)}

func (Gamma) Name() string { return "Gamma" }

func (Gamma) Params() []Param { return gammaParams }

func (Gamma) PDF(v Params, x float64) float64 { return gammaPDF(v[0], v[1], x) }

func (Gamma) CDF(v Params, x float64) float64 { return gammaCDF(v[0], v[1], x) }

func (Gamma) Support(Params) (float64, float64) { return 0, inf }

func (d Gamma) Domain(v Params) (float64, float64) { return quantileDomain(d, v) }

func (Gamma) Mean(v Params) (float64, bool) { return v[0] * v[1], true }

func (Gamma) Variance(v Params) (float64, bool) { return v[0] * v[1] * v[1], true }

func (Gamma) Rand(v Params, r *rand.Rand) float64 {
	return v[1] * gammaVariate(r, v[0])
}

// Fit estimates the shape by maximum likelihood when the sample is
// positive, solving log k - ψ(k) = log(mean) - mean(log x), and by
// the method of moments otherwise.
func (Gamma) Fit(s *stats.Summary) (Params, bool) {
	m, variance := s.Mean, s.Variance()
	if s.Min < 0 || !(m > 0) || !(variance > 0) {
		return nil, false
	}
	k := m * m / variance
	if s.Min > 0 {
		target := math.Log(m) - s.LogMean
		if target > 0 {
			mle, ok := solve(func(k float64) float64 {
				return math.Log(k) - mathext.Digamma(k) - target
			}, 1e-8, 1e10)
			if ok {
				k = mle
			}
		}
	}
	return Params{k, m / k}, true
}

// Erlang is the distribution of the sum of k independent exponential
// variables with rate λ.
type Erlang struct{ unchecked }

var erlangParams = []Param{integer("k", 1, 2), positive("lambda", 1)}

func (Erlang) Name() string { return "Erlang" }

func (Erlang) Params() []Param { return erlangParams }

func (Erlang) PDF(v Params, x float64) float64 { return gammaPDF(v[0], 1/v[1], x) }

func (Erlang) CDF(v Params, x float64) float64 { return gammaCDF(v[0], 1/v[1], x) }

func (Erlang) Support(Params) (float64, float64) { return 0, inf }

func (d Erlang) Domain(v Params) (float64, float64) { return quantileDomain(d, v) }

func (Erlang) Mean(v Params) (float64, bool) { return v[0] / v[1], true }

func (Erlang) Variance(v Params) (float64, bool) { return v[0] / (v[1] * v[1]), true }

func (Erlang) Rand(v Params, r *rand.Rand) float64 {
	return gammaVariate(r, v[0]) / v[1]
}

// Fit rounds the moment estimate of k and then matches the mean.
func (Erlang) Fit(s *stats.Summary) (Params, bool) {
	m, variance := s.Mean, s.Variance()
	if s.Min < 0 || !(m > 0) || !(variance > 0) {
		return nil, false
	}
	k := math.Max(1, math.Round(m*m/variance))
	return Params{k, k / m}, true
}

// ChiSquared is the chi-squared distribution with k degrees of
// freedom.
type ChiSquared struct{ unchecked }

var chiSquaredParams = []Param{positive("k", 3)}

func (ChiSquared) Name() string { return "ChiSquared" }

func (ChiSquared) Params() []Param { return chiSquaredParams }

func (ChiSquared) PDF(v Params, x float64) float64 { return gammaPDF(v[0]/2, 2, x) }

func (ChiSquared) CDF(v Params, x float64) float64 { return gammaCDF(v[0]/2, 2, x) }

func (ChiSquared) Support(Params) (float64, float64) { return 0, inf }

func (d ChiSquared) Domain(v Params) (float64, float64) { return quantileDomain(d, v) }

func (ChiSquared) Mean(v Params) (float64, bool) { return v[0], true }

func (ChiSquared) Variance(v Params) (float64, bool) { return 2 * v[0], true }

func (ChiSquared) Rand(v Params, r *rand.Rand) float64 {
	return 2 * gammaVariate(r, v[0]/2)
}

func (ChiSquared) Fit(s *stats.Summary) (Params, bool) {
	if s.Min < 0 || !(s.Mean > 0) {
		return nil, false
	}
	return Params{s.Mean}, true
}

// Chi is the distribution of the Euclidean norm of k independent
// standard normal variables.
type Chi struct{ unchecked }

var chiParams = []Param{positive("k", 3)}

func (Chi) Name() string { return "Chi" }

func (Chi) Params() []Param { return chiParams }

func (Chi) PDF(v Params, x float64) float64 {
	k := v[0]
	switch {
	case x < 0:
		return 0
	case x == 0:
		if k < 1 {
			return inf
		} else if k == 1 {
			return math.Sqrt(2 / math.Pi)
		}
		return 0
	}
	return math.Exp((k-1)*math.Log(x) - x*x/2 - (k/2-1)*math.Ln2 - mathx.Lgamma(k/2))
}

func (Chi) CDF(v Params, x float64) float64 {
	if x <= 0 {
		return 0
	}
	return mathx.GammaInc(v[0]/2, x*x/2)
}

func (Chi) Support(Params) (float64, float64) { return 0, inf }

func (d Chi) Domain(v Params) (float64, float64) { return quantileDomain(d, v) }

func (Chi) Mean(v Params) (float64, bool) { return chiMean(v[0]), true }

func chiMean(k float64) float64 {
	return math.Sqrt2 * math.Exp(mathx.Lgamma((k+1)/2)-mathx.Lgamma(k/2))
}

func (Chi) Variance(v Params) (float64, bool) {
	m := chiMean(v[0])
	return v[0] - m*m, true
}

func (Chi) Rand(v Params, r *rand.Rand) float64 {
	return math.Sqrt(2 * gammaVariate(r, v[0]/2))
}

// Fit uses E[X²] = k.
func (Chi) Fit(s *stats.Summary) (Params, bool) {
	if s.Min < 0 {
		return nil, false
	}
	k := s.Mean*s.Mean + s.Variance()
	if !(k > 0) {
		return nil, false
	}
	return Params{k}, true
}

// Maxwell is the Maxwell-Boltzmann distribution with scale a.
type Maxwell struct{ unchecked }

var maxwellParams = []Param{positive("a", 1)}

func (Maxwell) Name() string { return "Maxwell" }

func (Maxwell) Params() []Param { return maxwellParams }

func (Maxwell) PDF(v Params, x float64) float64 {
	if x < 0 {
		return 0
	}
	a := v[0]
	return math.Sqrt(2/math.Pi) * x * x * math.Exp(-x*x/(2*a*a)) / (a * a * a)
}

func (Maxwell) CDF(v Params, x float64) float64 {
	if x <= 0 {
		return 0
	}
	a := v[0]
	return mathx.GammaInc(1.5, x*x/(2*a*a))
}

func (Maxwell) Support(Params) (float64, float64) { return 0, inf }

func (Maxwell) Domain(v Params) (float64, float64) { return 0, 5 * v[0] }

func (Maxwell) Mean(v Params) (float64, bool) { return 2 * v[0] * math.Sqrt(2/math.Pi), true }

func (Maxwell) Variance(v Params) (float64, bool) {
	a := v[0]
	return a * a * (3*math.Pi - 8) / math.Pi, true
}

func (Maxwell) Rand(v Params, r *rand.Rand) float64 {
	return v[0] * math.Sqrt(2*gammaVariate(r, 1.5))
}

func (Maxwell) Fit(s *stats.Summary) (Params, bool) {
	if s.Min < 0 || !(s.Mean > 0) {
		return nil, false
	}
	return Params{s.Mean / (2 * math.Sqrt(2/math.Pi))}, true
}

// InverseGamma is the distribution of 1/X where X is Gamma(α, 1/β).
type InverseGamma struct{ unchecked }

var inverseGammaParams = []Param{positive("alpha", 3), positive("beta", 1)}

func (InverseGamma) Name() string { return "InverseGamma" }

func (InverseGamma) Params() []Param { return inverseGammaParams }

func (InverseGamma) PDF(v Params, x float64) float64 {
	if x <= 0 {
		return 0
	}
	a, b := v[0], v[1]
	return math.Exp(a*math.Log(b) - mathx.Lgamma(a) - (a+1)*math.Log(x) - b/x)
}

func (InverseGamma) CDF(v Params, x float64) float64 {
	if x <= 0 {
		return 0
	}
	return mathx.GammaIncComp(v[0], v[1]/x)
}

func (InverseGamma) Support(Params) (float64, float64) { return 0, inf }

func (d InverseGamma) Domain(v Params) (float64, float64) { return quantileDomain(d, v) }

func (InverseGamma) Mean(v Params) (float64, bool) {
	a, b := v[0], v[1]
	if a <= 1 {
		return inf, false
	}
	return b / (a - 1), true
}

func (InverseGamma) Variance(v Params) (float64, bool) {
	a, b := v[0], v[1]
	if a <= 2 {
		return inf, false
	}
	return b * b / ((a - 1) * (a - 1) * (a - 2)), true
}

func (InverseGamma) Rand(v Params, r *rand.Rand) float64 {
	return v[1] / gammaVariate(r, v[0])
}

// Fit matches the mean and variance.
func (InverseGamma) Fit(s *stats.Summary) (Params, bool) {
	m, variance := s.Mean, s.Variance()
	if !(s.Min > 0) || !(variance > 0) {
		return nil, false
	}
	a := m*m/variance + 2
	return Params{a, m * (a - 1)}, true
}

// Nakagami is the Nakagami-m distribution with shape m and spread Ω.
type Nakagami struct{ unchecked }

var nakagamiParams = []Param{
	{Name: "m", Min: 0.5, MinInclusive: true, Max: inf, Default: 1},
	positive("omega", 1),
}

func (Nakagami) Name() string { return "Nakagami" }

func (Nakagami) Params() []Param { return nakagamiParams }

func (Nakagami) PDF(v Params, x float64) float64 {
	if x <= 0 {
		return 0
	}
	m, omega := v[0], v[1]
	return 2 * math.Exp(m*math.Log(m/omega)-mathx.Lgamma(m)+(2*m-1)*math.Log(x)-m*x*x/omega)
}

func (Nakagami) CDF(v Params, x float64) float64 {
	if x <= 0 {
		return 0
	}
	m, omega := v[0], v[1]
	return mathx.GammaInc(m, m*x*x/omega)
}

func (Nakagami) Support(Params) (float64, float64) { return 0, inf }

func (d Nakagami) Domain(v Params) (float64, float64) { return quantileDomain(d, v) }

// nakagamiRatio returns E[X]²/E[X²] for shape m.
func nakagamiRatio(m float64) float64 {
	return math.Exp(2*(mathx.Lgamma(m+0.5)-mathx.Lgamma(m))) / m
}

func (Nakagami) Mean(v Params) (float64, bool) {
	m, omega := v[0], v[1]
	return math.Sqrt(omega * nakagamiRatio(m)), true
}

func (Nakagami) Variance(v Params) (float64, bool) {
	m, omega := v[0], v[1]
	return omega * (1 - nakagamiRatio(m)), true
}

func (d Nakagami) Rand(v Params, r *rand.Rand) float64 {
	return InvertCDF(d, v, uniformOpen(r))
}

// Fit takes Ω = E[X²] and solves E[X]²/Ω for m.
func (Nakagami) Fit(s *stats.Summary) (Params, bool) {
	if s.Min < 0 || !(s.Mean > 0) {
		return nil, false
	}
	omega := s.Variance() + s.Mean*s.Mean
	ratio := s.Mean * s.Mean / omega
	if !(ratio < 1) {
		return nil, false
	}
	if ratio <= nakagamiRatio(0.5) {
		return Params{0.5, omega}, true
	}
	m, ok := solve(func(m float64) float64 { return nakagamiRatio(m) - ratio }, 0.5, 1e8)
	if !ok {
		return nil, false
	}
	return Params{m, omega}, true
}
