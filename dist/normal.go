// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dist

import (
	"math"
	"math/rand/v2"

	"github.com/probviz/probdist/stats"
)

const invSqrt2Pi = 0.398942280401432677939946059934381868475858631164934657665925

// normalCDF returns the standard normal CDF at z.
func normalCDF(z float64) float64 {
	return 0.5 * math.Erfc(-z/math.Sqrt2)
}

// Normal is the normal distribution with mean μ and standard
// deviation σ.
type Normal struct{ unchecked }

var normalParams = []Param{unbounded("mu", 0), positive("sigma", 1)}

func (Normal) Name() string { return "Normal" }

func (Normal) Params() []Param { return normalParams }

func (Normal) PDF(v Params, x float64) float64 {
	mu, sigma := v[0], v[1]
	z := (x - mu) / sigma
	return math.Exp(-z*z/2) * invSqrt2Pi / sigma
}

func (Normal) CDF(v Params, x float64) float64 {
	return normalCDF((x - v[0]) / v[1])
}

func (Normal) Support(Params) (float64, float64) { return -inf, inf }

func (Normal) Domain(v Params) (float64, float64) {
	mu, sigma := v[0], v[1]
	return mu - 4*sigma, mu + 4*sigma
}

func (Normal) Mean(v Params) (float64, bool) { return v[0], true }

func (Normal) Variance(v Params) (float64, bool) { return v[1] * v[1], true }

func (Normal) Rand(v Params, r *rand.Rand) float64 {
	return v[0] + v[1]*boxMuller(r)
}

func (Normal) Fit(s *stats.Summary) (Params, bool) {
	if !(s.StdDev > 0) {
		return nil, false
	}
	return Params{s.Mean, s.StdDev}, true
}

// HalfNormal is the distribution of |X| where X is Normal(0, σ).
type HalfNormal struct{ unchecked }

var halfNormalParams = []Param{positive("sigma", 1)}

func (HalfNormal) Name() string { return "HalfNormal" }

func (HalfNormal) Params() []Param { return halfNormalParams }

func (HalfNormal) PDF(v Params, x float64) float64 {
	if x < 0 {
		return 0
	}
	z := x / v[0]
	return 2 * invSqrt2Pi / v[0] * math.Exp(-z*z/2)
}

func (HalfNormal) CDF(v Params, x float64) float64 {
	if x <= 0 {
		return 0
	}
	return math.Erf(x / (v[0] * math.Sqrt2))
}

func (HalfNormal) Support(Params) (float64, float64) { return 0, inf }

func (HalfNormal) Domain(v Params) (float64, float64) { return 0, 4 * v[0] }

func (HalfNormal) Mean(v Params) (float64, bool) { return v[0] * math.Sqrt(2/math.Pi), true }

func (HalfNormal) Variance(v Params) (float64, bool) { return v[0] * v[0] * (1 - 2/math.Pi), true }

func (HalfNormal) Rand(v Params, r *rand.Rand) float64 {
	return v[0] * math.Abs(boxMuller(r))
}

func (HalfNormal) Fit(s *stats.Summary) (Params, bool) {
	if s.Min < 0 || !(s.Mean > 0) {
		return nil, false
	}
	return Params{s.Mean * math.Sqrt(math.Pi/2)}, true
}

// LogNormal is the distribution of exp(X) where X is Normal(μ, σ).
type LogNormal struct{ unchecked }

var logNormalParams = []Param{unbounded("mu", 0), positive("sigma", 0.5)}

func (LogNormal) Name() string { return "LogNormal" }

func (LogNormal) Params() []Param { return logNormalParams }

func (LogNormal) PDF(v Params, x float64) float64 {
	if x <= 0 {
		return 0
	}
	mu, sigma := v[0], v[1]
	z := (math.Log(x) - mu) / sigma
	return math.Exp(-z*z/2) * invSqrt2Pi / (sigma * x)
}

func (LogNormal) CDF(v Params, x float64) float64 {
	if x <= 0 {
		return 0
	}
	return normalCDF((math.Log(x) - v[0]) / v[1])
}

func (LogNormal) Support(Params) (float64, float64) { return 0, inf }

func (LogNormal) Domain(v Params) (float64, float64) {
	return 0, math.Exp(v[0] + 4*v[1])
}

func (LogNormal) Mean(v Params) (float64, bool) {
	mu, sigma := v[0], v[1]
	return math.Exp(mu + sigma*sigma/2), true
}

func (LogNormal) Variance(v Params) (float64, bool) {
	mu, sigma := v[0], v[1]
	s2 := sigma * sigma
	return math.Expm1(s2) * math.Exp(2*mu+s2), true
}

func (LogNormal) Rand(v Params, r *rand.Rand) float64 {
	return math.Exp(v[0] + v[1]*boxMuller(r))
}

// Fit matches the mean and standard deviation of the log of the
// sample.
func (LogNormal) Fit(s *stats.Summary) (Params, bool) {
	if !(s.Min > 0) || !(s.LogStdDev > 0) {
		return nil, false
	}
	return Params{s.LogMean, s.LogStdDev}, true
}

// InverseGaussian is the inverse Gaussian (Wald) distribution with
// mean μ and shape λ.
type InverseGaussian struct{ unchecked }

var inverseGaussianParams = []Param{positive("mu", 1), positive("lambda", 3)}

func (InverseGaussian) Name() string { return "InverseGaussian" }

func (InverseGaussian) Params() []Param { return inverseGaussianParams }

func (InverseGaussian) PDF(v Params, x float64) float64 {
	if x <= 0 {
		return 0
	}
	mu, lambda := v[0], v[1]
	d := x - mu
	return math.Sqrt(lambda/(2*math.Pi*x*x*x)) * math.Exp(-lambda*d*d/(2*mu*mu*x))
}

func (InverseGaussian) CDF(v Params, x float64) float64 {
	if x <= 0 {
		return 0
	}
	mu, lambda := v[0], v[1]
	r := math.Sqrt(lambda / x)
	// The second term is exp(2λ/μ)·Φ(-z). Combine the factors in
	// log space so the exponential cannot overflow.
	z := r * (x/mu + 1)
	second := 0.5 * math.Exp(2*lambda/mu+logErfc(z/math.Sqrt2))
	return math.Min(1, normalCDF(r*(x/mu-1))+second)
}

// logErfc returns log(erfc(x)), using an asymptotic expansion where
// erfc underflows.
func logErfc(x float64) float64 {
	if x < 20 {
		return math.Log(math.Erfc(x))
	}
	x2 := x * x
	return -x2 - math.Log(x*math.SqrtPi) + math.Log1p(-1/(2*x2)+3/(4*x2*x2))
}

func (InverseGaussian) Support(Params) (float64, float64) { return 0, inf }

func (d InverseGaussian) Domain(v Params) (float64, float64) {
	return quantileDomain(d, v)
}

func (InverseGaussian) Mean(v Params) (float64, bool) { return v[0], true }

func (InverseGaussian) Variance(v Params) (float64, bool) {
	mu := v[0]
	return mu * mu * mu / v[1], true
}

func (d InverseGaussian) Rand(v Params, r *rand.Rand) float64 {
	return InvertCDF(d, v, uniformOpen(r))
}

// Fit matches the mean and variance.
func (InverseGaussian) Fit(s *stats.Summary) (Params, bool) {
	m, variance := s.Mean, s.Variance()
	if !(s.Min > 0) || !(variance > 0) {
		return nil, false
	}
	return Params{m, m * m * m / variance}, true
}

// Levy is the Lévy distribution with location μ and scale c.
type Levy struct{ unchecked }

var levyParams = []Param{unbounded("mu", 0), positive("c", 1)}

func (Levy) Name() string { return "Levy" }

func (Levy) Params() []Param { return levyParams }

func (Levy) PDF(v Params, x float64) float64 {
	mu, c := v[0], v[1]
	if x <= mu {
		return 0
	}
	d := x - mu
	return math.Sqrt(c/(2*math.Pi)) * math.Exp(-c/(2*d)) / math.Pow(d, 1.5)
}

func (Levy) CDF(v Params, x float64) float64 {
	mu, c := v[0], v[1]
	if x <= mu {
		return 0
	}
	return math.Erfc(math.Sqrt(c / (2 * (x - mu))))
}

func (Levy) Support(v Params) (float64, float64) { return v[0], inf }

func (Levy) Domain(v Params) (float64, float64) { return v[0], v[0] + 20*v[1] }

func (Levy) Mean(Params) (float64, bool) { return inf, false }

func (Levy) Variance(Params) (float64, bool) { return inf, false }

func (Levy) Rand(v Params, r *rand.Rand) float64 {
	z := boxMuller(r)
	for z == 0 {
		z = boxMuller(r)
	}
	return v[0] + v[1]/(z*z)
}

// Fit places μ at the sample minimum and solves the median
// μ + c/(2·erfcinv(1/2)²) for c.
func (Levy) Fit(s *stats.Summary) (Params, bool) {
	mu := s.Min
	if !(s.Median > mu) {
		return nil, false
	}
	e := math.Erfcinv(0.5)
	return Params{mu, 2 * e * e * (s.Median - mu)}, true
}
