// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dist

import (
	"math"
	"math/rand/v2"

	"github.com/probviz/probdist/stats"
)

// Exponential is the exponential distribution with rate λ.
type Exponential struct{ unchecked }

var exponentialParams = []Param{positive("lambda", 1)}

func (Exponential) Name() string { return "Exponential" }

func (Exponential) Params() []Param { return exponentialParams }

func (Exponential) PDF(v Params, x float64) float64 {
	if x < 0 {
		return 0
	}
	lambda := v[0]
	return lambda * math.Exp(-lambda*x)
}

func (Exponential) CDF(v Params, x float64) float64 {
	if x <= 0 {
		return 0
	}
	return -math.Expm1(-v[0] * x)
}

func (Exponential) Support(Params) (float64, float64) { return 0, inf }

func (Exponential) Domain(v Params) (float64, float64) {
	return 0, -math.Log(1e-4) / v[0]
}

func (Exponential) Mean(v Params) (float64, bool) { return 1 / v[0], true }

func (Exponential) Variance(v Params) (float64, bool) { return 1 / (v[0] * v[0]), true }

func (Exponential) Rand(v Params, r *rand.Rand) float64 {
	return -math.Log(uniformOpen(r)) / v[0]
}

func (Exponential) Fit(s *stats.Summary) (Params, bool) {
	if s.Min < 0 || !(s.Mean > 0) {
		return nil, false
	}
	return Params{1 / s.Mean}, true
}

// Laplace is the Laplace (double exponential) distribution with
// location μ and scale b.
type Laplace struct{ unchecked }

var laplaceParams = []Param{unbounded("mu", 0), positive("b", 1)}

func (Laplace) Name() string { return "Laplace" }

func (Laplace) Params() []Param { return laplaceParams }

func (Laplace) PDF(v Params, x float64) float64 {
	mu, b := v[0], v[1]
	return math.Exp(-math.Abs(x-mu)/b) / (2 * b)
}

func (Laplace) CDF(v Params, x float64) float64 {
	mu, b := v[0], v[1]
	if x < mu {
		return 0.5 * math.Exp((x-mu)/b)
	}
	return 1 - 0.5*math.Exp(-(x-mu)/b)
}

func (Laplace) Support(Params) (float64, float64) { return -inf, inf }

func (Laplace) Domain(v Params) (float64, float64) {
	mu, b := v[0], v[1]
	w := -b * math.Log(2e-4)
	return mu - w, mu + w
}

func (Laplace) Mean(v Params) (float64, bool) { return v[0], true }

func (Laplace) Variance(v Params) (float64, bool) { return 2 * v[1] * v[1], true }

func (Laplace) Rand(v Params, r *rand.Rand) float64 {
	return laplaceVariate(r, v[0], v[1])
}

func laplaceVariate(r *rand.Rand, mu, b float64) float64 {
	u := uniformOpen(r) - 0.5
	if u < 0 {
		return mu + b*math.Log1p(2*u)
	}
	return mu - b*math.Log1p(-2*u)
}

// Fit matches the mean and variance.
func (Laplace) Fit(s *stats.Summary) (Params, bool) {
	if !(s.StdDev > 0) {
		return nil, false
	}
	return Params{s.Mean, s.StdDev / math.Sqrt2}, true
}

// LogLaplace is the distribution of exp(X) where X is Laplace(μ, b).
type LogLaplace struct{ unchecked }

var logLaplaceParams = []Param{unbounded("mu", 0), positive("b", 0.25)}

func (LogLaplace) Name() string { return "LogLaplace" }

func (LogLaplace) Params() []Param { return logLaplaceParams }

func (LogLaplace) PDF(v Params, x float64) float64 {
	if x <= 0 {
		return 0
	}
	mu, b := v[0], v[1]
	return math.Exp(-math.Abs(math.Log(x)-mu)/b) / (2 * b * x)
}

func (LogLaplace) CDF(v Params, x float64) float64 {
	if x <= 0 {
		return 0
	}
	return Laplace{}.CDF(v, math.Log(x))
}

func (LogLaplace) Support(Params) (float64, float64) { return 0, inf }

func (LogLaplace) Domain(v Params) (float64, float64) {
	_, hi := Laplace{}.Domain(v)
	return 0, math.Exp(hi)
}

func (LogLaplace) Mean(v Params) (float64, bool) {
	mu, b := v[0], v[1]
	if b >= 1 {
		return inf, false
	}
	return math.Exp(mu) / (1 - b*b), true
}

func (LogLaplace) Variance(v Params) (float64, bool) {
	mu, b := v[0], v[1]
	if b >= 0.5 {
		return inf, false
	}
	return math.Exp(2*mu) * (1/(1-4*b*b) - 1/((1-b*b)*(1-b*b))), true
}

func (LogLaplace) Rand(v Params, r *rand.Rand) float64 {
	return math.Exp(laplaceVariate(r, v[0], v[1]))
}

// Fit matches the mean and variance of the log of the sample.
func (LogLaplace) Fit(s *stats.Summary) (Params, bool) {
	if !(s.Min > 0) || !(s.LogStdDev > 0) {
		return nil, false
	}
	return Params{s.LogMean, s.LogStdDev / math.Sqrt2}, true
}
