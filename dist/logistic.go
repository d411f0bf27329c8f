// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dist

import (
	"math"
	"math/rand/v2"

	"github.com/probviz/probdist/stats"
)

// Logistic is the logistic distribution with location μ and scale s.
type Logistic struct{ unchecked }

var logisticParams = []Param{unbounded("mu", 0), positive("s", 1)}

func (Logistic) Name() string { return "Logistic" }

func (Logistic) Params() []Param { return logisticParams }

func (Logistic) PDF(v Params, x float64) float64 {
	mu, s := v[0], v[1]
	// The density is symmetric; use the tail where exp cannot
	// overflow.
	e := math.Exp(-math.Abs(x-mu) / s)
	return e / (s * (1 + e) * (1 + e))
}

func (Logistic) CDF(v Params, x float64) float64 {
	return 1 / (1 + math.Exp(-(x-v[0])/v[1]))
}

func (Logistic) Support(Params) (float64, float64) { return -inf, inf }

func (Logistic) Domain(v Params) (float64, float64) {
	mu, s := v[0], v[1]
	w := s * math.Log(1e4)
	return mu - w, mu + w
}

func (Logistic) Mean(v Params) (float64, bool) { return v[0], true }

func (Logistic) Variance(v Params) (float64, bool) { return v[1] * v[1] * math.Pi * math.Pi / 3, true }

func (Logistic) Rand(v Params, r *rand.Rand) float64 {
	u := uniformOpen(r)
	return v[0] + v[1]*math.Log(u/(1-u))
}

func (Logistic) Fit(s *stats.Summary) (Params, bool) {
	if !(s.StdDev > 0) {
		return nil, false
	}
	return Params{s.Mean, s.StdDev * math.Sqrt(3) / math.Pi}, true
}

// LogLogistic is the log-logistic (Fisk) distribution with scale α
// and shape β.
type LogLogistic struct{ unchecked }

var logLogisticParams = []Param{positive("alpha", 1), positive("beta", 4)}

func (LogLogistic) Name() string { return "LogLogistic" }

func (LogLogistic) Params() []Param { return logLogisticParams }

func (LogLogistic) PDF(v Params, x float64) float64 {
	if x <= 0 {
		return 0
	}
	alpha, beta := v[0], v[1]
	z := math.Pow(x/alpha, beta)
	return beta / x * z / ((1 + z) * (1 + z))
}

func (LogLogistic) CDF(v Params, x float64) float64 {
	if x <= 0 {
		return 0
	}
	alpha, beta := v[0], v[1]
	return 1 / (1 + math.Pow(x/alpha, -beta))
}

func (LogLogistic) Support(Params) (float64, float64) { return 0, inf }

func (LogLogistic) Domain(v Params) (float64, float64) {
	alpha, beta := v[0], v[1]
	return 0, alpha * math.Pow(1e4, 1/beta)
}

func (LogLogistic) Mean(v Params) (float64, bool) {
	alpha, beta := v[0], v[1]
	if beta <= 1 {
		return inf, false
	}
	b := math.Pi / beta
	return alpha * b / math.Sin(b), true
}

func (LogLogistic) Variance(v Params) (float64, bool) {
	alpha, beta := v[0], v[1]
	if beta <= 2 {
		return inf, false
	}
	b := math.Pi / beta
	return alpha * alpha * (2*b/math.Sin(2*b) - b*b/(math.Sin(b)*math.Sin(b))), true
}

func (LogLogistic) Rand(v Params, r *rand.Rand) float64 {
	alpha, beta := v[0], v[1]
	u := uniformOpen(r)
	return alpha * math.Pow(u/(1-u), 1/beta)
}

// Fit matches the mean and standard deviation of the log of the
// sample, which is logistic with location log α and scale 1/β.
func (LogLogistic) Fit(s *stats.Summary) (Params, bool) {
	if !(s.Min > 0) || !(s.LogStdDev > 0) {
		return nil, false
	}
	return Params{math.Exp(s.LogMean), math.Pi / (s.LogStdDev * math.Sqrt(3))}, true
}

// HyperbolicSecant is the hyperbolic secant distribution with
// location μ and scale σ, where σ is the standard deviation.
type HyperbolicSecant struct{ unchecked }

var hyperbolicSecantParams = []Param{unbounded("mu", 0), positive("sigma", 1)}

func (HyperbolicSecant) Name() string { return "HyperbolicSecant" }

func (HyperbolicSecant) Params() []Param { return hyperbolicSecantParams }

func (HyperbolicSecant) PDF(v Params, x float64) float64 {
	mu, sigma := v[0], v[1]
	z := math.Pi / 2 * (x - mu) / sigma
	return 1 / (2 * sigma * math.Cosh(z))
}

func (HyperbolicSecant) CDF(v Params, x float64) float64 {
	mu, sigma := v[0], v[1]
	z := math.Pi / 2 * (x - mu) / sigma
	return 2 / math.Pi * math.Atan(math.Exp(z))
}

func (HyperbolicSecant) Support(Params) (float64, float64) { return -inf, inf }

func (HyperbolicSecant) Domain(v Params) (float64, float64) {
	mu, sigma := v[0], v[1]
	w := 2 / math.Pi * sigma * math.Log(4/(math.Pi*1e-4))
	return mu - w, mu + w
}

func (HyperbolicSecant) Mean(v Params) (float64, bool) { return v[0], true }

func (HyperbolicSecant) Variance(v Params) (float64, bool) { return v[1] * v[1], true }

func (HyperbolicSecant) Rand(v Params, r *rand.Rand) float64 {
	mu, sigma := v[0], v[1]
	return mu + sigma*2/math.Pi*math.Log(math.Tan(math.Pi/2*uniformOpen(r)))
}

func (HyperbolicSecant) Fit(s *stats.Summary) (Params, bool) {
	if !(s.StdDev > 0) {
		return nil, false
	}
	return Params{s.Mean, s.StdDev}, true
}
