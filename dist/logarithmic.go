// Copyright 2020 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dist

import (
	"math"
	"math/rand/v2"

	"github.com/probviz/probdist/mathx"
	"github.com/probviz/probdist/stats"
)

// Logarithmic is the logarithmic series distribution on k >= 1 with
// parameter p.
type Logarithmic struct{ unchecked }

var logarithmicParams = []Param{{Name: "p", Min: 0, Max: 1, Default: 0.6}}

func (Logarithmic) Name() string { return "Logarithmic" }

func (Logarithmic) Params() []Param { return logarithmicParams }

func (Logarithmic) PMF(v Params, k int) float64 {
	if k < 1 {
		return 0
	}
	p := v[0]
	kf := float64(k)
	return -math.Exp(kf*math.Log(p)-math.Log(kf)) / math.Log1p(-p)
}

func (d Logarithmic) CDF(v Params, x float64) float64 {
	return cdfBySum(x, 1, func(k int) float64 { return d.PMF(v, k) })
}

func (d Logarithmic) Support(v Params) (int, int) {
	return 1, tailSupport(1, func(k int) float64 { return d.CDF(v, float64(k)) })
}

func (Logarithmic) Mean(v Params) (float64, bool) {
	return logarithmicMean(v[0]), true
}

func logarithmicMean(p float64) float64 {
	return -p / ((1 - p) * math.Log1p(-p))
}

func (Logarithmic) Variance(v Params) (float64, bool) {
	p := v[0]
	l := math.Log1p(-p)
	return -p * (p + l) / ((1 - p) * (1 - p) * l * l), true
}

func (d Logarithmic) Rand(v Params, r *rand.Rand) float64 {
	return walkPMF(r.Float64(), 1, 1+maxSupportWidth, func(k int) float64 { return d.PMF(v, k) })
}

// Fit solves the mean for p by bisection.
func (Logarithmic) Fit(s *stats.Summary) (Params, bool) {
	m := s.Mean
	if s.Min < 1 || !(m > 1) {
		return nil, false
	}
	p, ok := solve(func(p float64) float64 { return logarithmicMean(p) - m }, 1e-12, 1-1e-12)
	if !ok {
		return nil, false
	}
	return Params{p}, true
}

// YuleSimon is the Yule-Simon distribution on k >= 1 with shape ρ.
type YuleSimon struct{ unchecked }

var yuleSimonParams = []Param{positive("rho", 3)}

func (YuleSimon) Name() string { return "YuleSimon" }

func (YuleSimon) Params() []Param { return yuleSimonParams }

func (YuleSimon) PMF(v Params, k int) float64 {
	if k < 1 {
		return 0
	}
	rho := v[0]
	return rho * math.Exp(mathx.Lbeta(float64(k), rho+1))
}

func (YuleSimon) CDF(v Params, x float64) float64 {
	k := math.Floor(x)
	if k < 1 {
		return 0
	}
	return 1 - k*math.Exp(mathx.Lbeta(k, v[0]+1))
}

func (d YuleSimon) Support(v Params) (int, int) {
	return 1, tailSupport(1, func(k int) float64 { return d.CDF(v, float64(k)) })
}

func (YuleSimon) Mean(v Params) (float64, bool) {
	rho := v[0]
	if rho <= 1 {
		return inf, false
	}
	return rho / (rho - 1), true
}

func (YuleSimon) Variance(v Params) (float64, bool) {
	rho := v[0]
	if rho <= 2 {
		return inf, false
	}
	return rho * rho / ((rho - 1) * (rho - 1) * (rho - 2)), true
}

func (d YuleSimon) Rand(v Params, r *rand.Rand) float64 {
	return walkPMF(r.Float64(), 1, 1+maxSupportWidth, func(k int) float64 { return d.PMF(v, k) })
}

// Fit solves the mean ρ/(ρ-1) for ρ.
func (YuleSimon) Fit(s *stats.Summary) (Params, bool) {
	m := s.Mean
	if s.Min < 1 || !(m > 1) {
		return nil, false
	}
	return Params{m / (m - 1)}, true
}
