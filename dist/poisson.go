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

// Poisson is the distribution of the number of events in an interval
// when events occur independently at rate λ.
type Poisson struct{ unchecked }

var poissonParams = []Param{positive("lambda", 4)}

func (Poisson) Name() string { return "Poisson" }

func (Poisson) Params() []Param { return poissonParams }

func (Poisson) PMF(v Params, k int) float64 {
	if k < 0 {
		return 0
	}
	lambda := v[0]
	return math.Exp(float64(k)*math.Log(lambda) - lambda - mathx.Lgamma(float64(k+1)))
}

func (Poisson) CDF(v Params, x float64) float64 {
	k := math.Floor(x)
	if k < 0 {
		return 0
	}
	return mathx.GammaIncComp(k+1, v[0])
}

func (d Poisson) Support(v Params) (int, int) {
	return 0, tailSupport(0, func(k int) float64 { return d.CDF(v, float64(k)) })
}

func (Poisson) Mean(v Params) (float64, bool) { return v[0], true }

func (Poisson) Variance(v Params) (float64, bool) { return v[0], true }

func (d Poisson) Rand(v Params, r *rand.Rand) float64 {
	return walkPMF(r.Float64(), 0, maxSupportWidth, func(k int) float64 { return d.PMF(v, k) })
}

func (Poisson) Fit(s *stats.Summary) (Params, bool) {
	if s.Min < 0 || !(s.Mean > 0) {
		return nil, false
	}
	return Params{s.Mean}, true
}

// Borel is the distribution of the total progeny of a branching
// process with Poisson(μ) offspring, starting from one individual.
type Borel struct{ unchecked }

var borelParams = []Param{{Name: "mu", Min: 0, MinInclusive: true, Max: 1, Default: 0.5}}

func (Borel) Name() string { return "Borel" }

func (Borel) Params() []Param { return borelParams }

func (Borel) PMF(v Params, k int) float64 {
	mu := v[0]
	if k < 1 {
		return 0
	}
	if mu == 0 {
		if k == 1 {
			return 1
		}
		return 0
	}
	kf := float64(k)
	return math.Exp(-mu*kf + (kf-1)*math.Log(mu*kf) - mathx.Lgamma(kf+1))
}

func (d Borel) CDF(v Params, x float64) float64 {
	return cdfBySum(x, 1, func(k int) float64 { return d.PMF(v, k) })
}

func (d Borel) Support(v Params) (int, int) {
	return 1, tailSupport(1, func(k int) float64 { return d.CDF(v, float64(k)) })
}

func (Borel) Mean(v Params) (float64, bool) { return 1 / (1 - v[0]), true }

func (Borel) Variance(v Params) (float64, bool) {
	mu := v[0]
	return mu / ((1 - mu) * (1 - mu) * (1 - mu)), true
}

func (d Borel) Rand(v Params, r *rand.Rand) float64 {
	return walkPMF(r.Float64(), 1, 1+maxSupportWidth, func(k int) float64 { return d.PMF(v, k) })
}

// Fit solves the mean 1/(1-μ) for μ.
func (Borel) Fit(s *stats.Summary) (Params, bool) {
	if s.Min < 1 {
		return nil, false
	}
	return Params{1 - 1/s.Mean}, true
}
