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

// Geometric is the distribution of the number of Bernoulli trials
// with success probability p up to and including the first success.
type Geometric struct{ unchecked }

var geometricParams = []Param{{Name: "p", Min: 0, Max: 1, MaxInclusive: true, Default: 0.3}}

func (Geometric) Name() string { return "Geometric" }

func (Geometric) Params() []Param { return geometricParams }

func (Geometric) PMF(v Params, k int) float64 {
	if k < 1 {
		return 0
	}
	p := v[0]
	return math.Pow(1-p, float64(k-1)) * p
}

func (Geometric) CDF(v Params, x float64) float64 {
	k := math.Floor(x)
	if k < 1 {
		return 0
	}
	return -math.Expm1(k * math.Log1p(-v[0]))
}

func (Geometric) Support(v Params) (int, int) {
	p := v[0]
	if p == 1 {
		return 1, 1
	}
	hi := math.Ceil(math.Log(TailMass) / math.Log1p(-p))
	return 1, int(math.Min(hi, maxSupportWidth))
}

func (Geometric) Mean(v Params) (float64, bool) { return 1 / v[0], true }

func (Geometric) Variance(v Params) (float64, bool) {
	p := v[0]
	return (1 - p) / (p * p), true
}

func (Geometric) Rand(v Params, r *rand.Rand) float64 {
	p := v[0]
	if p == 1 {
		return 1
	}
	return 1 + math.Floor(math.Log(uniformOpen(r))/math.Log1p(-p))
}

func (Geometric) Fit(s *stats.Summary) (Params, bool) {
	if s.Min < 1 {
		return nil, false
	}
	return Params{1 / s.Mean}, true
}

// NegativeBinomial is the distribution of the number of failures
// before the r'th success in Bernoulli trials with probability p.
type NegativeBinomial struct{ unchecked }

var negativeBinomialParams = []Param{
	integer("r", 1, 3),
	{Name: "p", Min: 0, Max: 1, MaxInclusive: true, Default: 0.5},
}

func (NegativeBinomial) Name() string { return "NegativeBinomial" }

func (NegativeBinomial) Params() []Param { return negativeBinomialParams }

func (NegativeBinomial) PMF(v Params, k int) float64 {
	r, p := v[0], v[1]
	if k < 0 {
		return 0
	}
	if p == 1 {
		if k == 0 {
			return 1
		}
		return 0
	}
	kf := float64(k)
	return math.Exp(mathx.Lgamma(kf+r) - mathx.Lgamma(kf+1) - mathx.Lgamma(r) +
		r*math.Log(p) + kf*math.Log1p(-p))
}

func (NegativeBinomial) CDF(v Params, x float64) float64 {
	k := math.Floor(x)
	if k < 0 {
		return 0
	}
	return mathx.BetaInc(v[1], v[0], k+1)
}

func (d NegativeBinomial) Support(v Params) (int, int) {
	return 0, tailSupport(0, func(k int) float64 { return d.CDF(v, float64(k)) })
}

func (NegativeBinomial) Mean(v Params) (float64, bool) {
	r, p := v[0], v[1]
	return r * (1 - p) / p, true
}

func (NegativeBinomial) Variance(v Params) (float64, bool) {
	r, p := v[0], v[1]
	return r * (1 - p) / (p * p), true
}

func (d NegativeBinomial) Rand(v Params, r *rand.Rand) float64 {
	return walkPMF(r.Float64(), 0, maxSupportWidth, func(k int) float64 { return d.PMF(v, k) })
}

// Fit matches the mean and variance, rounding r to an integer and
// then choosing p to preserve the mean. The sample must be
// overdispersed.
func (NegativeBinomial) Fit(s *stats.Summary) (Params, bool) {
	m, v := s.Mean, s.Variance()
	if s.Min < 0 || !(m > 0) || !(v > m) {
		return nil, false
	}
	r := math.Max(1, math.Round(m*m/(v-m)))
	return Params{r, r / (r + m)}, true
}
