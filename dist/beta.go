// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dist

import (
	"math"
	"math/rand/v2"

	"github.com/probviz/probdist/mathx"
	"github.com/probviz/probdist/stats"
)

// Beta is the beta distribution on [0, 1] with shapes α and β.
type Beta struct{ unchecked }

var betaParams = []Param{positive("alpha", 2), positive("beta", 3)}

func (Beta) Name() string { return "Beta" }

func (Beta) Params() []Param { return betaParams }

func (Beta) PDF(v Params, x float64) float64 {
	a, b := v[0], v[1]
	switch {
	case x < 0 || x > 1:
		return 0
	case x == 0:
		return betaEdge(a, b)
	case x == 1:
		return betaEdge(b, a)
	}
	return math.Exp((a-1)*math.Log(x) + (b-1)*math.Log1p(-x) - mathx.Lbeta(a, b))
}

// betaEdge returns the beta density at 0 for shapes a and b.
func betaEdge(a, b float64) float64 {
	if a < 1 {
		return inf
	} else if a == 1 {
		return b
	}
	return 0
}

func (Beta) CDF(v Params, x float64) float64 {
	if x <= 0 {
		return 0
	} else if x >= 1 {
		return 1
	}
	return mathx.BetaInc(x, v[0], v[1])
}

func (Beta) Support(Params) (float64, float64) { return 0, 1 }

func (Beta) Domain(Params) (float64, float64) { return 0, 1 }

func (Beta) Mean(v Params) (float64, bool) { return v[0] / (v[0] + v[1]), true }

func (Beta) Variance(v Params) (float64, bool) {
	a, b := v[0], v[1]
	return a * b / ((a + b) * (a + b) * (a + b + 1)), true
}

func (Beta) Rand(v Params, r *rand.Rand) float64 {
	x := gammaVariate(r, v[0])
	y := gammaVariate(r, v[1])
	return x / (x + y)
}

// Fit matches the mean and variance.
func (Beta) Fit(s *stats.Summary) (Params, bool) {
	m, variance := s.Mean, s.Variance()
	if s.Min < 0 || s.Max > 1 || !(m > 0 && m < 1) || !(variance > 0) {
		return nil, false
	}
	c := m*(1-m)/variance - 1
	if !(c > 0) {
		return nil, false
	}
	return Params{m * c, (1 - m) * c}, true
}

// Kumaraswamy is the Kumaraswamy distribution on [0, 1] with shapes
// a and b.
type Kumaraswamy struct{ unchecked }

var kumaraswamyParams = []Param{positive("a", 2), positive("b", 5)}

func (Kumaraswamy) Name() string { return "Kumaraswamy" }

func (Kumaraswamy) Params() []Param { return kumaraswamyParams }

func (Kumaraswamy) PDF(v Params, x float64) float64 {
	a, b := v[0], v[1]
	switch {
	case x < 0 || x > 1:
		return 0
	case x == 0:
		if a < 1 {
			return inf
		} else if a == 1 {
			return b
		}
		return 0
	}
	xa := math.Pow(x, a)
	return a * b * math.Pow(x, a-1) * math.Pow(1-xa, b-1)
}

func (Kumaraswamy) CDF(v Params, x float64) float64 {
	if x <= 0 {
		return 0
	} else if x >= 1 {
		return 1
	}
	a, b := v[0], v[1]
	return -math.Expm1(b * math.Log1p(-math.Pow(x, a)))
}

func (Kumaraswamy) Support(Params) (float64, float64) { return 0, 1 }

func (Kumaraswamy) Domain(Params) (float64, float64) { return 0, 1 }

// kumaraswamyMoment returns E[Xⁿ].
func kumaraswamyMoment(a, b, n float64) float64 {
	return b * mathx.Beta(1+n/a, b)
}

func (Kumaraswamy) Mean(v Params) (float64, bool) {
	return kumaraswamyMoment(v[0], v[1], 1), true
}

func (Kumaraswamy) Variance(v Params) (float64, bool) {
	a, b := v[0], v[1]
	m1 := kumaraswamyMoment(a, b, 1)
	return kumaraswamyMoment(a, b, 2) - m1*m1, true
}

func (Kumaraswamy) Rand(v Params, r *rand.Rand) float64 {
	a, b := v[0], v[1]
	return math.Pow(-math.Expm1(math.Log(uniformOpen(r))/b), 1/a)
}
