// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dist

import (
	"math"
	"math/rand/v2"

	"github.com/probviz/probdist/stats"
)

// Uniform is the continuous uniform distribution on [a, b].
//
// If a == b, it is a point mass at a and its PDF is +Inf at a.
type Uniform struct{}

var uniformParams = []Param{unbounded("a", 0), unbounded("b", 1)}

func (Uniform) Name() string { return "Uniform" }

func (Uniform) Params() []Param { return uniformParams }

// Check requires a <= b.
func (Uniform) Check(v Params) bool { return v[0] <= v[1] }

func (Uniform) PDF(v Params, x float64) float64 {
	a, b := v[0], v[1]
	if x < a || x > b {
		return 0
	}
	if a == b {
		return inf
	}
	return 1 / (b - a)
}

func (Uniform) CDF(v Params, x float64) float64 {
	a, b := v[0], v[1]
	if x < a {
		return 0
	} else if x >= b {
		return 1
	}
	return (x - a) / (b - a)
}

func (Uniform) Support(v Params) (float64, float64) { return v[0], v[1] }

func (Uniform) Domain(v Params) (float64, float64) {
	a, b := v[0], v[1]
	if a == b {
		return a - 1, b + 1
	}
	return a - 0.1*(b-a), b + 0.1*(b-a)
}

func (Uniform) Mean(v Params) (float64, bool) { return (v[0] + v[1]) / 2, true }

func (Uniform) Variance(v Params) (float64, bool) {
	w := v[1] - v[0]
	return w * w / 12, true
}

func (Uniform) Rand(v Params, r *rand.Rand) float64 {
	a, b := v[0], v[1]
	return a + r.Float64()*(b-a)
}

func (Uniform) Fit(s *stats.Summary) (Params, bool) {
	return Params{s.Min, s.Max}, true
}

// Arcsine is the arcsine distribution on [a, b].
type Arcsine struct{}

var arcsineParams = []Param{unbounded("a", 0), unbounded("b", 1)}

func (Arcsine) Name() string { return "Arcsine" }

func (Arcsine) Params() []Param { return arcsineParams }

// Check requires a < b.
func (Arcsine) Check(v Params) bool { return v[0] < v[1] }

func (Arcsine) PDF(v Params, x float64) float64 {
	a, b := v[0], v[1]
	if x < a || x > b {
		return 0
	}
	return 1 / (math.Pi * math.Sqrt((x-a)*(b-x)))
}

func (Arcsine) CDF(v Params, x float64) float64 {
	a, b := v[0], v[1]
	if x <= a {
		return 0
	} else if x >= b {
		return 1
	}
	return 2 / math.Pi * math.Asin(math.Sqrt((x-a)/(b-a)))
}

func (Arcsine) Support(v Params) (float64, float64) { return v[0], v[1] }

func (Arcsine) Domain(v Params) (float64, float64) { return v[0], v[1] }

func (Arcsine) Mean(v Params) (float64, bool) { return (v[0] + v[1]) / 2, true }

func (Arcsine) Variance(v Params) (float64, bool) {
	w := v[1] - v[0]
	return w * w / 8, true
}

func (Arcsine) Rand(v Params, r *rand.Rand) float64 {
	a, b := v[0], v[1]
	s := math.Sin(math.Pi / 2 * r.Float64())
	return a + (b-a)*s*s
}

func (Arcsine) Fit(s *stats.Summary) (Params, bool) {
	if !(s.Min < s.Max) {
		return nil, false
	}
	return Params{s.Min, s.Max}, true
}

// Triangular is the triangular distribution on [a, b] with mode c.
type Triangular struct{}

var triangularParams = []Param{unbounded("a", 0), unbounded("b", 1), unbounded("c", 0.5)}

func (Triangular) Name() string { return "Triangular" }

func (Triangular) Params() []Param { return triangularParams }

// Check requires a < b and a <= c <= b.
func (Triangular) Check(v Params) bool {
	a, b, c := v[0], v[1], v[2]
	return a < b && a <= c && c <= b
}

func (Triangular) PDF(v Params, x float64) float64 {
	a, b, c := v[0], v[1], v[2]
	switch {
	case x < a || x > b:
		return 0
	case x < c:
		return 2 * (x - a) / ((b - a) * (c - a))
	case x == c:
		return 2 / (b - a)
	}
	return 2 * (b - x) / ((b - a) * (b - c))
}

func (Triangular) CDF(v Params, x float64) float64 {
	a, b, c := v[0], v[1], v[2]
	switch {
	case x <= a:
		return 0
	case x >= b:
		return 1
	case x <= c:
		return (x - a) * (x - a) / ((b - a) * (c - a))
	}
	return 1 - (b-x)*(b-x)/((b-a)*(b-c))
}

func (Triangular) Support(v Params) (float64, float64) { return v[0], v[1] }

func (Triangular) Domain(v Params) (float64, float64) { return v[0], v[1] }

func (Triangular) Mean(v Params) (float64, bool) { return (v[0] + v[1] + v[2]) / 3, true }

func (Triangular) Variance(v Params) (float64, bool) {
	a, b, c := v[0], v[1], v[2]
	return (a*a + b*b + c*c - a*b - a*c - b*c) / 18, true
}

func (Triangular) Rand(v Params, r *rand.Rand) float64 {
	a, b, c := v[0], v[1], v[2]
	u := r.Float64()
	if u < (c-a)/(b-a) {
		return a + math.Sqrt(u*(b-a)*(c-a))
	}
	return b - math.Sqrt((1-u)*(b-a)*(b-c))
}

// Fit takes a and b from the sample range and solves the mean for c.
func (Triangular) Fit(s *stats.Summary) (Params, bool) {
	a, b := s.Min, s.Max
	if !(a < b) {
		return nil, false
	}
	c := math.Max(a, math.Min(b, 3*s.Mean-a-b))
	return Params{a, b, c}, true
}
