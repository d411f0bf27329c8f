// Copyright 2020 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dist

import (
	"math"
	"math/rand/v2"

	"github.com/probviz/probdist/stats"
)

// Zipf is the Zipf distribution on 1, ..., N with exponent s.
type Zipf struct{ unchecked }

var zipfParams = []Param{positive("s", 1), integer("N", 1, 10)}

func (Zipf) Name() string { return "Zipf" }

func (Zipf) Params() []Param { return zipfParams }

func (Zipf) PMF(v Params, k int) float64 {
	s, n := v[0], int(v[1])
	if k < 1 || k > n {
		return 0
	}
	return math.Pow(float64(k), -s) / harmonic(n, s)
}

func (Zipf) CDF(v Params, x float64) float64 {
	s, n := v[0], int(v[1])
	k := math.Floor(x)
	if k < 1 {
		return 0
	} else if k >= float64(n) {
		return 1
	}
	return harmonic(int(k), s) / harmonic(n, s)
}

func (Zipf) Support(v Params) (int, int) { return 1, int(v[1]) }

func (Zipf) Mean(v Params) (float64, bool) {
	s, n := v[0], int(v[1])
	return harmonic(n, s-1) / harmonic(n, s), true
}

func (Zipf) Variance(v Params) (float64, bool) {
	s, n := v[0], int(v[1])
	h := harmonic(n, s)
	m := harmonic(n, s-1) / h
	return harmonic(n, s-2)/h - m*m, true
}

func (d Zipf) Rand(v Params, r *rand.Rand) float64 {
	return walkPMF(r.Float64(), 1, int(v[1]), func(k int) float64 { return d.PMF(v, k) })
}

// Fit takes N from the sample maximum and solves the mean for s by
// bisection.
func (Zipf) Fit(s *stats.Summary) (Params, bool) {
	n := math.Ceil(s.Max)
	m := s.Mean
	if s.Min < 1 || !(m > 1) || !(m < (n+1)/2) {
		return nil, false
	}
	exp, ok := solve(func(e float64) float64 {
		return harmonic(int(n), e-1)/harmonic(int(n), e) - m
	}, 1e-9, 100)
	if !ok {
		return nil, false
	}
	return Params{exp, n}, true
}

// harmonic returns the generalized harmonic number H(n, s), the sum
// of k^-s for k from 1 to n.
//
// For large n, the terms beyond the first few are approximated by the
// Euler-Maclaurin formula.
func harmonic(n int, s float64) float64 {
	const direct = 64
	if n <= direct {
		sum := 0.0
		for k := n; k >= 1; k-- {
			sum += math.Pow(float64(k), -s)
		}
		return sum
	}

	const m = direct / 2
	sum := 0.0
	for k := m - 1; k >= 1; k-- {
		sum += math.Pow(float64(k), -s)
	}
	// Sum of k^-s for k in [m, n].
	a, b := float64(m), float64(n)
	var integral float64
	if s == 1 {
		integral = math.Log(b / a)
	} else {
		integral = (math.Pow(b, 1-s) - math.Pow(a, 1-s)) / (1 - s)
	}
	tail := integral + (math.Pow(a, -s)+math.Pow(b, -s))/2 +
		s/12*(math.Pow(a, -s-1)-math.Pow(b, -s-1)) +
		s*(s+1)*(s+2)/720*(math.Pow(b, -s-3)-math.Pow(a, -s-3))
	return sum + tail
}
