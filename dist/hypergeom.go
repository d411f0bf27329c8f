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

// Hypergeometric is the distribution of the number of successes in n
// draws without replacement from a population of N items of which K
// are successes.
type Hypergeometric struct{}

var hypergeometricParams = []Param{integer("N", 1, 50), integer("K", 0, 10), integer("n", 0, 10)}

func (Hypergeometric) Name() string { return "Hypergeometric" }

func (Hypergeometric) Params() []Param { return hypergeometricParams }

// Check requires K <= N and n <= N.
func (Hypergeometric) Check(v Params) bool {
	return v[1] <= v[0] && v[2] <= v[0]
}

func (Hypergeometric) PMF(v Params, k int) float64 {
	N, K, n := int(v[0]), int(v[1]), int(v[2])
	if k < 0 || k < n+K-N || k > n || k > K {
		return 0
	}
	return math.Exp(mathx.Lchoose(K, k) + mathx.Lchoose(N-K, n-k) - mathx.Lchoose(N, n))
}

func (d Hypergeometric) CDF(v Params, x float64) float64 {
	lo, hi := d.Support(v)
	if x >= float64(hi) {
		return 1
	}
	return cdfBySum(x, lo, func(k int) float64 { return d.PMF(v, k) })
}

func (Hypergeometric) Support(v Params) (int, int) {
	N, K, n := int(v[0]), int(v[1]), int(v[2])
	return max(0, n+K-N), min(n, K)
}

func (Hypergeometric) Mean(v Params) (float64, bool) {
	N, K, n := v[0], v[1], v[2]
	return n * K / N, true
}

func (Hypergeometric) Variance(v Params) (float64, bool) {
	N, K, n := v[0], v[1], v[2]
	if N == 1 {
		return 0, true
	}
	return n * K * (N - K) * (N - n) / (N * N * (N - 1)), true
}

func (d Hypergeometric) Rand(v Params, r *rand.Rand) float64 {
	lo, hi := d.Support(v)
	return walkPMF(r.Float64(), lo, hi, func(k int) float64 { return d.PMF(v, k) })
}

// DiscreteUniform assigns equal probability to each integer in
// [a, b].
type DiscreteUniform struct{}

var discreteUniformParams = []Param{
	{Name: "a", Discrete: true, Min: -inf, Max: inf, Default: 1},
	{Name: "b", Discrete: true, Min: -inf, Max: inf, Default: 6},
}

func (DiscreteUniform) Name() string { return "DiscreteUniform" }

func (DiscreteUniform) Params() []Param { return discreteUniformParams }

// Check requires a <= b.
func (DiscreteUniform) Check(v Params) bool { return v[0] <= v[1] }

func (DiscreteUniform) PMF(v Params, k int) float64 {
	a, b := v[0], v[1]
	if float64(k) < a || float64(k) > b {
		return 0
	}
	return 1 / (b - a + 1)
}

func (DiscreteUniform) CDF(v Params, x float64) float64 {
	a, b := v[0], v[1]
	k := math.Floor(x)
	if k < a {
		return 0
	} else if k >= b {
		return 1
	}
	return (k - a + 1) / (b - a + 1)
}

func (DiscreteUniform) Support(v Params) (int, int) { return int(v[0]), int(v[1]) }

func (DiscreteUniform) Mean(v Params) (float64, bool) { return (v[0] + v[1]) / 2, true }

func (DiscreteUniform) Variance(v Params) (float64, bool) {
	w := v[1] - v[0] + 1
	return (w*w - 1) / 12, true
}

func (DiscreteUniform) Rand(v Params, r *rand.Rand) float64 {
	a, b := v[0], v[1]
	return a + math.Floor(r.Float64()*(b-a+1))
}

func (DiscreteUniform) Fit(s *stats.Summary) (Params, bool) {
	return Params{math.Floor(s.Min), math.Floor(s.Max)}, true
}
