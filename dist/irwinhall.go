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

// IrwinHall is the distribution of the sum of n independent standard
// uniform variables.
//
// n is limited to 30, beyond which the alternating sums that define
// the PDF and CDF lose their precision.
type IrwinHall struct{ unchecked }

var irwinHallParams = []Param{
	{Name: "n", Discrete: true, Min: 1, MinInclusive: true, Max: 30, MaxInclusive: true, Default: 3},
}

func (IrwinHall) Name() string { return "IrwinHall" }

func (IrwinHall) Params() []Param { return irwinHallParams }

// irwinHallSum returns the sum over k from 0 to floor(x) of
// (-1)^k C(n, k) (x-k)^p.
func irwinHallSum(n int, x, p float64) float64 {
	sum := 0.0
	for k := 0; k <= n && float64(k) <= x; k++ {
		term := mathx.Choose(n, k) * math.Pow(x-float64(k), p)
		if k%2 == 1 {
			term = -term
		}
		sum += term
	}
	return sum
}

func (IrwinHall) PDF(v Params, x float64) float64 {
	n := int(v[0])
	if x < 0 || x > v[0] {
		return 0
	}
	return math.Max(0, irwinHallSum(n, x, v[0]-1)/mathx.Gamma(v[0]))
}

func (IrwinHall) CDF(v Params, x float64) float64 {
	n := int(v[0])
	if x <= 0 {
		return 0
	} else if x >= v[0] {
		return 1
	}
	return math.Max(0, math.Min(1, irwinHallSum(n, x, v[0])/mathx.Gamma(v[0]+1)))
}

func (IrwinHall) Support(v Params) (float64, float64) { return 0, v[0] }

func (IrwinHall) Domain(v Params) (float64, float64) { return 0, v[0] }

func (IrwinHall) Mean(v Params) (float64, bool) { return v[0] / 2, true }

func (IrwinHall) Variance(v Params) (float64, bool) { return v[0] / 12, true }

func (d IrwinHall) Rand(v Params, r *rand.Rand) float64 {
	return InvertCDF(d, v, uniformOpen(r))
}

// Fit rounds twice the mean to n, which must cover the sample.
func (IrwinHall) Fit(s *stats.Summary) (Params, bool) {
	n := math.Round(2 * s.Mean)
	if s.Min < 0 || n < 1 || n > 30 || s.Max > n {
		return nil, false
	}
	return Params{n}, true
}
