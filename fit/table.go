// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fit

import (
	"math"

	"github.com/probviz/probdist/dist"
	"github.com/probviz/probdist/stats"
	"gonum.org/v1/gonum/floats"
)

// A table pairs the empirical and model probabilities of the cells of
// a sample histogram.
type table struct {
	// base is the model probability below the first cell.
	base float64

	emp, model []float64
}

// newTable compares the distribution f(v) with the sample summarized
// by s. Continuous families use the binned histogram. Discrete
// families use the exact histogram of integral samples and otherwise
// spread each integer's mass uniformly over [k, k+1) and use the
// binned histogram.
func newTable(f dist.Family, v dist.Params, s *stats.Summary) (table, bool) {
	switch f := f.(type) {
	case dist.Discrete:
		if s.Discrete != nil {
			return discreteCells(f, v, s.Discrete), true
		}
		c := &smoothCDF{f: f, v: v}
		return binned(s.Hist, c.at), true
	case dist.Continuous:
		return binned(s.Hist, func(x float64) float64 { return f.CDF(v, x) }), true
	}
	return table{}, false
}

// binned compares the histogram bins with a model cumulative
// distribution function.
func binned(bins []stats.Bin, cdf func(float64) float64) table {
	t := table{emp: make([]float64, len(bins)), model: make([]float64, len(bins))}
	if len(bins) == 0 {
		return t
	}
	t.base = cdf(bins[0].X1)
	prev := t.base
	for i, b := range bins {
		c := cdf(b.X2)
		t.emp[i], t.model[i] = b.P, c-prev
		prev = c
	}
	return t
}

func discreteCells(f dist.Discrete, v dist.Params, h *stats.DiscreteHist) table {
	t := table{
		base:  f.CDF(v, float64(h.Min-1)),
		emp:   append([]float64(nil), h.P...),
		model: make([]float64, len(h.P)),
	}
	for i := range t.model {
		t.model[i] = f.PMF(v, h.Min+i)
	}
	return t
}

// smoothCDF is the CDF of f(v) with the mass of each integer k spread
// uniformly over [k, k+1). It keeps a running sum of the PMF, so at
// must be called with non-decreasing x.
type smoothCDF struct {
	f dist.Discrete
	v dist.Params

	// below is the CDF at k-1. ok is false until the first call.
	k     float64
	below float64
	ok    bool
}

// maxSmoothStep is the largest number of PMF terms at adds to the
// running sum before it falls back to the family's CDF.
const maxSmoothStep = 1024

func (c *smoothCDF) at(x float64) float64 {
	k := math.Floor(x)
	if !c.ok || k < c.k || k-c.k > maxSmoothStep {
		c.k, c.below, c.ok = k, c.f.CDF(c.v, k-1), true
	}
	for ; c.k < k; c.k++ {
		c.below += c.f.PMF(c.v, int(c.k))
	}
	return math.Min(1, c.below+c.f.PMF(c.v, int(k))*(x-k))
}

// delta returns the sum of squared differences between the empirical
// and model probabilities.
func (t table) delta() float64 {
	if floats.HasNaN(t.model) {
		return nan
	}
	d := floats.Distance(t.emp, t.model, 2)
	return d * d
}

// cumulative returns the empirical and model cumulative probabilities
// at the upper edge of each cell.
func (t table) cumulative() (emp, model []float64) {
	emp = floats.CumSum(make([]float64, len(t.emp)), t.emp)
	model = floats.CumSum(make([]float64, len(t.model)), t.model)
	floats.AddConst(t.base, model)
	return emp, model
}
