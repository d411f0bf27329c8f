// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fit

import (
	"math"
	"testing"

	"github.com/probviz/probdist/dist"
	"github.com/probviz/probdist/stats"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/floats"
)

func TestTableDiscrete(t *testing.T) {
	s, err := stats.Summarize([]float64{0, 1, 1, 2}, 0)
	require.NoError(t, err)
	require.NotNil(t, s.Discrete)

	tab, ok := newTable(dist.Binomial{}, dist.Params{2, 0.5}, s)
	require.True(t, ok)
	assert.Equal(t, 0.0, tab.base)
	assert.InDeltaSlice(t, []float64{0.25, 0.5, 0.25}, tab.emp, 1e-12)
	assert.InDeltaSlice(t, []float64{0.25, 0.5, 0.25}, tab.model, 1e-12)
	assert.InDelta(t, 0, tab.delta(), 1e-20)

	// Poisson mass below the observed range is the base.
	s, err = stats.Summarize([]float64{3, 4, 4, 5}, 0)
	require.NoError(t, err)
	v := dist.Params{4}
	tab, ok = newTable(dist.Poisson{}, v, s)
	require.True(t, ok)
	assert.InDelta(t, dist.Poisson{}.CDF(v, 2), tab.base, 1e-12)
	_, model := tab.cumulative()
	assert.InDelta(t, dist.Poisson{}.CDF(v, 5), model[len(model)-1], 1e-12)
}

func TestTableContinuous(t *testing.T) {
	xs := []float64{0.1, 0.2, 0.25, 0.5, 0.7, 0.9, 1.3, 1.9}
	s, err := stats.Summarize(xs, 10)
	require.NoError(t, err)
	require.Nil(t, s.Discrete)

	v := dist.Params{1}
	tab, ok := newTable(dist.Exponential{}, v, s)
	require.True(t, ok)
	require.Len(t, tab.emp, 10)
	assert.InDelta(t, 1, floats.Sum(tab.emp), 1e-12)

	// Histogram bins span [0, 3).
	assert.Equal(t, 0.0, tab.base)
	assert.InDelta(t, dist.Exponential{}.CDF(v, 3), floats.Sum(tab.model), 1e-12)
	emp, model := tab.cumulative()
	assert.InDelta(t, 1, emp[len(emp)-1], 1e-12)
	assert.InDelta(t, dist.Exponential{}.CDF(v, 0.3), model[0], 1e-12)
}

func TestTableOverlap(t *testing.T) {
	v := dist.Params{0.5}
	c := &smoothCDF{f: dist.Bernoulli{}, v: v}
	for _, test := range []struct{ x, want float64 }{
		{-0.5, 0},
		{0, 0},
		{0.5, 0.25},
		{1, 0.5},
		{1.5, 0.75},
		{2, 1},
		{7, 1},
	} {
		assert.InDelta(t, test.want, c.at(test.x), 1e-12, "x=%v", test.x)
	}

	// A discrete family against non-integral data uses the binned
	// histogram.
	s, err := stats.Summarize([]float64{0.2, 0.4, 1.1, 1.6}, 4)
	require.NoError(t, err)
	tab, ok := newTable(dist.Bernoulli{}, v, s)
	require.True(t, ok)
	// Bins are [0, 0.75), [0.75, 1.5), [1.5, 2.25) and [2.25, 3).
	assert.InDeltaSlice(t, []float64{0.5, 0.25, 0.25, 0}, tab.emp, 1e-12)
	assert.InDeltaSlice(t, []float64{0.375, 0.375, 0.25, 0}, tab.model, 1e-12)
}

// countingCDF counts the calls to the CDF of Borel.
type countingCDF struct {
	dist.Borel
	calls *int
}

func (c countingCDF) CDF(v dist.Params, x float64) float64 {
	*c.calls++
	return c.Borel.CDF(v, x)
}

func TestTableOverlapRunningSum(t *testing.T) {
	v := dist.Params{0.5}
	s, err := stats.Summarize([]float64{1.5, 2.25, 3.5, 7.75}, 16)
	require.NoError(t, err)

	calls := 0
	tab, ok := newTable(countingCDF{calls: &calls}, v, s)
	require.True(t, ok)
	assert.Equal(t, 1, calls, "CDF evaluated once per table")

	// Compare with the CDF evaluated directly at each edge.
	var f dist.Borel
	direct := func(x float64) float64 {
		k := math.Floor(x)
		return f.CDF(v, k-1) + f.PMF(v, int(k))*(x-k)
	}
	prev := direct(s.Hist[0].X1)
	assert.InDelta(t, prev, tab.base, 1e-12)
	for i, b := range s.Hist {
		c := direct(b.X2)
		assert.InDelta(t, c-prev, tab.model[i], 1e-12, "bin %d", i)
		prev = c
	}
}
