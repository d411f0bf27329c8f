// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fit

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKolmogorovSmirnov(t *testing.T) {
	tests := []struct {
		name             string
		empCum, modelCum []float64
		d, p             float64
	}{
		{"exact", []float64{0.25, 0.75, 1}, []float64{0.25, 0.75, 1}, 0, 1},
		{"small", []float64{0.2, 0.7, 1}, []float64{0.1, 0.5, 0.9}, 0.2, 1},
		{"disjoint", []float64{1}, []float64{0}, 1, 2 * math.Exp(-2)},
		// The last cell is beyond the cutoff.
		{"cutoff", []float64{0.5, 0.99995, 1}, []float64{0.5, 0.5, 0}, 0.49995, 1},
	}
	for _, test := range tests {
		d, p := KolmogorovSmirnov(test.empCum, test.modelCum, 0.9999)
		assert.InDelta(t, test.d, d, 1e-12, test.name)
		assert.InDelta(t, test.p, p, 1e-12, test.name)
	}

	d, p := KolmogorovSmirnov([]float64{0.5, 1}, []float64{math.NaN(), 1}, 0.9999)
	assert.True(t, math.IsNaN(d) && math.IsNaN(p), "NaN model: d=%v p=%v", d, p)
}

func TestChiSquare(t *testing.T) {
	stat, df, p := ChiSquare([]float64{0.5, 0.5}, []float64{0.4, 0.6}, 100)
	assert.InDelta(t, 100*(0.01/0.4+0.01/0.6), stat, 1e-9)
	assert.Equal(t, 1, df)
	assert.InDelta(t, 0.04122683333716371, p, 1e-7)

	// With two degrees of freedom, the survival function is
	// exp(-x/2).
	stat, df, p = ChiSquare([]float64{0.3, 0.2, 0.5}, []float64{0.25, 0.25, 0.5}, 100)
	assert.InDelta(t, 2, stat, 1e-9)
	assert.Equal(t, 2, df)
	assert.InDelta(t, math.Exp(-1), p, 1e-7)

	// Cells without model probability are skipped.
	stat, df, p = ChiSquare([]float64{0.1, 0.45, 0.45}, []float64{0, 0.5, 0.5}, 10)
	assert.InDelta(t, 0.1, stat, 1e-9)
	assert.Equal(t, 1, df)
	assert.Greater(t, p, 0.7)

	// The statistic scales with the number of cells, not with the
	// sample size.
	stat, df, _ = ChiSquare([]float64{0.25, 0.25, 0.25, 0.25}, []float64{0.4, 0.2, 0.2, 0.2}, 4)
	assert.InDelta(t, 4*(0.0225/0.4+3*0.0025/0.2), stat, 1e-12)
	assert.InDelta(t, 0.375, stat, 1e-12)
	assert.Equal(t, 3, df)

	// A perfect fit.
	stat, df, p = ChiSquare([]float64{0.5, 0.5}, []float64{0.5, 0.5}, 1000)
	assert.Zero(t, stat)
	assert.Equal(t, 1, df)
	assert.Equal(t, 1.0, p)
}
