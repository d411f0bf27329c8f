// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fit

import (
	"math"

	"github.com/probviz/probdist/dist"
)

// KolmogorovSmirnov returns the largest absolute difference d between
// the empirical and model cumulative probabilities empCum and
// modelCum, and the p-value min(1, 2·exp(-2d²)).
//
// Cells after the first whose empirical cumulative probability
// exceeds cutoff are ignored, which keeps tail noise out of d.
//
// The p-value is a coarse asymptotic approximation that does not
// depend on the sample size. It orders fits; it is not an exact
// Kolmogorov-Smirnov test.
func KolmogorovSmirnov(empCum, modelCum []float64, cutoff float64) (d, p float64) {
	for i, e := range empCum {
		d = math.Max(d, math.Abs(e-modelCum[i]))
		if e > cutoff {
			break
		}
	}
	return d, math.Min(1, 2*math.Exp(-2*d*d))
}

// ChiSquare returns the chi-squared statistic of the cell
// probabilities emp against the model probabilities model, its
// degrees of freedom and its p-value. Each cell contributes
// bins·(emp - model)²/model, where bins is the number of cells of the
// comparison table.
//
// Cells with zero model probability are skipped. The p-value is
// computed from the ChiSquared family of package dist, so that family
// is graded by itself when it is fitted.
func ChiSquare(emp, model []float64, bins int) (stat float64, df int, p float64) {
	cells := 0
	for i, m := range model {
		if !(m > 0) {
			continue
		}
		d := emp[i] - m
		stat += float64(bins) * d * d / m
		cells++
	}
	df = max(cells-1, 1)
	p = 1 - dist.ChiSquared{}.CDF(dist.Params{float64(df)}, stat)
	return stat, df, math.Max(0, math.Min(1, p))
}
