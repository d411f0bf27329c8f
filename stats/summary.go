// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"math"
	"sort"

	"github.com/cockroachdb/errors"
	mstats "github.com/montanaflynn/stats"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// DefaultBins is the number of histogram bins used when Summarize is
// given a non-positive bin count.
const DefaultBins = 99

// MaxDiscreteRange limits the width of the integer range covered by a
// DiscreteHist.
const MaxDiscreteRange = 1 << 20

// A Summary describes a sample.
type Summary struct {
	// N is the number of values in the sample.
	N int

	Min, Max float64

	// Mean and StdDev are the sample mean and the unbiased sample
	// standard deviation. StdDev is 0 for a single value.
	Mean, StdDev float64

	// Median, Q1 and Q3 are the second, first and third quartiles.
	// Q1 and Q3 interpolate linearly between sample values.
	Median, Q1, Q3 float64

	// LogMean and LogStdDev are the mean and standard deviation of
	// the logarithm of the sample. They are NaN unless Min > 0.
	LogMean, LogStdDev float64

	// Hist is a histogram of the sample over [floor(Min),
	// ceil(Max)+1) in equal-width bins.
	Hist []Bin

	// Discrete is the exact histogram of the sample. It is nil
	// unless every value is an integer.
	Discrete *DiscreteHist
}

// A Bin is one bin of a histogram covering [X1, X2).
type Bin struct {
	X1, X2 float64

	// N is the number of values in the bin and P is N divided by
	// the sample size.
	N int
	P float64
}

// A DiscreteHist counts each integer value of a sample.
type DiscreteHist struct {
	// Min is the smallest value. N[i] and P[i] are the count and
	// the relative frequency of value Min+i.
	Min int
	N   []int
	P   []float64
}

// Max returns the largest value covered by h.
func (h *DiscreteHist) Max() int {
	return h.Min + len(h.N) - 1
}

// Variance returns the square of s.StdDev.
func (s *Summary) Variance() float64 {
	return s.StdDev * s.StdDev
}

// Summarize computes the summary statistics of xs with a histogram of
// the given number of bins.
//
// It returns ErrEmptySample if xs is empty and an error if xs
// contains NaN or infinite values.
func Summarize(xs []float64, bins int) (*Summary, error) {
	if len(xs) == 0 {
		return nil, ErrEmptySample
	}
	for _, x := range xs {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return nil, errors.Newf("stats: non-finite sample value %v", x)
		}
	}
	if bins <= 0 {
		bins = DefaultBins
	}

	sorted := append([]float64(nil), xs...)
	sort.Float64s(sorted)

	s := &Summary{
		N:   len(xs),
		Min: floats.Min(xs),
		Max: floats.Max(xs),
	}
	s.Mean, s.StdDev = stat.MeanStdDev(sorted, nil)
	if s.N == 1 {
		s.StdDev = 0
	}

	median, err := mstats.Median(mstats.Float64Data(sorted))
	if err != nil {
		return nil, errors.Wrap(err, "stats: median")
	}
	s.Median = median
	s.Q1 = stat.Quantile(0.25, stat.LinInterp, sorted, nil)
	s.Q3 = stat.Quantile(0.75, stat.LinInterp, sorted, nil)

	s.LogMean, s.LogStdDev = nan, nan
	if s.Min > 0 {
		logs := make([]float64, len(sorted))
		for i, x := range sorted {
			logs[i] = math.Log(x)
		}
		s.LogMean, s.LogStdDev = stat.MeanStdDev(logs, nil)
		if s.N == 1 {
			s.LogStdDev = 0
		}
	}

	s.Hist = histogram(sorted, bins)
	s.Discrete = discreteHistogram(sorted)
	return s, nil
}

// histogram bins the sorted values xs into bins equal-width bins
// spanning [floor(min), ceil(max)+1). A value on a divider falls in
// the bin above it.
func histogram(xs []float64, bins int) []Bin {
	lo := math.Floor(xs[0])
	hi := math.Ceil(xs[len(xs)-1]) + 1
	if !(hi > xs[len(xs)-1]) {
		// Beyond 2^53 adding 1 is lost to rounding.
		hi = math.Nextafter(xs[len(xs)-1], math.Inf(1))
	}
	dividers := floats.Span(make([]float64, bins+1), lo, hi)
	dividers[bins] = hi
	counts := stat.Histogram(nil, dividers, xs, nil)

	hist := make([]Bin, bins)
	n := float64(len(xs))
	for i, c := range counts {
		hist[i] = Bin{X1: dividers[i], X2: dividers[i+1], N: int(c), P: c / n}
	}
	return hist
}

// discreteHistogram returns the exact histogram of the sorted values
// xs, or nil if some value is not an integer or the values span more
// than MaxDiscreteRange integers.
func discreteHistogram(xs []float64) *DiscreteHist {
	for _, x := range xs {
		if x != math.Trunc(x) {
			return nil
		}
	}
	lo, hi := xs[0], xs[len(xs)-1]
	if hi-lo >= MaxDiscreteRange || math.Abs(lo) > 1<<53 || math.Abs(hi) > 1<<53 {
		return nil
	}
	h := &DiscreteHist{Min: int(lo), N: make([]int, int(hi-lo)+1)}
	for _, x := range xs {
		h.N[int(x)-h.Min]++
	}
	h.P = make([]float64, len(h.N))
	n := float64(len(xs))
	for i, c := range h.N {
		h.P[i] = float64(c) / n
	}
	return h
}
