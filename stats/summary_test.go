// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"math"
	"testing"

	"github.com/cockroachdb/errors"

	"github.com/probviz/probdist/internal/mathtest"
)

func TestSummarize(t *testing.T) {
	xs := []float64{4, 1, 3, 2, 5}
	s, err := Summarize(xs, 10)
	if err != nil {
		t.Fatal(err)
	}
	if s.N != 5 || s.Min != 1 || s.Max != 5 {
		t.Errorf("N, Min, Max = %d, %v, %v, want 5, 1, 5", s.N, s.Min, s.Max)
	}
	for _, c := range []struct {
		name      string
		got, want float64
	}{
		{"Mean", s.Mean, 3},
		{"StdDev", s.StdDev, math.Sqrt(2.5)},
		{"Median", s.Median, 3},
		{"Q1", s.Q1, 1.25},
		{"Q3", s.Q3, 3.75},
		{"LogMean", s.LogMean, math.Log(120) / 5},
	} {
		if !mathtest.Aeq(c.want, c.got) {
			t.Errorf("%s = %v, want %v", c.name, c.got, c.want)
		}
	}
	if xs[0] != 4 {
		t.Errorf("Summarize modified its input")
	}
}

func TestSummarizeHistogram(t *testing.T) {
	xs := []float64{0.5, 1.25, 1.5, 2.75, 9.99, 3}
	s, err := Summarize(xs, 7)
	if err != nil {
		t.Fatal(err)
	}
	if len(s.Hist) != 7 {
		t.Fatalf("len(Hist) = %d, want 7", len(s.Hist))
	}
	if s.Hist[0].X1 != 0 || s.Hist[6].X2 != 11 {
		t.Errorf("histogram spans [%v, %v), want [0, 11)", s.Hist[0].X1, s.Hist[6].X2)
	}
	n, p := 0, 0.0
	for i, b := range s.Hist {
		n += b.N
		p += b.P
		if i > 0 && b.X1 != s.Hist[i-1].X2 {
			t.Errorf("bin %d starts at %v, previous ends at %v", i, b.X1, s.Hist[i-1].X2)
		}
	}
	if n != len(xs) || !mathtest.Aeq(1, p) {
		t.Errorf("histogram holds %d values with mass %v, want %d and 1", n, p, len(xs))
	}
	if s.Discrete != nil {
		t.Errorf("Discrete = %+v for non-integer sample, want nil", s.Discrete)
	}
}

func TestSummarizeHistogramEdges(t *testing.T) {
	// Dividers fall on 0, 1, 2, 3 and 4; each value opens a bin.
	s, err := Summarize([]float64{3, 0, 2, 1}, 4)
	if err != nil {
		t.Fatal(err)
	}
	for i, b := range s.Hist {
		if b.X1 != float64(i) || b.X2 != float64(i+1) {
			t.Errorf("bin %d = [%v, %v), want [%d, %d)", i, b.X1, b.X2, i, i+1)
		}
		if b.N != 1 || b.P != 0.25 {
			t.Errorf("bin %d holds N=%d P=%v, want 1 and 0.25", i, b.N, b.P)
		}
	}
}

func TestSummarizeHistogramLarge(t *testing.T) {
	xs := []float64{1e17, 1e17 + 64}
	s, err := Summarize(xs, 3)
	if err != nil {
		t.Fatal(err)
	}
	last := s.Hist[len(s.Hist)-1]
	if !(last.X2 > xs[1]) || last.N != 1 {
		t.Errorf("last bin [%v, %v) holds %d values, want it to hold the maximum", last.X1, last.X2, last.N)
	}
}

func TestSummarizeDiscrete(t *testing.T) {
	s, err := Summarize([]float64{2, 4, 4, 5, 2, 4}, 0)
	if err != nil {
		t.Fatal(err)
	}
	if len(s.Hist) != DefaultBins {
		t.Errorf("len(Hist) = %d, want %d", len(s.Hist), DefaultBins)
	}
	h := s.Discrete
	if h == nil {
		t.Fatal("Discrete = nil for integer sample")
	}
	if h.Min != 2 || h.Max() != 5 {
		t.Errorf("Discrete covers [%d, %d], want [2, 5]", h.Min, h.Max())
	}
	wantN := []int{2, 0, 3, 1}
	for i, want := range wantN {
		if h.N[i] != want {
			t.Errorf("N[%d] = %d, want %d", i, h.N[i], want)
		}
		if !mathtest.Aeq(float64(want)/6, h.P[i]) {
			t.Errorf("P[%d] = %v, want %v", i, h.P[i], float64(want)/6)
		}
	}
}

func TestSummarizeZeroVariance(t *testing.T) {
	xs := make([]float64, 10)
	for i := range xs {
		xs[i] = 1
	}
	s, err := Summarize(xs, 0)
	if err != nil {
		t.Fatal(err)
	}
	if s.Mean != 1 || s.StdDev != 0 || s.Variance() != 0 {
		t.Errorf("Mean, StdDev = %v, %v, want 1, 0", s.Mean, s.StdDev)
	}
	if s.LogMean != 0 || s.LogStdDev != 0 {
		t.Errorf("LogMean, LogStdDev = %v, %v, want 0, 0", s.LogMean, s.LogStdDev)
	}
	if h := s.Discrete; h == nil || h.Min != 1 || len(h.P) != 1 || h.P[0] != 1 {
		t.Errorf("Discrete = %+v, want point mass at 1", h)
	}

	one, err := Summarize([]float64{7}, 3)
	if err != nil {
		t.Fatal(err)
	}
	if one.StdDev != 0 {
		t.Errorf("StdDev of one value = %v, want 0", one.StdDev)
	}
}

func TestSummarizeErrors(t *testing.T) {
	if _, err := Summarize(nil, 10); !errors.Is(err, ErrEmptySample) {
		t.Errorf("Summarize(nil) error = %v, want ErrEmptySample", err)
	}
	if _, err := Summarize([]float64{1, math.NaN()}, 10); err == nil {
		t.Errorf("Summarize with NaN succeeded")
	}
	s, err := Summarize([]float64{-1, 2}, 10)
	if err != nil {
		t.Fatal(err)
	}
	if !math.IsNaN(s.LogMean) || !math.IsNaN(s.LogStdDev) {
		t.Errorf("log-moments of non-positive sample = %v, %v, want NaN", s.LogMean, s.LogStdDev)
	}
}
