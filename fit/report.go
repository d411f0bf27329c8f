// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fit

import (
	"cmp"
	"slices"

	"github.com/probviz/probdist/dist"
	"github.com/probviz/probdist/stats"
)

// An Outcome classifies the result of fitting one family.
type Outcome int

const (
	// Fitted means the family produced parameters that describe
	// the sample.
	Fitted Outcome = iota

	// Rejected means the family produced parameters, but the
	// fitted distribution's delta was NaN or at least MaxDelta.
	Rejected

	// NoFit means the family's fitter found no parameters,
	// returned invalid parameters, or panicked.
	NoFit

	// NotFittable means the family has no fitter.
	NotFittable
)

var outcomeNames = [...]string{
	Fitted:      "fitted",
	Rejected:    "rejected",
	NoFit:       "no fit",
	NotFittable: "not fittable",
}

func (o Outcome) String() string {
	if o < 0 || int(o) >= len(outcomeNames) {
		return "Outcome(?)"
	}
	return outcomeNames[o]
}

// MarshalText encodes o as its name.
func (o Outcome) MarshalText() ([]byte, error) {
	return []byte(o.String()), nil
}

// A Result is the outcome of fitting one family.
type Result struct {
	Family  dist.Family
	Outcome Outcome

	// Params are the fitted parameters. They are nil unless the
	// fitter produced valid parameters.
	Params dist.Params

	// Delta is the sum of squared differences between the
	// empirical and fitted cell probabilities.
	Delta float64

	// PKS and PChiSqr are the p-values of the Kolmogorov-Smirnov
	// and chi-squared tests. They are NaN unless Outcome is
	// Fitted.
	PKS, PChiSqr float64

	// Rank is the 1-based position of a Fitted result in order
	// of increasing Delta, or 0.
	Rank int
}

// Name returns the name of r's family.
func (r Result) Name() string { return r.Family.Name() }

// Named returns r's parameters by name.
func (r Result) Named() map[string]float64 {
	if r.Params == nil {
		return nil
	}
	return dist.Named(r.Family, r.Params)
}

// A Report collects the results of fitting a set of families to one
// sample.
type Report struct {
	Summary *stats.Summary

	// Fitted is ordered by increasing Delta. The other buckets
	// are ordered by family name.
	Fitted      []Result
	Rejected    []Result
	NoFit       []Result
	NotFittable []Result
}

// Best returns the result with the smallest delta, or false if no
// family fitted the sample.
func (r *Report) Best() (Result, bool) {
	if len(r.Fitted) == 0 {
		return Result{}, false
	}
	return r.Fitted[0], true
}

// newReport buckets and orders results.
func newReport(s *stats.Summary, results []Result) *Report {
	r := &Report{Summary: s}
	for _, res := range results {
		switch res.Outcome {
		case Fitted:
			r.Fitted = append(r.Fitted, res)
		case Rejected:
			r.Rejected = append(r.Rejected, res)
		case NoFit:
			r.NoFit = append(r.NoFit, res)
		case NotFittable:
			r.NotFittable = append(r.NotFittable, res)
		}
	}

	slices.SortStableFunc(r.Fitted, func(a, b Result) int {
		if c := cmp.Compare(a.Delta, b.Delta); c != 0 {
			return c
		}
		return cmp.Compare(a.Name(), b.Name())
	})
	for i := range r.Fitted {
		r.Fitted[i].Rank = i + 1
	}
	byName := func(a, b Result) int { return cmp.Compare(a.Name(), b.Name()) }
	slices.SortFunc(r.Rejected, byName)
	slices.SortFunc(r.NoFit, byName)
	slices.SortFunc(r.NotFittable, byName)
	return r
}
