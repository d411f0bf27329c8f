// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dist

import (
	"math/rand/v2"

	"github.com/probviz/probdist/stats"
)

// A Family is a parametric family of probability distributions.
type Family interface {
	// Name returns the name of the family.
	Name() string

	// Params returns the parameter declarations of the family in
	// positional order.
	Params() []Param

	// Check reports whether v satisfies the constraints between
	// parameters that individual bounds cannot express, such as
	// a <= b. v must already be within bounds.
	Check(v Params) bool

	// Mean returns the mean of the distribution. ok is false if
	// the mean is undefined or infinite.
	Mean(v Params) (mean float64, ok bool)

	// Variance returns the variance of the distribution. ok is
	// false if the variance is undefined or infinite.
	Variance(v Params) (variance float64, ok bool)

	// CDF returns the probability of a value less than or equal
	// to x.
	CDF(v Params, x float64) float64

	// Rand returns a random value drawn from the distribution.
	Rand(v Params, r *rand.Rand) float64
}

// A Continuous family has a probability density.
type Continuous interface {
	Family

	// PDF returns the value of the probability density function
	// at x.
	PDF(v Params, x float64) float64

	// Support returns the infimum and supremum of the support.
	// They may be infinite.
	Support(v Params) (lo, hi float64)

	// Domain returns a finite range that holds nearly all of the
	// probability mass, suitable for plotting.
	Domain(v Params) (lo, hi float64)
}

// A Discrete family takes integer values.
//
// CDF takes a float64 and is the probability of a value less than or
// equal to floor(x).
type Discrete interface {
	Family

	// PMF returns the probability of the value k.
	PMF(v Params, k int) float64

	// Support returns the smallest and largest values with
	// non-negligible probability. For unbounded families hi is a
	// practical truncation beyond which the tail mass is below
	// TailMass.
	Support(v Params) (lo, hi int)
}

// A Fitter estimates parameters from a sample summary.
type Fitter interface {
	// Fit returns parameters for the sample summarized by s, or
	// false if the family cannot describe the sample.
	Fit(s *stats.Summary) (Params, bool)
}

// CanFit reports whether f implements Fitter.
func CanFit(f Family) bool {
	_, ok := f.(Fitter)
	return ok
}

// unchecked provides a Check method for families whose parameters
// are fully described by their bounds.
type unchecked struct{}

func (unchecked) Check(Params) bool { return true }
