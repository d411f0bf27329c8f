// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dist

import (
	"strings"

	"github.com/cockroachdb/errors"
)

var catalogue = []Family{
	// Discrete.
	Bernoulli{},
	BetaBinomial{},
	Binomial{},
	Borel{},
	DiscreteUniform{},
	Geometric{},
	Hypergeometric{},
	Logarithmic{},
	NegativeBinomial{},
	Poisson{},
	YuleSimon{},
	Zipf{},

	// Continuous.
	Arcsine{},
	Beta{},
	Cauchy{},
	Chi{},
	ChiSquared{},
	Erlang{},
	Exponential{},
	F{},
	Frechet{},
	Gamma{},
	Gompertz{},
	Gumbel{},
	HalfNormal{},
	HyperbolicSecant{},
	InverseGamma{},
	InverseGaussian{},
	IrwinHall{},
	Kumaraswamy{},
	Laplace{},
	Levy{},
	LogLaplace{},
	LogLogistic{},
	LogNormal{},
	Logistic{},
	Maxwell{},
	Nakagami{},
	Normal{},
	Pareto{},
	Rayleigh{},
	StudentT{},
	Triangular{},
	Uniform{},
	Weibull{},
}

// All returns every family in the catalogue, discrete families first.
func All() []Family {
	return append([]Family(nil), catalogue...)
}

// Lookup returns the family with the given name, ignoring case.
func Lookup(name string) (Family, error) {
	for _, f := range catalogue {
		if strings.EqualFold(f.Name(), name) {
			return f, nil
		}
	}
	return nil, errors.Wrapf(ErrUnknownFamily, "%q", name)
}
