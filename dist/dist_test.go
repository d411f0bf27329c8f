// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dist

import (
	"math"
	"testing"

	"github.com/probviz/probdist/internal/mathtest"
)

// discreteCases are parameter sets for each discrete family besides
// its defaults.
var discreteCases = []struct {
	f Discrete
	v Params
}{
	{Bernoulli{}, Params{0.25}},
	{Binomial{}, Params{5, 0.2}},
	{Binomial{}, Params{200, 0.01}},
	{Binomial{}, Params{3, 1}},
	{BetaBinomial{}, Params{20, 0.5, 3}},
	{Poisson{}, Params{0.1}},
	{Poisson{}, Params{150}},
	{Geometric{}, Params{0.05}},
	{Geometric{}, Params{1}},
	{NegativeBinomial{}, Params{7, 0.2}},
	{Hypergeometric{}, Params{20, 15, 10}},
	{DiscreteUniform{}, Params{-3, 4}},
	{Logarithmic{}, Params{0.95}},
	{Zipf{}, Params{1.5, 200}},
	{Borel{}, Params{0}},
	{Borel{}, Params{0.8}},
	{YuleSimon{}, Params{5.5}},
}

func TestDiscreteProperties(t *testing.T) {
	type testCase struct {
		f Discrete
		v Params
	}
	var cases []testCase
	for _, f := range All() {
		if d, ok := f.(Discrete); ok {
			cases = append(cases, testCase{d, Defaults(d)})
		}
	}
	for _, c := range discreteCases {
		cases = append(cases, testCase{c.f, c.v})
	}

	for _, c := range cases {
		name := label(c.f, c.v)
		if err := Validate(c.f, c.v); err != nil {
			t.Errorf("%s: %v", name, err)
			continue
		}
		lo, hi := c.f.Support(c.v)
		if lo > hi {
			t.Errorf("%s: support [%d, %d] is empty", name, lo, hi)
			continue
		}

		var sum, m1, m2 float64
		for k := lo; k <= hi; k++ {
			p := c.f.PMF(c.v, k)
			if !(p >= 0 && p <= 1) {
				t.Errorf("%s: PMF(%d) = %v", name, k, p)
			}
			sum += p
			m1 += p * float64(k)
			m2 += p * float64(k) * float64(k)
		}
		if !near(1, sum, 0, 1e-8) {
			t.Errorf("%s: PMF sums to %v over [%d, %d]", name, sum, lo, hi)
		}
		if p := c.f.PMF(c.v, lo-1); p != 0 {
			t.Errorf("%s: PMF(%d) = %v below the support", name, lo-1, p)
		}
		testDiscreteCDF(t, name+".CDF", c.f, c.v)
		if got := c.f.CDF(c.v, float64(hi)+1e6); !near(1, got, 0, 1e-8) {
			t.Errorf("%s: CDF far above the support = %v", name, got)
		}

		if mean, ok := c.f.Mean(c.v); ok && !near(mean, m1, 1e-6, 1e-6) {
			t.Errorf("%s: Mean = %v, PMF gives %v", name, mean, m1)
		}
		// Truncating a polynomial tail biases the variance.
		if !heavyTailed[c.f.Name()] {
			if variance, ok := c.f.Variance(c.v); ok && !near(variance, m2-m1*m1, 1e-5, 1e-6) {
				t.Errorf("%s: Variance = %v, PMF gives %v", name, variance, m2-m1*m1)
			}
		}
	}
}

// heavyTailed families have polynomial tails at their test
// parameters.
var heavyTailed = map[string]bool{
	"YuleSimon":    true,
	"Pareto":       true,
	"StudentT":     true,
	"InverseGamma": true,
	"F":            true,
	"LogLogistic":  true,
	"LogLaplace":   true,
	"Frechet":      true,
	"Cauchy":       true,
	"Levy":         true,
}

var continuousCases = []struct {
	f Continuous
	v Params
}{
	{Uniform{}, Params{-2, 3}},
	{Normal{}, Params{10, 0.01}},
	{LogNormal{}, Params{1, 1}},
	{Gamma{}, Params{0.5, 2}},
	{Gamma{}, Params{50, 0.1}},
	{Erlang{}, Params{5, 3}},
	{ChiSquared{}, Params{1}},
	{Chi{}, Params{1}},
	{Beta{}, Params{0.5, 0.5}},
	{Beta{}, Params{30, 7}},
	{Weibull{}, Params{2, 0.7}},
	{Pareto{}, Params{2, 1.5}},
	{StudentT{}, Params{1}},
	{Cauchy{}, Params{-3, 0.5}},
	{Laplace{}, Params{1, 3}},
	{Logistic{}, Params{-1, 0.2}},
	{Gumbel{}, Params{2, 4}},
	{Frechet{}, Params{1.5, 2, -1}},
	{Rayleigh{}, Params{3}},
	{Maxwell{}, Params{0.5}},
	{F{}, Params{1, 1}},
	{Triangular{}, Params{0, 4, 0}},
	{Kumaraswamy{}, Params{0.5, 0.5}},
	{Levy{}, Params{1, 0.5}},
	{InverseGamma{}, Params{1.5, 2}},
	{LogLogistic{}, Params{2, 1.5}},
	{LogLaplace{}, Params{0.5, 0.8}},
	{HalfNormal{}, Params{2}},
	{Arcsine{}, Params{-1, 1}},
	{IrwinHall{}, Params{1}},
	{IrwinHall{}, Params{12}},
	{Gompertz{}, Params{0.1, 2}},
	{InverseGaussian{}, Params{2, 0.5}},
	{Nakagami{}, Params{0.5, 2}},
	{Nakagami{}, Params{4, 1}},
	{HyperbolicSecant{}, Params{5, 2}},
}

func TestContinuousProperties(t *testing.T) {
	type testCase struct {
		f Continuous
		v Params
	}
	var cases []testCase
	for _, f := range All() {
		if c, ok := f.(Continuous); ok {
			cases = append(cases, testCase{c, Defaults(c)})
		}
	}
	for _, c := range continuousCases {
		cases = append(cases, testCase{c.f, c.v})
	}

	for _, c := range cases {
		name := label(c.f, c.v)
		if err := Validate(c.f, c.v); err != nil {
			t.Errorf("%s: %v", name, err)
			continue
		}
		lo, hi := c.f.Domain(c.v)
		if !(lo < hi) || math.IsInf(lo, 0) || math.IsInf(hi, 0) {
			t.Errorf("%s: Domain = [%v, %v]", name, lo, hi)
			continue
		}

		// The CDF is a non-decreasing probability.
		prev := -1.0
		for _, x := range mathtest.Linspace(lo, hi, 1001) {
			cdf := c.f.CDF(c.v, x)
			if !(cdf >= 0 && cdf <= 1) {
				t.Errorf("%s: CDF(%v) = %v", name, x, cdf)
				break
			}
			if cdf < prev-1e-9 {
				t.Errorf("%s: CDF decreases from %v to %v at %v", name, prev, cdf, x)
				break
			}
			prev = cdf
			if pdf := c.f.PDF(c.v, x); !(pdf >= 0) {
				t.Errorf("%s: PDF(%v) = %v", name, x, pdf)
				break
			}
		}

		// The domain holds most of the mass.
		want := 0.99
		if heavyTailed[c.f.Name()] {
			want = 0.8
		}
		if mass := c.f.CDF(c.v, hi) - c.f.CDF(c.v, lo); mass < want {
			t.Errorf("%s: Domain [%v, %v] holds mass %v", name, lo, hi, mass)
		}

		slo, shi := c.f.Support(c.v)
		if !math.IsInf(slo, 0) && c.f.CDF(c.v, slo-1) != 0 {
			t.Errorf("%s: CDF below the support is %v", name, c.f.CDF(c.v, slo-1))
		}
		if !math.IsInf(shi, 0) && c.f.CDF(c.v, shi+1) != 1 {
			t.Errorf("%s: CDF above the support is %v", name, c.f.CDF(c.v, shi+1))
		}
	}
}

// singular families have densities that are unbounded at an end of
// their domain at default parameters.
var singular = map[string]bool{"Arcsine": true}

func TestPDFIntegratesToCDF(t *testing.T) {
	for _, f := range All() {
		c, ok := f.(Continuous)
		if !ok || singular[f.Name()] {
			continue
		}
		v := Defaults(c)
		lo, hi := c.Domain(v)
		const n = 20000
		h := (hi - lo) / n
		integral := 0.0
		for i := 0; i < n; i++ {
			integral += c.PDF(v, lo+(float64(i)+0.5)*h) * h
		}
		want := c.CDF(v, hi) - c.CDF(v, lo)
		if !near(want, integral, 0, 2e-3) {
			t.Errorf("%s: ∫PDF over [%v, %v] = %v, want %v", label(c, v), lo, hi, integral, want)
		}
	}
}

func TestMomentsByQuadrature(t *testing.T) {
	// Gompertz moments come from quadrature. Check that path
	// against a family with closed-form moments.
	for _, c := range []struct {
		f Continuous
		v Params
	}{
		{Normal{}, Params{3, 2}},
		{Gamma{}, Params{3, 1.5}},
		{Weibull{}, Params{1, 2}},
	} {
		m, variance := quadMoments(c.f, c.v)
		wantM, _ := c.f.Mean(c.v)
		wantV, _ := c.f.Variance(c.v)
		if !near(wantM, m, 1e-6, 1e-9) || !near(wantV, variance, 1e-6, 1e-9) {
			t.Errorf("%s: quadMoments = %v, %v, want %v, %v", label(c.f, c.v), m, variance, wantM, wantV)
		}
	}

	// Gompertz(η=1, b=1) has mean e·E1(1) ≈ 0.596347.
	m, _ := Gompertz{}.Mean(Params{1, 1})
	if !near(0.596347362323194, m, 1e-6, 0) {
		t.Errorf("Gompertz{1, 1}.Mean = %v, want 0.596347", m)
	}
}
