// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dist

import (
	"math"
	"testing"

	"github.com/probviz/probdist/internal/mathtest"
	"gonum.org/v1/gonum/stat/distuv"
)

// An oracle is an independent implementation of a distribution.
type oracle interface {
	Prob(x float64) float64
	CDF(x float64) float64
}

var continuousOracles = []struct {
	f Continuous
	v Params
	o oracle
}{
	{Normal{}, Params{1, 3}, distuv.Normal{Mu: 1, Sigma: 3}},
	{LogNormal{}, Params{0.5, 0.7}, distuv.LogNormal{Mu: 0.5, Sigma: 0.7}},
	{Uniform{}, Params{-1, 2}, distuv.Uniform{Min: -1, Max: 2}},
	{Exponential{}, Params{2.5}, distuv.Exponential{Rate: 2.5}},
	{Gamma{}, Params{2.5, 3}, distuv.Gamma{Alpha: 2.5, Beta: 1.0 / 3}},
	{Gamma{}, Params{0.7, 1}, distuv.Gamma{Alpha: 0.7, Beta: 1}},
	{Erlang{}, Params{4, 2}, distuv.Gamma{Alpha: 4, Beta: 2}},
	{ChiSquared{}, Params{7}, distuv.ChiSquared{K: 7}},
	{Chi{}, Params{4}, distuv.Chi{K: 4}},
	{Beta{}, Params{2, 5}, distuv.Beta{Alpha: 2, Beta: 5}},
	{Beta{}, Params{0.8, 1.3}, distuv.Beta{Alpha: 0.8, Beta: 1.3}},
	{Weibull{}, Params{2, 1.5}, distuv.Weibull{K: 1.5, Lambda: 2}},
	{StudentT{}, Params{3}, distuv.StudentsT{Mu: 0, Sigma: 1, Nu: 3}},
	{StudentT{}, Params{30}, distuv.StudentsT{Mu: 0, Sigma: 1, Nu: 30}},
	{F{}, Params{4, 9}, distuv.F{D1: 4, D2: 9}},
	{Pareto{}, Params{1.5, 2.5}, distuv.Pareto{Xm: 1.5, Alpha: 2.5}},
	{Laplace{}, Params{-2, 0.5}, distuv.Laplace{Mu: -2, Scale: 0.5}},
	{Logistic{}, Params{1, 2}, distuv.Logistic{Mu: 1, S: 2}},
	{Gumbel{}, Params{0.5, 2}, distuv.GumbelRight{Mu: 0.5, Beta: 2}},
	{InverseGamma{}, Params{3, 2}, distuv.InverseGamma{Alpha: 3, Beta: 2}},
	{Triangular{}, Params{0, 3, 1}, distuv.NewTriangle(0, 3, 1, nil)},
}

func TestContinuousOracle(t *testing.T) {
	for _, c := range continuousOracles {
		name := label(c.f, c.v)
		slo, shi := c.f.Support(c.v)
		lo, hi := c.f.Domain(c.v)
		xs := mathtest.Linspace(lo, hi, 97)
		want := mathtest.Map(c.o.CDF, xs)
		got := mathtest.Map(func(x float64) float64 { return c.f.CDF(c.v, x) }, xs)
		for i, x := range xs {
			if x == slo || x == shi {
				continue
			}
			if !near(want[i], got[i], 1e-6, 1e-10) {
				t.Errorf("%s.CDF(%v) = %v, want %v", name, x, got[i], want[i])
			}
			if want, got := c.o.Prob(x), c.f.PDF(c.v, x); !near(want, got, 1e-6, 1e-10) {
				t.Errorf("%s.PDF(%v) = %v, want %v", name, x, got, want)
			}
		}
	}
}

var discreteOracles = []struct {
	f Discrete
	v Params
	o oracle
}{
	{Bernoulli{}, Params{0.3}, distuv.Bernoulli{P: 0.3}},
	{Binomial{}, Params{12, 0.35}, distuv.Binomial{N: 12, P: 0.35}},
	{Binomial{}, Params{60, 0.9}, distuv.Binomial{N: 60, P: 0.9}},
	{Poisson{}, Params{3.5}, distuv.Poisson{Lambda: 3.5}},
	{Poisson{}, Params{40}, distuv.Poisson{Lambda: 40}},
}

func TestDiscreteOracle(t *testing.T) {
	for _, c := range discreteOracles {
		name := label(c.f, c.v)
		lo, hi := c.f.Support(c.v)
		for k := lo; k <= hi; k++ {
			x := float64(k)
			if want, got := c.o.Prob(x), c.f.PMF(c.v, k); !near(want, got, 1e-6, 1e-12) {
				t.Errorf("%s.PMF(%d) = %v, want %v", name, k, got, want)
			}
			if want, got := c.o.CDF(x), c.f.CDF(c.v, x+0.5); !near(want, got, 1e-6, 1e-12) {
				t.Errorf("%s.CDF(%v) = %v, want %v", name, x+0.5, got, want)
			}
		}
	}
}

func TestBoundaryCases(t *testing.T) {
	point := Params{5, 5}
	if err := Validate(Uniform{}, point); err != nil {
		t.Fatalf("Uniform%v: %v", point, err)
	}
	if got := (Uniform{}).PDF(point, 5); !math.IsInf(got, 1) {
		t.Errorf("Uniform%v.PDF(5) = %v, want +Inf", point, got)
	}
	if got := (Uniform{}).CDF(point, 4.9); got != 0 {
		t.Errorf("Uniform%v.CDF(4.9) = %v, want 0", point, got)
	}
	if got := (Uniform{}).CDF(point, 5); got != 1 {
		t.Errorf("Uniform%v.CDF(5) = %v, want 1", point, got)
	}

	b := Params{0.25}
	for k, want := range []float64{0.75, 0.25} {
		if got := (Bernoulli{}).PMF(b, k); got != want {
			t.Errorf("Bernoulli%v.PMF(%d) = %v, want %v", b, k, got, want)
		}
	}
	if got := (Bernoulli{}).CDF(b, 0.5); got != 0.75 {
		t.Errorf("Bernoulli%v.CDF(0.5) = %v, want 0.75", b, got)
	}

	if got, want := (Exponential{}).CDF(Params{2}, 1), 1-math.Exp(-2); !near(want, got, 1e-15, 0) {
		t.Errorf("Exponential{2}.CDF(1) = %v, want %v", got, want)
	}

	mean, _ := Poisson{}.Mean(Params{5})
	variance, _ := Poisson{}.Variance(Params{5})
	if mean != 5 || variance != 5 {
		t.Errorf("Poisson{5} has mean %v, variance %v, want 5, 5", mean, variance)
	}

	for _, f := range []Family{Cauchy{}, Levy{}} {
		v := Defaults(f)
		if _, ok := f.Mean(v); ok {
			t.Errorf("%s.Mean reports a finite mean", label(f, v))
		}
		if _, ok := f.Variance(v); ok {
			t.Errorf("%s.Variance reports a finite variance", label(f, v))
		}
	}
}
