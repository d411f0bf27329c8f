// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dist

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/probviz/probdist/stats"
)

func summarize(t *testing.T, xs []float64) *stats.Summary {
	t.Helper()
	s, err := stats.Summarize(xs, stats.DefaultBins)
	if err != nil {
		t.Fatal(err)
	}
	return s
}

func TestFitRoundTrip(t *testing.T) {
	const n = 20000
	r := rand.New(rand.NewPCG(5, 6))
	for _, f := range All() {
		fitter, ok := f.(Fitter)
		if !ok {
			continue
		}
		v := Defaults(f)
		name := label(f, v)
		got, ok := fitter.Fit(summarize(t, draw(f, v, n, r)))
		if !ok {
			t.Errorf("%s: Fit failed", name)
			continue
		}
		if err := Validate(f, got); err != nil {
			t.Errorf("%s: Fit returned %v: %v", name, got, err)
			continue
		}

		mean, ok := f.Mean(v)
		if !ok {
			// Compare location and scale directly.
			for i := range v {
				if !near(v[i], got[i], 0.1, 0.1) {
					t.Errorf("%s: Fit = %v", name, got)
					break
				}
			}
			continue
		}
		variance, _ := f.Variance(v)
		tol := 0.05 * math.Max(math.Abs(mean), math.Sqrt(variance))
		if gotMean, _ := f.Mean(got); math.Abs(gotMean-mean) > tol {
			t.Errorf("%s: Fit = %v with mean %v, want %v ± %v", name, got, gotMean, mean, tol)
		}
		if heavyTailed[f.Name()] {
			continue
		}
		if gotVar, _ := f.Variance(got); !near(variance, gotVar, 0.15, 0) {
			t.Errorf("%s: Fit = %v with variance %v, want %v", name, got, gotVar, variance)
		}
	}
}

func TestFitConstantSample(t *testing.T) {
	ones := make([]float64, 100)
	for i := range ones {
		ones[i] = 1
	}
	s := summarize(t, ones)

	want := map[string]Params{
		"Bernoulli":       {1},
		"Binomial":        {1, 1},
		"Poisson":         {1},
		"Geometric":       {1},
		"DiscreteUniform": {1, 1},
		"Borel":           {0},
		"Uniform":         {1, 1},
	}
	noFit := []string{
		"Normal", "LogNormal", "Gamma", "Erlang", "Beta", "Weibull",
		"InverseGamma", "InverseGaussian", "Logistic", "Laplace",
		"Gumbel", "HyperbolicSecant", "NegativeBinomial", "StudentT",
		"Cauchy", "Nakagami",
	}

	for name, wantV := range want {
		f, err := Lookup(name)
		if err != nil {
			t.Fatal(err)
		}
		got, ok := f.(Fitter).Fit(s)
		if !ok {
			t.Errorf("%s: Fit of a constant sample failed", name)
			continue
		}
		if err := Validate(f, got); err != nil {
			t.Errorf("%s: Fit = %v: %v", name, got, err)
		}
		for i := range wantV {
			if got[i] != wantV[i] {
				t.Errorf("%s: Fit = %v, want %v", name, got, wantV)
				break
			}
		}
	}
	for _, name := range noFit {
		f, err := Lookup(name)
		if err != nil {
			t.Fatal(err)
		}
		if got, ok := f.(Fitter).Fit(s); ok {
			t.Errorf("%s: Fit of a constant sample = %v, want failure", name, got)
		}
	}
}

func TestFitRejectsSupport(t *testing.T) {
	// Negative values are outside the support of these families.
	s := summarize(t, []float64{-1, 0.5, 2, 3, 4.5})
	for _, f := range []Fitter{
		Bernoulli{}, Binomial{}, Poisson{}, Geometric{}, Exponential{},
		Gamma{}, LogNormal{}, Weibull{}, Pareto{}, Beta{}, Rayleigh{},
	} {
		if got, ok := f.Fit(s); ok {
			t.Errorf("%s: Fit = %v, want failure", f.(Family).Name(), got)
		}
	}
}

func TestFitGammaMLE(t *testing.T) {
	// The MLE shape satisfies log(k) - ψ(k) = log(mean) - mean(log).
	xs := []float64{0.5, 1.2, 1.9, 2.4, 3.3, 4.1, 5.8, 7.2}
	s := summarize(t, xs)
	v, ok := Gamma{}.Fit(s)
	if !ok {
		t.Fatal("Gamma.Fit failed")
	}
	if got := v[0] * v[1]; !near(s.Mean, got, 1e-12, 0) {
		t.Errorf("Gamma.Fit mean = %v, want %v", got, s.Mean)
	}
	ll := func(k float64) float64 {
		theta := s.Mean / k
		sum := 0.0
		for _, x := range xs {
			sum += math.Log(Gamma{}.PDF(Params{k, theta}, x))
		}
		return sum
	}
	best := ll(v[0])
	for _, d := range []float64{0.99, 1.01} {
		if l := ll(v[0] * d); l > best {
			t.Errorf("log-likelihood at k=%v is %v > %v at fitted k=%v", v[0]*d, l, best, v[0])
		}
	}
}

func TestFitLaplaceMoments(t *testing.T) {
	// Laplace matches the mean and the variance 2b², not the median.
	s := summarize(t, []float64{0, 1, 1, 2, 6})
	v, ok := Laplace{}.Fit(s)
	if !ok {
		t.Fatal("Laplace.Fit failed")
	}
	if !near(2, v[0], 1e-12, 0) || !near(s.StdDev/math.Sqrt2, v[1], 1e-12, 0) {
		t.Errorf("Laplace.Fit = %v, want [2 %v]", v, s.StdDev/math.Sqrt2)
	}
}
