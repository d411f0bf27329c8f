// Copyright 2020 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dist

import (
	"math"
	"testing"
)

func TestBinomial(t *testing.T) {
	v := Params{5, 0.2}
	want := map[int]float64{
		-1000: 0,
		-1:    0,
		0:     0.32768,
		1:     0.4096,
		2:     0.2048,
		3:     0.0512,
		4:     0.0064,
		5:     math.Pow(0.2, 5),
		6:     0,
		1000:  0,
	}
	for k, w := range want {
		if got := (Binomial{}).PMF(v, k); !near(w, got, 1e-12, 1e-15) {
			t.Errorf("Binomial%v.PMF(%d) = %v, want %v", v, k, got, w)
		}
	}
	testDiscreteCDF(t, label(Binomial{}, v)+".CDF", Binomial{}, v)

	v = Params{30, 0.5}
	mean, _ := Binomial{}.Mean(v)
	variance, _ := Binomial{}.Variance(v)
	norm := Params{mean, math.Sqrt(variance)}
	for k := 10; k <= 20; k++ {
		b := Binomial{}.PMF(v, k)
		n := Normal{}.CDF(norm, float64(k)+0.5) - Normal{}.CDF(norm, float64(k)-0.5)

		// The normal approximation isn't actually very close,
		// even with high N and P near 0.5, so we only check
		// the center of the distribution and we're pretty
		// lax.
		err := math.Abs(b/n - 1)
		if err > 0.01 {
			t.Errorf("want %v ≅ %v at %d", b, n, k)
		}
	}
}

func TestBernoulliIsBinomial(t *testing.T) {
	for _, p := range []float64{0, 0.3, 1} {
		for k := -1; k <= 2; k++ {
			b, want := Binomial{}.PMF(Params{1, p}, k), Bernoulli{}.PMF(Params{p}, k)
			if !near(want, b, 1e-12, 0) {
				t.Errorf("Binomial{1, %v}.PMF(%d) = %v, want %v", p, k, b, want)
			}
		}
	}
}

func TestHypergeometric(t *testing.T) {
	// Drawing 5 of 20 items, 7 of which are marked.
	v := Params{20, 7, 5}
	want := []float64{
		1287.0 / 15504,
		7 * 715.0 / 15504,
		21 * 286.0 / 15504,
		35 * 78.0 / 15504,
		35 * 13.0 / 15504,
		21.0 / 15504,
	}
	for k, w := range want {
		if got := (Hypergeometric{}).PMF(v, k); !near(w, got, 1e-10, 0) {
			t.Errorf("Hypergeometric%v.PMF(%d) = %v, want %v", v, k, got, w)
		}
	}
	testDiscreteCDF(t, label(Hypergeometric{}, v)+".CDF", Hypergeometric{}, v)
}
