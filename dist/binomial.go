// Copyright 2020 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dist

import (
	"math"
	"math/rand/v2"

	"github.com/probviz/probdist/mathx"
	"github.com/probviz/probdist/stats"
)

// Bernoulli is the distribution of a single trial that succeeds (1)
// with probability p and fails (0) otherwise.
type Bernoulli struct{ unchecked }

var bernoulliParams = []Param{probability("p", 0.5)}

func (Bernoulli) Name() string { return "Bernoulli" }
func (Bernoulli) Params() []Param { return bernoulliParams }

func (Bernoulli) PMF(v Params, k int) float64 {
	switch k {
	case 0:
		return 1 - v[0]
	case 1:
		return v[0]
	}
	return 0
}

func (Bernoulli) CDF(v Params, x float64) float64 {
	if x < 0 {
		return 0
	} else if x < 1 {
		return 1 - v[0]
	}
	return 1
}

func (Bernoulli) Support(Params) (int, int) { return 0, 1 }
func (Bernoulli) Mean(v Params) (float64, bool) { return v[0], true }
func (Bernoulli) Variance(v Params) (float64, bool) { return v[0] * (1 - v[0]), true }
func (Bernoulli) Rand(v Params, r *rand.Rand) float64 {
	if r.Float64() < v[0] {
		return 1
	}
	return 0
}

func (Bernoulli) Fit(s *stats.Summary) (Params, bool) {
	if s.Min < 0 || s.Max > 1 {
		return nil, false
	}
	return Params{s.Mean}, true
}

// Binomial is the distribution of the number of successes in n
// independent Bernoulli trials with probability p.
//
// If n=1, this is equivalent to the Bernoulli distribution.
type Binomial struct{ unchecked }

var binomialParams = []Param{integer("n", 0, 10), probability("p", 0.5)}

func (Binomial) Name() string { return "Binomial" }
func (Binomial) Params() []Param { return binomialParams }

// PMF is the probability of getting exactly k successes in n
// independent Bernoulli trials with probability p.
func (Binomial) PMF(v Params, k int) float64 {
	n, p := int(v[0]), v[1]
	if k < 0 || k > n {
		return 0
	}
	if p == 0 || p == 1 {
		// Point mass; math.Pow(0, 0) is 1.
		return math.Pow(p, float64(k)) * math.Pow(1-p, float64(n-k))
	}
	return math.Exp(mathx.Lchoose(n, k) + float64(k)*math.Log(p) + float64(n-k)*math.Log1p(-p))
}

// CDF is the probability of getting floor(x) or fewer successes in n
// independent Bernoulli trials with probability p.
func (Binomial) CDF(v Params, x float64) float64 {
	n, p := v[0], v[1]
	k := math.Floor(x)
	if k < 0 {
		return 0
	} else if k >= n {
		return 1
	}
	return mathx.BetaInc(1-p, n-k, k+1)
}

func (Binomial) Support(v Params) (int, int) { return 0, int(v[0]) }
func (Binomial) Mean(v Params) (float64, bool) { return v[0] * v[1], true }
func (Binomial) Variance(v Params) (float64, bool) { return v[0] * v[1] * (1 - v[1]), true }

func (d Binomial) Rand(v Params, r *rand.Rand) float64 {
	return walkPMF(r.Float64(), 0, int(v[0]), func(k int) float64 { return d.PMF(v, k) })
}

// Fit estimates p from the ratio of variance to mean and n from the
// mean, with n at least the sample maximum.
func (Binomial) Fit(s *stats.Summary) (Params, bool) {
	if s.Min < 0 || !(s.Mean > 0) {
		return nil, false
	}
	p := 1 - s.Variance()/s.Mean
	if !(p > 0) {
		return nil, false
	}
	n := math.Max(math.Round(s.Mean/p), math.Ceil(s.Max))
	p = math.Min(s.Mean/n, 1)
	return Params{n, p}, true
}

// BetaBinomial is the distribution of the number of successes in n
// Bernoulli trials whose probability is drawn from Beta(α, β).
type BetaBinomial struct{ unchecked }

var betaBinomialParams = []Param{integer("n", 0, 10), positive("alpha", 2), positive("beta", 2)}

func (BetaBinomial) Name() string { return "BetaBinomial" }
func (BetaBinomial) Params() []Param { return betaBinomialParams }

func (BetaBinomial) PMF(v Params, k int) float64 {
	n, a, b := int(v[0]), v[1], v[2]
	if k < 0 || k > n {
		return 0
	}
	return math.Exp(mathx.Lchoose(n, k) + mathx.Lbeta(float64(k)+a, float64(n-k)+b) - mathx.Lbeta(a, b))
}

func (d BetaBinomial) CDF(v Params, x float64) float64 {
	if x >= v[0] {
		return 1
	}
	return cdfBySum(x, 0, func(k int) float64 { return d.PMF(v, k) })
}

func (BetaBinomial) Support(v Params) (int, int) { return 0, int(v[0]) }

func (BetaBinomial) Mean(v Params) (float64, bool) {
	n, a, b := v[0], v[1], v[2]
	return n * a / (a + b), true
}

func (BetaBinomial) Variance(v Params) (float64, bool) {
	n, a, b := v[0], v[1], v[2]
	return n * a * b * (a + b + n) / ((a + b) * (a + b) * (a + b + 1)), true
}

func (d BetaBinomial) Rand(v Params, r *rand.Rand) float64 {
	return walkPMF(r.Float64(), 0, int(v[0]), func(k int) float64 { return d.PMF(v, k) })
}

// Fit takes n from the sample maximum and α and β by the method of
// moments.
func (BetaBinomial) Fit(s *stats.Summary) (Params, bool) {
	n := math.Ceil(s.Max)
	if s.Min < 0 || n < 1 || !(s.Mean > 0) {
		return nil, false
	}
	m1 := s.Mean
	m2 := s.Variance() + m1*m1
	den := n*(m2/m1-m1-1) + m1
	a := (n*m1 - m2) / den
	b := (n - m1) * (n - m2/m1) / den
	if !(a > 0) || !(b > 0) || math.IsInf(a, 0) || math.IsInf(b, 0) {
		return nil, false
	}
	return Params{n, a, b}, true
}
