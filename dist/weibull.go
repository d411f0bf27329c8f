// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dist

import (
	"math"
	"math/rand/v2"

	"github.com/probviz/probdist/mathx"
	"github.com/probviz/probdist/stats"
)

// eulerGamma is the Euler-Mascheroni constant.
const eulerGamma = 0.57721566490153286060651209008240243104215933593992

// Weibull is the Weibull distribution with scale λ and shape k.
type Weibull struct{ unchecked }

var weibullParams = []Param{positive("lambda", 1), positive("k", 1.5)}

func (Weibull) Name() string { return "Weibull" }

func (Weibull) Params() []Param { return weibullParams }

func (Weibull) PDF(v Params, x float64) float64 {
	lambda, k := v[0], v[1]
	switch {
	case x < 0:
		return 0
	case x == 0:
		if k < 1 {
			return inf
		} else if k == 1 {
			return 1 / lambda
		}
		return 0
	}
	z := x / lambda
	return k / lambda * math.Pow(z, k-1) * math.Exp(-math.Pow(z, k))
}

func (Weibull) CDF(v Params, x float64) float64 {
	if x <= 0 {
		return 0
	}
	return -math.Expm1(-math.Pow(x/v[0], v[1]))
}

func (Weibull) Support(Params) (float64, float64) { return 0, inf }

func (Weibull) Domain(v Params) (float64, float64) {
	lambda, k := v[0], v[1]
	return 0, lambda * math.Pow(-math.Log(1e-4), 1/k)
}

func (Weibull) Mean(v Params) (float64, bool) {
	lambda, k := v[0], v[1]
	return lambda * mathx.Gamma(1+1/k), true
}

func (Weibull) Variance(v Params) (float64, bool) {
	lambda, k := v[0], v[1]
	g1 := mathx.Gamma(1 + 1/k)
	return lambda * lambda * (mathx.Gamma(1+2/k) - g1*g1), true
}

func (Weibull) Rand(v Params, r *rand.Rand) float64 {
	return v[0] * math.Pow(-math.Log(uniformOpen(r)), 1/v[1])
}

// Fit solves the squared coefficient of variation for the shape
// k by bisection, then matches the mean.
func (Weibull) Fit(s *stats.Summary) (Params, bool) {
	m, variance := s.Mean, s.Variance()
	if s.Min < 0 || !(m > 0) || !(variance > 0) {
		return nil, false
	}
	cv2 := variance / (m * m)
	k, ok := solve(func(k float64) float64 {
		return math.Expm1(mathx.Lgamma(1+2/k)-2*mathx.Lgamma(1+1/k)) - cv2
	}, 0.02, 500)
	if !ok {
		return nil, false
	}
	return Params{m / mathx.Gamma(1+1/k), k}, true
}

// Rayleigh is the Rayleigh distribution with scale σ.
type Rayleigh struct{ unchecked }

var rayleighParams = []Param{positive("sigma", 1)}

func (Rayleigh) Name() string { return "Rayleigh" }

func (Rayleigh) Params() []Param { return rayleighParams }

func (Rayleigh) PDF(v Params, x float64) float64 {
	if x < 0 {
		return 0
	}
	s2 := v[0] * v[0]
	return x / s2 * math.Exp(-x*x/(2*s2))
}

func (Rayleigh) CDF(v Params, x float64) float64 {
	if x <= 0 {
		return 0
	}
	s2 := v[0] * v[0]
	return -math.Expm1(-x * x / (2 * s2))
}

func (Rayleigh) Support(Params) (float64, float64) { return 0, inf }

func (Rayleigh) Domain(v Params) (float64, float64) {
	return 0, v[0] * math.Sqrt(-2*math.Log(1e-4))
}

func (Rayleigh) Mean(v Params) (float64, bool) { return v[0] * math.Sqrt(math.Pi/2), true }

func (Rayleigh) Variance(v Params) (float64, bool) { return (4 - math.Pi) / 2 * v[0] * v[0], true }

func (Rayleigh) Rand(v Params, r *rand.Rand) float64 {
	return v[0] * math.Sqrt(-2*math.Log(uniformOpen(r)))
}

func (Rayleigh) Fit(s *stats.Summary) (Params, bool) {
	if s.Min < 0 || !(s.Mean > 0) {
		return nil, false
	}
	return Params{s.Mean * math.Sqrt(2/math.Pi)}, true
}

// Frechet is the Fréchet distribution with shape α, scale s and
// location m.
type Frechet struct{ unchecked }

var frechetParams = []Param{positive("alpha", 3), positive("s", 1), unbounded("m", 0)}

func (Frechet) Name() string { return "Frechet" }

func (Frechet) Params() []Param { return frechetParams }

func (Frechet) PDF(v Params, x float64) float64 {
	alpha, s, m := v[0], v[1], v[2]
	if x <= m {
		return 0
	}
	z := (x - m) / s
	return alpha / s * math.Pow(z, -1-alpha) * math.Exp(-math.Pow(z, -alpha))
}

func (Frechet) CDF(v Params, x float64) float64 {
	alpha, s, m := v[0], v[1], v[2]
	if x <= m {
		return 0
	}
	return math.Exp(-math.Pow((x-m)/s, -alpha))
}

func (Frechet) Support(v Params) (float64, float64) { return v[2], inf }

func (d Frechet) Domain(v Params) (float64, float64) {
	_, hi := quantileDomain(d, v)
	return v[2], hi
}

func (Frechet) Mean(v Params) (float64, bool) {
	alpha, s, m := v[0], v[1], v[2]
	if alpha <= 1 {
		return inf, false
	}
	return m + s*mathx.Gamma(1-1/alpha), true
}

func (Frechet) Variance(v Params) (float64, bool) {
	alpha, s := v[0], v[1]
	if alpha <= 2 {
		return inf, false
	}
	g1 := mathx.Gamma(1 - 1/alpha)
	return s * s * (mathx.Gamma(1-2/alpha) - g1*g1), true
}

func (Frechet) Rand(v Params, r *rand.Rand) float64 {
	alpha, s, m := v[0], v[1], v[2]
	return m + s*math.Pow(-math.Log(uniformOpen(r)), -1/alpha)
}

// Gumbel is the (maximum) Gumbel distribution with location μ and
// scale β.
type Gumbel struct{ unchecked }

var gumbelParams = []Param{unbounded("mu", 0), positive("beta", 1)}

func (Gumbel) Name() string { return "Gumbel" }

func (Gumbel) Params() []Param { return gumbelParams }

func (Gumbel) PDF(v Params, x float64) float64 {
	mu, beta := v[0], v[1]
	z := (x - mu) / beta
	return math.Exp(-z-math.Exp(-z)) / beta
}

func (Gumbel) CDF(v Params, x float64) float64 {
	mu, beta := v[0], v[1]
	return math.Exp(-math.Exp(-(x - mu) / beta))
}

func (Gumbel) Support(Params) (float64, float64) { return -inf, inf }

func (Gumbel) Domain(v Params) (float64, float64) {
	mu, beta := v[0], v[1]
	return mu - 3*beta, mu + 10*beta
}

func (Gumbel) Mean(v Params) (float64, bool) { return v[0] + v[1]*eulerGamma, true }

func (Gumbel) Variance(v Params) (float64, bool) { return math.Pi * math.Pi * v[1] * v[1] / 6, true }

func (Gumbel) Rand(v Params, r *rand.Rand) float64 {
	return v[0] - v[1]*math.Log(-math.Log(uniformOpen(r)))
}

func (Gumbel) Fit(s *stats.Summary) (Params, bool) {
	if !(s.StdDev > 0) {
		return nil, false
	}
	beta := s.StdDev * math.Sqrt(6) / math.Pi
	return Params{s.Mean - eulerGamma*beta, beta}, true
}

// Gompertz is the Gompertz distribution with shape η and scale b.
type Gompertz struct{ unchecked }

var gompertzParams = []Param{positive("eta", 1), positive("b", 1)}

func (Gompertz) Name() string { return "Gompertz" }

func (Gompertz) Params() []Param { return gompertzParams }

func (Gompertz) PDF(v Params, x float64) float64 {
	if x < 0 {
		return 0
	}
	eta, b := v[0], v[1]
	return b * eta * math.Exp(eta+b*x-eta*math.Exp(b*x))
}

func (Gompertz) CDF(v Params, x float64) float64 {
	if x <= 0 {
		return 0
	}
	eta, b := v[0], v[1]
	return -math.Expm1(-eta * math.Expm1(b*x))
}

func (Gompertz) Support(Params) (float64, float64) { return 0, inf }

func (d Gompertz) Domain(v Params) (float64, float64) {
	_, hi := quantileDomain(d, v)
	return 0, hi
}

// Mean is computed by numerical integration.
func (d Gompertz) Mean(v Params) (float64, bool) {
	m, _ := quadMoments(d, v)
	return m, true
}

// Variance is computed by numerical integration.
func (d Gompertz) Variance(v Params) (float64, bool) {
	_, variance := quadMoments(d, v)
	return variance, true
}

func (Gompertz) Rand(v Params, r *rand.Rand) float64 {
	eta, b := v[0], v[1]
	return math.Log1p(-math.Log(uniformOpen(r))/eta) / b
}
