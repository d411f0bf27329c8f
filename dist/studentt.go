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

// StudentT is Student's t-distribution with ν degrees of freedom.
type StudentT struct{ unchecked }

var studentTParams = []Param{positive("nu", 5)}

func (StudentT) Name() string { return "StudentT" }

func (StudentT) Params() []Param { return studentTParams }

func (StudentT) PDF(v Params, x float64) float64 {
	nu := v[0]
	return math.Exp(mathx.Lgamma((nu+1)/2)-mathx.Lgamma(nu/2)-0.5*math.Log(nu*math.Pi)) *
		math.Pow(1+x*x/nu, -(nu+1)/2)
}

func (StudentT) CDF(v Params, x float64) float64 {
	nu := v[0]
	if math.IsInf(x, 0) {
		return (1 + math.Copysign(1, x)) / 2
	}
	half := 0.5 * mathx.BetaInc(nu/(nu+x*x), nu/2, 0.5)
	if x > 0 {
		return 1 - half
	}
	return half
}

func (StudentT) Support(Params) (float64, float64) { return -inf, inf }

func (d StudentT) Domain(v Params) (float64, float64) { return quantileDomain(d, v) }

func (StudentT) Mean(v Params) (float64, bool) {
	if v[0] <= 1 {
		return nan, false
	}
	return 0, true
}

func (StudentT) Variance(v Params) (float64, bool) {
	nu := v[0]
	if nu <= 2 {
		return inf, false
	}
	return nu / (nu - 2), true
}

func (StudentT) Rand(v Params, r *rand.Rand) float64 {
	nu := v[0]
	return boxMuller(r) / math.Sqrt(2*gammaVariate(r, nu/2)/nu)
}

// Fit solves the variance ν/(ν-2) for ν.
func (StudentT) Fit(s *stats.Summary) (Params, bool) {
	variance := s.Variance()
	if !(variance > 1) {
		return nil, false
	}
	return Params{2 * variance / (variance - 1)}, true
}

// F is the F-distribution with d1 and d2 degrees of freedom.
type F struct{ unchecked }

var fParams = []Param{positive("d1", 5), positive("d2", 10)}

func (F) Name() string { return "F" }

func (F) Params() []Param { return fParams }

func (F) PDF(v Params, x float64) float64 {
	d1, d2 := v[0], v[1]
	switch {
	case x < 0:
		return 0
	case x == 0:
		if d1 < 2 {
			return inf
		} else if d1 == 2 {
			return 1
		}
		return 0
	}
	return math.Exp(0.5*(d1*math.Log(d1*x)+d2*math.Log(d2)-(d1+d2)*math.Log(d1*x+d2)) -
		math.Log(x) - mathx.Lbeta(d1/2, d2/2))
}

func (F) CDF(v Params, x float64) float64 {
	if x <= 0 {
		return 0
	}
	d1, d2 := v[0], v[1]
	return mathx.BetaInc(d1*x/(d1*x+d2), d1/2, d2/2)
}

func (F) Support(Params) (float64, float64) { return 0, inf }

func (d F) Domain(v Params) (float64, float64) {
	_, hi := quantileDomain(d, v)
	return 0, hi
}

func (F) Mean(v Params) (float64, bool) {
	d2 := v[1]
	if d2 <= 2 {
		return inf, false
	}
	return d2 / (d2 - 2), true
}

func (F) Variance(v Params) (float64, bool) {
	d1, d2 := v[0], v[1]
	if d2 <= 4 {
		return inf, false
	}
	return 2 * d2 * d2 * (d1 + d2 - 2) / (d1 * (d2 - 2) * (d2 - 2) * (d2 - 4)), true
}

func (F) Rand(v Params, r *rand.Rand) float64 {
	d1, d2 := v[0], v[1]
	x := 2 * gammaVariate(r, d1/2) / d1
	y := 2 * gammaVariate(r, d2/2) / d2
	return x / y
}

// Fit matches the mean and variance, which requires d2 > 4.
func (F) Fit(s *stats.Summary) (Params, bool) {
	m, variance := s.Mean, s.Variance()
	if s.Min < 0 || !(m > 1) || !(variance > 0) {
		return nil, false
	}
	d2 := 2 * m / (m - 1)
	if !(d2 > 4) {
		return nil, false
	}
	den := variance*(d2-2)*(d2-2)*(d2-4) - 2*d2*d2
	d1 := 2 * d2 * d2 * (d2 - 2) / den
	if !(d1 > 0) || math.IsInf(d1, 0) {
		return nil, false
	}
	return Params{d1, d2}, true
}

// Cauchy is the Cauchy distribution with location x0 and scale γ.
type Cauchy struct{ unchecked }

var cauchyParams = []Param{unbounded("x0", 0), positive("gamma", 1)}

func (Cauchy) Name() string { return "Cauchy" }

func (Cauchy) Params() []Param { return cauchyParams }

func (Cauchy) PDF(v Params, x float64) float64 {
	x0, g := v[0], v[1]
	z := (x - x0) / g
	return 1 / (math.Pi * g * (1 + z*z))
}

func (Cauchy) CDF(v Params, x float64) float64 {
	return 0.5 + math.Atan((x-v[0])/v[1])/math.Pi
}

func (Cauchy) Support(Params) (float64, float64) { return -inf, inf }

func (Cauchy) Domain(v Params) (float64, float64) {
	x0, g := v[0], v[1]
	return x0 - 10*g, x0 + 10*g
}

func (Cauchy) Mean(Params) (float64, bool) { return nan, false }

func (Cauchy) Variance(Params) (float64, bool) { return nan, false }

func (Cauchy) Rand(v Params, r *rand.Rand) float64 {
	return v[0] + v[1]*math.Tan(math.Pi*(uniformOpen(r)-0.5))
}

// Fit takes the location from the median and the scale from half the
// interquartile range.
func (Cauchy) Fit(s *stats.Summary) (Params, bool) {
	g := (s.Q3 - s.Q1) / 2
	if !(g > 0) {
		return nil, false
	}
	return Params{s.Median, g}, true
}

// Pareto is the Pareto distribution with scale xm and shape α.
type Pareto struct{ unchecked }

var paretoParams = []Param{positive("xm", 1), positive("alpha", 3)}

func (Pareto) Name() string { return "Pareto" }

func (Pareto) Params() []Param { return paretoParams }

func (Pareto) PDF(v Params, x float64) float64 {
	xm, alpha := v[0], v[1]
	if x < xm {
		return 0
	}
	return alpha / x * math.Exp(alpha*math.Log(xm/x))
}

func (Pareto) CDF(v Params, x float64) float64 {
	xm, alpha := v[0], v[1]
	if x <= xm {
		return 0
	}
	return -math.Expm1(alpha * math.Log(xm/x))
}

func (Pareto) Support(v Params) (float64, float64) { return v[0], inf }

func (Pareto) Domain(v Params) (float64, float64) {
	xm, alpha := v[0], v[1]
	return xm, xm * math.Pow(1e-4, -1/alpha)
}

func (Pareto) Mean(v Params) (float64, bool) {
	xm, alpha := v[0], v[1]
	if alpha <= 1 {
		return inf, false
	}
	return alpha * xm / (alpha - 1), true
}

func (Pareto) Variance(v Params) (float64, bool) {
	xm, alpha := v[0], v[1]
	if alpha <= 2 {
		return inf, false
	}
	return xm * xm * alpha / ((alpha - 1) * (alpha - 1) * (alpha - 2)), true
}

func (Pareto) Rand(v Params, r *rand.Rand) float64 {
	return v[0] / math.Pow(uniformOpen(r), 1/v[1])
}

// Fit takes xm from the sample minimum and solves the mean for α.
func (Pareto) Fit(s *stats.Summary) (Params, bool) {
	xm := s.Min
	if !(xm > 0) || !(s.Mean > xm) {
		return nil, false
	}
	return Params{xm, s.Mean / (s.Mean - xm)}, true
}
