// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fit

import (
	"context"
	"fmt"

	"github.com/probviz/probdist/dist"
	"github.com/probviz/probdist/stats"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// An Engine fits distribution families to samples.
//
// The zero Engine fits every family in the catalogue with the default
// configuration and does not log.
type Engine struct {
	// Families are the families to fit. If nil, the engine fits
	// dist.All().
	Families []dist.Family

	// Config controls the fit. Zero fields take their values from
	// DefaultConfig.
	Config Config

	// Logger receives per-family diagnostics at Debug level and a
	// batch summary at Info level. If nil, nothing is logged.
	Logger *zap.Logger
}

// Fit summarizes xs and fits every family to it.
func (e *Engine) Fit(ctx context.Context, xs []float64) (*Report, error) {
	s, err := stats.Summarize(xs, e.Config.withDefaults().Bins)
	if err != nil {
		return nil, err
	}
	return e.FitSummary(ctx, s)
}

// FitSummary fits every family to the sample summarized by s.
//
// Families are fitted concurrently. The failure of one family never
// affects another; FitSummary returns an error only if ctx is done
// before every family has been fitted.
func (e *Engine) FitSummary(ctx context.Context, s *stats.Summary) (*Report, error) {
	cfg := e.Config.withDefaults()
	log := e.Logger
	if log == nil {
		log = zap.NewNop()
	}
	families := e.Families
	if families == nil {
		families = dist.All()
	}

	results := make([]Result, len(families))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(cfg.Parallelism)
	for i, f := range families {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			results[i] = fitOne(f, s, cfg, log)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	r := newReport(s, results)
	log.Info("fit complete",
		zap.Int("samples", s.N),
		zap.Int("families", len(families)),
		zap.Int("fitted", len(r.Fitted)),
		zap.Int("rejected", len(r.Rejected)),
		zap.Int("noFit", len(r.NoFit)),
		zap.Int("notFittable", len(r.NotFittable)))
	return r, nil
}

// fitOne fits the family f to the sample summarized by s. It recovers
// from panics in the family's code.
func fitOne(f dist.Family, s *stats.Summary, cfg Config, log *zap.Logger) (r Result) {
	log = log.With(zap.String("family", f.Name()))
	r = Result{Family: f, Outcome: NoFit, Delta: nan, PKS: nan, PChiSqr: nan}

	fitter, ok := f.(dist.Fitter)
	if !ok {
		r.Outcome = NotFittable
		return r
	}

	defer func() {
		if err := recover(); err != nil {
			log.Debug("fit panicked", zap.String("panic", fmt.Sprint(err)))
			r = Result{Family: f, Outcome: NoFit, Delta: nan, PKS: nan, PChiSqr: nan}
		}
	}()

	v, ok := fitter.Fit(s)
	if !ok {
		log.Debug("no parameters found")
		return r
	}
	if err := dist.Validate(f, v); err != nil {
		log.Debug("fitter returned invalid parameters", zap.Error(err))
		return r
	}
	r.Params = v

	t, ok := newTable(f, v, s)
	if !ok {
		log.Debug("family is neither discrete nor continuous")
		r.Params = nil
		return r
	}
	r.Delta = t.delta()
	if !(r.Delta < cfg.MaxDelta) {
		log.Debug("fit rejected", zap.Float64("delta", r.Delta), zap.Float64s("params", v))
		r.Outcome = Rejected
		return r
	}

	empCum, modelCum := t.cumulative()
	_, r.PKS = KolmogorovSmirnov(empCum, modelCum, cfg.KSCutoff)
	_, _, r.PChiSqr = ChiSquare(t.emp, t.model, len(t.emp))
	r.Outcome = Fitted
	log.Debug("fitted", zap.Float64s("params", v), zap.Float64("delta", r.Delta))
	return r
}
