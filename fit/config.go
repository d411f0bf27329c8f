// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fit

import (
	"runtime"

	"github.com/probviz/probdist/stats"
)

// Config controls an Engine.
type Config struct {
	// Bins is the number of histogram bins of the sample summary.
	Bins int

	// MaxDelta is the squared-error delta at or above which a fit
	// is rejected.
	MaxDelta float64

	// KSCutoff is the empirical cumulative probability at which
	// the Kolmogorov-Smirnov statistic stops accumulating.
	KSCutoff float64

	// Parallelism limits the number of families fitted at once.
	Parallelism int
}

// DefaultConfig returns the default engine configuration.
func DefaultConfig() Config {
	return Config{
		Bins:        stats.DefaultBins,
		MaxDelta:    1e6,
		KSCutoff:    0.9999,
		Parallelism: runtime.GOMAXPROCS(0),
	}
}

// withDefaults returns c with unset fields taken from DefaultConfig.
func (c Config) withDefaults() Config {
	d := DefaultConfig()
	if c.Bins <= 0 {
		c.Bins = d.Bins
	}
	if !(c.MaxDelta > 0) {
		c.MaxDelta = d.MaxDelta
	}
	if !(c.KSCutoff > 0 && c.KSCutoff <= 1) {
		c.KSCutoff = d.KSCutoff
	}
	if c.Parallelism <= 0 {
		c.Parallelism = d.Parallelism
	}
	return c
}
