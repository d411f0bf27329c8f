// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package stats computes the sample statistics used to fit
// distributions: moments, quartiles, log-moments and histograms.
package stats // import "github.com/probviz/probdist/stats"

import (
	"math"

	"github.com/cockroachdb/errors"
)

var nan = math.NaN()

// ErrEmptySample is returned when a sample contains no usable values.
var ErrEmptySample = errors.New("stats: empty sample")
