// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package dist is a catalogue of parametric probability
// distributions.
//
// A distribution family is stateless: parameter values are passed to
// every method as a Params slice in the order given by the family's
// Params declaration. Numeric methods do not validate their
// parameters; callers validate at the boundary with Validate.
package dist // import "github.com/probviz/probdist/dist"

import (
	"math"

	"github.com/cockroachdb/errors"
)

var inf = math.Inf(1)
var nan = math.NaN()

var (
	// ErrInvalidParams is returned when parameter values are
	// missing, out of bounds or inconsistent.
	ErrInvalidParams = errors.New("dist: invalid parameters")

	// ErrUnknownFamily is returned by Lookup for an unknown name.
	ErrUnknownFamily = errors.New("dist: unknown distribution family")
)
