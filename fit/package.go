// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package fit ranks the distribution families of package dist by how
// well they describe a sample.
//
// For each family with a fitter, the engine estimates parameters from
// the sample summary, compares the fitted distribution with the
// sample histogram, and grades the comparison with a squared-error
// delta, an approximate Kolmogorov-Smirnov test and a chi-squared
// test. Families are fitted concurrently and independently: a failing
// or panicking fitter affects only its own result.
package fit

import "math"

var nan = math.NaN()
