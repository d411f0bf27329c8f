// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package mathx implements special functions not provided by the
// standard math package.
//
// The error function and its inverses are used directly from math.
// Functions in this package return NaN for arguments outside their
// domain rather than panicking.
package mathx // import "github.com/probviz/probdist/mathx"

import "math"

var nan = math.NaN()
