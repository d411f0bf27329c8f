// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dist

import (
	"fmt"
	"math"
	"testing"
)

func aeq(expect, got float64) bool {
	return math.Abs(expect-got) < 0.00001
}

// near reports whether got is within rel of expect, or within abs of
// it for values near zero.
func near(expect, got, rel, abs float64) bool {
	return math.Abs(expect-got) <= abs+rel*math.Abs(expect)
}

// testDiscreteCDF checks that the CDF of d equals the running sum of
// its PMF and is constant between integers.
func testDiscreteCDF(t *testing.T, name string, d Discrete, v Params) {
	t.Helper()
	lo, hi := d.Support(v)
	if got := d.CDF(v, float64(lo)-0.5); got != 0 {
		t.Errorf("%s(%v) = %v, want 0", name, float64(lo)-0.5, got)
	}
	sum := 0.0
	for k := lo; k <= hi; k++ {
		sum += d.PMF(v, k)
		for _, x := range []float64{float64(k), float64(k) + 0.5} {
			if got := d.CDF(v, x); !aeq(sum, got) {
				t.Errorf("%s(%v) = %v, want %v", name, x, got, sum)
				return
			}
		}
	}
}

func label(f Family, v Params) string {
	return fmt.Sprintf("%s%v", f.Name(), v)
}
