// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"bufio"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"
)

// ParseSample reads one number per line from r.
//
// A comma is accepted as the decimal separator. Blank lines and lines
// that do not parse as a finite number are skipped. ParseSample
// returns ErrEmptySample if no value was read.
func ParseSample(r io.Reader) ([]float64, error) {
	var xs []float64
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		x, ok := parseValue(scanner.Text())
		if !ok {
			continue
		}
		xs = append(xs, x)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "stats: reading sample")
	}
	if len(xs) == 0 {
		return nil, ErrEmptySample
	}
	return xs, nil
}

func parseValue(l string) (float64, bool) {
	l = strings.TrimSpace(l)
	if l == "" {
		return 0, false
	}
	if !strings.Contains(l, ".") {
		l = strings.Replace(l, ",", ".", 1)
	}
	x, err := strconv.ParseFloat(l, 64)
	if err != nil || math.IsNaN(x) || math.IsInf(x, 0) {
		return 0, false
	}
	return x, true
}
