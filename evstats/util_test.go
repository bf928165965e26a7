// Copyright 2025 The go-evstats Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package evstats

import "math"

func aeq(expect, got float64) bool {
	return math.Abs(expect-got) < 0.00001
}

// syntheticSample builds a deterministic sample whose empirical shape
// closely follows the family: the quantiles at the Weibull plotting
// positions of an n-point series.
func syntheticSample(f Family, p Parameters, n int) []float64 {
	fs := make([]float64, n)
	for i := range fs {
		fs[i] = float64(i+1) / float64(n+1)
	}
	xs, err := f.Quantile(p, fs)
	if err != nil {
		panic(err)
	}
	return xs
}
