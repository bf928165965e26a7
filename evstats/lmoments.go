// Copyright 2025 The go-evstats Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package evstats

import (
	"sort"

	"gonum.org/v1/gonum/stat"
)

// LMoments holds the first sample L-moments: the L-location L1, the
// L-scale L2, and the L-moment ratios T3 (L-skewness) and T4
// (L-kurtosis).
//
// L-moments are linear combinations of order statistics. They are
// computed here from unbiased probability-weighted moments following
// Hosking (1990), "L-moments: analysis and estimation of
// distributions using linear combinations of order statistics",
// J. Royal Statistical Society B 52.
type LMoments struct {
	L1, L2, T3, T4 float64
}

// SampleLMoments computes the sample L-moments of xs. A sample needs
// at least two distinct values for L2 to be meaningful and at least
// four observations for T4; degenerate or too-short samples yield NaN
// moments rather than errors.
func SampleLMoments(xs []float64) LMoments {
	n := len(xs)
	if n == 0 {
		return LMoments{L1: nan, L2: nan, T3: nan, T4: nan}
	}
	sorted := append([]float64(nil), xs...)
	sort.Float64s(sorted)

	// Unbiased probability-weighted moments b0..b3. The weight of
	// x_(i) in b_r is the probability that r of the remaining
	// observations fall below it.
	b := [4]float64{stat.Mean(sorted, nil), nan, nan, nan}
	fn := float64(n)
	for r := 1; r <= 3 && r < n; r++ {
		sum := 0.0
		for i := r; i < n; i++ {
			w := 1.0
			for j := 1; j <= r; j++ {
				w *= float64(i+1-j) / float64(n-j)
			}
			sum += w * sorted[i]
		}
		b[r] = sum / fn
	}

	m := LMoments{
		L1: b[0],
		L2: 2*b[1] - b[0],
	}
	l3 := 6*b[2] - 6*b[1] + b[0]
	l4 := 20*b[3] - 30*b[2] + 12*b[1] - b[0]
	m.T3 = l3 / m.L2
	m.T4 = l4 / m.L2
	return m
}
