// Copyright 2025 The go-evstats Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package evstats

import "sort"

// A Sample is a finite series of real-valued observations. The
// constructor caches an ascending copy for plotting-position and
// quantile work; the sample is immutable once attached to a Dist.
type Sample struct {
	Xs     []float64
	sorted []float64
}

// NewSample copies xs into a Sample.
func NewSample(xs []float64) Sample {
	s := Sample{Xs: append([]float64(nil), xs...)}
	s.sorted = append([]float64(nil), xs...)
	sort.Float64s(s.sorted)
	return s
}

// Len returns the number of observations.
func (s Sample) Len() int { return len(s.Xs) }

// Sorted returns the cached ascending copy of the sample. The caller
// must not modify it.
func (s Sample) Sorted() []float64 { return s.sorted }

// Min and Max return the smallest and largest observations.
func (s Sample) Min() float64 { return s.sorted[0] }
func (s Sample) Max() float64 { return s.sorted[len(s.sorted)-1] }

// Weibull returns the Weibull plotting positions of data: the sample
// is sorted ascending and rank i (1-based) is assigned non-exceedance
// probability i/(n+1). The n+1 denominator keeps the largest
// observation strictly below probability one, so its return period
// stays finite.
//
// Defined for any non-empty sample; data itself is not modified.
func Weibull(data []float64) []float64 {
	xs := append([]float64(nil), data...)
	sort.Float64s(xs)
	fs := make([]float64, len(xs))
	for i := range fs {
		fs[i] = float64(i+1) / float64(len(xs)+1)
	}
	return fs
}

// WeibullReturnPeriods returns the return periods 1/(1-F) of the
// Weibull plotting positions of data.
func WeibullReturnPeriods(data []float64) []float64 {
	return ReturnPeriods(Weibull(data))
}

// ReturnPeriods converts non-exceedance probabilities to return
// periods, elementwise 1/(1-F). F = 1 yields +Inf; this is defined
// behavior, not an error.
func ReturnPeriods(fs []float64) []float64 {
	ts := make([]float64, len(fs))
	for i, f := range fs {
		ts[i] = 1 / (1 - f)
	}
	return ts
}
