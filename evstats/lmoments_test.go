// Copyright 2025 The go-evstats Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package evstats

import (
	"math"
	"testing"
)

func TestSampleLMoments(t *testing.T) {
	// Hand-computed from the unbiased PWM definitions:
	// b0 = 2.5, b1 = 5/3, b2 = 1.25, b3 = 1.
	m := SampleLMoments([]float64{4, 2, 1, 3})
	if !aeq(2.5, m.L1) {
		t.Errorf("L1: want 2.5, got %v", m.L1)
	}
	if !aeq(5.0/6, m.L2) {
		t.Errorf("L2: want %v, got %v", 5.0/6, m.L2)
	}
	// A symmetric sample has zero L-skewness and, for this one,
	// zero L-kurtosis too.
	if !aeq(0, m.T3) || !aeq(0, m.T4) {
		t.Errorf("T3, T4: want 0, 0, got %v, %v", m.T3, m.T4)
	}
}

func TestSampleLMomentsShift(t *testing.T) {
	// L1 shifts with the data; L2, T3 and T4 are shift-invariant.
	a := SampleLMoments([]float64{1, 2, 4, 8, 16})
	b := SampleLMoments([]float64{101, 102, 104, 108, 116})
	if !aeq(a.L1+100, b.L1) || !aeq(a.L2, b.L2) || !aeq(a.T3, b.T3) || !aeq(a.T4, b.T4) {
		t.Errorf("a = %+v, b = %+v", a, b)
	}
}

func TestSampleLMomentsDegenerate(t *testing.T) {
	m := SampleLMoments(nil)
	if !math.IsNaN(m.L1) || !math.IsNaN(m.L2) {
		t.Errorf("want NaN moments for the empty sample, got %+v", m)
	}
	// A single observation has a mean but no higher moments.
	m = SampleLMoments([]float64{42})
	if !aeq(42, m.L1) {
		t.Errorf("L1: want 42, got %v", m.L1)
	}
	if !math.IsNaN(m.L2) {
		t.Errorf("want NaN L2 for a singleton, got %v", m.L2)
	}
}
