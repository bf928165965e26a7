// Copyright 2025 The go-evstats Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package evstats

import "fmt"

// Parameters is an immutable parameter set for a distribution family.
// Loc and Scale are used by every family; Shape only by the
// three-parameter GEV, in the scipy genextreme sign convention
// (negative shape gives a heavy, unbounded upper tail).
//
// Re-estimation replaces a distribution's Parameters wholesale; a
// Parameters value is never mutated field by field.
type Parameters struct {
	Loc   float64
	Scale float64
	Shape float64
}

func (p Parameters) String() string {
	return fmt.Sprintf("loc=%g scale=%g shape=%g", p.Loc, p.Scale, p.Shape)
}

// checkScale rejects a non-positive (or NaN) scale. Every family
// applies this before any pdf, cdf, or quantile evaluation.
func (p Parameters) checkScale() error {
	if !(p.Scale > 0) {
		return fmt.Errorf("scale = %v: %w", p.Scale, ErrInvalidParameter)
	}
	return nil
}

// checkProbs rejects non-exceedance probabilities outside (0, 1].
// F = 1 is allowed and maps to the distribution's upper endpoint,
// which is +Inf for unbounded tails.
func checkProbs(fs []float64) error {
	for _, f := range fs {
		if !(f > 0) || f > 1 {
			return fmt.Errorf("probability %v outside (0, 1]: %w", f, ErrInvalidParameter)
		}
	}
	return nil
}

// vector returns the parameters in optimizer layout, loc and scale
// followed by shape for three-parameter families.
func (p Parameters) vector(nParams int) []float64 {
	if nParams == 3 {
		return []float64{p.Loc, p.Scale, p.Shape}
	}
	return []float64{p.Loc, p.Scale}
}

// paramsFromVector is the inverse of Parameters.vector.
func paramsFromVector(v []float64) Parameters {
	p := Parameters{Loc: v[0], Scale: v[1]}
	if len(v) > 2 {
		p.Shape = v[2]
	}
	return p
}
