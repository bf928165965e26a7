// Copyright 2025 The go-evstats Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package evstats

// Fitted-curve sampling for presentation layers. The range runs from
// the smallest observation to 1.5x the largest so the upper tail of
// the fit is visible beyond the data; both constants are fixed by
// convention.
const (
	curvePoints = 10000
	curveExtent = 1.5
)

// A Curve is a densely sampled fitted distribution, ready for a
// plotting collaborator: Xs spans the extended data range with the
// fitted density and cumulative at each point.
type Curve struct {
	Xs  []float64
	PDF []float64
	CDF []float64
}

// FittedCurve samples the fitted pdf and cdf over the extended data
// range. It requires a fitted parameter set.
func (d *Dist) FittedCurve() (*Curve, error) {
	if d.params == nil {
		return nil, ErrNotFit
	}
	lo, hi := d.sample.Min(), curveExtent*d.sample.Max()
	xs := make([]float64, curvePoints)
	step := (hi - lo) / float64(curvePoints-1)
	for i := range xs {
		xs[i] = lo + float64(i)*step
	}
	pdf, err := d.family.PDF(*d.params, xs)
	if err != nil {
		return nil, err
	}
	cdf, err := d.family.CDF(*d.params, xs)
	if err != nil {
		return nil, err
	}
	return &Curve{Xs: xs, PDF: pdf, CDF: cdf}, nil
}
