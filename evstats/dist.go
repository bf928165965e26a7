// Copyright 2025 The go-evstats Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package evstats

import "math"

// A Family is a parametric distribution family: closed-form density,
// cumulative, and quantile evaluation plus the family's native
// parameter estimators.
//
// All evaluation methods validate the parameter set eagerly (scale
// must be positive everywhere; see each family for additional rules)
// and return ErrInvalidParameter before computing anything.
type Family interface {
	// Name returns the lowercase family name.
	Name() string

	// NumParams returns 2 for loc/scale families and 3 for GEV.
	NumParams() int

	// PDF returns the probability density at each x.
	PDF(p Parameters, xs []float64) ([]float64, error)

	// CDF returns the non-exceedance probability at each x.
	CDF(p Parameters, xs []float64) ([]float64, error)

	// Quantile is the inverse CDF: it maps each non-exceedance
	// probability in (0, 1] to the corresponding data value.
	Quantile(p Parameters, fs []float64) ([]float64, error)

	// FitMLE estimates parameters by maximum likelihood.
	FitMLE(xs []float64) (Parameters, error)

	// FitMoments estimates parameters by the method of moments.
	FitMoments(xs []float64) (Parameters, error)

	// FitLMoments converts sample L-moments to parameters using
	// the family's closed-form Hosking relations.
	FitLMoments(m LMoments) (Parameters, error)
}

// A Dist binds one Family to one Sample and at most one current
// parameter set. The parameter set is absent until Fit (or
// NewFitted) sets it and is replaced wholesale on re-estimation.
type Dist struct {
	family     Family
	sample     Sample
	positions  []float64 // Weibull non-exceedance of the sorted sample
	ksCritical float64   // 1.22/sqrt(n)

	params *Parameters

	lastKS     *KSTestResult
	lastChi    *ChiSquareTestResult
	lastChiErr error
}

// New constructs an unfitted distribution instance over data.
func New(f Family, data []float64) (*Dist, error) {
	if len(data) == 0 {
		return nil, ErrSampleSize
	}
	s := NewSample(data)
	return &Dist{
		family:     f,
		sample:     s,
		positions:  Weibull(s.Sorted()),
		ksCritical: 1.22 / math.Sqrt(float64(s.Len())),
	}, nil
}

// setParams replaces the current parameter set and clears any stale
// test state.
func (d *Dist) setParams(p Parameters) {
	d.params = &p
	d.lastKS = nil
	d.lastChi = nil
	d.lastChiErr = nil
}

// NewFitted constructs a distribution instance over data with a
// pre-specified parameter set.
func NewFitted(f Family, data []float64, p Parameters) (*Dist, error) {
	d, err := New(f, data)
	if err != nil {
		return nil, err
	}
	d.setParams(p)
	return d, nil
}

// Family returns the distribution family.
func (d *Dist) Family() Family { return d.family }

// Sample returns the bound sample.
func (d *Dist) Sample() Sample { return d.sample }

// Positions returns the Weibull plotting positions of the sorted
// sample.
func (d *Dist) Positions() []float64 {
	return append([]float64(nil), d.positions...)
}

// Params returns the current parameter set, if any.
func (d *Dist) Params() (Parameters, bool) {
	if d.params == nil {
		return Parameters{}, false
	}
	return *d.params, true
}

// PDF evaluates the fitted density at the sample observations.
func (d *Dist) PDF() ([]float64, error) {
	if d.params == nil {
		return nil, ErrNotFit
	}
	return d.family.PDF(*d.params, d.sample.Xs)
}

// CDF evaluates the fitted cumulative at the sample observations.
func (d *Dist) CDF() ([]float64, error) {
	if d.params == nil {
		return nil, ErrNotFit
	}
	return d.family.CDF(*d.params, d.sample.Xs)
}

// Quantile evaluates the fitted quantile function at the given
// non-exceedance probabilities.
func (d *Dist) Quantile(fs []float64) ([]float64, error) {
	if d.params == nil {
		return nil, ErrNotFit
	}
	return d.family.Quantile(*d.params, fs)
}

// ReturnPeriods returns the fitted return period 1/(1-F(x)) for each
// value in xs. A value at or beyond the distribution's upper endpoint
// yields +Inf.
func (d *Dist) ReturnPeriods(xs []float64) ([]float64, error) {
	if d.params == nil {
		return nil, ErrNotFit
	}
	fs, err := d.family.CDF(*d.params, xs)
	if err != nil {
		return nil, err
	}
	return ReturnPeriods(fs), nil
}

// ConfidenceInterval returns lower and upper quantile bounds at the
// two-sided confidence level 1-alpha for each non-exceedance
// probability in fs. Gumbel uses its closed-form asymptotic interval;
// every other family uses a parametric bootstrap with default
// settings (see Bootstrap for control over resampling).
func (d *Dist) ConfidenceInterval(fs []float64, alpha float64) (lower, upper []float64, err error) {
	if d.params == nil {
		return nil, nil, ErrNotFit
	}
	if _, ok := d.family.(GumbelFamily); ok {
		return GumbelConfidenceInterval(*d.params, d.sample.Len(), fs, alpha)
	}
	res, err := Bootstrap{Alpha: alpha}.ConfidenceInterval(d, fs)
	if err != nil {
		return nil, nil, err
	}
	return res.Lower, res.Upper, nil
}
