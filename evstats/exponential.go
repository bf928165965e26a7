// Copyright 2025 The go-evstats Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package evstats

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"
)

// ExponentialFamily is the shifted (two-parameter) exponential
// distribution with density exp(-(x-loc)/scale)/scale for x >= loc.
//
// The location doubles as the truncation threshold of the flood
// series and must be positive; unlike the usual scale-only rule this
// applies to pdf, cdf, and quantile alike.
type ExponentialFamily struct{}

// Exponential is the shifted exponential family.
var Exponential Family = ExponentialFamily{}

func (ExponentialFamily) Name() string   { return "exponential" }
func (ExponentialFamily) NumParams() int { return 2 }

func (ExponentialFamily) check(p Parameters) error {
	if err := p.checkScale(); err != nil {
		return err
	}
	if !(p.Loc > 0) {
		return fmt.Errorf("exponential loc = %v must be positive: %w", p.Loc, ErrInvalidParameter)
	}
	return nil
}

func (ExponentialFamily) dist(p Parameters) distuv.Exponential {
	return distuv.Exponential{Rate: 1 / p.Scale}
}

func (e ExponentialFamily) PDF(p Parameters, xs []float64) ([]float64, error) {
	if err := e.check(p); err != nil {
		return nil, err
	}
	d := e.dist(p)
	out := make([]float64, len(xs))
	for i, x := range xs {
		out[i] = d.Prob(x - p.Loc)
	}
	return out, nil
}

func (e ExponentialFamily) CDF(p Parameters, xs []float64) ([]float64, error) {
	if err := e.check(p); err != nil {
		return nil, err
	}
	d := e.dist(p)
	out := make([]float64, len(xs))
	for i, x := range xs {
		out[i] = d.CDF(x - p.Loc)
	}
	return out, nil
}

// Quantile evaluates x = loc - scale*ln(1-F).
func (e ExponentialFamily) Quantile(p Parameters, fs []float64) ([]float64, error) {
	if err := e.check(p); err != nil {
		return nil, err
	}
	if err := checkProbs(fs); err != nil {
		return nil, err
	}
	d := e.dist(p)
	out := make([]float64, len(fs))
	for i, f := range fs {
		out[i] = p.Loc + d.Quantile(f)
	}
	return out, nil
}

// FitMLE uses the closed-form maximum likelihood estimate
// loc = min(x), scale = mean(x) - min(x).
func (ExponentialFamily) FitMLE(xs []float64) (Parameters, error) {
	if len(xs) == 0 {
		return Parameters{}, ErrSampleSize
	}
	min := xs[0]
	for _, x := range xs[1:] {
		min = math.Min(min, x)
	}
	return Parameters{Loc: min, Scale: stat.Mean(xs, nil) - min}, nil
}

// FitMoments matches mean = loc + scale and variance = scale^2:
// scale = s, loc = mean - s.
func (ExponentialFamily) FitMoments(xs []float64) (Parameters, error) {
	if len(xs) == 0 {
		return Parameters{}, ErrSampleSize
	}
	sd := stat.PopStdDev(xs, nil)
	return Parameters{Loc: stat.Mean(xs, nil) - sd, Scale: sd}, nil
}

// FitLMoments uses scale = 2*L2, loc = L1 - scale.
func (ExponentialFamily) FitLMoments(m LMoments) (Parameters, error) {
	scale := 2 * m.L2
	return Parameters{Loc: m.L1 - scale, Scale: scale}, nil
}
