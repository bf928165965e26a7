// Copyright 2025 The go-evstats Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package evstats

import (
	"math"

	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"
)

// NormalFamily is the Gaussian distribution. It is included as the
// reference non-extreme model when judging whether an annual series
// is skewed enough to need an extreme-value family.
type NormalFamily struct{}

// Normal is the Gaussian family.
var Normal Family = NormalFamily{}

func (NormalFamily) Name() string   { return "normal" }
func (NormalFamily) NumParams() int { return 2 }

func (NormalFamily) dist(p Parameters) distuv.Normal {
	return distuv.Normal{Mu: p.Loc, Sigma: p.Scale}
}

func (n NormalFamily) PDF(p Parameters, xs []float64) ([]float64, error) {
	if err := p.checkScale(); err != nil {
		return nil, err
	}
	d := n.dist(p)
	out := make([]float64, len(xs))
	for i, x := range xs {
		out[i] = d.Prob(x)
	}
	return out, nil
}

func (n NormalFamily) CDF(p Parameters, xs []float64) ([]float64, error) {
	if err := p.checkScale(); err != nil {
		return nil, err
	}
	d := n.dist(p)
	out := make([]float64, len(xs))
	for i, x := range xs {
		out[i] = d.CDF(x)
	}
	return out, nil
}

func (n NormalFamily) Quantile(p Parameters, fs []float64) ([]float64, error) {
	if err := p.checkScale(); err != nil {
		return nil, err
	}
	if err := checkProbs(fs); err != nil {
		return nil, err
	}
	d := n.dist(p)
	out := make([]float64, len(fs))
	for i, f := range fs {
		if f == 1 {
			out[i] = inf
			continue
		}
		out[i] = d.Quantile(f)
	}
	return out, nil
}

// FitMLE returns the sample mean and the population (maximum
// likelihood, n-denominator) standard deviation.
func (NormalFamily) FitMLE(xs []float64) (Parameters, error) {
	if len(xs) == 0 {
		return Parameters{}, ErrSampleSize
	}
	return Parameters{Loc: stat.Mean(xs, nil), Scale: stat.PopStdDev(xs, nil)}, nil
}

// FitMoments coincides with FitMLE for the normal family.
func (n NormalFamily) FitMoments(xs []float64) (Parameters, error) {
	return n.FitMLE(xs)
}

// FitLMoments uses loc = L1, scale = L2*sqrt(pi).
func (NormalFamily) FitLMoments(m LMoments) (Parameters, error) {
	return Parameters{Loc: m.L1, Scale: m.L2 * math.Sqrt(math.Pi)}, nil
}
