// Copyright 2025 The go-evstats Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package evstats

import (
	"math"

	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"
)

// GumbelFamily is the Gumbel (extreme value type I) distribution,
// the classic annual-maximum model with a double-exponential cdf
// exp(-exp(-(x-loc)/scale)).
type GumbelFamily struct{}

// Gumbel is the Gumbel family.
var Gumbel Family = GumbelFamily{}

func (GumbelFamily) Name() string   { return "gumbel" }
func (GumbelFamily) NumParams() int { return 2 }

func (GumbelFamily) dist(p Parameters) distuv.GumbelRight {
	return distuv.GumbelRight{Mu: p.Loc, Beta: p.Scale}
}

func (g GumbelFamily) PDF(p Parameters, xs []float64) ([]float64, error) {
	if err := p.checkScale(); err != nil {
		return nil, err
	}
	d := g.dist(p)
	out := make([]float64, len(xs))
	for i, x := range xs {
		out[i] = d.Prob(x)
	}
	return out, nil
}

func (g GumbelFamily) CDF(p Parameters, xs []float64) ([]float64, error) {
	if err := p.checkScale(); err != nil {
		return nil, err
	}
	d := g.dist(p)
	out := make([]float64, len(xs))
	for i, x := range xs {
		out[i] = d.CDF(x)
	}
	return out, nil
}

// Quantile evaluates x = loc - scale*ln(-ln(F)).
func (g GumbelFamily) Quantile(p Parameters, fs []float64) ([]float64, error) {
	if err := p.checkScale(); err != nil {
		return nil, err
	}
	if err := checkProbs(fs); err != nil {
		return nil, err
	}
	out := make([]float64, len(fs))
	for i, f := range fs {
		out[i] = p.Loc - p.Scale*math.Log(-math.Log(f))
	}
	return out, nil
}

// FitMLE maximizes the Gumbel likelihood by Nelder-Mead, warm-started
// from the method-of-moments estimate.
func (g GumbelFamily) FitMLE(xs []float64) (Parameters, error) {
	if len(xs) == 0 {
		return Parameters{}, ErrSampleSize
	}
	seed, err := g.FitMoments(xs)
	if err != nil {
		return Parameters{}, err
	}
	x, err := minimizeSimplex(func(v []float64) float64 {
		p := paramsFromVector(v)
		if !(p.Scale > 0) {
			return inf
		}
		nll := 0.0
		for _, x := range xs {
			z := (x - p.Loc) / p.Scale
			nll += math.Log(p.Scale) + z + math.Exp(-z)
		}
		return nll
	}, seed.vector(2), fitIterCap, fitEvalCap)
	if err != nil {
		return Parameters{}, err
	}
	return paramsFromVector(x), nil
}

// FitMoments matches the sample mean and standard deviation:
// scale = s*sqrt(6)/pi, loc = mean - gamma*scale.
func (GumbelFamily) FitMoments(xs []float64) (Parameters, error) {
	if len(xs) == 0 {
		return Parameters{}, ErrSampleSize
	}
	mean := stat.Mean(xs, nil)
	scale := stat.PopStdDev(xs, nil) * math.Sqrt(6) / math.Pi
	return Parameters{Loc: mean - eulerGamma*scale, Scale: scale}, nil
}

// FitLMoments uses scale = L2/ln(2), loc = L1 - gamma*scale.
func (GumbelFamily) FitLMoments(m LMoments) (Parameters, error) {
	scale := m.L2 / math.Ln2
	return Parameters{Loc: m.L1 - eulerGamma*scale, Scale: scale}, nil
}

// GumbelConfidenceInterval returns the closed-form asymptotic
// confidence bounds around the Gumbel quantile curve for a sample of
// size n. For each non-exceedance probability F with reduced variate
// y = -ln(-ln(F)), the standard error is
//
//	se(y) = (scale/sqrt(n)) * sqrt(1.1087 + 0.5140*y + 0.6079*y^2)
//
// and the bounds are Qth -/+ z_(1-alpha/2)*se(y).
func GumbelConfidenceInterval(p Parameters, n int, fs []float64, alpha float64) (lower, upper []float64, err error) {
	q, err := Gumbel.Quantile(p, fs)
	if err != nil {
		return nil, nil, err
	}
	z := distuv.Normal{Mu: 0, Sigma: 1}.Quantile(1 - alpha/2)
	lower = make([]float64, len(fs))
	upper = make([]float64, len(fs))
	for i, f := range fs {
		y := -math.Log(-math.Log(f))
		se := p.Scale / math.Sqrt(float64(n)) * math.Sqrt(1.1087+0.5140*y+0.6079*y*y)
		lower[i] = q[i] - z*se
		upper[i] = q[i] + z*se
	}
	return lower, upper, nil
}
