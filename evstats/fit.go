// Copyright 2025 The go-evstats Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package evstats

import (
	"fmt"
	"math"
	"strings"

	"gonum.org/v1/gonum/optimize"
)

// Method selects a parameter estimation method.
type Method string

const (
	// MethodMLE is maximum likelihood.
	MethodMLE Method = "mle"

	// MethodMoments is the conventional method of moments.
	MethodMoments Method = "mm"

	// MethodLMoments converts sample L-moments through the
	// family's closed-form relations.
	MethodLMoments Method = "lmoments"

	// MethodOptimization minimizes a caller-supplied
	// threshold-truncated objective, warm-started from the MLE
	// fit.
	MethodOptimization Method = "optimization"
)

// ParseMethod resolves a case-insensitive method name.
func ParseMethod(s string) (Method, error) {
	switch m := Method(strings.ToLower(s)); m {
	case MethodMLE, MethodMoments, MethodLMoments, MethodOptimization:
		return m, nil
	default:
		return "", fmt.Errorf("%q should be 'mle', 'mm', 'lmoments' or 'optimization': %w", s, ErrInvalidMethod)
	}
}

// Iteration and evaluation caps for every simplex search.
const (
	fitIterCap = 500
	fitEvalCap = 500
)

// An Objective scores a candidate against a sample; the estimation
// dispatcher minimizes it. The candidate layout is [threshold, loc,
// scale] for two-parameter families and [threshold, loc, scale,
// shape] for GEV. Lower is better; return +Inf for infeasible
// candidates.
type Objective func(candidate []float64, xs []float64) float64

// FitOptions configures Dist.Fit. The zero value is a reasonable
// default for the non-optimization methods.
type FitOptions struct {
	// Objective and Threshold are required by
	// MethodOptimization and ignored otherwise. Threshold is the
	// censoring point above which observations contribute only
	// survival probability.
	Objective Objective
	Threshold *float64

	// SkipTests disables the automatic post-fit goodness-of-fit
	// tests. The bootstrap engine sets it when refitting
	// synthetic resamples.
	SkipTests bool
}

// Fit estimates the distribution's parameters from its sample using
// the given method and replaces the current parameter set. Unless
// opt.SkipTests is set, both goodness-of-fit tests run afterwards. A
// KS failure fails the fit (the parameters stay on the instance); a
// Chi-square computation failure is recorded on the instance (see
// LastChiSquare) rather than failing the fit.
func (d *Dist) Fit(method Method, opt *FitOptions) (Parameters, error) {
	m, err := ParseMethod(string(method))
	if err != nil {
		return Parameters{}, err
	}
	if opt == nil {
		opt = &FitOptions{}
	}

	var p Parameters
	switch m {
	case MethodMLE:
		p, err = d.family.FitMLE(d.sample.Xs)
	case MethodMoments:
		p, err = d.family.FitMoments(d.sample.Xs)
	case MethodLMoments:
		p, err = d.family.FitLMoments(SampleLMoments(d.sample.Xs))
	case MethodOptimization:
		p, err = d.fitTruncated(opt)
	}
	if err != nil {
		return Parameters{}, err
	}
	d.setParams(p)

	if !opt.SkipTests {
		if _, err := d.KSTest(); err != nil {
			return Parameters{}, err
		}
		// A degenerate Chi-square is reported, not fatal.
		d.ChiSquareTest()
	}
	return p, nil
}

// fitTruncated warm-starts from the unconstrained MLE fit, then
// minimizes the caller's truncated objective over [threshold,
// params...], discarding the fitted threshold from the result.
func (d *Dist) fitTruncated(opt *FitOptions) (Parameters, error) {
	if opt.Objective == nil || opt.Threshold == nil {
		return Parameters{}, fmt.Errorf("optimization needs an objective function and a threshold: %w", ErrMissingArgument)
	}
	warm, err := d.family.FitMLE(d.sample.Xs)
	if err != nil {
		return Parameters{}, err
	}
	x0 := append([]float64{*opt.Threshold}, warm.vector(d.family.NumParams())...)
	x, err := minimizeSimplex(func(v []float64) float64 {
		return opt.Objective(v, d.sample.Xs)
	}, x0, fitIterCap, fitEvalCap)
	if err != nil {
		return Parameters{}, err
	}
	return paramsFromVector(x[1:]), nil
}

// TruncatedNLL builds the threshold-truncated negative log-likelihood
// for a family: observations below the candidate threshold contribute
// density terms -ln(pdf(x)/scale), observations at or above it are
// right-censored and contribute -n2*ln(1 - cdf(threshold)). The
// candidate layout is the one documented on Objective.
func TruncatedNLL(f Family) Objective {
	return func(candidate []float64, xs []float64) float64 {
		threshold := candidate[0]
		p := paramsFromVector(candidate[1:])

		below := make([]float64, 0, len(xs))
		nAbove := 0
		for _, x := range xs {
			if x < threshold {
				below = append(below, x)
			} else {
				nAbove++
			}
		}

		pdf, err := f.PDF(p, below)
		if err != nil {
			return inf
		}
		l1 := 0.0
		for _, v := range pdf {
			l1 -= math.Log(v / p.Scale)
		}
		cdf, err := f.CDF(p, []float64{threshold})
		if err != nil {
			return inf
		}
		l2 := -float64(nAbove) * math.Log(1-cdf[0])

		loss := l1 + l2
		if math.IsNaN(loss) {
			return inf
		}
		return loss
	}
}

// minimizeSimplex runs a derivative-free Nelder-Mead search from x0
// with hard iteration and evaluation caps, returning the best point
// seen.
func minimizeSimplex(fn func([]float64) float64, x0 []float64, maxIter, maxEval int) ([]float64, error) {
	problem := optimize.Problem{Func: fn}
	settings := &optimize.Settings{
		MajorIterations: maxIter,
		FuncEvaluations: maxEval,
	}
	result, err := optimize.Minimize(problem, x0, settings, &optimize.NelderMead{})
	if result == nil {
		return nil, err
	}
	return result.X, nil
}
