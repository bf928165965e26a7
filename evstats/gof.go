// Copyright 2025 The go-evstats Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package evstats

import (
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"
)

// A KSTestResult is the result of the two-sample Kolmogorov-Smirnov
// test between the observed sample and the theoretical quantiles at
// the sample's Weibull positions. The smaller the statistic, the
// more likely both series come from the same distribution.
type KSTestResult struct {
	// N is the sample size.
	N int

	// Statistic is the maximum distance between the two empirical
	// CDFs.
	Statistic float64

	// P is the asymptotic two-sided p-value; reject the fit when
	// it falls below the chosen significance level.
	P float64

	// Critical is the fixed 1.22/sqrt(n) critical value and
	// Accept reports Statistic < Critical. Informational only; no
	// control flow depends on it.
	Critical float64
	Accept   bool
}

// KSTest compares the sample against the fitted quantiles at the
// Weibull plotting positions. It requires a fitted parameter set and
// fails with ErrNotFit otherwise. The outcome, success or not, becomes
// the instance's last KS state.
func (d *Dist) KSTest() (*KSTestResult, error) {
	res, err := d.ksTest()
	d.lastKS = res
	return res, err
}

func (d *Dist) ksTest() (*KSTestResult, error) {
	if d.params == nil {
		return nil, ErrNotFit
	}
	qth, err := d.family.Quantile(*d.params, d.positions)
	if err != nil {
		return nil, err
	}
	sort.Float64s(qth)

	n := d.sample.Len()
	statistic := stat.KolmogorovSmirnov(d.sample.Sorted(), nil, qth, nil)
	res := &KSTestResult{
		N:         n,
		Statistic: statistic,
		P:         ksPValue(statistic, n, n),
		Critical:  d.ksCritical,
	}
	res.Accept = res.Statistic < res.Critical
	return res, nil
}

// LastKS returns the most recent KS result, if any.
func (d *Dist) LastKS() (*KSTestResult, bool) { return d.lastKS, d.lastKS != nil }

// ksPValue is the asymptotic two-sample p-value: the Kolmogorov
// survival function at the statistic scaled by the effective sample
// size with the small-sample correction of Numerical Recipes.
func ksPValue(d float64, n1, n2 int) float64 {
	if d <= 0 {
		return 1
	}
	ne := float64(n1) * float64(n2) / float64(n1+n2)
	sqrtNe := math.Sqrt(ne)
	return kolmogorovSurvival((sqrtNe + 0.12 + 0.11/sqrtNe) * d)
}

// kolmogorovSurvival evaluates Q(lambda) = 2*sum (-1)^(k-1)
// exp(-2 k^2 lambda^2). The series alternates and converges fast for
// lambda above ~0.2; below that the survival is 1 to double
// precision.
func kolmogorovSurvival(lambda float64) float64 {
	if lambda < 0.2 {
		return 1
	}
	sum := 0.0
	sign := 1.0
	for k := 1; k <= 100; k++ {
		term := sign * math.Exp(-2*float64(k*k)*lambda*lambda)
		sum += term
		if math.Abs(term) < 1e-12 {
			break
		}
		sign = -sign
	}
	return math.Max(0, math.Min(1, 2*sum))
}

// A ChiSquareTestResult is the result of the Chi-square comparison of
// the standardized theoretical quantiles against the standardized
// observed sample.
type ChiSquareTestResult struct {
	Statistic float64
	P         float64
	DF        int
}

// ChiSquareTest standardizes both the theoretical quantile sequence
// and the observed sample to zero mean and unit variance, then
// computes sum((obs-exp)^2/exp) with n-1 degrees of freedom.
//
// Standardization can produce degenerate expected bins (a
// standardized observation of exactly zero); the test then returns
// ErrChiSquare, marking it inconclusive. Callers that run it as a
// post-fit diagnostic treat that as a report, not a failure. The
// outcome, success or not, becomes the instance's last Chi-square
// state.
func (d *Dist) ChiSquareTest() (*ChiSquareTestResult, error) {
	res, err := d.chiSquareTest()
	d.lastChi, d.lastChiErr = res, err
	return res, err
}

func (d *Dist) chiSquareTest() (*ChiSquareTestResult, error) {
	if d.params == nil {
		return nil, ErrNotFit
	}
	qth, err := d.family.Quantile(*d.params, d.positions)
	if err != nil {
		return nil, err
	}
	obs, err := standardize(qth)
	if err != nil {
		return nil, err
	}
	expected, err := standardize(d.sample.Sorted())
	if err != nil {
		return nil, err
	}

	statistic := 0.0
	for i := range obs {
		if expected[i] == 0 {
			return nil, fmt.Errorf("zero expected bin %d: %w", i, ErrChiSquare)
		}
		diff := obs[i] - expected[i]
		statistic += diff * diff / expected[i]
	}
	if math.IsNaN(statistic) || math.IsInf(statistic, 0) {
		return nil, fmt.Errorf("statistic is not finite: %w", ErrChiSquare)
	}

	df := d.sample.Len() - 1
	return &ChiSquareTestResult{
		Statistic: statistic,
		P:         distuv.ChiSquared{K: float64(df)}.Survival(statistic),
		DF:        df,
	}, nil
}

// LastChiSquare returns the most recent Chi-square outcome: the
// result when the test computed, or the diagnostic error when it was
// inconclusive.
func (d *Dist) LastChiSquare() (*ChiSquareTestResult, error) {
	return d.lastChi, d.lastChiErr
}

// standardize shifts and scales xs to zero mean and unit variance.
// A constant sequence cannot be standardized.
func standardize(xs []float64) ([]float64, error) {
	mean := stat.Mean(xs, nil)
	sd := stat.PopStdDev(xs, nil)
	if sd == 0 {
		return nil, fmt.Errorf("constant sequence: %w", ErrChiSquare)
	}
	out := make([]float64, len(xs))
	for i, x := range xs {
		out[i] = (x - mean) / sd
	}
	return out, nil
}
