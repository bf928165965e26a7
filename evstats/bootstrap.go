// Copyright 2025 The go-evstats Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package evstats

import (
	"fmt"
	"math/rand"
	"runtime"
	"time"

	"github.com/montanaflynn/stats"
	"golang.org/x/sync/errgroup"
)

// A StatisticFunc computes one bootstrap iteration's statistic vector
// from a synthetic resample. Every invocation must return the same
// vector length, and the final m entries must be the quantile
// estimates for the m requested probabilities; leading entries (the
// default statistic emits the refit parameters there) ride along in
// BootstrapResult.Draws.
type StatisticFunc func(synthetic []float64) ([]float64, error)

// Bootstrap configures the parametric bootstrap confidence-interval
// engine. The zero value gives 100 resamples, L-moments refitting,
// alpha = 0.1, and one worker per CPU.
//
// Each iteration draws len(sample) i.i.d. uniforms, maps them through
// the fitted quantile function into a synthetic series, refits that
// series, and evaluates the refit quantile function at the target
// probabilities. Bounds are the empirical alpha/2 and 1-alpha/2
// percentiles across iterations, taken per probability.
type Bootstrap struct {
	// Samples is the number of bootstrap iterations.
	Samples int

	// Method refits each synthetic resample; goodness-of-fit
	// tests are suppressed during refitting.
	Method Method

	// Alpha sets the two-sided confidence level 1-Alpha.
	Alpha float64

	// Workers bounds the number of concurrent iterations.
	// Iterations are independent; each uses its own random source
	// seeded from a master stream derived from Seed, so results do
	// not depend on Workers.
	Workers int

	// Seed seeds the uniform draws. Zero means a time-based seed.
	Seed int64

	// Statistic overrides the per-iteration statistic.
	Statistic StatisticFunc
}

// A BootstrapResult holds per-probability quantile bounds and the raw
// per-iteration statistic vectors that produced them.
type BootstrapResult struct {
	// Lower and Upper have one entry per requested probability,
	// with Lower[i] <= Upper[i].
	Lower, Upper []float64

	// Draws holds each iteration's statistic vector. With the
	// default statistic a row is the refit loc, scale (and shape
	// for GEV) followed by the quantile estimates.
	Draws [][]float64
}

// ConfidenceInterval runs the bootstrap for the fitted distribution d
// at the non-exceedance probabilities fs.
func (b Bootstrap) ConfidenceInterval(d *Dist, fs []float64) (*BootstrapResult, error) {
	fitted, ok := d.Params()
	if !ok {
		return nil, ErrNotFit
	}
	if err := checkProbs(fs); err != nil {
		return nil, err
	}
	if b.Samples <= 0 {
		b.Samples = 100
	}
	if b.Method == "" {
		b.Method = MethodLMoments
	}
	if b.Alpha <= 0 {
		b.Alpha = 0.1
	}
	if b.Workers <= 0 {
		b.Workers = runtime.GOMAXPROCS(0)
	}
	if b.Seed == 0 {
		b.Seed = time.Now().UnixNano()
	}
	statistic := b.Statistic
	if statistic == nil {
		statistic = refitStatistic(d.family, b.Method, fs)
	}

	n := d.sample.Len()
	// Iteration seeds come from one master stream rather than
	// Seed+i: consecutive master seeds would otherwise share all but
	// one of their iteration streams.
	seeds := make([]int64, b.Samples)
	seeder := rand.New(rand.NewSource(b.Seed))
	for i := range seeds {
		seeds[i] = seeder.Int63()
	}
	draws := make([][]float64, b.Samples)
	var g errgroup.Group
	g.SetLimit(b.Workers)
	for i := range draws {
		i := i
		g.Go(func() error {
			rng := rand.New(rand.NewSource(seeds[i]))
			us := make([]float64, n)
			for j := range us {
				u := rng.Float64()
				for u == 0 {
					u = rng.Float64()
				}
				us[j] = u
			}
			synthetic, err := d.family.Quantile(fitted, us)
			if err != nil {
				return err
			}
			row, err := statistic(synthetic)
			if err != nil {
				return fmt.Errorf("bootstrap iteration %d: %w", i, err)
			}
			if len(row) < len(fs) {
				return fmt.Errorf("bootstrap iteration %d: statistic returned %d values, need at least %d", i, len(row), len(fs))
			}
			draws[i] = row
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	rowLen := len(draws[0])
	for i, row := range draws[1:] {
		if len(row) != rowLen {
			return nil, fmt.Errorf("bootstrap statistic returned %d values at iteration %d and %d at iteration 0", len(row), i+1, rowLen)
		}
	}

	res := &BootstrapResult{
		Lower: make([]float64, len(fs)),
		Upper: make([]float64, len(fs)),
		Draws: draws,
	}
	offset := rowLen - len(fs)
	column := make([]float64, b.Samples)
	for j := range fs {
		for i, row := range draws {
			column[i] = row[offset+j]
		}
		lo, err := stats.Percentile(column, 100*b.Alpha/2)
		if err != nil {
			return nil, err
		}
		hi, err := stats.Percentile(column, 100*(1-b.Alpha/2))
		if err != nil {
			return nil, err
		}
		res.Lower[j], res.Upper[j] = lo, hi
	}
	return res, nil
}

// refitStatistic is the default per-iteration statistic: refit the
// synthetic series with the requested method and evaluate its
// quantile function at fs, emitting (params..., quantiles...).
func refitStatistic(f Family, method Method, fs []float64) StatisticFunc {
	return func(synthetic []float64) ([]float64, error) {
		nd, err := New(f, synthetic)
		if err != nil {
			return nil, err
		}
		refit, err := nd.Fit(method, &FitOptions{SkipTests: true})
		if err != nil {
			return nil, err
		}
		qs, err := f.Quantile(refit, fs)
		if err != nil {
			return nil, err
		}
		return append(refit.vector(f.NumParams()), qs...), nil
	}
}
