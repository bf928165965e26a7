// Copyright 2025 The go-evstats Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package evstats

import (
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fittedGEV(t *testing.T) *Dist {
	t.Helper()
	data := syntheticSample(GEV, Parameters{Loc: 50, Scale: 10, Shape: -0.1}, 30)
	d, err := New(GEV, data)
	require.NoError(t, err)
	_, err = d.Fit(MethodLMoments, nil)
	require.NoError(t, err)
	return d
}

func TestBootstrapConfidenceInterval(t *testing.T) {
	d := fittedGEV(t)
	fs := []float64{0.5, 0.9, 0.99}
	res, err := Bootstrap{Samples: 50, Seed: 1}.ConfidenceInterval(d, fs)
	require.NoError(t, err)

	require.Len(t, res.Lower, len(fs))
	require.Len(t, res.Upper, len(fs))
	require.Len(t, res.Draws, 50)
	// The default statistic emits the refit parameters ahead of the
	// quantiles.
	assert.Len(t, res.Draws[0], GEV.NumParams()+len(fs))

	q, err := d.Quantile(fs)
	require.NoError(t, err)
	for i := range fs {
		assert.LessOrEqual(t, res.Lower[i], res.Upper[i], "F = %v", fs[i])
		// The point estimate sits inside its own bootstrap band.
		assert.Greater(t, q[i], res.Lower[i], "F = %v", fs[i])
		assert.Less(t, q[i], res.Upper[i], "F = %v", fs[i])
	}
}

func TestBootstrapDeterminism(t *testing.T) {
	d := fittedGEV(t)
	fs := []float64{0.5, 0.95}
	// Iterations own their random streams, so the worker count must
	// not change the result.
	a, err := Bootstrap{Samples: 40, Seed: 7, Workers: 1}.ConfidenceInterval(d, fs)
	require.NoError(t, err)
	b, err := Bootstrap{Samples: 40, Seed: 7, Workers: 8}.ConfidenceInterval(d, fs)
	require.NoError(t, err)
	assert.Equal(t, a.Lower, b.Lower)
	assert.Equal(t, a.Upper, b.Upper)

	c, err := Bootstrap{Samples: 40, Seed: 8}.ConfidenceInterval(d, fs)
	require.NoError(t, err)
	assert.NotEqual(t, a.Lower, c.Lower)
}

func TestBootstrapCustomStatistic(t *testing.T) {
	d := fittedGEV(t)
	fs := []float64{0.5}
	res, err := Bootstrap{
		Samples: 20,
		Seed:    3,
		Statistic: func(synthetic []float64) ([]float64, error) {
			// Median of the resample instead of a refit quantile.
			s := NewSample(synthetic)
			return []float64{s.Sorted()[len(synthetic)/2]}, nil
		},
	}.ConfidenceInterval(d, fs)
	require.NoError(t, err)
	require.Len(t, res.Draws, 20)
	assert.Len(t, res.Draws[0], 1)
	assert.LessOrEqual(t, res.Lower[0], res.Upper[0])
}

func TestBootstrapRaggedStatistic(t *testing.T) {
	// A statistic whose vector length varies across iterations is a
	// caller bug; it must come back as an error, not a panic during
	// aggregation.
	d := fittedGEV(t)
	var calls atomic.Int64
	_, err := Bootstrap{
		Samples: 10,
		Seed:    5,
		Statistic: func(synthetic []float64) ([]float64, error) {
			if calls.Add(1) == 1 {
				return []float64{1, 2}, nil
			}
			return []float64{1}, nil
		},
	}.ConfidenceInterval(d, []float64{0.5})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "bootstrap statistic")
}

func TestBootstrapErrors(t *testing.T) {
	unfitted, err := New(GEV, []float64{1, 2, 3})
	require.NoError(t, err)
	_, err = Bootstrap{}.ConfidenceInterval(unfitted, []float64{0.5})
	assert.ErrorIs(t, err, ErrNotFit)

	d := fittedGEV(t)
	_, err = Bootstrap{}.ConfidenceInterval(d, []float64{0})
	assert.ErrorIs(t, err, ErrInvalidParameter)
}

func TestGumbelConfidenceInterval(t *testing.T) {
	p := Parameters{Loc: 100, Scale: 20}
	n := 40
	fs := []float64{0.5, 0.9, 0.99, 0.999}
	lower, upper, err := GumbelConfidenceInterval(p, n, fs, 0.1)
	require.NoError(t, err)

	q, err := Gumbel.Quantile(p, fs)
	require.NoError(t, err)
	for i := range fs {
		assert.Less(t, lower[i], q[i], "F = %v", fs[i])
		assert.Greater(t, upper[i], q[i], "F = %v", fs[i])
	}
	// The band widens toward the upper tail.
	for i := 1; i < len(fs); i++ {
		assert.Greater(t, upper[i]-lower[i], upper[i-1]-lower[i-1])
	}
	// A smaller alpha widens the band everywhere.
	lo99, hi99, err := GumbelConfidenceInterval(p, n, fs, 0.01)
	require.NoError(t, err)
	for i := range fs {
		assert.Less(t, lo99[i], lower[i])
		assert.Greater(t, hi99[i], upper[i])
	}
}

func TestConfidenceIntervalDispatch(t *testing.T) {
	// Gumbel instances use the closed form; the result must match
	// calling it directly.
	data := syntheticSample(Gumbel, Parameters{Loc: 100, Scale: 20}, 30)
	d, err := New(Gumbel, data)
	require.NoError(t, err)
	p, err := d.Fit(MethodLMoments, nil)
	require.NoError(t, err)

	fs := []float64{0.5, 0.99}
	lower, upper, err := d.ConfidenceInterval(fs, 0.1)
	require.NoError(t, err)
	wantLo, wantHi, err := GumbelConfidenceInterval(p, d.Sample().Len(), fs, 0.1)
	require.NoError(t, err)
	assert.Equal(t, wantLo, lower)
	assert.Equal(t, wantHi, upper)
}
