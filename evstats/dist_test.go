// Copyright 2025 The go-evstats Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package evstats

import (
	"errors"
	"math"
	"testing"
)

var roundTripCases = []struct {
	name   string
	family Family
	p      Parameters
}{
	{"gumbel", Gumbel, Parameters{Loc: 100, Scale: 20}},
	{"gev frechet", GEV, Parameters{Loc: 50, Scale: 10, Shape: -0.3}},
	{"gev gumbel limit", GEV, Parameters{Loc: 50, Scale: 10}},
	{"gev weibull", GEV, Parameters{Loc: 50, Scale: 10, Shape: 0.25}},
	{"exponential", Exponential, Parameters{Loc: 5, Scale: 3}},
	{"normal", Normal, Parameters{Loc: 0, Scale: 1}},
}

func TestQuantileRoundTrip(t *testing.T) {
	fs := []float64{0.01, 0.1, 0.5, 0.9, 0.99, 0.999}
	for _, c := range roundTripCases {
		t.Run(c.name, func(t *testing.T) {
			xs, err := c.family.Quantile(c.p, fs)
			if err != nil {
				t.Fatal(err)
			}
			back, err := c.family.CDF(c.p, xs)
			if err != nil {
				t.Fatal(err)
			}
			for i := range fs {
				if !aeq(fs[i], back[i]) {
					t.Errorf("F = %v: quantile %v maps back to %v", fs[i], xs[i], back[i])
				}
			}
			// Quantiles must increase with F.
			for i := 1; i < len(xs); i++ {
				if xs[i-1] >= xs[i] {
					t.Errorf("quantiles not increasing: %v", xs)
				}
			}
		})
	}
}

func TestQuantileUpperEndpoint(t *testing.T) {
	// F = 1 is the upper endpoint: finite only for the bounded
	// Weibull-type GEV.
	q, err := Gumbel.Quantile(Parameters{Loc: 0, Scale: 1}, []float64{1})
	if err != nil || !math.IsInf(q[0], 1) {
		t.Errorf("gumbel: want +Inf, got %v, %v", q, err)
	}
	q, err = GEV.Quantile(Parameters{Loc: 10, Scale: 2, Shape: 0.5}, []float64{1})
	if err != nil || !aeq(14, q[0]) {
		t.Errorf("bounded gev: want loc+scale/shape = 14, got %v, %v", q, err)
	}
	q, err = GEV.Quantile(Parameters{Loc: 10, Scale: 2, Shape: -0.5}, []float64{1})
	if err != nil || !math.IsInf(q[0], 1) {
		t.Errorf("heavy gev: want +Inf, got %v, %v", q, err)
	}
	q, err = Normal.Quantile(Parameters{Loc: 0, Scale: 1}, []float64{1})
	if err != nil || !math.IsInf(q[0], 1) {
		t.Errorf("normal: want +Inf, got %v, %v", q, err)
	}
}

func TestGEVGumbelLimit(t *testing.T) {
	// As shape approaches zero the GEV converges to the Gumbel with
	// the same loc and scale.
	p := Parameters{Loc: 100, Scale: 20}
	fs := []float64{0.1, 0.5, 0.9, 0.99}
	want, err := Gumbel.Quantile(p, fs)
	if err != nil {
		t.Fatal(err)
	}
	got, err := GEV.Quantile(Parameters{Loc: 100, Scale: 20, Shape: 1e-8}, fs)
	if err != nil {
		t.Fatal(err)
	}
	for i := range fs {
		if !aeq(want[i], got[i]) {
			t.Errorf("F = %v: gumbel %v, gev %v", fs[i], want[i], got[i])
		}
	}
}

func TestParameterValidation(t *testing.T) {
	for _, c := range roundTripCases {
		bad := c.p
		bad.Scale = 0
		if _, err := c.family.PDF(bad, []float64{1}); !errors.Is(err, ErrInvalidParameter) {
			t.Errorf("%s: zero scale pdf: want ErrInvalidParameter, got %v", c.name, err)
		}
		bad.Scale = -1
		if _, err := c.family.CDF(bad, []float64{1}); !errors.Is(err, ErrInvalidParameter) {
			t.Errorf("%s: negative scale cdf: want ErrInvalidParameter, got %v", c.name, err)
		}
		if _, err := c.family.Quantile(c.p, []float64{0}); !errors.Is(err, ErrInvalidParameter) {
			t.Errorf("%s: F = 0: want ErrInvalidParameter, got %v", c.name, err)
		}
		if _, err := c.family.Quantile(c.p, []float64{1.5}); !errors.Is(err, ErrInvalidParameter) {
			t.Errorf("%s: F > 1: want ErrInvalidParameter, got %v", c.name, err)
		}
	}

	// The exponential location is a truncation threshold and must be
	// positive everywhere.
	bad := Parameters{Loc: -1, Scale: 2}
	if _, err := Exponential.PDF(bad, []float64{1}); !errors.Is(err, ErrInvalidParameter) {
		t.Errorf("negative exponential loc: want ErrInvalidParameter, got %v", err)
	}
	// The normal location is unconstrained.
	if _, err := Normal.PDF(Parameters{Loc: -1, Scale: 2}, []float64{1}); err != nil {
		t.Errorf("negative normal loc: %v", err)
	}
}

func TestNewRejectsEmpty(t *testing.T) {
	if _, err := New(Gumbel, nil); !errors.Is(err, ErrSampleSize) {
		t.Errorf("want ErrSampleSize, got %v", err)
	}
}

func TestUnfittedOperations(t *testing.T) {
	d, err := New(Gumbel, []float64{1, 2, 3})
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := d.Params(); ok {
		t.Error("unfitted distribution reports parameters")
	}
	if _, err := d.PDF(); !errors.Is(err, ErrNotFit) {
		t.Errorf("PDF: want ErrNotFit, got %v", err)
	}
	if _, err := d.CDF(); !errors.Is(err, ErrNotFit) {
		t.Errorf("CDF: want ErrNotFit, got %v", err)
	}
	if _, err := d.Quantile([]float64{0.5}); !errors.Is(err, ErrNotFit) {
		t.Errorf("Quantile: want ErrNotFit, got %v", err)
	}
	if _, err := d.ReturnPeriods([]float64{2}); !errors.Is(err, ErrNotFit) {
		t.Errorf("ReturnPeriods: want ErrNotFit, got %v", err)
	}
	if _, _, err := d.ConfidenceInterval([]float64{0.5}, 0.1); !errors.Is(err, ErrNotFit) {
		t.Errorf("ConfidenceInterval: want ErrNotFit, got %v", err)
	}
	if _, err := d.FittedCurve(); !errors.Is(err, ErrNotFit) {
		t.Errorf("FittedCurve: want ErrNotFit, got %v", err)
	}
}

func TestNewFitted(t *testing.T) {
	p := Parameters{Loc: 100, Scale: 20}
	d, err := NewFitted(Gumbel, syntheticSample(Gumbel, p, 10), p)
	if err != nil {
		t.Fatal(err)
	}
	got, ok := d.Params()
	if !ok || got != p {
		t.Fatalf("want %v, got %v (ok %v)", p, got, ok)
	}
	// The fitted return period of the median is 2.
	q, err := d.Quantile([]float64{0.5})
	if err != nil {
		t.Fatal(err)
	}
	ts, err := d.ReturnPeriods(q)
	if err != nil || !aeq(2, ts[0]) {
		t.Errorf("want return period 2, got %v, %v", ts, err)
	}
}

func TestFittedCurve(t *testing.T) {
	p := Parameters{Loc: 100, Scale: 20}
	d, err := NewFitted(Gumbel, syntheticSample(Gumbel, p, 25), p)
	if err != nil {
		t.Fatal(err)
	}
	c, err := d.FittedCurve()
	if err != nil {
		t.Fatal(err)
	}
	if len(c.Xs) != curvePoints || len(c.PDF) != curvePoints || len(c.CDF) != curvePoints {
		t.Fatalf("got %d/%d/%d points", len(c.Xs), len(c.PDF), len(c.CDF))
	}
	if !aeq(d.Sample().Min(), c.Xs[0]) || !aeq(curveExtent*d.Sample().Max(), c.Xs[len(c.Xs)-1]) {
		t.Errorf("range [%v, %v], sample [%v, %v]", c.Xs[0], c.Xs[len(c.Xs)-1], d.Sample().Min(), d.Sample().Max())
	}
	for i := 1; i < len(c.CDF); i++ {
		if c.CDF[i-1] > c.CDF[i] {
			t.Fatalf("cdf decreases at point %d", i)
		}
	}
}
