// Copyright 2025 The go-evstats Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package evstats

import "errors"

var (
	// ErrSampleSize is returned when an operation needs a
	// non-empty sample.
	ErrSampleSize = errors.New("sample is empty")

	// ErrInvalidParameter is returned when a parameter set
	// violates a family's validity rules (scale <= 0, a
	// non-positive exponential location) or when a probability
	// passed to a quantile function lies outside (0, 1].
	ErrInvalidParameter = errors.New("invalid distribution parameter")

	// ErrInvalidMethod is returned for an unrecognized estimation
	// method name.
	ErrInvalidMethod = errors.New("invalid estimation method")

	// ErrMissingArgument is returned when the optimization method
	// is invoked without an objective function or a threshold.
	ErrMissingArgument = errors.New("missing argument")

	// ErrNotFit is returned when goodness of fit or a confidence
	// interval is requested before parameters exist.
	ErrNotFit = errors.New("distribution has no fitted parameters")

	// ErrChiSquare is returned when the Chi-square statistic
	// cannot be computed, typically because standardization
	// produced a degenerate expected bin. It marks the test as
	// inconclusive rather than failed.
	ErrChiSquare = errors.New("chi-square test could not be computed")
)
