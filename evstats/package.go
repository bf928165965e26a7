// Copyright 2025 The go-evstats Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package evstats fits extreme-value and related distributions to observed
// series, typically annual maximum series in hydrology.
//
// The package covers four families (Gumbel, generalized extreme value,
// shifted exponential, and normal), four estimation methods (maximum
// likelihood, method of moments, L-moments, and threshold-truncated
// likelihood optimization), Kolmogorov-Smirnov and Chi-square
// goodness-of-fit tests, and confidence intervals around the fitted
// quantile curve, either closed form (Gumbel) or by parametric
// bootstrap.
package evstats // import "github.com/evhydro/go-evstats/evstats"

import "math"

var inf = math.Inf(1)
var nan = math.NaN()

// eulerGamma is the Euler-Mascheroni constant, the mean of the
// standard Gumbel distribution.
const eulerGamma = 0.5772156649015329

// gumbelSkew is the skewness of every Gumbel distribution and the
// shape->0 limit of the GEV skewness.
const gumbelSkew = 1.1395470994046486
