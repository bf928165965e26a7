// Copyright 2025 The go-evstats Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// evfit reads newline-separated numbers from stdin, fits a
// distribution to them, and describes the fit: parameters, goodness
// of fit, and quantiles with confidence bounds at standard return
// periods.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/evhydro/go-evstats/evstats"
)

var families = map[string]evstats.Family{
	"gumbel":      evstats.Gumbel,
	"gev":         evstats.GEV,
	"exponential": evstats.Exponential,
	"normal":      evstats.Normal,
}

func main() {
	family := flag.String("dist", "gumbel", "distribution family: gumbel, gev, exponential or normal")
	method := flag.String("method", "lmoments", "estimation method: mle, mm or lmoments")
	alpha := flag.Float64("alpha", 0.1, "two-sided significance level for confidence bounds")
	periods := flag.String("T", "2,5,10,25,50,100", "comma-separated return periods")
	flag.Parse()

	f, ok := families[strings.ToLower(*family)]
	if !ok {
		fmt.Fprintf(os.Stderr, "unknown distribution %q\n", *family)
		os.Exit(2)
	}

	xs := readInput(os.Stdin)
	d, err := evstats.New(f, xs)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	params, err := d.Fit(evstats.Method(*method), nil)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	fmt.Printf("%s fit (%s): %v\n", f.Name(), *method, params)

	if ks, ok := d.LastKS(); ok {
		verdict := "reject"
		if ks.Accept {
			verdict = "accept"
		}
		fmt.Printf("KS: D %.6g  p %.6g  critical %.6g  (%s)\n",
			ks.Statistic, ks.P, ks.Critical, verdict)
	}
	if chi, err := d.LastChiSquare(); err != nil {
		fmt.Printf("chi-square: inconclusive (%v)\n", err)
	} else if chi != nil {
		fmt.Printf("chi-square: stat %.6g  p %.6g  df %d\n", chi.Statistic, chi.P, chi.DF)
	}
	fmt.Println()

	ts := parsePeriods(*periods)
	fs := make([]float64, len(ts))
	for i, t := range ts {
		fs[i] = 1 - 1/t
	}
	qs, err := d.Quantile(fs)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	lower, upper, err := d.ConfidenceInterval(fs, *alpha)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	fmt.Printf("%8s %12s %12s %12s\n", "T", "quantile", "lower", "upper")
	for i, t := range ts {
		fmt.Printf("%8.4g %12.6g %12.6g %12.6g\n", t, qs[i], lower[i], upper[i])
	}
}

func parsePeriods(s string) []float64 {
	var ts []float64
	for _, field := range strings.Split(s, ",") {
		t, err := strconv.ParseFloat(strings.TrimSpace(field), 64)
		if err != nil || t <= 1 {
			fmt.Fprintf(os.Stderr, "bad return period %q\n", field)
			os.Exit(2)
		}
		ts = append(ts, t)
	}
	return ts
}

func readInput(r io.Reader) (xs []float64) {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		l := strings.TrimSpace(scanner.Text())
		if l == "" {
			continue
		}
		value, err := strconv.ParseFloat(l, 64)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		xs = append(xs, value)
	}
	if err := scanner.Err(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	return
}
