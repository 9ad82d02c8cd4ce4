// Package ece: input validation. Mirrors the scores package checks but
// keeps its own sentinels so callers always match errors from the
// package they called.

package ece

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// distributionTol is the absolute tolerance for the exponentiated
// row-sum check.
const distributionTol = 1e-6

// resolve applies option defaults: nil options and Bins==0 select the
// documented defaults; a negative bin count is rejected.
func resolve(opts *Options) (Options, error) {
	o := DefaultOptions()
	if opts != nil {
		o = *opts
	}
	if o.Bins == 0 {
		o.Bins = DefaultBins
	}
	if o.Bins < 0 {
		return Options{}, ErrBadBinCount
	}

	return o, nil
}

// validateLogProbs checks that lp is a non-empty N×K natural-log
// probability matrix (K ≥ 2, no NaN/+Inf, rows exponentiating to 1
// within tolerance) and returns (N, K).
func validateLogProbs(lp *mat.Dense) (int, int, error) {
	if lp == nil {
		return 0, 0, ErrNilInput
	}
	n, k := lp.Dims()
	if n == 0 {
		return 0, 0, ErrEmptyInput
	}
	if k < 2 {
		return 0, 0, ErrTooFewClasses
	}
	for i := 0; i < n; i++ {
		var sum float64
		for j := 0; j < k; j++ {
			v := lp.At(i, j)
			if math.IsNaN(v) || math.IsInf(v, 1) {
				return 0, 0, ErrNotDistribution
			}
			sum += math.Exp(v)
		}
		if math.Abs(sum-1) > distributionTol {
			return 0, 0, ErrNotDistribution
		}
	}

	return n, k, nil
}

// validateLabels checks length and the [0, K) range.
func validateLabels(labels []int, n, k int) error {
	if len(labels) != n {
		return ErrDimensionMismatch
	}
	for _, y := range labels {
		if y < 0 || y >= k {
			return ErrLabelOutOfRange
		}
	}

	return nil
}
