// Package scores: input validation shared by every loss. Shape checks
// run before any arithmetic so partial results never leak.

package scores

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// validateLogProbs checks that lp is a non-empty N×K natural-log
// probability matrix: K ≥ 2, no NaN/+Inf entries (-Inf is a legal zero
// probability), each exponentiated row summing to 1 within
// DistributionTol. Returns (N, K).
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
		if math.Abs(sum-1) > DistributionTol {
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
