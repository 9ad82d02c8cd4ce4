// Package scores: options and function types shared by the loss family.
package scores

import "gonum.org/v1/gonum/mat"

// DistributionTol is the absolute tolerance for the exponentiated
// row-sum check on log-probability inputs.
const DistributionTol = 1e-6

// Options configures the prior-aware losses (LogLoss, Brier and their
// per-class decompositions).
//
// Fields:
//   - Normalize — divide by the loss of the frozen-prior classifier.
//     A normalized score of 1.0 means "no better than the prior".
//   - Prior     — optional external target prior (length K, sums to 1).
//     When set, samples are reweighted so the score reflects this
//     distribution instead of the empirical one.
//
// Example:
//
//	opts := scores.DefaultOptions()
//	opts.Prior = []float64{0.9, 0.1}
//	nll, err := scores.LogLoss(logProbs, labels, &opts)
type Options struct {
	Normalize bool
	Prior     []float64
}

// DefaultOptions returns the documented defaults: normalized score,
// empirical prior.
func DefaultOptions() Options {
	return Options{Normalize: true}
}

// CostOptions configures CostFunction.
//
// Fields:
//   - Cost      — K×K cost matrix; entry (i,j) is the cost of deciding
//     class i when the truth is j. Nil selects the 0/1 matrix.
//   - Normalize — divide by the cost of always deciding from the
//     empirical prior alone.
type CostOptions struct {
	Cost      *mat.Dense
	Normalize bool
}

// DefaultCostOptions returns the documented defaults: 0/1 costs,
// normalized score.
func DefaultCostOptions() CostOptions {
	return CostOptions{Normalize: true}
}

// LossFunc is a scalar loss over log-probabilities and labels.
type LossFunc func(logProbs *mat.Dense, labels []int) (float64, error)

// ClassLossFunc is a loss decomposed into one contribution per class;
// the contributions sum to the corresponding scalar loss. LogLossByClass
// and BrierByClass provide such decompositions for use with Shift.
type ClassLossFunc func(logProbs *mat.Dense, labels []int) ([]float64, error)
