package prior

import (
	"errors"
	"math"

	"gonum.org/v1/gonum/floats"
)

// DistributionTol is the absolute tolerance used when checking that a
// supplied prior vector sums to 1.
const DistributionTol = 1e-6

var (
	// ErrEmptyLabels indicates an empty label vector.
	ErrEmptyLabels = errors.New("prior: label vector must be non-empty")

	// ErrTooFewClasses indicates a class count below 2.
	ErrTooFewClasses = errors.New("prior: need at least 2 classes")

	// ErrLabelOutOfRange indicates a label outside [0, k).
	ErrLabelOutOfRange = errors.New("prior: label out of range")

	// ErrDimensionMismatch indicates an external prior whose length
	// differs from the class count.
	ErrDimensionMismatch = errors.New("prior: prior length mismatch")

	// ErrNotDistribution indicates an external prior with negative,
	// non-finite entries or a sum away from 1.
	ErrNotDistribution = errors.New("prior: prior is not a distribution")
)

// Weights is the per-sample reweighting attached to a target prior.
// The zero value is the uniform weighting (every sample weighs 1);
// a materialized vector is used only when a target prior was supplied.
type Weights struct {
	perSample []float64 // nil ⇒ uniform
}

// Uniform reports whether every sample carries weight 1.
func (w Weights) Uniform() bool { return w.perSample == nil }

// Len returns the number of per-sample weights, or 0 for the uniform case.
func (w Weights) Len() int { return len(w.perSample) }

// At returns the weight of sample i. For the uniform case it is 1 for
// any index.
func (w Weights) At(i int) float64 {
	if w.perSample == nil {
		return 1
	}

	return w.perSample[i]
}

// IsFinite reports whether all weights are finite. A +Inf weight is
// produced when the target prior puts mass on a class the data never
// shows; consumers must treat it as fatal for the computation.
func (w Weights) IsFinite() bool {
	for _, v := range w.perSample {
		if math.IsInf(v, 0) || math.IsNaN(v) {
			return false
		}
	}

	return true
}

// Empirical computes the empirical class prior count(class)/N from a
// label vector over k classes.
//
// Errors:
//   - ErrEmptyLabels       — labels is empty.
//   - ErrTooFewClasses     — k < 2.
//   - ErrLabelOutOfRange   — any label outside [0, k).
func Empirical(labels []int, k int) ([]float64, error) {
	if k < 2 {
		return nil, ErrTooFewClasses
	}
	if len(labels) == 0 {
		return nil, ErrEmptyLabels
	}

	counts := make([]float64, k)
	for _, y := range labels {
		if y < 0 || y >= k {
			return nil, ErrLabelOutOfRange
		}
		counts[y]++
	}
	floats.Scale(1/float64(len(labels)), counts)

	return counts, nil
}

// PriorsAndWeights returns the effective prior and the per-sample
// weights to score labels under it.
//
// With external == nil the effective prior is the empirical one and
// the weighting is uniform. Otherwise the effective prior is the
// external target and weight[i] = external[labels[i]] / empirical[labels[i]],
// with the zero-numerator and zero-denominator policies documented on
// the package.
//
// The returned prior slice is a copy; mutating it does not affect the
// caller's input.
func PriorsAndWeights(labels []int, k int, external []float64) ([]float64, Weights, error) {
	empirical, err := Empirical(labels, k)
	if err != nil {
		return nil, Weights{}, err
	}
	if external == nil {
		return empirical, Weights{}, nil
	}
	if len(external) != k {
		return nil, Weights{}, ErrDimensionMismatch
	}
	if err = validateDistribution(external); err != nil {
		return nil, Weights{}, err
	}

	w := make([]float64, len(labels))
	for i, y := range labels {
		switch {
		case external[y] == 0:
			// Zero target mass wins over a zero empirical count: the
			// sample is excluded from the reweighted metric outright.
			w[i] = 0
		case empirical[y] == 0:
			w[i] = math.Inf(1)
		default:
			w[i] = external[y] / empirical[y]
		}
	}

	target := make([]float64, k)
	copy(target, external)

	return target, Weights{perSample: w}, nil
}

// validateDistribution checks that p has finite non-negative entries
// summing to 1 within DistributionTol.
func validateDistribution(p []float64) error {
	for _, v := range p {
		if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
			return ErrNotDistribution
		}
	}
	if math.Abs(floats.Sum(p)-1) > DistributionTol {
		return ErrNotDistribution
	}

	return nil
}
