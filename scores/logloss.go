package scores

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/calmetrics/prior"
)

// LogLoss — weighted negative log-likelihood.
//
// Description:
//
//	The loss on each sample is -log p(y_i), weighted by the ratio of the
//	target prior to the empirical class frequency (weight 1 when no
//	target prior is supplied). With Normalize the mean is divided by the
//	loss of a classifier that always outputs the effective prior, so
//	1.0 reads "no better than guessing the prior".
//
// Masking invariant: a weight of exactly 0 removes the sample from the
// mean before its (possibly -Inf) log-probability is touched.
//
// Errors:
//   - ErrNilInput / ErrEmptyInput / ErrTooFewClasses / ErrNotDistribution
//   - ErrDimensionMismatch / ErrLabelOutOfRange
//   - ErrUnobservedClass    — non-finite reweighting weight.
//   - ErrDegenerateBaseline — the prior classifier scores exactly 0.
//   - prior.* sentinels for an invalid Options.Prior.
//
// Complexity: O(N·K) validation + O(N) scoring.
func LogLoss(logProbs *mat.Dense, labels []int, opts *Options) (float64, error) {
	o := DefaultOptions()
	if opts != nil {
		o = *opts
	}

	n, k, err := validateLogProbs(logProbs)
	if err != nil {
		return 0, err
	}
	if err = validateLabels(labels, n, k); err != nil {
		return 0, err
	}

	priors, w, err := prior.PriorsAndWeights(labels, k, o.Prior)
	if err != nil {
		return 0, err
	}
	if !w.IsFinite() {
		return 0, ErrUnobservedClass
	}

	score := weightedNLLMean(func(i int) float64 { return logProbs.At(i, labels[i]) }, w, n)
	if !o.Normalize {
		return score, nil
	}

	base := priorLogLoss(priors, labels, w, n)
	if base == 0 {
		return 0, ErrDegenerateBaseline
	}

	return score / base, nil
}

// LogLossByClass decomposes LogLoss into one contribution per class:
// entry k holds the (normalized, weighted) mean loss restricted to
// samples whose true class is k, so the entries sum to the scalar
// LogLoss value. Intended for Shift.
func LogLossByClass(logProbs *mat.Dense, labels []int, opts *Options) ([]float64, error) {
	o := DefaultOptions()
	if opts != nil {
		o = *opts
	}

	n, k, err := validateLogProbs(logProbs)
	if err != nil {
		return nil, err
	}
	if err = validateLabels(labels, n, k); err != nil {
		return nil, err
	}

	priors, w, err := prior.PriorsAndWeights(labels, k, o.Prior)
	if err != nil {
		return nil, err
	}
	if !w.IsFinite() {
		return nil, ErrUnobservedClass
	}

	out := make([]float64, k)
	for i := 0; i < n; i++ {
		wi := w.At(i)
		if wi == 0 {
			continue
		}
		out[labels[i]] += wi * -logProbs.At(i, labels[i])
	}
	floats.Scale(1/float64(n), out)

	if o.Normalize {
		base := priorLogLoss(priors, labels, w, n)
		if base == 0 {
			return nil, ErrDegenerateBaseline
		}
		floats.Scale(1/base, out)
	}

	return out, nil
}

// weightedNLLMean averages w_i * -logAt(i) over n samples, skipping
// weight-0 samples entirely (the documented masking).
func weightedNLLMean(logAt func(i int) float64, w prior.Weights, n int) float64 {
	var sum float64
	for i := 0; i < n; i++ {
		wi := w.At(i)
		if wi == 0 {
			continue
		}
		sum += wi * -logAt(i)
	}

	return sum / float64(n)
}

// priorLogLoss scores the frozen-prior classifier with the same
// accumulation as the real score, so that identical inputs produce a
// bit-identical baseline (normalized score exactly 1.0).
func priorLogLoss(priors []float64, labels []int, w prior.Weights, n int) float64 {
	logPrior := make([]float64, len(priors))
	for j, p := range priors {
		logPrior[j] = math.Log(p)
	}

	return weightedNLLMean(func(i int) float64 { return logPrior[labels[i]] }, w, n)
}
