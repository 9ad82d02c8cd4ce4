package scores

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/calmetrics/prior"
)

// Brier — weighted mean squared error against one-hot labels.
//
// Description:
//
//	Each sample contributes w_i · Σ_j (1[y_i=j] − p_ij)², and the total
//	is averaged over all N·K entries (the flat mean, not the per-sample
//	mean). Weighting and normalization follow the same contract as
//	LogLoss: weights come from the target/empirical prior ratio and
//	Normalize divides by the frozen-prior classifier.
//
// Errors: same set as LogLoss.
//
// Complexity: O(N·K).
func Brier(logProbs *mat.Dense, labels []int, opts *Options) (float64, error) {
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

	score := weightedBrierMean(func(i, j int) float64 { return math.Exp(logProbs.At(i, j)) }, labels, w, n, k)
	if !o.Normalize {
		return score, nil
	}

	base := priorBrier(priors, labels, w, n)
	if base == 0 {
		return 0, ErrDegenerateBaseline
	}

	return score / base, nil
}

// BrierByClass decomposes Brier into one contribution per true class,
// summing to the scalar Brier value. Intended for Shift.
func BrierByClass(logProbs *mat.Dense, labels []int, opts *Options) ([]float64, error) {
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
		var rowSq float64
		for j := 0; j < k; j++ {
			d := -math.Exp(logProbs.At(i, j))
			if labels[i] == j {
				d++
			}
			rowSq += d * d
		}
		out[labels[i]] += wi * rowSq
	}
	floats.Scale(1/float64(n*k), out)

	if o.Normalize {
		base := priorBrier(priors, labels, w, n)
		if base == 0 {
			return nil, ErrDegenerateBaseline
		}
		floats.Scale(1/base, out)
	}

	return out, nil
}

// weightedBrierMean averages w_i · Σ_j (onehot − probAt(i,j))² over all
// N·K entries, skipping weight-0 samples.
func weightedBrierMean(probAt func(i, j int) float64, labels []int, w prior.Weights, n, k int) float64 {
	var sum float64
	for i := 0; i < n; i++ {
		wi := w.At(i)
		if wi == 0 {
			continue
		}
		var rowSq float64
		for j := 0; j < k; j++ {
			d := -probAt(i, j)
			if labels[i] == j {
				d++
			}
			rowSq += d * d
		}
		sum += wi * rowSq
	}

	return sum / float64(n*k)
}

// priorBrier scores the frozen-prior classifier. The prior is pushed
// through the same log/exp round-trip as a real input row so that a
// log-prior input normalizes to exactly 1.0.
func priorBrier(priors []float64, labels []int, w prior.Weights, n int) float64 {
	rt := make([]float64, len(priors))
	for j, p := range priors {
		rt[j] = math.Exp(math.Log(p))
	}

	return weightedBrierMean(func(_, j int) float64 { return rt[j] }, labels, w, n, len(priors))
}
