package scores

import "gonum.org/v1/gonum/mat"

// CalLossLogLoss — percent log-loss reduction from a calibration
// transform: (raw − calibrated) / raw · 100.
//
// Positive means calibration helped; negative means it hurt. Comparing
// a distribution to itself returns exactly 0. Both losses are computed
// normalized under the (optionally external) prior so the comparison
// is prior-consistent.
//
// Errors: the LogLoss sentinels for either input, plus
// ErrDegenerateBaseline when the raw loss is exactly 0 (no reduction
// is expressible relative to a perfect system).
func CalLossLogLoss(logProbs, calLogProbs *mat.Dense, labels []int, externalPrior []float64) (float64, error) {
	return calLoss(LogLoss, logProbs, calLogProbs, labels, externalPrior)
}

// CalLossBrier — percent Brier-score reduction from a calibration
// transform. Same contract as CalLossLogLoss.
func CalLossBrier(logProbs, calLogProbs *mat.Dense, labels []int, externalPrior []float64) (float64, error) {
	return calLoss(Brier, logProbs, calLogProbs, labels, externalPrior)
}

func calLoss(loss func(*mat.Dense, []int, *Options) (float64, error), raw, cal *mat.Dense, labels []int, externalPrior []float64) (float64, error) {
	opts := Options{Normalize: true, Prior: externalPrior}

	r, err := loss(raw, labels, &opts)
	if err != nil {
		return 0, err
	}
	c, err := loss(cal, labels, &opts)
	if err != nil {
		return 0, err
	}
	if r == 0 {
		return 0, ErrDegenerateBaseline
	}

	return (r - c) / r * 100, nil
}
