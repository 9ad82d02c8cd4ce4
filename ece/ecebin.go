package ece

import (
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/calmetrics/histbin"
)

// ECEBin — binary Expected Calibration Error, direct form.
//
// Description:
//
//	Restricted to exactly 2 classes. Bins the class-1 probability and
//	compares, per non-empty bin, the average class-1 probability with
//	the empirical class-1 frequency. Options.L2 switches the per-bin
//	deviation from absolute to squared.
//
// Errors: the ECE set, plus ErrBinaryOnly when K ≠ 2.
//
// Complexity: O(N·M).
func ECEBin(logProbs *mat.Dense, labels []int, opts *Options) (float64, []Bin, error) {
	o, err := resolve(opts)
	if err != nil {
		return 0, nil, err
	}
	n, err := validateBinary(logProbs)
	if err != nil {
		return 0, nil, err
	}
	if err = validateLabels(labels, n, 2); err != nil {
		return 0, nil, err
	}

	confs := make([]float64, n)
	positives := make([]bool, n)
	for i := 0; i < n; i++ {
		confs[i] = math.Exp(logProbs.At(i, 1))
		positives[i] = labels[i] == 1
	}

	score, bins := binnedDeviation(confs, positives, histbin.BinSpec{M: o.Bins}, o.L2)

	return score, bins, nil
}

// ECEBinV2 — binary ECE via the calibrate-then-compare formulation.
// Self-calibrates the class-1 scores with histogram binning and
// returns the percentage mean gap (absolute or squared, per Options.L2)
// between calibrated and binned scores. Agrees with ECEBin within
// floating tolerance.
func ECEBinV2(logProbs *mat.Dense, labels []int, opts *Options) (float64, error) {
	o, err := resolve(opts)
	if err != nil {
		return 0, err
	}
	n, err := validateBinary(logProbs)
	if err != nil {
		return 0, err
	}
	if err = validateLabels(labels, n, 2); err != nil {
		return 0, err
	}

	logScores := make([]float64, n)
	positives := make([]bool, n)
	for i := 0; i < n; i++ {
		logScores[i] = logProbs.At(i, 1)
		positives[i] = labels[i] == 1
	}

	cal, binned, err := histbin.Calibrate(logScores, positives, logScores, histbin.BinSpec{M: o.Bins})
	if err != nil {
		return 0, err
	}

	return meanGap(cal, binned, o.L2), nil
}

// validateBinary checks the matrix the way validateLogProbs does and
// additionally requires exactly 2 columns.
func validateBinary(logProbs *mat.Dense) (int, error) {
	n, k, err := validateLogProbs(logProbs)
	if err != nil {
		return 0, err
	}
	if k != 2 {
		return 0, ErrBinaryOnly
	}

	return n, nil
}
