package ece

import (
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/calmetrics/histbin"
)

// ECE — multiclass Expected Calibration Error, direct form.
//
// Description:
//
//	Per sample, confidence = max_k p_k and prediction = argmax_k p_k.
//	Samples are placed into M equal-width bins; each non-empty bin
//	contributes count·|avgConfidence − avgAccuracy| and the total is
//	scaled by 100/N. Returns the score plus the per-bin diagnostics
//	(non-empty bins only, ascending).
//
// Errors:
//   - ErrNilInput / ErrEmptyInput / ErrTooFewClasses / ErrNotDistribution
//   - ErrDimensionMismatch / ErrLabelOutOfRange / ErrBadBinCount
//
// Complexity: O(N·K + N·M).
func ECE(logProbs *mat.Dense, labels []int, opts *Options) (float64, []Bin, error) {
	o, err := resolve(opts)
	if err != nil {
		return 0, nil, err
	}
	n, k, err := validateLogProbs(logProbs)
	if err != nil {
		return 0, nil, err
	}
	if err = validateLabels(labels, n, k); err != nil {
		return 0, nil, err
	}

	confs := make([]float64, n)
	hits := make([]bool, n)
	row := make([]float64, k)
	for i := 0; i < n; i++ {
		mat.Row(row, i, logProbs)
		pred := argmax(row)
		confs[i] = math.Exp(row[pred])
		hits[i] = pred == labels[i]
	}

	score, bins := binnedDeviation(confs, hits, histbin.BinSpec{M: o.Bins}, false)

	return score, bins, nil
}

// ECEScores — the 1-D binary input form: a raw positive-class
// probability per sample (given as its natural log) with a 0.5
// decision threshold. Labels must be 0 or 1.
func ECEScores(logScores []float64, labels []int, opts *Options) (float64, []Bin, error) {
	o, err := resolve(opts)
	if err != nil {
		return 0, nil, err
	}
	n := len(logScores)
	if n == 0 {
		return 0, nil, ErrEmptyInput
	}
	if err = validateLabels(labels, n, 2); err != nil {
		return 0, nil, err
	}

	confs := make([]float64, n)
	hits := make([]bool, n)
	for i, ls := range logScores {
		p := math.Exp(ls)
		if math.IsNaN(p) || p > 1 {
			return 0, nil, ErrNotDistribution
		}
		confs[i] = p
		pred := 0
		if p >= 0.5 {
			pred = 1
		}
		hits[i] = pred == labels[i]
	}

	score, bins := binnedDeviation(confs, hits, histbin.BinSpec{M: o.Bins}, false)

	return score, bins, nil
}

// ECEV2 — multiclass ECE via the calibrate-then-compare formulation.
//
// Description:
//
//	The multiclass problem is reduced to a binary one — did the system's
//	top prediction hit? — and the confidence scores are calibrated with
//	histogram binning trained and evaluated on the very same data (a
//	deliberate self-calibration that exists only to read back each
//	sample's bin statistics). The score is 100·mean|calibrated − binned|,
//	which equals the direct ECE within floating tolerance.
//
// Errors: same set as ECE.
func ECEV2(logProbs *mat.Dense, labels []int, opts *Options) (float64, error) {
	o, err := resolve(opts)
	if err != nil {
		return 0, err
	}
	n, k, err := validateLogProbs(logProbs)
	if err != nil {
		return 0, err
	}
	if err = validateLabels(labels, n, k); err != nil {
		return 0, err
	}

	logConfs := make([]float64, n)
	correct := make([]bool, n)
	row := make([]float64, k)
	for i := 0; i < n; i++ {
		mat.Row(row, i, logProbs)
		pred := argmax(row)
		logConfs[i] = row[pred]
		correct[i] = pred == labels[i]
	}

	cal, binned, err := histbin.Calibrate(logConfs, correct, logConfs, histbin.BinSpec{M: o.Bins})
	if err != nil {
		return 0, err
	}

	return meanGap(cal, binned, false), nil
}

// binnedDeviation buckets confidence scores per the bin spec and
// accumulates count-weighted deviations between average confidence and
// positive frequency. Samples outside every bin stay in N but add no
// deviation.
func binnedDeviation(confs []float64, positives []bool, spec histbin.BinSpec, l2 bool) (float64, []Bin) {
	confSum := make([]float64, spec.M)
	hitCount := make([]float64, spec.M)
	count := make([]int, spec.M)
	for i, c := range confs {
		b := spec.Index(c)
		if b < 0 {
			continue
		}
		confSum[b] += c
		count[b]++
		if positives[i] {
			hitCount[b]++
		}
	}

	var ece float64
	bins := make([]Bin, 0, spec.M)
	for b := 0; b < spec.M; b++ {
		if count[b] == 0 {
			continue
		}
		nb := float64(count[b])
		avgConf := confSum[b] / nb
		acc := hitCount[b] / nb
		dev := math.Abs(avgConf - acc)
		if l2 {
			dev *= dev
		}
		ece += nb * dev

		low, high := spec.Bounds(b)
		bins = append(bins, Bin{
			Low:        low,
			High:       high,
			Accuracy:   acc,
			Confidence: avgConf,
			Count:      count[b],
		})
	}

	return ece * 100 / float64(len(confs)), bins
}

// meanGap averages |cal − binned| (or its square) over all samples,
// scaled to a percentage. Calibrated values arrive in the log domain.
func meanGap(calLogScores, binnedScores []float64, l2 bool) float64 {
	var sum float64
	for i, c := range calLogScores {
		gap := math.Abs(math.Exp(c) - binnedScores[i])
		if l2 {
			gap *= gap
		}
		sum += gap
	}

	return sum * 100 / float64(len(calLogScores))
}

// argmax returns the index of the row maximum; ties break toward the
// lowest index.
func argmax(row []float64) int {
	best := 0
	for j := 1; j < len(row); j++ {
		if row[j] > row[best] {
			best = j
		}
	}

	return best
}
