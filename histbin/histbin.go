package histbin

import (
	"errors"
	"math"
)

// DefaultBins is the bin count used when callers have no opinion.
const DefaultBins = 15

var (
	// ErrBadBinCount indicates a non-positive bin count.
	ErrBadBinCount = errors.New("histbin: bin count must be positive")

	// ErrEmptyInput indicates an empty score slice.
	ErrEmptyInput = errors.New("histbin: scores must be non-empty")

	// ErrDimensionMismatch indicates scores and targets of different lengths.
	ErrDimensionMismatch = errors.New("histbin: scores/targets length mismatch")

	// ErrScoreOutOfRange indicates a log-score whose probability is NaN
	// or above 1.
	ErrScoreOutOfRange = errors.New("histbin: probability outside [0,1]")

	// ErrNotFitted indicates a Transform on a nil Model.
	ErrNotFitted = errors.New("histbin: model not fitted")
)

// BinSpec partitions [0,1] into M equal-width half-open intervals.
type BinSpec struct {
	M int
}

// DefaultBinSpec returns the 15-bin partition.
func DefaultBinSpec() BinSpec { return BinSpec{M: DefaultBins} }

// NewBinSpec validates and returns an M-bin partition.
func NewBinSpec(m int) (BinSpec, error) {
	if m <= 0 {
		return BinSpec{}, ErrBadBinCount
	}

	return BinSpec{M: m}, nil
}

// Bounds returns the (low, high] interval of bin i.
func (b BinSpec) Bounds(i int) (low, high float64) {
	return float64(i) / float64(b.M), float64(i+1) / float64(b.M)
}

// Index returns the bin containing a probability score under the strict
// low < s <= high rule, or -1 when the score falls in no bin (exactly 0).
func (b BinSpec) Index(score float64) int {
	for i := 0; i < b.M; i++ {
		low, high := b.Bounds(i)
		if low < score && score <= high {
			return i
		}
	}

	return -1
}

// Model is a fitted histogram-binning calibrator: per-bin empirical
// positive frequency plus the per-bin average raw training score.
type Model struct {
	spec  BinSpec
	freq  []float64
	mean  []float64
	count []int
}

// Fit trains a histogram-binning calibrator on natural-log confidence
// scores and binary targets. Training samples falling in no bin are
// ignored.
//
// Errors:
//   - ErrBadBinCount / ErrEmptyInput / ErrDimensionMismatch
//   - ErrScoreOutOfRange — exp(score) is NaN or exceeds 1.
func Fit(trainLogScores []float64, trainTargets []bool, spec BinSpec) (*Model, error) {
	if spec.M <= 0 {
		return nil, ErrBadBinCount
	}
	if len(trainLogScores) == 0 {
		return nil, ErrEmptyInput
	}
	if len(trainTargets) != len(trainLogScores) {
		return nil, ErrDimensionMismatch
	}

	m := &Model{
		spec:  spec,
		freq:  make([]float64, spec.M),
		mean:  make([]float64, spec.M),
		count: make([]int, spec.M),
	}
	hits := make([]float64, spec.M)
	for i, ls := range trainLogScores {
		s, err := probability(ls)
		if err != nil {
			return nil, err
		}
		b := spec.Index(s)
		if b < 0 {
			continue
		}
		m.mean[b] += s
		m.count[b]++
		if trainTargets[i] {
			hits[b]++
		}
	}
	for b := 0; b < spec.M; b++ {
		if m.count[b] == 0 {
			continue
		}
		n := float64(m.count[b])
		m.freq[b] = hits[b] / n
		m.mean[b] /= n
	}

	return m, nil
}

// Transform maps evaluation log-scores through the fitted bins.
// calLogScores[i] is the natural log of the bin's empirical positive
// frequency; binnedScores[i] is the bin's average raw training score.
// Unbinned samples and samples landing in an unpopulated bin get a
// calibrated probability of 0 (log value -Inf) and a binned value of 0.
func (m *Model) Transform(evalLogScores []float64) (calLogScores, binnedScores []float64, err error) {
	if m == nil {
		return nil, nil, ErrNotFitted
	}
	if len(evalLogScores) == 0 {
		return nil, nil, ErrEmptyInput
	}

	calLogScores = make([]float64, len(evalLogScores))
	binnedScores = make([]float64, len(evalLogScores))
	for i, ls := range evalLogScores {
		s, perr := probability(ls)
		if perr != nil {
			return nil, nil, perr
		}
		b := m.spec.Index(s)
		if b < 0 || m.count[b] == 0 {
			calLogScores[i] = math.Inf(-1)
			binnedScores[i] = 0

			continue
		}
		calLogScores[i] = math.Log(m.freq[b])
		binnedScores[i] = m.mean[b]
	}

	return calLogScores, binnedScores, nil
}

// Calibrate is the single-call form: fit on the training pair, then
// transform the evaluation scores.
func Calibrate(trainLogScores []float64, trainTargets []bool, evalLogScores []float64, spec BinSpec) (calLogScores, binnedScores []float64, err error) {
	m, err := Fit(trainLogScores, trainTargets, spec)
	if err != nil {
		return nil, nil, err
	}

	return m.Transform(evalLogScores)
}

// probability converts a natural-log score, rejecting NaN and values
// above 1.
func probability(logScore float64) (float64, error) {
	s := math.Exp(logScore)
	if math.IsNaN(s) || s > 1 {
		return 0, ErrScoreOutOfRange
	}

	return s, nil
}
