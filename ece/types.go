// Package ece: options, per-bin result type and sentinel errors.
package ece

import (
	"errors"

	"github.com/katalvlaran/calmetrics/histbin"
)

// DefaultBins is the bin count used when Options.Bins is zero.
const DefaultBins = histbin.DefaultBins

var (
	// ErrNilInput indicates a nil log-probability matrix.
	ErrNilInput = errors.New("ece: nil input matrix")

	// ErrEmptyInput indicates zero samples.
	ErrEmptyInput = errors.New("ece: input must have at least one sample")

	// ErrTooFewClasses indicates fewer than 2 probability columns.
	ErrTooFewClasses = errors.New("ece: need at least 2 classes")

	// ErrBinaryOnly indicates a binary-only function fed K≠2 classes.
	ErrBinaryOnly = errors.New("ece: function requires exactly 2 classes")

	// ErrDimensionMismatch indicates labels and samples of different lengths.
	ErrDimensionMismatch = errors.New("ece: labels/samples length mismatch")

	// ErrLabelOutOfRange indicates a label outside [0, K).
	ErrLabelOutOfRange = errors.New("ece: label out of range")

	// ErrNotDistribution indicates a row whose exponentiated entries do
	// not sum to 1 within tolerance, or a NaN/+Inf entry.
	ErrNotDistribution = errors.New("ece: row is not a log distribution")

	// ErrBadBinCount indicates a negative Options.Bins (0 selects the default).
	ErrBadBinCount = errors.New("ece: bin count must be positive")
)

// Options configures the ECE family.
//
// Fields:
//   - Bins — number of equal-width confidence bins; 0 selects
//     DefaultBins (15), negative values error.
//   - L2   — use squared instead of absolute per-bin deviation.
//     Honored by ECEBin/ECEBinV2 only; the multiclass forms are defined
//     on the absolute gap.
type Options struct {
	Bins int
	L2   bool
}

// DefaultOptions returns the documented defaults: 15 bins, absolute
// deviation.
func DefaultOptions() Options {
	return Options{Bins: DefaultBins}
}

// Bin is the diagnostic tuple of one non-empty confidence bin, the
// input contract of reliability-diagram renderers.
//
// Accuracy holds the empirical accuracy (multiclass) or the class-1
// frequency (binary); Confidence the average confidence (multiclass)
// or average class-1 probability (binary).
type Bin struct {
	Low        float64
	High       float64
	Accuracy   float64
	Confidence float64
	Count      int
}
