// Package scores: sentinel error set. All public functions return these
// sentinels (or the prior package's) and tests match them via errors.Is.
// User-triggered conditions never panic.

package scores

import "errors"

var (
	// ErrNilInput indicates a nil log-probability or cost matrix.
	ErrNilInput = errors.New("scores: nil input matrix")

	// ErrEmptyInput indicates an input with zero samples.
	ErrEmptyInput = errors.New("scores: input must have at least one sample")

	// ErrTooFewClasses indicates fewer than 2 probability columns.
	ErrTooFewClasses = errors.New("scores: need at least 2 classes")

	// ErrDimensionMismatch indicates incompatible operand shapes:
	// labels vs rows, cost matrix vs class count, offset vs class count,
	// or reference vs candidate matrices.
	ErrDimensionMismatch = errors.New("scores: dimension mismatch")

	// ErrLabelOutOfRange indicates a label outside [0, K).
	ErrLabelOutOfRange = errors.New("scores: label out of range")

	// ErrNotDistribution indicates a log-probability row whose
	// exponentiated entries do not sum to 1 within tolerance, or a NaN
	// or +Inf entry (-Inf encodes a legitimate zero probability).
	ErrNotDistribution = errors.New("scores: row is not a log distribution")

	// ErrInvalidCost indicates a cost matrix with negative or
	// non-finite entries.
	ErrInvalidCost = errors.New("scores: invalid cost matrix")

	// ErrNonFinite indicates a non-finite value where a finite one is
	// required (shift offsets).
	ErrNonFinite = errors.New("scores: non-finite value")

	// ErrUnobservedClass indicates a non-finite reweighting weight,
	// i.e. the target prior demanded mass the data cannot supply.
	ErrUnobservedClass = errors.New("scores: target prior mass on unobserved class")

	// ErrDegenerateBaseline indicates a zero normalization baseline
	// (prior-classifier loss, prior decision cost, or reference entropy),
	// under which a normalized score is undefined.
	ErrDegenerateBaseline = errors.New("scores: degenerate normalization baseline")
)
