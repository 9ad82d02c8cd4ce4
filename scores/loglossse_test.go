package scores_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/calmetrics/scores"
)

// TestLogLossSE_SelfReference verifies that scoring a distribution
// against itself yields its own mean entropy, and exactly 1.0 after
// normalizing by the entropy of the mean distribution when both match.
func TestLogLossSE_SelfReference(t *testing.T) {
	lp := logDense([][]float64{{0.5, 0.5}})

	raw, err := scores.LogLossSE(lp, lp, false)
	require.NoError(t, err)
	assert.InDelta(t, math.Ln2, raw, 1e-12, "entropy of the uniform binary distribution")

	norm, err := scores.LogLossSE(lp, lp, true)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, norm, 1e-12, "mean distribution equals the single row")
}

// TestLogLossSE_HandComputed checks the cross-entropy on mixed rows.
func TestLogLossSE_HandComputed(t *testing.T) {
	cand := logDense([][]float64{{0.9, 0.1}, {0.2, 0.8}})
	ref := logDense([][]float64{{1, 0}, {0, 1}})

	got, err := scores.LogLossSE(cand, ref, false)
	require.NoError(t, err)
	want := (-math.Log(0.9) - math.Log(0.8)) / 2
	assert.InDelta(t, want, got, 1e-12, "one-hot references pick the true-class terms")
}

// TestLogLossSE_ZeroReferenceMassMasks verifies the 0·log 0 := 0
// convention: a zero reference probability silences a -Inf candidate
// log term.
func TestLogLossSE_ZeroReferenceMassMasks(t *testing.T) {
	cand := logDense([][]float64{{1, 0}})
	ref := logDense([][]float64{{1, 0}})

	got, err := scores.LogLossSE(cand, ref, false)
	require.NoError(t, err)
	assert.Equal(t, 0.0, got, "perfect agreement on a deterministic row costs nothing")

	// The mean reference distribution is one-hot: entropy 0.
	_, err = scores.LogLossSE(cand, ref, true)
	assert.ErrorIs(t, err, scores.ErrDegenerateBaseline)
}

// TestLogLossSE_ShapeMismatch rejects differing shapes.
func TestLogLossSE_ShapeMismatch(t *testing.T) {
	a := logDense([][]float64{{0.5, 0.5}})
	b := logDense([][]float64{{0.5, 0.5}, {0.5, 0.5}})

	_, err := scores.LogLossSE(a, b, false)
	assert.ErrorIs(t, err, scores.ErrDimensionMismatch)
}
