package scores_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/calmetrics/scores"
)

// TestBrier_UnnormalizedReference checks the flat squared-error mean on
// the reference scenario: per-sample squared gaps 0.02, 0.08, 0.18,
// 0.32 over N·K = 8 entries give 0.075.
func TestBrier_UnnormalizedReference(t *testing.T) {
	lp := logDense([][]float64{{0.9, 0.1}, {0.2, 0.8}, {0.3, 0.7}, {0.6, 0.4}})
	labels := []int{0, 1, 1, 0}
	opts := scores.Options{Normalize: false}

	got, err := scores.Brier(lp, labels, &opts)
	require.NoError(t, err)
	assert.InDelta(t, 0.075, got, 1e-12)
	assert.GreaterOrEqual(t, got, 0.0, "Brier score is non-negative")
}

// TestBrier_AtPriorIsExactlyOne verifies the exact-1.0 normalization
// invariant for the Brier score.
func TestBrier_AtPriorIsExactlyOne(t *testing.T) {
	labels := []int{0, 1, 1, 0}
	lp := logDense([][]float64{
		{0.5, 0.5}, {0.5, 0.5}, {0.5, 0.5}, {0.5, 0.5},
	})
	opts := scores.DefaultOptions()

	got, err := scores.Brier(lp, labels, &opts)
	require.NoError(t, err)
	assert.Equal(t, 1.0, got, "log-prior input must normalize to exactly 1.0")
}

// TestBrier_ZeroWeightMasks verifies that zero-weight samples add
// nothing regardless of their probability rows.
func TestBrier_ZeroWeightMasks(t *testing.T) {
	labels := []int{0, 1, 0, 1}
	lp := logDense([][]float64{
		{0.9, 0.1}, {1, 0}, {0.9, 0.1}, {1, 0},
	})
	opts := scores.Options{Normalize: false, Prior: []float64{1, 0}}

	got, err := scores.Brier(lp, labels, &opts)
	require.NoError(t, err)
	// Two class-0 samples, weight 2, squared gap 2·(0.1)² each, over 8 entries.
	assert.InDelta(t, (2*0.02+2*0.02)/8, got, 1e-12)
}

// TestBrier_ExternalPriorReweights verifies the external-prior path
// against a hand-computed weighted mean.
func TestBrier_ExternalPriorReweights(t *testing.T) {
	labels := []int{0, 1, 1, 1} // empirical [0.25, 0.75]
	lp := logDense([][]float64{{0.9, 0.1}, {0.2, 0.8}, {0.3, 0.7}, {0.6, 0.4}})
	opts := scores.Options{Normalize: false, Prior: []float64{0.5, 0.5}}

	got, err := scores.Brier(lp, labels, &opts)
	require.NoError(t, err)
	// Weights: class 0 → 2, class 1 → 2/3.
	want := (2*0.02 + 2.0/3.0*(0.08+0.18+0.72)) / 8
	assert.InDelta(t, want, got, 1e-12)
}

// TestBrierByClass_SumsToScalar mirrors the LogLossByClass invariant.
func TestBrierByClass_SumsToScalar(t *testing.T) {
	lp := logDense([][]float64{{0.9, 0.1}, {0.2, 0.8}, {0.3, 0.7}, {0.6, 0.4}})
	labels := []int{0, 1, 1, 0}

	for _, normalize := range []bool{false, true} {
		opts := scores.Options{Normalize: normalize}
		perClass, err := scores.BrierByClass(lp, labels, &opts)
		require.NoError(t, err)

		total, err := scores.Brier(lp, labels, &opts)
		require.NoError(t, err)
		assert.InDelta(t, total, perClass[0]+perClass[1], 1e-12,
			"per-class contributions must sum to the scalar loss (normalize=%v)", normalize)
	}
}

// TestBrier_PriorValidation propagates the prior package sentinels.
func TestBrier_PriorValidation(t *testing.T) {
	lp := logDense([][]float64{{0.5, 0.5}, {0.5, 0.5}})
	labels := []int{0, 1}

	opts := scores.Options{Prior: []float64{0.7, 0.7}}
	_, err := scores.Brier(lp, labels, &opts)
	assert.Error(t, err, "a non-distribution prior must be rejected")

	opts.Prior = []float64{1, 0, 0}
	_, err = scores.Brier(lp, labels, &opts)
	assert.Error(t, err, "a wrong-length prior must be rejected")
}
