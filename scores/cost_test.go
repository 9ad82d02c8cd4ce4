package scores_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/calmetrics/scores"
)

// TestCostFunction_DefaultIsErrorRate verifies that the 0/1 cost matrix
// with Normalize=false reduces to the plain classification error rate.
func TestCostFunction_DefaultIsErrorRate(t *testing.T) {
	lp := logDense([][]float64{{0.9, 0.1}, {0.2, 0.8}, {0.3, 0.7}, {0.6, 0.4}})
	labels := []int{0, 1, 0, 0} // argmax predictions are [0,1,1,0]
	opts := scores.CostOptions{Normalize: false}

	got, err := scores.CostFunction(lp, labels, &opts)
	require.NoError(t, err)
	assert.InDelta(t, 0.25, got, 1e-15, "one wrong prediction out of four")
}

// TestCostFunction_NormalizedAgainstPriorDecision divides by the cost
// of the frozen prior decision rule.
func TestCostFunction_NormalizedAgainstPriorDecision(t *testing.T) {
	lp := logDense([][]float64{{0.9, 0.1}, {0.2, 0.8}, {0.3, 0.7}, {0.6, 0.4}})
	labels := []int{0, 1, 0, 0}
	opts := scores.DefaultCostOptions()

	got, err := scores.CostFunction(lp, labels, &opts)
	require.NoError(t, err)
	// Prior [0.75,0.25] decides class 0 always, erring on the single
	// class-1 sample: baseline 0.25, same as the system's error rate.
	assert.InDelta(t, 1.0, got, 1e-15)
}

// TestCostFunction_ColumnMinNormalization verifies that a cost matrix
// with non-zero column minima is shifted before decisions are made.
func TestCostFunction_ColumnMinNormalization(t *testing.T) {
	// Columns minima [2,1]; normalized matrix is [[0,4],[2,0]].
	c := mat.NewDense(2, 2, []float64{2, 5, 4, 1})
	lp := logDense([][]float64{{0.9, 0.1}, {0.1, 0.9}})
	labels := []int{1, 1}
	opts := scores.CostOptions{Cost: c, Normalize: false}

	got, err := scores.CostFunction(lp, labels, &opts)
	require.NoError(t, err)
	// Sample 1: expected costs [0.4, 1.8] → decide 0, realized C[0][1]=4.
	// Sample 2: expected costs [3.6, 0.2] → decide 1, realized C[1][1]=0.
	assert.InDelta(t, 2.0, got, 1e-12)
}

// TestCostFunction_InputMatrixNotMutated guards the pure-function contract.
func TestCostFunction_InputMatrixNotMutated(t *testing.T) {
	c := mat.NewDense(2, 2, []float64{2, 5, 4, 1})
	lp := logDense([][]float64{{0.9, 0.1}, {0.1, 0.9}})
	opts := scores.CostOptions{Cost: c, Normalize: false}

	_, err := scores.CostFunction(lp, []int{0, 1}, &opts)
	require.NoError(t, err)
	assert.Equal(t, []float64{2, 5, 4, 1}, c.RawMatrix().Data, "caller's cost matrix must stay intact")
}

// TestCostFunction_Errors covers the cost-specific sentinels.
func TestCostFunction_Errors(t *testing.T) {
	lp := logDense([][]float64{{0.9, 0.1}, {0.1, 0.9}})

	opts := scores.CostOptions{Cost: mat.NewDense(3, 3, nil)}
	_, err := scores.CostFunction(lp, []int{0, 1}, &opts)
	assert.ErrorIs(t, err, scores.ErrDimensionMismatch, "3×3 costs with K=2")

	opts = scores.CostOptions{Cost: mat.NewDense(2, 2, []float64{0, -1, 1, 0})}
	_, err = scores.CostFunction(lp, []int{0, 1}, &opts)
	assert.ErrorIs(t, err, scores.ErrInvalidCost, "negative cost entry")

	// All labels identical: the prior rule decides that class for free.
	opts = scores.DefaultCostOptions()
	_, err = scores.CostFunction(lp, []int{0, 0}, &opts)
	assert.ErrorIs(t, err, scores.ErrDegenerateBaseline)
}
