package scores

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/calmetrics/prior"
)

// CostFunction — expected cost of Bayes-optimal decisions under a cost
// matrix.
//
// Description:
//
//	The cost matrix is first normalized by subtracting each column's
//	minimum, so every true class admits at least one zero-cost decision.
//	For each sample the Bayes decision argmin_d Σ_j p_j·C[d][j] is
//	taken and the realized cost C[decision][label] averaged. With
//	Normalize the mean is divided by the cost of a rule that decides
//	once from the empirical prior and sticks to it; 1.0 then reads
//	"no better than the no-information decision".
//
// With the default 0/1 cost matrix and Normalize=false this is the
// plain classification error rate.
//
// Errors:
//   - ErrNilInput / ErrEmptyInput / ErrTooFewClasses / ErrNotDistribution
//   - ErrDimensionMismatch   — cost matrix is not K×K.
//   - ErrInvalidCost         — negative or non-finite cost entry.
//   - ErrLabelOutOfRange
//   - ErrDegenerateBaseline  — the prior decision rule costs exactly 0.
//
// Complexity: O(N·K²).
func CostFunction(logProbs *mat.Dense, labels []int, opts *CostOptions) (float64, error) {
	o := DefaultCostOptions()
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

	c, err := normalizedCost(o.Cost, k)
	if err != nil {
		return 0, err
	}

	probs := make([]float64, k)
	var sum float64
	for i := 0; i < n; i++ {
		mat.Row(probs, i, logProbs)
		for j := range probs {
			probs[j] = math.Exp(probs[j])
		}
		sum += c.At(bayesDecision(probs, c, k), labels[i])
	}
	score := sum / float64(n)

	if !o.Normalize {
		return score, nil
	}

	priors, err := prior.Empirical(labels, k)
	if err != nil {
		return 0, err
	}
	d := bayesDecision(priors, c, k)
	var baseSum float64
	for _, y := range labels {
		baseSum += c.At(d, y)
	}
	base := baseSum / float64(n)
	if base == 0 {
		return 0, ErrDegenerateBaseline
	}

	return score / base, nil
}

// bayesDecision returns the row of c minimizing the expected cost
// Σ_j p_j·c[d][j]; ties break toward the lowest index.
func bayesDecision(p []float64, c *mat.Dense, k int) int {
	best, bestCost := 0, math.Inf(1)
	for d := 0; d < k; d++ {
		var cost float64
		for j := 0; j < k; j++ {
			cost += p[j] * c.At(d, j)
		}
		if cost < bestCost {
			best, bestCost = d, cost
		}
	}

	return best
}

// normalizedCost copies (or synthesizes) the cost matrix and subtracts
// each column's minimum. The input is never mutated.
func normalizedCost(c *mat.Dense, k int) (*mat.Dense, error) {
	out := mat.NewDense(k, k, nil)
	if c == nil {
		// 0/1 matrix: unit cost everywhere off-diagonal.
		for i := 0; i < k; i++ {
			for j := 0; j < k; j++ {
				if i != j {
					out.Set(i, j, 1)
				}
			}
		}
	} else {
		r, cc := c.Dims()
		if r != k || cc != k {
			return nil, ErrDimensionMismatch
		}
		for i := 0; i < k; i++ {
			for j := 0; j < k; j++ {
				v := c.At(i, j)
				if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
					return nil, ErrInvalidCost
				}
				out.Set(i, j, v)
			}
		}
	}

	col := make([]float64, k)
	for j := 0; j < k; j++ {
		mat.Col(col, j, out)
		m := floats.Min(col)
		if m != 0 {
			for i := 0; i < k; i++ {
				out.Set(i, j, out.At(i, j)-m)
			}
		}
	}

	return out, nil
}
