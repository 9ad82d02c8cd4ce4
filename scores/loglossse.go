package scores

import (
	"math"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
)

// LogLossSE — cross-entropy of a candidate distribution against a
// reference soft-label distribution.
//
// Description:
//
//	Per sample: Σ_j -exp(ref_ij)·lp_ij, averaged over samples. A zero
//	reference probability contributes 0 regardless of the candidate's
//	log value (0·log 0 := 0). With normalize the mean is divided by the
//	entropy of the column-wise mean reference distribution.
//
// Errors:
//   - validation sentinels for either matrix
//   - ErrDimensionMismatch   — shapes differ.
//   - ErrDegenerateBaseline  — zero reference entropy.
//
// Complexity: O(N·K).
func LogLossSE(logProbs, refLogProbs *mat.Dense, normalize bool) (float64, error) {
	n, k, err := validateLogProbs(logProbs)
	if err != nil {
		return 0, err
	}
	nr, kr, err := validateLogProbs(refLogProbs)
	if err != nil {
		return 0, err
	}
	if nr != n || kr != k {
		return 0, ErrDimensionMismatch
	}

	var sum float64
	for i := 0; i < n; i++ {
		var s float64
		for j := 0; j < k; j++ {
			p := math.Exp(refLogProbs.At(i, j))
			if p == 0 {
				continue
			}
			s += p * -logProbs.At(i, j)
		}
		sum += s
	}
	score := sum / float64(n)

	if !normalize {
		return score, nil
	}

	col := make([]float64, n)
	var entropy float64
	for j := 0; j < k; j++ {
		mat.Col(col, j, refLogProbs)
		for i := range col {
			col[i] = math.Exp(col[i])
		}
		if pj := stat.Mean(col, nil); pj > 0 {
			entropy -= pj * math.Log(pj)
		}
	}
	if entropy == 0 {
		return 0, ErrDegenerateBaseline
	}

	return score / entropy, nil
}
