package scores

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// Shift — prior-shift sensitivity combinator.
//
// Description:
//
//	Shift wraps a per-class loss into a scalar loss that first nudges
//	the input distribution by a log-domain offset: each row of the
//	log-probability matrix gets the offset added and is renormalized via
//	softmax, the wrapped loss is evaluated on the shifted distribution,
//	and its per-class contributions are contracted against the scaling
//	vector So = √K · exp(offset)/‖exp(offset)‖₂.
//
//	An all-zero offset makes So the all-ones vector, so the shifted
//	value collapses to the plain sum of the per-class contributions,
//	i.e. the wrapped scalar loss itself.
//
// Errors (constructor):
//   - ErrTooFewClasses — offset shorter than 2.
//   - ErrNonFinite     — non-finite offset entry.
//
// Errors (returned LossFunc): the wrapped loss's own sentinels, plus
// ErrDimensionMismatch when the input's class count or the wrapped
// loss's output length disagrees with the offset.
//
// Complexity per call: O(N·K) for the shift + the wrapped loss's cost.
func Shift(loss ClassLossFunc, offset []float64) (LossFunc, error) {
	k := len(offset)
	if k < 2 {
		return nil, ErrTooFewClasses
	}

	so := make([]float64, k)
	for j, v := range offset {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, ErrNonFinite
		}
		so[j] = math.Exp(v)
	}
	floats.Scale(math.Sqrt(float64(k))/floats.Norm(so, 2), so)

	off := make([]float64, k)
	copy(off, offset)

	return func(logProbs *mat.Dense, labels []int) (float64, error) {
		n, kk, err := validateLogProbs(logProbs)
		if err != nil {
			return 0, err
		}
		if kk != k {
			return 0, ErrDimensionMismatch
		}

		shifted := mat.NewDense(n, k, nil)
		row := make([]float64, k)
		for i := 0; i < n; i++ {
			mat.Row(row, i, logProbs)
			floats.Add(row, off)
			logSoftmaxInPlace(row)
			shifted.SetRow(i, row)
		}

		v, err := loss(shifted, labels)
		if err != nil {
			return 0, err
		}
		if len(v) != k {
			return 0, ErrDimensionMismatch
		}

		return floats.Dot(v, so), nil
	}, nil
}

// logSoftmaxInPlace renormalizes a log-domain row with the max-shift
// trick for stability.
func logSoftmaxInPlace(row []float64) {
	m := floats.Max(row)
	var sum float64
	for _, v := range row {
		sum += math.Exp(v - m)
	}
	lse := m + math.Log(sum)
	for j := range row {
		row[j] -= lse
	}
}
