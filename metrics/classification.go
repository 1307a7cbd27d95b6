// Package metrics provides evaluation metrics for fitted classifiers.
//
// Inputs are n×1 column matrices so that the output of Predict can be passed
// straight in. Use Labels to turn a []int label slice into such a column.
package metrics

import (
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
)

// Accuracy returns the percentage of positions where yTrue and yPred are
// equal, in [0, 100].
func Accuracy(yTrue, yPred mat.Matrix) (float64, error) {
	t, p, err := columnPair("Accuracy", yTrue, yPred)
	if err != nil {
		return 0, err
	}

	hits := make([]float64, len(t))
	for i := range t {
		if t[i] == p[i] {
			hits[i] = 1
		}
	}
	return stat.Mean(hits, nil) * 100, nil
}

// Labels converts class indices into an n×1 column vector.
func Labels(y []int) *mat.VecDense {
	if len(y) == 0 {
		return &mat.VecDense{}
	}
	data := make([]float64, len(y))
	for i, v := range y {
		data[i] = float64(v)
	}
	return mat.NewVecDense(len(y), data)
}
