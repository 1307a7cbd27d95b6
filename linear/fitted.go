package linear

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/YuminosukeSato/logreg/core/model"
	"github.com/YuminosukeSato/logreg/core/parallel"
	"github.com/YuminosukeSato/logreg/pkg/errors"
	"github.com/YuminosukeSato/logreg/pkg/log"
	"github.com/YuminosukeSato/logreg/preprocessing"
)

var _ model.Classifier = (*Fitted)(nil)

// History is the cost recorded after every gradient descent iteration.
// It implements plotter.XYer from gonum.org/v1/plot.
type History struct {
	Iters []int
	Costs []float64
}

// Len returns the number of recorded iterations.
func (h History) Len() int { return len(h.Costs) }

// XY returns the iteration index and the cost of the i-th record.
func (h History) XY(i int) (x, y float64) {
	return float64(h.Iters[i]), h.Costs[i]
}

// Last returns the final recorded cost.
func (h History) Last() (float64, bool) {
	if len(h.Costs) == 0 {
		return 0, false
	}
	return h.Costs[len(h.Costs)-1], true
}

// Fitted is the result of LogisticRegression.Fit. A nil or zero Fitted is
// not fitted and every prediction returns ErrNotFitted.
type Fitted struct {
	theta     *mat.Dense // n_classes × (n_features+1), column 0 is the bias
	nClasses  int
	nFeatures int
	history   History
	logger    log.Logger
}

// State reports whether f holds trained parameters.
func (f *Fitted) State() model.EstimatorState {
	if f == nil || f.theta == nil {
		return model.NotFitted
	}
	return model.Fitted
}

// NClasses returns the number of classes given to Fit.
func (f *Fitted) NClasses() int {
	if f == nil {
		return 0
	}
	return f.nClasses
}

// NFeatures returns the number of feature columns seen during Fit.
func (f *Fitted) NFeatures() int {
	if f == nil {
		return 0
	}
	return f.nFeatures
}

// Theta returns a copy of the n_classes × (n_features+1) parameter matrix.
func (f *Fitted) Theta() *mat.Dense {
	if f.State() != model.Fitted {
		return nil
	}
	return mat.DenseCopyOf(f.theta)
}

// History returns a copy of the per-iteration cost history.
func (f *Fitted) History() History {
	if f == nil {
		return History{}
	}
	return History{
		Iters: append([]int(nil), f.history.Iters...),
		Costs: append([]float64(nil), f.history.Costs...),
	}
}

// PredictProba returns the m × n_classes matrix of one-vs-all probabilities.
// X is standardized with its own batch statistics and is not modified.
func (f *Fitted) PredictProba(X mat.Matrix) (proba mat.Matrix, err error) {
	defer errors.Recover(&err, "Fitted.PredictProba")

	h, err := f.probabilities("PredictProba", X)
	if err != nil {
		return nil, err
	}

	r, _ := h.Dims()
	f.logger.Debug("Prediction completed",
		log.OperationKey, log.OperationPredictProba,
		log.PhaseKey, log.PhaseInference,
		log.PredsKey, r,
	)
	return h, nil
}

// Predict returns an m × 1 column holding, for every row of X, the index of
// the class with the highest probability.
func (f *Fitted) Predict(X mat.Matrix) (pred mat.Matrix, err error) {
	defer errors.Recover(&err, "Fitted.Predict")

	h, err := f.probabilities("Predict", X)
	if err != nil {
		return nil, err
	}

	r, _ := h.Dims()
	out := mat.NewDense(r, 1, nil)
	parallel.ParallelizeWithThreshold(r, parallelThreshold, func(start, end int) {
		for i := start; i < end; i++ {
			// 同率の場合は小さいクラス番号を選ぶ
			out.Set(i, 0, float64(floats.MaxIdx(h.RawRowView(i))))
		}
	})

	f.logger.Debug("Prediction completed",
		log.OperationKey, log.OperationPredict,
		log.PhaseKey, log.PhaseInference,
		log.PredsKey, r,
	)
	return out, nil
}

// probabilities validates X, standardizes it, prepends the bias column and
// evaluates the hypothesis.
func (f *Fitted) probabilities(method string, X mat.Matrix) (*mat.Dense, error) {
	if f.State() != model.Fitted {
		return nil, errors.NewNotFittedError("LogisticRegression", method)
	}

	op := "LogisticRegression." + method
	r, c := X.Dims()
	if r == 0 || c == 0 {
		return nil, errors.NewEmptyDataError(op)
	}
	if c != f.nFeatures {
		return nil, errors.NewDimensionError(op, f.nFeatures, c, 1)
	}

	Xs, err := preprocessing.Standardize(X)
	if err != nil {
		return nil, err
	}
	// バイアス列は入力自身の行数で作る
	return Hypothesis(addBias(Xs), f.theta), nil
}
