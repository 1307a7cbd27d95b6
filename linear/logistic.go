// Package linear implements one-vs-all logistic regression trained by batch
// gradient descent with L2 regularization.
//
// Fit standardizes a copy of X, prepends a bias column and runs a fixed number
// of gradient descent iterations. It returns a *Fitted that holds the learned
// parameters and the cost history:
//
//	lr := linear.NewLogisticRegression(linear.WithAlpha(0.5), linear.WithLambda(0))
//	fitted, err := lr.Fit(X, y, 2)
//	if err != nil {
//	    return err
//	}
//	yPred, err := fitted.Predict(X)
//
// Predict and PredictProba standardize each input batch with that batch's own
// mean and standard deviation. Training statistics are not reused, so small or
// skewed prediction batches are scaled differently from the training data.
package linear

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"gonum.org/v1/gonum/mat"

	"github.com/YuminosukeSato/logreg/metrics"
	"github.com/YuminosukeSato/logreg/pkg/errors"
	"github.com/YuminosukeSato/logreg/pkg/log"
	"github.com/YuminosukeSato/logreg/preprocessing"
)

// LogisticRegression holds the hyperparameters of a one-vs-all logistic
// regression. Hyperparameters are fixed at construction and are not validated.
type LogisticRegression struct {
	alpha    float64 // Learning rate
	lam      float64 // L2 regularization coefficient
	numIters int     // Fixed number of gradient descent iterations
	logEvery int     // Debug log interval in iterations, 0 disables

	id     string
	logger log.Logger
}

// NewLogisticRegression creates a new LogisticRegression with alpha=0.5,
// lam=0.01 and numIters=150 unless overridden by options.
func NewLogisticRegression(opts ...Option) *LogisticRegression {
	lr := &LogisticRegression{
		alpha:    DefaultAlpha,
		lam:      DefaultLambda,
		numIters: DefaultNumIters,
		id:       uuid.NewString(),
	}

	for _, opt := range opts {
		opt(lr)
	}

	if lr.logger == nil {
		lr.logger = log.GetLoggerWithName("linear.logistic")
	}
	lr.logger = lr.logger.With(
		log.ModelNameKey, "LogisticRegression",
		log.EstimatorIDKey, lr.id,
	)

	return lr
}

// Alpha returns the learning rate.
func (lr *LogisticRegression) Alpha() float64 { return lr.alpha }

// Lambda returns the L2 regularization coefficient.
func (lr *LogisticRegression) Lambda() float64 { return lr.lam }

// NumIters returns the number of gradient descent iterations run by Fit.
func (lr *LogisticRegression) NumIters() int { return lr.numIters }

// ID returns the unique identifier attached to this estimator's log records.
func (lr *LogisticRegression) ID() string { return lr.id }

// String returns a short description of the hyperparameters.
func (lr *LogisticRegression) String() string {
	return fmt.Sprintf("LogisticRegression(alpha=%g, lam=%g, num_iters=%d)", lr.alpha, lr.lam, lr.numIters)
}

// Fit trains one weight row per class on X (m × n) and labels y, where every
// y[i] is a class index in [0, nClasses). X is not modified.
//
// Errors:
//   - ErrEmptyData when X has no rows or no columns
//   - DimensionError when len(y) differs from the number of rows of X
//   - ValidationError when nClasses < 1 or a label is out of range
//
// Both DimensionError and ValidationError match errors.ErrInvalidArgument.
func (lr *LogisticRegression) Fit(X mat.Matrix, y []int, nClasses int) (fitted *Fitted, err error) {
	defer errors.Recover(&err, "LogisticRegression.Fit")

	start := time.Now()

	m, n := X.Dims()
	if m == 0 || n == 0 {
		return nil, errors.NewEmptyDataError("LogisticRegression.Fit")
	}
	if len(y) != m {
		return nil, errors.NewDimensionError("LogisticRegression.Fit", m, len(y), 0)
	}
	if nClasses < 1 {
		return nil, errors.NewValidationError("nClasses", "must be at least 1", nClasses)
	}
	for _, k := range y {
		if k < 0 || k >= nClasses {
			return nil, errors.NewValidationError("y", fmt.Sprintf("class index out of range [0, %d)", nClasses), k)
		}
	}

	lr.logger.Debug("Training started",
		log.OperationKey, log.OperationFit,
		log.PhaseKey, log.PhaseTraining,
		log.SamplesKey, m,
		log.FeaturesKey, n,
		log.ClassesKey, nClasses,
		log.LearningRateKey, lr.alpha,
		log.RegularizationKey, lr.lam,
		log.NumItersKey, lr.numIters,
	)

	Xs, err := preprocessing.Standardize(X)
	if err != nil {
		return nil, err
	}
	Xb := addBias(Xs)
	yCls := oneHot(y, nClasses)

	theta := mat.NewDense(nClasses, n+1, nil)
	history := History{
		Iters: make([]int, 0, lr.numIters),
		Costs: make([]float64, 0, lr.numIters),
	}

	step := lr.alpha / float64(m)
	var thetaReg, grad mat.Dense
	for it := 0; it < lr.numIters; it++ {
		// バイアス列を0にしたコピーで重み減衰を計算する
		thetaReg.CloneFrom(theta)
		for k := 0; k < nClasses; k++ {
			thetaReg.Set(k, 0, 0)
		}

		h := Hypothesis(Xb, theta)
		h.Sub(h, yCls)

		// theta ← theta - (alpha/m)·[(h - y_cls)ᵀ·Xb + lam·theta_reg]
		grad.Mul(h.T(), Xb)
		thetaReg.Scale(lr.lam, &thetaReg)
		grad.Add(&grad, &thetaReg)
		grad.Scale(step, &grad)
		theta.Sub(theta, &grad)

		cost := Cost(Xb, yCls, theta, lr.lam)
		history.Iters = append(history.Iters, it)
		history.Costs = append(history.Costs, cost)

		if lr.logEvery > 0 && it%lr.logEvery == 0 {
			lr.logger.Debug("Gradient descent step",
				log.IterationKey, it,
				log.LossKey, cost,
			)
		}
	}

	lr.checkConvergence(history)
	if err := errors.CheckMatrix("theta", theta, lr.numIters); err != nil {
		errors.Warn(err)
	}

	fitted = &Fitted{
		theta:     theta,
		nClasses:  nClasses,
		nFeatures: n,
		history:   history,
		logger:    lr.logger,
	}

	fields := []any{
		log.OperationKey, log.OperationFit,
		log.SamplesKey, m,
		log.ClassesKey, nClasses,
		log.NumItersKey, lr.numIters,
		log.DurationMsKey, time.Since(start).Milliseconds(),
	}
	if last, ok := history.Last(); ok {
		fields = append(fields, log.LossKey, last)
	}
	lr.logger.Info("Training completed", fields...)

	return fitted, nil
}

// checkConvergence warns when the cost diverged. Gradient descent runs a fixed
// number of iterations, so a final cost above the first one is the only signal.
func (lr *LogisticRegression) checkConvergence(h History) {
	if h.Len() == 0 {
		return
	}
	first := h.Costs[0]
	last, _ := h.Last()

	if err := errors.CheckScalar("cost", last, h.Len()-1); err != nil {
		lr.logger.Warn("Cost is not finite",
			log.ErrorCodeKey, log.ErrorConvergence,
			log.SuggestionKey, "lower alpha",
		)
		errors.Warn(err)
		return
	}

	if last > first {
		lr.logger.Warn("Cost increased during training",
			log.ErrorCodeKey, log.ErrorConvergence,
			log.LossKey, last,
			log.SuggestionKey, "lower alpha or lam",
		)
		errors.Warn(errors.NewConvergenceWarning("GradientDescent", lr.numIters,
			fmt.Sprintf("cost increased from %.6g to %.6g", first, last)))
	}
}

// Accuracy returns the percentage of labels in y that equal yPred.
func (lr *LogisticRegression) Accuracy(y, yPred mat.Matrix) (float64, error) {
	acc, err := metrics.Accuracy(y, yPred)
	if err != nil {
		return 0, err
	}
	lr.logger.Debug("Accuracy computed", log.OperationKey, log.OperationScore, log.AccuracyKey, acc)
	return acc, nil
}

// Score returns the coefficient of determination R² of yPred against y.
func (lr *LogisticRegression) Score(y, yPred mat.Matrix) (float64, error) {
	r2, err := metrics.R2Score(y, yPred)
	if err != nil {
		return 0, err
	}
	lr.logger.Debug("Score computed", log.OperationKey, log.OperationScore, log.R2ScoreKey, r2)
	return r2, nil
}
