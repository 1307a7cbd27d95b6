// Package log defines standard attribute keys for machine learning operations.
//
// Keys follow a hierarchical naming convention ("model.name", "data.samples")
// so that fit and predict records can be filtered the same way regardless of
// which backend emitted them.

package log

// Model and Operation Context
const (
	// ModelNameKey identifies the type of model, e.g. "LogisticRegression".
	ModelNameKey = "model.name"

	// EstimatorIDKey is a unique identifier for one estimator instance.
	EstimatorIDKey = "estimator.id"

	// OperationKey specifies the operation being performed.
	// Standard values: "fit", "predict", "predict_proba", "score".
	OperationKey = "ml.operation"

	// ComponentKey identifies the package performing the operation,
	// e.g. "linear.logistic".
	ComponentKey = "ml.component"

	// PhaseKey indicates the phase of the model lifecycle.
	PhaseKey = "ml.phase"
)

// Data Shape
const (
	// SamplesKey is the number of rows in the input.
	SamplesKey = "data.samples"

	// FeaturesKey is the number of feature columns in the input, bias excluded.
	FeaturesKey = "data.features"

	// ClassesKey is the number of classes of a one-vs-all model.
	ClassesKey = "data.classes"
)

// Performance Metrics
const (
	// DurationMsKey records the execution time of an operation in milliseconds.
	DurationMsKey = "perf.duration_ms"

	// AccuracyKey records accuracy as a percentage in [0, 100].
	AccuracyKey = "metrics.accuracy"

	// LossKey records the regularized cost.
	LossKey = "metrics.loss"

	// R2ScoreKey records the coefficient of determination.
	R2ScoreKey = "metrics.r2_score"

	// IterationKey records the current gradient descent iteration.
	IterationKey = "training.iteration"
)

// Prediction Context
const (
	// PredsKey indicates the number of predictions made.
	PredsKey = "preds.count"
)

// Error and Warning Context
const (
	// ErrorCodeKey provides a structured error code for programmatic handling.
	ErrorCodeKey = "error.code"

	// ErrorTypeKey categorizes the error, e.g. "DimensionError".
	ErrorTypeKey = "error.type"

	// SuggestionKey provides a hint for resolving the issue.
	SuggestionKey = "error.suggestion"
)

// Hyperparameters
const (
	// LearningRateKey records alpha.
	LearningRateKey = "hyperparams.learning_rate"

	// RegularizationKey records the L2 coefficient lam.
	RegularizationKey = "hyperparams.regularization"

	// NumItersKey records the fixed number of gradient descent iterations.
	NumItersKey = "hyperparams.num_iters"
)

// Standard attribute values.
const (
	OperationFit          = "fit"
	OperationPredict      = "predict"
	OperationPredictProba = "predict_proba"
	OperationScore        = "score"

	PhaseTraining      = "training"
	PhaseInference     = "inference"
	PhasePreprocessing = "preprocessing"

	ErrorNotFitted         = "NOT_FITTED"
	ErrorDimensionMismatch = "DIMENSION_MISMATCH"
	ErrorEmptyData         = "EMPTY_DATA"
	ErrorInvalidInput      = "INVALID_INPUT"
	ErrorConvergence       = "CONVERGENCE_FAILURE"
)
