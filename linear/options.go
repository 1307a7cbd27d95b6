package linear

import "github.com/YuminosukeSato/logreg/pkg/log"

// Default hyperparameters.
const (
	DefaultAlpha    = 0.5
	DefaultLambda   = 0.01
	DefaultNumIters = 150
)

// Option is a function that configures LogisticRegression
type Option func(*LogisticRegression)

// WithAlpha sets the learning rate
func WithAlpha(alpha float64) Option {
	return func(lr *LogisticRegression) {
		lr.alpha = alpha
	}
}

// WithLambda sets the L2 regularization coefficient
func WithLambda(lam float64) Option {
	return func(lr *LogisticRegression) {
		lr.lam = lam
	}
}

// WithNumIters sets the fixed number of gradient descent iterations
func WithNumIters(n int) Option {
	return func(lr *LogisticRegression) {
		lr.numIters = n
	}
}

// WithLogger sets the logger used for fit and predict records.
// The estimator adds its model name and ID to every record.
func WithLogger(logger log.Logger) Option {
	return func(lr *LogisticRegression) {
		lr.logger = logger
	}
}

// WithLogEvery logs the cost at debug level every n iterations. Zero disables it.
func WithLogEvery(n int) Option {
	return func(lr *LogisticRegression) {
		lr.logEvery = n
	}
}
