// Package logreg is a small Go library for multiclass logistic regression.
//
// A one-vs-all model is trained with batch gradient descent and L2
// regularization. Features are standardized per batch, a bias column is
// prepended, and the cost of every iteration is recorded so the learning curve
// can be plotted.
//
// # Installation
//
//	go get github.com/YuminosukeSato/logreg
//
// # Quick Start
//
//	package main
//
//	import (
//	    "fmt"
//	    "log"
//
//	    "github.com/YuminosukeSato/logreg/linear"
//	    "github.com/YuminosukeSato/logreg/metrics"
//	    "gonum.org/v1/gonum/mat"
//	)
//
//	func main() {
//	    X := mat.NewDense(4, 1, []float64{0, 1, 10, 11})
//	    y := []int{0, 0, 1, 1}
//
//	    lr := linear.NewLogisticRegression(
//	        linear.WithAlpha(0.5),
//	        linear.WithLambda(0),
//	        linear.WithNumIters(150),
//	    )
//	    fitted, err := lr.Fit(X, y, 2)
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//
//	    yPred, err := fitted.Predict(X)
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//
//	    acc, _ := lr.Accuracy(metrics.Labels(y), yPred)
//	    fmt.Println("accuracy:", acc) // 100
//	}
//
// # Packages
//
//   - linear: LogisticRegression, Fitted and the cost History
//   - preprocessing: per-column standardization
//   - metrics: Accuracy and R²
//   - plotting: cost curve rendering with gonum/plot
//   - config: YAML and environment configuration
//   - core/model: Classifier interfaces and estimator state
//   - core/parallel: chunked parallel loops
//   - pkg/errors: structured errors and warnings
//   - pkg/log: structured logging (slog and zerolog backends)
//
// # Performance
//
// Standardization, bias prepending and row-wise argmax switch to parallel
// chunks for large inputs. Results do not depend on the number of CPU cores,
// so repeated fits on the same data are bit-identical.
//
// # License
//
// logreg is released under the MIT License.
package logreg
