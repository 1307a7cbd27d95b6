package linear

import (
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/YuminosukeSato/logreg/core/parallel"
	"github.com/YuminosukeSato/logreg/preprocessing"
)

// 並列処理の閾値（この値以下の行数では逐次処理を使用）
const parallelThreshold = 1000

// Sigmoid は 1/(1+exp(-z)) を返す。クランプはしない。
func Sigmoid(z float64) float64 {
	return 1 / (1 + math.Exp(-z))
}

// Hypothesis は sigmoid(Xb · thetaᵀ) を計算し、m × n_classes の確率行列を返す。
// Xb は先頭にバイアス列を含んでいること。
func Hypothesis(Xb, theta mat.Matrix) *mat.Dense {
	var h mat.Dense
	h.Mul(Xb, theta.T())
	h.Apply(func(_, _ int, v float64) float64 {
		return Sigmoid(v)
	}, &h)
	return &h
}

// Cost は正則化付きの負の対数尤度を計算する
//
//	J = -(1/m) Σ [y·log(h+ε) + (1-y)·log(1-h+ε)] + (lam/2m)·Σ theta[:,1:]²
//
// ε は preprocessing.Epsilon。バイアス列（theta の0列目）は罰則に含めない。
func Cost(Xb, yCls, theta mat.Matrix, lam float64) float64 {
	m, _ := Xb.Dims()
	h := Hypothesis(Xb, theta)

	rows, cols := h.Dims()
	var ll float64
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			y := yCls.At(i, j)
			p := h.At(i, j)
			ll += y*math.Log(p+preprocessing.Epsilon) + (1-y)*math.Log(1-p+preprocessing.Epsilon)
		}
	}

	k, n := theta.Dims()
	var penalty float64
	for i := 0; i < k; i++ {
		for j := 1; j < n; j++ {
			w := theta.At(i, j)
			penalty += w * w
		}
	}

	return -ll/float64(m) + lam/(2*float64(m))*penalty
}

// addBias は先頭に1の列を追加した新しい行列を返す
// X_with_intercept = [1, X]
func addBias(X *mat.Dense) *mat.Dense {
	r, c := X.Dims()
	Xb := mat.NewDense(r, c+1, nil)

	parallel.ParallelizeWithThreshold(r, parallelThreshold, func(start, end int) {
		for i := start; i < end; i++ {
			row := Xb.RawRowView(i)
			row[0] = 1.0 // 切片項
			copy(row[1:], X.RawRowView(i))
		}
	})
	return Xb
}

// oneHot はクラスインデックスから one-vs-all のラベル行列を作る
func oneHot(y []int, nClasses int) *mat.Dense {
	yCls := mat.NewDense(len(y), nClasses, nil)
	for i, k := range y {
		yCls.Set(i, k, 1)
	}
	return yCls
}
