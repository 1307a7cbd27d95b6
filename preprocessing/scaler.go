// Package preprocessing は特徴量の標準化を提供する
package preprocessing

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"

	"github.com/YuminosukeSato/logreg/core/model"
	"github.com/YuminosukeSato/logreg/core/parallel"
	"github.com/YuminosukeSato/logreg/pkg/errors"
)

// Epsilon は標準偏差とlogの引数に加える平滑化定数。
// 定数列の標準化で0除算を避け、コスト計算でlog(0)を避ける。
const Epsilon = 1e-5

// 要素数がこの値を超える場合は列ごとに並列処理する
const parallelThreshold = 1 << 15

// StandardScaler は列ごとに (x - mean) / (std + Epsilon) を適用する標準化器。
// std は母標準偏差（自由度0）を使う。
type StandardScaler struct {
	state model.EstimatorState

	// Mean は各特徴量の平均値
	Mean []float64

	// Scale は各特徴量の std + Epsilon
	Scale []float64

	// NFeatures は特徴量の数
	NFeatures int
}

// NewStandardScaler は新しいStandardScalerを作成する
//
// 使用例:
//
//	scaler := preprocessing.NewStandardScaler()
//	XScaled, err := scaler.FitTransform(X)
func NewStandardScaler() *StandardScaler {
	return &StandardScaler{}
}

// State は学習状態を返す
func (s *StandardScaler) State() model.EstimatorState {
	return s.state
}

// Fit はデータから各列の平均と std + Epsilon を計算する
//
// パラメータ:
//   - X: n_samples × n_features の行列
//
// 戻り値:
//   - error: 空データの場合 ErrEmptyData
func (s *StandardScaler) Fit(X mat.Matrix) error {
	r, c := X.Dims()
	if r == 0 || c == 0 {
		return errors.NewEmptyDataError("StandardScaler.Fit")
	}

	mean := make([]float64, c)
	scale := make([]float64, c)

	forEachColumn(r, c, func(j int) {
		col := mat.Col(nil, j, X)
		m, std := stat.PopMeanStdDev(col, nil)
		mean[j] = m
		scale[j] = std + Epsilon
	})

	s.Mean = mean
	s.Scale = scale
	s.NFeatures = c
	s.state = model.Fitted
	return nil
}

// Transform は学習済みの統計量でデータを標準化した新しい行列を返す。
// 入力行列は変更しない。
func (s *StandardScaler) Transform(X mat.Matrix) (*mat.Dense, error) {
	if s.state != model.Fitted {
		return nil, errors.NewNotFittedError("StandardScaler", "Transform")
	}

	r, c := X.Dims()
	if r == 0 || c == 0 {
		return nil, errors.NewEmptyDataError("StandardScaler.Transform")
	}
	if c != s.NFeatures {
		return nil, errors.NewDimensionError("StandardScaler.Transform", s.NFeatures, c, 1)
	}

	result := mat.NewDense(r, c, nil)
	forEachColumn(r, c, func(j int) {
		for i := 0; i < r; i++ {
			result.Set(i, j, (X.At(i, j)-s.Mean[j])/s.Scale[j])
		}
	})

	return result, nil
}

// FitTransform はFitとTransformを同じデータに対して実行する
func (s *StandardScaler) FitTransform(X mat.Matrix) (*mat.Dense, error) {
	if err := s.Fit(X); err != nil {
		return nil, err
	}
	return s.Transform(X)
}

// String はスケーラーの文字列表現を返す
func (s *StandardScaler) String() string {
	if s.state != model.Fitted {
		return fmt.Sprintf("StandardScaler(epsilon=%g)", Epsilon)
	}
	return fmt.Sprintf("StandardScaler(epsilon=%g, n_features=%d)", Epsilon, s.NFeatures)
}

// Standardize はXのバッチ自身の統計量で各列を標準化した新しい行列を返す。
// 学習時の統計量は再利用しない。予測バッチが小さい、あるいは偏っている場合は
// 学習時と異なる変換になる点に注意。
func Standardize(X mat.Matrix) (*mat.Dense, error) {
	return NewStandardScaler().FitTransform(X)
}

// forEachColumn は列ごとにfnを呼ぶ。列同士は独立なので大きな入力では並列に処理する。
func forEachColumn(rows, cols int, fn func(j int)) {
	each := func(start, end int) {
		for j := start; j < end; j++ {
			fn(j)
		}
	}
	if rows*cols <= parallelThreshold {
		each(0, cols)
		return
	}
	parallel.Parallelize(cols, each)
}
