package metrics

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"

	"github.com/YuminosukeSato/logreg/pkg/errors"
)

// R2Score は決定係数 R² = 1 - SS_res/SS_tot を計算する。
// SS_tot は yTrue の平均からの二乗和。
//
// yTrue の分散が0の場合は R² が定義されないため UndefinedMetricWarning を出し、
// 予測が完全一致なら 1.0、そうでなければ 0.0 を返す。
func R2Score(yTrue, yPred mat.Matrix) (float64, error) {
	t, p, err := columnPair("R2Score", yTrue, yPred)
	if err != nil {
		return 0, err
	}

	yMean := stat.Mean(t, nil)

	// 全変動（TSS）と残差変動（RSS）
	dev := make([]float64, len(t))
	res := make([]float64, len(t))
	for i := range t {
		dev[i] = t[i] - yMean
		res[i] = t[i] - p[i]
	}
	tss := floats.Dot(dev, dev)
	rss := floats.Dot(res, res)

	if tss == 0 {
		result := 0.0
		if rss == 0 {
			result = 1.0
		}
		errors.Warn(errors.NewUndefinedMetricWarning("r2_score", "zero variance in y_true", result))
		return result, nil
	}

	return 1 - rss/tss, nil
}

// columnPair は2つの n×1 行列を検証してスライスに変換する
func columnPair(op string, yTrue, yPred mat.Matrix) ([]float64, []float64, error) {
	rTrue, cTrue := yTrue.Dims()
	rPred, cPred := yPred.Dims()

	if rTrue == 0 || cTrue == 0 {
		return nil, nil, errors.NewEmptyDataError(op)
	}
	if cTrue != 1 || cPred != 1 {
		return nil, nil, errors.NewValueError(op, "inputs must be column vectors (n×1)")
	}
	if rPred != rTrue {
		return nil, nil, errors.NewDimensionError(op, rTrue, rPred, 0)
	}

	return mat.Col(nil, 0, yTrue), mat.Col(nil, 0, yPred), nil
}
