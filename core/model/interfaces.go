package model

import "gonum.org/v1/gonum/mat"

// Predictor は予測可能なモデルのインターフェース
type Predictor interface {
	// Predict は入力データに対するクラスを n×1 の列ベクトルで返す
	Predict(X mat.Matrix) (mat.Matrix, error)
}

// ProbabilisticPredictor はクラス確率を返せるモデルのインターフェース
type ProbabilisticPredictor interface {
	// PredictProba は n×n_classes の確率行列を返す
	PredictProba(X mat.Matrix) (mat.Matrix, error)
}

// Classifier は学習済み分類器のインターフェース
type Classifier interface {
	Predictor
	ProbabilisticPredictor

	// NClasses は学習時のクラス数を返す
	NClasses() int
}
