// Package model defines the contracts shared by fitted estimators.
package model

// EstimatorState はモデルの学習状態を表す
type EstimatorState int

const (
	// NotFitted はモデルが未学習の状態
	NotFitted EstimatorState = iota
	// Fitted はモデルが学習済みの状態
	Fitted
)

// String は状態名を返す
func (s EstimatorState) String() string {
	switch s {
	case NotFitted:
		return "NotFitted"
	case Fitted:
		return "Fitted"
	default:
		return "Unknown"
	}
}

// StateReporter は学習状態を報告できるモデルのインターフェース
type StateReporter interface {
	State() EstimatorState
}
