package linearmodel

import "errors"

var (
	ErrNoOptions           = errors.New("no initialized model options")
	ErrNoTrainingData      = errors.New("no training data")
	ErrTargetLenMismatch   = errors.New("target length does not match training length")
	ErrInsufficientData    = errors.New("insufficient distinct training points")
	ErrNonFinite           = errors.New("training data must be finite")
	ErrInvalidMinDistinctX = errors.New("minimum distinct x values must be at least 2")
	ErrUntrained           = errors.New("model has not been trained yet")
)
