package domain

import "errors"

var (
	// ErrInvalidInput indicates a (year, month) pair the engine cannot expand.
	ErrInvalidInput = errors.New("invalid input")
)
