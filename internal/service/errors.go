package service

import "errors"

var (
	ErrInvalidCriterion = errors.New("invalid search criterion")
	ErrInvalidField     = errors.New("field cannot be updated")
	ErrInvalidValue     = errors.New("invalid value for field")
	ErrInvalidOperation = errors.New("invalid inventory operation")
)
