package core

import (
	"errors"
	"fmt"
)

// ErrInvalidParameter is the only input error surfaced by the engines.
// It is reported before any computation starts.
var ErrInvalidParameter = errors.New("invalid parameter")

// ParameterError names the offending parameter.
//
// errors.Is(err, ErrInvalidParameter) holds for every ParameterError.
type ParameterError struct {
	Name  string
	Value any
}

// NewParameterError returns a ParameterError for name.
func NewParameterError(name string, value any) *ParameterError {
	return &ParameterError{Name: name, Value: value}
}

func (e *ParameterError) Error() string {
	return fmt.Sprintf("%s: %s=%v", ErrInvalidParameter, e.Name, e.Value)
}

func (e *ParameterError) Unwrap() error { return ErrInvalidParameter }
