package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidCoordinate is returned when a coordinate pair is malformed
	// or one of its components falls outside the valid lat/lon range.
	ErrInvalidCoordinate = errors.New("invalid coordinate")
	// ErrInvalidRadius is returned when a sphere radius is not a finite positive number.
	ErrInvalidRadius = errors.New("invalid radius")
)

// CoordinateError describes why a coordinate was rejected.
// It matches ErrInvalidCoordinate under errors.Is.
type CoordinateError struct {
	Field  string
	Value  any
	Reason string
}

func (e *CoordinateError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("%s: %s", ErrInvalidCoordinate, e.Reason)
	}
	return fmt.Sprintf("%s: %s=%v: %s", ErrInvalidCoordinate, e.Field, e.Value, e.Reason)
}

func (e *CoordinateError) Unwrap() error { return ErrInvalidCoordinate }
