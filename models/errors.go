package models

import (
	"errors"
	"fmt"
)

var (
	// ErrMissingColumn marks a dataset without one of its required columns.
	ErrMissingColumn = errors.New("missing required column")
	// ErrDuplicateState marks a dataset listing the same state twice.
	ErrDuplicateState = errors.New("duplicate state")
	// ErrInvalidValue marks a cell that could not be parsed.
	ErrInvalidValue = errors.New("invalid value")
	// ErrStateNotFound is matched by every StateNotFoundError.
	ErrStateNotFound = errors.New("state not found")
)

// DataLoadError is returned when a dataset cannot be read or is malformed.
// It is fatal for estimator construction.
type DataLoadError struct {
	Source string
	Column string
	Err    error
}

func (e *DataLoadError) Error() string {
	if e.Column != "" {
		return fmt.Sprintf("load %s: column %q: %v", e.Source, e.Column, e.Err)
	}
	return fmt.Sprintf("load %s: %v", e.Source, e.Err)
}

func (e *DataLoadError) Unwrap() error { return e.Err }

// StateNotFoundError is returned by lookups for an unknown state name.
type StateNotFoundError struct {
	State string
}

func (e *StateNotFoundError) Error() string {
	return fmt.Sprintf("state %q not found", e.State)
}

func (e *StateNotFoundError) Is(target error) bool {
	return target == ErrStateNotFound
}
