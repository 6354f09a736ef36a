package domain

import (
	"errors"
	"fmt"
)

// ErrInvalidArgument is returned when an entity is constructed with data that
// violates its invariants. Every specific validation error below wraps it, so
// callers can test for the whole class with errors.Is.
var ErrInvalidArgument = errors.New("invalid argument")

// Validation errors shared by all entities.
var (
	// ErrEmptyID is returned when an entity is given an empty identifier.
	ErrEmptyID = fmt.Errorf("%w: id cannot be empty", ErrInvalidArgument)

	// ErrInvalidLevel is returned when a program level is not one of the known levels.
	ErrInvalidLevel = fmt.Errorf("%w: unknown program level", ErrInvalidArgument)
)
