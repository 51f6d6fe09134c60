// Package domain defines the core business entities and errors.
package domain

import (
	"errors"
	"fmt"
)

// Common domain errors used across the application. The specific errors
// wrap ErrValidation so callers can match the whole class at once.
var (
	// ErrValidation is the class of all entity validation failures.
	ErrValidation = errors.New("validation failed")

	// ErrInvalidID is returned when an ID is missing or malformed.
	ErrInvalidID = fmt.Errorf("%w: invalid ID", ErrValidation)

	// ErrEmptyName is returned when a required name field is empty.
	ErrEmptyName = fmt.Errorf("%w: name cannot be empty", ErrValidation)

	// ErrNegativeNumber is returned when a numeric field that must be
	// non-negative carries a negative value.
	ErrNegativeNumber = fmt.Errorf("%w: value cannot be negative", ErrValidation)

	// ErrInvalidSaleStatus is returned when a sale status is not one of
	// the enumerated values.
	ErrInvalidSaleStatus = fmt.Errorf("%w: invalid sale status", ErrValidation)
)
