package store

import (
	"errors"
	"fmt"
)

// Common store errors used across all store implementations.
var (
	// ErrNotFound is returned when a requested entity does not exist in the
	// store, or is filtered out by its deletion state. This is the generic
	// version of the entity-specific not found errors.
	ErrNotFound = errors.New("entity not found")

	// ErrDuplicate is returned when an operation would violate a unique
	// constraint (e.g., a client with the same email).
	ErrDuplicate = errors.New("entity already exists")

	// ErrInvalidEntity is returned when an entity fails a database
	// constraint other than uniqueness. Check the wrapped error for details.
	ErrInvalidEntity = errors.New("invalid entity")

	// ErrEmptyPatch is returned when an update is attempted with no fields
	// to change.
	ErrEmptyPatch = errors.New("no fields to update")

	// Entity-specific "not found" errors

	// ErrClientNotFound indicates that the requested client does not exist.
	ErrClientNotFound = fmt.Errorf("%w: client", ErrNotFound)

	// ErrProductNotFound indicates that the requested product does not exist.
	ErrProductNotFound = fmt.Errorf("%w: product", ErrNotFound)

	// ErrSaleNotFound indicates that the requested sale does not exist.
	ErrSaleNotFound = fmt.Errorf("%w: sale", ErrNotFound)

	// Entity-specific "duplicate" errors

	// ErrEmailExists indicates that a client with the given email already
	// exists.
	ErrEmailExists = fmt.Errorf("%w: email", ErrDuplicate)

	// ErrSkuExists indicates that a product with the given SKU already
	// exists.
	ErrSkuExists = fmt.Errorf("%w: sku", ErrDuplicate)
)

// IsNotFoundError checks if the error is any kind of "not found" error.
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsDuplicateError checks if the error is any kind of "duplicate" error.
func IsDuplicateError(err error) bool {
	return errors.Is(err, ErrDuplicate)
}
