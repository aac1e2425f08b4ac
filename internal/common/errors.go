// Package common defines the error kinds shared by the storage, service and
// presentation layers of taskman. Callers should match them with errors.Is;
// messages are for humans only.
package common

import (
	"errors"
	"fmt"
)

var (
	// Repository-level errors.
	ErrNotFound = errors.New("not found")

	// ErrStore wraps every persistence failure that has no more specific kind:
	// constraint violations, schema bootstrap failures, I/O errors.
	ErrStore = errors.New("store error")

	// Auth errors.
	ErrDuplicateEmail     = errors.New("email already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")

	// Validation errors, rejected before the store is touched.
	ErrValidation  = errors.New("validation error")
	ErrEmptyUpdate = fmt.Errorf("%w: nothing to update", ErrValidation)
)
