package core

import (
	"errors"
	"fmt"
)

// Error taxonomy. Each sentinel maps to one HTTP status at the API
// boundary; everything that matches none of them is an internal error.
var (
	ErrInvalidInput = errors.New("invalid input")
	ErrUnauthorized = errors.New("unauthorized")
	ErrNotFound     = errors.New("not found")
	ErrConflict     = errors.New("conflict")
)

// Invalid builds a validation error carrying ErrInvalidInput.
func Invalid(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidInput, fmt.Sprintf(format, args...))
}
