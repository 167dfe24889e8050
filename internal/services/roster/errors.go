package roster

import (
	"errors"
	"fmt"
)

// Define errors
var (
	ErrPlayerNotFound = errors.New("player not found")
	ErrGameNotFound   = errors.New("game not found")
)

// ValidationError reports bad or missing required input. Handlers match it
// with errors.As to distinguish caller mistakes from storage failures.
type ValidationError struct {
	// Field is the name of the offending input field
	Field string

	// Reason describes what was wrong with it
	Reason string
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// NewValidationError creates a ValidationError for the given field
func NewValidationError(field, reason string) *ValidationError {
	return &ValidationError{Field: field, Reason: reason}
}
