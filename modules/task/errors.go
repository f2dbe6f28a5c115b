package task

import (
	"errors"
	"fmt"
)

// Sentinel errors for task operations.
var (
	// ErrTaskNotFound is returned when the requested task does not exist.
	ErrTaskNotFound = errors.New("task not found")

	// ErrTaskExists is returned when an insert collides with an existing id.
	// With uuid generation this should never happen, but the repository
	// guards the uniqueness invariant anyway.
	ErrTaskExists = errors.New("task already exists")
)

// ValidationError reports a missing or invalid field on a mutation request.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed: %s %s", e.Field, e.Reason)
}

// missingField builds the ValidationError for a required field that was
// empty or absent.
func missingField(field string) *ValidationError {
	return &ValidationError{Field: field, Reason: "is required"}
}
