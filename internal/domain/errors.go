package domain

import (
	"errors"
	"fmt"
)

// ErrClientNotFound is returned when a referenced client id does not exist
type ErrClientNotFound struct {
	ID int64
}

func (e *ErrClientNotFound) Error() string {
	return fmt.Sprintf("client not found with ID: %d", e.ID)
}

// ErrUniquenessViolation is returned when an email or phone number is already taken
type ErrUniquenessViolation struct {
	Field string
	Value string
}

func (e *ErrUniquenessViolation) Error() string {
	if e.Value == "" {
		return fmt.Sprintf("%s is already in use", e.Field)
	}
	return fmt.Sprintf("%s %s is already in use", e.Field, e.Value)
}

// ValidationError represents an error that occurs due to invalid input or parameters
type ValidationError struct {
	Message string
}

// Error implements the error interface
func (e ValidationError) Error() string {
	return fmt.Sprintf("validation error: %s", e.Message)
}

// NewValidationError creates a new validation error with the given message
func NewValidationError(message string) error {
	return ValidationError{
		Message: message,
	}
}

// IsExpected reports whether err is a client outcome the caller is meant to handle:
// a missing client, a taken email or phone, or rejected input
func IsExpected(err error) bool {
	var notFound *ErrClientNotFound
	var unique *ErrUniquenessViolation
	var validation ValidationError
	return errors.As(err, &notFound) || errors.As(err, &unique) || errors.As(err, &validation)
}
