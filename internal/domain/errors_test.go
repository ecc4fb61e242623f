package domain

import (
	"errors"
	"fmt"
	"testing"
)

func TestErrClientNotFound_Error(t *testing.T) {
	err := &ErrClientNotFound{ID: 12}

	expected := "client not found with ID: 12"
	if err.Error() != expected {
		t.Errorf("Expected error message '%s', got '%s'", expected, err.Error())
	}
}

func TestErrUniquenessViolation_Error(t *testing.T) {
	err1 := &ErrUniquenessViolation{Field: "email", Value: "borisivanov@mail.ru"}

	expected1 := "email borisivanov@mail.ru is already in use"
	if err1.Error() != expected1 {
		t.Errorf("Expected error message '%s', got '%s'", expected1, err1.Error())
	}

	// Without the offending value
	err2 := &ErrUniquenessViolation{Field: "phone_number"}

	expected2 := "phone_number is already in use"
	if err2.Error() != expected2 {
		t.Errorf("Expected error message '%s', got '%s'", expected2, err2.Error())
	}
}

func TestValidationError_Error(t *testing.T) {
	err := NewValidationError("first_name is required")

	expected := "validation error: first_name is required"
	if err.Error() != expected {
		t.Errorf("Expected error message '%s', got '%s'", expected, err.Error())
	}
}

func TestErrorsAsThroughWrapping(t *testing.T) {
	wrapped := fmt.Errorf("failed to add phone: %w", &ErrClientNotFound{ID: 7})

	var notFound *ErrClientNotFound
	if !errors.As(wrapped, &notFound) {
		t.Fatal("errors.As() failed to find ErrClientNotFound")
	}
	if notFound.ID != 7 {
		t.Errorf("Expected ID 7, got %d", notFound.ID)
	}

	wrapped = fmt.Errorf("failed to create client: %w", &ErrUniquenessViolation{Field: "email"})
	var unique *ErrUniquenessViolation
	if !errors.As(wrapped, &unique) {
		t.Fatal("errors.As() failed to find ErrUniquenessViolation")
	}

	wrapped = fmt.Errorf("failed to find clients: %w", NewValidationError("empty filter"))
	var validation ValidationError
	if !errors.As(wrapped, &validation) {
		t.Fatal("errors.As() failed to find ValidationError")
	}
	if validation.Message != "empty filter" {
		t.Errorf("Expected message 'empty filter', got '%s'", validation.Message)
	}
}

func TestIsExpected(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected bool
	}{
		{"not found", &ErrClientNotFound{ID: 3}, true},
		{"wrapped not found", fmt.Errorf("lookup: %w", &ErrClientNotFound{ID: 3}), true},
		{"uniqueness", &ErrUniquenessViolation{Field: "email"}, true},
		{"validation", NewValidationError("invalid client id: 0"), true},
		{"driver failure", errors.New("connection refused"), false},
		{"nil", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsExpected(tt.err); got != tt.expected {
				t.Errorf("IsExpected(%v) = %v, want %v", tt.err, got, tt.expected)
			}
		})
	}
}
