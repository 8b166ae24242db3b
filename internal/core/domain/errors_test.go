package domain

import (
	"errors"
	"fmt"
	"testing"
)

func TestSpecificErrorsWrapSentinels(t *testing.T) {
	tests := []struct {
		err      error
		sentinel error
	}{
		{ErrUsernameTaken, ErrConflict},
		{ErrProgramExists, ErrConflict},
		{ErrUserNotFound, ErrNotFound},
		{ErrClientNotFound, ErrNotFound},
		{ErrProgramNotFound, ErrNotFound},
	}

	for _, tt := range tests {
		wrapped := fmt.Errorf("repo: %w", tt.err)
		if !errors.Is(wrapped, tt.sentinel) {
			t.Errorf("%v should match %v", tt.err, tt.sentinel)
		}
		if !errors.Is(wrapped, tt.err) {
			t.Errorf("%v should match itself through wrapping", tt.err)
		}
	}
}

func TestValidationError(t *testing.T) {
	err := &ValidationError{Errors: []FieldError{
		{Field: "name", Message: "is required"},
		{Field: "age", Message: "must be a non-negative integer"},
	}}

	if !errors.Is(err, ErrInvalidInput) {
		t.Fatal("validation error should unwrap to ErrInvalidInput")
	}
	if got, want := err.Error(), "name is required; age must be a non-negative integer"; got != want {
		t.Fatalf("Error() = %q, want %q", got, want)
	}

	single := NewValidationError("outcome", "is required")
	if len(single.Errors) != 1 || single.Error() != "outcome is required" {
		t.Fatalf("unexpected single error: %+v", single)
	}
}
