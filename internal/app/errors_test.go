package app

import (
	"errors"
	"testing"
)

func TestOperationError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *OperationError
		expected string
	}{
		{
			name:     "nil error",
			err:      nil,
			expected: "",
		},
		{
			name:     "op only",
			err:      &OperationError{Op: "paint"},
			expected: "paint",
		},
		{
			name:     "op and target",
			err:      &OperationError{Op: "load-theme", Target: "/themes/blue.toml"},
			expected: "load-theme /themes/blue.toml",
		},
		{
			name:     "op, target, and context",
			err:      &OperationError{Op: "add-window", Target: "Editor", Context: "modal running"},
			expected: "add-window Editor (modal running)",
		},
		{
			name:     "full error chain",
			err:      &OperationError{Op: "add-window", Target: "Editor", Context: "desktop", Err: ErrWindowAttached},
			expected: "add-window Editor (desktop): window already attached",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.expected {
				t.Errorf("Error() = %q, expected %q", got, tt.expected)
			}
		})
	}
}

func TestOperationError_WithContext(t *testing.T) {
	err := NewOperationError("remove-window", "Find", ErrWindowNotFound).WithContext("already closed")
	if err.Context != "already closed" {
		t.Errorf("expected context 'already closed', got %q", err.Context)
	}

	var nilErr *OperationError
	if nilErr.WithContext("x") != nil {
		t.Error("WithContext on nil should return nil")
	}
}

func TestOperationError_Is(t *testing.T) {
	err := NewOperationError("remove-window", "Find", ErrWindowNotFound)
	if !errors.Is(err, ErrWindowNotFound) {
		t.Error("expected errors.Is to match the wrapped error")
	}
	if !errors.Is(err, err) {
		t.Error("expected errors.Is to match the same instance")
	}
	other := NewOperationError("remove-window", "Find", ErrWindowNotFound)
	if errors.Is(err, other) {
		t.Error("different instances should not match")
	}
	var oe *OperationError
	if !errors.As(error(err), &oe) || oe.Target != "Find" {
		t.Error("expected errors.As to find the operation error")
	}
}

func TestInitError(t *testing.T) {
	inner := errors.New("no tty")
	err := &InitError{Component: "backend", Err: inner}
	if err.Error() != "init backend: no tty" {
		t.Errorf("Error() = %q", err.Error())
	}
	if !errors.Is(err, inner) {
		t.Error("expected Unwrap to expose the cause")
	}
}
