package layout

import (
	"errors"
	"fmt"
)

// Layout errors.
var (
	// ErrInvalidLayout indicates a malformed layout string.
	ErrInvalidLayout = errors.New("invalid layout")

	// ErrLayoutConflict indicates fields that contradict each other.
	ErrLayoutConflict = errors.New("conflicting layout fields")
)

// ParseError describes a malformed layout string.
type ParseError struct {
	Format string
	Key    string
	Reason string
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	if e.Key != "" {
		return fmt.Sprintf("layout %q: key %q: %s", e.Format, e.Key, e.Reason)
	}
	return fmt.Sprintf("layout %q: %s", e.Format, e.Reason)
}

// Unwrap returns ErrInvalidLayout.
func (e *ParseError) Unwrap() error {
	return ErrInvalidLayout
}

// ConflictError describes fields that cannot be satisfied together.
type ConflictError struct {
	Fields Field
	Reason string
}

// Error implements the error interface.
func (e *ConflictError) Error() string {
	return fmt.Sprintf("layout conflict (%s): %s", e.Fields, e.Reason)
}

// Unwrap returns ErrLayoutConflict.
func (e *ConflictError) Unwrap() error {
	return ErrLayoutConflict
}
