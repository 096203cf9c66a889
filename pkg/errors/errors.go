package errors

import (
	"errors"
	"fmt"
)

// Common application errors with proper types for error handling

var (
	// ErrMissingConfig indicates a required secret or endpoint is not configured
	ErrMissingConfig = errors.New("missing configuration")

	// ErrMissingRequiredFields indicates a record lacks a usable phone number or application ID
	ErrMissingRequiredFields = errors.New("missing required fields")

	// ErrSheetUnavailable indicates the source spreadsheet could not be read
	ErrSheetUnavailable = errors.New("sheet unavailable")

	// ErrInvalidInput indicates invalid input data
	ErrInvalidInput = errors.New("invalid input")

	// ErrInternal indicates an internal server error
	ErrInternal = errors.New("internal error")
)

// MissingConfigError creates a configuration error naming the missing value
func MissingConfigError(name string) error {
	return fmt.Errorf("%s: %w", name, ErrMissingConfig)
}

// SheetUnavailableError wraps an upstream fetch failure with its cause
func SheetUnavailableError(cause error) error {
	return fmt.Errorf("%w: %v", ErrSheetUnavailable, cause)
}

// InvalidInputError creates an invalid input error with context
func InvalidInputError(field, reason string) error {
	return fmt.Errorf("%s: %s: %w", field, reason, ErrInvalidInput)
}

// InternalError creates an internal error with context
func InternalError(msg string) error {
	return fmt.Errorf("%s: %w", msg, ErrInternal)
}

// Is checks if an error matches a target error (works with wrapped errors)
func Is(err, target error) bool {
	return errors.Is(err, target)
}
