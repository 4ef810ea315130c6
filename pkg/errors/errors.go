// Package errors provides structured error types for framewright.
//
// This package defines error codes and types that enable:
//   - Consistent error handling across the core components and the CLI
//   - Machine-readable error codes for programmatic handling
//   - User-friendly error messages
//   - Error wrapping with context preservation
//
// # Error Codes
//
// The geometric codes mirror how a failure is handled:
//   - INVALID_FRAME: not enough geometric data; the entity is skipped
//   - NO_DIRECTION, NO_ORIGIN: an alignment cannot be computed for the pair
//   - NOT_ROTATABLE: the resolved proxy cannot accept a rotation
//   - MUTATION_FAILED: the model store rejected a rotation or a creation
//
// The remaining codes cover input validation and lookups in the outer layers.
//
// # Usage
//
//	err := errors.New(errors.ErrCodeNoDirection, "no direction for %s", id)
//	if errors.Is(err, errors.ErrCodeNoDirection) {
//	    // report to the user, nothing was mutated
//	}
//
//	// Wrap existing errors
//	err := errors.Wrap(errors.ErrCodeMutationFailed, storeErr, "rotate %s", id)
package errors

import (
	"errors"
	"fmt"
)

// Code represents a machine-readable error code.
type Code string

// Error codes for different error categories.
const (
	// Geometric failures
	ErrCodeInvalidFrame   Code = "INVALID_FRAME"
	ErrCodeNoDirection    Code = "NO_DIRECTION"
	ErrCodeNoOrigin       Code = "NO_ORIGIN"
	ErrCodeNotRotatable   Code = "NOT_ROTATABLE"
	ErrCodeMutationFailed Code = "MUTATION_FAILED"

	// Input validation errors
	ErrCodeInvalidInput  Code = "INVALID_INPUT"
	ErrCodeInvalidConfig Code = "INVALID_CONFIG"
	ErrCodeInvalidModel  Code = "INVALID_MODEL"

	// Resource not found errors
	ErrCodeNotFound     Code = "NOT_FOUND"
	ErrCodeFileNotFound Code = "FILE_NOT_FOUND"

	// Model store conflicts
	ErrCodeDuplicateName Code = "DUPLICATE_NAME"

	// Internal errors
	ErrCodeInternal    Code = "INTERNAL_ERROR"
	ErrCodeUnsupported Code = "UNSUPPORTED"
)

// Error is a structured error with a code and optional cause.
type Error struct {
	Code    Code   // Machine-readable error code
	Message string // Human-readable message
	Cause   error  // Underlying error (optional)
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause for errors.Is/As compatibility.
func (e *Error) Unwrap() error {
	return e.Cause
}

// New creates a new Error with the given code and formatted message.
func New(code Code, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// Wrap creates a new Error wrapping an existing error.
func Wrap(code Code, cause error, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Cause:   cause,
	}
}

// Is reports whether err has the given error code.
// It unwraps the error chain looking for an *Error with a matching code.
func Is(err error, code Code) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Code == code
	}
	return false
}

// GetCode extracts the error code from an error, if available.
// Returns empty string if the error is not an *Error.
func GetCode(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}

// UserMessage returns a user-friendly message for the error.
// For *Error types, returns the message without the code prefix.
// For other errors, returns the error string as-is.
func UserMessage(err error) string {
	var e *Error
	if errors.As(err, &e) {
		if e.Cause != nil {
			return fmt.Sprintf("%s: %s", e.Message, UserMessage(e.Cause))
		}
		return e.Message
	}
	return err.Error()
}
