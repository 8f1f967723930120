// Package errors provides coded error types shared by the map engine,
// the asset loader and the CLI.
//
// Codes group failures the way callers react to them:
//   - DIMENSION_MISMATCH: composite or construction operands disagree in extent
//   - OUT_OF_RANGE: a tile index past the end of the store
//   - INVALID_PATH, FILE_NOT_FOUND, IO_ERROR, DECODE_ERROR: asset loading
//   - UNSUPPORTED: pixel formats the normalizer does not handle
//
// Usage:
//
//	err := errors.New(errors.ErrCodeOutOfRange, "tile %d of %d", i, n)
//	if errors.Is(err, errors.ErrCodeOutOfRange) {
//	    // reject the request
//	}
package errors

import (
	"errors"
	"fmt"
)

// Code is a machine-readable error category.
type Code string

const (
	// Input validation errors
	ErrCodeInvalidInput  Code = "INVALID_INPUT"
	ErrCodeInvalidConfig Code = "INVALID_CONFIG"
	ErrCodeInvalidPath   Code = "INVALID_PATH"

	// Structural errors
	ErrCodeDimensionMismatch Code = "DIMENSION_MISMATCH"
	ErrCodeOutOfRange        Code = "OUT_OF_RANGE"
	ErrCodeNotFound          Code = "NOT_FOUND"

	// Asset errors
	ErrCodeFileNotFound Code = "FILE_NOT_FOUND"
	ErrCodeIO           Code = "IO_ERROR"
	ErrCodeDecode       Code = "DECODE_ERROR"
	ErrCodeUnsupported  Code = "UNSUPPORTED"

	// Resource and internal errors
	ErrCodeResourceLimit Code = "RESOURCE_LIMIT"
	ErrCodeInternal      Code = "INTERNAL_ERROR"
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

// Is reports whether err carries the given code anywhere in its chain.
func Is(err error, code Code) bool {
	for err != nil {
		var e *Error
		if !errors.As(err, &e) {
			return false
		}
		if e.Code == code {
			return true
		}
		err = e.Cause
	}
	return false
}

// GetCode extracts the outermost error code, or "" for foreign errors.
func GetCode(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}

// UserMessage returns the message without the code prefix.
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
