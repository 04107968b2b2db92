package errors

import (
	"errors"
	"fmt"
)

// ErrorCode represents a unique error code for stable testing
type ErrorCode string

const (
	// General errors
	ErrUnknown      ErrorCode = "UNKNOWN"
	ErrInternal     ErrorCode = "INTERNAL"
	ErrInvalidInput ErrorCode = "INVALID_INPUT"

	// Configuration errors
	ErrConfigLoad  ErrorCode = "CONFIG_LOAD"
	ErrConfigValid ErrorCode = "CONFIG_INVALID"

	// Provisioning errors
	ErrNotFound    ErrorCode = "NOT_FOUND"
	ErrNotListable ErrorCode = "NOT_LISTABLE"
	ErrIO          ErrorCode = "IO"
	ErrPath        ErrorCode = "PATH"
	ErrWalk        ErrorCode = "WALK"
	ErrDeserialize ErrorCode = "DESERIALIZE"
	ErrEntryFailed ErrorCode = "ENTRY_FAILED"
)

// ProvError represents a structured error with code and details
type ProvError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *ProvError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *ProvError) Unwrap() error {
	return e.Wrapped
}

// Is reports whether target is a ProvError with the same code.
func (e *ProvError) Is(target error) bool {
	var targetErr *ProvError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new ProvError with the given code and message
func New(code ErrorCode, message string) *ProvError {
	return &ProvError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new ProvError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *ProvError {
	return &ProvError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a ProvError. A nil err yields nil.
func Wrap(err error, code ErrorCode, message string) *ProvError {
	if err == nil {
		return nil
	}
	return &ProvError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *ProvError {
	if err == nil {
		return nil
	}
	return &ProvError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *ProvError) WithDetail(key string, value interface{}) *ProvError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var provErr *ProvError
	if errors.As(err, &provErr) {
		return provErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a ProvError
func GetErrorCode(err error) ErrorCode {
	var provErr *ProvError
	if errors.As(err, &provErr) {
		return provErr.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details from an error, or nil if not a ProvError
func GetErrorDetails(err error) map[string]interface{} {
	var provErr *ProvError
	if errors.As(err, &provErr) {
		return provErr.Details
	}
	return nil
}

// Diagnostic renders err for end users without error codes. A wrapped cause
// comes first, followed by the message, e.g.
// "permission denied: failed copying file: /home/u/.conf".
func Diagnostic(err error) string {
	var provErr *ProvError
	if !errors.As(err, &provErr) {
		return err.Error()
	}
	if provErr.Wrapped == nil {
		return provErr.Message
	}
	return Diagnostic(provErr.Wrapped) + ": " + provErr.Message
}
