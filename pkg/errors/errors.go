package errors

import (
	"errors"
	"fmt"
)

// ErrorCode represents a unique error code for stable testing
type ErrorCode string

// Error codes for different error categories
const (
	// General errors
	ErrUnknown      ErrorCode = "UNKNOWN"
	ErrInternal     ErrorCode = "INTERNAL"
	ErrInvalidInput ErrorCode = "INVALID_INPUT"

	// Home / profile errors
	ErrHomeNotFound ErrorCode = "HOME_NOT_FOUND"
	ErrProfileOpen  ErrorCode = "PROFILE_OPEN"
	ErrProfileWrite ErrorCode = "PROFILE_WRITE"

	// Native store errors
	ErrCommandStart ErrorCode = "COMMAND_START"
	ErrCommandExit  ErrorCode = "COMMAND_EXIT"
	ErrEnvDecode    ErrorCode = "ENV_DECODE"
)

// EnvpermError represents a structured error with code and details
type EnvpermError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *EnvpermError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *EnvpermError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *EnvpermError) Is(target error) bool {
	var targetErr *EnvpermError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new EnvpermError with the given code and message
func New(code ErrorCode, message string) *EnvpermError {
	return &EnvpermError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new EnvpermError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *EnvpermError {
	return &EnvpermError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with an EnvpermError
func Wrap(err error, code ErrorCode, message string) *EnvpermError {
	if err == nil {
		return nil
	}
	return &EnvpermError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *EnvpermError {
	if err == nil {
		return nil
	}
	return &EnvpermError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *EnvpermError) WithDetail(key string, value interface{}) *EnvpermError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var envErr *EnvpermError
	if errors.As(err, &envErr) {
		return envErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not an EnvpermError
func GetErrorCode(err error) ErrorCode {
	var envErr *EnvpermError
	if errors.As(err, &envErr) {
		return envErr.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details from an error, or nil if not an EnvpermError
func GetErrorDetails(err error) map[string]interface{} {
	var envErr *EnvpermError
	if errors.As(err, &envErr) {
		return envErr.Details
	}
	return nil
}
