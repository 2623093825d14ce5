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

	// Path errors
	ErrPathResolve ErrorCode = "PATH_RESOLVE"
	ErrHomeDetect  ErrorCode = "HOME_DETECT"

	// Environment errors
	ErrEnvSet     ErrorCode = "ENV_SET"
	ErrEnvRestore ErrorCode = "ENV_RESTORE"

	// Report errors
	ErrReportWrite ErrorCode = "REPORT_WRITE"
	ErrStyleLoad   ErrorCode = "STYLE_LOAD"
	ErrStyleParse  ErrorCode = "STYLE_PARSE"
)

// SlimcheckError represents a structured error with code and details
type SlimcheckError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *SlimcheckError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *SlimcheckError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *SlimcheckError) Is(target error) bool {
	var targetErr *SlimcheckError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new SlimcheckError with the given code and message
func New(code ErrorCode, message string) *SlimcheckError {
	return &SlimcheckError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new SlimcheckError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *SlimcheckError {
	return &SlimcheckError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a SlimcheckError
func Wrap(err error, code ErrorCode, message string) *SlimcheckError {
	if err == nil {
		return nil
	}
	return &SlimcheckError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *SlimcheckError {
	if err == nil {
		return nil
	}
	return &SlimcheckError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *SlimcheckError) WithDetail(key string, value interface{}) *SlimcheckError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// WithDetails adds multiple details to the error
func (e *SlimcheckError) WithDetails(details map[string]interface{}) *SlimcheckError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	for k, v := range details {
		e.Details[k] = v
	}
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var scErr *SlimcheckError
	if errors.As(err, &scErr) {
		return scErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a SlimcheckError
func GetErrorCode(err error) ErrorCode {
	var scErr *SlimcheckError
	if errors.As(err, &scErr) {
		return scErr.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details from an error, or nil if not a SlimcheckError
func GetErrorDetails(err error) map[string]interface{} {
	var scErr *SlimcheckError
	if errors.As(err, &scErr) {
		return scErr.Details
	}
	return nil
}
