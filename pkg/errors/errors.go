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
	ErrNotFound     ErrorCode = "NOT_FOUND"

	// Configuration errors
	ErrConfigLoad       ErrorCode = "CONFIG_LOAD"
	ErrConfigParse      ErrorCode = "CONFIG_PARSE"
	ErrConfigVersion    ErrorCode = "CONFIG_VERSION"
	ErrGroupNotFound    ErrorCode = "GROUP_NOT_FOUND"
	ErrPlanNotFound     ErrorCode = "PLAN_NOT_FOUND"
	ErrResolverNotFound ErrorCode = "RESOLVER_NOT_FOUND"

	// Ignore rule errors
	ErrPatternInvalid ErrorCode = "PATTERN_INVALID"
	ErrIgnoreLoad     ErrorCode = "IGNORE_LOAD"

	// Path resolution errors
	ErrPathResolve ErrorCode = "PATH_RESOLVE"

	// FileSystem errors
	ErrIO            ErrorCode = "IO"
	ErrFileRead      ErrorCode = "FILE_READ"
	ErrFileWrite     ErrorCode = "FILE_WRITE"
	ErrFileRemove    ErrorCode = "FILE_REMOVE"
	ErrDirCreate     ErrorCode = "DIR_CREATE"
	ErrSymlinkCreate ErrorCode = "SYMLINK_CREATE"

	// Apply errors
	ErrApply ErrorCode = "APPLY"
)

// DootError represents a structured error with code and details
type DootError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *DootError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *DootError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *DootError) Is(target error) bool {
	var targetErr *DootError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new DootError with the given code and message
func New(code ErrorCode, message string) *DootError {
	return &DootError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new DootError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *DootError {
	return &DootError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a DootError
func Wrap(err error, code ErrorCode, message string) *DootError {
	if err == nil {
		return nil
	}
	return &DootError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *DootError {
	if err == nil {
		return nil
	}
	return &DootError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *DootError) WithDetail(key string, value interface{}) *DootError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// GetCode extracts the error code from an error, returning ErrUnknown for
// errors that are not DootErrors.
func GetCode(err error) ErrorCode {
	var dootErr *DootError
	if errors.As(err, &dootErr) {
		return dootErr.Code
	}
	return ErrUnknown
}

// IsCode reports whether err carries the given code anywhere in its chain.
func IsCode(err error, code ErrorCode) bool {
	var dootErr *DootError
	if errors.As(err, &dootErr) {
		return dootErr.Code == code
	}
	return false
}
