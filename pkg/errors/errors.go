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

	// Environment and shell errors
	ErrMissingEnvironment ErrorCode = "MISSING_ENVIRONMENT"
	ErrUnsupportedShell   ErrorCode = "UNSUPPORTED_SHELL"

	// Configuration errors
	ErrConfigLoad ErrorCode = "CONFIG_LOAD"

	// FileSystem errors
	ErrPathNotFound ErrorCode = "PATH_NOT_FOUND"
	ErrIOFailure    ErrorCode = "IO_FAILURE"

	// Tool errors
	ErrToolUnavailable   ErrorCode = "TOOL_UNAVAILABLE"
	ErrSubprocessFailure ErrorCode = "SUBPROCESS_FAILURE"
)

// Detail keys used by the constructors below
const (
	DetailVariable = "variable"
	DetailValue    = "value"
	DetailPath     = "path"
	DetailContext  = "context"
	DetailTool     = "tool"
	DetailStderr   = "stderr"
)

// DotfilesError represents a structured error with code and details
type DotfilesError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *DotfilesError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *DotfilesError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *DotfilesError) Is(target error) bool {
	var targetErr *DotfilesError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new DotfilesError with the given code and message
func New(code ErrorCode, message string) *DotfilesError {
	return &DotfilesError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new DotfilesError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *DotfilesError {
	return &DotfilesError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a DotfilesError
func Wrap(err error, code ErrorCode, message string) *DotfilesError {
	if err == nil {
		return nil
	}
	return &DotfilesError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *DotfilesError {
	if err == nil {
		return nil
	}
	return &DotfilesError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *DotfilesError) WithDetail(key string, value interface{}) *DotfilesError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// MissingEnvironment reports a required environment variable that is unset or empty.
func MissingEnvironment(name string) *DotfilesError {
	return Newf(ErrMissingEnvironment, "environment variable %s is not set", name).
		WithDetail(DetailVariable, name)
}

// UnsupportedShell reports a shell path or name that maps to no supported shell.
func UnsupportedShell(value string) *DotfilesError {
	return Newf(ErrUnsupportedShell, "unsupported shell: %s", value).
		WithDetail(DetailValue, value)
}

// PathNotFound reports a required path that does not exist. The context
// says what the path was needed for.
func PathNotFound(path, context string) *DotfilesError {
	return Newf(ErrPathNotFound, "%s not found at %s", context, path).
		WithDetail(DetailPath, path).
		WithDetail(DetailContext, context)
}

// IoFailure tags a filesystem error with the path it happened on.
func IoFailure(path string, err error) *DotfilesError {
	if err == nil {
		return nil
	}
	return Wrapf(err, ErrIOFailure, "i/o failure on %s", path).
		WithDetail(DetailPath, path)
}

// ToolUnavailable reports a command that is required but not on PATH.
func ToolUnavailable(name string) *DotfilesError {
	return Newf(ErrToolUnavailable, "%s not found on PATH", name).
		WithDetail(DetailTool, name)
}

// SubprocessFailure reports a command that ran and exited unsuccessfully.
func SubprocessFailure(tool, stderr string) *DotfilesError {
	return Newf(ErrSubprocessFailure, "failed to install %s: %s", tool, stderr).
		WithDetail(DetailTool, tool).
		WithDetail(DetailStderr, stderr)
}

// IsErrorCode checks if any error in the chain has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	return errors.Is(err, &DotfilesError{Code: code})
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a DotfilesError
func GetErrorCode(err error) ErrorCode {
	var dotfilesErr *DotfilesError
	if errors.As(err, &dotfilesErr) {
		return dotfilesErr.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details from an error, or nil if not a DotfilesError
func GetErrorDetails(err error) map[string]interface{} {
	var dotfilesErr *DotfilesError
	if errors.As(err, &dotfilesErr) {
		return dotfilesErr.Details
	}
	return nil
}
