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
	ErrUnknown           ErrorCode = "UNKNOWN"
	ErrInternal          ErrorCode = "INTERNAL"
	ErrInvalidInput      ErrorCode = "INVALID_INPUT"
	ErrUnsupportedFormat ErrorCode = "UNSUPPORTED_FORMAT"

	// Path errors
	ErrInvalidPath ErrorCode = "INVALID_PATH"
	ErrFileAccess  ErrorCode = "FILE_ACCESS"

	// Configuration errors
	ErrConfigMissing ErrorCode = "CONFIG_MISSING"
	ErrConfigLoad    ErrorCode = "CONFIG_LOAD"
	ErrConfigParse   ErrorCode = "CONFIG_PARSE"
	ErrConfigInvalid ErrorCode = "CONFIG_INVALID"

	// Link errors
	ErrParentPathConflict ErrorCode = "PARENT_PATH_CONFLICT"
	ErrLinkExists         ErrorCode = "LINK_EXISTS"
	ErrLinkNotFound       ErrorCode = "LINK_NOT_FOUND"
	ErrNotASymlink        ErrorCode = "NOT_A_SYMLINK"
	ErrOwnership          ErrorCode = "OWNERSHIP_VIOLATION"
	ErrLinkOverlap        ErrorCode = "LINK_OVERLAP"

	// Filesystem step errors
	ErrDirCreate     ErrorCode = "DIR_CREATE"
	ErrFileRemove    ErrorCode = "FILE_REMOVE"
	ErrSymlinkCreate ErrorCode = "SYMLINK_CREATE"
	ErrSymlinkRead   ErrorCode = "SYMLINK_READ"
)

// IdotError represents a structured error with code and details
type IdotError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *IdotError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *IdotError) Unwrap() error {
	return e.Wrapped
}

// Is reports whether target is an IdotError with the same code
func (e *IdotError) Is(target error) bool {
	var targetErr *IdotError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new IdotError with the given code and message
func New(code ErrorCode, message string) *IdotError {
	return &IdotError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new IdotError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *IdotError {
	return &IdotError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with an IdotError
func Wrap(err error, code ErrorCode, message string) *IdotError {
	if err == nil {
		return nil
	}
	return &IdotError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *IdotError {
	if err == nil {
		return nil
	}
	return &IdotError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *IdotError) WithDetail(key string, value interface{}) *IdotError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// IsErrorCode checks if an error has a specific error code anywhere in its chain
func IsErrorCode(err error, code ErrorCode) bool {
	for err != nil {
		var idotErr *IdotError
		if !errors.As(err, &idotErr) {
			return false
		}
		if idotErr.Code == code {
			return true
		}
		err = idotErr.Wrapped
	}
	return false
}

// GetErrorCode returns the outermost error code, or ErrUnknown if not an IdotError
func GetErrorCode(err error) ErrorCode {
	var idotErr *IdotError
	if errors.As(err, &idotErr) {
		return idotErr.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details from an error, or nil if not an IdotError
func GetErrorDetails(err error) map[string]interface{} {
	var idotErr *IdotError
	if errors.As(err, &idotErr) {
		return idotErr.Details
	}
	return nil
}
