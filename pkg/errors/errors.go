package errors

import (
	"errors"
	"fmt"
	"strings"
)

// ErrorCode identifies an error category. Tests and callers branch on codes,
// never on message text.
type ErrorCode string

const (
	ErrUnknown  ErrorCode = "UNKNOWN"
	ErrInternal ErrorCode = "INTERNAL"
	ErrUsage    ErrorCode = "USAGE"

	// Editing
	ErrNoChange       ErrorCode = "NO_CHANGE"
	ErrInvalidPattern ErrorCode = "INVALID_PATTERN"
	ErrEditFailed     ErrorCode = "EDIT_FAILED"
	ErrNotFound       ErrorCode = "NOT_FOUND"

	// Filesystem
	ErrFileRead  ErrorCode = "FILE_READ"
	ErrFileWrite ErrorCode = "FILE_WRITE"

	// Configuration
	ErrConfigLoad  ErrorCode = "CONFIG_LOAD"
	ErrConfigParse ErrorCode = "CONFIG_PARSE"
	ErrConfigValid ErrorCode = "CONFIG_INVALID"
)

// InreplaceError is a coded error with optional details and cause
type InreplaceError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

func (e *InreplaceError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *InreplaceError) Unwrap() error {
	return e.Wrapped
}

// Is matches any *InreplaceError carrying the same code
func (e *InreplaceError) Is(target error) bool {
	var targetErr *InreplaceError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

func newError(code ErrorCode, message string, wrapped error) *InreplaceError {
	return &InreplaceError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: wrapped,
	}
}

// New creates an error with the given code and message
func New(code ErrorCode, message string) *InreplaceError {
	return newError(code, message, nil)
}

// Newf creates an error with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *InreplaceError {
	return newError(code, fmt.Sprintf(format, args...), nil)
}

// Wrap attaches code and message to err. A nil err stays nil.
func Wrap(err error, code ErrorCode, message string) *InreplaceError {
	if err == nil {
		return nil
	}
	return newError(code, message, err)
}

// Wrapf is Wrap with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *InreplaceError {
	if err == nil {
		return nil
	}
	return newError(code, fmt.Sprintf(format, args...), err)
}

// NoChange reports a file whose content an edit left untouched. expected
// lists what the edit was supposed to do.
func NoChange(path string, expected []string) *InreplaceError {
	return Newf(ErrNoChange, "nothing replaced in %s: %s", path, strings.Join(expected, "; ")).
		WithDetail("path", path).
		WithDetail("expected", expected)
}

// WithDetail sets one detail and returns e
func (e *InreplaceError) WithDetail(key string, value interface{}) *InreplaceError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// WithDetails merges details into e
func (e *InreplaceError) WithDetails(details map[string]interface{}) *InreplaceError {
	for k, v := range details {
		e.WithDetail(k, v)
	}
	return e
}

// IsErrorCode reports whether any *InreplaceError in err's tree has code.
// Every failure of a BatchError is checked, not only the first.
func IsErrorCode(err error, code ErrorCode) bool {
	return errors.Is(err, &InreplaceError{Code: code})
}

// GetErrorCode returns the code of the first *InreplaceError in err's chain,
// or ErrUnknown.
func GetErrorCode(err error) ErrorCode {
	var ierr *InreplaceError
	if errors.As(err, &ierr) {
		return ierr.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details of the first *InreplaceError in err's
// chain, or nil.
func GetErrorDetails(err error) map[string]interface{} {
	var ierr *InreplaceError
	if errors.As(err, &ierr) {
		return ierr.Details
	}
	return nil
}
