// Package errors provides coded, structured errors for brackt.
//
// Codes exist so tests and callers can branch on failure categories without
// string matching. Most failure classes in this tool are deliberately
// non-fatal (bad EXIF is normal, not exceptional); the codes below mark the
// few conditions that are surfaced to the user at all.
package errors

import (
	"errors"
	"fmt"
)

// ErrorCode identifies a failure category.
type ErrorCode string

const (
	ErrUnknown      ErrorCode = "UNKNOWN"
	ErrInvalidInput ErrorCode = "INVALID_INPUT"

	// Sequence errors
	ErrSequenceInvalid ErrorCode = "SEQUENCE_INVALID"

	// Configuration errors
	ErrConfigLoad  ErrorCode = "CONFIG_LOAD"
	ErrConfigParse ErrorCode = "CONFIG_PARSE"

	// Metadata errors
	ErrMetadataDecode ErrorCode = "METADATA_DECODE"

	// Filesystem errors
	ErrDirRead       ErrorCode = "DIR_READ"
	ErrDirCreate     ErrorCode = "DIR_CREATE"
	ErrFileMove      ErrorCode = "FILE_MOVE"
	ErrManifestWrite ErrorCode = "MANIFEST_WRITE"

	// Engine errors
	ErrEngineBusy  ErrorCode = "ENGINE_BUSY"
	ErrRootMissing ErrorCode = "ROOT_MISSING"
)

// BracktError is an error with a stable code and optional detail fields.
type BracktError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

func (e *BracktError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *BracktError) Unwrap() error {
	return e.Wrapped
}

// Is matches two BracktErrors by code.
func (e *BracktError) Is(target error) bool {
	var targetErr *BracktError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates an error with the given code and message.
func New(code ErrorCode, message string) *BracktError {
	return &BracktError{Code: code, Message: message}
}

// Newf creates an error with a formatted message.
func Newf(code ErrorCode, format string, args ...interface{}) *BracktError {
	return &BracktError{Code: code, Message: fmt.Sprintf(format, args...)}
}

// Wrap wraps an existing error under a code. Returns nil for a nil cause.
func Wrap(err error, code ErrorCode, message string) *BracktError {
	if err == nil {
		return nil
	}
	return &BracktError{Code: code, Message: message, Wrapped: err}
}

// Wrapf wraps an existing error with a formatted message.
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *BracktError {
	if err == nil {
		return nil
	}
	return &BracktError{Code: code, Message: fmt.Sprintf(format, args...), Wrapped: err}
}

// WithDetail attaches a detail field to the error and returns it.
func (e *BracktError) WithDetail(key string, value interface{}) *BracktError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// IsErrorCode reports whether err carries the given code.
func IsErrorCode(err error, code ErrorCode) bool {
	var be *BracktError
	if errors.As(err, &be) {
		return be.Code == code
	}
	return false
}

// GetErrorCode returns err's code, or ErrUnknown for foreign errors.
func GetErrorCode(err error) ErrorCode {
	var be *BracktError
	if errors.As(err, &be) {
		return be.Code
	}
	return ErrUnknown
}
