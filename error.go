package docscrape

import (
	"errors"
	"fmt"
)

// Application error codes.
const (
	ECONFIG    = "config"
	EINVALID   = "invalid"
	ENOTFOUND  = "not_found"
	EMALFORMED = "malformed_url"
	ENODOMAIN  = "no_domain"
	EDIRECTORY = "directory"
	EDISCOVERY = "discovery"
	EFETCH     = "fetch"
	EWRITE     = "write"
)

// Error represents an application-specific error. Err holds the underlying
// cause, if any, and is exposed through Unwrap.
type Error struct {
	Code    string
	Message string
	Err     error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying cause.
func (e *Error) Unwrap() error {
	return e.Err
}

// Errorf returns an Error with the given code and formatted message.
func Errorf(code string, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// WrapError returns an Error with the given code and formatted message
// that wraps err.
func WrapError(code string, err error, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Err:     err,
	}
}

// ErrorCode returns the code of the outermost application error in the
// chain. Returns an empty string for nil and for errors without a code.
func ErrorCode(err error) string {
	var e *Error
	if err == nil || !errors.As(err, &e) {
		return ""
	}
	return e.Code
}

// ErrorMessage returns the message of the outermost application error in
// the chain, without its cause. Returns an empty string for nil and the
// plain error text for errors without a code.
func ErrorMessage(err error) string {
	if err == nil {
		return ""
	}
	var e *Error
	if !errors.As(err, &e) {
		return err.Error()
	}
	return e.Message
}
