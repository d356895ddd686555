// Package errs defines the error kinds reported by rcbdxf.
//
// Every failure is fatal for a run and falls into one of three kinds:
//   - INVALID_CONFIG: a beam parameter violates a precondition
//   - INVALID_FORMAT: the input file is not valid TOML for the schema
//   - IO_ERROR: a file could not be read or written
//
// Usage:
//
//	err := errs.Validation("main_rebar.bottom_1", "bottom rebar count %d < 2", n)
//	if errs.Is(err, errs.CodeValidation) {
//	    // report and exit
//	}
package errs

import (
	"errors"
	"fmt"
)

// Code is a machine-readable error kind.
type Code string

const (
	CodeValidation Code = "INVALID_CONFIG"
	CodeFormat     Code = "INVALID_FORMAT"
	CodeIO         Code = "IO_ERROR"
)

// Error is a coded error with an optional offending field and cause.
type Error struct {
	Code    Code
	Field   string // config key that failed, e.g. "dimension.beam_width"
	Message string
	Cause   error
}

func (e *Error) Error() string {
	msg := e.Message
	if e.Field != "" {
		msg = e.Field + ": " + msg
	}
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, msg, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, msg)
}

// Unwrap returns the underlying cause for errors.Is/As compatibility.
func (e *Error) Unwrap() error {
	return e.Cause
}

// Validation reports a violated beam precondition on field.
func Validation(field, format string, args ...any) *Error {
	return &Error{
		Code:    CodeValidation,
		Field:   field,
		Message: fmt.Sprintf(format, args...),
	}
}

// Format wraps a parse failure of the input file.
func Format(cause error, format string, args ...any) *Error {
	return &Error{
		Code:    CodeFormat,
		Message: fmt.Sprintf(format, args...),
		Cause:   cause,
	}
}

// IO wraps a read or write failure.
func IO(cause error, format string, args ...any) *Error {
	return &Error{
		Code:    CodeIO,
		Message: fmt.Sprintf(format, args...),
		Cause:   cause,
	}
}

// Is reports whether err carries the given code anywhere in its chain.
func Is(err error, code Code) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Code == code
	}
	return false
}

// GetCode extracts the code from err, or "" if err is not an *Error.
func GetCode(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}

// UserMessage returns the message without the code prefix.
func UserMessage(err error) string {
	var e *Error
	if errors.As(err, &e) {
		if e.Field != "" {
			return e.Field + ": " + e.Message
		}
		return e.Message
	}
	return err.Error()
}
