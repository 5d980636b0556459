/*
Package core holds error codes shared by all kinetype packages.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package core

import (
	"errors"
	"fmt"
	"os"
)

// Error codes. Every error returned by a kinetype package carries one of
// these, see Code.
const (
	NOERROR    int = 0
	EMISSING   int = 122 // font or other resource not found
	EINVALID   int = 123 // bad argument or configuration value
	ENOSURFACE int = 124 // an operation needs a drawing surface, but none is attached
	EINTERNAL  int = 125 // internal error, e.g. a panic during a redraw
	ESTALE     int = 126 // write to a glyph set of a retired layout generation
)

var codeTexts = map[int]string{
	NOERROR:    "OK",
	EMISSING:   "not found",
	EINVALID:   "invalid",
	ENOSURFACE: "no surface",
	EINTERNAL:  "internal error",
	ESTALE:     "stale",
}

func errorText(code int) string {
	if text, ok := codeTexts[code]; ok {
		return text
	}
	return "undefined error"
}

// AppError is an error with an error code and a message for users.
type AppError interface {
	error
	ErrorCode() int
	UserMessage() string
}

// codedError attaches a code and a user message to a cause.
type codedError struct {
	cause error
	code  int
	msg   string
}

var _ AppError = codedError{}

func coded(cause error, code int, msg string) codedError {
	if cause == nil {
		cause = errors.New(errorText(code))
	}
	return codedError{cause: cause, code: code, msg: msg}
}

func (e codedError) Error() string       { return fmt.Sprintf("[%d] %v", e.code, e.cause) }
func (e codedError) Unwrap() error       { return e.cause }
func (e codedError) ErrorCode() int      { return e.code }
func (e codedError) UserMessage() string { return e.msg }

// Error creates an error of a code, with a formatted user message.
func Error(code int, format string, v ...interface{}) error {
	return coded(nil, code, fmt.Sprintf(format, v...))
}

// WrapError codes err and attaches a formatted user message.
// A nil err is replaced by the text of the code.
func WrapError(err error, code int, format string, v ...interface{}) error {
	return coded(err, code, fmt.Sprintf(format, v...))
}

// ErrorWithCode codes err, using the text of the code as user message.
// A nil err is replaced by the text of the code as well.
func ErrorWithCode(err error, code int) error {
	return coded(err, code, errorText(code))
}

// Code returns the code of the outermost coded error in err's chain:
// NOERROR for nil, EINTERNAL for errors without a code.
func Code(err error) int {
	if err == nil {
		return NOERROR
	}
	var e AppError
	if errors.As(err, &e) {
		return e.ErrorCode()
	}
	return EINTERNAL
}

// Is is true if any error in err's chain carries code.
// A nil error has code NOERROR.
func Is(err error, code int) bool {
	if err == nil {
		return code == NOERROR
	}
	for ; err != nil; err = errors.Unwrap(err) {
		if e, ok := err.(AppError); ok && e.ErrorCode() == code {
			return true
		}
	}
	return false
}

// UserMessage returns the message for users of the outermost coded error,
// the text of Code(err) for uncoded errors, and "" for nil.
func UserMessage(err error) string {
	if err == nil {
		return ""
	}
	var e AppError
	if errors.As(err, &e) {
		return e.UserMessage()
	}
	return errorText(Code(err))
}

// UserError reports err on stderr.
func UserError(err error) {
	var e AppError
	if errors.As(err, &e) {
		fmt.Fprintf(os.Stderr, "[%d] %s\n", e.ErrorCode(), e.UserMessage())
		return
	}
	fmt.Fprintf(os.Stderr, "Error: %s\n", err.Error())
}
