// Package apperr defines the classified error conditions surfaced by the
// API. Handlers translate these into the uniform error envelope; anything
// unclassified is wrapped as Internal so raw persistence errors never reach
// the caller.
package apperr

import (
	"errors"
	"fmt"
)

// Code identifies the class of a failure in the error envelope.
type Code string

const (
	CodeUnauthenticated    Code = "unauthenticated"
	CodePermissionDenied   Code = "permission-denied"
	CodeInvalidArgument    Code = "invalid-argument"
	CodeFailedPrecondition Code = "failed-precondition" // business-rule violations
	CodeNotFound           Code = "not-found"
	CodeInternal           Code = "internal"
)

// Error is a classified failure with a human-readable message.
type Error struct {
	Code    Code
	Message string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func New(code Code, message string) *Error {
	return &Error{Code: code, Message: message}
}

func Unauthenticated(message string) *Error {
	return New(CodeUnauthenticated, message)
}

func PermissionDenied(message string) *Error {
	return New(CodePermissionDenied, message)
}

func InvalidArgument(message string) *Error {
	return New(CodeInvalidArgument, message)
}

// BusinessRule reports a domain-constraint violation (duplicate slug,
// referential integrity) as opposed to malformed input or a system fault.
func BusinessRule(message string) *Error {
	return New(CodeFailedPrecondition, message)
}

func NotFound(message string) *Error {
	return New(CodeNotFound, message)
}

func Internal(message string) *Error {
	return New(CodeInternal, message)
}

// Classify returns err unchanged when it is already a classified *Error,
// otherwise wraps it as Internal carrying the original message.
func Classify(err error) *Error {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr
	}
	return Internal(err.Error())
}

// IsCode reports whether err is a classified *Error with the given code.
func IsCode(err error, code Code) bool {
	var appErr *Error
	return errors.As(err, &appErr) && appErr.Code == code
}
