// Package domainerrors defines the error vocabulary shared by all bounded
// contexts. Errors carry a machine-readable Code for transport mapping and a
// human-readable Message safe to show to API clients.
//
// Values built with New are comparable, so package-level errors declared with
// it behave as sentinels under errors.Is while still exposing their code to
// HasCode. Wrap attaches a code and message to an underlying cause without
// losing the chain.
package domainerrors

import (
	"errors"
	"fmt"
)

// Code classifies an error for programmatic handling. The string form is the
// stable wire representation used in error envelopes.
type Code string

const (
	CodeInvalidInput       Code = "invalid_input"
	CodeValidation         Code = "validation_failed"
	CodeInvariantViolation Code = "invariant_violation"
	CodeBadRequest         Code = "bad_request"
	CodeUnauthorized       Code = "unauthorized"
	CodeForbidden          Code = "forbidden"
	CodeNotFound           Code = "not_found"
	CodeConflict           Code = "conflict"
	CodeTimeout            Code = "timeout"
	CodeUnavailable        Code = "unavailable"
	CodeInternal           Code = "internal_error"
)

// Error is an immutable coded error value. Two Errors with the same code,
// message, and cause compare equal.
type Error struct {
	Code    Code
	Message string
	Err     error
}

func (e Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e Error) Unwrap() error {
	return e.Err
}

// New returns a coded error with no underlying cause. The result is suitable
// for declaration as a package-level sentinel.
func New(code Code, message string) error {
	return Error{Code: code, Message: message}
}

// Wrap attaches a code and message to err. It returns nil when err is nil so
// callers can wrap unconditionally.
func Wrap(err error, code Code, message string) error {
	if err == nil {
		return nil
	}
	return Error{Code: code, Message: message, Err: err}
}

// HasCode reports whether any error in err's chain carries the given code.
// Unlike CodeOf it inspects every link, so an inner classification remains
// visible through later wraps.
func HasCode(err error, code Code) bool {
	for e := err; e != nil; e = errors.Unwrap(e) {
		if de, ok := e.(Error); ok && de.Code == code {
			return true
		}
	}
	return false
}

// Is is an alias for HasCode kept for call-site readability:
// dErrors.Is(err, dErrors.CodeNotFound).
func Is(err error, code Code) bool {
	return HasCode(err, code)
}

// CodeOf returns the code of the first coded error in err's chain, or
// CodeInternal when the chain carries none. Nil input also maps to
// CodeInternal; callers should not ask for the code of a nil error.
func CodeOf(err error) Code {
	var de Error
	if errors.As(err, &de) {
		return de.Code
	}
	return CodeInternal
}

// MessageOf returns the client-safe message of the first coded error in
// err's chain, or the empty string when the chain carries none.
func MessageOf(err error) string {
	var de Error
	if errors.As(err, &de) {
		return de.Message
	}
	return ""
}
