// Package errors defines the error taxonomy surfaced by sequences.
//
// Every failure produced while driving a sequence is wrapped in an *Error
// carrying a Code that identifies the failing component and, where it makes
// sense, the ordinal of the element being produced when the failure occurred.
// The underlying cause is always reachable through errors.Unwrap.
package errors

import (
	"errors"
	"fmt"
)

// Code represents the component a sequence error originated from.
type Code int

const (
	SOURCE Code = iota
	PROJECT
	DEFERRED
	PUSH
	VISIT
)

// String converts a Code enum into a string value
func (c Code) String() string {
	return [...]string{
		"SOURCE",
		"PROJECT",
		"DEFERRED",
		"PUSH",
		"VISIT",
	}[c]
}

// Error defines a custom error type carrying the failing component and element ordinal.
type Error struct {
	Code    Code
	Ordinal int
	cause   error
}

// Error implements the error interface
func (e *Error) Error() string {
	if e.Ordinal < 0 {
		return fmt.Sprintf("sequence %s error: %v", e.Code, e.cause)
	}
	return fmt.Sprintf("sequence %s error (ordinal: %d): %v", e.Code, e.Ordinal, e.cause)
}

// Unwrap returns the underlying cause of the error.
func (e *Error) Unwrap() error {
	return e.cause
}

func newError(code Code, ordinal int, cause error) error {
	return &Error{
		Code:    code,
		Ordinal: ordinal,
		cause:   cause,
	}
}

// NewSourceError wraps a failure to classify a construction input.
func NewSourceError(err error) error {
	return newError(SOURCE, -1, err)
}

// NewProjectionError wraps a failure raised by a per-element projection.
func NewProjectionError(ordinal int, err error) error {
	return newError(PROJECT, ordinal, err)
}

// NewDeferredError wraps the rejection of a deferred single value.
func NewDeferredError(err error) error {
	return newError(DEFERRED, -1, err)
}

// NewPushError wraps an error signaled by a push-based producer.
func NewPushError(err error) error {
	return newError(PUSH, -1, err)
}

// NewVisitError wraps a failure raised by a visitor callback.
func NewVisitError(ordinal int, err error) error {
	return newError(VISIT, ordinal, err)
}

func isError(err error, code Code) bool {
	var e *Error
	return errors.As(err, &e) && e.Code == code
}

// IsSourceError checks if the given error is a SOURCE error.
// It returns true if the error is a SOURCE error, otherwise false.
func IsSourceError(err error) bool {
	return isError(err, SOURCE)
}

// IsProjectionError checks if the given error is a PROJECT error.
// It returns true if the error is a PROJECT error, otherwise false.
func IsProjectionError(err error) bool {
	return isError(err, PROJECT)
}

// IsDeferredError checks if the given error is a DEFERRED error.
// It returns true if the error is a DEFERRED error, otherwise false.
func IsDeferredError(err error) bool {
	return isError(err, DEFERRED)
}

// IsPushError checks if the given error is a PUSH error.
// It returns true if the error is a PUSH error, otherwise false.
func IsPushError(err error) bool {
	return isError(err, PUSH)
}

// IsVisitError checks if the given error is a VISIT error.
func IsVisitError(err error) bool {
	return isError(err, VISIT)
}
