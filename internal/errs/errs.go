// Package errs classifies the fatal conditions the solver can detect.
//
// All three kinds are programmer- or input-errors, never runtime
// conditions recoverable inside the search kernel: the kernel itself
// never returns an error value. Errors only occur while constructing a
// Position, a transposition table or a Solver, or while loading an
// opening book or a benchmark test set.
package errs

import (
	stderrors "errors"

	"github.com/pkg/errors"
)

// Kind classifies why a fatal error was raised.
type Kind int

const (
	// MalformedInput marks a bad move sequence, board string, or opening
	// book file that fails to parse.
	MalformedInput Kind = iota
	// PreconditionViolation marks a caller invariant violation: playing a
	// full column, constructing a table with a non-odd size, or a board
	// geometry that does not fit 64 bits.
	PreconditionViolation
	// ResourceUnavailable marks an opening-book file that could not be
	// opened.
	ResourceUnavailable
)

func (k Kind) String() string {
	switch k {
	case MalformedInput:
		return "malformed input"
	case PreconditionViolation:
		return "precondition violation"
	case ResourceUnavailable:
		return "resource unavailable"
	default:
		return "unknown error"
	}
}

// Error wraps an underlying cause with the Kind that classifies it.
type Error struct {
	Kind Kind
	err  error
}

func (e *Error) Error() string { return e.Kind.String() + ": " + e.err.Error() }

func (e *Error) Unwrap() error { return e.err }

// New builds a Kind-classified error from a message, with a stack trace
// captured at the call site.
func New(kind Kind, message string) error {
	return &Error{Kind: kind, err: errors.New(message)}
}

// Newf is like New but with fmt-style formatting.
func Newf(kind Kind, format string, args ...interface{}) error {
	return &Error{Kind: kind, err: errors.Errorf(format, args...)}
}

// Wrap attaches a Kind and a stack trace to an existing error.
func Wrap(kind Kind, err error, message string) error {
	if err == nil {
		return nil
	}
	return &Error{Kind: kind, err: errors.Wrap(err, message)}
}

// Is reports whether err (or one of the errors it wraps) is classified
// as kind.
func Is(err error, kind Kind) bool {
	var e *Error
	if stderrors.As(err, &e) {
		return e.Kind == kind
	}
	return false
}
