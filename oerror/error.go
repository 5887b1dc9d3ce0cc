package oerror

import (
	"errors"
	"fmt"
)

// Kind is the category of an error raised by the simulation.
type Kind uint8

const (
	// KindProgrammer is an error that can only be caused by misuse of the API, such as querying a stat
	// that was never registered or receiving a message with an unknown tag.
	KindProgrammer Kind = iota
	// KindMissingData is raised when data the caller expected is absent. Most code paths resolve these
	// to defaults instead of returning them.
	KindMissingData
	// KindTransient is an error caused by state that may be different on the next tick.
	KindTransient
)

func (k Kind) String() string {
	switch k {
	case KindProgrammer:
		return "programmer"
	case KindMissingData:
		return "missing data"
	case KindTransient:
		return "transient"
	}
	return "unknown"
}

var (
	ErrNotRegistered    = &Error{kind: KindProgrammer, msg: "stat not registered"}
	ErrUnknownMessage   = &Error{kind: KindProgrammer, msg: "unknown message"}
	ErrMalformedMessage = &Error{kind: KindProgrammer, msg: "malformed message"}
	ErrVersionMismatch  = &Error{kind: KindProgrammer, msg: "message version mismatch"}
	ErrClosed           = &Error{kind: KindTransient, msg: "connection closed"}
)

// Error is an error raised by the simulation.
type Error struct {
	kind Kind
	msg  string
	err  error
}

// New returns a new programmer error with the message formatted. If one of the arguments is an error and
// the format contains %w, it can be unwrapped with errors.Is and errors.As.
func New(format string, args ...any) *Error {
	err := fmt.Errorf(format, args...)
	return &Error{kind: KindProgrammer, msg: err.Error(), err: errors.Unwrap(err)}
}

// Wrap returns a new error of the given kind wrapping err.
func Wrap(kind Kind, err error, format string, args ...any) *Error {
	return &Error{kind: kind, msg: fmt.Sprintf(format, args...) + ": " + err.Error(), err: err}
}

// Kind returns the kind of the error.
func (e *Error) Kind() Kind {
	return e.kind
}

func (e *Error) Error() string {
	return e.msg
}

func (e *Error) Unwrap() error {
	return e.err
}

// IsKind returns true if err is (or wraps) an *Error with the kind passed.
func IsKind(err error, kind Kind) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.kind == kind
	}
	return false
}
