// Package errors provides structured error handling for valuekit.
package errors

import (
	stderrors "errors"
	"fmt"
	"time"
)

// ErrorKind identifies the category of an error.
type ErrorKind int

const (
	// KindUnknown indicates an error of unknown type.
	KindUnknown ErrorKind = iota
	// KindConfig indicates invalid caller-supplied configuration.
	KindConfig
	// KindParse indicates a failure to parse external input.
	KindParse
)

func (k ErrorKind) String() string {
	switch k {
	case KindConfig:
		return "config"
	case KindParse:
		return "parse"
	default:
		return "unknown"
	}
}

// Error represents a structured error raised by a valuekit package.
type Error struct {
	// Op is the operation that failed (e.g., "animation.Tween.To").
	Op string
	// Kind categorizes the error.
	Kind ErrorKind
	// Err is the underlying error.
	Err error
	// Timestamp is when the error occurred.
	Timestamp time.Time
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s [%s]: %v", e.Op, e.Kind, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// New returns an Error for op with the given kind, stamped with the current time.
func New(op string, kind ErrorKind, err error) *Error {
	return &Error{
		Op:        op,
		Kind:      kind,
		Err:       err,
		Timestamp: time.Now(),
	}
}

// From returns err as an *Error for reporting. An *Error is returned
// unchanged; anything else is wrapped under op, keeping the kind of any
// *Error further down its chain.
func From(op string, err error) *Error {
	if err == nil {
		return nil
	}
	if e, ok := err.(*Error); ok {
		return e
	}
	return New(op, KindOf(err), err)
}

// KindOf returns the kind of the first *Error in err's chain,
// or KindUnknown if there is none.
func KindOf(err error) ErrorKind {
	var e *Error
	if stderrors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}

// PanicError represents a recovered panic.
type PanicError struct {
	// Op is the operation that panicked (e.g., "animation.Tween.tick").
	Op string
	// Value is the value passed to panic().
	Value any
	// StackTrace contains the call stack at the time of the panic.
	StackTrace string
	// Timestamp is when the panic occurred.
	Timestamp time.Time
}

func (e *PanicError) Error() string {
	if e.Op != "" {
		return fmt.Sprintf("panic in %s: %v", e.Op, e.Value)
	}
	return fmt.Sprintf("panic: %v", e.Value)
}

// ParseError represents a value that could not be interpreted.
type ParseError struct {
	// Field is the name of the input field, flag or argument.
	Field string
	// DataType is the expected type or value set.
	DataType string
	// Got is the actual data received.
	Got any
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("failed to parse %s as %s: got %v", e.Field, e.DataType, e.Got)
}

// ErrorHandler receives errors reported by valuekit packages.
type ErrorHandler interface {
	// HandleError is called when an error is reported.
	HandleError(err *Error)
	// HandlePanic is called when a panic is recovered.
	HandlePanic(err *PanicError)
}
