// Package errs is the error taxonomy shared by every quartzgo package.
//
// Callers branch on the Kind: InvalidParameter and InvalidInput mean the
// request must change, Transient means it may be retried, NotFound and
// ProtocolMismatch mean the chain does not hold what the caller expected.
package errs

import (
	"errors"
	"fmt"

	goerrors "github.com/go-errors/errors"
)

type Kind uint8

const (
	KindUnknown Kind = iota
	KindInvalidParameter
	KindInvalidInput
	KindNotFound
	KindTransient
	KindProtocolMismatch
)

func (k Kind) String() string {
	switch k {
	case KindInvalidParameter:
		return "InvalidParameter"
	case KindInvalidInput:
		return "InvalidInput"
	case KindNotFound:
		return "NotFound"
	case KindTransient:
		return "Transient"
	case KindProtocolMismatch:
		return "ProtocolMismatch"
	default:
		return "Unknown"
	}
}

// Sentinels for errors.Is.
var (
	ErrInvalidParameter = &Error{Kind: KindInvalidParameter}
	ErrInvalidInput     = &Error{Kind: KindInvalidInput}
	ErrNotFound         = &Error{Kind: KindNotFound}
	ErrTransient        = &Error{Kind: KindTransient}
	ErrProtocolMismatch = &Error{Kind: KindProtocolMismatch}
)

type Error struct {
	Kind Kind
	Op   string
	Err  error
}

func (e *Error) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s: %s", e.Op, e.Kind)
	}
	if e.Op == "" {
		return fmt.Sprintf("%s: %v", e.Kind, e.Err)
	}
	return fmt.Sprintf("%s: %s: %v", e.Op, e.Kind, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is matches any *Error of the same kind, so sentinels compare by kind.
func (e *Error) Is(target error) bool {
	var t *Error
	if !errors.As(target, &t) {
		return false
	}
	return t.Kind == e.Kind
}

// ErrorStack returns the captured stack when the cause carries one.
func (e *Error) ErrorStack() string {
	var stacked *goerrors.Error
	if errors.As(e.Err, &stacked) {
		return stacked.ErrorStack()
	}
	return e.Error()
}

func newError(kind Kind, op string, format string, args ...interface{}) *Error {
	return &Error{
		Kind: kind,
		Op:   op,
		Err:  goerrors.Wrap(fmt.Errorf(format, args...), 2),
	}
}

func InvalidParameter(op string, format string, args ...interface{}) *Error {
	return newError(KindInvalidParameter, op, format, args...)
}

func InvalidInput(op string, format string, args ...interface{}) *Error {
	return newError(KindInvalidInput, op, format, args...)
}

func NotFound(op string, format string, args ...interface{}) *Error {
	return newError(KindNotFound, op, format, args...)
}

func Transient(op string, format string, args ...interface{}) *Error {
	return newError(KindTransient, op, format, args...)
}

func ProtocolMismatch(op string, format string, args ...interface{}) *Error {
	return newError(KindProtocolMismatch, op, format, args...)
}

// Wrap tags err with kind unless it already carries a kind.
func Wrap(kind Kind, op string, err error) error {
	if err == nil {
		return nil
	}
	if KindOf(err) != KindUnknown {
		return err
	}
	return &Error{Kind: kind, Op: op, Err: goerrors.Wrap(err, 1)}
}

func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}

func IsKind(err error, kind Kind) bool {
	return KindOf(err) == kind
}
