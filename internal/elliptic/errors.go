package elliptic

import (
	"errors"
	"fmt"
)

// Kind classifies an evaluation failure.
type Kind int

const (
	// KindConvergence means an iteration cap was hit; the value is still returned.
	KindConvergence Kind = iota + 1
	// KindDomain means a parameter lies outside the function's domain.
	KindDomain
	// KindOverflow means the AGM descent did not converge within its step cap.
	KindOverflow
	// KindRange means the oscillator shape parameter lies outside (-1, 1).
	KindRange
)

// String returns the kind as a lowercase label, suitable for metric labels.
func (k Kind) String() string {
	switch k {
	case KindConvergence:
		return "convergence"
	case KindDomain:
		return "domain"
	case KindOverflow:
		return "overflow"
	case KindRange:
		return "range"
	default:
		return "unknown"
	}
}

// Sentinel errors. *Error unwraps to exactly one of them.
var (
	ErrNoConvergence = errors.New("elliptic: iteration limit reached")
	ErrDomain        = errors.New("elliptic: argument out of domain")
	ErrOverflow      = errors.New("elliptic: descent overflow")
	ErrRange         = errors.New("elliptic: shape parameter out of range")
)

// Error is the typed failure returned by the functions in this package.
type Error struct {
	Op    string  // function that failed, e.g. "ellipj"
	Kind  Kind    // failure class
	Value float64 // offending argument or last iterate
}

// Error implements the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s (value=%g)", e.Op, e.sentinel().Error(), e.Value)
}

// Unwrap returns the sentinel matching the error kind.
func (e *Error) Unwrap() error {
	return e.sentinel()
}

// Fatal reports whether the accompanying numeric result must be discarded.
func (e *Error) Fatal() bool {
	return e.Kind != KindConvergence
}

func (e *Error) sentinel() error {
	switch e.Kind {
	case KindConvergence:
		return ErrNoConvergence
	case KindDomain:
		return ErrDomain
	case KindOverflow:
		return ErrOverflow
	case KindRange:
		return ErrRange
	default:
		return errors.New("elliptic: unknown failure")
	}
}

// IsFatal reports whether err invalidates the returned value.
// A nil error and a convergence warning are not fatal.
func IsFatal(err error) bool {
	if err == nil {
		return false
	}
	var e *Error
	if errors.As(err, &e) {
		return e.Fatal()
	}
	return true
}

// KindOf extracts the Kind from err, or 0 if err is not an *Error.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return 0
}

func newError(op string, kind Kind, value float64) *Error {
	return &Error{Op: op, Kind: kind, Value: value}
}
