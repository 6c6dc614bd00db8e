package lox

import "errors"

// ErrorKind classifies a runtime failure. The set is closed: every error
// this package returns carries exactly one of these kinds.
type ErrorKind int

const (
	TypeError ErrorKind = iota
	ArithmeticError
	ArityError
	PropertyError
	CallError
)

func (k ErrorKind) String() string {
	switch k {
	case TypeError:
		return "TypeError"
	case ArithmeticError:
		return "ArithmeticError"
	case ArityError:
		return "ArityError"
	case PropertyError:
		return "PropertyError"
	case CallError:
		return "CallError"
	default:
		return "RuntimeError"
	}
}

// RuntimeError is the single error type surfaced by the runtime. Failures
// abort the current operation and propagate to the caller; the runtime
// never retries or recovers on its own.
type RuntimeError struct {
	Kind    ErrorKind
	Message string
}

func (e *RuntimeError) Error() string {
	return e.Message
}

func newTypeError(message string) error {
	return &RuntimeError{Kind: TypeError, Message: message}
}

func newArithmeticError(message string) error {
	return &RuntimeError{Kind: ArithmeticError, Message: message}
}

func newArityError(message string) error {
	return &RuntimeError{Kind: ArityError, Message: message}
}

func newPropertyError(message string) error {
	return &RuntimeError{Kind: PropertyError, Message: message}
}

func newCallError(message string) error {
	return &RuntimeError{Kind: CallError, Message: message}
}

// IsKind reports whether err is a runtime error of the given kind.
func IsKind(err error, kind ErrorKind) bool {
	var re *RuntimeError
	if errors.As(err, &re) {
		return re.Kind == kind
	}
	return false
}
