package guard

import (
	"errors"
	"fmt"
)

// ErrInvalidArgument is the sentinel error wrapped by every guard failure,
// so callers can detect the whole class with errors.Is.
var ErrInvalidArgument = errors.New("invalid argument")

// InvalidArgumentError reports a caller-supplied value that violates a
// documented precondition. It is constructed on the failure path and never
// mutated afterwards.
type InvalidArgumentError struct {
	// Param is the name of the offending parameter as supplied by the call site.
	Param string
	// Value is the offending value. Nil when the violation is the absence of
	// a value (NotNull, NotNil, nil collections).
	Value any
	// Reason describes the violated rule, e.g. "must be positive".
	Reason string
}

// Error implements the error interface.
func (e *InvalidArgumentError) Error() string {
	if e == nil {
		return ErrInvalidArgument.Error()
	}
	if e.Value == nil {
		return fmt.Sprintf("invalid argument %q: %s", e.Param, e.Reason)
	}
	return fmt.Sprintf("invalid argument %q: %s (got %v)", e.Param, e.Reason, e.Value)
}

// Unwrap returns the sentinel so errors.Is(err, ErrInvalidArgument) holds.
func (e *InvalidArgumentError) Unwrap() error {
	return ErrInvalidArgument
}

// IsInvalidArgument reports whether err is (or wraps) a guard failure.
func IsInvalidArgument(err error) bool {
	return errors.Is(err, ErrInvalidArgument)
}

// AsInvalidArgument extracts the structured error when err is a guard failure.
func AsInvalidArgument(err error) (*InvalidArgumentError, bool) {
	var e *InvalidArgumentError
	if errors.As(err, &e) {
		return e, true
	}
	return nil, false
}

// newError builds the failure for a check, applying an optional per-call
// reason override. The override wins only when non-empty, keeping the
// invariant that errors always carry a description of the violated rule.
func newError(param string, value any, reason string, override []string) *InvalidArgumentError {
	if len(override) > 0 && override[0] != "" {
		reason = override[0]
	}
	return &InvalidArgumentError{Param: param, Value: value, Reason: reason}
}
