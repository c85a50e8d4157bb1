package expect

import (
	"errors"
	"strings"
)

// ErrExpectationFailed is the sentinel error wrapped by every expectation
// failure, so callers can detect the whole class with errors.Is.
var ErrExpectationFailed = errors.New("expectation failed")

// ExpectationError reports a violated runtime invariant or postcondition.
// Unlike guard.InvalidArgumentError it signals a defect in the component
// itself rather than bad caller input, and carries a structured
// expected/actual/context message for diagnosability. Immutable once
// constructed.
type ExpectationError struct {
	// Expected describes the condition that should have held.
	Expected string
	// Actual describes what was observed instead.
	Actual string
	// Context holds zero or more extra lines of free-form detail, appended
	// to the rendered message verbatim and in order.
	Context []string
}

// Error renders the fixed multi-line message:
//
//	Expected: <expected>
//	Actual: <actual>
//	<context line>
//	...
func (e *ExpectationError) Error() string {
	if e == nil {
		return ErrExpectationFailed.Error()
	}
	lines := make([]string, 0, len(e.Context)+2)
	lines = append(lines, "Expected: "+e.Expected, "Actual: "+e.Actual)
	lines = append(lines, e.Context...)
	return strings.Join(lines, "\n")
}

// Unwrap returns the sentinel so errors.Is(err, ErrExpectationFailed) holds.
func (e *ExpectationError) Unwrap() error {
	return ErrExpectationFailed
}

// IsExpectationFailed reports whether err is (or wraps) an expectation failure.
func IsExpectationFailed(err error) bool {
	return errors.Is(err, ErrExpectationFailed)
}

// AsExpectationError extracts the structured error when err is an
// expectation failure.
func AsExpectationError(err error) (*ExpectationError, bool) {
	var e *ExpectationError
	if errors.As(err, &e) {
		return e, true
	}
	return nil, false
}
