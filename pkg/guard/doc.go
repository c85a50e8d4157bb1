// Package guard provides precondition checks for values supplied by callers
// at a function or API boundary. Every check is a pure function that returns
// nil on success and a *InvalidArgumentError naming the parameter, the
// offending value, and the violated rule on failure.
//
// The package draws a deliberate line between bad caller input and broken
// internal invariants: guard covers the former, the companion expect package
// covers the latter. Code that validates its own computed state should use
// expect; code that validates what it was handed should use guard.
//
// # Usage
//
//	func NewWorkerPool(name string, size int) (*Pool, error) {
//	    if err := guard.NotNullOrWhiteSpace("name", name); err != nil {
//	        return nil, err
//	    }
//	    if err := guard.Positive("size", size); err != nil {
//	        return nil, err
//	    }
//	    ...
//	}
//
// Go has no call-site expression capture, so every check takes the parameter
// name explicitly as its first argument; the name is echoed in the error so
// messages are self-describing. Most checks additionally accept an optional
// trailing reason string that replaces the default rule description.
//
// # Error Handling
//
// All failures wrap the ErrInvalidArgument sentinel, so callers can detect
// the class with errors.Is and recover the structured fields with errors.As
// (or the IsInvalidArgument / AsInvalidArgument helpers). The package never
// logs, retries, or suppresses: a failure is returned immediately and the
// caller decides what to do with it.
//
// # Performance Considerations
//
// Checks are simple comparisons and allocate only on the failure path. They
// hold no state and are safe for concurrent use.
package guard
