package expect

// Condition fails when ok is false. description names the invariant that was
// expected to hold and becomes a context line of the error.
func Condition(ok bool, description string) error {
	if ok {
		return nil
	}
	return &ExpectationError{
		Expected: "condition evaluates to true",
		Actual:   "condition evaluates to false",
		Context:  []string{description},
	}
}

// Unreachable constructs, but does not return as a failure by itself, the
// error for a code path that must never execute. It is meant for the default
// arm of an exhaustive switch, where the caller needs an error value as the
// terminating expression:
//
//	switch kind {
//	case kindA:
//	    ...
//	case kindB:
//	    ...
//	default:
//	    return expect.Unreachable("unhandled kind", fmt.Sprintf("kind: %v", kind))
//	}
func Unreachable(description string, context ...string) *ExpectationError {
	return &ExpectationError{
		Expected: "this code path is never reached",
		Actual:   "it was reached",
		Context:  append([]string{description}, context...),
	}
}
