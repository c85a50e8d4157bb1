// Package expect provides runtime invariant and postcondition checks: the
// conditions a component guarantees about its own state, as opposed to the
// values it is handed by callers (covered by the companion guard package).
// Every check is a pure function that returns nil on success and a
// *ExpectationError on failure.
//
// An ExpectationError carries a structured three-part message — what was
// expected, what was observed, and any extra context lines — rendered as:
//
//	Expected: map contains key user.id
//	Actual: the key is missing
//
// A failed expectation signals a defect in the component itself or a broken
// internal contract, never bad caller input. The one place the two worlds
// meet: checks that take their own inputs (a mapping, a value to type-assert)
// vet those inputs through the guard package first, so a nil map passed to
// Contains comes back as a *guard.InvalidArgumentError, while a missing key
// comes back as a *ExpectationError. Callers can tell the tiers apart with
// errors.Is against guard.ErrInvalidArgument and ErrExpectationFailed.
//
// # Usage
//
//	plan, err := expect.Contains(plansByID, id)
//	if err != nil {
//	    return err
//	}
//
//	switch v := msg.(type) {
//	case *Ping:
//	    ...
//	default:
//	    return expect.Unreachable("unhandled message", fmt.Sprintf("type: %T", v))
//	}
//
// Like guard, the package never logs, retries, or suppresses; failures are
// returned immediately and propagate unmodified. All checks are stateless
// and safe for concurrent use.
package expect
