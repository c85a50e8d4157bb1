// Package guardkit is the umbrella module for a small family of
// precondition and invariant checking packages.
//
// The module draws a hard line between two kinds of failure:
//
//   - pkg/guard — precondition checks for values supplied by callers.
//     A failure means the caller broke the contract; it is reported as a
//     *guard.InvalidArgumentError naming the parameter, the offending
//     value, and the violated rule.
//
//   - pkg/expect — invariant and postcondition checks for a component's own
//     runtime state. A failure means the component (not its caller) has a
//     defect; it is reported as a *expect.ExpectationError with a structured
//     expected/actual/context message.
//
// Both packages are stateless collections of pure functions: no logging,
// no I/O, no configuration, no retries. A violated check returns its error
// immediately and the caller's error handling decides what happens next.
//
// Two auxiliary packages support test suites built on top:
//
//   - pkg/randomdata — pseudo-random strings, integers, and identifiers for
//     test fixtures, with deterministic reseeding.
//
//   - pkg/logtest — a log/slog handler that routes records through
//     testing.TB, so code under test logs into the test runner's output.
//
// The module follows these principles:
//   - Explicit over implicit
//   - Caller mistakes and internal defects are different errors
//   - Fail immediately, propagate unmodified
package guardkit
