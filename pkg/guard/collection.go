package guard

import "fmt"

// MinimumLength fails when values is nil or holds fewer than min elements.
// A nil slice fails the nil check, not the length check, so callers can tell
// "absent collection" apart from "collection too small".
func MinimumLength[T any](param string, values []T, min int, reason ...string) error {
	if values == nil {
		return newError(param, nil, "must not be nil", nil)
	}
	if len(values) >= min {
		return nil
	}
	return newError(param, len(values), fmt.Sprintf("must contain at least %d elements", min), reason)
}
