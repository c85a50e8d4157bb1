package expect

import (
	"fmt"

	"github.com/dmitrymomot/guardkit/pkg/guard"
)

// InRange fails when value is outside [min, max], both bounds inclusive.
// Use it for values that a caller-facing boundary was supposed to validate
// already; the guard package covers the boundary itself.
func InRange[T guard.Integer](value, min, max T) error {
	if value >= min && value <= max {
		return nil
	}
	return &ExpectationError{
		Expected: fmt.Sprintf("value in range [%v, %v]", min, max),
		Actual:   fmt.Sprintf("%v", value),
		Context:  []string{"the value should have been validated before reaching this point"},
	}
}
