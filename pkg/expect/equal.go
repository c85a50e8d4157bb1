package expect

import (
	"fmt"

	"github.com/dmitrymomot/guardkit/pkg/guard"
)

// Equal fails when a and b differ. Comparison defaults to ==; pass an
// explicit comparer to override it.
func Equal[T comparable](a, b T, cmp ...func(a, b T) bool) error {
	equal := a == b
	if len(cmp) > 0 && cmp[0] != nil {
		equal = cmp[0](a, b)
	}
	if equal {
		return nil
	}
	return &ExpectationError{
		Expected: "values are equal",
		Actual:   "values differ",
		Context: []string{
			fmt.Sprintf("a: %v", a),
			fmt.Sprintf("b: %v", b),
		},
	}
}

// NotEqual fails when a and b are equal per cmp. Unlike Equal there is no
// default comparer: cmp is required, matching the asymmetry of the original
// contract (see the package tests, which pin this behavior down).
func NotEqual[T any](a, b T, cmp func(a, b T) bool) error {
	if err := guard.NotNil("cmp", cmp); err != nil {
		return err
	}
	if !cmp(a, b) {
		return nil
	}
	return &ExpectationError{
		Expected: "values are not equal",
		Actual:   "values are equal",
		Context: []string{
			fmt.Sprintf("a: %v", a),
			fmt.Sprintf("b: %v", b),
		},
	}
}
