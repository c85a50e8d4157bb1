package expect

import (
	"fmt"
	"reflect"

	"github.com/dmitrymomot/guardkit/pkg/guard"
)

// Contains fails when m lacks key or the stored value is itself nil; on
// success it returns the value. A nil map is a caller mistake, not a failed
// expectation, so it is rejected through guard.NotNil and surfaces as a
// *guard.InvalidArgumentError.
func Contains[K comparable, V any](m map[K]V, key K) (V, error) {
	var zero V
	if err := guard.NotNil("m", m); err != nil {
		return zero, err
	}
	value, ok := m[key]
	if !ok {
		return zero, &ExpectationError{
			Expected: fmt.Sprintf("map contains key %v", key),
			Actual:   "the key is missing",
		}
	}
	if isNil(value) {
		return zero, &ExpectationError{
			Expected: fmt.Sprintf("map contains a non-nil value for key %v", key),
			Actual:   "the value is nil",
		}
	}
	return value, nil
}

// isNil handles both untyped nil and typed nil values of nilable kinds.
func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Slice, reflect.Map, reflect.Chan, reflect.Func:
		return rv.IsNil()
	default:
		return false
	}
}
