package expect

import (
	"fmt"
	"reflect"

	"github.com/dmitrymomot/guardkit/pkg/guard"
)

// NotNull fails when value is a nil pointer. On success it returns the same
// pointer with a non-nil guarantee. It mirrors guard.NotNull but reports the
// failure as a broken invariant rather than bad caller input.
func NotNull[T any](value *T) (*T, error) {
	if value == nil {
		return nil, &ExpectationError{
			Expected: "a non-nil value",
			Actual:   "nil",
		}
	}
	return value, nil
}

// OfType fails when value is not a T, and returns the value as a T when it
// is. A nil value is a caller mistake (delegated to guard.NotNil and
// reported as a *guard.InvalidArgumentError); a wrong dynamic type is a
// failed expectation naming both types.
func OfType[T any](value any) (T, error) {
	var zero T
	if err := guard.NotNil("value", value); err != nil {
		return zero, err
	}
	typed, ok := value.(T)
	if !ok {
		return zero, &ExpectationError{
			Expected: "value of type " + typeName[T](),
			Actual:   fmt.Sprintf("value of type %T", value),
		}
	}
	return typed, nil
}

// typeName names T even when T is an interface type, which %T on a zero
// value cannot do.
func typeName[T any]() string {
	return reflect.TypeOf((*T)(nil)).Elem().String()
}
