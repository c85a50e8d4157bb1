package guard

import "reflect"

// NotNull fails when value is a nil pointer. On success it returns the same
// pointer, so callers holding the result with a nil error have a checked,
// safe-to-dereference reference.
func NotNull[T any](param string, value *T, reason ...string) (*T, error) {
	if value == nil {
		return nil, newError(param, nil, "must not be nil", reason)
	}
	return value, nil
}

// NotNil fails when value is nil, including typed nils carried inside an
// interface (nil pointer, map, slice, chan, or func values).
func NotNil(param string, value any, reason ...string) error {
	if !isNil(value) {
		return nil
	}
	return newError(param, nil, "must not be nil", reason)
}

// isNil handles both untyped nil and typed nil interface values.
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
