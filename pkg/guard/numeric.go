package guard

import "fmt"

// Signed is the constraint for checks that only make sense on signed integers.
type Signed interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64
}

// Integer covers all built-in integer types.
type Integer interface {
	Signed | ~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64
}

// Numeric covers all built-in integer and floating-point types.
type Numeric interface {
	Integer | ~float32 | ~float64
}

// Even fails when value is odd.
func Even[T Integer](param string, value T, reason ...string) error {
	if value%2 == 0 {
		return nil
	}
	return newError(param, value, "must be even", reason)
}

// Odd fails when value is even.
func Odd[T Integer](param string, value T, reason ...string) error {
	if value%2 != 0 {
		return nil
	}
	return newError(param, value, "must be odd", reason)
}

// InRange fails when value is outside [min, max]. Both bounds are inclusive.
func InRange[T Integer](param string, value, min, max T, reason ...string) error {
	if value >= min && value <= max {
		return nil
	}
	return newError(param, value, rangeReason(min, max), reason)
}

func rangeReason[T Integer](min, max T) string {
	return fmt.Sprintf("must be between %v and %v", min, max)
}

// NotNegative fails when value is below zero.
func NotNegative[T Signed](param string, value T, reason ...string) error {
	if value >= 0 {
		return nil
	}
	return newError(param, value, "must not be negative", reason)
}

// NullOrNotNegative succeeds when value is absent (nil pointer) or present
// and non-negative. Only a present negative value fails.
func NullOrNotNegative[T Signed](param string, value *T, reason ...string) error {
	if value == nil || *value >= 0 {
		return nil
	}
	return newError(param, *value, "must be nil or not negative", reason)
}

// NotZero fails when value equals the zero value of its numeric type.
func NotZero[T Numeric](param string, value T, reason ...string) error {
	if value != 0 {
		return nil
	}
	return newError(param, value, "must not be zero", reason)
}

// Positive fails when value is zero or below.
func Positive[T Signed](param string, value T, reason ...string) error {
	if value > 0 {
		return nil
	}
	return newError(param, value, "must be positive", reason)
}
