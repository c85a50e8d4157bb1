package guard

// Condition fails when ok is false. Use it for one-off preconditions that
// have no dedicated check; description names the predicate the value failed,
// e.g. guard.Condition("id", id, isWellFormed(id), "must be a well-formed id").
func Condition(param string, value any, ok bool, description string) error {
	if ok {
		return nil
	}
	return &InvalidArgumentError{Param: param, Value: value, Reason: description}
}
