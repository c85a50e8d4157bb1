package guard

import "strings"

// NotNullOrWhiteSpace fails when the string is empty or contains only
// whitespace. Go strings are never nil, so the absent case is the empty
// string.
func NotNullOrWhiteSpace(param, value string, reason ...string) error {
	if strings.TrimSpace(value) != "" {
		return nil
	}
	return newError(param, value, "must not be empty or whitespace", reason)
}
