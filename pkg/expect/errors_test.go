package expect_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/guardkit/pkg/expect"
	"github.com/dmitrymomot/guardkit/pkg/guard"
)

func TestExpectationError(t *testing.T) {
	t.Parallel()

	t.Run("renders the two-line message", func(t *testing.T) {
		err := &expect.ExpectationError{Expected: "a sorted slice", Actual: "element 3 precedes element 2"}
		assert.Equal(t, "Expected: a sorted slice\nActual: element 3 precedes element 2", err.Error())
	})

	t.Run("appends context lines verbatim and in order", func(t *testing.T) {
		err := &expect.ExpectationError{
			Expected: "a",
			Actual:   "b",
			Context:  []string{"first line", "second line"},
		}
		assert.Equal(t, "Expected: a\nActual: b\nfirst line\nsecond line", err.Error())
	})

	t.Run("message always contains the Expected and Actual markers", func(t *testing.T) {
		err := expect.Condition(false, "x")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "Expected:")
		assert.Contains(t, err.Error(), "Actual:")
	})

	t.Run("unwraps to the sentinel", func(t *testing.T) {
		err := expect.Condition(false, "x")
		assert.ErrorIs(t, err, expect.ErrExpectationFailed)
		assert.True(t, expect.IsExpectationFailed(err))
	})

	t.Run("survives wrapping", func(t *testing.T) {
		err := fmt.Errorf("apply plan: %w", expect.Condition(false, "plan is applied"))
		expErr, ok := expect.AsExpectationError(err)
		require.True(t, ok)
		assert.Equal(t, "condition evaluates to true", expErr.Expected)
	})

	t.Run("the two error tiers stay distinct", func(t *testing.T) {
		expErr := expect.Condition(false, "x")
		assert.False(t, guard.IsInvalidArgument(expErr))

		argErr := guard.Positive("n", 0)
		assert.False(t, expect.IsExpectationFailed(argErr))
	})
}
