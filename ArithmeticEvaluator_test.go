package main

import (
	"github.com/stretchr/testify/assert"
	"testing"
)

func TestArithmeticEvaluator_Evaluate(t *testing.T) {
	evaluator := NewArithmeticEvaluator()

	t.Run("supported expressions", func(t *testing.T) {
		testCases := map[string]float64{
			"1+2*3":         7,
			"(1+2)*3":       9,
			"-3+5":          2,
			"+4":            4,
			"10/4":          2.5,
			"7%3":           1,
			"-7%3":          -1,
			"1.5e3":         1500,
			"2-(-2)":        4,
			"((((8))))":     8,
			"1 - 2 - 3":     -4,
			"2 * -3":        -6,
			"100 / 10 / 5":  2,
			"0.25 * 4 + 1":  2,
			"3 - (2 - (1))": 2,
		}

		for expression, expected := range testCases {
			actual, err := evaluator.Evaluate(expression)
			assert.NoError(t, err, expression)
			assert.Equal(t, expected, actual, expression)
		}
	})

	t.Run("integer literals beyond int64", func(t *testing.T) {
		actual, err := evaluator.Evaluate("99999999999999999999")
		assert.NoError(t, err)
		assert.Equal(t, 1e20, actual)

		actual, err = evaluator.Evaluate("99999999999999999999 - 9223372036854775807 + 1")
		assert.NoError(t, err)
		assert.InDelta(t, 1e20-9223372036854775807, actual, 1e5)
	})

	t.Run("float precision is not rounded", func(t *testing.T) {
		actual, err := evaluator.Evaluate("0.1+0.2")
		assert.NoError(t, err)
		assert.Equal(t, 0.1+0.2, actual)
	})

	t.Run("only arithmetic is allowed", func(t *testing.T) {
		for _, expression := range []string{
			"2 ** 3",
			"2 ^ 3",
			"foo + 1",
			`"a" + "b"`,
			"1 == 1",
			"len([1, 2])",
			"true",
			"nil",
			"!1",
			"1 < 2 ? 3 : 4",
		} {
			_, err := evaluator.Evaluate(expression)
			assert.ErrorIs(t, err, UnsupportedExpressionError, expression)
		}
	})

	t.Run("syntax errors", func(t *testing.T) {
		for _, expression := range []string{"1 +", "(1", "1)", "*"} {
			_, err := evaluator.Evaluate(expression)
			assert.ErrorIs(t, err, ArithmeticError, expression)
		}
	})

	t.Run("empty expression", func(t *testing.T) {
		_, err := evaluator.Evaluate("  ")
		assert.ErrorIs(t, err, EmptyExpressionError)
		assert.ErrorIs(t, err, ArithmeticError)
	})

	t.Run("non finite results", func(t *testing.T) {
		for _, expression := range []string{"1/0", "0/0", "5%0", "-1/0", "1e308*10"} {
			_, err := evaluator.Evaluate(expression)
			assert.ErrorIs(t, err, NonFiniteResultError, expression)
		}
	})
}

func TestFloatLiterals(t *testing.T) {
	assert.Equal(t, "1+2", floatLiterals("1+2"))
	assert.Equal(t, "9223372036854775807", floatLiterals("9223372036854775807"))
	assert.Equal(t, "9223372036854775808.0*2", floatLiterals("9223372036854775808*2"))
	assert.Equal(t, "99999999999999999999.5", floatLiterals("99999999999999999999.5"))
	assert.Equal(t, "1e400", floatLiterals("1e400"))
}
