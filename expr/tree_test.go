package expr

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func eval(t *testing.T, expression string) float64 {
	t.Helper()
	tree, err := Parse(expression)
	require.NoError(t, err)
	result, err := tree.Eval()
	require.NoError(t, err)
	return result
}

func TestEvalArithmetic(t *testing.T) {
	assert.InDelta(t, 7, eval(t, "1+2*3"), 1e-9)
	assert.InDelta(t, 9, eval(t, "(1+2)*3"), 1e-9)
	assert.InDelta(t, 1, eval(t, "8/4/2"), 1e-9)
	assert.InDelta(t, 512, eval(t, "2^3^2"), 1e-9)
	assert.InDelta(t, 1, eval(t, "10%3"), 1e-9)
	assert.InDelta(t, 0.5, eval(t, "1/2"), 1e-9)
}

func TestEvalUnaryMinus(t *testing.T) {
	assert.InDelta(t, -5, eval(t, "-5"), 1e-9)
	assert.InDelta(t, -2, eval(t, "-5+3"), 1e-9)
	assert.InDelta(t, -5, eval(t, "-(2+3)"), 1e-9)
	assert.InDelta(t, 7, eval(t, "5 - -2"), 1e-9)
	assert.InDelta(t, -6, eval(t, "3*-2"), 1e-9)
	assert.InDelta(t, 5, eval(t, "--5"), 1e-9)
	assert.InDelta(t, -1, eval(t, "neg(1)"), 1e-9)
}

func TestEvalUnaryMinusPrecedence(t *testing.T) {
	// negation binds looser than exponentiation
	assert.InDelta(t, -25, eval(t, "-5^2"), 1e-9)
	assert.InDelta(t, 0.125, eval(t, "2^-3"), 1e-9)
	assert.InDelta(t, -25, eval(t, "-(2+3)^2"), 1e-9)
	// but tighter than addition
	assert.InDelta(t, -2, eval(t, "-5+3"), 1e-9)
}

func TestEvalConstants(t *testing.T) {
	assert.InDelta(t, math.Pi, eval(t, "pi"), 1e-12)
	assert.InDelta(t, math.E, eval(t, "e"), 1e-12)
	assert.InDelta(t, 2*math.Pi, eval(t, "2*pi"), 1e-12)
}

func TestEvalFunctions(t *testing.T) {
	assert.InDelta(t, 0, eval(t, "sin(0)"), 1e-12)
	assert.InDelta(t, 1, eval(t, "cos(0)"), 1e-12)
	assert.InDelta(t, 0, eval(t, "tan(0)"), 1e-12)
	assert.InDelta(t, 1, eval(t, "ln(e)"), 1e-12)
	assert.InDelta(t, 3, eval(t, "lg(8)"), 1e-12)
	assert.InDelta(t, 2, eval(t, "log(100)"), 1e-12)
	assert.InDelta(t, 1, eval(t, "csc(pi/2)"), 1e-12)
	assert.InDelta(t, 1, eval(t, "sec(0)"), 1e-12)
	assert.InDelta(t, 1, eval(t, "sgn(42)"), 1e-12)
	assert.InDelta(t, -1, eval(t, "sgn(0-42)"), 1e-12)
	// function application binds without parentheses too
	assert.InDelta(t, 1, eval(t, "cos 0"), 1e-12)
}

func TestEvalNested(t *testing.T) {
	assert.InDelta(t, 1, eval(t, "sin(pi/2)^2+cos(pi)+1"), 1e-9)
	assert.InDelta(t, 14, eval(t, "2*(3+4)"), 1e-9)
}

func TestEvalDivisionByZero(t *testing.T) {
	assert.True(t, math.IsInf(eval(t, "1/0"), 1))
}

func TestParseErrors(t *testing.T) {
	cases := map[string]string{
		"":       "empty expression",
		"1 2":    "unconsumed",
		"+":      "missing an operand",
		"sin":    "missing an argument",
		"1.2.3":  "invalid number",
		"(1+2":   "parentheses",
		"1+2)*3": "parentheses",
	}

	for expression, want := range cases {
		_, err := Parse(expression)
		require.Error(t, err, expression)
		assert.Contains(t, err.Error(), want, expression)
	}
}

func TestEvalUnknownFunction(t *testing.T) {
	tree, err := Parse("foo(1)")
	require.NoError(t, err)
	_, err = tree.Eval()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown function")
}

func TestTreeString(t *testing.T) {
	tree, err := Parse("1+2*3")
	require.NoError(t, err)
	assert.Equal(t, "(1 + (2 * 3))", tree.String())

	tree, err = Parse("-5")
	require.NoError(t, err)
	assert.Equal(t, "(- 5)", tree.String())

	tree, err = Parse("sin(0)")
	require.NoError(t, err)
	assert.Equal(t, "(sin 0)", tree.String())
}

func TestFormatResult(t *testing.T) {
	assert.Equal(t, "7", FormatResult(7))
	assert.Equal(t, "0.5", FormatResult(0.5))
	assert.Equal(t, "3.141592653589793", FormatResult(math.Pi))
}
