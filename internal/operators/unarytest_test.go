package operators_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lyraproj/feel-evaluator/ast"
	"github.com/lyraproj/feel-evaluator/internal/operators"
	"github.com/lyraproj/feel-evaluator/value"
)

// TestUnaryTest_LessThan covers input = 5, `< 10` -> true.
func TestUnaryTest_LessThan(t *testing.T) {
	result := operators.UnaryTest(ast.UnaryTestLess, value.NewNumberFromInt(5), value.NewNumberFromInt(10))
	assert.Equal(t, value.Boolean(true), result)
}

// TestUnaryTest_TypeMismatch covers input = "abc", `< 10` -> Error.
func TestUnaryTest_TypeMismatch(t *testing.T) {
	result := operators.UnaryTest(ast.UnaryTestLess, value.String(`abc`), value.NewNumberFromInt(10))
	_, ok := value.AsError(result)
	assert.True(t, ok)
}

func TestUnaryTest_Equal_AcceptsUnorderedKinds(t *testing.T) {
	result := operators.UnaryTest(ast.UnaryTestEqual, value.Boolean(true), value.Boolean(true))
	assert.Equal(t, value.Boolean(true), result)
}

func TestInterval_ClosedBoundaries(t *testing.T) {
	in := operators.Interval(value.NewNumberFromInt(5), value.NewNumberFromInt(1), value.NewNumberFromInt(5), true, true)
	assert.Equal(t, value.Boolean(true), in)

	out := operators.Interval(value.NewNumberFromInt(5), value.NewNumberFromInt(1), value.NewNumberFromInt(5), true, false)
	assert.Equal(t, value.Boolean(false), out)
}
