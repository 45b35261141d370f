package operators_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lyraproj/feel-evaluator/ast"
	"github.com/lyraproj/feel-evaluator/internal/operators"
	"github.com/lyraproj/feel-evaluator/value"
)

func TestCompare_Equal(t *testing.T) {
	result := operators.Compare(ast.CmpEqual, value.NewNumberFromInt(3), value.NewNumberFromInt(3))
	assert.Equal(t, value.Boolean(true), result)
}

func TestCompare_Less(t *testing.T) {
	result := operators.Compare(ast.CmpLess, value.NewNumberFromInt(2), value.NewNumberFromInt(3))
	assert.Equal(t, value.Boolean(true), result)
}

// TestCompare_TypeMismatch_IsError asserts comparisons use the hard-error
// policy, unlike arithmetic's withValOrNull suppression.
func TestCompare_TypeMismatch_IsError(t *testing.T) {
	result := operators.Compare(ast.CmpLess, value.String(`abc`), value.NewNumberFromInt(10))
	_, ok := value.AsError(result)
	assert.True(t, ok)
}

func TestCompare_NotEqual(t *testing.T) {
	result := operators.Compare(ast.CmpNotEqual, value.NewNumberFromInt(1), value.NewNumberFromInt(2))
	assert.Equal(t, value.Boolean(true), result)
}
