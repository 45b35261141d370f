package evaluator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lyraproj/feel-evaluator/ast"
	"github.com/lyraproj/feel-evaluator/context"
	"github.com/lyraproj/feel-evaluator/internal/builtins"
	"github.com/lyraproj/feel-evaluator/internal/evaluator"
	"github.com/lyraproj/feel-evaluator/internal/logging"
	"github.com/lyraproj/feel-evaluator/value"
)

func num(f float64) *ast.LiteralNumber { return &ast.LiteralNumber{Value: value.NewNumber(f)} }

// TestIf_NonBooleanCondition covers `if 1 then "a" else "b"` -> "b" with a
// warning, since 1 is not boolean.
func TestIf_NonBooleanCondition(t *testing.T) {
	logger := logging.NewArrayLogger()
	ctx := context.New().WithLogger(logger)
	exp := &ast.If{
		Condition: num(1),
		Then:      &ast.LiteralString{Value: `a`},
		Else:      &ast.LiteralString{Value: `b`},
	}
	result := evaluator.Eval(exp, ctx)
	assert.Equal(t, `b`, result.String())
	assert.Len(t, logger.Warnings(), 1)
}

// TestContextLiteral_LaterEntriesSeeEarlier covers `{a: 1, b: a + 2}` ->
// Context with a=1, b=3.
func TestContextLiteral_LaterEntriesSeeEarlier(t *testing.T) {
	exp := &ast.ContextLiteral{Entries: []ast.ContextEntry{
		{Key: `a`, Value: num(1)},
		{Key: `b`, Value: &ast.Arithmetic{
			Op:  ast.OpAdd,
			Lhs: &ast.VariableReference{Name: `a`},
			Rhs: num(2),
		}},
	}}
	result := evaluator.Eval(exp, context.New())
	ctx, ok := result.(*context.Context)
	assert.True(t, ok)
	av, _ := ctx.Get(`a`)
	bv, _ := ctx.Get(`b`)
	assert.Equal(t, `1`, av.String())
	assert.Equal(t, `3`, bv.String())
}

// TestFor_CartesianEnumeration covers `for i in [1,2], j in [3,4] return
// (i,j)`, which must yield exactly [(1,3),(1,4),(2,3),(2,4)] — modeled here
// as a two-item list per combination since the AST has no tuple node.
func TestFor_CartesianEnumeration(t *testing.T) {
	exp := &ast.For{
		Iterators: []ast.Iterator{
			{Name: `i`, Source: &ast.ListLiteral{Items: []ast.Expression{num(1), num(2)}}},
			{Name: `j`, Source: &ast.ListLiteral{Items: []ast.Expression{num(3), num(4)}}},
		},
		Body: &ast.ListLiteral{Items: []ast.Expression{
			&ast.VariableReference{Name: `i`},
			&ast.VariableReference{Name: `j`},
		}},
	}
	result := evaluator.Eval(exp, context.New())
	list, ok := result.(*value.List)
	assert.True(t, ok)
	assert.Equal(t, `[[1, 3], [1, 4], [2, 3], [2, 4]]`, list.String())
}

func TestSome_Existential(t *testing.T) {
	exp := &ast.Some{
		Iterators: []ast.Iterator{{Name: `i`, Source: &ast.ListLiteral{Items: []ast.Expression{num(1), num(2), num(3)}}}},
		Body: &ast.Comparison{
			Op:  ast.CmpEqual,
			Lhs: &ast.VariableReference{Name: `i`},
			Rhs: num(2),
		},
	}
	result := evaluator.Eval(exp, context.New())
	assert.Equal(t, value.Boolean(true), result)
}

func TestEvery_Universal(t *testing.T) {
	exp := &ast.Every{
		Iterators: []ast.Iterator{{Name: `i`, Source: &ast.ListLiteral{Items: []ast.Expression{num(1), num(2), num(3)}}}},
		Body: &ast.Comparison{
			Op:  ast.CmpGreater,
			Lhs: &ast.VariableReference{Name: `i`},
			Rhs: num(0),
		},
	}
	result := evaluator.Eval(exp, context.New())
	assert.Equal(t, value.Boolean(true), result)
}

func TestFilter_KeepsOnlyTrue(t *testing.T) {
	exp := &ast.Filter{
		List:      &ast.ListLiteral{Items: []ast.Expression{num(1), num(2), num(3), num(4)}},
		ItemName:  `x`,
		Predicate: &ast.Comparison{Op: ast.CmpGreaterOrEqual, Lhs: &ast.VariableReference{Name: `x`}, Rhs: num(3)},
	}
	result := evaluator.Eval(exp, context.New())
	list := result.(*value.List)
	assert.Equal(t, `[3, 4]`, list.String())
}

// TestDivisionByZero covers that division by zero is Error, not Null.
func TestDivisionByZero(t *testing.T) {
	exp := &ast.Arithmetic{Op: ast.OpDiv, Lhs: num(1), Rhs: num(0)}
	result := evaluator.Eval(exp, context.New())
	_, ok := value.AsError(result)
	assert.True(t, ok)
}

func TestVariableReference_Unknown_IsError(t *testing.T) {
	result := evaluator.Eval(&ast.VariableReference{Name: `nope`}, context.New())
	_, ok := value.AsError(result)
	assert.True(t, ok)
}

// TestQualifiedInvocation covers `{f: function(x) x+1}.f(4)`.
func TestQualifiedInvocation(t *testing.T) {
	exp := &ast.QualifiedInvocation{
		Target: &ast.ContextLiteral{Entries: []ast.ContextEntry{
			{Key: `f`, Value: &ast.FunctionDefinition{
				Parameters: []string{`x`},
				Body:       &ast.Arithmetic{Op: ast.OpAdd, Lhs: &ast.VariableReference{Name: `x`}, Rhs: num(1)},
			}},
		}},
		Name: `f`,
		Args: []ast.Expression{num(4)},
	}
	result := evaluator.Eval(exp, context.New())
	assert.Equal(t, `5`, result.String())
}

// TestContextLiteral_FunctionEntryIsPositionallyInvocable covers
// `{inc: function(x) x+1, y: inc(4)}`, where a later entry calls an
// earlier Function entry by name rather than through path access.
func TestContextLiteral_FunctionEntryIsPositionallyInvocable(t *testing.T) {
	exp := &ast.ContextLiteral{Entries: []ast.ContextEntry{
		{Key: `inc`, Value: &ast.FunctionDefinition{
			Parameters: []string{`x`},
			Body:       &ast.Arithmetic{Op: ast.OpAdd, Lhs: &ast.VariableReference{Name: `x`}, Rhs: num(1)},
		}},
		{Key: `y`, Value: &ast.PositionalInvocation{Name: `inc`, Args: []ast.Expression{num(4)}}},
	}}
	result := evaluator.Eval(exp, context.New())
	ctx, ok := result.(*context.Context)
	assert.True(t, ok)
	y, ok := ctx.Get(`y`)
	assert.True(t, ok)
	assert.Equal(t, `5`, y.String())
}

func TestPositionalInvocation_BuiltinRoundUp(t *testing.T) {
	ctx := builtins.Register(context.New())
	exp := &ast.PositionalInvocation{Name: `round up`, Args: []ast.Expression{num(2.4), num(0)}}
	result := evaluator.Eval(exp, ctx)
	assert.Equal(t, `3`, result.String())
}

func TestInstanceOf(t *testing.T) {
	exp := &ast.InstanceOf{Operand: num(1), TypeName: `number`}
	assert.Equal(t, value.Boolean(true), evaluator.Eval(exp, context.New()))
}

func TestPath_ContextLookup(t *testing.T) {
	exp := &ast.Path{
		Operand: &ast.ContextLiteral{Entries: []ast.ContextEntry{{Key: `a`, Value: num(1)}}},
		Name:    `a`,
	}
	assert.Equal(t, `1`, evaluator.Eval(exp, context.New()).String())
}

func TestIn_BindsImplicitInput(t *testing.T) {
	exp := &ast.In{
		Probe: num(5),
		Test:  &ast.UnaryTest{Op: ast.UnaryTestLess, Operand: num(10)},
	}
	assert.Equal(t, value.Boolean(true), evaluator.Eval(exp, context.New()))
}
