// Package evaluator implements the recursive AST dispatcher: one switch
// over node kind, delegating each kind to its own evalXxx function kept in
// its own file (arithmetic.go, comparison.go, iteration.go, function.go,
// and so on).
package evaluator

import (
	"github.com/lyraproj/feel-evaluator/ast"
	"github.com/lyraproj/feel-evaluator/context"
	"github.com/lyraproj/feel-evaluator/internal/issue"
	"github.com/lyraproj/feel-evaluator/value"
)

// Eval is the total function from (Expression, Context) to Value exposed
// as `evaluate`. It never panics; every failure surfaces as value.Err or
// value.Null.
func Eval(exp ast.Expression, ctx *context.Context) value.Value {
	switch ex := exp.(type) {
	case *ast.LiteralNumber:
		return ex.Value
	case *ast.LiteralString:
		return value.String(ex.Value)
	case *ast.LiteralBoolean:
		return value.Boolean(ex.Value)
	case *ast.LiteralDate:
		return ex.Value
	case *ast.LiteralLocalTime:
		return ex.Value
	case *ast.LiteralTime:
		return ex.Value
	case *ast.LiteralLocalDateTime:
		return ex.Value
	case *ast.LiteralDateTime:
		return ex.Value
	case *ast.LiteralYearMonthDuration:
		return ex.Value
	case *ast.LiteralDayTimeDuration:
		return ex.Value
	case *ast.LiteralNull:
		return value.TheNull

	case *ast.ListLiteral:
		return evalListLiteral(ex, ctx)
	case *ast.ContextLiteral:
		return evalContextLiteral(ex, ctx)

	case *ast.UnaryTest:
		return evalUnaryTest(ex, ctx)
	case *ast.IntervalTest:
		return evalIntervalTest(ex, ctx)

	case *ast.Arithmetic:
		return evalArithmetic(ex, ctx)
	case *ast.Negate:
		return evalNegate(ex, ctx)

	case *ast.Comparison:
		return evalComparison(ex, ctx)

	case *ast.AtLeastOne:
		return evalAtLeastOne(ex, ctx)
	case *ast.All:
		return evalAll(ex, ctx)
	case *ast.Not:
		return evalNot(ex, ctx)
	case *ast.Disjunction:
		return value.Boolean(value.IsTruthy(Eval(ex.Lhs, ctx)) || value.IsTruthy(Eval(ex.Rhs, ctx)))
	case *ast.Conjunction:
		return value.Boolean(value.IsTruthy(Eval(ex.Lhs, ctx)) && value.IsTruthy(Eval(ex.Rhs, ctx)))

	case *ast.If:
		return evalIf(ex, ctx)
	case *ast.In:
		return evalIn(ex, ctx)
	case *ast.InstanceOf:
		return value.Boolean(value.TypeName(Eval(ex.Operand, ctx)) == ex.TypeName)

	case *ast.VariableReference:
		return evalVariableReference(ex, ctx)
	case *ast.Path:
		return evalPath(ex, ctx)

	case *ast.Some:
		return evalSome(ex, ctx)
	case *ast.Every:
		return evalEvery(ex, ctx)
	case *ast.For:
		return evalFor(ex, ctx)
	case *ast.Filter:
		return evalFilter(ex, ctx)

	case *ast.FunctionDefinition:
		return evalFunctionDefinition(ex, ctx)
	case *ast.PositionalInvocation:
		return evalPositionalInvocation(ex, ctx)
	case *ast.QualifiedInvocation:
		return evalQualifiedInvocation(ex, ctx)
	case *ast.HostFunctionInvocation:
		return evalHostFunctionInvocation(ex, ctx)

	default:
		return value.NewError(issue.UnhandledExpression, issue.H{`expression`: exp})
	}
}
