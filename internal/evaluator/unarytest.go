package evaluator

import (
	"github.com/lyraproj/feel-evaluator/ast"
	"github.com/lyraproj/feel-evaluator/context"
	"github.com/lyraproj/feel-evaluator/internal/operators"
	"github.com/lyraproj/feel-evaluator/value"
)

// evalUnaryTest wires operators.UnaryTest against the Context's implicit
// input.
func evalUnaryTest(ex *ast.UnaryTest, ctx *context.Context) value.Value {
	operand := Eval(ex.Operand, ctx)
	if e, ok := value.AsError(operand); ok {
		return e
	}
	return operators.UnaryTest(ex.Op, ctx.Input(), operand)
}

// evalIntervalTest evaluates both endpoints before checking membership.
func evalIntervalTest(ex *ast.IntervalTest, ctx *context.Context) value.Value {
	start := Eval(ex.Start, ctx)
	if e, ok := value.AsError(start); ok {
		return e
	}
	end := Eval(ex.End, ctx)
	if e, ok := value.AsError(end); ok {
		return e
	}
	return operators.Interval(ctx.Input(), start, end, ex.StartClosed, ex.EndClosed)
}
