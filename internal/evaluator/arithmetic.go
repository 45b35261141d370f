package evaluator

import (
	"github.com/lyraproj/feel-evaluator/ast"
	"github.com/lyraproj/feel-evaluator/context"
	"github.com/lyraproj/feel-evaluator/internal/operators"
	"github.com/lyraproj/feel-evaluator/value"
)

// evalArithmetic evaluates both operands, propagating an Error from either
// before dispatch, then delegates to operators.Arithmetic and forwards any
// warning it returns to the Context's logger.
func evalArithmetic(ex *ast.Arithmetic, ctx *context.Context) value.Value {
	lhs := Eval(ex.Lhs, ctx)
	if e, ok := value.AsError(lhs); ok {
		return e
	}
	rhs := Eval(ex.Rhs, ctx)
	if e, ok := value.AsError(rhs); ok {
		return e
	}
	result, warning := operators.Arithmetic(ex.Op, lhs, rhs)
	if warning != nil {
		ctx.Logger().Warn(*warning)
	}
	return result
}

// evalNegate implements unary negation, sharing the withValOrNull policy
// with binary arithmetic.
func evalNegate(ex *ast.Negate, ctx *context.Context) value.Value {
	operand := Eval(ex.Operand, ctx)
	if e, ok := value.AsError(operand); ok {
		return e
	}
	result, warning := operators.Negate(operand)
	if warning != nil {
		ctx.Logger().Warn(*warning)
	}
	return result
}
