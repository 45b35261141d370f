package evaluator

import (
	"github.com/lyraproj/feel-evaluator/ast"
	"github.com/lyraproj/feel-evaluator/context"
	"github.com/lyraproj/feel-evaluator/internal/operators"
	"github.com/lyraproj/feel-evaluator/value"
)

// evalComparison evaluates both operands, propagating an Error from either
// before dispatch — operators.Compare already reports its own Error for a
// type mismatch between two well-formed operands.
func evalComparison(ex *ast.Comparison, ctx *context.Context) value.Value {
	lhs := Eval(ex.Lhs, ctx)
	if e, ok := value.AsError(lhs); ok {
		return e
	}
	rhs := Eval(ex.Rhs, ctx)
	if e, ok := value.AsError(rhs); ok {
		return e
	}
	return operators.Compare(ex.Op, lhs, rhs)
}
