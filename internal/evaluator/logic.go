package evaluator

import (
	"github.com/lyraproj/feel-evaluator/ast"
	"github.com/lyraproj/feel-evaluator/context"
	"github.com/lyraproj/feel-evaluator/internal/issue"
	"github.com/lyraproj/feel-evaluator/internal/logging"
	"github.com/lyraproj/feel-evaluator/internal/operators"
	"github.com/lyraproj/feel-evaluator/value"
)

// evalAtLeastOne and evalAll evaluate every operand unconditionally — spec
// §4.1, §9 insist on this precisely because the three-valued truth tables
// require a later true/false to still resolve an outcome a non-boolean
// operand would otherwise have contaminated.
func evalAtLeastOne(ex *ast.AtLeastOne, ctx *context.Context) value.Value {
	return operators.AtLeastOne(evalAll_(ex.Operands, ctx))
}

func evalAll(ex *ast.All, ctx *context.Context) value.Value {
	return operators.All(evalAll_(ex.Operands, ctx))
}

func evalAll_(operands []ast.Expression, ctx *context.Context) []value.Value {
	results := make([]value.Value, len(operands))
	for i, op := range operands {
		results[i] = Eval(op, ctx)
	}
	return results
}

// evalNot treats a non-boolean operand as the Null+warning silent failure
//, distinct from the hard-error policy comparisons use.
func evalNot(ex *ast.Not, ctx *context.Context) value.Value {
	operand := Eval(ex.Operand, ctx)
	if b, ok := operand.(value.Boolean); ok {
		return value.Boolean(!bool(b))
	}
	ctx.Logger().Warn(logging.NewWarning(issue.WarnNonBooleanNegation, nil))
	return value.TheNull
}

// evalIf treats a non-boolean condition as false with a warning rather than
// as an Error. A condition that is itself an Error is returned unchanged.
func evalIf(ex *ast.If, ctx *context.Context) value.Value {
	cond := Eval(ex.Condition, ctx)
	if e, ok := value.AsError(cond); ok {
		return e
	}
	b, ok := cond.(value.Boolean)
	if !ok {
		ctx.Logger().Warn(logging.NewWarning(issue.WarnNonBooleanCondition, nil))
		return Eval(ex.Else, ctx)
	}
	if bool(b) {
		return Eval(ex.Then, ctx)
	}
	return Eval(ex.Else, ctx)
}

// evalIn binds the evaluated probe as the implicit input, then evaluates
// Test in that extended Context.
func evalIn(ex *ast.In, ctx *context.Context) value.Value {
	probe := Eval(ex.Probe, ctx)
	if e, ok := value.AsError(probe); ok {
		return e
	}
	return Eval(ex.Test, ctx.WithInput(probe))
}
