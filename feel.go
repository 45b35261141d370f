// Package feel is the FEEL core expression evaluator's single external
// operation: `evaluate(exp, ctx) -> Value`. Everything else —
// the Value universe, Context composition, the AST contract, and the
// dispatch internals — lives in its own package; this file only wires
// them together behind one call a host application imports.
package feel

import (
	"github.com/lyraproj/feel-evaluator/ast"
	"github.com/lyraproj/feel-evaluator/context"
	"github.com/lyraproj/feel-evaluator/internal/builtins"
	"github.com/lyraproj/feel-evaluator/internal/evaluator"
	"github.com/lyraproj/feel-evaluator/value"
)

// Evaluate is the total function from (Expression, Context) to Value spec
// §6 names. It never panics; every failure surfaces as value.Err or
// value.Null, with warnings, if any, delivered through ctx's Logger.
func Evaluate(exp ast.Expression, ctx *context.Context) value.Value {
	return evaluator.Eval(exp, ctx)
}

// NewRootContext builds an empty root Context with the standard built-ins
// (`round up`, `string`, `number`, `date`, `time`, `not`) already
// registered.
func NewRootContext() *context.Context {
	return builtins.Register(context.New())
}
