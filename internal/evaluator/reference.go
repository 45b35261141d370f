package evaluator

import (
	"github.com/lyraproj/feel-evaluator/ast"
	"github.com/lyraproj/feel-evaluator/context"
	"github.com/lyraproj/feel-evaluator/internal/issue"
	"github.com/lyraproj/feel-evaluator/value"
)

// evalVariableReference reads a single name from the Context's variables, an
// unknown name is a hard Error.
func evalVariableReference(ex *ast.VariableReference, ctx *context.Context) value.Value {
	if v, ok := ctx.Get(ex.Name); ok {
		return v
	}
	return value.NewError(issue.UnknownVariable, issue.H{`name`: ex.Name})
}

// evalPath applies single-name access to the evaluated Operand: Context
// lookup, List map, or Error for anything else.
func evalPath(ex *ast.Path, ctx *context.Context) value.Value {
	operand := Eval(ex.Operand, ctx)
	return pathAccess(operand, ex.Name)
}

func pathAccess(operand value.Value, name string) value.Value {
	switch v := operand.(type) {
	case *context.Context:
		if val, ok := v.Get(name); ok {
			return val
		}
		return value.NewError(issue.UnknownVariable, issue.H{`name`: name})
	case *value.List:
		items := make([]value.Value, v.Len())
		for i, item := range v.Items {
			items[i] = pathAccess(item, name)
		}
		return value.NewList(items)
	default:
		if e, ok := value.AsError(operand); ok {
			return e
		}
		return value.NewError(issue.PathNotApplicable, issue.H{
			`name`: name, `actual`: value.TypeName(operand),
		})
	}
}
