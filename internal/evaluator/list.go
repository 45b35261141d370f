package evaluator

import (
	"github.com/lyraproj/feel-evaluator/ast"
	"github.com/lyraproj/feel-evaluator/context"
	"github.com/lyraproj/feel-evaluator/value"
)

// evalListLiteral builds a List in source order. Item errors stay in place
// rather than short-circuiting the whole literal, so that
// `some`/`every`/`filter` can inspect elements individually afterward.
func evalListLiteral(ex *ast.ListLiteral, ctx *context.Context) value.Value {
	items := make([]value.Value, len(ex.Items))
	for i, item := range ex.Items {
		items[i] = Eval(item, ctx)
	}
	return value.NewList(items)
}

// evalContextLiteral evaluates entries left-to-right, binding each into the
// Context before the next entry is evaluated, so `{a: 1, b: a + 2}` resolves
// `a` while computing `b`. A Function-valued entry is appended to that
// name's overload list, so a later entry can invoke it positionally, e.g.
// `{inc: function(x) x+1, y: inc(4)}`, and is also bound as a variable, so
// path access such as `{f: function(x) x+1}.f(4)` finds it.
func evalContextLiteral(ex *ast.ContextLiteral, ctx *context.Context) value.Value {
	built := context.New().WithLogger(ctx.Logger())
	for _, entry := range ex.Entries {
		v := Eval(entry.Value, context.Compose(ctx, built))
		if fn, ok := v.(value.Function); ok {
			built = built.BindFunction(entry.Key, fn)
		}
		built = built.Bind(entry.Key, v)
	}
	return built
}
