package evaluator

import (
	"github.com/lyraproj/feel-evaluator/ast"
	"github.com/lyraproj/feel-evaluator/context"
	"github.com/lyraproj/feel-evaluator/internal/issue"
	"github.com/lyraproj/feel-evaluator/internal/operators"
	"github.com/lyraproj/feel-evaluator/value"
)

// combinations expands Iterators into the Cartesian product of bound
// Contexts, one per combination, in row-major order: the first iterator
// varies slowest, the last varies fastest (`for i in [1,2], j in [3,4]`
// yields (1,3),(1,4),(2,3),(2,4)). Iterators are evaluated left-to-right,
// each against a Context already carrying its predecessors' bindings, so a
// later source expression can reference an earlier iterator's name.
func combinations(iterators []ast.Iterator, ctx *context.Context) ([]*context.Context, value.Value) {
	if len(iterators) == 0 {
		return []*context.Context{ctx}, nil
	}
	head, tail := iterators[0], iterators[1:]
	src := Eval(head.Source, ctx)
	if e, ok := value.AsError(src); ok {
		return nil, e
	}
	list, ok := src.(*value.List)
	if !ok {
		return nil, value.NewError(issue.NotAList, issue.H{`actual`: value.TypeName(src)})
	}
	var result []*context.Context
	for _, item := range list.Items {
		subs, errVal := combinations(tail, ctx.Bind(head.Name, item))
		if errVal != nil {
			return nil, errVal
		}
		result = append(result, subs...)
	}
	return result, nil
}

func evalSome(ex *ast.Some, ctx *context.Context) value.Value {
	combos, errVal := combinations(ex.Iterators, ctx)
	if errVal != nil {
		return errVal
	}
	results := make([]value.Value, len(combos))
	for i, c := range combos {
		results[i] = Eval(ex.Body, c)
	}
	return operators.AtLeastOne(results)
}

func evalEvery(ex *ast.Every, ctx *context.Context) value.Value {
	combos, errVal := combinations(ex.Iterators, ctx)
	if errVal != nil {
		return errVal
	}
	results := make([]value.Value, len(combos))
	for i, c := range combos {
		results[i] = Eval(ex.Body, c)
	}
	return operators.All(results)
}

// evalFor constructs a list of per-combination results, in enumeration
// order. Like a list literal, a combination whose body errors keeps that
// Error in place rather than failing the whole `for`.
func evalFor(ex *ast.For, ctx *context.Context) value.Value {
	combos, errVal := combinations(ex.Iterators, ctx)
	if errVal != nil {
		return errVal
	}
	items := make([]value.Value, len(combos))
	for i, c := range combos {
		items[i] = Eval(ex.Body, c)
	}
	return value.NewList(items)
}

// evalFilter evaluates the predicate once per item in a Context extended
// with `item -> value`; when the item is itself a Context, its entries are
// additionally overlaid so the predicate can reference them unqualified
//. Anything other than Boolean(true) excludes the
// item — including Null, Error, and any other non-boolean result.
func evalFilter(ex *ast.Filter, ctx *context.Context) value.Value {
	list := Eval(ex.List, ctx)
	if e, ok := value.AsError(list); ok {
		return e
	}
	l, ok := list.(*value.List)
	if !ok {
		return value.NewError(issue.NotAList, issue.H{`actual`: value.TypeName(list)})
	}
	var kept []value.Value
	for _, item := range l.Items {
		itemCtx := ctx.Bind(ex.ItemName, item)
		if ic, ok := item.(*context.Context); ok {
			itemCtx = context.Compose(itemCtx, ic)
		}
		if b, ok := Eval(ex.Predicate, itemCtx).(value.Boolean); ok && bool(b) {
			kept = append(kept, item)
		}
	}
	return value.NewList(kept)
}
