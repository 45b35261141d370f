// Package invoke implements function overload resolution and call
// construction: resolving a name to one of several signatures, then
// binding parameters before the body is evaluated.
package invoke

import (
	"github.com/lyraproj/feel-evaluator/context"
	"github.com/lyraproj/feel-evaluator/internal/issue"
	"github.com/lyraproj/feel-evaluator/value"
)

// Args is a call's actual arguments: either positional (Named is nil) or a
// named call (Named holds the supplied name/value pairs; Positional is
// unused).
type Args struct {
	Positional []value.Value
	Named      map[string]value.Value
}

// Resolve picks one overload out of name's overload set in ctx. Positional
// calls match by (name, arity) — variadic functions match any arity of at
// least their declared parameter count minus one, since the variadic slot
// can absorb zero or more trailing arguments. Named calls match by
// (name, exact set of parameter names).
func Resolve(ctx *context.Context, name string, args Args) (value.Function, value.Value) {
	overloads := ctx.Functions(name)
	if args.Named != nil {
		for _, fn := range overloads {
			if namedSetMatches(fn, args.Named) {
				return fn, nil
			}
		}
		return value.Function{}, notFound(name, len(args.Named))
	}
	for _, fn := range overloads {
		if arityMatches(fn, len(args.Positional)) {
			return fn, nil
		}
	}
	return value.Function{}, notFound(name, len(args.Positional))
}

func arityMatches(fn value.Function, n int) bool {
	if fn.Variadic {
		return n >= fn.Arity()-1
	}
	return n == fn.Arity()
}

func namedSetMatches(fn value.Function, named map[string]value.Value) bool {
	if len(fn.Parameters) != len(named) {
		return false
	}
	for _, p := range fn.Parameters {
		if _, ok := named[p]; !ok {
			return false
		}
	}
	return true
}

func notFound(name string, count int) value.Value {
	return value.NewError(issue.NoFunctionFound, issue.H{`name`: name, `count`: count})
}

// Call constructs the actual parameter list and invokes fn.
func Call(ctx *context.Context, fn value.Function, args Args) value.Value {
	var actuals []value.Value
	if args.Named != nil {
		actuals = bindNamed(fn, args.Named)
	} else {
		actuals = packPositional(fn, args.Positional)
	}
	if fn.RequireInputVariable {
		actuals = append([]value.Value{ctx.Input()}, actuals...)
	}
	return fn.Invoke(actuals)
}

// bindNamed binds Null for every declared parameter missing from the
// supplied set — "no error for missing parameters".
func bindNamed(fn value.Function, named map[string]value.Value) []value.Value {
	actuals := make([]value.Value, len(fn.Parameters))
	for i, p := range fn.Parameters {
		if v, ok := named[p]; ok {
			actuals[i] = v
		} else {
			actuals[i] = value.TheNull
		}
	}
	return actuals
}

// packPositional implements the fixed-then-variadic split: the first k-1
// arguments bind as usual, and the rest collect into a List bound to the
// last parameter — unless k == 1 and the single remaining argument is
// itself already a List, in which case it passes through unwrapped.
func packPositional(fn value.Function, positional []value.Value) []value.Value {
	if !fn.Variadic {
		return positional
	}
	k := fn.Arity()
	fixedCount := k - 1
	if fixedCount < 0 {
		fixedCount = 0
	}
	actuals := make([]value.Value, 0, k)
	for i := 0; i < fixedCount && i < len(positional); i++ {
		actuals = append(actuals, positional[i])
	}
	for len(actuals) < fixedCount {
		actuals = append(actuals, value.TheNull)
	}
	rest := positional[min(fixedCount, len(positional)):]
	if k == 1 && len(rest) == 1 {
		if l, ok := rest[0].(*value.List); ok {
			return append(actuals, l)
		}
	}
	return append(actuals, value.NewList(rest))
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
