package evaluator

import (
	"github.com/lyraproj/feel-evaluator/ast"
	"github.com/lyraproj/feel-evaluator/context"
	"github.com/lyraproj/feel-evaluator/internal/invoke"
	"github.com/lyraproj/feel-evaluator/internal/issue"
	"github.com/lyraproj/feel-evaluator/value"
)

// evalFunctionDefinition captures Parameters and Body as a closure over the
// defining Context. Body is evaluated uniformly by Eval — when
// Body is a HostFunctionInvocation marker, dispatch to evalHostFunctionInvocation
// takes over automatically; there is no special case here.
func evalFunctionDefinition(ex *ast.FunctionDefinition, ctx *context.Context) value.Value {
	closureCtx := ctx
	return value.Function{
		Parameters:           ex.Parameters,
		Variadic:             ex.Variadic,
		RequireInputVariable: ex.RequireInputVariable,
		Invoke: func(args []value.Value) value.Value {
			callCtx := closureCtx
			for i, p := range ex.Parameters {
				if i < len(args) {
					callCtx = callCtx.Bind(p, args[i])
				} else {
					callCtx = callCtx.Bind(p, value.TheNull)
				}
			}
			return Eval(ex.Body, callCtx)
		},
	}
}

func evalArgs(exprs []ast.Expression, ctx *context.Context) ([]value.Value, value.Value) {
	args := make([]value.Value, len(exprs))
	for i, e := range exprs {
		v := Eval(e, ctx)
		if err, ok := value.AsError(v); ok {
			return nil, err
		}
		args[i] = v
	}
	return args, nil
}

func evalNamedArgs(named []ast.NamedArg, ctx *context.Context) (map[string]value.Value, value.Value) {
	result := make(map[string]value.Value, len(named))
	for _, n := range named {
		v := Eval(n.Value, ctx)
		if err, ok := value.AsError(v); ok {
			return nil, err
		}
		result[n.Name] = v
	}
	return result, nil
}

func callArgs(exprs []ast.Expression, named []ast.NamedArg, ctx *context.Context) (invoke.Args, value.Value) {
	if named != nil {
		m, errVal := evalNamedArgs(named, ctx)
		if errVal != nil {
			return invoke.Args{}, errVal
		}
		return invoke.Args{Named: m}, nil
	}
	positional, errVal := evalArgs(exprs, ctx)
	if errVal != nil {
		return invoke.Args{}, errVal
	}
	return invoke.Args{Positional: positional}, nil
}

// evalPositionalInvocation resolves Name against the Context's function
// overload set, then calls it.
func evalPositionalInvocation(ex *ast.PositionalInvocation, ctx *context.Context) value.Value {
	args, errVal := callArgs(ex.Args, ex.NamedArgs, ctx)
	if errVal != nil {
		return errVal
	}
	fn, errVal := invoke.Resolve(ctx, ex.Name, args)
	if errVal != nil {
		return errVal
	}
	return invoke.Call(ctx, fn, args)
}

// evalQualifiedInvocation evaluates Target, path-accesses Name off it to
// obtain a single Function value (no overload resolution — the access
// already names exactly one function), and calls it directly, e.g.
// `{f: function(x) x+1}.f(4)`.
func evalQualifiedInvocation(ex *ast.QualifiedInvocation, ctx *context.Context) value.Value {
	target := Eval(ex.Target, ctx)
	if e, ok := value.AsError(target); ok {
		return e
	}
	candidate := pathAccess(target, ex.Name)
	fn, ok := candidate.(value.Function)
	if !ok {
		if e, ok := value.AsError(candidate); ok {
			return e
		}
		return value.NewError(issue.NotAFunction, issue.H{`name`: ex.Name, `actual`: value.TypeName(candidate)})
	}
	args, errVal := callArgs(ex.Args, ex.NamedArgs, ctx)
	if errVal != nil {
		return errVal
	}
	return invoke.Call(ctx, fn, args)
}

// evalHostFunctionInvocation resolves and invokes a host method through the
// Context's configured HostBridge.
func evalHostFunctionInvocation(ex *ast.HostFunctionInvocation, ctx *context.Context) value.Value {
	args, errVal := evalArgs(ex.Args, ctx)
	if errVal != nil {
		return errVal
	}
	bridge := ctx.Bridge()
	if bridge == nil {
		return value.NewError(issue.HostClassNotFound, issue.H{`class`: ex.ClassName})
	}
	return invoke.Host(bridge, ex.ClassName, ex.MethodName, ex.ArgTypeNames, args)
}
