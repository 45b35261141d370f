package invoke

import (
	"github.com/lyraproj/feel-evaluator/context"
	"github.com/lyraproj/feel-evaluator/internal/issue"
	"github.com/lyraproj/feel-evaluator/value"
)

// Host performs the five-step reflective invocation (resolve class,
// resolve method, unpack arguments, invoke, pack the result) in terms of
// the context.HostBridge contract a Context carries — the only impure
// part of the evaluator, isolated here so everything else stays pure.
func Host(bridge context.HostBridge, className, methodName string, argTypeNames []string, args []value.Value) value.Value {
	class, ok := bridge.ResolveClass(className)
	if !ok {
		return value.NewError(issue.HostClassNotFound, issue.H{`class`: className})
	}
	method, ok := bridge.ResolveMethod(class, methodName, argTypeNames)
	if !ok {
		return value.NewError(issue.HostMethodNotFound, issue.H{`method`: methodName, `class`: className})
	}
	mapper := bridge.Mapper()
	native := make([]interface{}, len(args))
	for i, a := range args {
		native[i] = mapper.UnpackVal(a)
	}
	result, err := bridge.Invoke(method, native)
	if err != nil {
		return value.NewError(issue.HostInvocationFailed, issue.H{
			`method`: methodName, `class`: className, `detail`: err.Error(),
		})
	}
	return mapper.ToVal(result)
}
