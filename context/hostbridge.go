package context

import "github.com/lyraproj/feel-evaluator/value"

// ValueMapper translates between FEEL values and a host platform's
// native representations.
type ValueMapper interface {
	ToVal(native interface{}) value.Value
	UnpackVal(v value.Value) interface{}
}

// HostBridge is the abstract reflective-invocation contract, carried as Context configuration rather than a Value so
// that host-function invocation stays reachable from any nested Context
// without threading an extra parameter through Eval.
type HostBridge interface {
	ResolveClass(className string) (interface{}, bool)
	ResolveMethod(class interface{}, methodName string, argTypeNames []string) (interface{}, bool)
	Invoke(method interface{}, args []interface{}) (interface{}, error)
	Mapper() ValueMapper
}

// WithHostBridge returns a derived Context that resolves host-function
// invocations through bridge.
func (c *Context) WithHostBridge(bridge HostBridge) *Context {
	clone := c.shallowCopy()
	clone.bridge = bridge
	return clone
}

// Bridge returns the HostBridge in effect for this Context, or nil if none
// was configured.
func (c *Context) Bridge() HostBridge {
	return c.bridge
}
