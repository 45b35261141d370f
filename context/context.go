// Package context implements FEEL's lexical environment: a composable
// mapping of names to values and to function overload sets.
//
// Lookups check the local frame first and fall through to a parent frame
// on miss — a right-biased overlay `A + B`, where the parent is `A` and
// the local frame is `B`. No Context is ever mutated after construction;
// Bind/BindFunction/Compose all return a new, independent Context.
package context

import (
	"github.com/lyraproj/feel-evaluator/internal/logging"
	"github.com/lyraproj/feel-evaluator/value"
)

// defaultInputVariableName is the implicit-input key used by unary tests
// unless overridden by an `inputVariableName` binding.
const defaultInputVariableName = `cellInput`

const inputVariableNameKey = `inputVariableName`

// Context is an immutable overlay frame. It satisfies value.Value so that
// a context literal can itself be stored as a Value.
type Context struct {
	parent    *Context
	variables map[string]value.Value
	functions map[string][]value.Function
	logger    logging.Logger
	bridge    HostBridge
}

// New creates an empty root Context. Callers assemble the real root by
// chaining Bind/BindFunction calls, or by composing with a Context built
// elsewhere.
func New() *Context {
	return &Context{logger: logging.Nop}
}

// WithLogger returns a derived Context that routes warnings to logger.
func (c *Context) WithLogger(logger logging.Logger) *Context {
	clone := c.shallowCopy()
	clone.logger = logger
	return clone
}

// Logger returns the warning sink in effect for this Context.
func (c *Context) Logger() logging.Logger {
	if c.logger != nil {
		return c.logger
	}
	return logging.Nop
}

func (c *Context) shallowCopy() *Context {
	clone := &Context{parent: c.parent, logger: c.logger, bridge: c.bridge}
	clone.variables = c.variables
	clone.functions = c.functions
	return clone
}

// Bind returns a new Context with name bound to v in its local frame.
// Later bindings of the same name in the same frame shadow earlier ones;
// bindings in composed frames never mutate an ancestor.
func (c *Context) Bind(name string, v value.Value) *Context {
	clone := c.shallowCopy()
	vars := make(map[string]value.Value, len(c.variables)+1)
	for k, val := range c.variables {
		vars[k] = val
	}
	vars[name] = v
	clone.variables = vars
	return clone
}

// BindFunction appends fn to name's overload set in a new Context's local
// frame.
func (c *Context) BindFunction(name string, fn value.Function) *Context {
	clone := c.shallowCopy()
	fns := make(map[string][]value.Function, len(c.functions)+1)
	for k, v := range c.functions {
		fns[k] = v
	}
	existing := fns[name]
	next := make([]value.Function, len(existing)+1)
	copy(next, existing)
	next[len(existing)] = fn
	fns[name] = next
	clone.functions = fns
	return clone
}

// Get resolves a variable name, searching the local frame then each
// ancestor in turn.
func (c *Context) Get(name string) (value.Value, bool) {
	for f := c; f != nil; f = f.parent {
		if v, ok := f.variables[name]; ok {
			return v, true
		}
	}
	return nil, false
}

// Functions returns the overload set for name, searching the local frame
// then each ancestor. A name bound locally shadows the entire ancestor
// overload set for that name (it does not merge with it), matching how
// Bind shadows a variable of the same name.
func (c *Context) Functions(name string) []value.Function {
	for f := c; f != nil; f = f.parent {
		if fns, ok := f.functions[name]; ok {
			return fns
		}
	}
	return nil
}

// Compose returns a new Context resolving names first in b, then in a —
// the right-biased overlay `a + b`.
func Compose(a, b *Context) *Context {
	if a == nil {
		return b
	}
	if b == nil {
		return a
	}
	clone := b.shallowCopy()
	clone.parent = Compose(a, b.parent)
	if b.logger == nil || b.logger == logging.Nop {
		clone.logger = a.Logger()
	}
	if clone.bridge == nil {
		clone.bridge = a.bridge
	}
	return clone
}

// InputVariableName returns the configured implicit-input key, defaulting
// to "cellInput".
func (c *Context) InputVariableName() string {
	if v, ok := c.Get(inputVariableNameKey); ok {
		if s, ok := v.(value.String); ok {
			return string(s)
		}
	}
	return defaultInputVariableName
}

// WithInput binds the implicit input value under the configured input
// variable name, used by `in` expressions and unary-test evaluation.
func (c *Context) WithInput(v value.Value) *Context {
	return c.Bind(c.InputVariableName(), v)
}

// Input returns the value currently bound to the implicit input key, or
// Null if none is bound.
func (c *Context) Input() value.Value {
	if v, ok := c.Get(c.InputVariableName()); ok {
		return v
	}
	return value.TheNull
}

func (*Context) Kind() value.Kind { return value.KindContext }

func (c *Context) String() string { return `context` }

// Entries returns the local frame's variable bindings, used when folding a
// Context into a List item or iterating its keys.
func (c *Context) Entries() map[string]value.Value {
	return c.variables
}
