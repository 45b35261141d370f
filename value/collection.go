package value

import "strings"

// List is an ordered, possibly heterogeneous sequence of Value. Unlike
// most of FEEL's operators, list literals never drop an erroring element —
// the list is built with the Error value in place so that `some`/`every`/
// `filter` can inspect elements individually.
type List struct {
	Items []Value
}

func NewList(items []Value) *List {
	if items == nil {
		items = []Value{}
	}
	return &List{Items: items}
}

func (*List) Kind() Kind { return KindList }

func (l *List) String() string {
	parts := make([]string, len(l.Items))
	for i, v := range l.Items {
		parts[i] = v.String()
	}
	return `[` + strings.Join(parts, `, `) + `]`
}

func (l *List) Len() int { return len(l.Items) }

func (l *List) Append(v Value) *List {
	items := make([]Value, len(l.Items)+1)
	copy(items, l.Items)
	items[len(l.Items)] = v
	return &List{Items: items}
}

// Function is FEEL's callable kind: a set of parameter names, a variadic
// flag, an implicit-input requirement, and an invocation closure.
type Function struct {
	Name                 string
	Parameters           []string
	Variadic             bool
	RequireInputVariable bool
	Invoke               func(args []Value) Value
}

func (Function) Kind() Kind { return KindFunction }
func (f Function) String() string {
	return `function(` + strings.Join(f.Parameters, `, `) + `)`
}

// Arity reports the declared parameter count, independent of variadic
// packing.
func (f Function) Arity() int { return len(f.Parameters) }
