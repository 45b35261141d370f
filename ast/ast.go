// Package ast defines the immutable expression tree the evaluator
// dispatches on. Producing this tree — lexing and parsing FEEL
// source — is explicitly out of scope; ast is a pure data contract with no
// parsing logic of its own. Callers (or a parser built against this
// package) construct trees directly.
package ast

import "github.com/lyraproj/feel-evaluator/value"

// Expression is the sealed node interface. Every node kind is a concrete
// struct in this package; the unexported marker keeps the set closed to
// this package, giving exhaustive pattern-matching over tagged variants
// (compiler-enforced completeness) rather than virtual dispatch.
type Expression interface {
	exprNode()
}

type node struct{}

func (node) exprNode() {}

// --- Literals: one node per Value variant ---

type LiteralNumber struct {
	node
	Value value.Number
}

type LiteralString struct {
	node
	Value string
}

type LiteralBoolean struct {
	node
	Value bool
}

type LiteralDate struct {
	node
	Value value.Date
}

type LiteralLocalTime struct {
	node
	Value value.LocalTime
}

type LiteralTime struct {
	node
	Value value.Time
}

type LiteralLocalDateTime struct {
	node
	Value value.LocalDateTime
}

type LiteralDateTime struct {
	node
	Value value.DateTime
}

type LiteralYearMonthDuration struct {
	node
	Value value.YearMonthDuration
}

type LiteralDayTimeDuration struct {
	node
	Value value.DayTimeDuration
}

type LiteralNull struct{ node }

// --- Unary tests ---

// UnaryTest is one of the five input-relative comparator kinds.
type UnaryTest struct {
	node
	Op      UnaryTestOp
	Operand Expression
}

type UnaryTestOp int

const (
	UnaryTestEqual UnaryTestOp = iota
	UnaryTestLess
	UnaryTestLessOrEqual
	UnaryTestGreater
	UnaryTestGreaterOrEqual
)

// IntervalTest is the sixth unary-test node: interval membership with
// per-endpoint open/closed boundary kind.
type IntervalTest struct {
	node
	Start, End               Expression
	StartClosed, EndClosed   bool
}

// --- Arithmetic ---

type ArithmeticOp int

const (
	OpAdd ArithmeticOp = iota
	OpSub
	OpMul
	OpDiv
	OpPow
)

type Arithmetic struct {
	node
	Op       ArithmeticOp
	Lhs, Rhs Expression
}

type Negate struct {
	node
	Operand Expression
}

// --- Comparisons ---

type ComparisonOp int

const (
	CmpEqual ComparisonOp = iota
	CmpNotEqual
	CmpLess
	CmpLessOrEqual
	CmpGreater
	CmpGreaterOrEqual
)

type Comparison struct {
	node
	Op       ComparisonOp
	Lhs, Rhs Expression
}

// --- Combinators ---

// AtLeastOne is the n-ary three-valued existential.
type AtLeastOne struct {
	node
	Operands []Expression
}

// All is the n-ary three-valued universal, dual of AtLeastOne.
type All struct {
	node
	Operands []Expression
}

type Not struct {
	node
	Operand Expression
}

type Disjunction struct {
	node
	Lhs, Rhs Expression
}

type Conjunction struct {
	node
	Lhs, Rhs Expression
}

// --- Control ---

type If struct {
	node
	Condition, Then, Else Expression
}

// In binds Probe as the implicit input while evaluating Test.
type In struct {
	node
	Probe, Test Expression
}

type InstanceOf struct {
	node
	Operand  Expression
	TypeName string
}

// --- Naming ---

// VariableReference reads a single name out of the Context's variables.
type VariableReference struct {
	node
	Name string
}

// Path applies single-name access to the evaluated Operand: Context
// lookup, List map, or Error for anything else.
type Path struct {
	node
	Operand Expression
	Name    string
}

// --- List ---

// Iterator is one `name in source` clause shared by Some/Every/For.
type Iterator struct {
	Name   string
	Source Expression
}

type Some struct {
	node
	Iterators []Iterator
	Body      Expression
}

type Every struct {
	node
	Iterators []Iterator
	Body      Expression
}

type For struct {
	node
	Iterators []Iterator
	Body      Expression
}

type Filter struct {
	node
	List      Expression
	ItemName  string
	Predicate Expression
}

type ListLiteral struct {
	node
	Items []Expression
}

type ContextEntry struct {
	Key   string
	Value Expression
}

type ContextLiteral struct {
	node
	Entries []ContextEntry
}

// --- Function definition & invocation ---

type FunctionDefinition struct {
	node
	Parameters           []string
	Variadic             bool
	RequireInputVariable bool
	Body                 Expression
}

// NamedArg is one `name: expr` actual argument in a named call.
type NamedArg struct {
	Name  string
	Value Expression
}

// PositionalInvocation calls a function resolved by name out of the
// Context's function map; positional calls match by (name, arity),
// named calls by (name, exact set of parameter names).
type PositionalInvocation struct {
	node
	Name      string
	Args      []Expression
	NamedArgs []NamedArg // non-nil for a named call
}

// QualifiedInvocation calls a function value produced by evaluating
// Target (e.g. `{f: function(x) x+1}.f(4)`).
type QualifiedInvocation struct {
	node
	Target    Expression
	Name      string
	Args      []Expression
	NamedArgs []NamedArg
}

// HostFunctionInvocation is the reflective-invocation marker: resolving a
// host class/method by name and invoking it via a configured ValueMapper,
// entirely outside the ordinary Function/Context resolution path.
type HostFunctionInvocation struct {
	node
	ClassName    string
	MethodName   string
	ArgTypeNames []string
	Args         []Expression
}
