package operators

import "github.com/lyraproj/feel-evaluator/value"

// AtLeastOne implements SQL-style three-valued disjunction over an
// already-evaluated operand list:
// true if any operand is true, false if all are false, Null if none are
// true but at least one is non-boolean. Deliberately non-short-circuiting
// — every operand has already been evaluated by the caller before this
// runs, so a later true still rescues the result.
func AtLeastOne(operands []value.Value) value.Value {
	sawNonBoolean := false
	for _, v := range operands {
		b, ok := v.(value.Boolean)
		if !ok {
			sawNonBoolean = true
			continue
		}
		if bool(b) {
			return value.Boolean(true)
		}
	}
	if sawNonBoolean {
		return value.TheNull
	}
	return value.Boolean(false)
}

// All is the dual of AtLeastOne: false if any operand is false, true if
// all are true, Null if none are false but at least one is non-boolean.
func All(operands []value.Value) value.Value {
	sawNonBoolean := false
	for _, v := range operands {
		b, ok := v.(value.Boolean)
		if !ok {
			sawNonBoolean = true
			continue
		}
		if !bool(b) {
			return value.Boolean(false)
		}
	}
	if sawNonBoolean {
		return value.TheNull
	}
	return value.Boolean(true)
}
