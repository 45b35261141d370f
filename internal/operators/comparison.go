package operators

import (
	"github.com/lyraproj/feel-evaluator/ast"
	"github.com/lyraproj/feel-evaluator/internal/issue"
	"github.com/lyraproj/feel-evaluator/value"
)

func cmpSymbol(op ast.ComparisonOp) string {
	switch op {
	case ast.CmpEqual:
		return `=`
	case ast.CmpLess:
		return `<`
	case ast.CmpLessOrEqual:
		return `<=`
	case ast.CmpGreater:
		return `>`
	case ast.CmpGreaterOrEqual:
		return `>=`
	case ast.CmpNotEqual:
		return `!=`
	default:
		return `?`
	}
}

// Compare implements the six binary comparisons: Boolean or
// Error, never Null — the hard-error policy, contrasted with
// arithmetic's withValOrNull suppression.
func Compare(op ast.ComparisonOp, a, b value.Value) value.Value {
	switch op {
	case ast.CmpEqual:
		return value.Boolean(value.Equal(a, b))
	case ast.CmpNotEqual:
		// ≠ is handled as negation of equality.
		return value.Boolean(!value.Equal(a, b))
	default:
		result, ok := orderedCompare(op, a, b)
		if !ok {
			return value.NewError(issue.ComparisonNotApplicable, issue.H{
				`operator`: cmpSymbol(op), `left`: value.TypeName(a), `right`: value.TypeName(b),
			})
		}
		return value.Boolean(result)
	}
}

func orderedCompare(op ast.ComparisonOp, a, b value.Value) (bool, bool) {
	c, ok := value.Compare(a, b)
	if !ok {
		return false, false
	}
	switch op {
	case ast.CmpLess:
		return c < 0, true
	case ast.CmpLessOrEqual:
		return c <= 0, true
	case ast.CmpGreater:
		return c > 0, true
	case ast.CmpGreaterOrEqual:
		return c >= 0, true
	default:
		return false, false
	}
}
