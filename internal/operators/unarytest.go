package operators

import (
	"github.com/lyraproj/feel-evaluator/ast"
	"github.com/lyraproj/feel-evaluator/internal/issue"
	"github.com/lyraproj/feel-evaluator/value"
)

// isOrderedKind reports whether v's kind is accepted by the four inequality
// unary tests.
func isOrderedKind(v value.Value) bool {
	switch v.Kind() {
	case value.KindNumber, value.KindDate, value.KindLocalTime, value.KindTime,
		value.KindLocalDateTime, value.KindDateTime,
		value.KindYearMonthDuration, value.KindDayTimeDuration:
		return true
	default:
		return false
	}
}

// UnaryTest implements the five input-relative comparators.
// The input's type determines dispatch; the operand must match, or the
// result is Error. Equality additionally accepts Boolean, String, and
// Null — and proceeds even when either side is Null.
func UnaryTest(op ast.UnaryTestOp, input, operand value.Value) value.Value {
	if op == ast.UnaryTestEqual {
		if !value.IsNull(input) && !value.IsNull(operand) && input.Kind() != operand.Kind() {
			return mismatchError(op, input, operand)
		}
		return value.Boolean(value.Equal(input, operand))
	}

	if !isOrderedKind(input) || !isOrderedKind(operand) {
		return mismatchError(op, input, operand)
	}
	c, ok := value.Compare(input, operand)
	if !ok {
		return mismatchError(op, input, operand)
	}
	switch op {
	case ast.UnaryTestLess:
		return value.Boolean(c < 0)
	case ast.UnaryTestLessOrEqual:
		return value.Boolean(c <= 0)
	case ast.UnaryTestGreater:
		return value.Boolean(c > 0)
	case ast.UnaryTestGreaterOrEqual:
		return value.Boolean(c >= 0)
	default:
		return mismatchError(op, input, operand)
	}
}

func mismatchError(op ast.UnaryTestOp, input, operand value.Value) value.Value {
	return value.NewError(issue.UnaryTestNotApplicable, issue.H{
		`input`: value.TypeName(input), `operand`: value.TypeName(operand),
	})
}

// Interval implements the sixth unary-test kind: membership is
// `(leftCmp inStart) AND (rightCmp inEnd)` where inStart is `>` for open
// and `>=` for closed, symmetric on the right.
func Interval(input, start, end value.Value, startClosed, endClosed bool) value.Value {
	if !isOrderedKind(input) {
		return mismatchError(ast.UnaryTestGreaterOrEqual, input, start)
	}
	lc, ok := value.Compare(input, start)
	if !ok {
		return mismatchError(ast.UnaryTestGreaterOrEqual, input, start)
	}
	rc, ok := value.Compare(input, end)
	if !ok {
		return mismatchError(ast.UnaryTestLessOrEqual, input, end)
	}
	left := lc > 0
	if startClosed {
		left = lc >= 0
	}
	right := rc < 0
	if endClosed {
		right = rc <= 0
	}
	return value.Boolean(left && right)
}
