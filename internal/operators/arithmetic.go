// Package operators implements the per-type arithmetic, comparison, and
// unary-test rules: dispatch on the left operand's variant first, then
// validate the right.
package operators

import (
	"time"

	"github.com/lyraproj/feel-evaluator/ast"
	"github.com/lyraproj/feel-evaluator/internal/issue"
	"github.com/lyraproj/feel-evaluator/internal/logging"
	"github.com/lyraproj/feel-evaluator/value"
)

func opSymbol(op ast.ArithmeticOp) string {
	switch op {
	case ast.OpAdd:
		return `+`
	case ast.OpSub:
		return `-`
	case ast.OpMul:
		return `*`
	case ast.OpDiv:
		return `/`
	case ast.OpPow:
		return `**`
	default:
		return `?`
	}
}

func mismatch(op ast.ArithmeticOp, a, b value.Value) (value.Value, *logging.Warning) {
	w := logging.NewWarning(issue.WarnArithmeticTypeMismatch, issue.H{
		`operator`: opSymbol(op), `left`: value.TypeName(a), `right`: value.TypeName(b),
	})
	return value.TheNull, &w
}

// Arithmetic implements the binary-operator dispatch table. It never
// panics and never returns value.Err except for division by zero, which
// yields an Error rather than Null. Every other unlisted combination
// yields Null plus a Warning — the `withValOrNull` suppression policy.
func Arithmetic(op ast.ArithmeticOp, a, b value.Value) (value.Value, *logging.Warning) {
	switch av := a.(type) {
	case value.Number:
		return numberArithmetic(op, av, b)
	case value.String:
		if bv, ok := b.(value.String); ok && op == ast.OpAdd {
			return av + bv, nil
		}
		return mismatch(op, a, b)
	case value.LocalTime:
		return localTimeArithmetic(op, av, b)
	case value.Time:
		return timeArithmetic(op, av, b)
	case value.LocalDateTime:
		return localDateTimeArithmetic(op, av, b)
	case value.DateTime:
		return dateTimeArithmetic(op, av, b)
	case value.YearMonthDuration:
		return yearMonthArithmetic(op, av, b)
	case value.DayTimeDuration:
		return dayTimeArithmetic(op, av, b)
	default:
		return mismatch(op, a, b)
	}
}

func numberArithmetic(op ast.ArithmeticOp, a value.Number, b value.Value) (value.Value, *logging.Warning) {
	switch bv := b.(type) {
	case value.Number:
		switch op {
		case ast.OpAdd:
			return a.Add(bv), nil
		case ast.OpSub:
			return a.Sub(bv), nil
		case ast.OpMul:
			return a.Mul(bv), nil
		case ast.OpDiv:
			if bv.IsZero() {
				return value.NewError(issue.DivisionByZero, nil), nil
			}
			return a.Div(bv), nil
		case ast.OpPow:
			return numberPow(a, bv), nil
		}
	case value.YearMonthDuration:
		if op == ast.OpMul {
			return scaleYearMonth(bv, a), nil
		}
	case value.DayTimeDuration:
		if op == ast.OpMul {
			return scaleDayTime(bv, a), nil
		}
	}
	return mismatch(op, a, b)
}

func numberPow(a, b value.Number) value.Value {
	exp := b.Int64()
	neg := exp < 0
	if neg {
		exp = -exp
	}
	result := value.NewNumberFromInt(1)
	for i := int64(0); i < exp; i++ {
		result = result.Mul(a)
	}
	if neg {
		one := value.NewNumberFromInt(1)
		if result.IsZero() {
			return value.NewError(issue.DivisionByZero, nil)
		}
		return one.Div(result)
	}
	return result
}

func scaleYearMonth(d value.YearMonthDuration, n value.Number) value.YearMonthDuration {
	return value.YearMonthDuration{Months: int64(float64(d.Months) * n.Float())}
}

func scaleDayTime(d value.DayTimeDuration, n value.Number) value.DayTimeDuration {
	return value.DayTimeDuration{Duration: time.Duration(float64(d.Duration) * n.Float())}
}

func localTimeArithmetic(op ast.ArithmeticOp, a value.LocalTime, b value.Value) (value.Value, *logging.Warning) {
	switch bv := b.(type) {
	case value.DayTimeDuration:
		switch op {
		case ast.OpAdd:
			return value.LocalTime{Time: a.Time.Add(bv.Duration)}, nil
		case ast.OpSub:
			return value.LocalTime{Time: a.Time.Add(-bv.Duration)}, nil
		}
	case value.LocalTime:
		if op == ast.OpSub {
			return value.DayTimeDuration{Duration: a.Time.Sub(bv.Time)}, nil
		}
	}
	return mismatch(op, a, b)
}

func timeArithmetic(op ast.ArithmeticOp, a value.Time, b value.Value) (value.Value, *logging.Warning) {
	switch bv := b.(type) {
	case value.DayTimeDuration:
		switch op {
		case ast.OpAdd:
			return value.Time{Time: a.Time.Add(bv.Duration)}, nil
		case ast.OpSub:
			return value.Time{Time: a.Time.Add(-bv.Duration)}, nil
		}
	case value.Time:
		if op == ast.OpSub {
			return value.DayTimeDuration{Duration: a.Time.Sub(bv.Time)}, nil
		}
	}
	return mismatch(op, a, b)
}

func localDateTimeArithmetic(op ast.ArithmeticOp, a value.LocalDateTime, b value.Value) (value.Value, *logging.Warning) {
	switch bv := b.(type) {
	case value.YearMonthDuration:
		if op == ast.OpAdd || op == ast.OpSub {
			return value.LocalDateTime{Time: addMonths(a.Time, signedMonths(op, bv))}, nil
		}
	case value.DayTimeDuration:
		switch op {
		case ast.OpAdd:
			return value.LocalDateTime{Time: a.Time.Add(bv.Duration)}, nil
		case ast.OpSub:
			return value.LocalDateTime{Time: a.Time.Add(-bv.Duration)}, nil
		}
	case value.LocalDateTime:
		if op == ast.OpSub {
			return value.DayTimeDuration{Duration: a.Time.Sub(bv.Time)}, nil
		}
	}
	return mismatch(op, a, b)
}

func dateTimeArithmetic(op ast.ArithmeticOp, a value.DateTime, b value.Value) (value.Value, *logging.Warning) {
	switch bv := b.(type) {
	case value.YearMonthDuration:
		if op == ast.OpAdd || op == ast.OpSub {
			return value.DateTime{Time: addMonths(a.Time, signedMonths(op, bv))}, nil
		}
	case value.DayTimeDuration:
		switch op {
		case ast.OpAdd:
			return value.DateTime{Time: a.Time.Add(bv.Duration)}, nil
		case ast.OpSub:
			return value.DateTime{Time: a.Time.Add(-bv.Duration)}, nil
		}
	case value.DateTime:
		if op == ast.OpSub {
			return value.DayTimeDuration{Duration: a.Time.Sub(bv.Time)}, nil
		}
	}
	return mismatch(op, a, b)
}

func signedMonths(op ast.ArithmeticOp, d value.YearMonthDuration) int {
	if op == ast.OpSub {
		return int(-d.Months)
	}
	return int(d.Months)
}

// addMonths relies on time.Time's own carry rules (e.g. Jan 31 + 1 month
// lands on Mar 3 under Go's normalization); this documents the platform
// behavior rather than altering it.
func addMonths(t time.Time, months int) time.Time {
	return t.AddDate(0, months, 0)
}

func yearMonthArithmetic(op ast.ArithmeticOp, a value.YearMonthDuration, b value.Value) (value.Value, *logging.Warning) {
	switch bv := b.(type) {
	case value.YearMonthDuration:
		switch op {
		case ast.OpAdd:
			return value.YearMonthDuration{Months: a.Months + bv.Months}, nil
		case ast.OpSub:
			return value.YearMonthDuration{Months: a.Months - bv.Months}, nil
		}
	case value.Number:
		switch op {
		case ast.OpMul:
			return scaleYearMonth(a, bv), nil
		case ast.OpDiv:
			if bv.IsZero() {
				return value.NewError(issue.DivisionByZero, nil), nil
			}
			// months-integer-truncate on division.
			return value.YearMonthDuration{Months: int64(float64(a.Months) / bv.Float())}, nil
		}
	case value.LocalDateTime:
		if op == ast.OpAdd {
			return value.LocalDateTime{Time: addMonths(bv.Time, int(a.Months))}, nil
		}
	case value.DateTime:
		if op == ast.OpAdd {
			return value.DateTime{Time: addMonths(bv.Time, int(a.Months))}, nil
		}
	}
	return mismatch(op, a, b)
}

func dayTimeArithmetic(op ast.ArithmeticOp, a value.DayTimeDuration, b value.Value) (value.Value, *logging.Warning) {
	switch bv := b.(type) {
	case value.DayTimeDuration:
		switch op {
		case ast.OpAdd:
			return value.DayTimeDuration{Duration: a.Duration + bv.Duration}, nil
		case ast.OpSub:
			return value.DayTimeDuration{Duration: a.Duration - bv.Duration}, nil
		}
	case value.Number:
		switch op {
		case ast.OpMul:
			return scaleDayTime(a, bv), nil
		case ast.OpDiv:
			if bv.IsZero() {
				return value.NewError(issue.DivisionByZero, nil), nil
			}
			// millis-integer-truncate on division.
			millis := int64(float64(a.Duration/time.Millisecond) / bv.Float())
			return value.DayTimeDuration{Duration: time.Duration(millis) * time.Millisecond}, nil
		}
	case value.Time:
		if op == ast.OpAdd {
			return value.Time{Time: bv.Time.Add(a.Duration)}, nil
		}
	case value.LocalTime:
		if op == ast.OpAdd {
			return value.LocalTime{Time: bv.Time.Add(a.Duration)}, nil
		}
	case value.DateTime:
		if op == ast.OpAdd {
			return value.DateTime{Time: bv.Time.Add(a.Duration)}, nil
		}
	case value.LocalDateTime:
		if op == ast.OpAdd {
			return value.LocalDateTime{Time: bv.Time.Add(a.Duration)}, nil
		}
	}
	return mismatch(op, a, b)
}

// Negate implements unary negation, which
// shares the withValOrNull policy with binary arithmetic.
func Negate(v value.Value) (value.Value, *logging.Warning) {
	switch n := v.(type) {
	case value.Number:
		return n.Neg(), nil
	case value.YearMonthDuration:
		return value.YearMonthDuration{Months: -n.Months}, nil
	case value.DayTimeDuration:
		return value.DayTimeDuration{Duration: -n.Duration}, nil
	default:
		w := logging.NewWarning(issue.WarnArithmeticTypeMismatch, issue.H{
			`operator`: `-`, `left`: value.TypeName(v), `right`: value.TypeName(v),
		})
		return value.TheNull, &w
	}
}
