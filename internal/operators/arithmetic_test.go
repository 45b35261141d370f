package operators_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/lyraproj/feel-evaluator/ast"
	"github.com/lyraproj/feel-evaluator/internal/operators"
	"github.com/lyraproj/feel-evaluator/value"
)

func TestArithmetic_NumberAdd(t *testing.T) {
	result, warn := operators.Arithmetic(ast.OpAdd, value.NewNumberFromInt(2), value.NewNumberFromInt(3))
	assert.Nil(t, warn)
	assert.Equal(t, `5`, result.String())
}

func TestArithmetic_DivisionByZero_IsError(t *testing.T) {
	result, warn := operators.Arithmetic(ast.OpDiv, value.NewNumberFromInt(1), value.NewNumberFromInt(0))
	assert.Nil(t, warn)
	_, ok := value.AsError(result)
	assert.True(t, ok, `division by zero must be Error, not Null`)
}

// TestArithmetic_TypeMismatch_IsNullWithWarning asserts the withValOrNull
// suppression policy, distinct from comparison's hard-error policy.
func TestArithmetic_TypeMismatch_IsNullWithWarning(t *testing.T) {
	result, warn := operators.Arithmetic(ast.OpAdd, value.NewNumberFromInt(1), value.String(`x`))
	assert.True(t, value.IsNull(result))
	assert.NotNil(t, warn)
}

func TestArithmetic_StringConcat(t *testing.T) {
	result, warn := operators.Arithmetic(ast.OpAdd, value.String(`foo`), value.String(`bar`))
	assert.Nil(t, warn)
	assert.Equal(t, `foobar`, result.String())
}

func TestNegate_Number(t *testing.T) {
	result, warn := operators.Negate(value.NewNumberFromInt(5))
	assert.Nil(t, warn)
	assert.Equal(t, `-5`, result.String())
}

func TestNegate_NonNumeric_IsNullWithWarning(t *testing.T) {
	result, warn := operators.Negate(value.String(`x`))
	assert.True(t, value.IsNull(result))
	assert.NotNil(t, warn)
}

func TestArithmetic_DateTimeSubtraction_YieldsDayTimeDuration(t *testing.T) {
	dt := value.DateTime{}
	result, warn := operators.Arithmetic(ast.OpSub, dt, dt)
	assert.Nil(t, warn)
	dur, ok := result.(value.DayTimeDuration)
	assert.True(t, ok)
	assert.Equal(t, int64(0), int64(dur.Duration))
}

// TestArithmetic_YearMonthDurationPlusDateTime_Commutes asserts that
// duration + date-time produces the same result as date-time + duration.
func TestArithmetic_YearMonthDurationPlusDateTime_Commutes(t *testing.T) {
	dur := value.YearMonthDuration{Months: 14}
	dt := value.DateTime{Time: time.Date(2020, 1, 15, 0, 0, 0, 0, time.UTC)}

	left, warn := operators.Arithmetic(ast.OpAdd, dur, dt)
	assert.Nil(t, warn)
	right, warn := operators.Arithmetic(ast.OpAdd, dt, dur)
	assert.Nil(t, warn)
	assert.Equal(t, right.String(), left.String())
}
