package context_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lyraproj/feel-evaluator/context"
	"github.com/lyraproj/feel-evaluator/value"
)

func TestBindShadowing(t *testing.T) {
	root := context.New().Bind(`x`, value.NewNumberFromInt(1))
	child := root.Bind(`x`, value.NewNumberFromInt(2))

	rv, _ := root.Get(`x`)
	cv, _ := child.Get(`x`)
	assert.Equal(t, `1`, rv.String())
	assert.Equal(t, `2`, cv.String())
}

func TestGet_Unbound(t *testing.T) {
	_, ok := context.New().Get(`missing`)
	assert.False(t, ok)
}

func TestCompose_RightBiasedOverlay(t *testing.T) {
	a := context.New().Bind(`x`, value.NewNumberFromInt(1)).Bind(`y`, value.NewNumberFromInt(10))
	b := context.New().Bind(`x`, value.NewNumberFromInt(2))

	composed := context.Compose(a, b)
	xv, _ := composed.Get(`x`)
	yv, _ := composed.Get(`y`)
	assert.Equal(t, `2`, xv.String(), `b's binding should win`)
	assert.Equal(t, `10`, yv.String(), `a's binding should fall through`)
}

func TestInputVariableName_DefaultAndOverride(t *testing.T) {
	ctx := context.New()
	assert.Equal(t, `cellInput`, ctx.InputVariableName())

	overridden := ctx.Bind(`inputVariableName`, value.String(`probe`))
	assert.Equal(t, `probe`, overridden.InputVariableName())
}

func TestWithInput(t *testing.T) {
	ctx := context.New().WithInput(value.NewNumberFromInt(42))
	assert.Equal(t, `42`, ctx.Input().String())
}

func TestBindFunction_OverloadSet(t *testing.T) {
	fn1 := value.Function{Name: `f`, Parameters: []string{`a`}}
	fn2 := value.Function{Name: `f`, Parameters: []string{`a`, `b`}}
	ctx := context.New().BindFunction(`f`, fn1).BindFunction(`f`, fn2)

	overloads := ctx.Functions(`f`)
	assert.Len(t, overloads, 2)
	assert.Equal(t, 1, overloads[0].Arity())
	assert.Equal(t, 2, overloads[1].Arity())
}
