package builtins_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lyraproj/feel-evaluator/context"
	"github.com/lyraproj/feel-evaluator/internal/builtins"
	"github.com/lyraproj/feel-evaluator/value"
)

func callBuiltin(t *testing.T, ctx *context.Context, name string, args ...value.Value) value.Value {
	t.Helper()
	overloads := ctx.Functions(name)
	if len(overloads) == 0 {
		t.Fatalf(`builtin %q not registered`, name)
	}
	return overloads[0].Invoke(args)
}

func TestRoundUp(t *testing.T) {
	ctx := builtins.Register(context.New())
	result := callBuiltin(t, ctx, `round up`, value.NewNumber(2.1), value.NewNumberFromInt(0))
	assert.Equal(t, `3`, result.String())
}

func TestNot(t *testing.T) {
	ctx := builtins.Register(context.New())
	assert.Equal(t, value.Boolean(false), callBuiltin(t, ctx, `not`, value.Boolean(true)))
}

func TestNumberParsesDecimalString(t *testing.T) {
	ctx := builtins.Register(context.New())
	result := callBuiltin(t, ctx, `number`, value.String(`1030.8`))
	assert.Equal(t, `1030.8`, result.String())
}

func TestStringRendersAnyValue(t *testing.T) {
	ctx := builtins.Register(context.New())
	result := callBuiltin(t, ctx, `string`, value.NewNumberFromInt(7))
	assert.Equal(t, value.String(`7`), result)
}
