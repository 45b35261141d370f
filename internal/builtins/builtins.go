// Package builtins installs the FEEL standard built-in functions as
// regular Function entries in the root Context's function map: a flat
// registration call per name against a shared namespace.
package builtins

import (
	"math"
	"time"

	"github.com/lyraproj/feel-evaluator/context"
	"github.com/lyraproj/feel-evaluator/value"
)

// Register binds every built-in this module supplies into ctx's local
// frame and returns the derived Context.
func Register(ctx *context.Context) *context.Context {
	ctx = ctx.BindFunction(`round up`, value.Function{
		Name:       `round up`,
		Parameters: []string{`n`, `scale`},
		Invoke:     roundUp,
	})
	ctx = ctx.BindFunction(`string`, value.Function{
		Name:       `string`,
		Parameters: []string{`x`},
		Invoke:     toString,
	})
	ctx = ctx.BindFunction(`number`, value.Function{
		Name:       `number`,
		Parameters: []string{`s`},
		Invoke:     toNumber,
	})
	ctx = ctx.BindFunction(`date`, value.Function{
		Name:       `date`,
		Parameters: []string{`s`},
		Invoke:     toDate,
	})
	ctx = ctx.BindFunction(`time`, value.Function{
		Name:       `time`,
		Parameters: []string{`s`},
		Invoke:     toTime,
	})
	ctx = ctx.BindFunction(`not`, value.Function{
		Name:       `not`,
		Parameters: []string{`b`},
		Invoke:     not,
	})
	return ctx
}

// roundUp implements DMN's "round up" built-in: rounding away from zero to
// `scale` decimal digits.
func roundUp(args []value.Value) value.Value {
	n, ok := args[0].(value.Number)
	if !ok {
		return value.TheNull
	}
	scale, ok := args[1].(value.Number)
	if !ok {
		return value.TheNull
	}
	digits := scale.Int64()
	scaled := n.Float() * pow10(digits)
	rounded := roundAwayFromZero(scaled)
	return value.NewNumber(rounded / pow10(digits))
}

func pow10(n int64) float64 {
	neg := n < 0
	if neg {
		n = -n
	}
	f := 1.0
	for i := int64(0); i < n; i++ {
		f *= 10
	}
	if neg {
		return 1 / f
	}
	return f
}

// roundAwayFromZero implements "round up" the DMN way: unconditionally
// away from zero, not nearest-with-ties-away.
func roundAwayFromZero(f float64) float64 {
	if f >= 0 {
		return math.Ceil(f)
	}
	return math.Floor(f)
}

func toString(args []value.Value) value.Value {
	return value.String(args[0].String())
}

func toNumber(args []value.Value) value.Value {
	s, ok := args[0].(value.String)
	if !ok {
		return value.TheNull
	}
	n, ok := value.ParseNumber(string(s))
	if !ok {
		return value.TheNull
	}
	return n
}

func toDate(args []value.Value) value.Value {
	s, ok := args[0].(value.String)
	if !ok {
		return value.TheNull
	}
	t, err := time.Parse(`2006-01-02`, string(s))
	if err != nil {
		return value.TheNull
	}
	return value.Date{Time: t}
}

func toTime(args []value.Value) value.Value {
	s, ok := args[0].(value.String)
	if !ok {
		return value.TheNull
	}
	t, err := time.Parse(`15:04:05`, string(s))
	if err != nil {
		return value.TheNull
	}
	return value.NewLocalTime(t.Hour(), t.Minute(), t.Second(), t.Nanosecond())
}

func not(args []value.Value) value.Value {
	b, ok := args[0].(value.Boolean)
	if !ok {
		return value.TheNull
	}
	return value.Boolean(!bool(b))
}
