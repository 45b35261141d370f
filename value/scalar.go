package value

import (
	"math/big"
)

// Number is FEEL's single numeric kind, backed by a math/big.Float with
// numberPrec bits of binary precision (not a decimal representation).
type Number struct {
	v *big.Float
}

// numberPrec is the working precision (in bits) for intermediate
// arithmetic. 128 bits comfortably exceeds double precision without the
// performance cost of an unbounded precision.
const numberPrec = 128

// NewNumber wraps a float64 literal.
func NewNumber(f float64) Number {
	return Number{new(big.Float).SetPrec(numberPrec).SetFloat64(f)}
}

// NewNumberFromInt wraps an integer literal exactly.
func NewNumberFromInt(i int64) Number {
	return Number{new(big.Float).SetPrec(numberPrec).SetInt64(i)}
}

// ParseNumber parses a decimal literal such as "1030.8" or "-5".
func ParseNumber(s string) (Number, bool) {
	f, _, err := big.ParseFloat(s, 10, numberPrec, big.ToNearestEven)
	if err != nil {
		return Number{}, false
	}
	return Number{f}, true
}

func (Number) Kind() Kind { return KindNumber }

func (n Number) String() string {
	return n.v.Text('f', -1)
}

func (n Number) Float() float64 {
	f, _ := n.v.Float64()
	return f
}

// Int64 truncates towards zero, used for exponent coercion and the digit
// count of `round up`.
func (n Number) Int64() int64 {
	i, _ := n.v.Int64()
	return i
}

func (n Number) Cmp(other Number) int {
	return n.v.Cmp(other.v)
}

func (n Number) Compare(other Value) (int, bool) {
	o, ok := other.(Number)
	if !ok {
		return 0, false
	}
	return n.v.Cmp(o.v), true
}

func (n Number) Add(other Number) Number { return Number{new(big.Float).SetPrec(numberPrec).Add(n.v, other.v)} }
func (n Number) Sub(other Number) Number { return Number{new(big.Float).SetPrec(numberPrec).Sub(n.v, other.v)} }
func (n Number) Mul(other Number) Number { return Number{new(big.Float).SetPrec(numberPrec).Mul(n.v, other.v)} }

// Div divides n by other. The caller is responsible for checking for
// division by zero.
func (n Number) Div(other Number) Number {
	return Number{new(big.Float).SetPrec(numberPrec).Quo(n.v, other.v)}
}

func (n Number) IsZero() bool {
	return n.v.Sign() == 0
}

// Neg returns -n.
func (n Number) Neg() Number {
	return Number{new(big.Float).SetPrec(numberPrec).Neg(n.v)}
}

// Boolean is FEEL's two-valued logical kind. Unlike Null, a missing
// Boolean never silently substitutes for one — every operator that
// expects Boolean and receives something else handles the mismatch
// explicitly.
type Boolean bool

func (Boolean) Kind() Kind { return KindBoolean }
func (b Boolean) String() string {
	if b {
		return `true`
	}
	return `false`
}

// String is FEEL's Unicode text kind.
type String string

func (String) Kind() Kind      { return KindString }
func (s String) String() string { return string(s) }

// Null is the singleton absent value.
type Null struct{}

func (Null) Kind() Kind      { return KindNull }
func (Null) String() string { return `null` }

// TheNull is the single Null instance; every Null comparison and every
// function that needs to hand back "no value" uses this constant rather
// than allocating a new struct.
var TheNull = Null{}
