// Package value implements the FEEL runtime value universe: the fifteen
// variant kinds an evaluated expression can produce, per the DMN FEEL
// specification.
package value

// Kind identifies one of the fifteen closed Value variants. Every Value
// implementation reports exactly one Kind; dispatch throughout the
// evaluator and operator packages switches on it instead of relying on
// virtual method overrides, so adding a sixteenth kind is a compile-time
// exercise, not a runtime one.
type Kind int

const (
	KindNumber Kind = iota
	KindBoolean
	KindString
	KindDate
	KindLocalTime
	KindTime
	KindLocalDateTime
	KindDateTime
	KindYearMonthDuration
	KindDayTimeDuration
	KindNull
	KindList
	KindContext
	KindFunction
	KindError
)

func (k Kind) String() string {
	switch k {
	case KindNumber:
		return `number`
	case KindBoolean:
		return `boolean`
	case KindString:
		return `string`
	case KindDate:
		return `date`
	case KindLocalTime:
		return `local time`
	case KindTime:
		return `time`
	case KindLocalDateTime:
		return `local date time`
	case KindDateTime:
		return `date time`
	case KindYearMonthDuration:
		return `year-month-duration`
	case KindDayTimeDuration:
		return `day-time-duration`
	case KindNull:
		return `null`
	case KindList:
		return `list`
	case KindContext:
		return `context`
	case KindFunction:
		return `function`
	case KindError:
		return `error`
	default:
		return `unknown`
	}
}

// Value is the closed runtime value type. Every evaluation yields exactly
// one Value; there is no "undefined" outcome.
type Value interface {
	// Kind reports which of the fifteen variants this value is.
	Kind() Kind

	// String renders the value the way FEEL source would (used for string
	// concatenation, error messages, and test output).
	String() string
}

// Ordered is implemented by every Value kind that participates in total
// ordering comparisons (<, <=, >, >=) and interval membership tests: Number
// and the seven date/time/duration kinds.
type Ordered interface {
	Value

	// Compare returns -1, 0, or 1 against another value of a comparable
	// kind, and false if the two values are not mutually ordered.
	Compare(other Value) (int, bool)
}

// IsTruthy implements FEEL's notion of a boolean condition: only the
// Boolean(true) value is truthy. Every other kind, including Null and
// Error, is not.
func IsTruthy(v Value) bool {
	b, ok := v.(Boolean)
	return ok && bool(b)
}

// IsNull reports whether v is the Null singleton.
func IsNull(v Value) bool {
	_, ok := v.(Null)
	return ok
}

// AsError extracts the Error value if v carries one.
func AsError(v Value) (Err, bool) {
	e, ok := v.(Err)
	return e, ok
}

// TypeName returns the canonical type name used by `instance-of`. Both LocalTime and Time report `time`; both LocalDateTime and
// DateTime report `date time` (note the space).
func TypeName(v Value) string {
	switch v.Kind() {
	case KindLocalTime, KindTime:
		return `time`
	case KindLocalDateTime, KindDateTime:
		return `date time`
	default:
		return v.Kind().String()
	}
}

// Equal implements FEEL's `=` / `in` equality. Error is never equal to
// anything, including another Error or itself —
// callers that need to detect an Error should use AsError instead of
// relying on equality.
func Equal(a, b Value) bool {
	if _, ok := a.(Err); ok {
		return false
	}
	if _, ok := b.(Err); ok {
		return false
	}
	switch av := a.(type) {
	case Number:
		bv, ok := b.(Number)
		return ok && av.Cmp(bv) == 0
	case Boolean:
		bv, ok := b.(Boolean)
		return ok && av == bv
	case String:
		bv, ok := b.(String)
		return ok && av == bv
	case Null:
		_, ok := b.(Null)
		return ok
	case Date:
		bv, ok := b.(Date)
		return ok && av.Equal(bv)
	case LocalTime:
		bv, ok := b.(LocalTime)
		return ok && av.Equal(bv)
	case Time:
		bv, ok := b.(Time)
		return ok && av.Equal(bv)
	case LocalDateTime:
		bv, ok := b.(LocalDateTime)
		return ok && av.Equal(bv)
	case DateTime:
		bv, ok := b.(DateTime)
		return ok && av.Equal(bv)
	case YearMonthDuration:
		bv, ok := b.(YearMonthDuration)
		return ok && av.Months == bv.Months
	case DayTimeDuration:
		bv, ok := b.(DayTimeDuration)
		return ok && av.Duration == bv.Duration
	case *List:
		bv, ok := b.(*List)
		if !ok || len(av.Items) != len(bv.Items) {
			return false
		}
		for i := range av.Items {
			if !Equal(av.Items[i], bv.Items[i]) {
				return false
			}
		}
		return true
	default:
		return false
	}
}

// Compare orders two values of a mutually-ordered kind. The second return
// value is false when the kinds are not comparable.
func Compare(a, b Value) (int, bool) {
	ao, ok := a.(Ordered)
	if !ok {
		return 0, false
	}
	return ao.Compare(b)
}
