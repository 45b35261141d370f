package value

import "github.com/lyraproj/feel-evaluator/internal/issue"

// Err is FEEL's Error kind: a diagnostic that propagates through most
// operators instead of being silently absorbed. It is never
// equal to any value, including another Err or itself — see Equal in
// value.go — so callers must use AsError, not Equal, to detect one.
type Err struct {
	Reported issue.Reported
}

// NewError builds an Err from a registered issue code and its arguments.
func NewError(code issue.Code, args issue.H) Err {
	return Err{Reported: issue.New(code, args)}
}

func (Err) Kind() Kind { return KindError }

func (e Err) String() string { return e.Reported.Error() }

// Message is the human-readable diagnostic text.
func (e Err) Message() string { return e.Reported.Error() }
