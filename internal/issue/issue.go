// Package issue wires every diagnostic the evaluator and invoker produce
// through github.com/lyraproj/issue/issue: a registered Code plus a
// %{name}-style message template, rendered against an args map at report
// time. This keeps FEEL error messages table-driven and testable by code
// instead of by exact prose.
package issue

import "github.com/lyraproj/issue/issue"

type (
	// Code identifies one diagnostic template.
	Code = issue.Code

	// H is the argument map substituted into a Code's message template.
	H = issue.H

	// Reported is a constructed diagnostic; it satisfies error.
	Reported = issue.Reported
)

// location is the zero-value issue.Location implementation. The evaluator
// operates over an immutable AST with no parser-supplied source positions,
// so every Reported here carries an empty location rather than a
// fabricated one.
type location struct{}

func (location) File() string { return `` }
func (location) Line() int    { return 0 }
func (location) Pos() int     { return 0 }

var noLocation = location{}

// New constructs a Reported error-severity diagnostic for code.
func New(code Code, args H) Reported {
	return issue.NewReported(code, issue.SeverityError, args, noLocation)
}

// NewWarning constructs a Reported warning-severity diagnostic, used for
// the suppressed-failure sink: arithmetic type mismatches and non-boolean
// `if` conditions warn rather than error.
func NewWarning(code Code, args H) Reported {
	return issue.NewReported(code, issue.SeverityWarning, args, noLocation)
}
