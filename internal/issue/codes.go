package issue

import "github.com/lyraproj/issue/issue"

// Every Code the evaluator, operator, and invoker packages can produce,
// registered with its message template (issue.Hard for plain %{name}
// substitution, issue.Hard2 when a substitution needs article/case
// handling).
const (
	DivisionByZero          Code = `FEEL_DIVISION_BY_ZERO`
	OperatorNotApplicable   Code = `FEEL_OPERATOR_NOT_APPLICABLE`
	ComparisonNotApplicable Code = `FEEL_COMPARISON_NOT_APPLICABLE`
	UnaryTestNotApplicable  Code = `FEEL_UNARY_TEST_NOT_APPLICABLE`
	UnknownVariable         Code = `FEEL_UNKNOWN_VARIABLE`
	NotAContext             Code = `FEEL_NOT_A_CONTEXT`
	NotAList                Code = `FEEL_NOT_A_LIST`
	PathNotApplicable       Code = `FEEL_PATH_NOT_APPLICABLE`
	NoFunctionFound         Code = `FEEL_NO_FUNCTION_FOUND`
	NotAFunction            Code = `FEEL_NOT_A_FUNCTION`
	HostClassNotFound       Code = `FEEL_HOST_CLASS_NOT_FOUND`
	HostMethodNotFound      Code = `FEEL_HOST_METHOD_NOT_FOUND`
	HostInvocationFailed    Code = `FEEL_HOST_INVOCATION_FAILED`
	UnhandledExpression     Code = `FEEL_UNHANDLED_EXPRESSION`
	DeserializedError       Code = `FEEL_DESERIALIZED_ERROR`

	WarnArithmeticTypeMismatch Code = `FEEL_WARN_ARITHMETIC_TYPE_MISMATCH`
	WarnNonBooleanCondition    Code = `FEEL_WARN_NON_BOOLEAN_CONDITION`
	WarnNonBooleanNegation     Code = `FEEL_WARN_NON_BOOLEAN_NEGATION`
)

func init() {
	issue.Hard(DivisionByZero, `division by zero`)
	issue.Hard2(OperatorNotApplicable,
		`operator %{operator} is not applicable to %{left}`, issue.HF{`left`: issue.AnOrA})
	issue.Hard2(ComparisonNotApplicable,
		`operator %{operator} cannot compare %{left} to %{right}`, issue.HF{`left`: issue.AnOrA})
	issue.Hard2(UnaryTestNotApplicable,
		`unary test operand of type %{operand} is not applicable to input of type %{input}`,
		issue.HF{`input`: issue.AnOrA})
	issue.Hard(UnknownVariable, `unknown variable '%{name}'`)
	issue.Hard(NotAContext, `expected a context, got %{actual}`)
	issue.Hard(NotAList, `expected a list, got %{actual}`)
	issue.Hard(PathNotApplicable, `path access '.%{name}' is not applicable to %{actual}`)
	issue.Hard(NoFunctionFound, `no function found with name '%{name}' and %{count} parameters`)
	issue.Hard(NotAFunction, `'%{name}' is not a function, got %{actual}`)
	issue.Hard(HostClassNotFound, `fail to load class %{class}`)
	issue.Hard(HostMethodNotFound, `fail to find method %{method} on class %{class}`)
	issue.Hard(HostInvocationFailed, `fail to invoke %{method} on class %{class}: %{detail}`)
	issue.Hard(UnhandledExpression, `don't know how to evaluate a %{expression}`)
	issue.Hard(DeserializedError, `%{message}`)

	issue.Hard(WarnArithmeticTypeMismatch,
		`operator %{operator} is not applicable to %{left} and %{right}`)
	issue.Hard(WarnNonBooleanCondition, `condition did not evaluate to a boolean, treated as false`)
	issue.Hard(WarnNonBooleanNegation, `not() operand did not evaluate to a boolean`)
}
