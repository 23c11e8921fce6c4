package mathparse

import (
	"errors"
	"fmt"
)

// Conditions surfaced to callers. They are always wrapped in an
// OperatorError or OperandError, so errors.Is matches the condition and
// errors.As the category.
var (
	ErrDuplicateSymbol       = errors.New("duplicate symbol")
	ErrUnknownSymbol         = errors.New("unknown symbol")
	ErrUnknownToken          = errors.New("unknown token")
	ErrMismatchedParenthesis = errors.New("mismatched parenthesis")
	ErrInsufficientOperands  = errors.New("too few operands")
	ErrTooManyOperands       = errors.New("too many operands")
	ErrNonNumericOperand     = errors.New("non-numeric operand")
	ErrUnknownVariable       = errors.New("unknown variable")
)

// OperatorError reports an operator, function or constant token that does
// not exist, or an operation that cannot be applied.
type OperatorError struct {
	Token string
	Err   error
}

func (e *OperatorError) Error() string {
	if e.Token == "" {
		return e.Err.Error()
	}
	return fmt.Sprintf("%v: %q", e.Err, e.Token)
}

func (e *OperatorError) Unwrap() error { return e.Err }

// OperandError reports a wrong operand count, a non-numeric operand, a
// mismatched parenthesis or an unresolvable variable placeholder.
type OperandError struct {
	Token string
	Err   error
}

func (e *OperandError) Error() string {
	if e.Token == "" {
		return e.Err.Error()
	}
	return fmt.Sprintf("%v: %q", e.Err, e.Token)
}

func (e *OperandError) Unwrap() error { return e.Err }

func operatorErr(err error, token string) error {
	return &OperatorError{Token: token, Err: err}
}

func operandErr(err error, token string) error {
	return &OperandError{Token: token, Err: err}
}
