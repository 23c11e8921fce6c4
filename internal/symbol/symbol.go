package symbol

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidSymbol is wrapped by every construction-time validation failure,
// so a symbol that fails its schema check can never enter a registry.
var ErrInvalidSymbol = errors.New("invalid symbol")

// Associativity is the direction in which an operator applies.
//
// For binary operators it decides grouping under equal precedence; Both marks
// an operator safe to group in either direction. For unary operators Left
// means the operator applies to the operand on its left ('3!') and Right to
// the operand on its right.
type Associativity int

const (
	Right Associativity = iota
	Left
	Both
)

func (a Associativity) String() string {
	switch a {
	case Right:
		return "right"
	case Left:
		return "left"
	case Both:
		return "both"
	}
	return fmt.Sprintf("associativity(%d)", int(a))
}

// Operation is the behavior of a function or operator: it takes the symbol's
// arity worth of numbers and returns one number.
type Operation func(args ...float64) (float64, error)

// Callable is any symbol that consumes operands from the value stack.
type Callable interface {
	Token() string
	NVar() int
	Call(args ...float64) (float64, error)
}

// Function is an n-ary math function. It is immutable after construction.
type Function struct {
	token     string
	operation Operation
	nVar      int
}

// NewFunction validates and builds an n-ary function.
func NewFunction(token string, operation Operation, nVar int) (*Function, error) {
	if token == "" {
		return nil, fmt.Errorf("%w: token must not be empty", ErrInvalidSymbol)
	}
	if operation == nil {
		return nil, fmt.Errorf("%w: function %q has no operation", ErrInvalidSymbol, token)
	}
	if nVar < 1 {
		return nil, fmt.Errorf("%w: function %q must take at least 1 variable", ErrInvalidSymbol, token)
	}
	return &Function{token: token, operation: operation, nVar: nVar}, nil
}

// NewSingleVarFunction builds a function of exactly one variable, e.g. 'sin'.
func NewSingleVarFunction(token string, operation func(x float64) (float64, error)) (*Function, error) {
	if operation == nil {
		return nil, fmt.Errorf("%w: function %q has no operation", ErrInvalidSymbol, token)
	}
	return NewFunction(token, func(args ...float64) (float64, error) {
		return operation(args[0])
	}, 1)
}

func (f *Function) Token() string { return f.token }
func (f *Function) NVar() int     { return f.nVar }

func (f *Function) Call(args ...float64) (float64, error) {
	if len(args) != f.nVar {
		return 0, fmt.Errorf("%q expects %d arguments, got %d", f.token, f.nVar, len(args))
	}
	return f.operation(args...)
}

// Constant is a symbol with a fixed numeric value.
type Constant struct {
	token string
	value float64
}

// NewConstant validates and builds a constant.
func NewConstant(token string, value float64) (Constant, error) {
	if token == "" {
		return Constant{}, fmt.Errorf("%w: token must not be empty", ErrInvalidSymbol)
	}
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return Constant{}, fmt.Errorf("%w: constant %q must have a finite value", ErrInvalidSymbol, token)
	}
	return Constant{token: token, value: value}, nil
}

func (c Constant) Token() string  { return c.token }
func (c Constant) Value() float64 { return c.value }
