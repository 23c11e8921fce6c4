package symbol

import "fmt"

// Operator is a unary or binary operator. Arity is fixed by the concrete
// type: 1 for UnaryOperator, 2 for BinaryOperator.
type Operator interface {
	Callable
	Associativity() Associativity
}

// UnaryOperator applies to a single operand. Left associativity makes it
// postfix-style ('3!'), Right makes it prefix-style.
type UnaryOperator struct {
	Function
	associativity Associativity
}

// NewUnaryOperator validates and builds a unary operator.
func NewUnaryOperator(token string, operation func(x float64) (float64, error), associativity Associativity) (*UnaryOperator, error) {
	if associativity != Left && associativity != Right {
		return nil, fmt.Errorf("%w: unary operator %q must be left or right associative", ErrInvalidSymbol, token)
	}
	fn, err := NewSingleVarFunction(token, operation)
	if err != nil {
		return nil, err
	}
	return &UnaryOperator{Function: *fn, associativity: associativity}, nil
}

func (o *UnaryOperator) Associativity() Associativity { return o.associativity }

// BinaryOperator applies to two operands. Higher precedence binds tighter.
type BinaryOperator struct {
	Function
	precedence    int
	associativity Associativity
}

// NewBinaryOperator validates and builds a binary operator.
func NewBinaryOperator(token string, operation func(a, b float64) (float64, error), precedence int, associativity Associativity) (*BinaryOperator, error) {
	if operation == nil {
		return nil, fmt.Errorf("%w: operator %q has no operation", ErrInvalidSymbol, token)
	}
	if associativity != Left && associativity != Right && associativity != Both {
		return nil, fmt.Errorf("%w: operator %q has unknown associativity", ErrInvalidSymbol, token)
	}
	fn, err := NewFunction(token, func(args ...float64) (float64, error) {
		return operation(args[0], args[1])
	}, 2)
	if err != nil {
		return nil, err
	}
	return &BinaryOperator{Function: *fn, precedence: precedence, associativity: associativity}, nil
}

func (o *BinaryOperator) Associativity() Associativity { return o.associativity }
func (o *BinaryOperator) Precedence() int              { return o.precedence }
