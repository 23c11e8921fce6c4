package symbol_test

import (
	"errors"
	"testing"

	"github.com/calcyard/mathcalc/internal/symbol"
)

func TestNewConstantValidation(t *testing.T) {
	if _, err := symbol.NewConstant("", 1); !errors.Is(err, symbol.ErrInvalidSymbol) {
		t.Errorf("empty token: error = %v, want %v", err, symbol.ErrInvalidSymbol)
	}

	c, err := symbol.NewConstant("pi", 3.14)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.Token() != "pi" || c.Value() != 3.14 {
		t.Errorf("constant = %q %v, want pi 3.14", c.Token(), c.Value())
	}
}

func TestNewFunctionValidation(t *testing.T) {
	identity := func(args ...float64) (float64, error) { return args[0], nil }

	if _, err := symbol.NewFunction("", identity, 1); !errors.Is(err, symbol.ErrInvalidSymbol) {
		t.Errorf("empty token: error = %v, want %v", err, symbol.ErrInvalidSymbol)
	}
	if _, err := symbol.NewFunction("f", nil, 1); !errors.Is(err, symbol.ErrInvalidSymbol) {
		t.Errorf("nil operation: error = %v, want %v", err, symbol.ErrInvalidSymbol)
	}
	if _, err := symbol.NewFunction("f", identity, 0); !errors.Is(err, symbol.ErrInvalidSymbol) {
		t.Errorf("zero arity: error = %v, want %v", err, symbol.ErrInvalidSymbol)
	}
}

func TestFunctionCallArity(t *testing.T) {
	sum := func(args ...float64) (float64, error) { return args[0] + args[1], nil }
	fn, err := symbol.NewFunction("sum", sum, 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, err := fn.Call(1); err == nil {
		t.Error("expected error for wrong argument count")
	}
	result, err := fn.Call(1, 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result != 3 {
		t.Errorf("sum(1, 2) = %v, want 3", result)
	}
}

func TestUnaryOperatorValidation(t *testing.T) {
	neg := func(x float64) (float64, error) { return -x, nil }

	if _, err := symbol.NewUnaryOperator("-", neg, symbol.Both); !errors.Is(err, symbol.ErrInvalidSymbol) {
		t.Errorf("both-associative unary: error = %v, want %v", err, symbol.ErrInvalidSymbol)
	}

	op, err := symbol.NewUnaryOperator("-", neg, symbol.Right)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if op.NVar() != 1 {
		t.Errorf("NVar = %d, want 1", op.NVar())
	}
	if op.Associativity() != symbol.Right {
		t.Errorf("associativity = %v, want %v", op.Associativity(), symbol.Right)
	}
}

func TestBinaryOperatorValidation(t *testing.T) {
	add := func(a, b float64) (float64, error) { return a + b, nil }

	if _, err := symbol.NewBinaryOperator("+", nil, 0, symbol.Both); !errors.Is(err, symbol.ErrInvalidSymbol) {
		t.Errorf("nil operation: error = %v, want %v", err, symbol.ErrInvalidSymbol)
	}

	op, err := symbol.NewBinaryOperator("+", add, 0, symbol.Both)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if op.NVar() != 2 {
		t.Errorf("NVar = %d, want 2", op.NVar())
	}
	if op.Precedence() != 0 {
		t.Errorf("precedence = %d, want 0", op.Precedence())
	}

	result, err := op.Call(2, 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result != 5 {
		t.Errorf("2 + 3 = %v, want 5", result)
	}
}
