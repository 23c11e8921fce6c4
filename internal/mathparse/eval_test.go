package mathparse_test

import (
	"errors"
	"math"
	"testing"

	"github.com/calcyard/mathcalc/internal/mathparse"
)

func evaluate(t *testing.T, expr string) (float64, error) {
	t.Helper()
	eval := mathparse.Default()
	postfix, err := eval.Parse(expr)
	if err != nil {
		return 0, err
	}
	return eval.EvaluatePostfix(postfix)
}

func TestEvaluateExpressions(t *testing.T) {
	tests := []struct {
		name     string
		expr     string
		expected float64
	}{
		{"Addition", "2+3", 5},
		{"Precedence", "1+2*3", 7},
		{"Parens", "(1+2)*3", 9},
		{"RightAssociativePower", "2^2^3", 256},
		{"LeftToRightSubtraction", "3-2-1", 0},
		{"Division", "200/5/4", 10},
		{"Factorial", "3!", 6},
		{"FactorialBindsTighter", "2*3!", 12},
		{"ImplicitMultiplication", "2pi", 2 * math.Pi},
		{"Function", "cos(pi+pi)", 1},
		{"NestedFunction", "sin(cos(pi/2))", 0},
		{"Euler", "e^0", 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := evaluate(t, tt.expr)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if math.Abs(result-tt.expected) > 1e-9 {
				t.Errorf("%s = %v, want %v", tt.expr, result, tt.expected)
			}
		})
	}
}

func TestEvaluateErrors(t *testing.T) {
	eval := mathparse.Default()

	tests := []struct {
		name    string
		postfix []string
		want    error
	}{
		{"TooFewOperands", []string{"2", "+"}, mathparse.ErrInsufficientOperands},
		{"TooFewFunctionOperands", []string{"sin"}, mathparse.ErrInsufficientOperands},
		{"TooManyOperands", []string{"2", "3"}, mathparse.ErrTooManyOperands},
		{"NonNumericOperand", []string{"2", "x", "+"}, mathparse.ErrNonNumericOperand},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := eval.EvaluatePostfix(tt.postfix)
			if !errors.Is(err, tt.want) {
				t.Errorf("error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestEvaluateEmptyIsZero(t *testing.T) {
	eval := mathparse.Default()
	result, err := eval.EvaluatePostfix(nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result != 0 {
		t.Errorf("empty postfix = %v, want 0", result)
	}
}

func TestDivisionByZero(t *testing.T) {
	_, err := evaluate(t, "1/0")
	var opErr *mathparse.OperatorError
	if !errors.As(err, &opErr) {
		t.Fatalf("expected OperatorError, got %T: %v", err, err)
	}
	if opErr.Token != "/" {
		t.Errorf("offending token = %q, want %q", opErr.Token, "/")
	}
}

func TestFactorialOfFraction(t *testing.T) {
	if _, err := evaluate(t, "2.5!"); err == nil {
		t.Error("expected error for factorial of a fraction")
	}
}

func TestOperandErrorsCategory(t *testing.T) {
	eval := mathparse.Default()
	_, err := eval.EvaluatePostfix([]string{"2", "+"})
	var odErr *mathparse.OperandError
	if !errors.As(err, &odErr) {
		t.Fatalf("expected OperandError, got %T: %v", err, err)
	}
	if odErr.Token != "+" {
		t.Errorf("offending token = %q, want %q", odErr.Token, "+")
	}
}

func TestFormatResult(t *testing.T) {
	tests := []struct {
		value    float64
		expected string
	}{
		{6, "6"},
		{-2, "-2"},
		{2.5, "2.5"},
		{0, "0"},
	}
	for _, tt := range tests {
		if got := mathparse.FormatResult(tt.value); got != tt.expected {
			t.Errorf("FormatResult(%v) = %q, want %q", tt.value, got, tt.expected)
		}
	}
}
