package mathparse

import (
	"errors"
	"math"
	"strconv"

	"github.com/calcyard/mathcalc/internal/symbol"
)

// Default returns an Evaluator loaded with the stock symbols: the five
// arithmetic operators, postfix factorial, the basic trigonometric
// functions, pi and e, with '*' as the implicit operation.
func Default() *Evaluator {
	e := New()

	operators := []symbol.Operator{
		must(symbol.NewBinaryOperator("+", func(a, b float64) (float64, error) { return a + b, nil }, 0, symbol.Both)),
		must(symbol.NewBinaryOperator("-", func(a, b float64) (float64, error) { return a - b, nil }, 0, symbol.Both)),
		must(symbol.NewBinaryOperator("*", func(a, b float64) (float64, error) { return a * b, nil }, 1, symbol.Both)),
		must(symbol.NewBinaryOperator("/", divide, 1, symbol.Left)),
		must(symbol.NewBinaryOperator("^", func(a, b float64) (float64, error) { return math.Pow(a, b), nil }, 2, symbol.Right)),
		must(symbol.NewUnaryOperator("!", factorial, symbol.Left)),
	}
	for _, op := range operators {
		if err := e.AddOperator(op); err != nil {
			panic(err)
		}
	}

	functions := []*symbol.Function{
		must(symbol.NewSingleVarFunction("sin", func(x float64) (float64, error) { return math.Sin(x), nil })),
		must(symbol.NewSingleVarFunction("cos", func(x float64) (float64, error) { return math.Cos(x), nil })),
		must(symbol.NewSingleVarFunction("tan", func(x float64) (float64, error) { return math.Tan(x), nil })),
		must(symbol.NewSingleVarFunction("cot", func(x float64) (float64, error) { return 1 / math.Tan(x), nil })),
	}
	for _, fn := range functions {
		if err := e.AddFunction(fn); err != nil {
			panic(err)
		}
	}

	constants := []symbol.Constant{
		must(symbol.NewConstant("pi", math.Pi)),
		must(symbol.NewConstant("e", math.E)),
	}
	for _, c := range constants {
		if err := e.AddConstant(c); err != nil {
			panic(err)
		}
	}

	if err := e.SetImplicitOperation("*"); err != nil {
		panic(err)
	}
	return e
}

func divide(a, b float64) (float64, error) {
	if b == 0 {
		return 0, errors.New("division by zero")
	}
	return a / b, nil
}

func factorial(x float64) (float64, error) {
	if x != math.Trunc(x) || x < 0 {
		return 0, errors.New("factorial is defined for non-negative integers only")
	}
	result := 1.0
	for i := 2.0; i <= x; i++ {
		result *= i
	}
	return result, nil
}

// FormatResult renders a value the way the consuming layer presents it:
// integral results without a fraction, everything else in compact form.
func FormatResult(v float64) string {
	if v == math.Trunc(v) && !math.IsInf(v, 0) && math.Abs(v) < 1e15 {
		return strconv.FormatInt(int64(v), 10)
	}
	return strconv.FormatFloat(v, 'g', -1, 64)
}

func must[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}
