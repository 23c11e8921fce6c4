package mathparse

import (
	"strconv"

	"github.com/informitas/stack"

	"github.com/calcyard/mathcalc/internal/symbol"
)

// EvaluatePostfix runs a postfix token sequence through a stack machine and
// returns the single resulting value. An empty sequence evaluates to 0.
func (e *Evaluator) EvaluatePostfix(postfix []string) (float64, error) {
	if len(postfix) == 0 {
		return 0, nil
	}
	values := stack.NewStack[float64]()

	for _, token := range postfix {
		if op, ok := e.operators[token]; ok {
			if err := apply(values, op); err != nil {
				return 0, err
			}
			continue
		}
		if fn, ok := e.functions[token]; ok {
			if err := apply(values, fn); err != nil {
				return 0, err
			}
			continue
		}
		if c, ok := e.constants[token]; ok {
			values.Push(c.Value())
			continue
		}
		v, err := strconv.ParseFloat(token, 64)
		if err != nil {
			return 0, operandErr(ErrNonNumericOperand, token)
		}
		values.Push(v)
	}

	result, err := values.Pop()
	if err != nil {
		return 0, operandErr(ErrInsufficientOperands, "")
	}
	if !values.IsEmpty() {
		return 0, operandErr(ErrTooManyOperands, "")
	}
	return result, nil
}

// apply pops the symbol's arity worth of values, restores their original
// left-to-right order and pushes the operation's result.
func apply(values *stack.Stack[float64], sym symbol.Callable) error {
	args := make([]float64, sym.NVar())
	for i := sym.NVar() - 1; i >= 0; i-- {
		v, err := values.Pop()
		if err != nil {
			return operandErr(ErrInsufficientOperands, sym.Token())
		}
		args[i] = v
	}
	result, err := sym.Call(args...)
	if err != nil {
		return operatorErr(err, sym.Token())
	}
	values.Push(result)
	return nil
}
