package mathparse

import (
	"fmt"
	"regexp"
	"strconv"

	"github.com/calcyard/mathcalc/internal/symbol"
)

// MaxFunctionVars is the highest arity a user-defined function can declare;
// placeholders are named x_1 through x_9.
const MaxFunctionVars = 9

var placeholderPattern = regexp.MustCompile(`^x_[1-9]$`)

// DefineFunction parses expression against a scratch registry extended with
// nVar placeholder constants x_1..x_nVar, captures the resulting postfix
// template by copy, and registers a function that substitutes its arguments
// for the placeholders and evaluates the template against this registry.
//
// Every template token that is neither recognized here nor numeric must be a
// placeholder with index <= nVar, otherwise ErrUnknownVariable is returned.
func (e *Evaluator) DefineFunction(name string, nVar int, expression string) (*symbol.Function, error) {
	if nVar < 1 || nVar > MaxFunctionVars {
		return nil, fmt.Errorf("%w: function %q must take between 1 and %d variables",
			symbol.ErrInvalidSymbol, name, MaxFunctionVars)
	}
	if e.Has(name) {
		return nil, operatorErr(ErrDuplicateSymbol, name)
	}

	// all nine placeholders parse; indexes above nVar are caught below, so
	// the offending token reports as an unknown variable, not a raw char
	scratch := New()
	scratch.Adopt(e)
	for i := 1; i <= MaxFunctionVars; i++ {
		if token := fmt.Sprintf("x_%d", i); !scratch.Has(token) {
			placeholder, err := symbol.NewConstant(token, 0)
			if err != nil {
				return nil, err
			}
			if err := scratch.AddConstant(placeholder); err != nil {
				return nil, err
			}
		}
	}

	template, err := scratch.Parse(expression)
	if err != nil {
		return nil, err
	}
	for _, token := range template {
		if e.Has(token) || isNumeric(token) {
			continue
		}
		if !placeholderPattern.MatchString(token) || placeholderIndex(token) > nVar {
			return nil, operandErr(ErrUnknownVariable, token)
		}
	}

	// placeholder positions are fixed here, so symbols registered after the
	// definition cannot change what a captured template substitutes
	captured := append([]string(nil), template...)
	argIndex := make([]int, len(captured))
	for i, token := range captured {
		if placeholderPattern.MatchString(token) && !e.Has(token) {
			argIndex[i] = placeholderIndex(token)
		}
	}
	fn, err := symbol.NewFunction(name, func(args ...float64) (float64, error) {
		bound := make([]string, len(captured))
		for i, token := range captured {
			if n := argIndex[i]; n > 0 {
				bound[i] = strconv.FormatFloat(args[n-1], 'g', -1, 64)
			} else {
				bound[i] = token
			}
		}
		return e.EvaluatePostfix(bound)
	}, nVar)
	if err != nil {
		return nil, err
	}
	if err := e.AddFunction(fn); err != nil {
		return nil, err
	}
	return fn, nil
}

func placeholderIndex(token string) int {
	return int(token[len(token)-1] - '0')
}
