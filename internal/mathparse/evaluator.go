package mathparse

import (
	"sort"

	"github.com/calcyard/mathcalc/internal/symbol"
)

// Evaluator owns the symbol registry and implements parsing of infix
// expressions to postfix token sequences and evaluation of those sequences.
//
// Operator, function and constant tokens share one namespace: registering a
// token that exists in any of the three maps fails. An Evaluator is not safe
// for concurrent mutation; callers that mutate the registry from multiple
// goroutines must serialize access themselves.
type Evaluator struct {
	operators map[string]symbol.Operator
	functions map[string]*symbol.Function
	constants map[string]symbol.Constant
	implicit  *symbol.BinaryOperator
}

// New returns an Evaluator with an empty registry.
func New() *Evaluator {
	return &Evaluator{
		operators: make(map[string]symbol.Operator),
		functions: make(map[string]*symbol.Function),
		constants: make(map[string]symbol.Constant),
	}
}

// Has reports whether token is registered as an operator, function or
// constant.
func (e *Evaluator) Has(token string) bool {
	if _, ok := e.operators[token]; ok {
		return true
	}
	if _, ok := e.functions[token]; ok {
		return true
	}
	_, ok := e.constants[token]
	return ok
}

// AddOperator registers a unary or binary operator.
func (e *Evaluator) AddOperator(op symbol.Operator) error {
	if op == nil {
		return operatorErr(ErrUnknownSymbol, "")
	}
	if e.Has(op.Token()) {
		return operatorErr(ErrDuplicateSymbol, op.Token())
	}
	e.operators[op.Token()] = op
	return nil
}

// AddFunction registers an n-ary function.
func (e *Evaluator) AddFunction(fn *symbol.Function) error {
	if fn == nil {
		return operatorErr(ErrUnknownSymbol, "")
	}
	if e.Has(fn.Token()) {
		return operatorErr(ErrDuplicateSymbol, fn.Token())
	}
	e.functions[fn.Token()] = fn
	return nil
}

// AddConstant registers a constant.
func (e *Evaluator) AddConstant(c symbol.Constant) error {
	if e.Has(c.Token()) {
		return operatorErr(ErrDuplicateSymbol, c.Token())
	}
	e.constants[c.Token()] = c
	return nil
}

// SetImplicitOperation designates a registered binary operator as the
// operation implied between adjacent operand-like tokens, e.g. '2pi'.
func (e *Evaluator) SetImplicitOperation(token string) error {
	op, ok := e.operators[token]
	if !ok {
		return operatorErr(ErrUnknownSymbol, token)
	}
	bin, ok := op.(*symbol.BinaryOperator)
	if !ok {
		return operatorErr(ErrUnknownSymbol, token)
	}
	e.implicit = bin
	return nil
}

// ImplicitOperation reports the implicit operation token, if one is set.
func (e *Evaluator) ImplicitOperation() (string, bool) {
	if e.implicit == nil {
		return "", false
	}
	return e.implicit.Token(), true
}

// Operators returns a snapshot of the operator map. Symbols are immutable,
// so sharing them through the copied map cannot mutate registry state.
func (e *Evaluator) Operators() map[string]symbol.Operator {
	snapshot := make(map[string]symbol.Operator, len(e.operators))
	for token, op := range e.operators {
		snapshot[token] = op
	}
	return snapshot
}

// Functions returns a snapshot of the function map.
func (e *Evaluator) Functions() map[string]*symbol.Function {
	snapshot := make(map[string]*symbol.Function, len(e.functions))
	for token, fn := range e.functions {
		snapshot[token] = fn
	}
	return snapshot
}

// Constants returns a snapshot of the constant map.
func (e *Evaluator) Constants() map[string]symbol.Constant {
	snapshot := make(map[string]symbol.Constant, len(e.constants))
	for token, c := range e.constants {
		snapshot[token] = c
	}
	return snapshot
}

// Adopt copies every symbol of other that is not already registered here.
// Tokens already present are skipped, preserving uniqueness.
func (e *Evaluator) Adopt(other *Evaluator) {
	for token, op := range other.operators {
		if !e.Has(token) {
			e.operators[token] = op
		}
	}
	for token, fn := range other.functions {
		if !e.Has(token) {
			e.functions[token] = fn
		}
	}
	for token, c := range other.constants {
		if !e.Has(token) {
			e.constants[token] = c
		}
	}
	if e.implicit == nil {
		e.implicit = other.implicit
	}
}

// tokens returns every registered token, longest first, so that isolating a
// token during tokenizing cannot split a longer token that contains it.
func (e *Evaluator) tokens() []string {
	all := make([]string, 0, len(e.operators)+len(e.functions)+len(e.constants))
	for token := range e.operators {
		all = append(all, token)
	}
	for token := range e.functions {
		all = append(all, token)
	}
	for token := range e.constants {
		all = append(all, token)
	}
	sort.Slice(all, func(i, j int) bool {
		if len(all[i]) != len(all[j]) {
			return len(all[i]) > len(all[j])
		}
		return all[i] < all[j]
	})
	return all
}
