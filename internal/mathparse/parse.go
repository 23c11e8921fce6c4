package mathparse

import (
	"github.com/informitas/stack"

	"github.com/calcyard/mathcalc/internal/symbol"
)

// Parse converts an infix expression into a postfix (RPN) token sequence
// using the shunting-yard algorithm. The result is plain data: evaluating it
// twice against an unchanged registry yields the same value. Token matching
// is case-sensitive; callers that want case-insensitive input must normalize
// before calling. An empty expression parses to an empty sequence.
func (e *Evaluator) Parse(expr string) ([]string, error) {
	tokens := e.tokenize(expr)

	opStack := stack.NewStack[string]()
	output := make([]string, 0, len(tokens))

	for i, token := range tokens {
		switch {
		case isNumeric(token):
			output = append(output, token)

		case e.isConstant(token):
			e.pushImplicit(opStack, tokens, i)
			output = append(output, token)

		case e.isFunction(token):
			e.pushImplicit(opStack, tokens, i)
			opStack.Push(token)

		case e.isOperator(token):
			incoming := e.operators[token]
			if u, ok := incoming.(*symbol.UnaryOperator); ok && u.Associativity() == symbol.Left {
				// a postfix-style operator needs an operand on its left
				if !e.operandEndsAt(tokens, i-1) {
					return nil, operatorErr(ErrUnknownToken, token)
				}
			}
			for !opStack.IsEmpty() {
				top, _ := opStack.Top()
				topOp, ok := e.operators[top]
				if !ok || !shouldPop(incoming, topOp) {
					break
				}
				opStack.Pop()
				output = append(output, top)
			}
			opStack.Push(token)

		case token == ",":
			var err error
			output, err = popUntilParen(opStack, output, ",")
			if err != nil {
				return nil, err
			}

		case token == "(":
			opStack.Push(token)

		case token == ")":
			var err error
			output, err = popUntilParen(opStack, output, ")")
			if err != nil {
				return nil, err
			}
			opStack.Pop() // the matched "("
			if top, err := opStack.Top(); err == nil && e.isFunction(top) {
				opStack.Pop()
				output = append(output, top)
			}

		default:
			return nil, operatorErr(ErrUnknownToken, token)
		}
	}

	for !opStack.IsEmpty() {
		top, _ := opStack.Pop()
		if top == "(" {
			return nil, operandErr(ErrMismatchedParenthesis, "(")
		}
		output = append(output, top)
	}
	return output, nil
}

func (e *Evaluator) isOperator(token string) bool {
	_, ok := e.operators[token]
	return ok
}

func (e *Evaluator) isFunction(token string) bool {
	_, ok := e.functions[token]
	return ok
}

func (e *Evaluator) isConstant(token string) bool {
	_, ok := e.constants[token]
	return ok
}

// pushImplicit inserts the implicit operation when the previous token was a
// numeric literal, turning '2pi' into '2 pi *'.
func (e *Evaluator) pushImplicit(opStack *stack.Stack[string], tokens []string, i int) {
	if i > 0 && isNumeric(tokens[i-1]) && e.implicit != nil {
		opStack.Push(e.implicit.Token())
	}
}

// operandEndsAt reports whether the token at index i completes an operand:
// a numeric literal, a constant, a closing parenthesis, or a postfix unary
// operator already applied to one.
func (e *Evaluator) operandEndsAt(tokens []string, i int) bool {
	if i < 0 {
		return false
	}
	prev := tokens[i]
	if isNumeric(prev) || prev == ")" || e.isConstant(prev) {
		return true
	}
	if op, ok := e.operators[prev]; ok {
		if u, ok := op.(*symbol.UnaryOperator); ok && u.Associativity() == symbol.Left {
			return true
		}
	}
	return false
}

// popUntilParen moves stack entries to the output until an opening
// parenthesis is on top, failing if the stack empties first. The parenthesis
// itself is left on the stack.
func popUntilParen(opStack *stack.Stack[string], output []string, cause string) ([]string, error) {
	for {
		top, err := opStack.Top()
		if err != nil {
			return output, operandErr(ErrMismatchedParenthesis, cause)
		}
		if top == "(" {
			return output, nil
		}
		opStack.Pop()
		output = append(output, top)
	}
}

// shouldPop decides whether the operator on top of the stack resolves before
// the incoming one. Unary operators bind tighter than any binary comparison:
// a unary top is popped by a binary incoming and nothing else. Binary
// operators resolve by precedence, then by the associativity of the stack
// top under a tie.
func shouldPop(incoming, top symbol.Operator) bool {
	_, incomingUnary := incoming.(*symbol.UnaryOperator)
	_, topUnary := top.(*symbol.UnaryOperator)
	if incomingUnary || topUnary {
		return !incomingUnary && topUnary
	}

	in := incoming.(*symbol.BinaryOperator)
	tp := top.(*symbol.BinaryOperator)
	if tp.Precedence() > in.Precedence() {
		return true
	}
	if tp.Precedence() < in.Precedence() {
		return false
	}
	return tp.Associativity() == symbol.Left || tp.Associativity() == symbol.Both
}
