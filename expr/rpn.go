package expr

import (
	"fmt"
	"io"
)

// ToRPN reorders infix tokens into reverse Polish notation with the
// shunting-yard algorithm.
func ToRPN(tokens []Token) ([]Token, error) {
	return toRPN(tokens, nil)
}

// ToRPNTrace is ToRPN with the output queue and operator stack written to w
// after every consumed token.
func ToRPNTrace(tokens []Token, w io.Writer) ([]Token, error) {
	return toRPN(tokens, w)
}

func toRPN(tokens []Token, trace io.Writer) ([]Token, error) {
	var output []Token
	var stack []Token

	for _, token := range tokens {
		switch token.Type {
		case Numeric:
			output = append(output, token)
		case Functional:
			stack = append(stack, token)
		case Operator:
			for len(stack) > 0 {
				top := stack[len(stack)-1]
				// a named function binds tighter than any operator;
				// unary minus competes on precedence like an operator
				if top.Type == Functional && top.Text != "-" {
					output = append(output, top)
					stack = stack[:len(stack)-1]
					continue
				}
				if top.Type != Operator && top.Type != Functional {
					break
				}
				if operatorAssoc(token.Text) == leftAssoc && token.Prec <= top.Prec ||
					token.Prec < top.Prec {
					output = append(output, top)
					stack = stack[:len(stack)-1]
					continue
				}
				break
			}
			stack = append(stack, token)
		case LeftParen:
			stack = append(stack, token)
		case RightParen:
			matched := false
			for len(stack) > 0 {
				top := stack[len(stack)-1]
				stack = stack[:len(stack)-1]
				if top.Type == LeftParen {
					matched = true
					break
				}
				output = append(output, top)
			}
			if !matched {
				return nil, fmt.Errorf("mismatched parentheses")
			}
			// a function call ends with its closing parenthesis; negation
			// stays on the stack so a following ^ still binds tighter
			if len(stack) > 0 && stack[len(stack)-1].Type == Functional &&
				stack[len(stack)-1].Text != "-" {
				output = append(output, stack[len(stack)-1])
				stack = stack[:len(stack)-1]
			}
		}

		traceStep(trace, output, stack)
	}

	for len(stack) > 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if top.Type == LeftParen || top.Type == RightParen {
			return nil, fmt.Errorf("mismatched parentheses")
		}
		output = append(output, top)
		traceStep(trace, output, stack)
	}

	return output, nil
}
