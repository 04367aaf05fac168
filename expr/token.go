package expr

import (
	"fmt"
	"strings"
)

// TokenType classifies a lexed token.
type TokenType int

const (
	Numeric TokenType = iota
	Functional
	Operator
	LeftParen
	RightParen
	Invalid
)

// Token is a lexed piece of an expression. Prec is only meaningful for
// operator and negation tokens.
type Token struct {
	Type TokenType
	Text string
	Prec int
}

type assoc int

const (
	leftAssoc assoc = iota
	rightAssoc
)

const (
	numericChars  = "0123456789."
	alphaChars    = "abcdefghijklmnopqrstuvwxyz"
	operatorChars = "+-*/%^"
)

func typeOfChar(c byte) TokenType {
	switch {
	case strings.IndexByte(numericChars, c) >= 0:
		return Numeric
	case strings.IndexByte(alphaChars, c) >= 0:
		return Functional
	case strings.IndexByte(operatorChars, c) >= 0:
		return Operator
	case c == '(':
		return LeftParen
	case c == ')':
		return RightParen
	default:
		return Invalid
	}
}

func operatorPrecedence(operator string) int {
	switch operator {
	case "^":
		return 4
	case "*", "/", "%":
		return 3
	case "+", "-":
		return 2
	default:
		return 1
	}
}

func operatorAssoc(operator string) assoc {
	if operator == "^" {
		return rightAssoc
	}
	return leftAssoc
}

// minusIsUnary reports whether a minus at the current position negates its
// operand instead of subtracting: at the start of the expression, or right
// after an operator, a function, or an opening parenthesis.
func minusIsUnary(tokens []Token) bool {
	if len(tokens) == 0 {
		return true
	}
	switch tokens[len(tokens)-1].Type {
	case Operator, Functional, LeftParen:
		return true
	}
	return false
}

// Tokenize splits an infix expression into tokens. Numeric literals and
// identifiers are accumulated greedily; identifiers naming a constant
// (pi, e) come back as Numeric, everything else alphabetical as Functional.
// A minus with no left operand is a Functional negation token, so "3*-2"
// and "5 - -2" parse the way a reader expects. Whitespace is skipped, any
// other character is an error.
func Tokenize(expression string) ([]Token, error) {
	var tokens []Token

	for i := 0; i < len(expression); i++ {
		c := expression[i]

		switch typeOfChar(c) {
		case Operator:
			if c == '-' && minusIsUnary(tokens) {
				// negation binds like multiplication, looser than ^
				tokens = append(tokens, Token{Type: Functional, Text: "-", Prec: 3})
				continue
			}
			op := string(c)
			tokens = append(tokens, Token{Type: Operator, Text: op, Prec: operatorPrecedence(op)})
		case Numeric:
			j := i + 1
			for j < len(expression) && typeOfChar(expression[j]) == Numeric {
				j++
			}
			tokens = append(tokens, Token{Type: Numeric, Text: expression[i:j]})
			i = j - 1
		case Functional:
			j := i + 1
			for j < len(expression) && typeOfChar(expression[j]) == Functional {
				j++
			}
			word := expression[i:j]
			ttype := Functional
			if _, ok := constantValue(word); ok {
				ttype = Numeric
			}
			tokens = append(tokens, Token{Type: ttype, Text: word})
			i = j - 1
		case LeftParen:
			tokens = append(tokens, Token{Type: LeftParen, Text: "("})
		case RightParen:
			tokens = append(tokens, Token{Type: RightParen, Text: ")"})
		default:
			if c == ' ' || c == '\t' {
				continue
			}
			return nil, fmt.Errorf("invalid character %q in expression", c)
		}
	}

	return tokens, nil
}
