package expr

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

type node struct {
	token Token
	value *float64
	left  *node
	right *node
}

// Tree is a parsed expression, ready to evaluate.
type Tree struct {
	root *node
}

// Parse runs the full pipeline: tokenize, reorder to RPN, build the tree.
func Parse(expression string) (*Tree, error) {
	tokens, err := Tokenize(expression)
	if err != nil {
		return nil, err
	}

	rpn, err := ToRPN(tokens)
	if err != nil {
		return nil, err
	}

	return FromRPN(rpn)
}

// FromRPN builds an expression tree from tokens in reverse Polish notation.
// Operators take two operands off the stack; a lone operand under a binary
// operator leaves the left child empty, which is how unary minus parses.
func FromRPN(rpn []Token) (*Tree, error) {
	var stack []*node

	pop := func() *node {
		if len(stack) == 0 {
			return nil
		}
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		return n
	}

	for _, token := range rpn {
		switch token.Type {
		case Numeric:
			n, err := newLeaf(token)
			if err != nil {
				return nil, err
			}
			stack = append(stack, n)
		case Operator:
			right := pop()
			if right == nil {
				return nil, fmt.Errorf("operator %q is missing an operand", token.Text)
			}
			left := pop()
			stack = append(stack, &node{token: token, left: left, right: right})
		case Functional:
			right := pop()
			if right == nil {
				return nil, fmt.Errorf("function %q is missing an argument", token.Text)
			}
			stack = append(stack, &node{token: token, right: right})
		}
	}

	if len(stack) == 0 {
		return nil, fmt.Errorf("empty expression")
	}
	if len(stack) > 1 {
		return nil, fmt.Errorf("malformed expression: %d values left unconsumed", len(stack))
	}

	return &Tree{root: stack[0]}, nil
}

func newLeaf(token Token) (*node, error) {
	if v, err := strconv.ParseFloat(token.Text, 64); err == nil {
		return &node{token: token, value: &v}, nil
	}
	if v, ok := constantValue(token.Text); ok {
		return &node{token: token, value: &v}, nil
	}
	return nil, fmt.Errorf("invalid number %q", token.Text)
}

func constantValue(name string) (float64, bool) {
	switch name {
	case "pi":
		return math.Pi, true
	case "e":
		return math.E, true
	}
	return 0, false
}

// Eval computes the tree's value.
func (t *Tree) Eval() (float64, error) {
	if t.root == nil {
		return 0, fmt.Errorf("empty expression")
	}
	return evalNode(t.root)
}

func evalNode(n *node) (float64, error) {
	if n.value != nil {
		return *n.value, nil
	}

	right, err := evalNode(n.right)
	if err != nil {
		return 0, err
	}

	// An operator node without a left child acts as a unary prefix,
	// covering expressions like "-5" or "-(2+3)".
	if n.token.Type == Functional || n.left == nil {
		return evalUnary(n.token.Text, right)
	}

	left, err := evalNode(n.left)
	if err != nil {
		return 0, err
	}
	return evalBinary(n.token.Text, left, right)
}

func evalUnary(operator string, value float64) (float64, error) {
	switch operator {
	case "-", "neg":
		return -value, nil
	case "ln":
		return math.Log(value), nil
	case "lg":
		return math.Log2(value), nil
	case "log":
		return math.Log10(value), nil
	case "sin":
		return math.Sin(value), nil
	case "cos":
		return math.Cos(value), nil
	case "tan":
		return math.Tan(value), nil
	case "csc":
		return 1 / math.Sin(value), nil
	case "sec":
		return 1 / math.Cos(value), nil
	case "cot":
		return 1 / math.Tan(value), nil
	case "sgn":
		return signum(value), nil
	}
	return 0, fmt.Errorf("unknown function %q", operator)
}

func evalBinary(operator string, lhs, rhs float64) (float64, error) {
	switch operator {
	case "+":
		return lhs + rhs, nil
	case "-":
		return lhs - rhs, nil
	case "*":
		return lhs * rhs, nil
	case "/":
		return lhs / rhs, nil
	case "%":
		return math.Mod(lhs, rhs), nil
	case "^":
		return math.Pow(lhs, rhs), nil
	}
	return 0, fmt.Errorf("unknown operator %q", operator)
}

func signum(v float64) float64 {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return v
}

// String renders the tree as a fully parenthesized infix expression.
// Leaves print their resolved value, so constants appear numerically.
func (t *Tree) String() string {
	if t.root == nil {
		return ""
	}
	var b strings.Builder
	writeNode(&b, t.root)
	return b.String()
}

func writeNode(b *strings.Builder, n *node) {
	if n.value != nil {
		b.WriteString(FormatResult(*n.value))
		return
	}

	b.WriteString("(")
	if n.left != nil {
		writeNode(b, n.left)
		b.WriteString(" ")
	}
	b.WriteString(n.token.Text)
	b.WriteString(" ")
	writeNode(b, n.right)
	b.WriteString(")")
}

// FormatResult renders a value the way results are printed: shortest
// representation that round-trips.
func FormatResult(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
