// Package calc is an integer calculator built on the climb expression engine.
package calc

import (
	"errors"
	"fmt"
	"strconv"
)

var (
	ErrDivisionByZero = errors.New("division by zero")
	ErrNegativePower  = errors.New("negative exponent")
	ErrOperator       = errors.New("unknown operator")
)

type Kind int

const (
	Number Kind = iota
	Unary
	Binary
)

// Node is an expression tree. Left is unused by unary nodes, both operands
// are unused by numbers.
type Node struct {
	Kind  Kind
	Op    string
	Value int
	Left  *Node
	Right *Node
}

func number(v int) *Node {
	return &Node{Kind: Number, Value: v}
}

func unary(op string) func(*Node) *Node {
	return func(right *Node) *Node {
		return &Node{Kind: Unary, Op: op, Right: right}
	}
}

func binary(op string) func(*Node, *Node) *Node {
	return func(left, right *Node) *Node {
		return &Node{Kind: Binary, Op: op, Left: left, Right: right}
	}
}

// String prints n fully parenthesised.
func (n *Node) String() string {
	switch n.Kind {
	case Unary:
		return "(" + n.Op + n.Right.String() + ")"
	case Binary:
		return "(" + n.Left.String() + " " + n.Op + " " + n.Right.String() + ")"
	default:
		return strconv.Itoa(n.Value)
	}
}

// Eval computes n by walking the tree.
func (n *Node) Eval() (int, error) {
	switch n.Kind {
	case Unary:
		v, err := n.Right.Eval()
		if err != nil {
			return 0, err
		}
		return applyUnary(n.Op, v)
	case Binary:
		left, err := n.Left.Eval()
		if err != nil {
			return 0, err
		}
		right, err := n.Right.Eval()
		if err != nil {
			return 0, err
		}
		return applyBinary(n.Op, left, right)
	default:
		return n.Value, nil
	}
}

func applyUnary(op string, v int) (int, error) {
	switch op {
	case "-":
		return -v, nil
	case "!":
		if v == 0 {
			return 1, nil
		}
		return 0, nil
	}
	return 0, fmt.Errorf("%w: %s", ErrOperator, op)
}

func applyBinary(op string, left, right int) (int, error) {
	switch op {
	case "+":
		return left + right, nil
	case "-":
		return left - right, nil
	case "*":
		return left * right, nil
	case "/":
		if right == 0 {
			return 0, ErrDivisionByZero
		}
		return left / right, nil
	case "%":
		if right == 0 {
			return 0, ErrDivisionByZero
		}
		return left % right, nil
	case "^":
		if right < 0 {
			return 0, ErrNegativePower
		}
		return power(left, right), nil
	}
	return 0, fmt.Errorf("%w: %s", ErrOperator, op)
}

// power squares its way through the bits of exp. Like the other operators it
// wraps on overflow.
func power(base, exp int) int {
	res := 1
	for exp > 0 {
		if exp&1 == 1 {
			res *= base
		}
		base *= base
		exp >>= 1
	}
	return res
}
