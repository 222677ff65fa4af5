package calc

import (
	"errors"
	"strconv"
	"strings"
)

var ErrStack = errors.New("stack underflow")

// Value is an operand on the machine stack. Values are only computed when
// forced, so an instruction can combine operands without evaluating them.
type Value func() (int, error)

// Machine runs a Program.
type Machine struct {
	stack []Value
}

func (m *Machine) Push(v Value) {
	m.stack = append(m.stack, v)
}

func (m *Machine) Pop() (Value, error) {
	if len(m.stack) == 0 {
		return nil, ErrStack
	}
	v := m.stack[len(m.stack)-1]
	m.stack = m.stack[:len(m.stack)-1]
	return v, nil
}

// Instruction is one step of a Program. Execute returns the instruction to
// run next, nil at the end of the program.
type Instruction interface {
	Execute(*Machine) (Instruction, error)
	Next() Instruction
	SetNext(Instruction)
	String() string
}

type link struct {
	next Instruction
}

func (k *link) Next() Instruction {
	return k.next
}

func (k *link) SetNext(in Instruction) {
	if k.next == nil {
		k.next = in
		return
	}
	k.next.SetNext(in)
}

type NumberInstruction struct {
	link
	Value int
}

func (it *NumberInstruction) Execute(m *Machine) (Instruction, error) {
	v := it.Value
	m.Push(func() (int, error) {
		return v, nil
	})
	return it.next, nil
}

func (it *NumberInstruction) String() string {
	return strconv.Itoa(it.Value)
}

type UnaryInstruction struct {
	link
	Op string
}

func (it *UnaryInstruction) Execute(m *Machine) (Instruction, error) {
	right, err := m.Pop()
	if err != nil {
		return nil, err
	}
	op := it.Op
	m.Push(func() (int, error) {
		v, err := right()
		if err != nil {
			return 0, err
		}
		return applyUnary(op, v)
	})
	return it.next, nil
}

func (it *UnaryInstruction) String() string {
	switch it.Op {
	case "-":
		return "neg"
	case "!":
		return "not"
	default:
		return it.Op
	}
}

type BinaryInstruction struct {
	link
	Op string
}

func (it *BinaryInstruction) Execute(m *Machine) (Instruction, error) {
	second, err := m.Pop()
	if err != nil {
		return nil, err
	}
	first, err := m.Pop()
	if err != nil {
		return nil, err
	}
	op := it.Op
	m.Push(func() (int, error) {
		left, err := first()
		if err != nil {
			return 0, err
		}
		right, err := second()
		if err != nil {
			return 0, err
		}
		return applyBinary(op, left, right)
	})
	return it.next, nil
}

func (it *BinaryInstruction) String() string {
	return it.Op
}

// Program is a tree flattened into postfix order.
type Program struct {
	head Instruction
}

// Compile flattens n: operands first, then the operator combining them.
func Compile(n *Node) *Program {
	return &Program{head: compile(n)}
}

func compile(n *Node) Instruction {
	switch n.Kind {
	case Unary:
		in := compile(n.Right)
		in.SetNext(&UnaryInstruction{Op: n.Op})
		return in
	case Binary:
		in := compile(n.Left)
		in.SetNext(compile(n.Right))
		in.SetNext(&BinaryInstruction{Op: n.Op})
		return in
	default:
		return &NumberInstruction{Value: n.Value}
	}
}

// Defer runs the program and returns its result unevaluated. Errors of the
// operators themselves, such as a division by zero, only show when the value
// is forced.
func (p *Program) Defer() (Value, error) {
	var (
		m   Machine
		in  = p.head
		err error
	)
	for in != nil {
		if in, err = in.Execute(&m); err != nil {
			return nil, err
		}
	}
	v, err := m.Pop()
	if err != nil {
		return nil, err
	}
	if len(m.stack) != 0 {
		return nil, errors.New("values left on the stack")
	}
	return v, nil
}

func (p *Program) Run() (int, error) {
	v, err := p.Defer()
	if err != nil {
		return 0, err
	}
	return v()
}

// String lists the instructions, comma separated.
func (p *Program) String() string {
	var list []string
	for in := p.head; in != nil; in = in.Next() {
		list = append(list, in.String())
	}
	return strings.Join(list, ",")
}
