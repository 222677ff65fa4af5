package climb

// InfixOp is what an infix operator matcher yields: where the operator binds
// and how it combines its operands.
type InfixOp[O any] struct {
	Precedence
	Build func(left, right O) O
}

// PrefixOp is what a prefix operator matcher yields.
type PrefixOp[O any] struct {
	Precedence
	Build func(operand O) O
}

type infix[T, A, O any] struct {
	match Parser[T, A]
	op    InfixOp[O]
}

// LeftInfix declares a left associative binary operator recognized by match.
// build must not depend on mutable state, the returned parser is shared by
// every parse using it.
func LeftInfix[T, A, O any](match Parser[T, A], level Level, build func(left, right O) O) Parser[T, InfixOp[O]] {
	return infix[T, A, O]{
		match: match,
		op:    InfixOp[O]{Precedence: LeftAssoc(level), Build: build},
	}
}

// RightInfix declares a right associative binary operator recognized by match.
func RightInfix[T, A, O any](match Parser[T, A], level Level, build func(left, right O) O) Parser[T, InfixOp[O]] {
	return infix[T, A, O]{
		match: match,
		op:    InfixOp[O]{Precedence: RightAssoc(level), Build: build},
	}
}

func (i infix[T, A, O]) Emit(c *Cursor[T]) (InfixOp[O], error) {
	if err := i.match.Check(c); err != nil {
		return InfixOp[O]{}, err
	}
	return i.op, nil
}

func (i infix[T, A, O]) Check(c *Cursor[T]) error {
	return i.match.Check(c)
}

type prefix[T, A, O any] struct {
	match Parser[T, A]
	op    PrefixOp[O]
}

// Prefix declares a unary operator written before its operand.
func Prefix[T, A, O any](match Parser[T, A], level Level, build func(operand O) O) Parser[T, PrefixOp[O]] {
	return prefix[T, A, O]{
		match: match,
		op:    PrefixOp[O]{Precedence: PrefixAssoc(level), Build: build},
	}
}

func (p prefix[T, A, O]) Emit(c *Cursor[T]) (PrefixOp[O], error) {
	if err := p.match.Check(c); err != nil {
		return PrefixOp[O]{}, err
	}
	return p.op, nil
}

func (p prefix[T, A, O]) Check(c *Cursor[T]) error {
	return p.match.Check(c)
}
