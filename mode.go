package climb

// mode is how the climbing loop produces and combines values. The loop is
// instantiated once per mode, so choosing one costs nothing at run time.
type mode[T, O any] interface {
	operand(p Parser[T, O], c *Cursor[T]) (O, error)
	infix(op InfixOp[O], left, right O) O
	prefix(op PrefixOp[O], operand O) O
}

// emit builds values.
type emit[T, O any] struct{}

func (emit[T, O]) operand(p Parser[T, O], c *Cursor[T]) (O, error) {
	return p.Emit(c)
}

func (emit[T, O]) infix(op InfixOp[O], left, right O) O {
	return op.Build(left, right)
}

func (emit[T, O]) prefix(op PrefixOp[O], operand O) O {
	return op.Build(operand)
}

// check only validates: every value is the zero value of O.
type check[T, O any] struct{}

func (check[T, O]) operand(p Parser[T, O], c *Cursor[T]) (O, error) {
	var zero O
	return zero, p.Check(c)
}

func (check[T, O]) infix(InfixOp[O], O, O) O {
	var zero O
	return zero
}

func (check[T, O]) prefix(PrefixOp[O], O) O {
	var zero O
	return zero
}
