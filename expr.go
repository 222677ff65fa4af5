package climb

// Expr parses atoms joined by infix operators, resolving precedence and
// associativity by precedence climbing. It implements Parser itself and can
// therefore serve as the atom of another grammar, or of itself through a Ref.
//
// An Expr is immutable and safe for concurrent use by independent parses.
type Expr[T, O any] struct {
	atom  Parser[T, O]
	infix Parser[T, InfixOp[O]]
}

// Climb builds the engine from the atom matcher and the infix operator
// table. Operators are tried in the order given.
func Climb[T, O any](atom Parser[T, O], ops ...Parser[T, InfixOp[O]]) *Expr[T, O] {
	return &Expr[T, O]{
		atom:  atom,
		infix: Choice(ops...),
	}
}

// WithPrefix returns an engine that also accepts prefix operators in front of
// every operand. e itself is left unchanged.
func (e *Expr[T, O]) WithPrefix(ops ...Parser[T, PrefixOp[O]]) *PrefixExpr[T, O] {
	return &PrefixExpr[T, O]{
		base:   *e,
		prefix: Choice(ops...),
	}
}

func (e *Expr[T, O]) Emit(c *Cursor[T]) (O, error) {
	return climb[emit[T, O]](e, c, None)
}

func (e *Expr[T, O]) Check(c *Cursor[T]) error {
	_, err := climb[check[T, O]](e, c, None)
	return err
}

// PrefixExpr is an Expr with a prefix operator table. All its prefix
// operators are given to WithPrefix at once.
type PrefixExpr[T, O any] struct {
	base   Expr[T, O]
	prefix Parser[T, PrefixOp[O]]
}

func (e *PrefixExpr[T, O]) Emit(c *Cursor[T]) (O, error) {
	return climbPrefix[emit[T, O]](e, c, None)
}

func (e *PrefixExpr[T, O]) Check(c *Cursor[T]) error {
	_, err := climbPrefix[check[T, O]](e, c, None)
	return err
}

func climb[M mode[T, O], T, O any](e *Expr[T, O], c *Cursor[T], threshold Strength) (O, error) {
	var m M
	left, err := m.operand(e.atom, c)
	if err != nil {
		return left, err
	}
	return fold[M](e.infix, c, left, threshold, func(s Strength) (O, error) {
		return climb[M](e, c, s)
	})
}

func climbPrefix[M mode[T, O], T, O any](e *PrefixExpr[T, O], c *Cursor[T], threshold Strength) (O, error) {
	var (
		m    M
		left O
		cp   = c.Save()
	)
	if op, err := e.prefix.Emit(c); err == nil {
		operand, err := climbPrefix[M](e, c, op.Right)
		if err != nil {
			return operand, err
		}
		left = m.prefix(op, operand)
	} else {
		c.Rewind(cp)
		if left, err = m.operand(e.base.atom, c); err != nil {
			return left, err
		}
	}
	return fold[M](e.base.infix, c, left, threshold, func(s Strength) (O, error) {
		return climbPrefix[M](e, c, s)
	})
}

// fold is the infix loop shared by both variants. It stops cleanly when no
// operator follows or when the operator binds looser than threshold; once an
// operator is consumed its right operand is mandatory.
func fold[M mode[T, O], T, O any](ops Parser[T, InfixOp[O]], c *Cursor[T], left O, threshold Strength, right func(Strength) (O, error)) (O, error) {
	var m M
	for {
		cp := c.Save()
		op, err := ops.Emit(c)
		if err != nil {
			c.Rewind(cp)
			return left, nil
		}
		if op.Left.Less(threshold) {
			c.Rewind(cp)
			return left, nil
		}
		rhs, err := right(op.Right)
		if err != nil {
			return rhs, err
		}
		left = m.infix(op, left, rhs)
	}
}
