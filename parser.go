package climb

// Parser is the matcher contract. Emit runs in construct mode and returns the
// value recognized at the cursor. Check runs in validate mode: it makes the
// same decisions and moves the cursor the same way, but never builds a value.
//
// On failure the cursor position is unspecified; callers that want to try
// something else rewind to a checkpoint saved beforehand.
type Parser[T, O any] interface {
	Emit(*Cursor[T]) (O, error)
	Check(*Cursor[T]) error
}

// Func turns a function into a Parser. Its Check simply drops the value.
type Func[T, O any] func(*Cursor[T]) (O, error)

func (f Func[T, O]) Emit(c *Cursor[T]) (O, error) {
	return f(c)
}

func (f Func[T, O]) Check(c *Cursor[T]) error {
	_, err := f(c)
	return err
}

// Parse runs p in construct mode over items. Trailing input is not an error,
// wrap p with Full for that.
func Parse[T, O any](p Parser[T, O], items []T) (O, error) {
	return p.Emit(NewCursor(items))
}

// Validate runs p in validate mode over items and reports how many items it
// consumed, also when it fails.
func Validate[T, O any](p Parser[T, O], items []T) (int, error) {
	c := NewCursor(items)
	err := p.Check(c)
	return c.Offset(), err
}

// Satisfy matches one item accepted by pred. what names the item in errors.
func Satisfy[T any](what string, pred func(T) bool) Parser[T, T] {
	return Func[T, T](func(c *Cursor[T]) (T, error) {
		item, ok := c.Peek()
		if !ok || !pred(item) {
			var zero T
			return zero, Expected(c, what)
		}
		c.Next()
		return item, nil
	})
}

// Just matches exactly want.
func Just[T comparable](what string, want T) Parser[T, T] {
	return Satisfy(what, func(item T) bool {
		return item == want
	})
}

type choice[T, O any] struct {
	list []Parser[T, O]
}

// Choice tries each parser in order from the same position and returns the
// first success. If several alternatives could match, the order given here
// decides.
func Choice[T, O any](ps ...Parser[T, O]) Parser[T, O] {
	if len(ps) == 1 {
		return ps[0]
	}
	return choice[T, O]{list: ps}
}

func (ch choice[T, O]) Emit(c *Cursor[T]) (O, error) {
	var (
		cp  = c.Save()
		err error
	)
	for _, p := range ch.list {
		v, e := p.Emit(c)
		if e == nil {
			return v, nil
		}
		err = furthest(err, e)
		c.Rewind(cp)
	}
	var zero O
	return zero, ch.fail(c, err)
}

func (ch choice[T, O]) Check(c *Cursor[T]) error {
	var (
		cp  = c.Save()
		err error
	)
	for _, p := range ch.list {
		e := p.Check(c)
		if e == nil {
			return nil
		}
		err = furthest(err, e)
		c.Rewind(cp)
	}
	return ch.fail(c, err)
}

func (ch choice[T, O]) fail(c *Cursor[T], err error) error {
	if err == nil {
		return Expected(c)
	}
	return err
}

type mapped[T, A, B any] struct {
	p Parser[T, A]
	f func(A) B
}

// Map transforms the value of p with f. f is not called in validate mode.
func Map[T, A, B any](p Parser[T, A], f func(A) B) Parser[T, B] {
	return mapped[T, A, B]{p: p, f: f}
}

func (m mapped[T, A, B]) Emit(c *Cursor[T]) (B, error) {
	v, err := m.p.Emit(c)
	if err != nil {
		var zero B
		return zero, err
	}
	return m.f(v), nil
}

func (m mapped[T, A, B]) Check(c *Cursor[T]) error {
	return m.p.Check(c)
}

type delimited[T, L, O, R any] struct {
	open  Parser[T, L]
	body  Parser[T, O]
	close Parser[T, R]
}

// Delimited matches open, body and close in sequence and keeps the value of
// body only.
func Delimited[T, L, O, R any](open Parser[T, L], body Parser[T, O], close Parser[T, R]) Parser[T, O] {
	return delimited[T, L, O, R]{open: open, body: body, close: close}
}

func (d delimited[T, L, O, R]) Emit(c *Cursor[T]) (O, error) {
	var zero O
	if err := d.open.Check(c); err != nil {
		return zero, err
	}
	v, err := d.body.Emit(c)
	if err != nil {
		return zero, err
	}
	if err := d.close.Check(c); err != nil {
		return zero, err
	}
	return v, nil
}

func (d delimited[T, L, O, R]) Check(c *Cursor[T]) error {
	if err := d.open.Check(c); err != nil {
		return err
	}
	if err := d.body.Check(c); err != nil {
		return err
	}
	return d.close.Check(c)
}

// Then matches first and then second, keeping the value of second.
func Then[T, A, O any](first Parser[T, A], second Parser[T, O]) Parser[T, O] {
	return Delimited[T, A, O, struct{}](first, second, nothing[T]{})
}

// Before matches first and then second, keeping the value of first.
func Before[T, O, B any](first Parser[T, O], second Parser[T, B]) Parser[T, O] {
	return Delimited[T, struct{}, O, B](nothing[T]{}, first, second)
}

type nothing[T any] struct{}

func (nothing[T]) Emit(*Cursor[T]) (struct{}, error) { return struct{}{}, nil }
func (nothing[T]) Check(*Cursor[T]) error            { return nil }

type end[T any] struct{}

// End succeeds only when the input is exhausted.
func End[T any]() Parser[T, struct{}] {
	return end[T]{}
}

func (e end[T]) Emit(c *Cursor[T]) (struct{}, error) {
	return struct{}{}, e.Check(c)
}

func (end[T]) Check(c *Cursor[T]) error {
	if !c.AtEnd() {
		return Expected(c, EndOfInput)
	}
	return nil
}

// Full requires p to consume the whole input.
func Full[T, O any](p Parser[T, O]) Parser[T, O] {
	return Before(p, End[T]())
}

// Ref is a parser defined after it is first referenced, so a grammar can
// refer to itself (a parenthesised expression inside an expression).
type Ref[T, O any] struct {
	p Parser[T, O]
}

func (r *Ref[T, O]) Define(p Parser[T, O]) {
	r.p = p
}

func (r *Ref[T, O]) Emit(c *Cursor[T]) (O, error) {
	if r.p == nil {
		panic("climb: parser referenced before being defined")
	}
	return r.p.Emit(c)
}

func (r *Ref[T, O]) Check(c *Cursor[T]) error {
	if r.p == nil {
		panic("climb: parser referenced before being defined")
	}
	return r.p.Check(c)
}

type separated[T, O, S any] struct {
	item Parser[T, O]
	sep  Parser[T, S]
}

// SeparatedBy matches one or more item separated by sep. A separator that is
// not followed by an item is left unconsumed.
func SeparatedBy[T, O, S any](item Parser[T, O], sep Parser[T, S]) Parser[T, []O] {
	return separated[T, O, S]{item: item, sep: sep}
}

func (s separated[T, O, S]) Emit(c *Cursor[T]) ([]O, error) {
	first, err := s.item.Emit(c)
	if err != nil {
		return nil, err
	}
	list := []O{first}
	for {
		cp := c.Save()
		if err := s.sep.Check(c); err != nil {
			c.Rewind(cp)
			return list, nil
		}
		v, err := s.item.Emit(c)
		if err != nil {
			c.Rewind(cp)
			return list, nil
		}
		list = append(list, v)
	}
}

func (s separated[T, O, S]) Check(c *Cursor[T]) error {
	if err := s.item.Check(c); err != nil {
		return err
	}
	for {
		cp := c.Save()
		if err := s.sep.Check(c); err != nil {
			c.Rewind(cp)
			return nil
		}
		if err := s.item.Check(c); err != nil {
			c.Rewind(cp)
			return nil
		}
	}
}
