package climb

// Checkpoint is a saved cursor position.
type Checkpoint int

// Cursor walks a slice of items. It can be saved and rewound at no cost, so a
// matcher can try something and back out of it.
type Cursor[T any] struct {
	items []T
	pos   int
}

func NewCursor[T any](items []T) *Cursor[T] {
	return &Cursor[T]{items: items}
}

func (c *Cursor[T]) Save() Checkpoint {
	return Checkpoint(c.pos)
}

func (c *Cursor[T]) Rewind(cp Checkpoint) {
	c.pos = int(cp)
}

func (c *Cursor[T]) Offset() int {
	return c.pos
}

func (c *Cursor[T]) AtEnd() bool {
	return c.pos >= len(c.items)
}

func (c *Cursor[T]) Peek() (T, bool) {
	if c.AtEnd() {
		var zero T
		return zero, false
	}
	return c.items[c.pos], true
}

func (c *Cursor[T]) Next() (T, bool) {
	item, ok := c.Peek()
	if ok {
		c.pos++
	}
	return item, ok
}

// Rest returns the items not consumed yet.
func (c *Cursor[T]) Rest() []T {
	if c.AtEnd() {
		return nil
	}
	return c.items[c.pos:]
}

// Consumed returns the items read since offset from.
func (c *Cursor[T]) Consumed(from int) []T {
	if from < 0 || from > c.pos {
		return nil
	}
	return c.items[from:c.pos]
}

// Len is the total number of items, consumed or not.
func (c *Cursor[T]) Len() int {
	return len(c.items)
}
