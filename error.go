package climb

import (
	"errors"
	"strconv"
	"strings"
)

const EndOfInput = "end of input"

// ParseError reports what a leaf matcher wanted at Offset and what it found
// there instead.
type ParseError struct {
	Offset   int
	Expected []string
	Found    string
}

func (e *ParseError) Error() string {
	var b strings.Builder
	b.WriteString("at ")
	b.WriteString(strconv.Itoa(e.Offset))
	b.WriteString(": expected ")
	if len(e.Expected) == 0 {
		b.WriteString("something else")
	} else {
		b.WriteString(strings.Join(e.Expected, " or "))
	}
	b.WriteString(", found ")
	b.WriteString(e.Found)
	return b.String()
}

// Expected builds the failure of a matcher that did not find what at the
// current position of c. The cursor is left where it is.
func Expected[T any](c *Cursor[T], what ...string) *ParseError {
	found := EndOfInput
	if item, ok := c.Peek(); ok {
		found = describe(item)
	}
	return &ParseError{
		Offset:   c.Offset(),
		Expected: what,
		Found:    found,
	}
}

type describer interface {
	Describe() string
}

func describe(item any) string {
	switch v := item.(type) {
	case rune:
		return strconv.QuoteRune(v)
	case string:
		return strconv.Quote(v)
	case describer:
		return v.Describe()
	default:
		return "unexpected item"
	}
}

// furthest keeps the failure that got further into the input. Failures at the
// same offset have their expectations merged.
func furthest(prev, next error) error {
	if prev == nil {
		return next
	}
	var p, n *ParseError
	if !errors.As(prev, &p) || !errors.As(next, &n) {
		return prev
	}
	switch {
	case n.Offset > p.Offset:
		return next
	case n.Offset < p.Offset:
		return prev
	}
	merged := &ParseError{
		Offset:   p.Offset,
		Found:    p.Found,
		Expected: append([]string{}, p.Expected...),
	}
	for _, w := range n.Expected {
		if !contains(merged.Expected, w) {
			merged.Expected = append(merged.Expected, w)
		}
	}
	return merged
}

func contains(list []string, s string) bool {
	for _, x := range list {
		if x == s {
			return true
		}
	}
	return false
}
