package climb

import (
	"errors"
	"testing"
)

func letter(r rune) Parser[rune, rune] {
	return Just(string(r), r)
}

func TestCursor_SaveRewind(t *testing.T) {
	c := NewCursor([]rune("abc"))
	cp := c.Save()
	c.Next()
	c.Next()
	if c.Offset() != 2 {
		t.Fatalf("expected offset 2 got %d", c.Offset())
	}
	if got := string(c.Consumed(int(cp))); got != "ab" {
		t.Errorf("expected ab consumed got %s", got)
	}
	if got := string(c.Rest()); got != "c" {
		t.Errorf("expected c left got %s", got)
	}
	c.Rewind(cp)
	if r, ok := c.Peek(); !ok || r != 'a' {
		t.Errorf("expected a after rewind, got %q", r)
	}
	c.Rewind(Checkpoint(c.Len()))
	if !c.AtEnd() || c.Rest() != nil {
		t.Errorf("expected cursor at end")
	}
	if _, ok := c.Next(); ok {
		t.Errorf("expected nothing past the end")
	}
}

func TestChoice_Order(t *testing.T) {
	var (
		short = Map(letter('a'), func(rune) string { return "short" })
		long  = Map(Then(letter('a'), letter('b')), func(rune) string { return "long" })
	)
	for _, d := range []struct {
		Parser Parser[rune, string]
		Want   string
		Offset int
	}{
		{Parser: Choice(short, long), Want: "short", Offset: 1},
		{Parser: Choice(long, short), Want: "long", Offset: 2},
	} {
		c := NewCursor([]rune("ab"))
		got, err := d.Parser.Emit(c)
		if err != nil {
			t.Fatalf("unexpected error: %s", err)
		}
		if got != d.Want || c.Offset() != d.Offset {
			t.Errorf("expected %s at %d, got %s at %d", d.Want, d.Offset, got, c.Offset())
		}
	}
}

func TestChoice_Failure(t *testing.T) {
	p := Choice(
		Then(letter('a'), letter('b')),
		Then(letter('a'), letter('c')),
		letter('x'),
	)
	c := NewCursor([]rune("ad"))
	_, err := p.Emit(c)

	var perr *ParseError
	if !errors.As(err, &perr) {
		t.Fatalf("expected parse error got %v", err)
	}
	if perr.Offset != 1 {
		t.Errorf("expected furthest failure at 1 got %d", perr.Offset)
	}
	want := "at 1: expected b or c, found 'd'"
	if perr.Error() != want {
		t.Errorf("expected %q got %q", want, perr.Error())
	}
	if c.Offset() != 0 {
		t.Errorf("expected choice to rewind, cursor at %d", c.Offset())
	}
	if err := p.Check(NewCursor([]rune("ad"))); err == nil || err.Error() != want {
		t.Errorf("expected %q got %v", want, err)
	}
}

func TestEnd(t *testing.T) {
	p := Full(letter('a'))
	if _, err := Parse(p, []rune("a")); err != nil {
		t.Errorf("unexpected error: %s", err)
	}
	_, err := Parse(p, []rune("ab"))
	if err == nil || err.Error() != "at 1: expected end of input, found 'b'" {
		t.Errorf("unexpected error: %v", err)
	}
	n, err := Validate(p, []rune(""))
	if err == nil || err.Error() != "at 0: expected a, found end of input" {
		t.Errorf("unexpected error: %v", err)
	}
	if n != 0 {
		t.Errorf("expected nothing consumed, got %d", n)
	}
}

func TestRef_Undefined(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Errorf("expected undefined ref to panic")
		}
	}()
	var r Ref[rune, rune]
	r.Emit(NewCursor([]rune("a")))
}

func TestSeparatedBy(t *testing.T) {
	p := SeparatedBy(letter('a'), letter(','))
	data := []struct {
		Input  string
		Count  int
		Offset int
	}{
		{Input: "a", Count: 1, Offset: 1},
		{Input: "a,a,a", Count: 3, Offset: 5},
		{Input: "a,a,", Count: 2, Offset: 3},
		{Input: "a,b", Count: 1, Offset: 1},
	}
	for _, d := range data {
		c := NewCursor([]rune(d.Input))
		list, err := p.Emit(c)
		if err != nil {
			t.Errorf("%s: unexpected error: %s", d.Input, err)
			continue
		}
		if len(list) != d.Count || c.Offset() != d.Offset {
			t.Errorf("%s: expected %d items up to %d, got %d up to %d", d.Input, d.Count, d.Offset, len(list), c.Offset())
		}
		n, err := Validate(p, []rune(d.Input))
		if err != nil || n != d.Offset {
			t.Errorf("%s: validate stopped at %d (%v), expected %d", d.Input, n, err, d.Offset)
		}
	}
	if _, err := Parse(p, []rune(",a")); err == nil {
		t.Errorf("expected failure without a first item")
	}
}
