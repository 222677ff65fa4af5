package text

import (
	"errors"
	"testing"

	"github.com/JeffThomas/climb"
)

func TestInt(t *testing.T) {
	data := []struct {
		Input  string
		Want   int
		Offset int
	}{
		{Input: "0", Want: 0, Offset: 1},
		{Input: "42", Want: 42, Offset: 2},
		{Input: "123abc", Want: 123, Offset: 3},
		{Input: "12٣", Want: 12, Offset: 2},
	}
	for _, d := range data {
		c := climb.NewCursor([]rune(d.Input))
		got, err := Int().Emit(c)
		if err != nil {
			t.Errorf("%s: unexpected error: %s", d.Input, err)
			continue
		}
		if got != d.Want || c.Offset() != d.Offset {
			t.Errorf("%s: expected %d up to %d, got %d up to %d", d.Input, d.Want, d.Offset, got, c.Offset())
		}
	}

	_, err := Parse(Int(), "x")
	if err == nil || err.Error() != "at 0: expected integer, found 'x'" {
		t.Errorf("unexpected error: %v", err)
	}
	c := climb.NewCursor([]rune("٣"))
	if _, err := Int().Emit(c); err == nil || err.Error() != "at 0: expected integer, found '٣'" || c.Offset() != 0 {
		t.Errorf("non ascii digit should not start an integer, got %v at %d", err, c.Offset())
	}
	if _, err := Parse(Digit(), "٣"); err == nil {
		t.Errorf("expected ٣ not to be a digit")
	}
	_, err = Parse(Int(), "99999999999999999999999")
	var perr *climb.ParseError
	if !errors.As(err, &perr) || perr.Offset != 0 {
		t.Errorf("expected out of range integer to fail at 0, got %v", err)
	}
}

func TestSymbol(t *testing.T) {
	p := Symbol("**")
	if n, err := Validate(p, "**2"); err != nil || n != 2 {
		t.Errorf("expected 2 runes consumed, got %d (%v)", n, err)
	}
	c := climb.NewCursor([]rune("*+"))
	_, err := p.Emit(c)
	if err == nil || err.Error() != `at 0: expected "**", found '*'` {
		t.Errorf("unexpected error: %v", err)
	}
	if c.Offset() != 0 {
		t.Errorf("expected failure to leave the cursor at 0, got %d", c.Offset())
	}
}

func TestLexeme(t *testing.T) {
	p := climb.Then(Spaces(), commaList(Lexeme(Int())))
	got, err := Parse(p, "  1 ,2,   3  ")
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if len(got) != 3 || got[0] != 1 || got[1] != 2 || got[2] != 3 {
		t.Errorf("expected [1 2 3] got %v", got)
	}
}

func commaList(p climb.Parser[rune, int]) climb.Parser[rune, []int] {
	return climb.SeparatedBy(p, Lexeme(Rune(',')))
}

func TestDigit(t *testing.T) {
	if n, err := Validate(Digit(), "7"); err != nil || n != 1 {
		t.Errorf("expected one digit, got %d (%v)", n, err)
	}
	if _, err := Parse(Digit(), "a"); err == nil {
		t.Errorf("expected a not to be a digit")
	}
}
