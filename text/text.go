// Package text holds rune level matchers, for grammars that read characters
// directly instead of tokens.
package text

import (
	"strconv"
	"unicode"

	"github.com/JeffThomas/climb"
)

// Parse runs p in construct mode over src. Trailing input is not consumed.
func Parse[O any](p climb.Parser[rune, O], src string) (O, error) {
	return climb.Parse(p, []rune(src))
}

// Validate runs p in validate mode over src and reports how many runes were
// consumed.
func Validate[O any](p climb.Parser[rune, O], src string) (int, error) {
	return climb.Validate(p, []rune(src))
}

func Rune(r rune) climb.Parser[rune, rune] {
	return climb.Just(strconv.QuoteRune(r), r)
}

func Digit() climb.Parser[rune, rune] {
	return climb.Satisfy("digit", isDigit)
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

// Int matches a run of decimal digits.
func Int() climb.Parser[rune, int] {
	return climb.Func[rune, int](func(c *climb.Cursor[rune]) (int, error) {
		var (
			start = c.Offset()
			n     int
		)
		for {
			r, ok := c.Peek()
			if !ok || !isDigit(r) {
				break
			}
			c.Next()
			n++
		}
		if n == 0 {
			return 0, climb.Expected(c, "integer")
		}
		str := string(c.Consumed(start))
		v, err := strconv.Atoi(str)
		if err != nil {
			return 0, &climb.ParseError{
				Offset:   start,
				Expected: []string{"integer"},
				Found:    strconv.Quote(str),
			}
		}
		return v, nil
	})
}

// Spaces skips any number of white space, including none.
func Spaces() climb.Parser[rune, struct{}] {
	return climb.Func[rune, struct{}](func(c *climb.Cursor[rune]) (struct{}, error) {
		for {
			r, ok := c.Peek()
			if !ok || !unicode.IsSpace(r) {
				return struct{}{}, nil
			}
			c.Next()
		}
	})
}

// Lexeme matches p and the white space following it.
func Lexeme[O any](p climb.Parser[rune, O]) climb.Parser[rune, O] {
	return climb.Before(p, Spaces())
}

// Symbol matches the exact text of s. On failure, the error is reported at
// the position where s was expected to start.
func Symbol(s string) climb.Parser[rune, string] {
	want := []rune(s)
	return climb.Func[rune, string](func(c *climb.Cursor[rune]) (string, error) {
		cp := c.Save()
		for _, w := range want {
			r, ok := c.Peek()
			if !ok || r != w {
				c.Rewind(cp)
				return "", climb.Expected(c, strconv.Quote(s))
			}
			c.Next()
		}
		return s, nil
	})
}
