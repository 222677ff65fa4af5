// Package lexer feeds lexx tokens to climb grammars.
package lexer

import (
	"errors"
	"strconv"
	"strings"

	"github.com/JeffThomas/climb"
	"github.com/JeffThomas/lexx-go/lexx"
	"github.com/JeffThomas/lexx-go/matchers"
)

// Tokenize runs a lexx built from init over src until EOF. White space tokens
// are dropped.
func Tokenize(src string, init []matchers.LexxMatcherInitialize) ([]*matchers.Token, error) {
	lex := lexx.NewLexx(init)
	lex.SetStringInput(src)

	var list []*matchers.Token
	for {
		t, err := lex.GetNextToken()
		if err != nil {
			return nil, err
		}
		if t == nil {
			return nil, errors.New("could not match token '" + string(lex.State.CurrentText) + "' at " + strconv.Itoa(lex.State.LineNext) + ", " + strconv.Itoa(lex.State.ColumnNext))
		}
		if t.Type == matchers.SYSTEM && t.Value == "EOF" {
			return list, nil
		}
		if t.Type == matchers.WHITESPACE {
			continue
		}
		list = append(list, t)
	}
}

// Type matches any token of type tt. what names it in errors.
func Type(what string, tt matchers.TokenType) climb.Parser[*matchers.Token, *matchers.Token] {
	return match(what, func(t *matchers.Token) bool {
		return t.Type == tt
	})
}

// Int matches an integer token and converts it. A literal out of the range
// of int fails at the offset of its token, in both modes.
func Int() climb.Parser[*matchers.Token, int] {
	return climb.Func[*matchers.Token, int](func(c *climb.Cursor[*matchers.Token]) (int, error) {
		offset := c.Offset()
		t, err := Type("integer", matchers.INTEGER).Emit(c)
		if err != nil {
			return 0, err
		}
		v, err := strconv.Atoi(t.Value)
		if err != nil {
			c.Rewind(climb.Checkpoint(offset))
			return 0, &climb.ParseError{
				Offset:   offset,
				Expected: []string{"integer"},
				Found:    strconv.Quote(t.Value),
			}
		}
		return v, nil
	})
}

// Symbol matches a token of type tt whose text is one of values.
func Symbol(tt matchers.TokenType, values ...string) climb.Parser[*matchers.Token, *matchers.Token] {
	quoted := make([]string, len(values))
	for i := range values {
		quoted[i] = strconv.Quote(values[i])
	}
	return match(strings.Join(quoted, " or "), func(t *matchers.Token) bool {
		if t.Type != tt {
			return false
		}
		for _, v := range values {
			if t.Value == v {
				return true
			}
		}
		return false
	})
}

// End succeeds at the end of the token stream. Unlike climb.End, its errors
// quote the token found.
func End() climb.Parser[*matchers.Token, struct{}] {
	return climb.Func[*matchers.Token, struct{}](func(c *climb.Cursor[*matchers.Token]) (struct{}, error) {
		t, ok := c.Peek()
		if !ok {
			return struct{}{}, nil
		}
		return struct{}{}, &climb.ParseError{
			Offset:   c.Offset(),
			Expected: []string{climb.EndOfInput},
			Found:    strconv.Quote(t.Value),
		}
	})
}

// Full requires p to consume every token.
func Full[O any](p climb.Parser[*matchers.Token, O]) climb.Parser[*matchers.Token, O] {
	return climb.Before(p, End())
}

func match(what string, accept func(*matchers.Token) bool) climb.Parser[*matchers.Token, *matchers.Token] {
	return climb.Func[*matchers.Token, *matchers.Token](func(c *climb.Cursor[*matchers.Token]) (*matchers.Token, error) {
		t, ok := c.Peek()
		if !ok {
			return nil, climb.Expected(c, what)
		}
		if !accept(t) {
			return nil, &climb.ParseError{
				Offset:   c.Offset(),
				Expected: []string{what},
				Found:    strconv.Quote(t.Value),
			}
		}
		c.Next()
		return t, nil
	})
}

// Position maps the offset of a parse error back to the line and column of
// the token it points to. An error at the end of input points just after the
// last token.
func Position(tokens []*matchers.Token, err error) (line, column int, ok bool) {
	var perr *climb.ParseError
	if !errors.As(err, &perr) || len(tokens) == 0 {
		return 0, 0, false
	}
	if perr.Offset < len(tokens) {
		t := tokens[perr.Offset]
		return t.Line, t.Column, true
	}
	t := tokens[len(tokens)-1]
	return t.Line, t.Column + len([]rune(t.Value)), true
}

// Error is a parse error located in the source text.
type Error struct {
	Line   int
	Column int
	Err    error
}

func (e *Error) Error() string {
	return strconv.Itoa(e.Line) + ":" + strconv.Itoa(e.Column) + ": " + e.Err.Error()
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Locate wraps err with the source position of the token it refers to. Errors
// that can not be located are returned as is.
func Locate(tokens []*matchers.Token, err error) error {
	line, col, ok := Position(tokens, err)
	if !ok {
		return err
	}
	return &Error{Line: line, Column: col, Err: err}
}
