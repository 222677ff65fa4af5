package calc

import (
	"github.com/JeffThomas/climb"
	"github.com/JeffThomas/climb/lexer"
	"github.com/JeffThomas/climb/text"
	"github.com/JeffThomas/lexx-go/matchers"
)

// Operators lists every symbol the calculator knows, for lexx.
var Operators = []string{"(", ")", "+", "-", "*", "/", "%", "^", "!", ";"}

// Matchers configures a lexx for the calculator.
func Matchers() []matchers.LexxMatcherInitialize {
	return []matchers.LexxMatcherInitialize{
		matchers.StartIntegerMatcher,
		matchers.StartWhitespaceMatcher,
		matchers.ConfigOperatorMatcher(Operators),
	}
}

// grammar wires the operator table. It is shared by the rune and the token
// front ends, which only differ in how numbers and symbols are recognized.
func grammar[T, A any](num climb.Parser[T, *Node], sym func(string) climb.Parser[T, A]) climb.Parser[T, *Node] {
	var (
		expr  climb.Ref[T, *Node]
		group = climb.Delimited[T, A, *Node, A](sym("("), &expr, sym(")"))
		atom  = climb.Choice(num, group)
	)
	infix := climb.Climb(atom,
		climb.LeftInfix(sym("+"), climb.PRECEDENCE_SUM, binary("+")),
		climb.LeftInfix(sym("-"), climb.PRECEDENCE_SUM, binary("-")),
		climb.LeftInfix(sym("*"), climb.PRECEDENCE_PRODUCT, binary("*")),
		climb.LeftInfix(sym("/"), climb.PRECEDENCE_PRODUCT, binary("/")),
		climb.LeftInfix(sym("%"), climb.PRECEDENCE_PRODUCT, binary("%")),
		climb.RightInfix(sym("^"), climb.PRECEDENCE_EXPONENT, binary("^")),
	)
	full := infix.WithPrefix(
		climb.Prefix(sym("-"), climb.PRECEDENCE_PREFIX, unary("-")),
		climb.Prefix(sym("!"), climb.PRECEDENCE_PREFIX, unary("!")),
	)
	expr.Define(full)
	return full
}

// Text is the calculator grammar over runes. Blanks are allowed after every
// number and symbol; Parse skips the leading ones.
func Text() climb.Parser[rune, *Node] {
	num := climb.Map(text.Lexeme(text.Int()), number)
	return grammar(num, func(s string) climb.Parser[rune, string] {
		return text.Lexeme(text.Symbol(s))
	})
}

// Tokens is the calculator grammar over lexx tokens.
func Tokens() climb.Parser[*matchers.Token, *Node] {
	num := climb.Map(lexer.Int(), number)
	return grammar(num, func(s string) climb.Parser[*matchers.Token, *matchers.Token] {
		return lexer.Symbol(matchers.OPERATOR, s)
	})
}

// Parse reads a single expression from src, which must be consumed entirely.
func Parse(src string) (*Node, error) {
	p := climb.Then(text.Spaces(), climb.Full(Text()))
	return text.Parse(p, src)
}

// Check validates src without building a tree. It returns the number of runes
// accepted before success or failure.
func Check(src string) (int, error) {
	p := climb.Then(text.Spaces(), climb.Full(Text()))
	return text.Validate(p, src)
}

// ParseTokens reads a single expression from src, tokenized by lexx. Errors
// carry the line and column of the offending token.
func ParseTokens(src string) (*Node, error) {
	tokens, err := lexer.Tokenize(src, Matchers())
	if err != nil {
		return nil, err
	}
	n, err := climb.Parse(lexer.Full(Tokens()), tokens)
	if err != nil {
		return nil, lexer.Locate(tokens, err)
	}
	return n, nil
}

// CheckTokens is the validate mode counterpart of ParseTokens. It returns the
// number of tokens accepted.
func CheckTokens(src string) (int, error) {
	tokens, err := lexer.Tokenize(src, Matchers())
	if err != nil {
		return 0, err
	}
	n, err := climb.Validate(lexer.Full(Tokens()), tokens)
	if err != nil {
		return n, lexer.Locate(tokens, err)
	}
	return n, nil
}

// ParseScript reads expressions separated by semicolons.
func ParseScript(src string) ([]*Node, error) {
	var (
		sep = text.Lexeme(text.Symbol(";"))
		p   = climb.Then(text.Spaces(), climb.Full(climb.SeparatedBy(Text(), sep)))
	)
	return text.Parse(p, src)
}
