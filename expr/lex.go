package expr

import (
	"strconv"

	"github.com/tdewolff/parse/v2"
)

// TokenType determines the type of token, eg. a number or an identifier.
type TokenType uint32

// TokenType values.
const (
	ErrorToken TokenType = iota // extra token when errors occur
	NumberToken
	IdentToken
	AddToken   // +
	SubToken   // -
	MulToken   // *
	DivToken   // /
	ModToken   // %
	PowToken   // ** or ^
	OpenToken  // (
	CloseToken // )
	CommaToken // ,
	EOFToken
)

func (tt TokenType) String() string {
	switch tt {
	case ErrorToken:
		return "Error"
	case NumberToken:
		return "Number"
	case IdentToken:
		return "Ident"
	case AddToken:
		return "'+'"
	case SubToken:
		return "'-'"
	case MulToken:
		return "'*'"
	case DivToken:
		return "'/'"
	case ModToken:
		return "'%'"
	case PowToken:
		return "'**'"
	case OpenToken:
		return "'('"
	case CloseToken:
		return "')'"
	case CommaToken:
		return "','"
	case EOFToken:
		return "EOF"
	}
	return "Invalid(" + strconv.Itoa(int(tt)) + ")"
}

// Lexer is the state for the lexer.
type Lexer struct {
	r   *parse.Input
	err error
}

// NewLexer returns a new Lexer for a given input.
func NewLexer(r *parse.Input) *Lexer {
	return &Lexer{
		r: r,
	}
}

// Err returns the error encountered during lexing, this is often io.EOF but also other errors can be returned.
func (l *Lexer) Err() error {
	if l.err != nil {
		return l.err
	}
	return l.r.Err()
}

// Next returns the next Token. It returns ErrorToken when an error was encountered and EOFToken at the end of the input.
func (l *Lexer) Next() (TokenType, []byte) {
	for c := l.r.Peek(0); c == ' ' || c == '\t' || c == '\n' || c == '\r'; c = l.r.Peek(0) {
		l.r.Move(1)
	}
	l.r.Skip()

	c := l.r.Peek(0)
	switch c {
	case '+':
		l.r.Move(1)
		return AddToken, l.r.Shift()
	case '-':
		l.r.Move(1)
		return SubToken, l.r.Shift()
	case '*':
		if l.r.Peek(1) == '*' {
			l.r.Move(2)
			return PowToken, l.r.Shift()
		}
		l.r.Move(1)
		return MulToken, l.r.Shift()
	case '^':
		l.r.Move(1)
		return PowToken, l.r.Shift()
	case '/':
		l.r.Move(1)
		return DivToken, l.r.Shift()
	case '%':
		l.r.Move(1)
		return ModToken, l.r.Shift()
	case '(':
		l.r.Move(1)
		return OpenToken, l.r.Shift()
	case ')':
		l.r.Move(1)
		return CloseToken, l.r.Shift()
	case ',':
		l.r.Move(1)
		return CommaToken, l.r.Shift()
	case 0:
		if l.r.Err() != nil {
			return EOFToken, nil
		}
	}

	if l.consumeNumber() {
		return NumberToken, l.r.Shift()
	} else if l.consumeIdent() {
		return IdentToken, l.r.Shift()
	}
	l.err = parse.NewErrorLexer(l.r, "unexpected character %q", c)
	return ErrorToken, nil
}

func (l *Lexer) consumeNumber() bool {
	c := l.r.Peek(0)
	if !isDigit(c) && (c != '.' || !isDigit(l.r.Peek(1))) {
		return false
	}
	for isDigit(l.r.Peek(0)) {
		l.r.Move(1)
	}
	if l.r.Peek(0) == '.' {
		l.r.Move(1)
		for isDigit(l.r.Peek(0)) {
			l.r.Move(1)
		}
	}
	if c := l.r.Peek(0); c == 'e' || c == 'E' {
		n := 1
		if c := l.r.Peek(n); c == '+' || c == '-' {
			n++
		}
		if isDigit(l.r.Peek(n)) {
			l.r.Move(n)
			for isDigit(l.r.Peek(0)) {
				l.r.Move(1)
			}
		}
	}
	return true
}

func (l *Lexer) consumeIdent() bool {
	c := l.r.Peek(0)
	if !('a' <= c && c <= 'z' || 'A' <= c && c <= 'Z' || c == '_') {
		return false
	}
	l.r.Move(1)
	for {
		c = l.r.Peek(0)
		if 'a' <= c && c <= 'z' || 'A' <= c && c <= 'Z' || '0' <= c && c <= '9' || c == '_' {
			l.r.Move(1)
		} else {
			break
		}
	}
	return true
}

func isDigit(c byte) bool {
	return '0' <= c && c <= '9'
}
