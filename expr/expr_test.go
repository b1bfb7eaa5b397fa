package expr

import (
	"errors"
	"math"
	"testing"

	"github.com/tdewolff/parse/v2"
	"github.com/tdewolff/test"
)

func TestLexer(t *testing.T) {
	var tests = []struct {
		src    string
		tokens []TokenType
	}{
		{"", []TokenType{}},
		{"x**(4*a)", []TokenType{IdentToken, PowToken, OpenToken, NumberToken, MulToken, IdentToken, CloseToken}},
		{" 1.5e-3 ^ x ", []TokenType{NumberToken, PowToken, IdentToken}},
		{"pow(x, .5)%2", []TokenType{IdentToken, OpenToken, IdentToken, CommaToken, NumberToken, CloseToken, ModToken, NumberToken}},
		{"a-b/c+d", []TokenType{IdentToken, SubToken, IdentToken, DivToken, IdentToken, AddToken, IdentToken}},
	}
	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			l := NewLexer(parse.NewInputString(tt.src))
			tokens := []TokenType{}
			for {
				tok, _ := l.Next()
				if tok == EOFToken {
					break
				}
				test.That(t, tok != ErrorToken, "error token", l.Err())
				tokens = append(tokens, tok)
			}
			test.T(t, tokens, tt.tokens)
		})
	}
}

func TestLexerError(t *testing.T) {
	l := NewLexer(parse.NewInputString("x & 2"))
	tok, _ := l.Next()
	test.T(t, tok, IdentToken)
	tok, _ = l.Next()
	test.T(t, tok, ErrorToken)

	var perr *parse.Error
	test.That(t, errors.As(l.Err(), &perr), "expected parse error")
	test.T(t, perr.Line, 1)
}

func TestEval(t *testing.T) {
	var tests = []struct {
		src  string
		x, a float64
		want float64
	}{
		{"x", 0.25, 0.5, 0.25},
		{"x**(4*a)", 0.5, 0.5, 0.25},
		{"x^2", 3.0, 0.0, 9.0},
		{"2**3**2", 0.0, 0.0, 512.0},
		{"-x**2", 3.0, 0.0, -9.0},
		{"2**-1", 0.0, 0.0, 0.5},
		{"1 + 2*3 - 4/2", 0.0, 0.0, 5.0},
		{"(1 + 2)*3", 0.0, 0.0, 9.0},
		{"7 % 3", 0.0, 0.0, 1.0},
		{"-7 % 3", 0.0, 0.0, 2.0},
		{"sin(pi/2)", 0.0, 0.0, 1.0},
		{"cos(0) + tan(0)", 0.0, 0.0, 1.0},
		{"exp(1) - e", 0.0, 0.0, 0.0},
		{"log(e**2)", 0.0, 0.0, 2.0},
		{"log(8, 2)", 0.0, 0.0, 3.0},
		{"pow(x, a)", 4.0, 0.5, 2.0},
		{"sqrt(x) + abs(-a)", 9.0, 1.0, 4.0},
		{"atan(1)*4", 0.0, 0.0, math.Pi},
		{"asin(1) + acos(1)", 0.0, 0.0, math.Pi / 2.0},
		{"min(x, a) + max(x, a)", 0.2, 0.7, 0.9},
		{"floor(x) + ceil(a)", 1.5, 1.5, 3.0},
		{"1e-1 + .5", 0.0, 0.0, 0.6},
		{"+x", 2.0, 0.0, 2.0},
	}
	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			p, err := Compile(tt.src, "x", "a")
			test.Error(t, err)
			y, err := p.Eval(tt.x, tt.a)
			test.Error(t, err)
			test.FloatDiff(t, y, tt.want, 1e-12)
		})
	}
}

func TestVariableShadowsConstant(t *testing.T) {
	p := MustCompile("e + 1", "e")
	y, err := p.Eval(2.0)
	test.Error(t, err)
	test.Float(t, y, 3.0)
}

func TestCompileError(t *testing.T) {
	var tests = []string{
		"",
		"x +",
		"(x",
		"x)",
		"y",
		"foo(x)",
		"pow(x)",
		"log(1, 2, 3)",
		"sin x",
		"x ** * 2",
		"x; 2",
		"__import__('os')",
	}
	for _, src := range tests {
		t.Run(src, func(t *testing.T) {
			_, err := Compile(src, "x", "a")
			test.That(t, err != nil, "expected error")
		})
	}
}

func TestEvalDomainError(t *testing.T) {
	p := MustCompile("x**a", "x", "a")
	_, err := p.Eval(-8.0, 1.0/3.0)
	test.That(t, errors.Is(err, ErrDomain), "expected domain error", err)

	p = MustCompile("1/x", "x")
	_, err = p.Eval(0.0)
	test.That(t, errors.Is(err, ErrDomain), "expected domain error", err)

	_, err = p.Eval(1.0, 2.0)
	test.That(t, err != nil, "expected argument count error")
}
