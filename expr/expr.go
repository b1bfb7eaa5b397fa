// Package expr compiles arithmetic expressions over named variables into Go closures. It is a small sandboxed language without assignment, loops, or access to anything but a fixed set of math functions and constants.
//
// Supported are numbers, the operators + - * / % and ** (or ^) for exponentiation, parentheses, the constants e and pi, and the functions abs, acos, asin, atan, atan2, ceil, cos, exp, floor, log, max, min, pow, sin, sqrt, and tan. The log function takes an optional second argument for the base. Exponentiation is right associative and binds tighter than unary minus, so that -x**2 equals -(x**2).
package expr

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/strconv"
)

// ErrDomain is returned when an expression evaluates to NaN or infinity, such as a negative number raised to a fractional power.
var ErrDomain = errors.New("result not a finite number")

type node func(args []float64) float64

type function struct {
	minArgs, maxArgs int
	f                func(args []float64) float64
}

var functions = map[string]function{
	"abs":   {1, 1, func(a []float64) float64 { return math.Abs(a[0]) }},
	"acos":  {1, 1, func(a []float64) float64 { return math.Acos(a[0]) }},
	"asin":  {1, 1, func(a []float64) float64 { return math.Asin(a[0]) }},
	"atan":  {1, 1, func(a []float64) float64 { return math.Atan(a[0]) }},
	"atan2": {2, 2, func(a []float64) float64 { return math.Atan2(a[0], a[1]) }},
	"ceil":  {1, 1, func(a []float64) float64 { return math.Ceil(a[0]) }},
	"cos":   {1, 1, func(a []float64) float64 { return math.Cos(a[0]) }},
	"exp":   {1, 1, func(a []float64) float64 { return math.Exp(a[0]) }},
	"floor": {1, 1, func(a []float64) float64 { return math.Floor(a[0]) }},
	"log": {1, 2, func(a []float64) float64 {
		if len(a) == 2 {
			return math.Log(a[0]) / math.Log(a[1])
		}
		return math.Log(a[0])
	}},
	"max":  {2, 2, func(a []float64) float64 { return math.Max(a[0], a[1]) }},
	"min":  {2, 2, func(a []float64) float64 { return math.Min(a[0], a[1]) }},
	"pow":  {2, 2, func(a []float64) float64 { return math.Pow(a[0], a[1]) }},
	"sin":  {1, 1, func(a []float64) float64 { return math.Sin(a[0]) }},
	"sqrt": {1, 1, func(a []float64) float64 { return math.Sqrt(a[0]) }},
	"tan":  {1, 1, func(a []float64) float64 { return math.Tan(a[0]) }},
}

var constants = map[string]float64{
	"e":  math.E,
	"pi": math.Pi,
}

// Program is a compiled expression.
type Program struct {
	src   string
	names []string
	root  node
}

// Compile compiles an expression over the variables with the given names. Variables shadow the constants e and pi.
func Compile(src string, names ...string) (*Program, error) {
	p := &parser{
		l:     NewLexer(parse.NewInputString(src)),
		names: names,
	}
	p.next()
	root, err := p.parseExpr()
	if err != nil {
		return nil, err
	} else if p.tt != EOFToken {
		return nil, p.errorf("unexpected %v", p.tt)
	}
	return &Program{
		src:   src,
		names: names,
		root:  root,
	}, nil
}

// MustCompile is like Compile but panics on error.
func MustCompile(src string, names ...string) *Program {
	p, err := Compile(src, names...)
	if err != nil {
		panic(err)
	}
	return p
}

// Eval evaluates the expression with values for the variables in the order they were passed to Compile. It returns ErrDomain if the result is NaN or infinite.
func (p *Program) Eval(args ...float64) (float64, error) {
	if len(args) != len(p.names) {
		return 0.0, fmt.Errorf("expected %d arguments, got %d", len(p.names), len(args))
	}
	y := p.root(args)
	if math.IsNaN(y) || math.IsInf(y, 0) {
		return y, fmt.Errorf("%s with %s: %w", p.src, p.bindings(args), ErrDomain)
	}
	return y, nil
}

func (p *Program) String() string {
	return p.src
}

func (p *Program) bindings(args []float64) string {
	sb := strings.Builder{}
	for i, name := range p.names {
		if i != 0 {
			sb.WriteString(", ")
		}
		fmt.Fprintf(&sb, "%s=%g", name, args[i])
	}
	return sb.String()
}

////////////////////////////////////////////////////////////////

type parser struct {
	l     *Lexer
	names []string

	tt   TokenType
	data []byte
}

func (p *parser) next() {
	p.tt, p.data = p.l.Next()
}

func (p *parser) errorf(format string, args ...any) error {
	if p.tt == ErrorToken {
		return p.l.Err()
	}
	return parse.NewErrorLexer(p.l.r, format, args...)
}

// parseExpr parses a sum of terms.
func (p *parser) parseExpr() (node, error) {
	lhs, err := p.parseTerm()
	if err != nil {
		return nil, err
	}
	for p.tt == AddToken || p.tt == SubToken {
		op := p.tt
		p.next()
		rhs, err := p.parseTerm()
		if err != nil {
			return nil, err
		}
		a, b := lhs, rhs
		if op == AddToken {
			lhs = func(args []float64) float64 { return a(args) + b(args) }
		} else {
			lhs = func(args []float64) float64 { return a(args) - b(args) }
		}
	}
	return lhs, nil
}

// parseTerm parses a product of unary expressions.
func (p *parser) parseTerm() (node, error) {
	lhs, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	for p.tt == MulToken || p.tt == DivToken || p.tt == ModToken {
		op := p.tt
		p.next()
		rhs, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		a, b := lhs, rhs
		switch op {
		case MulToken:
			lhs = func(args []float64) float64 { return a(args) * b(args) }
		case DivToken:
			lhs = func(args []float64) float64 { return a(args) / b(args) }
		case ModToken:
			lhs = func(args []float64) float64 {
				x, y := a(args), b(args)
				return x - y*math.Floor(x/y)
			}
		}
	}
	return lhs, nil
}

func (p *parser) parseUnary() (node, error) {
	if p.tt == SubToken {
		p.next()
		a, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		return func(args []float64) float64 { return -a(args) }, nil
	} else if p.tt == AddToken {
		p.next()
		return p.parseUnary()
	}
	return p.parsePower()
}

func (p *parser) parsePower() (node, error) {
	base, err := p.parsePrimary()
	if err != nil {
		return nil, err
	} else if p.tt != PowToken {
		return base, nil
	}
	p.next()
	exp, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	return func(args []float64) float64 { return math.Pow(base(args), exp(args)) }, nil
}

func (p *parser) parsePrimary() (node, error) {
	switch p.tt {
	case NumberToken:
		f, n := strconv.ParseFloat(p.data)
		if n != len(p.data) {
			return nil, p.errorf("bad number %s", p.data)
		}
		p.next()
		return func([]float64) float64 { return f }, nil
	case OpenToken:
		p.next()
		a, err := p.parseExpr()
		if err != nil {
			return nil, err
		} else if p.tt != CloseToken {
			return nil, p.errorf("expected ')', got %v", p.tt)
		}
		p.next()
		return a, nil
	case IdentToken:
		name := string(p.data)
		p.next()
		if p.tt == OpenToken {
			return p.parseCall(name)
		}
		for i, v := range p.names {
			if v == name {
				return func(args []float64) float64 { return args[i] }, nil
			}
		}
		if c, ok := constants[name]; ok {
			return func([]float64) float64 { return c }, nil
		}
		return nil, p.errorf("unknown variable %s", name)
	}
	return nil, p.errorf("unexpected %v", p.tt)
}

func (p *parser) parseCall(name string) (node, error) {
	fn, ok := functions[name]
	if !ok {
		return nil, p.errorf("unknown function %s", name)
	}
	p.next() // (

	var params []node
	if p.tt != CloseToken {
		for {
			a, err := p.parseExpr()
			if err != nil {
				return nil, err
			}
			params = append(params, a)
			if p.tt != CommaToken {
				break
			}
			p.next()
		}
	}
	if p.tt != CloseToken {
		return nil, p.errorf("expected ')', got %v", p.tt)
	}
	p.next()

	if len(params) < fn.minArgs || fn.maxArgs < len(params) {
		if fn.minArgs == fn.maxArgs {
			return nil, p.errorf("%s takes %d arguments, got %d", name, fn.minArgs, len(params))
		}
		return nil, p.errorf("%s takes %d to %d arguments, got %d", name, fn.minArgs, fn.maxArgs, len(params))
	}
	return func(args []float64) float64 {
		vals := make([]float64, len(params))
		for i, a := range params {
			vals[i] = a(args)
		}
		return fn.f(vals)
	}, nil
}
