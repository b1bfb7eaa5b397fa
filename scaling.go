package gradient

import (
	"strings"

	"github.com/tdewolff/gradient/expr"
)

// DefaultScalingParameter is the initial value of the scaling parameter a.
const DefaultScalingParameter = 0.5

// scalingSamples is the number of intervals on [0,1] at which a scaling function is evaluated on compilation.
const scalingSamples = 16

// ScalingFunction remaps positions before they are looked up when exporting to a lookup table. It is an arithmetic expression over the position x and a parameter a, such as "x**(4*a)". The empty expression is the identity.
type ScalingFunction struct {
	src   string
	param float64
	prog  *expr.Program
}

// NewScalingFunction compiles a scaling function. It returns a ScalingError if the expression is malformed or does not evaluate to a number everywhere on [0,1].
func NewScalingFunction(src string, param float64) (*ScalingFunction, error) {
	prog, err := compileScaling(src, param)
	if err != nil {
		return nil, err
	}
	return &ScalingFunction{
		src:   src,
		param: param,
		prog:  prog,
	}, nil
}

// Expr returns the expression.
func (s *ScalingFunction) Expr() string {
	return s.src
}

// Parameter returns the parameter a.
func (s *ScalingFunction) Parameter() float64 {
	return s.param
}

// IsIdentity returns true if the expression is empty.
func (s *ScalingFunction) IsIdentity() bool {
	return s.prog == nil
}

// SetExpr recompiles the function with a new expression. On error the function is unchanged.
func (s *ScalingFunction) SetExpr(src string) error {
	prog, err := compileScaling(src, s.param)
	if err != nil {
		return err
	}
	s.src, s.prog = src, prog
	return nil
}

// SetParameter recompiles the function with a new parameter. On error the function is unchanged.
func (s *ScalingFunction) SetParameter(a float64) error {
	prog, err := compileScaling(s.src, a)
	if err != nil {
		return err
	}
	s.param, s.prog = a, prog
	return nil
}

// Apply maps position x.
func (s *ScalingFunction) Apply(x float64) (float64, error) {
	if s.prog == nil {
		return x, nil
	}
	y, err := s.prog.Eval(x, s.param)
	if err != nil {
		return 0.0, &ScalingError{s.src, err}
	}
	return y, nil
}

func (s *ScalingFunction) String() string {
	if s.prog == nil {
		return "x"
	}
	return s.src
}

func compileScaling(src string, a float64) (*expr.Program, error) {
	if strings.TrimSpace(src) == "" {
		return nil, nil
	}
	prog, err := expr.Compile(src, "x", "a")
	if err != nil {
		return nil, &ScalingError{src, err}
	}
	for i := 0; i <= scalingSamples; i++ {
		if _, err := prog.Eval(float64(i)/scalingSamples, a); err != nil {
			return nil, &ScalingError{src, err}
		}
	}
	return prog, nil
}
