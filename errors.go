package gradient

import (
	"errors"
	"fmt"
)

// ErrInconsistent is returned when the control points violate an invariant of the gradient, such as a channel that is constrained by fewer than two control points.
var ErrInconsistent = errors.New("inconsistent control points")

// ErrFixed is returned when removing or moving a fixed control point.
var ErrFixed = errors.New("control point is fixed")

// ErrInvalidScaling is matched by errors.Is for every ScalingError.
var ErrInvalidScaling = errors.New("invalid scaling function")

// ErrFormat is matched by errors.Is for every ParseError.
var ErrFormat = errors.New("bad gradient file")

// ScalingError is returned when a scaling function fails to compile or evaluates to a value that is not a number, such as a negative base raised to a fractional power.
type ScalingError struct {
	Expr string
	Err  error
}

func (e *ScalingError) Error() string {
	return fmt.Sprintf("%v %q: %v", ErrInvalidScaling, e.Expr, e.Err)
}

func (e *ScalingError) Unwrap() error {
	return e.Err
}

func (e *ScalingError) Is(target error) bool {
	return target == ErrInvalidScaling
}

// ParseError is returned when a gradient file is malformed. Line is the 1-based line number and Text the content of the offending line.
type ParseError struct {
	Line int
	Text string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%v at line %d: %v: %q", ErrFormat, e.Line, e.Err, e.Text)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

func (e *ParseError) Is(target error) bool {
	return target == ErrFormat
}
