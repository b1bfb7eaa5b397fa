// Package gradient defines color and opacity gradients over [0,1] by sparse control points, as used to colorize scalar fields and for volume rendering.
//
// A control point binds a color to a position and constrains only some of the hue, saturation, value, and alpha channels. Each channel is interpolated independently between the control points that constrain it. An Interpolator turns the control points into a queryable mapping: Table samples the gradient at a fixed number of positions and supports scaling functions, Delegate builds continuous transfer functions and queries those. Gradients are stored as .grad text files and can be exported to lookup tables and transfer function pairs.
package gradient

import (
	"errors"
	"fmt"
)

// Gradient owns a set of control points, the interpolator that is kept up to date with them, and the scaling function. Every mutating method recomputes the interpolation before returning and leaves the gradient unchanged on error. A Gradient is not safe for concurrent use.
type Gradient struct {
	points  *ControlPoints
	interp  Interpolator
	scaling ScalingFunction
}

// New returns a gradient with the default control points. If interp is nil, a Table of DefaultTableSize entries is used.
func New(interp Interpolator) *Gradient {
	if interp == nil {
		interp = NewTable(DefaultTableSize)
	}
	g := &Gradient{
		points:  DefaultControlPoints(),
		interp:  interp,
		scaling: ScalingFunction{param: DefaultScalingParameter},
	}
	if err := g.interp.Update(g.points); err != nil {
		panic(err) // default control points are consistent
	}
	return g
}

// Points returns the control points. They must not be changed directly, use Insert, Remove, Move, and SetColor instead, or call Update afterwards.
func (g *Gradient) Points() *ControlPoints {
	return g.points
}

// Interpolator returns the interpolator.
func (g *Gradient) Interpolator() Interpolator {
	return g.interp
}

// Update recomputes the interpolation from the control points.
func (g *Gradient) Update() error {
	return g.interp.Update(g.points)
}

// apply runs f on a copy of the control points and replaces the control points by the copy if f and the update succeed.
func (g *Gradient) apply(f func(*ControlPoints) error) error {
	points := g.points.Clone()
	if err := f(points); err != nil {
		return err
	} else if err := g.interp.Update(points); err != nil {
		return err
	}
	g.points = points
	return nil
}

// SetControlPoints replaces all control points. The set is sorted if needed and must contain, for every channel, control points at 0.0 and 1.0.
func (g *Gradient) SetControlPoints(points *ControlPoints) error {
	if !points.Sorted() {
		points.Sort()
	}
	if err := g.interp.Update(points); err != nil {
		return err
	}
	g.points = points
	return nil
}

// Insert adds a control point. It returns the index of the new point.
func (g *Gradient) Insert(p *ControlPoint) (int, error) {
	q := *p
	q.SetPos(q.Pos)
	if err := g.apply(func(points *ControlPoints) error {
		points.Insert(&q)
		return nil
	}); err != nil {
		return -1, err
	}
	return g.points.Index(&q), nil
}

// Remove removes the control point at index i. Fixed points cannot be removed.
func (g *Gradient) Remove(i int) error {
	return g.apply(func(points *ControlPoints) error {
		return points.Remove(i)
	})
}

// Move sets the position of the control point at index i to f, clamped to [0,1]. It returns the new index of the point. Fixed points cannot be moved.
func (g *Gradient) Move(i int, f float64) (int, error) {
	var p *ControlPoint
	if err := g.apply(func(points *ControlPoints) error {
		if err := points.SetPos(i, f); err != nil {
			return err
		}
		p = points.points[i]
		points.Sort()
		return nil
	}); err != nil {
		return -1, err
	}
	return g.points.Index(p), nil
}

// SetColor sets the color of the control point at index i. Fixed points can change color.
func (g *Gradient) SetColor(i int, c Color) error {
	return g.apply(func(points *ControlPoints) error {
		if i < 0 || points.Len() <= i {
			return fmt.Errorf("control point index %d out of range", i)
		}
		points.points[i].Color = c
		return nil
	})
}

// ColorAt returns the color at position f ∈ [0,1]. The scaling function is not applied.
func (g *Gradient) ColorAt(f float64) RGBA {
	return g.interp.At(f)
}

// HSVAAt returns the color at position f ∈ [0,1] in the HSVA color space.
func (g *Gradient) HSVAAt(f float64) Color {
	return g.interp.HSVAAt(f)
}

// LerpedColorAt returns the color at position f ∈ [0,1], interpolating between samples of the interpolator.
func (g *Gradient) LerpedColorAt(f float64) RGBA {
	return g.interp.LerpedAt(f)
}

////////////////////////////////////////////////////////////////

// ScalingFunction returns the scaling function expression and parameter. The expression is empty for the identity.
func (g *Gradient) ScalingFunction() (string, float64) {
	return g.scaling.src, g.scaling.param
}

// SetScalingFunction sets the expression of the scaling function over x and parameter a. It returns a ScalingError if the expression is invalid, keeping the previous function, and an error matching errors.ErrUnsupported if the interpolator does not support scaling.
func (g *Gradient) SetScalingFunction(src string) error {
	if !g.interp.SupportsScaling() {
		return fmt.Errorf("scaling function %q: %w", src, errors.ErrUnsupported)
	}
	return g.scaling.SetExpr(src)
}

// SetScalingParameter sets the parameter a of the scaling function. It returns an error matching errors.ErrUnsupported if the interpolator does not support scaling.
func (g *Gradient) SetScalingParameter(a float64) error {
	if !g.interp.SupportsScaling() {
		return fmt.Errorf("scaling parameter %g: %w", a, errors.ErrUnsupported)
	}
	return g.scaling.SetParameter(a)
}

// scale applies the scaling function if the interpolator supports it.
func (g *Gradient) scale(x float64) (float64, error) {
	if !g.interp.SupportsScaling() {
		return x, nil
	}
	return g.scaling.Apply(x)
}
