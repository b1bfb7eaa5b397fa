package gradient

import (
	"github.com/tdewolff/gradient/transfer"
)

// Delegate is an Interpolator that replays the control points as keyframes into a continuous color function and opacity function and queries those directly. No samples are kept. Delegate does not support scaling functions.
type Delegate struct {
	color   ColorFunction
	opacity OpacityFunction
}

// NewDelegate returns a delegate backed by a transfer.ColorFunction and a transfer.OpacityFunction.
func NewDelegate() *Delegate {
	return NewDelegateWith(transfer.NewColorFunction(), transfer.NewOpacityFunction())
}

// NewDelegateWith returns a delegate backed by the given functions. Their keyframes are replaced on every update.
func NewDelegateWith(color ColorFunction, opacity OpacityFunction) *Delegate {
	return &Delegate{
		color:   color,
		opacity: opacity,
	}
}

// ColorFunction returns the color function that is queried.
func (d *Delegate) ColorFunction() ColorFunction {
	return d.color
}

// OpacityFunction returns the opacity function that is queried.
func (d *Delegate) OpacityFunction() OpacityFunction {
	return d.opacity
}

// Update clears both functions and adds an HSV keyframe for every control point constraining any of hue, saturation, or value, and an opacity keyframe for every control point constraining alpha. Control points at the same position resolve to the later one.
func (d *Delegate) Update(points *ControlPoints) error {
	if err := points.Validate(); err != nil {
		return err
	}
	storeKeyframes(points, d.color, d.opacity, 0.0, 1.0)
	return nil
}

// At returns the color at f, clamped to [0,1].
func (d *Delegate) At(f float64) RGBA {
	f = clamp01(f)
	r, g, b := d.color.Color(f)
	return RGBA{r, g, b, d.opacity.Value(f)}
}

// HSVAAt returns the color at f, clamped to [0,1], converted to HSVA.
func (d *Delegate) HSVAAt(f float64) Color {
	c := d.At(f)
	return FromRGBA(c.R, c.G, c.B, c.A)
}

// LerpedAt is the same as At since the functions are continuous.
func (d *Delegate) LerpedAt(f float64) RGBA {
	return d.At(f)
}

// SupportsScaling returns false.
func (d *Delegate) SupportsScaling() bool {
	return false
}

// storeKeyframes replaces the keyframes of both functions by those of the control points, mapping positions affinely from [0,1] to [lo,hi].
func storeKeyframes(points *ControlPoints, color ColorFunction, opacity OpacityFunction, lo, hi float64) {
	color.RemoveAllKeyframes()
	opacity.RemoveAllKeyframes()
	for _, p := range points.All() {
		x := lo + p.Pos*(hi-lo)
		if p.Channels.HasAny(ChannelsHSV) {
			color.AddHSVKeyframe(x, p.Color.H, p.Color.S, p.Color.V)
		}
		if p.Channels.Has(ChannelA) {
			opacity.AddKeyframe(x, p.Color.A)
		}
	}
}
