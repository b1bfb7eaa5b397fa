package gradient

import (
	"fmt"

	"github.com/tdewolff/gradient/transfer"
)

// LookupTable is a discrete table of RGBA colors, such as transfer.LookupTable.
type LookupTable interface {
	SetNumberOfEntries(int)
	NumberOfEntries() int
	SetEntry(i int, r, g, b, a float64)
	Entry(int) (float64, float64, float64, float64)
}

// ColorFunction is a continuous color function defined by keyframes, such as transfer.ColorFunction.
type ColorFunction interface {
	AddHSVKeyframe(x, h, s, v float64)
	RemoveAllKeyframes()
	Color(float64) (float64, float64, float64)
	Size() int
	Range() (float64, float64)
}

// OpacityFunction is a continuous scalar function defined by keyframes, such as transfer.OpacityFunction.
type OpacityFunction interface {
	AddKeyframe(x, v float64)
	RemoveAllKeyframes()
	Value(float64) float64
	Size() int
}

// NodeLister is implemented by functions that expose the exact positions of their keyframes.
type NodeLister interface {
	Nodes() []float64
}

// StoreToLookupTable resizes the lookup table to n entries and fills it with colors sampled at n evenly spaced positions. The scaling function is applied to each position before sampling.
func (g *Gradient) StoreToLookupTable(lut LookupTable, n int) error {
	if n < 1 {
		return fmt.Errorf("lookup table needs at least 1 entry, got %d", n)
	}
	rgba := make([]RGBA, n)
	for i := range rgba {
		f, err := g.scale(positionOf(i, n))
		if err != nil {
			return err
		}
		rgba[i] = g.interp.LerpedAt(f)
	}

	lut.SetNumberOfEntries(n)
	for i, c := range rgba {
		lut.SetEntry(i, c.R, c.G, c.B, c.A)
	}
	return nil
}

// lookupTable returns a transfer.LookupTable of n entries filled by StoreToLookupTable.
func (g *Gradient) lookupTable(n int) (*transfer.LookupTable, error) {
	lut := transfer.NewLookupTable(n)
	if err := g.StoreToLookupTable(lut, n); err != nil {
		return nil, err
	}
	return lut, nil
}

// StoreToTransferFunctionPair replaces the keyframes of the color and opacity functions by the control points, with positions mapped affinely from [0,1] to [lo,hi]. Control points constraining any of hue, saturation, or value become color keyframes and those constraining alpha become opacity keyframes. The scaling function is not applied.
func (g *Gradient) StoreToTransferFunctionPair(color ColorFunction, opacity OpacityFunction, lo, hi float64) {
	if g.interp.SupportsScaling() && !g.scaling.IsIdentity() {
		Logger().Warn("scaling function ignored by transfer function export", "scaling", g.scaling.src)
	}
	storeKeyframes(g.points, color, opacity, lo, hi)
}

// LoadFromTransferFunctionPair replaces the control points by the keyframes of the color and opacity functions, which must both have at least two keyframes. Positions are mapped affinely from the range of the color function to [0,1]. The first and last color keyframes become fixed points constraining all channels, the other color keyframes become movable points constraining hue, saturation, and value, and the interior opacity keyframes become movable points constraining alpha. Functions that implement NodeLister are read at their exact keyframe positions, others are sampled evenly over the range.
func (g *Gradient) LoadFromTransferFunctionPair(color ColorFunction, opacity OpacityFunction) error {
	if color.Size() < 2 {
		return fmt.Errorf("color function has %d keyframes, need at least 2: %w", color.Size(), ErrInconsistent)
	} else if opacity.Size() < 2 {
		return fmt.Errorf("opacity function has %d keyframes, need at least 2: %w", opacity.Size(), ErrInconsistent)
	}
	lo, hi := color.Range()
	scale := hi - lo
	if scale == 0.0 {
		return fmt.Errorf("color function has an empty range: %w", ErrInconsistent)
	}

	var points []*ControlPoint
	n := color.Size()
	xs := keyframePositions(color, n, lo, hi)
	for i, x := range xs {
		r, gr, b := color.Color(x)
		p := &ControlPoint{Channels: ChannelsHSV}
		if i == 0 || i == n-1 {
			p.Fixed = true
			p.Channels = ChannelsHSVA
		}
		p.Color.SetRGBA(r, gr, b, opacity.Value(x))
		p.SetPos((x - lo) / scale)
		points = append(points, p)
	}

	n = opacity.Size()
	xs = keyframePositions(opacity, n, lo, hi)
	for _, x := range xs[1 : n-1] {
		r, gr, b := color.Color(x)
		p := &ControlPoint{Channels: ChannelA}
		p.Color.SetRGBA(r, gr, b, opacity.Value(x))
		p.SetPos((x - lo) / scale)
		points = append(points, p)
	}
	return g.SetControlPoints(NewControlPoints(points...))
}

// keyframePositions returns the exact keyframe positions of f if it implements NodeLister, or else n positions evenly spaced over [lo,hi].
func keyframePositions(f interface{}, n int, lo, hi float64) []float64 {
	if nl, ok := f.(NodeLister); ok {
		if xs := nl.Nodes(); len(xs) == n {
			return xs
		}
	}
	xs := make([]float64, n)
	for i := range xs {
		xs[i] = lo + float64(i)*(hi-lo)/float64(n-1)
	}
	return xs
}
