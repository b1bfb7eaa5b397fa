package transfer

import "slices"

// OpacityFunction is a continuous piecewise linear scalar function defined by keyframes, typically mapping scalar values to opacity. Outside the range of keyframes the value of the first or last keyframe is returned.
type OpacityFunction struct {
	keyframes[float64]
}

// NewOpacityFunction returns an opacity function without keyframes.
func NewOpacityFunction() *OpacityFunction {
	return &OpacityFunction{}
}

// AddKeyframe adds a keyframe with value v at x. A keyframe that already exists at x is replaced.
func (f *OpacityFunction) AddKeyframe(x, v float64) {
	f.add(x, v)
}

// RemoveAllKeyframes removes all keyframes.
func (f *OpacityFunction) RemoveAllKeyframes() {
	f.reset()
}

// Value returns the value at x. It returns zero if there are no keyframes.
func (f *OpacityFunction) Value(x float64) float64 {
	if len(f.xs) == 0 {
		return 0.0
	}
	i, j, t := f.segment(x)
	return f.vs[i] + t*(f.vs[j]-f.vs[i])
}

// Size returns the number of keyframes.
func (f *OpacityFunction) Size() int {
	return len(f.xs)
}

// Range returns the positions of the first and last keyframes.
func (f *OpacityFunction) Range() (float64, float64) {
	return f.bounds()
}

// Nodes returns the positions of the keyframes in increasing order.
func (f *OpacityFunction) Nodes() []float64 {
	return slices.Clone(f.xs)
}
