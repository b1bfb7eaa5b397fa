package transfer

import (
	"slices"

	"github.com/tdewolff/gradient/internal/hsv"
)

// keyframes is a sorted list of positions with a value of type T at each position.
type keyframes[T any] struct {
	xs []float64
	vs []T
}

// add inserts a keyframe or replaces the value of an existing keyframe at x.
func (k *keyframes[T]) add(x float64, v T) {
	i, ok := slices.BinarySearch(k.xs, x)
	if ok {
		k.vs[i] = v
		return
	}
	k.xs = slices.Insert(k.xs, i, x)
	k.vs = slices.Insert(k.vs, i, v)
}

func (k *keyframes[T]) reset() {
	k.xs = k.xs[:0]
	k.vs = k.vs[:0]
}

// segment returns the indices of the keyframes enclosing x and the interpolation weight between them. Outside the range the end keyframes are returned with weight zero. It must not be called on empty keyframes.
func (k *keyframes[T]) segment(x float64) (int, int, float64) {
	n := len(k.xs)
	if x <= k.xs[0] {
		return 0, 0, 0.0
	} else if k.xs[n-1] <= x {
		return n - 1, n - 1, 0.0
	}
	j, _ := slices.BinarySearch(k.xs, x)
	i := j - 1
	return i, j, (x - k.xs[i]) / (k.xs[j] - k.xs[i])
}

func (k *keyframes[T]) bounds() (float64, float64) {
	if len(k.xs) == 0 {
		return 0.0, 0.0
	}
	return k.xs[0], k.xs[len(k.xs)-1]
}

////////////////////////////////////////////////////////////////

// ColorFunction is a continuous RGB color function defined by keyframes. Colors between keyframes are linearly interpolated in RGB, and outside the range of keyframes the color of the first or last keyframe is returned.
type ColorFunction struct {
	keyframes[[3]float64]
}

// NewColorFunction returns a color function without keyframes.
func NewColorFunction() *ColorFunction {
	return &ColorFunction{}
}

// AddRGBKeyframe adds a keyframe at x with r,g,b ∈ [0,1]. A keyframe that already exists at x is replaced.
func (f *ColorFunction) AddRGBKeyframe(x, r, g, b float64) {
	f.add(x, [3]float64{r, g, b})
}

// AddHSVKeyframe adds a keyframe at x with h,s,v ∈ [0,1]. The color is stored as RGB. A keyframe that already exists at x is replaced.
func (f *ColorFunction) AddHSVKeyframe(x, h, s, v float64) {
	r, g, b := hsv.ToRGB(h, s, v)
	f.add(x, [3]float64{r, g, b})
}

// RemoveAllKeyframes removes all keyframes.
func (f *ColorFunction) RemoveAllKeyframes() {
	f.reset()
}

// Color returns the color at x. It returns black if there are no keyframes.
func (f *ColorFunction) Color(x float64) (float64, float64, float64) {
	if len(f.xs) == 0 {
		return 0.0, 0.0, 0.0
	}
	i, j, t := f.segment(x)
	a, b := f.vs[i], f.vs[j]
	return a[0] + t*(b[0]-a[0]), a[1] + t*(b[1]-a[1]), a[2] + t*(b[2]-a[2])
}

// Size returns the number of keyframes.
func (f *ColorFunction) Size() int {
	return len(f.xs)
}

// Range returns the positions of the first and last keyframes.
func (f *ColorFunction) Range() (float64, float64) {
	return f.bounds()
}

// Nodes returns the positions of the keyframes in increasing order.
func (f *ColorFunction) Nodes() []float64 {
	return slices.Clone(f.xs)
}
