package gradient

// Interpolator reconstructs a continuous color mapping over [0,1] from a set of control points. Each of the hue, saturation, value, and alpha channels is interpolated independently between the control points that constrain it. Update recomputes all derived state and must be called after every change to the control points, queries are served from that state.
type Interpolator interface {
	// Update recomputes the interpolation from the control points. On error the previous state is kept.
	Update(*ControlPoints) error

	// At returns the color at f ∈ [0,1].
	At(float64) RGBA

	// HSVAAt returns the color at f ∈ [0,1] in the HSVA color space.
	HSVAAt(float64) Color

	// LerpedAt returns the color at f ∈ [0,1], interpolating between discrete samples if any.
	LerpedAt(float64) RGBA

	// SupportsScaling returns true if a scaling function can be applied when exporting to a lookup table.
	SupportsScaling() bool
}

// collapse returns the control points of a single channel with every run of points at the same position reduced to its last point. Coincident control points thus resolve to the later point and no interval has zero width.
func collapse(points []*ControlPoint) []*ControlPoint {
	out := points[:0:0]
	for _, p := range points {
		if 0 < len(out) && out[len(out)-1].Pos == p.Pos {
			out[len(out)-1] = p
		} else {
			out = append(out, p)
		}
	}
	return out
}
