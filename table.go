package gradient

import "fmt"

// DefaultTableSize is the number of entries of a Table created by New when no interpolator is given.
const DefaultTableSize = 256

// Table is an Interpolator that samples the gradient at a fixed number of evenly spaced positions k/(N-1). Exact queries return the nearest sample, lerped queries interpolate between the two nearest samples. It supports scaling functions.
type Table struct {
	h, s, v, a []float64
	rgba       []RGBA
}

// NewTable returns a table of n entries, all transparent black until the first update. It panics if n is smaller than two.
func NewTable(n int) *Table {
	if n < 2 {
		panic(fmt.Sprintf("table needs at least 2 entries, got %d", n))
	}
	return &Table{
		h:    make([]float64, n),
		s:    make([]float64, n),
		v:    make([]float64, n),
		a:    make([]float64, n),
		rgba: make([]RGBA, n),
	}
}

// Len returns the number of entries.
func (t *Table) Len() int {
	return len(t.rgba)
}

// Entry returns the i-th entry.
func (t *Table) Entry(i int) RGBA {
	return t.rgba[i]
}

// HSVAEntry returns the i-th entry in the HSVA color space.
func (t *Table) HSVAEntry(i int) Color {
	return Color{t.h[i], t.s[i], t.v[i], t.a[i]}
}

// Update resamples all entries. Every channel is filled independently: each entry lies in the interval between two consecutive control points constraining that channel and is linearly interpolated between their values. Entries are assigned to intervals by their exact position k/(N-1), not by rounding control point positions to the nearest index, so a control point between two entries affects both neighbors proportionally. Control points at the same position resolve to the later one.
func (t *Table) Update(points *ControlPoints) error {
	if err := points.Validate(); err != nil {
		return err
	}

	n := len(t.rgba)
	var channels [4][]float64
	for c, ch := range channelOrder {
		pts := collapse(points.Channel(ch))
		if len(pts) < 2 {
			return fmt.Errorf("channel %c has %d distinct control points: %w", "hsva"[c], len(pts), ErrInconsistent)
		}

		values := make([]float64, n)
		j := 0
		for k := range n {
			pos := positionOf(k, n)
			for j+2 < len(pts) && pts[j+1].Pos <= pos {
				j++
			}
			start, end := pts[j], pts[j+1]
			f := clamp01((pos - start.Pos) / (end.Pos - start.Pos))
			values[k] = lerp(start.Color.Channel(ch), end.Color.Channel(ch), f)
		}
		channels[c] = values
	}

	rgba := make([]RGBA, n)
	for k := range rgba {
		rgba[k] = Color{channels[0][k], channels[1][k], channels[2][k], channels[3][k]}.RGBA()
	}
	t.h, t.s, t.v, t.a = channels[0], channels[1], channels[2], channels[3]
	t.rgba = rgba
	return nil
}

// At returns the entry nearest to f.
func (t *Table) At(f float64) RGBA {
	return t.rgba[indexOf(f, len(t.rgba))]
}

// HSVAAt returns the entry nearest to f in the HSVA color space.
func (t *Table) HSVAAt(f float64) Color {
	return t.HSVAEntry(indexOf(f, len(t.rgba)))
}

// LerpedAt linearly interpolates in RGBA between the two entries nearest to f.
func (t *Table) LerpedAt(f float64) RGBA {
	x := clamp01(f) * float64(len(t.rgba)-1)
	i := int(x)
	if len(t.rgba)-1 <= i {
		return t.rgba[len(t.rgba)-1]
	}
	return lerpRGBA(t.rgba[i], t.rgba[i+1], x-float64(i))
}

// SupportsScaling returns true.
func (t *Table) SupportsScaling() bool {
	return true
}
