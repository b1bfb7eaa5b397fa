// Package hsv converts between the RGB and HSV color models with all components in [0,1] and hue in [0,1).
package hsv

// ToRGB converts h,s,v ∈ [0,1] to r,g,b ∈ [0,1]. A hue of 1.0 is treated as 0.0. Zero saturation gives gray for any hue.
func ToRGB(h, s, v float64) (float64, float64, float64) {
	h *= 6.0
	i := int(h)
	f := h - float64(i)
	p := v * (1.0 - s)
	q := v * (1.0 - f*s)
	t := v * (1.0 - (1.0-f)*s)
	switch i % 6 {
	case 0:
		return v, t, p
	case 1:
		return q, v, p
	case 2:
		return p, v, t
	case 3:
		return p, q, v
	case 4:
		return t, p, v
	default:
		return v, p, q
	}
}

// FromRGB converts r,g,b ∈ [0,1] to h,s,v ∈ [0,1] with h ∈ [0,1). The returned ok is false when the color is achromatic (max == min), in which case the hue is undefined and returned as zero.
func FromRGB(r, g, b float64) (h, s, v float64, ok bool) {
	hi := r
	if hi < g {
		hi = g
	}
	if hi < b {
		hi = b
	}
	lo := r
	if g < lo {
		lo = g
	}
	if b < lo {
		lo = b
	}

	v = hi
	if hi != 0.0 {
		s = (hi - lo) / hi
	}
	if hi == lo {
		return 0.0, s, v, false
	}

	d := hi - lo
	if g <= r && b <= r {
		h = (g - b) / d
	} else if b <= g {
		h = 2.0 + (b-r)/d
	} else {
		h = 4.0 + (r-g)/d
	}
	h /= 6.0
	if h < 0.0 {
		h += 1.0
	}
	if 1.0 <= h {
		h -= 1.0
	}
	return h, s, v, true
}
