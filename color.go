package gradient

import (
	"fmt"
	"image/color"
	"math"

	"github.com/tdewolff/gradient/internal/hsv"
)

// RGBA is a non alpha-premultiplied color with red, green, blue, and alpha ∈ [0,1].
type RGBA struct {
	R, G, B, A float64
}

// Equals returns true if both colors are equal with tolerance Epsilon.
func (c RGBA) Equals(q RGBA) bool {
	return equal(c.R, q.R) && equal(c.G, q.G) && equal(c.B, q.B) && equal(c.A, q.A)
}

// NRGBA returns the color as an 8-bit non alpha-premultiplied color for use with the image package.
func (c RGBA) NRGBA() color.NRGBA {
	return color.NRGBA{to8(c.R), to8(c.G), to8(c.B), to8(c.A)}
}

// Opaque returns the color with alpha discarded, for image formats that have no alpha channel.
func (c RGBA) Opaque() color.RGBA {
	return color.RGBA{to8(c.R), to8(c.G), to8(c.B), 0xff}
}

func (c RGBA) String() string {
	return fmt.Sprintf("rgba(%g,%g,%g,%g)", c.R, c.G, c.B, c.A)
}

// lerpRGBA linearly interpolates each channel of two colors.
func lerpRGBA(a, b RGBA, t float64) RGBA {
	return RGBA{
		lerp(a.R, b.R, t),
		lerp(a.G, b.G, t),
		lerp(a.B, b.B, t),
		lerp(a.A, b.A, t),
	}
}

func to8(f float64) uint8 {
	return uint8(math.Round(clamp01(f) * 255.0))
}

////////////////////////////////////////////////////////////////

// Color is a color stored in the HSVA color space, with hue ∈ [0,1) and saturation, value, and alpha ∈ [0,1]. It converts to and from RGBA on demand.
type Color struct {
	H, S, V, A float64
}

// HSVA returns a color from hue, saturation, value, and alpha.
func HSVA(h, s, v, a float64) Color {
	return Color{h, s, v, a}
}

// FromRGBA returns a color from red, green, blue, and alpha ∈ [0,1]. The hue of achromatic colors is zero.
func FromRGBA(r, g, b, a float64) Color {
	c := Color{}
	c.SetRGBA(r, g, b, a)
	return c
}

// SetHSVA overwrites all channels.
func (c *Color) SetHSVA(h, s, v, a float64) {
	c.H, c.S, c.V, c.A = h, s, v, a
}

// SetRGBA sets the color from red, green, blue, and alpha ∈ [0,1]. When the color is achromatic its hue is undefined and the previous hue is kept, so that desaturating a color and saturating it again restores its hue.
func (c *Color) SetRGBA(r, g, b, a float64) {
	h, s, v, ok := hsv.FromRGB(r, g, b)
	if ok {
		c.H = h
	}
	c.S, c.V, c.A = s, v, a
}

// SetRGB sets the color from red, green, and blue ∈ [0,1] and makes it opaque.
func (c *Color) SetRGB(r, g, b float64) {
	c.SetRGBA(r, g, b, 1.0)
}

// RGBA returns the color as RGBA.
func (c Color) RGBA() RGBA {
	r, g, b := hsv.ToRGB(c.H, c.S, c.V)
	return RGBA{r, g, b, c.A}
}

// RGB255 returns the red, green, and blue components rounded to [0,255].
func (c Color) RGB255() (uint8, uint8, uint8) {
	rgba := c.RGBA()
	return to8(rgba.R), to8(rgba.G), to8(rgba.B)
}

// Channel returns the value of the given single channel, which must be one of ChannelH, ChannelS, ChannelV, or ChannelA.
func (c Color) Channel(ch Channels) float64 {
	switch ch {
	case ChannelH:
		return c.H
	case ChannelS:
		return c.S
	case ChannelV:
		return c.V
	case ChannelA:
		return c.A
	}
	panic(fmt.Sprintf("not a single channel: %v", ch))
}

// setChannel sets the value of the given single channel.
func (c *Color) setChannel(ch Channels, f float64) {
	switch ch {
	case ChannelH:
		c.H = f
	case ChannelS:
		c.S = f
	case ChannelV:
		c.V = f
	case ChannelA:
		c.A = f
	default:
		panic(fmt.Sprintf("not a single channel: %v", ch))
	}
}

// Equals returns true if both colors are equal with tolerance Epsilon.
func (c Color) Equals(q Color) bool {
	return equal(c.H, q.H) && equal(c.S, q.S) && equal(c.V, q.V) && equal(c.A, q.A)
}

func (c Color) String() string {
	return fmt.Sprintf("hsva(%g,%g,%g,%g)", c.H, c.S, c.V, c.A)
}

// LerpColor linearly interpolates each HSVA channel between a and b with weight f ∈ [0,1], f=0 giving a and f=1 giving b. Hue is interpolated in [0,1) without wrapping, so interpolating across the 0/1 boundary takes the long way around the color wheel.
func LerpColor(f float64, a, b Color) Color {
	return Color{
		lerp(a.H, b.H, f),
		lerp(a.S, b.S, f),
		lerp(a.V, b.V, f),
		lerp(a.A, b.A, f),
	}
}
