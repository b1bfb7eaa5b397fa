package gradient

import (
	"image/color"
	"testing"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/tdewolff/test"
)

func TestColorRGBA(t *testing.T) {
	var tests = []struct {
		rgba RGBA
		hsva Color
	}{
		{RGBA{0.0, 0.0, 0.0, 1.0}, Color{0.0, 0.0, 0.0, 1.0}},
		{RGBA{1.0, 1.0, 1.0, 0.5}, Color{0.0, 0.0, 1.0, 0.5}},
		{RGBA{1.0, 0.0, 0.0, 1.0}, Color{0.0, 1.0, 1.0, 1.0}},
		{RGBA{0.0, 1.0, 0.0, 1.0}, Color{1.0 / 3.0, 1.0, 1.0, 1.0}},
		{RGBA{0.0, 0.0, 1.0, 0.0}, Color{2.0 / 3.0, 1.0, 1.0, 0.0}},
		{RGBA{1.0, 0.5, 0.0, 1.0}, Color{1.0 / 12.0, 1.0, 1.0, 1.0}},
		{RGBA{0.5, 0.25, 0.5, 1.0}, Color{5.0 / 6.0, 0.5, 0.5, 1.0}},
	}
	for _, tt := range tests {
		t.Run(tt.rgba.String(), func(t *testing.T) {
			c := FromRGBA(tt.rgba.R, tt.rgba.G, tt.rgba.B, tt.rgba.A)
			test.T(t, c, tt.hsva)
			test.T(t, c.RGBA(), tt.rgba)
		})
	}
}

func TestColorRoundTrip(t *testing.T) {
	for r := 0.0; r <= 1.0; r += 0.125 {
		for g := 0.0; g <= 1.0; g += 0.125 {
			for b := 0.0; b <= 1.0; b += 0.125 {
				c := FromRGBA(r, g, b, 0.75)
				test.T(t, c.RGBA(), RGBA{r, g, b, 0.75})

				// go-colorful returns hue in degrees
				h, s, v := colorful.Color{R: r, G: g, B: b}.Hsv()
				if 0.0 < s {
					test.FloatDiff(t, c.H*360.0, h, 1e-9, "hue of", r, g, b)
				}
				test.FloatDiff(t, c.S, s, 1e-9, "saturation of", r, g, b)
				test.FloatDiff(t, c.V, v, 1e-9, "value of", r, g, b)
				test.That(t, 0.0 <= c.H && c.H < 1.0, "hue out of range")
			}
		}
	}
}

func TestColorNearGrayRoundTrip(t *testing.T) {
	for _, rgba := range []RGBA{
		{1.0, 0.99995, 0.99995, 1.0},
		{0.5, 0.5, 0.49999, 1.0},
		{0.2, 0.200001, 0.2, 0.5},
	} {
		c := FromRGBA(rgba.R, rgba.G, rgba.B, rgba.A)
		test.That(t, 0.0 < c.S && c.S < 1e-4, "saturation of", rgba, c.S)
		test.T(t, c.RGBA(), rgba)
	}
}

func TestColorAchromaticKeepsHue(t *testing.T) {
	c := Color{}
	c.SetRGB(0.0, 0.0, 1.0)
	test.Float(t, c.H, 2.0/3.0)

	c.SetRGBA(0.5, 0.5, 0.5, 0.25)
	test.T(t, c, Color{2.0 / 3.0, 0.0, 0.5, 0.25})

	c.S = 1.0
	test.T(t, c.RGBA(), RGBA{0.0, 0.0, 0.5, 0.25})
}

func TestColorConversions(t *testing.T) {
	c := FromRGBA(1.0, 0.4, 0.0, 0.5)
	r, g, b := c.RGB255()
	test.T(t, [3]uint8{r, g, b}, [3]uint8{255, 102, 0})
	test.T(t, c.RGBA().NRGBA(), color.NRGBA{255, 102, 0, 128})
	test.T(t, c.RGBA().Opaque(), color.RGBA{255, 102, 0, 255})
	test.T(t, RGBA{-1.0, 2.0, 0.5, 1.0}.NRGBA(), color.NRGBA{0, 255, 128, 255})

	test.Float(t, c.Channel(ChannelH), c.H)
	test.Float(t, c.Channel(ChannelA), 0.5)
	c.setChannel(ChannelS, 0.25)
	test.Float(t, c.S, 0.25)
	test.String(t, HSVA(0.5, 0.25, 1.0, 1.0).String(), "hsva(0.5,0.25,1,1)")
}

func TestLerpColor(t *testing.T) {
	a := HSVA(0.1, 0.0, 0.2, 1.0)
	b := HSVA(0.9, 1.0, 0.6, 0.0)
	test.T(t, LerpColor(0.0, a, b), a)
	test.T(t, LerpColor(1.0, a, b), b)
	test.T(t, LerpColor(0.25, a, b), HSVA(0.3, 0.25, 0.3, 0.75))
}
