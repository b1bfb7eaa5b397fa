// Package chart plots the channels of a gradient as curves over [0,1] using gonum plot.
package chart

import (
	"bytes"
	"fmt"
	"image/color"
	"io"
	"strings"

	"github.com/tdewolff/gradient"
	"github.com/tdewolff/gradient/transfer"
	"github.com/tdewolff/minify/v2"
	"github.com/tdewolff/minify/v2/svg"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// Options are the options for Write.
type Options struct {
	Width, Height vg.Length
	Samples       int  // number of samples per curve
	HSV           bool // plot hue, saturation, and value instead of red, green, and blue
	Points        bool // mark the positions of the control points
}

// DefaultOptions are the default options for Write.
var DefaultOptions = Options{
	Width:   12.0 * vg.Centimeter,
	Height:  8.0 * vg.Centimeter,
	Samples: gradient.DefaultTableSize,
	Points:  true,
}

type curve struct {
	name  string
	color color.Color
	value func(r, g, b, a float64) float64
}

var (
	rgbCurves = []curve{
		{"R", color.NRGBA{220, 40, 40, 255}, func(r, _, _, _ float64) float64 { return r }},
		{"G", color.NRGBA{40, 160, 40, 255}, func(_, g, _, _ float64) float64 { return g }},
		{"B", color.NRGBA{40, 80, 220, 255}, func(_, _, b, _ float64) float64 { return b }},
	}
	hsvCurves = []curve{
		{"H", color.NRGBA{200, 60, 200, 255}, func(r, g, b, _ float64) float64 { return gradient.FromRGBA(r, g, b, 1.0).H }},
		{"S", color.NRGBA{230, 150, 30, 255}, func(r, g, b, _ float64) float64 { return gradient.FromRGBA(r, g, b, 1.0).S }},
		{"V", color.NRGBA{90, 90, 90, 255}, func(r, g, b, _ float64) float64 { return gradient.FromRGBA(r, g, b, 1.0).V }},
	}
	alphaCurve = curve{"A", color.Black, func(_, _, _, a float64) float64 { return a }}
)

// sample returns the curve at every entry of the lookup table, spread evenly over [0,1].
func (c curve) sample(lut *transfer.LookupTable) plotter.XYs {
	n := lut.NumberOfEntries()
	xys := make(plotter.XYs, n)
	for i := range xys {
		r, g, b, a := lut.Entry(i)
		xys[i].X = float64(i) / float64(n-1)
		xys[i].Y = c.value(r, g, b, a)
	}
	return xys
}

// Plot returns a plot of the channels of the gradient sampled from a lookup table, so that the scaling function is applied.
func Plot(g *gradient.Gradient, opts Options) (*plot.Plot, error) {
	if opts.Samples < 2 {
		return nil, fmt.Errorf("need at least 2 samples, got %d", opts.Samples)
	}
	lut := transfer.NewLookupTable(opts.Samples)
	if err := g.StoreToLookupTable(lut, opts.Samples); err != nil {
		return nil, err
	}

	p := plot.New()
	p.Title.Text = "Color gradient"
	p.X.Label.Text = "position"
	p.Y.Label.Text = "value"
	p.X.Min, p.X.Max = 0.0, 1.0
	p.Y.Min, p.Y.Max = 0.0, 1.0
	p.Legend.Top = true

	curves := rgbCurves
	if opts.HSV {
		curves = hsvCurves
	}
	curves = append(curves[:len(curves):len(curves)], alphaCurve)
	for _, c := range curves {
		line, err := plotter.NewLine(c.sample(lut))
		if err != nil {
			return nil, err
		}
		line.Color = c.color
		line.Width = vg.Points(1.5)
		p.Add(line)
		p.Legend.Add(c.name, line)
	}

	if opts.Points {
		points := g.Points()
		xys := make(plotter.XYs, points.Len())
		for i, cp := range points.All() {
			xys[i].X = cp.Pos
			xys[i].Y = cp.Color.A
		}
		scatter, err := plotter.NewScatter(xys)
		if err != nil {
			return nil, err
		}
		scatter.Shape = draw.CircleGlyph{}
		scatter.Radius = vg.Points(3)
		scatter.Color = color.Black
		p.Add(scatter)
	}
	return p, nil
}

// Write writes a plot of the gradient to w in the given format, which is one of eps, jpg, jpeg, pdf, png, svg, tex, tif, or tiff. SVG output is minified.
func Write(w io.Writer, g *gradient.Gradient, format string, opts Options) error {
	format = strings.ToLower(strings.TrimPrefix(format, "."))
	p, err := Plot(g, opts)
	if err != nil {
		return err
	}
	wt, err := p.WriterTo(opts.Width, opts.Height, format)
	if err != nil {
		return err
	}
	if format != "svg" {
		_, err = wt.WriteTo(w)
		return err
	}

	buf := &bytes.Buffer{}
	if _, err := wt.WriteTo(buf); err != nil {
		return err
	}
	m := minify.New()
	m.AddFunc("image/svg+xml", svg.Minify)
	return m.Minify("image/svg+xml", w, buf)
}
