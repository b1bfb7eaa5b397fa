package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/pkg/browser"
	"github.com/tdewolff/argp"
	"github.com/tdewolff/gradient"
	"github.com/tdewolff/gradient/chart"
	"github.com/tdewolff/minify/v2"
	"github.com/tdewolff/parse/v2/strconv"
)

type Info struct {
	Verbose bool   `short:"v" desc:"Verbose output"`
	Input   string `index:"0" desc:"Gradient file"`
}

type New struct {
	Verbose   bool    `short:"v" desc:"Verbose output"`
	Points    string  `short:"p" desc:"Movable control points as pos:#rrggbb[:channels], separated by commas"`
	Scaling   string  `short:"s" desc:"Scaling function of x and a"`
	Parameter float64 `short:"a" default:"0.5" desc:"Scaling parameter"`
	Preview   string  `default:".jpg" desc:"Preview image format, empty for none"`
	Size      int     `default:"256" desc:"Number of lookup table entries"`
	Output    string  `index:"0" desc:"Output file"`
}

type LUT struct {
	Verbose bool   `short:"v" desc:"Verbose output"`
	Size    int    `short:"n" default:"256" desc:"Number of entries"`
	Name    string `default:"UnnamedTable" desc:"Table name"`
	Output  string `short:"o" desc:"Output file"`
	Input   string `index:"0" desc:"Gradient file"`
}

type Preview struct {
	Verbose bool   `short:"v" desc:"Verbose output"`
	Width   int    `short:"w" default:"256" desc:"Image width"`
	Format  string `short:"f" default:".png" desc:"Image format"`
	Output  string `short:"o" desc:"Output file"`
	Open    bool   `desc:"Open the image"`
	Input   string `index:"0" desc:"Gradient file"`
}

type Plot struct {
	Verbose bool   `short:"v" desc:"Verbose output"`
	Format  string `short:"f" default:"svg" desc:"Plot format: eps, jpg, pdf, png, svg, tex, or tif"`
	HSV     bool   `desc:"Plot hue, saturation, and value"`
	Samples int    `default:"256" desc:"Number of samples"`
	Output  string `short:"o" desc:"Output file"`
	Open    bool   `desc:"Open the plot"`
	Input   string `index:"0" desc:"Gradient file"`
}

func main() {
	root := argp.NewCmd(&Info{}, "Color gradient editing toolkit")
	root.AddCmd(&New{}, "new", "Create a gradient file")
	root.AddCmd(&LUT{}, "lut", "Write the lookup table")
	root.AddCmd(&Preview{}, "preview", "Write a preview image")
	root.AddCmd(&Plot{}, "plot", "Plot the channels")
	root.Parse()
	root.PrintHelp()
}

func setVerbose(verbose bool) {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	gradient.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
}

func load(filename string) (*gradient.Gradient, error) {
	if filename == "" {
		return nil, argp.ShowUsage
	}
	g := gradient.New(nil)
	if err := g.Load(filename); err != nil {
		return nil, err
	}
	return g, nil
}

func dec(f float64) string {
	return string(minify.Decimal(fmt.Appendf(nil, "%f", f), 4))
}

func (cmd *Info) Run() error {
	setVerbose(cmd.Verbose)
	g, err := load(cmd.Input)
	if err != nil {
		return err
	}

	src, a := g.ScalingFunction()
	if src == "" {
		src = "x"
	}
	fmt.Println("File name:", filepath.Base(cmd.Input))
	fmt.Println("Scaling:", src, "with a =", dec(a))
	fmt.Println("Control points:", g.Points().Len())
	for _, p := range g.Points().All() {
		r, gr, b := p.Color.RGB255()
		fixed := ""
		if p.Fixed {
			fixed = " fixed"
		}
		fmt.Printf("  %-6s #%02x%02x%02x a=%-6s %s%s\n", dec(p.Pos), r, gr, b, dec(p.Color.A), p.Channels, fixed)
	}
	return nil
}

func (cmd *New) Run() error {
	setVerbose(cmd.Verbose)
	if cmd.Output == "" {
		return argp.ShowUsage
	}

	g := gradient.New(nil)
	if cmd.Points != "" {
		for _, s := range strings.Split(cmd.Points, ",") {
			p, err := parsePoint(strings.TrimSpace(s))
			if err != nil {
				return err
			}
			if _, err := g.Insert(p); err != nil {
				return err
			}
		}
	}
	if err := g.SetScalingFunction(cmd.Scaling); err != nil {
		return err
	}
	if err := g.SetScalingParameter(cmd.Parameter); err != nil {
		return err
	}
	return g.Save(cmd.Output, gradient.PreviewFormat(cmd.Preview), gradient.LUTSize(cmd.Size))
}

// parsePoint parses a movable control point of the form pos:#rrggbb[:channels], where channels defaults to hsv.
func parsePoint(s string) (*gradient.ControlPoint, error) {
	fields := strings.Split(s, ":")
	if len(fields) < 2 || 3 < len(fields) {
		return nil, fmt.Errorf("bad control point %q: expected pos:#rrggbb[:channels]", s)
	}
	pos, n := strconv.ParseFloat([]byte(fields[0]))
	if n == 0 || n != len(fields[0]) {
		return nil, fmt.Errorf("bad control point %q: bad position", s)
	}
	c, err := colorful.Hex(fields[1])
	if err != nil {
		return nil, fmt.Errorf("bad control point %q: %w", s, err)
	}
	channels := gradient.ChannelsHSV
	if len(fields) == 3 {
		if channels, err = gradient.ParseChannels(fields[2]); err != nil {
			return nil, fmt.Errorf("bad control point %q: %w", s, err)
		}
	}
	return gradient.NewControlPoint(pos, channels, gradient.FromRGBA(c.R, c.G, c.B, 1.0)), nil
}

func (cmd *LUT) Run() error {
	setVerbose(cmd.Verbose)
	g, err := load(cmd.Input)
	if err != nil {
		return err
	}
	return output(cmd.Output, func(w io.Writer) error {
		return g.WriteLUT(w, cmd.Name, cmd.Size)
	})
}

func (cmd *Preview) Run() error {
	setVerbose(cmd.Verbose)
	g, err := load(cmd.Input)
	if err != nil {
		return err
	}
	format := cmd.Format
	if cmd.Output != "" && filepath.Ext(cmd.Output) != "" {
		format = filepath.Ext(cmd.Output)
	}
	filename, err := outputOrTemp(cmd.Output, cmd.Open, format)
	if err != nil {
		return err
	}
	if err := output(filename, func(w io.Writer) error {
		return g.WritePreview(w, format, cmd.Width)
	}); err != nil {
		return err
	}
	if cmd.Open {
		return browser.OpenFile(filename)
	}
	return nil
}

func (cmd *Plot) Run() error {
	setVerbose(cmd.Verbose)
	g, err := load(cmd.Input)
	if err != nil {
		return err
	}
	format := cmd.Format
	if cmd.Output != "" && filepath.Ext(cmd.Output) != "" {
		format = filepath.Ext(cmd.Output)
	}
	filename, err := outputOrTemp(cmd.Output, cmd.Open, format)
	if err != nil {
		return err
	}

	opts := chart.DefaultOptions
	opts.HSV = cmd.HSV
	opts.Samples = cmd.Samples
	if err := output(filename, func(w io.Writer) error {
		return chart.Write(w, g, format, opts)
	}); err != nil {
		return err
	}
	if cmd.Open {
		return browser.OpenFile(filename)
	}
	return nil
}

// outputOrTemp returns the output filename, or a temporary file when the output is to be opened but no filename was given.
func outputOrTemp(filename string, open bool, format string) (string, error) {
	if filename != "" || !open {
		return filename, nil
	}
	f, err := os.CreateTemp("", "gradient-*."+strings.TrimPrefix(format, "."))
	if err != nil {
		return "", err
	}
	return f.Name(), f.Close()
}

// output writes to the file, or to standard output when filename is empty or a dash.
func output(filename string, write func(io.Writer) error) error {
	if filename == "" || filename == "-" {
		return write(os.Stdout)
	}
	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	if err := write(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
