package gradient

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/tdewolff/parse/v2/strconv"
)

// FileVersion is the version written to gradient files.
const FileVersion = "2.0"

// File is the content of a .grad gradient file.
type File struct {
	Version          float64
	ScalingFunction  string
	ScalingParameter float64
	Points           *ControlPoints
}

// Decode reads a gradient file. Files of version 1.1 and later contain the scaling function and parameter, for older files these are empty and DefaultScalingParameter. Every control point is a line of seven fields: position, fixed flag, channel mask, hue, saturation, value, and alpha. Malformed lines return a ParseError.
func Decode(r io.Reader) (*File, error) {
	scanner := bufio.NewScanner(r)
	i := 0
	next := func() (string, bool) {
		if !scanner.Scan() {
			return "", false
		}
		i++
		return scanner.Text(), true
	}

	line, ok := next()
	if !ok {
		if err := scanner.Err(); err != nil {
			return nil, err
		}
		return nil, &ParseError{1, "", fmt.Errorf("missing version tag")}
	}
	fields := strings.Fields(line)
	if len(fields) < 2 || fields[0] != "V" {
		return nil, &ParseError{i, line, fmt.Errorf("missing version tag")}
	}
	version, err := parseFloat(fields[1])
	if err != nil {
		return nil, &ParseError{i, line, fmt.Errorf("bad version: %w", err)}
	}

	f := &File{
		Version:          version,
		ScalingParameter: DefaultScalingParameter,
	}
	if 1.1 <= version+1e-5 {
		line, _ = next()
		name, value, ok := strings.Cut(line, ":")
		if !ok || strings.TrimSpace(name) != "ScalingFunction" {
			return nil, &ParseError{i, line, fmt.Errorf("expected scaling function")}
		}
		f.ScalingFunction = strings.TrimSpace(value)

		line, _ = next()
		name, value, ok = strings.Cut(line, ":")
		if !ok || strings.TrimSpace(name) != "ScalingParameter" {
			return nil, &ParseError{i, line, fmt.Errorf("expected scaling parameter")}
		} else if f.ScalingParameter, err = parseFloat(strings.TrimSpace(value)); err != nil {
			return nil, &ParseError{i, line, err}
		}
	}
	next() // control points header

	var points []*ControlPoint
	for {
		line, ok := next()
		if !ok {
			break
		}
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		} else if len(fields) < 7 {
			return nil, &ParseError{i, line, fmt.Errorf("expected 7 fields, got %d", len(fields))}
		}

		p := &ControlPoint{}
		var vals [5]float64
		for j, k := range []int{0, 3, 4, 5, 6} {
			if vals[j], err = parseFloat(fields[k]); err != nil {
				return nil, &ParseError{i, line, err}
			}
		}
		if p.Fixed, err = parseBool(fields[1]); err != nil {
			return nil, &ParseError{i, line, err}
		} else if p.Channels, err = ParseChannels(fields[2]); err != nil {
			return nil, &ParseError{i, line, err}
		}
		p.SetPos(vals[0])
		p.Color.SetHSVA(vals[1], vals[2], vals[3], vals[4])
		points = append(points, p)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	f.Points = NewControlPoints(points...)
	return f, nil
}

// Encode writes the gradient file with version FileVersion.
func (f *File) Encode(w io.Writer) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "V %s Color Gradient File\n", FileVersion)
	fmt.Fprintf(bw, "ScalingFunction: %s\n", f.ScalingFunction)
	fmt.Fprintf(bw, "ScalingParameter: %v\n", f.ScalingParameter)
	fmt.Fprintf(bw, "ControlPoints: (pos fixed bindings h s v a)\n")
	for _, p := range f.Points.All() {
		fixed := "False"
		if p.Fixed {
			fixed = "True"
		}
		fmt.Fprintf(bw, "  %v %s %v %v %v %v %v\n", p.Pos, fixed, p.Channels, p.Color.H, p.Color.S, p.Color.V, p.Color.A)
	}
	return bw.Flush()
}

func parseFloat(s string) (float64, error) {
	f, n := strconv.ParseFloat([]byte(s))
	if n == 0 || n != len(s) {
		return 0.0, fmt.Errorf("bad number %q", s)
	}
	return f, nil
}

func parseBool(s string) (bool, error) {
	switch s {
	case "True", "true", "1":
		return true, nil
	case "False", "false", "0":
		return false, nil
	}
	return false, fmt.Errorf("bad boolean %q", s)
}

////////////////////////////////////////////////////////////////

// File returns a snapshot of the gradient as a gradient file.
func (g *Gradient) File() *File {
	return &File{
		ScalingFunction:  g.scaling.src,
		ScalingParameter: g.scaling.param,
		Points:           g.points.Clone(),
	}
}

// SetFile replaces the control points and the scaling function by those of a gradient file. If the interpolator does not support scaling, the scaling function is kept only to be written out again. On error the gradient is unchanged.
func (g *Gradient) SetFile(f *File) error {
	scaling := ScalingFunction{
		src:   f.ScalingFunction,
		param: f.ScalingParameter,
	}
	if g.interp.SupportsScaling() {
		prog, err := compileScaling(scaling.src, scaling.param)
		if err != nil {
			return err
		}
		scaling.prog = prog
	} else if strings.TrimSpace(scaling.src) != "" {
		Logger().Warn("scaling function not supported by interpolator", "scaling", scaling.src)
	}

	if f.Points == nil {
		return fmt.Errorf("no control points: %w", ErrInconsistent)
	}
	points := f.Points.Clone()
	if !points.Sorted() {
		points.Sort()
	}
	if err := g.interp.Update(points); err != nil {
		return err
	}
	g.points = points
	g.scaling = scaling
	return nil
}

// Encode writes the gradient as a gradient file.
func (g *Gradient) Encode(w io.Writer) error {
	return g.File().Encode(w)
}

// Decode reads a gradient file and replaces the control points and scaling function. On error the gradient is unchanged.
func (g *Gradient) Decode(r io.Reader) error {
	f, err := Decode(r)
	if err != nil {
		return err
	}
	return g.SetFile(f)
}

// Load reads the gradient file filename. On error the gradient is unchanged.
func (g *Gradient) Load(filename string) error {
	r, err := os.Open(filename)
	if err != nil {
		return err
	}
	defer r.Close()

	if err := g.Decode(r); err != nil {
		return fmt.Errorf("%s: %w", filename, err)
	}
	Logger().Debug("control points loaded", "file", filename, "points", g.points.Len())
	return nil
}

////////////////////////////////////////////////////////////////

// PreviewFormat is a Save option setting the file extension of the preview image, such as ".png". The default is ".jpg".
type PreviewFormat string

// NoPreview is a Save option that disables writing a preview image.
const NoPreview = PreviewFormat("")

// LUTSize is a Save option setting the number of entries of the lookup table. The default is DefaultTableSize.
type LUTSize int

// LUTName is a Save option setting the name of the lookup table. The default is "UnnamedTable".
type LUTName string

// Save writes the gradient file, a lookup table, and a preview image. Known extensions of filename (.grad, .lut, .jpg, .jpeg, and that of the preview) are stripped to obtain the base name, to which .grad, .lut, and the preview extension are appended. Options are PreviewFormat, NoPreview, LUTSize, LUTName, and options accepted by WritePreview. The preview is skipped with a warning if its format is not supported by this build.
func (g *Gradient) Save(filename string, opts ...interface{}) error {
	format := PreviewFormat(".jpg")
	size := LUTSize(DefaultTableSize)
	name := LUTName("UnnamedTable")
	previewOpts := []interface{}{}
	for _, opt := range opts {
		switch o := opt.(type) {
		case PreviewFormat:
			format = o
		case LUTSize:
			size = o
		case LUTName:
			name = o
		default:
			previewOpts = append(previewOpts, opt)
		}
	}
	if format != NoPreview && !strings.HasPrefix(string(format), ".") {
		format = "." + format
	}

	base := filename
	switch ext := strings.ToLower(filepath.Ext(filename)); ext {
	case ".grad", ".lut", ".jpg", ".jpeg", strings.ToLower(string(format)):
		base = filename[:len(filename)-len(ext)]
	}

	if err := writeFile(base+".grad", g.Encode); err != nil {
		return err
	}
	if err := writeFile(base+".lut", func(w io.Writer) error {
		return g.WriteLUT(w, string(name), int(size))
	}); err != nil {
		return err
	}
	if format != NoPreview {
		previewFilename := base + string(format)
		err := writeFile(previewFilename, func(w io.Writer) error {
			return g.WritePreview(w, string(format), int(size), previewOpts...)
		})
		if isUnsupported(err) {
			os.Remove(previewFilename)
			Logger().Warn("preview skipped", "file", previewFilename, "error", err)
		} else if err != nil {
			return err
		}
	}
	Logger().Debug("gradient saved", "file", base+".grad")
	return nil
}

// WriteLUT writes a lookup table of n entries as text: a header "LOOKUP_TABLE name n" followed by a line of red, green, blue, and alpha for every entry. The scaling function is applied.
func (g *Gradient) WriteLUT(w io.Writer, name string, n int) error {
	lut, err := g.lookupTable(n)
	if err != nil {
		return err
	}

	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "LOOKUP_TABLE %s %d\n", name, n)
	for i := range n {
		r, gr, b, a := lut.Entry(i)
		fmt.Fprintf(bw, "%.4f %.4f %.4f %.4f\n", r, gr, b, a)
	}
	return bw.Flush()
}

func writeFile(filename string, write func(io.Writer) error) error {
	w, err := os.Create(filename)
	if err != nil {
		return err
	}
	if err := write(w); err != nil {
		w.Close()
		return fmt.Errorf("%s: %w", filename, err)
	}
	return w.Close()
}
