package main

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/tdewolff/gradient"
	"github.com/tdewolff/test"
)

func TestParsePoint(t *testing.T) {
	p, err := parsePoint("0.5:#ff0000")
	test.Error(t, err)
	test.Float(t, p.Pos, 0.5)
	test.That(t, !p.Fixed)
	test.T(t, p.Channels, gradient.ChannelsHSV)
	test.T(t, p.Color, gradient.HSVA(0.0, 1.0, 1.0, 1.0))

	p, err = parsePoint("1e-1:#00ff00")
	test.Error(t, err)
	test.Float(t, p.Pos, 0.1)

	p, err = parsePoint("0.25:#000000:a")
	test.Error(t, err)
	test.T(t, p.Channels, gradient.ChannelA)

	var tests = []string{
		"",
		"0.5",
		"half:#ff0000",
		"0.5x:#ff0000",
		":#ff0000",
		"0.5:red",
		"0.5:#ff0000:xyz",
		"0.5:#ff0000:h:s",
	}
	for _, tt := range tests {
		t.Run(tt, func(t *testing.T) {
			_, err := parsePoint(tt)
			test.That(t, err != nil, "expected error")
		})
	}
}

func TestOutput(t *testing.T) {
	filename := filepath.Join(t.TempDir(), "out.txt")
	test.Error(t, output(filename, func(w io.Writer) error {
		_, err := w.Write([]byte("lut"))
		return err
	}))
	b, err := os.ReadFile(filename)
	test.Error(t, err)
	test.String(t, string(b), "lut")

	name, err := outputOrTemp("", true, ".png")
	test.Error(t, err)
	defer os.Remove(name)
	test.String(t, filepath.Ext(name), ".png")

	name, err = outputOrTemp("", false, ".png")
	test.Error(t, err)
	test.String(t, name, "")
}

func TestNewRun(t *testing.T) {
	dir := t.TempDir()
	cmd := &New{
		Points:    "0.5:#ff0000, 0.8:#000000:a",
		Scaling:   "x**a",
		Parameter: 2.0,
		Preview:   "",
		Size:      8,
		Output:    filepath.Join(dir, "red.grad"),
	}
	test.Error(t, cmd.Run())

	g := gradient.New(nil)
	test.Error(t, g.Load(cmd.Output))
	test.T(t, g.Points().Len(), 5)
	src, a := g.ScalingFunction()
	test.String(t, src, "x**a")
	test.Float(t, a, 2.0)

	var buf bytes.Buffer
	test.Error(t, g.WriteLUT(&buf, "UnnamedTable", 8))
	lut, err := os.ReadFile(filepath.Join(dir, "red.lut"))
	test.Error(t, err)
	test.String(t, string(lut), buf.String())

	cmd.Points = "0.5:#zz0000"
	test.That(t, cmd.Run() != nil, "expected error")
}
