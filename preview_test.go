package gradient

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"testing"

	"github.com/tdewolff/test"
	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
)

func TestPreviewImage(t *testing.T) {
	g := New(nil)
	test.Error(t, g.SetControlPoints(blackWhite()))
	img, err := g.PreviewImage(5)
	test.Error(t, err)
	test.T(t, img.Bounds(), image.Rect(0, 0, 5, PreviewHeight))
	for y := 0; y < PreviewHeight; y += PreviewHeight - 1 {
		test.T(t, img.NRGBAAt(0, y), color.NRGBA{0, 0, 0, 255})
		test.T(t, img.NRGBAAt(1, y), color.NRGBA{64, 64, 64, 255})
		test.T(t, img.NRGBAAt(3, y), color.NRGBA{191, 191, 191, 255})
		test.T(t, img.NRGBAAt(4, y), color.NRGBA{255, 255, 255, 255})
	}
}

func TestWritePreview(t *testing.T) {
	g := New(nil)
	var tests = []struct {
		ext    string
		decode func(r *bytes.Buffer) (image.Image, error)
	}{
		{".png", func(r *bytes.Buffer) (image.Image, error) { return png.Decode(r) }},
		{"PNG", func(r *bytes.Buffer) (image.Image, error) { return png.Decode(r) }},
		{".bmp", func(r *bytes.Buffer) (image.Image, error) { return bmp.Decode(r) }},
		{".tiff", func(r *bytes.Buffer) (image.Image, error) { return tiff.Decode(r) }},
	}
	for _, tt := range tests {
		t.Run(tt.ext, func(t *testing.T) {
			var buf bytes.Buffer
			test.Error(t, g.WritePreview(&buf, tt.ext, 16))
			img, err := tt.decode(&buf)
			test.Error(t, err)
			test.T(t, img.Bounds(), image.Rect(0, 0, 16, PreviewHeight))
			r, gr, b, _ := img.At(15, 0).RGBA()
			test.T(t, [3]uint32{r, gr, b}, [3]uint32{0xffff, 0xffff, 0xffff})
		})
	}

	var buf bytes.Buffer
	test.Error(t, g.WritePreview(&buf, ".jpg", 16))
	test.Error(t, g.WritePreview(&buf, ".gif", 16))
	test.That(t, g.WritePreview(&buf, ".svg", 16) != nil, "expected unknown extension")
	test.That(t, g.WritePreview(&buf, ".png", 16, "option") != nil, "expected unknown option")
	test.That(t, g.WritePreview(&buf, ".png", 0) != nil, "expected size error")
}

func TestWritePreviewOpaque(t *testing.T) {
	g := New(nil)
	test.Error(t, g.SetColor(0, HSVA(0.0, 0.0, 1.0, 0.0)))

	var buf bytes.Buffer
	test.Error(t, g.WritePreview(&buf, ".jpg", 16))
	img, err := jpeg.Decode(&buf)
	test.Error(t, err)
	r, gr, b, _ := img.At(0, 0).RGBA()
	test.That(t, 0xf800 <= r && 0xf800 <= gr && 0xf800 <= b, "transparent entry not white", r, gr, b)

	buf.Reset()
	test.Error(t, g.WritePreview(&buf, ".bmp", 16))
	img, err = bmp.Decode(&buf)
	test.Error(t, err)
	r, gr, b, a := img.At(0, 0).RGBA()
	test.T(t, [4]uint32{r, gr, b, a}, [4]uint32{0xffff, 0xffff, 0xffff, 0xffff})

	// png keeps the alpha
	buf.Reset()
	test.Error(t, g.WritePreview(&buf, ".png", 16))
	img, err = png.Decode(&buf)
	test.Error(t, err)
	test.T(t, color.NRGBAModel.Convert(img.At(0, 0)).(color.NRGBA), color.NRGBA{255, 255, 255, 0})
}

func TestWritePreviewUnsupported(t *testing.T) {
	g := New(nil)
	var buf bytes.Buffer
	err := g.WritePreview(&buf, ".webp", 16)
	if err != nil {
		test.That(t, errors.Is(err, errors.ErrUnsupported), "expected ErrUnsupported", err)
		test.That(t, isUnsupported(err))
	}
}
