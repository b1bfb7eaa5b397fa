package gradient

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/gif"
	"image/jpeg"
	"image/png"
	"io"
	"strings"

	"golang.org/x/image/bmp"
	"golang.org/x/image/draw"
	"golang.org/x/image/tiff"
)

// PreviewHeight is the height in pixels of preview images.
const PreviewHeight = 64

type previewOptions struct {
	JPG  *jpeg.Options
	GIF  *gif.Options
	TIFF *tiff.Options
	WebP interface{}
	AVIF interface{}
}

type previewEncoder func(io.Writer, image.Image, previewOptions) error

var previewEncoders = map[string]previewEncoder{
	".jpg":  encodeJPG,
	".jpeg": encodeJPG,
	".png":  encodePNG,
	".gif":  encodeGIF,
	".tif":  encodeTIFF,
	".tiff": encodeTIFF,
	".bmp":  encodeBMP,
	".webp": encodeWebP,
	".avif": encodeAVIF,
}

// PreviewImage returns an image of width n and height PreviewHeight where every column has the color of the corresponding entry of a lookup table of n entries.
func (g *Gradient) PreviewImage(n int) (*image.NRGBA, error) {
	lut, err := g.lookupTable(n)
	if err != nil {
		return nil, err
	}

	strip := image.NewNRGBA(image.Rect(0, 0, n, 1))
	for i := range n {
		r, gr, b, a := lut.Entry(i)
		strip.SetNRGBA(i, 0, RGBA{r, gr, b, a}.NRGBA())
	}
	img := image.NewNRGBA(image.Rect(0, 0, n, PreviewHeight))
	draw.NearestNeighbor.Scale(img, img.Bounds(), strip, strip.Bounds(), draw.Src, nil)
	return img, nil
}

// WritePreview writes a preview image of width n in the format given by its file extension: .jpg, .jpeg, .png, .gif, .tif, .tiff, .bmp, and, when built with the formats tag, .webp and .avif. Accepted options are *jpeg.Options, *gif.Options, *tiff.Options, and with the formats tag *webp.Options and *avif.Options. Formats that are not available in this build return an error matching errors.ErrUnsupported.
func (g *Gradient) WritePreview(w io.Writer, ext string, n int, opts ...interface{}) error {
	options := previewOptions{}
	for _, opt := range opts {
		switch o := opt.(type) {
		case *jpeg.Options:
			options.JPG = o
		case *gif.Options:
			options.GIF = o
		case *tiff.Options:
			options.TIFF = o
		default:
			if !options.setFormatOption(opt) {
				return fmt.Errorf("unknown option: %T(%v)", opt, opt)
			}
		}
	}

	if !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}
	encode, ok := previewEncoders[strings.ToLower(ext)]
	if !ok {
		return fmt.Errorf("unknown file extension: %v", ext)
	}
	img, err := g.PreviewImage(n)
	if err != nil {
		return err
	}
	return encode(w, img, options)
}

func encodeJPG(w io.Writer, img image.Image, options previewOptions) error {
	return jpeg.Encode(w, opaque(img), options.JPG)
}

func encodePNG(w io.Writer, img image.Image, options previewOptions) error {
	return png.Encode(w, img)
}

func encodeGIF(w io.Writer, img image.Image, options previewOptions) error {
	return gif.Encode(w, img, options.GIF)
}

func encodeTIFF(w io.Writer, img image.Image, options previewOptions) error {
	return tiff.Encode(w, img, options.TIFF)
}

func encodeBMP(w io.Writer, img image.Image, options previewOptions) error {
	return bmp.Encode(w, opaque(img))
}

// opaque drops the alpha channel of non alpha-premultiplied images for formats without transparency, so that translucent entries keep their color instead of fading to black.
func opaque(img image.Image) image.Image {
	src, ok := img.(*image.NRGBA)
	if !ok {
		return img
	}
	rect := src.Bounds()
	dst := image.NewRGBA(rect)
	for y := rect.Min.Y; y < rect.Max.Y; y++ {
		for x := rect.Min.X; x < rect.Max.X; x++ {
			c := src.NRGBAAt(x, y)
			dst.SetRGBA(x, y, color.RGBA{c.R, c.G, c.B, 0xff})
		}
	}
	return dst
}

func isUnsupported(err error) bool {
	return errors.Is(err, errors.ErrUnsupported)
}
