//go:build formats

package gradient

import (
	"image"
	"io"

	"github.com/Kagami/go-avif"
	webp "github.com/kolesa-team/go-webp/encoder"
)

func (o *previewOptions) setFormatOption(opt interface{}) bool {
	switch opt.(type) {
	case *webp.Options:
		o.WebP = opt
	case *avif.Options:
		o.AVIF = opt
	default:
		return false
	}
	return true
}

func encodeWebP(w io.Writer, img image.Image, options previewOptions) error {
	opts, _ := options.WebP.(*webp.Options)
	if opts == nil {
		var err error
		if opts, err = webp.NewLossyEncoderOptions(webp.PresetDefault, 90); err != nil {
			return err
		}
	}
	enc, err := webp.NewEncoder(img, opts)
	if err != nil {
		return err
	}
	return enc.Encode(w)
}

func encodeAVIF(w io.Writer, img image.Image, options previewOptions) error {
	opts, _ := options.AVIF.(*avif.Options)
	return avif.Encode(w, img, opts)
}
