//go:build !formats

package gradient

import (
	"errors"
	"fmt"
	"image"
	"io"
)

func (o *previewOptions) setFormatOption(opt interface{}) bool {
	return false
}

// encodeWebP needs libwebp through CGO and the formats build tag.
func encodeWebP(w io.Writer, img image.Image, options previewOptions) error {
	return fmt.Errorf("WebP preview: CGO and the formats build tag are required: %w", errors.ErrUnsupported)
}

// encodeAVIF needs libaom through CGO and the formats build tag.
func encodeAVIF(w io.Writer, img image.Image, options previewOptions) error {
	return fmt.Errorf("AVIF preview: CGO and the formats build tag are required: %w", errors.ErrUnsupported)
}
