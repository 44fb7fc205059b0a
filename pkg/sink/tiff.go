package sink

import (
	"bytes"
	"image"

	"golang.org/x/image/tiff"
)

// RenderTIFF encodes pixels as a deflate-compressed TIFF.
func RenderTIFF(pixels []byte, width, height int) ([]byte, error) {
	return encodeWith(pixels, width, height, func(buf *bytes.Buffer, img image.Image) error {
		return tiff.Encode(buf, img, &tiff.Options{Compression: tiff.Deflate, Predictor: true})
	})
}
