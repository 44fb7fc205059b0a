package sink

import (
	"bytes"
	"image"
	"image/png"
)

// RenderPNG encodes pixels as an 8-bit RGBA PNG at best compression.
func RenderPNG(pixels []byte, width, height int) ([]byte, error) {
	enc := png.Encoder{CompressionLevel: png.BestCompression}
	return encodeWith(pixels, width, height, func(buf *bytes.Buffer, img image.Image) error {
		return enc.Encode(buf, img)
	})
}
