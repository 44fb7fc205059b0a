// Package sink encodes rendered RGB pixel buffers into image files.
//
// A pixel buffer is a flat, row-major sequence of 3-byte RGB triples as
// produced by fractal.Generate. Supported formats:
//
//   - png: lossless, via image/png
//   - tiff: lossless, via golang.org/x/image/tiff
//   - ppm: binary portable pixmap (P6), the raw buffer behind a short header
package sink

import (
	"bytes"
	"image"
	"image/color"
	"sort"

	"github.com/RustyDaemon/mandelbrot-plot/pkg/errors"
)

// Format constants for output formats.
const (
	FormatPNG  = "png"
	FormatTIFF = "tiff"
	FormatPPM  = "ppm"
)

// Encoder encodes a pixel buffer of the given size.
type Encoder func(pixels []byte, width, height int) ([]byte, error)

var encoders = map[string]Encoder{
	FormatPNG:  RenderPNG,
	FormatTIFF: RenderTIFF,
	FormatPPM:  RenderPPM,
}

// Formats returns the supported format names in sorted order.
func Formats() []string {
	names := make([]string, 0, len(encoders))
	for name := range encoders {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ValidateFormat checks that a format is supported.
func ValidateFormat(format string) error {
	if _, ok := encoders[format]; !ok {
		return errors.New(errors.ErrCodeInvalidFormat, "invalid format: %q (must be one of: png, tiff, ppm)", format)
	}
	return nil
}

// ValidateFormats checks that all formats are supported.
func ValidateFormats(formats []string) error {
	for _, f := range formats {
		if err := ValidateFormat(f); err != nil {
			return err
		}
	}
	return nil
}

// Encode dispatches to the encoder registered for format.
func Encode(format string, pixels []byte, width, height int) ([]byte, error) {
	enc, ok := encoders[format]
	if !ok {
		return nil, ValidateFormat(format)
	}
	return enc(pixels, width, height)
}

// ToImage copies a pixel buffer into an opaque *image.RGBA.
func ToImage(pixels []byte, width, height int) (*image.RGBA, error) {
	if err := errors.ValidateBounds(width, height); err != nil {
		return nil, err
	}
	if len(pixels) != width*height*3 {
		return nil, errors.New(errors.ErrCodeInvalidInput,
			"pixel buffer holds %d bytes, %dx%d RGB needs %d", len(pixels), width, height, width*height*3)
	}

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			i := (y*width + x) * 3
			img.SetRGBA(x, y, color.RGBA{R: pixels[i], G: pixels[i+1], B: pixels[i+2], A: 255})
		}
	}
	return img, nil
}

func encodeWith(pixels []byte, width, height int, enc func(*bytes.Buffer, image.Image) error) ([]byte, error) {
	img, err := ToImage(pixels, width, height)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := enc(&buf, img); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
