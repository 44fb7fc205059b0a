package fractal

import (
	"fmt"

	"github.com/RustyDaemon/mandelbrot-plot/pkg/palette"
	"github.com/RustyDaemon/mandelbrot-plot/pkg/plane"
)

// Band is one horizontal slice of an image.
type Band struct {
	Index  int          // position of the band, top to bottom
	Top    int          // first global row covered by the band
	Bounds plane.Bounds // band-local size; Width equals the image width
	Rect   plane.Rect   // complex-plane corners of the band
}

// RenderBand colors every pixel of a band into pixels.
//
// bounds, upperLeft and lowerRight describe the band itself, not the whole
// image. pixels must hold exactly bounds.Width*bounds.Height*3 bytes; any
// other length is a partitioning bug and RenderBand panics.
func RenderBand(pixels []byte, bounds plane.Bounds, upperLeft, lowerRight complex128, schema palette.Schema, limit int) {
	if len(pixels) != bounds.Len() {
		panic(fmt.Sprintf("fractal: band buffer holds %d bytes, bounds %s need %d", len(pixels), bounds, bounds.Len()))
	}

	for row := 0; row < bounds.Height; row++ {
		for col := 0; col < bounds.Width; col++ {
			point := plane.PixelToPoint(bounds, plane.Pixel{X: col, Y: row}, upperLeft, lowerRight)
			count, escaped := EscapeTime(point, limit)
			color := palette.Color(count, escaped, limit, schema)

			i := (row*bounds.Width + col) * 3
			pixels[i] = color[0]
			pixels[i+1] = color[1]
			pixels[i+2] = color[2]
		}
	}
}
