// Package plane maps between pixel grids and the complex plane.
//
// An image is a rectangular grid of [Bounds] pixels laid over a [Rect] of the
// complex plane. Pixel (0, 0) sits on the rectangle's upper-left corner and
// pixel (Width, Height) on its lower-right corner, so the y axis grows
// downward while the imaginary part decreases.
//
//	b := plane.Bounds{Width: 1000, Height: 750}
//	c := plane.PixelToPoint(b, plane.Pixel{X: 500, Y: 375}, complex(-1.2, 0.35), complex(-1, 0.2))
package plane

import (
	"fmt"

	"github.com/RustyDaemon/mandelbrot-plot/pkg/errors"
)

// Bounds is the size of a pixel grid.
type Bounds struct {
	Width  int
	Height int
}

// Validate returns an INVALID_BOUNDS error unless both dimensions are positive.
func (b Bounds) Validate() error {
	return errors.ValidateBounds(b.Width, b.Height)
}

// Len returns the byte length of an RGB buffer covering b.
func (b Bounds) Len() int {
	return b.Width * b.Height * 3
}

func (b Bounds) String() string {
	return fmt.Sprintf("%dx%d", b.Width, b.Height)
}

// Pixel is a grid coordinate. X may equal Bounds.Width and Y may equal
// Bounds.Height when addressing the far edge of the grid.
type Pixel struct {
	X int
	Y int
}

// Rect is a viewport on the complex plane given by its corners.
type Rect struct {
	UpperLeft  complex128
	LowerRight complex128
}

// Validate returns an INVALID_PLANE error unless UpperLeft lies strictly
// left of and above LowerRight.
func (r Rect) Validate() error {
	return errors.ValidatePlane(r.UpperLeft, r.LowerRight)
}

// PixelToPoint returns the complex point under pixel px of a grid of size
// bounds spanning upperLeft to lowerRight. bounds must be non-zero in both
// dimensions.
func PixelToPoint(bounds Bounds, px Pixel, upperLeft, lowerRight complex128) complex128 {
	width := real(lowerRight) - real(upperLeft)
	height := imag(upperLeft) - imag(lowerRight)

	return complex(
		real(upperLeft)+float64(px.X)*width/float64(bounds.Width),
		imag(upperLeft)-float64(px.Y)*height/float64(bounds.Height),
	)
}
