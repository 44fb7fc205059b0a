package fractal

import (
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/RustyDaemon/mandelbrot-plot/pkg/errors"
	"github.com/RustyDaemon/mandelbrot-plot/pkg/palette"
	"github.com/RustyDaemon/mandelbrot-plot/pkg/plane"
)

// Option configures Generate.
type Option func(*generator)

type generator struct {
	limit  int
	onBand func(Band)
}

// WithLimit sets the iteration cap (default DefaultLimit).
func WithLimit(n int) Option {
	return func(g *generator) { g.limit = n }
}

// WithBandHook registers fn to be called after each band finishes rendering.
// fn is called from the band's goroutine and must be safe for concurrent use.
func WithBandHook(fn func(Band)) Option {
	return func(g *generator) { g.onBand = fn }
}

// DefaultRowsPerBand spreads height rows over one band per logical CPU.
func DefaultRowsPerBand(height int) int {
	return height/runtime.NumCPU() + 1
}

// Bands computes the band decomposition of an image of the given bounds
// spanning upperLeft to lowerRight. The last band is shorter when height is
// not a multiple of rowsPerBand.
func Bands(rowsPerBand int, bounds plane.Bounds, upperLeft, lowerRight complex128) []Band {
	var bands []Band
	for i, top := 0, 0; top < bounds.Height; i, top = i+1, top+rowsPerBand {
		height := min(rowsPerBand, bounds.Height-top)
		bands = append(bands, Band{
			Index:  i,
			Top:    top,
			Bounds: plane.Bounds{Width: bounds.Width, Height: height},
			Rect: plane.Rect{
				UpperLeft:  plane.PixelToPoint(bounds, plane.Pixel{X: 0, Y: top}, upperLeft, lowerRight),
				LowerRight: plane.PixelToPoint(bounds, plane.Pixel{X: bounds.Width, Y: top + height}, upperLeft, lowerRight),
			},
		})
	}
	return bands
}

// Generate renders the Mandelbrot set over the plane rectangle upperLeft to
// lowerRight into a new row-major RGB buffer of bounds.Width*bounds.Height*3
// bytes.
//
// The buffer is split into bands of rowsPerBand rows, rendered concurrently
// and joined before returning. If any band fails the whole render fails and
// no buffer is returned.
func Generate(rowsPerBand int, bounds plane.Bounds, upperLeft, lowerRight complex128, schema palette.Schema, opts ...Option) ([]byte, error) {
	g := generator{limit: DefaultLimit}
	for _, opt := range opts {
		opt(&g)
	}

	if err := bounds.Validate(); err != nil {
		return nil, err
	}
	if err := errors.ValidatePlane(upperLeft, lowerRight); err != nil {
		return nil, err
	}
	if err := errors.ValidatePositive("rows per band", rowsPerBand); err != nil {
		return nil, err
	}
	if err := errors.ValidatePositive("iteration limit", g.limit); err != nil {
		return nil, err
	}

	pixels := make([]byte, bounds.Len())
	stride := bounds.Width * 3

	var eg errgroup.Group
	for _, band := range Bands(rowsPerBand, bounds, upperLeft, lowerRight) {
		band := band // per-iteration copy (pre-Go 1.22 loop semantics)
		start := band.Top * stride
		chunk := pixels[start : start+band.Bounds.Height*stride : start+band.Bounds.Height*stride]

		eg.Go(func() (err error) {
			defer func() {
				if r := recover(); r != nil {
					err = errors.New(errors.ErrCodeInternal, "band %d (rows %d-%d): %v",
						band.Index, band.Top, band.Top+band.Bounds.Height-1, r)
				}
			}()

			RenderBand(chunk, band.Bounds, band.Rect.UpperLeft, band.Rect.LowerRight, schema, g.limit)
			if g.onBand != nil {
				g.onBand(band)
			}
			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		return nil, fmt.Errorf("render %s: %w", bounds, err)
	}
	return pixels, nil
}
