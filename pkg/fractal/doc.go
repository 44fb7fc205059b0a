// Package fractal renders the Mandelbrot set into RGB pixel buffers.
//
// # Escape time
//
// [EscapeTime] iterates z ← z² + c from z = 0 and reports the first iteration
// at which |z|² exceeds 4. Points that stay bounded for the whole iteration cap
// are treated as members of the set.
//
// # Bands
//
// [Generate] allocates a width×height×3 byte buffer and splits it into
// horizontal bands of rowsPerBand rows. Each band receives its own sub-slice
// of the buffer and its own complex-plane corners, computed with
// [plane.PixelToPoint] on the global grid so that band edges agree exactly
// with per-pixel mapping. Bands are rendered concurrently by [RenderBand] and
// joined before the buffer is returned:
//
//	pixels, err := fractal.Generate(rows, plane.Bounds{Width: 1000, Height: 750},
//	    complex(-1.2, 0.35), complex(-1, 0.2), palette.HueRotation)
//
// The result does not depend on rowsPerBand or on goroutine scheduling.
//
// A panic inside a band (for example a buffer/bounds mismatch) is recovered
// and reported as an INTERNAL_ERROR; no partial buffer is ever returned.
package fractal
