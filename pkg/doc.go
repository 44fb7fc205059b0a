// Package pkg provides the libraries behind mandelplot.
//
// # Overview
//
// mandelplot renders a rectangular region of the Mandelbrot set to an image.
// The pkg directory is organized by stage:
//
//  1. [plane] - Image bounds, plane rectangles and pixel-to-point mapping
//  2. [fractal] - Escape-time iteration and parallel banded rendering
//  3. [palette] - Color schemas mapping iteration counts to RGB
//  4. [sink] - Image encoders (PNG, TIFF, PPM)
//  5. [pipeline] - Orchestration (validate → render → encode) with caching
//  6. [cache] - File, Redis and no-op cache backends
//
// # Architecture
//
// The typical data flow:
//
//	size + viewport + schema
//	         ↓
//	    [plane] package (map pixels to complex points)
//	         ↓
//	    [fractal] package (iterate bands in parallel, color via [palette])
//	         ↓
//	    [sink] package (encode the RGB buffer)
//	         ↓
//	    PNG/TIFF/PPM output
//
// # Quick Start
//
//	import (
//	    "github.com/RustyDaemon/mandelbrot-plot/pkg/fractal"
//	    "github.com/RustyDaemon/mandelbrot-plot/pkg/palette"
//	    "github.com/RustyDaemon/mandelbrot-plot/pkg/plane"
//	    "github.com/RustyDaemon/mandelbrot-plot/pkg/sink"
//	)
//
//	bounds := plane.Bounds{Width: 1000, Height: 750}
//	pixels, err := fractal.Generate(fractal.DefaultRowsPerBand(bounds.Height), bounds,
//	    complex(-1.20, 0.35), complex(-1, 0.20), palette.HueRotation)
//	if err != nil {
//	    return err
//	}
//	png, err := sink.RenderPNG(pixels, bounds.Width, bounds.Height)
//
// Most callers should use [pipeline.Runner], which adds validation, caching
// and observability hooks around the same steps.
//
// Supporting packages:
//
//   - [errors] - Coded errors and input validation
//   - [observability] - Hook interfaces for metrics and tracing
//   - [buildinfo] - Version information set at build time
package pkg
