package pipeline

import (
	"fmt"

	"github.com/RustyDaemon/mandelbrot-plot/pkg/fractal"
	"github.com/RustyDaemon/mandelbrot-plot/pkg/sink"
)

// Render runs the banded generator for opts without caching.
func Render(opts Options) ([]byte, error) {
	genOpts := []fractal.Option{fractal.WithLimit(opts.Limit)}
	if opts.OnBand != nil {
		genOpts = append(genOpts, fractal.WithBandHook(opts.OnBand))
	}
	return fractal.Generate(opts.RowsPerBand, opts.Bounds(), opts.UpperLeft, opts.LowerRight, opts.Schema, genOpts...)
}

// Encode converts pixels into every format in opts.Formats.
func Encode(pixels []byte, opts Options) (map[string][]byte, error) {
	artifacts := make(map[string][]byte, len(opts.Formats))
	for _, format := range opts.Formats {
		data, err := sink.Encode(format, pixels, opts.Width, opts.Height)
		if err != nil {
			return nil, fmt.Errorf("encode %s: %w", format, err)
		}
		artifacts[format] = data
	}
	return artifacts, nil
}
