// Package pipeline provides the render → encode pipeline shared by the CLI
// and the HTTP service.
//
// # Architecture
//
// The pipeline consists of two stages:
//
//  1. Render: run the banded Mandelbrot generator into a raw RGB buffer
//  2. Encode: turn the buffer into one or more image formats (png, tiff, ppm)
//
// Each stage is cached independently through a [cache.Cache]. Renders are
// deterministic, so a cached buffer is always byte-identical to a fresh one.
//
// # Usage
//
//	runner := pipeline.NewRunner(c, nil, logger)
//	result, err := runner.Execute(ctx, pipeline.Options{
//	    Width:      1000,
//	    Height:     750,
//	    UpperLeft:  complex(-1.20, 0.35),
//	    LowerRight: complex(-1, 0.20),
//	    Schema:     palette.Palette,
//	})
//	png := result.Artifacts["png"]
package pipeline

import (
	"time"

	"github.com/RustyDaemon/mandelbrot-plot/pkg/cache"
	"github.com/RustyDaemon/mandelbrot-plot/pkg/errors"
	"github.com/RustyDaemon/mandelbrot-plot/pkg/fractal"
	"github.com/RustyDaemon/mandelbrot-plot/pkg/palette"
	"github.com/RustyDaemon/mandelbrot-plot/pkg/plane"
	"github.com/RustyDaemon/mandelbrot-plot/pkg/sink"
)

// =============================================================================
// Default Values - Single Source of Truth for CLI and API
// =============================================================================

// DefaultFormat is the output format used when none is requested.
const DefaultFormat = sink.FormatPNG

// DefaultLimit is the iteration cap used when none is requested.
const DefaultLimit = fractal.DefaultLimit

// =============================================================================
// Options - Pipeline Configuration
// =============================================================================

// Options contains all configuration for one render.
type Options struct {
	// Render options
	Width       int            `json:"width"`
	Height      int            `json:"height"`
	UpperLeft   complex128     `json:"-"`
	LowerRight  complex128     `json:"-"`
	Schema      palette.Schema `json:"schema"`
	Limit       int            `json:"limit,omitempty"`
	RowsPerBand int            `json:"rows_per_band,omitempty"` // 0 = one band per CPU
	Refresh     bool           `json:"refresh,omitempty"`       // bypass cache reads

	// Encode options
	Formats []string `json:"formats,omitempty"`

	// Runtime options (not serialized)
	OnBand func(fractal.Band) `json:"-"` // called concurrently as bands finish

	validated bool
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// Pixels is the raw row-major RGB buffer.
	Pixels []byte

	// RenderHash is the content hash of Pixels.
	RenderHash string

	// Artifacts contains encoded outputs keyed by format.
	Artifacts map[string][]byte

	// Stats contains timing and size information.
	Stats Stats

	// CacheInfo tracks which stages hit the cache.
	CacheInfo CacheInfo
}

// Stats contains pipeline execution statistics.
type Stats struct {
	Bands      int // bands rendered in this run (0 on a render cache hit)
	RenderTime time.Duration
	EncodeTime time.Duration
}

// CacheInfo tracks cache hits for each pipeline stage.
type CacheInfo struct {
	RenderHit bool // Whether the pixel buffer came from cache
	EncodeHit bool // Whether all artifacts came from cache
}

// =============================================================================
// Options Methods
// =============================================================================

// Bounds returns the image size.
func (o *Options) Bounds() plane.Bounds {
	return plane.Bounds{Width: o.Width, Height: o.Height}
}

// Rect returns the plane rectangle.
func (o *Options) Rect() plane.Rect {
	return plane.Rect{UpperLeft: o.UpperLeft, LowerRight: o.LowerRight}
}

// SetDefaults fills in zero-valued tuning fields.
func (o *Options) SetDefaults() {
	if o.Limit == 0 {
		o.Limit = DefaultLimit
	}
	if o.RowsPerBand == 0 && o.Height > 0 {
		o.RowsPerBand = fractal.DefaultRowsPerBand(o.Height)
	}
	if len(o.Formats) == 0 {
		o.Formats = []string{DefaultFormat}
	}
}

// ValidateAndSetDefaults applies defaults and checks every field.
// This method is idempotent - calling it multiple times has the same effect as calling it once.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if err := o.ValidateForRender(); err != nil {
		return err
	}
	if err := sink.ValidateFormats(o.Formats); err != nil {
		return err
	}
	o.validated = true
	return nil
}

// ValidateForRender applies defaults and checks the render stage inputs.
func (o *Options) ValidateForRender() error {
	o.SetDefaults()
	if err := o.Bounds().Validate(); err != nil {
		return err
	}
	if err := o.Rect().Validate(); err != nil {
		return err
	}
	if err := errors.ValidatePositive("iteration limit", o.Limit); err != nil {
		return err
	}
	return errors.ValidatePositive("rows per band", o.RowsPerBand)
}

// BandCount returns how many bands the render stage will run.
func (o *Options) BandCount() int {
	if o.RowsPerBand <= 0 {
		return 0
	}
	return (o.Height + o.RowsPerBand - 1) / o.RowsPerBand
}

// RenderKeyOpts returns cache key options for the render stage.
func (o *Options) RenderKeyOpts() cache.RenderKeyOpts {
	return cache.RenderKeyOpts{
		Width:  o.Width,
		Height: o.Height,
		ULRe:   real(o.UpperLeft),
		ULIm:   imag(o.UpperLeft),
		LRRe:   real(o.LowerRight),
		LRIm:   imag(o.LowerRight),
		Schema: o.Schema.String(),
		Limit:  o.Limit,
	}
}
