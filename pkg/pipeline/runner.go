package pipeline

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/charmbracelet/log"

	"github.com/RustyDaemon/mandelbrot-plot/pkg/cache"
	"github.com/RustyDaemon/mandelbrot-plot/pkg/fractal"
	"github.com/RustyDaemon/mandelbrot-plot/pkg/observability"
)

// Cache key types reported to observability hooks.
const (
	keyTypeRender   = "render"
	keyTypeArtifact = "artifact"
)

// Runner encapsulates pipeline execution with caching.
// Both CLI and API use it so that caching logic lives in one place.
//
// The Runner holds no per-render state; multiple goroutines can share one
// Runner with different options.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Logger *log.Logger
}

// NewRunner creates a runner with the given cache and keyer.
// If keyer is nil, a DefaultKeyer is used.
// If cache is nil, a NullCache is used (caching disabled).
func NewRunner(c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Cache:  c,
		Keyer:  keyer,
		Logger: logger,
	}
}

// Execute runs the complete render → encode pipeline with caching.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	result := &Result{}

	// Stage 1: Render
	var bands atomic.Int64
	onBand := opts.OnBand
	opts.OnBand = func(b fractal.Band) {
		bands.Add(1)
		observability.Render().OnBandComplete(ctx, b.Index, b.Top, b.Bounds.Height)
		if onBand != nil {
			onBand(b)
		}
	}

	renderStart := time.Now()
	pixels, renderHit, err := r.RenderWithCacheInfo(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	result.Pixels = pixels
	result.RenderHash = cache.Hash(pixels)
	result.Stats.RenderTime = time.Since(renderStart)
	result.Stats.Bands = int(bands.Load())
	result.CacheInfo.RenderHit = renderHit

	r.Logger.Info("rendered image",
		"size", opts.Bounds(),
		"schema", opts.Schema,
		"bands", result.Stats.Bands,
		"cached", renderHit,
		"duration", result.Stats.RenderTime)

	// Stage 2: Encode
	encodeStart := time.Now()
	artifacts, encodeHit, err := r.EncodeWithCacheInfo(ctx, pixels, result.RenderHash, opts)
	if err != nil {
		return nil, fmt.Errorf("encode: %w", err)
	}
	result.Artifacts = artifacts
	result.Stats.EncodeTime = time.Since(encodeStart)
	result.CacheInfo.EncodeHit = encodeHit

	r.Logger.Info("encoded outputs",
		"formats", opts.Formats,
		"cached", encodeHit,
		"duration", result.Stats.EncodeTime)

	return result, nil
}

// RenderWithCacheInfo produces the pixel buffer for opts, consulting the
// cache unless opts.Refresh is set, and reports whether it was a cache hit.
// Fresh renders are always written back.
func (r *Runner) RenderWithCacheInfo(ctx context.Context, opts Options) ([]byte, bool, error) {
	if err := opts.ValidateForRender(); err != nil {
		return nil, false, err
	}

	cacheKey := r.Keyer.RenderKey(opts.RenderKeyOpts())
	if !opts.Refresh {
		if data, hit, err := r.Cache.Get(ctx, cacheKey); err == nil && hit && len(data) == opts.Bounds().Len() {
			observability.Cache().OnCacheHit(ctx, keyTypeRender)
			return data, true, nil
		}
		observability.Cache().OnCacheMiss(ctx, keyTypeRender)
	}

	size, schema := opts.Bounds().String(), opts.Schema.String()
	observability.Render().OnRenderStart(ctx, size, schema, opts.BandCount())
	start := time.Now()
	pixels, err := Render(opts)
	observability.Render().OnRenderComplete(ctx, size, schema, time.Since(start), err)
	if err != nil {
		return nil, false, err
	}

	if err := r.Cache.Set(ctx, cacheKey, pixels, cache.TTLRender); err != nil {
		r.Logger.Warn("cache write failed", "key", keyTypeRender, "err", err)
	} else {
		observability.Cache().OnCacheSet(ctx, keyTypeRender, len(pixels))
	}
	return pixels, false, nil
}

// EncodeWithCacheInfo encodes pixels in every requested format. It reports a
// cache hit only when all formats came from cache.
func (r *Runner) EncodeWithCacheInfo(ctx context.Context, pixels []byte, renderHash string, opts Options) (map[string][]byte, bool, error) {
	if len(opts.Formats) == 0 {
		opts.Formats = []string{DefaultFormat}
	}

	artifacts := make(map[string][]byte, len(opts.Formats))
	if !opts.Refresh {
		for _, format := range opts.Formats {
			data, hit, err := r.Cache.Get(ctx, r.Keyer.ArtifactKey(renderHash, format))
			if err != nil || !hit {
				observability.Cache().OnCacheMiss(ctx, keyTypeArtifact)
				break
			}
			observability.Cache().OnCacheHit(ctx, keyTypeArtifact)
			artifacts[format] = data
		}
		if len(artifacts) == len(opts.Formats) {
			return artifacts, true, nil
		}
	}

	encoded := make(map[string][]byte, len(opts.Formats))
	for _, format := range opts.Formats {
		start := time.Now()
		one := opts
		one.Formats = []string{format}
		out, err := Encode(pixels, one)
		observability.Render().OnEncodeComplete(ctx, format, len(out[format]), time.Since(start), err)
		if err != nil {
			return nil, false, err
		}
		encoded[format] = out[format]
	}

	for format, data := range encoded {
		if err := r.Cache.Set(ctx, r.Keyer.ArtifactKey(renderHash, format), data, cache.TTLArtifact); err != nil {
			r.Logger.Warn("cache write failed", "key", keyTypeArtifact, "format", format, "err", err)
			continue
		}
		observability.Cache().OnCacheSet(ctx, keyTypeArtifact, len(data))
	}
	return encoded, false, nil
}

// Close releases resources held by the runner (primarily the cache).
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}
