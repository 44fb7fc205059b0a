// Package cache stores rendered pixel buffers and encoded artifacts.
//
// Renders are deterministic: the same image size, plane rectangle, schema and
// iteration limit always produce the same bytes, so results can be reused
// across CLI runs and shared between HTTP service replicas.
//
// Backends:
//   - [FileCache]: one JSON file per entry under a local directory (CLI default)
//   - [RedisCache]: a shared Redis instance (service deployments)
//   - [NullCache]: caching disabled
//
// Keys are produced by a [Keyer] so that callers never build key strings by
// hand. [ScopedKeyer] adds a namespace prefix.
package cache

import (
	"context"
	"time"
)

// TTLs for each entry type.
const (
	// TTLRender is how long raw pixel buffers are kept.
	TTLRender = 24 * time.Hour

	// TTLArtifact is how long encoded images are kept.
	TTLArtifact = 7 * 24 * time.Hour
)

// Cache is a byte-oriented key/value store with expiry.
type Cache interface {
	// Get returns the value for key and whether it was found.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores data under key. A zero ttl means no expiry.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases backend resources.
	Close() error
}

// Clearer is implemented by caches that can drop all of their entries.
type Clearer interface {
	Clear(ctx context.Context) (int, error)
}

// RenderKeyOpts identifies a raw render. Band layout is not part of the key
// because it never changes the output bytes.
type RenderKeyOpts struct {
	Width  int     `json:"width"`
	Height int     `json:"height"`
	ULRe   float64 `json:"ul_re"`
	ULIm   float64 `json:"ul_im"`
	LRRe   float64 `json:"lr_re"`
	LRIm   float64 `json:"lr_im"`
	Schema string  `json:"schema"`
	Limit  int     `json:"limit"`
}

// Keyer generates cache keys.
type Keyer interface {
	// RenderKey generates a key for a raw pixel buffer.
	RenderKey(opts RenderKeyOpts) string

	// ArtifactKey generates a key for an encoded image of a render.
	ArtifactKey(renderHash, format string) string
}

// DefaultKeyer hashes key options into fixed-length keys.
type DefaultKeyer struct{}

// NewDefaultKeyer creates the default keyer.
func NewDefaultKeyer() Keyer {
	return DefaultKeyer{}
}

// RenderKey returns "render:<sha256 of opts>".
func (DefaultKeyer) RenderKey(opts RenderKeyOpts) string {
	return hashKey("render", opts)
}

// ArtifactKey returns "artifact:<sha256 of render hash and format>".
func (DefaultKeyer) ArtifactKey(renderHash, format string) string {
	return hashKey("artifact", renderHash, format)
}
