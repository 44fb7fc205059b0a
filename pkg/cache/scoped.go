package cache

// ScopedKeyer wraps a Keyer with a prefix so that several consumers can share
// one backend without colliding, e.g. the HTTP service and CLI runs pointed
// at the same Redis.
//
//	apiKeyer := NewScopedKeyer(NewDefaultKeyer(), "api:")
type ScopedKeyer struct {
	inner  Keyer
	prefix string
}

// NewScopedKeyer creates a keyer with a prefix.
// The prefix is prepended to all generated keys.
func NewScopedKeyer(inner Keyer, prefix string) Keyer {
	if inner == nil {
		inner = NewDefaultKeyer()
	}
	return &ScopedKeyer{
		inner:  inner,
		prefix: prefix,
	}
}

// RenderKey generates a prefixed key for a raw render.
func (k *ScopedKeyer) RenderKey(opts RenderKeyOpts) string {
	return k.prefix + k.inner.RenderKey(opts)
}

// ArtifactKey generates a prefixed key for an encoded artifact.
func (k *ScopedKeyer) ArtifactKey(renderHash, format string) string {
	return k.prefix + k.inner.ArtifactKey(renderHash, format)
}
