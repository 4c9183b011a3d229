package render

import (
	"context"
	"sync"
)

// BundleCache memoizes the one-time project bundling step. The first caller
// pays the bundling cost; every later job reuses the same artifact for the
// process lifetime. A failed bundle is never cached, so the next job retries.
type BundleCache struct {
	engine Engine

	mu       sync.Mutex
	artifact *BundleArtifact
}

func NewBundleCache(engine Engine) *BundleCache {
	return &BundleCache{engine: engine}
}

// Get returns the cached artifact, bundling on first use.
func (b *BundleCache) Get(ctx context.Context) (*BundleArtifact, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.artifact != nil {
		return b.artifact, nil
	}

	art, err := b.engine.Bundle(ctx)
	if err != nil {
		return nil, err
	}

	b.artifact = art
	return art, nil
}

// Cached reports whether the artifact is already available without bundling.
func (b *BundleCache) Cached() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.artifact != nil
}
