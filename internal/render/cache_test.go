package render

import (
	"context"
	"fmt"
	"testing"
)

// countingEngine counts Bundle invocations and can be made to fail.
type countingEngine struct {
	bundleCalls int
	failFirst   bool
}

func (e *countingEngine) Bundle(ctx context.Context) (*BundleArtifact, error) {
	e.bundleCalls++
	if e.failFirst && e.bundleCalls == 1 {
		return nil, fmt.Errorf("bundling failed")
	}
	return &BundleArtifact{ServeURL: fmt.Sprintf("serve-%d", e.bundleCalls)}, nil
}

func (e *countingEngine) SelectComposition(ctx context.Context, bundle *BundleArtifact, compositionID string, inputProps map[string]any) (*Composition, error) {
	return nil, fmt.Errorf("not implemented")
}

func (e *countingEngine) RenderMedia(ctx context.Context, comp *Composition, bundle *BundleArtifact, inputProps map[string]any, outputPath string, onProgress ProgressFunc) error {
	return fmt.Errorf("not implemented")
}

func TestBundleCacheMemoizes(t *testing.T) {
	eng := &countingEngine{}
	cache := NewBundleCache(eng)

	if cache.Cached() {
		t.Error("expected empty cache before first Get")
	}

	first, err := cache.Get(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for i := 0; i < 5; i++ {
		art, err := cache.Get(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if art != first {
			t.Fatal("expected the same artifact to be reused")
		}
	}

	if eng.bundleCalls != 1 {
		t.Errorf("expected exactly one bundle call, got %d", eng.bundleCalls)
	}
	if !cache.Cached() {
		t.Error("expected cache to report cached after Get")
	}
}

func TestBundleCacheDoesNotCacheFailure(t *testing.T) {
	eng := &countingEngine{failFirst: true}
	cache := NewBundleCache(eng)

	if _, err := cache.Get(context.Background()); err == nil {
		t.Fatal("expected first bundle to fail")
	}
	if cache.Cached() {
		t.Error("failed bundle must not be cached")
	}

	art, err := cache.Get(context.Background())
	if err != nil {
		t.Fatalf("expected retry to succeed, got: %v", err)
	}
	if art.ServeURL != "serve-2" {
		t.Errorf("expected second bundle result, got %s", art.ServeURL)
	}
	if eng.bundleCalls != 2 {
		t.Errorf("expected 2 bundle calls, got %d", eng.bundleCalls)
	}
}
