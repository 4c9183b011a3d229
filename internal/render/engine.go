// Package render is the call boundary to the external rendering engine.
// The engine (a headless-browser based renderer) runs as a sidecar service;
// this package exposes it as three async operations: bundle the project once,
// resolve a composition's metadata, and render a composition to a video file
// while streaming frame progress.
package render

import "context"

// BundleArtifact is an opaque handle to the compiled rendering project.
// It is expensive to produce and cheap to reuse; the sidecar serves the
// bundled project from ServeURL.
type BundleArtifact struct {
	ServeURL string `json:"serveUrl"`
}

// Composition holds the resolved metadata of a composition template.
type Composition struct {
	ID               string `json:"id"`
	Width            int    `json:"width"`
	Height           int    `json:"height"`
	FPS              int    `json:"fps"`
	DurationInFrames int    `json:"durationInFrames"`
}

// Progress is one progress event emitted during a render.
// RenderedDoneInMs is non-nil once all frames are rendered and encoding
// has taken over.
type Progress struct {
	RenderedFrames   int      `json:"renderedFrames"`
	EncodedFrames    int      `json:"encodedFrames"`
	RenderedDoneInMs *float64 `json:"renderedDoneIn"`
}

// ProgressFunc receives progress events. It is invoked from the goroutine
// driving the render; implementations must be fast and non-blocking.
type ProgressFunc func(Progress)

// Engine is the rendering engine contract consumed by the scheduler.
type Engine interface {
	// Bundle compiles the rendering project. Expensive; callers should
	// memoize the artifact (see BundleCache).
	Bundle(ctx context.Context) (*BundleArtifact, error)

	// SelectComposition resolves composition metadata for the given id and
	// input props. Fails on unknown composition ids.
	SelectComposition(ctx context.Context, bundle *BundleArtifact, compositionID string, inputProps map[string]any) (*Composition, error)

	// RenderMedia renders the composition to outputPath, invoking onProgress
	// zero or more times before returning.
	RenderMedia(ctx context.Context, comp *Composition, bundle *BundleArtifact, inputProps map[string]any, outputPath string, onProgress ProgressFunc) error
}
