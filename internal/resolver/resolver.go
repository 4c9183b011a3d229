// Package resolver validates submission requests and maps them to a
// concrete composition plus input props, before anything is enqueued.
package resolver

import (
	"context"
	"fmt"
	"strings"
	"time"

	"motiongfx/internal/analyzer"
	"motiongfx/internal/pkg/errors"
	"motiongfx/internal/presets"
	"motiongfx/internal/queue"
)

// Reasons attached to validation errors so the HTTP layer can shape its
// response without string matching.
const (
	ReasonMissingParameter = "missingParameter"
	ReasonInvalidPreset    = "invalidPreset"
)

// Request is the raw submission input, one of three resolution paths.
type Request struct {
	Preset      string
	Composition string
	Props       map[string]any
	OutputName  string
	AIPrompt    string
}

// Resolution is a validated (composition, props, filename) triple ready to
// become a job.
type Resolution struct {
	Source         queue.Source
	Preset         string
	CompositionID  string
	InputProps     map[string]any
	OutputFilename string

	// AIConfig is set only when the aiPrompt path was taken, echoed back
	// to the submitting client.
	AIConfig *analyzer.Config
}

// Resolver maps requests through the preset table or the prompt analyzer.
type Resolver struct {
	analyzer *analyzer.Analyzer
}

func New(a *analyzer.Analyzer) *Resolver {
	return &Resolver{analyzer: a}
}

// Resolve validates a request. Resolution order: aiPrompt, then preset,
// then explicit composition. A request carrying none of them fails.
func (r *Resolver) Resolve(ctx context.Context, req Request) (*Resolution, error) {
	switch {
	case strings.TrimSpace(req.AIPrompt) != "":
		return r.resolvePrompt(ctx, req)
	case req.Preset != "":
		return r.resolvePreset(req)
	case req.Composition != "":
		return &Resolution{
			Source:         queue.SourceComposition,
			CompositionID:  req.Composition,
			InputProps:     req.Props,
			OutputFilename: outputFilename(req.OutputName, req.Composition),
		}, nil
	default:
		return nil, errors.Validation("provide a preset, a composition, or an aiPrompt").
			WithField("reason", ReasonMissingParameter)
	}
}

func (r *Resolver) resolvePrompt(ctx context.Context, req Request) (*Resolution, error) {
	cfg := r.analyzer.Analyze(ctx, req.AIPrompt)
	return &Resolution{
		Source:         queue.SourceAIPrompt,
		CompositionID:  cfg.Composition,
		InputProps:     cfg.InputProps(),
		OutputFilename: outputFilename(req.OutputName, "ai-"+strings.ToLower(cfg.Composition)),
		AIConfig:       &cfg,
	}, nil
}

func (r *Resolver) resolvePreset(req Request) (*Resolution, error) {
	p, ok := presets.Get(req.Preset)
	if !ok {
		return nil, errors.Validationf("unknown preset %q", req.Preset).
			WithField("reason", ReasonInvalidPreset)
	}
	return &Resolution{
		Source:         queue.SourcePreset,
		Preset:         req.Preset,
		CompositionID:  p.Composition,
		InputProps:     p.Props,
		OutputFilename: outputFilename(req.OutputName, req.Preset),
	}, nil
}

// outputFilename derives the video file name: an explicit name wins, else
// the source name plus the submission timestamp.
func outputFilename(explicit, base string) string {
	if explicit != "" {
		name := strings.TrimSuffix(explicit, ".mp4")
		return name + ".mp4"
	}
	return fmt.Sprintf("%s-%d.mp4", base, time.Now().UnixMilli())
}
