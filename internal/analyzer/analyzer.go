package analyzer

import (
	"context"

	"motiongfx/internal/pkg/logger"
)

// PromptBackend is the optional AI side of analysis.
type PromptBackend interface {
	IsConfigured() bool
	Analyze(ctx context.Context, prompt string) (Config, error)
}

// Analyzer maps free-text prompts to render configurations. It never fails:
// any backend problem degrades to the keyword fallback.
type Analyzer struct {
	backend PromptBackend
	log     *logger.Logger
}

// New creates an Analyzer. backend may be nil for keyword-only analysis.
func New(backend PromptBackend, log *logger.Logger) *Analyzer {
	return &Analyzer{backend: backend, log: log.WithComponent("analyzer")}
}

// Analyze resolves a prompt to a configuration.
func (a *Analyzer) Analyze(ctx context.Context, prompt string) Config {
	if a.backend == nil || !a.backend.IsConfigured() {
		a.log.Debug("AI backend not configured, using keyword fallback")
		return Fallback(prompt)
	}

	cfg, err := a.backend.Analyze(ctx, prompt)
	if err != nil {
		a.log.Warn("AI analysis failed, using keyword fallback", "error", err)
		return Fallback(prompt)
	}

	a.log.Info("AI analysis succeeded",
		"composition", cfg.Composition,
		"text", cfg.Text,
	)
	return cfg
}
