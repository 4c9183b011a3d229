package resolver

import (
	"context"
	"io"
	"strings"
	"testing"

	"motiongfx/internal/analyzer"
	"motiongfx/internal/pkg/errors"
	"motiongfx/internal/pkg/logger"
	"motiongfx/internal/queue"
)

func newResolver() *Resolver {
	log := logger.New(logger.Config{Level: "error", Output: io.Discard})
	return New(analyzer.New(nil, log))
}

func TestResolvePreset(t *testing.T) {
	res, err := newResolver().Resolve(context.Background(), Request{Preset: "focus"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Source != queue.SourcePreset {
		t.Errorf("source = %s, want preset", res.Source)
	}
	if res.CompositionID != "KineticTitle" {
		t.Errorf("composition = %s, want KineticTitle", res.CompositionID)
	}
	if res.InputProps["text"] != "FOCUS ON WHAT MATTERS" {
		t.Errorf("unexpected props: %v", res.InputProps)
	}
	if !strings.HasPrefix(res.OutputFilename, "focus-") || !strings.HasSuffix(res.OutputFilename, ".mp4") {
		t.Errorf("unexpected output filename: %s", res.OutputFilename)
	}
}

func TestResolveUnknownPreset(t *testing.T) {
	_, err := newResolver().Resolve(context.Background(), Request{Preset: "nope"})
	if err == nil {
		t.Fatal("expected error for unknown preset")
	}
	if !errors.IsValidation(err) {
		t.Errorf("expected validation error, got %s", errors.GetCode(err))
	}
	if errors.GetFields(err)["reason"] != ReasonInvalidPreset {
		t.Errorf("expected invalidPreset reason, got %v", errors.GetFields(err))
	}
}

func TestResolveExplicitComposition(t *testing.T) {
	props := map[string]any{"text": "HI"}
	res, err := newResolver().Resolve(context.Background(), Request{Composition: "NeonText", Props: props})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Source != queue.SourceComposition {
		t.Errorf("source = %s, want compositionOverride", res.Source)
	}
	if res.InputProps["text"] != "HI" {
		t.Errorf("props must pass through verbatim: %v", res.InputProps)
	}
}

func TestResolveAIPrompt(t *testing.T) {
	res, err := newResolver().Resolve(context.Background(), Request{AIPrompt: "neon sign that says 'OPEN LATE'"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Source != queue.SourceAIPrompt {
		t.Errorf("source = %s, want aiPrompt", res.Source)
	}
	if res.CompositionID != "NeonText" {
		t.Errorf("composition = %s, want NeonText", res.CompositionID)
	}
	if res.AIConfig == nil {
		t.Fatal("expected aiConfig echo")
	}
	if res.AIConfig.IsAIGenerated {
		t.Error("keyword fallback must not be marked AI generated")
	}
	if res.InputProps["text"] != "OPEN LATE" {
		t.Errorf("unexpected props: %v", res.InputProps)
	}
}

func TestResolvePromptWinsOverPreset(t *testing.T) {
	res, err := newResolver().Resolve(context.Background(), Request{Preset: "focus", AIPrompt: "gradient intro"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Source != queue.SourceAIPrompt {
		t.Errorf("source = %s, aiPrompt must take priority", res.Source)
	}
}

func TestResolveMissingParameter(t *testing.T) {
	_, err := newResolver().Resolve(context.Background(), Request{})
	if err == nil {
		t.Fatal("expected error for empty request")
	}
	if errors.GetFields(err)["reason"] != ReasonMissingParameter {
		t.Errorf("expected missingParameter reason, got %v", errors.GetFields(err))
	}
}

func TestExplicitOutputName(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"myvideo", "myvideo.mp4"},
		{"myvideo.mp4", "myvideo.mp4"},
	}
	for _, tt := range tests {
		res, err := newResolver().Resolve(context.Background(), Request{Preset: "focus", OutputName: tt.name})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.OutputFilename != tt.want {
			t.Errorf("outputFilename(%q) = %s, want %s", tt.name, res.OutputFilename, tt.want)
		}
	}
}
