// Package analyzer turns free-text video prompts into a render configuration.
// An LLM backend is used when configured; a deterministic keyword analysis
// covers every failure path, so Analyze never returns an error to the caller.
package analyzer

// Config is the structured result of prompt analysis.
type Config struct {
	Composition    string `json:"composition"`
	Text           string `json:"text,omitempty"`
	Subtitle       string `json:"subtitle,omitempty"`
	PrimaryColor   string `json:"primaryColor,omitempty"`
	SecondaryColor string `json:"secondaryColor,omitempty"`
	ManColor       string `json:"manColor,omitempty"`
	ShowRain       bool   `json:"showRain"`
	Style          string `json:"style,omitempty"`
	Duration       int    `json:"duration"`
	FPS            int    `json:"fps"`
	IsAIGenerated  bool   `json:"isAiGenerated"`
}
