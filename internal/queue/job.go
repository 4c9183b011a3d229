// Package queue holds the in-memory job model, the store tracking the
// pending queue plus the single in-flight job, and the single-flight
// scheduler that drives jobs through the render pipeline.
package queue

import "time"

// Status is a job's position in the render lifecycle.
type Status string

const (
	StatusQueued          Status = "queued"
	StatusBundling        Status = "bundling"
	StatusLoadingMetadata Status = "loading-metadata"
	StatusRendering       Status = "rendering"
	StatusEncoding        Status = "encoding"
	StatusCompleted       Status = "completed"
	StatusFailed          Status = "failed"
)

// Terminal reports whether the status is an end state.
func (s Status) Terminal() bool {
	return s == StatusCompleted || s == StatusFailed
}

// Source identifies which resolution path produced a job.
type Source string

const (
	SourcePreset      Source = "preset"
	SourceComposition Source = "compositionOverride"
	SourceAIPrompt    Source = "aiPrompt"
)

// Job is one render request tracked from submission to a terminal state.
// Snapshots of it are serialized directly onto the status endpoint.
type Job struct {
	ID             string         `json:"id"`
	Source         Source         `json:"source"`
	Preset         string         `json:"preset,omitempty"`
	Composition    string         `json:"composition"`
	OutputFilename string         `json:"outputFilename"`
	InputProps     map[string]any `json:"inputProps"`
	Status         Status         `json:"status"`
	Progress       int            `json:"progress"`
	CreatedAt      time.Time      `json:"createdAt"`
	CompletedAt    *time.Time     `json:"completedAt,omitempty"`
	Error          string         `json:"error,omitempty"`
	OutputFile     string         `json:"outputFile,omitempty"`
	FileSize       string         `json:"fileSize,omitempty"`
	DownloadURL    string         `json:"downloadUrl,omitempty"`
	AIGenerated    bool           `json:"aiGenerated,omitempty"`
	OriginalPrompt string         `json:"originalPrompt,omitempty"`

	// Position is 1-based queue position, set only on snapshots of
	// queued jobs.
	Position int `json:"position,omitempty"`
}
