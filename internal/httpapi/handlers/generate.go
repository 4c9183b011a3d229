package handlers

import (
	"net/http"
	"time"

	"motiongfx/internal/httpkit"
	"motiongfx/internal/pkg/errors"
	"motiongfx/internal/presets"
	"motiongfx/internal/queue"
	"motiongfx/internal/resolver"
)

type generateRequest struct {
	Preset      string         `json:"preset"`
	Composition string         `json:"composition"`
	Props       map[string]any `json:"props"`
	OutputName  string         `json:"outputName"`
	AIPrompt    string         `json:"aiPrompt"`
}

// Generate accepts a render request, resolves it to a job and enqueues it.
// The response is an immediate acknowledgment; clients poll /status for the
// outcome.
func (h *Handler) Generate(w http.ResponseWriter, r *http.Request) {
	var req generateRequest
	if err := httpkit.DecodeJSON(r, &req); err != nil {
		httpkit.FlatErr(w, http.StatusBadRequest, "Invalid request body", err.Error(), nil)
		return
	}

	res, err := h.resolver.Resolve(r.Context(), resolver.Request{
		Preset:      req.Preset,
		Composition: req.Composition,
		Props:       req.Props,
		OutputName:  req.OutputName,
		AIPrompt:    req.AIPrompt,
	})
	if err != nil {
		h.writeResolveError(w, req, err)
		return
	}

	idPrefix := "job"
	if res.Source == queue.SourceAIPrompt {
		idPrefix = "ai"
	}

	job := &queue.Job{
		ID:             queue.NewJobID(idPrefix),
		Source:         res.Source,
		Preset:         res.Preset,
		Composition:    res.CompositionID,
		OutputFilename: res.OutputFilename,
		InputProps:     res.InputProps,
		CreatedAt:      time.Now(),
	}
	if res.Source == queue.SourceAIPrompt {
		job.AIGenerated = res.AIConfig.IsAIGenerated
		job.OriginalPrompt = req.AIPrompt
	}

	position := h.scheduler.Submit(job)

	if res.Source == queue.SourceAIPrompt {
		httpkit.WriteJSON(w, http.StatusOK, map[string]any{
			"success":       true,
			"jobId":         job.ID,
			"message":       "AI video generation started",
			"aiConfig":      res.AIConfig,
			"queuePosition": position,
		})
		return
	}

	httpkit.WriteJSON(w, http.StatusOK, map[string]any{
		"jobId":       job.ID,
		"status":      "queued",
		"position":    position,
		"message":     "Video generation started",
		"checkStatus": "/status/" + job.ID,
	})
}

func (h *Handler) writeResolveError(w http.ResponseWriter, req generateRequest, err error) {
	reason, _ := errors.GetFields(err)["reason"].(string)

	switch reason {
	case resolver.ReasonInvalidPreset:
		httpkit.FlatErr(w, http.StatusBadRequest,
			"Invalid preset",
			"Preset \""+req.Preset+"\" does not exist",
			map[string]any{"availablePresets": presets.Names},
		)
	case resolver.ReasonMissingParameter:
		httpkit.FlatErr(w, http.StatusBadRequest,
			"Missing required parameter",
			"You must provide either \"preset\", \"composition\", or \"aiPrompt\"",
			nil,
		)
	default:
		h.log.Error("request resolution failed", "error", err)
		httpkit.FlatErr(w, errors.GetHTTPStatus(err), "Generation failed", err.Error(), nil)
	}
}
