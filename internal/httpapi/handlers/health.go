package handlers

import (
	"net/http"
	"time"

	"motiongfx/internal/httpkit"
)

// Health reports server status and a snapshot of the render queue.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	current, processing := h.store.Current()

	var currentJob any
	if processing {
		currentJob = current
	}

	httpkit.WriteJSON(w, http.StatusOK, map[string]any{
		"status": "ok",
		"uptime": time.Since(h.startedAt).Seconds(),
		"queue": map[string]any{
			"pending":    h.store.Depth(),
			"processing": processing,
			"current":    currentJob,
		},
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}
