package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"motiongfx/internal/httpkit"
)

// Status returns a snapshot of a job: the in-flight job, a queued job with
// its position, or 404 once it is unknown or already cleaned up.
func (h *Handler) Status(w http.ResponseWriter, r *http.Request) {
	jobID := chi.URLParam(r, "jobId")

	job, ok := h.store.FindByID(jobID)
	if !ok {
		httpkit.FlatErr(w, http.StatusNotFound,
			"Job not found",
			"Job "+jobID+" does not exist or has been completed",
			nil,
		)
		return
	}

	httpkit.WriteJSON(w, http.StatusOK, job)
}
