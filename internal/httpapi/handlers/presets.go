package handlers

import (
	"net/http"

	"motiongfx/internal/httpkit"
	"motiongfx/internal/presets"
)

// Presets lists the preset table grouped by composition.
func (h *Handler) Presets(w http.ResponseWriter, r *http.Request) {
	httpkit.WriteJSON(w, http.StatusOK, map[string]any{
		"total":   len(presets.Names),
		"presets": presets.Grouped(),
		"list":    presets.Names,
	})
}
