package httpkit

import (
	"encoding/json"
	"net/http"
)

// FlatErr writes the public API error shape: a flat {"error": ..., "message": ...}
// object, optionally with extra top-level fields (e.g. availablePresets).
// Infrastructure middleware keeps the nested ErrorEnvelope; the render API
// endpoints use this flat form.
func FlatErr(w http.ResponseWriter, status int, errTitle, msg string, extra map[string]any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	body := map[string]any{
		"error":   errTitle,
		"message": msg,
	}
	for k, v := range extra {
		body[k] = v
	}

	_ = json.NewEncoder(w).Encode(body)
}
