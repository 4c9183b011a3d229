package handlers

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"motiongfx/internal/httpkit"
)

type outputFile struct {
	Name    string    `json:"name"`
	Size    int64     `json:"size"`
	SizeMB  string    `json:"sizeMB"`
	Created time.Time `json:"created"`
	URL     string    `json:"url"`
}

// Outputs lists rendered videos, newest first.
func (h *Handler) Outputs(w http.ResponseWriter, r *http.Request) {
	entries, err := os.ReadDir(h.outputDir)
	if err != nil {
		httpkit.WriteJSON(w, http.StatusOK, map[string]any{"total": 0, "files": []outputFile{}})
		return
	}

	files := make([]outputFile, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".mp4") {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		files = append(files, outputFile{
			Name:    entry.Name(),
			Size:    info.Size(),
			SizeMB:  fmt.Sprintf("%.2f", float64(info.Size())/(1024*1024)),
			Created: info.ModTime(),
			URL:     "/outputs/" + entry.Name(),
		})
	}

	sort.Slice(files, func(i, j int) bool {
		return files[i].Created.After(files[j].Created)
	})

	httpkit.WriteJSON(w, http.StatusOK, map[string]any{
		"total": len(files),
		"files": files,
	})
}

// StreamOutput serves a rendered video inline.
func (h *Handler) StreamOutput(w http.ResponseWriter, r *http.Request) {
	h.serveOutput(w, r, false)
}

// DownloadOutput serves a rendered video as an attachment.
func (h *Handler) DownloadOutput(w http.ResponseWriter, r *http.Request) {
	h.serveOutput(w, r, true)
}

func (h *Handler) serveOutput(w http.ResponseWriter, r *http.Request, attachment bool) {
	filename := chi.URLParam(r, "filename")

	// Reject anything that is not a bare .mp4 file name.
	if filename != filepath.Base(filename) || !strings.HasSuffix(filename, ".mp4") {
		httpkit.FlatErr(w, http.StatusNotFound, "File not found", "Invalid file name", nil)
		return
	}

	path := filepath.Join(h.outputDir, filename)
	if _, err := os.Stat(path); err != nil {
		httpkit.FlatErr(w, http.StatusNotFound, "File not found", "No such output: "+filename, nil)
		return
	}

	w.Header().Set("Content-Type", "video/mp4")
	if attachment {
		w.Header().Set("Content-Disposition", `attachment; filename="`+filename+`"`)
	}
	http.ServeFile(w, r, path)
}
