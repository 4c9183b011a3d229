package httpapi

import (
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"motiongfx/internal/httpapi/handlers"
	"motiongfx/internal/httpkit"
	"motiongfx/internal/pkg/logger"
	"motiongfx/internal/pkg/middleware"
	"motiongfx/internal/queue"
	"motiongfx/internal/resolver"
)

type Deps struct {
	Store     *queue.Store
	Scheduler *queue.Scheduler
	Resolver  *resolver.Resolver
	OutputDir string
	Logger    *logger.Logger
}

func NewRouter(d Deps) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.Logging(d.Logger))
	r.Use(middleware.Recovery(d.Logger))

	allowedOrigins := envCSV("CORS_ALLOWED_ORIGINS", []string{"*"})
	r.Use(httpkit.CORS(httpkit.CORSOptions{
		AllowedOrigins:   allowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type"},
		AllowCredentials: false,
		MaxAgeSeconds:    600,
	}))

	h := handlers.New(handlers.Deps{
		Store:     d.Store,
		Scheduler: d.Scheduler,
		Resolver:  d.Resolver,
		OutputDir: d.OutputDir,
		Logger:    d.Logger,
	})

	r.Get("/", h.Root)
	r.Get("/health", h.Health)
	r.Get("/presets", h.Presets)

	// Submission is acknowledged immediately; give the analyzer room but
	// keep the endpoint bounded.
	r.With(middleware.Timeout(30 * time.Second)).Post("/generate", h.Generate)
	r.Get("/status/{jobId}", h.Status)

	r.Get("/outputs", h.Outputs)
	r.Get("/outputs/{filename}", h.StreamOutput)
	r.Get("/download/{filename}", h.DownloadOutput)

	return r
}

func envCSV(key string, def []string) []string {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return def
	}
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		return def
	}
	return out
}
