package main

import (
	"context"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"motiongfx/internal/analyzer"
	"motiongfx/internal/archive"
	"motiongfx/internal/httpapi"
	"motiongfx/internal/pkg/logger"
	"motiongfx/internal/pkg/shutdown"
	"motiongfx/internal/queue"
	"motiongfx/internal/render"
	"motiongfx/internal/resolver"
	"motiongfx/internal/storage"
)

func main() {
	_ = godotenv.Load()

	log := logger.New(logger.Config{
		Level:       getEnv("LOG_LEVEL", "info"),
		Format:      getEnv("LOG_FORMAT", "json"),
		ServiceName: "motiongfx-api",
		AddSource:   getEnv("LOG_SOURCE", "false") == "true",
	})

	log.Info("starting motiongfx API",
		"version", "0.1.0",
	)

	httpPort := getEnv("HTTP_PORT", "3000")
	rendererURL := getEnv("RENDERER_HTTP_BASEURL", "http://localhost:3001")
	outputDir := getEnv("OUTPUT_DIR", "./output")

	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		log.LogFatal("failed to create output directory", err, "dir", outputDir)
	}

	shutdownMgr := shutdown.NewManager(log, 30*time.Second)

	// Render engine sidecar
	engine := render.NewHTTPClient(rendererURL)
	bundles := render.NewBundleCache(engine)
	log.Info("render engine configured", "base_url", rendererURL)

	// Optional output archiving
	var archiver queue.Archiver
	sp, err := storage.NewProvider()
	if err != nil {
		log.LogFatal("failed to initialize storage provider", err)
	}
	if sp != nil {
		archiver = archive.New(sp, log)
		log.Info("output archiving enabled", "provider", sp.Provider())
	}

	store := queue.NewStore()
	scheduler := queue.NewScheduler(queue.Config{
		Store:       store,
		Engine:      engine,
		Bundles:     bundles,
		Archiver:    archiver,
		OutputDir:   outputDir,
		SettleDelay: settleDelay(log),
		Logger:      log,
	})

	// Let the in-flight render finish before the process exits.
	shutdownMgr.Register("scheduler", func(ctx context.Context) error {
		scheduler.Wait()
		return nil
	})

	// Prompt analysis, keyword-only unless Gemini is configured
	gemini := analyzer.NewGeminiClient(os.Getenv("GEMINI_API_KEY"))
	if gemini.IsConfigured() {
		log.Info("Gemini prompt analysis enabled")
	} else {
		log.Warn("GEMINI_API_KEY not configured, prompts use keyword fallback")
	}

	router := httpapi.NewRouter(httpapi.Deps{
		Store:     store,
		Scheduler: scheduler,
		Resolver:  resolver.New(analyzer.New(gemini, log)),
		OutputDir: outputDir,
		Logger:    log,
	})

	server := &http.Server{
		Addr:         "0.0.0.0:" + httpPort,
		Handler:      router,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	shutdownMgr.Register("http-server", func(ctx context.Context) error {
		log.Info("shutting down HTTP server")
		return server.Shutdown(ctx)
	})

	go func() {
		log.Info("HTTP server listening",
			"addr", server.Addr,
			"port", httpPort,
		)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.LogFatal("HTTP server failed", err)
		}
	}()

	shutdownMgr.Wait()
}

func settleDelay(log *logger.Logger) time.Duration {
	raw := getEnv("SETTLE_DELAY_MS", "")
	if raw == "" {
		return queue.DefaultSettleDelay
	}
	ms, err := strconv.Atoi(raw)
	if err != nil || ms < 0 {
		log.Warn("invalid SETTLE_DELAY_MS, using default", "value", raw)
		return queue.DefaultSettleDelay
	}
	return time.Duration(ms) * time.Millisecond
}

// getEnv gets an environment variable with a default value.
func getEnv(key, defaultValue string) string {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return defaultValue
	}
	return v
}
