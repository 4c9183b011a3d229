package handlers

import (
	"time"

	"motiongfx/internal/pkg/logger"
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

type Handler struct {
	store     *queue.Store
	scheduler *queue.Scheduler
	resolver  *resolver.Resolver
	outputDir string
	log       *logger.Logger
	startedAt time.Time
}

func New(d Deps) *Handler {
	return &Handler{
		store:     d.Store,
		scheduler: d.Scheduler,
		resolver:  d.Resolver,
		outputDir: d.OutputDir,
		log:       d.Logger.WithComponent("http"),
		startedAt: time.Now(),
	}
}
