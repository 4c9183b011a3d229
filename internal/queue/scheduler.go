package queue

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"motiongfx/internal/pkg/logger"
	"motiongfx/internal/render"
)

// DefaultSettleDelay is the pause between successive renders, giving the
// engine time to release browser resources before the next job starts.
const DefaultSettleDelay = time.Second

// Archiver copies a finished render to longer-term storage.
type Archiver interface {
	Archive(ctx context.Context, localPath, filename string) error
}

// Config wires a Scheduler's collaborators.
type Config struct {
	Store       *Store
	Engine      render.Engine
	Bundles     *render.BundleCache
	Archiver    Archiver
	OutputDir   string
	SettleDelay time.Duration
	Logger      *logger.Logger
}

// Scheduler is the single-flight render loop. At most one job is ever
// processed at a time; the busy flag makes Pump a no-op while a render is
// in flight, and each finished job re-pumps the queue after a settling
// delay.
type Scheduler struct {
	store     *Store
	engine    render.Engine
	bundles   *render.BundleCache
	archiver  Archiver
	outputDir string
	settle    time.Duration
	log       *logger.Logger

	mu   sync.Mutex
	busy bool
	wg   sync.WaitGroup
}

func NewScheduler(cfg Config) *Scheduler {
	settle := cfg.SettleDelay
	if settle <= 0 {
		settle = DefaultSettleDelay
	}
	return &Scheduler{
		store:     cfg.Store,
		engine:    cfg.Engine,
		bundles:   cfg.Bundles,
		archiver:  cfg.Archiver,
		outputDir: cfg.OutputDir,
		settle:    settle,
		log:       cfg.Logger.WithComponent("scheduler"),
	}
}

// Submit enqueues a job and returns its 1-based queue position. If the
// scheduler is idle the job starts immediately.
func (s *Scheduler) Submit(job *Job) int {
	position := s.store.Enqueue(job)
	s.log.Info("job queued",
		"job_id", job.ID,
		"composition", job.Composition,
		"position", position,
	)
	s.Pump()
	return position
}

// Pump starts the next queued job unless one is already running.
func (s *Scheduler) Pump() {
	s.mu.Lock()
	if s.busy {
		s.mu.Unlock()
		return
	}
	job := s.store.DequeueNext()
	if job == nil {
		s.mu.Unlock()
		return
	}
	s.busy = true
	s.mu.Unlock()

	s.wg.Add(1)
	go s.run(job)
}

// Wait blocks until the in-flight job, if any, has fully settled.
func (s *Scheduler) Wait() {
	s.wg.Wait()
}

func (s *Scheduler) run(job *Job) {
	defer s.wg.Done()

	s.process(job)

	// Terminal jobs stay visible in the current slot through the
	// settling delay so a prompt status poll still sees the outcome.
	time.Sleep(s.settle)
	s.store.ClearCurrent()

	s.mu.Lock()
	s.busy = false
	s.mu.Unlock()

	s.Pump()
}

// process drives one job through the state machine. A failure at any stage
// marks the job failed and returns; the loop itself never dies, so a panic
// here is absorbed into a failed transition as well.
func (s *Scheduler) process(job *Job) {
	log := s.log.WithJobID(job.ID)
	ctx := context.Background()

	defer func() {
		if r := recover(); r != nil {
			log.Error("render panicked", "panic", r)
			s.store.Fail(job.ID, fmt.Sprintf("internal error: %v", r))
		}
	}()

	log.Info("render started", "composition", job.Composition)
	start := time.Now()

	if !s.bundles.Cached() {
		s.store.SetStatus(job.ID, StatusBundling)
		log.Info("bundling project")
	}
	bundle, err := s.bundles.Get(ctx)
	if err != nil {
		s.failJob(log, job.ID, "bundling failed", err)
		return
	}

	s.store.SetStatus(job.ID, StatusLoadingMetadata)
	comp, err := s.engine.SelectComposition(ctx, bundle, job.Composition, job.InputProps)
	if err != nil {
		s.failJob(log, job.ID, "composition lookup failed", err)
		return
	}

	s.store.SetStatus(job.ID, StatusRendering)
	outputPath := filepath.Join(s.outputDir, job.OutputFilename)
	totalFrames := comp.DurationInFrames

	onProgress := func(p render.Progress) {
		frames := p.RenderedFrames
		if p.RenderedDoneInMs != nil {
			s.store.SetStatus(job.ID, StatusEncoding)
			if p.EncodedFrames > 0 {
				frames = p.EncodedFrames
			}
		}
		if totalFrames > 0 {
			s.store.SetProgress(job.ID, frames*100/totalFrames)
		}
	}

	if err := s.engine.RenderMedia(ctx, comp, bundle, job.InputProps, outputPath, onProgress); err != nil {
		s.failJob(log, job.ID, "render failed", err)
		return
	}

	info, err := os.Stat(outputPath)
	if err != nil {
		s.failJob(log, job.ID, "output file missing after render", err)
		return
	}

	sizeMB := fmt.Sprintf("%.2f MB", float64(info.Size())/(1024*1024))
	s.store.Complete(job.ID, job.OutputFilename, sizeMB, "/outputs/"+job.OutputFilename)
	log.Info("render completed",
		"output", job.OutputFilename,
		"size", sizeMB,
		"duration", time.Since(start).String(),
	)

	if s.archiver != nil {
		if err := s.archiver.Archive(ctx, outputPath, job.OutputFilename); err != nil {
			log.Warn("output archiving failed", "error", err)
		}
	}
}

func (s *Scheduler) failJob(log *logger.Logger, id, stage string, err error) {
	log.Error(stage, "error", err)
	s.store.Fail(id, fmt.Sprintf("%s: %v", stage, err))
}
