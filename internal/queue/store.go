package queue

import (
	"sync"
	"time"
)

const maxErrorLength = 2000

// Store tracks the pending FIFO queue and the single current job. All
// mutation goes through the store's lock; reads hand out copies so callers
// never see a torn or later-mutated job.
type Store struct {
	mu      sync.Mutex
	pending []*Job
	current *Job
}

func NewStore() *Store {
	return &Store{}
}

// Enqueue appends a job to the tail of the pending queue and returns its
// 1-based queue position.
func (s *Store) Enqueue(job *Job) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	job.Status = StatusQueued
	s.pending = append(s.pending, job)
	return len(s.pending)
}

// DequeueNext promotes the head of the queue to the current slot. It
// returns nil when a job is already current or the queue is empty.
func (s *Store) DequeueNext() *Job {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.current != nil || len(s.pending) == 0 {
		return nil
	}

	s.current = s.pending[0]
	s.pending = s.pending[1:]

	snap := *s.current
	return &snap
}

// ClearCurrent empties the current slot after a terminal job has settled.
func (s *Store) ClearCurrent() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.current = nil
}

// FindByID returns a snapshot of the job with the given id, searching the
// current slot then the pending queue. Queued snapshots carry their 1-based
// position.
func (s *Store) FindByID(id string) (*Job, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.current != nil && s.current.ID == id {
		snap := *s.current
		return &snap, true
	}
	for i, job := range s.pending {
		if job.ID == id {
			snap := *job
			snap.Position = i + 1
			return &snap, true
		}
	}
	return nil, false
}

// Current returns a snapshot of the in-flight job, if any.
func (s *Store) Current() (*Job, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.current == nil {
		return nil, false
	}
	snap := *s.current
	return &snap, true
}

// Depth returns the number of pending jobs.
func (s *Store) Depth() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.pending)
}

// SetStatus moves the current job to a new non-terminal status. No-op if
// the job is not current or already terminal.
func (s *Store) SetStatus(id string, status Status) {
	s.mu.Lock()
	defer s.mu.Unlock()

	job := s.lockedCurrent(id)
	if job == nil {
		return
	}
	job.Status = status
}

// SetProgress writes progress onto the current job. Progress never moves
// backwards while a render is in flight.
func (s *Store) SetProgress(id string, progress int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	job := s.lockedCurrent(id)
	if job == nil {
		return
	}
	if progress < 0 {
		progress = 0
	}
	if progress > 100 {
		progress = 100
	}
	if progress > job.Progress {
		job.Progress = progress
	}
}

// Complete marks the current job completed with its output details.
func (s *Store) Complete(id, outputFile, fileSize, downloadURL string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	job := s.lockedCurrent(id)
	if job == nil {
		return
	}

	now := time.Now()
	job.Status = StatusCompleted
	job.Progress = 100
	job.CompletedAt = &now
	job.OutputFile = outputFile
	job.FileSize = fileSize
	job.DownloadURL = downloadURL
}

// Fail marks the current job failed with a truncated error message.
func (s *Store) Fail(id, message string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	job := s.lockedCurrent(id)
	if job == nil {
		return
	}

	if len(message) > maxErrorLength {
		message = message[:maxErrorLength]
	}

	now := time.Now()
	job.Status = StatusFailed
	job.CompletedAt = &now
	job.Error = message
}

// lockedCurrent returns the current job if it matches id and is not yet
// terminal. Caller must hold the lock.
func (s *Store) lockedCurrent(id string) *Job {
	if s.current == nil || s.current.ID != id || s.current.Status.Terminal() {
		return nil
	}
	return s.current
}
