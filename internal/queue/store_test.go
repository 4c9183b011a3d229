package queue

import (
	"strings"
	"testing"
)

func newJob(id string) *Job {
	return &Job{ID: id, Composition: "KineticTitle", OutputFilename: id + ".mp4"}
}

func TestEnqueuePositions(t *testing.T) {
	s := NewStore()

	if pos := s.Enqueue(newJob("a")); pos != 1 {
		t.Errorf("first enqueue position = %d, want 1", pos)
	}
	if pos := s.Enqueue(newJob("b")); pos != 2 {
		t.Errorf("second enqueue position = %d, want 2", pos)
	}
	if s.Depth() != 2 {
		t.Errorf("depth = %d, want 2", s.Depth())
	}
}

func TestDequeueNextFIFO(t *testing.T) {
	s := NewStore()
	s.Enqueue(newJob("a"))
	s.Enqueue(newJob("b"))

	first := s.DequeueNext()
	if first == nil || first.ID != "a" {
		t.Fatalf("expected job a, got %+v", first)
	}

	// a occupies the current slot, so b must wait
	if next := s.DequeueNext(); next != nil {
		t.Fatalf("expected nil while a job is current, got %+v", next)
	}

	s.ClearCurrent()
	second := s.DequeueNext()
	if second == nil || second.ID != "b" {
		t.Fatalf("expected job b, got %+v", second)
	}
}

func TestDequeueNextEmpty(t *testing.T) {
	s := NewStore()
	if job := s.DequeueNext(); job != nil {
		t.Fatalf("expected nil from empty queue, got %+v", job)
	}
}

func TestFindByIDPositions(t *testing.T) {
	s := NewStore()
	s.Enqueue(newJob("a"))
	s.Enqueue(newJob("b"))
	s.Enqueue(newJob("c"))
	s.DequeueNext()

	current, ok := s.FindByID("a")
	if !ok {
		t.Fatal("expected to find current job a")
	}
	if current.Position != 0 {
		t.Errorf("current job position = %d, want 0", current.Position)
	}

	queued, ok := s.FindByID("c")
	if !ok {
		t.Fatal("expected to find queued job c")
	}
	if queued.Position != 2 {
		t.Errorf("queued job c position = %d, want 2", queued.Position)
	}

	if _, ok := s.FindByID("nope"); ok {
		t.Error("expected lookup miss for unknown id")
	}
}

func TestFindByIDReturnsSnapshot(t *testing.T) {
	s := NewStore()
	s.Enqueue(newJob("a"))
	s.DequeueNext()

	snap, _ := s.FindByID("a")
	s.SetProgress("a", 50)

	if snap.Progress != 0 {
		t.Error("snapshot must not observe later mutation")
	}
	fresh, _ := s.FindByID("a")
	if fresh.Progress != 50 {
		t.Errorf("fresh snapshot progress = %d, want 50", fresh.Progress)
	}
}

func TestSetProgressMonotonicAndClamped(t *testing.T) {
	s := NewStore()
	s.Enqueue(newJob("a"))
	s.DequeueNext()

	s.SetProgress("a", 40)
	s.SetProgress("a", 25)
	if job, _ := s.FindByID("a"); job.Progress != 40 {
		t.Errorf("progress regressed to %d, want 40", job.Progress)
	}

	s.SetProgress("a", 250)
	if job, _ := s.FindByID("a"); job.Progress != 100 {
		t.Errorf("progress = %d, want clamp to 100", job.Progress)
	}

	s.SetProgress("a", -5)
	if job, _ := s.FindByID("a"); job.Progress != 100 {
		t.Errorf("progress = %d after negative write, want 100", job.Progress)
	}
}

func TestCompleteSetsOutputs(t *testing.T) {
	s := NewStore()
	s.Enqueue(newJob("a"))
	s.DequeueNext()

	s.Complete("a", "a.mp4", "1.50 MB", "/outputs/a.mp4")

	job, _ := s.FindByID("a")
	if job.Status != StatusCompleted {
		t.Errorf("status = %s, want completed", job.Status)
	}
	if job.Progress != 100 {
		t.Errorf("progress = %d, want 100", job.Progress)
	}
	if job.CompletedAt == nil {
		t.Error("expected completedAt to be set")
	}
	if job.DownloadURL != "/outputs/a.mp4" || job.FileSize != "1.50 MB" {
		t.Errorf("unexpected output fields: %+v", job)
	}
}

func TestTerminalJobsAreImmutable(t *testing.T) {
	s := NewStore()
	s.Enqueue(newJob("a"))
	s.DequeueNext()
	s.Fail("a", "render failed")

	s.SetStatus("a", StatusRendering)
	s.SetProgress("a", 99)
	s.Complete("a", "a.mp4", "1 MB", "/outputs/a.mp4")

	job, _ := s.FindByID("a")
	if job.Status != StatusFailed {
		t.Errorf("status = %s, want failed to stick", job.Status)
	}
	if job.Progress != 0 {
		t.Errorf("progress = %d, want untouched", job.Progress)
	}
	if job.Error != "render failed" {
		t.Errorf("error = %q, want preserved", job.Error)
	}
}

func TestFailTruncatesLongMessages(t *testing.T) {
	s := NewStore()
	s.Enqueue(newJob("a"))
	s.DequeueNext()

	s.Fail("a", strings.Repeat("x", 5000))

	job, _ := s.FindByID("a")
	if len(job.Error) != maxErrorLength {
		t.Errorf("error length = %d, want %d", len(job.Error), maxErrorLength)
	}
}

func TestMutationsIgnoreNonCurrentJobs(t *testing.T) {
	s := NewStore()
	s.Enqueue(newJob("a"))
	s.Enqueue(newJob("b"))
	s.DequeueNext()

	// b is queued, not current, so stage writes must not touch it
	s.SetStatus("b", StatusRendering)
	s.SetProgress("b", 50)

	job, _ := s.FindByID("b")
	if job.Status != StatusQueued || job.Progress != 0 {
		t.Errorf("queued job mutated: %+v", job)
	}
}
