package archive

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"

	"motiongfx/internal/pkg/logger"
	"motiongfx/internal/storage"
)

type recordingProvider struct {
	key  string
	size int64
	data []byte
	err  error
}

func (p *recordingProvider) Provider() string { return "recording" }

func (p *recordingProvider) PutObject(ctx context.Context, in storage.PutObjectInput) (storage.PutObjectOutput, error) {
	if p.err != nil {
		return storage.PutObjectOutput{}, p.err
	}
	p.key = in.ObjectKey
	p.size = in.Size
	data, err := io.ReadAll(in.Reader)
	if err != nil {
		return storage.PutObjectOutput{}, err
	}
	p.data = data
	return storage.PutObjectOutput{ObjectKey: "id-123", Size: in.Size}, nil
}

func testLogger() *logger.Logger {
	return logger.New(logger.Config{Level: "error", Output: io.Discard})
}

func TestArchiveUploadsFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "video.mp4")
	if err := os.WriteFile(path, []byte("mp4 bytes"), 0o644); err != nil {
		t.Fatal(err)
	}

	prov := &recordingProvider{}
	a := New(prov, testLogger())

	if err := a.Archive(context.Background(), path, "video.mp4"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if prov.key != "video.mp4" {
		t.Errorf("object key = %s, want video.mp4", prov.key)
	}
	if string(prov.data) != "mp4 bytes" {
		t.Errorf("uploaded content = %q", prov.data)
	}
	if prov.size != int64(len("mp4 bytes")) {
		t.Errorf("size = %d", prov.size)
	}

	// local copy stays in place
	if _, err := os.Stat(path); err != nil {
		t.Errorf("local file removed: %v", err)
	}
}

func TestArchiveMissingFile(t *testing.T) {
	a := New(&recordingProvider{}, testLogger())
	if err := a.Archive(context.Background(), "/nonexistent/video.mp4", "video.mp4"); err == nil {
		t.Fatal("expected error for missing file")
	}
}
