package render

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"motiongfx/internal/pkg/errors"
)

func TestBundle(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/bundle" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		fmt.Fprint(w, `{"serveUrl":"http://localhost:3001/serve/abc"}`)
	}))
	defer srv.Close()

	c := NewHTTPClient(srv.URL)
	art, err := c.Bundle(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if art.ServeURL != "http://localhost:3001/serve/abc" {
		t.Errorf("unexpected serve url: %s", art.ServeURL)
	}
}

func TestBundleMissingServeURL(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{}`)
	}))
	defer srv.Close()

	c := NewHTTPClient(srv.URL)
	if _, err := c.Bundle(context.Background()); err == nil {
		t.Fatal("expected error for empty serveUrl")
	}
}

func TestSelectComposition(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"id":"KineticTitle","width":1920,"height":1080,"fps":30,"durationInFrames":300}`)
	}))
	defer srv.Close()

	c := NewHTTPClient(srv.URL)
	comp, err := c.SelectComposition(context.Background(), &BundleArtifact{ServeURL: "x"}, "KineticTitle", map[string]any{"text": "HI"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if comp.Width != 1920 || comp.FPS != 30 || comp.DurationInFrames != 300 {
		t.Errorf("unexpected composition: %+v", comp)
	}
}

func TestSelectCompositionUnknownID(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "no such composition", http.StatusNotFound)
	}))
	defer srv.Close()

	c := NewHTTPClient(srv.URL)
	_, err := c.SelectComposition(context.Background(), &BundleArtifact{ServeURL: "x"}, "Nope", nil)
	if err == nil {
		t.Fatal("expected error for unknown composition")
	}
	if !errors.IsNotFound(err) {
		t.Errorf("expected NOT_FOUND code, got %s", errors.GetCode(err))
	}
}

func TestRenderMediaStreamsProgress(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/x-ndjson")
		fmt.Fprintln(w, `{"renderedFrames":100,"encodedFrames":0,"renderedDoneIn":null}`)
		fmt.Fprintln(w, `{"renderedFrames":300,"encodedFrames":150,"renderedDoneIn":4123.5}`)
		fmt.Fprintln(w, `{"done":true}`)
	}))
	defer srv.Close()

	c := NewHTTPClient(srv.URL)
	var events []Progress
	err := c.RenderMedia(context.Background(),
		&Composition{ID: "KineticTitle", DurationInFrames: 300},
		&BundleArtifact{ServeURL: "x"},
		nil, "/tmp/out.mp4",
		func(p Progress) { events = append(events, p) },
	)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(events) != 2 {
		t.Fatalf("expected 2 progress events, got %d", len(events))
	}
	if events[0].RenderedFrames != 100 || events[0].RenderedDoneInMs != nil {
		t.Errorf("unexpected first event: %+v", events[0])
	}
	if events[1].RenderedDoneInMs == nil || *events[1].RenderedDoneInMs != 4123.5 {
		t.Errorf("expected renderedDoneIn on second event: %+v", events[1])
	}
}

func TestRenderMediaErrorLine(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprintln(w, `{"renderedFrames":10,"encodedFrames":0,"renderedDoneIn":null}`)
		fmt.Fprintln(w, `{"error":"browser crashed"}`)
	}))
	defer srv.Close()

	c := NewHTTPClient(srv.URL)
	err := c.RenderMedia(context.Background(),
		&Composition{ID: "X", DurationInFrames: 100},
		&BundleArtifact{ServeURL: "x"}, nil, "/tmp/out.mp4", nil)
	if err == nil {
		t.Fatal("expected error from error line")
	}
}

func TestRenderMediaTruncatedStream(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprintln(w, `{"renderedFrames":10,"encodedFrames":0,"renderedDoneIn":null}`)
		// stream ends without a terminal line
	}))
	defer srv.Close()

	c := NewHTTPClient(srv.URL)
	err := c.RenderMedia(context.Background(),
		&Composition{ID: "X", DurationInFrames: 100},
		&BundleArtifact{ServeURL: "x"}, nil, "/tmp/out.mp4", nil)
	if err == nil {
		t.Fatal("expected error for truncated stream")
	}
}
