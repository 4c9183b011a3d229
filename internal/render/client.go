package render

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"motiongfx/internal/pkg/errors"
)

const (
	defaultBundleTimeout   = 60 * time.Second
	defaultMetadataTimeout = 60 * time.Second
	defaultRenderTimeout   = 10 * time.Minute
)

// HTTPClient implements Engine against the render sidecar's HTTP API.
type HTTPClient struct {
	baseURL string
	client  *http.Client

	bundleTimeout   time.Duration
	metadataTimeout time.Duration
	renderTimeout   time.Duration
}

func NewHTTPClient(baseURL string) *HTTPClient {
	return &HTTPClient{
		baseURL:         baseURL,
		client:          &http.Client{},
		bundleTimeout:   defaultBundleTimeout,
		metadataTimeout: defaultMetadataTimeout,
		renderTimeout:   defaultRenderTimeout,
	}
}

func (c *HTTPClient) Bundle(ctx context.Context) (*BundleArtifact, error) {
	ctx, cancel := context.WithTimeout(ctx, c.bundleTimeout)
	defer cancel()

	var art BundleArtifact
	if err := c.post(ctx, "/bundle", map[string]any{}, &art); err != nil {
		return nil, errors.Wrap(err, "render.bundle", "project bundling failed")
	}
	if art.ServeURL == "" {
		return nil, errors.New(errors.CodeInternal, "bundle response missing serveUrl")
	}
	return &art, nil
}

func (c *HTTPClient) SelectComposition(ctx context.Context, bundle *BundleArtifact, compositionID string, inputProps map[string]any) (*Composition, error) {
	ctx, cancel := context.WithTimeout(ctx, c.metadataTimeout)
	defer cancel()

	body := map[string]any{
		"serveUrl":   bundle.ServeURL,
		"id":         compositionID,
		"inputProps": inputProps,
	}

	var comp Composition
	if err := c.post(ctx, "/compositions", body, &comp); err != nil {
		return nil, errors.Wrap(err, "render.metadata", fmt.Sprintf("composition %q could not be resolved", compositionID))
	}
	if comp.DurationInFrames <= 0 {
		return nil, errors.Newf(errors.CodeInternal, "composition %q has no frames", compositionID)
	}
	return &comp, nil
}

// RenderMedia posts a render request and consumes the sidecar's NDJSON
// progress stream until the terminal line arrives.
func (c *HTTPClient) RenderMedia(ctx context.Context, comp *Composition, bundle *BundleArtifact, inputProps map[string]any, outputPath string, onProgress ProgressFunc) error {
	ctx, cancel := context.WithTimeout(ctx, c.renderTimeout)
	defer cancel()

	body := map[string]any{
		"serveUrl":       bundle.ServeURL,
		"composition":    comp.ID,
		"inputProps":     inputProps,
		"outputLocation": outputPath,
		"codec":          "h264",
	}

	payload, err := json.Marshal(body)
	if err != nil {
		return errors.Wrap(err, "render.media", "failed to encode render request")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/render", bytes.NewReader(payload))
	if err != nil {
		return errors.Wrap(err, "render.media", "failed to create render request")
	}
	req.Header.Set("Content-Type", "application/json")

	res, err := c.client.Do(req)
	if err != nil {
		if ctx.Err() == context.DeadlineExceeded {
			return errors.Timeout("render")
		}
		return errors.Wrap(err, "render.media", "render request failed")
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode >= 300 {
		return statusError("render.media", res.StatusCode)
	}

	// The sidecar streams one JSON object per line:
	//   {"renderedFrames":N,"encodedFrames":M,"renderedDoneIn":ms}
	// terminated by {"done":true} or {"error":"..."}.
	type streamLine struct {
		Progress
		Done  bool   `json:"done"`
		Error string `json:"error"`
	}

	scanner := bufio.NewScanner(res.Body)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	for scanner.Scan() {
		line := bytes.TrimSpace(scanner.Bytes())
		if len(line) == 0 {
			continue
		}

		var ev streamLine
		if err := json.Unmarshal(line, &ev); err != nil {
			continue
		}

		if ev.Error != "" {
			return errors.New(errors.CodeInternal, ev.Error)
		}
		if ev.Done {
			return nil
		}
		if onProgress != nil {
			onProgress(ev.Progress)
		}
	}

	if err := scanner.Err(); err != nil {
		if ctx.Err() == context.DeadlineExceeded {
			return errors.Timeout("render")
		}
		return errors.Wrap(err, "render.media", "progress stream interrupted")
	}

	return errors.New(errors.CodeInternal, "progress stream ended without completion")
}

func (c *HTTPClient) post(ctx context.Context, path string, body any, out any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	res, err := c.client.Do(req)
	if err != nil {
		if ctx.Err() == context.DeadlineExceeded {
			return errors.Timeout(path)
		}
		return err
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode >= 300 {
		return statusError(path, res.StatusCode)
	}

	return json.NewDecoder(res.Body).Decode(out)
}

// statusError classifies a sidecar HTTP status into a coded error.
func statusError(op string, status int) error {
	switch {
	case status == http.StatusNotFound:
		return errors.WrapWithCode(fmt.Errorf("renderer http %d", status), errors.CodeNotFound, op, "renderer resource not found")
	case status == http.StatusGatewayTimeout:
		return errors.WrapWithCode(fmt.Errorf("renderer http %d", status), errors.CodeTimeout, op, "renderer timed out")
	case status >= 500:
		return errors.WrapWithCode(fmt.Errorf("renderer http %d", status), errors.CodeUnavailable, op, "renderer unavailable")
	default:
		return errors.WrapWithCode(fmt.Errorf("renderer http %d", status), errors.CodeInternal, op, "renderer rejected request")
	}
}
