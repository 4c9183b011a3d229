// Command renderctl submits a render job to a running API server and polls
// its status until the job reaches a terminal state.
package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"
)

type statusResponse struct {
	ID          string `json:"id"`
	Status      string `json:"status"`
	Progress    int    `json:"progress"`
	Position    int    `json:"position"`
	Error       string `json:"error"`
	DownloadURL string `json:"downloadUrl"`
	FileSize    string `json:"fileSize"`
}

func main() {
	server := flag.String("server", "http://localhost:3000", "API server base URL")
	preset := flag.String("preset", "", "preset name to render")
	composition := flag.String("composition", "", "composition id to render")
	props := flag.String("props", "", "JSON input props for -composition")
	prompt := flag.String("prompt", "", "free-text prompt for AI generation")
	output := flag.String("output", "", "output file name without extension")
	interval := flag.Duration("interval", 2*time.Second, "status polling interval")
	flag.Parse()

	if *preset == "" && *composition == "" && *prompt == "" {
		fmt.Fprintln(os.Stderr, "one of -preset, -composition or -prompt is required")
		flag.Usage()
		os.Exit(2)
	}

	body := map[string]any{}
	if *preset != "" {
		body["preset"] = *preset
	}
	if *composition != "" {
		body["composition"] = *composition
	}
	if *props != "" {
		var parsed map[string]any
		if err := json.Unmarshal([]byte(*props), &parsed); err != nil {
			fatal("invalid -props JSON: %v", err)
		}
		body["props"] = parsed
	}
	if *prompt != "" {
		body["aiPrompt"] = *prompt
	}
	if *output != "" {
		body["outputName"] = *output
	}

	jobID, err := submit(*server, body)
	if err != nil {
		fatal("submit failed: %v", err)
	}
	fmt.Printf("job %s submitted\n", jobID)

	lastLine := ""
	for {
		time.Sleep(*interval)

		st, err := pollStatus(*server, jobID)
		if err != nil {
			fatal("status poll failed: %v", err)
		}

		line := fmt.Sprintf("status=%s progress=%d%%", st.Status, st.Progress)
		if st.Position > 0 {
			line += fmt.Sprintf(" position=%d", st.Position)
		}
		if line != lastLine {
			fmt.Println(line)
			lastLine = line
		}

		switch st.Status {
		case "completed":
			fmt.Printf("done: %s%s (%s)\n", *server, st.DownloadURL, st.FileSize)
			return
		case "failed":
			fatal("render failed: %s", st.Error)
		}
	}
}

func submit(server string, body map[string]any) (string, error) {
	raw, err := json.Marshal(body)
	if err != nil {
		return "", err
	}

	res, err := http.Post(server+"/generate", "application/json", bytes.NewReader(raw))
	if err != nil {
		return "", err
	}
	defer res.Body.Close()

	data, err := io.ReadAll(res.Body)
	if err != nil {
		return "", err
	}
	if res.StatusCode != http.StatusOK {
		return "", fmt.Errorf("server returned %d: %s", res.StatusCode, data)
	}

	var ack struct {
		JobID string `json:"jobId"`
	}
	if err := json.Unmarshal(data, &ack); err != nil {
		return "", err
	}
	if ack.JobID == "" {
		return "", fmt.Errorf("no jobId in response: %s", data)
	}
	return ack.JobID, nil
}

func pollStatus(server, jobID string) (*statusResponse, error) {
	res, err := http.Get(server + "/status/" + jobID)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()

	data, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, err
	}

	// A 404 right after completion means the job was already evicted;
	// report that rather than spinning forever.
	if res.StatusCode == http.StatusNotFound {
		return nil, fmt.Errorf("job no longer tracked (it may have completed and been cleaned up)")
	}
	if res.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("server returned %d: %s", res.StatusCode, data)
	}

	var st statusResponse
	if err := json.Unmarshal(data, &st); err != nil {
		return nil, err
	}
	return &st, nil
}

func fatal(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
