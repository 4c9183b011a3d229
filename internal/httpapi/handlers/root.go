package handlers

import "net/http"

const indexHTML = `<!DOCTYPE html>
<html>
<head><meta charset="utf-8"><title>Motion Graphics API</title></head>
<body style="font-family: sans-serif; padding: 40px; line-height: 1.6; max-width: 800px; margin: 0 auto; background: #0a0a0a; color: #fff; min-height: 100vh;">
    <h1 style="color: #00ff88; border-left: 5px solid #00ff88; padding-left: 20px;">Motion Graphics API</h1>
    <p>The render server is <b>online</b> and ready to process videos.</p>

    <div style="background: #1a1a1a; padding: 20px; border-radius: 8px; border: 1px solid #333;">
        <h3 style="margin-top: 0;">Endpoints:</h3>
        <ul style="list-style: none; padding-left: 0;">
            <li style="margin-bottom: 15px;">
                <b style="color: #6c5ce7;">GET /health</b><br/>
                <span style="color: #888;">Server status and render queue.</span>
            </li>
            <li style="margin-bottom: 15px;">
                <b style="color: #6c5ce7;">GET /presets</b><br/>
                <span style="color: #888;">All available designs and compositions.</span>
            </li>
            <li style="margin-bottom: 15px;">
                <b style="color: #6c5ce7;">POST /generate</b><br/>
                <span style="color: #888;">Create a video from a preset, composition, or free-text prompt.</span>
            </li>
            <li style="margin-bottom: 15px;">
                <b style="color: #6c5ce7;">GET /status/{jobId}</b><br/>
                <span style="color: #888;">Poll a submitted job for its outcome.</span>
            </li>
            <li style="margin-bottom: 15px;">
                <b style="color: #6c5ce7;">GET /outputs</b><br/>
                <span style="color: #888;">List rendered videos.</span>
            </li>
        </ul>
    </div>
</body>
</html>`

// Root serves a small HTML index describing the API.
func (h *Handler) Root(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(indexHTML))
}
