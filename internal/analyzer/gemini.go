package analyzer

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"regexp"
	"time"
)

const (
	geminiBaseURL = "https://generativelanguage.googleapis.com/v1beta"
	geminiModel   = "gemini-pro"
)

var jsonBlockRe = regexp.MustCompile(`\{[\s\S]*\}`)

// GeminiClient calls the Gemini generateContent API to analyze prompts.
type GeminiClient struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	model      string
}

type geminiRequest struct {
	Contents []geminiContent `json:"contents"`
}

type geminiContent struct {
	Parts []geminiPart `json:"parts"`
}

type geminiPart struct {
	Text string `json:"text"`
}

type geminiResponse struct {
	Candidates []struct {
		Content struct {
			Parts []struct {
				Text string `json:"text"`
			} `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
}

// NewGeminiClient creates a Gemini API client. An empty key yields an
// unconfigured client; callers check IsConfigured before use.
func NewGeminiClient(apiKey string) *GeminiClient {
	return &GeminiClient{
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		baseURL: geminiBaseURL,
		apiKey:  apiKey,
		model:   geminiModel,
	}
}

// IsConfigured returns true if the client has a usable API key.
func (c *GeminiClient) IsConfigured() bool {
	return c.apiKey != "" && c.apiKey != "your_gemini_api_key_here" && c.apiKey != "YOUR_API_KEY_HERE"
}

const directorPrompt = `You are a high-end motion graphics director.
Analyze the user's video request and return a JSON configuration.

COMPOSITIONS & PROPS:
1. WalkingMan: A cinematic silhouette of a man walking and smoking. Use for: cinematic, deep, atmospheric, rain, smoking, noir, or character-based prompts.
   Props: manColor (hex), smokeColor (hex), showRain (boolean), gridColor (hex), accentColor (hex)
2. KineticTitle: Bold animated text. Use for high-energy motivational quotes.
   Props: text (string), accentColor (hex)
3. NeonText: Glowing neon. Use for tech, futuristic, or nightlife vibes.
   Props: text (string), color (hex), subtitle (string)
4. GradientText: Smooth reveal. Use for premium, modern vibes.
   Props: text (string), gradientColors (array)
5. GlassCard: Information card. Use for stats/professional info.
   Props: title (string), subtitle (string), accentColor (hex)
6. DataViz: Growth charts. Use for showing progress/numbers.
   Props: title (string), color (hex)
7. ParticleNetwork: Tech dots. Use for networking/AI themes.
   Props: title (string), color (hex)

RULES:
- If the user describes a SCENE (e.g., "man in the rain", "smoking under a bridge", "cinematic man"), ALWAYS prefer 'WalkingMan'.
- For WalkingMan, map the described "man color" to manColor. If they say "man in white", set manColor to #ffffff.
- Return ONLY valid JSON.

JSON STRUCTURE:
{
  "composition": "string",
  "text": "string (main text if applicable)",
  "subtitle": "string (optional)",
  "primaryColor": "string (hex)",
  "secondaryColor": "string (hex)",
  "manColor": "string (hex, if applicable)",
  "showRain": boolean,
  "style": "string (smooth|energetic|cinematic)",
  "duration": 10,
  "fps": 30
}`

// Analyze sends the prompt to Gemini and parses the JSON configuration out
// of the model's text response.
func (c *GeminiClient) Analyze(ctx context.Context, userPrompt string) (Config, error) {
	prompt := fmt.Sprintf("%s\n\nUSER REQUEST: %q\n\nReturn JSON:", directorPrompt, userPrompt)

	reqBody := geminiRequest{
		Contents: []geminiContent{
			{Parts: []geminiPart{{Text: prompt}}},
		},
	}

	bodyBytes, err := json.Marshal(reqBody)
	if err != nil {
		return Config{}, fmt.Errorf("failed to marshal request: %w", err)
	}

	url := fmt.Sprintf("%s/models/%s:generateContent?key=%s", c.baseURL, c.model, c.apiKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(bodyBytes))
	if err != nil {
		return Config{}, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return Config{}, fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return Config{}, fmt.Errorf("gemini API error (status %d): %s", resp.StatusCode, string(respBody))
	}

	var genResp geminiResponse
	if err := json.Unmarshal(respBody, &genResp); err != nil {
		return Config{}, fmt.Errorf("failed to unmarshal response: %w", err)
	}

	if len(genResp.Candidates) == 0 || len(genResp.Candidates[0].Content.Parts) == 0 {
		return Config{}, fmt.Errorf("no candidates in response")
	}

	text := genResp.Candidates[0].Content.Parts[0].Text
	block := jsonBlockRe.FindString(text)
	if block == "" {
		return Config{}, fmt.Errorf("no JSON object in model response")
	}

	var cfg Config
	if err := json.Unmarshal([]byte(block), &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse model configuration: %w", err)
	}
	if cfg.Composition == "" {
		return Config{}, fmt.Errorf("model configuration missing composition")
	}

	cfg.IsAIGenerated = true
	return cfg, nil
}
