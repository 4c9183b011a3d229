package analyzer

import (
	"regexp"
	"strings"
)

const (
	defaultText     = "WORK HARD"
	maxTextLength   = 40
	defaultDuration = 10
	defaultFPS      = 30
)

// colorTable maps bilingual color keywords to hex values. Order matters:
// the first matching entry wins.
var colorTable = []struct {
	keywords []string
	hex      string
}{
	{[]string{"green", "verde"}, "#00ff88"},
	{[]string{"red", "rojo"}, "#ff0044"},
	{[]string{"blue", "azul"}, "#00d4ff"},
	{[]string{"purple", "morado", "violeta"}, "#6c5ce7"},
	{[]string{"pink", "rosa"}, "#ff00ff"},
	{[]string{"orange", "naranja"}, "#ff6b00"},
	{[]string{"yellow", "amarillo"}, "#feca57"},
	{[]string{"white", "blanco"}, "#ffffff"},
	{[]string{"black", "negro"}, "#111111"},
}

var (
	quotedRe  = regexp.MustCompile(`["']([^"']+)["']`)
	markerRe  = regexp.MustCompile(`(?:que diga|texto|dice|says)[:\s]+([^.,!?;]+)`)
	allCapsRe = regexp.MustCompile(`\b[A-ZÁÉÍÓÚÑ]{2,}\b`)
)

// Fallback analyzes a prompt with keyword matching only. It is deterministic
// and always returns a fully populated configuration.
func Fallback(prompt string) Config {
	lower := strings.ToLower(prompt)

	composition := "KineticTitle"
	manColor := "#111111"
	showRain := false

	switch {
	case containsAny(lower, "hombre", "fumando", "man", "smoking", "lluvia", "rain"):
		composition = "WalkingMan"
		if containsAny(lower, "lluvia", "rain") {
			showRain = true
		}
		if containsAny(lower, "white", "blanco") {
			manColor = "#ffffff"
		}
	case containsAny(lower, "data", "chart", "stats"):
		composition = "DataViz"
	case containsAny(lower, "neon", "glow"):
		composition = "NeonText"
	case containsAny(lower, "particle", "tech", "futur"):
		composition = "ParticleNetwork"
	case strings.Contains(lower, "gradient"):
		composition = "GradientText"
	}

	return Config{
		Composition:   composition,
		Text:          extractText(prompt),
		PrimaryColor:  detectColor(lower),
		ManColor:      manColor,
		ShowRain:      showRain,
		Duration:      defaultDuration,
		FPS:           defaultFPS,
		IsAIGenerated: false,
	}
}

func containsAny(s string, keywords ...string) bool {
	for _, k := range keywords {
		if strings.Contains(s, k) {
			return true
		}
	}
	return false
}

func detectColor(lower string) string {
	for _, entry := range colorTable {
		for _, k := range entry.keywords {
			if strings.Contains(lower, k) {
				return entry.hex
			}
		}
	}
	return "#00ff88"
}

// extractText pulls the display text out of a prompt, trying quoted runs,
// marker phrases ("que diga ...", "says ..."), then shouted all-caps words.
func extractText(prompt string) string {
	var text string

	if m := quotedRe.FindStringSubmatch(prompt); m != nil {
		text = m[1]
	} else if m := markerRe.FindStringSubmatch(strings.ToLower(prompt)); m != nil {
		text = m[1]
	} else if caps := allCapsRe.FindAllString(prompt, -1); len(caps) > 0 {
		text = strings.Join(caps, " ")
	} else {
		text = defaultText
	}

	text = strings.TrimSpace(text)
	if text == "" {
		text = defaultText
	}
	if runes := []rune(text); len(runes) > maxTextLength {
		text = string(runes[:maxTextLength])
	}
	return strings.ToUpper(text)
}
