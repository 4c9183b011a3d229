// Package presets holds the static preset table: human-chosen names mapped
// to a composition id plus its input props. Loaded once, never mutated.
package presets

// Preset is a pre-baked (composition, props) pair for quick reuse.
type Preset struct {
	Composition string         `json:"composition"`
	Props       map[string]any `json:"props"`
}

// Entry is one preset in a grouped listing.
type Entry struct {
	Name  string         `json:"name"`
	Props map[string]any `json:"props"`
}

// Names lists all preset names in table order.
var Names = []string{
	"focus", "grind", "execute", "discipline",
	"gradient_power", "gradient_limitless", "gradient_rise",
	"neon_crypto", "neon_electric", "neon_future",
	"glass_revenue", "glass_clarity", "glass_premium",
	"chart_growth", "chart_moonshot",
	"particle_tech", "particle_matrix",
	"iso_premium", "iso_tech",
	"bento_features",
	"noir_smoking", "white_walker",
	"n8n_chatwoot_ai", "n8n_chatwoot_green", "n8n_epic",
}

var table = map[string]Preset{
	// Kinetic title (motivational)
	"focus": {
		Composition: "KineticTitle",
		Props: map[string]any{
			"text":          "FOCUS ON WHAT MATTERS",
			"accentColor":   "#00ff88",
			"fontSize":      100,
			"lineThickness": 4,
		},
	},
	"grind": {
		Composition: "KineticTitle",
		Props: map[string]any{
			"text":          "THE GRIND NEVER STOPS",
			"accentColor":   "#ff0044",
			"fontSize":      90,
			"lineThickness": 5,
		},
	},
	"execute": {
		Composition: "KineticTitle",
		Props: map[string]any{
			"text":          "EXECUTION > IDEAS",
			"accentColor":   "#ff6b00",
			"fontSize":      95,
			"lineThickness": 4,
		},
	},
	"discipline": {
		Composition: "KineticTitle",
		Props: map[string]any{
			"text":          "DISCIPLINE EQUALS FREEDOM",
			"accentColor":   "#6c5ce7",
			"fontSize":      85,
			"lineThickness": 3,
		},
	},

	// Gradient text
	"gradient_power": {
		Composition: "GradientText",
		Props: map[string]any{
			"text":           "UNLEASH YOUR POWER",
			"gradientColors": []string{"#667eea", "#764ba2"},
			"glowIntensity":  1,
			"fontSize":       120,
			"revealStyle":    "clip",
		},
	},
	"gradient_limitless": {
		Composition: "GradientText",
		Props: map[string]any{
			"text":           "LIMITLESS",
			"gradientColors": []string{"#ff6b6b", "#feca57", "#48dbfb"},
			"glowIntensity":  1,
			"fontSize":       120,
			"revealStyle":    "clip",
		},
	},
	"gradient_rise": {
		Composition: "GradientText",
		Props: map[string]any{
			"text":           "RISE ABOVE",
			"gradientColors": []string{"#f093fb", "#f5576c"},
			"glowIntensity":  0.8,
			"fontSize":       110,
			"revealStyle":    "clip",
		},
	},

	// Neon text
	"neon_crypto": {
		Composition: "NeonText",
		Props: map[string]any{
			"text":           "CRYPTO",
			"color":          "#00ff88",
			"subtitle":       "the future is now",
			"flickerEnabled": true,
		},
	},
	"neon_electric": {
		Composition: "NeonText",
		Props: map[string]any{
			"text":           "ELECTRIC",
			"color":          "#00d4ff",
			"subtitle":       "high voltage energy",
			"flickerEnabled": true,
		},
	},
	"neon_future": {
		Composition: "NeonText",
		Props: map[string]any{
			"text":           "FUTURE",
			"color":          "#ff00ff",
			"subtitle":       "embrace tomorrow",
			"flickerEnabled": false,
		},
	},

	// Glass card (stats)
	"glass_revenue": {
		Composition: "GlassCard",
		Props: map[string]any{
			"title":       "REVENUE GROWTH",
			"subtitle":    "Q4 Performance Dashboard",
			"accentColor": "#00ff88",
		},
	},
	"glass_clarity": {
		Composition: "GlassCard",
		Props: map[string]any{
			"title":       "CLARITY",
			"subtitle":    "See through the noise",
			"accentColor": "#a78bfa",
		},
	},
	"glass_premium": {
		Composition: "GlassCard",
		Props: map[string]any{
			"title":       "PREMIUM",
			"subtitle":    "Ultra-refined design",
			"accentColor": "#6c5ce7",
		},
	},

	// Data visualization
	"chart_growth": {
		Composition: "DataViz",
		Props: map[string]any{
			"data": []map[string]any{
				{"x": 0, "y": 20}, {"x": 1, "y": 45}, {"x": 2, "y": 35},
				{"x": 3, "y": 65}, {"x": 4, "y": 55}, {"x": 5, "y": 80},
				{"x": 6, "y": 70}, {"x": 7, "y": 95},
			},
			"color":    "#00ff88",
			"showGrid": true,
			"title":    "GROWTH",
			"subtitle": "+240% this quarter",
		},
	},
	"chart_moonshot": {
		Composition: "DataViz",
		Props: map[string]any{
			"data": []map[string]any{
				{"x": 0, "y": 10}, {"x": 1, "y": 15}, {"x": 2, "y": 25},
				{"x": 3, "y": 50}, {"x": 4, "y": 90},
			},
			"color":    "#ff6b00",
			"showGrid": true,
			"title":    "EXPONENTIAL",
			"subtitle": "9x growth in 5 months",
		},
	},

	// Particle network
	"particle_tech": {
		Composition: "ParticleNetwork",
		Props: map[string]any{
			"particleCount":      80,
			"color":              "#00ff88",
			"connectionDistance": 120,
			"speed":              1,
			"title":              "CONNECTED",
			"subtitle":           "Everything is linked",
		},
	},
	"particle_matrix": {
		Composition: "ParticleNetwork",
		Props: map[string]any{
			"particleCount":      100,
			"color":              "#00ff00",
			"connectionDistance": 100,
			"speed":              1.5,
			"title":              "MATRIX",
			"subtitle":           "neural networks",
		},
	},

	// Isometric card
	"iso_premium": {
		Composition: "IsometricCard",
		Props: map[string]any{
			"title":             "PREMIUM",
			"subtitle":          "Next Level Design",
			"accentColor":       "#6c5ce7",
			"rotationIntensity": 0.5,
		},
	},
	"iso_tech": {
		Composition: "IsometricCard",
		Props: map[string]any{
			"title":             "TECH",
			"subtitle":          "3D Showcase",
			"accentColor":       "#00d4ff",
			"rotationIntensity": 0.7,
		},
	},

	// Bento grid
	"bento_features": {
		Composition: "BentoGrid",
		Props: map[string]any{
			"title": "FEATURES",
		},
	},

	// Cinematic
	"noir_smoking": {
		Composition: "WalkingMan",
		Props: map[string]any{
			"manColor":    "#111111",
			"smokeColor":  "#999999",
			"showRain":    true,
			"gridColor":   "#0a0a0a",
			"accentColor": "#333333",
		},
	},
	"white_walker": {
		Composition: "WalkingMan",
		Props: map[string]any{
			"manColor":    "#ffffff",
			"smokeColor":  "#ffffff",
			"showRain":    false,
			"gridColor":   "#1a1a1a",
			"accentColor": "#00ff88",
		},
	},

	// n8n + chatwoot demos
	"n8n_chatwoot_ai": {
		Composition: "N8nChatwootDemo",
		Props: map[string]any{
			"accentColor":   "#ff6d5a",
			"chatwootColor": "#1F93FF",
			"aiColor":       "#8b5cf6",
			"n8nColor":      "#ff6d5a",
		},
	},
	"n8n_chatwoot_green": {
		Composition: "N8nChatwootDemo",
		Props: map[string]any{
			"accentColor":   "#00ff88",
			"chatwootColor": "#1F93FF",
			"aiColor":       "#00d4ff",
			"n8nColor":      "#00ff88",
		},
	},
	"n8n_epic": {
		Composition: "N8nChatwootEpic",
		Props:       map[string]any{},
	},
}

// Get looks up a preset by name.
func Get(name string) (Preset, bool) {
	p, ok := table[name]
	return p, ok
}

// Grouped returns all presets grouped by composition id, in table order.
func Grouped() map[string][]Entry {
	out := make(map[string][]Entry)
	for _, name := range Names {
		p := table[name]
		out[p.Composition] = append(out[p.Composition], Entry{Name: name, Props: p.Props})
	}
	return out
}
