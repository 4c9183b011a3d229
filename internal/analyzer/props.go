package analyzer

// InputProps converts an analysis result into the exact input props the
// target composition expects, filling defaults for anything unset.
func (c Config) InputProps() map[string]any {
	switch c.Composition {
	case "WalkingMan":
		return map[string]any{
			"manColor":    orDefault(c.ManColor, "#111111"),
			"smokeColor":  "#aaaaaa",
			"showRain":    c.ShowRain,
			"accentColor": orDefault(c.PrimaryColor, "#00ff88"),
			"gridColor":   "#111111",
		}
	case "KineticTitle":
		return map[string]any{
			"text":        orDefault(c.Text, "AMAZING"),
			"accentColor": orDefault(c.PrimaryColor, "#00ff88"),
			"fontSize":    100,
		}
	case "NeonText":
		return map[string]any{
			"text":     orDefault(c.Text, "NEON"),
			"color":    orDefault(c.PrimaryColor, "#00ff88"),
			"subtitle": c.Subtitle,
		}
	case "GradientText":
		return map[string]any{
			"text": orDefault(c.Text, "LIMITLESS"),
			"gradientColors": []string{
				orDefault(c.PrimaryColor, "#667eea"),
				orDefault(c.SecondaryColor, "#764ba2"),
			},
		}
	case "DataViz":
		return map[string]any{
			"title": orDefault(c.Text, "GROWTH"),
			"color": orDefault(c.PrimaryColor, "#00ff88"),
		}
	default:
		return map[string]any{
			"text": orDefault(c.Text, "FOCUS"),
		}
	}
}

func orDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}
