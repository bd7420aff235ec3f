package viz

import "github.com/charmbracelet/lipgloss"

// Theme defines the panel color scheme.
type Theme struct {
	Name   string
	Title  lipgloss.Color
	Text   lipgloss.Color
	Muted  lipgloss.Color
	Accent lipgloss.Color
	Track  lipgloss.Color
	Border lipgloss.Color
}

var (
	ThemeSpace = Theme{
		Name:   "space",
		Title:  lipgloss.Color("#ffffff"),
		Text:   lipgloss.Color("#e0e0e0"),
		Muted:  lipgloss.Color("#888888"),
		Accent: lipgloss.Color("#FDB813"), // Sun
		Track:  lipgloss.Color("#333333"),
		Border: lipgloss.Color("#2a2a2a"),
	}

	ThemeMinimal = Theme{
		Name:   "minimal",
		Title:  lipgloss.Color("#ffffff"),
		Text:   lipgloss.Color("#cccccc"),
		Muted:  lipgloss.Color("#666666"),
		Accent: lipgloss.Color("#ffffff"),
		Track:  lipgloss.Color("#444444"),
		Border: lipgloss.Color("#444444"),
	}

	ThemeRetroGreen = Theme{
		Name:   "retro",
		Title:  lipgloss.Color("#88ff88"),
		Text:   lipgloss.Color("#00ff00"),
		Muted:  lipgloss.Color("#007700"),
		Accent: lipgloss.Color("#ccffcc"),
		Track:  lipgloss.Color("#004400"),
		Border: lipgloss.Color("#005500"),
	}

	Themes = []Theme{ThemeSpace, ThemeMinimal, ThemeRetroGreen}
)

// GetTheme returns a theme by name, falling back to the first theme.
func GetTheme(name string) Theme {
	for _, t := range Themes {
		if t.Name == name {
			return t
		}
	}
	return Themes[0]
}

// NextTheme returns the theme after name, wrapping around.
func NextTheme(name string) Theme {
	for i, t := range Themes {
		if t.Name == name {
			return Themes[(i+1)%len(Themes)]
		}
	}
	return Themes[0]
}

// ThemeNames lists the themes in cycling order.
func ThemeNames() []string {
	names := make([]string, len(Themes))
	for i, t := range Themes {
		names[i] = t.Name
	}
	return names
}
