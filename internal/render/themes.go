package render

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Theme is the color set a report is drawn with.
type Theme struct {
	Name string

	Primary   lipgloss.Color
	Text      lipgloss.Color
	Muted     lipgloss.Color
	Error     lipgloss.Color
	Border    lipgloss.Color
	Highlight lipgloss.Color
}

var (
	DarkTheme = Theme{
		Name:      "dark",
		Primary:   lipgloss.Color("#3B82F6"),
		Text:      lipgloss.Color("#F9FAFB"),
		Muted:     lipgloss.Color("#9CA3AF"),
		Error:     lipgloss.Color("#EF4444"),
		Border:    lipgloss.Color("#374151"),
		Highlight: lipgloss.Color("#1E3A8A"),
	}

	LightTheme = Theme{
		Name:      "light",
		Primary:   lipgloss.Color("#1E40AF"),
		Text:      lipgloss.Color("#111827"),
		Muted:     lipgloss.Color("#6B7280"),
		Error:     lipgloss.Color("#DC2626"),
		Border:    lipgloss.Color("#D1D5DB"),
		Highlight: lipgloss.Color("#DBEAFE"),
	}
)

func ThemeByName(name string) (Theme, error) {
	switch strings.ToLower(name) {
	case "dark", "":
		return DarkTheme, nil
	case "light":
		return LightTheme, nil
	default:
		return Theme{}, fmt.Errorf("invalid theme: %s (must be one of: dark, light)", name)
	}
}

// Toggle switches between the dark and light themes.
func (t Theme) Toggle() Theme {
	if t.Name == LightTheme.Name {
		return DarkTheme
	}
	return LightTheme
}
