// Package theme defines the color and glyph sets used by the report
// renderer.
package theme

import "github.com/charmbracelet/lipgloss"

// Theme defines colors and glyphs for terminal rendering.
type Theme struct {
	Name      string
	Error     lipgloss.Style
	Warning   lipgloss.Style
	Success   lipgloss.Style
	Subtle    lipgloss.Style
	Bold      lipgloss.Style
	Underline lipgloss.Style
	Icons     Icons
}

// Icons defines the glyph set for a theme.
type Icons struct {
	Error   string
	Warning string
	Success string
	Fixable string
}

// Default returns the standard color theme.
func Default() Theme {
	return Theme{
		Name:      "default",
		Error:     lipgloss.NewStyle().Foreground(lipgloss.Color("196")), // red
		Warning:   lipgloss.NewStyle().Foreground(lipgloss.Color("220")), // yellow
		Success:   lipgloss.NewStyle().Foreground(lipgloss.Color("34")),  // green
		Subtle:    lipgloss.NewStyle().Foreground(lipgloss.Color("242")), // gray
		Bold:      lipgloss.NewStyle().Bold(true),
		Underline: lipgloss.NewStyle().Underline(true),
		Icons: Icons{
			Error:   "✘",
			Warning: "⚠",
			Success: "✔",
			Fixable: "🔨",
		},
	}
}

// Mono returns a monochrome theme (no colors, ASCII glyphs).
func Mono() Theme {
	return Theme{
		Name:      "mono",
		Error:     lipgloss.NewStyle(),
		Warning:   lipgloss.NewStyle(),
		Success:   lipgloss.NewStyle(),
		Subtle:    lipgloss.NewStyle(),
		Bold:      lipgloss.NewStyle().Bold(true),
		Underline: lipgloss.NewStyle(),
		Icons: Icons{
			Error:   "x",
			Warning: "!",
			Success: "+",
			Fixable: "*",
		},
	}
}

// ByName returns a theme by name, defaulting to Default.
func ByName(name string) Theme {
	switch name {
	case "mono":
		return Mono()
	default:
		return Default()
	}
}
