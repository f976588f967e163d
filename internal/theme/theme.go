// Package theme holds the colors and styles shared by text reports and the
// config editor.
package theme

import (
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// Palette
var (
	ColorPrimary = lipgloss.AdaptiveColor{Light: "#5A56E0", Dark: "#7571F9"}
	ColorOK      = lipgloss.AdaptiveColor{Light: "#02BA84", Dark: "#02BF87"}
	ColorError   = lipgloss.AdaptiveColor{Light: "#FE5F86", Dark: "#FE5F86"}
	ColorWarn    = lipgloss.AdaptiveColor{Light: "#FF9500", Dark: "#FFAA33"}
	ColorMuted   = lipgloss.AdaptiveColor{Light: "#9B9B9B", Dark: "#5C5C5C"}
)

// Manifest status and report fields
var (
	OK     = lipgloss.NewStyle().Foreground(ColorOK).Bold(true)
	Error  = lipgloss.NewStyle().Foreground(ColorError)
	Warn   = lipgloss.NewStyle().Foreground(ColorWarn)
	Header = lipgloss.NewStyle().Bold(true)
	// Label is also used for help text under menu entries
	Label = lipgloss.NewStyle().Foreground(ColorMuted)
)

// Config editor
var (
	Title      = lipgloss.NewStyle().Bold(true).Foreground(ColorPrimary).MarginBottom(1)
	Selected   = lipgloss.NewStyle().Bold(true).Foreground(ColorPrimary)
	Unselected = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	Help       = lipgloss.NewStyle().Foreground(ColorMuted).MarginTop(1)
	Box        = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorPrimary).
			Padding(1, 2)
)

// Form returns the huh theme for config forms, with titles and validation
// messages in the palette colors
func Form() *huh.Theme {
	t := huh.ThemeCharm()
	t.Focused.Title = t.Focused.Title.Foreground(ColorPrimary)
	t.Focused.ErrorMessage = t.Focused.ErrorMessage.Foreground(ColorError)
	return t
}

// AccessibleForm returns the plain theme used in accessible mode
func AccessibleForm() *huh.Theme {
	return huh.ThemeBase()
}
