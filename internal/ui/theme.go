package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Theme bundles the styles and symbols the form renders with.
type Theme struct {
	Name string

	Title, Label, Focused, Muted lipgloss.Style
	Error, Success, Accent       lipgloss.Style
	Button, ButtonFocused        lipgloss.Style
	Border                       lipgloss.Border
	BorderColor                  lipgloss.TerminalColor

	SymOK, SymFail, Cursor string
}

// Themes lists the accepted theme names.
var Themes = []string{"classic", "neon", "mono"}

// NewTheme returns the named theme. Unknown names fall back to classic.
func NewTheme(name string) Theme {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "neon":
		return Theme{
			Name:          "neon",
			Title:         lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("13")),
			Label:         lipgloss.NewStyle().Foreground(lipgloss.Color("14")),
			Focused:       lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("13")),
			Muted:         lipgloss.NewStyle().Faint(true),
			Error:         lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
			Success:       lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
			Accent:        lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
			Button:        lipgloss.NewStyle().Padding(0, 2).Foreground(lipgloss.Color("14")),
			ButtonFocused: lipgloss.NewStyle().Padding(0, 2).Bold(true).Reverse(true).Foreground(lipgloss.Color("13")),
			Border:        lipgloss.RoundedBorder(),
			BorderColor:   lipgloss.Color("13"),
			SymOK:         "✔", SymFail: "✖", Cursor: "▸ ",
		}
	case "mono":
		plain := lipgloss.NewStyle()
		return Theme{
			Name:          "mono",
			Title:         plain,
			Label:         plain,
			Focused:       plain,
			Muted:         plain,
			Error:         plain,
			Success:       plain,
			Accent:        plain,
			Button:        plain.Padding(0, 1),
			ButtonFocused: plain.Padding(0, 1),
			Border:        lipgloss.NormalBorder(),
			BorderColor:   lipgloss.NoColor{},
			SymOK:         "ok", SymFail: "x", Cursor: "> ",
		}
	default:
		return Theme{
			Name:          "classic",
			Title:         lipgloss.NewStyle().Bold(true),
			Label:         lipgloss.NewStyle(),
			Focused:       lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12")),
			Muted:         lipgloss.NewStyle().Faint(true),
			Error:         lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
			Success:       lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
			Accent:        lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
			Button:        lipgloss.NewStyle().Padding(0, 2),
			ButtonFocused: lipgloss.NewStyle().Padding(0, 2).Bold(true).Reverse(true),
			Border:        lipgloss.RoundedBorder(),
			BorderColor:   lipgloss.Color("8"),
			SymOK:         "✔", SymFail: "✖", Cursor: "> ",
		}
	}
}
