package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Panel frames lines in the theme's border.
func (t Theme) Panel(lines []string) string {
	return lipgloss.NewStyle().
		Border(t.Border).
		BorderForeground(t.BorderColor).
		Padding(0, 1).
		Render(strings.Join(lines, "\n"))
}

// OK renders a success line.
func (t Theme) OK(msg string) string { return t.Success.Render(t.SymOK + " " + msg) }

// Fail renders a failure line.
func (t Theme) Fail(msg string) string { return t.Error.Render(t.SymFail + " " + msg) }
