// Package ui implements the terminal screens of the wirechat client.
package ui

import "github.com/charmbracelet/lipgloss"

var (
	Primary     = lipgloss.Color("#8BC34A")
	Muted       = lipgloss.Color("#6B7280")
	Destructive = lipgloss.Color("#E53935")
	Foreground  = lipgloss.Color("#F2F2F2")
	Background  = lipgloss.Color("#141D2B")
)

// Styles groups the lipgloss styles shared by the screens.
type Styles struct {
	Title        lipgloss.Style
	Label        lipgloss.Style
	Button       lipgloss.Style
	ActiveButton lipgloss.Style
	Error        lipgloss.Style
	Help         lipgloss.Style
	Dialog       lipgloss.Style
	Author       lipgloss.Style
	System       lipgloss.Style
	Frame        lipgloss.Style
}

// DefaultStyles returns the client's color scheme.
func DefaultStyles() Styles {
	button := lipgloss.NewStyle().
		Padding(0, 2).
		MarginRight(1).
		Foreground(Foreground).
		Background(lipgloss.Color("#2A3850"))

	return Styles{
		Title:        lipgloss.NewStyle().Bold(true).Foreground(Primary).MarginBottom(1),
		Label:        lipgloss.NewStyle().Foreground(Muted),
		Button:       button,
		ActiveButton: button.Foreground(Background).Background(Primary).Bold(true),
		Error:        lipgloss.NewStyle().Foreground(Destructive),
		Help:         lipgloss.NewStyle().Foreground(Muted).MarginTop(1),
		Dialog: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Primary).
			Padding(0, 1),
		Author: lipgloss.NewStyle().Bold(true).Foreground(Primary),
		System: lipgloss.NewStyle().Italic(true).Foreground(Muted),
		Frame:  lipgloss.NewStyle().Padding(1, 2),
	}
}
