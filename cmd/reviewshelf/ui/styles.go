// Package ui provides the interactive terminal form for fetching
// books and submitting reviews.
package ui

import (
	"github.com/charmbracelet/lipgloss"

	"reviewshelf/pkg/model"
)

// Semantic colors shared by notices and accents.
var (
	colorAccent  = lipgloss.Color("#8BC34A")
	colorInfo    = lipgloss.Color("#2196F3")
	colorWarning = lipgloss.Color("#FFC107")
	colorError   = lipgloss.Color("#e53935")
	colorMuted   = lipgloss.Color("#6c7a89")
)

// Styles holds the visual styling for the review form.
type Styles struct {
	Title      lipgloss.Style
	Label      lipgloss.Style
	FocusLabel lipgloss.Style
	Panel      lipgloss.Style
	PanelTitle lipgloss.Style
	Muted      lipgloss.Style
	Help       lipgloss.Style
	Spinner    lipgloss.Style

	Info    lipgloss.Style
	Warning lipgloss.Style
	Error   lipgloss.Style
}

// DefaultStyles returns the default review form styling.
func DefaultStyles() Styles {
	return Styles{
		Title:      lipgloss.NewStyle().Bold(true).Foreground(colorAccent),
		Label:      lipgloss.NewStyle().Bold(true),
		FocusLabel: lipgloss.NewStyle().Bold(true).Foreground(colorAccent),
		Panel: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorMuted).
			Padding(0, 1),
		PanelTitle: lipgloss.NewStyle().Bold(true),
		Muted:      lipgloss.NewStyle().Foreground(colorMuted),
		Help:       lipgloss.NewStyle().Foreground(colorMuted),
		Spinner:    lipgloss.NewStyle().Foreground(colorAccent),

		Info:    lipgloss.NewStyle().Foreground(colorInfo),
		Warning: lipgloss.NewStyle().Foreground(colorWarning),
		Error:   lipgloss.NewStyle().Foreground(colorError),
	}
}

// Notice returns the style for a notice level.
func (s Styles) Notice(level model.NoticeLevel) lipgloss.Style {
	switch level {
	case model.NoticeWarning:
		return s.Warning
	case model.NoticeError:
		return s.Error
	default:
		return s.Info
	}
}
