// Package styles provides colour themes and styling for the TUI.
package styles

import (
	"github.com/charmbracelet/lipgloss"
)

// Theme defines the colour palette for the sentence browser.
type Theme struct {
	// Accent highlights titles and the selected row.
	Accent lipgloss.Color

	// Date marks resolved date text and DATE tags.
	Date lipgloss.Color

	// Past marks dates before the epoch.
	Past lipgloss.Color

	// Future marks dates on or after the epoch.
	Future lipgloss.Color

	// Foreground is the default text colour.
	Foreground lipgloss.Color

	// Muted is for tags, hints and secondary text.
	Muted lipgloss.Color

	// Error indicates problems.
	Error lipgloss.Color

	// Bar is the status bar background.
	Bar lipgloss.Color
}

// DefaultTheme returns the default colour theme.
func DefaultTheme() *Theme {
	return &Theme{
		Accent:     lipgloss.Color("#7C3AED"), // Purple
		Date:       lipgloss.Color("#06B6D4"), // Cyan
		Past:       lipgloss.Color("#F9E2AF"), // Yellow
		Future:     lipgloss.Color("#A6E3A1"), // Green
		Foreground: lipgloss.Color("#CDD6F4"), // Light gray
		Muted:      lipgloss.Color("#6C7086"), // Medium gray
		Error:      lipgloss.Color("#F38BA8"), // Red
		Bar:        lipgloss.Color("#181825"),
	}
}

// Styles contains pre-configured lipgloss styles.
type Styles struct {
	theme *Theme

	Title     lipgloss.Style
	Normal    lipgloss.Style
	Muted     lipgloss.Style
	Selected  lipgloss.Style
	Error     lipgloss.Style
	Date      lipgloss.Style
	Tag       lipgloss.Style
	Past      lipgloss.Style
	Future    lipgloss.Style
	StatusBar lipgloss.Style
	Help      lipgloss.Style
}

// NewStyles creates styles from a theme.
func NewStyles(theme *Theme) *Styles {
	if theme == nil {
		theme = DefaultTheme()
	}

	return &Styles{
		theme: theme,

		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(theme.Accent),

		Normal: lipgloss.NewStyle().
			Foreground(theme.Foreground),

		Muted: lipgloss.NewStyle().
			Foreground(theme.Muted),

		Selected: lipgloss.NewStyle().
			Bold(true).
			Foreground(theme.Foreground).
			Background(theme.Accent),

		Error: lipgloss.NewStyle().
			Foreground(theme.Error),

		Date: lipgloss.NewStyle().
			Bold(true).
			Foreground(theme.Date),

		Tag: lipgloss.NewStyle().
			Foreground(theme.Muted),

		Past: lipgloss.NewStyle().
			Foreground(theme.Past),

		Future: lipgloss.NewStyle().
			Foreground(theme.Future),

		StatusBar: lipgloss.NewStyle().
			Foreground(theme.Muted).
			Background(theme.Bar).
			Padding(0, 1),

		Help: lipgloss.NewStyle().
			Foreground(theme.Muted),
	}
}

// DefaultStyles returns styles with the default theme.
func DefaultStyles() *Styles {
	return NewStyles(DefaultTheme())
}

// Theme returns the theme used by these styles.
func (s *Styles) Theme() *Theme {
	return s.theme
}

// Offset returns the style for a day offset: Past when negative.
func (s *Styles) Offset(days int) lipgloss.Style {
	if days < 0 {
		return s.Past
	}
	return s.Future
}
