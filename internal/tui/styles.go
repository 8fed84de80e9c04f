// Package tui provides the terminal user interface for rangepick.
package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/tomaslara/rangepick/internal/tui/theme"
)

// fieldWidth is the inner width of each date field.
const fieldWidth = 16

// Styles holds all lipgloss styles for the TUI, derived from a theme.
type Styles struct {
	colorBg     lipgloss.Color
	colorPanel  lipgloss.Color
	colorFg     lipgloss.Color
	colorMuted  lipgloss.Color
	colorAccent lipgloss.Color
	colorError  lipgloss.Color
	colorHover  lipgloss.Color

	TitleStyle lipgloss.Style

	// Field styles
	FieldStyle        lipgloss.Style
	FieldFocusedStyle lipgloss.Style
	FieldErrorStyle   lipgloss.Style
	FieldLabelStyle   lipgloss.Style
	PlaceholderStyle  lipgloss.Style
	InputTextStyle    lipgloss.Style
	InputErrorStyle   lipgloss.Style

	// Calendar styles
	CalendarStyle    lipgloss.Style
	MonthHeaderStyle lipgloss.Style
	WeekdayRowStyle  lipgloss.Style
	DayStyle         lipgloss.Style
	DayMutedStyle    lipgloss.Style
	DayInRangeStyle  lipgloss.Style
	DayBoundaryStyle lipgloss.Style
	DayCursorStyle   lipgloss.Style

	// Status and help
	StatusStyle      lipgloss.Style
	StatusErrorStyle lipgloss.Style
	HelpStyle        lipgloss.Style
}

// NewStyles derives Styles from the provided theme.
func NewStyles(t *theme.Theme) *Styles {
	s := &Styles{
		colorBg:     theme.Color(t.Bg),
		colorPanel:  theme.Color(t.BgPanel),
		colorFg:     theme.Color(t.Fg),
		colorMuted:  theme.Color(t.FgMuted),
		colorAccent: theme.Color(t.Accent),
		colorError:  theme.Color(t.Error),
		colorHover:  theme.Color(t.Hover),
	}

	s.TitleStyle = lipgloss.NewStyle().
		Foreground(s.colorAccent).
		Bold(true)

	fieldBase := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		Padding(0, 1).
		Width(fieldWidth)
	s.FieldStyle = fieldBase.BorderForeground(s.colorMuted)
	s.FieldFocusedStyle = fieldBase.BorderForeground(s.colorAccent)
	s.FieldErrorStyle = fieldBase.BorderForeground(s.colorError)
	s.FieldLabelStyle = lipgloss.NewStyle().Foreground(s.colorMuted)
	s.PlaceholderStyle = lipgloss.NewStyle().Foreground(s.colorMuted)
	s.InputTextStyle = lipgloss.NewStyle().Foreground(s.colorFg)
	s.InputErrorStyle = lipgloss.NewStyle().Foreground(s.colorError)

	s.CalendarStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(s.colorAccent).
		Background(s.colorPanel).
		Padding(0, 1)
	s.MonthHeaderStyle = lipgloss.NewStyle().
		Foreground(s.colorAccent).
		Background(s.colorPanel).
		Bold(true)
	s.WeekdayRowStyle = lipgloss.NewStyle().
		Foreground(s.colorMuted).
		Background(s.colorPanel)
	s.DayStyle = lipgloss.NewStyle().
		Foreground(s.colorFg).
		Background(s.colorPanel)
	s.DayMutedStyle = lipgloss.NewStyle().
		Foreground(s.colorMuted).
		Background(s.colorPanel)
	s.DayInRangeStyle = lipgloss.NewStyle().
		Foreground(s.colorFg).
		Background(theme.Color(t.Selection))
	s.DayBoundaryStyle = lipgloss.NewStyle().
		Foreground(s.colorBg).
		Background(s.colorAccent).
		Bold(true)
	s.DayCursorStyle = lipgloss.NewStyle().
		Foreground(s.colorBg).
		Background(s.colorHover).
		Bold(true)

	s.StatusStyle = lipgloss.NewStyle().Foreground(s.colorMuted)
	s.StatusErrorStyle = lipgloss.NewStyle().Foreground(s.colorError)
	s.HelpStyle = lipgloss.NewStyle().Foreground(s.colorMuted)

	return s
}
