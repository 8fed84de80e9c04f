package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/tomaslara/rangepick/internal/dateutil"
	"github.com/tomaslara/rangepick/internal/rangeinput"
)

// View renders the fields, status line, and calendar overlay.
func (m Model) View() string {
	if m.width <= 0 || m.height <= 0 {
		return "Loading..."
	}

	title := m.styles.TitleStyle.Render("rangepick")
	fields := lipgloss.JoinHorizontal(lipgloss.Top,
		m.renderField(rangeinput.Start, "Start"),
		"  ",
		m.renderField(rangeinput.End, "End"),
	)

	base := lipgloss.JoinVertical(lipgloss.Left,
		title,
		"",
		fields,
		"",
		m.renderStatus(),
		m.renderHelp(),
	)

	if m.coord.State().OverlayOpen {
		overlay := m.renderCalendar()
		// Anchored just below the field row, like a dropdown.
		return compositeOverlay(base, overlay, 2, 6, m.width, m.height)
	}
	return base
}

func (m Model) renderField(b rangeinput.Boundary, label string) string {
	ds := m.coord.Resolve()
	fd := ds.Fields[b]

	box := m.styles.FieldStyle
	switch {
	case fd.Error:
		box = m.styles.FieldErrorStyle
	case ds.FocusTarget != nil && *ds.FocusTarget == b:
		box = m.styles.FieldFocusedStyle
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		m.styles.FieldLabelStyle.Render(label),
		box.Render(m.inputs[b].View()),
	)
}

func (m Model) renderStatus() string {
	if m.statusMsg == "" {
		return ""
	}
	if m.statusErr {
		return m.styles.StatusErrorStyle.Render(m.statusMsg)
	}
	return m.styles.StatusStyle.Render(m.statusMsg)
}

func (m Model) renderHelp() string {
	if m.coord.State().OverlayOpen {
		return m.styles.HelpStyle.Render("arrows move · [ ] month · enter pick · esc close · ctrl+c quit")
	}
	return m.styles.HelpStyle.Render("tab switch · enter accept · ctrl+o calendar · ctrl+y copy · esc quit")
}

// renderCalendar draws the month grid with the preview range
// highlighted.
func (m Model) renderCalendar() string {
	start, end := m.previewRange()
	cursor := m.calendar.Cursor()

	header := m.styles.MonthHeaderStyle.Render(
		fmt.Sprintf("%-14s%7s", m.calendar.Month().Format("January 2006"), "[ ] ←→"))
	weekdays := m.styles.WeekdayRowStyle.Render("Mo Tu We Th Fr Sa Su")

	rows := []string{header, weekdays}
	for _, week := range m.calendar.Weeks() {
		var cells []string
		for _, day := range week {
			cells = append(cells, m.renderDay(day, start, end, cursor))
		}
		rows = append(rows, strings.Join(cells, " "))
	}

	return m.styles.CalendarStyle.Render(strings.Join(rows, "\n"))
}

func (m Model) renderDay(day time.Time, start, end *time.Time, cursor time.Time) string {
	if day.IsZero() {
		return m.styles.DayMutedStyle.Render("  ")
	}

	label := fmt.Sprintf("%2d", day.Day())
	switch {
	case dateutil.SameDay(day, cursor):
		return m.styles.DayCursorStyle.Render(label)
	case isBoundaryDay(day, start) || isBoundaryDay(day, end):
		return m.styles.DayBoundaryStyle.Render(label)
	case inPreviewRange(day, start, end):
		return m.styles.DayInRangeStyle.Render(label)
	case !dateutil.WithinBounds(day, m.calendar.min, m.calendar.max):
		return m.styles.DayMutedStyle.Render(label)
	}
	return m.styles.DayStyle.Render(label)
}

func isBoundaryDay(day time.Time, boundary *time.Time) bool {
	return boundary != nil && dateutil.SameDay(day, *boundary)
}

func inPreviewRange(day time.Time, start, end *time.Time) bool {
	if start == nil || end == nil {
		return false
	}
	r, err := dateutil.NewDateRange(*start, *end)
	if err != nil {
		return false
	}
	return r.Contains(day)
}
