package tui

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/tomaslara/rangepick/internal/dateutil"
	"github.com/tomaslara/rangepick/internal/rangeinput"
	"github.com/tomaslara/rangepick/internal/tui/commands"
)

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyMsg(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case commands.SelectionSavedMsg:
		m.statusMsg = "Saved to history."
		m.statusErr = false
		return m, commands.ClearStatusAfter(3 * time.Second)

	case commands.ErrMsg:
		m.statusMsg = fmt.Sprintf("Error: %v", msg.Err)
		m.statusErr = true
		return m, commands.ClearStatusAfter(5 * time.Second)

	case commands.ClearStatusMsg:
		m.statusMsg = ""
		return m, nil
	}

	// Cursor blink and other component messages go to the focused
	// input.
	var cmd tea.Cmd
	if b, ok := m.focusedBoundary(); ok {
		m.inputs[b], cmd = m.inputs[b].Update(msg)
	}
	return m, cmd
}

// afterEvent reconciles the view with the coordinator after a
// mutation: drains callback events into the status line and syncs the
// input components.
func (m *Model) afterEvent() {
	changes, errs, partial := m.sink.drain()

	switch {
	case len(errs) > 0:
		last := errs[len(errs)-1]
		if last.Raw != "" {
			m.statusMsg = fmt.Sprintf("Rejected: %q", last.Raw)
		} else {
			m.statusMsg = fmt.Sprintf("Rejected: %s", last.Format(m.cfg.Picker.Format))
		}
		m.statusErr = true
	case len(changes) > 0:
		m.statusMsg = changes[len(changes)-1].String()
		m.statusErr = false
	case partial:
		// A commit went through but one boundary is still unset.
		if m.coord.State().Fields[rangeinput.Start].Committed.IsUnset() {
			m.statusMsg = "Pick a start date."
		} else {
			m.statusMsg = "Pick an end date."
		}
		m.statusErr = false
	}

	m.syncFields()
	LogDisplayState("after_event", m.coord.Resolve())
}

// committedRange returns the complete, valid, ordered committed range,
// or nil while the selection is incomplete or in error.
func (m Model) committedRange() *dateutil.DateRange {
	start, end := m.coord.Adapter().SelectedRange()
	if start == nil || end == nil {
		return nil
	}
	if !dateutil.Ordered(*start, *end, m.coord.Options().AllowSingleDay) {
		return nil
	}
	r, err := dateutil.NewDateRange(*start, *end)
	if err != nil {
		return nil
	}
	return &r
}

// accept finalizes the committed range, records it, and quits.
func (m *Model) accept(r dateutil.DateRange) tea.Cmd {
	m.result = &r
	m.accepted = true
	if record := commands.RecordSelection(m.store, r); record != nil {
		return tea.Sequence(record, tea.Quit)
	}
	return tea.Quit
}

// emitHover publishes the hover preview for the calendar cursor.
func (m *Model) emitHover() {
	start, end := m.coord.Adapter().SelectedRange()
	hs, he := NextSelection(start, end, m.calendar.Cursor(), m.coord.Options().AllowSingleDay)
	m.coord.Adapter().Hover(hs, he)
}

// previewRange returns the range the calendar should highlight: the
// hover candidate while a preview is active, the committed range
// otherwise.
func (m Model) previewRange() (*time.Time, *time.Time) {
	st := m.coord.State()
	start, end := m.coord.Adapter().SelectedRange()
	hovering := st.Fields[rangeinput.Start].HoverText != nil ||
		st.Fields[rangeinput.End].HoverText != nil
	if hovering {
		return NextSelection(start, end, m.calendar.Cursor(), m.coord.Options().AllowSingleDay)
	}
	return start, end
}
