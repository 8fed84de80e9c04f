package tui

import (
	"fmt"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/tomaslara/rangepick/internal/rangeinput"
)

// handleKeyMsg handles keyboard input.
func (m Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	LogKeyPress(msg)

	// Global keys (work in all modes)
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit
	case "ctrl+y":
		return m.copyRange()
	case "tab":
		return m.cycleFocus(false)
	case "shift+tab":
		return m.cycleFocus(true)
	}

	if m.coord.State().OverlayOpen {
		return m.handleCalendarKeys(msg)
	}
	return m.handleFieldKeys(msg)
}

// handleFieldKeys handles keys while the calendar overlay is closed.
func (m Model) handleFieldKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		return m, tea.Quit

	case "enter":
		if b, ok := m.focusedBoundary(); ok {
			m.coord.Blur(b)
			m.afterEvent()
		}
		if r := m.committedRange(); r != nil {
			return m, m.accept(*r)
		}
		// Incomplete: move focus to the first unset boundary.
		st := m.coord.State()
		if st.Fields[rangeinput.Start].Committed.IsUnset() {
			m.coord.Focus(rangeinput.Start)
		} else {
			m.coord.Focus(rangeinput.End)
		}
		m.afterEvent()
		return m, nil

	case "ctrl+o":
		m.coord.IconClick()
		m.afterEvent()
		return m, nil
	}

	return m.typeIntoField(msg)
}

// handleCalendarKeys handles keys while the calendar overlay is open.
// Navigation drives the hover preview; printable keys still type into
// the focused field.
func (m Model) handleCalendarKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.coord.Adapter().HoverClear()
		m.coord.SetOverlayOpen(false)
		m.syncFields()
		return m, nil

	case "ctrl+o":
		m.coord.IconClick()
		m.afterEvent()
		return m, nil

	case "left", "ctrl+b":
		return m.moveCursor(-1)
	case "right", "ctrl+f":
		return m.moveCursor(1)
	case "up", "ctrl+p":
		return m.moveCursor(-7)
	case "down", "ctrl+n":
		return m.moveCursor(7)
	case "pgup", "[":
		return m.shiftMonth(-1)
	case "pgdown", "]":
		return m.shiftMonth(1)

	case "enter":
		return m.confirmDay()
	}

	return m.typeIntoField(msg)
}

// typeIntoField forwards a keystroke to the focused input and mirrors
// the resulting text into the coordinator. A pending select-all means
// the first edit replaces the whole content.
func (m Model) typeIntoField(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	b, ok := m.focusedBoundary()
	if !ok {
		return m, nil
	}

	if m.selectAll[b] {
		m.selectAll[b] = false
		if msg.Type == tea.KeyRunes || msg.Type == tea.KeyBackspace || msg.Type == tea.KeyDelete {
			m.inputs[b].SetValue("")
		}
	}

	var cmd tea.Cmd
	m.inputs[b], cmd = m.inputs[b].Update(msg)
	m.coord.Type(b, m.inputs[b].Value())
	m.afterEvent()
	return m, cmd
}

// cycleFocus hands focus to the other field via the coordinator,
// marking the handoff as deliberate keyboard navigation.
func (m Model) cycleFocus(shift bool) (tea.Model, tea.Cmd) {
	m.coord.KeyTab(shift)

	b, ok := m.focusedBoundary()
	if !ok {
		m.coord.Focus(rangeinput.Start)
	} else {
		m.coord.Focus(b.Other())
	}
	m.afterEvent()
	return m, nil
}

func (m Model) moveCursor(days int) (tea.Model, tea.Cmd) {
	m.calendar.MoveCursor(days)
	LogCursorMove(m.calendar.Cursor(), "move")
	m.emitHover()
	m.afterEvent()
	return m, nil
}

func (m Model) shiftMonth(delta int) (tea.Model, tea.Cmd) {
	m.calendar.ShiftMonth(delta)
	LogCursorMove(m.calendar.Cursor(), "month")
	m.emitHover()
	m.afterEvent()
	return m, nil
}

// confirmDay applies the calendar cursor as the next selection.
func (m Model) confirmDay() (tea.Model, tea.Cmd) {
	if !m.calendar.Selectable() {
		m.statusMsg = "Day is outside the allowed range."
		m.statusErr = true
		return m, nil
	}

	start, end := m.coord.Adapter().SelectedRange()
	ns, ne := NextSelection(start, end, m.calendar.Cursor(), m.coord.Options().AllowSingleDay)
	LogSelection(ns, ne)
	m.coord.Adapter().Select(ns, ne)
	m.afterEvent()
	return m, nil
}

// copyRange puts the committed range on the system clipboard.
func (m Model) copyRange() (tea.Model, tea.Cmd) {
	r := m.committedRange()
	if r == nil {
		m.statusMsg = "Nothing to copy yet."
		m.statusErr = true
		return m, nil
	}
	if err := clipboard.WriteAll(r.String()); err != nil {
		m.statusMsg = fmt.Sprintf("Copy failed: %v", err)
		m.statusErr = true
		return m, nil
	}
	m.statusMsg = "Copied to clipboard."
	m.statusErr = false
	return m, nil
}
