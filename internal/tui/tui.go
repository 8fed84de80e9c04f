package tui

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/tomaslara/rangepick/internal/config"
	"github.com/tomaslara/rangepick/internal/dateutil"
	"github.com/tomaslara/rangepick/internal/db"
)

// Run starts the picker TUI seeded with an optional initial range and
// blocks until the user accepts or quits. A nil result means the user
// quit without picking.
func Run(cfg *config.Config, store *db.Store, start, end time.Time) (*dateutil.DateRange, error) {
	return RunWithDebug(cfg, store, start, end, false)
}

// RunWithDebug is Run with optional keystroke/state logging to
// DebugLogPath.
func RunWithDebug(cfg *config.Config, store *db.Store, start, end time.Time, debug bool) (*dateutil.DateRange, error) {
	if err := InitDebugLogger(debug); err != nil {
		return nil, err
	}
	defer CloseDebugLogger()

	m := New(cfg, store)
	m.Seed(start, end)

	p := tea.NewProgram(m, tea.WithAltScreen())
	final, err := p.Run()
	if err != nil {
		return nil, fmt.Errorf("running picker: %w", err)
	}

	fm, ok := final.(Model)
	if !ok {
		return nil, fmt.Errorf("unexpected final model %T", final)
	}
	return fm.Result(), nil
}
