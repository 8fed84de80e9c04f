// Package commands provides TUI command constructors and message types.
package commands

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/tomaslara/rangepick/internal/dateutil"
	"github.com/tomaslara/rangepick/internal/db"
)

// ErrMsg is sent when an error occurs.
type ErrMsg struct {
	Err error
}

// StatusMsg is sent for temporary status messages.
type StatusMsg struct {
	Msg string
}

// ClearStatusMsg is sent to clear the status message.
type ClearStatusMsg struct{}

// SelectionSavedMsg is sent when a picked range was recorded.
type SelectionSavedMsg struct {
	ID int64
}

// RecordSelection stores a confirmed range in the history store.
func RecordSelection(store *db.Store, r dateutil.DateRange) tea.Cmd {
	if store == nil {
		return nil
	}
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		id, err := store.RecordSelection(ctx, r)
		if err != nil {
			return ErrMsg{Err: err}
		}
		return SelectionSavedMsg{ID: id}
	}
}

// ClearStatusAfter schedules a status clear.
func ClearStatusAfter(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return ClearStatusMsg{}
	})
}
