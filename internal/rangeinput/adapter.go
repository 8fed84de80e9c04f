package rangeinput

import (
	"time"

	"github.com/tomaslara/rangepick/internal/dateutil"
)

// OverlaySelectionAdapter is the calendar collaborator's view of the
// coordinator: it exposes the resolved committed range and bounds, and
// forwards selection and hover events into the coordinator. It holds
// no state of its own.
type OverlaySelectionAdapter struct {
	c *Coordinator
}

// Adapter returns the calendar-facing view of the coordinator.
func (c *Coordinator) Adapter() OverlaySelectionAdapter {
	return OverlaySelectionAdapter{c: c}
}

// SelectedRange returns the committed (start, end) as the calendar
// should see it. Live typed text never leaks here, and an invalid or
// out-of-range commitment is presented as unset.
func (a OverlaySelectionAdapter) SelectedRange() (start, end *time.Time) {
	return a.presentable(Start), a.presentable(End)
}

// Bounds returns the calendar's date constraints.
func (a OverlaySelectionAdapter) Bounds() (min, max time.Time, allowSingleDay bool) {
	return a.c.opts.MinDate, a.c.opts.MaxDate, a.c.opts.AllowSingleDay
}

// EditingBoundary hints which boundary the user is editing, or nil.
func (a OverlaySelectionAdapter) EditingBoundary() *Boundary {
	return a.c.state.EditingBoundary
}

// Select forwards a confirmed calendar selection.
func (a OverlaySelectionAdapter) Select(start, end *time.Time) {
	a.c.SelectRange(start, end)
}

// Hover forwards a hover preview; nil for both endpoints clears it.
func (a OverlaySelectionAdapter) Hover(start, end *time.Time) {
	a.c.HoverRange(start, end)
}

// HoverClear removes the active preview.
func (a OverlaySelectionAdapter) HoverClear() {
	a.c.HoverClear()
}

func (a OverlaySelectionAdapter) presentable(b Boundary) *time.Time {
	v := a.c.state.Fields[b].Committed
	if !v.IsSet() {
		return nil
	}
	if !dateutil.WithinBounds(v.Date, a.c.opts.MinDate, a.c.opts.MaxDate) {
		return nil
	}
	t := v.Date
	return &t
}
