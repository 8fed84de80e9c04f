// Package rangeinput implements the state machine behind a two-field
// date range input: two independently editable text fields, a shared
// calendar overlay, and a hover preview, reconciled into one
// authoritative (start, end) value.
//
// The Coordinator is the sole owner and mutator of the range state.
// Every public method runs synchronously to completion; callbacks fire
// after the mutation has been fully applied, so a callback that feeds
// another event back in observes a consistent state rather than a
// partial one. All methods must be called from a single goroutine.
package rangeinput

import (
	"time"

	"github.com/tomaslara/rangepick/internal/dateutil"
)

// RangeState is the full mutable state of the control. At most one
// field is focused at any time; the Coordinator enforces this, never
// the renderer.
type RangeState struct {
	Fields          [2]FieldState
	OverlayOpen     bool
	EditingBoundary *Boundary
	FocusFromHover  bool
	LastFocused     *Boundary
}

// Coordinator mediates typing, focus, hover previews, and calendar
// selections over a single RangeState.
type Coordinator struct {
	opts  Options
	state RangeState
}

// New creates a Coordinator with both boundaries unset. Use Seed or
// SetValue to install an initial range.
func New(opts Options) *Coordinator {
	c := &Coordinator{opts: opts.withDefaults()}
	c.state.Fields[Start].Committed = dateutil.Unset()
	c.state.Fields[End].Committed = dateutil.Unset()
	return c
}

// Seed installs an initial (start, end) value without firing callbacks.
// A zero time leaves that boundary unset.
func (c *Coordinator) Seed(start, end time.Time) {
	c.state.Fields[Start].Committed = valueOf(start)
	c.state.Fields[End].Committed = valueOf(end)
}

// State returns a snapshot of the current range state.
func (c *Coordinator) State() RangeState {
	return c.state
}

// Options returns the active options.
func (c *Coordinator) Options() Options {
	return c.opts
}

// SetDisabled toggles the disabled flag at runtime.
func (c *Coordinator) SetDisabled(disabled bool) {
	c.opts.Disabled = disabled
}

// Focus moves keyboard focus to boundary b. Any pending typed text in
// the other field is committed first, exactly as if it had blurred.
func (c *Coordinator) Focus(b Boundary) {
	if c.opts.Disabled {
		return
	}
	c.focusBoundary(b, false)
}

// Blur removes focus from boundary b and applies the commit policy to
// any typed text.
func (c *Coordinator) Blur(b Boundary) {
	if c.opts.Disabled {
		return
	}
	f := &c.state.Fields[b]
	if !f.Focused {
		return
	}
	c.clearHover()
	f.Focused = false
	if c.state.EditingBoundary != nil && *c.state.EditingBoundary == b {
		c.state.EditingBoundary = nil
	}
	c.commitTyped(b)
}

// Type records a keystroke's resulting text for boundary b. Typing
// into an unfocused field focuses it first. The text is not committed
// until blur.
func (c *Coordinator) Type(b Boundary, text string) {
	if c.opts.Disabled {
		return
	}
	if !c.state.Fields[b].Focused {
		c.focusBoundary(b, false)
	}
	c.clearHover()
	t := text
	c.state.Fields[b].LiveText = &t
}

// KeyTab marks an imminent keyboard focus handoff: Tab out of the
// start field or Shift+Tab out of the end field. It clears the
// hover-driven focus marker so the following focus event is attributed
// to deliberate navigation.
func (c *Coordinator) KeyTab(shift bool) {
	if c.opts.Disabled {
		return
	}
	if (!shift && c.state.Fields[Start].Focused) || (shift && c.state.Fields[End].Focused) {
		c.state.FocusFromHover = false
	}
}

// IconClick toggles the overlay. Opening focuses the most recently
// focused boundary, defaulting to start.
func (c *Coordinator) IconClick() {
	if c.opts.Disabled {
		return
	}
	if c.state.OverlayOpen {
		c.state.OverlayOpen = false
		return
	}
	c.state.OverlayOpen = true
	target := Start
	if c.state.LastFocused != nil {
		target = *c.state.LastFocused
	}
	c.focusBoundary(target, false)
}

// SetOverlayOpen forces the overlay open or closed.
func (c *Coordinator) SetOverlayOpen(open bool) {
	c.state.OverlayOpen = open
}

// SetValue installs a host-supplied (start, end) value. This is the
// only commit path in controlled mode. Transient typed and hover text
// is dropped; no callbacks fire.
func (c *Coordinator) SetValue(start, end *time.Time) {
	c.state.Fields[Start].Committed = valueOfPtr(start)
	c.state.Fields[End].Committed = valueOfPtr(end)
	c.state.Fields[Start].clearTransient()
	c.state.Fields[End].clearTransient()
}

// HoverRange applies a calendar hover preview. A nil start and end
// clears the preview. When exactly one boundary holds a committed date
// and the other is unset, focus shifts toward the boundary that
// logically continues the selection; the shift is marked hover-driven.
func (c *Coordinator) HoverRange(start, end *time.Time) {
	if c.opts.Disabled {
		return
	}
	if start == nil && end == nil {
		c.HoverClear()
		return
	}

	if set, unset, ok := c.singleSetBoundary(); ok {
		hovered := start
		if set == End {
			hovered = end
		}
		committed := c.state.Fields[set].Committed.Date
		if hovered != nil && dateutil.SameDay(*hovered, committed) {
			// The set boundary survives in the preview; the user is
			// choosing the second endpoint.
			c.focusBoundary(unset, true)
		} else {
			c.focusBoundary(set, true)
		}
	}

	c.state.Fields[Start].HoverText = previewText(start, c.opts.Format)
	c.state.Fields[End].HoverText = previewText(end, c.opts.Format)
}

// HoverClear removes the hover preview, restoring pre-hover display.
func (c *Coordinator) HoverClear() {
	c.clearHover()
}

// SelectRange applies a confirmed calendar selection to both fields
// and chooses the next focus target. Either endpoint may be nil for
// "not chosen yet".
func (c *Coordinator) SelectRange(start, end *time.Time) {
	if c.opts.Disabled {
		return
	}
	startVal := valueOfPtr(start)
	endVal := valueOfPtr(end)

	prevStart := c.state.Fields[Start].Committed
	prevEnd := c.state.Fields[End].Committed

	if !c.opts.Controlled {
		c.state.Fields[Start].Committed = startVal
		c.state.Fields[End].Committed = endVal
	}
	c.state.Fields[Start].clearTransient()
	c.state.Fields[End].clearTransient()

	changed := !startVal.Equal(prevStart) || !endVal.Equal(prevEnd)
	if changed {
		c.notifyCommitted(startVal, endVal)
	}

	switch {
	case startVal.IsUnset():
		c.focusBoundary(Start, false)
	case endVal.IsUnset():
		c.focusBoundary(End, false)
	default:
		if c.opts.CloseOnSelection {
			c.state.OverlayOpen = false
		} else if c.state.LastFocused != nil {
			c.focusBoundary(*c.state.LastFocused, false)
		}
	}
}

// focusBoundary gives b the focus, committing the other field's typed
// text first. fromHover marks hover-driven shifts so later keyboard
// focus events are not misread as hover artifacts; keyboard-driven
// focus clears any active preview.
func (c *Coordinator) focusBoundary(b Boundary, fromHover bool) {
	other := b.Other()
	if c.state.Fields[other].Focused {
		c.state.Fields[other].Focused = false
		c.commitTyped(other)
	}
	if !fromHover {
		c.clearHover()
	}
	c.state.Fields[b].Focused = true
	c.state.LastFocused = boundaryPtr(b)
	c.state.EditingBoundary = boundaryPtr(b)
	c.state.FocusFromHover = fromHover
	if c.opts.OpenOnFocus {
		c.state.OverlayOpen = true
	}
}

// commitTyped applies the blur commit policy to b's live text, if any.
func (c *Coordinator) commitTyped(b Boundary) {
	f := &c.state.Fields[b]
	if !f.typed() {
		return
	}
	text := *f.LiveText
	f.LiveText = nil

	if text == f.committedText(c.opts.Format) {
		// Unchanged from what was displayed; nothing to commit.
		return
	}

	parsed := c.parseText(text)
	switch {
	case parsed.IsUnset():
		c.commitField(b, parsed)

	case parsed.IsSet() && dateutil.WithinBounds(parsed.Date, c.opts.MinDate, c.opts.MaxDate):
		c.commitField(b, parsed)

	default:
		// Invalid or out of range: commit anyway when uncontrolled so
		// the rejection stays visible, and report the error either way.
		if !c.opts.Controlled {
			f.Committed = parsed
		}
		c.notifyError(parsed)
	}
}

// commitField installs a valid-or-unset value for b and fires OnChange
// or OnError depending on the resulting ordering. An end equal to the
// start is never an OrderError; it only withholds OnChange when single
// day ranges are disallowed.
func (c *Coordinator) commitField(b Boundary, v dateutil.DateValue) {
	prev := c.state.Fields[b].Committed
	if !c.opts.Controlled {
		c.state.Fields[b].Committed = v
	}
	if v.Equal(prev) {
		return
	}

	start, end := v, c.state.Fields[b.Other()].Committed
	if b == End {
		start, end = end, start
	}
	if strictlyMisordered(start, end) {
		c.notifyError(v)
		return
	}
	c.notifyCommitted(start, end)
}

// notifyCommitted fires OnChange when both values are presentable:
// valid, within bounds, and ordered.
func (c *Coordinator) notifyCommitted(start, end dateutil.DateValue) {
	if c.opts.OnChange == nil {
		return
	}
	for _, v := range []dateutil.DateValue{start, end} {
		if !v.Valid {
			return
		}
		if v.IsSet() && !dateutil.WithinBounds(v.Date, c.opts.MinDate, c.opts.MaxDate) {
			return
		}
	}
	if !rangeOrdered(start, end, c.opts.AllowSingleDay) {
		return
	}
	c.opts.OnChange(start, end)
}

func (c *Coordinator) notifyError(invalid dateutil.DateValue) {
	if c.opts.OnError != nil {
		c.opts.OnError(invalid)
	}
}

// parseText interprets typed text, expanding relative shortcuts first
// when enabled.
func (c *Coordinator) parseText(text string) dateutil.DateValue {
	if c.opts.Shortcuts {
		if t, ok := dateutil.ExpandShortcut(text, c.opts.Now()); ok {
			return dateutil.Of(t)
		}
	}
	return dateutil.Parse(text, c.opts.Format)
}

// singleSetBoundary reports the boundary holding a committed date when
// exactly one does and the other is unset.
func (c *Coordinator) singleSetBoundary() (set, unset Boundary, ok bool) {
	startSet := c.state.Fields[Start].Committed.IsSet()
	endSet := c.state.Fields[End].Committed.IsSet()
	switch {
	case startSet && !endSet && c.state.Fields[End].Committed.IsUnset():
		return Start, End, true
	case endSet && !startSet && c.state.Fields[Start].Committed.IsUnset():
		return End, Start, true
	}
	return 0, 0, false
}

func (c *Coordinator) clearHover() {
	c.state.Fields[Start].HoverText = nil
	c.state.Fields[End].HoverText = nil
}

// rangeOrdered is the ordering rule over committed values: a violation
// needs both ends set, and equal days follow allowEqual.
func rangeOrdered(start, end dateutil.DateValue, allowEqual bool) bool {
	if !start.IsSet() || !end.IsSet() {
		return true
	}
	return dateutil.Ordered(start.Date, end.Date, allowEqual)
}

// strictlyMisordered reports an end on a distinct day before the
// start, the only ordering violation classified as an error.
func strictlyMisordered(start, end dateutil.DateValue) bool {
	if !start.IsSet() || !end.IsSet() {
		return false
	}
	return !dateutil.SameDay(start.Date, end.Date) && dateutil.Before(end.Date, start.Date)
}

func valueOf(t time.Time) dateutil.DateValue {
	if t.IsZero() {
		return dateutil.Unset()
	}
	return dateutil.Of(t)
}

func valueOfPtr(t *time.Time) dateutil.DateValue {
	if t == nil {
		return dateutil.Unset()
	}
	return valueOf(*t)
}

func previewText(t *time.Time, format string) *string {
	s := ""
	if t != nil {
		s = dateutil.Of(*t).Format(format)
	}
	return &s
}

func boundaryPtr(b Boundary) *Boundary {
	return &b
}
