package rangeinput

import "github.com/tomaslara/rangepick/internal/dateutil"

// FieldDisplay is everything the renderer needs for one text field.
type FieldDisplay struct {
	Text        string
	Placeholder string
	Error       bool
	Disabled    bool
	SelectText  bool
}

// DisplayState is an immutable per-event snapshot handed to the
// renderer. FocusTarget names the field that should hold input focus;
// the renderer moves focus, it never decides it.
type DisplayState struct {
	Fields      [2]FieldDisplay
	OverlayOpen bool
	FocusTarget *Boundary
}

// Resolve derives the display state from the current range state and
// options. It is a pure function of both and safe to call after every
// mutation.
func (c *Coordinator) Resolve() DisplayState {
	var ds DisplayState
	bothUnset := c.state.Fields[Start].Committed.IsUnset() &&
		c.state.Fields[End].Committed.IsUnset()

	for _, b := range []Boundary{Start, End} {
		f := c.state.Fields[b]
		ds.Fields[b] = FieldDisplay{
			Text:        c.fieldText(b, f),
			Placeholder: c.opts.placeholder(b, bothUnset),
			Disabled:    c.opts.Disabled,
			SelectText:  c.opts.SelectAllOnFocus && f.Focused,
		}
		if f.Focused {
			ds.FocusTarget = boundaryPtr(b)
		}
	}

	ds.Fields[Start].Error = c.fieldError(Start, ds.Fields[Start].Text)
	ds.Fields[End].Error = c.fieldError(End, ds.Fields[End].Text)
	ds.OverlayOpen = c.state.OverlayOpen
	return ds
}

// fieldText resolves a field's display string. Resolution order, each
// step short-circuiting: hover preview, live typed text, committed
// value. A committed value that cannot be shown as a date renders as
// the matching message string; a misordered end renders the
// overlapping message rather than silently swapping the values.
func (c *Coordinator) fieldText(b Boundary, f FieldState) string {
	if f.HoverText != nil {
		return *f.HoverText
	}
	if f.Focused {
		if f.LiveText != nil {
			return *f.LiveText
		}
		return f.committedText(c.opts.Format)
	}

	v := f.Committed
	switch {
	case !v.Valid:
		return c.opts.InvalidMessage
	case v.IsUnset():
		return ""
	case !dateutil.WithinBounds(v.Date, c.opts.MinDate, c.opts.MaxDate):
		return c.opts.OutOfRangeMessage
	case b == End && strictlyMisordered(c.state.Fields[Start].Committed, v):
		return c.opts.OverlappingMessage
	}
	return v.Format(c.opts.Format)
}

// fieldError classifies a field for visual flagging. The displayed
// string is judged, not the committed value: a field is in error when
// its text is neither empty nor a valid in-range date. Hover previews
// are exempt, but an end strictly before the start on distinct days is
// an error even while hovering; an end equal to the start never is.
func (c *Coordinator) fieldError(b Boundary, text string) bool {
	if b == End {
		start := c.resolvedDate(Start)
		end := c.resolvedDate(End)
		if start.IsSet() && end.IsSet() &&
			!dateutil.SameDay(start.Date, end.Date) &&
			dateutil.Before(end.Date, start.Date) {
			return true
		}
	}

	if text == "" {
		return false
	}
	f := c.state.Fields[b]
	if f.HoverText != nil && text == *f.HoverText {
		return false
	}
	v := dateutil.Parse(text, c.opts.Format)
	if !v.IsSet() {
		return true
	}
	return !dateutil.WithinBounds(v.Date, c.opts.MinDate, c.opts.MaxDate)
}

// resolvedDate parses the string a field currently displays, falling
// back through hover, live, and committed layers like fieldText.
func (c *Coordinator) resolvedDate(b Boundary) dateutil.DateValue {
	f := c.state.Fields[b]
	switch {
	case f.HoverText != nil:
		return dateutil.Parse(*f.HoverText, c.opts.Format)
	case f.Focused && f.LiveText != nil:
		return dateutil.Parse(*f.LiveText, c.opts.Format)
	}
	return f.Committed
}
