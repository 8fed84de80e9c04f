package rangeinput

import "github.com/tomaslara/rangepick/internal/dateutil"

// FieldState is the per-boundary slice of the range state. Committed
// holds the authoritative value; LiveText is non-nil only while the
// field is focused and the user has typed something diverging from the
// committed string; HoverText is non-nil only while the calendar
// previews a hovered range.
type FieldState struct {
	Committed dateutil.DateValue
	LiveText  *string
	Focused   bool
	HoverText *string
}

// committedText returns the string the committed value displays as
// inside a focused field: the formatted date, the raw rejected text,
// or empty for unset.
func (f FieldState) committedText(format string) string {
	if !f.Committed.Valid {
		return f.Committed.Raw
	}
	return f.Committed.Format(format)
}

// typed reports whether the field holds uncommitted typed text.
func (f FieldState) typed() bool {
	return f.LiveText != nil
}

// clearTransient drops typed and hover text, leaving only the
// committed value.
func (f *FieldState) clearTransient() {
	f.LiveText = nil
	f.HoverText = nil
}
