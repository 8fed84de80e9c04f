package rangeinput

import (
	"time"

	"github.com/tomaslara/rangepick/internal/dateutil"
)

// Default user-facing messages for fields whose committed value cannot
// be shown as a date.
const (
	DefaultInvalidMessage     = "Invalid date"
	DefaultOutOfRangeMessage  = "Out of range"
	DefaultOverlappingMessage = "Overlapping dates"
)

// Placeholder text for the two roles.
const (
	placeholderStart          = "Start date"
	placeholderEnd            = "End date"
	placeholderUnboundedStart = "All before"
	placeholderUnboundedEnd   = "All after"
)

// Options configures a Coordinator. The zero value is usable: default
// format, unbounded dates, uncontrolled, no callbacks.
type Options struct {
	// Format is the parse/print format in YYYY/MM/DD tokens.
	Format string

	// MinDate and MaxDate bound valid dates, inclusive. A zero value
	// leaves that side unbounded.
	MinDate time.Time
	MaxDate time.Time

	// AllowSingleDay permits start and end on the same calendar day.
	AllowSingleDay bool

	// AllowUnbounded changes the empty-field placeholders to describe
	// half-open ranges ("All before" / "All after").
	AllowUnbounded bool

	// CloseOnSelection closes the overlay once both ends are chosen.
	CloseOnSelection bool

	// OpenOnFocus opens the overlay whenever a field gains focus.
	OpenOnFocus bool

	// SelectAllOnFocus asks the renderer to select the field's text on
	// focus.
	SelectAllOnFocus bool

	// Disabled makes every event a no-op.
	Disabled bool

	// Controlled suppresses local commits; the host re-supplies the
	// authoritative value through SetValue after each OnChange.
	Controlled bool

	// Shortcuts enables relative-date entry ("today", "+3d", weekday
	// names) in the text fields, resolved against Now before parsing.
	Shortcuts bool

	// InvalidMessage, OutOfRangeMessage and OverlappingMessage replace
	// the default display strings for the three error kinds.
	InvalidMessage     string
	OutOfRangeMessage  string
	OverlappingMessage string

	// OnChange is called after a committed, in-range, correctly
	// ordered change. Either value may be unset.
	OnChange func(start, end dateutil.DateValue)

	// OnError is called when typed input is rejected, with the invalid
	// value carrying the raw text.
	OnError func(invalid dateutil.DateValue)

	// Now supplies the reference time for shortcuts. Defaults to
	// time.Now.
	Now func() time.Time
}

func (o Options) withDefaults() Options {
	if o.Format == "" {
		o.Format = dateutil.DefaultFormat
	}
	if o.InvalidMessage == "" {
		o.InvalidMessage = DefaultInvalidMessage
	}
	if o.OutOfRangeMessage == "" {
		o.OutOfRangeMessage = DefaultOutOfRangeMessage
	}
	if o.OverlappingMessage == "" {
		o.OverlappingMessage = DefaultOverlappingMessage
	}
	if o.Now == nil {
		o.Now = time.Now
	}
	return o
}

// placeholder returns the role placeholder for b when both fields are
// empty, or the format string otherwise.
func (o Options) placeholder(b Boundary, bothUnset bool) string {
	if !bothUnset {
		return o.Format
	}
	if o.AllowUnbounded {
		if b == Start {
			return placeholderUnboundedStart
		}
		return placeholderUnboundedEnd
	}
	if b == Start {
		return placeholderStart
	}
	return placeholderEnd
}
