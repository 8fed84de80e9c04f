// Package dateutil provides civil-date parsing, formatting, and
// comparison utilities. All dates are day-granular: time-of-day is
// truncated on entry and ignored by every comparison.
package dateutil

import (
	"errors"
	"strings"
	"time"
)

// Validation errors.
var (
	ErrInvalidDateFormat  = errors.New("date does not match the configured format")
	ErrEndDateBeforeStart = errors.New("end date must be on or after start date")
)

// DefaultFormat is the format used when none is configured.
const DefaultFormat = "YYYY-MM-DD"

// layoutReplacer translates user-facing format tokens into Go
// reference-time layouts. Unknown text passes through verbatim.
var layoutReplacer = strings.NewReplacer(
	"YYYY", "2006",
	"YY", "06",
	"MM", "01",
	"DD", "02",
)

// Layout converts a YYYY/MM/DD-style format string into a Go layout.
func Layout(format string) string {
	if format == "" {
		format = DefaultFormat
	}
	return layoutReplacer.Replace(format)
}

// DateValue is a calendar date, the absence of one, or text that failed
// to parse as one. A zero Date with Valid=true means "unset", which is
// distinct from invalid text: an unset field has no opinion, an invalid
// field remembers what was typed.
type DateValue struct {
	Date  time.Time
	Valid bool
	Raw   string
}

// Unset returns the "no date chosen" value.
func Unset() DateValue {
	return DateValue{Valid: true}
}

// Invalid returns a value carrying text that failed to parse.
func Invalid(raw string) DateValue {
	return DateValue{Valid: false, Raw: raw}
}

// Of wraps a concrete date, truncated to midnight.
func Of(t time.Time) DateValue {
	return DateValue{Date: Truncate(t), Valid: true}
}

// IsSet reports whether the value holds a concrete date.
func (v DateValue) IsSet() bool {
	return v.Valid && !v.Date.IsZero()
}

// IsUnset reports whether the value is the "no date chosen" sentinel.
func (v DateValue) IsUnset() bool {
	return v.Valid && v.Date.IsZero()
}

// Format renders the value under the given format string. Unset and
// invalid values render as the empty string.
func (v DateValue) Format(format string) string {
	if !v.IsSet() {
		return ""
	}
	return v.Date.Format(Layout(format))
}

// Equal reports whether two values represent the same date, absence,
// or the same rejected text.
func (v DateValue) Equal(other DateValue) bool {
	if v.Valid != other.Valid {
		return false
	}
	if !v.Valid {
		return v.Raw == other.Raw
	}
	if v.Date.IsZero() || other.Date.IsZero() {
		return v.Date.IsZero() == other.Date.IsZero()
	}
	return SameDay(v.Date, other.Date)
}

// Parse interprets text under the given format. It never fails: empty
// text yields Unset and unparseable text yields Invalid carrying the
// raw input.
func Parse(text, format string) DateValue {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return Unset()
	}
	t, err := time.Parse(Layout(format), trimmed)
	if err != nil {
		return Invalid(text)
	}
	return DateValue{Date: Truncate(t), Valid: true, Raw: text}
}

// Truncate returns t with time-of-day set to midnight.
func Truncate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// SameDay reports whether a and b fall on the same calendar day.
func SameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}

// Before reports whether a falls on an earlier calendar day than b.
// The comparison is by date components, so values carrying different
// locations compare by what their wall clocks show, not by instant.
func Before(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	switch {
	case ay != by:
		return ay < by
	case am != bm:
		return am < bm
	}
	return ad < bd
}

// WithinBounds reports whether t falls inside [min, max], inclusive on
// both ends. A zero bound means unbounded on that side.
func WithinBounds(t, min, max time.Time) bool {
	if !min.IsZero() && Before(t, min) {
		return false
	}
	if !max.IsZero() && Before(max, t) {
		return false
	}
	return true
}

// Ordered reports whether start and end form a valid range. Equal days
// are permitted only when allowEqual is set. Either side may be zero,
// meaning that boundary is not yet chosen, which never violates order.
func Ordered(start, end time.Time, allowEqual bool) bool {
	if start.IsZero() || end.IsZero() {
		return true
	}
	if SameDay(start, end) {
		return allowEqual
	}
	return Before(start, end)
}
