package tui

import (
	"time"

	"github.com/tomaslara/rangepick/internal/dateutil"
)

// Calendar is the day-grid state for the overlay: the visible month
// and the cursor, which doubles as the hover position. Selection state
// lives in the coordinator; the calendar only derives candidates.
type Calendar struct {
	month  time.Time // first day of the visible month
	cursor time.Time
	min    time.Time
	max    time.Time
}

// NewCalendar creates a calendar showing the month around seed, or
// today when seed is zero.
func NewCalendar(seed, min, max time.Time) Calendar {
	if seed.IsZero() {
		seed = time.Now()
	}
	seed = dateutil.Truncate(seed)
	return Calendar{
		month:  monthStart(seed),
		cursor: seed,
		min:    dateutil.Truncate(min),
		max:    dateutil.Truncate(max),
	}
}

// Cursor returns the hovered day.
func (c Calendar) Cursor() time.Time {
	return c.cursor
}

// Month returns the first day of the visible month.
func (c Calendar) Month() time.Time {
	return c.month
}

// MoveCursor shifts the cursor by days, following it across month
// edges and clamping to the configured bounds.
func (c *Calendar) MoveCursor(days int) {
	target := c.cursor.AddDate(0, 0, days)
	c.cursor = c.clamp(target)
	c.month = monthStart(c.cursor)
}

// ShiftMonth moves the visible month by delta months, dragging the
// cursor along to the same day-of-month when possible.
func (c *Calendar) ShiftMonth(delta int) {
	first := c.month.AddDate(0, delta, 0)
	day := c.cursor.Day()
	if last := first.AddDate(0, 1, -1).Day(); day > last {
		day = last
	}
	target := time.Date(first.Year(), first.Month(), day, 0, 0, 0, 0, first.Location())
	c.cursor = c.clamp(target)
	c.month = monthStart(c.cursor)
}

// clamp confines target to the configured bounds, comparing by
// calendar day so the cursor's location never shifts the cut-off.
func (c Calendar) clamp(target time.Time) time.Time {
	if !c.min.IsZero() && dateutil.Before(target, c.min) {
		return c.min
	}
	if !c.max.IsZero() && dateutil.Before(c.max, target) {
		return c.max
	}
	return target
}

// SetCursor jumps the cursor to day, shifting the month to show it.
func (c *Calendar) SetCursor(day time.Time) {
	c.cursor = dateutil.Truncate(day)
	c.month = monthStart(c.cursor)
}

// Selectable reports whether the hovered day is within bounds.
func (c Calendar) Selectable() bool {
	return dateutil.WithinBounds(c.cursor, c.min, c.max)
}

// Weeks returns the visible month as rows of seven days, padded with
// zero times outside the month. Weeks start on Monday.
func (c Calendar) Weeks() [][7]time.Time {
	first := c.month
	last := first.AddDate(0, 1, -1)

	offset := int(first.Weekday()+6) % 7 // Monday-based column index
	var weeks [][7]time.Time
	var row [7]time.Time
	col := offset

	for day := first; !day.After(last); day = day.AddDate(0, 0, 1) {
		row[col] = day
		col++
		if col == 7 {
			weeks = append(weeks, row)
			row = [7]time.Time{}
			col = 0
		}
	}
	if col > 0 {
		weeks = append(weeks, row)
	}
	return weeks
}

// NextSelection derives the selection a confirm on day would produce
// from the current committed (start, end):
//
//   - nothing chosen: day becomes the start
//   - only start chosen: the pair is ordered around day; confirming
//     the start day itself either closes a single-day range or
//     restarts, depending on allowSingleDay
//   - both chosen: restart from day
func NextSelection(start, end *time.Time, day time.Time, allowSingleDay bool) (*time.Time, *time.Time) {
	day = dateutil.Truncate(day)

	switch {
	case start == nil:
		return &day, nil
	case end == nil:
		if dateutil.SameDay(*start, day) {
			if allowSingleDay {
				return start, &day
			}
			return &day, nil
		}
		if dateutil.Before(day, *start) {
			s := *start
			return &day, &s
		}
		return start, &day
	}
	return &day, nil
}

func monthStart(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}
