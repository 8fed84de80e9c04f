package dateutil

import (
	"fmt"
	"time"
)

// DateRange is a validated pair of calendar days.
type DateRange struct {
	Start time.Time
	End   time.Time
}

// NewDateRange builds a DateRange, rejecting end-before-start.
func NewDateRange(start, end time.Time) (DateRange, error) {
	if Before(end, start) {
		return DateRange{}, ErrEndDateBeforeStart
	}
	return DateRange{Start: Truncate(start), End: Truncate(end)}, nil
}

// Contains reports whether t falls inside the range, boundary days
// included.
func (r DateRange) Contains(t time.Time) bool {
	return !Before(t, r.Start) && !Before(r.End, t)
}

// ContainsExclusive reports whether t falls strictly between the
// boundary days. A single-day range contains nothing under exclusive
// containment.
func (r DateRange) ContainsExclusive(t time.Time) bool {
	return Before(r.Start, t) && Before(t, r.End)
}

// Overlaps reports whether the two ranges share at least one day.
func (r DateRange) Overlaps(other DateRange) bool {
	return !Before(other.End, r.Start) && !Before(r.End, other.Start)
}

// Days returns the number of days the range spans, inclusive. The
// count is by calendar day, so a DST transition inside the range does
// not shorten it.
func (r DateRange) Days() int {
	start := utcMidnight(r.Start)
	end := utcMidnight(r.End)
	return int(end.Sub(start).Hours()/24) + 1
}

// Midpoint returns the middle day of the range, rounding toward the
// start on even spans.
func (r DateRange) Midpoint() time.Time {
	return r.Start.AddDate(0, 0, (r.Days()-1)/2)
}

// utcMidnight projects t's calendar day onto UTC, where every day is
// exactly 24 hours long.
func utcMidnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// String renders the range in the default format.
func (r DateRange) String() string {
	layout := Layout(DefaultFormat)
	return fmt.Sprintf("%s to %s", r.Start.Format(layout), r.End.Format(layout))
}
