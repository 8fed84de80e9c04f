package tui

import (
	"testing"
	"time"

	"github.com/tomaslara/rangepick/internal/dateutil"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestCalendarWeeks(t *testing.T) {
	// March 2020 starts on a Sunday and has 31 days.
	c := NewCalendar(day(2020, 3, 15), time.Time{}, time.Time{})

	weeks := c.Weeks()
	if len(weeks) != 6 {
		t.Fatalf("got %d weeks, want 6", len(weeks))
	}

	// Sunday is the last column in a Monday-based grid.
	if !dateutil.SameDay(weeks[0][6], day(2020, 3, 1)) {
		t.Errorf("first week Sunday = %v, want 2020-03-01", weeks[0][6])
	}
	for col := 0; col < 6; col++ {
		if !weeks[0][col].IsZero() {
			t.Errorf("column %d of the first week should be padding", col)
		}
	}
	if !dateutil.SameDay(weeks[5][1], day(2020, 3, 31)) {
		t.Errorf("last day = %v, want 2020-03-31 on Tuesday", weeks[5][1])
	}
}

func TestCalendarMoveCursor(t *testing.T) {
	t.Run("follows across month edges", func(t *testing.T) {
		c := NewCalendar(day(2020, 3, 31), time.Time{}, time.Time{})
		c.MoveCursor(1)
		if !dateutil.SameDay(c.Cursor(), day(2020, 4, 1)) {
			t.Errorf("cursor = %v, want 2020-04-01", c.Cursor())
		}
		if c.Month().Month() != time.April {
			t.Errorf("month = %v, want April", c.Month())
		}
	})

	t.Run("clamps to bounds", func(t *testing.T) {
		c := NewCalendar(day(2020, 3, 2), day(2020, 3, 1), day(2020, 3, 31))
		c.MoveCursor(-7)
		if !dateutil.SameDay(c.Cursor(), day(2020, 3, 1)) {
			t.Errorf("cursor = %v, want clamped to 2020-03-01", c.Cursor())
		}
		c.MoveCursor(60)
		if !dateutil.SameDay(c.Cursor(), day(2020, 3, 31)) {
			t.Errorf("cursor = %v, want clamped to 2020-03-31", c.Cursor())
		}
	})
}

func TestCalendarBoundsAcrossZones(t *testing.T) {
	// Config bounds parse as UTC while the cursor lives in the local
	// zone; the bound days themselves must stay reachable.
	west := time.FixedZone("west", -8*3600)
	min := day(2020, 1, 1)
	max := day(2020, 12, 31)

	c := NewCalendar(time.Date(2020, 12, 30, 0, 0, 0, 0, west), min, max)
	c.MoveCursor(1)

	if !dateutil.SameDay(c.Cursor(), day(2020, 12, 31)) {
		t.Fatalf("cursor = %v, want 2020-12-31", c.Cursor())
	}
	if !c.Selectable() {
		t.Error("the max day itself should be selectable")
	}

	c.MoveCursor(1)
	if !dateutil.SameDay(c.Cursor(), day(2020, 12, 31)) {
		t.Errorf("cursor = %v, want clamped to the max day", c.Cursor())
	}
}

func TestCalendarShiftMonth(t *testing.T) {
	c := NewCalendar(day(2020, 1, 31), time.Time{}, time.Time{})
	c.ShiftMonth(1)
	// February 2020 has 29 days; the cursor snaps to the last one.
	if !dateutil.SameDay(c.Cursor(), day(2020, 2, 29)) {
		t.Errorf("cursor = %v, want 2020-02-29", c.Cursor())
	}
}

func TestNextSelection(t *testing.T) {
	d1 := day(2020, 3, 1)
	d5 := day(2020, 3, 5)

	t.Run("first pick becomes the start", func(t *testing.T) {
		s, e := NextSelection(nil, nil, d5, false)
		if s == nil || !dateutil.SameDay(*s, d5) || e != nil {
			t.Errorf("got (%v, %v), want (2020-03-05, nil)", s, e)
		}
	})

	t.Run("later day completes the range", func(t *testing.T) {
		s, e := NextSelection(&d1, nil, d5, false)
		if s == nil || e == nil || !dateutil.SameDay(*s, d1) || !dateutil.SameDay(*e, d5) {
			t.Errorf("got (%v, %v), want (2020-03-01, 2020-03-05)", s, e)
		}
	})

	t.Run("earlier day reorders around it", func(t *testing.T) {
		s, e := NextSelection(&d5, nil, d1, false)
		if s == nil || e == nil || !dateutil.SameDay(*s, d1) || !dateutil.SameDay(*e, d5) {
			t.Errorf("got (%v, %v), want (2020-03-01, 2020-03-05)", s, e)
		}
	})

	t.Run("same day closes a single-day range when allowed", func(t *testing.T) {
		s, e := NextSelection(&d1, nil, d1, true)
		if s == nil || e == nil || !dateutil.SameDay(*s, *e) {
			t.Errorf("got (%v, %v), want a single-day range", s, e)
		}
	})

	t.Run("same day restarts when disallowed", func(t *testing.T) {
		s, e := NextSelection(&d1, nil, d1, false)
		if s == nil || e != nil {
			t.Errorf("got (%v, %v), want (2020-03-01, nil)", s, e)
		}
	})

	t.Run("complete range restarts from the new day", func(t *testing.T) {
		s, e := NextSelection(&d1, &d5, day(2020, 3, 10), false)
		if s == nil || !dateutil.SameDay(*s, day(2020, 3, 10)) || e != nil {
			t.Errorf("got (%v, %v), want (2020-03-10, nil)", s, e)
		}
	})
}

func TestCompositeOverlay(t *testing.T) {
	base := "aaaa\nbbbb\ncccc"
	got := compositeOverlay(base, "XX", 1, 1, 4, 3)

	want := "aaaa\nbXXb\ncccc"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestNormalizeLines(t *testing.T) {
	lines := normalizeLines("ab", 4, 2)
	if len(lines) != 2 {
		t.Fatalf("got %d lines, want 2", len(lines))
	}
	if lines[0] != "ab  " || lines[1] != "    " {
		t.Errorf("got %q", lines)
	}
}
