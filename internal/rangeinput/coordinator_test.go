package rangeinput

import (
	"testing"
	"time"

	"github.com/tomaslara/rangepick/internal/dateutil"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func dptr(t time.Time) *time.Time {
	return &t
}

// recorder captures callback invocations for assertions.
type recorder struct {
	changes [][2]dateutil.DateValue
	errors  []dateutil.DateValue
}

func (r *recorder) options(opts Options) Options {
	opts.OnChange = func(start, end dateutil.DateValue) {
		r.changes = append(r.changes, [2]dateutil.DateValue{start, end})
	}
	opts.OnError = func(invalid dateutil.DateValue) {
		r.errors = append(r.errors, invalid)
	}
	return opts
}

func boundedOptions() Options {
	return Options{
		Format:  "YYYY-MM-DD",
		MinDate: date(2020, 1, 1),
		MaxDate: date(2020, 12, 31),
	}
}

func typeAndBlur(c *Coordinator, b Boundary, text string) {
	c.Focus(b)
	c.Type(b, text)
	c.Blur(b)
}

func TestTypedCommit(t *testing.T) {
	t.Run("valid in-range date commits on blur", func(t *testing.T) {
		rec := &recorder{}
		c := New(rec.options(boundedOptions()))

		typeAndBlur(c, Start, "2020-02-10")

		got := c.State().Fields[Start].Committed
		if !got.IsSet() || !dateutil.SameDay(got.Date, date(2020, 2, 10)) {
			t.Fatalf("committed = %+v, want 2020-02-10", got)
		}
		if len(rec.errors) != 0 {
			t.Errorf("unexpected errors: %v", rec.errors)
		}
		if len(rec.changes) != 1 {
			t.Errorf("got %d OnChange calls, want 1", len(rec.changes))
		}
	})

	t.Run("end before start is an order error", func(t *testing.T) {
		rec := &recorder{}
		c := New(rec.options(boundedOptions()))

		typeAndBlur(c, Start, "2020-02-10")
		rec.changes = nil
		typeAndBlur(c, End, "2020-02-05")

		if len(rec.changes) != 0 {
			t.Errorf("OnChange fired for misordered range: %v", rec.changes)
		}
		if len(rec.errors) != 1 {
			t.Fatalf("got %d OnError calls, want 1", len(rec.errors))
		}
		ds := c.Resolve()
		if !ds.Fields[End].Error {
			t.Error("end field should be flagged")
		}
		if ds.Fields[Start].Error {
			t.Error("start field should not be flagged")
		}
	})

	t.Run("empty text commits unset", func(t *testing.T) {
		rec := &recorder{}
		c := New(rec.options(boundedOptions()))
		c.Seed(date(2020, 2, 10), time.Time{})

		typeAndBlur(c, Start, "")

		if !c.State().Fields[Start].Committed.IsUnset() {
			t.Errorf("committed = %+v, want unset", c.State().Fields[Start].Committed)
		}
		if len(rec.changes) != 1 {
			t.Errorf("clearing a date should fire OnChange, got %d", len(rec.changes))
		}
	})

	t.Run("unparseable text commits sticky and reports", func(t *testing.T) {
		rec := &recorder{}
		c := New(rec.options(boundedOptions()))

		typeAndBlur(c, Start, "bogus")

		got := c.State().Fields[Start].Committed
		if got.Valid {
			t.Fatalf("committed = %+v, want invalid", got)
		}
		if got.Raw != "bogus" {
			t.Errorf("raw = %q, want typed text", got.Raw)
		}
		if len(rec.errors) != 1 {
			t.Errorf("got %d OnError calls, want 1", len(rec.errors))
		}
		if len(rec.changes) != 0 {
			t.Errorf("OnChange fired for invalid input: %v", rec.changes)
		}
	})

	t.Run("out-of-range date commits sticky and reports", func(t *testing.T) {
		rec := &recorder{}
		c := New(rec.options(boundedOptions()))

		typeAndBlur(c, Start, "2021-06-01")

		got := c.State().Fields[Start].Committed
		if !got.IsSet() {
			t.Fatalf("committed = %+v, want the out-of-range date kept", got)
		}
		if len(rec.errors) != 1 {
			t.Errorf("got %d OnError calls, want 1", len(rec.errors))
		}
		if !c.Resolve().Fields[Start].Error {
			t.Error("start field should be flagged")
		}
	})

	t.Run("controlled mode defers the commit but still reports", func(t *testing.T) {
		rec := &recorder{}
		opts := rec.options(boundedOptions())
		opts.Controlled = true
		c := New(opts)

		typeAndBlur(c, Start, "bogus")

		if !c.State().Fields[Start].Committed.IsUnset() {
			t.Errorf("controlled commit leaked: %+v", c.State().Fields[Start].Committed)
		}
		if len(rec.errors) != 1 {
			t.Errorf("got %d OnError calls, want 1", len(rec.errors))
		}
	})

	t.Run("resubmitting the committed value is a no-op", func(t *testing.T) {
		rec := &recorder{}
		c := New(rec.options(boundedOptions()))

		typeAndBlur(c, Start, "2020-02-10")
		before := c.State().Fields[Start].Committed
		rec.changes = nil

		typeAndBlur(c, Start, "2020-02-10")

		if !c.State().Fields[Start].Committed.Equal(before) {
			t.Error("committed value changed on resubmit")
		}
		if len(rec.changes) != 0 {
			t.Errorf("OnChange fired on resubmit: %v", rec.changes)
		}
	})

	t.Run("blur without typing just unfocuses", func(t *testing.T) {
		rec := &recorder{}
		c := New(rec.options(boundedOptions()))
		c.Seed(date(2020, 2, 10), time.Time{})

		c.Focus(Start)
		c.Blur(Start)

		if c.State().Fields[Start].Focused {
			t.Error("field still focused after blur")
		}
		if len(rec.changes)+len(rec.errors) != 0 {
			t.Error("blur without edits fired callbacks")
		}
	})

	t.Run("shortcuts expand before parsing", func(t *testing.T) {
		rec := &recorder{}
		opts := rec.options(boundedOptions())
		opts.Shortcuts = true
		opts.Now = func() time.Time { return date(2020, 6, 15) }
		c := New(opts)

		typeAndBlur(c, Start, "tomorrow")

		got := c.State().Fields[Start].Committed
		if !got.IsSet() || !dateutil.SameDay(got.Date, date(2020, 6, 16)) {
			t.Errorf("committed = %+v, want 2020-06-16", got)
		}
	})
}

func TestCalendarSelection(t *testing.T) {
	t.Run("matches the typed-commit result", func(t *testing.T) {
		typed := New(boundedOptions())
		typeAndBlur(typed, Start, "2020-02-10")
		typeAndBlur(typed, End, "2020-02-20")

		selected := New(boundedOptions())
		selected.SelectRange(dptr(date(2020, 2, 10)), dptr(date(2020, 2, 20)))

		for _, b := range []Boundary{Start, End} {
			tv := typed.State().Fields[b].Committed
			sv := selected.State().Fields[b].Committed
			if !tv.Equal(sv) {
				t.Errorf("%v: typed %+v != selected %+v", b, tv, sv)
			}
		}
	})

	t.Run("single day click focuses the end field", func(t *testing.T) {
		rec := &recorder{}
		c := New(rec.options(boundedOptions()))

		c.SelectRange(dptr(date(2020, 3, 1)), nil)

		start := c.State().Fields[Start].Committed
		if !start.IsSet() || !dateutil.SameDay(start.Date, date(2020, 3, 1)) {
			t.Fatalf("start = %+v, want 2020-03-01", start)
		}
		if !c.State().Fields[End].Committed.IsUnset() {
			t.Error("end should stay unset")
		}
		ds := c.Resolve()
		if ds.FocusTarget == nil || *ds.FocusTarget != End {
			t.Errorf("focus target = %v, want end", ds.FocusTarget)
		}
	})

	t.Run("same day twice with single-day ranges allowed", func(t *testing.T) {
		rec := &recorder{}
		opts := rec.options(boundedOptions())
		opts.AllowSingleDay = true
		c := New(opts)

		d := date(2020, 3, 1)
		c.SelectRange(dptr(d), nil)
		c.SelectRange(dptr(d), dptr(d))

		start := c.State().Fields[Start].Committed
		end := c.State().Fields[End].Committed
		if !start.Equal(end) || !start.IsSet() {
			t.Fatalf("start %+v end %+v, want both 2020-03-01", start, end)
		}
		if len(rec.errors) != 0 {
			t.Errorf("equal days reported as error: %v", rec.errors)
		}
		ds := c.Resolve()
		if ds.Fields[End].Error {
			t.Error("end field flagged for an allowed single-day range")
		}
	})

	t.Run("close on selection", func(t *testing.T) {
		opts := boundedOptions()
		opts.CloseOnSelection = true
		c := New(opts)
		c.SetOverlayOpen(true)

		c.SelectRange(dptr(date(2020, 3, 1)), dptr(date(2020, 3, 5)))

		if c.State().OverlayOpen {
			t.Error("overlay should close after a complete selection")
		}
	})

	t.Run("complete selection keeps the last focused boundary", func(t *testing.T) {
		c := New(boundedOptions())
		c.Focus(End)

		c.SelectRange(dptr(date(2020, 3, 1)), dptr(date(2020, 3, 5)))

		ds := c.Resolve()
		if ds.FocusTarget == nil || *ds.FocusTarget != End {
			t.Errorf("focus target = %v, want end", ds.FocusTarget)
		}
	})

	t.Run("nil selection clears both ends", func(t *testing.T) {
		c := New(boundedOptions())
		c.Seed(date(2020, 3, 1), date(2020, 3, 5))

		c.SelectRange(nil, nil)

		if !c.State().Fields[Start].Committed.IsUnset() ||
			!c.State().Fields[End].Committed.IsUnset() {
			t.Error("expected both boundaries unset")
		}
	})
}

func TestHoverPreview(t *testing.T) {
	t.Run("never mutates committed state", func(t *testing.T) {
		c := New(boundedOptions())
		c.Seed(date(2020, 3, 1), time.Time{})
		before := c.State().Fields[End].Committed

		c.HoverRange(dptr(date(2020, 3, 1)), dptr(date(2020, 3, 5)))

		ds := c.Resolve()
		if ds.Fields[End].Text != "2020-03-05" {
			t.Errorf("end preview = %q, want 2020-03-05", ds.Fields[End].Text)
		}
		if !c.State().Fields[End].Committed.Equal(before) {
			t.Error("hover mutated the committed end value")
		}
	})

	t.Run("clearing restores prior display exactly", func(t *testing.T) {
		c := New(boundedOptions())
		c.Seed(date(2020, 3, 1), time.Time{})
		before := c.Resolve()

		c.HoverRange(dptr(date(2020, 3, 1)), dptr(date(2020, 3, 5)))
		c.HoverClear()

		after := c.Resolve()
		for _, b := range []Boundary{Start, End} {
			if before.Fields[b].Text != after.Fields[b].Text {
				t.Errorf("%v text %q != %q after clearing hover",
					b, after.Fields[b].Text, before.Fields[b].Text)
			}
			if before.Fields[b].Placeholder != after.Fields[b].Placeholder {
				t.Errorf("%v placeholder changed across hover", b)
			}
		}
	})

	t.Run("hover continuing a selection focuses the unset boundary", func(t *testing.T) {
		c := New(boundedOptions())
		c.Seed(date(2020, 3, 1), time.Time{})
		c.Focus(Start)

		c.HoverRange(dptr(date(2020, 3, 1)), dptr(date(2020, 3, 5)))

		st := c.State()
		if !st.Fields[End].Focused {
			t.Error("focus should shift to the unset end boundary")
		}
		if !st.FocusFromHover {
			t.Error("shift should be marked hover-driven")
		}
	})

	t.Run("hover revising the set boundary focuses it", func(t *testing.T) {
		c := New(boundedOptions())
		c.Seed(date(2020, 3, 10), time.Time{})
		c.Focus(End)

		// The hovered range no longer includes the committed start.
		c.HoverRange(dptr(date(2020, 3, 5)), nil)

		if !c.State().Fields[Start].Focused {
			t.Error("focus should shift to the set start boundary")
		}
	})

	t.Run("tab clears the hover-driven marker", func(t *testing.T) {
		c := New(boundedOptions())
		c.Seed(date(2020, 3, 1), time.Time{})
		c.HoverRange(dptr(date(2020, 3, 1)), dptr(date(2020, 3, 5)))

		// The shift landed on the end field; Shift+Tab away from it is
		// deliberate keyboard navigation.
		c.KeyTab(true)

		if c.State().FocusFromHover {
			t.Error("marker should be cleared by keyboard navigation")
		}
	})

	t.Run("preview text is never flagged", func(t *testing.T) {
		c := New(boundedOptions())
		c.HoverRange(dptr(date(2020, 3, 5)), nil)

		ds := c.Resolve()
		if ds.Fields[Start].Error || ds.Fields[End].Error {
			t.Error("hover preview flagged as error")
		}
	})

	t.Run("nil hover payload is a no-op clear", func(t *testing.T) {
		c := New(boundedOptions())
		c.Seed(date(2020, 3, 1), date(2020, 3, 5))
		before := c.Resolve()

		c.HoverRange(nil, nil)

		after := c.Resolve()
		if before.Fields[Start].Text != after.Fields[Start].Text ||
			before.Fields[End].Text != after.Fields[End].Text {
			t.Error("nil hover changed the display")
		}
	})
}

func TestFocusMutualExclusion(t *testing.T) {
	c := New(boundedOptions())

	events := []func(){
		func() { c.Focus(Start) },
		func() { c.Type(Start, "2020-02-10") },
		func() { c.Focus(End) },
		func() { c.HoverRange(dptr(date(2020, 2, 10)), dptr(date(2020, 2, 15))) },
		func() { c.SelectRange(dptr(date(2020, 2, 10)), nil) },
		func() { c.Blur(End) },
		func() { c.Focus(Start) },
	}
	for i, ev := range events {
		ev()
		st := c.State()
		if st.Fields[Start].Focused && st.Fields[End].Focused {
			t.Fatalf("both fields focused after event %d", i)
		}
	}
}

func TestFocusCommitsOtherField(t *testing.T) {
	rec := &recorder{}
	c := New(rec.options(boundedOptions()))

	c.Focus(Start)
	c.Type(Start, "2020-02-10")
	c.Focus(End)

	got := c.State().Fields[Start].Committed
	if !got.IsSet() || !dateutil.SameDay(got.Date, date(2020, 2, 10)) {
		t.Errorf("focus handoff lost the typed start date: %+v", got)
	}
}

func TestDisabled(t *testing.T) {
	opts := boundedOptions()
	opts.Disabled = true
	c := New(opts)

	c.Focus(Start)
	c.Type(Start, "2020-02-10")
	c.SelectRange(dptr(date(2020, 3, 1)), nil)
	c.HoverRange(dptr(date(2020, 3, 1)), nil)
	c.IconClick()

	st := c.State()
	if st.Fields[Start].Focused || st.Fields[End].Focused {
		t.Error("disabled control accepted focus")
	}
	if !st.Fields[Start].Committed.IsUnset() {
		t.Error("disabled control accepted a commit")
	}
	if st.OverlayOpen {
		t.Error("disabled control opened the overlay")
	}
}

func TestIconClick(t *testing.T) {
	c := New(boundedOptions())

	c.IconClick()
	st := c.State()
	if !st.OverlayOpen {
		t.Fatal("icon click should open the overlay")
	}
	if !st.Fields[Start].Focused {
		t.Error("opening should focus the start field")
	}

	c.IconClick()
	if c.State().OverlayOpen {
		t.Error("second click should close the overlay")
	}
}

func TestOpenOnFocus(t *testing.T) {
	opts := boundedOptions()
	opts.OpenOnFocus = true
	c := New(opts)

	c.Focus(Start)
	if !c.State().OverlayOpen {
		t.Error("focusing should open the overlay")
	}
}

func TestSetValue(t *testing.T) {
	rec := &recorder{}
	opts := rec.options(boundedOptions())
	opts.Controlled = true
	c := New(opts)

	c.SetValue(dptr(date(2020, 4, 1)), dptr(date(2020, 4, 10)))

	start := c.State().Fields[Start].Committed
	end := c.State().Fields[End].Committed
	if !start.IsSet() || !end.IsSet() {
		t.Fatalf("host value not installed: start %+v end %+v", start, end)
	}
	if len(rec.changes)+len(rec.errors) != 0 {
		t.Error("SetValue fired callbacks")
	}
}

func TestOrderingInvariant(t *testing.T) {
	// After any commit sequence where both committed values are valid
	// and in range, either start <= end holds or the end field is
	// flagged; the coordinator never silently swaps.
	c := New(boundedOptions())
	typeAndBlur(c, End, "2020-02-05")
	typeAndBlur(c, Start, "2020-02-10")

	st := c.State()
	start, end := st.Fields[Start].Committed, st.Fields[End].Committed
	if !start.IsSet() || !end.IsSet() {
		t.Fatal("expected both ends committed")
	}
	if dateutil.Before(end.Date, start.Date) {
		ds := c.Resolve()
		if !ds.Fields[End].Error {
			t.Error("misordered committed range not flagged")
		}
		if ds.Fields[End].Text == end.Format("YYYY-MM-DD") {
			t.Error("misordered end displayed as a plain date")
		}
	}
}
