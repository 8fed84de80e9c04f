package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/tomaslara/rangepick/internal/config"
	"github.com/tomaslara/rangepick/internal/dateutil"
	"github.com/tomaslara/rangepick/internal/db"
	"github.com/tomaslara/rangepick/internal/rangeinput"
	"github.com/tomaslara/rangepick/internal/tui/theme"
)

// eventSink collects coordinator callback invocations so the Update
// loop can act on them after the mutation has completed. The
// coordinator and the model share one instance.
type eventSink struct {
	changes []dateutil.DateRange
	partial bool
	errors  []dateutil.DateValue
}

func (s *eventSink) onChange(start, end dateutil.DateValue) {
	if start.IsSet() && end.IsSet() {
		r, err := dateutil.NewDateRange(start.Date, end.Date)
		if err == nil {
			s.changes = append(s.changes, r)
			return
		}
	}
	s.partial = true
}

func (s *eventSink) onError(invalid dateutil.DateValue) {
	s.errors = append(s.errors, invalid)
}

func (s *eventSink) drain() (changes []dateutil.DateRange, errors []dateutil.DateValue, partial bool) {
	changes, errors, partial = s.changes, s.errors, s.partial
	s.changes, s.errors, s.partial = nil, nil, false
	return changes, errors, partial
}

// Model is the main TUI model.
type Model struct {
	coord *rangeinput.Coordinator
	sink  *eventSink

	cfg   *config.Config
	store *db.Store

	inputs   [2]textinput.Model
	calendar Calendar

	// selectAll marks a field whose content the next edit replaces
	// wholesale, the terminal rendering of select-all-on-focus.
	selectAll [2]bool

	theme  *theme.Theme
	styles *Styles

	width  int
	height int

	// Result state
	result   *dateutil.DateRange
	accepted bool

	statusMsg string
	statusErr bool

	nowFunc func() time.Time
}

// New creates the TUI model from config. The store may be nil, in
// which case picks are not recorded.
func New(cfg *config.Config, store *db.Store) Model {
	th, _ := theme.Load(cfg.UI.Theme)
	min, max := cfg.Bounds()

	sink := &eventSink{}
	coord := rangeinput.New(rangeinput.Options{
		Format:             cfg.Picker.Format,
		MinDate:            min,
		MaxDate:            max,
		AllowSingleDay:     cfg.Picker.AllowSingleDay,
		AllowUnbounded:     cfg.Picker.AllowUnbounded,
		CloseOnSelection:   cfg.Picker.CloseOnSelection,
		OpenOnFocus:        cfg.Picker.OpenOnFocus,
		SelectAllOnFocus:   cfg.Picker.SelectAllOnFocus,
		Shortcuts:          cfg.Picker.Shortcuts,
		InvalidMessage:     cfg.Picker.InvalidMessage,
		OutOfRangeMessage:  cfg.Picker.OutOfRangeMsg,
		OverlappingMessage: cfg.Picker.OverlappingMsg,
		OnChange:           sink.onChange,
		OnError:            sink.onError,
	})

	m := Model{
		coord:   coord,
		sink:    sink,
		cfg:     cfg,
		store:   store,
		theme:   th,
		styles:  NewStyles(th),
		nowFunc: time.Now,
	}

	for b := range m.inputs {
		in := textinput.New()
		in.CharLimit = 32
		in.Prompt = ""
		in.PlaceholderStyle = m.styles.PlaceholderStyle
		in.TextStyle = m.styles.InputTextStyle
		m.inputs[b] = in
	}

	seed := min
	if seed.IsZero() {
		seed = dateutil.Truncate(time.Now())
	}
	m.calendar = NewCalendar(seed, min, max)

	coord.Focus(rangeinput.Start)
	m.syncFields()
	return m
}

// Seed installs an initial range before the program starts.
func (m *Model) Seed(start, end time.Time) {
	m.coord.Seed(start, end)
	if !start.IsZero() {
		m.calendar.SetCursor(start)
	}
	m.syncFields()
}

// Result returns the accepted range, or nil if the user quit.
func (m Model) Result() *dateutil.DateRange {
	if !m.accepted {
		return nil
	}
	return m.result
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// focusedBoundary returns the boundary holding input focus, if any.
func (m Model) focusedBoundary() (rangeinput.Boundary, bool) {
	ds := m.coord.Resolve()
	if ds.FocusTarget == nil {
		return rangeinput.Start, false
	}
	return *ds.FocusTarget, true
}

// syncFields reconciles the textinput components with the resolved
// display state. The coordinator decides focus and text; the inputs
// only hold the edit buffer while the user is typing.
func (m *Model) syncFields() {
	ds := m.coord.Resolve()
	st := m.coord.State()

	for _, b := range []rangeinput.Boundary{rangeinput.Start, rangeinput.End} {
		in := &m.inputs[b]
		fd := ds.Fields[b]

		in.Placeholder = fd.Placeholder
		if fd.Error {
			in.TextStyle = m.styles.InputErrorStyle
		} else {
			in.TextStyle = m.styles.InputTextStyle
		}

		focused := ds.FocusTarget != nil && *ds.FocusTarget == b
		if focused && !in.Focused() {
			in.Focus()
			in.CursorEnd()
			m.selectAll[b] = fd.SelectText && fd.Text != ""
		} else if !focused && in.Focused() {
			in.Blur()
			m.selectAll[b] = false
		}

		// While the user is typing the input owns its buffer; in every
		// other situation the resolved text is authoritative.
		typing := focused && st.Fields[b].LiveText != nil && st.Fields[b].HoverText == nil
		if !typing && in.Value() != fd.Text {
			in.SetValue(fd.Text)
			in.CursorEnd()
		}
	}
}
