package ui

import (
	"context"
	"fmt"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"

	"github.com/tomaslara/rangepick/internal/dateutil"
	"github.com/tomaslara/rangepick/internal/rangeinput"
)

func (a *App) pickCmd() *cobra.Command {
	var (
		startText string
		endText   string
		copyOut   bool
		noSave    bool
	)

	cmd := &cobra.Command{
		Use:   "pick",
		Short: "Pick a range without the interactive UI",
		Long: `Validate and record a date range from the command line.

Both dates go through the same commit pipeline as the interactive
picker: shortcut expansion, format parsing, bounds checking, and
ordering. Shortcuts like "today", "mon", or "+3d" work when enabled.`,
		Example: `  rangepick pick --start=2025-01-15 --end=2025-01-20
  rangepick pick --start=today --end=+3d --copy`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			r, err := a.resolvePick(startText, endText)
			if err != nil {
				return err
			}

			if !noSave {
				store, err := a.requireStore()
				if err != nil {
					return err
				}
				if _, err := store.RecordSelection(context.Background(), *r); err != nil {
					return fmt.Errorf("recording pick: %w", err)
				}
			}
			if copyOut {
				if err := clipboard.WriteAll(r.String()); err != nil {
					fmt.Fprintln(cmd.ErrOrStderr(), formatMuted(fmt.Sprintf("copy failed: %v", err)))
				}
			}

			fmt.Println(formatRange(r.String()))
			return nil
		},
	}

	cmd.Flags().StringVar(&startText, "start", "", "Start date (required)")
	cmd.Flags().StringVar(&endText, "end", "", "End date (required)")
	cmd.Flags().BoolVar(&copyOut, "copy", false, "Copy the range to the clipboard")
	cmd.Flags().BoolVar(&noSave, "no-save", false, "Do not record the pick in history")
	_ = cmd.MarkFlagRequired("start")
	_ = cmd.MarkFlagRequired("end")

	return cmd
}

// resolvePick pushes both texts through the field coordinator so the
// command line honours the exact same commit policy as the UI.
func (a *App) resolvePick(startText, endText string) (*dateutil.DateRange, error) {
	min, max := a.config.Bounds()

	var rejected *dateutil.DateValue
	coord := rangeinput.New(rangeinput.Options{
		Format:         a.config.Picker.Format,
		MinDate:        min,
		MaxDate:        max,
		AllowSingleDay: a.config.Picker.AllowSingleDay,
		Shortcuts:      a.config.Picker.Shortcuts,
		OnError: func(invalid dateutil.DateValue) {
			v := invalid
			rejected = &v
		},
	})

	coord.Focus(rangeinput.Start)
	coord.Type(rangeinput.Start, startText)
	coord.Blur(rangeinput.Start)
	coord.Focus(rangeinput.End)
	coord.Type(rangeinput.End, endText)
	coord.Blur(rangeinput.End)

	if rejected != nil {
		switch {
		case !rejected.Valid:
			return nil, fmt.Errorf("cannot parse %q under format %q: %w",
				rejected.Raw, a.config.Picker.Format, dateutil.ErrInvalidDateFormat)
		case rejected.IsSet() && !dateutil.WithinBounds(rejected.Date, min, max):
			return nil, fmt.Errorf("%s is outside the allowed bounds",
				rejected.Format(a.config.Picker.Format))
		default:
			return nil, fmt.Errorf("%s: %w",
				rejected.Format(a.config.Picker.Format), dateutil.ErrEndDateBeforeStart)
		}
	}

	start, end := coord.Adapter().SelectedRange()
	if start == nil || end == nil {
		return nil, fmt.Errorf("both --start and --end must resolve to dates")
	}
	if !dateutil.Ordered(*start, *end, a.config.Picker.AllowSingleDay) {
		return nil, dateutil.ErrEndDateBeforeStart
	}

	r, err := dateutil.NewDateRange(*start, *end)
	if err != nil {
		return nil, err
	}
	return &r, nil
}
