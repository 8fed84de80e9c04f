package ui

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/tomaslara/rangepick/internal/config"
	"github.com/tomaslara/rangepick/internal/dateutil"
	"github.com/tomaslara/rangepick/internal/db"
	"github.com/tomaslara/rangepick/internal/tui"
)

var (
	// Version is set at build time
	Version = "dev"
	// Commit is set at build time
	Commit = "none"
)

// App holds the CLI application state.
type App struct {
	config  *config.Config
	store   *db.Store
	root    *cobra.Command
	noColor bool
	debug   bool // log keystrokes and state to a temp file
}

// NewApp creates a new CLI application with the given config. The
// history store is opened lazily so read-only commands work even when
// the database path is unavailable.
func NewApp(cfg *config.Config) *App {
	a := &App{config: cfg}

	var startFlag, endFlag string
	a.root = &cobra.Command{
		Use:   "rangepick",
		Short: "A terminal date-range picker",
		Long: `Rangepick is a terminal date-range picker.

It coordinates two date fields with a calendar overlay: type dates
directly, or navigate the calendar and confirm days. The accepted
range is printed to stdout and recorded in the pick history.`,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			if a.noColor {
				DisableColor()
			}
		},
		RunE: func(_ *cobra.Command, _ []string) error {
			start, end, err := a.seedDates(startFlag, endFlag)
			if err != nil {
				return err
			}

			r, err := tui.RunWithDebug(a.config, a.openStore(), start, end, a.debug)
			if err != nil {
				return err
			}
			if r == nil {
				return nil // quit without picking
			}
			fmt.Println(r.String())
			return nil
		},
	}

	a.root.Flags().StringVar(&startFlag, "start", "", "Initial start date")
	a.root.Flags().StringVar(&endFlag, "end", "", "Initial end date")
	a.root.PersistentFlags().BoolVar(&a.noColor, "no-color", false, "Disable color output")
	a.root.Flags().BoolVar(&a.debug, "debug", false, "Enable debug logging (logs to "+tui.DebugLogPath+")")

	a.root.AddCommand(a.versionCmd())
	a.root.AddCommand(a.configCmd())
	a.root.AddCommand(a.pickCmd())
	a.root.AddCommand(a.historyCmd())

	return a
}

func (a *App) versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number",
		Run: func(_ *cobra.Command, _ []string) {
			fmt.Printf("rangepick %s (commit: %s)\n", Version, Commit)
		},
	}
}

// seedDates parses the optional --start/--end flags under the
// configured format, with shortcut expansion.
func (a *App) seedDates(startFlag, endFlag string) (start, end time.Time, err error) {
	start, err = a.seedDate(startFlag, "--start")
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	end, err = a.seedDate(endFlag, "--end")
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	if !start.IsZero() && !end.IsZero() && end.Before(start) {
		return time.Time{}, time.Time{}, dateutil.ErrEndDateBeforeStart
	}
	return start, end, nil
}

func (a *App) seedDate(raw, flag string) (time.Time, error) {
	if raw == "" {
		return time.Time{}, nil
	}
	if a.config.Picker.Shortcuts {
		if t, ok := dateutil.ExpandShortcut(raw, time.Now()); ok {
			return t, nil
		}
	}
	v := dateutil.Parse(raw, a.config.Picker.Format)
	if !v.IsSet() {
		return time.Time{}, fmt.Errorf("%s %q does not match format %q: %w",
			flag, raw, a.config.Picker.Format, dateutil.ErrInvalidDateFormat)
	}
	return v.Date, nil
}

// openStore opens the history store on first use. A nil store is
// acceptable everywhere; it just disables recording.
func (a *App) openStore() *db.Store {
	if a.store != nil {
		return a.store
	}
	store, err := db.Open(a.config.Storage.DBPath)
	if err != nil {
		fmt.Fprintln(a.root.ErrOrStderr(), formatMuted(fmt.Sprintf("history disabled: %v", err)))
		return nil
	}
	a.store = store
	return store
}

// requireStore is openStore for commands that cannot work without it.
func (a *App) requireStore() (*db.Store, error) {
	if a.store != nil {
		return a.store, nil
	}
	store, err := db.Open(a.config.Storage.DBPath)
	if err != nil {
		return nil, fmt.Errorf("opening history database: %w", err)
	}
	a.store = store
	return store, nil
}

// Execute runs the CLI application.
func (a *App) Execute() error {
	return a.root.Execute()
}

// Close releases the history store, if it was opened.
func (a *App) Close() error {
	if a.store == nil {
		return nil
	}
	return a.store.Close()
}
