package ui

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func (a *App) historyCmd() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "history",
		Short: "List recently picked ranges",
		Long: `List the most recently picked date ranges, newest first.

Every accepted pick, interactive or via the pick command, is recorded
unless saving was disabled.`,
		Example: `  rangepick history
  rangepick history --limit=50`,
		RunE: func(_ *cobra.Command, _ []string) error {
			store, err := a.requireStore()
			if err != nil {
				return err
			}

			selections, err := store.RecentSelections(context.Background(), limit)
			if err != nil {
				return fmt.Errorf("listing history: %w", err)
			}
			if len(selections) == 0 {
				fmt.Println("No picks recorded yet.")
				return nil
			}

			width := termWidth()
			if width > 60 {
				width = 60
			}
			fmt.Println(formatHeader("Pick history"))
			fmt.Println(strings.Repeat("─", width))
			for _, sel := range selections {
				days := fmt.Sprintf("%2dd", sel.Range.Days())
				fmt.Printf("  #%-4d %s  %s  %s\n",
					sel.ID,
					formatRange(sel.Range.String()),
					formatStats(days),
					formatMuted(sel.PickedAt.Local().Format("2006-01-02 15:04")),
				)
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 20, "Maximum number of entries to show")
	cmd.AddCommand(a.historyClearCmd())

	return cmd
}

func (a *App) historyClearCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Delete all recorded picks",
		RunE: func(_ *cobra.Command, _ []string) error {
			store, err := a.requireStore()
			if err != nil {
				return err
			}
			if err := store.ClearHistory(context.Background()); err != nil {
				return fmt.Errorf("clearing history: %w", err)
			}
			fmt.Println("History cleared.")
			return nil
		},
	}
}
