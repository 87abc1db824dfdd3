package ui

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/javiermolinar/together/internal/calendar"
	"github.com/javiermolinar/together/internal/dateutil"
	"github.com/javiermolinar/together/internal/journal"
)

func (a *App) calCmd() *cobra.Command {
	var (
		date    string
		week    bool
		month   bool
		noColor bool
	)

	cmd := &cobra.Command{
		Use:   "cal",
		Short: "Print the calendar with journal days marked",
		Long: `Print a month or week grid. Days with at least one entry are
marked with an asterisk and today is highlighted.

The mode defaults to calendar.default_mode from the config.`,
		Example: `  together cal
  together cal --week
  together cal --date=2024-02-01
  together cal --date=next-month`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if noColor {
				DisableColor()
			}
			if week && month {
				return fmt.Errorf("--week and --month are mutually exclusive")
			}
			if err := a.ensureRepo(); err != nil {
				return err
			}

			now := time.Now()
			ref, err := dateutil.ParseRelativeDate(date, now)
			if err != nil {
				return err
			}

			mode := calendar.ParseMode(a.config.Calendar.DefaultMode)
			switch {
			case week:
				mode = calendar.ModeWeek
			case month:
				mode = calendar.ModeMonth
			}

			v := calendar.View{Reference: ref, Selected: ref, Mode: mode}
			start, end := v.Range()
			marks, err := journal.LoadMarks(context.Background(), a.repo, start, end)
			if err != nil {
				return fmt.Errorf("loading marked dates: %w", err)
			}

			PrintGrid(cmd.OutOrStdout(), v.Title(), v.Grid(), PrintOpts{
				Today: calendar.DateOf(now),
				Marks: marks,
			})
			return nil
		},
	}

	cmd.Flags().StringVar(&date, "date", "", "Date to show (YYYY-MM-DD or relative, default: today)")
	cmd.Flags().BoolVar(&week, "week", false, "Show a single week")
	cmd.Flags().BoolVar(&month, "month", false, "Show the whole month")
	cmd.Flags().BoolVar(&noColor, "no-color", false, "Disable color output")
	return cmd
}
