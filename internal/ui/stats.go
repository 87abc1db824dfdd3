package ui

import (
	"context"
	"time"

	"github.com/spf13/cobra"

	"github.com/javiermolinar/together/internal/calendar"
	"github.com/javiermolinar/together/internal/dateutil"
	"github.com/javiermolinar/together/internal/summary"
)

func (a *App) statsCmd() *cobra.Command {
	var (
		date    string
		week    bool
		noColor bool
	)

	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Summarize a month or week of journaling",
		Example: `  together stats
  together stats --week
  together stats --date=last-month`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if noColor {
				DisableColor()
			}
			if err := a.ensureRepo(); err != nil {
				return err
			}

			ref, err := dateutil.ParseRelativeDate(date, time.Now())
			if err != nil {
				return err
			}
			mode := calendar.ModeMonth
			if week {
				mode = calendar.ModeWeek
			}
			v := calendar.View{Reference: ref, Selected: ref, Mode: mode}

			s, err := summary.Build(context.Background(), a.repo, v.Grid())
			if err != nil {
				return err
			}
			PrintSummary(cmd.OutOrStdout(), v.Title(), s)
			return nil
		},
	}

	cmd.Flags().StringVar(&date, "date", "", "Any date in the period (YYYY-MM-DD or relative, default: today)")
	cmd.Flags().BoolVar(&week, "week", false, "Summarize a single week instead of the month")
	cmd.Flags().BoolVar(&noColor, "no-color", false, "Disable color output")
	return cmd
}
