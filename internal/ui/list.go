package ui

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/javiermolinar/together/internal/dateutil"
)

func (a *App) listCmd() *cobra.Command {
	var (
		from    string
		to      string
		month   string
		week    bool
		noColor bool
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List entries in a date range",
		Long: `List journal entries within a date range, grouped by day.

If no dates are specified, lists the current month.
If only --from is specified, lists entries for that single day.
If both --from and --to are specified, lists entries in that range (inclusive).
--month YYYY-MM lists a whole month; --week lists the current week.`,
		Example: `  together list
  together list --week
  together list --month=2024-02
  together list --from=2024-02-14
  together list --from=last-month --to=today`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if noColor {
				DisableColor()
			}

			dr, err := listRange(from, to, month, week, time.Now())
			if err != nil {
				return err
			}

			if err := a.ensureRepo(); err != nil {
				return err
			}

			entries, err := a.repo.ListEntriesByDateRange(context.Background(), dr.Start, dr.End)
			if err != nil {
				return fmt.Errorf("listing entries: %w", err)
			}

			out := cmd.OutOrStdout()
			if len(entries) == 0 {
				fmt.Fprintf(out, "No entries between %s and %s.\n", dr.Start, dr.End)
				return nil
			}

			fmt.Fprintln(out, formatMuted(fmt.Sprintf("%s to %s (%s)", dr.Start, dr.End, plural(dr.Days(), "day", "days"))))
			fmt.Fprintln(out)
			PrintEntries(out, entries, termWidth())
			return nil
		},
	}

	cmd.Flags().StringVar(&from, "from", "", "Start date (YYYY-MM-DD or relative)")
	cmd.Flags().StringVar(&to, "to", "", "End date (YYYY-MM-DD or relative, defaults to --from)")
	cmd.Flags().StringVar(&month, "month", "", "Month to list (YYYY-MM)")
	cmd.Flags().BoolVar(&week, "week", false, "List the current week")
	cmd.Flags().BoolVar(&noColor, "no-color", false, "Disable color output")

	return cmd
}

// listRange resolves the list flags to a date range. The flag groups
// --from/--to, --month and --week are mutually exclusive.
func listRange(from, to, month string, week bool, now time.Time) (dateutil.DateRange, error) {
	explicit := strings.TrimSpace(from) != "" || strings.TrimSpace(to) != ""
	groups := 0
	for _, set := range []bool{explicit, month != "", week} {
		if set {
			groups++
		}
	}
	if groups > 1 {
		return dateutil.DateRange{}, errors.New("--from/--to, --month and --week cannot be combined")
	}

	switch {
	case explicit:
		return dateutil.NewDateRange(from, to, now)
	case month != "":
		first, err := dateutil.ParseMonth(month, now)
		if err != nil {
			return dateutil.DateRange{}, err
		}
		return dateutil.DateRange{Start: first, End: first.EndOfMonth()}, nil
	case week:
		start, end := dateutil.WeekRange(now)
		return dateutil.DateRange{Start: start, End: end}, nil
	default:
		start, end := dateutil.MonthRange(now)
		return dateutil.DateRange{Start: start, End: end}, nil
	}
}
