package ui

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/javiermolinar/together/internal/dateutil"
	"github.com/javiermolinar/together/internal/journal"
)

func (a *App) addCmd() *cobra.Command {
	var (
		title  string
		body   string
		date   string
		author string
	)

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a journal entry",
		Long: `Add an entry for a day. The day is marked on the calendar.

Example:
  together add --title="Picnic by the lake" --date=yesterday --author=Ana`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := a.ensureRepo(); err != nil {
				return err
			}

			d, err := dateutil.ParseRelativeDate(date, time.Now())
			if err != nil {
				return err
			}
			if author == "" {
				author = a.config.Couple.DefaultAuthor
			}

			e, err := journal.New(author, title, body, d, a.config.Couple.Partners)
			if err != nil {
				return err
			}
			if err := a.repo.CreateEntry(context.Background(), e); err != nil {
				return fmt.Errorf("creating entry: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Created entry #%d: %s (%s) on %s\n", e.ID, e.Title, e.Author, e.Date)
			return nil
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "Entry title (required)")
	cmd.Flags().StringVar(&body, "body", "", "Entry text")
	cmd.Flags().StringVar(&date, "date", "", "Entry date (YYYY-MM-DD or relative, default: today)")
	cmd.Flags().StringVar(&author, "author", "", "Author (default from config)")

	_ = cmd.MarkFlagRequired("title")

	return cmd
}
