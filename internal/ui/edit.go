package ui

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/javiermolinar/together/internal/journal"
)

func (a *App) editCmd() *cobra.Command {
	var (
		title string
		body  string
	)

	cmd := &cobra.Command{
		Use:   "edit [entry-id]",
		Short: "Change the title or text of an entry",
		Long: `Replace the title and/or body of an existing entry.
Flags that are not given keep their current value.

Example:
  together edit 12 --body="It rained, we stayed anyway"`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.ensureRepo(); err != nil {
				return err
			}

			id, err := parseEntryID(args[0])
			if err != nil {
				return err
			}

			ctx := context.Background()
			e, err := a.repo.GetEntry(ctx, id)
			if err != nil {
				return err
			}

			if cmd.Flags().Changed("title") {
				if e.Title, err = journal.NormalizeTitle(title); err != nil {
					return err
				}
			}
			if cmd.Flags().Changed("body") {
				e.Body = strings.TrimSpace(body)
			}

			if err := a.repo.UpdateEntry(ctx, id, e.Title, e.Body); err != nil {
				return fmt.Errorf("updating entry: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Updated entry #%d: %s\n", id, e.Title)
			return nil
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "New title")
	cmd.Flags().StringVar(&body, "body", "", "New text")
	cmd.MarkFlagsOneRequired("title", "body")

	return cmd
}
