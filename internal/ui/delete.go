package ui

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

func (a *App) deleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete [entry-id]",
		Short: "Delete a journal entry",
		Long: `Delete an entry by its ID. The day stays marked while it has other entries.

Example:
  together delete 42`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.ensureRepo(); err != nil {
				return err
			}

			id, err := parseEntryID(args[0])
			if err != nil {
				return err
			}

			if err := a.repo.DeleteEntry(context.Background(), id); err != nil {
				return fmt.Errorf("deleting entry: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Deleted entry #%d\n", id)
			return nil
		},
	}
}

func parseEntryID(s string) (int64, error) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid entry ID: %q", s)
	}
	return id, nil
}
