package ui

import (
	"context"

	"github.com/spf13/cobra"
)

func (a *App) showCmd() *cobra.Command {
	var noColor bool

	cmd := &cobra.Command{
		Use:   "show [entry-id]",
		Short: "Show a journal entry",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if noColor {
				DisableColor()
			}
			if err := a.ensureRepo(); err != nil {
				return err
			}

			id, err := parseEntryID(args[0])
			if err != nil {
				return err
			}

			e, err := a.repo.GetEntry(context.Background(), id)
			if err != nil {
				return err
			}

			PrintEntryDetail(cmd.OutOrStdout(), e)
			return nil
		},
	}

	cmd.Flags().BoolVar(&noColor, "no-color", false, "Disable color output")
	return cmd
}
