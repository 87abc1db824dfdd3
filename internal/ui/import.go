package ui

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/javiermolinar/together/internal/calendar"
	"github.com/javiermolinar/together/internal/db"
	"github.com/javiermolinar/together/internal/journal"
)

// Bounds covering every date the store can hold.
var (
	firstStorableDate = calendar.NewDate(1, time.January, 1)
	lastStorableDate  = calendar.NewDate(9999, time.December, 31)
)

func (a *App) importCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "import [database_path]",
		Short: "Import entries from another journal",
		Long: `Import all entries from another together database into the current one,
for example when merging two journals started separately.

Example:
  together import /path/to/other.db`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sourcePath, err := resolvePath(args[0])
			if err != nil {
				return err
			}
			destPath, err := resolvePath(a.config.Storage.DBPath)
			if err != nil {
				return err
			}
			if sourcePath == destPath {
				return fmt.Errorf("source database matches current database")
			}

			info, err := os.Stat(sourcePath)
			if err != nil {
				if os.IsNotExist(err) {
					return fmt.Errorf("source database does not exist: %s", sourcePath)
				}
				return fmt.Errorf("checking source database: %w", err)
			}
			if info.IsDir() {
				return fmt.Errorf("source database path is a directory: %s", sourcePath)
			}

			if err := a.ensureRepo(); err != nil {
				return err
			}

			count, err := importEntries(context.Background(), a.repo, sourcePath)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Imported %d entries from %s\n", count, sourcePath)
			return nil
		},
	}
}

// importEntries copies every entry of the database at sourcePath into dest
// in one transaction. IDs are reassigned; timestamps are kept.
func importEntries(ctx context.Context, dest journal.Repository, sourcePath string) (int, error) {
	sourceRepo, err := db.New(sourcePath)
	if err != nil {
		return 0, fmt.Errorf("opening source database: %w", err)
	}
	defer func() { _ = sourceRepo.Close() }()

	entries, err := sourceRepo.ListEntriesByDateRange(ctx, firstStorableDate, lastStorableDate)
	if err != nil {
		return 0, fmt.Errorf("listing source entries: %w", err)
	}
	if len(entries) == 0 {
		return 0, nil
	}

	copies := make([]*journal.Entry, len(entries))
	for i, e := range entries {
		c := *e
		c.ID = 0
		copies[i] = &c
	}

	if err := dest.CreateEntries(ctx, copies); err != nil {
		return 0, fmt.Errorf("importing entries: %w", err)
	}
	return len(copies), nil
}

func resolvePath(path string) (string, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return "", fmt.Errorf("empty path")
	}

	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolving home directory: %w", err)
		}
		path = filepath.Join(home, path[2:])
	}

	absPath, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("resolving path: %w", err)
	}

	return absPath, nil
}
