// Package ui provides the command-line interface for together.
package ui

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/javiermolinar/together/internal/config"
	"github.com/javiermolinar/together/internal/db"
	"github.com/javiermolinar/together/internal/journal"
	"github.com/javiermolinar/together/internal/logging"
	"github.com/javiermolinar/together/internal/tui"
)

var (
	// Version is set at build time
	Version = "dev"
	// Commit is set at build time
	Commit = "none"
)

// App holds the CLI application state.
type App struct {
	repo     journal.Repository
	config   *config.Config
	log      *zap.Logger
	root     *cobra.Command
	debug    bool // Raise the log level to debug
	ownsRepo bool // repo was opened by the App and must be closed by it
}

// Option configures an App.
type Option func(*App)

// WithLogger sets the application logger. Without it the App builds its own
// from the config once flags are parsed, honoring --debug.
func WithLogger(l *zap.Logger) Option {
	return func(a *App) {
		if l != nil {
			a.log = l
		}
	}
}

// NewApp creates a new CLI application with the given repository and config.
// A nil repo is opened lazily from the configured database path.
func NewApp(repo journal.Repository, cfg *config.Config, opts ...Option) *App {
	a := &App{repo: repo, config: cfg}
	for _, opt := range opts {
		opt(a)
	}

	a.root = &cobra.Command{
		Use:   "together",
		Short: "A shared journal calendar for two",
		Long: `together keeps a small shared journal for a couple.

Run without arguments to open the calendar. Days with entries are marked;
move around with the arrow keys and press a to jot something down.`,
		SilenceUsage: true,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			return a.initLogger()
		},
		RunE: func(_ *cobra.Command, _ []string) error {
			return tui.Run(a.repo, a.config, a.logger())
		},
	}

	a.root.PersistentFlags().BoolVar(&a.debug, "debug", false, "Enable debug logging to the configured log file")

	a.root.AddCommand(a.versionCmd())
	a.root.AddCommand(a.configCmd())
	a.root.AddCommand(a.calCmd())
	a.root.AddCommand(a.addCmd())
	a.root.AddCommand(a.editCmd())
	a.root.AddCommand(a.listCmd())
	a.root.AddCommand(a.showCmd())
	a.root.AddCommand(a.deleteCmd())
	a.root.AddCommand(a.importCmd())
	a.root.AddCommand(a.statsCmd())

	return a
}

func (a *App) versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "together %s (commit: %s)\n", Version, Commit)
		},
	}
}

// initLogger builds the logger from the config unless one was injected.
func (a *App) initLogger() error {
	if a.log != nil {
		return nil
	}
	l, err := logging.New(a.config.Log, a.debug)
	if err != nil {
		return fmt.Errorf("setting up logging: %w", err)
	}
	a.log = l
	return nil
}

func (a *App) logger() *zap.Logger {
	if a.log == nil {
		return zap.NewNop()
	}
	return a.log
}

// ensureRepo opens the configured database if no repository was injected.
func (a *App) ensureRepo() error {
	if a.repo != nil {
		return nil
	}
	path := a.config.Storage.DBPath
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating data directory: %w", err)
	}
	repo, err := db.New(path, db.WithLogger(a.logger()))
	if err != nil {
		return fmt.Errorf("opening journal: %w", err)
	}
	a.repo = repo
	a.ownsRepo = true
	return nil
}

// Execute runs the CLI application.
func (a *App) Execute() error {
	return a.root.Execute()
}

// Close releases the repository if the App opened it.
func (a *App) Close() error {
	if a.log != nil {
		_ = a.log.Sync()
	}
	if a.ownsRepo && a.repo != nil {
		return a.repo.Close()
	}
	return nil
}
