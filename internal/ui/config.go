package ui

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/javiermolinar/together/internal/config"
	"github.com/javiermolinar/together/internal/tui/theme"
)

func (a *App) configCmd() *cobra.Command {
	var (
		initOnly bool
		edit     bool
	)

	cmd := &cobra.Command{
		Use:   "config",
		Short: "View or edit configuration",
		Long: `Show the configuration file and its current values.

If no config file exists, creates one with default values.
Use --edit to change values interactively.

Example:
  together config
  together config --init
  together config --edit`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()
			path := config.DefaultConfigPath()
			if initOnly {
				return initConfig(out, path)
			}
			return runConfig(out, cmd.InOrStdin(), path, edit)
		},
	}

	cmd.Flags().BoolVar(&initOnly, "init", false, "Write a default config file if none exists")
	cmd.Flags().BoolVar(&edit, "edit", false, "Edit values interactively")
	return cmd
}

func initConfig(out io.Writer, path string) error {
	if _, err := os.Stat(path); err == nil {
		fmt.Fprintf(out, "Config already exists at %s\n", path)
		return nil
	}
	if err := config.Default().SaveTo(path); err != nil {
		return fmt.Errorf("saving config: %w", err)
	}
	fmt.Fprintf(out, "Created %s\n", path)
	return nil
}

func runConfig(out io.Writer, in io.Reader, path string, edit bool) error {
	fmt.Fprintf(out, "Config file: %s\n\n", path)

	cfg, err := config.LoadFrom(path)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	if _, statErr := os.Stat(path); os.IsNotExist(statErr) {
		fmt.Fprintln(out, "No config file found. Creating with default values...")
		if err := cfg.SaveTo(path); err != nil {
			return fmt.Errorf("saving config: %w", err)
		}
		fmt.Fprintf(out, "Created %s\n\n", path)
	}

	printConfig(out, cfg)
	if !edit {
		return nil
	}

	reader := bufio.NewReader(in)
	fmt.Fprintln(out)

	cfg.Calendar.DefaultMode = promptValue(out, reader, "Default mode (month, week)", cfg.Calendar.DefaultMode)
	cfg.Couple.Partners = promptSlice(out, reader, "Partners (comma-separated, at most two)", cfg.Couple.Partners)
	cfg.Couple.DefaultAuthor = promptValue(out, reader, "Default author", cfg.Couple.DefaultAuthor)
	cfg.Storage.DBPath = promptValue(out, reader, "Database path", cfg.Storage.DBPath)
	cfg.UI.Theme = promptTheme(out, reader, cfg.UI.Theme)
	cfg.Log.Level = promptValue(out, reader, "Log level (debug, info, warn, error)", cfg.Log.Level)
	cfg.Log.Path = promptValue(out, reader, "Log file (\"-\" to disable)", cfg.Log.Path)
	if cfg.Log.Path == "-" {
		cfg.Log.Path = ""
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	if err := cfg.SaveTo(path); err != nil {
		return fmt.Errorf("saving config: %w", err)
	}

	fmt.Fprintln(out, "\nConfiguration saved!")
	return nil
}

func printConfig(out io.Writer, cfg *config.Config) {
	fmt.Fprintln(out, "Current configuration:")
	fmt.Fprintln(out, "──────────────────────")
	fmt.Fprintln(out, "[calendar]")
	fmt.Fprintf(out, "  default_mode   = %s\n", cfg.Calendar.DefaultMode)
	fmt.Fprintln(out, "\n[couple]")
	fmt.Fprintf(out, "  partners       = %s\n", strings.Join(cfg.Couple.Partners, ", "))
	fmt.Fprintf(out, "  default_author = %s\n", cfg.Couple.DefaultAuthor)
	fmt.Fprintln(out, "\n[storage]")
	fmt.Fprintf(out, "  db_path        = %s\n", cfg.Storage.DBPath)
	fmt.Fprintln(out, "\n[ui]")
	fmt.Fprintf(out, "  theme          = %s\n", cfg.UI.Theme)
	fmt.Fprintln(out, "\n[log]")
	fmt.Fprintf(out, "  level          = %s\n", cfg.Log.Level)
	fmt.Fprintf(out, "  path           = %s\n", cfg.Log.Path)
}

func promptValue(out io.Writer, reader *bufio.Reader, label, current string) string {
	if current == "" {
		fmt.Fprintf(out, "  %s: ", label)
	} else {
		fmt.Fprintf(out, "  %s [%s]: ", label, current)
	}
	input, _ := reader.ReadString('\n')
	input = strings.TrimSpace(input)
	if input == "" {
		return current
	}
	return input
}

func promptSlice(out io.Writer, reader *bufio.Reader, label string, current []string) []string {
	fmt.Fprintf(out, "  %s [%s]: ", label, strings.Join(current, ", "))
	input, _ := reader.ReadString('\n')
	input = strings.TrimSpace(input)
	if input == "" {
		return current
	}
	parts := strings.Split(input, ",")
	result := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			result = append(result, p)
		}
	}
	return result
}

func promptTheme(out io.Writer, reader *bufio.Reader, current string) string {
	options := strings.Join(theme.Available(), ", ")
	label := fmt.Sprintf("UI theme (%s)", options)
	for {
		value := strings.ToLower(promptValue(out, reader, label, current))
		if theme.IsAvailable(value) {
			return value
		}
		fmt.Fprintf(out, "  Invalid theme %q. Available: %s\n", value, options)
		if current == value {
			// Input exhausted and the current value is invalid.
			return theme.Available()[0]
		}
	}
}
