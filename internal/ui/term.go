package ui

import (
	"os"

	"github.com/fatih/color"
	"golang.org/x/term"
)

// Color definitions for consistent styling across the UI.
var (
	// Marked days: bold magenta so shared memories stand out
	colorMarked = color.New(color.FgMagenta, color.Bold)

	// Today: reverse video
	colorToday = color.New(color.ReverseVideo, color.Bold)

	// Weekends: cyan
	colorWeekend = color.New(color.FgCyan)

	// Headers: bold
	colorHeader = color.New(color.Bold)

	// Authors: yellow
	colorAuthor = color.New(color.FgYellow)

	// Muted: for secondary information
	colorMuted = color.New(color.FgWhite, color.Faint)
)

// termWidth returns the terminal width, or a default if detection fails.
func termWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		return 80
	}
	return width
}

// DisableColor disables all color output.
func DisableColor() {
	color.NoColor = true
}

// EnableColor enables color output (if terminal supports it).
func EnableColor() {
	color.NoColor = false
}

func formatMarked(s string) string  { return colorMarked.Sprint(s) }
func formatToday(s string) string   { return colorToday.Sprint(s) }
func formatWeekend(s string) string { return colorWeekend.Sprint(s) }
func formatHeader(s string) string  { return colorHeader.Sprint(s) }
func formatAuthor(s string) string  { return colorAuthor.Sprint(s) }
func formatMuted(s string) string   { return colorMuted.Sprint(s) }
