package view

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/javiermolinar/together/internal/calendar"
	"github.com/javiermolinar/together/internal/journal"
)

// EntriesViewState describes the selected day's entry list.
type EntriesViewState struct {
	Date         calendar.Date
	Entries      []*journal.Entry
	Width        int
	Height       int
	HeadingStyle lipgloss.Style
	TitleStyle   lipgloss.Style
	BodyStyle    lipgloss.Style
	EmptyStyle   lipgloss.Style
}

// EntryLines returns the unstyled lines for a day: one title line per entry
// followed by its wrapped body, indented.
func EntryLines(entries []*journal.Entry, width int) []string {
	lines := make([]string, 0, len(entries)*2)
	for _, e := range entries {
		lines = append(lines, ansi.Truncate(fmt.Sprintf("%s %s (%s)", MarkerGlyph, e.Title, e.Author), width, "…"))
		if e.Body == "" {
			continue
		}
		for _, l := range WrapTextToWidths(e.Body, width-2, width-2) {
			lines = append(lines, "  "+l)
		}
	}
	return lines
}

// RenderEntries renders the heading and the entries of the selected day,
// clamped to the available height.
func RenderEntries(state EntriesViewState) string {
	if state.Width <= 0 || state.Height <= 0 {
		return ""
	}

	heading := state.Date.Time().Format("Monday, January 2 2006")
	switch n := len(state.Entries); n {
	case 0:
	case 1:
		heading += " · 1 entry"
	default:
		heading += fmt.Sprintf(" · %d entries", n)
	}

	out := []string{state.HeadingStyle.Render(ansi.Truncate(heading, state.Width, "…"))}
	if len(state.Entries) == 0 {
		out = append(out, state.EmptyStyle.Render("Nothing written yet. Press a to add a note."))
		return strings.Join(out, "\n")
	}

	lines := ClampLines(EntryLines(state.Entries, state.Width), state.Height-1, state.Width)
	for _, l := range lines {
		if strings.HasPrefix(l, "  ") {
			out = append(out, state.BodyStyle.Render(l))
		} else {
			out = append(out, state.TitleStyle.Render(l))
		}
	}
	return strings.Join(out, "\n")
}
