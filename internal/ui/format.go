package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/x/ansi"

	"github.com/javiermolinar/together/internal/calendar"
	"github.com/javiermolinar/together/internal/journal"
	"github.com/javiermolinar/together/internal/summary"
)

// Grid cell widths for printed calendars.
const (
	minPrintCell = 4
	maxPrintCell = 8
)

// PrintOpts configures grid printing.
type PrintOpts struct {
	Today     calendar.Date
	Marks     calendar.MarkSet
	CellWidth int // 0 derives the width from the terminal
}

func (o PrintOpts) cellWidth() int {
	if o.CellWidth > 0 {
		return o.CellWidth
	}
	return min(max(termWidth()/calendar.DaysPerWeek, minPrintCell), maxPrintCell)
}

// PrintGrid writes a title, the weekday header and one line per grid row.
// Marked days carry a trailing asterisk; fillers print as blanks.
func PrintGrid(w io.Writer, title string, g calendar.Grid, opts PrintOpts) {
	cw := opts.cellWidth()

	fmt.Fprintln(w, formatHeader(centerText(title, cw*calendar.DaysPerWeek)))

	var header strings.Builder
	for i, label := range calendar.Labels() {
		cell := padLeft(label, cw)
		if i == int(calendar.Sun) || i == int(calendar.Sat) {
			cell = formatWeekend(cell)
		}
		header.WriteString(cell)
	}
	fmt.Fprintln(w, header.String())

	for _, row := range g.Rows() {
		var line strings.Builder
		for _, c := range row {
			line.WriteString(formatCell(c, cw, opts))
		}
		fmt.Fprintln(w, strings.TrimRight(line.String(), " "))
	}
}

func formatCell(c calendar.DayCell, width int, opts PrintOpts) string {
	if c.IsFiller() {
		return strings.Repeat(" ", width)
	}

	num := fmt.Sprintf("%d", c.Number)
	marked := opts.Marks.Has(c.Date)
	if marked {
		num += "*"
	} else {
		num += " "
	}
	cell := padLeft(num, width)

	switch {
	case calendar.IsSameDay(c.Date, opts.Today):
		return formatToday(cell)
	case marked:
		return formatMarked(cell)
	case c.Label == calendar.Sun || c.Label == calendar.Sat:
		return formatWeekend(cell)
	default:
		return cell
	}
}

// PrintEntries writes entries grouped under a heading per day.
func PrintEntries(w io.Writer, entries []*journal.Entry, width int) {
	for i, day := range journal.GroupByDate(entries) {
		if i > 0 {
			fmt.Fprintln(w)
		}
		fmt.Fprintf(w, "=== %s ===\n", formatHeader(day.Date.Time().Format("Mon Jan 2, 2006")))
		for _, e := range day.Entries {
			PrintEntryRow(w, e, width)
		}
	}
}

// PrintEntryRow writes a single entry line and its body preview.
func PrintEntryRow(w io.Writer, e *journal.Entry, width int) {
	prefix := fmt.Sprintf("  #%-4d ", e.ID)
	line := ansi.Truncate(e.Title, max(width-len(prefix)-len(e.Author)-3, 10), "…")
	fmt.Fprintf(w, "%s%s %s\n", prefix, line, formatAuthor("("+e.Author+")"))
	if preview := e.Preview(max(width-len(prefix), 10)); preview != "" {
		fmt.Fprintf(w, "%s%s\n", strings.Repeat(" ", len(prefix)), formatMuted(preview))
	}
}

// PrintEntryDetail writes every field of an entry.
func PrintEntryDetail(w io.Writer, e *journal.Entry) {
	fmt.Fprintf(w, "%s\n", formatHeader(fmt.Sprintf("#%d %s", e.ID, e.Title)))
	fmt.Fprintf(w, "Date:    %s\n", e.Date.Time().Format("Monday, January 2, 2006"))
	fmt.Fprintf(w, "Author:  %s\n", formatAuthor(e.Author))
	fmt.Fprintf(w, "Created: %s\n", e.CreatedAt.Local().Format("2006-01-02 15:04"))
	if !e.UpdatedAt.Equal(e.CreatedAt) {
		fmt.Fprintf(w, "Updated: %s\n", e.UpdatedAt.Local().Format("2006-01-02 15:04"))
	}
	if e.Body != "" {
		fmt.Fprintf(w, "\n%s\n", e.Body)
	}
}

func padLeft(s string, width int) string {
	if n := width - ansi.StringWidth(s); n > 0 {
		return strings.Repeat(" ", n) + s
	}
	return s
}

func centerText(s string, width int) string {
	n := width - ansi.StringWidth(s)
	if n <= 0 {
		return s
	}
	return strings.Repeat(" ", n/2) + s
}

// PrintSummary writes the activity counts of a period.
func PrintSummary(w io.Writer, title string, s *summary.Summary) {
	fmt.Fprintln(w, formatHeader(title))
	fmt.Fprintf(w, "  Days written:    %d of %d\n", s.DaysWritten, s.Days)
	fmt.Fprintf(w, "  Longest streak:  %s\n", plural(s.LongestStreak, "day", "days"))
	for _, ac := range s.Authors() {
		fmt.Fprintf(w, "  %s %s\n", formatAuthor(fmt.Sprintf("%-16s", ac.Author)), plural(ac.Entries, "entry", "entries"))
	}
}

func plural(n int, one, many string) string {
	if n == 1 {
		return "1 " + one
	}
	return fmt.Sprintf("%d %s", n, many)
}
