package view

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/javiermolinar/together/internal/calendar"
)

// MarkerGlyph is drawn next to the day number of marked dates.
const MarkerGlyph = "•"

// CellStyles holds the lipgloss styles applied to grid cells.
// Precedence is Selected, Today, Marked, Weekend, Day.
type CellStyles struct {
	Day      lipgloss.Style
	Weekend  lipgloss.Style
	Filler   lipgloss.Style
	Marked   lipgloss.Style
	Today    lipgloss.Style
	Selected lipgloss.Style
	Marker   lipgloss.Style
}

// GridViewState describes a decorated grid ready for rendering.
type GridViewState struct {
	Title        string
	Cells        []calendar.DecoratedCell
	CellWidth    int
	TitleStyle   lipgloss.Style
	HeaderStyle  lipgloss.Style
	WeekendLabel lipgloss.Style
	Styles       CellStyles
}

// RenderGrid renders the title, weekday header and one line per grid row.
func RenderGrid(state GridViewState) string {
	width := state.CellWidth * calendar.DaysPerWeek
	lines := []string{
		state.TitleStyle.Width(width).Align(lipgloss.Center).Render(state.Title),
		WeekdayHeader(state.CellWidth, state.HeaderStyle, state.WeekendLabel),
	}

	for start := 0; start < len(state.Cells); start += calendar.DaysPerWeek {
		end := min(start+calendar.DaysPerWeek, len(state.Cells))
		cols := make([]string, 0, calendar.DaysPerWeek)
		for _, c := range state.Cells[start:end] {
			cols = append(cols, RenderCell(c, state.CellWidth, state.Styles))
		}
		lines = append(lines, lipgloss.JoinHorizontal(lipgloss.Top, cols...))
	}
	return strings.Join(lines, "\n")
}

// RenderCell renders a single day. Filler cells render blank.
func RenderCell(c calendar.DecoratedCell, width int, styles CellStyles) string {
	if c.IsFiller() {
		return styles.Filler.Width(width).Render("")
	}

	style := cellStyle(c, styles)
	text := fmt.Sprintf("%2d", c.Number)
	if c.Marked {
		text += " " + styles.Marker.Inherit(style).Render(MarkerGlyph)
	} else {
		text += "  "
	}
	return style.Width(width).Align(lipgloss.Center).Render(text)
}

func cellStyle(c calendar.DecoratedCell, styles CellStyles) lipgloss.Style {
	switch {
	case c.Selected:
		return styles.Selected
	case c.Today:
		return styles.Today
	case c.Marked:
		return styles.Marked
	case isWeekend(c.Label):
		return styles.Weekend
	default:
		return styles.Day
	}
}
