package view

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/javiermolinar/together/internal/calendar"
)

// WeekdayHeader renders the SUN..SAT column labels, each cellWidth wide.
// Weekend labels use weekendStyle.
func WeekdayHeader(cellWidth int, style, weekendStyle lipgloss.Style) string {
	labels := calendar.Labels()
	cols := make([]string, len(labels))
	for i, label := range labels {
		s := style
		if isWeekend(calendar.Weekday(i)) {
			s = weekendStyle
		}
		cols[i] = s.Width(cellWidth).Align(lipgloss.Center).Render(label)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cols...)
}

func isWeekend(w calendar.Weekday) bool {
	return w == calendar.Sun || w == calendar.Sat
}
