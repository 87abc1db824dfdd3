package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/javiermolinar/together/internal/tui/theme"
	"github.com/javiermolinar/together/internal/tui/view"
)

// Cell widths for the calendar grid.
const (
	minCellWidth     = 4
	defaultCellWidth = 6
	maxCellWidth     = 10
)

// Styles holds all lipgloss styles for the TUI, derived from a theme.
type Styles struct {
	colorBg     lipgloss.Color
	colorFg     lipgloss.Color
	colorAccent lipgloss.Color

	// Calendar
	TitleStyle   lipgloss.Style
	HeaderStyle  lipgloss.Style
	WeekendLabel lipgloss.Style
	Cells        view.CellStyles

	// Entries panel
	EntryHeadingStyle lipgloss.Style
	EntryTitleStyle   lipgloss.Style
	EntryBodyStyle    lipgloss.Style
	EntryEmptyStyle   lipgloss.Style

	// Footer
	PromptStyle lipgloss.Style
	StatusStyle lipgloss.Style
	ErrorStyle  lipgloss.Style
	HelpStyle   lipgloss.Style

	// Setup screen
	SetupStyle lipgloss.Style

	AppStyle lipgloss.Style
}

// NewStyles creates a new Styles instance from a theme.
func NewStyles(t *theme.Theme) *Styles {
	p := theme.NewPalette(t)
	s := &Styles{
		colorBg:     p.Bg,
		colorFg:     p.Fg,
		colorAccent: p.Accent,
	}

	base := lipgloss.NewStyle().Background(p.Bg).Foreground(p.Fg)

	s.TitleStyle = base.Bold(true).Foreground(p.Accent)
	s.HeaderStyle = base.Bold(true).Foreground(p.FgMuted)
	s.WeekendLabel = s.HeaderStyle.Foreground(p.Weekend)

	s.Cells = view.CellStyles{
		Day:     base,
		Weekend: base.Foreground(p.Weekend),
		Filler:  base.Foreground(p.FillerFg),
		Marked:  base.Background(p.MarkedBg).Foreground(p.TextOnMark),
		Today: base.
			Bold(true).
			Background(p.Today).
			Foreground(p.TextOnToday),
		Selected: base.
			Bold(true).
			Background(p.BgSelection).
			Foreground(p.Accent),
		Marker: lipgloss.NewStyle().Foreground(p.Marker).Bold(true),
	}

	s.EntryHeadingStyle = base.Bold(true).Foreground(p.Accent)
	s.EntryTitleStyle = base
	s.EntryBodyStyle = base.Foreground(p.FgMuted)
	s.EntryEmptyStyle = base.Italic(true).Foreground(p.FgMuted)

	s.PromptStyle = base.
		Border(lipgloss.RoundedBorder()).
		BorderForeground(p.Accent).
		BorderBackground(p.Bg).
		Padding(0, 1)
	s.StatusStyle = base.Foreground(p.Accent)
	s.ErrorStyle = base.Foreground(p.Warning).Bold(true)
	s.HelpStyle = base.Foreground(p.FgMuted)

	s.SetupStyle = base.
		Border(lipgloss.RoundedBorder()).
		BorderForeground(p.Accent).
		BorderBackground(p.Bg).
		Padding(1, 2)

	s.AppStyle = base.Padding(1, 2)

	return s
}
