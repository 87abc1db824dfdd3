package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/javiermolinar/together/internal/calendar"
	"github.com/javiermolinar/together/internal/summary"
	"github.com/javiermolinar/together/internal/tui/input"
	"github.com/javiermolinar/together/internal/tui/view"
)

// Layout constants, in terminal lines.
const (
	gridChromeLines = 2 // title and weekday header
	footerLines     = 2 // status and help
	promptLines     = 4 // bordered input line plus one suggestion
)

// View renders the TUI.
func (m Model) View() string {
	return view.Render(view.ViewState{
		Width:            m.width,
		Height:           m.height,
		BaseContent:      m.renderAppContent(),
		EmptyPlaceholder: "Loading...",
	})
}

func (m Model) renderAppContent() string {
	frameW, frameH := m.styles.AppStyle.GetFrameSize()
	innerW := m.width - frameW
	innerH := m.height - frameH

	var content string
	if m.mode == ModeSetup {
		content = m.renderSetup(innerW, innerH)
	} else {
		content = m.renderCalendar(innerW, innerH)
	}

	app := m.styles.AppStyle.Render(content)
	return view.PadLinesWithBackground(app, m.width, m.height, m.styles.colorBg)
}

func (m Model) renderCalendar(innerW, innerH int) string {
	cellW := cellWidth(innerW)
	grid := m.cal.Grid()
	rows := len(grid) / calendar.DaysPerWeek

	footerH := footerLines
	if m.mode == ModePrompt {
		footerH += promptLines
	}
	gridH := gridChromeLines + rows
	entriesH := innerH - gridH - footerH - 1
	if innerW < cellW*calendar.DaysPerWeek || entriesH < 1 {
		return "Terminal too small"
	}

	today := calendar.Today(m.now)
	gridBox := view.RenderGrid(view.GridViewState{
		Title:        m.cal.Title(),
		Cells:        calendar.Decorate(grid, m.cal.Selected, m.marks, today),
		CellWidth:    cellW,
		TitleStyle:   m.styles.TitleStyle,
		HeaderStyle:  m.styles.HeaderStyle,
		WeekendLabel: m.styles.WeekendLabel,
		Styles:       m.styles.Cells,
	})
	gridBox = view.PlaceBox(innerW, gridH+1, lipgloss.Top, gridBox, m.styles.colorBg)

	entriesBox := view.PlaceBox(innerW, entriesH, lipgloss.Top, view.RenderEntries(view.EntriesViewState{
		Date:         m.cal.Selected,
		Entries:      m.SelectedEntries(),
		Width:        innerW,
		Height:       entriesH,
		HeadingStyle: m.styles.EntryHeadingStyle,
		TitleStyle:   m.styles.EntryTitleStyle,
		BodyStyle:    m.styles.EntryBodyStyle,
		EmptyStyle:   m.styles.EntryEmptyStyle,
	}), m.styles.colorBg)

	footerBox := view.RenderFooter(m.footerModel(innerW, footerH))

	return lipgloss.JoinVertical(lipgloss.Left, gridBox, entriesBox, footerBox)
}

// cellWidth splits the available width over seven columns within bounds.
func cellWidth(innerW int) int {
	w := innerW / calendar.DaysPerWeek
	return min(max(w, minCellWidth), maxCellWidth)
}

func (m Model) footerModel(innerW, footerH int) view.FooterModel {
	statusStyle := m.styles.StatusStyle
	if m.statusErr {
		statusStyle = m.styles.ErrorStyle
	}

	fm := view.FooterModel{
		InnerW:      innerW,
		FooterH:     footerH,
		StatusText:  m.statusText(),
		HelpText:    m.helpText(),
		StatusStyle: statusStyle,
		HelpStyle:   m.styles.HelpStyle,
		PromptStyle: m.styles.PromptStyle,
		Bg:          m.styles.colorBg,
	}
	if m.mode == ModePrompt {
		frameW, _ := m.styles.PromptStyle.GetFrameSize()
		contentW := innerW - frameW - m.styles.PromptStyle.GetHorizontalPadding()
		fm.ShowPrompt = true
		fm.PromptLines = view.ClampLines(view.PromptLines(view.PromptState{
			Label:       m.cal.Selected.Time().Format("Jan 2"),
			Value:       m.prompt.Value(),
			Cursor:      "_",
			Suggestions: input.MatchingPartners(m.prompt.Value(), m.config.Couple.Partners),
		}, contentW), promptLines-2, contentW)
	}
	return fm
}

func (m Model) statusText() string {
	if m.mode == ModeConfirm && m.pendingDelete != nil {
		return fmt.Sprintf("Delete %q by %s? (y/n)", m.pendingDelete.Title, m.pendingDelete.Author)
	}
	if m.statusMsg != "" {
		return m.statusMsg
	}
	if m.loading {
		return "Loading..."
	}

	switch written := summary.Summarize(m.cal.Grid(), m.entries).DaysWritten; written {
	case 0:
		return "No entries in this " + m.cal.Mode.String()
	case 1:
		return "1 day with entries this " + m.cal.Mode.String()
	default:
		return fmt.Sprintf("%d days with entries this %s", written, m.cal.Mode)
	}
}

func (m Model) helpText() string {
	switch m.mode {
	case ModePrompt:
		return "enter save · tab complete partner · esc cancel"
	case ModeConfirm:
		return "y delete · n cancel"
	default:
		return "t today  n/p page  m mode  hjkl move  a add  x delete  y copy  q quit"
	}
}

func (m Model) renderSetup(innerW, innerH int) string {
	var b strings.Builder
	b.WriteString(m.styles.TitleStyle.Render("Welcome to together"))
	b.WriteString("\n\n")
	if m.initState.ConfigMissing {
		fmt.Fprintf(&b, "Config will be written to %s\n", m.initState.ConfigPath)
	}
	if m.initState.DBMissing {
		fmt.Fprintf(&b, "Journal will be created at %s\n", m.initState.DBPath)
	}
	b.WriteString("\nPress enter to continue, q to quit.")
	if m.initError != "" {
		b.WriteString("\n\n")
		b.WriteString(m.styles.ErrorStyle.Render("Error: " + m.initError))
	}

	box := m.styles.SetupStyle.Render(b.String())
	return lipgloss.Place(innerW, innerH, lipgloss.Center, lipgloss.Center, box,
		lipgloss.WithWhitespaceBackground(m.styles.colorBg))
}
