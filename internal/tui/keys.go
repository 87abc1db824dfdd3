package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/javiermolinar/together/internal/calendar"
	"github.com/javiermolinar/together/internal/journal"
	"github.com/javiermolinar/together/internal/tui/commands"
	"github.com/javiermolinar/together/internal/tui/input"
)

// handleKeyMsg handles keyboard input.
func (m Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.log.Debug("key", zap.String("key", msg.String()), zap.Stringer("mode", m.mode))

	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	switch m.mode {
	case ModePrompt:
		return m.handlePromptKeys(msg)
	case ModeConfirm:
		return m.handleConfirmKeys(msg)
	case ModeSetup:
		return m.handleSetupKeys(msg)
	default:
		return m.handleNormalKeys(msg)
	}
}

// handleNormalKeys handles keys in normal mode.
func (m Model) handleNormalKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		return m, tea.Quit

	// Grid navigation
	case "t":
		return m.navigate(m.cal.Today(m.now), "today")
	case "n", "]":
		return m.navigate(m.cal.Next(), "next")
	case "p", "[":
		return m.navigate(m.cal.Previous(), "previous")
	case "m":
		return m.navigate(m.cal.ToggleMode(), "toggle_mode")

	// Selection
	case "h", "left":
		return m.navigate(m.cal.MoveSelection(-1), "select")
	case "l", "right":
		return m.navigate(m.cal.MoveSelection(1), "select")
	case "k", "up":
		return m.navigate(m.cal.MoveSelection(-calendar.DaysPerWeek), "select")
	case "j", "down":
		return m.navigate(m.cal.MoveSelection(calendar.DaysPerWeek), "select")

	// Actions
	case "a":
		m.mode = ModePrompt
		m.prompt.SetValue("")
		m.prompt.Focus()
		return m, textinput.Blink
	case "x":
		entries := m.SelectedEntries()
		if len(entries) == 0 {
			m.setStatus("Nothing to delete on " + m.cal.Selected.String())
			return m, nil
		}
		m.pendingDelete = entries[len(entries)-1]
		m.mode = ModeConfirm
		return m, nil
	case "y":
		return m, commands.CopyDate(m.cal.Selected)
	}

	return m, nil
}

// navigate installs the next calendar state and reloads marks when the
// displayed span changed.
func (m Model) navigate(next calendar.View, action string) (tea.Model, tea.Cmd) {
	m.cal = next
	m.log.Debug("navigate",
		zap.String("action", action),
		zap.Stringer("reference", next.Reference),
		zap.Stringer("selected", next.Selected),
		zap.Stringer("mode", next.Mode),
	)

	start, end := next.Range()
	if start.Equal(m.loadedStart) && end.Equal(m.loadedEnd) {
		return m, nil
	}
	m.loading = true
	return m, commands.LoadGrid(m.repo, next.Grid())
}

// handlePromptKeys handles keys while typing a new entry.
func (m Model) handlePromptKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m = m.closePrompt()
		return m, nil

	case "enter":
		value := m.prompt.Value()
		m = m.closePrompt()
		return m.submitEntry(value)

	case "tab":
		if completion, ok := input.AutocompletePartner(m.prompt.Value(), m.config.Couple.Partners); ok {
			m.prompt.SetValue(completion)
			m.prompt.CursorEnd()
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.prompt, cmd = m.prompt.Update(msg)
	return m, cmd
}

func (m Model) closePrompt() Model {
	m.mode = ModeNormal
	m.prompt.Blur()
	m.prompt.SetValue("")
	return m
}

// submitEntry validates the prompt line and saves it for the selected day.
func (m Model) submitEntry(value string) (tea.Model, tea.Cmd) {
	in := input.ParseEntry(value)
	if in.Title == "" && in.Author == "" {
		return m, nil
	}

	author := in.Author
	if author == "" {
		author = m.config.Couple.DefaultAuthor
	}
	e, err := journal.New(author, in.Title, in.Body, m.cal.Selected, m.config.Couple.Partners)
	if err != nil {
		m.setError(err)
		return m, nil
	}
	return m, commands.SaveEntry(m.repo, e)
}

// handleConfirmKeys handles the delete confirmation.
func (m Model) handleConfirmKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "enter":
		e := m.pendingDelete
		m.pendingDelete = nil
		m.mode = ModeNormal
		if e == nil {
			return m, nil
		}
		return m, commands.DeleteEntry(m.repo, e.ID)
	case "n", "esc", "q":
		m.pendingDelete = nil
		m.mode = ModeNormal
		return m, nil
	}
	return m, nil
}

// handleSetupKeys handles the first-run screen.
func (m Model) handleSetupKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "esc":
		return m, tea.Quit
	case "enter", "y":
		updated, err := m.initializeStorage()
		if err != nil {
			m.initError = err.Error()
			m.log.Error("initialization failed", zap.Error(err))
			return m, nil
		}
		updated.mode = ModeNormal
		updated.initError = ""
		updated.setStatus(fmt.Sprintf("Journal ready at %s", m.initState.DBPath))
		updated.loading = true
		return updated, commands.LoadGrid(updated.repo, updated.cal.Grid())
	}
	return m, nil
}
