package tui

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/javiermolinar/together/internal/tui/commands"
)

const (
	statusTTL = 3 * time.Second
	errorTTL  = 5 * time.Second
)

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyMsg(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case commands.GridLoadedMsg:
		start, end := m.cal.Range()
		if !msg.Start.Equal(start) || !msg.End.Equal(end) {
			// A newer navigation superseded this load.
			m.log.Debug("dropping stale load", zap.Stringer("start", msg.Start), zap.Stringer("end", msg.End))
			return m, nil
		}
		m.marks = msg.Marks
		m.entries = msg.Entries
		m.loadedStart = msg.Start
		m.loadedEnd = msg.End
		m.loading = false
		return m, nil

	case commands.EntrySavedMsg:
		m.log.Info("entry saved", zap.Int64("id", msg.Entry.ID), zap.Stringer("date", msg.Entry.Date))
		m.setStatus(fmt.Sprintf("Saved: %s", msg.Entry.Title))
		cmd := m.reload()
		return m, tea.Batch(cmd, clearStatusAfter(statusTTL))

	case commands.EntryDeletedMsg:
		m.log.Info("entry deleted", zap.Int64("id", msg.ID))
		m.setStatus(fmt.Sprintf("Deleted entry #%d", msg.ID))
		cmd := m.reload()
		return m, tea.Batch(cmd, clearStatusAfter(statusTTL))

	case commands.ErrMsg:
		m.log.Error("command failed", zap.Error(msg.Err))
		m.loading = false
		m.setError(msg.Err)
		return m, clearStatusAfter(errorTTL)

	case commands.StatusMsgCmd:
		m.setStatus(msg.Msg)
		return m, clearStatusAfter(statusTTL)

	case commands.ClearStatusMsg:
		if !m.now().Before(m.statusTime) {
			m.statusMsg = ""
			m.statusErr = false
		}
		return m, nil
	}

	// Cursor blink and other textinput messages.
	if m.mode == ModePrompt {
		var cmd tea.Cmd
		m.prompt, cmd = m.prompt.Update(msg)
		return m, cmd
	}

	return m, nil
}

// reload fetches marks and entries for the current grid.
func (m *Model) reload() tea.Cmd {
	m.loading = true
	return commands.LoadGrid(m.repo, m.cal.Grid())
}

func (m *Model) setStatus(s string) {
	m.statusMsg = s
	m.statusErr = false
	m.statusTime = m.now().Add(statusTTL)
}

func (m *Model) setError(err error) {
	m.err = err
	m.statusMsg = fmt.Sprintf("Error: %v", err)
	m.statusErr = true
	m.statusTime = m.now().Add(errorTTL)
}

func clearStatusAfter(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return commands.ClearStatusMsg{}
	})
}
