// Package commands provides TUI command constructors and message types.
package commands

import (
	"context"
	"fmt"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/javiermolinar/together/internal/calendar"
	"github.com/javiermolinar/together/internal/journal"
)

// GridLoadedMsg carries the marked dates and entries of a grid's span.
// Start and End identify the span so stale loads can be dropped.
type GridLoadedMsg struct {
	Start   calendar.Date
	End     calendar.Date
	Marks   calendar.MarkSet
	Entries []*journal.Entry
}

// EntrySavedMsg is sent after a new entry is stored.
type EntrySavedMsg struct {
	Entry *journal.Entry
}

// EntryDeletedMsg is sent after an entry is removed.
type EntryDeletedMsg struct {
	ID int64
}

// ErrMsg is sent when an error occurs.
type ErrMsg struct {
	Err error
}

// StatusMsgCmd is sent for temporary status messages.
type StatusMsgCmd struct {
	Msg string
}

// ClearStatusMsg is sent to clear the status message.
type ClearStatusMsg struct{}

// LoadGrid loads marked dates and entries for every day shown by g.
func LoadGrid(repo journal.Repository, g calendar.Grid) tea.Cmd {
	start, end := g.Span()
	return func() tea.Msg {
		if repo == nil {
			return GridLoadedMsg{Start: start, End: end}
		}
		ctx := context.Background()

		entries, err := repo.ListEntriesByDateRange(ctx, start, end)
		if err != nil {
			return ErrMsg{Err: fmt.Errorf("loading entries: %w", err)}
		}

		var marks calendar.MarkSet
		for _, e := range entries {
			marks.Add(e.Date)
		}

		return GridLoadedMsg{Start: start, End: end, Marks: marks, Entries: entries}
	}
}

// SaveEntry stores a new entry.
func SaveEntry(repo journal.Repository, e *journal.Entry) tea.Cmd {
	return func() tea.Msg {
		if repo == nil {
			return ErrMsg{Err: fmt.Errorf("no journal open")}
		}
		if err := repo.CreateEntry(context.Background(), e); err != nil {
			return ErrMsg{Err: fmt.Errorf("saving entry: %w", err)}
		}
		return EntrySavedMsg{Entry: e}
	}
}

// DeleteEntry removes an entry by ID.
func DeleteEntry(repo journal.Repository, id int64) tea.Cmd {
	return func() tea.Msg {
		if repo == nil {
			return ErrMsg{Err: fmt.Errorf("no journal open")}
		}
		if err := repo.DeleteEntry(context.Background(), id); err != nil {
			return ErrMsg{Err: fmt.Errorf("deleting entry: %w", err)}
		}
		return EntryDeletedMsg{ID: id}
	}
}

var (
	defaultClipboardWrite = clipboard.WriteAll
	clipboardWrite        = defaultClipboardWrite
)

// CopyDate copies d as YYYY-MM-DD to the system clipboard.
func CopyDate(d calendar.Date) tea.Cmd {
	return func() tea.Msg {
		if err := clipboardWrite(d.String()); err != nil {
			return ErrMsg{Err: fmt.Errorf("copying to clipboard: %w", err)}
		}
		return StatusMsgCmd{Msg: "Copied " + d.String()}
	}
}
