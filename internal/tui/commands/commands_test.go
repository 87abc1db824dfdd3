package commands

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/javiermolinar/together/internal/calendar"
	"github.com/javiermolinar/together/internal/journal"
)

type fakeRepo struct {
	entriesByRange func(start, end calendar.Date) ([]*journal.Entry, error)
	created        []*journal.Entry
	deleted        []int64
	failWrites     bool
}

func (f *fakeRepo) CreateEntry(_ context.Context, e *journal.Entry) error {
	if f.failWrites {
		return errors.New("disk full")
	}
	e.ID = int64(len(f.created) + 1)
	f.created = append(f.created, e)
	return nil
}

func (f *fakeRepo) CreateEntries(_ context.Context, _ []*journal.Entry) error {
	return errors.New("not implemented")
}

func (f *fakeRepo) GetEntry(_ context.Context, _ int64) (*journal.Entry, error) {
	return nil, errors.New("not implemented")
}

func (f *fakeRepo) UpdateEntry(_ context.Context, _ int64, _, _ string) error {
	return errors.New("not implemented")
}

func (f *fakeRepo) DeleteEntry(_ context.Context, id int64) error {
	if f.failWrites {
		return journal.ErrEntryNotFound
	}
	f.deleted = append(f.deleted, id)
	return nil
}

func (f *fakeRepo) ListEntriesByDateRange(_ context.Context, start, end calendar.Date) ([]*journal.Entry, error) {
	if f.entriesByRange == nil {
		return nil, errors.New("not implemented")
	}
	return f.entriesByRange(start, end)
}

func (f *fakeRepo) MarkedDates(_ context.Context, _, _ calendar.Date) ([]calendar.Date, error) {
	return nil, errors.New("not implemented")
}

func (f *fakeRepo) Close() error { return nil }

func TestLoadGridReturnsGridLoadedMsg(t *testing.T) {
	feb14 := calendar.NewDate(2024, time.February, 14)
	g := calendar.BuildMonthGrid(feb14)
	wantStart, wantEnd := g.Span()

	var gotStart, gotEnd calendar.Date
	repo := &fakeRepo{
		entriesByRange: func(start, end calendar.Date) ([]*journal.Entry, error) {
			gotStart, gotEnd = start, end
			return []*journal.Entry{
				{ID: 1, Date: feb14, Title: "Valentine"},
				{ID: 2, Date: calendar.NewDate(2024, time.March, 2), Title: "Filler day"},
			}, nil
		},
	}

	msg := LoadGrid(repo, g)()
	loaded, ok := msg.(GridLoadedMsg)
	if !ok {
		t.Fatalf("expected GridLoadedMsg, got %T", msg)
	}
	if !gotStart.Equal(wantStart) || !gotEnd.Equal(wantEnd) {
		t.Errorf("queried %s..%s, want %s..%s", gotStart, gotEnd, wantStart, wantEnd)
	}
	if !loaded.Start.Equal(wantStart) || !loaded.End.Equal(wantEnd) {
		t.Errorf("message span %s..%s", loaded.Start, loaded.End)
	}
	if loaded.Marks.Len() != 2 || !loaded.Marks.Has(feb14) {
		t.Errorf("unexpected marks (%d)", loaded.Marks.Len())
	}
	if len(loaded.Entries) != 2 {
		t.Errorf("got %d entries, want 2", len(loaded.Entries))
	}
}

func TestLoadGridReturnsErrMsg(t *testing.T) {
	repo := &fakeRepo{
		entriesByRange: func(_, _ calendar.Date) ([]*journal.Entry, error) {
			return nil, errors.New("boom")
		},
	}
	msg := LoadGrid(repo, calendar.BuildWeekGrid(calendar.NewDate(2024, 1, 1)))()
	if _, ok := msg.(ErrMsg); !ok {
		t.Fatalf("expected ErrMsg, got %T", msg)
	}
}

func TestLoadGridWithoutRepo(t *testing.T) {
	msg := LoadGrid(nil, calendar.BuildWeekGrid(calendar.NewDate(2024, 1, 1)))()
	loaded, ok := msg.(GridLoadedMsg)
	if !ok {
		t.Fatalf("expected GridLoadedMsg, got %T", msg)
	}
	if loaded.Marks.Len() != 0 {
		t.Error("expected no marks without a repository")
	}
}

func TestSaveEntry(t *testing.T) {
	repo := &fakeRepo{}
	e := &journal.Entry{Title: "Hello", Date: calendar.NewDate(2024, 5, 5)}

	msg := SaveEntry(repo, e)()
	saved, ok := msg.(EntrySavedMsg)
	if !ok {
		t.Fatalf("expected EntrySavedMsg, got %T", msg)
	}
	if saved.Entry.ID != 1 || len(repo.created) != 1 {
		t.Errorf("entry not stored: %+v", saved.Entry)
	}

	repo.failWrites = true
	if _, ok := SaveEntry(repo, e)().(ErrMsg); !ok {
		t.Error("expected ErrMsg on write failure")
	}
	if _, ok := SaveEntry(nil, e)().(ErrMsg); !ok {
		t.Error("expected ErrMsg without repository")
	}
}

func TestDeleteEntry(t *testing.T) {
	repo := &fakeRepo{}
	msg := DeleteEntry(repo, 7)()
	if deleted, ok := msg.(EntryDeletedMsg); !ok || deleted.ID != 7 {
		t.Fatalf("expected EntryDeletedMsg{7}, got %#v", msg)
	}

	repo.failWrites = true
	errMsg, ok := DeleteEntry(repo, 8)().(ErrMsg)
	if !ok || !errors.Is(errMsg.Err, journal.ErrEntryNotFound) {
		t.Errorf("expected wrapped not found error, got %#v", errMsg)
	}
}

func TestCopyDate(t *testing.T) {
	var copied string
	clipboardWrite = func(s string) error {
		copied = s
		return nil
	}
	t.Cleanup(func() { clipboardWrite = defaultClipboardWrite })

	msg := CopyDate(calendar.NewDate(2024, 6, 14))()
	status, ok := msg.(StatusMsgCmd)
	if !ok {
		t.Fatalf("expected StatusMsgCmd, got %T", msg)
	}
	if copied != "2024-06-14" || status.Msg != "Copied 2024-06-14" {
		t.Errorf("copied %q, status %q", copied, status.Msg)
	}

	clipboardWrite = func(string) error { return errors.New("no clipboard") }
	if _, ok := CopyDate(calendar.NewDate(2024, 6, 14))().(ErrMsg); !ok {
		t.Error("expected ErrMsg when clipboard fails")
	}
}
