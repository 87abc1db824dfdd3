package tui

import (
	"context"
	"sort"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap/zaptest"

	"github.com/javiermolinar/together/internal/calendar"
	"github.com/javiermolinar/together/internal/config"
	"github.com/javiermolinar/together/internal/journal"
)

// memRepo is an in-memory journal.Repository for model tests.
type memRepo struct {
	nextID  int64
	entries map[int64]*journal.Entry
}

func newMemRepo(entries ...*journal.Entry) *memRepo {
	r := &memRepo{entries: make(map[int64]*journal.Entry)}
	for _, e := range entries {
		_ = r.CreateEntry(context.Background(), e)
	}
	return r
}

func (r *memRepo) CreateEntry(_ context.Context, e *journal.Entry) error {
	r.nextID++
	e.ID = r.nextID
	r.entries[e.ID] = e
	return nil
}

func (r *memRepo) CreateEntries(ctx context.Context, entries []*journal.Entry) error {
	for _, e := range entries {
		if err := r.CreateEntry(ctx, e); err != nil {
			return err
		}
	}
	return nil
}

func (r *memRepo) GetEntry(_ context.Context, id int64) (*journal.Entry, error) {
	e, ok := r.entries[id]
	if !ok {
		return nil, journal.ErrEntryNotFound
	}
	return e, nil
}

func (r *memRepo) UpdateEntry(_ context.Context, id int64, title, body string) error {
	e, ok := r.entries[id]
	if !ok {
		return journal.ErrEntryNotFound
	}
	e.Title, e.Body = title, body
	return nil
}

func (r *memRepo) DeleteEntry(_ context.Context, id int64) error {
	if _, ok := r.entries[id]; !ok {
		return journal.ErrEntryNotFound
	}
	delete(r.entries, id)
	return nil
}

func (r *memRepo) ListEntriesByDateRange(_ context.Context, start, end calendar.Date) ([]*journal.Entry, error) {
	var out []*journal.Entry
	for _, e := range r.entries {
		if !e.Date.Before(start) && !e.Date.After(end) {
			out = append(out, e)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *memRepo) MarkedDates(ctx context.Context, start, end calendar.Date) ([]calendar.Date, error) {
	entries, _ := r.ListEntriesByDateRange(ctx, start, end)
	var out []calendar.Date
	for _, d := range journal.GroupByDate(entries) {
		out = append(out, d.Date)
	}
	return out, nil
}

func (r *memRepo) Close() error { return nil }

var testNow = func() time.Time {
	return time.Date(2024, time.June, 14, 10, 0, 0, 0, time.UTC)
}

func testConfig() *config.Config {
	cfg := config.Default()
	cfg.Couple.Partners = []string{"Ana", "Leo"}
	cfg.Couple.DefaultAuthor = "Ana"
	return cfg
}

// newTestModel builds a model on a fixed clock and applies the initial load.
func newTestModel(t *testing.T, repo journal.Repository, opts ...ModelOption) Model {
	t.Helper()
	opts = append([]ModelOption{WithClock(testNow), WithLogger(zaptest.NewLogger(t))}, opts...)
	m := New(repo, testConfig(), opts...)
	m.width, m.height = 80, 32
	if cmd := m.Init(); cmd != nil {
		m = update(t, m, cmd())
	}
	return m
}

func update(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	updated, _ := m.Update(msg)
	model, ok := updated.(Model)
	if !ok {
		t.Fatalf("Update returned %T", updated)
	}
	return model
}

// press sends a key and runs the resulting command once, feeding its
// message back into the model. Tick commands are not run.
func press(t *testing.T, m Model, key string) (Model, tea.Msg) {
	t.Helper()
	updated, cmd := m.Update(keyMsg(key))
	m = updated.(Model)
	if cmd == nil {
		return m, nil
	}
	msg := cmd()
	if _, ok := msg.(tea.BatchMsg); ok {
		return m, msg
	}
	return update(t, m, msg), msg
}

func keyMsg(key string) tea.KeyMsg {
	switch key {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(key)}
	}
}
