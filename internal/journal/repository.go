package journal

import (
	"context"

	"github.com/javiermolinar/together/internal/calendar"
)

// Repository defines the storage interface for journal entries.
type Repository interface {
	// CreateEntry adds a new entry and sets its ID.
	CreateEntry(ctx context.Context, e *Entry) error

	// CreateEntries adds multiple entries atomically.
	CreateEntries(ctx context.Context, entries []*Entry) error

	// GetEntry retrieves an entry by ID.
	// Returns ErrEntryNotFound if there is no such entry.
	GetEntry(ctx context.Context, id int64) (*Entry, error)

	// UpdateEntry replaces the title and body of an entry.
	UpdateEntry(ctx context.Context, id int64, title, body string) error

	// DeleteEntry removes an entry.
	DeleteEntry(ctx context.Context, id int64) error

	// ListEntriesByDateRange returns entries dated within the range (inclusive),
	// ordered by date then creation time.
	ListEntriesByDateRange(ctx context.Context, start, end calendar.Date) ([]*Entry, error)

	// MarkedDates returns the distinct dates in the range that have entries.
	MarkedDates(ctx context.Context, start, end calendar.Date) ([]calendar.Date, error)

	// Close releases any resources held by the repository.
	Close() error
}

// LoadMarks collects the marked dates of a range into a calendar.MarkSet.
func LoadMarks(ctx context.Context, repo Repository, start, end calendar.Date) (calendar.MarkSet, error) {
	dates, err := repo.MarkedDates(ctx, start, end)
	if err != nil {
		return calendar.MarkSet{}, err
	}
	return calendar.NewMarkSet(dates...), nil
}
