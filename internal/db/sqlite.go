// Package db provides SQLite storage for journal entries.
package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"
	_ "modernc.org/sqlite" // SQLite driver

	"github.com/javiermolinar/together/internal/calendar"
	"github.com/javiermolinar/together/internal/journal"
)

const dateLayout = time.DateOnly

// SQLite implements journal.Repository using SQLite.
type SQLite struct {
	db  *sql.DB
	log *zap.Logger
}

// Option configures a SQLite repository.
type Option func(*SQLite)

// WithLogger attaches a logger. The default discards everything.
func WithLogger(l *zap.Logger) Option {
	return func(s *SQLite) {
		if l != nil {
			s.log = l.Named("db")
		}
	}
}

// New creates a new SQLite repository and runs migrations.
func New(path string, opts ...Option) (*SQLite, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("connecting to database: %w", err)
	}

	s := &SQLite{db: db, log: zap.NewNop()}
	for _, opt := range opts {
		opt(s)
	}
	if err := s.migrate(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}

	s.log.Debug("database opened", zap.String("path", path))
	return s, nil
}

const insertEntry = `
	INSERT INTO entries (entry_date, author, title, body, created_at, updated_at)
	VALUES (?, ?, ?, ?, ?, ?)
`

const selectEntry = `
	SELECT id, entry_date, author, title, body, created_at, updated_at
	FROM entries
`

// CreateEntry adds a new entry to the repository.
func (s *SQLite) CreateEntry(ctx context.Context, e *journal.Entry) error {
	result, err := s.db.ExecContext(ctx, insertEntry, entryArgs(e)...)
	if err != nil {
		return fmt.Errorf("inserting entry: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("getting last insert id: %w", err)
	}
	e.ID = id

	s.log.Debug("entry created", zap.Int64("id", id), zap.Stringer("date", e.Date))
	return nil
}

// CreateEntries adds multiple entries in a single transaction.
func (s *SQLite) CreateEntries(ctx context.Context, entries []*journal.Entry) error {
	if len(entries) == 0 {
		return nil
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	stmt, err := tx.PrepareContext(ctx, insertEntry)
	if err != nil {
		return fmt.Errorf("preparing statement: %w", err)
	}
	defer func() { _ = stmt.Close() }()

	ids := make([]int64, len(entries))
	for i, e := range entries {
		result, err := stmt.ExecContext(ctx, entryArgs(e)...)
		if err != nil {
			return fmt.Errorf("inserting entry %q: %w", e.Title, err)
		}
		ids[i], err = result.LastInsertId()
		if err != nil {
			return fmt.Errorf("getting last insert id: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing transaction: %w", err)
	}

	for i, e := range entries {
		e.ID = ids[i]
	}
	s.log.Debug("entries created", zap.Int("count", len(entries)))
	return nil
}

// GetEntry retrieves an entry by ID.
func (s *SQLite) GetEntry(ctx context.Context, id int64) (*journal.Entry, error) {
	row := s.db.QueryRowContext(ctx, selectEntry+` WHERE id = ?`, id)
	e, err := scanEntry(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: #%d", journal.ErrEntryNotFound, id)
	}
	if err != nil {
		return nil, fmt.Errorf("querying entry: %w", err)
	}
	return e, nil
}

// UpdateEntry replaces the title and body of an entry. The title is
// normalized the same way journal.New does it.
func (s *SQLite) UpdateEntry(ctx context.Context, id int64, title, body string) error {
	title, err := journal.NormalizeTitle(title)
	if err != nil {
		return err
	}

	query := `UPDATE entries SET title = ?, body = ?, updated_at = ? WHERE id = ?`
	result, err := s.db.ExecContext(ctx, query, title, strings.TrimSpace(body), time.Now().Format(time.RFC3339), id)
	if err != nil {
		return fmt.Errorf("updating entry: %w", err)
	}
	return requireRow(result, id)
}

// DeleteEntry removes an entry.
func (s *SQLite) DeleteEntry(ctx context.Context, id int64) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM entries WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting entry: %w", err)
	}
	if err := requireRow(result, id); err != nil {
		return err
	}
	s.log.Debug("entry deleted", zap.Int64("id", id))
	return nil
}

// ListEntriesByDateRange returns all entries dated within the range (inclusive).
func (s *SQLite) ListEntriesByDateRange(ctx context.Context, start, end calendar.Date) ([]*journal.Entry, error) {
	query := selectEntry + `
		WHERE entry_date >= ? AND entry_date <= ?
		ORDER BY entry_date, created_at, id
	`

	rows, err := s.db.QueryContext(ctx, query, start.String(), end.String())
	if err != nil {
		return nil, fmt.Errorf("querying entries: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var entries []*journal.Entry
	for rows.Next() {
		e, err := scanEntry(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning entry: %w", err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating entries: %w", err)
	}

	return entries, nil
}

// MarkedDates returns the distinct dates within the range that have entries.
func (s *SQLite) MarkedDates(ctx context.Context, start, end calendar.Date) ([]calendar.Date, error) {
	query := `
		SELECT DISTINCT entry_date
		FROM entries
		WHERE entry_date >= ? AND entry_date <= ?
		ORDER BY entry_date
	`

	rows, err := s.db.QueryContext(ctx, query, start.String(), end.String())
	if err != nil {
		return nil, fmt.Errorf("querying marked dates: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var dates []calendar.Date
	for rows.Next() {
		var raw string
		if err := rows.Scan(&raw); err != nil {
			return nil, fmt.Errorf("scanning date: %w", err)
		}
		d, err := parseDate(raw)
		if err != nil {
			return nil, fmt.Errorf("parsing entry date: %w", err)
		}
		dates = append(dates, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating dates: %w", err)
	}

	return dates, nil
}

// Close releases database resources.
func (s *SQLite) Close() error {
	return s.db.Close()
}

type scanner interface {
	Scan(dest ...any) error
}

func scanEntry(sc scanner) (*journal.Entry, error) {
	var (
		e         journal.Entry
		entryDate string
		createdAt string
		updatedAt string
	)
	if err := sc.Scan(&e.ID, &entryDate, &e.Author, &e.Title, &e.Body, &createdAt, &updatedAt); err != nil {
		return nil, err
	}

	var err error
	if e.Date, err = parseDate(entryDate); err != nil {
		return nil, fmt.Errorf("parsing entry date: %w", err)
	}
	if e.CreatedAt, err = time.Parse(time.RFC3339, createdAt); err != nil {
		return nil, fmt.Errorf("parsing created at: %w", err)
	}
	if e.UpdatedAt, err = time.Parse(time.RFC3339, updatedAt); err != nil {
		return nil, fmt.Errorf("parsing updated at: %w", err)
	}
	return &e, nil
}

func entryArgs(e *journal.Entry) []any {
	return []any{
		e.Date.String(),
		e.Author,
		e.Title,
		e.Body,
		e.CreatedAt.Format(time.RFC3339),
		e.UpdatedAt.Format(time.RFC3339),
	}
}

func requireRow(result sql.Result, id int64) error {
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking affected rows: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("%w: #%d", journal.ErrEntryNotFound, id)
	}
	return nil
}

// parseDate accepts the plain YYYY-MM-DD form and the timestamp form some
// SQLite drivers return for date-like text.
func parseDate(s string) (calendar.Date, error) {
	if len(s) >= len(dateLayout) {
		if d, err := calendar.ParseDate(s[:len(dateLayout)]); err == nil {
			return d, nil
		}
	}
	return calendar.Date{}, fmt.Errorf("unrecognized date format: %s", s)
}
