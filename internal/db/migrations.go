package db

import "fmt"

// migrate runs database migrations.
func (s *SQLite) migrate() error {
	query := `
		CREATE TABLE IF NOT EXISTS entries (
			id          INTEGER PRIMARY KEY AUTOINCREMENT,
			entry_date  TEXT NOT NULL,
			author      TEXT NOT NULL,
			title       TEXT NOT NULL,
			body        TEXT NOT NULL DEFAULT '',
			created_at  TEXT NOT NULL,
			updated_at  TEXT NOT NULL
		);

		CREATE INDEX IF NOT EXISTS idx_entries_date ON entries(entry_date);
	`

	if _, err := s.db.Exec(query); err != nil {
		return fmt.Errorf("creating entries table: %w", err)
	}

	s.log.Debug("migrations applied")
	return nil
}
