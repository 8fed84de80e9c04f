package db

import "fmt"

// migrate runs database migrations.
func (s *Store) migrate() error {
	query := `
		CREATE TABLE IF NOT EXISTS selections (
			id         INTEGER PRIMARY KEY AUTOINCREMENT,
			start_date DATE NOT NULL,
			end_date   DATE NOT NULL,
			picked_at  DATETIME DEFAULT CURRENT_TIMESTAMP,
			CHECK (end_date >= start_date)
		);

		CREATE INDEX IF NOT EXISTS idx_selections_picked ON selections(picked_at);
	`

	if _, err := s.db.Exec(query); err != nil {
		return fmt.Errorf("creating selections table: %w", err)
	}

	return nil
}
