// Package db provides SQLite storage for picked ranges.
package db

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/tomaslara/rangepick/internal/dateutil"
)

// Selection is one confirmed range pick.
type Selection struct {
	ID       int64
	Range    dateutil.DateRange
	PickedAt time.Time
}

// Store records confirmed selections in SQLite.
type Store struct {
	db *sql.DB
}

// Open creates a Store at path and runs migrations. Parent directories
// are created as needed.
func Open(path string) (*Store, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("creating database directory: %w", err)
		}
	}

	database, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	if err := database.Ping(); err != nil {
		return nil, fmt.Errorf("connecting to database: %w", err)
	}

	s := &Store{db: database}
	if err := s.migrate(); err != nil {
		return nil, fmt.Errorf("running migrations: %w", err)
	}

	return s, nil
}

// RecordSelection stores a confirmed range.
func (s *Store) RecordSelection(ctx context.Context, r dateutil.DateRange) (int64, error) {
	query := `
		INSERT INTO selections (start_date, end_date, picked_at)
		VALUES (?, ?, ?)
	`
	layout := dateutil.Layout(dateutil.DefaultFormat)
	result, err := s.db.ExecContext(ctx, query,
		r.Start.Format(layout),
		r.End.Format(layout),
		time.Now().Format(time.RFC3339),
	)
	if err != nil {
		return 0, fmt.Errorf("inserting selection: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("getting last insert id: %w", err)
	}
	return id, nil
}

// RecentSelections returns the most recent picks, newest first.
func (s *Store) RecentSelections(ctx context.Context, limit int) ([]Selection, error) {
	if limit <= 0 {
		limit = 20
	}
	query := `
		SELECT id, start_date, end_date, picked_at
		FROM selections
		ORDER BY picked_at DESC, id DESC
		LIMIT ?
	`
	rows, err := s.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("querying selections: %w", err)
	}
	defer rows.Close()

	layout := dateutil.Layout(dateutil.DefaultFormat)
	var out []Selection
	for rows.Next() {
		var (
			sel       Selection
			startRaw  string
			endRaw    string
			pickedRaw string
		)
		if err := rows.Scan(&sel.ID, &startRaw, &endRaw, &pickedRaw); err != nil {
			return nil, fmt.Errorf("scanning selection: %w", err)
		}

		start, err := time.Parse(layout, startRaw)
		if err != nil {
			return nil, fmt.Errorf("parsing start date %q: %w", startRaw, err)
		}
		end, err := time.Parse(layout, endRaw)
		if err != nil {
			return nil, fmt.Errorf("parsing end date %q: %w", endRaw, err)
		}
		sel.Range, err = dateutil.NewDateRange(start, end)
		if err != nil {
			return nil, fmt.Errorf("stored range %s..%s: %w", startRaw, endRaw, err)
		}

		if sel.PickedAt, err = time.Parse(time.RFC3339, pickedRaw); err != nil {
			return nil, fmt.Errorf("parsing picked_at %q: %w", pickedRaw, err)
		}
		out = append(out, sel)
	}
	return out, rows.Err()
}

// ClearHistory deletes all recorded selections.
func (s *Store) ClearHistory(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM selections`); err != nil {
		return fmt.Errorf("clearing selections: %w", err)
	}
	return nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}
