// Package activity records successful dashboard actions so the recent
// activity panel and the live feed have something to show.
package activity

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/openexhibits/exhibits-admin/internal/db"
)

// Actions recorded in the log.
const (
	ActionCreate    = "create"
	ActionUpdate    = "update"
	ActionDelete    = "delete"
	ActionPublish   = "publish"
	ActionUnpublish = "unpublish"
	ActionUpload    = "upload"
)

// Entry is one logged dashboard action.
type Entry struct {
	ID         string    `json:"id"`
	Username   string    `json:"username"`
	Action     string    `json:"action"`
	RecordType string    `json:"record_type"`
	RecordID   string    `json:"record_id,omitempty"`
	ExhibitID  string    `json:"exhibit_id,omitempty"`
	Summary    string    `json:"summary,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

// Store persists the activity log.
type Store struct {
	db *db.DB
}

// NewStore creates an activity store.
func NewStore(database *db.DB) *Store {
	return &Store{db: database}
}

// Record appends an entry and returns it with id and timestamp filled in.
func (s *Store) Record(ctx context.Context, e Entry) (Entry, error) {
	e.ID = uuid.NewString()
	e.CreatedAt = time.Now().UTC()

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO activity (id, username, action, record_type, record_id, exhibit_id, summary, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		e.ID, e.Username, e.Action, e.RecordType, e.RecordID, e.ExhibitID, e.Summary,
		e.CreatedAt.Format(time.RFC3339))
	if err != nil {
		return Entry{}, fmt.Errorf("recording activity: %w", err)
	}
	return e, nil
}

// Recent returns the newest entries, most recent first.
func (s *Store) Recent(ctx context.Context, limit int) ([]Entry, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, username, action, record_type, record_id, exhibit_id, summary, created_at
		FROM activity ORDER BY created_at DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("listing activity: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var e Entry
		var created string
		if err := rows.Scan(&e.ID, &e.Username, &e.Action, &e.RecordType, &e.RecordID,
			&e.ExhibitID, &e.Summary, &created); err != nil {
			return nil, fmt.Errorf("scanning activity: %w", err)
		}
		e.CreatedAt, _ = time.Parse(time.RFC3339, created)
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// Count returns the total number of logged entries.
func (s *Store) Count(ctx context.Context) (int, error) {
	var n int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM activity`).Scan(&n); err != nil {
		return 0, fmt.Errorf("counting activity: %w", err)
	}
	return n, nil
}
