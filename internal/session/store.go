// Package session keeps the operator's backend credentials between page
// loads. Each signed-in operator holds one session row carrying the
// exhibits access token and username, keyed by the dashboard cookie.
package session

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/openexhibits/exhibits-admin/internal/db"
)

// ErrNotFound is returned for missing or expired sessions.
var ErrNotFound = errors.New("session not found")

// Session is one signed-in operator.
type Session struct {
	ID        string
	Token     string
	Username  string
	ExpiresAt time.Time
}

// Store persists sessions and their form drafts in SQLite.
type Store struct {
	db  *db.DB
	ttl time.Duration
}

// NewStore creates a session store. Sessions expire ttl after creation.
func NewStore(database *db.DB, ttl time.Duration) *Store {
	return &Store{db: database, ttl: ttl}
}

// Create starts a session for a freshly authenticated operator.
func (s *Store) Create(ctx context.Context, token, username string) (*Session, error) {
	sess := &Session{
		ID:        uuid.NewString(),
		Token:     token,
		Username:  username,
		ExpiresAt: time.Now().Add(s.ttl).UTC(),
	}

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO sessions (id, token, username, expires_at) VALUES (?, ?, ?, ?)`,
		sess.ID, sess.Token, sess.Username, sess.ExpiresAt.Format(time.RFC3339))
	if err != nil {
		return nil, fmt.Errorf("creating session: %w", err)
	}
	return sess, nil
}

// Get looks up a live session. Expired rows are removed on sight.
func (s *Store) Get(ctx context.Context, id string) (*Session, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id, token, username, expires_at FROM sessions WHERE id = ?`, id)

	var sess Session
	var expires string
	if err := row.Scan(&sess.ID, &sess.Token, &sess.Username, &expires); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("loading session: %w", err)
	}

	var err error
	sess.ExpiresAt, err = time.Parse(time.RFC3339, expires)
	if err != nil {
		return nil, fmt.Errorf("parsing session expiry: %w", err)
	}
	if time.Now().After(sess.ExpiresAt) {
		_ = s.Delete(ctx, id)
		return nil, ErrNotFound
	}
	return &sess, nil
}

// Delete ends a session and, via cascade, discards its drafts.
func (s *Store) Delete(ctx context.Context, id string) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM sessions WHERE id = ?`, id); err != nil {
		return fmt.Errorf("deleting session: %w", err)
	}
	return nil
}

// PurgeExpired removes all expired session rows.
func (s *Store) PurgeExpired(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx,
		`DELETE FROM sessions WHERE expires_at < ?`, time.Now().UTC().Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("purging sessions: %w", err)
	}
	return nil
}

// SetFlash stores a one-shot status message shown after the next redirect.
func (s *Store) SetFlash(ctx context.Context, id, message string) error {
	_, err := s.db.ExecContext(ctx, `UPDATE sessions SET flash = ? WHERE id = ?`, message, id)
	if err != nil {
		return fmt.Errorf("setting flash: %w", err)
	}
	return nil
}

// PopFlash returns and clears the pending status message.
func (s *Store) PopFlash(ctx context.Context, id string) (string, error) {
	row := s.db.QueryRowContext(ctx, `SELECT flash FROM sessions WHERE id = ?`, id)

	var flash string
	if err := row.Scan(&flash); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", nil
		}
		return "", fmt.Errorf("loading flash: %w", err)
	}
	if flash != "" {
		if _, err := s.db.ExecContext(ctx, `UPDATE sessions SET flash = '' WHERE id = ?`, id); err != nil {
			return "", fmt.Errorf("clearing flash: %w", err)
		}
	}
	return flash, nil
}

// SaveDraft stores an in-progress form payload for the session. Drafts are
// purely local and never sent to the backend.
func (s *Store) SaveDraft(ctx context.Context, sessionID, formKey, payload string) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO drafts (session_id, form_key, payload, updated_at)
		VALUES (?, ?, ?, datetime('now'))
		ON CONFLICT(session_id, form_key)
		DO UPDATE SET payload = excluded.payload, updated_at = datetime('now')`,
		sessionID, formKey, payload)
	if err != nil {
		return fmt.Errorf("saving draft: %w", err)
	}
	return nil
}

// Draft returns the stored payload for a form, or "" when none exists.
func (s *Store) Draft(ctx context.Context, sessionID, formKey string) (string, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT payload FROM drafts WHERE session_id = ? AND form_key = ?`, sessionID, formKey)

	var payload string
	if err := row.Scan(&payload); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", nil
		}
		return "", fmt.Errorf("loading draft: %w", err)
	}
	return payload, nil
}

// DeleteDraft discards a stored draft, typically after a successful save.
func (s *Store) DeleteDraft(ctx context.Context, sessionID, formKey string) error {
	_, err := s.db.ExecContext(ctx,
		`DELETE FROM drafts WHERE session_id = ? AND form_key = ?`, sessionID, formKey)
	if err != nil {
		return fmt.Errorf("deleting draft: %w", err)
	}
	return nil
}
