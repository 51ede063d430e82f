package session

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/openexhibits/exhibits-admin/internal/db"
)

func testStore(t *testing.T, ttl time.Duration) *Store {
	t.Helper()
	database, err := db.OpenMemory()
	if err != nil {
		t.Fatalf("opening database: %v", err)
	}
	t.Cleanup(func() { database.Close() })
	return NewStore(database, ttl)
}

func TestCreateAndGet(t *testing.T) {
	store := testStore(t, time.Hour)
	ctx := context.Background()

	sess, err := store.Create(ctx, "tok-1", "curator")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if sess.ID == "" {
		t.Fatal("session id should be set")
	}

	got, err := store.Get(ctx, sess.ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.Token != "tok-1" || got.Username != "curator" {
		t.Errorf("session: %+v", got)
	}
}

func TestGetMissingSession(t *testing.T) {
	store := testStore(t, time.Hour)

	_, err := store.Get(context.Background(), "nope")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestExpiredSessionIsRemoved(t *testing.T) {
	store := testStore(t, -time.Minute)
	ctx := context.Background()

	sess, err := store.Create(ctx, "tok", "curator")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	if _, err := store.Get(ctx, sess.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound for expired session, got %v", err)
	}
}

func TestGetCorruptExpiryReturnsError(t *testing.T) {
	store := testStore(t, time.Hour)
	ctx := context.Background()

	sess, err := store.Create(ctx, "tok", "curator")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if _, err := store.db.ExecContext(ctx,
		`UPDATE sessions SET expires_at = 'garbage' WHERE id = ?`, sess.ID); err != nil {
		t.Fatalf("corrupting row: %v", err)
	}

	_, err = store.Get(ctx, sess.ID)
	if err == nil {
		t.Fatal("expected error for corrupt expiry")
	}
	if errors.Is(err, ErrNotFound) {
		t.Error("corrupt expiry should not read as a missing session")
	}
}

func TestDelete(t *testing.T) {
	store := testStore(t, time.Hour)
	ctx := context.Background()

	sess, _ := store.Create(ctx, "tok", "curator")
	if err := store.Delete(ctx, sess.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := store.Get(ctx, sess.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound after delete, got %v", err)
	}
}

func TestPurgeExpired(t *testing.T) {
	store := testStore(t, -time.Minute)
	ctx := context.Background()

	if _, err := store.Create(ctx, "tok", "curator"); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if err := store.PurgeExpired(ctx); err != nil {
		t.Fatalf("PurgeExpired: %v", err)
	}

	var n int
	if err := store.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM sessions`).Scan(&n); err != nil {
		t.Fatalf("counting sessions: %v", err)
	}
	if n != 0 {
		t.Errorf("expected 0 sessions after purge, got %d", n)
	}
}

func TestFlashIsOneShot(t *testing.T) {
	store := testStore(t, time.Hour)
	ctx := context.Background()

	sess, _ := store.Create(ctx, "tok", "curator")
	if err := store.SetFlash(ctx, sess.ID, "Exhibit saved"); err != nil {
		t.Fatalf("SetFlash: %v", err)
	}

	flash, err := store.PopFlash(ctx, sess.ID)
	if err != nil {
		t.Fatalf("PopFlash: %v", err)
	}
	if flash != "Exhibit saved" {
		t.Errorf("flash: got %q", flash)
	}

	flash, err = store.PopFlash(ctx, sess.ID)
	if err != nil {
		t.Fatalf("second PopFlash: %v", err)
	}
	if flash != "" {
		t.Errorf("flash should be cleared after pop, got %q", flash)
	}
}

func TestDraftRoundTrip(t *testing.T) {
	store := testStore(t, time.Hour)
	ctx := context.Background()

	sess, _ := store.Create(ctx, "tok", "curator")

	if err := store.SaveDraft(ctx, sess.ID, "exhibit:new", `{"title":"wip"}`); err != nil {
		t.Fatalf("SaveDraft: %v", err)
	}

	payload, err := store.Draft(ctx, sess.ID, "exhibit:new")
	if err != nil {
		t.Fatalf("Draft: %v", err)
	}
	if payload != `{"title":"wip"}` {
		t.Errorf("payload: got %q", payload)
	}

	// Saving again overwrites rather than duplicating.
	if err := store.SaveDraft(ctx, sess.ID, "exhibit:new", `{"title":"wip 2"}`); err != nil {
		t.Fatalf("second SaveDraft: %v", err)
	}
	payload, _ = store.Draft(ctx, sess.ID, "exhibit:new")
	if payload != `{"title":"wip 2"}` {
		t.Errorf("payload after upsert: got %q", payload)
	}

	if err := store.DeleteDraft(ctx, sess.ID, "exhibit:new"); err != nil {
		t.Fatalf("DeleteDraft: %v", err)
	}
	payload, err = store.Draft(ctx, sess.ID, "exhibit:new")
	if err != nil {
		t.Fatalf("Draft after delete: %v", err)
	}
	if payload != "" {
		t.Errorf("expected no draft, got %q", payload)
	}
}

func TestDraftsCascadeWithSession(t *testing.T) {
	store := testStore(t, time.Hour)
	ctx := context.Background()

	sess, _ := store.Create(ctx, "tok", "curator")
	if err := store.SaveDraft(ctx, sess.ID, "heading:new", `{}`); err != nil {
		t.Fatalf("SaveDraft: %v", err)
	}

	if err := store.Delete(ctx, sess.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}

	payload, err := store.Draft(ctx, sess.ID, "heading:new")
	if err != nil {
		t.Fatalf("Draft: %v", err)
	}
	if payload != "" {
		t.Errorf("draft should cascade with the session, got %q", payload)
	}
}
