package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/vovakirdan/pongping/internal/core"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreOpenClose(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "nested", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// Check that the file and its parent directory were created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreReopenKeepsHistory(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	if _, err := store.BeginSession("a", "tui"); err != nil {
		t.Fatalf("BeginSession() failed: %v", err)
	}
	store.Close()

	store, err = Open(dbPath)
	if err != nil {
		t.Fatalf("second Open() failed: %v", err)
	}
	defer store.Close()

	sessions, err := store.RecentSessions(10)
	if err != nil {
		t.Fatalf("RecentSessions() failed: %v", err)
	}
	if len(sessions) != 1 {
		t.Errorf("expected 1 session after reopen, got %d", len(sessions))
	}
}

func TestStoreSessionLifecycle(t *testing.T) {
	store := openTestStore(t)

	id, err := store.BeginSession("key-1", "window")
	if err != nil {
		t.Fatalf("BeginSession() failed: %v", err)
	}

	if err := store.RecordPoint(id, core.Player2, 0, 100, 54); err != nil {
		t.Fatalf("RecordPoint() failed: %v", err)
	}
	if err := store.RecordPoint(id, core.Player1, 100, 100, 80); err != nil {
		t.Fatalf("RecordPoint() failed: %v", err)
	}

	sessions, err := store.RecentSessions(10)
	if err != nil {
		t.Fatalf("RecentSessions() failed: %v", err)
	}
	if len(sessions) != 1 {
		t.Fatalf("expected 1 session, got %d", len(sessions))
	}
	s := sessions[0]
	if s.Key != "key-1" || s.Backend != "window" {
		t.Errorf("session identity = %q/%q", s.Key, s.Backend)
	}
	if s.Score1 != 100 || s.Score2 != 100 || s.Points != 2 {
		t.Errorf("running score = %d/%d over %d points, expected 100/100 over 2", s.Score1, s.Score2, s.Points)
	}
	if !s.EndedAt.IsZero() {
		t.Error("open session should have no end time")
	}

	if err := store.EndSession(id, 100, 100); err != nil {
		t.Fatalf("EndSession() failed: %v", err)
	}
	sessions, _ = store.RecentSessions(10)
	if sessions[0].EndedAt.IsZero() {
		t.Error("ended session should have an end time")
	}

	points, err := store.SessionPoints(id)
	if err != nil {
		t.Fatalf("SessionPoints() failed: %v", err)
	}
	if len(points) != 2 {
		t.Fatalf("expected 2 points, got %d", len(points))
	}
	if points[0].Scorer != core.Player2 || points[0].RallyFrames != 54 {
		t.Errorf("first point = %+v", points[0])
	}
	if points[1].Scorer != core.Player1 || points[1].Score1 != 100 {
		t.Errorf("second point = %+v", points[1])
	}
}

func TestStoreUnknownSession(t *testing.T) {
	store := openTestStore(t)

	if err := store.RecordPoint(99, core.Player1, 100, 0, 1); err == nil {
		t.Error("RecordPoint on an unknown session should fail")
	}
	if err := store.EndSession(99, 0, 0); err == nil {
		t.Error("EndSession on an unknown session should fail")
	}
}

func TestStoreDuplicateKey(t *testing.T) {
	store := openTestStore(t)

	if _, err := store.BeginSession("same", "tui"); err != nil {
		t.Fatalf("BeginSession() failed: %v", err)
	}
	if _, err := store.BeginSession("same", "tui"); err == nil {
		t.Error("duplicate session key should fail")
	}
}

func TestStoreRecentSessionsOrderAndLimit(t *testing.T) {
	store := openTestStore(t)

	for _, key := range []string{"a", "b", "c"} {
		if _, err := store.BeginSession(key, "tui"); err != nil {
			t.Fatalf("BeginSession(%q) failed: %v", key, err)
		}
	}

	sessions, err := store.RecentSessions(2)
	if err != nil {
		t.Fatalf("RecentSessions() failed: %v", err)
	}
	if len(sessions) != 2 {
		t.Fatalf("expected 2 sessions, got %d", len(sessions))
	}
	if sessions[0].Key != "c" || sessions[1].Key != "b" {
		t.Errorf("expected newest first (c, b), got (%s, %s)", sessions[0].Key, sessions[1].Key)
	}
}

func TestStoreTotals(t *testing.T) {
	store := openTestStore(t)

	empty, err := store.Totals()
	if err != nil {
		t.Fatalf("Totals() on empty store failed: %v", err)
	}
	if empty != (Totals{}) {
		t.Errorf("empty totals = %+v", empty)
	}

	a, _ := store.BeginSession("a", "tui")
	b, _ := store.BeginSession("b", "ssh")
	store.RecordPoint(a, core.Player1, 100, 0, 10)
	store.RecordPoint(a, core.Player1, 200, 0, 10)
	store.RecordPoint(b, core.Player2, 0, 100, 10)

	totals, err := store.Totals()
	if err != nil {
		t.Fatalf("Totals() failed: %v", err)
	}
	want := Totals{Sessions: 2, Points: 3, Player1Won: 2, Player2Won: 1}
	if totals != want {
		t.Errorf("Totals() = %+v, expected %+v", totals, want)
	}
}
