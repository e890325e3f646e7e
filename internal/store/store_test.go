package store

import (
	"context"
	"testing"
	"time"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.DB() == nil {
		t.Fatal("expected non-nil database handle")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so we skip journal_mode here. It is tested with file-based DBs.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestSnapshotSaveAndLatest(t *testing.T) {
	s := openTestStore(t)
	repo := s.SnapshotRepo()
	ctx := context.Background()

	// No snapshot yet.
	snap, err := repo.Latest(ctx)
	if err != nil {
		t.Fatalf("latest (empty): %v", err)
	}
	if snap != nil {
		t.Fatal("expected nil snapshot when none exists")
	}

	err = repo.Save(ctx, &Snapshot{
		Data: SnapshotData{
			Version: SnapshotVersion,
			Player: &PlayerSnapshotData{
				Name:       "Robin",
				GreenScore: 15,
				Levels: map[string]*LevelRecordData{
					"w1-l1": {Completed: true, Stars: 3, Score: 5, MaxScore: 5},
				},
				Badges: []string{"first-star"},
			},
		},
	})
	if err != nil {
		t.Fatalf("save: %v", err)
	}

	snap, err = repo.Latest(ctx)
	if err != nil {
		t.Fatalf("latest: %v", err)
	}
	if snap == nil {
		t.Fatal("expected non-nil snapshot")
	}
	if snap.Data.Player == nil {
		t.Fatal("expected player data in snapshot")
	}
	if snap.Data.Player.Name != "Robin" {
		t.Errorf("name = %q, want Robin", snap.Data.Player.Name)
	}
	if got := snap.Data.Player.Levels["w1-l1"].Stars; got != 3 {
		t.Errorf("w1-l1 stars = %d, want 3", got)
	}
}

func TestSnapshotSaveReplacesWholeState(t *testing.T) {
	s := openTestStore(t)
	repo := s.SnapshotRepo()
	ctx := context.Background()

	first := &Snapshot{Data: SnapshotData{
		Version: SnapshotVersion,
		Player: &PlayerSnapshotData{
			Levels: map[string]*LevelRecordData{
				"w1-l1": {Completed: true, Stars: 2},
				"w1-l2": {Completed: true, Stars: 1},
			},
		},
	}}
	if err := repo.Save(ctx, first); err != nil {
		t.Fatalf("save first: %v", err)
	}

	// Second save holds only one level; the old w1-l2 entry must not survive.
	second := &Snapshot{Data: SnapshotData{
		Version: SnapshotVersion,
		Player: &PlayerSnapshotData{
			Levels: map[string]*LevelRecordData{
				"w1-l1": {Completed: true, Stars: 3},
			},
		},
	}}
	if err := repo.Save(ctx, second); err != nil {
		t.Fatalf("save second: %v", err)
	}

	snap, err := repo.Latest(ctx)
	if err != nil {
		t.Fatalf("latest: %v", err)
	}
	if _, ok := snap.Data.Player.Levels["w1-l2"]; ok {
		t.Error("stale level record survived a whole-snapshot replace")
	}
	if got := snap.Data.Player.Levels["w1-l1"].Stars; got != 3 {
		t.Errorf("w1-l1 stars = %d, want 3", got)
	}

	// Only one row may ever exist.
	var count int
	if err := s.DB().QueryRow("SELECT COUNT(*) FROM snapshots").Scan(&count); err != nil {
		t.Fatalf("count snapshots: %v", err)
	}
	if count != 1 {
		t.Errorf("snapshot rows = %d, want 1", count)
	}
}

func TestSnapshotSequenceIncreases(t *testing.T) {
	s := openTestStore(t)
	repo := s.SnapshotRepo()
	ctx := context.Background()

	var last int64
	for i := 0; i < 3; i++ {
		if err := repo.Save(ctx, &Snapshot{Data: SnapshotData{Version: 1}}); err != nil {
			t.Fatalf("save %d: %v", i, err)
		}
		snap, err := repo.Latest(ctx)
		if err != nil {
			t.Fatalf("latest %d: %v", i, err)
		}
		if snap.Sequence <= last {
			t.Errorf("sequence %d not greater than previous %d", snap.Sequence, last)
		}
		last = snap.Sequence
	}
}

func TestSnapshotReset(t *testing.T) {
	s := openTestStore(t)
	repo := s.SnapshotRepo()
	ctx := context.Background()

	if err := repo.Save(ctx, &Snapshot{Data: SnapshotData{Version: 1}}); err != nil {
		t.Fatalf("save: %v", err)
	}
	if err := repo.Reset(ctx); err != nil {
		t.Fatalf("reset: %v", err)
	}

	snap, err := repo.Latest(ctx)
	if err != nil {
		t.Fatalf("latest after reset: %v", err)
	}
	if snap != nil {
		t.Fatal("expected nil snapshot after reset")
	}

	// Reset on an already-empty table is a no-op, not an error.
	if err := repo.Reset(ctx); err != nil {
		t.Fatalf("reset (empty): %v", err)
	}
}

func TestSnapshotCorruptedPayloadIsFirstRun(t *testing.T) {
	s := openTestStore(t)
	repo := s.SnapshotRepo()
	ctx := context.Background()

	_, err := s.DB().Exec(
		`INSERT INTO snapshots (id, sequence, timestamp, data) VALUES (1, 1, ?, ?)`,
		time.Now().UTC().Format(time.RFC3339Nano), `{"version": [broken`,
	)
	if err != nil {
		t.Fatalf("insert corrupt row: %v", err)
	}

	snap, err := repo.Latest(ctx)
	if err != nil {
		t.Fatalf("latest: %v", err)
	}
	if snap != nil {
		t.Fatal("corrupted snapshot should read as nil (first run)")
	}
}

func TestCompletionEvents(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		err := repo.AppendCompletion(ctx, CompletionEventData{
			LevelID:   "w1-l1",
			WorldID:   "w1",
			Kind:      "quiz",
			Stars:     i + 1,
			Score:     i + 3,
			MaxScore:  5,
			SessionID: "sess-1",
		})
		if err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
	}
	err := repo.AppendCompletion(ctx, CompletionEventData{
		LevelID: "w1-l2", WorldID: "w1", Kind: "sorting", Stars: 2, Score: 4, MaxScore: 6, SessionID: "sess-1",
	})
	if err != nil {
		t.Fatalf("append other level: %v", err)
	}

	count, err := repo.CompletionCount(ctx)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 4 {
		t.Errorf("completion count = %d, want 4", count)
	}

	attempts, err := repo.LevelAttempts(ctx, "w1-l1")
	if err != nil {
		t.Fatalf("level attempts: %v", err)
	}
	if attempts != 3 {
		t.Errorf("w1-l1 attempts = %d, want 3", attempts)
	}

	recent, err := repo.RecentCompletions(ctx, 2)
	if err != nil {
		t.Fatalf("recent: %v", err)
	}
	if len(recent) != 2 {
		t.Fatalf("recent len = %d, want 2", len(recent))
	}
	if recent[0].LevelID != "w1-l2" {
		t.Errorf("newest completion = %q, want w1-l2", recent[0].LevelID)
	}
	if recent[0].Sequence <= recent[1].Sequence {
		t.Error("recent completions not ordered newest first")
	}
}

func TestBadgeEvents(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	err := repo.AppendBadge(ctx, BadgeEventData{BadgeID: "first-star", SessionID: "sess-1"})
	if err != nil {
		t.Fatalf("append badge: %v", err)
	}

	var count int
	if err := s.DB().QueryRow("SELECT COUNT(*) FROM badge_events").Scan(&count); err != nil {
		t.Fatalf("count badges: %v", err)
	}
	if count != 1 {
		t.Errorf("badge events = %d, want 1", count)
	}
}

func TestSequenceCounter(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	var seqs []int64
	for i := 0; i < 5; i++ {
		seq, err := s.seq.Next(ctx)
		if err != nil {
			t.Fatalf("next %d: %v", i, err)
		}
		seqs = append(seqs, seq)
	}

	for i := 1; i < len(seqs); i++ {
		if seqs[i] != seqs[i-1]+1 {
			t.Errorf("seq[%d] = %d, want %d", i, seqs[i], seqs[i-1]+1)
		}
	}
}
