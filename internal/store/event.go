package store

import (
	"context"
	"database/sql"
	"fmt"
	"sync"
	"time"
)

// sequenceCounter manages the global monotonic sequence number shared by
// snapshots and all event types. Per-table auto-increment IDs can't
// establish cross-table ordering, so a single counter assigns one
// increasing sequence to everything, enabling:
//
//   - Cross-type ordering (did the badge land before or after the completion?)
//   - Snapshot consistency (events with sequence > snapshot.sequence are newer)
//   - Append-only guarantees (events are never reordered)
//
// The mutex serializes within the process; the RETURNING clause makes the
// increment atomic at the database level.
type sequenceCounter struct {
	mu sync.Mutex
	db *sql.DB
}

// newSequenceCounter creates a counter and ensures the tracking table exists.
func newSequenceCounter(db *sql.DB) (*sequenceCounter, error) {
	_, err := db.Exec(`CREATE TABLE IF NOT EXISTS global_sequence (
		id INTEGER PRIMARY KEY CHECK (id = 1),
		next_val INTEGER NOT NULL DEFAULT 1
	)`)
	if err != nil {
		return nil, fmt.Errorf("create sequence table: %w", err)
	}

	_, err = db.Exec(`INSERT OR IGNORE INTO global_sequence (id, next_val) VALUES (1, 1)`)
	if err != nil {
		return nil, fmt.Errorf("seed sequence: %w", err)
	}

	return &sequenceCounter{db: db}, nil
}

// Next atomically returns the next sequence number and increments the counter.
func (sc *sequenceCounter) Next(ctx context.Context) (int64, error) {
	sc.mu.Lock()
	defer sc.mu.Unlock()

	var seq int64
	err := sc.db.QueryRowContext(ctx,
		`UPDATE global_sequence SET next_val = next_val + 1 WHERE id = 1 RETURNING next_val - 1`,
	).Scan(&seq)
	if err != nil {
		return 0, fmt.Errorf("next sequence: %w", err)
	}
	return seq, nil
}

// eventRepo implements EventRepo over the event tables.
type eventRepo struct {
	db  *sql.DB
	seq *sequenceCounter
}

func (r *eventRepo) AppendCompletion(ctx context.Context, data CompletionEventData) error {
	seq, err := r.seq.Next(ctx)
	if err != nil {
		return err
	}

	_, err = r.db.ExecContext(ctx,
		`INSERT INTO completion_events
		 (sequence, timestamp, level_id, world_id, kind, stars, score, max_score, correct_answers, session_id)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		seq, time.Now().UTC().Format(time.RFC3339Nano),
		data.LevelID, data.WorldID, data.Kind,
		data.Stars, data.Score, data.MaxScore, data.CorrectAnswers, data.SessionID,
	)
	if err != nil {
		return fmt.Errorf("append completion event: %w", err)
	}
	return nil
}

func (r *eventRepo) AppendBadge(ctx context.Context, data BadgeEventData) error {
	seq, err := r.seq.Next(ctx)
	if err != nil {
		return err
	}

	_, err = r.db.ExecContext(ctx,
		`INSERT INTO badge_events (sequence, timestamp, badge_id, session_id)
		 VALUES (?, ?, ?, ?)`,
		seq, time.Now().UTC().Format(time.RFC3339Nano), data.BadgeID, data.SessionID,
	)
	if err != nil {
		return fmt.Errorf("append badge event: %w", err)
	}
	return nil
}

func (r *eventRepo) RecentCompletions(ctx context.Context, limit int) ([]CompletionEvent, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := r.db.QueryContext(ctx,
		`SELECT sequence, timestamp, level_id, world_id, kind, stars, score, max_score, correct_answers, session_id
		 FROM completion_events ORDER BY sequence DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("query recent completions: %w", err)
	}
	defer rows.Close()

	var events []CompletionEvent
	for rows.Next() {
		var (
			ev    CompletionEvent
			tsRaw string
		)
		err := rows.Scan(&ev.Sequence, &tsRaw, &ev.LevelID, &ev.WorldID, &ev.Kind,
			&ev.Stars, &ev.Score, &ev.MaxScore, &ev.CorrectAnswers, &ev.SessionID)
		if err != nil {
			return nil, fmt.Errorf("scan completion event: %w", err)
		}
		if ts, err := time.Parse(time.RFC3339Nano, tsRaw); err == nil {
			ev.Timestamp = ts
		}
		events = append(events, ev)
	}
	return events, rows.Err()
}

func (r *eventRepo) CompletionCount(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM completion_events`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count completions: %w", err)
	}
	return count, nil
}

func (r *eventRepo) LevelAttempts(ctx context.Context, levelID string) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM completion_events WHERE level_id = ?`, levelID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count level attempts: %w", err)
	}
	return count, nil
}
