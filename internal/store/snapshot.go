package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

// snapshotRepo implements SnapshotRepo over the snapshots table.
// The table holds at most one row (id = 1); Save is an upsert that
// replaces the entire serialized state in a single statement.
type snapshotRepo struct {
	db  *sql.DB
	seq *sequenceCounter
}

func (r *snapshotRepo) Save(ctx context.Context, snap *Snapshot) error {
	payload, err := json.Marshal(snap.Data)
	if err != nil {
		return fmt.Errorf("marshal snapshot data: %w", err)
	}

	seq := snap.Sequence
	if seq == 0 {
		seq, err = r.seq.Next(ctx)
		if err != nil {
			return err
		}
	}

	ts := snap.Timestamp
	if ts.IsZero() {
		ts = time.Now().UTC()
	}

	_, err = r.db.ExecContext(ctx,
		`INSERT INTO snapshots (id, sequence, timestamp, data) VALUES (1, ?, ?, ?)
		 ON CONFLICT (id) DO UPDATE SET sequence = excluded.sequence,
		 timestamp = excluded.timestamp, data = excluded.data`,
		seq, ts.Format(time.RFC3339Nano), string(payload),
	)
	if err != nil {
		return fmt.Errorf("save snapshot: %w", err)
	}
	return nil
}

func (r *snapshotRepo) Latest(ctx context.Context) (*Snapshot, error) {
	var (
		seq     int64
		tsRaw   string
		payload string
	)
	err := r.db.QueryRowContext(ctx,
		`SELECT sequence, timestamp, data FROM snapshots WHERE id = 1`,
	).Scan(&seq, &tsRaw, &payload)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("query snapshot: %w", err)
	}

	var data SnapshotData
	if err := json.Unmarshal([]byte(payload), &data); err != nil {
		// A corrupted payload is treated like a first run rather than
		// blocking the player from starting the game.
		return nil, nil
	}

	ts, err := time.Parse(time.RFC3339Nano, tsRaw)
	if err != nil {
		ts = time.Time{}
	}

	return &Snapshot{Sequence: seq, Timestamp: ts, Data: data}, nil
}

func (r *snapshotRepo) Reset(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM snapshots WHERE id = 1`); err != nil {
		return fmt.Errorf("reset snapshot: %w", err)
	}
	return nil
}
