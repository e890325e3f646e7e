package store

import (
	"context"
	"time"
)

// SnapshotVersion is the current snapshot schema version.
const SnapshotVersion = 1

// SnapshotData is the full serialized player state written as one unit.
type SnapshotData struct {
	Version int                 `json:"version"`
	Player  *PlayerSnapshotData `json:"player,omitempty"`
}

// PlayerSnapshotData mirrors progress.Player for JSON persistence.
type PlayerSnapshotData struct {
	Name                string                      `json:"name"`
	GreenScore          int                         `json:"greenScore"`
	TotalCorrectAnswers int                         `json:"totalCorrectAnswers"`
	Levels              map[string]*LevelRecordData `json:"levels"`
	Badges              []string                    `json:"badges"`
}

// LevelRecordData mirrors progress.LevelRecord for JSON persistence.
type LevelRecordData struct {
	Completed      bool `json:"completed"`
	Stars          int  `json:"stars"`
	Score          int  `json:"score"`
	MaxScore       int  `json:"maxScore"`
	CorrectAnswers int  `json:"correctAnswers"`
}

// Snapshot is the persisted point-in-time capture of player state.
type Snapshot struct {
	Sequence  int64
	Timestamp time.Time
	Data      SnapshotData
}

// SnapshotRepo manages the single authoritative player snapshot.
// Save replaces the whole snapshot atomically; partial updates are
// deliberately not offered so an interrupted write can never leave a
// half-updated state.
type SnapshotRepo interface {
	// Save stores the snapshot, replacing any previous one.
	Save(ctx context.Context, snap *Snapshot) error

	// Latest returns the stored snapshot, or nil if none exists or the
	// stored payload cannot be decoded (first-run semantics).
	Latest(ctx context.Context) (*Snapshot, error)

	// Reset deletes the stored snapshot.
	Reset(ctx context.Context) error
}

// CompletionEventData captures one finished level attempt.
type CompletionEventData struct {
	LevelID        string
	WorldID        string
	Kind           string
	Stars          int
	Score          int
	MaxScore       int
	CorrectAnswers int
	SessionID      string
}

// CompletionEvent is a stored completion with its bookkeeping fields.
type CompletionEvent struct {
	Sequence  int64
	Timestamp time.Time
	CompletionEventData
}

// BadgeEventData captures one badge award.
type BadgeEventData struct {
	BadgeID   string
	SessionID string
}

// EventRepo provides append and query access to the play history.
// Events are append-only; resetting progress does not erase them.
type EventRepo interface {
	// AppendCompletion records a finished level attempt.
	AppendCompletion(ctx context.Context, data CompletionEventData) error

	// AppendBadge records a badge award.
	AppendBadge(ctx context.Context, data BadgeEventData) error

	// RecentCompletions returns the most recent completions, newest first.
	RecentCompletions(ctx context.Context, limit int) ([]CompletionEvent, error)

	// CompletionCount returns the total number of recorded completions.
	CompletionCount(ctx context.Context) (int, error)

	// LevelAttempts returns how many completions exist for one level.
	LevelAttempts(ctx context.Context, levelID string) (int, error)
}
