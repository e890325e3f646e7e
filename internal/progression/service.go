// Package progression is the single surface the rest of the game uses to
// read and mutate player progress. It owns the in-memory player state,
// applies the star/merge/badge rules on every completion, and keeps the
// durable snapshot eventually consistent through a background writer.
package progression

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/rdelgado/econauts/internal/badges"
	"github.com/rdelgado/econauts/internal/content"
	"github.com/rdelgado/econauts/internal/progress"
	"github.com/rdelgado/econauts/internal/stars"
	"github.com/rdelgado/econauts/internal/store"
	"github.com/rdelgado/econauts/internal/unlock"
)

// resetAttempts bounds the durable-clear retry loop in ResetProgress.
const resetAttempts = 3

// Service wires the star calculator, progress store, badge evaluator and
// persistence together. All mutation entry points run synchronously against
// the in-memory player; the durable write happens afterwards on the writer
// goroutine. The service is meant to be driven from a single goroutine
// (the UI event loop), matching how the screens use it.
type Service struct {
	player    *progress.Player
	snapRepo  store.SnapshotRepo
	eventRepo store.EventRepo
	writer    *snapshotWriter
	sessionID string

	subscribers []func()
}

// NewService loads the persisted snapshot (or starts fresh) and returns a
// ready service. eventRepo may be nil; history recording is then skipped.
func NewService(ctx context.Context, snapRepo store.SnapshotRepo, eventRepo store.EventRepo) (*Service, error) {
	var player *progress.Player
	if snapRepo != nil {
		snap, err := snapRepo.Latest(ctx)
		if err != nil {
			return nil, fmt.Errorf("load snapshot: %w", err)
		}
		if snap != nil {
			player = progress.FromSnapshot(&snap.Data)
		}
	}
	if player == nil {
		player = progress.NewPlayer()
	}

	return &Service{
		player:    player,
		snapRepo:  snapRepo,
		eventRepo: eventRepo,
		writer:    newSnapshotWriter(snapRepo),
		sessionID: uuid.NewString(),
	}, nil
}

// Player returns the in-memory player state. Callers treat it as read-only;
// all mutation goes through the methods below.
func (s *Service) Player() *progress.Player {
	return s.player
}

// TotalStars returns the player's global star total.
func (s *Service) TotalStars() int {
	return s.player.TotalStars()
}

// IsLevelUnlocked reports whether the player may enter a level.
func (s *Service) IsLevelUnlocked(levelID string) bool {
	return unlock.Level(s.player, levelID)
}

// IsWorldUnlocked reports whether the player may enter a world.
func (s *Service) IsWorldUnlocked(worldID string) bool {
	return unlock.World(s.player, worldID)
}

// NextGoal returns the next world still locked and how many stars the
// player is missing to open it.
func (s *Service) NextGoal() (content.World, int, bool) {
	return unlock.NextLockedWorld(s.player)
}

// Subscribe registers fn to run after every in-memory mutation.
// Subscribers run synchronously on the mutating goroutine.
func (s *Service) Subscribe(fn func()) {
	s.subscribers = append(s.subscribers, fn)
}

// CompleteLevel records a graded attempt: computes this attempt's stars,
// merges the result (best stars kept, latest score shown), re-evaluates
// badges and schedules a durable write.
//
// Returns the level's best star count, which may exceed this attempt's,
// plus any badges the attempt earned. Unknown level IDs are ignored:
// state is unchanged and the current (zero) star count comes back.
func (s *Service) CompleteLevel(levelID string, score, maxScore, correctAnswers int) (int, []badges.Badge) {
	level, err := content.LevelByID(levelID)
	if err != nil {
		return s.player.BestStars(levelID), nil
	}

	attempt := stars.Count(score, maxScore)
	return s.record(level, attempt, score, maxScore, correctAnswers)
}

// RecordLevelComplete records a completion whose star count was decided by
// the mini-game itself (exploration and other ungraded levels). Same merge
// policy as CompleteLevel, skipping the star calculator.
func (s *Service) RecordLevelComplete(levelID string, starCount, score, maxScore int) (int, []badges.Badge) {
	level, err := content.LevelByID(levelID)
	if err != nil {
		return s.player.BestStars(levelID), nil
	}

	return s.record(level, starCount, score, maxScore, 0)
}

func (s *Service) record(level content.Level, attempt, score, maxScore, correctAnswers int) (int, []badges.Badge) {
	best := s.player.RecordCompletion(
		level.ID, attempt, score, maxScore, correctAnswers, level.Kind.GreenPoints())

	earned := badges.Evaluate(s.player)

	s.appendHistory(level, attempt, score, maxScore, correctAnswers, earned)
	s.notify()
	s.writer.Enqueue(s.snapshot())

	return best, earned
}

// SetPlayerName renames the explorer and schedules a durable write.
func (s *Service) SetPlayerName(name string) {
	s.player.Name = name
	s.notify()
	s.writer.Enqueue(s.snapshot())
}

// RecentCompletions returns the most recent completion events, newest first.
// Returns nil when no history is recorded.
func (s *Service) RecentCompletions(ctx context.Context, limit int) ([]store.CompletionEvent, error) {
	if s.eventRepo == nil {
		return nil, nil
	}
	return s.eventRepo.RecentCompletions(ctx, limit)
}

// ResetProgress wipes the in-memory player and clears the durable snapshot.
// The in-memory reset always succeeds; the durable clear is retried so a
// stale snapshot can't resurrect old progress on the next launch. If every
// attempt fails the error is returned for the UI to surface.
func (s *Service) ResetProgress(ctx context.Context) error {
	s.player = progress.NewPlayer()
	s.notify()

	if s.snapRepo == nil {
		s.writer.Discard()
		return nil
	}

	// The clear is serialized through the writer: a pre-reset save still
	// in flight completes first, so it can't re-insert the old state
	// after the row is cleared.
	return s.writer.Clear(func() error {
		var err error
		for i := 0; i < resetAttempts; i++ {
			if err = s.snapRepo.Reset(ctx); err == nil {
				return nil
			}
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(time.Duration(i+1) * 100 * time.Millisecond):
			}
		}
		return fmt.Errorf("clear persisted progress: %w", err)
	})
}

// Close flushes any pending snapshot write and stops the writer.
func (s *Service) Close() error {
	return s.writer.Close()
}

func (s *Service) snapshot() *store.Snapshot {
	return &store.Snapshot{
		Timestamp: time.Now().UTC(),
		Data: store.SnapshotData{
			Version: store.SnapshotVersion,
			Player:  s.player.SnapshotData(),
		},
	}
}

func (s *Service) appendHistory(level content.Level, attempt, score, maxScore, correctAnswers int, earned []badges.Badge) {
	if s.eventRepo == nil {
		return
	}
	ctx := context.Background()
	// History is a log, not progress; a failed append never fails the
	// completion and is not retried.
	_ = s.eventRepo.AppendCompletion(ctx, store.CompletionEventData{
		LevelID:        level.ID,
		WorldID:        level.WorldID,
		Kind:           string(level.Kind),
		Stars:          attempt,
		Score:          score,
		MaxScore:       maxScore,
		CorrectAnswers: correctAnswers,
		SessionID:      s.sessionID,
	})
	for _, b := range earned {
		_ = s.eventRepo.AppendBadge(ctx, store.BadgeEventData{
			BadgeID:   b.ID,
			SessionID: s.sessionID,
		})
	}
}

func (s *Service) notify() {
	for _, fn := range s.subscribers {
		fn()
	}
}
