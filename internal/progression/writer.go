package progression

import (
	"context"
	"sync"
	"time"

	"github.com/rdelgado/econauts/internal/store"
)

// writeTimeout bounds a single snapshot write.
const writeTimeout = 5 * time.Second

// snapshotWriter serializes durable snapshot writes on one goroutine.
//
// Mutations can outpace disk I/O, so writes are coalesced: Enqueue replaces
// any not-yet-started pending snapshot with the newer one. Because a single
// goroutine performs all writes, they complete in issue order and a slow
// older write can never land after (and clobber) a newer one. A failed
// write is not retried; the next mutation's snapshot supersedes it.
type snapshotWriter struct {
	repo store.SnapshotRepo

	mu      sync.Mutex
	pending *store.Snapshot

	// saveMu is held for the duration of each repo.Save. Clear takes it
	// too, so a durable clear orders after any save already in flight.
	saveMu sync.Mutex

	kick      chan struct{}
	quit      chan struct{}
	done      chan struct{}
	closeOnce sync.Once
}

func newSnapshotWriter(repo store.SnapshotRepo) *snapshotWriter {
	w := &snapshotWriter{
		repo: repo,
		kick: make(chan struct{}, 1),
		quit: make(chan struct{}),
		done: make(chan struct{}),
	}
	go w.loop()
	return w
}

// Enqueue schedules snap as the next durable write, replacing any pending
// snapshot that hasn't started writing yet. Never blocks.
func (w *snapshotWriter) Enqueue(snap *store.Snapshot) {
	w.mu.Lock()
	w.pending = snap
	w.mu.Unlock()

	select {
	case w.kick <- struct{}{}:
	default:
	}
}

// Discard drops any pending write that hasn't started yet.
func (w *snapshotWriter) Discard() {
	w.mu.Lock()
	w.pending = nil
	w.mu.Unlock()
}

// Clear drops the pending write, waits for any save the goroutine has
// already started, then runs clear while still holding the save lock.
// A pre-clear snapshot therefore always lands before the durable state
// is cleared, never after it.
func (w *snapshotWriter) Clear(clear func() error) error {
	w.saveMu.Lock()
	defer w.saveMu.Unlock()
	w.Discard()
	return clear()
}

// Close flushes the pending write, if any, and stops the writer.
// Safe to call more than once.
func (w *snapshotWriter) Close() error {
	w.closeOnce.Do(func() { close(w.quit) })
	<-w.done
	return nil
}

func (w *snapshotWriter) loop() {
	defer close(w.done)
	for {
		select {
		case <-w.kick:
			w.flush()
		case <-w.quit:
			w.flush()
			return
		}
	}
}

func (w *snapshotWriter) flush() {
	w.saveMu.Lock()
	defer w.saveMu.Unlock()

	w.mu.Lock()
	snap := w.pending
	w.pending = nil
	w.mu.Unlock()

	if snap == nil || w.repo == nil {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), writeTimeout)
	defer cancel()

	// In-memory state stays authoritative; a failed write is superseded
	// by the next mutation's snapshot.
	_ = w.repo.Save(ctx, snap)
}
