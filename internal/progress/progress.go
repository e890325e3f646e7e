// Package progress holds the player's durable game state and the merge
// rules applied when a level is completed.
package progress

import (
	"github.com/rdelgado/econauts/internal/content"
	"github.com/rdelgado/econauts/internal/stars"
)

// LevelRecord is the stored result for one level. Stars only ever go up
// across attempts; Score and MaxScore always reflect the latest attempt so
// the UI can show "last result" next to the best rating.
type LevelRecord struct {
	Completed      bool
	Stars          int
	Score          int
	MaxScore       int
	CorrectAnswers int
}

// Player is the complete mutable player state.
type Player struct {
	Name                string
	GreenScore          int
	TotalCorrectAnswers int
	Levels              map[string]*LevelRecord
	Badges              map[string]bool
}

// NewPlayer returns a fresh player with empty progress.
func NewPlayer() *Player {
	return &Player{
		Levels: make(map[string]*LevelRecord),
		Badges: make(map[string]bool),
	}
}

// RecordCompletion merges one finished attempt into the player state and
// returns the level's best star count (which may exceed this attempt's).
//
// starsAwarded is clamped to [0, 3]. greenPoints and correctAnswers below
// zero are treated as zero; both accumulators only ever grow.
func (p *Player) RecordCompletion(levelID string, starsAwarded, score, maxScore, correctAnswers, greenPoints int) int {
	if starsAwarded < 0 {
		starsAwarded = 0
	}
	if starsAwarded > stars.Max {
		starsAwarded = stars.Max
	}
	if correctAnswers < 0 {
		correctAnswers = 0
	}
	if greenPoints < 0 {
		greenPoints = 0
	}

	rec, ok := p.Levels[levelID]
	if !ok {
		rec = &LevelRecord{}
		p.Levels[levelID] = rec
	}

	rec.Completed = true
	if starsAwarded > rec.Stars {
		rec.Stars = starsAwarded
	}
	rec.Score = score
	rec.MaxScore = maxScore
	rec.CorrectAnswers = correctAnswers

	p.TotalCorrectAnswers += correctAnswers
	p.GreenScore += greenPoints

	return rec.Stars
}

// BestStars returns the stored star count for a level, zero if never played.
func (p *Player) BestStars(levelID string) int {
	if rec, ok := p.Levels[levelID]; ok {
		return rec.Stars
	}
	return 0
}

// TotalStars returns the sum of stars across every level record.
// Always recomputed, never cached.
func (p *Player) TotalStars() int {
	total := 0
	for _, rec := range p.Levels {
		total += rec.Stars
	}
	return total
}

// WorldStars returns the stars earned across all levels of one world.
func (p *Player) WorldStars(worldID string) int {
	total := 0
	for _, l := range content.LevelsInWorld(worldID) {
		if rec, ok := p.Levels[l.ID]; ok {
			total += rec.Stars
		}
	}
	return total
}

// CompletedCount returns how many levels the player has completed.
func (p *Player) CompletedCount() int {
	count := 0
	for _, rec := range p.Levels {
		if rec.Completed {
			count++
		}
	}
	return count
}

// HasBadge reports whether a badge has been earned.
func (p *Player) HasBadge(badgeID string) bool {
	return p.Badges[badgeID]
}
