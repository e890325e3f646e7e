// Package minigames holds the round content for the sorting and matching
// levels. Sorting rounds offer two bins, matching rounds three candidates;
// either way the player picks one option and scores a point when right.
package minigames

// Round is one scored pick in a sorting or matching level.
type Round struct {
	Prompt       string
	Options      []string
	CorrectIndex int
	Fact         string // shown after answering, right or wrong
}

// RoundsForLevel returns the round list for a level, in play order.
// Returns nil for levels without rounds.
func RoundsForLevel(levelID string) []Round {
	return bank[levelID]
}

// HasRounds reports whether round content exists for the level.
func HasRounds(levelID string) bool {
	return len(bank[levelID]) > 0
}
