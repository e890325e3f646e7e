package minigames

import (
	"testing"

	"github.com/rdelgado/econauts/internal/content"
)

func TestBankCoversAllSortingAndMatchingLevels(t *testing.T) {
	for _, l := range content.AllLevels() {
		if l.Kind != content.KindSorting && l.Kind != content.KindMatching {
			continue
		}
		rounds := RoundsForLevel(l.ID)
		if len(rounds) == 0 {
			t.Errorf("level %q has no rounds", l.ID)
			continue
		}
		if len(rounds) != l.MaxScore {
			t.Errorf("level %q has %d rounds, MaxScore is %d", l.ID, len(rounds), l.MaxScore)
		}
	}
}

func TestRoundsWellFormed(t *testing.T) {
	for levelID, rounds := range bank {
		l, err := content.LevelByID(levelID)
		if err != nil {
			t.Errorf("bank has rounds for unknown level %q", levelID)
			continue
		}

		wantOptions := 3
		if l.Kind == content.KindSorting {
			wantOptions = 2
		}

		for i, r := range rounds {
			if r.Prompt == "" {
				t.Errorf("%s[%d]: empty prompt", levelID, i)
			}
			if len(r.Options) != wantOptions {
				t.Errorf("%s[%d]: %d options, want %d", levelID, i, len(r.Options), wantOptions)
			}
			if r.CorrectIndex < 0 || r.CorrectIndex >= len(r.Options) {
				t.Errorf("%s[%d]: CorrectIndex %d out of range", levelID, i, r.CorrectIndex)
			}
			if r.Fact == "" {
				t.Errorf("%s[%d]: empty fact", levelID, i)
			}
		}
	}
}

func TestRoundsForUnknownLevel(t *testing.T) {
	if rounds := RoundsForLevel("w9-l9"); rounds != nil {
		t.Errorf("expected nil for unknown level, got %d rounds", len(rounds))
	}
	if HasRounds("w9-l9") {
		t.Error("HasRounds(w9-l9) = true, want false")
	}
	if !HasRounds("w1-l2") {
		t.Error("HasRounds(w1-l2) = false, want true")
	}
}
