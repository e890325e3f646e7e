package badges

import (
	"testing"

	"github.com/rdelgado/econauts/internal/content"
	"github.com/rdelgado/econauts/internal/progress"
)

func earnedIDs(earned []Badge) map[string]bool {
	ids := make(map[string]bool, len(earned))
	for _, b := range earned {
		ids[b.ID] = true
	}
	return ids
}

func TestFreshPlayerEarnsNothing(t *testing.T) {
	p := progress.NewPlayer()
	if earned := Evaluate(p); len(earned) != 0 {
		t.Errorf("fresh player earned %v, want nothing", earnedIDs(earned))
	}
}

func TestFirstCompletionAwardsFirstStar(t *testing.T) {
	p := progress.NewPlayer()
	p.RecordCompletion("w1-l1", 3, 5, 5, 4, 10)

	ids := earnedIDs(Evaluate(p))
	if !ids[FirstStar] {
		t.Error("first-star not awarded on first completion")
	}
	if !ids[PerfectScore] {
		t.Error("perfect-score not awarded for a 3-star run")
	}
}

func TestEvaluateIdempotent(t *testing.T) {
	p := progress.NewPlayer()
	p.RecordCompletion("w1-l1", 3, 5, 5, 4, 10)

	first := Evaluate(p)
	if len(first) == 0 {
		t.Fatal("expected awards on first evaluation")
	}

	badgeCount := len(p.Badges)
	second := Evaluate(p)
	if len(second) != 0 {
		t.Errorf("second evaluation awarded %v, want nothing", earnedIDs(second))
	}
	if len(p.Badges) != badgeCount {
		t.Errorf("badge set changed from %d to %d without a mutation", badgeCount, len(p.Badges))
	}
}

func TestBadgesOnlyGrow(t *testing.T) {
	p := progress.NewPlayer()
	p.RecordCompletion("w1-l1", 3, 5, 5, 4, 10)
	Evaluate(p)

	if !p.HasBadge(PerfectScore) {
		t.Fatal("setup: perfect-score should be earned")
	}

	// A later zero-star attempt cannot revoke anything.
	p.RecordCompletion("w1-l2", 0, 0, 6, 0, 8)
	Evaluate(p)
	if !p.HasBadge(PerfectScore) {
		t.Error("perfect-score lost after a poor attempt")
	}
}

func TestWorldCompleteBadge(t *testing.T) {
	p := progress.NewPlayer()
	lvls := content.LevelsInWorld("w1")

	for i, l := range lvls {
		p.RecordCompletion(l.ID, 1, 1, l.MaxScore, 0, 0)
		ids := earnedIDs(Evaluate(p))
		last := i == len(lvls)-1
		if got := ids[WorldBadgeID("w1")]; got != last {
			t.Errorf("after %d/%d levels, world badge earned = %v, want %v",
				i+1, len(lvls), got, last)
		}
	}
}

func TestQuizWhizThreshold(t *testing.T) {
	p := progress.NewPlayer()
	p.RecordCompletion("w1-l1", 2, 4, 5, QuizWhizThreshold-1, 10)
	if ids := earnedIDs(Evaluate(p)); ids[QuizWhiz] {
		t.Errorf("quiz-whiz awarded at %d correct answers", p.TotalCorrectAnswers)
	}

	p.RecordCompletion("w1-l1", 2, 4, 5, 1, 10)
	if ids := earnedIDs(Evaluate(p)); !ids[QuizWhiz] {
		t.Errorf("quiz-whiz not awarded at %d correct answers", p.TotalCorrectAnswers)
	}
}

func TestGreenGuardianThreshold(t *testing.T) {
	p := progress.NewPlayer()
	p.GreenScore = GreenGuardianThreshold - 1
	if ids := earnedIDs(Evaluate(p)); ids[GreenGuardian] {
		t.Error("green-guardian awarded below threshold")
	}
	p.GreenScore = GreenGuardianThreshold
	if ids := earnedIDs(Evaluate(p)); !ids[GreenGuardian] {
		t.Error("green-guardian not awarded at threshold")
	}
}

func TestCompletionistBadge(t *testing.T) {
	p := progress.NewPlayer()
	all := content.AllLevels()

	for _, l := range all[:len(all)-1] {
		p.RecordCompletion(l.ID, 1, 1, l.MaxScore, 0, 0)
	}
	if ids := earnedIDs(Evaluate(p)); ids[Completionist] {
		t.Error("completionist awarded with one level missing")
	}

	last := all[len(all)-1]
	p.RecordCompletion(last.ID, 1, 1, last.MaxScore, 0, 0)
	if ids := earnedIDs(Evaluate(p)); !ids[Completionist] {
		t.Error("completionist not awarded with every level complete")
	}
}

func TestCatalogCoversEveryWorld(t *testing.T) {
	catalog := Catalog()
	byID := make(map[string]bool, len(catalog))
	for _, b := range catalog {
		if byID[b.ID] {
			t.Errorf("duplicate badge ID %q", b.ID)
		}
		byID[b.ID] = true
		if b.Name == "" || b.Description == "" || b.Earned == nil {
			t.Errorf("badge %q is missing fields", b.ID)
		}
	}
	for _, w := range content.AllWorlds() {
		if !byID[WorldBadgeID(w.ID)] {
			t.Errorf("no world badge for %q", w.ID)
		}
	}
}

func TestByID(t *testing.T) {
	if _, ok := ByID(FirstStar); !ok {
		t.Error("ByID(first-star) not found")
	}
	if _, ok := ByID("nope"); ok {
		t.Error("ByID(nope) unexpectedly found")
	}
}
