package content

import (
	"fmt"
	"strings"
)

// validateTables performs all structural checks on a content set.
// Returns a combined error describing all problems found, or nil if valid.
func validateTables(worlds []World, levels []Level) error {
	var errs []string

	worldIDs := make(map[string]bool, len(worlds))
	for _, w := range worlds {
		if worldIDs[w.ID] {
			errs = append(errs, fmt.Sprintf("duplicate world ID: %q", w.ID))
		}
		worldIDs[w.ID] = true
		if w.StarsToUnlock < 0 {
			errs = append(errs, fmt.Sprintf("world %q: StarsToUnlock must be >= 0, got %d", w.ID, w.StarsToUnlock))
		}
	}

	// At least one world must be open from the start.
	hasOpenWorld := false
	for _, w := range worlds {
		if w.StarsToUnlock == 0 {
			hasOpenWorld = true
			break
		}
	}
	if len(worlds) > 0 && !hasOpenWorld {
		errs = append(errs, "no world with StarsToUnlock == 0 (the player could never start)")
	}

	levelIDs := make(map[string]bool, len(levels))
	levelsPerWorld := make(map[string]int)
	for _, l := range levels {
		if levelIDs[l.ID] {
			errs = append(errs, fmt.Sprintf("duplicate level ID: %q", l.ID))
		}
		levelIDs[l.ID] = true

		if !worldIDs[l.WorldID] {
			errs = append(errs, fmt.Sprintf("level %q references nonexistent world %q", l.ID, l.WorldID))
		}
		levelsPerWorld[l.WorldID]++

		if l.StarsRequired < 0 {
			errs = append(errs, fmt.Sprintf("level %q: StarsRequired must be >= 0, got %d", l.ID, l.StarsRequired))
		}
		if l.MaxScore < 0 {
			errs = append(errs, fmt.Sprintf("level %q: MaxScore must be >= 0, got %d", l.ID, l.MaxScore))
		}
		if l.Kind == KindExploration && l.MaxScore != 0 {
			errs = append(errs, fmt.Sprintf("level %q: exploration levels are ungraded, MaxScore must be 0", l.ID))
		}
		if l.Difficulty < 1 || l.Difficulty > 3 {
			errs = append(errs, fmt.Sprintf("level %q: Difficulty must be 1-3, got %d", l.ID, l.Difficulty))
		}
		switch l.Kind {
		case KindQuiz, KindSorting, KindMatching, KindExploration:
		default:
			errs = append(errs, fmt.Sprintf("level %q: unknown kind %q", l.ID, l.Kind))
		}
	}

	// Every world needs at least one level, an ungated entry level, and
	// thresholds reachable from the stars its own levels can award.
	for _, w := range worlds {
		lvls := levelsOf(levels, w.ID)
		if len(lvls) == 0 {
			errs = append(errs, fmt.Sprintf("world %q has no levels", w.ID))
			continue
		}

		hasEntry := false
		maxStars := 3 * len(lvls)
		for _, l := range lvls {
			if l.StarsRequired == 0 {
				hasEntry = true
			}
			// A gate has to be meetable without the gated level itself.
			if l.StarsRequired > maxStars-3 {
				errs = append(errs, fmt.Sprintf("level %q: StarsRequired %d unreachable (world max without it is %d)", l.ID, l.StarsRequired, maxStars-3))
			}
		}
		if !hasEntry {
			errs = append(errs, fmt.Sprintf("world %q has no level with StarsRequired == 0", w.ID))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("content validation failed:\n  %s", strings.Join(errs, "\n  "))
	}
	return nil
}

func levelsOf(levels []Level, worldID string) []Level {
	var result []Level
	for _, l := range levels {
		if l.WorldID == worldID {
			result = append(result, l)
		}
	}
	return result
}
