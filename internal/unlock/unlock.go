// Package unlock decides which worlds and levels the player can enter.
// Predicates are pure and recomputed from current state on every call;
// nothing here is cached, so they can never go stale.
package unlock

import (
	"github.com/rdelgado/econauts/internal/content"
	"github.com/rdelgado/econauts/internal/progress"
)

// Level reports whether the player may enter a level. A level opens when
// the stars earned across its own world reach the level's requirement.
// Unknown level IDs are locked.
func Level(p *progress.Player, levelID string) bool {
	l, err := content.LevelByID(levelID)
	if err != nil {
		return false
	}
	if l.StarsRequired == 0 {
		return true
	}
	return p.WorldStars(l.WorldID) >= l.StarsRequired
}

// World reports whether the player may enter a world. A world opens when
// the player's global star total reaches its threshold. Unknown world IDs
// are locked.
func World(p *progress.Player, worldID string) bool {
	w, err := content.WorldByID(worldID)
	if err != nil {
		return false
	}
	if w.StarsToUnlock == 0 {
		return true
	}
	return p.TotalStars() >= w.StarsToUnlock
}

// NextLockedWorld returns the first world the player has not yet unlocked,
// in map order, and how many more stars it needs. ok is false when every
// world is already open.
func NextLockedWorld(p *progress.Player) (w content.World, missing int, ok bool) {
	total := p.TotalStars()
	for _, world := range content.AllWorlds() {
		if world.StarsToUnlock > total {
			return world, world.StarsToUnlock - total, true
		}
	}
	return content.World{}, 0, false
}
