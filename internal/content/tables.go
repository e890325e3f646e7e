package content

import (
	"fmt"
	"slices"
	"sort"
)

// tables holds the active content set with precomputed indices.
type tables struct {
	worlds    []World
	levels    []Level
	worldByID map[string]*World
	levelByID map[string]*Level
	byWorld   map[string][]Level
}

// tbl is the package-level tables singleton, set by init() in seed.go
// and replaced by LoadPack() when a content pack is supplied.
var tbl *tables

// buildTables constructs the indexed tables from raw world and level slices.
func buildTables(worlds []World, levels []Level) *tables {
	tb := &tables{
		worlds:    worlds,
		levels:    levels,
		worldByID: make(map[string]*World, len(worlds)),
		levelByID: make(map[string]*Level, len(levels)),
		byWorld:   make(map[string][]Level),
	}

	sort.Slice(tb.worlds, func(i, j int) bool {
		return tb.worlds[i].Order < tb.worlds[j].Order
	})

	for i := range tb.worlds {
		tb.worldByID[tb.worlds[i].ID] = &tb.worlds[i]
	}
	for i := range tb.levels {
		tb.levelByID[tb.levels[i].ID] = &tb.levels[i]
		tb.byWorld[tb.levels[i].WorldID] = append(tb.byWorld[tb.levels[i].WorldID], tb.levels[i])
	}

	for id, lvls := range tb.byWorld {
		sorted := make([]Level, len(lvls))
		copy(sorted, lvls)
		sort.Slice(sorted, func(i, j int) bool {
			return sorted[i].Order < sorted[j].Order
		})
		tb.byWorld[id] = sorted
	}

	return tb
}

// WorldByID returns a world by ID, or an error if not found.
func WorldByID(id string) (World, error) {
	w, ok := tbl.worldByID[id]
	if !ok {
		return World{}, fmt.Errorf("world not found: %q", id)
	}
	return *w, nil
}

// LevelByID returns a level by ID, or an error if not found.
func LevelByID(id string) (Level, error) {
	l, ok := tbl.levelByID[id]
	if !ok {
		return Level{}, fmt.Errorf("level not found: %q", id)
	}
	return *l, nil
}

// AllWorlds returns all worlds ordered by Order.
func AllWorlds() []World {
	return slices.Clone(tbl.worlds)
}

// AllLevels returns all levels.
func AllLevels() []Level {
	return slices.Clone(tbl.levels)
}

// LevelsInWorld returns the levels of a world ordered by Order.
func LevelsInWorld(worldID string) []Level {
	return slices.Clone(tbl.byWorld[worldID])
}

// Validate checks the active content set for structural issues.
func Validate() error {
	return validateTables(tbl.worlds, tbl.levels)
}
