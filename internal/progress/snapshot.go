package progress

import (
	"sort"

	"github.com/rdelgado/econauts/internal/store"
)

// SnapshotData exports the player state for persistence.
func (p *Player) SnapshotData() *store.PlayerSnapshotData {
	data := &store.PlayerSnapshotData{
		Name:                p.Name,
		GreenScore:          p.GreenScore,
		TotalCorrectAnswers: p.TotalCorrectAnswers,
		Levels:              make(map[string]*store.LevelRecordData, len(p.Levels)),
	}

	for id, rec := range p.Levels {
		data.Levels[id] = &store.LevelRecordData{
			Completed:      rec.Completed,
			Stars:          rec.Stars,
			Score:          rec.Score,
			MaxScore:       rec.MaxScore,
			CorrectAnswers: rec.CorrectAnswers,
		}
	}

	for id := range p.Badges {
		if p.Badges[id] {
			data.Badges = append(data.Badges, id)
		}
	}
	sort.Strings(data.Badges)

	return data
}

// FromSnapshot rebuilds a player from persisted snapshot data.
// A nil snapshot, one without player data, or one written with an
// unrecognized schema version yields a fresh player (first-run
// semantics).
func FromSnapshot(snap *store.SnapshotData) *Player {
	p := NewPlayer()
	if snap == nil || snap.Player == nil {
		return p
	}
	if snap.Version != store.SnapshotVersion {
		return p
	}

	src := snap.Player
	p.Name = src.Name
	if src.GreenScore > 0 {
		p.GreenScore = src.GreenScore
	}
	if src.TotalCorrectAnswers > 0 {
		p.TotalCorrectAnswers = src.TotalCorrectAnswers
	}

	for id, rec := range src.Levels {
		if rec == nil {
			continue
		}
		st := rec.Stars
		if st < 0 {
			st = 0
		}
		if st > 3 {
			st = 3
		}
		p.Levels[id] = &LevelRecord{
			Completed:      rec.Completed,
			Stars:          st,
			Score:          rec.Score,
			MaxScore:       rec.MaxScore,
			CorrectAnswers: rec.CorrectAnswers,
		}
	}

	for _, id := range src.Badges {
		p.Badges[id] = true
	}

	return p
}
