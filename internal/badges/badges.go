// Package badges awards one-time achievements from player state.
package badges

import (
	"fmt"

	"github.com/rdelgado/econauts/internal/content"
	"github.com/rdelgado/econauts/internal/progress"
	"github.com/rdelgado/econauts/internal/stars"
)

// Predicate decides whether a badge's condition holds for the player.
// Predicates must be pure: no side effects, no stored state.
type Predicate func(p *progress.Player) bool

// Badge is one achievable award.
type Badge struct {
	ID          string
	Name        string
	Description string
	Icon        string
	Earned      Predicate
}

const (
	FirstStar     = "first-star"
	PerfectScore  = "perfect-score"
	QuizWhiz      = "quiz-whiz"
	Completionist = "completionist"
	GreenGuardian = "green-guardian"
)

// QuizWhizThreshold is the total correct answers needed for quiz-whiz.
const QuizWhizThreshold = 20

// GreenGuardianThreshold is the green score needed for green-guardian.
const GreenGuardianThreshold = 100

// WorldBadgeID returns the badge ID for completing every level of a world.
func WorldBadgeID(worldID string) string {
	return "world-complete-" + worldID
}

// Catalog returns every badge definition, rebuilt from the active content
// tables so per-world badges follow content packs.
func Catalog() []Badge {
	catalog := []Badge{
		{
			ID:          FirstStar,
			Name:        "First Steps",
			Description: "Complete your first level",
			Icon:        "🌟",
			Earned: func(p *progress.Player) bool {
				return p.CompletedCount() > 0
			},
		},
		{
			ID:          PerfectScore,
			Name:        "Perfect!",
			Description: "Earn three stars on any level",
			Icon:        "🏆",
			Earned: func(p *progress.Player) bool {
				for _, rec := range p.Levels {
					if rec.Stars >= stars.Max {
						return true
					}
				}
				return false
			},
		},
		{
			ID:          QuizWhiz,
			Name:        "Quiz Whiz",
			Description: fmt.Sprintf("Answer %d questions correctly", QuizWhizThreshold),
			Icon:        "🧠",
			Earned: func(p *progress.Player) bool {
				return p.TotalCorrectAnswers >= QuizWhizThreshold
			},
		},
		{
			ID:          GreenGuardian,
			Name:        "Green Guardian",
			Description: fmt.Sprintf("Reach a green score of %d", GreenGuardianThreshold),
			Icon:        "🌱",
			Earned: func(p *progress.Player) bool {
				return p.GreenScore >= GreenGuardianThreshold
			},
		},
	}

	for _, w := range content.AllWorlds() {
		world := w
		catalog = append(catalog, Badge{
			ID:          WorldBadgeID(world.ID),
			Name:        world.Name + " Hero",
			Description: "Complete every level in " + world.Name,
			Icon:        "🗺️",
			Earned: func(p *progress.Player) bool {
				return worldComplete(p, world.ID)
			},
		})
	}

	catalog = append(catalog, Badge{
		ID:          Completionist,
		Name:        "Planet Protector",
		Description: "Complete every level in the game",
		Icon:        "🌍",
		Earned: func(p *progress.Player) bool {
			for _, l := range content.AllLevels() {
				rec, ok := p.Levels[l.ID]
				if !ok || !rec.Completed {
					return false
				}
			}
			return true
		},
	})

	return catalog
}

// ByID returns a badge definition from the catalog.
func ByID(id string) (Badge, bool) {
	for _, b := range Catalog() {
		if b.ID == id {
			return b, true
		}
	}
	return Badge{}, false
}

// Evaluate checks every badge the player hasn't earned yet and awards the
// ones whose conditions now hold. Returns the newly earned badges.
// Already-earned badges are never re-evaluated or removed, so running
// Evaluate twice in a row awards nothing the second time.
func Evaluate(p *progress.Player) []Badge {
	var earned []Badge
	for _, b := range Catalog() {
		if p.Badges[b.ID] {
			continue
		}
		if b.Earned(p) {
			p.Badges[b.ID] = true
			earned = append(earned, b)
		}
	}
	return earned
}

func worldComplete(p *progress.Player, worldID string) bool {
	lvls := content.LevelsInWorld(worldID)
	if len(lvls) == 0 {
		return false
	}
	for _, l := range lvls {
		rec, ok := p.Levels[l.ID]
		if !ok || !rec.Completed {
			return false
		}
	}
	return true
}
