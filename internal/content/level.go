package content

// Kind identifies the mini-game a level plays.
type Kind string

const (
	KindQuiz        Kind = "quiz"        // multiple-choice climate quiz
	KindSorting     Kind = "sorting"     // sort items into the right bins
	KindMatching    Kind = "matching"    // match cause to adaptation
	KindExploration Kind = "exploration" // free exploration, ungraded
)

// AllKinds returns every level kind in display order.
func AllKinds() []Kind {
	return []Kind{KindQuiz, KindSorting, KindMatching, KindExploration}
}

// GreenPoints returns the green-score contribution awarded for completing
// a level of this kind. Contributions are additive and never negative.
func (k Kind) GreenPoints() int {
	switch k {
	case KindQuiz:
		return 10
	case KindSorting, KindMatching:
		return 8
	case KindExploration:
		return 5
	default:
		return 0
	}
}

// DisplayName returns a human-readable label for the kind.
func (k Kind) DisplayName() string {
	switch k {
	case KindQuiz:
		return "Quiz"
	case KindSorting:
		return "Sorting"
	case KindMatching:
		return "Matching"
	case KindExploration:
		return "Exploration"
	default:
		return string(k)
	}
}

// Level is one playable mini-game inside a world.
type Level struct {
	ID            string
	WorldID       string
	Name          string
	Order         int
	Kind          Kind
	Difficulty    int // 1 (easiest) to 3
	StarsRequired int // stars within the level's own world needed to unlock
	MaxScore      int // 0 for ungraded levels (exploration)
}
