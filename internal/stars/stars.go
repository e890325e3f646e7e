// Package stars turns a mini-game result into a 0-3 star rating.
package stars

// Max is the highest star count a level can hold.
const Max = 3

// Count returns the star rating for a score out of maxScore.
//
// Ungraded levels (maxScore == 0) award full stars: finishing them is the
// whole point. Graded levels bucket the score ratio: 90% for three stars,
// 60% for two, anything above zero for one.
func Count(score, maxScore int) int {
	if maxScore <= 0 {
		return Max
	}

	ratio := float64(score) / float64(maxScore)
	if ratio > 1 {
		ratio = 1
	}
	if ratio < 0 {
		ratio = 0
	}

	switch {
	case ratio >= 0.9:
		return 3
	case ratio >= 0.6:
		return 2
	case ratio > 0:
		return 1
	default:
		return 0
	}
}

// Render returns the classic filled/empty star row for a count, e.g. "★★☆".
func Render(count int) string {
	if count < 0 {
		count = 0
	}
	if count > Max {
		count = Max
	}
	s := ""
	for i := 0; i < Max; i++ {
		if i < count {
			s += "★"
		} else {
			s += "☆"
		}
	}
	return s
}
