package content

// World is one themed region of the game map. Worlds unlock in sequence
// based on the player's global star total.
type World struct {
	ID            string
	Name          string
	Order         int
	Theme         string
	StarsToUnlock int // cumulative stars across all worlds required to enter
}
