package content

func init() {
	tbl = buildTables(seedWorlds(), seedLevels())
	if err := Validate(); err != nil {
		panic(err)
	}
}

// seedWorlds returns the built-in world table. StarsToUnlock thresholds are
// cumulative across the whole game: a steady player earning 2 stars per level
// stays roughly one world ahead of the gate.
func seedWorlds() []World {
	return []World{
		{ID: "w1", Name: "Sunny Harbor", Order: 1, Theme: "rising seas", StarsToUnlock: 0},
		{ID: "w2", Name: "Whispering Woods", Order: 2, Theme: "wildfires", StarsToUnlock: 5},
		{ID: "w3", Name: "Cobblestone City", Order: 3, Theme: "heat waves", StarsToUnlock: 11},
		{ID: "w4", Name: "Golden Fields", Order: 4, Theme: "drought", StarsToUnlock: 18},
		{ID: "w5", Name: "Misty Delta", Order: 5, Theme: "floods", StarsToUnlock: 26},
		{ID: "w6", Name: "Frostpeak", Order: 6, Theme: "melting ice", StarsToUnlock: 35},
	}
}

// seedLevels returns the built-in level table. Each world opens with an
// ungated level; later levels gate on stars earned within that world.
func seedLevels() []Level {
	return []Level{
		// Sunny Harbor — rising seas
		{ID: "w1-l1", WorldID: "w1", Name: "Tide Trouble", Order: 1, Kind: KindQuiz, Difficulty: 1, StarsRequired: 0, MaxScore: 5},
		{ID: "w1-l2", WorldID: "w1", Name: "Build the Seawall", Order: 2, Kind: KindSorting, Difficulty: 1, StarsRequired: 1, MaxScore: 6},
		{ID: "w1-l3", WorldID: "w1", Name: "Harbor Walk", Order: 3, Kind: KindExploration, Difficulty: 1, StarsRequired: 3, MaxScore: 0},

		// Whispering Woods — wildfires
		{ID: "w2-l1", WorldID: "w2", Name: "Spark Spotters", Order: 1, Kind: KindQuiz, Difficulty: 1, StarsRequired: 0, MaxScore: 5},
		{ID: "w2-l2", WorldID: "w2", Name: "Firebreak Builder", Order: 2, Kind: KindMatching, Difficulty: 2, StarsRequired: 2, MaxScore: 6},
		{ID: "w2-l3", WorldID: "w2", Name: "Forest Patrol", Order: 3, Kind: KindExploration, Difficulty: 1, StarsRequired: 4, MaxScore: 0},

		// Cobblestone City — heat waves
		{ID: "w3-l1", WorldID: "w3", Name: "Cool Roof Quiz", Order: 1, Kind: KindQuiz, Difficulty: 2, StarsRequired: 0, MaxScore: 5},
		{ID: "w3-l2", WorldID: "w3", Name: "Shade the Streets", Order: 2, Kind: KindSorting, Difficulty: 2, StarsRequired: 2, MaxScore: 8},
		{ID: "w3-l3", WorldID: "w3", Name: "Rooftop Gardens", Order: 3, Kind: KindExploration, Difficulty: 2, StarsRequired: 4, MaxScore: 0},

		// Golden Fields — drought
		{ID: "w4-l1", WorldID: "w4", Name: "Every Drop Counts", Order: 1, Kind: KindQuiz, Difficulty: 2, StarsRequired: 0, MaxScore: 5},
		{ID: "w4-l2", WorldID: "w4", Name: "Smart Sprinklers", Order: 2, Kind: KindMatching, Difficulty: 2, StarsRequired: 2, MaxScore: 8},
		{ID: "w4-l3", WorldID: "w4", Name: "Seed Bank Visit", Order: 3, Kind: KindExploration, Difficulty: 2, StarsRequired: 5, MaxScore: 0},

		// Misty Delta — floods
		{ID: "w5-l1", WorldID: "w5", Name: "River Rising", Order: 1, Kind: KindQuiz, Difficulty: 3, StarsRequired: 0, MaxScore: 6},
		{ID: "w5-l2", WorldID: "w5", Name: "Sandbag Sprint", Order: 2, Kind: KindSorting, Difficulty: 3, StarsRequired: 2, MaxScore: 8},
		{ID: "w5-l3", WorldID: "w5", Name: "Mangrove Maze", Order: 3, Kind: KindExploration, Difficulty: 2, StarsRequired: 5, MaxScore: 0},

		// Frostpeak — melting ice
		{ID: "w6-l1", WorldID: "w6", Name: "Glacier Watch", Order: 1, Kind: KindQuiz, Difficulty: 3, StarsRequired: 0, MaxScore: 6},
		{ID: "w6-l2", WorldID: "w6", Name: "Penguin Rescue", Order: 2, Kind: KindMatching, Difficulty: 3, StarsRequired: 2, MaxScore: 8},
		{ID: "w6-l3", WorldID: "w6", Name: "Summit Trek", Order: 3, Kind: KindExploration, Difficulty: 3, StarsRequired: 5, MaxScore: 0},
	}
}
