package quiz

// Question is one multiple-choice climate question shown during a quiz level.
type Question struct {
	Prompt       string
	Options      []string
	CorrectIndex int
	Fact         string // shown after answering, right or wrong
}

// QuestionsForLevel returns the question list for a quiz level, in play order.
// Returns nil for levels without a question bank.
func QuestionsForLevel(levelID string) []Question {
	return bank[levelID]
}

// HasQuestions reports whether a question bank exists for the level.
func HasQuestions(levelID string) bool {
	return len(bank[levelID]) > 0
}
