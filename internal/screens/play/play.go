// Package play runs the scored levels: quizzes, sorting and matching.
package play

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/rdelgado/econauts/internal/badges"
	"github.com/rdelgado/econauts/internal/content"
	"github.com/rdelgado/econauts/internal/minigames"
	"github.com/rdelgado/econauts/internal/progression"
	"github.com/rdelgado/econauts/internal/quiz"
	"github.com/rdelgado/econauts/internal/screen"
	"github.com/rdelgado/econauts/internal/stars"
	"github.com/rdelgado/econauts/internal/ui/components"
	"github.com/rdelgado/econauts/internal/ui/layout"
	"github.com/rdelgado/econauts/internal/ui/theme"
)

type phase int

const (
	phaseAsking phase = iota
	phaseFact
	phaseDone
)

// round is one scored prompt, sourced from the quiz bank or the
// minigame bank depending on the level's kind.
type round struct {
	prompt  string
	options []string
	correct int
	fact    string
}

// PlayScreen drives one attempt at a scored level.
type PlayScreen struct {
	svc    *progression.Service
	level  content.Level
	rounds []round

	idx    int
	choice components.MultiChoice
	score  int
	phase  phase

	attemptStars int
	bestStars    int
	earned       []badges.Badge
}

var _ screen.Screen = (*PlayScreen)(nil)

// New creates a PlayScreen for the given level.
func New(svc *progression.Service, level content.Level) *PlayScreen {
	s := &PlayScreen{
		svc:    svc,
		level:  level,
		rounds: loadRounds(level),
	}
	s.startRound()
	return s
}

func loadRounds(level content.Level) []round {
	var rounds []round
	if level.Kind == content.KindQuiz {
		for _, q := range quiz.QuestionsForLevel(level.ID) {
			rounds = append(rounds, round{q.Prompt, q.Options, q.CorrectIndex, q.Fact})
		}
		return rounds
	}
	for _, r := range minigames.RoundsForLevel(level.ID) {
		rounds = append(rounds, round{r.Prompt, r.Options, r.CorrectIndex, r.Fact})
	}
	return rounds
}

func (s *PlayScreen) startRound() {
	if s.idx >= len(s.rounds) {
		s.finish()
		return
	}
	r := s.rounds[s.idx]
	s.choice = components.NewMultiChoice(r.prompt, r.options, r.correct)
	s.phase = phaseAsking
}

// finish records the attempt exactly once and switches to the results view.
func (s *PlayScreen) finish() {
	correctAnswers := 0
	if s.level.Kind == content.KindQuiz {
		correctAnswers = s.score
	}
	s.attemptStars = stars.Count(s.score, s.level.MaxScore)
	s.bestStars, s.earned = s.svc.CompleteLevel(s.level.ID, s.score, s.level.MaxScore, correctAnswers)
	s.phase = phaseDone
}

func (s *PlayScreen) Init() tea.Cmd {
	return nil
}

func (s *PlayScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch s.phase {
	case phaseAsking:
		var cmd tea.Cmd
		s.choice, cmd = s.choice.Update(msg)
		if s.choice.Submitted {
			if s.choice.IsCorrect() {
				s.score++
			}
			s.phase = phaseFact
		}
		return s, cmd

	case phaseFact:
		if kmsg, ok := msg.(tea.KeyMsg); ok && kmsg.String() == "enter" {
			s.idx++
			s.startRound()
		}
		return s, nil

	case phaseDone:
		if kmsg, ok := msg.(tea.KeyMsg); ok && kmsg.String() == "enter" {
			// Play again from the top.
			s.idx = 0
			s.score = 0
			s.earned = nil
			s.startRound()
		}
		return s, nil
	}

	return s, nil
}

func (s *PlayScreen) View(width, height int) string {
	cw := components.ContentWidth(width)

	var body string
	switch s.phase {
	case phaseDone:
		body = s.resultsView(cw)
	default:
		body = s.roundView(cw)
	}

	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center).
		Render(components.SceneCard(body, cw))
}

func (s *PlayScreen) roundView(cw int) string {
	progress := theme.Subtitle.Render(
		fmt.Sprintf("%s · %d of %d", s.level.Name, s.idx+1, len(s.rounds)))

	parts := []string{progress, "", s.choice.View()}

	if s.phase == phaseFact {
		r := s.rounds[s.idx]
		verdict := theme.Correct.Render("Right!")
		if !s.choice.IsCorrect() {
			verdict = theme.Incorrect.Render("Not quite.")
		}
		fact := theme.Hint.Render(wrap(r.fact, cw-8))
		parts = append(parts, "", verdict+" "+fact, "", theme.Subtitle.Render("Enter to continue"))
	}

	return strings.Join(parts, "\n")
}

func (s *PlayScreen) resultsView(cw int) string {
	starBar := components.StarBar{Count: s.attemptStars, Big: true}

	lines := []string{
		theme.Title.Render(s.level.Name + " complete!"),
		"",
		starBar.View(),
		theme.Body.Render(fmt.Sprintf("Score %d / %d", s.score, s.level.MaxScore)),
	}

	if s.bestStars > s.attemptStars {
		lines = append(lines, theme.Subtitle.Render(
			fmt.Sprintf("Your best is still %d ★", s.bestStars)))
	}

	if len(s.earned) > 0 {
		lines = append(lines, "", theme.Title.Render("New badges!"))
		for _, b := range s.earned {
			lines = append(lines, theme.Body.Render(fmt.Sprintf("%s %s — %s", b.Icon, b.Name, b.Description)))
		}
	}

	lines = append(lines, "", theme.Subtitle.Render("Enter to play again · Esc to go back"))
	return strings.Join(lines, "\n")
}

func (s *PlayScreen) Title() string {
	return s.level.Name
}

// KeyHints provides footer hints matching the current phase.
func (s *PlayScreen) KeyHints() []layout.KeyHint {
	switch s.phase {
	case phaseAsking:
		return []layout.KeyHint{
			{Key: "↑↓", Description: "Choose"},
			{Key: "Enter", Description: "Answer"},
			{Key: "Esc", Description: "Quit level"},
		}
	case phaseFact:
		return []layout.KeyHint{
			{Key: "Enter", Description: "Next"},
			{Key: "Esc", Description: "Quit level"},
		}
	}
	return []layout.KeyHint{
		{Key: "Enter", Description: "Play again"},
		{Key: "Esc", Description: "Back"},
	}
}

// wrap breaks text into lines no wider than w.
func wrap(text string, w int) string {
	if w < 16 {
		w = 16
	}
	words := strings.Fields(text)
	var lines []string
	var line string
	for _, word := range words {
		if line == "" {
			line = word
			continue
		}
		if len(line)+1+len(word) > w {
			lines = append(lines, line)
			line = word
			continue
		}
		line += " " + word
	}
	if line != "" {
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n")
}
