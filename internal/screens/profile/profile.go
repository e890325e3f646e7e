// Package profile shows the explorer's stats, lets them change their name
// and, behind a confirmation, start the game over.
package profile

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/rdelgado/econauts/internal/content"
	"github.com/rdelgado/econauts/internal/progression"
	"github.com/rdelgado/econauts/internal/screen"
	"github.com/rdelgado/econauts/internal/store"
	"github.com/rdelgado/econauts/internal/ui/components"
	"github.com/rdelgado/econauts/internal/ui/layout"
	"github.com/rdelgado/econauts/internal/ui/theme"
)

type mode int

const (
	modeView mode = iota
	modeRename
	modeConfirmReset
)

// recentLimit is how many history rows the profile shows.
const recentLimit = 5

// ProfileScreen shows stats, recent activity and the reset flow.
type ProfileScreen struct {
	svc      *progression.Service
	mode     mode
	name     components.TextInput
	recent   []store.CompletionEvent
	resetErr error
}

var _ screen.Screen = (*ProfileScreen)(nil)

// New creates a new ProfileScreen.
func New(svc *progression.Service) *ProfileScreen {
	recent, _ := svc.RecentCompletions(context.Background(), recentLimit)
	return &ProfileScreen{
		svc:    svc,
		recent: recent,
	}
}

func (p *ProfileScreen) Init() tea.Cmd {
	return nil
}

func (p *ProfileScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch p.mode {
	case modeRename:
		if kmsg, ok := msg.(tea.KeyMsg); ok && kmsg.String() == "enter" {
			name := strings.TrimSpace(p.name.Value())
			if name != "" {
				p.svc.SetPlayerName(name)
			}
			p.mode = modeView
			return p, nil
		}
		var cmd tea.Cmd
		p.name, cmd = p.name.Update(msg)
		return p, cmd

	case modeConfirmReset:
		kmsg, ok := msg.(tea.KeyMsg)
		if !ok {
			return p, nil
		}
		switch kmsg.String() {
		case "y":
			p.resetErr = p.svc.ResetProgress(context.Background())
			p.recent = nil
			p.mode = modeView
		case "n", "esc":
			p.mode = modeView
		}
		return p, nil
	}

	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return p, nil
	}
	switch kmsg.String() {
	case "n":
		p.name = components.NewTextInput("Explorer name", false, 20)
		p.mode = modeRename
		return p, p.name.Init()
	case "r":
		p.mode = modeConfirmReset
	}
	return p, nil
}

func (p *ProfileScreen) View(width, height int) string {
	cw := components.ContentWidth(width)

	var body string
	switch p.mode {
	case modeRename:
		body = theme.Title.Render("What's your name, explorer?") +
			"\n\n" + p.name.View() +
			"\n\n" + theme.Subtitle.Render("Enter to save")
	case modeConfirmReset:
		body = theme.Incorrect.Render("Start the whole game over?") +
			"\n\n" + theme.Body.Render("All stars, badges and green points will be lost.") +
			"\n\n" + theme.Subtitle.Render("y to reset · n to keep playing")
	default:
		body = p.statsView(cw)
	}

	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center).
		Render(components.SceneCard(body, cw))
}

func (p *ProfileScreen) statsView(cw int) string {
	player := p.svc.Player()

	name := player.Name
	if name == "" {
		name = "Explorer"
	}

	totalLevels := len(content.AllLevels())
	lines := []string{
		theme.Title.Render(name),
		"",
		theme.Body.Render(fmt.Sprintf("★ Stars        %d", p.svc.TotalStars())),
		theme.Body.Render(fmt.Sprintf("🌱 Green score  %d", player.GreenScore)),
		theme.Body.Render(fmt.Sprintf("🏅 Badges       %d", len(player.Badges))),
		theme.Body.Render(fmt.Sprintf("🗺  Levels       %d / %d", player.CompletedCount(), totalLevels)),
		theme.Body.Render(fmt.Sprintf("✔  Correct      %d answers", player.TotalCorrectAnswers)),
	}

	if len(p.recent) > 0 {
		lines = append(lines, "", theme.Subtitle.Render("Recent adventures"))
		for _, ev := range p.recent {
			lines = append(lines, theme.Hint.Render(formatEvent(ev)))
		}
	}

	if p.resetErr != nil {
		lines = append(lines, "", theme.Incorrect.Render(
			"Couldn't clear saved progress: "+p.resetErr.Error()))
	}

	lines = append(lines, "", theme.Subtitle.Render("n to change name · r to start over"))
	return strings.Join(lines, "\n")
}

func formatEvent(ev store.CompletionEvent) string {
	name := ev.LevelID
	if l, err := content.LevelByID(ev.LevelID); err == nil {
		name = l.Name
	}
	when := ev.Timestamp.Local().Format("Jan 2 15:04")
	return fmt.Sprintf("%s · %d★ · %s", name, ev.Stars, when)
}

func (p *ProfileScreen) Title() string {
	return "Profile"
}

// KeyHints provides footer hints matching the current mode.
func (p *ProfileScreen) KeyHints() []layout.KeyHint {
	switch p.mode {
	case modeRename:
		return []layout.KeyHint{{Key: "Enter", Description: "Save"}}
	case modeConfirmReset:
		return []layout.KeyHint{
			{Key: "y", Description: "Reset"},
			{Key: "n", Description: "Cancel"},
		}
	}
	return []layout.KeyHint{
		{Key: "n", Description: "Rename"},
		{Key: "r", Description: "Start over"},
		{Key: "Esc", Description: "Back"},
	}
}
