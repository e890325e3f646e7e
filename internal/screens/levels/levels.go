// Package levels shows the levels inside one world.
package levels

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/rdelgado/econauts/internal/content"
	"github.com/rdelgado/econauts/internal/progression"
	"github.com/rdelgado/econauts/internal/router"
	"github.com/rdelgado/econauts/internal/screen"
	"github.com/rdelgado/econauts/internal/screens/explore"
	"github.com/rdelgado/econauts/internal/screens/play"
	"github.com/rdelgado/econauts/internal/stars"
	"github.com/rdelgado/econauts/internal/ui/components"
	"github.com/rdelgado/econauts/internal/ui/theme"
)

// LevelsScreen lists a world's levels with stars and lock state.
type LevelsScreen struct {
	svc      *progression.Service
	world    content.World
	levels   []content.Level
	selected int
}

var _ screen.Screen = (*LevelsScreen)(nil)

// New creates a new LevelsScreen for the given world.
func New(svc *progression.Service, world content.World) *LevelsScreen {
	return &LevelsScreen{
		svc:    svc,
		world:  world,
		levels: content.LevelsInWorld(world.ID),
	}
}

func (s *LevelsScreen) Init() tea.Cmd {
	return nil
}

func (s *LevelsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}

	switch kmsg.String() {
	case "up", "k":
		if s.selected > 0 {
			s.selected--
		}
	case "down", "j":
		if s.selected < len(s.levels)-1 {
			s.selected++
		}
	case "enter":
		level := s.levels[s.selected]
		if !s.svc.IsLevelUnlocked(level.ID) {
			return s, nil
		}
		return s, openLevel(s.svc, level)
	}

	return s, nil
}

// openLevel routes to the right play screen for the level's kind.
func openLevel(svc *progression.Service, level content.Level) tea.Cmd {
	return func() tea.Msg {
		if level.Kind == content.KindExploration {
			return router.PushScreenMsg{Screen: explore.New(svc, level)}
		}
		return router.PushScreenMsg{Screen: play.New(svc, level)}
	}
}

func kindLabel(kind content.Kind) string {
	switch kind {
	case content.KindQuiz:
		return "quiz"
	case content.KindSorting:
		return "sorting"
	case content.KindMatching:
		return "matching"
	case content.KindExploration:
		return "explore"
	}
	return string(kind)
}

func (s *LevelsScreen) View(width, height int) string {
	cw := components.ContentWidth(width)
	player := s.svc.Player()

	header := theme.Title.Render(s.world.Name) + "\n" +
		theme.Subtitle.Render(s.world.Theme)

	var rows []string
	for i, level := range s.levels {
		unlocked := s.svc.IsLevelUnlocked(level.ID)
		best := player.BestStars(level.ID)

		starRow := theme.StarStyle.Render(stars.Render(best))
		info := fmt.Sprintf("%-8s %s", kindLabel(level.Kind), starRow)
		if !unlocked {
			info = fmt.Sprintf("needs %d ★ in %s", level.StarsRequired, s.world.Name)
		}

		line := fmt.Sprintf("%s  %-20s %s", components.LockIcon(unlocked), level.Name, info)

		style := theme.Unselected
		if !unlocked {
			style = theme.LockedStyle
		}
		if i == s.selected {
			line = "▸ " + line
			if unlocked {
				style = theme.Selected
			}
		} else {
			line = "  " + line
		}
		rows = append(rows, style.Render(line))
	}

	body := header + "\n\n" + lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Left).
		Render(strings.Join(rows, "\n"))

	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center).
		Render(components.SceneCard(body, cw))
}

func (s *LevelsScreen) Title() string {
	return s.world.Name
}
