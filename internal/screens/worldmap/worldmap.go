// Package worldmap shows the six climate worlds and their unlock state.
package worldmap

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/rdelgado/econauts/internal/content"
	"github.com/rdelgado/econauts/internal/progression"
	"github.com/rdelgado/econauts/internal/router"
	"github.com/rdelgado/econauts/internal/screen"
	"github.com/rdelgado/econauts/internal/screens/levels"
	"github.com/rdelgado/econauts/internal/stars"
	"github.com/rdelgado/econauts/internal/ui/components"
	"github.com/rdelgado/econauts/internal/ui/theme"
)

// WorldMapScreen lists every world with its stars and lock state.
type WorldMapScreen struct {
	svc      *progression.Service
	worlds   []content.World
	selected int
}

var _ screen.Screen = (*WorldMapScreen)(nil)

// New creates a new WorldMapScreen.
func New(svc *progression.Service) *WorldMapScreen {
	return &WorldMapScreen{
		svc:    svc,
		worlds: content.AllWorlds(),
	}
}

func (w *WorldMapScreen) Init() tea.Cmd {
	return nil
}

func (w *WorldMapScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return w, nil
	}

	switch kmsg.String() {
	case "up", "k":
		if w.selected > 0 {
			w.selected--
		}
	case "down", "j":
		if w.selected < len(w.worlds)-1 {
			w.selected++
		}
	case "enter":
		world := w.worlds[w.selected]
		if !w.svc.IsWorldUnlocked(world.ID) {
			return w, nil
		}
		return w, func() tea.Msg {
			return router.PushScreenMsg{Screen: levels.New(w.svc, world)}
		}
	}

	return w, nil
}

func (w *WorldMapScreen) View(width, height int) string {
	cw := components.ContentWidth(width)
	player := w.svc.Player()

	var rows []string
	for i, world := range w.worlds {
		unlocked := w.svc.IsWorldUnlocked(world.ID)
		earned := player.WorldStars(world.ID)
		maxStars := len(content.LevelsInWorld(world.ID)) * stars.Max

		name := fmt.Sprintf("%-18s", world.Name)
		info := fmt.Sprintf("★ %d/%d", earned, maxStars)
		if !unlocked {
			info = fmt.Sprintf("needs %d ★", world.StarsToUnlock)
		}

		line := fmt.Sprintf("%s  %s  %-14s %s",
			components.LockIcon(unlocked), name, world.Theme, info)

		style := theme.Unselected
		if !unlocked {
			style = theme.LockedStyle
		}
		if i == w.selected {
			line = "▸ " + line
			style = theme.Selected
			if !unlocked {
				style = theme.LockedStyle.Bold(true)
			}
		} else {
			line = "  " + line
		}
		rows = append(rows, style.Render(line))
	}

	list := strings.Join(rows, "\n")

	if next, missing, ok := w.svc.NextGoal(); ok {
		total := w.svc.TotalStars()
		bar := components.NewProgressBar(
			fmt.Sprintf("Next: %s", next.Name),
			float64(total)/float64(next.StarsToUnlock),
			false, cw-8)
		list += "\n\n" + bar.View() + "\n" +
			theme.Hint.Render(fmt.Sprintf("%d more ★ to go", missing))
	}

	body := lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Left).
		Render(list)

	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center).
		Render(components.SceneCard(body, cw))
}

func (w *WorldMapScreen) Title() string {
	return "World Map"
}
