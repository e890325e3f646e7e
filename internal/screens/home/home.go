package home

import (
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/rdelgado/econauts/internal/progression"
	"github.com/rdelgado/econauts/internal/router"
	"github.com/rdelgado/econauts/internal/screen"
	"github.com/rdelgado/econauts/internal/screens/badgeboard"
	"github.com/rdelgado/econauts/internal/screens/profile"
	"github.com/rdelgado/econauts/internal/screens/worldmap"
	"github.com/rdelgado/econauts/internal/ui/components"
)

// HomeScreen is the main home screen of the application.
type HomeScreen struct {
	svc        *progression.Service
	menu       components.Menu
	menuLabels []string
}

var _ screen.Screen = (*HomeScreen)(nil)

// New creates a new HomeScreen.
func New(svc *progression.Service) *HomeScreen {
	menuLabels := []string{"WORLD MAP", "MY BADGES", "MY PROFILE", "EXIT GAME"}

	items := []components.MenuItem{
		{Label: menuLabels[0], Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: worldmap.New(svc)}
			}
		}},
		{Label: menuLabels[1], Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: badgeboard.New(svc)}
			}
		}},
		{Label: menuLabels[2], Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: profile.New(svc)}
			}
		}},
		{Label: menuLabels[3], Action: func() tea.Cmd {
			return tea.Quit
		}},
	}

	return &HomeScreen{
		svc:        svc,
		menu:       components.NewMenu(items),
		menuLabels: menuLabels,
	}
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	// height is the content area; estimate full terminal height
	// by adding back header (3) + footer (3) + frame gaps
	termHeight := height + 8
	compact := termHeight < 30 || width < 100

	// All sections share a uniform content width so they line up.
	cw := components.ContentWidth(width)

	player := h.svc.Player()
	badgeCount := len(player.Badges)

	nextWorld, missing, hasNext := h.svc.NextGoal()

	variant := MascotIdle
	if hasNext && missing <= 3 {
		variant = MascotAlert
	} else if badgeCount > 0 {
		variant = MascotCelebrating
	}

	var sections []string

	sections = append(sections, renderTitle(cw, compact))

	if !compact {
		sections = append(sections, renderMascotBox(variant, cw))
	}

	sections = append(sections, renderStatsBar(
		h.svc.TotalStars(), player.GreenScore, badgeCount, cw, compact))

	sections = append(sections, renderHomeMenu(h.menuLabels, h.menu.Selected, cw))

	if hasNext {
		sections = append(sections, renderNextGoal(nextWorld.Name, missing, cw))
	}

	content := strings.Join(sections, "\n\n")

	return components.SceneFrame(content, width, height)
}

func (h *HomeScreen) Title() string {
	return "Home"
}
