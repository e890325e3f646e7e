// Package badgeboard shows every badge and whether the player earned it.
package badgeboard

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/rdelgado/econauts/internal/badges"
	"github.com/rdelgado/econauts/internal/progression"
	"github.com/rdelgado/econauts/internal/screen"
	"github.com/rdelgado/econauts/internal/ui/components"
	"github.com/rdelgado/econauts/internal/ui/theme"
)

// BadgeBoardScreen lists the badge catalog with earned state.
type BadgeBoardScreen struct {
	svc     *progression.Service
	catalog []badges.Badge
	offset  int
}

var _ screen.Screen = (*BadgeBoardScreen)(nil)

// visibleRows bounds how many badges show at once; the rest scroll.
const visibleRows = 8

// New creates a new BadgeBoardScreen.
func New(svc *progression.Service) *BadgeBoardScreen {
	return &BadgeBoardScreen{
		svc:     svc,
		catalog: badges.Catalog(),
	}
}

func (b *BadgeBoardScreen) Init() tea.Cmd {
	return nil
}

func (b *BadgeBoardScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return b, nil
	}

	switch kmsg.String() {
	case "up", "k":
		if b.offset > 0 {
			b.offset--
		}
	case "down", "j":
		if b.offset < len(b.catalog)-visibleRows {
			b.offset++
		}
	}

	return b, nil
}

func (b *BadgeBoardScreen) View(width, height int) string {
	cw := components.ContentWidth(width)
	player := b.svc.Player()

	earnedCount := len(player.Badges)
	header := theme.Title.Render("Badge Collection") + "\n" +
		theme.Subtitle.Render(fmt.Sprintf("%d of %d earned", earnedCount, len(b.catalog)))

	end := b.offset + visibleRows
	if end > len(b.catalog) {
		end = len(b.catalog)
	}

	var rows []string
	for _, badge := range b.catalog[b.offset:end] {
		if player.HasBadge(badge.ID) {
			rows = append(rows, theme.Body.Render(
				fmt.Sprintf("%s %-18s %s", badge.Icon, badge.Name, badge.Description)))
		} else {
			rows = append(rows, theme.LockedStyle.Render(
				fmt.Sprintf("🔒 %-18s %s", "???", badge.Description)))
		}
	}

	if len(b.catalog) > visibleRows {
		rows = append(rows, "", theme.Hint.Render("↑↓ to scroll"))
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

func (b *BadgeBoardScreen) Title() string {
	return "Badges"
}
