package home

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/rdelgado/econauts/internal/ui/theme"
)

const homeTitleFull = `┌─┐┌─┐┌─┐┌┐┌┌─┐┬ ┬┌┬┐┌─┐
├┤ │  │ │││││─┤│ │ │ └─┐
└─┘└─┘└─┘┘└┘┴ ┴└─┘ ┴ └─┘`

const homeTitleCompact = "E · C · O · N · A · U · T · S"

// renderTitle returns the styled title block or compact fallback.
func renderTitle(cw int, compact bool) string {
	style := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true)

	title := homeTitleFull
	if compact {
		title = homeTitleCompact
	}
	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(style.Render(title))
}

// renderStatsBar renders the dashboard stats in a bordered box matching content width.
func renderStatsBar(totalStars, greenScore, badgeCount, cw int, compact bool) string {
	starStyle := theme.StarStyle
	greenStyle := theme.GreenBadge
	badgeStyle := lipgloss.NewStyle().Foreground(theme.Ocean).Bold(true)

	var stats string
	if compact {
		stats = fmt.Sprintf("%s %s %s",
			starStyle.Render(fmt.Sprintf("★%d", totalStars)),
			greenStyle.Render(fmt.Sprintf("🌱%d", greenScore)),
			badgeStyle.Render(fmt.Sprintf("🏅%d", badgeCount)),
		)
	} else {
		stats = fmt.Sprintf("%s  %s  %s",
			starStyle.Render(fmt.Sprintf("★ %d STARS", totalStars)),
			greenStyle.Render(fmt.Sprintf("🌱 %d GREEN", greenScore)),
			badgeStyle.Render(fmt.Sprintf("🏅 %d BADGES", badgeCount)),
		)
	}

	return lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(theme.Ocean).
		Width(cw - 2). // account for border chars
		Align(lipgloss.Center).
		Padding(0, 1).
		Render(stats)
}

// buttonWidth is the fixed width for menu buttons.
const buttonWidth = 22

// renderHomeMenu renders each menu item as a fixed-width button.
func renderHomeMenu(items []string, selected int, cw int) string {
	selectedBtn := lipgloss.NewStyle().
		Width(buttonWidth).
		Align(lipgloss.Center).
		Bold(true).
		Foreground(theme.BgDark).
		Background(theme.Primary).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Primary).
		Padding(0, 1)

	normalBtn := lipgloss.NewStyle().
		Width(buttonWidth).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Padding(0, 1)

	var buttons []string
	for i, label := range items {
		if i == selected {
			buttons = append(buttons, selectedBtn.Render("▸ "+label))
		} else {
			buttons = append(buttons, normalBtn.Render(label))
		}
	}
	block := strings.Join(buttons, "\n")

	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(block)
}

// renderMascotBox renders the mascot centered in a box matching content width.
func renderMascotBox(variant MascotVariant, cw int) string {
	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(RenderMascot(variant))
}

// renderNextGoal renders a dim one-line hint about the next locked world.
func renderNextGoal(worldName string, missing, cw int) string {
	text := fmt.Sprintf("%d more ★ to unlock %s", missing, worldName)
	return lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Width(cw).
		Align(lipgloss.Center).
		Render(text)
}
