// Package explore runs the ungraded exploration walks. Finishing the walk
// always earns full stars; the reward here is the scenery.
package explore

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/rdelgado/econauts/internal/badges"
	"github.com/rdelgado/econauts/internal/content"
	"github.com/rdelgado/econauts/internal/progression"
	"github.com/rdelgado/econauts/internal/screen"
	"github.com/rdelgado/econauts/internal/stars"
	"github.com/rdelgado/econauts/internal/ui/components"
	"github.com/rdelgado/econauts/internal/ui/layout"
	"github.com/rdelgado/econauts/internal/ui/theme"
)

// ExploreScreen walks the player through a level's stops one by one.
type ExploreScreen struct {
	svc    *progression.Service
	level  content.Level
	stops  []Stop
	idx    int
	done   bool
	earned []badges.Badge
}

var _ screen.Screen = (*ExploreScreen)(nil)

// New creates an ExploreScreen for the given exploration level.
func New(svc *progression.Service, level content.Level) *ExploreScreen {
	return &ExploreScreen{
		svc:   svc,
		level: level,
		stops: StopsForLevel(level.ID),
	}
}

func (e *ExploreScreen) Init() tea.Cmd {
	return nil
}

func (e *ExploreScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok || kmsg.String() != "enter" {
		return e, nil
	}

	if e.done {
		return e, nil
	}

	if e.idx < len(e.stops)-1 {
		e.idx++
		return e, nil
	}

	// Walk finished: an exploration always completes with full stars.
	_, e.earned = e.svc.RecordLevelComplete(e.level.ID, stars.Max, len(e.stops), 0)
	e.done = true
	return e, nil
}

func (e *ExploreScreen) View(width, height int) string {
	cw := components.ContentWidth(width)

	var body string
	if e.done {
		body = e.resultsView()
	} else if len(e.stops) == 0 {
		body = theme.Subtitle.Render("Nothing to explore here yet.")
	} else {
		body = e.stopView(cw)
	}

	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center).
		Render(components.SceneCard(body, cw))
}

func (e *ExploreScreen) stopView(cw int) string {
	stop := e.stops[e.idx]

	progress := theme.Subtitle.Render(
		fmt.Sprintf("%s · stop %d of %d", e.level.Name, e.idx+1, len(e.stops)))

	scene := theme.Body.Render(wrap(stop.Scene, cw-8))
	fact := theme.Hint.Render(wrap("🌿 "+stop.Fact, cw-8))

	next := "Enter to walk on"
	if e.idx == len(e.stops)-1 {
		next = "Enter to finish the walk"
	}

	return strings.Join([]string{
		progress, "", scene, "", fact, "", theme.Subtitle.Render(next),
	}, "\n")
}

func (e *ExploreScreen) resultsView() string {
	starBar := components.StarBar{Count: stars.Max, Big: true}

	lines := []string{
		theme.Title.Render(e.level.Name + " explored!"),
		"",
		starBar.View(),
	}

	if len(e.earned) > 0 {
		lines = append(lines, "", theme.Title.Render("New badges!"))
		for _, b := range e.earned {
			lines = append(lines, theme.Body.Render(fmt.Sprintf("%s %s — %s", b.Icon, b.Name, b.Description)))
		}
	}

	lines = append(lines, "", theme.Subtitle.Render("Esc to go back"))
	return strings.Join(lines, "\n")
}

func (e *ExploreScreen) Title() string {
	return e.level.Name
}

// KeyHints provides footer hints for the walk.
func (e *ExploreScreen) KeyHints() []layout.KeyHint {
	if e.done {
		return []layout.KeyHint{{Key: "Esc", Description: "Back"}}
	}
	return []layout.KeyHint{
		{Key: "Enter", Description: "Walk on"},
		{Key: "Esc", Description: "Quit walk"},
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
