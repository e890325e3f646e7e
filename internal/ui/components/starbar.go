package components

import (
	"charm.land/lipgloss/v2"

	"github.com/rdelgado/econauts/internal/stars"
	"github.com/rdelgado/econauts/internal/ui/theme"
)

// StarBar renders a level's star rating, e.g. "★★☆".
type StarBar struct {
	Count int
	Big   bool
}

// NewStarBar creates a star bar for the given star count.
func NewStarBar(count int) StarBar {
	return StarBar{Count: count}
}

// View renders the stars, gold for earned and dim for missing.
func (s StarBar) View() string {
	row := stars.Render(s.Count)
	if s.Big {
		spaced := ""
		for _, r := range row {
			if spaced != "" {
				spaced += " "
			}
			spaced += string(r)
		}
		row = spaced
	}
	return theme.StarStyle.Render(row)
}

// LockIcon returns the locked or unlocked marker for list rows.
func LockIcon(unlocked bool) string {
	if unlocked {
		return lipgloss.NewStyle().Foreground(theme.Primary).Render("●")
	}
	return theme.LockedStyle.Render("🔒")
}
