package home

import (
	"charm.land/lipgloss/v2"

	"github.com/rdelgado/econauts/internal/ui/theme"
)

// MascotVariant selects which mascot art to display.
type MascotVariant int

const (
	MascotIdle        MascotVariant = iota // Default green sprout
	MascotCelebrating                      // Star eyes, a badge was earned
	MascotAlert                            // Excited, a world is close to opening
)

const mascotIdle = ` (\_/)
 ( ◉◉ )
 /🌱🌱\
 ‾‾‾‾‾‾`

const mascotCelebrating = ` (\_/)
 ( ★★ )
 /🌱🌱\  ✧
 ‾‾‾‾‾‾`

const mascotAlert = ` (\_/)
 ( ◉◉ ) !
 /🌱🌱\
 ‾‾‾‾‾‾`

// RenderMascot returns Sprout, the Econauts mascot, for the given variant.
func RenderMascot(variant ...MascotVariant) string {
	v := MascotIdle
	if len(variant) > 0 {
		v = variant[0]
	}

	var art string
	var fg = theme.Primary

	switch v {
	case MascotCelebrating:
		art = mascotCelebrating
		fg = theme.StarGold
	case MascotAlert:
		art = mascotAlert
		fg = theme.Accent
	default:
		art = mascotIdle
	}

	return lipgloss.NewStyle().
		Foreground(fg).
		Render(art)
}
