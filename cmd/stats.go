package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rdelgado/econauts/internal/content"
	"github.com/rdelgado/econauts/internal/stars"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show adventure progress",
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, st, err := openService(cmd)
		if err != nil {
			return err
		}
		defer st.Close()
		defer svc.Close()

		player := svc.Player()
		name := player.Name
		if name == "" {
			name = "Explorer"
		}

		fmt.Printf("%s\n", name)
		fmt.Printf("  Stars        %d\n", svc.TotalStars())
		fmt.Printf("  Green score  %d\n", player.GreenScore)
		fmt.Printf("  Badges       %d\n", len(player.Badges))
		fmt.Printf("  Levels       %d / %d\n", player.CompletedCount(), len(content.AllLevels()))
		fmt.Println()

		for _, w := range content.AllWorlds() {
			lvls := content.LevelsInWorld(w.ID)
			earned := player.WorldStars(w.ID)
			state := "open"
			if !svc.IsWorldUnlocked(w.ID) {
				state = fmt.Sprintf("locked, needs %d stars", w.StarsToUnlock)
			}
			fmt.Printf("  %-18s %2d/%2d ★  (%s)\n", w.Name, earned, len(lvls)*stars.Max, state)
		}
		return nil
	},
}
