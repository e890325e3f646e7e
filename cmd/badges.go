package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rdelgado/econauts/internal/badges"
)

var badgesCmd = &cobra.Command{
	Use:   "badges",
	Short: "Show earned badges",
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, st, err := openService(cmd)
		if err != nil {
			return err
		}
		defer st.Close()
		defer svc.Close()

		player := svc.Player()
		catalog := badges.Catalog()

		fmt.Printf("Badges: %d of %d earned\n\n", len(player.Badges), len(catalog))
		for _, b := range catalog {
			if player.HasBadge(b.ID) {
				fmt.Printf("  %s %-18s %s\n", b.Icon, b.Name, b.Description)
			} else {
				fmt.Printf("  🔒 %-18s %s\n", "???", b.Description)
			}
		}
		return nil
	},
}
