package cmd

import (
	"github.com/spf13/cobra"

	"github.com/rdelgado/econauts/internal/config"
	"github.com/rdelgado/econauts/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "econauts",
	Short: "Climate adventure game for kids",
	Long:  "Econauts — a terminal adventure where kids earn stars and badges while learning how the world adapts to a changing climate.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite save file (overrides ECONAUTS_DB env var)")
	rootCmd.PersistentFlags().String("content", "", "Path to a JSON world pack (overrides ECONAUTS_CONTENT_PACK env var)")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(badgesCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(updateCmd)
}

// resolveDBPath returns the save-file path using --db flag (highest
// priority), then ECONAUTS_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command, cfg config.Config) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	if cfg.DBPath != "" {
		return cfg.DBPath, store.EnsureDir(cfg.DBPath)
	}
	return store.DefaultDBPath()
}
