package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rdelgado/econauts/internal/app"
	"github.com/rdelgado/econauts/internal/config"
	"github.com/rdelgado/econauts/internal/content"
	"github.com/rdelgado/econauts/internal/progression"
	"github.com/rdelgado/econauts/internal/store"
)

// runApp opens the save file, builds the progression service, and
// launches the TUI.
func runApp(cmd *cobra.Command) error {
	ctx := cmd.Context()

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	if err := loadContentPack(cmd, cfg); err != nil {
		return err
	}

	dbPath, err := resolveDBPath(cmd, cfg)
	if err != nil {
		return fmt.Errorf("resolve save path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open save file: %w", err)
	}
	defer st.Close()

	svc, err := progression.NewService(ctx, st.SnapshotRepo(), st.EventRepo())
	if err != nil {
		return fmt.Errorf("load progress: %w", err)
	}
	defer svc.Close()

	return app.Run(app.Options{
		Progression: svc,
		PlayerName:  cfg.PlayerName,
	})
}

// loadContentPack swaps in a custom world pack when one is configured.
func loadContentPack(cmd *cobra.Command, cfg config.Config) error {
	path, _ := cmd.Flags().GetString("content")
	if path == "" {
		path = cfg.ContentPack
	}
	if path == "" {
		return nil
	}
	if err := content.LoadPack(path); err != nil {
		return fmt.Errorf("load content pack: %w", err)
	}
	return nil
}

// openService is the shared setup for the non-TUI subcommands.
func openService(cmd *cobra.Command) (*progression.Service, *store.Store, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, err
	}
	dbPath, err := resolveDBPath(cmd, cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("resolve save path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return nil, nil, fmt.Errorf("open save file: %w", err)
	}
	svc, err := progression.NewService(cmd.Context(), st.SnapshotRepo(), st.EventRepo())
	if err != nil {
		st.Close()
		return nil, nil, fmt.Errorf("load progress: %w", err)
	}
	return svc, st, nil
}
