package cmd

import (
	"fmt"

	"github.com/dnorman/learnchain/internal/app"
	"github.com/dnorman/learnchain/internal/config"
	"github.com/dnorman/learnchain/internal/store"
	"github.com/spf13/cobra"
)

// runApp loads configuration, opens the store, and launches the TUI.
// A missing credential is not fatal here: the picker reports it when a
// review is actually started.
func runApp(cmd *cobra.Command) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	return app.Run(&cfg, st.EventRepo())
}
