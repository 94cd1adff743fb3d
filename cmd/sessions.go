package cmd

import (
	"fmt"

	"github.com/dnorman/learnchain/internal/config"
	"github.com/dnorman/learnchain/internal/logsrc"
	"github.com/spf13/cobra"
)

var sessionsCmd = &cobra.Command{
	Use:   "sessions",
	Short: "List discovered coding session transcripts",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}

		roots := append(logsrc.DefaultRoots(), cfg.ExtraLogPaths...)
		candidates := logsrc.Scan(roots)
		if len(candidates) == 0 {
			fmt.Println("No transcripts found.")
			return nil
		}

		for _, c := range candidates {
			summary := c.Summary
			if summary == "" {
				summary = "(no prompt)"
			}
			fmt.Printf("%-11s  %s  %s\n      %s\n",
				c.Tool,
				c.Modified.Format("2006-01-02 15:04"),
				logsrc.Truncate(summary, 90),
				c.Path)
		}
		return nil
	},
}
