package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/dnorman/learnchain/internal/store"
	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show review statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		days, _ := cmd.Flags().GetInt("days")

		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve database path: %w", err)
		}
		s, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer s.Close()

		ctx := context.Background()

		daily, err := s.EventRepo().DailyReviewStats(ctx, days)
		if err != nil {
			return fmt.Errorf("query daily stats: %w", err)
		}

		if len(daily) == 0 {
			fmt.Println("No quizzes answered yet.")
			return nil
		}

		fmt.Printf("Last %d days\n", days)
		fmt.Println(strings.Repeat("─", 44))
		fmt.Printf("%-12s  %8s  %8s  %8s\n", "Day", "Answered", "Correct", "Rate")
		fmt.Println(strings.Repeat("─", 44))

		var totalAnswered, totalCorrect int
		for _, d := range daily {
			fmt.Printf("%-12s  %8d  %8d  %7.0f%%\n",
				d.Day, d.Answered, d.Correct, rate(d.Correct, d.Answered))
			totalAnswered += d.Answered
			totalCorrect += d.Correct
		}
		fmt.Println(strings.Repeat("─", 44))
		fmt.Printf("%-12s  %8d  %8d  %7.0f%%\n",
			"TOTAL", totalAnswered, totalCorrect, rate(totalCorrect, totalAnswered))

		langs, err := s.EventRepo().LanguageStats(ctx)
		if err != nil {
			return fmt.Errorf("query language stats: %w", err)
		}
		if len(langs) > 0 {
			fmt.Println()
			fmt.Println("By language")
			fmt.Println(strings.Repeat("─", 58))
			fmt.Printf("%-12s  %8s  %8s  %8s  %12s\n",
				"Language", "Answered", "Correct", "Rate", "First-try")
			fmt.Println(strings.Repeat("─", 58))
			for _, l := range langs {
				fmt.Printf("%-12s  %8d  %8d  %7.0f%%  %11.0f%%\n",
					l.Language, l.Answered, l.Correct,
					rate(l.Correct, l.Answered),
					rate(l.FirstTryCorrect, l.FirstAttempts))
			}
		}

		return nil
	},
}

func rate(correct, total int) float64 {
	if total == 0 {
		return 0
	}
	return 100 * float64(correct) / float64(total)
}

func init() {
	statsCmd.Flags().IntP("days", "d", 30, "How many days back to aggregate")
}
