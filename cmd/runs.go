package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var runsCmd = &cobra.Command{
	Use:   "runs",
	Short: "List past workflow runs",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")

		s, err := openStore(cmd)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer s.Close()

		runs, err := s.RunRepo().ListRuns(context.Background(), limit)
		if err != nil {
			return fmt.Errorf("list runs: %w", err)
		}

		if len(runs) == 0 {
			fmt.Println("No runs recorded yet.")
			return nil
		}

		fmt.Printf("%-36s  %-19s  %-24s  %-14s  %-21s  %-6s  %s\n",
			"ID", "Started", "Topics", "Phase", "Outcome", "Score", "Book")
		fmt.Println(strings.Repeat("─", 136))

		for _, r := range runs {
			score := "-"
			if r.ScorePercentage.Valid {
				score = fmt.Sprintf("%.0f%%", r.ScorePercentage.Float64)
			}
			book := "-"
			if r.ReadyToBook.Valid {
				book = "no"
				if r.ReadyToBook.Bool {
					book = "yes"
				}
			}
			topics := r.Topics
			if len(topics) > 24 {
				topics = topics[:24]
			}
			fmt.Printf("%-36s  %-19s  %-24s  %-14s  %-21s  %-6s  %s\n",
				r.ID,
				r.StartedAt.Local().Format("2006-01-02 15:04:05"),
				topics,
				r.Phase,
				r.Outcome,
				score,
				book,
			)
		}
		return nil
	},
}

func init() {
	runsCmd.Flags().IntP("limit", "n", 20, "Number of runs to show")
}
