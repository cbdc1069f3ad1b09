package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/LukeFitzGit/MyGymLog/internal/workout"
)

var historyCmd = &cobra.Command{
	Use:     "history",
	Aliases: []string{"hist"},
	Short:   "Show archived workout sessions",
	Long:    "Show archived workout sessions, newest first",
	Run: func(cmd *cobra.Command, args []string) {
		store, _ := setup()
		defer store.Close()

		history := workout.LoadHistory(context.Background(), store)
		if len(history) == 0 {
			fmt.Println("No archived workouts yet. Finished days land here automatically.")
			return
		}

		limit, _ := cmd.Flags().GetInt("limit")
		shown := 0
		for i := len(history) - 1; i >= 0; i-- {
			if limit > 0 && shown >= limit {
				break
			}
			session := history[i]

			fmt.Printf("📅 %s\n", session.Date)
			for _, set := range session.Data {
				if !set.HasData() {
					// Trailing placeholder rows carry nothing worth printing
					continue
				}
				fmt.Printf("   %s: %s x %sKg\n", set.Exercise, set.Reps, set.Weight)
			}
			fmt.Println()
			shown++
		}
	},
}

func init() {
	historyCmd.Flags().IntP("limit", "n", 0, "Show only the most recent N sessions")
}
