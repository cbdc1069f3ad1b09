package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/LukeFitzGit/MyGymLog/internal/strength"
	"github.com/LukeFitzGit/MyGymLog/internal/tui"
	"github.com/LukeFitzGit/MyGymLog/internal/workout"
)

var trendsCmd = &cobra.Command{
	Use:     "trends [exercise]",
	Aliases: []string{"1rm"},
	Short:   "Chart estimated 1RM trends",
	Long: `Chart the estimated one-rep max over your archived sessions, one card
per exercise. With no argument the main lifts from the config are charted.`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		store, cfg := setup()
		defer store.Close()

		lifts := cfg.MainLifts
		if len(args) == 1 {
			lifts = []string{args[0]}
		}

		history := workout.LoadHistory(context.Background(), store)

		fmt.Println("📈 Progressive Overload")
		fmt.Println()
		for _, lift := range lifts {
			points := strength.BuildTrend(history, lift)
			fmt.Println(tui.RenderTrendCard(lift, points))
		}
	},
}
