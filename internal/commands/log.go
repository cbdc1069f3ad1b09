package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/LukeFitzGit/MyGymLog/internal/tui"
)

var logCmd = &cobra.Command{
	Use:     "log",
	Aliases: []string{"today"},
	Short:   "Open today's workout log",
	Long:    "Open the interactive daily log. Stale sessions from earlier days are archived into history on startup.",
	Run: func(cmd *cobra.Command, args []string) {
		store, _ := setup()
		defer store.Close()

		if err := tui.RunLogTUI(store); err != nil {
			fmt.Printf("Error: %v\n", err)
		}
	},
}
