package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/LukeFitzGit/MyGymLog/internal/catalog"
)

var exercisesCmd = &cobra.Command{
	Use:     "exercises",
	Aliases: []string{"ex"},
	Short:   "List the exercise catalog",
	Long:    "List the built-in exercise catalog with the abbreviations the log resolves while you type",
	Run: func(cmd *cobra.Command, args []string) {
		category, _ := cmd.Flags().GetString("category")
		category = strings.ToLower(strings.TrimSpace(category))

		fmt.Printf("%-24s %-6s %s\n", "NAME", "ABBR", "CATEGORY")
		fmt.Println(strings.Repeat("-", 40))

		for _, def := range catalog.List {
			if category != "" && string(def.Category) != category {
				continue
			}
			fmt.Printf("%-24s %-6s %s\n", def.Name, def.Abbreviation, def.Category)
		}
	},
}

func init() {
	exercisesCmd.Flags().StringP("category", "c", "", "Filter by category: push, pull, legs")
}
