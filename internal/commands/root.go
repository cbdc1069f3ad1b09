package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/LukeFitzGit/MyGymLog/internal/config"
	"github.com/LukeFitzGit/MyGymLog/internal/logging"
	"github.com/LukeFitzGit/MyGymLog/internal/storage"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "mygymlog",
	Short: "A terminal workout log",
	Long: `mygymlog keeps a daily log of your training sets, rolls finished days
into a history archive automatically, and charts your estimated one-rep max
over time. Running it with no arguments opens today's log.`,
	Run: func(cmd *cobra.Command, args []string) {
		logCmd.Run(cmd, args)
	},
}

// setup loads config and logging, and opens the key/value store. Panics when
// the store cannot be opened: without it there is no app.
func setup() (*storage.Store, config.Config) {
	cfg := config.Load()
	logging.Setup(cfg.LogsPath, cfg.LogLevel)

	store, err := storage.Open(cfg.DatabasePath())
	if err != nil {
		panic(err)
	}
	return store, cfg
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("mygymlog %s (commit %s, built %s)\n", version, commit, date)
	},
}

// SetVersion sets the version information
func SetVersion(v, c, d string) {
	version = v
	commit = c
	date = d
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.AddCommand(logCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(trendsCmd)
	rootCmd.AddCommand(exercisesCmd)
	rootCmd.AddCommand(versionCmd)
}
