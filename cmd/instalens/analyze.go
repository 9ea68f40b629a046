package main

import (
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/instalens/instalens"
)

// analyzeCmd represents the analyze command
var analyzeCmd = &cobra.Command{
	Use:     "analyze [flags]",
	Aliases: []string{"run", "compare", "diff"},
	Short:   "Compare the followers and following exports and write a report",
	Long: `Reads both relationship exports, computes who does not follow you
back, who you do not follow back and your mutual connections, and writes
the result as a plain-text report.`,
	Run: func(cmd *cobra.Command, args []string) {
		runner, err := instalens.NewRunner(
			instalens.WithFollowersFile(viper.GetString("followers")),
			instalens.WithFollowingFile(viper.GetString("following")),
			instalens.WithOutputFile(viper.GetString("output")),
			instalens.WithDebug(viper.GetBool("debug")),
		)
		if err != nil {
			log.WithError(err).Error("error configuring analyzer")
			os.Exit(1)
		}

		analyze(runner)
	},
}

func init() {
	RootCmd.AddCommand(analyzeCmd)
}

func analyze(runner *instalens.Runner) {
	if err := runner.Run(); err != nil {
		// already logged, exit without a report
		os.Exit(1)
	}
}
