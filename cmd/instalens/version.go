package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/instalens/instalens"
)

// versionCmd represents the version command
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Display the version and build information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("instalens v%s\n", instalens.FullVersion())
	},
}

func init() {
	RootCmd.AddCommand(versionCmd)
}
