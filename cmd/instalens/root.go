package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/mitchellh/go-homedir"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/instalens/instalens"
)

var configFile string

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:     "instalens",
	Version: instalens.FullVersion(),
	Short:   "Analyze exported Instagram relationship lists",
	Long: `instalens compares a pair of exported Instagram relationship lists
(followers and following) and reports who does not follow you back, who
you do not follow back, and your mutual connections. Everything runs
locally against the JSON files of a data export, nothing is fetched over
the network.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		// set logging level
		if viper.GetBool("debug") {
			log.SetLevel(log.DebugLevel)
		} else {
			log.SetLevel(log.InfoLevel)
		}
	},
}

// Execute adds all child commands to the root command
// and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := RootCmd.Execute(); err != nil {
		log.WithError(err).Error("error executing command")
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	RootCmd.PersistentFlags().StringVarP(
		&configFile, "config", "c", "$HOME/.instalens.yaml",
		"config file",
	)

	RootCmd.PersistentFlags().BoolP(
		"debug", "d", false,
		"Enable debug logging",
	)

	RootCmd.PersistentFlags().StringP(
		"followers", "f", instalens.DefaultFollowersFile,
		"path to the exported followers list (JSON)",
	)

	RootCmd.PersistentFlags().StringP(
		"following", "F", instalens.DefaultFollowingFile,
		"path to the exported following list (JSON)",
	)

	RootCmd.PersistentFlags().StringP(
		"output", "o", instalens.DefaultOutputFile,
		"path to write the analysis report to",
	)

	viper.BindPFlag("followers", RootCmd.PersistentFlags().Lookup("followers"))
	viper.SetDefault("followers", instalens.DefaultFollowersFile)

	viper.BindPFlag("following", RootCmd.PersistentFlags().Lookup("following"))
	viper.SetDefault("following", instalens.DefaultFollowingFile)

	viper.BindPFlag("output", RootCmd.PersistentFlags().Lookup("output"))
	viper.SetDefault("output", instalens.DefaultOutputFile)

	viper.BindPFlag("debug", RootCmd.PersistentFlags().Lookup("debug"))
	viper.SetDefault("debug", instalens.DefaultDebug)
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if configFile != "" {
		// Use config file from the flag.
		viper.SetConfigFile(configFile)
	} else {
		// Find home directory.
		home, err := homedir.Dir()
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}

		viper.AddConfigPath(home)
		viper.SetConfigName(".instalens.yaml")
	}

	// from the environment
	viper.SetEnvPrefix("INSTALENS")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv() // read in environment variables that match

	// If a config file is found, read it in.
	if err := viper.ReadInConfig(); err == nil {
		log.Debugf("Using config file: %s", viper.ConfigFileUsed())
	}
}
