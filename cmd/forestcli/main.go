package main

import (
	"os"

	"github.com/spf13/cobra"
)

type rootCmdConfig struct {
	verbose bool
}

func main() {
	if err := cliParser().Execute(); err != nil {
		os.Exit(1)
	}
}

func cliParser() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "forestcli",
		Short: "forestcli trains and evaluates random forest classifiers",
		Long:  `A tool to synthesize tabular data, fit random forests against it, tune their hyperparameters, and use them to predict.`,
	}
	config := &rootCmdConfig{}
	rootCmd.PersistentFlags().BoolVarP(&config.verbose, "verbose", "v", false, "")
	rootCmd.AddCommand(versionCmd(), genDataCmd(config), splitCmd(config), fitCmd(config), predictCmd(config), tuneCmd(config))
	return rootCmd
}
