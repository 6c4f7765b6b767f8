package main

import "github.com/spf13/cobra"

var rootCmd = &cobra.Command{
	Use:           "connectorkit",
	Short:         "Connectorkit scaffolds, builds, and publishes marketplace connectors.",
	SilenceErrors: true,
	SilenceUsage:  true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.AddCommand(initCmd, buildCmd, marketplaceCmd)
}
