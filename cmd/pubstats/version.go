package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version of pubstats",
	// The root pre-run loads config; printing the version needs none.
	PersistentPreRun: func(cmd *cobra.Command, args []string) {},
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("pubstats %s\n", version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
