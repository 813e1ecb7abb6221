// ABOUTME: CLI command printing the nutrilog version.
// ABOUTME: Runs without opening the data store.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var version = "1.0.0"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the nutrilog version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("nutrilog", version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
