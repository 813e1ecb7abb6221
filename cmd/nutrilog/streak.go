// ABOUTME: CLI command showing logging streaks.
// ABOUTME: Prints current and longest streak with the last log date.
package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var streakCmd = &cobra.Command{
	Use:   "streak",
	Short: "Show your logging streak",
	RunE: func(cmd *cobra.Command, args []string) error {
		s := app.Streak().Current()

		if s.CurrentStreak == 0 {
			fmt.Println("No active streak. Log a food or exercise to start one.")
		} else {
			color.Green("🔥 %d day streak", s.CurrentStreak)
		}
		fmt.Printf("Longest: %d days\n", s.LongestStreak)
		if s.LastLogDate != "" {
			fmt.Printf("Last logged: %s\n", s.LastLogDate)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(streakCmd)
}
