// ABOUTME: CLI command showing overall tracker state.
// ABOUTME: Prints onboarding, target, streak, weight, and last sync at a glance.
package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show tracker status",
	RunE: func(cmd *cobra.Command, args []string) error {
		if !app.OnboardingComplete() {
			color.Yellow("Onboarding incomplete. Run 'nutrilog profile set' to get started.")
		}

		if _, ok := app.Profile(); ok {
			fmt.Printf("Daily target:  %d kcal\n", app.DailyTarget())
		} else {
			fmt.Println("Daily target:  not set")
		}

		s := app.Streak().Current()
		fmt.Printf("Streak:        %d days (longest %d)\n", s.CurrentStreak, s.LongestStreak)

		if latest, ok := app.Weights().Latest(); ok {
			fmt.Printf("Weight:        %.1f %s (%s)\n", latest.Weight, latest.Unit, latest.Date)
		}

		if last := app.LastSyncTime(); !last.IsZero() {
			fmt.Printf("Last sync:     %s\n", last.Format("2006-01-02 15:04"))
		}

		summary := app.TodaySummary()
		fmt.Printf("Today:         %.0f kcal eaten, %.0f burned, %d entries\n",
			summary.Eaten, summary.Burned, len(summary.Foods)+len(summary.Exercises))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(statusCmd)
}
