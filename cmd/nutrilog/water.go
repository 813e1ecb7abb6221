// ABOUTME: CLI commands for hydration tracking.
// ABOUTME: Logs water amounts and shows today's total against the goal.
package main

import (
	"fmt"
	"strconv"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var waterCmd = &cobra.Command{
	Use:   "water",
	Short: "Track water intake",
}

var waterAddCmd = &cobra.Command{
	Use:     "add <ml>",
	Aliases: []string{"a"},
	Short:   "Log a water amount in milliliters",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		amount, err := strconv.ParseFloat(args[0], 64)
		if err != nil || amount <= 0 {
			return fmt.Errorf("invalid amount: %s", args[0])
		}

		app.LogWater(amount)
		color.Green("✓ Logged %.0f ml", amount)
		printWaterTotal()
		return nil
	},
}

var waterShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show today's water total",
	RunE: func(cmd *cobra.Command, args []string) error {
		printWaterTotal()
		return nil
	},
}

func printWaterTotal() {
	summary := app.TodaySummary()
	goal := app.Preferences().WaterGoalML
	if goal > 0 {
		fmt.Printf("  %.0f / %.0f ml today\n", summary.WaterML, goal)
	} else {
		fmt.Printf("  %.0f ml today\n", summary.WaterML)
	}
}

func init() {
	waterCmd.AddCommand(waterAddCmd, waterShowCmd)
	rootCmd.AddCommand(waterCmd)
}
