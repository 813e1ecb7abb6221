// ABOUTME: CLI commands for body weight tracking.
// ABOUTME: Records daily weight and lists the rolling weight log.
package main

import (
	"fmt"
	"strconv"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var weightUnit string

var weightCmd = &cobra.Command{
	Use:   "weight",
	Short: "Track body weight",
}

var weightAddCmd = &cobra.Command{
	Use:     "add <value>",
	Aliases: []string{"a"},
	Short:   "Record today's weight",
	Long: `Record a body weight measurement for today. Recording twice on
the same day replaces the earlier value.

Examples:
  nutrilog weight add 180.5
  nutrilog weight add 82.1 --unit kg`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		value, err := strconv.ParseFloat(args[0], 64)
		if err != nil || value <= 0 {
			return fmt.Errorf("invalid weight: %s", args[0])
		}

		entry := app.LogWeight(value, weightUnit)
		color.Green("✓ Recorded %.1f %s for %s", entry.Weight, entry.Unit, entry.Date)
		return nil
	},
}

var weightListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List recorded weights",
	RunE: func(cmd *cobra.Command, args []string) error {
		entries := app.Weights().Entries()
		if len(entries) == 0 {
			fmt.Println("No weights recorded.")
			return nil
		}

		faint := color.New(color.Faint)
		for _, e := range entries {
			fmt.Printf("%s %.1f %s\n", faint.Sprint(e.Date), e.Weight, e.Unit)
		}
		return nil
	},
}

func init() {
	weightAddCmd.Flags().StringVar(&weightUnit, "unit", "lbs", "weight unit (lbs or kg)")
	weightCmd.AddCommand(weightAddCmd, weightListCmd)
	rootCmd.AddCommand(weightCmd)
}
