// ABOUTME: CLI commands for calorie, macro, and micronutrient goals.
// ABOUTME: Supports direct target setting, presets, custom splits, and overrides.
package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/nutrilog-app/nutrilog/internal/models"
)

var (
	goalPreset   string
	goalProtein  int
	goalCarbs    int
	goalFat      int
	goalMicroSet []string
)

var goalCmd = &cobra.Command{
	Use:   "goal",
	Short: "Manage calorie and nutrient goals",
}

var goalTargetCmd = &cobra.Command{
	Use:   "target [calories]",
	Short: "Show or set the daily calorie target",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 {
			fmt.Printf("Daily target: %d kcal\n", app.DailyTarget())
			return nil
		}

		target, err := strconv.Atoi(args[0])
		if err != nil || target <= 0 {
			return fmt.Errorf("invalid target: %s", args[0])
		}
		app.SetDailyTarget(target)
		color.Green("✓ Daily target set to %d kcal", target)
		return nil
	},
}

var goalMacrosCmd = &cobra.Command{
	Use:   "macros",
	Short: "Show or set macro goals",
	Long: `Show or set the macro split. With no flags, shows current goals.

Use --preset for a named split (balanced, low_carb, high_protein, keto)
or give --protein, --carbs, and --fat percentages summing to 100.

Examples:
  nutrilog goal macros
  nutrilog goal macros --preset high_protein
  nutrilog goal macros --protein 35 --carbs 35 --fat 30`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if goalPreset != "" {
			goals, err := app.SetMacroPreset(goalPreset)
			if err != nil {
				return err
			}
			color.Green("✓ Macro preset %s applied", goalPreset)
			printMacroGoals(goals)
			return nil
		}

		if cmd.Flags().Changed("protein") || cmd.Flags().Changed("carbs") || cmd.Flags().Changed("fat") {
			goals, err := app.SetMacroSplit(models.MacroSplit{
				Protein: goalProtein,
				Carbs:   goalCarbs,
				Fat:     goalFat,
			})
			if err != nil {
				return err
			}
			color.Green("✓ Macro split applied")
			printMacroGoals(goals)
			return nil
		}

		printMacroGoals(app.MacroGoals())
		return nil
	},
}

var goalMicrosCmd = &cobra.Command{
	Use:   "micros",
	Short: "Show or override micronutrient targets",
	Long: `Show the effective micronutrient targets, personalized from your
profile. Use --set to override individual targets.

Examples:
  nutrilog goal micros
  nutrilog goal micros --set iron=18 --set vitamin_d=25`,
	RunE: func(cmd *cobra.Command, args []string) error {
		for _, pair := range goalMicroSet {
			key, value, ok := strings.Cut(pair, "=")
			if !ok {
				return fmt.Errorf("invalid override %q (use key=value)", pair)
			}
			amount, err := strconv.ParseFloat(value, 64)
			if err != nil {
				return fmt.Errorf("invalid amount for %s: %s", key, value)
			}
			if !app.OverrideMicronutrient(key, amount) {
				return fmt.Errorf("unknown nutrient: %s", key)
			}
			color.Green("✓ %s target set to %.1f %s", key, amount, models.NutrientUnits[key])
		}
		if len(goalMicroSet) > 0 {
			return nil
		}

		goals := app.MicronutrientGoals()
		for _, key := range models.NutrientKeys {
			value, ok := goals.Effective(key)
			if !ok {
				continue
			}
			marker := ""
			if _, overridden := goals.Overrides[key]; overridden {
				marker = color.New(color.Faint).Sprint(" (override)")
			}
			fmt.Printf("%s %.1f %s%s\n", padRight(key, 16), value, models.NutrientUnits[key], marker)
		}
		return nil
	},
}

func printMacroGoals(g models.MacroGoals) {
	fmt.Printf("  %s: %d/%d/%d%%\n", g.Preset,
		g.Percentages.Protein, g.Percentages.Carbs, g.Percentages.Fat)
	fmt.Printf("  %dg protein, %dg carbs, %dg fat\n", g.ProteinG, g.CarbsG, g.FatG)
}

func init() {
	goalMacrosCmd.Flags().StringVar(&goalPreset, "preset", "", "named split (balanced, low_carb, high_protein, keto)")
	goalMacrosCmd.Flags().IntVar(&goalProtein, "protein", 0, "protein percentage")
	goalMacrosCmd.Flags().IntVar(&goalCarbs, "carbs", 0, "carb percentage")
	goalMacrosCmd.Flags().IntVar(&goalFat, "fat", 0, "fat percentage")
	goalMicrosCmd.Flags().StringArrayVar(&goalMicroSet, "set", nil, "override key=value (repeatable)")

	goalCmd.AddCommand(goalTargetCmd, goalMacrosCmd, goalMicrosCmd)
	rootCmd.AddCommand(goalCmd)
}
