// ABOUTME: CLI command showing today's aggregated summary.
// ABOUTME: Prints calories, macros, water, and logged entries with color.
package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/nutrilog-app/nutrilog/internal/models"
)

var todayCmd = &cobra.Command{
	Use:     "today",
	Aliases: []string{"t"},
	Short:   "Show today's summary",
	RunE: func(cmd *cobra.Command, args []string) error {
		s := app.TodaySummary()

		bold := color.New(color.Bold)
		faint := color.New(color.Faint)

		bold.Printf("%s\n", s.Date)
		fmt.Printf("Eaten:     %.0f kcal\n", s.Eaten)
		fmt.Printf("Burned:    %.0f kcal\n", s.Burned)
		if s.Target > 0 {
			fmt.Printf("Net:       %.0f / %d kcal", s.Net, s.Target)
			if s.Remaining >= 0 {
				color.Green("  (%.0f remaining)", s.Remaining)
			} else {
				color.Red("  (%.0f over)", -s.Remaining)
			}
		} else {
			fmt.Printf("Net:       %.0f kcal\n", s.Net)
		}

		macros := app.MacroGoals()
		fmt.Printf("Macros:    P %.0f/%dg  C %.0f/%dg  F %.0f/%dg\n",
			s.Macros.Protein, macros.ProteinG,
			s.Macros.Carbs, macros.CarbsG,
			s.Macros.Fat, macros.FatG)

		if s.WaterML > 0 {
			fmt.Printf("Water:     %.0f ml\n", s.WaterML)
		}

		if s.HasMicros {
			goals := app.MicronutrientGoals()
			fmt.Println("Micros:")
			for _, key := range models.NutrientKeys {
				eaten, ok := s.Micros[key]
				if !ok {
					continue
				}
				line := fmt.Sprintf("  %s %.1f", padRight(key, 16), eaten)
				if target, ok := goals.Effective(key); ok && target > 0 {
					line += faint.Sprintf(" / %.1f %s", target, models.NutrientUnits[key])
				} else {
					line += " " + models.NutrientUnits[key]
				}
				fmt.Println(line)
			}
		}

		if len(s.Foods) > 0 {
			fmt.Println()
			for _, f := range s.Foods {
				fmt.Printf("  %s %s %s %.0f kcal\n",
					faint.Sprint(f.Timestamp.Format("15:04")),
					padRight(string(f.MealType), 10),
					padRight(truncate(f.Name, 24), 24),
					f.Calories)
			}
		}
		if len(s.Exercises) > 0 {
			for _, e := range s.Exercises {
				fmt.Printf("  %s %s %s %.0f kcal burned\n",
					faint.Sprint(e.Timestamp.Format("15:04")),
					padRight("exercise", 10),
					padRight(truncate(e.Name, 24), 24),
					e.Calories)
			}
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(todayCmd)
}
