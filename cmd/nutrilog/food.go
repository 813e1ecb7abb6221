// ABOUTME: CLI commands for logging and managing food entries.
// ABOUTME: Handles add, list, delete, update, favorites, and recents.
package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/nutrilog-app/nutrilog/internal/models"
)

var (
	foodProtein float64
	foodCarbs   float64
	foodFat     float64
	foodMeal    string
	foodMicros  []string
)

var foodCmd = &cobra.Command{
	Use:     "food",
	Aliases: []string{"f"},
	Short:   "Manage today's food log",
}

var foodAddCmd = &cobra.Command{
	Use:     "add <name> <calories>",
	Aliases: []string{"a"},
	Short:   "Log a food entry",
	Long: `Log a food entry to today's log.

Meal type is inferred from the time of day (breakfast before 11,
lunch before 14, dinner 17 to 21, snack otherwise) unless --meal
is given. Micronutrients are optional key=value pairs.

Examples:
  nutrilog food add "Oatmeal" 320 --protein 12 --carbs 54 --fat 6
  nutrilog food add "Chicken Salad" 450 --meal lunch
  nutrilog food add "Spinach" 23 --micro iron=2.7 --micro vitamin_k=483`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		calories, err := strconv.ParseFloat(args[1], 64)
		if err != nil {
			return fmt.Errorf("invalid calories: %s", args[1])
		}

		entry := models.NewFoodEntry(args[0], calories).
			WithMacros(foodProtein, foodCarbs, foodFat)

		if len(foodMicros) > 0 {
			micros, err := parseMicros(foodMicros)
			if err != nil {
				return err
			}
			entry.WithMicros(micros)
		}

		if foodMeal != "" {
			if !models.IsValidMealType(foodMeal) {
				return fmt.Errorf("unknown meal type: %s (use breakfast, lunch, dinner, or snack)", foodMeal)
			}
			entry.WithMealType(models.MealType(foodMeal))
		}

		logged := app.LogFood(entry)

		color.Green("✓ Logged %s", logged.Name)
		fmt.Printf("  %s %.0f kcal (%s)\n",
			color.New(color.Faint).Sprint(logged.ID.String()[:8]),
			logged.Calories, logged.MealType)

		return nil
	},
}

var foodListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List today's food entries",
	RunE: func(cmd *cobra.Command, args []string) error {
		foods := app.DailyLog().Foods()
		if len(foods) == 0 {
			fmt.Println("No food logged today.")
			return nil
		}

		faint := color.New(color.Faint)
		for _, f := range foods {
			fmt.Printf("%s %s %s %s %.0f kcal  P%.0f C%.0f F%.0f\n",
				faint.Sprint(f.ID.String()[:8]),
				faint.Sprint(f.Timestamp.Format("15:04")),
				padRight(string(f.MealType), 10),
				padRight(truncate(f.Name, 24), 24),
				f.Calories, f.Protein, f.Carbs, f.Fat)
		}
		return nil
	},
}

var foodDeleteCmd = &cobra.Command{
	Use:     "delete <id>",
	Aliases: []string{"rm"},
	Short:   "Delete a food entry from today's log",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := resolveFoodID(args[0])
		if err != nil {
			return err
		}
		if !app.DeleteFood(id) {
			return fmt.Errorf("food not found: %s", args[0])
		}
		color.Green("✓ Deleted %s", args[0])
		return nil
	},
}

var foodUpdateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Update a food entry in today's log",
	Long: `Update fields of a logged food entry. Only the flags you pass
change; everything else keeps its value.

Examples:
  nutrilog food update a1b2c3d4 --calories 280
  nutrilog food update a1b2c3d4 --name "Steel-cut Oatmeal" --protein 14`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := resolveFoodID(args[0])
		if err != nil {
			return err
		}

		var patch models.FoodPatch
		flags := cmd.Flags()
		if flags.Changed("name") {
			v, _ := flags.GetString("name")
			patch.Name = &v
		}
		if flags.Changed("calories") {
			v, _ := flags.GetFloat64("calories")
			patch.Calories = &v
		}
		if flags.Changed("protein") {
			v, _ := flags.GetFloat64("protein")
			patch.Protein = &v
		}
		if flags.Changed("carbs") {
			v, _ := flags.GetFloat64("carbs")
			patch.Carbs = &v
		}
		if flags.Changed("fat") {
			v, _ := flags.GetFloat64("fat")
			patch.Fat = &v
		}
		if flags.Changed("meal") {
			v, _ := flags.GetString("meal")
			if !models.IsValidMealType(v) {
				return fmt.Errorf("unknown meal type: %s", v)
			}
			mt := models.MealType(v)
			patch.MealType = &mt
		}

		updated := app.UpdateFood(id, patch)
		if updated == nil {
			return fmt.Errorf("food not found: %s", args[0])
		}

		color.Green("✓ Updated %s", updated.Name)
		fmt.Printf("  %.0f kcal  P%.0f C%.0f F%.0f (%s)\n",
			updated.Calories, updated.Protein, updated.Carbs, updated.Fat, updated.MealType)
		return nil
	},
}

var foodFavoriteCmd = &cobra.Command{
	Use:     "favorite <name> [calories]",
	Aliases: []string{"fav"},
	Short:   "Toggle a food on or off the favorites list",
	Args:    cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		food := models.SavedFood{Name: args[0]}
		if len(args) == 2 {
			calories, err := strconv.ParseFloat(args[1], 64)
			if err != nil {
				return fmt.Errorf("invalid calories: %s", args[1])
			}
			food.Calories = calories
		}
		food.Protein = foodProtein
		food.Carbs = foodCarbs
		food.Fat = foodFat

		if app.ToggleFavoriteFood(food) {
			color.Green("✓ Added %s to favorites", args[0])
		} else {
			color.Yellow("✓ Removed %s from favorites", args[0])
		}
		return nil
	},
}

var foodFavoritesCmd = &cobra.Command{
	Use:   "favorites",
	Short: "List favorite foods",
	RunE: func(cmd *cobra.Command, args []string) error {
		printSavedFoods(app.FavoriteFoods(), "No favorites yet.")
		return nil
	},
}

var foodRecentCmd = &cobra.Command{
	Use:   "recent",
	Short: "List recently logged foods",
	RunE: func(cmd *cobra.Command, args []string) error {
		printSavedFoods(app.RecentFoods(), "No recent foods.")
		return nil
	},
}

// resolveFoodID accepts a full UUID or a unique prefix matched against
// today's log.
func resolveFoodID(s string) (uuid.UUID, error) {
	if id, err := uuid.Parse(s); err == nil {
		return id, nil
	}

	var match uuid.UUID
	found := 0
	for _, f := range app.DailyLog().Foods() {
		if strings.HasPrefix(f.ID.String(), strings.ToLower(s)) {
			match = f.ID
			found++
		}
	}
	switch found {
	case 1:
		return match, nil
	case 0:
		return uuid.Nil, fmt.Errorf("food not found: %s", s)
	default:
		return uuid.Nil, fmt.Errorf("ambiguous ID prefix: %s", s)
	}
}

// parseMicros converts repeated key=value flags into micronutrients.
func parseMicros(pairs []string) (models.Micronutrients, error) {
	out := models.Micronutrients{}
	for _, pair := range pairs {
		key, value, ok := strings.Cut(pair, "=")
		if !ok {
			return nil, fmt.Errorf("invalid micronutrient %q (use key=value)", pair)
		}
		if !models.IsValidNutrientKey(key) {
			return nil, fmt.Errorf("unknown nutrient: %s", key)
		}
		amount, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid amount for %s: %s", key, value)
		}
		out[key] = amount
	}
	return out, nil
}

func printSavedFoods(foods []models.SavedFood, empty string) {
	if len(foods) == 0 {
		fmt.Println(empty)
		return
	}
	for _, f := range foods {
		fmt.Printf("%s %.0f kcal  P%.0f C%.0f F%.0f\n",
			padRight(truncate(f.Name, 24), 24),
			f.Calories, f.Protein, f.Carbs, f.Fat)
	}
}

func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}

func padRight(s string, length int) string {
	if len(s) >= length {
		return s
	}
	return s + strings.Repeat(" ", length-len(s))
}

func init() {
	foodAddCmd.Flags().Float64Var(&foodProtein, "protein", 0, "protein in grams")
	foodAddCmd.Flags().Float64Var(&foodCarbs, "carbs", 0, "carbohydrates in grams")
	foodAddCmd.Flags().Float64Var(&foodFat, "fat", 0, "fat in grams")
	foodAddCmd.Flags().StringVar(&foodMeal, "meal", "", "meal type (breakfast, lunch, dinner, snack)")
	foodAddCmd.Flags().StringArrayVar(&foodMicros, "micro", nil, "micronutrient key=value (repeatable)")

	foodUpdateCmd.Flags().String("name", "", "new name")
	foodUpdateCmd.Flags().Float64("calories", 0, "new calories")
	foodUpdateCmd.Flags().Float64("protein", 0, "new protein grams")
	foodUpdateCmd.Flags().Float64("carbs", 0, "new carb grams")
	foodUpdateCmd.Flags().Float64("fat", 0, "new fat grams")
	foodUpdateCmd.Flags().String("meal", "", "new meal type")

	foodFavoriteCmd.Flags().Float64Var(&foodProtein, "protein", 0, "protein in grams")
	foodFavoriteCmd.Flags().Float64Var(&foodCarbs, "carbs", 0, "carbohydrates in grams")
	foodFavoriteCmd.Flags().Float64Var(&foodFat, "fat", 0, "fat in grams")

	foodCmd.AddCommand(foodAddCmd, foodListCmd, foodDeleteCmd, foodUpdateCmd,
		foodFavoriteCmd, foodFavoritesCmd, foodRecentCmd)
	rootCmd.AddCommand(foodCmd)
}
