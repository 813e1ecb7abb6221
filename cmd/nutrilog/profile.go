// ABOUTME: CLI commands for the user profile.
// ABOUTME: Setting a profile derives the calorie target and nutrient goals.
package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/nutrilog-app/nutrilog/internal/models"
)

var (
	profileWeight   float64
	profileFeet     int
	profileInches   int
	profileAge      int
	profileGender   string
	profileActivity string
	profileGoal     string
	profileAdjust   int
)

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Manage your profile",
}

var profileSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Set your profile and derive goals",
	Long: `Set your profile. All of --weight, --feet, --age, --gender,
--activity, and --goal are required; --inches and --adjust are optional.

Saving a profile derives your daily calorie target (Mifflin-St Jeor BMR
scaled by activity, adjusted for your weight goal), macro gram goals,
and personalized micronutrient targets.

Activity levels: sedentary, light, moderate, active, very_active
Goals: lose, maintain, gain

Example:
  nutrilog profile set --age 30 --gender male --feet 5 --inches 10 \
      --weight 180 --activity moderate --goal lose`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if profileWeight <= 0 || profileFeet <= 0 || profileAge <= 0 {
			return fmt.Errorf("--weight, --feet, and --age must be positive")
		}
		if profileGender != string(models.GenderMale) && profileGender != string(models.GenderFemale) {
			return fmt.Errorf("gender must be male or female")
		}
		if !models.IsValidActivityLevel(profileActivity) {
			return fmt.Errorf("unknown activity level: %s", profileActivity)
		}
		if !models.IsValidWeightGoal(profileGoal) {
			return fmt.Errorf("unknown goal: %s", profileGoal)
		}

		target := app.SetProfile(models.UserProfile{
			WeightLbs:        profileWeight,
			HeightFeet:       profileFeet,
			HeightInches:     profileInches,
			Age:              profileAge,
			Gender:           models.Gender(profileGender),
			ActivityLevel:    models.ActivityLevel(profileActivity),
			Goal:             models.WeightGoal(profileGoal),
			CustomAdjustment: profileAdjust,
		})

		color.Green("✓ Profile saved")
		fmt.Printf("  Daily target: %d kcal\n", target)
		macros := app.MacroGoals()
		fmt.Printf("  Macros (%s): %dg protein, %dg carbs, %dg fat\n",
			macros.Preset, macros.ProteinG, macros.CarbsG, macros.FatG)
		return nil
	},
}

var profileShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show your profile and derived goals",
	RunE: func(cmd *cobra.Command, args []string) error {
		p, ok := app.Profile()
		if !ok {
			fmt.Println("No profile set. Run 'nutrilog profile set' first.")
			return nil
		}

		fmt.Printf("Weight:    %.1f lbs\n", p.WeightLbs)
		fmt.Printf("Height:    %d'%d\"\n", p.HeightFeet, p.HeightInches)
		fmt.Printf("Age:       %d\n", p.Age)
		fmt.Printf("Gender:    %s\n", p.Gender)
		fmt.Printf("Activity:  %s\n", p.ActivityLevel)
		fmt.Printf("Goal:      %s (%+d kcal)\n", p.Goal, goalSign(p))
		fmt.Printf("Target:    %d kcal/day\n", app.DailyTarget())
		return nil
	},
}

func goalSign(p models.UserProfile) int {
	switch p.Goal {
	case models.GoalLose:
		return -p.Adjustment()
	case models.GoalGain:
		return p.Adjustment()
	default:
		return 0
	}
}

func init() {
	profileSetCmd.Flags().Float64Var(&profileWeight, "weight", 0, "weight in pounds")
	profileSetCmd.Flags().IntVar(&profileFeet, "feet", 0, "height feet component")
	profileSetCmd.Flags().IntVar(&profileInches, "inches", 0, "height inches component")
	profileSetCmd.Flags().IntVar(&profileAge, "age", 0, "age in years")
	profileSetCmd.Flags().StringVar(&profileGender, "gender", "", "male or female")
	profileSetCmd.Flags().StringVar(&profileActivity, "activity", "", "activity level")
	profileSetCmd.Flags().StringVar(&profileGoal, "goal", "", "weight goal")
	profileSetCmd.Flags().IntVar(&profileAdjust, "adjust", 0, "custom calorie adjustment")

	profileCmd.AddCommand(profileSetCmd, profileShowCmd)
	rootCmd.AddCommand(profileCmd)
}
