// ABOUTME: Calorie and macro goal derivation: Mifflin-St Jeor BMR, TDEE, gram splits.
// ABOUTME: Percentage validation lives here as the caller-facing layer; math does not reject.
package goals

import (
	"fmt"
	"math"

	"github.com/nutrilog-app/nutrilog/internal/models"
)

// Unit conversions.
const (
	lbsPerKg     = 2.20462
	cmPerInch    = 2.54
	kcalPerGramP = 4
	kcalPerGramC = 4
	kcalPerGramF = 9
)

// activityFactors scales BMR into TDEE. Single source of truth for valid
// activity levels.
var activityFactors = map[models.ActivityLevel]float64{
	models.ActivitySedentary:  1.2,
	models.ActivityLight:      1.375,
	models.ActivityModerate:   1.55,
	models.ActivityActive:     1.725,
	models.ActivityVeryActive: 1.9,
}

// Presets maps preset names to macro percentage splits.
var Presets = map[string]models.MacroSplit{
	"balanced":     {Protein: 30, Carbs: 40, Fat: 30},
	"low_carb":     {Protein: 40, Carbs: 20, Fat: 40},
	"high_protein": {Protein: 40, Carbs: 30, Fat: 30},
	"keto":         {Protein: 25, Carbs: 5, Fat: 70},
}

// BMR computes basal metabolic rate via Mifflin-St Jeor, rounded to the
// nearest calorie. Weight converts lbs to kg, height feet+inches to cm.
func BMR(p models.UserProfile) int {
	kg := p.WeightLbs / lbsPerKg
	cm := float64(p.HeightFeet*12+p.HeightInches) * cmPerInch

	bmr := 10*kg + 6.25*cm - 5*float64(p.Age)
	if p.Gender == models.GenderMale {
		bmr += 5
	} else {
		bmr -= 161
	}
	return int(math.Round(bmr))
}

// TDEE scales a BMR by the activity factor. Unknown levels fall back to
// sedentary rather than failing.
func TDEE(bmr int, level models.ActivityLevel) int {
	factor, ok := activityFactors[level]
	if !ok {
		factor = activityFactors[models.ActivitySedentary]
	}
	return int(math.Round(float64(bmr) * factor))
}

// DailyTarget applies the goal direction: lose subtracts the adjustment,
// gain adds it, maintain is the TDEE unchanged.
func DailyTarget(tdee int, goal models.WeightGoal, adjustment int) int {
	switch goal {
	case models.GoalLose:
		return tdee - adjustment
	case models.GoalGain:
		return tdee + adjustment
	default:
		return tdee
	}
}

// TargetFromProfile runs the full BMR -> TDEE -> target chain.
func TargetFromProfile(p models.UserProfile) int {
	return DailyTarget(TDEE(BMR(p), p.ActivityLevel), p.Goal, p.Adjustment())
}

// ValidateSplit rejects percentage splits that do not total 100. This is
// the caller-facing validation layer; MacroGrams itself does not reject.
func ValidateSplit(split models.MacroSplit) error {
	if total := split.Total(); total != 100 {
		return fmt.Errorf("macro percentages must total 100, got %d", total)
	}
	return nil
}

// MacroGrams derives gram targets from a calorie budget and a percentage
// split at 4 kcal/g for protein and carbs, 9 kcal/g for fat.
func MacroGrams(calories int, split models.MacroSplit) models.MacroGoals {
	grams := func(pct, kcalPerGram int) int {
		return int(math.Round(float64(calories) * float64(pct) / 100 / float64(kcalPerGram)))
	}
	return models.MacroGoals{
		ProteinG:    grams(split.Protein, kcalPerGramP),
		CarbsG:      grams(split.Carbs, kcalPerGramC),
		FatG:        grams(split.Fat, kcalPerGramF),
		Preset:      "custom",
		Percentages: split,
	}
}

// MacroGramsPreset derives gram targets from a named preset split.
func MacroGramsPreset(calories int, preset string) (models.MacroGoals, error) {
	split, ok := Presets[preset]
	if !ok {
		return models.MacroGoals{}, fmt.Errorf("unknown macro preset: %s", preset)
	}
	g := MacroGrams(calories, split)
	g.Preset = preset
	return g, nil
}
