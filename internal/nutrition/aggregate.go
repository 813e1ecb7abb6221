// ABOUTME: Pure aggregation over the current day's food and exercise logs.
// ABOUTME: Holds no state of its own; everything derives from the slices passed in.
package nutrition

import "github.com/nutrilog-app/nutrilog/internal/models"

// Macros is a component-wise macro total in grams.
type Macros struct {
	Protein float64 `json:"protein"`
	Carbs   float64 `json:"carbs"`
	Fat     float64 `json:"fat"`
}

// CaloriesEaten sums calories over the food log. Empty logs total zero.
func CaloriesEaten(foods []models.FoodEntry) float64 {
	var total float64
	for _, f := range foods {
		total += f.Calories
	}
	return total
}

// CaloriesBurned sums calories over the exercise log.
func CaloriesBurned(exercises []models.ExerciseEntry) float64 {
	var total float64
	for _, e := range exercises {
		total += e.Calories
	}
	return total
}

// Net returns calories eaten minus burned.
func Net(foods []models.FoodEntry, exercises []models.ExerciseEntry) float64 {
	return CaloriesEaten(foods) - CaloriesBurned(exercises)
}

// Remaining returns the daily target minus net calories. Negative means
// over target.
func Remaining(target int, foods []models.FoodEntry, exercises []models.ExerciseEntry) float64 {
	return float64(target) - Net(foods, exercises)
}

// TotalMacros sums protein/carbs/fat component-wise, missing treated as 0.
func TotalMacros(foods []models.FoodEntry) Macros {
	var m Macros
	for _, f := range foods {
		m.Protein += f.Protein
		m.Carbs += f.Carbs
		m.Fat += f.Fat
	}
	return m
}

// TotalMicros sums recorded micronutrients across the log. Unrecorded keys
// contribute nothing, which makes a summed zero indistinguishable from a
// true zero intake; use HasMicroData to tell "nothing logged" apart from
// "logged but unrecorded".
func TotalMicros(foods []models.FoodEntry) models.Micronutrients {
	total := models.Micronutrients{}
	for _, f := range foods {
		total.Add(f.Micros)
	}
	return total
}

// HasMicroData reports whether any entry in the log recorded any
// micronutrient at all.
func HasMicroData(foods []models.FoodEntry) bool {
	for _, f := range foods {
		if f.Micros.HasAny() {
			return true
		}
	}
	return false
}

// TotalWater sums hydration over the water log in milliliters.
func TotalWater(entries []models.WaterEntry) float64 {
	var total float64
	for _, w := range entries {
		total += w.AmountML
	}
	return total
}
