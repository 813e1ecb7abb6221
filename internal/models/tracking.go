// ABOUTME: Day-keyed tracking models: summaries, streaks, water, weight, preferences.
// ABOUTME: All relationships are by day-key lookup; nothing holds live references.
package models

import "time"

// DailySummary is one calendar day's aggregate, keyed by day-key in the
// rolling history. Eaten and burned are always >= 0.
type DailySummary struct {
	Eaten  float64 `json:"eaten" yaml:"eaten"`
	Burned float64 `json:"burned" yaml:"burned"`
	Target int     `json:"target" yaml:"target"`
}

// Net returns calories eaten minus burned.
func (s DailySummary) Net() float64 { return s.Eaten - s.Burned }

// StreakData tracks consecutive days with at least one log action.
type StreakData struct {
	CurrentStreak int    `json:"current_streak" yaml:"current_streak"`
	LongestStreak int    `json:"longest_streak" yaml:"longest_streak"`
	LastLogDate   string `json:"last_log_date,omitempty" yaml:"last_log_date,omitempty"`
}

// WaterEntry is one hydration event within the current day.
type WaterEntry struct {
	AmountML  float64   `json:"amount_ml" yaml:"amount_ml"`
	Timestamp time.Time `json:"timestamp" yaml:"timestamp"`
}

// WeightEntry is one body-weight measurement. One entry per day; a second
// write on the same day replaces.
type WeightEntry struct {
	Date   string  `json:"date" yaml:"date"`
	Weight float64 `json:"weight" yaml:"weight"`
	Unit   string  `json:"unit" yaml:"unit"`
}

// Preferences holds display and tracking preferences owned by the UI layer
// but persisted alongside the core state.
type Preferences struct {
	Units       string  `json:"units,omitempty" yaml:"units,omitempty"`
	Theme       string  `json:"theme,omitempty" yaml:"theme,omitempty"`
	WaterGoalML float64 `json:"water_goal_ml,omitempty" yaml:"water_goal_ml,omitempty"`
}

// SavedFood is a reusable food template kept in the recent and favorite
// lists. Favorites are matched case-insensitively by name.
type SavedFood struct {
	Name     string         `json:"name" yaml:"name"`
	Calories float64        `json:"calories" yaml:"calories"`
	Protein  float64        `json:"protein" yaml:"protein"`
	Carbs    float64        `json:"carbs" yaml:"carbs"`
	Fat      float64        `json:"fat" yaml:"fat"`
	Micros   Micronutrients `json:"micros,omitempty" yaml:"micros,omitempty"`
}

// SavedFromEntry builds a template from a logged entry.
func SavedFromEntry(f FoodEntry) SavedFood {
	return SavedFood{
		Name:     f.Name,
		Calories: f.Calories,
		Protein:  f.Protein,
		Carbs:    f.Carbs,
		Fat:      f.Fat,
		Micros:   f.Micros.Clone(),
	}
}
