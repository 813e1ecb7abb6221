// ABOUTME: UserProfile model plus activity level and weight goal enums.
// ABOUTME: Drives calorie target, macro, and micronutrient RDA derivation.
package models

// ActivityLevel scales BMR into TDEE.
type ActivityLevel string

const (
	ActivitySedentary  ActivityLevel = "sedentary"
	ActivityLight      ActivityLevel = "light"
	ActivityModerate   ActivityLevel = "moderate"
	ActivityActive     ActivityLevel = "active"
	ActivityVeryActive ActivityLevel = "very_active"
)

// AllActivityLevels returns all valid activity levels.
var AllActivityLevels = []ActivityLevel{
	ActivitySedentary, ActivityLight, ActivityModerate,
	ActivityActive, ActivityVeryActive,
}

// IsValidActivityLevel checks if a string is a valid activity level.
func IsValidActivityLevel(s string) bool {
	for _, a := range AllActivityLevels {
		if string(a) == s {
			return true
		}
	}
	return false
}

// Gender selects the Mifflin-St Jeor constant and RDA override table.
type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
)

// WeightGoal is the direction the user wants their weight to move.
type WeightGoal string

const (
	GoalLose     WeightGoal = "lose"
	GoalMaintain WeightGoal = "maintain"
	GoalGain     WeightGoal = "gain"
)

// IsValidWeightGoal checks if a string is a valid weight goal.
func IsValidWeightGoal(s string) bool {
	return s == string(GoalLose) || s == string(GoalMaintain) || s == string(GoalGain)
}

// Default calorie adjustments, roughly 1 lb/week for lose at 500 kcal/day.
const (
	DefaultLoseAdjustment = 500
	DefaultGainAdjustment = 300
)

// UserProfile holds the attributes calorie targets derive from.
// Created at onboarding, mutated by settings, never auto-deleted.
type UserProfile struct {
	WeightLbs        float64       `json:"weight_lbs" yaml:"weight_lbs"`
	HeightFeet       int           `json:"height_feet" yaml:"height_feet"`
	HeightInches     int           `json:"height_inches" yaml:"height_inches"`
	Age              int           `json:"age" yaml:"age"`
	Gender           Gender        `json:"gender" yaml:"gender"`
	ActivityLevel    ActivityLevel `json:"activity_level" yaml:"activity_level"`
	Goal             WeightGoal    `json:"goal" yaml:"goal"`
	CustomAdjustment int           `json:"custom_adjustment" yaml:"custom_adjustment"`
}

// Adjustment returns the configured calorie deviation, falling back to the
// per-goal default when unset. Maintain is always zero.
func (p UserProfile) Adjustment() int {
	if p.Goal == GoalMaintain {
		return 0
	}
	if p.CustomAdjustment > 0 {
		return p.CustomAdjustment
	}
	if p.Goal == GoalGain {
		return DefaultGainAdjustment
	}
	return DefaultLoseAdjustment
}
