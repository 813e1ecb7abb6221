// ABOUTME: FoodEntry model, meal types, and the nullable micronutrient map.
// ABOUTME: Map absence encodes "unrecorded", which is distinct from a true zero.
package models

import (
	"time"

	"github.com/google/uuid"
)

// MealType classifies when a food entry was eaten.
type MealType string

const (
	MealBreakfast MealType = "breakfast"
	MealLunch     MealType = "lunch"
	MealDinner    MealType = "dinner"
	MealSnack     MealType = "snack"
)

// AllMealTypes returns all valid meal types.
var AllMealTypes = []MealType{MealBreakfast, MealLunch, MealDinner, MealSnack}

// IsValidMealType checks if a string is a valid meal type.
func IsValidMealType(s string) bool {
	for _, mt := range AllMealTypes {
		if string(mt) == s {
			return true
		}
	}
	return false
}

// MealTypeForHour infers a meal type from the hour of day.
// Bands: [5,11) breakfast, [11,14) lunch, [14,17) snack, [17,21) dinner,
// everything else snack.
func MealTypeForHour(hour int) MealType {
	switch {
	case hour >= 5 && hour < 11:
		return MealBreakfast
	case hour >= 11 && hour < 14:
		return MealLunch
	case hour >= 14 && hour < 17:
		return MealSnack
	case hour >= 17 && hour < 21:
		return MealDinner
	default:
		return MealSnack
	}
}

// Canonical micronutrient keys. Summaries, RDA tables, and per-key user
// overrides all use these names.
const (
	NutrientFiber       = "fiber"
	NutrientSodium      = "sodium"
	NutrientSugar       = "sugar"
	NutrientCholesterol = "cholesterol"
	NutrientVitaminA    = "vitamin_a"
	NutrientVitaminC    = "vitamin_c"
	NutrientVitaminD    = "vitamin_d"
	NutrientVitaminE    = "vitamin_e"
	NutrientVitaminK    = "vitamin_k"
	NutrientVitaminB1   = "vitamin_b1"
	NutrientVitaminB2   = "vitamin_b2"
	NutrientVitaminB3   = "vitamin_b3"
	NutrientVitaminB6   = "vitamin_b6"
	NutrientVitaminB12  = "vitamin_b12"
	NutrientFolate      = "folate"
	NutrientCalcium     = "calcium"
	NutrientIron        = "iron"
	NutrientMagnesium   = "magnesium"
	NutrientZinc        = "zinc"
	NutrientPotassium   = "potassium"
)

// NutrientKeys lists every tracked micronutrient.
var NutrientKeys = []string{
	NutrientFiber, NutrientSodium, NutrientSugar, NutrientCholesterol,
	NutrientVitaminA, NutrientVitaminC, NutrientVitaminD, NutrientVitaminE,
	NutrientVitaminK, NutrientVitaminB1, NutrientVitaminB2, NutrientVitaminB3,
	NutrientVitaminB6, NutrientVitaminB12, NutrientFolate, NutrientCalcium,
	NutrientIron, NutrientMagnesium, NutrientZinc, NutrientPotassium,
}

// NutrientUnits maps nutrient keys to their display units.
var NutrientUnits = map[string]string{
	NutrientFiber:       "g",
	NutrientSodium:      "mg",
	NutrientSugar:       "g",
	NutrientCholesterol: "mg",
	NutrientVitaminA:    "mcg",
	NutrientVitaminC:    "mg",
	NutrientVitaminD:    "mcg",
	NutrientVitaminE:    "mg",
	NutrientVitaminK:    "mcg",
	NutrientVitaminB1:   "mg",
	NutrientVitaminB2:   "mg",
	NutrientVitaminB3:   "mg",
	NutrientVitaminB6:   "mg",
	NutrientVitaminB12:  "mcg",
	NutrientFolate:      "mcg",
	NutrientCalcium:     "mg",
	NutrientIron:        "mg",
	NutrientMagnesium:   "mg",
	NutrientZinc:        "mg",
	NutrientPotassium:   "mg",
}

// IsValidNutrientKey checks if a string is a canonical nutrient key.
func IsValidNutrientKey(s string) bool {
	_, ok := NutrientUnits[s]
	return ok
}

// Micronutrients maps nutrient keys to recorded amounts. An absent key means
// the amount was never recorded; a present zero means a true zero intake.
// The two are deliberately kept distinct: sums treat absent as zero, but
// HasAny does not.
type Micronutrients map[string]float64

// Clone returns a deep copy.
func (m Micronutrients) Clone() Micronutrients {
	if m == nil {
		return nil
	}
	out := make(Micronutrients, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

// HasAny reports whether any nutrient was recorded at all.
func (m Micronutrients) HasAny() bool {
	return len(m) > 0
}

// Add accumulates src into m, treating absent keys in src as zero.
func (m Micronutrients) Add(src Micronutrients) {
	for k, v := range src {
		m[k] += v
	}
}

// FoodEntry is one recorded consumption event.
type FoodEntry struct {
	ID        uuid.UUID      `json:"id" yaml:"id"`
	Name      string         `json:"name" yaml:"name"`
	Calories  float64        `json:"calories" yaml:"calories"`
	Protein   float64        `json:"protein" yaml:"protein"`
	Carbs     float64        `json:"carbs" yaml:"carbs"`
	Fat       float64        `json:"fat" yaml:"fat"`
	Micros    Micronutrients `json:"micros,omitempty" yaml:"micros,omitempty"`
	MealType  MealType       `json:"meal_type" yaml:"meal_type"`
	Timestamp time.Time      `json:"timestamp" yaml:"timestamp"`
}

// NewFoodEntry creates a FoodEntry with a generated UUID. Meal type and
// timestamp are assigned by the daily log, which owns the clock.
func NewFoodEntry(name string, calories float64) *FoodEntry {
	return &FoodEntry{
		ID:       uuid.New(),
		Name:     name,
		Calories: calories,
	}
}

// WithMacros sets the macro grams.
func (f *FoodEntry) WithMacros(protein, carbs, fat float64) *FoodEntry {
	f.Protein = protein
	f.Carbs = carbs
	f.Fat = fat
	return f
}

// WithMicros sets the recorded micronutrients.
func (f *FoodEntry) WithMicros(m Micronutrients) *FoodEntry {
	f.Micros = m
	return f
}

// WithMealType sets an explicit meal type, overriding inference.
func (f *FoodEntry) WithMealType(mt MealType) *FoodEntry {
	f.MealType = mt
	return f
}

// Clone returns a deep copy of the entry.
func (f *FoodEntry) Clone() FoodEntry {
	out := *f
	out.Micros = f.Micros.Clone()
	return out
}

// FoodPatch holds optional replacement values for an update-by-id.
// Nil fields leave the existing value untouched.
type FoodPatch struct {
	Name     *string
	Calories *float64
	Protein  *float64
	Carbs    *float64
	Fat      *float64
	Micros   Micronutrients
	MealType *MealType
}

// Apply merges the patch into an entry.
func (p FoodPatch) Apply(f *FoodEntry) {
	if p.Name != nil {
		f.Name = *p.Name
	}
	if p.Calories != nil {
		f.Calories = *p.Calories
	}
	if p.Protein != nil {
		f.Protein = *p.Protein
	}
	if p.Carbs != nil {
		f.Carbs = *p.Carbs
	}
	if p.Fat != nil {
		f.Fat = *p.Fat
	}
	if p.Micros != nil {
		f.Micros = p.Micros.Clone()
	}
	if p.MealType != nil {
		f.MealType = *p.MealType
	}
}
