// ABOUTME: Personalized micronutrient RDA targets derived from the user profile.
// ABOUTME: Default table overlaid by gender, then age band, then activity scaling.
package goals

import "github.com/nutrilog-app/nutrilog/internal/models"

// defaultRDA is the baseline adult table. Units match models.NutrientUnits.
var defaultRDA = map[string]float64{
	models.NutrientFiber:       28,
	models.NutrientSodium:      2300,
	models.NutrientSugar:       50,
	models.NutrientCholesterol: 300,
	models.NutrientVitaminA:    900,
	models.NutrientVitaminC:    90,
	models.NutrientVitaminD:    15,
	models.NutrientVitaminE:    15,
	models.NutrientVitaminK:    120,
	models.NutrientVitaminB1:   1.2,
	models.NutrientVitaminB2:   1.3,
	models.NutrientVitaminB3:   16,
	models.NutrientVitaminB6:   1.7,
	models.NutrientVitaminB12:  2.4,
	models.NutrientFolate:      400,
	models.NutrientCalcium:     1000,
	models.NutrientIron:        8,
	models.NutrientMagnesium:   420,
	models.NutrientZinc:        11,
	models.NutrientPotassium:   3400,
}

// Gender-specific replacements.
var maleRDA = map[string]float64{
	models.NutrientIron:      8,
	models.NutrientVitaminA:  900,
	models.NutrientVitaminC:  90,
	models.NutrientVitaminK:  120,
	models.NutrientMagnesium: 420,
	models.NutrientZinc:      11,
}

var femaleRDA = map[string]float64{
	models.NutrientIron:      18,
	models.NutrientVitaminA:  700,
	models.NutrientVitaminC:  75,
	models.NutrientVitaminK:  90,
	models.NutrientMagnesium: 320,
	models.NutrientZinc:      8,
}

// Age-band replacements: teen under 19, senior 50 and over. Adults 19-49
// keep the gender-adjusted values.
var teenRDA = map[string]float64{
	models.NutrientCalcium:    1300,
	models.NutrientVitaminD:   15,
	models.NutrientVitaminB12: 2.4,
	models.NutrientIron:       11,
}

var seniorRDA = map[string]float64{
	models.NutrientCalcium:    1200,
	models.NutrientVitaminD:   20,
	models.NutrientVitaminB12: 2.6,
	models.NutrientIron:       8,
}

// Activity scaling for active and very active users. Scales rather than
// replaces, and is applied last.
var activityScale = map[string]float64{
	models.NutrientPotassium: 1.10,
	models.NutrientMagnesium: 1.10,
	models.NutrientIron:      1.10,
	models.NutrientSodium:    1.15,
}

// MicronutrientTargets derives per-key RDA targets from the profile.
// Overlays apply in sequence: gender, then age band, then activity scaling.
// Later overlays win on conflicting keys except activity, which multiplies
// the value standing after the first two.
func MicronutrientTargets(p models.UserProfile) models.MicronutrientGoals {
	targets := make(map[string]float64, len(defaultRDA))
	for k, v := range defaultRDA {
		targets[k] = v
	}

	genderTable := maleRDA
	if p.Gender == models.GenderFemale {
		genderTable = femaleRDA
	}
	for k, v := range genderTable {
		targets[k] = v
	}

	switch {
	case p.Age < 19:
		for k, v := range teenRDA {
			targets[k] = v
		}
	case p.Age >= 50:
		for k, v := range seniorRDA {
			targets[k] = v
		}
	}

	if p.ActivityLevel == models.ActivityActive || p.ActivityLevel == models.ActivityVeryActive {
		for k, factor := range activityScale {
			targets[k] *= factor
		}
	}

	return models.MicronutrientGoals{Targets: targets}
}
